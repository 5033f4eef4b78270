package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"OnionShare-NG/internal/fileops"
	"OnionShare-NG/internal/util"
)

var sizeHuman bool

var sizeCmd = &cobra.Command{
	Use:   "size <directory>",
	Short: "Total size of all files under a directory",
	Long: `Walks the directory recursively and sums the sizes of all regular
files, the same accounting used to announce a share's download size.
Symbolic links are not followed.`,
	Args: cobra.ExactArgs(1),
	RunE: runSize,
}

func init() {
	sizeCmd.SilenceErrors = true
	sizeCmd.SilenceUsage = true
	rootCmd.AddCommand(sizeCmd)

	sizeCmd.Flags().BoolVarP(&sizeHuman, "human", "H", false, "Print with binary units (KiB, MiB, ...)")
}

func runSize(cmd *cobra.Command, args []string) error {
	total, err := fileops.DirSize(args[0])
	if err != nil {
		return err
	}
	if sizeHuman {
		fmt.Println(util.HumanReadableFilesize(float64(total)))
	} else {
		fmt.Println(total)
	}
	return nil
}
