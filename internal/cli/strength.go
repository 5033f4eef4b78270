package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"OnionShare-NG/internal/passgen"
)

var strengthCmd = &cobra.Command{
	Use:   "strength",
	Short: "Score a password's strength",
	Long: `Reads a password from a hidden terminal prompt (or from stdin when
piped) and prints its zxcvbn score, from 0 (trivial) to 4 (strong).`,
	RunE: runStrength,
}

func init() {
	strengthCmd.SilenceErrors = true
	strengthCmd.SilenceUsage = true
	rootCmd.AddCommand(strengthCmd)
}

func runStrength(cmd *cobra.Command, args []string) error {
	pw, err := readPasswordSecure("Password: ")
	if err != nil {
		return err
	}
	if pw == "" {
		return ErrPasswordEmpty
	}
	fmt.Printf("score %d/4\n", passgen.Strength(pw))
	return nil
}
