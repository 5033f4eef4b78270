package cli

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"OnionShare-NG/internal/fileops"
	"OnionShare-NG/internal/util"
)

var (
	arcOutput   string
	arcCompress bool
	arcQuiet    bool
)

var archiveCmd = &cobra.Command{
	Use:   "archive <file|directory>...",
	Short: "Stage files into a zip archive",
	Long: `Stages the given files and directories into a single zip archive,
the way a multi-file share is packed into one download. Directories are
walked recursively; entry names are relative to the first argument's
parent directory.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runArchive,
}

func init() {
	archiveCmd.SilenceErrors = true
	archiveCmd.SilenceUsage = true
	rootCmd.AddCommand(archiveCmd)

	archiveCmd.Flags().StringVarP(&arcOutput, "output", "o", "share.zip", "Output archive path")
	archiveCmd.Flags().BoolVarP(&arcCompress, "compress", "c", false, "Deflate entries instead of storing them")
	archiveCmd.Flags().BoolVarP(&arcQuiet, "quiet", "q", false, "Suppress the progress bar")
}

// collectFiles expands directory arguments into their regular files.
func collectFiles(args []string) ([]string, string, error) {
	root := filepath.Dir(filepath.Clean(args[0]))
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, "", err
		}
		if !info.IsDir() {
			files = append(files, arg)
			continue
		}
		err = filepath.WalkDir(arg, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.Type().IsRegular() {
				files = append(files, p)
			}
			return nil
		})
		if err != nil {
			return nil, "", err
		}
	}
	return files, root, nil
}

func runArchive(cmd *cobra.Command, args []string) error {
	files, root, err := collectFiles(args)
	if err != nil {
		return err
	}

	reporter := NewReporter(arcQuiet)
	globalReporter = reporter
	defer func() { globalReporter = nil }()

	err = fileops.CreateZip(fileops.ZipOptions{
		Files:      files,
		RootDir:    root,
		OutputPath: arcOutput,
		Compress:   arcCompress,
		Progress:   reporter.SetProgress,
		Cancel:     reporter.IsCancelled,
	})
	reporter.Finish()
	if err != nil {
		return err
	}

	stat, err := os.Stat(arcOutput)
	if err != nil {
		return err
	}
	fmt.Printf("%s (%s, %d files)\n", arcOutput, util.HumanReadableFilesize(float64(stat.Size())), len(files))
	return nil
}
