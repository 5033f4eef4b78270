// Package cli provides the developer command-line interface for the
// OnionShare-NG utility core.
package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"OnionShare-NG/internal/log"
)

// Version is set by main.go
var Version = "dev"

var verbose bool

// rootCmd is the base command when called without subcommands
var rootCmd = &cobra.Command{
	Use:   "onionshare-ng",
	Short: "Utility core for anonymous file sharing",
	Long: `onionshare-ng exposes the platform-abstraction utilities used by the
anonymous file sharing application:

  - wordlist password generation, strength scoring, and hashing
  - directory size accounting
  - free loopback port discovery
  - per-platform resource and Tor binary path resolution
  - zip staging of files to share`,
	Version: Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.SetVerbose(verbose)
	},
}

// Global reporter for signal handling
var globalReporter *Reporter

// Execute runs the CLI application.
func Execute(version string) {
	Version = version
	rootCmd.Version = version

	// Set up signal handling for graceful cancellation
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		if globalReporter != nil {
			globalReporter.Cancel()
			fmt.Fprintln(os.Stderr, "\nCancelling operation...")
		} else {
			os.Exit(1)
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Disable default completion command
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every operation to stdout")
}
