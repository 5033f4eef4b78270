package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"OnionShare-NG/internal/errors"
	"OnionShare-NG/internal/platform"
)

var (
	pathsPlatform string
	pathsMode     string
	pathsPrefix   string
	pathsBundle   string
	pathsSource   string
)

var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Show resource and Tor paths for a platform",
	Long: `Prints the resource directory and the Tor binary and support file
paths for a platform and deployment mode. Paths are computed for the
requested target, so a Linux host can inspect the Windows layout.`,
	RunE: runPaths,
}

func init() {
	pathsCmd.SilenceErrors = true
	pathsCmd.SilenceUsage = true
	rootCmd.AddCommand(pathsCmd)

	pathsCmd.Flags().StringVar(&pathsPlatform, "platform", "", "Target platform: linux, darwin, or windows (default: host)")
	pathsCmd.Flags().StringVar(&pathsMode, "mode", "development", "Deployment mode: development, frozen, or installed")
	pathsCmd.Flags().StringVar(&pathsPrefix, "sys-prefix", "", "Installation prefix for installed mode")
	pathsCmd.Flags().StringVar(&pathsBundle, "bundle-root", "", "Bundle root for frozen mode")
	pathsCmd.Flags().StringVar(&pathsSource, "source-root", "", "Source checkout root for development mode")
}

func parsePlatform(name string) (platform.Platform, error) {
	switch name {
	case "":
		return platform.Detect(), nil
	case "linux":
		return platform.Linux, nil
	case "darwin", "macos":
		return platform.Darwin, nil
	case "windows":
		return platform.Windows, nil
	}
	return platform.Other, fmt.Errorf("platform %q: %w", name, errors.ErrUnknownPlatform)
}

func parseMode(name string) (platform.Mode, error) {
	switch name {
	case "development":
		return platform.Development, nil
	case "frozen":
		return platform.Frozen, nil
	case "installed":
		return platform.Installed, nil
	}
	return platform.Development, &errors.ValidationError{Field: "mode", Message: fmt.Sprintf("unknown mode %q", name)}
}

func runPaths(cmd *cobra.Command, args []string) error {
	p, err := parsePlatform(pathsPlatform)
	if err != nil {
		return err
	}
	m, err := parseMode(pathsMode)
	if err != nil {
		return err
	}

	resolver := platform.NewResolver(p, m)
	if pathsPrefix != "" {
		resolver.SysPrefix = pathsPrefix
	}
	if pathsBundle != "" {
		resolver.BundleRoot = pathsBundle
	}
	if pathsSource != "" {
		resolver.SourceRoot = pathsSource
	}

	res, err := resolver.ResourcePath("wordlist.txt")
	if err != nil {
		return err
	}
	fmt.Printf("wordlist:   %s\n", res)

	tor, err := resolver.TorPaths()
	if err != nil {
		return err
	}
	fmt.Printf("tor:        %s\n", tor.Tor)
	fmt.Printf("geoip:      %s\n", tor.GeoIP)
	fmt.Printf("geoip6:     %s\n", tor.GeoIPv6)
	fmt.Printf("obfs4proxy: %s\n", tor.Obfs4proxy)
	return nil
}
