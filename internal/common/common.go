// Package common is the facade the rest of the application uses for its
// cross-cutting utilities: password generation, size accounting, transfer
// estimation, port discovery, path resolution, and logging.
//
// A Common is constructed once at startup and passed by handle to the
// networking and UI layers. This centralizes what would otherwise be
// ambient globals, so tests can substitute a capturing log sink and a
// fixed clock. The wordlist, platform, and mode never change after
// construction and are safe for concurrent reads.
package common

import (
	"io"
	"os"
	"time"

	"OnionShare-NG/internal/fileops"
	"OnionShare-NG/internal/log"
	"OnionShare-NG/internal/passgen"
	"OnionShare-NG/internal/platform"
	"OnionShare-NG/internal/util"
)

// Version is the application version string.
const Version = "v0.3"

// Options configures construction of a Common.
// The zero value detects the host platform, runs in development mode, and
// logs (silently, until SetVerbose) to stdout.
type Options struct {
	Mode         platform.Mode // deployment mode
	WordlistPath string        // overrides the resolved wordlist location
	LogOutput    io.Writer     // logger sink, default os.Stdout
	Verbose      bool          // start with logging enabled
}

// Common ties the platform identity, path resolver, wordlist generator,
// and logger together.
type Common struct {
	Platform platform.Platform
	Mode     platform.Mode
	Resolver *platform.Resolver
	Logger   *log.Logger

	gen *passgen.Generator
}

// New detects the host platform, resolves and loads the wordlist, and
// wires the logger. A missing or malformed wordlist is a fatal
// configuration error.
func New(opts Options) (*Common, error) {
	p := platform.Detect()
	resolver := platform.NewResolver(p, opts.Mode)

	path := opts.WordlistPath
	if path == "" {
		var err error
		path, err = resolver.ResourcePath("wordlist.txt")
		if err != nil {
			return nil, err
		}
	}
	words, err := passgen.Load(path)
	if err != nil {
		return nil, err
	}
	gen, err := passgen.New(words)
	if err != nil {
		return nil, err
	}

	out := opts.LogOutput
	if out == nil {
		out = os.Stdout
	}
	logger := log.New(out)
	logger.SetVerbose(opts.Verbose)

	return &Common{
		Platform: p,
		Mode:     opts.Mode,
		Resolver: resolver,
		Logger:   logger,
		gen:      gen,
	}, nil
}

// BuildPassword returns a fresh two-word password from the wordlist.
func (c *Common) BuildPassword() (string, error) {
	return c.gen.BuildPassword()
}

// DirSize returns the total size in bytes of all files under path.
func (c *Common) DirSize(path string) (int64, error) {
	return fileops.DirSize(path)
}

// EstimatedTimeRemaining projects the remaining transfer time, formatted
// as a compact duration string.
func (c *Common) EstimatedTimeRemaining(bytesSoFar, totalBytes int64, elapsed time.Duration) (string, error) {
	return util.EstimatedTimeRemaining(bytesSoFar, totalBytes, elapsed)
}

// FormatSeconds formats a second count as a compact duration string.
func (c *Common) FormatSeconds(seconds any) (string, error) {
	return util.FormatSeconds(seconds)
}

// GetAvailablePort returns a bindable loopback TCP port in the range.
func (c *Common) GetAvailablePort(minPort, maxPort int) (int, error) {
	return util.GetAvailablePort(minPort, maxPort)
}

// GetResourcePath returns the path of filename in the share directory.
func (c *Common) GetResourcePath(filename string) (string, error) {
	return c.Resolver.ResourcePath(filename)
}

// GetTorPaths returns the per-platform Tor binary and support file paths.
func (c *Common) GetTorPaths() (platform.TorPaths, error) {
	return c.Resolver.TorPaths()
}

// HumanReadableFilesize formats a byte count with binary units.
func (c *Common) HumanReadableFilesize(size float64) string {
	return util.HumanReadableFilesize(size)
}

// Log writes a timestamped line through the facade's logger.
func (c *Common) Log(module string, fn any, msg ...string) {
	c.Logger.Log(module, fn, msg...)
}

// SetVerbose toggles debug logging.
func (c *Common) SetVerbose(v bool) {
	c.Logger.SetVerbose(v)
}
