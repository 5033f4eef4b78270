package fileops

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"OnionShare-NG/internal/util"
)

// ProgressFunc is called during file operations to report progress.
// Parameters: progress (0.0-1.0 completion fraction), info (human-readable status).
type ProgressFunc func(progress float32, info string)

// StatusFunc is called to report status messages (e.g., "Compressing...").
type StatusFunc func(status string)

// CancelFunc is called periodically to check if the user requested cancellation.
// Return true to abort the operation.
type CancelFunc func() bool

// ZipOptions configures zip archive creation.
type ZipOptions struct {
	Files      []string // Files to include
	RootDir    string   // Root directory for relative entry names
	OutputPath string   // Output archive path
	Compress   bool     // Use Deflate compression (Store otherwise)
	Progress   ProgressFunc
	Status     StatusFunc
	Cancel     CancelFunc
}

// CreateZip stages the given files into a zip archive so a whole selection
// can be shared as a single download. On error or cancellation, the partial
// output file is removed.
func CreateZip(opts ZipOptions) error {
	file, err := os.Create(opts.OutputPath)
	if err != nil {
		return fmt.Errorf("create zip file: %w", err)
	}

	writer := zip.NewWriter(file)

	// Helper to cleanup on error
	cleanup := func() {
		_ = writer.Close()
		_ = file.Close()
		_ = os.Remove(opts.OutputPath)
	}

	if opts.Status != nil {
		if opts.Compress {
			opts.Status("Compressing...")
		} else {
			opts.Status("Archiving...")
		}
	}

	// Calculate total size for progress
	var totalSize int64
	for _, path := range opts.Files {
		stat, err := os.Stat(path)
		if err != nil {
			cleanup()
			return fmt.Errorf("stat %s: %w", path, err)
		}
		totalSize += stat.Size()
	}

	var done int64
	for i, path := range opts.Files {
		if opts.Cancel != nil && opts.Cancel() {
			cleanup()
			return errors.New("operation cancelled")
		}

		if opts.Progress != nil && totalSize > 0 {
			opts.Progress(float32(done)/float32(totalSize), fmt.Sprintf("%d/%d", i+1, len(opts.Files)))
		}

		stat, err := os.Stat(path)
		if err != nil {
			cleanup()
			return fmt.Errorf("stat %s: %w", path, err)
		}

		header, err := zip.FileInfoHeader(stat)
		if err != nil {
			cleanup()
			return fmt.Errorf("create header for %s: %w", path, err)
		}

		rel, err := filepath.Rel(opts.RootDir, path)
		if err != nil {
			cleanup()
			return fmt.Errorf("relative name for %s: %w", path, err)
		}
		header.Name = filepath.ToSlash(rel)

		if opts.Compress {
			header.Method = zip.Deflate
		} else {
			header.Method = zip.Store
		}

		entry, err := writer.CreateHeader(header)
		if err != nil {
			cleanup()
			return fmt.Errorf("create entry for %s: %w", path, err)
		}

		fin, err := os.Open(path)
		if err != nil {
			cleanup()
			return fmt.Errorf("open %s: %w", path, err)
		}

		buf := util.GetMiBBuffer()
		for {
			if opts.Cancel != nil && opts.Cancel() {
				util.PutMiBBuffer(buf)
				_ = fin.Close()
				cleanup()
				return errors.New("operation cancelled")
			}

			n, readErr := fin.Read(buf)
			if n > 0 {
				if _, err := entry.Write(buf[:n]); err != nil {
					util.PutMiBBuffer(buf)
					_ = fin.Close()
					cleanup()
					return fmt.Errorf("write to zip: %w", err)
				}
				done += int64(n)
				if opts.Progress != nil && totalSize > 0 {
					opts.Progress(float32(done)/float32(totalSize), fmt.Sprintf("%d/%d", i+1, len(opts.Files)))
				}
			}
			if readErr != nil {
				if readErr == io.EOF {
					break
				}
				util.PutMiBBuffer(buf)
				_ = fin.Close()
				cleanup()
				return fmt.Errorf("read %s: %w", path, readErr)
			}
		}
		util.PutMiBBuffer(buf)

		if err := fin.Close(); err != nil {
			cleanup()
			return fmt.Errorf("close %s: %w", path, err)
		}
	}

	if err := writer.Close(); err != nil {
		cleanup()
		return fmt.Errorf("finalize zip: %w", err)
	}
	if err := file.Close(); err != nil {
		_ = os.Remove(opts.OutputPath)
		return fmt.Errorf("close zip file: %w", err)
	}
	return nil
}
