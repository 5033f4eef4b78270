package fileops

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"OnionShare-NG/internal/errors"
)

// writeFile creates a file of size bytes under dir.
func writeFile(t *testing.T, dir, name string, size int) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", name, err)
	}
	if err := os.WriteFile(path, bytes.Repeat([]byte("x"), size), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestDirSize(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.bin", 2048)
	writeFile(t, dir, "b.bin", 2048)
	writeFile(t, dir, filepath.Join("sub", "c.bin"), 1024)
	writeFile(t, dir, filepath.Join("sub", "deeper", "d.bin"), 1)

	total, err := DirSize(dir)
	if err != nil {
		t.Fatalf("DirSize() error: %v", err)
	}
	if total != 5121 {
		t.Errorf("DirSize() = %d; want 5121", total)
	}
}

func TestDirSizeEmpty(t *testing.T) {
	total, err := DirSize(t.TempDir())
	if err != nil {
		t.Fatalf("DirSize() error: %v", err)
	}
	if total != 0 {
		t.Errorf("DirSize(empty) = %d; want 0", total)
	}
}

func TestDirSizeSingleFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "only.bin", 1024)

	total, err := DirSize(path)
	if err != nil {
		t.Fatalf("DirSize() error: %v", err)
	}
	if total != 1024 {
		t.Errorf("DirSize(file) = %d; want 1024", total)
	}
}

func TestDirSizeMissing(t *testing.T) {
	_, err := DirSize(filepath.Join(t.TempDir(), "nope"))
	if !errors.Is(err, errors.ErrFileNotFound) {
		t.Errorf("DirSize(missing) error = %v; want ErrFileNotFound", err)
	}
}

func TestDirSizeIgnoresSymlinkTargets(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "real.bin", 4096)

	other := t.TempDir()
	writeFile(t, other, "outside.bin", 1<<20)
	if err := os.Symlink(other, filepath.Join(dir, "link")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	total, err := DirSize(dir)
	if err != nil {
		t.Fatalf("DirSize() error: %v", err)
	}
	// The linked directory's contents must not be counted
	if total != 4096 {
		t.Errorf("DirSize() = %d; want 4096", total)
	}
}
