package cli

import (
	"os"
	"path/filepath"
	"testing"

	"OnionShare-NG/internal/errors"
	"OnionShare-NG/internal/platform"
)

func TestParsePlatform(t *testing.T) {
	tests := []struct {
		name     string
		expected platform.Platform
	}{
		{"linux", platform.Linux},
		{"darwin", platform.Darwin},
		{"macos", platform.Darwin},
		{"windows", platform.Windows},
	}

	for _, tt := range tests {
		p, err := parsePlatform(tt.name)
		if err != nil {
			t.Errorf("parsePlatform(%q) error: %v", tt.name, err)
			continue
		}
		if p != tt.expected {
			t.Errorf("parsePlatform(%q) = %v; want %v", tt.name, p, tt.expected)
		}
	}

	if _, err := parsePlatform("beos"); !errors.Is(err, errors.ErrUnknownPlatform) {
		t.Errorf("parsePlatform(beos) error = %v; want ErrUnknownPlatform", err)
	}

	// Empty means the host platform
	if _, err := parsePlatform(""); err != nil {
		t.Errorf("parsePlatform(\"\") error: %v", err)
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		name     string
		expected platform.Mode
	}{
		{"development", platform.Development},
		{"frozen", platform.Frozen},
		{"installed", platform.Installed},
	}

	for _, tt := range tests {
		m, err := parseMode(tt.name)
		if err != nil {
			t.Errorf("parseMode(%q) error: %v", tt.name, err)
			continue
		}
		if m != tt.expected {
			t.Errorf("parseMode(%q) = %v; want %v", tt.name, m, tt.expected)
		}
	}

	_, err := parseMode("portable")
	var valErr *errors.ValidationError
	if !errors.As(err, &valErr) {
		t.Errorf("parseMode(portable) error = %v; want ValidationError", err)
	}
}

func TestCollectFiles(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "docs")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{
		filepath.Join(dir, "a.txt"),
		filepath.Join(sub, "b.txt"),
		filepath.Join(sub, "c.txt"),
	} {
		if err := os.WriteFile(name, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	files, root, err := collectFiles([]string{dir})
	if err != nil {
		t.Fatalf("collectFiles() error: %v", err)
	}
	if root != filepath.Dir(dir) {
		t.Errorf("collectFiles() root = %q; want %q", root, filepath.Dir(dir))
	}
	if len(files) != 3 {
		t.Errorf("collectFiles() found %d files; want 3", len(files))
	}

	// A single plain file is passed through untouched
	files, _, err = collectFiles([]string{filepath.Join(dir, "a.txt")})
	if err != nil {
		t.Fatalf("collectFiles(file) error: %v", err)
	}
	if len(files) != 1 || files[0] != filepath.Join(dir, "a.txt") {
		t.Errorf("collectFiles(file) = %v; want just a.txt", files)
	}

	if _, _, err := collectFiles([]string{filepath.Join(dir, "missing.txt")}); err == nil {
		t.Error("collectFiles(missing) = nil error; want stat failure")
	}
}
