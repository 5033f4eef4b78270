// Package fileops provides the filesystem side of share preparation:
// recursive directory size accounting and zip staging of the files to
// share. This core only reads the filesystem except for the archives it is
// explicitly asked to write.
package fileops

import (
	"io/fs"
	"os"
	"path/filepath"

	"OnionShare-NG/internal/errors"
)

// DirSize returns the total apparent size in bytes of every regular file
// under path, recursing into subdirectories. Each directory entry is
// visited exactly once. Symbolic links are not followed: a link contributes
// whatever the walk reports for the link entry itself, never its target
// tree.
func DirSize(path string) (int64, error) {
	if _, err := os.Lstat(path); err != nil {
		if os.IsNotExist(err) {
			return 0, errors.NewFileError("stat", path, errors.ErrFileNotFound)
		}
		return 0, errors.NewFileError("stat", path, err)
	}

	var total int64
	err := filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return errors.NewFileError("walk", p, err)
		}
		if !d.Type().IsRegular() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return errors.NewFileError("stat", p, err)
		}
		total += info.Size()
		return nil
	})
	if err != nil {
		return 0, err
	}
	return total, nil
}
