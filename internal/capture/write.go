package capture

import (
	"errors"
	"os"
	"path/filepath"
)

// WriteFile replaces path with data. The bytes go to a temporary file in the
// same directory which is renamed over path once fully written, so a failed
// write never leaves a truncated image behind.
func WriteFile(path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return &IOError{Op: "create", Path: path, Err: err}
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			_ = f.Close()
			if rerr := os.Remove(tmp); rerr != nil && !errors.Is(rerr, os.ErrNotExist) {
				err = errors.Join(err, rerr)
			}
		}
	}()
	if _, err := f.Write(data); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	if err := f.Sync(); err != nil {
		return &IOError{Op: "sync", Path: path, Err: err}
	}
	if err := f.Chmod(0o644); err != nil {
		return &IOError{Op: "chmod", Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &IOError{Op: "close", Path: path, Err: err}
	}
	if err := os.Rename(tmp, path); err != nil {
		return &IOError{Op: "rename", Path: path, Err: err}
	}
	return nil
}
