package writers

import (
	"os"
	"path/filepath"
)

// SaveMap writes p to path in the given map format, creating the parent
// directory if needed.
func SaveMap(path, format string, p MapPayload) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := fh.Close(); err == nil {
			err = cerr
		}
	}()
	return WriteMap(format, fh, p)
}
