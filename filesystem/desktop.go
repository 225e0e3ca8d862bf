package filesystem

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Config files are small, anything beyond this is rejected.
const DefaultMaxFileSize = 1 * 1024 * 1024

// Desktop is a FileSystem for the desktop environment.
var Desktop = &OSFileSystem{MaxFileSize: DefaultMaxFileSize}

// OSFileSystem accesses files through package os.
type OSFileSystem struct {
	MaxFileSize int64 // in bytes, no limit when <= 0
}

func (osfs *OSFileSystem) ResolvePath(fpath string) (string, error) {
	return filepath.Clean(fpath), nil
}

func (osfs *OSFileSystem) Load(fpath string) (io.ReadCloser, error) {
	finfo, err := os.Stat(fpath)
	if err != nil {
		return nil, fmt.Errorf("can not fetch file info: %w", err)
	}
	if maxSize := osfs.MaxFileSize; maxSize > 0 && finfo.Size() > maxSize {
		return nil, fmt.Errorf("file(%s) is too large size(>%v) to load", fpath, maxSize)
	}
	return os.Open(fpath)
}

func (osfs *OSFileSystem) Exist(fpath string) bool {
	_, err := os.Stat(fpath)
	return err == nil
}

// Store creates parent directories of fpath if needed.
func (osfs *OSFileSystem) Store(fpath string) (io.WriteCloser, error) {
	if err := os.MkdirAll(filepath.Dir(fpath), 0755); err != nil {
		return nil, fmt.Errorf("can not create store directory: %w", err)
	}
	fp, err := os.Create(fpath)
	if err != nil {
		return nil, fmt.Errorf("can not create store file: %w", err)
	}
	return fp, nil
}
