package filesystem

import (
	"fmt"
	"io"
	"path/filepath"
)

// Mobile is a FileSystem for the mobile environment, where the
// notion of current directory is not reliable and every access
// uses absolute path.
var Mobile = &AbsPathFileSystem{Backend: Desktop}

// AbsPathFileSystem completes relative paths with CurrentDir before access.
// filepath.Abs is used when CurrentDir is empty.
// OSFileSystem is used when Backend is nil.
type AbsPathFileSystem struct {
	CurrentDir string
	Backend    FileSystem
}

func (absfs *AbsPathFileSystem) ResolvePath(fpath string) (string, error) {
	if filepath.IsAbs(fpath) {
		return fpath, nil
	}
	switch {
	case absfs.CurrentDir == "":
		return filepath.Abs(fpath)
	case filepath.IsAbs(absfs.CurrentDir):
		return filepath.Join(absfs.CurrentDir, fpath), nil
	default:
		return "", fmt.Errorf("AbsPathFileSystem: CurrentDir is not absolute path: %s", absfs.CurrentDir)
	}
}

func (absfs *AbsPathFileSystem) backend() FileSystem {
	if absfs.Backend == nil {
		absfs.Backend = &OSFileSystem{MaxFileSize: DefaultMaxFileSize}
	}
	return absfs.Backend
}

func (absfs *AbsPathFileSystem) Load(fpath string) (io.ReadCloser, error) {
	p, err := absfs.ResolvePath(fpath)
	if err != nil {
		return nil, fmt.Errorf("AbsPathFileSystem.Load: %w", err)
	}
	return absfs.backend().Load(p)
}

func (absfs *AbsPathFileSystem) Exist(fpath string) bool {
	p, err := absfs.ResolvePath(fpath)
	if err != nil {
		return false
	}
	return absfs.backend().Exist(p)
}

func (absfs *AbsPathFileSystem) Store(fpath string) (io.WriteCloser, error) {
	p, err := absfs.ResolvePath(fpath)
	if err != nil {
		return nil, fmt.Errorf("AbsPathFileSystem.Store: %w", err)
	}
	return absfs.backend().Store(p)
}
