// Package filesystem abstracts file access for the configuration layer,
// so that desktop and mobile can resolve paths differently.
package filesystem

import (
	"io"

	"github.com/noteui/androidutil/util/log"
)

// FileSystem loads and stores files.
type FileSystem interface {
	Loader

	// Store creates or truncates the file and returns its writer.
	Store(filepath string) (io.WriteCloser, error)
}

// Loader loads file content by path.
type Loader interface {
	// Load returns reader for the file content, or nil with loading error.
	Load(filepath string) (reader io.ReadCloser, err error)

	// Exist reports whether filepath exists.
	Exist(filepath string) bool
}

// PathResolver resolves file path on the filesystem.
type PathResolver interface {
	ResolvePath(path string) (string, error)
}

// NopPathResolver returns path as is.
type NopPathResolver struct{}

func (NopPathResolver) ResolvePath(path string) (string, error) { return path, nil }

// Default is the FileSystem used by exported functions.
var Default FileSystem = Desktop

func Load(filepath string) (io.ReadCloser, error) {
	log.Debugf("FileSystem.Load: %s", filepath)
	return Default.Load(filepath)
}

func Exist(filepath string) bool {
	return Default.Exist(filepath)
}

func Store(filepath string) (io.WriteCloser, error) {
	log.Debugf("FileSystem.Store: %s", filepath)
	return Default.Store(filepath)
}

// ResolvePath resolves path under Default.
// The path is returned as is when Default is not a PathResolver.
func ResolvePath(path string) (string, error) {
	return ResolvePathFS(Default, path)
}

func ResolvePathFS(fs FileSystem, path string) (string, error) {
	if pr, ok := fs.(PathResolver); ok {
		return pr.ResolvePath(path)
	}
	return path, nil
}

// OpenWatcher creates Watcher which resolves watched paths by Default.
// The returned watcher must be closed after use.
func OpenWatcher() (Watcher, error) {
	if pr, ok := Default.(PathResolver); ok {
		return newWatcher(pr)
	}
	log.Debug("Default FileSystem not implement PathResolver. Use NopPathResolver instead of that.")
	return newWatcher(NopPathResolver{})
}
