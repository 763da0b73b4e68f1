package config

import (
	"os"
	"path"
	"path/filepath"
)

// FileSystem is where Load looks for configuration files. Names are
// slash separated on every platform.
type FileSystem interface {
	ReadFile(name string) ([]byte, error)
}

// Dir serves configuration files from one directory of the native file
// system. The command line tool roots it at the file system root so a
// --config path is read as given; names never resolve outside of it.
// An empty Dir means the working directory.
type Dir string

// ReadFile reads name below the directory.
func (d Dir) ReadFile(name string) ([]byte, error) {
	root := string(d)
	if root == "" {
		root = "."
	}
	return os.ReadFile(filepath.Join(root, filepath.FromSlash(clean(name))))
}

// MapFS holds configuration files in memory, keyed by clean slash
// separated paths starting with "/". Tests and embedders use it to hand
// Load a config without touching disk.
type MapFS map[string]string

// ReadFile returns the config stored under name, or os.ErrNotExist so
// that Load falls back to the defaults.
func (fs MapFS) ReadFile(name string) ([]byte, error) {
	content, ok := fs[clean(name)]
	if !ok {
		return nil, os.ErrNotExist
	}
	return []byte(content), nil
}

// clean roots name at "/" so ".." cannot climb above it.
func clean(name string) string {
	return path.Clean("/" + name)
}
