// Package fsops provides the filesystem operations zap performs.
//
// All mutations go through the FS interface so the engine can be tested
// against fakes. Timestamp reads and writes follow the os.Chtimes
// convention: a zero time.Time means "leave that attribute unchanged",
// which maps to UTIME_OMIT at the syscall layer.
package fsops

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// FS abstracts the filesystem for planning snapshots and plan execution.
type FS interface {
	// Stat returns file info, following symlinks.
	Stat(path string) (os.FileInfo, error)

	// Lstat returns file info without following symlinks.
	Lstat(path string) (os.FileInfo, error)

	// Exists checks whether a path exists (following symlinks).
	Exists(path string) (bool, error)

	// MkdirAll creates a directory and all parents.
	MkdirAll(path string, perm os.FileMode) error

	// Create creates an empty file, truncating an existing one.
	Create(path string) error

	// WriteFile writes data to path, creating or truncating it.
	WriteFile(path string, data []byte, perm os.FileMode) error

	// Chtimes sets the access and/or modification time of a path. A zero
	// time leaves that attribute unchanged. With symlinkOnly the times are
	// applied to a symlink itself rather than its target.
	Chtimes(path string, atime, mtime time.Time, symlinkOnly bool) error

	// FileTimes extracts the access and modification times from a
	// metadata snapshot.
	FileTimes(fi os.FileInfo) (atime, mtime time.Time)
}

// RealFS implements FS against the real filesystem.
type RealFS struct{}

// NewRealFS creates a RealFS.
func NewRealFS() *RealFS {
	return &RealFS{}
}

// Stat returns file info, following symlinks.
func (fs *RealFS) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

// Lstat returns file info without following symlinks.
func (fs *RealFS) Lstat(path string) (os.FileInfo, error) {
	return os.Lstat(path)
}

// Exists checks whether a path exists.
func (fs *RealFS) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// MkdirAll creates a directory and all parents.
func (fs *RealFS) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// Create creates an empty file, truncating an existing one.
func (fs *RealFS) Create(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	return f.Close()
}

// WriteFile writes data to path, creating or truncating it.
func (fs *RealFS) WriteFile(path string, data []byte, perm os.FileMode) error {
	return os.WriteFile(path, data, perm)
}

// Chtimes sets the access and/or modification time of a path.
func (fs *RealFS) Chtimes(path string, atime, mtime time.Time, symlinkOnly bool) error {
	if symlinkOnly {
		return lchtimes(path, atime, mtime)
	}
	return os.Chtimes(path, atime, mtime)
}

// FileTimes extracts the access and modification times from file info.
func (fs *RealFS) FileTimes(fi os.FileInfo) (atime, mtime time.Time) {
	return accessTime(fi), fi.ModTime()
}

// ParentDir returns the parent directory of path, or "" when the path has
// no meaningful parent to create (current directory or a root).
func ParentDir(path string) string {
	parent := filepath.Dir(path)
	if parent == "." || parent == string(filepath.Separator) || parent == path {
		return ""
	}
	return parent
}
