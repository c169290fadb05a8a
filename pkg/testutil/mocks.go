// Package testutil holds helpers shared by the step tests.
package testutil

import (
	"io/fs"
	"strings"
	"time"
)

// ContainsDetail checks if any detail string contains the given substring.
func ContainsDetail(details []string, substr string) bool {
	for _, d := range details {
		if strings.Contains(d, substr) {
			return true
		}
	}
	return false
}

// FileInfo is a minimal fs.FileInfo for stat doubles.
type FileInfo struct {
	NameValue  string
	IsDirValue bool
}

func (f FileInfo) Name() string       { return f.NameValue }
func (f FileInfo) Size() int64        { return 0 }
func (f FileInfo) Mode() fs.FileMode  { return 0o755 }
func (f FileInfo) IsDir() bool        { return f.IsDirValue }
func (f FileInfo) Sys() interface{}   { return nil }
func (f FileInfo) ModTime() time.Time { return time.Unix(0, 0) }

// StatFS answers Stat from a fixed set of paths. The value reports whether
// the path is a directory.
type StatFS map[string]bool

// Stat returns fs.ErrNotExist for unknown paths.
func (s StatFS) Stat(name string) (fs.FileInfo, error) {
	isDir, ok := s[name]
	if !ok {
		return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrNotExist}
	}
	return FileInfo{NameValue: name, IsDirValue: isDir}, nil
}
