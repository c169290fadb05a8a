package venv

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// FileStater provides file system stat operations for testing.
type FileStater interface {
	Stat(path string) (os.FileInfo, error)
}

// RealFileStater uses actual os.Stat.
type RealFileStater struct{}

func (r *RealFileStater) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

// binDir returns the scripts directory of a runtime rooted at dir.
func binDir(dir string) string {
	if runtime.GOOS == "windows" {
		return filepath.Join(dir, "Scripts")
	}
	return filepath.Join(dir, "bin")
}

func sameKey(a, b string) bool {
	if runtime.GOOS == "windows" {
		return strings.EqualFold(a, b)
	}
	return a == b
}

// lookup returns the value of key in an environment list.
func lookup(environ []string, key string) (string, bool) {
	for i := len(environ) - 1; i >= 0; i-- {
		k, v, ok := strings.Cut(environ[i], "=")
		if ok && sameKey(k, key) {
			return v, true
		}
	}
	return "", false
}

// activatedEnviron does what bin/activate does to a shell: export
// VIRTUAL_ENV, put the runtime's bin first on PATH and drop PYTHONHOME.
// base is not modified.
func activatedEnviron(base []string, dir string) []string {
	oldPath, _ := lookup(base, "PATH")

	env := make([]string, 0, len(base)+2)
	for _, kv := range base {
		k, _, _ := strings.Cut(kv, "=")
		if sameKey(k, "PATH") || sameKey(k, "VIRTUAL_ENV") || sameKey(k, "PYTHONHOME") {
			continue
		}
		env = append(env, kv)
	}

	path := binDir(dir)
	if oldPath != "" {
		path += string(os.PathListSeparator) + oldPath
	}
	return append(env, "VIRTUAL_ENV="+dir, "PATH="+path)
}
