// Package filecheck verifies that the application's files are in place.
package filecheck

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mumega/launchpad/pkg/check"
)

// Check verifies a set of files. Required files abort startup when missing;
// optional files only produce a warning.
type Check struct {
	Name     string     // result name, e.g. "Required files"
	Root     string     // directory relative paths are resolved against
	Paths    []string   // paths as shown to the operator
	Required bool       // missing file is fatal
	FS       FileSystem // injected for testing
}

// Required returns a fatal check over paths.
func Required(root string, paths []string, fsys FileSystem) *Check {
	return &Check{Name: "Required files", Root: root, Paths: paths, Required: true, FS: fsys}
}

// Optional returns a warning-only check for a single configuration file.
func Optional(root, path string, fsys FileSystem) *Check {
	return &Check{Name: "Configuration", Root: root, Paths: []string{path}, FS: fsys}
}

// Run stats each path in order and stops at the first required file that is missing.
func (c *Check) Run(_ context.Context) check.Result {
	result := check.Result{
		Name:  c.Name,
		Fatal: c.Required,
	}

	for _, p := range c.Paths {
		info, err := c.FS.Stat(c.resolve(p))
		if err != nil {
			if c.Required {
				return c.failMissing(&result, p, err)
			}
			if os.IsNotExist(err) {
				return result.Warn(fmt.Sprintf("%s not found, using defaults", p), err)
			}
			return result.Warn(fmt.Sprintf("%s not readable: %v", p, err), err)
		}

		if info.IsDir() {
			err := fmt.Errorf("%s is a directory", p)
			if c.Required {
				return result.Fail(fmt.Sprintf("Required file is a directory: %s", p), err)
			}
			return result.Warn(fmt.Sprintf("%s is a directory, using defaults", p), err)
		}

		result.AddDetailf("found: %s", p)
	}

	return result.Pass()
}

func (c *Check) failMissing(result *check.Result, p string, err error) check.Result {
	switch {
	case os.IsNotExist(err):
		return result.Fail(fmt.Sprintf("Required file missing: %s", p), fmt.Errorf("required file missing: %s: %w", p, err))
	case os.IsPermission(err):
		return result.Fail(fmt.Sprintf("Required file not readable: %s", p), err)
	default:
		return result.Failf("stat %s failed: %v", p, err)
	}
}

func (c *Check) resolve(p string) string {
	if filepath.IsAbs(p) || c.Root == "" {
		return p
	}
	return filepath.Join(c.Root, p)
}
