// Package version extracts interpreter versions from command output.
package version

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// versionRegex matches version patterns like 1.2.3, v1.2, 18, etc.
var versionRegex = regexp.MustCompile(`v?(\d+)(?:\.(\d+))?(?:\.(\d+))?`)

// Parse parses a version string such as "3.8" or "v3.11.4".
func Parse(s string) (*semver.Version, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty version string")
	}

	matches := versionRegex.FindStringSubmatch(s)
	if matches == nil || matches[0] != s {
		return nil, fmt.Errorf("invalid version format: %q", s)
	}

	return semver.NewVersion(s)
}

// Extract finds and parses the first version number in a string,
// e.g. "Python 3.11.4" yields 3.11.4.
func Extract(s string) (*semver.Version, error) {
	match := versionRegex.FindString(s)
	if match == "" {
		return nil, fmt.Errorf("no version found in: %q", s)
	}

	v, err := semver.NewVersion(match)
	if err != nil {
		return nil, fmt.Errorf("parse version %q: %w", match, err)
	}
	return v, nil
}

// AtLeast reports whether v >= minimum.
func AtLeast(v, minimum *semver.Version) bool {
	return !v.LessThan(minimum)
}
