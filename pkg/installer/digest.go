package installer

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/zeebo/blake3"
)

// Files abstracts the manifest and stamp file access for testability.
type Files interface {
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte) error
}

// RealFiles implements Files using the real filesystem.
type RealFiles struct{}

func (r *RealFiles) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

func (r *RealFiles) WriteFile(name string, data []byte) error {
	return os.WriteFile(name, data, 0o644)
}

// Digest returns the hex BLAKE3 digest of the manifest at path.
func Digest(files Files, path string) (string, error) {
	data, err := files.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read manifest: %w", err)
	}
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// readStamp returns the digest recorded by the last successful install, or "".
func readStamp(files Files, path string) string {
	data, err := files.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
