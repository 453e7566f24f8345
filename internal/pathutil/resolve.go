// Package pathutil resolves caller-supplied paths against a workspace
// root and writes file content back to disk safely.
package pathutil

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// ErrOutsideWorkspace is returned by Resolve when the input path, once
// normalized, falls outside the workspace root.
var ErrOutsideWorkspace = errors.New("path escapes workspace root")

// Resolve expands a leading "~/", joins relative paths against root, and
// cleans the result. It returns ErrOutsideWorkspace if the cleaned path
// is not root itself or a descendant of it — a caller-supplied "../"
// cannot be used to read or write outside the workspace.
func Resolve(root, input string) (string, error) {
	if strings.IndexByte(input, 0) >= 0 {
		return "", errors.New("path contains a null byte")
	}

	path := input
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, path[2:])
	}

	var abs string
	if filepath.IsAbs(path) {
		abs = filepath.Clean(path)
	} else {
		abs = filepath.Join(root, path)
	}
	abs = filepath.Clean(abs)

	rel, err := filepath.Rel(filepath.Clean(root), abs)
	if err != nil {
		return "", err
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", ErrOutsideWorkspace
	}
	return abs, nil
}
