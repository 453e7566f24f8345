package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteFileAtomic writes content to fullPath via a temp file in the same
// directory followed by a rename, so a reader never observes a partially
// written file. If fullPath does not yet exist, its parent directories
// are created and the new file gets mode 0644; otherwise the existing
// file's mode is preserved.
func WriteFileAtomic(fullPath, content string) error {
	info, statErr := os.Stat(fullPath)
	if statErr != nil {
		if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
			return fmt.Errorf("create parent directory: %w", err)
		}
	}

	tmp, err := os.CreateTemp(filepath.Dir(fullPath), ".fuzzy-edit-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if info != nil {
		_ = os.Chmod(tmpPath, info.Mode())
	} else {
		_ = os.Chmod(tmpPath, 0644)
	}

	if err := os.Rename(tmpPath, fullPath); err != nil {
		return fmt.Errorf("atomic rename: %w", err)
	}
	return nil
}
