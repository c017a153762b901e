package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureDir creates the directory if it does not exist yet.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// SaveUpload writes the uploaded bytes under a sanitized version of
// the original filename.
func SaveUpload(uploadDir, filename string, data []byte) error {
	path := filepath.Join(uploadDir, SanitizeFilename(filename))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// RemoveUpload deletes the stored copy if present.
func RemoveUpload(uploadDir, filename string) {
	path := filepath.Join(uploadDir, SanitizeFilename(filename))
	if _, err := os.Stat(path); err == nil {
		os.Remove(path)
	}
}

// SanitizeFilename replaces any character outside the safe set with an
// underscore so the name is usable as an on-disk path component.
func SanitizeFilename(filename string) string {
	out := []rune(filename)
	for i, r := range out {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_' || r == '.' {
			continue
		}
		out[i] = '_'
	}
	return string(out)
}
