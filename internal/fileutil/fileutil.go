// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// OutputExtension is the extension given to converted documents.
const OutputExtension = ".docx"

// dirPermissions is used for output directories created on demand (rwxr-xr-x).
const dirPermissions = 0o755

// Sentinel errors for file utility operations.
var (
	ErrExtensionEmpty         = errors.New("extension cannot be empty")
	ErrExtensionPathTraversal = errors.New("extension contains path separator or null byte")
	ErrNoExtension            = errors.New("input file has no extension")
	ErrOutputIsInput          = errors.New("output path would overwrite the input")
)

// WriteTempFile creates a temporary file with the given content and extension.
// Returns the file path and a cleanup function to remove the file.
func WriteTempFile(content, extension string) (path string, cleanup func(), err error) {
	if err := ValidateExtension(extension); err != nil {
		return "", nil, err
	}

	tmpFile, err := os.CreateTemp("", "txt2docx-*."+extension)
	if err != nil {
		return "", nil, fmt.Errorf("creating temp file: %w", err)
	}

	path = tmpFile.Name()
	cleanup = func() { _ = os.Remove(path) }

	if _, writeErr := tmpFile.WriteString(content); writeErr != nil {
		_ = tmpFile.Close()
		cleanup()
		return "", nil, fmt.Errorf("writing temp file: %w", writeErr)
	}

	if closeErr := tmpFile.Close(); closeErr != nil {
		cleanup()
		return "", nil, fmt.Errorf("closing temp file: %w", closeErr)
	}

	return path, cleanup, nil
}

// ValidateExtension checks that the extension is safe for use in temp file names.
func ValidateExtension(extension string) error {
	if extension == "" {
		return ErrExtensionEmpty
	}
	if strings.ContainsAny(extension, "/\\\x00") {
		return ErrExtensionPathTraversal
	}
	return nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "layout" -> false (name)
//   - "./layout.yaml" -> true (relative path)
//   - "C:\config\layout.toml" -> true (Windows)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// DeriveOutputPath replaces the last extension of the input file name with
// .docx. When outDir is non-empty the result is placed there instead of next
// to the input.
//
// Examples:
//   - "notes.txt", "" -> "notes.docx"
//   - "dir/a.b.txt", "" -> "dir/a.b.docx"
//   - "dir/notes.txt", "out" -> "out/notes.docx"
//   - "README", "" -> ErrNoExtension
//   - ".profile", "" -> ErrNoExtension (a leading dot is not an extension)
func DeriveOutputPath(inputPath, outDir string) (string, error) {
	base := filepath.Base(inputPath)
	ext := filepath.Ext(base)
	if ext == "" || ext == base {
		return "", fmt.Errorf("%w: %s", ErrNoExtension, inputPath)
	}

	var out string
	if outDir != "" {
		out = filepath.Join(outDir, strings.TrimSuffix(base, ext)+OutputExtension)
	} else {
		out = strings.TrimSuffix(inputPath, ext) + OutputExtension
	}

	if filepath.Clean(out) == filepath.Clean(inputPath) {
		return "", fmt.Errorf("%w: %s", ErrOutputIsInput, inputPath)
	}
	return out, nil
}

// CleanPromptInput strips surrounding whitespace and double quotes from a
// path typed or pasted at the prompt. File managers wrap paths containing
// spaces in quotes when copying.
func CleanPromptInput(s string) string {
	return strings.TrimSpace(strings.Trim(strings.TrimSpace(s), `"`))
}

// EnsureDir creates dir and any missing parents.
func EnsureDir(dir string) error {
	if dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, dirPermissions); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}
	return nil
}
