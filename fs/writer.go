// Package fs provides file-based storage for fetched documentation.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/context7"
)

// LibraryToPath converts a library name or ID to a file name.
// Example: @upstash/redis → @upstash_redis.txt
func LibraryToPath(library string) string {
	return strings.ReplaceAll(library, "/", "_") + ".txt"
}

// FormatDocs prefixes documentation content with a heading naming the library.
func FormatDocs(library, content string) string {
	return "# Documentation for " + library + "\n\n" + content
}

// WriteFile writes content to path, replacing any existing file.
// Parent directories are not created.
func WriteFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0644)
}

// Ensure Writer implements context7.DocsWriter at compile time.
var _ context7.DocsWriter = (*Writer)(nil)

// Writer writes documentation as one text file per library in a directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteDocs writes content for library to disk and returns the file path.
// The base directory is created if needed; existing files are overwritten.
func (w *Writer) WriteDocs(ctx context.Context, library, content string) (string, error) {
	if library == "" {
		return "", context7.Errorf(context7.EINVALID, "library name required")
	}

	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return "", err
	}

	fullPath := filepath.Join(w.baseDir, LibraryToPath(library))
	if err := WriteFile(fullPath, FormatDocs(library, content)); err != nil {
		return "", err
	}
	return fullPath, nil
}
