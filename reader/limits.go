package reader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/hazyhaar/officepipe/oferr"
)

// Limits caps how much of a file a single extraction pass will scan.
// Exceeding an item-count limit truncates with a warning; exceeding the
// byte limit fails before the codec is invoked.
type Limits struct {
	MaxSlides   int
	MaxSheets   int
	MaxFileSize int64
}

func (l *Limits) defaults() {
	if l.MaxSlides <= 0 {
		l.MaxSlides = 500
	}
	if l.MaxSheets <= 0 {
		l.MaxSheets = 100
	}
	if l.MaxFileSize <= 0 {
		l.MaxFileSize = 100 * 1024 * 1024
	}
}

// checkFile verifies existence, regularity and the size cap before any
// codec touches the file.
func checkFile(path string, maxBytes int64) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return oferr.New(oferr.FileNotFound,
				fmt.Sprintf("file not found: %s", path),
				map[string]any{"file_path": path})
		}
		return oferr.New(oferr.CorruptedFile,
			fmt.Sprintf("file is not readable: %s", path),
			map[string]any{"file_path": path, "error": err.Error()})
	}
	if !info.Mode().IsRegular() {
		return oferr.New(oferr.ValidationError,
			fmt.Sprintf("path is not a regular file: %s", path),
			map[string]any{"file_path": path})
	}
	if info.Size() > maxBytes {
		sizeMB := float64(info.Size()) / (1024 * 1024)
		maxMB := float64(maxBytes) / (1024 * 1024)
		return oferr.New(oferr.CorruptedFile,
			fmt.Sprintf("file size %.2fMB exceeds the %.0fMB limit: %s", sizeMB, maxMB, path),
			map[string]any{
				"file_path":       path,
				"file_size_bytes": info.Size(),
				"max_size_bytes":  maxBytes,
			})
	}
	return nil
}

// corrupted wraps a codec or traversal error as a CorruptedFile failure,
// preserving the underlying message.
func corrupted(path string, err error) error {
	return oferr.New(oferr.CorruptedFile,
		fmt.Sprintf("file is corrupted or unreadable: %s: %v", path, err),
		map[string]any{"file_path": path, "error": err.Error()})
}
