// Package security provides validation helpers for files Tincture reads and writes.
package security

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ErrSizeLimit is returned by LimitedReader once its budget is exhausted.
var ErrSizeLimit = errors.New("size limit exceeded")

// ValidateCatalogPath checks that a hue catalog path is usable: non-empty,
// free of NUL bytes and not pointing at a directory.
func ValidateCatalogPath(path string) error {
	if path == "" {
		return fmt.Errorf("empty catalog path")
	}
	for i := 0; i < len(path); i++ {
		if path[i] == 0 {
			return fmt.Errorf("catalog path contains a NUL byte")
		}
	}

	clean := filepath.Clean(path)
	info, err := os.Stat(clean)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// Allowed: the file may be about to be created.
			return nil
		}
		return fmt.Errorf("invalid catalog path: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("catalog path is a directory: %s", path)
	}
	return nil
}

// LimitedReader wraps an io.Reader and fails once more than a fixed number of
// bytes have been read, guarding against decompression bombs.
type LimitedReader struct {
	R         io.Reader
	Remaining int64
}

// NewLimitedReader creates a LimitedReader allowing at most maxBytes.
func NewLimitedReader(r io.Reader, maxBytes int64) *LimitedReader {
	return &LimitedReader{R: r, Remaining: maxBytes}
}

// Read implements io.Reader.
func (l *LimitedReader) Read(p []byte) (int, error) {
	if l.Remaining <= 0 {
		// Input that ends exactly at the limit is fine.
		var extra [1]byte
		if n, err := l.R.Read(extra[:]); n == 0 && errors.Is(err, io.EOF) {
			return 0, io.EOF
		}
		return 0, ErrSizeLimit
	}
	if int64(len(p)) > l.Remaining {
		p = p[:l.Remaining]
	}
	n, err := l.R.Read(p)
	l.Remaining -= int64(n)
	return n, err
}
