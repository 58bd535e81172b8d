// Package filex holds the small file system helpers used by the client.
package filex

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
)

// ErrTooLarge is returned by ReadUpload for files over the size limit.
var ErrTooLarge = errors.New("file too large")

// EnsureSubdDir creates dirName (relative to the working directory unless it
// is absolute) readable only by the current user, and returns its path.
func EnsureSubdDir(dirName string) (string, error) {
	dir := dirName
	if !filepath.IsAbs(dir) {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getwd: %w", err)
		}
		dir = filepath.Join(cwd, dirName)
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	return dir, nil
}

// ReadUpload reads a file of at most maxBytes and sniffs its content type.
func ReadUpload(path string, maxBytes int64) ([]byte, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxBytes+1))
	if err != nil {
		return nil, "", fmt.Errorf("read %s: %w", path, err)
	}
	if int64(len(data)) > maxBytes {
		return nil, "", fmt.Errorf("%s: %w (limit %d bytes)", path, ErrTooLarge, maxBytes)
	}

	return data, http.DetectContentType(data), nil
}
