// Package storage holds the resume blob stores: a local-disk store for
// development and tests and a Google Drive store for production. Both
// upload under a caller-chosen key and return a retrievable reference.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DiskStore writes blobs under a base directory. The returned reference
// is the file path.
type DiskStore struct {
	baseDir string
}

func NewDiskStore(baseDir string) *DiskStore {
	return &DiskStore{baseDir: baseDir}
}

func (s *DiskStore) Upload(_ context.Context, key string, content io.Reader) (string, error) {
	path := filepath.Join(s.baseDir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create uploads directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, content); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return path, nil
}

// BuildResumeKey derives a collision-resistant upload key from the
// submission time and the candidate's name, with a short random suffix
// so two same-named candidates in the same instant still get distinct
// keys. The original filename only contributes its extension.
func BuildResumeKey(name, surname, filename string, now time.Time) string {
	ext := strings.ToLower(filepath.Ext(filename))
	suffix := uuid.NewString()[:8]
	return fmt.Sprintf("resumes/%d-%s-%s-%s%s",
		now.UnixNano(), slug(name), slug(surname), suffix, ext)
}

// slug lowercases and strips everything outside [a-z0-9-] so names are
// safe in file keys regardless of what the form carried.
func slug(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteRune('-')
		}
	}
	if b.Len() == 0 {
		return "candidato"
	}
	return b.String()
}
