package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDiskStore_Upload(t *testing.T) {
	dir := t.TempDir()
	store := NewDiskStore(dir)

	path, err := store.Upload(context.Background(), "resumes/123-jo-do-abcd1234.pdf", strings.NewReader("pdf bytes"))
	if err != nil {
		t.Fatalf("Upload() error: %v", err)
	}
	if !strings.HasPrefix(path, dir) {
		t.Errorf("path = %q, not under %q", path, dir)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("uploaded blob not retrievable: %v", err)
	}
	if string(content) != "pdf bytes" {
		t.Errorf("content = %q", content)
	}
}

func TestDiskStore_CreatesNestedDirectories(t *testing.T) {
	dir := t.TempDir()
	store := NewDiskStore(dir)

	path, err := store.Upload(context.Background(), "resumes/deep/key.pdf", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("Upload() error: %v", err)
	}
	if filepath.Dir(path) != filepath.Join(dir, "resumes", "deep") {
		t.Errorf("path = %q", path)
	}
}

func TestBuildResumeKey(t *testing.T) {
	now := time.Date(2026, 2, 10, 9, 30, 0, 0, time.UTC)

	key := BuildResumeKey("Jo", "Do", "my resume.PDF", now)
	if !strings.HasPrefix(key, "resumes/") {
		t.Errorf("key = %q, want resumes/ prefix", key)
	}
	if !strings.HasSuffix(key, ".pdf") {
		t.Errorf("key = %q, extension not lowercased and kept", key)
	}
	if !strings.Contains(key, "-jo-do-") {
		t.Errorf("key = %q, candidate name missing", key)
	}

	// Same inputs, same instant: the random suffix must still keep the
	// keys apart.
	other := BuildResumeKey("Jo", "Do", "my resume.PDF", now)
	if key == other {
		t.Error("two keys for identical inputs collided")
	}
}

func TestBuildResumeKey_SanitizesNames(t *testing.T) {
	key := BuildResumeKey("José / ..", "O'Brien", "cv.pdf", time.Now())
	base := strings.TrimPrefix(key, "resumes/")
	if strings.ContainsAny(base, " '/\\") {
		t.Errorf("key base = %q, unsafe characters survived", base)
	}

	empty := BuildResumeKey("...", "///", "cv.pdf", time.Now())
	if !strings.Contains(empty, "candidato") {
		t.Errorf("key = %q, want fallback slug for unusable names", empty)
	}
}
