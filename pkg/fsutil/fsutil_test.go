package fsutil

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write test file: %v", err)
	}
	return path
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "a.go", "package a\n")

	content, info, err := ReadFile(context.Background(), path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(content) != "package a\n" {
		t.Errorf("content = %q", content)
	}
	if info.Path != path {
		t.Errorf("info.Path = %q, want %q", info.Path, path)
	}
	if info.Size != int64(len(content)) {
		t.Errorf("info.Size = %d, want %d", info.Size, len(content))
	}
}

func TestReadFileNotFound(t *testing.T) {
	_, _, err := ReadFile(context.Background(), filepath.Join(t.TempDir(), "missing.go"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestReadFileDirectory(t *testing.T) {
	_, _, err := ReadFile(context.Background(), t.TempDir())
	if !errors.Is(err, ErrIsDirectory) {
		t.Errorf("err = %v, want ErrIsDirectory", err)
	}
}

func TestReadFileCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := ReadFile(ctx, "anything")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestCheckModified(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "a.go", "package a\n")

	_, info, err := ReadFile(context.Background(), path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	modified, err := CheckModified(context.Background(), info)
	if err != nil {
		t.Fatalf("CheckModified: %v", err)
	}
	if modified {
		t.Error("unmodified file reported as modified")
	}

	// Rewrite with different content of the same length but a newer mtime.
	time.Sleep(10 * time.Millisecond)
	if err := os.WriteFile(path, []byte("package b\n"), 0o644); err != nil {
		t.Fatalf("rewrite: %v", err)
	}

	modified, err = CheckModified(context.Background(), info)
	if err != nil {
		t.Fatalf("CheckModified: %v", err)
	}
	if !modified {
		t.Error("modified file not detected")
	}
}

func TestCheckModifiedDeleted(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "a.go", "package a\n")

	_, info, err := ReadFile(context.Background(), path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if err := os.Remove(path); err != nil {
		t.Fatalf("remove: %v", err)
	}

	modified, err := CheckModified(context.Background(), info)
	if err != nil {
		t.Fatalf("CheckModified: %v", err)
	}
	if !modified {
		t.Error("deleted file should count as modified")
	}
}

func TestCheckModifiedNilInfo(t *testing.T) {
	_, err := CheckModified(context.Background(), nil)
	if !errors.Is(err, ErrNilFileInfo) {
		t.Errorf("err = %v, want ErrNilFileInfo", err)
	}
	_, err = CheckModifiedQuick(context.Background(), nil)
	if !errors.Is(err, ErrNilFileInfo) {
		t.Errorf("quick err = %v, want ErrNilFileInfo", err)
	}
}
