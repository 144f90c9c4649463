package runner

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDiscoverDefaults(t *testing.T) {
	dir := t.TempDir()
	goFile := writeFile(t, dir, "main.go", "package main\n")
	writeFile(t, dir, "README.md", "# readme\n")
	writeFile(t, dir, "notes.txt", "notes\n")

	files, err := Discover(context.Background(), Options{WorkingDir: dir})
	require.NoError(t, err)
	assert.Equal(t, []string{goFile}, files)
}

func TestDiscoverRecursesAndSorts(t *testing.T) {
	dir := t.TempDir()
	b := writeFile(t, dir, "b/b.go", "package b\n")
	a := writeFile(t, dir, "a/a.go", "package a\n")
	c := writeFile(t, dir, "c.go", "package c\n")

	files, err := Discover(context.Background(), Options{WorkingDir: dir})
	require.NoError(t, err)
	assert.Equal(t, []string{a, b, c}, files)
}

func TestDiscoverSkipsHidden(t *testing.T) {
	dir := t.TempDir()
	visible := writeFile(t, dir, "a.go", "package a\n")
	writeFile(t, dir, ".hidden.go", "package hidden\n")
	writeFile(t, dir, ".git/hooks.go", "package hooks\n")

	files, err := Discover(context.Background(), Options{WorkingDir: dir})
	require.NoError(t, err)
	assert.Equal(t, []string{visible}, files)
}

func TestDiscoverExcludeGlobs(t *testing.T) {
	dir := t.TempDir()
	kept := writeFile(t, dir, "app/main.go", "package main\n")
	writeFile(t, dir, "vendor/dep/dep.go", "package dep\n")
	writeFile(t, dir, "app/main_gen.go", "package main\n")

	files, err := Discover(context.Background(), Options{
		WorkingDir:   dir,
		ExcludeGlobs: []string{"vendor/**", "*_gen.go"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{kept}, files)
}

func TestDiscoverCustomExtensions(t *testing.T) {
	dir := t.TempDir()
	rb := writeFile(t, dir, "a.rb", "def a; end\n")
	writeFile(t, dir, "a.go", "package a\n")

	files, err := Discover(context.Background(), Options{
		WorkingDir: dir,
		Extensions: []string{".rb"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{rb}, files)
}

func TestDiscoverExplicitFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "x.go", "package x\n")

	files, err := Discover(context.Background(), Options{
		WorkingDir: dir,
		Paths:      []string{"x.go", "x.go"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{path}, files, "duplicates should be deduplicated")
}

func TestDiscoverMissingPath(t *testing.T) {
	_, err := Discover(context.Background(), Options{
		WorkingDir: t.TempDir(),
		Paths:      []string{"nope.go"},
	})
	require.Error(t, err)
}

func TestMatchGlob(t *testing.T) {
	tests := []struct {
		path    string
		pattern string
		want    bool
	}{
		{"main.go", "*.go", true},
		{"a/main.go", "*.go", true}, // basename fallback
		{"vendor/x/y.go", "vendor/**", true},
		{"src/vendor/y.go", "vendor/**", false},
		{"docs/gen/x.go", "**/gen", true},
		{"a/b/c.go", "**", true},
		{"a/b/c.go", "a/**/c.go", true},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"_"+tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, matchGlob(tt.path, tt.pattern))
		})
	}
}
