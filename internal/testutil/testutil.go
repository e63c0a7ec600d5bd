// Package testutil provides test helpers shared across packages.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFile creates a file with the given content in the specified
// directory, creating parent directories as needed, and returns its path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}

// FixturePath returns the absolute path to a test fixture by walking up
// from the test's working directory until tests/fixtures is found.
func FixturePath(t *testing.T, parts ...string) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}

	dir := wd
	for {
		fixturesPath := filepath.Join(dir, "tests", "fixtures")
		if _, err := os.Stat(fixturesPath); err == nil {
			return filepath.Join(append([]string{fixturesPath}, parts...)...)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatalf("could not find tests/fixtures directory from %s", wd)
		}
		dir = parent
	}
}
