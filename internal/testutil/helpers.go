// Package testutil provides reusable test utilities for birdwatch tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// TestEnv provides access to isolated test directories
type TestEnv struct {
	Home        string // Mocked HOME directory
	ProjectDir  string // Working directory for the test
	GlobalDir   string // ~/.birdwatch equivalent
	ProjectConf string // .birdwatch in the project
	t           *testing.T
}

// SetupTestEnv creates an isolated test environment with mocked HOME.
// Uses t.TempDir() for automatic cleanup and t.Setenv() for automatic env restoration.
func SetupTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	tmpHome := t.TempDir()
	tmpProject := t.TempDir()

	globalDir := filepath.Join(tmpHome, ".birdwatch")
	projectConf := filepath.Join(tmpProject, ".birdwatch")

	if err := os.MkdirAll(globalDir, 0755); err != nil {
		t.Fatalf("Failed to create global .birdwatch: %v", err)
	}

	// Set HOME to temp directory (auto-restored after test)
	t.Setenv("HOME", tmpHome)

	return &TestEnv{
		Home:        tmpHome,
		ProjectDir:  tmpProject,
		GlobalDir:   globalDir,
		ProjectConf: projectConf,
		t:           t,
	}
}

// Chdir switches into the project directory until the test ends.
func (e *TestEnv) Chdir() {
	e.t.Helper()

	orig, err := os.Getwd()
	if err != nil {
		e.t.Fatalf("Failed to get working directory: %v", err)
	}
	if err := os.Chdir(e.ProjectDir); err != nil {
		e.t.Fatalf("Failed to change to project directory: %v", err)
	}
	e.t.Cleanup(func() {
		if err := os.Chdir(orig); err != nil {
			e.t.Errorf("Failed to restore working directory: %v", err)
		}
	})
}

// Path resolves a project-relative path.
func (e *TestEnv) Path(rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(e.ProjectDir, rel)
}

// CreateFile creates a file with the given content in the test environment.
func (e *TestEnv) CreateFile(path, content string) {
	e.t.Helper()

	fullPath := e.Path(path)
	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		e.t.Fatalf("Failed to create directory %s: %v", dir, err)
	}

	if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
		e.t.Fatalf("Failed to write file %s: %v", fullPath, err)
	}
}

// CreateGlobalFile creates a file relative to the global .birdwatch directory.
func (e *TestEnv) CreateGlobalFile(relPath, content string) {
	e.t.Helper()
	e.CreateFile(filepath.Join(e.GlobalDir, relPath), content)
}

// ReadFile reads a file from the test environment.
func (e *TestEnv) ReadFile(path string) string {
	e.t.Helper()

	data, err := os.ReadFile(e.Path(path))
	if err != nil {
		e.t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(data)
}

// FileExists checks if a file exists in the test environment.
func (e *TestEnv) FileExists(path string) bool {
	e.t.Helper()

	_, err := os.Stat(e.Path(path))
	return err == nil
}

// ListDir returns the names of the entries in a project-relative directory.
func (e *TestEnv) ListDir(path string) []string {
	e.t.Helper()

	entries, err := os.ReadDir(e.Path(path))
	if err != nil {
		e.t.Fatalf("Failed to read directory %s: %v", path, err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names
}
