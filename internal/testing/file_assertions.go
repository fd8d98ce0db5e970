package testing

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"testing"
)

// FileAssertions provides utilities for asserting file system state in tests
type FileAssertions struct {
	t       *testing.T
	baseDir string
}

// NewFileAssertions creates a new file assertions helper
func NewFileAssertions(t *testing.T, baseDir string) *FileAssertions {
	return &FileAssertions{
		t:       t,
		baseDir: baseDir,
	}
}

func (fa *FileAssertions) full(relativePath string) string {
	return filepath.Join(fa.baseDir, filepath.FromSlash(relativePath))
}

// AssertDirExists validates that a directory exists
func (fa *FileAssertions) AssertDirExists(relativePath string) *FileAssertions {
	fa.t.Helper()
	fullPath := fa.full(relativePath)
	if stat, err := os.Stat(fullPath); os.IsNotExist(err) {
		fa.t.Errorf("Expected directory to exist: %s", fullPath)
	} else if err == nil && !stat.IsDir() {
		fa.t.Errorf("Expected %s to be a directory, but it's a file", fullPath)
	}
	return fa
}

// AssertDirsExist validates every path with AssertDirExists.
func (fa *FileAssertions) AssertDirsExist(relativePaths ...string) *FileAssertions {
	fa.t.Helper()
	for _, p := range relativePaths {
		fa.AssertDirExists(p)
	}
	return fa
}

// AssertTree validates that the base directory contains exactly the given
// entries (files and directories, slash-separated, any order).
func (fa *FileAssertions) AssertTree(expected ...string) *FileAssertions {
	fa.t.Helper()
	want := append([]string(nil), expected...)
	sort.Strings(want)
	got := fa.Entries()

	if len(got) != len(want) {
		fa.t.Errorf("Expected %d entries under %s, got %d\nwant: %v\ngot:  %v", len(want), fa.baseDir, len(got), want, got)
		return fa
	}
	for i := range want {
		if got[i] != want[i] {
			fa.t.Errorf("Unexpected tree under %s\nwant: %v\ngot:  %v", fa.baseDir, want, got)
			break
		}
	}
	return fa
}

// AssertEmpty validates that the base directory has no entries.
func (fa *FileAssertions) AssertEmpty() *FileAssertions {
	fa.t.Helper()
	return fa.AssertTree()
}

// Entries lists every entry below the base directory, sorted.
func (fa *FileAssertions) Entries() []string {
	fa.t.Helper()
	var out []string
	err := filepath.WalkDir(fa.baseDir, func(p string, _ fs.DirEntry, err error) error {
		if err != nil || p == fa.baseDir {
			return err
		}
		rel, err := filepath.Rel(fa.baseDir, p)
		if err != nil {
			return err
		}
		out = append(out, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		fa.t.Fatalf("Failed to walk %s: %v", fa.baseDir, err)
	}
	sort.Strings(out)
	return out
}

// WriteFile creates a regular file (and its parent directories) below the base directory.
func (fa *FileAssertions) WriteFile(relativePath, content string) *FileAssertions {
	fa.t.Helper()
	fullPath := fa.full(relativePath)
	if err := os.MkdirAll(filepath.Dir(fullPath), testDirPermissions); err != nil {
		fa.t.Fatalf("Failed to create parent of %s: %v", fullPath, err)
	}
	if err := os.WriteFile(fullPath, []byte(content), testFilePermissions); err != nil {
		fa.t.Fatalf("Failed to write %s: %v", fullPath, err)
	}
	return fa
}

// SkipIfRoot skips tests that rely on permission checks, which root bypasses.
func SkipIfRoot(t *testing.T) {
	t.Helper()
	if os.Geteuid() == 0 {
		t.Skip("permission checks are bypassed for root")
	}
}
