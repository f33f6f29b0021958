// Package testutil holds helpers shared by package tests.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"
	"golang.org/x/tools/txtar"
)

// ExtractArchive writes every file of a txtar archive below a fresh temporary
// directory and returns that directory.
func ExtractArchive(t testing.TB, ar *txtar.Archive) string {
	t.Helper()
	dir := t.TempDir()
	for _, f := range ar.Files {
		path := filepath.Join(dir, filepath.FromSlash(f.Name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir for %s: %v", f.Name, err)
		}
		if err := os.WriteFile(path, f.Data, 0o644); err != nil {
			t.Fatalf("write %s: %v", f.Name, err)
		}
	}
	return dir
}

// LoadArchive parses a txtar file from disk.
func LoadArchive(t testing.TB, path string) *txtar.Archive {
	t.Helper()
	ar, err := txtar.ParseFile(path)
	if err != nil {
		t.Fatalf("parse archive %s: %v", path, err)
	}
	return ar
}

// Split separates archive files whose name starts with prefix from the rest.
// The prefixed files are returned keyed by name with the prefix removed.
func Split(ar *txtar.Archive, prefix string) (*txtar.Archive, map[string][]byte) {
	rest := &txtar.Archive{Comment: ar.Comment}
	picked := make(map[string][]byte)
	for _, f := range ar.Files {
		if name, ok := strings.CutPrefix(f.Name, prefix); ok {
			picked[name] = f.Data
			continue
		}
		rest.Files = append(rest.Files, f)
	}
	return rest, picked
}

// AssertText fails the test with a readable character diff when got differs from want.
func AssertText(t testing.TB, want, got string) {
	t.Helper()
	if want == got {
		return
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(want, got, false)
	t.Errorf("text mismatch (-want +got):\n%s", dmp.DiffPrettyText(diffs))
}
