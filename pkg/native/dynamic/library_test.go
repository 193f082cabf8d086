//go:build darwin || linux || freebsd || windows

package dynamic

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestOpenMissingLibrary(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultLibraryName())

	lib, err := Open(path)
	if err == nil {
		lib.Close()
		t.Fatal("Expected an error for a missing library")
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("Expected error to name the path, got %v", err)
	}
}

func TestDefaultLibraryName(t *testing.T) {
	name := DefaultLibraryName()
	if !strings.Contains(name, "akbridge") {
		t.Errorf("Expected akbridge in library name, got %s", name)
	}
}

func TestSymbolTable(t *testing.T) {
	l := &Library{}
	seen := make(map[string]bool)
	for _, s := range l.symbols() {
		if !strings.HasPrefix(s.name, "akb_") {
			t.Errorf("Expected akb_ prefix, got %s", s.name)
		}
		if seen[s.name] {
			t.Errorf("Duplicate symbol %s", s.name)
		}
		seen[s.name] = true
		if s.fptr == nil {
			t.Errorf("Missing binding for %s", s.name)
		}
	}
	if len(seen) != 81 {
		t.Errorf("Expected 81 bridge symbols, got %d", len(seen))
	}
}

func TestCloseIdempotent(t *testing.T) {
	l := &Library{}
	if err := l.Close(); err != nil {
		t.Errorf("Expected nil error closing an unopened library, got %v", err)
	}
}
