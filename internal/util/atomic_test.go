package util

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAtomicWriteFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("creates file with content", func(t *testing.T) {
		path := filepath.Join(dir, "index.html")
		if err := AtomicWriteFile(path, []byte("<html></html>"), 0644); err != nil {
			t.Fatalf("AtomicWriteFile: %v", err)
		}
		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("reading back: %v", err)
		}
		if string(got) != "<html></html>" {
			t.Errorf("content = %q", got)
		}
	})

	t.Run("overwrites existing file", func(t *testing.T) {
		path := filepath.Join(dir, "overwrite.html")
		if err := AtomicWriteFile(path, []byte("old"), 0644); err != nil {
			t.Fatalf("first write: %v", err)
		}
		if err := AtomicWriteFile(path, []byte("new"), 0644); err != nil {
			t.Fatalf("second write: %v", err)
		}
		got, _ := os.ReadFile(path)
		if string(got) != "new" {
			t.Errorf("content = %q, want %q", got, "new")
		}
	})

	t.Run("leaves no temp files behind", func(t *testing.T) {
		path := filepath.Join(dir, "clean.html")
		if err := AtomicWriteFile(path, []byte("x"), 0644); err != nil {
			t.Fatalf("AtomicWriteFile: %v", err)
		}
		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatal(err)
		}
		for _, e := range entries {
			if e.Name() != "index.html" && e.Name() != "overwrite.html" && e.Name() != "clean.html" {
				t.Errorf("unexpected leftover file %q", e.Name())
			}
		}
	})

	t.Run("fails for missing directory", func(t *testing.T) {
		if err := AtomicWriteFile(filepath.Join(dir, "nope", "x.html"), []byte("x"), 0644); err == nil {
			t.Error("expected error for missing directory")
		}
	})
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"short", 10, "short"},
		{"exactly-ten", 11, "exactly-ten"},
		{"a longer label that gets cut", 10, "a longe..."},
		{"", 5, ""},
		{"abc", 0, ""},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.n); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}
