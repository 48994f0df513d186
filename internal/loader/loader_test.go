package loader

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveRelativeToWorkingDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.ucg"), []byte("let x = 1;"), 0o644); err != nil {
		t.Fatal(err)
	}
	l := New(dir, nil)
	got, err := l.Resolve("a.ucg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want, _ := filepath.Abs(filepath.Join(dir, "a.ucg"))
	if got != want {
		t.Errorf("got %s want %s", got, want)
	}
}

func TestResolveFallsBackToSearchPaths(t *testing.T) {
	workDir := t.TempDir()
	searchDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(searchDir, "b.ucg"), []byte("let x = 1;"), 0o644); err != nil {
		t.Fatal(err)
	}
	l := New(workDir, []string{searchDir})
	got, err := l.Resolve("b.ucg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want, _ := filepath.Abs(filepath.Join(searchDir, "b.ucg"))
	if got != want {
		t.Errorf("got %s want %s", got, want)
	}
}

func TestResolveMissingFails(t *testing.T) {
	l := New(t.TempDir(), nil)
	if _, err := l.Resolve("missing.ucg"); err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}

func TestResolveNormalizesForwardSlashes(t *testing.T) {
	workDir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(workDir, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(workDir, "sub", "c.ucg"), []byte("let x = 1;"), 0o644); err != nil {
		t.Fatal(err)
	}
	l := New(workDir, nil)
	got, err := l.Resolve("sub/c.ucg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want, _ := filepath.Abs(filepath.Join(workDir, "sub", "c.ucg"))
	if got != want {
		t.Errorf("got %s want %s", got, want)
	}
}
