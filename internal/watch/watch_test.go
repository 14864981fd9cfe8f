package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestReportsMatchingFile(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir, ".vert", ".frag")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0644); err != nil {
		t.Fatal(err)
	}
	target := filepath.Join(dir, "scene.frag")
	if err := os.WriteFile(target, []byte("void main() {}"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case name := <-w.Changes():
		if filepath.Base(name) != "scene.frag" {
			t.Errorf("changed file = %s, want scene.frag", name)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}
}

func TestCoalesces(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer w.Close()

	for i := 0; i < 20; i++ {
		name := filepath.Join(dir, "burst.vert")
		if err := os.WriteFile(name, []byte{byte(i)}, 0644); err != nil {
			t.Fatal(err)
		}
	}

	select {
	case <-w.Changes():
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}

	if n := len(w.Changes()); n > 1 {
		t.Errorf("%d notifications pending, want at most 1", n)
	}
}

func TestCloseClosesChanges(t *testing.T) {
	w, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	// Drain anything pending, then expect the channel to be closed.
	for range w.Changes() {
	}
}

func TestMissingDir(t *testing.T) {
	if _, err := New(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected error watching a missing directory")
	}
}
