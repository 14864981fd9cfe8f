package shaders

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedLoadAll(t *testing.T) {
	programs, err := Embedded().LoadAll()
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(programs) != len(Names) {
		t.Fatalf("got %d programs, want %d", len(programs), len(Names))
	}
	for _, name := range Names {
		p := programs[name]
		if !strings.HasPrefix(p.Vertex, "#version 410 core") {
			t.Errorf("%s.vert missing version line", name)
		}
		if !strings.HasPrefix(p.Fragment, "#version 410 core") {
			t.Errorf("%s.frag missing version line", name)
		}
	}
}

func TestSceneUniforms(t *testing.T) {
	p, err := Embedded().Load(Scene)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	for _, u := range []string{"mvp", "matrixShadow", "mN"} {
		if !strings.Contains(p.Vertex, "uniform mat") || !strings.Contains(p.Vertex, u) {
			t.Errorf("scene.vert does not declare %s", u)
		}
	}
	for _, u := range []string{"camPos", "lightPos", "spotDir", "lightFovRad", "shadowMap"} {
		if !strings.Contains(p.Fragment, u) {
			t.Errorf("scene.frag does not declare %s", u)
		}
	}
}

func TestDirOverridesSingleFile(t *testing.T) {
	dir := t.TempDir()
	custom := "#version 410 core\n// custom hint\nvoid main() {}\n"
	if err := os.WriteFile(filepath.Join(dir, "hint.frag"), []byte(custom), 0644); err != nil {
		t.Fatal(err)
	}

	p, err := Dir(dir).Load(Hint)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p.Fragment != custom {
		t.Errorf("fragment not overridden: %q", p.Fragment)
	}

	embedded, _ := Embedded().Load(Hint)
	if p.Vertex != embedded.Vertex {
		t.Error("vertex should fall back to the embedded source")
	}
}

func TestLoadUnknown(t *testing.T) {
	_, err := Embedded().Load("bloom")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("err = %v, want fs.ErrNotExist", err)
	}
}
