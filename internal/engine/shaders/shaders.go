// Package shaders provides the GLSL sources of the viewer's programs,
// embedded in the binary and optionally overridden from a directory.
package shaders

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

//go:embed glsl/*.vert glsl/*.frag
var embedded embed.FS

// Program names.
const (
	Scene = "scene" // Lit, shadowed geometry
	Depth = "depth" // Shadow-map depth pass
	Hint  = "hint"  // Light position marker
)

// Names lists every program the renderer builds.
var Names = []string{Scene, Depth, Hint}

// Program is the source pair of one shader program.
type Program struct {
	Name     string
	Vertex   string
	Fragment string
}

// Source loads program sources.
type Source struct {
	override fs.FS
	base     fs.FS
}

// Embedded returns a source backed only by the embedded files.
func Embedded() *Source {
	base, _ := fs.Sub(embedded, "glsl")
	return &Source{base: base}
}

// Dir returns a source that reads dir first and falls back to the
// embedded file when a shader is missing there.
func Dir(dir string) *Source {
	s := Embedded()
	if dir != "" {
		s.override = os.DirFS(dir)
	}
	return s
}

// Load reads the vertex and fragment source of one program.
func (s *Source) Load(name string) (Program, error) {
	vert, err := s.read(name + ".vert")
	if err != nil {
		return Program{}, err
	}
	frag, err := s.read(name + ".frag")
	if err != nil {
		return Program{}, err
	}
	return Program{Name: name, Vertex: vert, Fragment: frag}, nil
}

// LoadAll reads every program in Names.
func (s *Source) LoadAll() (map[string]Program, error) {
	programs := make(map[string]Program, len(Names))
	for _, name := range Names {
		p, err := s.Load(name)
		if err != nil {
			return nil, err
		}
		programs[name] = p
	}
	return programs, nil
}

func (s *Source) read(file string) (string, error) {
	if s.override != nil {
		data, err := fs.ReadFile(s.override, file)
		if err == nil {
			return string(data), nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("reading shader %s: %w", file, err)
		}
	}
	data, err := fs.ReadFile(s.base, file)
	if err != nil {
		return "", fmt.Errorf("reading shader %s: %w", file, err)
	}
	return string(data), nil
}
