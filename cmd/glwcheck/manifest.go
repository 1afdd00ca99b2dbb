package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/glw"
)

// Manifest lists the programs to check.
type Manifest struct {
	// Renderer overrides the renderer string of the software driver.
	// Program binaries only load on a driver with the same string.
	Renderer string          `yaml:"renderer,omitempty"`
	Programs []ProgramConfig `yaml:"programs"`

	// dir is the directory shader paths are relative to.
	dir string
}

// ProgramConfig names the WGSL files of one program. Either Compute or
// both Vertex and Fragment must be set.
type ProgramConfig struct {
	Name     string `yaml:"name"`
	Vertex   string `yaml:"vertex,omitempty"`
	Fragment string `yaml:"fragment,omitempty"`
	Compute  string `yaml:"compute,omitempty"`
}

// LoadError reports a manifest that cannot be read or is malformed.
type LoadError struct {
	File    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	msg := e.Message
	if e.File != "" {
		msg = e.File + ": " + msg
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *LoadError) Unwrap() error { return e.Cause }

// ParseManifest parses a manifest. Shader paths resolve against dir.
func ParseManifest(data []byte, dir string) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, &LoadError{Message: "failed to parse YAML", Cause: err}
	}
	if len(m.Programs) == 0 {
		return nil, &LoadError{Message: "manifest lists no programs"}
	}
	seen := make(map[string]bool, len(m.Programs))
	for i, p := range m.Programs {
		if p.Name == "" {
			return nil, &LoadError{Message: fmt.Sprintf("program %d has no name", i)}
		}
		if seen[p.Name] {
			return nil, &LoadError{Message: fmt.Sprintf("program %q listed twice", p.Name)}
		}
		seen[p.Name] = true
		if err := p.validate(); err != nil {
			return nil, &LoadError{Message: fmt.Sprintf("program %q", p.Name), Cause: err}
		}
	}
	m.dir = dir
	return &m, nil
}

// LoadManifest reads and parses the manifest at path.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{File: path, Message: "failed to read file", Cause: err}
	}
	m, err := ParseManifest(data, filepath.Dir(path))
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.File = path
		}
		return nil, err
	}
	return m, nil
}

func (p ProgramConfig) validate() error {
	switch {
	case p.Compute != "" && (p.Vertex != "" || p.Fragment != ""):
		return errors.New("compute cannot be combined with vertex or fragment")
	case p.Compute != "":
		return nil
	case p.Vertex == "" || p.Fragment == "":
		return errors.New("needs vertex and fragment, or compute")
	}
	return nil
}

// stage is one shader file of a program.
type stage struct {
	Kind glw.ShaderKind
	Path string
}

// stages lists the shader files of p in pipeline order.
func (p ProgramConfig) stages() []stage {
	if p.Compute != "" {
		return []stage{{glw.ShaderKindCompute, p.Compute}}
	}
	return []stage{
		{glw.ShaderKindVertex, p.Vertex},
		{glw.ShaderKindFragment, p.Fragment},
	}
}

// resolve returns path relative to the manifest directory.
func (m *Manifest) resolve(path string) string {
	if filepath.IsAbs(path) || m.dir == "" {
		return path
	}
	return filepath.Join(m.dir, path)
}
