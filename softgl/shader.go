package softgl

import (
	"fmt"
	"strings"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/glw/internal/glconst"
)

type shader struct {
	kind     uint32
	source   string
	compiled bool
	log      string
	mod      *module

	// attached counts the programs this shader is attached to. A shader
	// deleted while attached lingers until the last detach.
	attached      int
	deletePending bool
}

func (d *Driver) shader(name uint32) (*shader, bool) {
	v, ok := d.programObjects.get(name)
	if !ok {
		return nil, false
	}
	s, ok := v.(*shader)
	return s, ok
}

// lookupShader returns the shader called name or records the error OpenGL
// raises: INVALID_VALUE for an unknown name, INVALID_OPERATION for a
// program name. Caller holds d.mu.
func (d *Driver) lookupShader(name uint32) (*shader, bool) {
	v, ok := d.programObjects.get(name)
	if !ok {
		d.setError(glconst.INVALID_VALUE)
		return nil, false
	}
	s, ok := v.(*shader)
	if !ok {
		d.setError(glconst.INVALID_OPERATION)
		return nil, false
	}
	return s, true
}

// CreateShader implements glCreateShader. Geometry and tessellation shaders
// can be created but never compile.
func (d *Driver) CreateShader(kind uint32) uint32 {
	d.mu.Lock()
	defer d.mu.Unlock()

	switch kind {
	case glconst.VERTEX_SHADER, glconst.FRAGMENT_SHADER, glconst.COMPUTE_SHADER,
		glconst.GEOMETRY_SHADER, glconst.TESS_CONTROL_SHADER, glconst.TESS_EVALUATION_SHADER:
	default:
		d.setError(glconst.INVALID_ENUM)
		return 0
	}
	name := d.programObjects.alloc(&shader{kind: kind})
	if name == 0 {
		d.setError(glconst.OUT_OF_MEMORY)
		return 0
	}
	d.log.Debug("softgl: shader created", "shader", name, "kind", kindName(kind))
	return name
}

// ShaderSource implements glShaderSource. The strings are concatenated.
func (d *Driver) ShaderSource(name uint32, sources []string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	s, ok := d.lookupShader(name)
	if !ok {
		return
	}
	s.source = strings.Join(sources, "")
}

// CompileShader implements glCompileShader. Modules are cached by kind and
// source, so recompiling an identical source is a cache hit.
func (d *Driver) CompileShader(name uint32) {
	d.mu.Lock()
	defer d.mu.Unlock()

	s, ok := d.lookupShader(name)
	if !ok {
		return
	}
	desc := gputypes.ShaderModuleDescriptor{
		Label:  fmt.Sprintf("%s shader %d", kindName(s.kind), name),
		Source: gputypes.ShaderSourceWGSL{Code: s.source},
	}
	mod, err := d.modules.GetOrCreate(moduleKey{kind: s.kind, source: s.source}, func() (*module, error) {
		return compileModule(s.kind, desc, d.opt.validate)
	})
	if err != nil {
		s.compiled = false
		s.mod = nil
		s.log = err.Error()
		d.log.Debug("softgl: compile failed", "shader", name, "error", err)
		return
	}
	s.compiled = true
	s.mod = mod
	s.log = ""
	d.log.Debug("softgl: compiled", "shader", name, "entry", mod.entry.Name, "spirv_bytes", len(mod.spirv))
}

// GetShaderiv implements glGetShaderiv.
func (d *Driver) GetShaderiv(name, pname uint32) int32 {
	d.mu.Lock()
	defer d.mu.Unlock()

	s, ok := d.lookupShader(name)
	if !ok {
		return 0
	}
	switch pname {
	case glconst.SHADER_TYPE:
		return int32(s.kind)
	case glconst.DELETE_STATUS:
		return glBool(s.deletePending)
	case glconst.COMPILE_STATUS:
		return glBool(s.compiled)
	case glconst.INFO_LOG_LENGTH:
		return logLength(s.log)
	case glconst.SHADER_SOURCE_LENGTH:
		return logLength(s.source)
	default:
		d.setError(glconst.INVALID_ENUM)
		return 0
	}
}

// GetShaderInfoLog implements glGetShaderInfoLog.
func (d *Driver) GetShaderInfoLog(name uint32, buf []byte) int32 {
	d.mu.Lock()
	defer d.mu.Unlock()

	s, ok := d.lookupShader(name)
	if !ok {
		return 0
	}
	return copyLog(buf, s.log)
}

// DeleteShader implements glDeleteShader. 0 is ignored.
func (d *Driver) DeleteShader(name uint32) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if name == 0 {
		return
	}
	s, ok := d.lookupShader(name)
	if !ok {
		return
	}
	if s.attached > 0 {
		s.deletePending = true
		return
	}
	d.freeShader(name)
}

func (d *Driver) freeShader(name uint32) {
	d.programObjects.release(name)
	delete(d.labels, labelKey{glconst.SHADER, name})
	d.log.Debug("softgl: shader deleted", "shader", name)
}

// ShaderModule describes the compiled module of a shader as a WebGPU shader
// module with SPIR-V source. It reports false if the shader is not compiled.
func (d *Driver) ShaderModule(name uint32) (gputypes.ShaderModuleDescriptor, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	s, ok := d.shader(name)
	if !ok || !s.compiled {
		return gputypes.ShaderModuleDescriptor{}, false
	}
	return gputypes.ShaderModuleDescriptor{
		Label:  s.mod.entry.Name,
		Source: gputypes.ShaderSourceSPIRV{Code: words(s.mod.spirv)},
	}, true
}

// TranslateGLSL returns the GLSL 4.30 equivalent of a compiled shader.
func (d *Driver) TranslateGLSL(name uint32) (string, error) {
	d.mu.Lock()
	s, ok := d.shader(name)
	var mod *module
	if ok && s.compiled {
		mod = s.mod
	}
	d.mu.Unlock()

	if mod == nil {
		return "", fmt.Errorf("softgl: shader %d is not compiled", name)
	}
	return translateGLSL(mod)
}

func glBool(b bool) int32 {
	if b {
		return glconst.TRUE
	}
	return glconst.FALSE
}

// logLength is the GL length of s: its size plus the NUL, or 0 if empty.
func logLength(s string) int32 {
	if s == "" {
		return 0
	}
	return int32(len(s) + 1)
}

// copyLog writes as much of log as fits in buf followed by a NUL and
// returns the number of bytes written before the NUL.
func copyLog(buf []byte, log string) int32 {
	if len(buf) == 0 {
		return 0
	}
	n := copy(buf[:len(buf)-1], log)
	buf[n] = 0
	return int32(n)
}
