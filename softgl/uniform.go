package softgl

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/gogpu/glw/internal/glconst"
)

// uniformSlot is one active uniform of a linked program. Its location is
// its index in program.uniforms.
type uniformSlot struct {
	name string
	typ  uint32
	// value holds the components; float components are stored as their
	// IEEE 754 bits.
	value [16]uint32
}

// linkUniforms merges the uniforms of all stages. A name declared by more
// than one stage must have the same type in each.
func linkUniforms(stages map[uint32]*module) ([]uniformSlot, error) {
	var slots []uniformSlot
	owner := make(map[string]uint32)
	var problems []string
	for _, kind := range stageOrder {
		mod, ok := stages[kind]
		if !ok {
			continue
		}
		for _, u := range mod.uniforms {
			first, seen := owner[u.Name]
			if !seen {
				owner[u.Name] = kind
				slots = append(slots, uniformSlot{name: u.Name, typ: u.Type})
				continue
			}
			for _, s := range slots {
				if s.name == u.Name && s.typ != u.Type {
					problems = append(problems, fmt.Sprintf("error: uniform %q has different types in the %s and %s shaders",
						u.Name, kindName(first), kindName(kind)))
				}
			}
		}
	}
	if len(problems) > 0 {
		return nil, errors.New(strings.Join(problems, "\n"))
	}
	return slots, nil
}

// components returns the number of values a uniform type holds and
// whether they are floats.
func components(typ uint32) (int, bool) {
	switch typ {
	case glconst.INT:
		return 1, false
	case glconst.INT_VEC2:
		return 2, false
	case glconst.INT_VEC3:
		return 3, false
	case glconst.INT_VEC4:
		return 4, false
	case glconst.FLOAT:
		return 1, true
	case glconst.FLOAT_VEC2:
		return 2, true
	case glconst.FLOAT_VEC3:
		return 3, true
	case glconst.FLOAT_VEC4:
		return 4, true
	case glconst.FLOAT_MAT4:
		return 16, true
	default:
		return 0, false
	}
}

// linkedProgram returns prog if it is a linked program and records the
// error OpenGL raises otherwise. Caller holds d.mu.
func (d *Driver) linkedProgram(prog uint32) (*program, bool) {
	p, ok := d.lookupProgram(prog)
	if !ok {
		return nil, false
	}
	if !p.linked {
		d.setError(glconst.INVALID_OPERATION)
		return nil, false
	}
	return p, true
}

// GetAttribLocation implements glGetAttribLocation.
func (d *Driver) GetAttribLocation(prog uint32, name string) int32 {
	d.mu.Lock()
	defer d.mu.Unlock()

	p, ok := d.linkedProgram(prog)
	if !ok {
		return -1
	}
	vs := p.stages[glconst.VERTEX_SHADER]
	if vs == nil || strings.HasPrefix(name, "gl_") {
		return -1
	}
	for _, a := range vs.attributes {
		if a.Name == name {
			return int32(a.Location)
		}
	}
	return -1
}

// GetUniformLocation implements glGetUniformLocation. Uniforms whose type
// no glProgramUniform* entry point can set have no location.
func (d *Driver) GetUniformLocation(prog uint32, name string) int32 {
	d.mu.Lock()
	defer d.mu.Unlock()

	p, ok := d.linkedProgram(prog)
	if !ok {
		return -1
	}
	for i, u := range p.uniforms {
		if u.name == name && u.typ != 0 {
			return int32(i)
		}
	}
	return -1
}

// uniform resolves location for a glProgramUniform* call that writes n
// components of type typ. ok is false for location -1, which OpenGL
// silently ignores, and after recording an error. Caller holds d.mu.
func (d *Driver) uniform(prog uint32, location int32, typ uint32, n int) (*uniformSlot, bool) {
	p, ok := d.linkedProgram(prog)
	if !ok || location == -1 || n == 0 {
		return nil, false
	}
	if location < 0 || int(location) >= len(p.uniforms) {
		d.setError(glconst.INVALID_OPERATION)
		return nil, false
	}
	u := &p.uniforms[location]
	want, _ := components(typ)
	if u.typ != typ || n != want {
		d.setError(glconst.INVALID_OPERATION)
		return nil, false
	}
	return u, true
}

func (d *Driver) setInts(prog uint32, location int32, typ uint32, value []int32) {
	d.mu.Lock()
	defer d.mu.Unlock()

	u, ok := d.uniform(prog, location, typ, len(value))
	if !ok {
		return
	}
	for i, v := range value {
		u.value[i] = uint32(v)
	}
}

func (d *Driver) setFloats(prog uint32, location int32, typ uint32, value []float32) {
	d.mu.Lock()
	defer d.mu.Unlock()

	u, ok := d.uniform(prog, location, typ, len(value))
	if !ok {
		return
	}
	for i, v := range value {
		u.value[i] = math.Float32bits(v)
	}
}

// ProgramUniform1iv implements glProgramUniform1iv.
func (d *Driver) ProgramUniform1iv(prog uint32, location int32, value []int32) {
	d.setInts(prog, location, glconst.INT, value)
}

func (d *Driver) ProgramUniform2iv(prog uint32, location int32, value []int32) {
	d.setInts(prog, location, glconst.INT_VEC2, value)
}

func (d *Driver) ProgramUniform3iv(prog uint32, location int32, value []int32) {
	d.setInts(prog, location, glconst.INT_VEC3, value)
}

func (d *Driver) ProgramUniform4iv(prog uint32, location int32, value []int32) {
	d.setInts(prog, location, glconst.INT_VEC4, value)
}

// ProgramUniform1fv implements glProgramUniform1fv.
func (d *Driver) ProgramUniform1fv(prog uint32, location int32, value []float32) {
	d.setFloats(prog, location, glconst.FLOAT, value)
}

func (d *Driver) ProgramUniform2fv(prog uint32, location int32, value []float32) {
	d.setFloats(prog, location, glconst.FLOAT_VEC2, value)
}

func (d *Driver) ProgramUniform3fv(prog uint32, location int32, value []float32) {
	d.setFloats(prog, location, glconst.FLOAT_VEC3, value)
}

func (d *Driver) ProgramUniform4fv(prog uint32, location int32, value []float32) {
	d.setFloats(prog, location, glconst.FLOAT_VEC4, value)
}

// ProgramUniformMatrix4fv implements glProgramUniformMatrix4fv. With
// transpose the value is read in row-major order.
func (d *Driver) ProgramUniformMatrix4fv(prog uint32, location int32, transpose bool, value []float32) {
	if transpose && len(value) == 16 {
		t := make([]float32, 16)
		for r := range 4 {
			for c := range 4 {
				t[c*4+r] = value[r*4+c]
			}
		}
		value = t
	}
	d.setFloats(prog, location, glconst.FLOAT_MAT4, value)
}

// readable resolves location for glGetUniform*. Caller holds d.mu.
func (d *Driver) readable(prog uint32, location int32) (*uniformSlot, bool) {
	p, ok := d.linkedProgram(prog)
	if !ok {
		return nil, false
	}
	if location < 0 || int(location) >= len(p.uniforms) || p.uniforms[location].typ == 0 {
		d.setError(glconst.INVALID_OPERATION)
		return nil, false
	}
	return &p.uniforms[location], true
}

// GetUniformiv implements glGetUniformiv.
func (d *Driver) GetUniformiv(prog uint32, location int32, out []int32) {
	d.mu.Lock()
	defer d.mu.Unlock()

	u, ok := d.readable(prog, location)
	if !ok {
		return
	}
	n, float := components(u.typ)
	for i := range min(n, len(out)) {
		if float {
			out[i] = int32(math.Float32frombits(u.value[i]))
		} else {
			out[i] = int32(u.value[i])
		}
	}
}

// GetUniformfv implements glGetUniformfv.
func (d *Driver) GetUniformfv(prog uint32, location int32, out []float32) {
	d.mu.Lock()
	defer d.mu.Unlock()

	u, ok := d.readable(prog, location)
	if !ok {
		return
	}
	n, float := components(u.typ)
	for i := range min(n, len(out)) {
		if float {
			out[i] = math.Float32frombits(u.value[i])
		} else {
			out[i] = float32(int32(u.value[i]))
		}
	}
}
