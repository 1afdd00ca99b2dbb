package softgl

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/gogpu/glw/internal/glconst"
)

// stageOrder is the order stages are checked and serialized in.
var stageOrder = []uint32{glconst.VERTEX_SHADER, glconst.FRAGMENT_SHADER, glconst.COMPUTE_SHADER}

type program struct {
	attached []uint32
	linked   bool
	log      string
	// stages is the snapshot taken at the last successful link.
	stages   map[uint32]*module
	uniforms []uniformSlot
	binary   []byte
	// validated is the result of the last glValidateProgram.
	validated bool

	deletePending bool
}

func (d *Driver) program(name uint32) (*program, bool) {
	v, ok := d.programObjects.get(name)
	if !ok {
		return nil, false
	}
	p, ok := v.(*program)
	return p, ok
}

// lookupProgram is the program counterpart of lookupShader.
func (d *Driver) lookupProgram(name uint32) (*program, bool) {
	v, ok := d.programObjects.get(name)
	if !ok {
		d.setError(glconst.INVALID_VALUE)
		return nil, false
	}
	p, ok := v.(*program)
	if !ok {
		d.setError(glconst.INVALID_OPERATION)
		return nil, false
	}
	return p, true
}

// CreateProgram implements glCreateProgram.
func (d *Driver) CreateProgram() uint32 {
	d.mu.Lock()
	defer d.mu.Unlock()

	name := d.programObjects.alloc(&program{})
	if name == 0 {
		d.setError(glconst.OUT_OF_MEMORY)
		return 0
	}
	d.log.Debug("softgl: program created", "program", name)
	return name
}

// AttachShader implements glAttachShader.
func (d *Driver) AttachShader(prog, sh uint32) {
	d.mu.Lock()
	defer d.mu.Unlock()

	p, ok := d.lookupProgram(prog)
	if !ok {
		return
	}
	s, ok := d.lookupShader(sh)
	if !ok {
		return
	}
	if slices.Contains(p.attached, sh) {
		d.setError(glconst.INVALID_OPERATION)
		return
	}
	p.attached = append(p.attached, sh)
	s.attached++
}

// DetachShader implements glDetachShader.
func (d *Driver) DetachShader(prog, sh uint32) {
	d.mu.Lock()
	defer d.mu.Unlock()

	p, ok := d.lookupProgram(prog)
	if !ok {
		return
	}
	s, ok := d.lookupShader(sh)
	if !ok {
		return
	}
	d.detach(p, sh, s)
}

// detach removes sh from p. Caller holds d.mu.
func (d *Driver) detach(p *program, sh uint32, s *shader) {
	i := slices.Index(p.attached, sh)
	if i < 0 {
		d.setError(glconst.INVALID_OPERATION)
		return
	}
	p.attached = slices.Delete(p.attached, i, i+1)
	s.attached--
	if s.attached == 0 && s.deletePending {
		d.freeShader(sh)
	}
}

// LinkProgram implements glLinkProgram.
//
// A program links when every attached shader compiled and the stages form
// either a vertex plus fragment pipeline or a lone compute shader. Each
// fragment input location must be written by the vertex stage.
func (d *Driver) LinkProgram(prog uint32) {
	d.mu.Lock()
	defer d.mu.Unlock()

	p, ok := d.lookupProgram(prog)
	if !ok {
		return
	}
	p.validated = false
	stages, err := d.linkStages(p)
	var uniforms []uniformSlot
	if err == nil {
		uniforms, err = linkUniforms(stages)
	}
	if err != nil {
		p.linked = false
		p.stages, p.uniforms, p.binary = nil, nil, nil
		p.log = err.Error()
		d.log.Debug("softgl: link failed", "program", prog, "error", err)
		return
	}
	bin, err := encodeBinary(d.opt.renderer, stages)
	if err != nil {
		p.linked = false
		p.log = fmt.Sprintf("error: encoding program binary: %v", err)
		return
	}
	p.linked = true
	p.stages = stages
	p.uniforms = uniforms
	p.binary = bin
	p.log = ""
	d.log.Debug("softgl: linked", "program", prog, "stages", len(stages), "uniforms", len(uniforms))
}

func (d *Driver) linkStages(p *program) (map[uint32]*module, error) {
	if len(p.attached) == 0 {
		return nil, errors.New("error: no shaders attached")
	}
	stages := make(map[uint32]*module, len(p.attached))
	var problems []string
	for _, sh := range p.attached {
		s, ok := d.shader(sh)
		if !ok {
			continue
		}
		switch {
		case !s.compiled:
			problems = append(problems, fmt.Sprintf("error: %s shader %d is not compiled", kindName(s.kind), sh))
		case stages[s.kind] != nil:
			problems = append(problems, fmt.Sprintf("error: more than one %s shader attached", kindName(s.kind)))
		default:
			stages[s.kind] = s.mod
		}
	}
	if len(problems) > 0 {
		return nil, errors.New(strings.Join(problems, "\n"))
	}

	vs, fs, cs := stages[glconst.VERTEX_SHADER], stages[glconst.FRAGMENT_SHADER], stages[glconst.COMPUTE_SHADER]
	switch {
	case cs != nil && (vs != nil || fs != nil):
		return nil, errors.New("error: a compute shader cannot be linked with graphics stages")
	case cs != nil:
		return stages, nil
	case vs == nil:
		return nil, errors.New("error: missing vertex shader")
	case fs == nil:
		return nil, errors.New("error: missing fragment shader")
	}
	for _, loc := range fs.inputs {
		if !slices.Contains(vs.outputs, loc) {
			problems = append(problems,
				fmt.Sprintf("error: fragment input @location(%d) is not written by the vertex shader", loc))
		}
	}
	if len(problems) > 0 {
		return nil, errors.New(strings.Join(problems, "\n"))
	}
	return stages, nil
}

// GetProgramiv implements glGetProgramiv.
func (d *Driver) GetProgramiv(prog, pname uint32) int32 {
	d.mu.Lock()
	defer d.mu.Unlock()

	p, ok := d.lookupProgram(prog)
	if !ok {
		return 0
	}
	switch pname {
	case glconst.DELETE_STATUS:
		return glBool(p.deletePending)
	case glconst.LINK_STATUS:
		return glBool(p.linked)
	case glconst.VALIDATE_STATUS:
		return glBool(p.validated)
	case glconst.INFO_LOG_LENGTH:
		return logLength(p.log)
	case glconst.ATTACHED_SHADERS:
		return int32(len(p.attached))
	case glconst.ACTIVE_ATTRIBUTES:
		if vs := p.stages[glconst.VERTEX_SHADER]; vs != nil {
			return int32(len(vs.inputs))
		}
		return 0
	case glconst.ACTIVE_UNIFORMS:
		return int32(len(p.uniforms))
	case glconst.PROGRAM_BINARY_LENGTH:
		return int32(len(p.binary))
	default:
		d.setError(glconst.INVALID_ENUM)
		return 0
	}
}

// GetProgramInfoLog implements glGetProgramInfoLog.
func (d *Driver) GetProgramInfoLog(prog uint32, buf []byte) int32 {
	d.mu.Lock()
	defer d.mu.Unlock()

	p, ok := d.lookupProgram(prog)
	if !ok {
		return 0
	}
	return copyLog(buf, p.log)
}

// UseProgram implements glUseProgram. Only linked programs can be used.
func (d *Driver) UseProgram(prog uint32) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if prog == 0 {
		d.unuse()
		return
	}
	p, ok := d.lookupProgram(prog)
	if !ok {
		return
	}
	if !p.linked {
		d.setError(glconst.INVALID_OPERATION)
		return
	}
	d.unuse()
	d.current = prog
}

// ValidateProgram implements glValidateProgram. A graphics program can
// only draw with a vertex array object bound, so it validates only then;
// a compute program always validates. The outcome is reported through
// GL_VALIDATE_STATUS and the info log.
func (d *Driver) ValidateProgram(prog uint32) {
	d.mu.Lock()
	defer d.mu.Unlock()

	p, ok := d.lookupProgram(prog)
	if !ok {
		return
	}
	switch {
	case !p.linked:
		p.validated = false
		p.log = "error: program is not linked"
	case p.stages[glconst.COMPUTE_SHADER] == nil && d.vertexArray == 0:
		p.validated = false
		p.log = "error: no vertex array object bound"
	default:
		p.validated = true
		p.log = ""
	}
}

// unuse clears the current program, freeing it if it was deleted while in
// use. Caller holds d.mu.
func (d *Driver) unuse() {
	prev := d.current
	d.current = 0
	if p, ok := d.program(prev); ok && p.deletePending {
		d.freeProgram(prev, p)
	}
}

// CurrentProgram returns the program in use, 0 if none.
func (d *Driver) CurrentProgram() uint32 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.current
}

// DeleteProgram implements glDeleteProgram. A program in use is deleted
// when it stops being current.
func (d *Driver) DeleteProgram(prog uint32) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if prog == 0 {
		return
	}
	p, ok := d.lookupProgram(prog)
	if !ok {
		return
	}
	if d.current == prog {
		p.deletePending = true
		return
	}
	d.freeProgram(prog, p)
}

func (d *Driver) freeProgram(prog uint32, p *program) {
	for _, sh := range slices.Clone(p.attached) {
		if s, ok := d.shader(sh); ok {
			d.detach(p, sh, s)
		}
	}
	d.programObjects.release(prog)
	delete(d.labels, labelKey{glconst.PROGRAM, prog})
	d.log.Debug("softgl: program deleted", "program", prog)
}

// GetProgramBinary implements glGetProgramBinary.
func (d *Driver) GetProgramBinary(prog uint32, buf []byte) (int32, uint32) {
	d.mu.Lock()
	defer d.mu.Unlock()

	p, ok := d.lookupProgram(prog)
	if !ok {
		return 0, 0
	}
	if !p.linked || len(buf) < len(p.binary) {
		d.setError(glconst.INVALID_OPERATION)
		return 0, 0
	}
	return int32(copy(buf, p.binary)), BinaryFormat
}

// ProgramBinary implements glProgramBinary. A binary from another format,
// renderer or version leaves the program unlinked with an explanatory log,
// which is how OpenGL reports a stale binary cache.
func (d *Driver) ProgramBinary(prog, format uint32, data []byte) {
	d.mu.Lock()
	defer d.mu.Unlock()

	p, ok := d.lookupProgram(prog)
	if !ok {
		return
	}
	p.validated = false
	if format != BinaryFormat {
		d.setError(glconst.INVALID_ENUM)
		p.linked, p.stages, p.uniforms, p.binary = false, nil, nil, nil
		p.log = fmt.Sprintf("error: unsupported program binary format %#x", format)
		return
	}
	stages, err := decodeBinary(d.opt.renderer, data)
	var uniforms []uniformSlot
	if err == nil {
		uniforms, err = linkUniforms(stages)
	}
	if err != nil {
		p.linked, p.stages, p.uniforms, p.binary = false, nil, nil, nil
		p.log = "error: " + err.Error()
		return
	}
	p.linked = true
	p.stages = stages
	p.uniforms = uniforms
	p.binary = slices.Clone(data)
	p.log = ""
	d.log.Debug("softgl: program binary loaded", "program", prog, "stages", len(stages))
}
