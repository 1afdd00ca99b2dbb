//go:build gldriver

package gldriver

import (
	"fmt"
	"log/slog"
	"unsafe"

	"github.com/go-gl/gl/v4.6-core/gl"

	"github.com/gogpu/glw/driver"
)

// Driver forwards every call to the current OpenGL context.
type Driver struct {
	log *slog.Logger
}

var _ driver.Driver = (*Driver)(nil)

// New loads the OpenGL function pointers of the current context. It fails
// if no context is current or the context is older than 4.6 core.
func New(log *slog.Logger) (*Driver, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("gldriver: init: %w", err)
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	d := &Driver{log: log}
	d.log.Info("gldriver: context ready",
		"version", d.GetString(gl.VERSION),
		"renderer", d.GetString(gl.RENDERER))
	return d, nil
}

// first returns a pointer to the first element of names, nil when empty.
func first(names []uint32) *uint32 {
	if len(names) == 0 {
		return nil
	}
	return &names[0]
}

func (d *Driver) GenBuffers(names []uint32)          { gl.GenBuffers(int32(len(names)), first(names)) }
func (d *Driver) DeleteBuffers(names []uint32)       { gl.DeleteBuffers(int32(len(names)), first(names)) }
func (d *Driver) GenTextures(names []uint32)         { gl.GenTextures(int32(len(names)), first(names)) }
func (d *Driver) DeleteTextures(names []uint32)      { gl.DeleteTextures(int32(len(names)), first(names)) }
func (d *Driver) GenVertexArrays(names []uint32)     { gl.GenVertexArrays(int32(len(names)), first(names)) }
func (d *Driver) DeleteVertexArrays(names []uint32)  { gl.DeleteVertexArrays(int32(len(names)), first(names)) }
func (d *Driver) GenFramebuffers(names []uint32)     { gl.GenFramebuffers(int32(len(names)), first(names)) }
func (d *Driver) DeleteFramebuffers(names []uint32)  { gl.DeleteFramebuffers(int32(len(names)), first(names)) }
func (d *Driver) GenRenderbuffers(names []uint32)    { gl.GenRenderbuffers(int32(len(names)), first(names)) }
func (d *Driver) DeleteRenderbuffers(names []uint32) { gl.DeleteRenderbuffers(int32(len(names)), first(names)) }
func (d *Driver) GenSamplers(names []uint32)         { gl.GenSamplers(int32(len(names)), first(names)) }
func (d *Driver) DeleteSamplers(names []uint32)      { gl.DeleteSamplers(int32(len(names)), first(names)) }
func (d *Driver) GenQueries(names []uint32)          { gl.GenQueries(int32(len(names)), first(names)) }
func (d *Driver) DeleteQueries(names []uint32)       { gl.DeleteQueries(int32(len(names)), first(names)) }

func (d *Driver) BindBuffer(target, buffer uint32)            { gl.BindBuffer(target, buffer) }
func (d *Driver) BindTexture(target, texture uint32)          { gl.BindTexture(target, texture) }
func (d *Driver) BindVertexArray(array uint32)                { gl.BindVertexArray(array) }
func (d *Driver) BindFramebuffer(target, framebuffer uint32)  { gl.BindFramebuffer(target, framebuffer) }
func (d *Driver) CheckFramebufferStatus(target uint32) uint32 { return gl.CheckFramebufferStatus(target) }
func (d *Driver) CreateShader(kind uint32) uint32             { return gl.CreateShader(kind) }
func (d *Driver) ActiveTexture(texture uint32)                { gl.ActiveTexture(texture) }
func (d *Driver) TexParameteri(target, pname uint32, param int32) {
	gl.TexParameteri(target, pname, param)
}

func (d *Driver) FramebufferTexture2D(target, attachment, textarget, texture uint32, level int32) {
	gl.FramebufferTexture2D(target, attachment, textarget, texture, level)
}

func (d *Driver) GetTexParameteriv(target, pname uint32) int32 {
	var v int32
	gl.GetTexParameteriv(target, pname, &v)
	return v
}

func (d *Driver) GetIntegerv(pname uint32) int32 {
	var v int32
	gl.GetIntegerv(pname, &v)
	return v
}

// ShaderSource copies the sources into C memory; cgo does not allow passing
// an array of Go string pointers.
func (d *Driver) ShaderSource(shader uint32, sources []string) {
	if len(sources) == 0 {
		gl.ShaderSource(shader, 0, nil, nil)
		return
	}
	terminated := make([]string, len(sources))
	for i, s := range sources {
		terminated[i] = s + "\x00"
	}
	csources, free := gl.Strs(terminated...)
	defer free()
	gl.ShaderSource(shader, int32(len(terminated)), csources, nil)
}

func (d *Driver) CompileShader(shader uint32) { gl.CompileShader(shader) }

func (d *Driver) GetShaderiv(shader, pname uint32) int32 {
	var v int32
	gl.GetShaderiv(shader, pname, &v)
	return v
}

func (d *Driver) GetShaderInfoLog(shader uint32, buf []byte) int32 {
	if len(buf) == 0 {
		return 0
	}
	var n int32
	gl.GetShaderInfoLog(shader, int32(len(buf)), &n, &buf[0])
	return n
}

func (d *Driver) DeleteShader(shader uint32) { gl.DeleteShader(shader) }

func (d *Driver) CreateProgram() uint32               { return gl.CreateProgram() }
func (d *Driver) AttachShader(program, shader uint32) { gl.AttachShader(program, shader) }
func (d *Driver) DetachShader(program, shader uint32) { gl.DetachShader(program, shader) }
func (d *Driver) LinkProgram(program uint32)          { gl.LinkProgram(program) }
func (d *Driver) UseProgram(program uint32)           { gl.UseProgram(program) }
func (d *Driver) DeleteProgram(program uint32)        { gl.DeleteProgram(program) }
func (d *Driver) ValidateProgram(program uint32)      { gl.ValidateProgram(program) }

func (d *Driver) GetAttribLocation(program uint32, name string) int32 {
	return gl.GetAttribLocation(program, gl.Str(name+"\x00"))
}

func (d *Driver) GetUniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

// firstInt and firstFloat return a pointer to the first element, nil when
// empty.
func firstInt(v []int32) *int32 {
	if len(v) == 0 {
		return nil
	}
	return &v[0]
}

func firstFloat(v []float32) *float32 {
	if len(v) == 0 {
		return nil
	}
	return &v[0]
}

func (d *Driver) ProgramUniform1iv(program uint32, location int32, value []int32) {
	gl.ProgramUniform1iv(program, location, int32(len(value)), firstInt(value))
}

func (d *Driver) ProgramUniform2iv(program uint32, location int32, value []int32) {
	gl.ProgramUniform2iv(program, location, int32(len(value)/2), firstInt(value))
}

func (d *Driver) ProgramUniform3iv(program uint32, location int32, value []int32) {
	gl.ProgramUniform3iv(program, location, int32(len(value)/3), firstInt(value))
}

func (d *Driver) ProgramUniform4iv(program uint32, location int32, value []int32) {
	gl.ProgramUniform4iv(program, location, int32(len(value)/4), firstInt(value))
}

func (d *Driver) ProgramUniform1fv(program uint32, location int32, value []float32) {
	gl.ProgramUniform1fv(program, location, int32(len(value)), firstFloat(value))
}

func (d *Driver) ProgramUniform2fv(program uint32, location int32, value []float32) {
	gl.ProgramUniform2fv(program, location, int32(len(value)/2), firstFloat(value))
}

func (d *Driver) ProgramUniform3fv(program uint32, location int32, value []float32) {
	gl.ProgramUniform3fv(program, location, int32(len(value)/3), firstFloat(value))
}

func (d *Driver) ProgramUniform4fv(program uint32, location int32, value []float32) {
	gl.ProgramUniform4fv(program, location, int32(len(value)/4), firstFloat(value))
}

func (d *Driver) ProgramUniformMatrix4fv(program uint32, location int32, transpose bool, value []float32) {
	gl.ProgramUniformMatrix4fv(program, location, int32(len(value)/16), transpose, firstFloat(value))
}

// GetUniformiv uses the bounded glGetnUniformiv so a short out is never
// overrun.
func (d *Driver) GetUniformiv(program uint32, location int32, out []int32) {
	gl.GetnUniformiv(program, location, int32(len(out)*4), firstInt(out))
}

func (d *Driver) GetUniformfv(program uint32, location int32, out []float32) {
	gl.GetnUniformfv(program, location, int32(len(out)*4), firstFloat(out))
}

func (d *Driver) GetProgramiv(program, pname uint32) int32 {
	var v int32
	gl.GetProgramiv(program, pname, &v)
	return v
}

func (d *Driver) GetProgramInfoLog(program uint32, buf []byte) int32 {
	if len(buf) == 0 {
		return 0
	}
	var n int32
	gl.GetProgramInfoLog(program, int32(len(buf)), &n, &buf[0])
	return n
}

func (d *Driver) GetProgramBinary(program uint32, buf []byte) (int32, uint32) {
	if len(buf) == 0 {
		return 0, 0
	}
	var n int32
	var format uint32
	gl.GetProgramBinary(program, int32(len(buf)), &n, &format, unsafe.Pointer(&buf[0]))
	return n, format
}

func (d *Driver) ProgramBinary(program, format uint32, binary []byte) {
	if len(binary) == 0 {
		gl.ProgramBinary(program, format, nil, 0)
		return
	}
	gl.ProgramBinary(program, format, unsafe.Pointer(&binary[0]), int32(len(binary)))
}

func (d *Driver) ObjectLabel(identifier, name uint32, label string) {
	if label == "" {
		gl.ObjectLabel(identifier, name, 0, nil)
		return
	}
	gl.ObjectLabel(identifier, name, int32(len(label)), unsafe.StringData(label))
}

func (d *Driver) GetString(name uint32) string {
	p := gl.GetString(name)
	if p == nil {
		return ""
	}
	return gl.GoStr(p)
}

func (d *Driver) GetError() uint32 { return gl.GetError() }
