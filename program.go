package glw

import (
	"errors"
	"fmt"

	"github.com/gogpu/glw/internal/glconst"
)

// ErrEmptyBinary is returned by Binary when the driver reports a zero-length
// program binary.
var ErrEmptyBinary = errors.New("glw: driver returned an empty program binary")

// Program is a program object in status S: Unlinked, Linked or Unknown.
// It follows the same consumption rules as Shader.
type Program[S any] struct {
	obj *object
	gen uint64
}

// CreateProgram creates an empty program.
func CreateProgram(c *Context) (Program[Unlinked], error) {
	raw := c.drv.CreateProgram()
	if err := c.checkError("CreateProgram"); err != nil {
		return Program[Unlinked]{}, err
	}
	if raw == 0 {
		return Program[Unlinked]{}, fmt.Errorf("glw: create program: %w", ErrAllocationFailed)
	}
	obj := newObject(c, raw, "program", 0)
	if c.labels {
		c.drv.ObjectLabel(uint32(ObjectKindProgram), raw, obj.label())
	}
	c.log.Debug("glw: program created", "program", raw)
	return Program[Unlinked]{obj: obj, gen: obj.gen}, nil
}

// Attach attaches a compiled shader to p. Neither value is consumed.
func Attach[K any](p Program[Unlinked], s Shader[K, Compiled]) {
	p.obj.live(p.gen, "Attach")
	s.obj.live(s.gen, "Attach")
	p.obj.c.drv.AttachShader(p.obj.raw, s.obj.raw)
	_ = p.obj.c.checkError("AttachShader")
}

// Detach detaches s from p. Neither value is consumed.
func Detach[S, K any](p Program[S], s Shader[K, Compiled]) {
	p.obj.live(p.gen, "Detach")
	s.obj.live(s.gen, "Detach")
	p.obj.c.drv.DetachShader(p.obj.raw, s.obj.raw)
	_ = p.obj.c.checkError("DetachShader")
}

// Link links p. The result has status Unknown until QueryLinkStatus. p is
// consumed.
//
// Link panics if p already failed to link.
func Link[S interface{ Unlinked | Unknown }](p Program[S]) Program[Unknown] {
	p.obj.retry("Link")
	gen := p.obj.take(p.gen, "Link")
	c := p.obj.c
	c.drv.LinkProgram(p.obj.raw)
	_ = c.checkError("LinkProgram")
	c.log.Debug("glw: program linked", "program", p.obj.raw)
	return Program[Unknown]{obj: p.obj, gen: gen}
}

// LinkResult is the outcome of QueryLinkStatus. Exactly one of Linked and
// Unlinked reports true.
type LinkResult struct {
	obj    *object
	gen    uint64
	status LinkStatus
}

// Status returns the queried status.
func (r LinkResult) Status() LinkStatus { return r.status }

// Linked returns the program if it linked.
func (r LinkResult) Linked() (Program[Linked], bool) {
	if r.status != LinkStatusLinked {
		return Program[Linked]{}, false
	}
	return Program[Linked]{obj: r.obj, gen: r.gen}, true
}

// Unlinked returns the program if linking failed.
func (r LinkResult) Unlinked() (Program[Unlinked], bool) {
	if r.status != LinkStatusUnlinked {
		return Program[Unlinked]{}, false
	}
	return Program[Unlinked]{obj: r.obj, gen: r.gen}, true
}

// QueryLinkStatus reads GL_LINK_STATUS. Like QueryCompileStatus it only
// fails, without consuming p, when the driver returns an undeclared value.
func QueryLinkStatus(p Program[Unknown]) (LinkResult, error) {
	p.obj.live(p.gen, "QueryLinkStatus")
	raw := p.obj.c.drv.GetProgramiv(p.obj.raw, glconst.LINK_STATUS)
	status, err := Decode[LinkStatus](int64(raw))
	if err != nil {
		return LinkResult{}, err
	}
	gen := p.obj.take(p.gen, "QueryLinkStatus")
	if status == LinkStatusUnlinked {
		p.obj.failed = true
	}
	p.obj.c.log.Debug("glw: program status", "program", p.obj.raw, "status", status)
	return LinkResult{obj: p.obj, gen: gen, status: status}, nil
}

// Use installs p as part of the current rendering state.
func Use(p Program[Linked]) {
	p.obj.live(p.gen, "Use")
	p.obj.c.drv.UseProgram(p.obj.raw)
	_ = p.obj.c.checkError("UseProgram")
}

// Validate asks the driver whether p can execute in the current rendering
// state and returns GL_VALIDATE_STATUS. The info log of p explains a
// BooleanFalse result.
func Validate(p Program[Linked]) (Boolean, error) {
	p.obj.live(p.gen, "Validate")
	drv := p.obj.c.drv
	drv.ValidateProgram(p.obj.raw)
	if err := p.obj.c.checkError("ValidateProgram"); err != nil {
		return BooleanFalse, err
	}
	return Decode[Boolean](int64(drv.GetProgramiv(p.obj.raw, glconst.VALIDATE_STATUS)))
}

// UseNone removes the current program from the rendering state.
func (c *Context) UseNone() {
	c.drv.UseProgram(0)
	_ = c.checkError("UseProgram")
}

// ProgramBinary is a driver-specific serialization of a linked program.
// It is only valid for the driver and version that produced it.
type ProgramBinary struct {
	Format uint32
	Data   []byte
}

// Binary retrieves the binary form of p.
func Binary(p Program[Linked]) (ProgramBinary, error) {
	p.obj.live(p.gen, "Binary")
	drv, raw := p.obj.c.drv, p.obj.raw
	length := drv.GetProgramiv(raw, glconst.PROGRAM_BINARY_LENGTH)
	if length <= 0 {
		return ProgramBinary{}, ErrEmptyBinary
	}
	buf := make([]byte, length)
	n, format := drv.GetProgramBinary(raw, buf)
	if err := p.obj.c.checkError("GetProgramBinary"); err != nil {
		return ProgramBinary{}, err
	}
	if n <= 0 {
		return ProgramBinary{}, ErrEmptyBinary
	}
	return ProgramBinary{Format: format, Data: buf[:min(int(n), len(buf))]}, nil
}

// LoadBinary replaces the contents of p with b. As with Link, the status is
// Unknown until QueryLinkStatus; a driver rejects binaries it did not
// produce by leaving the program unlinked. p is consumed.
func LoadBinary(p Program[Unlinked], b ProgramBinary) Program[Unknown] {
	p.obj.retry("LoadBinary")
	gen := p.obj.take(p.gen, "LoadBinary")
	c := p.obj.c
	c.drv.ProgramBinary(p.obj.raw, b.Format, b.Data)
	_ = c.checkError("ProgramBinary")
	c.log.Debug("glw: program binary loaded", "program", p.obj.raw, "bytes", len(b.Data))
	return Program[Unknown]{obj: p.obj, gen: gen}
}

// Raw returns the driver name of p.
func (p Program[S]) Raw() uint32 {
	p.obj.live(p.gen, "Program.Raw")
	return p.obj.raw
}

// Param reads an integer program parameter. It does not consume p.
func (p Program[S]) Param(pname ProgramParam) int32 {
	p.obj.live(p.gen, "Program.Param")
	return p.obj.c.drv.GetProgramiv(p.obj.raw, uint32(pname))
}

// InfoLog returns the linker diagnostics of p. It does not consume p.
func (p Program[S]) InfoLog() (string, error) {
	p.obj.live(p.gen, "Program.InfoLog")
	drv, raw := p.obj.c.drv, p.obj.raw
	length := drv.GetProgramiv(raw, glconst.INFO_LOG_LENGTH)
	return fetchLog(length, func(buf []byte) int32 {
		return drv.GetProgramInfoLog(raw, buf)
	})
}

// Label attaches a debug label to p.
func (p Program[S]) Label(label string) {
	p.obj.live(p.gen, "Program.Label")
	p.obj.c.drv.ObjectLabel(uint32(ObjectKindProgram), p.obj.raw, label)
}

// Delete deletes the program object. p is consumed.
func (p Program[S]) Delete() {
	p.obj.take(p.gen, "Program.Delete")
	p.obj.deleted = true
	p.obj.c.drv.DeleteProgram(p.obj.raw)
	_ = p.obj.c.checkError("DeleteProgram")
	p.obj.c.log.Debug("glw: program deleted", "program", p.obj.raw)
}

func (p Program[S]) String() string {
	if p.obj == nil {
		return "Program(invalid)"
	}
	var st S
	return fmt.Sprintf("program %d (%v)", p.obj.raw, st)
}
