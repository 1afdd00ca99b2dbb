package glw

import (
	"fmt"

	"github.com/gogpu/glw/internal/glconst"
)

// Shader is a shader object of kind K in status S.
//
// K is one of the shader-kind tags (VertexShader, FragmentShader, ...) or
// Unknown. S is Uncompiled, Compiled or Unknown. The status only changes
// through Compile followed by QueryCompileStatus, and every such step
// consumes the Shader value it was given: keep the value it returns and
// drop the old one. Using a consumed value panics.
//
// The zero Shader is not usable.
type Shader[K, S any] struct {
	obj *object
	gen uint64
}

// CreateShader creates a shader of the kind tagged by k.
func CreateShader[K ShaderKindTag](c *Context, k K) (Shader[K, Uncompiled], error) {
	obj, err := createShader(c, k.Value())
	if err != nil {
		return Shader[K, Uncompiled]{}, err
	}
	return Shader[K, Uncompiled]{obj: obj, gen: obj.gen}, nil
}

// CreateShaderDynamic creates a shader whose kind is only known at run time.
// Use NarrowShader to recover a static kind. kind must be a declared
// ShaderKind.
func CreateShaderDynamic(c *Context, kind ShaderKind) (Shader[Unknown, Uncompiled], error) {
	if !kind.Valid() {
		return Shader[Unknown, Uncompiled]{}, &UnknownVariantError{Enum: "glw.ShaderKind", Value: int64(kind)}
	}
	obj, err := createShader(c, kind)
	if err != nil {
		return Shader[Unknown, Uncompiled]{}, err
	}
	return Shader[Unknown, Uncompiled]{obj: obj, gen: obj.gen}, nil
}

func createShader(c *Context, kind ShaderKind) (*object, error) {
	raw := c.drv.CreateShader(uint32(kind))
	if err := c.checkError("CreateShader"); err != nil {
		return nil, err
	}
	if raw == 0 {
		return nil, fmt.Errorf("glw: create %s shader: %w", kind, ErrAllocationFailed)
	}
	obj := newObject(c, raw, "shader", kind)
	if c.labels {
		c.drv.ObjectLabel(uint32(ObjectKindShader), raw, obj.label())
	}
	c.log.Debug("glw: shader created", "shader", raw, "kind", kind)
	return obj, nil
}

// NarrowShader checks the run-time kind of s against K. On success s is
// consumed; on failure s stays usable and the error is a *MismatchError.
func NarrowShader[K ShaderKindTag, S any](s Shader[Unknown, S]) (Shader[K, S], error) {
	s.obj.live(s.gen, "NarrowShader")
	if _, err := Narrow[K](s.obj.kind); err != nil {
		return Shader[K, S]{}, err
	}
	return Shader[K, S]{obj: s.obj, gen: s.obj.take(s.gen, "NarrowShader")}, nil
}

// WidenShader forgets the static kind of s. s is consumed.
func WidenShader[K, S any](s Shader[K, S]) Shader[Unknown, S] {
	return Shader[Unknown, S]{obj: s.obj, gen: s.obj.take(s.gen, "WidenShader")}
}

// Compile sets the source of s and compiles it. The result has status
// Unknown until QueryCompileStatus. s is consumed.
//
// Compile panics if s already failed to compile: a failed shader is final.
func Compile[K any, S interface{ Uncompiled | Unknown }](s Shader[K, S], sources ...string) Shader[K, Unknown] {
	s.obj.retry("Compile")
	gen := s.obj.take(s.gen, "Compile")
	c := s.obj.c
	c.drv.ShaderSource(s.obj.raw, sources)
	c.drv.CompileShader(s.obj.raw)
	_ = c.checkError("CompileShader")
	c.log.Debug("glw: shader compiled", "shader", s.obj.raw, "sources", len(sources))
	return Shader[K, Unknown]{obj: s.obj, gen: gen}
}

// CompileResult is the outcome of QueryCompileStatus. Exactly one of
// Compiled and Uncompiled reports true.
type CompileResult[K any] struct {
	obj    *object
	gen    uint64
	status CompileStatus
}

// Status returns the queried status.
func (r CompileResult[K]) Status() CompileStatus { return r.status }

// Compiled returns the shader if it compiled.
func (r CompileResult[K]) Compiled() (Shader[K, Compiled], bool) {
	if r.status != CompileStatusCompiled {
		return Shader[K, Compiled]{}, false
	}
	return Shader[K, Compiled]{obj: r.obj, gen: r.gen}, true
}

// Uncompiled returns the shader if it failed to compile. Its InfoLog holds
// the diagnostics; it can only be deleted.
func (r CompileResult[K]) Uncompiled() (Shader[K, Uncompiled], bool) {
	if r.status != CompileStatusUncompiled {
		return Shader[K, Uncompiled]{}, false
	}
	return Shader[K, Uncompiled]{obj: r.obj, gen: r.gen}, true
}

// QueryCompileStatus reads GL_COMPILE_STATUS. s is consumed unless the driver
// reports a value that is neither GL_TRUE nor GL_FALSE, in which case the
// error is an *UnknownVariantError and s is still usable.
func QueryCompileStatus[K any](s Shader[K, Unknown]) (CompileResult[K], error) {
	s.obj.live(s.gen, "QueryCompileStatus")
	raw := s.obj.c.drv.GetShaderiv(s.obj.raw, glconst.COMPILE_STATUS)
	status, err := Decode[CompileStatus](int64(raw))
	if err != nil {
		return CompileResult[K]{}, err
	}
	gen := s.obj.take(s.gen, "QueryCompileStatus")
	if status == CompileStatusUncompiled {
		s.obj.failed = true
	}
	s.obj.c.log.Debug("glw: shader status", "shader", s.obj.raw, "status", status)
	return CompileResult[K]{obj: s.obj, gen: gen, status: status}, nil
}

// Raw returns the driver name of s.
func (s Shader[K, S]) Raw() uint32 {
	s.obj.live(s.gen, "Shader.Raw")
	return s.obj.raw
}

// DynamicKind returns the run-time kind of s.
func (s Shader[K, S]) DynamicKind() ShaderKind {
	s.obj.live(s.gen, "Shader.DynamicKind")
	return s.obj.kind
}

// Param reads an integer shader parameter. It does not consume s.
func (s Shader[K, S]) Param(pname ShaderParam) int32 {
	s.obj.live(s.gen, "Shader.Param")
	return s.obj.c.drv.GetShaderiv(s.obj.raw, uint32(pname))
}

// InfoLog returns the compiler diagnostics of s. It does not consume s.
func (s Shader[K, S]) InfoLog() (string, error) {
	s.obj.live(s.gen, "Shader.InfoLog")
	drv, raw := s.obj.c.drv, s.obj.raw
	length := drv.GetShaderiv(raw, glconst.INFO_LOG_LENGTH)
	return fetchLog(length, func(buf []byte) int32 {
		return drv.GetShaderInfoLog(raw, buf)
	})
}

// Label attaches a debug label to s.
func (s Shader[K, S]) Label(label string) {
	s.obj.live(s.gen, "Shader.Label")
	s.obj.c.drv.ObjectLabel(uint32(ObjectKindShader), s.obj.raw, label)
}

// Delete deletes the shader object. s is consumed and so is every other
// value referring to the same object.
func (s Shader[K, S]) Delete() {
	s.obj.take(s.gen, "Shader.Delete")
	s.obj.deleted = true
	s.obj.c.drv.DeleteShader(s.obj.raw)
	_ = s.obj.c.checkError("DeleteShader")
	s.obj.c.log.Debug("glw: shader deleted", "shader", s.obj.raw)
}

func (s Shader[K, S]) String() string {
	if s.obj == nil {
		return "Shader(invalid)"
	}
	var st S
	return fmt.Sprintf("%s shader %d (%v)", s.obj.kind, s.obj.raw, st)
}
