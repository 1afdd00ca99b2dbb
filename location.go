package glw

import (
	"fmt"
	"unsafe"
)

// Location is the location of an active vertex attribute or uniform in a
// linked program. K is Attribute or Uniform[T].
//
// OpenGL reports a missing variable as -1, so a Location stores the
// bitwise complement of the driver value: the zero value is -1 and is not
// a valid location, and OptionLocation needs no extra space for absence.
type Location[K any] struct {
	inv uint32
}

// OptionLocation is a Location that may be absent. It has the same size and
// layout as Location; the raw value -1 means absent.
type OptionLocation[K any] struct {
	inv uint32
}

// Attribute is the location kind of a vertex shader input.
type Attribute struct{}

func (Attribute) String() string { return "Attribute" }

// Uniform is the location kind of a uniform holding a T. The type
// parameter selects the glProgramUniform* entry point used to set it.
type Uniform[T UniformValue] struct{}

func (Uniform[T]) String() string {
	var v T
	return fmt.Sprintf("Uniform[%T]", v)
}

// UniformValue lists the Go types a uniform location can hold.
type UniformValue interface {
	int32 | [2]int32 | [3]int32 | [4]int32 |
		float32 | [2]float32 | [3]float32 | [4]float32 |
		Mat4
}

// Mat4 is a 4x4 float matrix in column-major order, the layout
// glProgramUniformMatrix4fv expects without transposition.
type Mat4 [16]float32

// NewLocation wraps raw as a location of kind K. It reports false for
// negative values, which OpenGL uses for "no such variable".
func NewLocation[K any](raw int32) (Location[K], bool) {
	if raw < 0 {
		return Location[K]{}, false
	}
	return Location[K]{inv: ^uint32(raw)}, true
}

// Raw returns the driver location. It panics on the zero Location.
func (l Location[K]) Raw() int32 {
	if l.inv == 0 {
		panic(fmt.Sprintf("glw: use of uninitialized %s location", kindName[K]()))
	}
	return int32(^l.inv)
}

// Valid reports whether l holds a location.
func (l Location[K]) Valid() bool { return l.inv != 0 }

// Option returns l as a present OptionLocation.
func (l Location[K]) Option() OptionLocation[K] { return OptionLocation[K]{inv: l.inv} }

func (l Location[K]) String() string {
	return fmt.Sprintf("%s@%d", kindName[K](), int32(^l.inv))
}

// NoLocation returns an absent OptionLocation.
func NoLocation[K any]() OptionLocation[K] { return OptionLocation[K]{} }

// LocationFromRaw wraps a driver value; any negative value yields an absent
// option.
func LocationFromRaw[K any](raw int32) OptionLocation[K] {
	l, _ := NewLocation[K](raw)
	return l.Option()
}

// Get returns the location and true if o is present.
func (o OptionLocation[K]) Get() (Location[K], bool) {
	return Location[K]{inv: o.inv}, o.inv != 0
}

// IsSome reports whether o holds a location.
func (o OptionLocation[K]) IsSome() bool { return o.inv != 0 }

// Raw returns the driver value, -1 when absent.
func (o OptionLocation[K]) Raw() int32 { return int32(^o.inv) }

func (o OptionLocation[K]) String() string {
	if o.inv == 0 {
		return fmt.Sprintf("%s(none)", kindName[K]())
	}
	return fmt.Sprintf("%s@%d", kindName[K](), int32(^o.inv))
}

// Layout contract: a Location, an OptionLocation and a driver int32 are
// interchangeable in memory.
var (
	_ [unsafe.Sizeof(Location[Attribute]{}) - unsafe.Sizeof(int32(0))]struct{}
	_ [unsafe.Sizeof(int32(0)) - unsafe.Sizeof(Location[Attribute]{})]struct{}
	_ [unsafe.Sizeof(OptionLocation[Uniform[Mat4]]{}) - unsafe.Sizeof(Location[Attribute]{})]struct{}
	_ [unsafe.Sizeof(Location[Attribute]{}) - unsafe.Sizeof(OptionLocation[Uniform[Mat4]]{})]struct{}
)

// GetAttribLocation returns the location of the vertex input called name,
// absent if p has no such active attribute.
func GetAttribLocation(p Program[Linked], name string) OptionLocation[Attribute] {
	p.obj.live(p.gen, "GetAttribLocation")
	raw := p.obj.c.drv.GetAttribLocation(p.obj.raw, name)
	_ = p.obj.c.checkError("GetAttribLocation")
	return LocationFromRaw[Attribute](raw)
}

// GetUniformLocation returns the location of the uniform called name,
// absent if p has no such active uniform. The driver does not check T;
// setting a uniform through a location of the wrong type is an
// INVALID_OPERATION reported by SetUniform.
func GetUniformLocation[T UniformValue](p Program[Linked], name string) OptionLocation[Uniform[T]] {
	p.obj.live(p.gen, "GetUniformLocation")
	raw := p.obj.c.drv.GetUniformLocation(p.obj.raw, name)
	_ = p.obj.c.checkError("GetUniformLocation")
	return LocationFromRaw[Uniform[T]](raw)
}

// SetUniform stores v in the uniform at loc of p. It does not require p to
// be the current program.
func SetUniform[T UniformValue](p Program[Linked], loc Location[Uniform[T]], v T) error {
	p.obj.live(p.gen, "SetUniform")
	drv, prog, l := p.obj.c.drv, p.obj.raw, loc.Raw()
	switch v := any(v).(type) {
	case int32:
		drv.ProgramUniform1iv(prog, l, []int32{v})
	case [2]int32:
		drv.ProgramUniform2iv(prog, l, v[:])
	case [3]int32:
		drv.ProgramUniform3iv(prog, l, v[:])
	case [4]int32:
		drv.ProgramUniform4iv(prog, l, v[:])
	case float32:
		drv.ProgramUniform1fv(prog, l, []float32{v})
	case [2]float32:
		drv.ProgramUniform2fv(prog, l, v[:])
	case [3]float32:
		drv.ProgramUniform3fv(prog, l, v[:])
	case [4]float32:
		drv.ProgramUniform4fv(prog, l, v[:])
	case Mat4:
		drv.ProgramUniformMatrix4fv(prog, l, false, v[:])
	}
	return p.obj.c.checkError("ProgramUniform")
}

// GetUniform reads the uniform at loc of p.
func GetUniform[T UniformValue](p Program[Linked], loc Location[Uniform[T]]) (T, error) {
	p.obj.live(p.gen, "GetUniform")
	drv, prog, l := p.obj.c.drv, p.obj.raw, loc.Raw()
	var out T
	switch o := any(&out).(type) {
	case *int32:
		drv.GetUniformiv(prog, l, unsafe.Slice(o, 1))
	case *[2]int32:
		drv.GetUniformiv(prog, l, o[:])
	case *[3]int32:
		drv.GetUniformiv(prog, l, o[:])
	case *[4]int32:
		drv.GetUniformiv(prog, l, o[:])
	case *float32:
		drv.GetUniformfv(prog, l, unsafe.Slice(o, 1))
	case *[2]float32:
		drv.GetUniformfv(prog, l, o[:])
	case *[3]float32:
		drv.GetUniformfv(prog, l, o[:])
	case *[4]float32:
		drv.GetUniformfv(prog, l, o[:])
	case *Mat4:
		drv.GetUniformfv(prog, l, o[:])
	}
	if err := p.obj.c.checkError("GetUniform"); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}
