package glw

import (
	"fmt"
	"unsafe"
)

// Name is the driver-assigned name of an object of kind K.
//
// A Name occupies exactly one uint32 and is never 0 while it refers to a
// live object. The zero value Name[K]{} is not a valid name: it is what a
// slice of names holds after Delete consumed it, and reading its raw value
// panics.
//
// Name has no destructor. Objects are released only by an explicit Delete.
type Name[K any] struct {
	raw uint32
}

// OptionName is a Name that may be absent. It has the same size and layout
// as Name; the raw value 0 means absent.
type OptionName[K any] struct {
	raw uint32
}

// NewName wraps raw as a name of kind K. It reports false iff raw is 0.
// The driver never returns 0 for a successful allocation, so a false result
// means the allocation failed.
func NewName[K any](raw uint32) (Name[K], bool) {
	if raw == 0 {
		return Name[K]{}, false
	}
	return Name[K]{raw: raw}, true
}

// MustName is like NewName but panics when raw is 0. Use it only where the
// caller has already checked the value.
func MustName[K any](raw uint32) Name[K] {
	n, ok := NewName[K](raw)
	if !ok {
		panic(fmt.Sprintf("glw: %s name constructed from 0", kindName[K]()))
	}
	return n
}

// Raw returns the driver name. It panics if n is the zero value, which
// only happens when a consumed or never-initialized name is used.
func (n Name[K]) Raw() uint32 {
	if n.raw == 0 {
		panic(fmt.Sprintf("glw: use of deleted or uninitialized %s name", kindName[K]()))
	}
	return n.raw
}

// Valid reports whether n holds a name. It is false for the zero value and
// for names consumed by Delete.
func (n Name[K]) Valid() bool { return n.raw != 0 }

// Option returns n as a present OptionName.
func (n Name[K]) Option() OptionName[K] { return OptionName[K]{raw: n.raw} }

// String implements fmt.Stringer.
func (n Name[K]) String() string {
	return fmt.Sprintf("%s(%d)", kindName[K](), n.raw)
}

// SomeName returns a present OptionName holding n.
func SomeName[K any](n Name[K]) OptionName[K] { return n.Option() }

// NoName returns an absent OptionName.
func NoName[K any]() OptionName[K] { return OptionName[K]{} }

// OptionFromRaw wraps raw without validation; 0 yields an absent option.
func OptionFromRaw[K any](raw uint32) OptionName[K] { return OptionName[K]{raw: raw} }

// Get returns the name and true if o is present.
func (o OptionName[K]) Get() (Name[K], bool) {
	return NewName[K](o.raw)
}

// IsSome reports whether o holds a name.
func (o OptionName[K]) IsSome() bool { return o.raw != 0 }

// Raw returns the stored value, 0 when absent.
func (o OptionName[K]) Raw() uint32 { return o.raw }

// String implements fmt.Stringer.
func (o OptionName[K]) String() string {
	if o.raw == 0 {
		return fmt.Sprintf("%s(none)", kindName[K]())
	}
	return fmt.Sprintf("%s(%d)", kindName[K](), o.raw)
}

// kindName returns the display name of the kind tag K.
func kindName[K any]() string {
	var k K
	if s, ok := any(k).(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", k)
}

// Layout contract: a Name, an OptionName and a driver uint32 are
// interchangeable in memory. The array lengths below are negative, and the
// build fails, if that stops being true for any kind.
var (
	_ [unsafe.Sizeof(Name[Buffer]{}) - unsafe.Sizeof(uint32(0))]struct{}
	_ [unsafe.Sizeof(uint32(0)) - unsafe.Sizeof(Name[Buffer]{})]struct{}
	_ [unsafe.Sizeof(OptionName[Buffer]{}) - unsafe.Sizeof(Name[Buffer]{})]struct{}
	_ [unsafe.Sizeof(Name[Buffer]{}) - unsafe.Sizeof(OptionName[Buffer]{})]struct{}
	_ [unsafe.Alignof(OptionName[Buffer]{}) - unsafe.Alignof(uint32(0))]struct{}
	_ [unsafe.Alignof(uint32(0)) - unsafe.Alignof(OptionName[Buffer]{})]struct{}
)
