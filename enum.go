package glw

import (
	"fmt"
	"slices"
)

// Enum is implemented by every closed enumeration of driver constants. The
// underlying integer is the driver's own value, so converting an Enum to
// uint32 or int32 is the wire encoding.
type Enum interface {
	~uint32 | ~int32
	fmt.Stringer
	// Valid reports whether the value is a declared member.
	Valid() bool
}

// Tag is implemented by zero-size static tags. Each tag type stands for
// exactly one member of E and Value returns that member.
type Tag[E Enum] interface {
	Value() E
}

// Decode converts a raw driver value into E. It returns an
// *UnknownVariantError when raw is not a declared member of E.
func Decode[E Enum](raw int64) (E, error) {
	e := E(raw)
	if int64(e) != raw || !e.Valid() {
		var zero E
		return zero, &UnknownVariantError{Enum: fmt.Sprintf("%T", zero), Value: raw}
	}
	return e, nil
}

// Narrow succeeds iff v equals the member T stands for. On failure the
// returned *MismatchError carries v.
func Narrow[T Tag[E], E Enum](v E) (T, error) {
	var t T
	if t.Value() != v {
		return t, &MismatchError{Want: t.Value(), Value: v}
	}
	return t, nil
}

// Widen returns the dynamic value of a static tag.
func Widen[T Tag[E], E Enum](t T) E { return t.Value() }

// enumSet lists the declared members of an enumeration in declaration order.
type enumSet[E Enum] []E

func (s enumSet[E]) contains(v E) bool { return slices.Contains(s, v) }

// all returns a copy so callers cannot mutate the table.
func (s enumSet[E]) all() []E { return slices.Clone(s) }

func unknownString(v int64) string { return fmt.Sprintf("Unknown(%#x)", v) }
