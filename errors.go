package glw

import (
	"errors"
	"fmt"
)

// Sentinel errors for the glw package.
var (
	// ErrAllocationFailed is returned when the driver hands back name 0 for
	// an object it was asked to create.
	ErrAllocationFailed = errors.New("glw: driver returned name 0")

	// ErrUnknownVariant is matched by every *UnknownVariantError.
	ErrUnknownVariant = errors.New("glw: value is not a member of the enumeration")

	// ErrMismatch is matched by every *MismatchError.
	ErrMismatch = errors.New("glw: value does not match the requested tag")
)

// UnknownVariantError is returned when a raw driver value is not one of the
// declared members of an enumeration.
type UnknownVariantError struct {
	// Enum is the Go type name of the enumeration.
	Enum  string
	Value int64
}

func (e *UnknownVariantError) Error() string {
	return fmt.Sprintf("glw: %#x is not a valid %s", e.Value, e.Enum)
}

func (e *UnknownVariantError) Is(target error) bool { return target == ErrUnknownVariant }

// MismatchError is returned when narrowing a dynamic value to a static tag
// fails. Value is the original dynamic value, so the caller keeps it.
type MismatchError struct {
	Want  any
	Value any
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("glw: got %v, want %v", e.Value, e.Want)
}

func (e *MismatchError) Is(target error) bool { return target == ErrMismatch }

// DriverError wraps a non-zero glGetError code. It is only produced when the
// Context was created with WithErrorCheck(true).
type DriverError struct {
	Op   string
	Code ErrorCode
}

func (e *DriverError) Error() string {
	return fmt.Sprintf("glw: %s: %v", e.Op, e.Code)
}
