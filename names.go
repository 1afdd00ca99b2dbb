package glw

import (
	"fmt"
	"unsafe"
)

// IncompleteError is returned by Unwrap when a slice of optional names
// contains an absent entry. Names is the caller's slice, untouched, so the
// names that were allocated can still be deleted.
type IncompleteError[K any] struct {
	Names []OptionName[K]
	// Index of the first absent entry.
	Index int
}

func (e *IncompleteError[K]) Error() string {
	return fmt.Sprintf("glw: %s name %d of %d is absent", kindName[K](), e.Index, len(e.Names))
}

// Unwrap returns ErrAllocationFailed so callers can test with errors.Is.
func (e *IncompleteError[K]) Unwrap() error { return ErrAllocationFailed }

// Wrap relabels names as optional names. The result shares memory with
// names; no entry is copied or checked.
func Wrap[K any](names []Name[K]) []OptionName[K] {
	if names == nil {
		return nil
	}
	return unsafe.Slice((*OptionName[K])(unsafe.Pointer(unsafe.SliceData(names))), len(names))
}

// WrapCopy is like Wrap but returns a fresh slice.
func WrapCopy[K any](names []Name[K]) []OptionName[K] {
	if names == nil {
		return nil
	}
	out := make([]OptionName[K], len(names))
	copy(out, Wrap(names))
	return out
}

// Unwrap checks that every entry of opts is present and, if so, returns the
// same memory viewed as names. Otherwise it returns an *IncompleteError
// holding opts unchanged.
func Unwrap[K any](opts []OptionName[K]) ([]Name[K], error) {
	if i := firstAbsent(opts); i >= 0 {
		return nil, &IncompleteError[K]{Names: opts, Index: i}
	}
	if opts == nil {
		return nil, nil
	}
	return unsafe.Slice((*Name[K])(unsafe.Pointer(unsafe.SliceData(opts))), len(opts)), nil
}

// UnwrapCopy is like Unwrap but the result does not alias opts.
func UnwrapCopy[K any](opts []OptionName[K]) ([]Name[K], error) {
	names, err := Unwrap(opts)
	if err != nil || names == nil {
		return names, err
	}
	out := make([]Name[K], len(names))
	copy(out, names)
	return out, nil
}

// RawNames views opts as the flat uint32 array the driver reads and writes.
func RawNames[K any](opts []OptionName[K]) []uint32 {
	if opts == nil {
		return nil
	}
	return unsafe.Slice((*uint32)(unsafe.Pointer(unsafe.SliceData(opts))), len(opts))
}

func firstAbsent[K any](opts []OptionName[K]) int {
	for i, o := range opts {
		if o.raw == 0 {
			return i
		}
	}
	return -1
}
