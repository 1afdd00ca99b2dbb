//go:build gldriver

package gldriver

import "testing"

func TestFirst(t *testing.T) {
	if first(nil) != nil {
		t.Error("first(nil) != nil")
	}
	names := []uint32{4, 5}
	if p := first(names); p != &names[0] {
		t.Error("first does not point at element 0")
	}
}
