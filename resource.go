package glw

import "fmt"

// Unknown stands in for a shader kind or a status that is not known
// statically: the kind of a shader created from a dynamic ShaderKind, or
// the status of a shader or program between compile (link) and the status
// query.
type Unknown struct{}

func (Unknown) String() string { return "Unknown" }

// object is the record shared by every Shader or Program value that refers
// to one driver object. Each transition bumps gen, so a value holding an
// older gen has been consumed.
type object struct {
	c    *Context
	raw  uint32
	what string
	kind ShaderKind // shaders only
	gen  uint64

	// failed is set once a status query resolved to Uncompiled or Unlinked.
	// The object may not be compiled or linked again.
	failed  bool
	deleted bool
}

func newObject(c *Context, raw uint32, what string, kind ShaderKind) *object {
	return &object{c: c, raw: raw, what: what, kind: kind, gen: 1}
}

// live panics unless gen is the current generation of o.
func (o *object) live(gen uint64, op string) {
	switch {
	case o == nil:
		panic(fmt.Sprintf("glw: %s on a zero value", op))
	case o.deleted:
		panic(fmt.Sprintf("glw: %s: %s %d was deleted", op, o.what, o.raw))
	case o.gen != gen:
		panic(fmt.Sprintf("glw: %s: %s %d was consumed by an earlier call", op, o.what, o.raw))
	}
}

// take consumes the value holding gen and returns the generation of its
// successor.
func (o *object) take(gen uint64, op string) uint64 {
	o.live(gen, op)
	o.gen++
	return o.gen
}

// retry panics if o already failed. A failed compile or link is terminal.
func (o *object) retry(op string) {
	if o != nil && o.failed {
		panic(fmt.Sprintf("glw: %s: %s %d already failed; create a new one", op, o.what, o.raw))
	}
}

func (o *object) label() string {
	if o.what == "shader" {
		return fmt.Sprintf("%s shader %d", o.kind, o.raw)
	}
	return fmt.Sprintf("program %d", o.raw)
}
