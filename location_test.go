package glw

import (
	"errors"
	"testing"
	"unsafe"

	"github.com/gogpu/glw/softgl"
)

func TestLocationSize(t *testing.T) {
	// One int32 for every kind, present or optional.
	sizes := map[string]uintptr{
		"Location[Attribute]":               unsafe.Sizeof(Location[Attribute]{}),
		"Location[Uniform[float32]]":        unsafe.Sizeof(Location[Uniform[float32]]{}),
		"OptionLocation[Attribute]":         unsafe.Sizeof(OptionLocation[Attribute]{}),
		"OptionLocation[Uniform[Mat4]]":     unsafe.Sizeof(OptionLocation[Uniform[Mat4]]{}),
		"OptionLocation[Uniform[[4]int32]]": unsafe.Sizeof(OptionLocation[Uniform[[4]int32]]{}),
	}
	for name, size := range sizes {
		if size != unsafe.Sizeof(int32(0)) {
			t.Errorf("unsafe.Sizeof(%s) = %d, want 4", name, size)
		}
	}
}

func TestLocationRoundTrip(t *testing.T) {
	for _, raw := range []int32{0, 1, 15, 1<<31 - 1} {
		l, ok := NewLocation[Attribute](raw)
		if !ok || !l.Valid() {
			t.Fatalf("NewLocation(%d) = %v, %v", raw, l, ok)
		}
		if got := l.Raw(); got != raw {
			t.Errorf("NewLocation(%d).Raw() = %d", raw, got)
		}
		o := LocationFromRaw[Attribute](raw)
		if got, ok := o.Get(); !ok || got != l {
			t.Errorf("LocationFromRaw(%d).Get() = %v, %v", raw, got, ok)
		}
		if o.Raw() != raw || o != l.Option() {
			t.Errorf("LocationFromRaw(%d) = %v, want %v", raw, o, l.Option())
		}
	}

	for _, raw := range []int32{-1, -2, -1 << 31} {
		if _, ok := NewLocation[Attribute](raw); ok {
			t.Errorf("NewLocation(%d) reported ok", raw)
		}
		o := LocationFromRaw[Attribute](raw)
		if o.IsSome() || o != NoLocation[Attribute]() {
			t.Errorf("LocationFromRaw(%d) = %v, want absent", raw, o)
		}
		if o.Raw() != -1 {
			t.Errorf("LocationFromRaw(%d).Raw() = %d, want -1", raw, o.Raw())
		}
	}

	var zero OptionLocation[Uniform[float32]]
	if zero.IsSome() || zero.Raw() != -1 {
		t.Errorf("zero OptionLocation = %v, raw %d", zero, zero.Raw())
	}
}

func TestLocationReinterpret(t *testing.T) {
	// Driver values read straight into a slice of options decode the same
	// way as LocationFromRaw.
	raw := []int32{3, -1, 0}
	inv := make([]uint32, len(raw))
	for i, r := range raw {
		inv[i] = ^uint32(r)
	}
	opts := unsafe.Slice((*OptionLocation[Attribute])(unsafe.Pointer(&inv[0])), len(inv))
	for i, r := range raw {
		if opts[i] != LocationFromRaw[Attribute](r) {
			t.Errorf("opts[%d] = %v, want %v", i, opts[i], LocationFromRaw[Attribute](r))
		}
	}
}

func TestZeroLocationRawPanics(t *testing.T) {
	mustPanic(t, "uninitialized Uniform[float32] location", func() {
		var l Location[Uniform[float32]]
		_ = l.Raw()
	})
}

func TestLocationString(t *testing.T) {
	l, _ := NewLocation[Attribute](2)
	if got := l.String(); got != "Attribute@2" {
		t.Errorf("String() = %q", got)
	}
	u, _ := NewLocation[Uniform[[4]float32]](7)
	if got := u.Option().String(); got != "Uniform[[4]float32]@7" {
		t.Errorf("String() = %q", got)
	}
	if got := NoLocation[Uniform[Mat4]]().String(); got != "Uniform[glw.Mat4](none)" {
		t.Errorf("String() = %q", got)
	}
}

// uniformTestProgram links vertexSource with uniformFragmentSource.
func uniformTestProgram(t *testing.T, c *Context) Program[Linked] {
	t.Helper()
	vs := compileShader[VertexShader](t, c, vertexSource)
	fs := compileShader[FragmentShader](t, c, uniformFragmentSource)
	res := linkProgram(t, c, func(p Program[Unlinked]) {
		Attach(p, vs)
		Attach(p, fs)
	})
	p, ok := res.Linked()
	if !ok {
		bad, _ := res.Unlinked()
		log, _ := bad.InfoLog()
		t.Fatalf("link failed: %s", log)
	}
	return p
}

func TestGetAttribLocation(t *testing.T) {
	c := NewContext(softgl.New(), WithErrorCheck(true))
	p := uniformTestProgram(t, c)

	for name, want := range map[string]int32{"position": 0, "color": 1} {
		loc, ok := GetAttribLocation(p, name).Get()
		if !ok || loc.Raw() != want {
			t.Errorf("GetAttribLocation(%q) = %v, %v; want %d", name, loc, ok, want)
		}
	}
	for _, name := range []string{"normal", "gl_VertexID", ""} {
		if o := GetAttribLocation(p, name); o.IsSome() {
			t.Errorf("GetAttribLocation(%q) = %v, want absent", name, o)
		}
	}
	if err := c.Err(); err != nil {
		t.Errorf("Err() = %v", err)
	}
}

func TestUniformRoundTrip(t *testing.T) {
	c := NewContext(softgl.New(), WithErrorCheck(true))
	p := uniformTestProgram(t, c)

	tint, ok := GetUniformLocation[[4]float32](p, "tint").Get()
	if !ok {
		t.Fatal("tint has no location")
	}
	want := [4]float32{0.1, 0.2, 0.3, 1}
	if err := SetUniform(p, tint, want); err != nil {
		t.Fatalf("SetUniform(tint) = %v", err)
	}
	if got, err := GetUniform(p, tint); err != nil || got != want {
		t.Errorf("GetUniform(tint) = %v, %v; want %v", got, err, want)
	}

	scale, _ := GetUniformLocation[float32](p, "scale").Get()
	if err := SetUniform(p, scale, 0.5); err != nil {
		t.Fatalf("SetUniform(scale) = %v", err)
	}
	if got, _ := GetUniform(p, scale); got != 0.5 {
		t.Errorf("GetUniform(scale) = %v", got)
	}

	mode, _ := GetUniformLocation[int32](p, "mode").Get()
	if err := SetUniform(p, mode, -7); err != nil {
		t.Fatalf("SetUniform(mode) = %v", err)
	}
	if got, _ := GetUniform(p, mode); got != -7 {
		t.Errorf("GetUniform(mode) = %v", got)
	}

	transform, _ := GetUniformLocation[Mat4](p, "transform").Get()
	var m Mat4
	for i := range m {
		m[i] = float32(i) / 2
	}
	if err := SetUniform(p, transform, m); err != nil {
		t.Fatalf("SetUniform(transform) = %v", err)
	}
	if got, _ := GetUniform(p, transform); got != m {
		t.Errorf("GetUniform(transform) = %v, want %v", got, m)
	}

	if o := GetUniformLocation[float32](p, "missing"); o.IsSome() {
		t.Errorf("GetUniformLocation(missing) = %v", o)
	}
}

func TestSetUniformWrongType(t *testing.T) {
	c := NewContext(softgl.New(), WithErrorCheck(true))
	p := uniformTestProgram(t, c)

	// The lookup cannot check T; the driver rejects the write.
	wrong, ok := GetUniformLocation[[4]int32](p, "tint").Get()
	if !ok {
		t.Fatal("tint has no location")
	}
	err := SetUniform(p, wrong, [4]int32{1, 2, 3, 4})
	var de *DriverError
	if !errors.As(err, &de) || de.Op != "ProgramUniform" || de.Code != ErrorCodeInvalidOperation {
		t.Errorf("SetUniform(wrong type) = %v", err)
	}

	tint, _ := GetUniformLocation[[4]float32](p, "tint").Get()
	if got, _ := GetUniform(p, tint); got != ([4]float32{}) {
		t.Errorf("rejected write changed tint to %v", got)
	}
}

func TestLocationAfterDeletePanics(t *testing.T) {
	c := NewContext(softgl.New())
	p := uniformTestProgram(t, c)
	p.Delete()
	mustPanic(t, "GetUniformLocation", func() { GetUniformLocation[float32](p, "scale") })
}
