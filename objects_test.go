package glw

import (
	"errors"
	"testing"

	"github.com/gogpu/glw/internal/glconst"
	"github.com/gogpu/glw/softgl"
)

func TestGenNames(t *testing.T) {
	d := softgl.New()
	c := NewContext(d)

	bufs, err := GenNames[Buffer](c, 3)
	if err != nil {
		t.Fatalf("GenNames() = %v", err)
	}
	for i, b := range bufs {
		if !b.Valid() {
			t.Errorf("name %d is not valid", i)
		}
	}
	if got := d.Live(glconst.BUFFER); got != 3 {
		t.Errorf("live buffers = %d, want 3", got)
	}

	Delete(c, bufs)
	for i, b := range bufs {
		if b.Valid() {
			t.Errorf("name %d still valid after Delete", i)
		}
	}
	if got := d.Live(glconst.BUFFER); got != 0 {
		t.Errorf("live buffers = %d after Delete", got)
	}
}

func TestGenEveryKind(t *testing.T) {
	d := softgl.New()
	c := NewContext(d)
	check := func(id uint32, n int) {
		t.Helper()
		if got := d.Live(id); got != n {
			t.Errorf("live %#x = %d, want %d", id, got, n)
		}
	}

	tex, _ := GenNames[Texture](c, 2)
	vao, _ := GenNames[VertexArray](c, 2)
	fbo, _ := GenNames[Framebuffer](c, 2)
	rbo, _ := GenNames[Renderbuffer](c, 2)
	smp, _ := GenNames[Sampler](c, 2)
	qry, _ := GenNames[Query](c, 2)
	check(glconst.TEXTURE, 2)
	check(glconst.VERTEX_ARRAY, 2)
	check(glconst.FRAMEBUFFER, 2)
	check(glconst.RENDERBUFFER, 2)
	check(glconst.SAMPLER, 2)
	check(glconst.QUERY, 2)

	Delete(c, tex)
	Delete(c, vao)
	Delete(c, fbo)
	Delete(c, rbo)
	Delete(c, smp)
	Delete(c, qry)
	for _, id := range []uint32{glconst.TEXTURE, glconst.VERTEX_ARRAY, glconst.FRAMEBUFFER, glconst.RENDERBUFFER, glconst.SAMPLER, glconst.QUERY} {
		check(id, 0)
	}
}

func TestGenReplacesEntries(t *testing.T) {
	c := NewContext(softgl.New())
	opts := []OptionName[Query]{OptionFromRaw[Query](500), NoName[Query]()}
	if err := Gen(c, opts); err != nil {
		t.Fatal(err)
	}
	for i, o := range opts {
		if !o.IsSome() || o.Raw() == 500 {
			t.Errorf("entry %d = %v, want a fresh name", i, o)
		}
	}
}

func TestGenAllocationFailure(t *testing.T) {
	d := softgl.New(softgl.WithMaxNames(2))
	c := NewContext(d)

	names, err := GenNames[Buffer](c, 3)
	if names != nil {
		t.Errorf("GenNames returned names alongside an error")
	}
	var inc *IncompleteError[Buffer]
	if !errors.As(err, &inc) || !errors.Is(err, ErrAllocationFailed) {
		t.Fatalf("GenNames() = %v, want *IncompleteError", err)
	}
	if inc.Index != 2 || !inc.Names[0].IsSome() || !inc.Names[1].IsSome() {
		t.Errorf("IncompleteError = %+v", inc)
	}

	// What was allocated can still be released.
	DeleteOptions(c, inc.Names)
	if got := d.Live(glconst.BUFFER); got != 0 {
		t.Errorf("live buffers = %d after DeleteOptions", got)
	}
	for i, o := range inc.Names {
		if o.IsSome() {
			t.Errorf("entry %d still present after DeleteOptions", i)
		}
	}
}

func TestGenAllocationFailureWithErrorCheck(t *testing.T) {
	c := NewContext(softgl.New(softgl.WithMaxNames(1)), WithErrorCheck(true))
	_, err := GenNames[Texture](c, 2)
	var de *DriverError
	if !errors.As(err, &de) || de.Code != ErrorCodeOutOfMemory {
		t.Fatalf("GenNames() = %v, want OutOfMemory", err)
	}
	if de.Op != "Gen Texture" {
		t.Errorf("Op = %q", de.Op)
	}
}

func TestDeleteTwicePanics(t *testing.T) {
	c := NewContext(softgl.New())
	bufs, _ := GenNames[Buffer](c, 2)
	Delete(c, bufs)
	defer func() {
		if recover() == nil {
			t.Fatal("second Delete did not panic")
		}
	}()
	Delete(c, bufs)
}

func TestUseAfterDeletePanics(t *testing.T) {
	c := NewContext(softgl.New())
	bufs, _ := GenNames[Buffer](c, 1)
	b := bufs
	Delete(c, b)
	defer func() {
		if recover() == nil {
			t.Fatal("Raw() of a deleted name did not panic")
		}
	}()
	_ = bufs[0].Raw()
}

func TestLabels(t *testing.T) {
	d := softgl.New()
	c := NewContext(d, WithLabels(true))
	vaos, err := GenNames[VertexArray](c, 1)
	if err != nil {
		t.Fatal(err)
	}
	raw := vaos[0].Raw()
	if got, want := d.GetObjectLabel(glconst.VERTEX_ARRAY, raw), "VertexArray 1"; got != want {
		t.Errorf("label = %q, want %q", got, want)
	}

	Label(c, vaos[0], "quad")
	if got := d.GetObjectLabel(glconst.VERTEX_ARRAY, raw); got != "quad" {
		t.Errorf("label = %q after Label", got)
	}
}

func TestBind(t *testing.T) {
	d := softgl.New()
	c := NewContext(d, WithErrorCheck(true))

	bufs, _ := GenNames[Buffer](c, 1)
	c.BindBuffer(BufferTargetElementArray, SomeName(bufs[0]))
	if got := d.Binding(glconst.ELEMENT_ARRAY_BUFFER); got != bufs[0].Raw() {
		t.Errorf("element array binding = %d", got)
	}
	c.BindBuffer(BufferTargetElementArray, NoName[Buffer]())
	if got := d.Binding(glconst.ELEMENT_ARRAY_BUFFER); got != 0 {
		t.Errorf("element array binding = %d after unbind", got)
	}

	texs, _ := GenNames[Texture](c, 1)
	c.BindTexture(TextureTarget2D, texs[0].Option())
	if got := d.Binding(glconst.TEXTURE_2D); got != texs[0].Raw() {
		t.Errorf("texture binding = %d", got)
	}

	vaos, _ := GenNames[VertexArray](c, 1)
	c.BindVertexArray(vaos[0].Option())
	if got := d.Binding(glconst.VERTEX_ARRAY); got != vaos[0].Raw() {
		t.Errorf("vertex array binding = %d", got)
	}
	if err := c.Err(); err != nil {
		t.Fatalf("Err() = %v", err)
	}
}

func TestFramebuffer(t *testing.T) {
	c := NewContext(softgl.New(), WithErrorCheck(true))

	st, err := c.CheckFramebufferStatus(FramebufferTargetBoth)
	if err != nil || st != FramebufferStatusComplete {
		t.Fatalf("default framebuffer status = %v, %v", st, err)
	}

	fbos, _ := GenNames[Framebuffer](c, 1)
	c.BindFramebuffer(FramebufferTargetDraw, fbos[0].Option())
	st, err = c.CheckFramebufferStatus(FramebufferTargetDraw)
	if err != nil || st != FramebufferStatusIncompleteMissingAttachment {
		t.Errorf("status = %v, %v", st, err)
	}

	c.BindFramebuffer(FramebufferTargetBoth, DefaultFramebuffer)
	st, _ = c.CheckFramebufferStatus(FramebufferTargetRead)
	if st != FramebufferStatusComplete {
		t.Errorf("status after binding the default framebuffer = %v", st)
	}
}

func TestFramebufferStatusUndeclared(t *testing.T) {
	// Without error checking the 0 returned for a bad target reaches Decode.
	c := NewContext(softgl.New())
	_, err := c.CheckFramebufferStatus(FramebufferTarget(glconst.ARRAY_BUFFER))
	if !errors.Is(err, ErrUnknownVariant) {
		t.Errorf("CheckFramebufferStatus(bad target) = %v", err)
	}
}
