package glw

import "fmt"

// DefaultFramebuffer is the window-system framebuffer, bound by passing it
// to BindFramebuffer.
var DefaultFramebuffer = NoName[Framebuffer]()

// Gen allocates one object of kind K per entry of opts, in place. Entries the
// driver could not allocate are left absent.
func Gen[K ObjectTag](c *Context, opts []OptionName[K]) error {
	var k K
	raw := RawNames(opts)
	clear(raw)
	switch k.Value() {
	case ObjectKindBuffer:
		c.drv.GenBuffers(raw)
	case ObjectKindTexture:
		c.drv.GenTextures(raw)
	case ObjectKindVertexArray:
		c.drv.GenVertexArrays(raw)
	case ObjectKindFramebuffer:
		c.drv.GenFramebuffers(raw)
	case ObjectKindRenderbuffer:
		c.drv.GenRenderbuffers(raw)
	case ObjectKindSampler:
		c.drv.GenSamplers(raw)
	case ObjectKindQuery:
		c.drv.GenQueries(raw)
	}
	c.log.Debug("glw: gen", "kind", k, "count", len(opts))
	if err := c.checkError("Gen " + kindName[K]()); err != nil {
		return err
	}
	if c.labels {
		for _, o := range opts {
			if o.IsSome() {
				c.drv.ObjectLabel(uint32(k.Value()), o.raw, fmt.Sprintf("%s %d", k.Value(), o.raw))
			}
		}
	}
	return nil
}

// GenNames allocates n objects of kind K. If the driver fails to allocate
// any of them the error is an *IncompleteError whose Names field holds what
// was allocated; release those with DeleteOptions.
func GenNames[K ObjectTag](c *Context, n int) ([]Name[K], error) {
	opts := make([]OptionName[K], n)
	if err := Gen(c, opts); err != nil {
		return nil, err
	}
	return Unwrap(opts)
}

// Delete releases names and zeroes the slice. It panics if an entry is
// already zero, which means it was deleted before.
func Delete[K ObjectTag](c *Context, names []Name[K]) {
	for i, n := range names {
		if !n.Valid() {
			panic(fmt.Sprintf("glw: Delete: %s at index %d was already deleted", kindName[K](), i))
		}
	}
	deleteRaw[K](c, RawNames(Wrap(names)))
}

// DeleteOptions releases the present entries of opts and zeroes the slice.
func DeleteOptions[K ObjectTag](c *Context, opts []OptionName[K]) {
	deleteRaw[K](c, RawNames(opts))
}

func deleteRaw[K ObjectTag](c *Context, raw []uint32) {
	var k K
	switch k.Value() {
	case ObjectKindBuffer:
		c.drv.DeleteBuffers(raw)
	case ObjectKindTexture:
		c.drv.DeleteTextures(raw)
	case ObjectKindVertexArray:
		c.drv.DeleteVertexArrays(raw)
	case ObjectKindFramebuffer:
		c.drv.DeleteFramebuffers(raw)
	case ObjectKindRenderbuffer:
		c.drv.DeleteRenderbuffers(raw)
	case ObjectKindSampler:
		c.drv.DeleteSamplers(raw)
	case ObjectKindQuery:
		c.drv.DeleteQueries(raw)
	}
	c.log.Debug("glw: delete", "kind", k, "count", len(raw))
	_ = c.checkError("Delete " + kindName[K]())
	clear(raw)
}

// Label attaches a debug label to n.
func Label[K ObjectTag](c *Context, n Name[K], label string) {
	var k K
	c.drv.ObjectLabel(uint32(k.Value()), n.Raw(), label)
	_ = c.checkError("ObjectLabel")
}

// BindBuffer binds b to target. NoName unbinds.
func (c *Context) BindBuffer(target BufferTarget, b OptionName[Buffer]) {
	c.drv.BindBuffer(uint32(target), b.Raw())
	_ = c.checkError("BindBuffer")
}

// BindTexture binds t to target. NoName unbinds.
func (c *Context) BindTexture(target TextureTarget, t OptionName[Texture]) {
	c.drv.BindTexture(uint32(target), t.Raw())
	_ = c.checkError("BindTexture")
}

// BindVertexArray binds a. NoName unbinds.
func (c *Context) BindVertexArray(a OptionName[VertexArray]) {
	c.drv.BindVertexArray(a.Raw())
	_ = c.checkError("BindVertexArray")
}

// BindFramebuffer binds fb to target. DefaultFramebuffer selects the
// window-system framebuffer.
func (c *Context) BindFramebuffer(target FramebufferTarget, fb OptionName[Framebuffer]) {
	c.drv.BindFramebuffer(uint32(target), fb.Raw())
	_ = c.checkError("BindFramebuffer")
}

// CheckFramebufferStatus reports the completeness of the framebuffer bound
// to target. A value outside FramebufferStatus, including the 0 a driver
// returns on error, yields an *UnknownVariantError.
func (c *Context) CheckFramebufferStatus(target FramebufferTarget) (FramebufferStatus, error) {
	raw := c.drv.CheckFramebufferStatus(uint32(target))
	if err := c.checkError("CheckFramebufferStatus"); err != nil {
		return 0, err
	}
	return Decode[FramebufferStatus](int64(raw))
}
