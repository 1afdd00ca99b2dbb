package glw

import (
	"fmt"

	"github.com/gogpu/glw/internal/glconst"
)

// TextureUnit is a texture image unit. Its raw value is GL_TEXTURE0 plus
// the unit index.
type TextureUnit uint32

// TextureUnit0 is the unit a fresh context has selected.
const TextureUnit0 TextureUnit = glconst.TEXTURE0

// NewTextureUnit returns the unit with index i. It reports false unless
// i < limit, where limit is the value of MaxTextureUnits.
func NewTextureUnit(i, limit uint32) (TextureUnit, bool) {
	if i >= limit {
		return 0, false
	}
	return TextureUnit0 + TextureUnit(i), true
}

// Index returns the zero-based index of u.
func (u TextureUnit) Index() uint32 { return uint32(u - TextureUnit0) }

func (u TextureUnit) String() string { return fmt.Sprintf("TextureUnit(%d)", u.Index()) }

// MaxTextureUnits reads GL_MAX_COMBINED_TEXTURE_IMAGE_UNITS.
func (c *Context) MaxTextureUnits() uint32 {
	n := c.drv.GetIntegerv(glconst.MAX_COMBINED_TEXTURE_IMAGE_UNITS)
	_ = c.checkError("GetIntegerv")
	return uint32(max(n, 0))
}

// ActiveTexture selects the unit BindTexture and TexParameter act on.
func (c *Context) ActiveTexture(u TextureUnit) error {
	c.drv.ActiveTexture(uint32(u))
	return c.checkError("ActiveTexture")
}

// TextureParam is satisfied by the texture parameters that take values of
// type V. TextureFilterParam takes TextureFilter and TextureWrapParam takes
// TextureWrap; pairing a parameter with the other value type does not
// compile.
type TextureParam[V Enum] interface {
	Enum
	takes(V)
}

// TexParameter sets pname of the texture bound to target on the active
// unit. Combinations OpenGL rejects, such as a mipmap filter for
// TextureMagFilter, are reported as a *DriverError when error checking is
// enabled.
func TexParameter[P TextureParam[V], V Enum](c *Context, target TextureTarget, pname P, v V) error {
	c.drv.TexParameteri(uint32(target), uint32(pname), int32(v))
	return c.checkError("TexParameteri")
}

// GetTexParameter reads pname of the texture bound to target on the active
// unit. The value type is named explicitly:
//
//	f, err := glw.GetTexParameter[glw.TextureFilter](c, glw.TextureTarget2D, glw.TextureMinFilter)
func GetTexParameter[V Enum, P TextureParam[V]](c *Context, target TextureTarget, pname P) (V, error) {
	raw := c.drv.GetTexParameteriv(uint32(target), uint32(pname))
	if err := c.checkError("GetTexParameteriv"); err != nil {
		var zero V
		return zero, err
	}
	return Decode[V](int64(raw))
}

// FramebufferTexture2D attaches level of tex to point of the framebuffer
// bound to target. texTarget must be the target tex was created for.
// NoName detaches whatever is attached at point.
func (c *Context) FramebufferTexture2D(target FramebufferTarget, point FramebufferAttachment, texTarget TextureTarget, tex OptionName[Texture], level int32) error {
	c.drv.FramebufferTexture2D(uint32(target), uint32(point), uint32(texTarget), tex.Raw(), level)
	return c.checkError("FramebufferTexture2D")
}
