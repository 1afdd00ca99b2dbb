package softgl

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gogpu/glw/internal/glconst"
)

func TestBindBuffer(t *testing.T) {
	d := New()
	names := make([]uint32, 2)
	d.GenBuffers(names)

	d.BindBuffer(glconst.ARRAY_BUFFER, names[0])
	d.BindBuffer(glconst.UNIFORM_BUFFER, names[1])
	requireNoError(t, d)
	assert.Equal(t, names[0], d.Binding(glconst.ARRAY_BUFFER))
	assert.Equal(t, names[1], d.Binding(glconst.UNIFORM_BUFFER))

	d.BindBuffer(glconst.ARRAY_BUFFER, 0)
	assert.Zero(t, d.Binding(glconst.ARRAY_BUFFER))

	d.DeleteBuffers(names[1:])
	assert.Zero(t, d.Binding(glconst.UNIFORM_BUFFER), "deleting a bound buffer unbinds it")
	requireNoError(t, d)
}

func TestBindErrors(t *testing.T) {
	d := New()
	tex := make([]uint32, 1)
	d.GenTextures(tex)

	d.BindBuffer(glconst.TEXTURE_2D, 0)
	assert.Equal(t, uint32(glconst.INVALID_ENUM), d.GetError())

	d.BindBuffer(glconst.ARRAY_BUFFER, 5)
	assert.Equal(t, uint32(glconst.INVALID_OPERATION), d.GetError())

	// A texture name is not a buffer name, even with the same value.
	bufs := make([]uint32, 1)
	d.GenBuffers(bufs)
	d.DeleteBuffers(bufs)
	d.BindBuffer(glconst.ARRAY_BUFFER, tex[0])
	assert.Equal(t, uint32(glconst.INVALID_OPERATION), d.GetError())
}

func TestBindTextureTargetSticks(t *testing.T) {
	d := New()
	tex := make([]uint32, 1)
	d.GenTextures(tex)

	d.BindTexture(glconst.TEXTURE_2D, tex[0])
	d.BindTexture(glconst.TEXTURE_2D, tex[0])
	requireNoError(t, d)

	d.BindTexture(glconst.TEXTURE_3D, tex[0])
	assert.Equal(t, uint32(glconst.INVALID_OPERATION), d.GetError())
	assert.Zero(t, d.Binding(glconst.TEXTURE_3D))
}

func TestBindVertexArray(t *testing.T) {
	d := New()
	vao := make([]uint32, 1)
	d.GenVertexArrays(vao)

	d.BindVertexArray(vao[0])
	requireNoError(t, d)
	assert.Equal(t, vao[0], d.Binding(glconst.VERTEX_ARRAY))

	d.BindVertexArray(vao[0] + 1)
	assert.Equal(t, uint32(glconst.INVALID_OPERATION), d.GetError())

	d.DeleteVertexArrays(vao)
	assert.Zero(t, d.Binding(glconst.VERTEX_ARRAY))
}

func TestFramebufferStatus(t *testing.T) {
	d := New()
	assert.Equal(t, uint32(glconst.FRAMEBUFFER_COMPLETE), d.CheckFramebufferStatus(glconst.FRAMEBUFFER))

	fbo := make([]uint32, 1)
	d.GenFramebuffers(fbo)
	d.BindFramebuffer(glconst.FRAMEBUFFER, fbo[0])
	requireNoError(t, d)
	assert.Equal(t, fbo[0], d.Binding(glconst.READ_FRAMEBUFFER))
	assert.Equal(t, fbo[0], d.Binding(glconst.DRAW_FRAMEBUFFER))
	assert.Equal(t, uint32(glconst.FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT),
		d.CheckFramebufferStatus(glconst.DRAW_FRAMEBUFFER))

	d.BindFramebuffer(glconst.READ_FRAMEBUFFER, 0)
	assert.Equal(t, uint32(glconst.FRAMEBUFFER_COMPLETE), d.CheckFramebufferStatus(glconst.READ_FRAMEBUFFER))
	assert.Equal(t, fbo[0], d.Binding(glconst.FRAMEBUFFER))

	assert.Zero(t, d.CheckFramebufferStatus(glconst.ARRAY_BUFFER))
	assert.Equal(t, uint32(glconst.INVALID_ENUM), d.GetError())
}
