package softgl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/glw/internal/glconst"
)

func TestLinkGraphics(t *testing.T) {
	d := New()
	vs := compiled(t, d, glconst.VERTEX_SHADER, vertexSource)
	fs := compiled(t, d, glconst.FRAGMENT_SHADER, fragmentSource)
	prog := linked(t, d, vs, fs)

	assert.Equal(t, int32(2), d.GetProgramiv(prog, glconst.ATTACHED_SHADERS))
	assert.Equal(t, int32(2), d.GetProgramiv(prog, glconst.ACTIVE_ATTRIBUTES))
	assert.Zero(t, d.GetProgramiv(prog, glconst.ACTIVE_UNIFORMS))
	assert.Zero(t, d.GetProgramiv(prog, glconst.INFO_LOG_LENGTH))
	assert.Positive(t, d.GetProgramiv(prog, glconst.PROGRAM_BINARY_LENGTH))
	assert.Equal(t, int32(glconst.FALSE), d.GetProgramiv(prog, glconst.VALIDATE_STATUS), "validated only by ValidateProgram")
}

func TestLinkCompute(t *testing.T) {
	d := New()
	cs := compiled(t, d, glconst.COMPUTE_SHADER, computeSource)
	prog := linked(t, d, cs)
	assert.Zero(t, d.GetProgramiv(prog, glconst.ACTIVE_ATTRIBUTES))
}

func TestLinkFailure(t *testing.T) {
	tests := []struct {
		name    string
		sources map[uint32]string
		want    string
	}{
		{"empty", nil, "no shaders attached"},
		{"vertex only", map[uint32]string{glconst.VERTEX_SHADER: vertexSource}, "missing fragment shader"},
		{"fragment only", map[uint32]string{glconst.FRAGMENT_SHADER: fragmentSource}, "missing vertex shader"},
		{
			"stray location",
			map[uint32]string{glconst.VERTEX_SHADER: vertexSource, glconst.FRAGMENT_SHADER: strayFragmentSource},
			"@location(3) is not written by the vertex shader",
		},
		{
			"compute with graphics",
			map[uint32]string{glconst.VERTEX_SHADER: vertexSource, glconst.COMPUTE_SHADER: computeSource},
			"cannot be linked with graphics stages",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New()
			prog := d.CreateProgram()
			for kind, src := range tt.sources {
				d.AttachShader(prog, compiled(t, d, kind, src))
			}
			d.LinkProgram(prog)
			requireNoError(t, d)

			assert.Equal(t, int32(glconst.FALSE), d.GetProgramiv(prog, glconst.LINK_STATUS))
			assert.Zero(t, d.GetProgramiv(prog, glconst.PROGRAM_BINARY_LENGTH))
			assert.Contains(t, infoLog(d, prog, true), tt.want)
		})
	}
}

func TestLinkUncompiledShader(t *testing.T) {
	d := New()
	vs := d.CreateShader(glconst.VERTEX_SHADER)
	fs := compiled(t, d, glconst.FRAGMENT_SHADER, fragmentSource)
	prog := d.CreateProgram()
	d.AttachShader(prog, vs)
	d.AttachShader(prog, fs)
	d.LinkProgram(prog)

	assert.Equal(t, int32(glconst.FALSE), d.GetProgramiv(prog, glconst.LINK_STATUS))
	assert.Contains(t, infoLog(d, prog, true), "vertex shader 1 is not compiled")
}

func TestRelinkAfterFailure(t *testing.T) {
	d := New()
	vs := compiled(t, d, glconst.VERTEX_SHADER, vertexSource)
	prog := d.CreateProgram()
	d.AttachShader(prog, vs)
	d.LinkProgram(prog)
	require.Equal(t, int32(glconst.FALSE), d.GetProgramiv(prog, glconst.LINK_STATUS))

	d.AttachShader(prog, compiled(t, d, glconst.FRAGMENT_SHADER, fragmentSource))
	d.LinkProgram(prog)
	assert.Equal(t, int32(glconst.TRUE), d.GetProgramiv(prog, glconst.LINK_STATUS))
	assert.Zero(t, d.GetProgramiv(prog, glconst.INFO_LOG_LENGTH))
}

func TestAttachDetach(t *testing.T) {
	d := New()
	vs := compiled(t, d, glconst.VERTEX_SHADER, vertexSource)
	prog := d.CreateProgram()

	d.AttachShader(prog, vs)
	requireNoError(t, d)
	d.AttachShader(prog, vs)
	assert.Equal(t, uint32(glconst.INVALID_OPERATION), d.GetError())

	d.DetachShader(prog, vs)
	requireNoError(t, d)
	assert.Zero(t, d.GetProgramiv(prog, glconst.ATTACHED_SHADERS))
	d.DetachShader(prog, vs)
	assert.Equal(t, uint32(glconst.INVALID_OPERATION), d.GetError())

	d.AttachShader(vs, vs)
	assert.Equal(t, uint32(glconst.INVALID_OPERATION), d.GetError())
}

func TestUseProgram(t *testing.T) {
	d := New()
	cs := compiled(t, d, glconst.COMPUTE_SHADER, computeSource)
	prog := linked(t, d, cs)

	d.UseProgram(prog)
	requireNoError(t, d)
	assert.Equal(t, prog, d.CurrentProgram())

	d.UseProgram(0)
	assert.Zero(t, d.CurrentProgram())

	unlinked := d.CreateProgram()
	d.UseProgram(unlinked)
	assert.Equal(t, uint32(glconst.INVALID_OPERATION), d.GetError())
	assert.Zero(t, d.CurrentProgram())
}

func TestDeleteAttachedShaderIsDeferred(t *testing.T) {
	d := New()
	vs := compiled(t, d, glconst.VERTEX_SHADER, vertexSource)
	fs := compiled(t, d, glconst.FRAGMENT_SHADER, fragmentSource)
	prog := linked(t, d, vs, fs)

	d.DeleteShader(vs)
	requireNoError(t, d)
	assert.Equal(t, int32(glconst.TRUE), d.GetShaderiv(vs, glconst.DELETE_STATUS))

	d.DetachShader(prog, vs)
	requireNoError(t, d)
	d.GetShaderiv(vs, glconst.DELETE_STATUS)
	assert.Equal(t, uint32(glconst.INVALID_VALUE), d.GetError(), "freed on last detach")

	// The linked program is unaffected.
	assert.Equal(t, int32(glconst.TRUE), d.GetProgramiv(prog, glconst.LINK_STATUS))
}

func TestDeleteCurrentProgramIsDeferred(t *testing.T) {
	d := New()
	vs := compiled(t, d, glconst.VERTEX_SHADER, vertexSource)
	fs := compiled(t, d, glconst.FRAGMENT_SHADER, fragmentSource)
	prog := linked(t, d, vs, fs)
	d.DeleteShader(vs)
	d.DeleteShader(fs)

	d.UseProgram(prog)
	d.DeleteProgram(prog)
	requireNoError(t, d)
	assert.Equal(t, int32(glconst.TRUE), d.GetProgramiv(prog, glconst.DELETE_STATUS))
	assert.Equal(t, 3, d.Live(glconst.PROGRAM))

	d.UseProgram(0)
	assert.Zero(t, d.Live(glconst.PROGRAM), "program and its pending shaders are freed")
	requireNoError(t, d)
}

func TestProgramInfoLogErrors(t *testing.T) {
	d := New()
	sh := d.CreateShader(glconst.VERTEX_SHADER)
	d.GetProgramInfoLog(sh, make([]byte, 8))
	assert.Equal(t, uint32(glconst.INVALID_OPERATION), d.GetError())

	prog := d.CreateProgram()
	d.GetProgramiv(prog, glconst.SHADER_TYPE)
	assert.Equal(t, uint32(glconst.INVALID_ENUM), d.GetError())

	d.DeleteProgram(0)
	requireNoError(t, d)
}
