package softgl

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gogpu/glw/internal/glconst"
)

const vertexSource = `
struct VertexOutput {
    @builtin(position) position: vec4<f32>,
    @location(0) color: vec3<f32>,
}

@vertex
fn main(@location(0) position: vec3<f32>, @location(1) color: vec3<f32>) -> VertexOutput {
    var output: VertexOutput;
    output.position = vec4<f32>(position.x, position.y, position.z, 1.0);
    output.color = color;
    return output;
}
`

const fragmentSource = `
@fragment
fn main(@location(0) color: vec3<f32>) -> @location(0) vec4<f32> {
    return vec4<f32>(color.x, color.y, color.z, 1.0);
}
`

// fragmentSource with its input moved to a location the vertex stage
// never writes.
const strayFragmentSource = `
@fragment
fn main(@location(3) color: vec3<f32>) -> @location(0) vec4<f32> {
    return vec4<f32>(color.x, color.y, color.z, 1.0);
}
`

// uniformFragmentSource declares one uniform of each settable shape plus a
// struct uniform, which has no location.
const uniformFragmentSource = `
struct Light {
    dir: vec4<f32>,
}

@group(0) @binding(0) var<uniform> tint: vec4<f32>;
@group(0) @binding(1) var<uniform> scale: f32;
@group(0) @binding(2) var<uniform> transform: mat4x4<f32>;
@group(0) @binding(3) var<uniform> mode: i32;
@group(1) @binding(0) var<uniform> light: Light;

@fragment
fn main(@location(0) color: vec3<f32>) -> @location(0) vec4<f32> {
    let base = transform * vec4<f32>(color.x, color.y, color.z, scale);
    return base + tint * f32(mode) + light.dir;
}
`

// scaledVertexSource declares scale with a type that clashes with
// uniformFragmentSource.
const scaledVertexSource = `
struct VertexOutput {
    @builtin(position) position: vec4<f32>,
    @location(0) color: vec3<f32>,
}

@group(0) @binding(1) var<uniform> scale: vec2<f32>;

@vertex
fn main(@location(0) position: vec3<f32>, @location(1) color: vec3<f32>) -> VertexOutput {
    var output: VertexOutput;
    output.position = vec4<f32>(position.x * scale.x, position.y * scale.y, position.z, 1.0);
    output.color = color;
    return output;
}
`

const computeSource = `
@compute @workgroup_size(64)
fn main(@builtin(global_invocation_id) global_id: vec3<u32>) {
}
`

const brokenSource = `
@vertex
fn main( {
    return vec4<f32>(0.0);
}
`

// unresolvedSource parses but fails to lower.
const unresolvedSource = `@fragment
fn main() -> @location(0) vec4<f32> {
    let c = unknownColor;
    return vec4<f32>(0.0, 0.0, 0.0, 1.0);
}
`

// requireNoError fails the test if d has a pending error flag.
func requireNoError(t *testing.T, d *Driver) {
	t.Helper()
	require.Equal(t, uint32(glconst.NO_ERROR), d.GetError(), "unexpected GL error")
}

// compiled creates and compiles a shader of kind from src.
func compiled(t *testing.T, d *Driver, kind uint32, src string) uint32 {
	t.Helper()
	sh := d.CreateShader(kind)
	require.NotZero(t, sh)
	d.ShaderSource(sh, []string{src})
	d.CompileShader(sh)
	require.Equal(t, int32(glconst.TRUE), d.GetShaderiv(sh, glconst.COMPILE_STATUS), infoLog(d, sh, false))
	requireNoError(t, d)
	return sh
}

// linked links a program from the given shaders.
func linked(t *testing.T, d *Driver, shaders ...uint32) uint32 {
	t.Helper()
	prog := d.CreateProgram()
	require.NotZero(t, prog)
	for _, sh := range shaders {
		d.AttachShader(prog, sh)
	}
	d.LinkProgram(prog)
	require.Equal(t, int32(glconst.TRUE), d.GetProgramiv(prog, glconst.LINK_STATUS), infoLog(d, prog, true))
	requireNoError(t, d)
	return prog
}

func infoLog(d *Driver, name uint32, program bool) string {
	buf := make([]byte, 4096)
	var n int32
	if program {
		n = d.GetProgramInfoLog(name, buf)
	} else {
		n = d.GetShaderInfoLog(name, buf)
	}
	return string(buf[:n])
}
