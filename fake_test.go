package glw

import (
	"github.com/gogpu/glw/internal/glconst"
	"github.com/gogpu/glw/softgl"
)

// fakeDriver is a softgl driver whose status queries can be overridden to
// return values a conforming driver never would.
type fakeDriver struct {
	*softgl.Driver

	compileStatus *int32
	linkStatus    *int32
}

func newFakeDriver(opts ...softgl.Option) *fakeDriver {
	return &fakeDriver{Driver: softgl.New(opts...)}
}

func (d *fakeDriver) GetShaderiv(shader, pname uint32) int32 {
	if pname == glconst.COMPILE_STATUS && d.compileStatus != nil {
		return *d.compileStatus
	}
	return d.Driver.GetShaderiv(shader, pname)
}

func (d *fakeDriver) GetProgramiv(program, pname uint32) int32 {
	if pname == glconst.LINK_STATUS && d.linkStatus != nil {
		return *d.linkStatus
	}
	return d.Driver.GetProgramiv(program, pname)
}

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

const strayFragmentSource = `
@fragment
fn main(@location(2) color: vec3<f32>) -> @location(0) vec4<f32> {
    return vec4<f32>(color.x, color.y, color.z, 1.0);
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

const uniformFragmentSource = `
@group(0) @binding(0) var<uniform> tint: vec4<f32>;
@group(0) @binding(1) var<uniform> scale: f32;
@group(0) @binding(2) var<uniform> transform: mat4x4<f32>;
@group(0) @binding(3) var<uniform> mode: i32;

@fragment
fn main(@location(0) color: vec3<f32>) -> @location(0) vec4<f32> {
    let base = transform * vec4<f32>(color.x, color.y, color.z, scale);
    return base + tint * f32(mode);
}
`
