package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
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

const strayFragmentSource = `
@fragment
fn main(@location(4) color: vec3<f32>) -> @location(0) vec4<f32> {
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

// writeProject writes files into a temporary directory and returns the
// path of its manifest.yaml.
func writeProject(t *testing.T, manifest string, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, src := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(src), 0o644))
	}
	path := filepath.Join(dir, "manifest.yaml")
	require.NoError(t, os.WriteFile(path, []byte(manifest), 0o644))
	return path
}

var shaderFiles = map[string]string{
	"color.vert.wgsl":  vertexSource,
	"color.frag.wgsl":  fragmentSource,
	"stray.frag.wgsl":  strayFragmentSource,
	"broken.vert.wgsl": brokenSource,
	"fill.wgsl":        computeSource,
}

func runCheck(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunAllPass(t *testing.T) {
	path := writeProject(t, `
programs:
  - name: color
    vertex: color.vert.wgsl
    fragment: color.frag.wgsl
  - name: fill
    compute: fill.wgsl
`, shaderFiles)

	code, out, errOut := runCheck(t, path)
	assert.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "ok color")
	assert.Contains(t, out, "ok fill")
	assert.Contains(t, out, "Vertex   color.vert.wgsl")
	assert.Contains(t, out, "SPIR-V words")
	assert.Contains(t, out, "2 attributes")
	assert.NotContains(t, out, "did not reload")
	assert.Contains(t, out, "2 programs, 0 failed")
	assert.Empty(t, errOut)
}

func TestRunFailures(t *testing.T) {
	path := writeProject(t, `
programs:
  - name: broken
    vertex: broken.vert.wgsl
    fragment: color.frag.wgsl
  - name: stray
    vertex: color.vert.wgsl
    fragment: stray.frag.wgsl
  - name: fill
    compute: fill.wgsl
`, shaderFiles)

	code, out, _ := runCheck(t, path)
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "FAIL broken")
	assert.Contains(t, out, "compile failed")
	assert.Contains(t, out, "FAIL stray")
	assert.Contains(t, out, "link failed")
	assert.Contains(t, out, "@location(4) is not written by the vertex shader")
	assert.Contains(t, out, "ok fill")
	assert.Contains(t, out, "3 programs, 2 failed")
}

func TestRunConcurrent(t *testing.T) {
	var manifest strings.Builder
	manifest.WriteString("programs:\n")
	for i := range 8 {
		fmt.Fprintf(&manifest, "  - {name: color%d, vertex: color.vert.wgsl, fragment: color.frag.wgsl}\n", i)
		fmt.Fprintf(&manifest, "  - {name: fill%d, compute: fill.wgsl}\n", i)
	}
	path := writeProject(t, manifest.String(), shaderFiles)

	code, out, errOut := runCheck(t, "-j", "4", path)
	assert.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "16 programs, 0 failed")
	// Results are reported in manifest order.
	assert.Less(t, strings.Index(out, "ok color0"), strings.Index(out, "ok fill0"))
	assert.Less(t, strings.Index(out, "ok fill0"), strings.Index(out, "ok color1"))
}

func TestRunGLSL(t *testing.T) {
	path := writeProject(t, `
renderer: glsl-test
programs:
  - name: color
    vertex: color.vert.wgsl
    fragment: color.frag.wgsl
`, shaderFiles)

	code, out, _ := runCheck(t, "-glsl", path)
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "#version 430 core")
}

func TestRunVerbose(t *testing.T) {
	path := writeProject(t, "programs:\n  - {name: fill, compute: fill.wgsl}\n", shaderFiles)

	code, _, errOut := runCheck(t, "-v", path)
	assert.Equal(t, 0, code)
	assert.Contains(t, errOut, "softgl: compiled")
	assert.Contains(t, errOut, "level=DEBUG")
}

func TestRunMissingShader(t *testing.T) {
	path := writeProject(t, "programs:\n  - {name: gone, compute: gone.wgsl}\n", shaderFiles)

	code, _, errOut := runCheck(t, path)
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, `program "gone"`)
	assert.Contains(t, errOut, "gone.wgsl")
}

func TestRunUsage(t *testing.T) {
	code, _, errOut := runCheck(t)
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "usage: glwcheck")

	code, _, _ = runCheck(t, "-nosuchflag", "x.yaml")
	assert.Equal(t, 2, code)

	code, _, errOut = runCheck(t, filepath.Join(t.TempDir(), "none.yaml"))
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "failed to read file")
}
