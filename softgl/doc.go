// Package softgl is a pure Go implementation of driver.Driver.
//
// softgl keeps the bookkeeping of an OpenGL 4.6 core context: object names,
// bindings, debug labels, the error flag queue, shader compile status,
// program link status and program binaries. It draws nothing. It exists so
// glw programs can be tested without a GPU or a window, and so shader
// pipelines can be checked offline.
//
// Most callers use softgl through glw.NewContext. Shader sources are WGSL. CompileShader parses and lowers the source with
// naga and selects the entry point whose stage matches the shader kind:
//
//	d := softgl.New()
//	vs := d.CreateShader(uint32(glw.ShaderKindVertex))
//	d.ShaderSource(vs, []string{src})
//	d.CompileShader(vs)
//
// Compile errors are reported through the info log, as a real driver does.
// LinkProgram accepts a vertex plus fragment pair or a single compute
// shader and checks that every fragment input location is written by the
// vertex stage. Linked programs serialize to a CBOR program binary
// (BinaryFormat), which ProgramBinary accepts on any driver with the same
// renderer string.
//
// Compiled modules are cached by kind and source. ShaderModule and
// TranslateGLSL expose the SPIR-V and GLSL forms of a compiled shader.
//
// A Driver is safe for concurrent use, although OpenGL itself is not.
package softgl
