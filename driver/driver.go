// Package driver defines the raw OpenGL entry points glw is layered over.
//
// Every method speaks the driver's own vocabulary: object names are uint32,
// enum arguments are uint32 and integer query results are int32. Nothing in
// this package validates anything; that is glw's job.
//
// Implementations:
//   - softgl: pure Go reference driver (shader sources are WGSL, compiled by naga)
//   - gldriver: go-gl binding to a real OpenGL 4.6 context (build tag gldriver)
//
// A Driver is bound to a single context and must be used from one goroutine
// at a time, the same rule OpenGL applies to its current context.
package driver

// Driver is the set of OpenGL 4.6 core entry points used by glw.
//
// The Gen* methods fill names with freshly allocated object names. A
// conforming driver never writes 0 for a successful allocation, but callers
// must not rely on every slot being filled. The Delete* methods silently
// ignore 0 entries, as OpenGL does.
type Driver interface {
	GenBuffers(names []uint32)
	DeleteBuffers(names []uint32)
	GenTextures(names []uint32)
	DeleteTextures(names []uint32)
	GenVertexArrays(names []uint32)
	DeleteVertexArrays(names []uint32)
	GenFramebuffers(names []uint32)
	DeleteFramebuffers(names []uint32)
	GenRenderbuffers(names []uint32)
	DeleteRenderbuffers(names []uint32)
	GenSamplers(names []uint32)
	DeleteSamplers(names []uint32)
	GenQueries(names []uint32)
	DeleteQueries(names []uint32)

	BindBuffer(target, buffer uint32)
	BindTexture(target, texture uint32)
	BindVertexArray(array uint32)
	BindFramebuffer(target, framebuffer uint32)
	CheckFramebufferStatus(target uint32) uint32
	FramebufferTexture2D(target, attachment, textarget, texture uint32, level int32)

	// ActiveTexture selects the texture unit BindTexture and TexParameteri
	// act on. texture is GL_TEXTURE0 plus the unit index.
	ActiveTexture(texture uint32)
	TexParameteri(target, pname uint32, param int32)
	GetTexParameteriv(target, pname uint32) int32
	GetIntegerv(pname uint32) int32

	// CreateShader returns 0 on failure.
	CreateShader(kind uint32) uint32
	ShaderSource(shader uint32, sources []string)
	CompileShader(shader uint32)
	GetShaderiv(shader, pname uint32) int32
	// GetShaderInfoLog copies at most len(buf) bytes of the log, including
	// the trailing NUL, and returns the number of bytes written excluding it.
	GetShaderInfoLog(shader uint32, buf []byte) int32
	DeleteShader(shader uint32)

	// CreateProgram returns 0 on failure.
	CreateProgram() uint32
	AttachShader(program, shader uint32)
	DetachShader(program, shader uint32)
	LinkProgram(program uint32)
	GetProgramiv(program, pname uint32) int32
	// GetProgramInfoLog follows the same contract as GetShaderInfoLog.
	GetProgramInfoLog(program uint32, buf []byte) int32
	UseProgram(program uint32)
	ValidateProgram(program uint32)
	DeleteProgram(program uint32)

	// GetAttribLocation and GetUniformLocation return -1 when name is not
	// an active variable of the program.
	GetAttribLocation(program uint32, name string) int32
	GetUniformLocation(program uint32, name string) int32

	// The ProgramUniform* methods set one uniform of a program that need
	// not be current. len(value) is the component count of the uniform.
	ProgramUniform1iv(program uint32, location int32, value []int32)
	ProgramUniform2iv(program uint32, location int32, value []int32)
	ProgramUniform3iv(program uint32, location int32, value []int32)
	ProgramUniform4iv(program uint32, location int32, value []int32)
	ProgramUniform1fv(program uint32, location int32, value []float32)
	ProgramUniform2fv(program uint32, location int32, value []float32)
	ProgramUniform3fv(program uint32, location int32, value []float32)
	ProgramUniform4fv(program uint32, location int32, value []float32)
	ProgramUniformMatrix4fv(program uint32, location int32, transpose bool, value []float32)
	// GetUniformiv and GetUniformfv fill out with the uniform's components,
	// converting between integer and float as OpenGL does.
	GetUniformiv(program uint32, location int32, out []int32)
	GetUniformfv(program uint32, location int32, out []float32)

	// GetProgramBinary copies at most len(buf) bytes of the program binary
	// and reports the number of bytes written and the binary format.
	GetProgramBinary(program uint32, buf []byte) (length int32, format uint32)
	ProgramBinary(program, format uint32, binary []byte)

	ObjectLabel(identifier, name uint32, label string)
	GetString(name uint32) string
	GetError() uint32
}
