package glw

// Static tags are zero-size types, one per enumeration member, that carry
// the member in the type system. A tag converts to its dynamic value with
// Value (or Widen); a dynamic value converts back with Narrow.

// ShaderKindTag is satisfied by the six shader-kind tags.
type ShaderKindTag interface {
	Tag[ShaderKind]
	ComputeShader | VertexShader | TessControlShader | TessEvaluationShader | GeometryShader | FragmentShader
}

// ObjectTag is satisfied by the kinds of object created with Gen.
type ObjectTag interface {
	Tag[ObjectKind]
	Buffer | VertexArray | Query | Sampler | Texture | Framebuffer | Renderbuffer
}

var shaderKindTags = [...]Tag[ShaderKind]{
	ComputeShader{},
	VertexShader{},
	TessControlShader{},
	TessEvaluationShader{},
	GeometryShader{},
	FragmentShader{},
}

// ComputeShader is the static tag for ShaderKindCompute.
type ComputeShader struct{}

func (ComputeShader) Value() ShaderKind { return ShaderKindCompute }
func (ComputeShader) String() string    { return "ComputeShader" }

// VertexShader is the static tag for ShaderKindVertex.
type VertexShader struct{}

func (VertexShader) Value() ShaderKind { return ShaderKindVertex }
func (VertexShader) String() string    { return "VertexShader" }

// TessControlShader is the static tag for ShaderKindTessControl.
type TessControlShader struct{}

func (TessControlShader) Value() ShaderKind { return ShaderKindTessControl }
func (TessControlShader) String() string    { return "TessControlShader" }

// TessEvaluationShader is the static tag for ShaderKindTessEvaluation.
type TessEvaluationShader struct{}

func (TessEvaluationShader) Value() ShaderKind { return ShaderKindTessEvaluation }
func (TessEvaluationShader) String() string    { return "TessEvaluationShader" }

// GeometryShader is the static tag for ShaderKindGeometry.
type GeometryShader struct{}

func (GeometryShader) Value() ShaderKind { return ShaderKindGeometry }
func (GeometryShader) String() string    { return "GeometryShader" }

// FragmentShader is the static tag for ShaderKindFragment.
type FragmentShader struct{}

func (FragmentShader) Value() ShaderKind { return ShaderKindFragment }
func (FragmentShader) String() string    { return "FragmentShader" }

var compileStatusTags = [...]Tag[CompileStatus]{
	Uncompiled{},
	Compiled{},
}

// Uncompiled is the static tag for CompileStatusUncompiled.
type Uncompiled struct{}

func (Uncompiled) Value() CompileStatus { return CompileStatusUncompiled }
func (Uncompiled) String() string       { return "Uncompiled" }

// Compiled is the static tag for CompileStatusCompiled.
type Compiled struct{}

func (Compiled) Value() CompileStatus { return CompileStatusCompiled }
func (Compiled) String() string       { return "Compiled" }

var linkStatusTags = [...]Tag[LinkStatus]{
	Unlinked{},
	Linked{},
}

// Unlinked is the static tag for LinkStatusUnlinked.
type Unlinked struct{}

func (Unlinked) Value() LinkStatus { return LinkStatusUnlinked }
func (Unlinked) String() string    { return "Unlinked" }

// Linked is the static tag for LinkStatusLinked.
type Linked struct{}

func (Linked) Value() LinkStatus { return LinkStatusLinked }
func (Linked) String() string    { return "Linked" }

var objectKindTags = [...]Tag[ObjectKind]{
	Buffer{},
	VertexArray{},
	Query{},
	Sampler{},
	Texture{},
	Framebuffer{},
	Renderbuffer{},
}

// Buffer is the static tag for ObjectKindBuffer.
type Buffer struct{}

func (Buffer) Value() ObjectKind { return ObjectKindBuffer }
func (Buffer) String() string    { return "Buffer" }

// VertexArray is the static tag for ObjectKindVertexArray.
type VertexArray struct{}

func (VertexArray) Value() ObjectKind { return ObjectKindVertexArray }
func (VertexArray) String() string    { return "VertexArray" }

// Query is the static tag for ObjectKindQuery.
type Query struct{}

func (Query) Value() ObjectKind { return ObjectKindQuery }
func (Query) String() string    { return "Query" }

// Sampler is the static tag for ObjectKindSampler.
type Sampler struct{}

func (Sampler) Value() ObjectKind { return ObjectKindSampler }
func (Sampler) String() string    { return "Sampler" }

// Texture is the static tag for ObjectKindTexture.
type Texture struct{}

func (Texture) Value() ObjectKind { return ObjectKindTexture }
func (Texture) String() string    { return "Texture" }

// Framebuffer is the static tag for ObjectKindFramebuffer.
type Framebuffer struct{}

func (Framebuffer) Value() ObjectKind { return ObjectKindFramebuffer }
func (Framebuffer) String() string    { return "Framebuffer" }

// Renderbuffer is the static tag for ObjectKindRenderbuffer.
type Renderbuffer struct{}

func (Renderbuffer) Value() ObjectKind { return ObjectKindRenderbuffer }
func (Renderbuffer) String() string    { return "Renderbuffer" }
