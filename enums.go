package glw

import (
	"fmt"

	"github.com/gogpu/glw/internal/glconst"
)

// ShaderKind is the stage a shader object runs in.
type ShaderKind uint32

const (
	ShaderKindCompute        ShaderKind = glconst.COMPUTE_SHADER
	ShaderKindVertex         ShaderKind = glconst.VERTEX_SHADER
	ShaderKindTessControl    ShaderKind = glconst.TESS_CONTROL_SHADER
	ShaderKindTessEvaluation ShaderKind = glconst.TESS_EVALUATION_SHADER
	ShaderKindGeometry       ShaderKind = glconst.GEOMETRY_SHADER
	ShaderKindFragment       ShaderKind = glconst.FRAGMENT_SHADER
)

const numShaderKinds = 6

var shaderKinds = [...]ShaderKind{
	ShaderKindCompute,
	ShaderKindVertex,
	ShaderKindTessControl,
	ShaderKindTessEvaluation,
	ShaderKindGeometry,
	ShaderKindFragment,
}

var (
	_ [numShaderKinds - len(shaderKinds)]struct{}
	_ [len(shaderKinds) - numShaderKinds]struct{}
	_ [numShaderKinds - len(shaderKindTags)]struct{}
	_ [len(shaderKindTags) - numShaderKinds]struct{}
)

func (k ShaderKind) String() string {
	switch k {
	case ShaderKindCompute:
		return "Compute"
	case ShaderKindVertex:
		return "Vertex"
	case ShaderKindTessControl:
		return "TessControl"
	case ShaderKindTessEvaluation:
		return "TessEvaluation"
	case ShaderKindGeometry:
		return "Geometry"
	case ShaderKindFragment:
		return "Fragment"
	default:
		return unknownString(int64(k))
	}
}

// Valid reports whether k is a declared ShaderKind.
func (k ShaderKind) Valid() bool { return enumSet[ShaderKind](shaderKinds[:]).contains(k) }

// ShaderKinds returns every declared ShaderKind in declaration order.
func ShaderKinds() []ShaderKind { return enumSet[ShaderKind](shaderKinds[:]).all() }

// CompileStatus is the value of GL_COMPILE_STATUS.
type CompileStatus int32

const (
	CompileStatusUncompiled CompileStatus = glconst.FALSE
	CompileStatusCompiled   CompileStatus = glconst.TRUE
)

const numCompileStatuses = 2

var compileStatuses = [...]CompileStatus{
	CompileStatusUncompiled,
	CompileStatusCompiled,
}

var (
	_ [numCompileStatuses - len(compileStatuses)]struct{}
	_ [len(compileStatuses) - numCompileStatuses]struct{}
	_ [numCompileStatuses - len(compileStatusTags)]struct{}
	_ [len(compileStatusTags) - numCompileStatuses]struct{}
)

func (s CompileStatus) String() string {
	switch s {
	case CompileStatusUncompiled:
		return "Uncompiled"
	case CompileStatusCompiled:
		return "Compiled"
	default:
		return unknownString(int64(s))
	}
}

// Valid reports whether s is a declared CompileStatus.
func (s CompileStatus) Valid() bool { return enumSet[CompileStatus](compileStatuses[:]).contains(s) }

// CompileStatuses returns every declared CompileStatus in declaration order.
func CompileStatuses() []CompileStatus { return enumSet[CompileStatus](compileStatuses[:]).all() }

// LinkStatus is the value of GL_LINK_STATUS.
type LinkStatus int32

const (
	LinkStatusUnlinked LinkStatus = glconst.FALSE
	LinkStatusLinked   LinkStatus = glconst.TRUE
)

const numLinkStatuses = 2

var linkStatuses = [...]LinkStatus{
	LinkStatusUnlinked,
	LinkStatusLinked,
}

var (
	_ [numLinkStatuses - len(linkStatuses)]struct{}
	_ [len(linkStatuses) - numLinkStatuses]struct{}
	_ [numLinkStatuses - len(linkStatusTags)]struct{}
	_ [len(linkStatusTags) - numLinkStatuses]struct{}
)

func (s LinkStatus) String() string {
	switch s {
	case LinkStatusUnlinked:
		return "Unlinked"
	case LinkStatusLinked:
		return "Linked"
	default:
		return unknownString(int64(s))
	}
}

// Valid reports whether s is a declared LinkStatus.
func (s LinkStatus) Valid() bool { return enumSet[LinkStatus](linkStatuses[:]).contains(s) }

// LinkStatuses returns every declared LinkStatus in declaration order.
func LinkStatuses() []LinkStatus { return enumSet[LinkStatus](linkStatuses[:]).all() }

// Boolean is a GLboolean result such as GL_DELETE_STATUS or GL_VALIDATE_STATUS.
// It shares its raw values with CompileStatus and LinkStatus but is a
// distinct type.
type Boolean int32

const (
	BooleanFalse Boolean = glconst.FALSE
	BooleanTrue  Boolean = glconst.TRUE
)

const numBooleans = 2

var booleans = [...]Boolean{
	BooleanFalse,
	BooleanTrue,
}

var (
	_ [numBooleans - len(booleans)]struct{}
	_ [len(booleans) - numBooleans]struct{}
)

func (b Boolean) String() string {
	switch b {
	case BooleanFalse:
		return "False"
	case BooleanTrue:
		return "True"
	default:
		return unknownString(int64(b))
	}
}

// Valid reports whether b is a declared Boolean.
func (b Boolean) Valid() bool { return enumSet[Boolean](booleans[:]).contains(b) }

// Booleans returns every declared Boolean in declaration order.
func Booleans() []Boolean { return enumSet[Boolean](booleans[:]).all() }

// ShaderParam is a pname accepted by glGetShaderiv.
type ShaderParam uint32

const (
	ShaderParamShaderType         ShaderParam = glconst.SHADER_TYPE
	ShaderParamDeleteStatus       ShaderParam = glconst.DELETE_STATUS
	ShaderParamCompileStatus      ShaderParam = glconst.COMPILE_STATUS
	ShaderParamInfoLogLength      ShaderParam = glconst.INFO_LOG_LENGTH
	ShaderParamShaderSourceLength ShaderParam = glconst.SHADER_SOURCE_LENGTH
)

const numShaderParams = 5

var shaderParams = [...]ShaderParam{
	ShaderParamShaderType,
	ShaderParamDeleteStatus,
	ShaderParamCompileStatus,
	ShaderParamInfoLogLength,
	ShaderParamShaderSourceLength,
}

var (
	_ [numShaderParams - len(shaderParams)]struct{}
	_ [len(shaderParams) - numShaderParams]struct{}
)

func (p ShaderParam) String() string {
	switch p {
	case ShaderParamShaderType:
		return "ShaderType"
	case ShaderParamDeleteStatus:
		return "DeleteStatus"
	case ShaderParamCompileStatus:
		return "CompileStatus"
	case ShaderParamInfoLogLength:
		return "InfoLogLength"
	case ShaderParamShaderSourceLength:
		return "ShaderSourceLength"
	default:
		return unknownString(int64(p))
	}
}

// Valid reports whether p is a declared ShaderParam.
func (p ShaderParam) Valid() bool { return enumSet[ShaderParam](shaderParams[:]).contains(p) }

// ShaderParams returns every declared ShaderParam in declaration order.
func ShaderParams() []ShaderParam { return enumSet[ShaderParam](shaderParams[:]).all() }

// ProgramParam is a pname accepted by glGetProgramiv.
type ProgramParam uint32

const (
	ProgramParamDeleteStatus     ProgramParam = glconst.DELETE_STATUS
	ProgramParamLinkStatus       ProgramParam = glconst.LINK_STATUS
	ProgramParamValidateStatus   ProgramParam = glconst.VALIDATE_STATUS
	ProgramParamInfoLogLength    ProgramParam = glconst.INFO_LOG_LENGTH
	ProgramParamAttachedShaders  ProgramParam = glconst.ATTACHED_SHADERS
	ProgramParamActiveUniforms   ProgramParam = glconst.ACTIVE_UNIFORMS
	ProgramParamActiveAttributes ProgramParam = glconst.ACTIVE_ATTRIBUTES
	ProgramParamBinaryLength     ProgramParam = glconst.PROGRAM_BINARY_LENGTH
)

const numProgramParams = 8

var programParams = [...]ProgramParam{
	ProgramParamDeleteStatus,
	ProgramParamLinkStatus,
	ProgramParamValidateStatus,
	ProgramParamInfoLogLength,
	ProgramParamAttachedShaders,
	ProgramParamActiveUniforms,
	ProgramParamActiveAttributes,
	ProgramParamBinaryLength,
}

var (
	_ [numProgramParams - len(programParams)]struct{}
	_ [len(programParams) - numProgramParams]struct{}
)

func (p ProgramParam) String() string {
	switch p {
	case ProgramParamDeleteStatus:
		return "DeleteStatus"
	case ProgramParamLinkStatus:
		return "LinkStatus"
	case ProgramParamValidateStatus:
		return "ValidateStatus"
	case ProgramParamInfoLogLength:
		return "InfoLogLength"
	case ProgramParamAttachedShaders:
		return "AttachedShaders"
	case ProgramParamActiveUniforms:
		return "ActiveUniforms"
	case ProgramParamActiveAttributes:
		return "ActiveAttributes"
	case ProgramParamBinaryLength:
		return "BinaryLength"
	default:
		return unknownString(int64(p))
	}
}

// Valid reports whether p is a declared ProgramParam.
func (p ProgramParam) Valid() bool { return enumSet[ProgramParam](programParams[:]).contains(p) }

// ProgramParams returns every declared ProgramParam in declaration order.
func ProgramParams() []ProgramParam { return enumSet[ProgramParam](programParams[:]).all() }

// ObjectKind is an object identifier accepted by glObjectLabel.
type ObjectKind uint32

const (
	ObjectKindBuffer       ObjectKind = glconst.BUFFER
	ObjectKindShader       ObjectKind = glconst.SHADER
	ObjectKindProgram      ObjectKind = glconst.PROGRAM
	ObjectKindVertexArray  ObjectKind = glconst.VERTEX_ARRAY
	ObjectKindQuery        ObjectKind = glconst.QUERY
	ObjectKindSampler      ObjectKind = glconst.SAMPLER
	ObjectKindTexture      ObjectKind = glconst.TEXTURE
	ObjectKindFramebuffer  ObjectKind = glconst.FRAMEBUFFER
	ObjectKindRenderbuffer ObjectKind = glconst.RENDERBUFFER
)

const numObjectKinds = 9

var objectKinds = [...]ObjectKind{
	ObjectKindBuffer,
	ObjectKindShader,
	ObjectKindProgram,
	ObjectKindVertexArray,
	ObjectKindQuery,
	ObjectKindSampler,
	ObjectKindTexture,
	ObjectKindFramebuffer,
	ObjectKindRenderbuffer,
}

var (
	_ [numObjectKinds - len(objectKinds)]struct{}
	_ [len(objectKinds) - numObjectKinds]struct{}
)

func (k ObjectKind) String() string {
	switch k {
	case ObjectKindBuffer:
		return "Buffer"
	case ObjectKindShader:
		return "Shader"
	case ObjectKindProgram:
		return "Program"
	case ObjectKindVertexArray:
		return "VertexArray"
	case ObjectKindQuery:
		return "Query"
	case ObjectKindSampler:
		return "Sampler"
	case ObjectKindTexture:
		return "Texture"
	case ObjectKindFramebuffer:
		return "Framebuffer"
	case ObjectKindRenderbuffer:
		return "Renderbuffer"
	default:
		return unknownString(int64(k))
	}
}

// Valid reports whether k is a declared ObjectKind.
func (k ObjectKind) Valid() bool { return enumSet[ObjectKind](objectKinds[:]).contains(k) }

// ObjectKinds returns every declared ObjectKind in declaration order.
func ObjectKinds() []ObjectKind { return enumSet[ObjectKind](objectKinds[:]).all() }

// BufferTarget is a buffer binding point.
type BufferTarget uint32

const (
	BufferTargetArray             BufferTarget = glconst.ARRAY_BUFFER
	BufferTargetElementArray      BufferTarget = glconst.ELEMENT_ARRAY_BUFFER
	BufferTargetPixelPack         BufferTarget = glconst.PIXEL_PACK_BUFFER
	BufferTargetPixelUnpack       BufferTarget = glconst.PIXEL_UNPACK_BUFFER
	BufferTargetUniform           BufferTarget = glconst.UNIFORM_BUFFER
	BufferTargetTexture           BufferTarget = glconst.TEXTURE_BUFFER
	BufferTargetTransformFeedback BufferTarget = glconst.TRANSFORM_FEEDBACK_BUFFER
	BufferTargetCopyRead          BufferTarget = glconst.COPY_READ_BUFFER
	BufferTargetCopyWrite         BufferTarget = glconst.COPY_WRITE_BUFFER
	BufferTargetDrawIndirect      BufferTarget = glconst.DRAW_INDIRECT_BUFFER
	BufferTargetShaderStorage     BufferTarget = glconst.SHADER_STORAGE_BUFFER
	BufferTargetDispatchIndirect  BufferTarget = glconst.DISPATCH_INDIRECT_BUFFER
	BufferTargetQuery             BufferTarget = glconst.QUERY_BUFFER
	BufferTargetAtomicCounter     BufferTarget = glconst.ATOMIC_COUNTER_BUFFER
)

const numBufferTargets = 14

var bufferTargets = [...]BufferTarget{
	BufferTargetArray,
	BufferTargetElementArray,
	BufferTargetPixelPack,
	BufferTargetPixelUnpack,
	BufferTargetUniform,
	BufferTargetTexture,
	BufferTargetTransformFeedback,
	BufferTargetCopyRead,
	BufferTargetCopyWrite,
	BufferTargetDrawIndirect,
	BufferTargetShaderStorage,
	BufferTargetDispatchIndirect,
	BufferTargetQuery,
	BufferTargetAtomicCounter,
}

var (
	_ [numBufferTargets - len(bufferTargets)]struct{}
	_ [len(bufferTargets) - numBufferTargets]struct{}
)

func (t BufferTarget) String() string {
	switch t {
	case BufferTargetArray:
		return "Array"
	case BufferTargetElementArray:
		return "ElementArray"
	case BufferTargetPixelPack:
		return "PixelPack"
	case BufferTargetPixelUnpack:
		return "PixelUnpack"
	case BufferTargetUniform:
		return "Uniform"
	case BufferTargetTexture:
		return "Texture"
	case BufferTargetTransformFeedback:
		return "TransformFeedback"
	case BufferTargetCopyRead:
		return "CopyRead"
	case BufferTargetCopyWrite:
		return "CopyWrite"
	case BufferTargetDrawIndirect:
		return "DrawIndirect"
	case BufferTargetShaderStorage:
		return "ShaderStorage"
	case BufferTargetDispatchIndirect:
		return "DispatchIndirect"
	case BufferTargetQuery:
		return "Query"
	case BufferTargetAtomicCounter:
		return "AtomicCounter"
	default:
		return unknownString(int64(t))
	}
}

// Valid reports whether t is a declared BufferTarget.
func (t BufferTarget) Valid() bool { return enumSet[BufferTarget](bufferTargets[:]).contains(t) }

// BufferTargets returns every declared BufferTarget in declaration order.
func BufferTargets() []BufferTarget { return enumSet[BufferTarget](bufferTargets[:]).all() }

// TextureTarget is a texture binding point.
type TextureTarget uint32

const (
	TextureTarget1D                 TextureTarget = glconst.TEXTURE_1D
	TextureTarget2D                 TextureTarget = glconst.TEXTURE_2D
	TextureTarget3D                 TextureTarget = glconst.TEXTURE_3D
	TextureTargetRectangle          TextureTarget = glconst.TEXTURE_RECTANGLE
	TextureTargetCubeMap            TextureTarget = glconst.TEXTURE_CUBE_MAP
	TextureTarget1DArray            TextureTarget = glconst.TEXTURE_1D_ARRAY
	TextureTarget2DArray            TextureTarget = glconst.TEXTURE_2D_ARRAY
	TextureTargetCubeMapArray       TextureTarget = glconst.TEXTURE_CUBE_MAP_ARRAY
	TextureTarget2DMultisample      TextureTarget = glconst.TEXTURE_2D_MULTISAMPLE
	TextureTarget2DMultisampleArray TextureTarget = glconst.TEXTURE_2D_MULTISAMPLE_ARRAY
)

const numTextureTargets = 10

var textureTargets = [...]TextureTarget{
	TextureTarget1D,
	TextureTarget2D,
	TextureTarget3D,
	TextureTargetRectangle,
	TextureTargetCubeMap,
	TextureTarget1DArray,
	TextureTarget2DArray,
	TextureTargetCubeMapArray,
	TextureTarget2DMultisample,
	TextureTarget2DMultisampleArray,
}

var (
	_ [numTextureTargets - len(textureTargets)]struct{}
	_ [len(textureTargets) - numTextureTargets]struct{}
)

func (t TextureTarget) String() string {
	switch t {
	case TextureTarget1D:
		return "1D"
	case TextureTarget2D:
		return "2D"
	case TextureTarget3D:
		return "3D"
	case TextureTargetRectangle:
		return "Rectangle"
	case TextureTargetCubeMap:
		return "CubeMap"
	case TextureTarget1DArray:
		return "1DArray"
	case TextureTarget2DArray:
		return "2DArray"
	case TextureTargetCubeMapArray:
		return "CubeMapArray"
	case TextureTarget2DMultisample:
		return "2DMultisample"
	case TextureTarget2DMultisampleArray:
		return "2DMultisampleArray"
	default:
		return unknownString(int64(t))
	}
}

// Valid reports whether t is a declared TextureTarget.
func (t TextureTarget) Valid() bool { return enumSet[TextureTarget](textureTargets[:]).contains(t) }

// TextureTargets returns every declared TextureTarget in declaration order.
func TextureTargets() []TextureTarget { return enumSet[TextureTarget](textureTargets[:]).all() }

// FramebufferTarget is a framebuffer binding point.
type FramebufferTarget uint32

const (
	FramebufferTargetBoth FramebufferTarget = glconst.FRAMEBUFFER
	FramebufferTargetRead FramebufferTarget = glconst.READ_FRAMEBUFFER
	FramebufferTargetDraw FramebufferTarget = glconst.DRAW_FRAMEBUFFER
)

const numFramebufferTargets = 3

var framebufferTargets = [...]FramebufferTarget{
	FramebufferTargetBoth,
	FramebufferTargetRead,
	FramebufferTargetDraw,
}

var (
	_ [numFramebufferTargets - len(framebufferTargets)]struct{}
	_ [len(framebufferTargets) - numFramebufferTargets]struct{}
)

func (t FramebufferTarget) String() string {
	switch t {
	case FramebufferTargetBoth:
		return "Both"
	case FramebufferTargetRead:
		return "Read"
	case FramebufferTargetDraw:
		return "Draw"
	default:
		return unknownString(int64(t))
	}
}

// Valid reports whether t is a declared FramebufferTarget.
func (t FramebufferTarget) Valid() bool { return enumSet[FramebufferTarget](framebufferTargets[:]).contains(t) }

// FramebufferTargets returns every declared FramebufferTarget in declaration order.
func FramebufferTargets() []FramebufferTarget { return enumSet[FramebufferTarget](framebufferTargets[:]).all() }

// FramebufferStatus is the result of glCheckFramebufferStatus.
type FramebufferStatus uint32

const (
	FramebufferStatusComplete                    FramebufferStatus = glconst.FRAMEBUFFER_COMPLETE
	FramebufferStatusIncompleteAttachment        FramebufferStatus = glconst.FRAMEBUFFER_INCOMPLETE_ATTACHMENT
	FramebufferStatusIncompleteMissingAttachment FramebufferStatus = glconst.FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT
	FramebufferStatusIncompleteDrawBuffer        FramebufferStatus = glconst.FRAMEBUFFER_INCOMPLETE_DRAW_BUFFER
	FramebufferStatusIncompleteReadBuffer        FramebufferStatus = glconst.FRAMEBUFFER_INCOMPLETE_READ_BUFFER
	FramebufferStatusUnsupported                 FramebufferStatus = glconst.FRAMEBUFFER_UNSUPPORTED
	FramebufferStatusIncompleteMultisample       FramebufferStatus = glconst.FRAMEBUFFER_INCOMPLETE_MULTISAMPLE
	FramebufferStatusIncompleteLayerTargets      FramebufferStatus = glconst.FRAMEBUFFER_INCOMPLETE_LAYER_TARGETS
	FramebufferStatusUndefined                   FramebufferStatus = glconst.FRAMEBUFFER_UNDEFINED
)

const numFramebufferStatuses = 9

var framebufferStatuses = [...]FramebufferStatus{
	FramebufferStatusComplete,
	FramebufferStatusIncompleteAttachment,
	FramebufferStatusIncompleteMissingAttachment,
	FramebufferStatusIncompleteDrawBuffer,
	FramebufferStatusIncompleteReadBuffer,
	FramebufferStatusUnsupported,
	FramebufferStatusIncompleteMultisample,
	FramebufferStatusIncompleteLayerTargets,
	FramebufferStatusUndefined,
}

var (
	_ [numFramebufferStatuses - len(framebufferStatuses)]struct{}
	_ [len(framebufferStatuses) - numFramebufferStatuses]struct{}
)

func (s FramebufferStatus) String() string {
	switch s {
	case FramebufferStatusComplete:
		return "Complete"
	case FramebufferStatusIncompleteAttachment:
		return "IncompleteAttachment"
	case FramebufferStatusIncompleteMissingAttachment:
		return "IncompleteMissingAttachment"
	case FramebufferStatusIncompleteDrawBuffer:
		return "IncompleteDrawBuffer"
	case FramebufferStatusIncompleteReadBuffer:
		return "IncompleteReadBuffer"
	case FramebufferStatusUnsupported:
		return "Unsupported"
	case FramebufferStatusIncompleteMultisample:
		return "IncompleteMultisample"
	case FramebufferStatusIncompleteLayerTargets:
		return "IncompleteLayerTargets"
	case FramebufferStatusUndefined:
		return "Undefined"
	default:
		return unknownString(int64(s))
	}
}

// Valid reports whether s is a declared FramebufferStatus.
func (s FramebufferStatus) Valid() bool { return enumSet[FramebufferStatus](framebufferStatuses[:]).contains(s) }

// FramebufferStatuses returns every declared FramebufferStatus in declaration order.
func FramebufferStatuses() []FramebufferStatus { return enumSet[FramebufferStatus](framebufferStatuses[:]).all() }

// StringParam is a name accepted by glGetString.
type StringParam uint32

const (
	StringParamVendor                 StringParam = glconst.VENDOR
	StringParamRenderer               StringParam = glconst.RENDERER
	StringParamVersion                StringParam = glconst.VERSION
	StringParamShadingLanguageVersion StringParam = glconst.SHADING_LANGUAGE_VERSION
)

const numStringParams = 4

var stringParams = [...]StringParam{
	StringParamVendor,
	StringParamRenderer,
	StringParamVersion,
	StringParamShadingLanguageVersion,
}

var (
	_ [numStringParams - len(stringParams)]struct{}
	_ [len(stringParams) - numStringParams]struct{}
)

func (p StringParam) String() string {
	switch p {
	case StringParamVendor:
		return "Vendor"
	case StringParamRenderer:
		return "Renderer"
	case StringParamVersion:
		return "Version"
	case StringParamShadingLanguageVersion:
		return "ShadingLanguageVersion"
	default:
		return unknownString(int64(p))
	}
}

// Valid reports whether p is a declared StringParam.
func (p StringParam) Valid() bool { return enumSet[StringParam](stringParams[:]).contains(p) }

// StringParams returns every declared StringParam in declaration order.
func StringParams() []StringParam { return enumSet[StringParam](stringParams[:]).all() }

// ErrorCode is a value returned by glGetError.
type ErrorCode uint32

const (
	ErrorCodeNone                        ErrorCode = glconst.NO_ERROR
	ErrorCodeInvalidEnum                 ErrorCode = glconst.INVALID_ENUM
	ErrorCodeInvalidValue                ErrorCode = glconst.INVALID_VALUE
	ErrorCodeInvalidOperation            ErrorCode = glconst.INVALID_OPERATION
	ErrorCodeStackOverflow               ErrorCode = glconst.STACK_OVERFLOW
	ErrorCodeStackUnderflow              ErrorCode = glconst.STACK_UNDERFLOW
	ErrorCodeOutOfMemory                 ErrorCode = glconst.OUT_OF_MEMORY
	ErrorCodeInvalidFramebufferOperation ErrorCode = glconst.INVALID_FRAMEBUFFER_OPERATION
	ErrorCodeContextLost                 ErrorCode = glconst.CONTEXT_LOST
)

const numErrorCodes = 9

var errorCodes = [...]ErrorCode{
	ErrorCodeNone,
	ErrorCodeInvalidEnum,
	ErrorCodeInvalidValue,
	ErrorCodeInvalidOperation,
	ErrorCodeStackOverflow,
	ErrorCodeStackUnderflow,
	ErrorCodeOutOfMemory,
	ErrorCodeInvalidFramebufferOperation,
	ErrorCodeContextLost,
}

var (
	_ [numErrorCodes - len(errorCodes)]struct{}
	_ [len(errorCodes) - numErrorCodes]struct{}
)

func (c ErrorCode) String() string {
	switch c {
	case ErrorCodeNone:
		return "None"
	case ErrorCodeInvalidEnum:
		return "InvalidEnum"
	case ErrorCodeInvalidValue:
		return "InvalidValue"
	case ErrorCodeInvalidOperation:
		return "InvalidOperation"
	case ErrorCodeStackOverflow:
		return "StackOverflow"
	case ErrorCodeStackUnderflow:
		return "StackUnderflow"
	case ErrorCodeOutOfMemory:
		return "OutOfMemory"
	case ErrorCodeInvalidFramebufferOperation:
		return "InvalidFramebufferOperation"
	case ErrorCodeContextLost:
		return "ContextLost"
	default:
		return unknownString(int64(c))
	}
}

// Valid reports whether c is a declared ErrorCode.
func (c ErrorCode) Valid() bool { return enumSet[ErrorCode](errorCodes[:]).contains(c) }

// ErrorCodes returns every declared ErrorCode in declaration order.
func ErrorCodes() []ErrorCode { return enumSet[ErrorCode](errorCodes[:]).all() }

// FramebufferAttachment is an attachment point of a framebuffer object.
type FramebufferAttachment uint32

const (
	FramebufferAttachmentColor0       FramebufferAttachment = glconst.COLOR_ATTACHMENT0
	FramebufferAttachmentColor1       FramebufferAttachment = glconst.COLOR_ATTACHMENT1
	FramebufferAttachmentColor2       FramebufferAttachment = glconst.COLOR_ATTACHMENT2
	FramebufferAttachmentColor3       FramebufferAttachment = glconst.COLOR_ATTACHMENT3
	FramebufferAttachmentColor4       FramebufferAttachment = glconst.COLOR_ATTACHMENT4
	FramebufferAttachmentColor5       FramebufferAttachment = glconst.COLOR_ATTACHMENT5
	FramebufferAttachmentColor6       FramebufferAttachment = glconst.COLOR_ATTACHMENT6
	FramebufferAttachmentColor7       FramebufferAttachment = glconst.COLOR_ATTACHMENT7
	FramebufferAttachmentDepth        FramebufferAttachment = glconst.DEPTH_ATTACHMENT
	FramebufferAttachmentStencil      FramebufferAttachment = glconst.STENCIL_ATTACHMENT
	FramebufferAttachmentDepthStencil FramebufferAttachment = glconst.DEPTH_STENCIL_ATTACHMENT
)

const numFramebufferAttachments = 11

var framebufferAttachments = [...]FramebufferAttachment{
	FramebufferAttachmentColor0,
	FramebufferAttachmentColor1,
	FramebufferAttachmentColor2,
	FramebufferAttachmentColor3,
	FramebufferAttachmentColor4,
	FramebufferAttachmentColor5,
	FramebufferAttachmentColor6,
	FramebufferAttachmentColor7,
	FramebufferAttachmentDepth,
	FramebufferAttachmentStencil,
	FramebufferAttachmentDepthStencil,
}

var (
	_ [numFramebufferAttachments - len(framebufferAttachments)]struct{}
	_ [len(framebufferAttachments) - numFramebufferAttachments]struct{}
)

func (a FramebufferAttachment) String() string {
	switch a {
	case FramebufferAttachmentDepth:
		return "Depth"
	case FramebufferAttachmentStencil:
		return "Stencil"
	case FramebufferAttachmentDepthStencil:
		return "DepthStencil"
	}
	if a.Valid() {
		return fmt.Sprintf("Color%d", uint32(a-FramebufferAttachmentColor0))
	}
	return unknownString(int64(a))
}

// Valid reports whether a is a declared FramebufferAttachment.
func (a FramebufferAttachment) Valid() bool {
	return enumSet[FramebufferAttachment](framebufferAttachments[:]).contains(a)
}

// FramebufferAttachments returns every declared FramebufferAttachment in
// declaration order.
func FramebufferAttachments() []FramebufferAttachment {
	return enumSet[FramebufferAttachment](framebufferAttachments[:]).all()
}

// TextureFilter is a value of GL_TEXTURE_MIN_FILTER or GL_TEXTURE_MAG_FILTER.
type TextureFilter int32

const (
	TextureFilterNearest              TextureFilter = glconst.NEAREST
	TextureFilterLinear               TextureFilter = glconst.LINEAR
	TextureFilterNearestMipmapNearest TextureFilter = glconst.NEAREST_MIPMAP_NEAREST
	TextureFilterLinearMipmapNearest  TextureFilter = glconst.LINEAR_MIPMAP_NEAREST
	TextureFilterNearestMipmapLinear  TextureFilter = glconst.NEAREST_MIPMAP_LINEAR
	TextureFilterLinearMipmapLinear   TextureFilter = glconst.LINEAR_MIPMAP_LINEAR
)

const numTextureFilters = 6

var textureFilters = [...]TextureFilter{
	TextureFilterNearest,
	TextureFilterLinear,
	TextureFilterNearestMipmapNearest,
	TextureFilterLinearMipmapNearest,
	TextureFilterNearestMipmapLinear,
	TextureFilterLinearMipmapLinear,
}

var (
	_ [numTextureFilters - len(textureFilters)]struct{}
	_ [len(textureFilters) - numTextureFilters]struct{}
)

func (f TextureFilter) String() string {
	switch f {
	case TextureFilterNearest:
		return "Nearest"
	case TextureFilterLinear:
		return "Linear"
	case TextureFilterNearestMipmapNearest:
		return "NearestMipmapNearest"
	case TextureFilterLinearMipmapNearest:
		return "LinearMipmapNearest"
	case TextureFilterNearestMipmapLinear:
		return "NearestMipmapLinear"
	case TextureFilterLinearMipmapLinear:
		return "LinearMipmapLinear"
	default:
		return unknownString(int64(f))
	}
}

// Valid reports whether f is a declared TextureFilter.
func (f TextureFilter) Valid() bool { return enumSet[TextureFilter](textureFilters[:]).contains(f) }

// TextureFilters returns every declared TextureFilter in declaration order.
func TextureFilters() []TextureFilter { return enumSet[TextureFilter](textureFilters[:]).all() }

// TextureWrap is a value of the GL_TEXTURE_WRAP_* parameters.
type TextureWrap int32

const (
	TextureWrapRepeat            TextureWrap = glconst.REPEAT
	TextureWrapClampToEdge       TextureWrap = glconst.CLAMP_TO_EDGE
	TextureWrapClampToBorder     TextureWrap = glconst.CLAMP_TO_BORDER
	TextureWrapMirroredRepeat    TextureWrap = glconst.MIRRORED_REPEAT
	TextureWrapMirrorClampToEdge TextureWrap = glconst.MIRROR_CLAMP_TO_EDGE
)

const numTextureWraps = 5

var textureWraps = [...]TextureWrap{
	TextureWrapRepeat,
	TextureWrapClampToEdge,
	TextureWrapClampToBorder,
	TextureWrapMirroredRepeat,
	TextureWrapMirrorClampToEdge,
}

var (
	_ [numTextureWraps - len(textureWraps)]struct{}
	_ [len(textureWraps) - numTextureWraps]struct{}
)

func (w TextureWrap) String() string {
	switch w {
	case TextureWrapRepeat:
		return "Repeat"
	case TextureWrapClampToEdge:
		return "ClampToEdge"
	case TextureWrapClampToBorder:
		return "ClampToBorder"
	case TextureWrapMirroredRepeat:
		return "MirroredRepeat"
	case TextureWrapMirrorClampToEdge:
		return "MirrorClampToEdge"
	default:
		return unknownString(int64(w))
	}
}

// Valid reports whether w is a declared TextureWrap.
func (w TextureWrap) Valid() bool { return enumSet[TextureWrap](textureWraps[:]).contains(w) }

// TextureWraps returns every declared TextureWrap in declaration order.
func TextureWraps() []TextureWrap { return enumSet[TextureWrap](textureWraps[:]).all() }

// TextureFilterParam is a texture parameter that takes a TextureFilter.
type TextureFilterParam uint32

const (
	TextureMinFilter TextureFilterParam = glconst.TEXTURE_MIN_FILTER
	TextureMagFilter TextureFilterParam = glconst.TEXTURE_MAG_FILTER
)

const numTextureFilterParams = 2

var textureFilterParams = [...]TextureFilterParam{
	TextureMinFilter,
	TextureMagFilter,
}

var (
	_ [numTextureFilterParams - len(textureFilterParams)]struct{}
	_ [len(textureFilterParams) - numTextureFilterParams]struct{}
)

func (p TextureFilterParam) String() string {
	switch p {
	case TextureMinFilter:
		return "MinFilter"
	case TextureMagFilter:
		return "MagFilter"
	default:
		return unknownString(int64(p))
	}
}

// Valid reports whether p is a declared TextureFilterParam.
func (p TextureFilterParam) Valid() bool {
	return enumSet[TextureFilterParam](textureFilterParams[:]).contains(p)
}

// TextureFilterParams returns every declared TextureFilterParam in
// declaration order.
func TextureFilterParams() []TextureFilterParam {
	return enumSet[TextureFilterParam](textureFilterParams[:]).all()
}

func (TextureFilterParam) takes(TextureFilter) {}

// TextureWrapParam is a texture parameter that takes a TextureWrap.
type TextureWrapParam uint32

const (
	TextureWrapS TextureWrapParam = glconst.TEXTURE_WRAP_S
	TextureWrapT TextureWrapParam = glconst.TEXTURE_WRAP_T
	TextureWrapR TextureWrapParam = glconst.TEXTURE_WRAP_R
)

const numTextureWrapParams = 3

var textureWrapParams = [...]TextureWrapParam{
	TextureWrapS,
	TextureWrapT,
	TextureWrapR,
}

var (
	_ [numTextureWrapParams - len(textureWrapParams)]struct{}
	_ [len(textureWrapParams) - numTextureWrapParams]struct{}
)

func (p TextureWrapParam) String() string {
	switch p {
	case TextureWrapS:
		return "WrapS"
	case TextureWrapT:
		return "WrapT"
	case TextureWrapR:
		return "WrapR"
	default:
		return unknownString(int64(p))
	}
}

// Valid reports whether p is a declared TextureWrapParam.
func (p TextureWrapParam) Valid() bool { return enumSet[TextureWrapParam](textureWrapParams[:]).contains(p) }

// TextureWrapParams returns every declared TextureWrapParam in declaration
// order.
func TextureWrapParams() []TextureWrapParam { return enumSet[TextureWrapParam](textureWrapParams[:]).all() }

func (TextureWrapParam) takes(TextureWrap) {}
