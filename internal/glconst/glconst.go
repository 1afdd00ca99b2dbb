// Package glconst holds the raw OpenGL constant values used by glw and the
// software driver. Names follow the Khronos registry spelling.
package glconst

//nolint:revive,stylecheck // registry spelling
const (
	FALSE = 0
	TRUE  = 1

	NO_ERROR                      = 0
	INVALID_ENUM                  = 0x0500
	INVALID_VALUE                 = 0x0501
	INVALID_OPERATION             = 0x0502
	STACK_OVERFLOW                = 0x0503
	STACK_UNDERFLOW               = 0x0504
	OUT_OF_MEMORY                 = 0x0505
	INVALID_FRAMEBUFFER_OPERATION = 0x0506
	CONTEXT_LOST                  = 0x0507

	VENDOR                   = 0x1F00
	RENDERER                 = 0x1F01
	VERSION                  = 0x1F02
	SHADING_LANGUAGE_VERSION = 0x8B8C

	FRAGMENT_SHADER        = 0x8B30
	VERTEX_SHADER          = 0x8B31
	GEOMETRY_SHADER        = 0x8DD9
	TESS_EVALUATION_SHADER = 0x8E87
	TESS_CONTROL_SHADER    = 0x8E88
	COMPUTE_SHADER         = 0x91B9

	SHADER_TYPE          = 0x8B4F
	DELETE_STATUS        = 0x8B80
	COMPILE_STATUS       = 0x8B81
	LINK_STATUS          = 0x8B82
	VALIDATE_STATUS      = 0x8B83
	INFO_LOG_LENGTH      = 0x8B84
	ATTACHED_SHADERS     = 0x8B85
	ACTIVE_UNIFORMS      = 0x8B86
	SHADER_SOURCE_LENGTH = 0x8B88
	ACTIVE_ATTRIBUTES    = 0x8B89

	PROGRAM_BINARY_LENGTH      = 0x8741
	NUM_PROGRAM_BINARY_FORMATS = 0x87FE
	PROGRAM_BINARY_FORMATS     = 0x87FF

	BUFFER       = 0x82E0
	SHADER       = 0x82E1
	PROGRAM      = 0x82E2
	QUERY        = 0x82E3
	SAMPLER      = 0x82E6
	VERTEX_ARRAY = 0x8074
	TEXTURE      = 0x1702
	FRAMEBUFFER  = 0x8D40
	RENDERBUFFER = 0x8D41

	ARRAY_BUFFER              = 0x8892
	ELEMENT_ARRAY_BUFFER      = 0x8893
	PIXEL_PACK_BUFFER         = 0x88EB
	PIXEL_UNPACK_BUFFER       = 0x88EC
	UNIFORM_BUFFER            = 0x8A11
	TEXTURE_BUFFER            = 0x8C2A
	TRANSFORM_FEEDBACK_BUFFER = 0x8C8E
	COPY_READ_BUFFER          = 0x8F36
	COPY_WRITE_BUFFER         = 0x8F37
	DRAW_INDIRECT_BUFFER      = 0x8F3F
	SHADER_STORAGE_BUFFER     = 0x90D2
	DISPATCH_INDIRECT_BUFFER  = 0x90EE
	QUERY_BUFFER              = 0x9192
	ATOMIC_COUNTER_BUFFER     = 0x92C0

	TEXTURE_1D                   = 0x0DE0
	TEXTURE_2D                   = 0x0DE1
	TEXTURE_3D                   = 0x806F
	TEXTURE_RECTANGLE            = 0x84F5
	TEXTURE_CUBE_MAP             = 0x8513
	TEXTURE_1D_ARRAY             = 0x8C18
	TEXTURE_2D_ARRAY             = 0x8C1A
	TEXTURE_CUBE_MAP_ARRAY       = 0x9009
	TEXTURE_2D_MULTISAMPLE       = 0x9100
	TEXTURE_2D_MULTISAMPLE_ARRAY = 0x9102

	READ_FRAMEBUFFER = 0x8CA8
	DRAW_FRAMEBUFFER = 0x8CA9

	FRAMEBUFFER_COMPLETE                      = 0x8CD5
	FRAMEBUFFER_INCOMPLETE_ATTACHMENT         = 0x8CD6
	FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT = 0x8CD7
	FRAMEBUFFER_INCOMPLETE_DRAW_BUFFER        = 0x8CDB
	FRAMEBUFFER_INCOMPLETE_READ_BUFFER        = 0x8CDC
	FRAMEBUFFER_UNSUPPORTED                   = 0x8CDD
	FRAMEBUFFER_INCOMPLETE_MULTISAMPLE        = 0x8D56
	FRAMEBUFFER_INCOMPLETE_LAYER_TARGETS      = 0x8DA8
	FRAMEBUFFER_UNDEFINED                     = 0x8219

	COLOR_ATTACHMENT0        = 0x8CE0
	COLOR_ATTACHMENT1        = 0x8CE1
	COLOR_ATTACHMENT2        = 0x8CE2
	COLOR_ATTACHMENT3        = 0x8CE3
	COLOR_ATTACHMENT4        = 0x8CE4
	COLOR_ATTACHMENT5        = 0x8CE5
	COLOR_ATTACHMENT6        = 0x8CE6
	COLOR_ATTACHMENT7        = 0x8CE7
	DEPTH_ATTACHMENT         = 0x8D00
	STENCIL_ATTACHMENT       = 0x8D20
	DEPTH_STENCIL_ATTACHMENT = 0x821A

	TEXTURE0                         = 0x84C0
	ACTIVE_TEXTURE                   = 0x84E0
	MAX_COMBINED_TEXTURE_IMAGE_UNITS = 0x8B4D
	MAX_COLOR_ATTACHMENTS            = 0x8CDF
	CURRENT_PROGRAM                  = 0x8B8D
	VERTEX_ARRAY_BINDING             = 0x85B5

	TEXTURE_MAG_FILTER = 0x2800
	TEXTURE_MIN_FILTER = 0x2801
	TEXTURE_WRAP_S     = 0x2802
	TEXTURE_WRAP_T     = 0x2803
	TEXTURE_WRAP_R     = 0x8072

	NEAREST                = 0x2600
	LINEAR                 = 0x2601
	NEAREST_MIPMAP_NEAREST = 0x2700
	LINEAR_MIPMAP_NEAREST  = 0x2701
	NEAREST_MIPMAP_LINEAR  = 0x2702
	LINEAR_MIPMAP_LINEAR   = 0x2703

	REPEAT               = 0x2901
	CLAMP_TO_BORDER      = 0x812D
	CLAMP_TO_EDGE        = 0x812F
	MIRRORED_REPEAT      = 0x8370
	MIRROR_CLAMP_TO_EDGE = 0x8743

	INT          = 0x1404
	UNSIGNED_INT = 0x1405
	FLOAT        = 0x1406
	INT_VEC2     = 0x8B53
	INT_VEC3     = 0x8B54
	INT_VEC4     = 0x8B55
	FLOAT_VEC2   = 0x8B50
	FLOAT_VEC3   = 0x8B51
	FLOAT_VEC4   = 0x8B52
	FLOAT_MAT4   = 0x8B5C
)
