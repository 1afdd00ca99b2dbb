package glw

import "github.com/gogpu/gputypes"

// Stage maps k onto the WebGPU stage vocabulary. Tessellation and geometry
// stages have no WebGPU counterpart and map to ShaderStageNone.
func (k ShaderKind) Stage() gputypes.ShaderStage {
	switch k {
	case ShaderKindVertex:
		return gputypes.ShaderStageVertex
	case ShaderKindFragment:
		return gputypes.ShaderStageFragment
	case ShaderKindCompute:
		return gputypes.ShaderStageCompute
	default:
		return gputypes.ShaderStageNone
	}
}

// ShaderKindForStage is the inverse of Stage for the stages WebGPU has.
func ShaderKindForStage(s gputypes.ShaderStage) (ShaderKind, bool) {
	switch s {
	case gputypes.ShaderStageVertex:
		return ShaderKindVertex, true
	case gputypes.ShaderStageFragment:
		return ShaderKindFragment, true
	case gputypes.ShaderStageCompute:
		return ShaderKindCompute, true
	default:
		return 0, false
	}
}

// Usage returns the buffer usage flag that corresponds to binding a buffer
// at t. Targets with no WebGPU equivalent return BufferUsageNone.
func (t BufferTarget) Usage() gputypes.BufferUsage {
	switch t {
	case BufferTargetArray:
		return gputypes.BufferUsageVertex
	case BufferTargetElementArray:
		return gputypes.BufferUsageIndex
	case BufferTargetUniform:
		return gputypes.BufferUsageUniform
	case BufferTargetShaderStorage, BufferTargetAtomicCounter:
		return gputypes.BufferUsageStorage
	case BufferTargetDrawIndirect, BufferTargetDispatchIndirect:
		return gputypes.BufferUsageIndirect
	case BufferTargetCopyRead, BufferTargetPixelPack:
		return gputypes.BufferUsageCopySrc
	case BufferTargetCopyWrite, BufferTargetPixelUnpack:
		return gputypes.BufferUsageCopyDst
	case BufferTargetQuery:
		return gputypes.BufferUsageQueryResolve
	default:
		return gputypes.BufferUsageNone
	}
}
