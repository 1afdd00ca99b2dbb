package glw

import (
	"testing"

	"github.com/gogpu/gputypes"
)

func TestShaderKindStage(t *testing.T) {
	for _, k := range ShaderKinds() {
		stage := k.Stage()
		back, ok := ShaderKindForStage(stage)
		switch k {
		case ShaderKindVertex, ShaderKindFragment, ShaderKindCompute:
			if !ok || back != k {
				t.Errorf("ShaderKindForStage(%v.Stage()) = %v, %v", k, back, ok)
			}
		default:
			if stage != gputypes.ShaderStageNone || ok {
				t.Errorf("%v.Stage() = %v, want none", k, stage)
			}
		}
	}
}

func TestBufferTargetUsage(t *testing.T) {
	tests := []struct {
		target BufferTarget
		want   gputypes.BufferUsage
	}{
		{BufferTargetArray, gputypes.BufferUsageVertex},
		{BufferTargetElementArray, gputypes.BufferUsageIndex},
		{BufferTargetUniform, gputypes.BufferUsageUniform},
		{BufferTargetShaderStorage, gputypes.BufferUsageStorage},
		{BufferTargetAtomicCounter, gputypes.BufferUsageStorage},
		{BufferTargetDrawIndirect, gputypes.BufferUsageIndirect},
		{BufferTargetDispatchIndirect, gputypes.BufferUsageIndirect},
		{BufferTargetCopyRead, gputypes.BufferUsageCopySrc},
		{BufferTargetPixelPack, gputypes.BufferUsageCopySrc},
		{BufferTargetCopyWrite, gputypes.BufferUsageCopyDst},
		{BufferTargetPixelUnpack, gputypes.BufferUsageCopyDst},
		{BufferTargetQuery, gputypes.BufferUsageQueryResolve},
		{BufferTargetTexture, gputypes.BufferUsageNone},
		{BufferTargetTransformFeedback, gputypes.BufferUsageNone},
	}
	if len(tests) != len(BufferTargets()) {
		t.Fatalf("table covers %d targets, want %d", len(tests), len(BufferTargets()))
	}
	for _, tt := range tests {
		if got := tt.target.Usage(); got != tt.want {
			t.Errorf("%v.Usage() = %v, want %v", tt.target, got, tt.want)
		}
	}
}
