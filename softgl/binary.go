package softgl

import (
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/gogpu/gputypes"
)

// BinaryFormat is the only program binary format softgl produces and
// accepts ("SGL1").
const BinaryFormat uint32 = 0x53474C31

// binaryVersion is bumped whenever programBinary changes shape.
const binaryVersion = 2

// programBinary is the CBOR payload of a program binary. Integer keys keep
// it compact.
type programBinary struct {
	Version  int           `cbor:"1,keyasint"`
	Renderer string        `cbor:"2,keyasint"`
	Stages   []binaryStage `cbor:"3,keyasint"`
}

type binaryStage struct {
	Kind       uint32               `cbor:"1,keyasint"`
	Stage      gputypes.ShaderStage `cbor:"2,keyasint"`
	Entry      string               `cbor:"3,keyasint"`
	Inputs     []uint32             `cbor:"4,keyasint,omitempty"`
	Outputs    []uint32             `cbor:"5,keyasint,omitempty"`
	Uniforms   []uniformDecl        `cbor:"6,keyasint,omitempty"`
	SPIRV      []byte               `cbor:"7,keyasint"`
	Attributes []attribute          `cbor:"8,keyasint,omitempty"`
}

var (
	binEncMode cbor.EncMode
	binDecMode cbor.DecMode
)

func init() {
	var err error

	// Canonical encoding: linking the same program twice yields the same bytes.
	encOpts := cbor.CanonicalEncOptions()
	binEncMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("softgl: failed to create CBOR encoder mode: %v", err))
	}

	decOpts := cbor.DecOptions{
		DupMapKey:   cbor.DupMapKeyEnforcedAPF,
		IndefLength: cbor.IndefLengthForbidden,
	}
	binDecMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("softgl: failed to create CBOR decoder mode: %v", err))
	}
}

var errBinaryMismatch = errors.New("program binary was produced by a different driver")

func encodeBinary(renderer string, stages map[uint32]*module) ([]byte, error) {
	pb := programBinary{Version: binaryVersion, Renderer: renderer}
	for _, kind := range stageOrder {
		mod, ok := stages[kind]
		if !ok {
			continue
		}
		pb.Stages = append(pb.Stages, binaryStage{
			Kind:       kind,
			Stage:      mod.stage,
			Entry:      mod.entry.Name,
			Inputs:     mod.inputs,
			Outputs:    mod.outputs,
			Uniforms:   mod.uniforms,
			SPIRV:      mod.spirv,
			Attributes: mod.attributes,
		})
	}
	return binEncMode.Marshal(pb)
}

// decodeBinary restores the linked stages of a program. The modules it
// returns carry no IR.
func decodeBinary(renderer string, data []byte) (map[uint32]*module, error) {
	var pb programBinary
	if err := binDecMode.Unmarshal(data, &pb); err != nil {
		return nil, fmt.Errorf("corrupt program binary: %w", err)
	}
	if pb.Version != binaryVersion || pb.Renderer != renderer {
		return nil, errBinaryMismatch
	}
	if len(pb.Stages) == 0 {
		return nil, errors.New("program binary has no stages")
	}
	stages := make(map[uint32]*module, len(pb.Stages))
	for _, s := range pb.Stages {
		mod := &module{
			stage:      s.Stage,
			spirv:      s.SPIRV,
			inputs:     s.Inputs,
			outputs:    s.Outputs,
			uniforms:   s.Uniforms,
			attributes: s.Attributes,
		}
		mod.entry.Name = s.Entry
		stages[s.Kind] = mod
	}
	return stages, nil
}
