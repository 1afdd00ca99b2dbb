package softgl

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/naga"
	"github.com/gogpu/naga/glsl"
	"github.com/gogpu/naga/ir"
	"github.com/gogpu/naga/spirv"

	"github.com/gogpu/glw/internal/glconst"
)

// module is a compiled shader: the IR of one WGSL source plus the entry
// point matching the shader's kind.
type module struct {
	ir    *ir.Module
	entry ir.EntryPoint
	stage gputypes.ShaderStage
	spirv []byte

	// inputs and outputs are the @location numbers of the entry point's
	// user-defined interface, sorted.
	inputs  []uint32
	outputs []uint32
	// attributes are the named inputs of a vertex entry point.
	attributes []attribute
	// uniforms are the module-scope variables in the uniform address space,
	// in declaration order.
	uniforms []uniformDecl
}

type attribute struct {
	Name     string `cbor:"1,keyasint"`
	Location uint32 `cbor:"2,keyasint"`
}

type uniformDecl struct {
	Name string `cbor:"1,keyasint"`
	// Type is the GL uniform type, 0 for types glProgramUniform* cannot set.
	Type uint32 `cbor:"2,keyasint,omitempty"`
}

type moduleKey struct {
	kind   uint32
	source string
}

// stageOf maps a GL shader kind onto the stages WGSL can express.
func stageOf(kind uint32) (ir.ShaderStage, gputypes.ShaderStage, bool) {
	switch kind {
	case glconst.VERTEX_SHADER:
		return ir.StageVertex, gputypes.ShaderStageVertex, true
	case glconst.FRAGMENT_SHADER:
		return ir.StageFragment, gputypes.ShaderStageFragment, true
	case glconst.COMPUTE_SHADER:
		return ir.StageCompute, gputypes.ShaderStageCompute, true
	default:
		return 0, gputypes.ShaderStageNone, false
	}
}

func kindName(kind uint32) string {
	switch kind {
	case glconst.VERTEX_SHADER:
		return "vertex"
	case glconst.FRAGMENT_SHADER:
		return "fragment"
	case glconst.COMPUTE_SHADER:
		return "compute"
	case glconst.GEOMETRY_SHADER:
		return "geometry"
	case glconst.TESS_CONTROL_SHADER:
		return "tessellation control"
	case glconst.TESS_EVALUATION_SHADER:
		return "tessellation evaluation"
	default:
		return fmt.Sprintf("%#x", kind)
	}
}

// compileModule runs the WGSL front end on desc and picks the entry point
// for kind. The returned error text becomes the shader's info log.
func compileModule(kind uint32, desc gputypes.ShaderModuleDescriptor, validate bool) (*module, error) {
	src, ok := desc.Source.(gputypes.ShaderSourceWGSL)
	if !ok {
		return nil, fmt.Errorf("error: %s: unsupported shader source %T", desc.Label, desc.Source)
	}
	want, stage, ok := stageOf(kind)
	if !ok {
		return nil, fmt.Errorf("error: %s shaders are not supported", kindName(kind))
	}

	ast, err := naga.Parse(src.Code)
	if err != nil {
		return nil, fmt.Errorf("error: %w", err)
	}
	m, err := naga.LowerWithSource(ast, src.Code)
	if err != nil {
		// Lowering errors can show the offending line with a caret.
		var list interface{ FormatAll() string }
		if errors.As(err, &list) {
			return nil, errors.New(list.FormatAll())
		}
		return nil, fmt.Errorf("error: %w", err)
	}
	if validate {
		verrs, err := naga.Validate(m)
		if err != nil {
			return nil, fmt.Errorf("error: validation: %w", err)
		}
		if len(verrs) > 0 {
			msgs := make([]string, len(verrs))
			for i, v := range verrs {
				msgs[i] = "error: " + v.Error()
			}
			return nil, errors.New(strings.Join(msgs, "\n"))
		}
	}

	idx := slices.IndexFunc(m.EntryPoints, func(ep ir.EntryPoint) bool { return ep.Stage == want })
	if idx < 0 {
		return nil, fmt.Errorf("error: no @%s entry point", kindName(kind))
	}
	entry := m.EntryPoints[idx]

	code, err := naga.GenerateSPIRV(m, spirv.Options{Version: spirv.Version1_3})
	if err != nil {
		return nil, fmt.Errorf("error: %w", err)
	}

	fn := entry.Function
	mod := &module{ir: m, entry: entry, stage: stage, spirv: code}
	for _, arg := range fn.Arguments {
		for _, v := range interfaceVars(m, arg.Name, arg.Binding, arg.Type) {
			mod.inputs = append(mod.inputs, v.Location)
			if kind == glconst.VERTEX_SHADER {
				mod.attributes = append(mod.attributes, v)
			}
		}
	}
	if fn.Result != nil {
		for _, v := range interfaceVars(m, "", fn.Result.Binding, fn.Result.Type) {
			mod.outputs = append(mod.outputs, v.Location)
		}
	}
	slices.Sort(mod.inputs)
	slices.Sort(mod.outputs)
	for _, gv := range m.GlobalVariables {
		if gv.Space == ir.SpaceUniform {
			mod.uniforms = append(mod.uniforms, uniformDecl{Name: gv.Name, Type: uniformType(m, gv.Type)})
		}
	}
	return mod, nil
}

// interfaceVars returns the @location variables carried by a binding, or by
// the members of a struct-typed value without a binding of its own.
func interfaceVars(m *ir.Module, name string, b *ir.Binding, th ir.TypeHandle) []attribute {
	if b != nil {
		if loc, ok := (*b).(ir.LocationBinding); ok {
			return []attribute{{Name: name, Location: loc.Location}}
		}
		return nil
	}
	if int(th) >= len(m.Types) {
		return nil
	}
	st, ok := m.Types[th].Inner.(ir.StructType)
	if !ok {
		return nil
	}
	var vars []attribute
	for _, member := range st.Members {
		if member.Binding == nil {
			continue
		}
		if loc, ok := (*member.Binding).(ir.LocationBinding); ok {
			vars = append(vars, attribute{Name: member.Name, Location: loc.Location})
		}
	}
	return vars
}

// uniformType maps a WGSL type onto the GL uniform type with the same
// layout, or 0 if none of the glProgramUniform* entry points can set it.
func uniformType(m *ir.Module, th ir.TypeHandle) uint32 {
	if int(th) >= len(m.Types) {
		return 0
	}
	switch t := m.Types[th].Inner.(type) {
	case ir.ScalarType:
		switch t.Kind {
		case ir.ScalarSint:
			return glconst.INT
		case ir.ScalarFloat:
			return glconst.FLOAT
		}
	case ir.VectorType:
		switch t.Scalar.Kind {
		case ir.ScalarSint:
			return glconst.INT_VEC2 + uint32(t.Size-ir.Vec2)
		case ir.ScalarFloat:
			return glconst.FLOAT_VEC2 + uint32(t.Size-ir.Vec2)
		}
	case ir.MatrixType:
		if t.Columns == ir.Vec4 && t.Rows == ir.Vec4 && t.Scalar.Kind == ir.ScalarFloat {
			return glconst.FLOAT_MAT4
		}
	}
	return 0
}

// words repacks SPIR-V bytes as little-endian 32-bit words.
func words(code []byte) []uint32 {
	out := make([]uint32, len(code)/4)
	for i := range out {
		out[i] = uint32(code[i*4]) |
			uint32(code[i*4+1])<<8 |
			uint32(code[i*4+2])<<16 |
			uint32(code[i*4+3])<<24
	}
	return out
}

// translateGLSL renders the module's entry point as GLSL 4.30 core.
func translateGLSL(mod *module) (string, error) {
	if mod.ir == nil {
		return "", errors.New("softgl: module was loaded from a program binary and has no IR")
	}
	code, _, err := glsl.Compile(mod.ir, glsl.Options{
		LangVersion: glsl.Version430,
		EntryPoint:  mod.entry.Name,
	})
	if err != nil {
		return "", fmt.Errorf("softgl: glsl: %w", err)
	}
	return code, nil
}
