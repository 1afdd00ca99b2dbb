package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/glw"
	"github.com/gogpu/glw/driver"
	"github.com/gogpu/glw/internal/workpool"
	"github.com/gogpu/glw/softgl"
)

// StageResult is the outcome of compiling one shader file.
type StageResult struct {
	Kind     glw.ShaderKind
	Path     string
	Compiled bool
	Log      string
	// SPIRVWords is the size of the compiled module, 0 if it did not compile.
	SPIRVWords int
	// GLSL is set when GLSL output was requested.
	GLSL string
}

// ProgramResult is the outcome of checking one program.
type ProgramResult struct {
	Name   string
	Stages []StageResult
	Linked bool
	Log    string
	// BinaryBytes is the size of the program binary of a linked program.
	BinaryBytes int
	Attributes  int32
	// Reloaded reports whether the program binary linked again on a fresh
	// program object.
	Reloaded bool
}

// OK reports whether every stage compiled and the program linked.
func (r ProgramResult) OK() bool {
	if !r.Linked {
		return false
	}
	for _, s := range r.Stages {
		if !s.Compiled {
			return false
		}
	}
	return true
}

type checkOptions struct {
	glsl     bool
	validate bool
	// jobs is the number of programs checked at once.
	jobs int
	log  *slog.Logger
}

// checker runs every program of a manifest through one software driver.
// Each program gets its own Context, so programs can be checked
// concurrently.
type checker struct {
	drv *softgl.Driver
	// gl is the driver every Context calls through: drv, or a wrapper
	// around it.
	gl  driver.Driver
	m   *Manifest
	opt checkOptions
}

func newChecker(m *Manifest, opt checkOptions) *checker {
	drvOpts := []softgl.Option{
		softgl.WithLogger(opt.log),
		softgl.WithValidation(opt.validate),
	}
	if m.Renderer != "" {
		drvOpts = append(drvOpts, softgl.WithRenderer(m.Renderer))
	}
	if opt.jobs <= 0 {
		opt.jobs = 1
	}
	drv := softgl.New(drvOpts...)
	return &checker{drv: drv, gl: drv, m: m, opt: opt}
}

func (ck *checker) newContext() *glw.Context {
	// Error flags of a driver shared between goroutines cannot be
	// attributed to one of them.
	return glw.NewContext(ck.gl,
		glw.WithErrorCheck(ck.opt.jobs == 1),
		glw.WithLabels(true),
		glw.WithLogger(ck.opt.log),
	)
}

// run checks every program. On error it returns the results of the
// programs listed before the one that failed.
func (ck *checker) run() ([]ProgramResult, error) {
	results := make([]ProgramResult, len(ck.m.Programs))
	errs := make([]error, len(ck.m.Programs))

	pool := workpool.New(ck.opt.jobs)
	defer pool.Close()
	pool.Run(len(ck.m.Programs), func(i int) {
		results[i], errs[i] = ck.checkProgram(ck.newContext(), ck.m.Programs[i])
	})

	for i, err := range errs {
		if err != nil {
			return results[:i], fmt.Errorf("program %q: %w", ck.m.Programs[i].Name, err)
		}
	}
	return results, nil
}

func (ck *checker) checkProgram(c *glw.Context, cfg ProgramConfig) (ProgramResult, error) {
	res := ProgramResult{Name: cfg.Name}
	var shaders []glw.Shader[glw.Unknown, glw.Compiled]
	defer func() {
		for _, s := range shaders {
			s.Delete()
		}
	}()

	for _, st := range cfg.stages() {
		sr, sh, err := ck.compileStage(c, st)
		if err != nil {
			return res, err
		}
		res.Stages = append(res.Stages, sr)
		if sr.Compiled {
			shaders = append(shaders, sh)
		}
	}
	if len(shaders) != len(res.Stages) {
		return res, nil
	}

	p, err := glw.CreateProgram(c)
	if err != nil {
		return res, err
	}
	p.Label(cfg.Name)
	for _, s := range shaders {
		glw.Attach(p, s)
	}
	pending := glw.Link(p)
	lr, err := glw.QueryLinkStatus(pending)
	if err != nil {
		pending.Delete()
		return res, err
	}
	bad, failed := lr.Unlinked()
	if failed {
		res.Log, err = bad.InfoLog()
		bad.Delete()
		return res, err
	}
	linked, _ := lr.Linked()
	defer linked.Delete()

	res.Linked = true
	res.Attributes = linked.Param(glw.ProgramParamActiveAttributes)
	bin, err := glw.Binary(linked)
	if err != nil {
		return res, err
	}
	res.BinaryBytes = len(bin.Data)
	res.Reloaded, err = reload(c, bin)
	return res, err
}

// compileStage compiles one shader file. A shader that fails to compile is
// deleted here; a compiled one is returned for linking.
func (ck *checker) compileStage(c *glw.Context, st stage) (StageResult, glw.Shader[glw.Unknown, glw.Compiled], error) {
	var none glw.Shader[glw.Unknown, glw.Compiled]
	sr := StageResult{Kind: st.Kind, Path: st.Path}

	src, err := os.ReadFile(ck.m.resolve(st.Path))
	if err != nil {
		return sr, none, err
	}
	s, err := glw.CreateShaderDynamic(c, st.Kind)
	if err != nil {
		return sr, none, err
	}
	pending := glw.Compile(s, string(src))
	cr, err := glw.QueryCompileStatus(pending)
	if err != nil {
		pending.Delete()
		return sr, none, err
	}
	compiled, ok := cr.Compiled()
	if !ok {
		bad, _ := cr.Uncompiled()
		sr.Log, err = bad.InfoLog()
		bad.Delete()
		return sr, none, err
	}
	sr.Compiled = true

	if desc, ok := ck.drv.ShaderModule(compiled.Raw()); ok {
		if code, ok := desc.Source.(gputypes.ShaderSourceSPIRV); ok {
			sr.SPIRVWords = len(code.Code)
		}
	}
	if ck.opt.glsl {
		sr.GLSL, err = ck.drv.TranslateGLSL(compiled.Raw())
		if err != nil {
			sr.GLSL = "GLSL translation failed: " + err.Error()
		}
	}
	return sr, compiled, nil
}

// reload loads bin into a fresh program, the way an application restores
// a program from its binary cache.
func reload(c *glw.Context, bin glw.ProgramBinary) (bool, error) {
	p, err := glw.CreateProgram(c)
	if err != nil {
		return false, err
	}
	pending := glw.LoadBinary(p, bin)
	lr, err := glw.QueryLinkStatus(pending)
	if err != nil {
		pending.Delete()
		return false, err
	}
	if linked, ok := lr.Linked(); ok {
		linked.Delete()
		return true, nil
	}
	bad, _ := lr.Unlinked()
	bad.Delete()
	return false, nil
}
