package sandbox

import (
	"errors"
	"fmt"
	"io/fs"
)

// ShaderCompiler is the GPU side of pipeline construction.
// The OpenGL backend implements it; tests use a fake.
type ShaderCompiler interface {
	// CompileShader creates a shader object of the given kind and compiles
	// source into it. The returned id is valid even when ok is false.
	CompileShader(kind StageKind, source string) (id uint32, infoLog string, ok bool)
	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32) (infoLog string, ok bool)
	DeleteShader(shader uint32)
	DeleteProgram(program uint32)
}

// DiagnosticKind classifies a pipeline build problem.
type DiagnosticKind int

const (
	DiagMissingSource DiagnosticKind = iota
	DiagCompile
	DiagLink
)

func (k DiagnosticKind) String() string {
	switch k {
	case DiagMissingSource:
		return "missing source"
	case DiagCompile:
		return "compile"
	case DiagLink:
		return "link"
	default:
		return fmt.Sprintf("DiagnosticKind(%d)", int(k))
	}
}

// Diagnostic is a non-fatal problem found while building a pipeline.
type Diagnostic struct {
	Kind  DiagnosticKind
	Stage StageKind // unset for link diagnostics
	Path  string
	Log   string
}

func (d Diagnostic) Error() string {
	if d.Kind == DiagLink {
		return fmt.Sprintf("program link failed: %s", d.Log)
	}
	return fmt.Sprintf("%s shader %s (%s): %s", d.Stage, d.Kind, d.Path, d.Log)
}

// Program is a linked shader program.
type Program struct {
	ID          uint32
	Stages      []StageKind // stages attached, in table order
	Diagnostics []Diagnostic
}

// Err returns the diagnostics joined into one error, or nil when the build was clean.
func (p *Program) Err() error {
	if len(p.Diagnostics) == 0 {
		return nil
	}
	errs := make([]error, len(p.Diagnostics))
	for i, d := range p.Diagnostics {
		errs[i] = d
	}
	return errors.Join(errs...)
}

// Delete releases the program object.
func (p *Program) Delete(c ShaderCompiler) {
	if p.ID != 0 {
		c.DeleteProgram(p.ID)
		p.ID = 0
	}
}

// BuildPipeline compiles every enabled stage of the table, attaches it to one
// program and links the program. Disabled stages are neither read nor compiled.
//
// A missing source file is compiled as an empty string. Missing sources,
// compile failures and link failures are recorded on the returned program and
// logged; they never prevent a program from being returned.
func BuildPipeline(fsys fs.FS, stages []Stage, c ShaderCompiler) *Program {
	p := &Program{}
	var shaders []uint32

	for _, s := range stages {
		if !s.Enabled {
			continue
		}

		source, err := fs.ReadFile(fsys, s.Path)
		if err != nil {
			p.addDiagnostic(Diagnostic{Kind: DiagMissingSource, Stage: s.Kind, Path: s.Path, Log: err.Error()})
		}

		id, infoLog, ok := c.CompileShader(s.Kind, string(source))
		if !ok {
			p.addDiagnostic(Diagnostic{Kind: DiagCompile, Stage: s.Kind, Path: s.Path, Log: infoLog})
		}
		shaders = append(shaders, id)
		p.Stages = append(p.Stages, s.Kind)
	}

	p.ID = c.CreateProgram()
	for _, id := range shaders {
		c.AttachShader(p.ID, id)
	}
	if infoLog, ok := c.LinkProgram(p.ID); !ok {
		p.addDiagnostic(Diagnostic{Kind: DiagLink, Log: infoLog})
	}

	// Shader objects are owned by the program once linked.
	for _, id := range shaders {
		c.DeleteShader(id)
	}

	logger.Debug("pipeline built", "program", p.ID, "stages", p.Stages, "diagnostics", len(p.Diagnostics))
	return p
}

func (p *Program) addDiagnostic(d Diagnostic) {
	p.Diagnostics = append(p.Diagnostics, d)
	logger.Warn("shader pipeline", "kind", d.Kind.String(), "stage", d.Stage.String(), "path", d.Path, "log", d.Log)
}
