// Package opengl provides the OpenGL 4.6 and GLFW backend for the sandbox.
package opengl

import (
	"fmt"
	"io/fs"

	"github.com/go-gl/gl/v4.6-core/gl"

	"github.com/go-theft-auto/sandbox"
)

// Renderer implements sandbox.Renderer using OpenGL.
type Renderer struct {
	fsys     fs.FS
	stages   []sandbox.Stage
	compiler Compiler

	program *sandbox.Program
	mesh    *MeshBuffer
	mvLoc   int32
	projLoc int32

	mvName, projName string

	raster    sandbox.RasterState
	rasterSet bool
}

// NewRenderer builds the shader pipeline, uploads the mesh and sets the
// fixed depth and winding state. Shader diagnostics are logged and do not
// fail construction.
func NewRenderer(cfg sandbox.Config, stages []sandbox.Stage) (*Renderer, error) {
	if cfg.Mesh.Count() == 0 {
		return nil, fmt.Errorf("mesh %q has no vertices", cfg.Mesh.Name())
	}

	r := &Renderer{
		fsys:     cfg.Resources,
		stages:   stages,
		mvName:   cfg.ModelViewUniform,
		projName: cfg.ProjectionUniform,
	}

	r.setProgram(sandbox.BuildPipeline(r.fsys, r.stages, r.compiler))
	r.mesh = UploadMesh(cfg.Mesh)

	gl.FrontFace(gl.CW)
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)

	return r, nil
}

// Program returns the current shader program.
func (r *Renderer) Program() *sandbox.Program {
	return r.program
}

// Render clears the framebuffer and draws the mesh with the frame's
// transforms and raster state.
func (r *Renderer) Render(f *sandbox.Frame) {
	one := float32(1)
	gl.Viewport(0, 0, int32(f.Width), int32(f.Height))
	gl.ClearBufferfv(gl.COLOR, 0, &f.ClearColor[0])
	gl.ClearBufferfv(gl.DEPTH, 0, &one)

	r.applyRaster(f.Raster)

	gl.UseProgram(r.program.ID)
	if r.projLoc >= 0 {
		gl.UniformMatrix4fv(r.projLoc, 1, false, &f.Projection[0])
	}
	if r.mvLoc >= 0 {
		gl.UniformMatrix4fv(r.mvLoc, 1, false, &f.ModelView[0])
	}

	r.mesh.Draw()
}

// Reload rebuilds the pipeline from the stage table. The new program
// replaces the current one only if it built without diagnostics.
func (r *Renderer) Reload() error {
	p := sandbox.BuildPipeline(r.fsys, r.stages, r.compiler)
	if err := p.Err(); err != nil {
		p.Delete(r.compiler)
		return err
	}
	r.program.Delete(r.compiler)
	r.setProgram(p)
	return nil
}

// Delete releases OpenGL resources.
func (r *Renderer) Delete() {
	if r.mesh != nil {
		r.mesh.Delete()
		r.mesh = nil
	}
	if r.program != nil {
		r.program.Delete(r.compiler)
	}
}

func (r *Renderer) setProgram(p *sandbox.Program) {
	r.program = p
	r.mvLoc = uniformLocation(p.ID, r.mvName)
	r.projLoc = uniformLocation(p.ID, r.projName)
}

// applyRaster changes fixed-function state only when it differs from the
// state set on the previous frame.
func (r *Renderer) applyRaster(s sandbox.RasterState) {
	if r.rasterSet && s == r.raster {
		return
	}
	r.raster, r.rasterSet = s, true

	setEnabled(gl.CULL_FACE, s.CullFace)
	setEnabled(gl.DEPTH_TEST, s.DepthTest)
	setEnabled(gl.LINE_SMOOTH, s.LineSmooth)
	if s.LineSmooth {
		gl.Hint(gl.LINE_SMOOTH_HINT, gl.NICEST)
	}

	if s.Polygon == sandbox.PolygonLine {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
}

func setEnabled(capability uint32, on bool) {
	if on {
		gl.Enable(capability)
	} else {
		gl.Disable(capability)
	}
}

func uniformLocation(program uint32, name string) int32 {
	if name == "" {
		return -1
	}
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}
