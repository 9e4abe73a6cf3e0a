/*
Package sandbox is a small OpenGL playground: one window, one shader
program, one static vertex buffer and a render loop that redraws it every
frame.

Everything in this package is independent of the GPU so it can be tested
without a display. The backend/opengl package supplies the window, the
GLSL compiler and the renderer.

# Quick Start

	cfg := sandbox.NewConfig(sandbox.InteractiveCube())
	if err := opengl.Run(cfg); err != nil {
	    log.Fatal(err)
	}

# Lifecycle

An App moves through three states:

	Initializing -> Running -> ShuttingDown

Bootstrap failures (GLFW init, window creation, GL function loading) are
returned before the App exists. Once Running, each iteration updates the
transform, draws, swaps buffers and polls events; a close request is only
observed between iterations.

# Shader Table

The pipeline is built from a table of stages. DefaultStages lists one file
per stage kind with only the vertex and fragment stages enabled:

	res/shaders/<variant>/Vertex.shader                  enabled
	res/shaders/<variant>/TessellationControl.shader     disabled
	res/shaders/<variant>/TessellationEvaluation.shader  disabled
	res/shaders/<variant>/Geometry.shader                disabled
	res/shaders/<variant>/Fragment.shader                enabled
	res/shaders/<variant>/Compute.shader                 disabled

A YAML manifest can replace the table (see LoadStages). Compile and link
failures are logged and kept on Program.Diagnostics; they never stop the
window from opening.

# Keyboard Shortcuts Reference

Interactive variant:

	W / Up           Rotate about X (negative)
	S / Down         Rotate about X (positive)
	A / Left         Rotate about Y (negative)
	D / Right        Rotate about Y (positive)
	R                Scale up
	F                Scale down
	X (held)         X-ray: no culling, smoothed line rasterization

Rotation speeds up the longer bound keys are held and resets when all of
them are released. The transform is never renormalized.
*/
package sandbox
