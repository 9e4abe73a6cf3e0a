// Command gen renders each sandbox variant off screen, captures framebuffer
// pixels, and saves JPEG screenshots to doc/imgs/.
//
// Usage (from the repository root):
//
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/sandbox"
	"github.com/go-theft-auto/sandbox/backend/opengl"
)

const (
	shotWidth  = 640
	shotHeight = 360
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single variant screenshot to capture.
type screenshot struct {
	name    string         // filename without extension
	variant sandbox.Option // preset to render
	frame   uint32         // animation frame
	xray    bool           // hold the x-ray key
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Visible, glfw.False)
	window, err := opengl.NewWindow(sandbox.NewConfig(
		sandbox.WithTitle("screenshot-gen"),
		sandbox.WithSize(shotWidth, shotHeight),
		sandbox.WithDebugOutput(false),
	))
	if err != nil {
		return err
	}
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := []screenshot{
		{name: "cube-000", variant: sandbox.AnimatedCube(), frame: 0},
		{name: "cube-040", variant: sandbox.AnimatedCube(), frame: 40},
		{name: "triangle", variant: sandbox.ColoredTriangle()},
		{name: "xray-fill", variant: sandbox.InteractiveCube()},
		{name: "xray-line", variant: sandbox.InteractiveCube(), xray: true},
	}

	for _, s := range shots {
		if err := capture(s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, shotWidth, shotHeight)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(s screenshot, outDir string) error {
	cfg := sandbox.NewConfig(s.variant, sandbox.WithSize(shotWidth, shotHeight))
	stages, err := cfg.ResolveStages()
	if err != nil {
		return err
	}

	renderer, err := opengl.NewRenderer(cfg, stages)
	if err != nil {
		return err
	}
	defer renderer.Delete()
	if err := renderer.Program().Err(); err != nil {
		return err
	}

	modelView := cfg.InitialTransform()
	if cfg.Mode == sandbox.UpdateAnimate {
		modelView = sandbox.AnimateModelView(s.frame)
	}

	renderer.Render(&sandbox.Frame{
		Number:     s.frame,
		Width:      shotWidth,
		Height:     shotHeight,
		ModelView:  modelView,
		Projection: sandbox.Projection(shotWidth, shotHeight),
		Raster:     sandbox.RasterFor(s.xray),
		ClearColor: cfg.ClearColor,
	})
	gl.Finish()

	img := opengl.ReadFramebuffer(shotWidth, shotHeight)

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}
