// Command xray shows the keyboard-driven cube.
//
//	W/A/S/D, arrows  rotate
//	R / F            scale up / down
//	X (held)         x-ray line rendering
//
// The stage table is read from res/shaders/cube/pipeline.yaml and shader
// files are watched and rebuilt on save.
//
// Run it from the repository root so the shader paths resolve:
//
//	go run ./example/xray/
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/go-theft-auto/sandbox"
	"github.com/go-theft-auto/sandbox/backend/opengl"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := opengl.Run(sandbox.NewConfig(
		sandbox.InteractiveCube(),
		sandbox.WithManifest("res/shaders/cube/pipeline.yaml"),
		sandbox.WithHotReload(true),
	)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
