// Command cube opens a window showing the deterministic spinning cube.
// The transform is a pure function of the frame counter.
//
// Run it from the repository root so the shader paths resolve:
//
//	go run ./example/cube/
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
	if err := opengl.Run(sandbox.NewConfig(sandbox.AnimatedCube())); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
