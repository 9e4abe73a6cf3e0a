// Command triangle draws a static triangle whose vertices carry their own colors.
//
// Run it from the repository root so the shader paths resolve:
//
//	go run ./example/triangle/
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
	if err := opengl.Run(sandbox.NewConfig(sandbox.ColoredTriangle())); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
