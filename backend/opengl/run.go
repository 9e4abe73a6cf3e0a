package opengl

import (
	"fmt"
	"path"
	"path/filepath"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/sandbox"
)

// Run bootstraps GLFW and OpenGL, builds the renderer and runs the render
// loop until the window is closed. It must be called from the main thread.
//
// Any error returned happened before the loop started.
func Run(cfg sandbox.Config) error {
	sandbox.SetVerbose(cfg.Verbose)
	log := sandbox.Logger()

	stages, err := cfg.ResolveStages()
	if err != nil {
		return fmt.Errorf("stage table: %w", err)
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	window, err := NewWindow(cfg)
	if err != nil {
		return err
	}

	if err := gl.Init(); err != nil {
		window.Destroy()
		return fmt.Errorf("gl init: %w", err)
	}
	log.Info("OpenGL context", "version", gl.GoStr(gl.GetString(gl.VERSION)))

	if cfg.DebugOutput {
		EnableDebugOutput()
	}

	renderer, err := NewRenderer(cfg, stages)
	if err != nil {
		window.Destroy()
		return fmt.Errorf("renderer: %w", err)
	}

	app := sandbox.NewApp(cfg, window, renderer)

	if cfg.HotReload {
		watcher, err := sandbox.NewWatcher(stageDirs(cfg.Root, stages)...)
		if err != nil {
			log.Warn("hot reload disabled", "err", err)
		} else {
			app.SetNotifier(watcher)
		}
	}

	return app.Run()
}

// stageDirs returns the OS directories holding the enabled stage sources.
func stageDirs(root string, stages []sandbox.Stage) []string {
	var dirs []string
	for _, s := range sandbox.EnabledStages(stages) {
		dirs = append(dirs, filepath.Join(root, filepath.FromSlash(path.Dir(s.Path))))
	}
	return dirs
}
