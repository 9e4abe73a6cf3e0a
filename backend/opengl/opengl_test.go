package opengl

import (
	"path/filepath"
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"

	"github.com/go-theft-auto/sandbox"
)

func TestGLFWKeyMapping(t *testing.T) {
	tests := map[glfw.Key]sandbox.Key{
		glfw.KeyW:     sandbox.KeyW,
		glfw.KeyA:     sandbox.KeyA,
		glfw.KeyS:     sandbox.KeyS,
		glfw.KeyD:     sandbox.KeyD,
		glfw.KeyUp:    sandbox.KeyUp,
		glfw.KeyDown:  sandbox.KeyDown,
		glfw.KeyLeft:  sandbox.KeyLeft,
		glfw.KeyRight: sandbox.KeyRight,
		glfw.KeyR:     sandbox.KeyR,
		glfw.KeyF:     sandbox.KeyF,
		glfw.KeyX:     sandbox.KeyX,
		glfw.KeyQ:     sandbox.KeyNone,
		glfw.KeySpace: sandbox.KeyNone,
	}
	for in, want := range tests {
		assert.Equal(t, want, glfwKeyToSandboxKey(in), "glfw key %d", in)
	}
}

func TestKeyCallbackUpdatesInput(t *testing.T) {
	a := &GLFWInputAdapter{input: sandbox.NewInputState()}

	a.keyCallback(nil, glfw.KeyX, 0, glfw.Press, 0)
	assert.True(t, a.Input().KeyDown(sandbox.KeyX))

	a.keyCallback(nil, glfw.KeyX, 0, glfw.Repeat, 0)
	assert.True(t, a.Input().KeyDown(sandbox.KeyX))

	a.keyCallback(nil, glfw.KeyX, 0, glfw.Release, 0)
	assert.False(t, a.Input().KeyDown(sandbox.KeyX))

	a.keyCallback(nil, glfw.KeyR, 0, glfw.Press, 0)
	a.focusCallback(nil, false)
	assert.False(t, a.Input().KeyDown(sandbox.KeyR), "focus loss releases held keys")
}

func TestStageDirs(t *testing.T) {
	stages := sandbox.DefaultStages("res/shaders/cube")
	stages = append(stages, sandbox.Stage{Enabled: true, Kind: sandbox.StageGeometry, Path: "res/shaders/common/Geometry.shader"})

	got := stageDirs("/srv/sandbox", stages)
	assert.Equal(t, []string{
		filepath.Join("/srv/sandbox", "res", "shaders", "cube"),
		filepath.Join("/srv/sandbox", "res", "shaders", "cube"),
		filepath.Join("/srv/sandbox", "res", "shaders", "common"),
	}, got)
}

func TestFlipRows(t *testing.T) {
	pix := []byte{
		1, 1, 1, 1,
		2, 2, 2, 2,
		3, 3, 3, 3,
	}
	flipRows(pix, 4)
	assert.Equal(t, []byte{
		3, 3, 3, 3,
		2, 2, 2, 2,
		1, 1, 1, 1,
	}, pix)
}
