package sandbox_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-theft-auto/sandbox"
)

func TestInputStateEdges(t *testing.T) {
	in := sandbox.NewInputState()

	in.SetKey(sandbox.KeyW, true)
	assert.True(t, in.KeyDown(sandbox.KeyW))
	assert.True(t, in.KeyPressed(sandbox.KeyW))
	assert.False(t, in.KeyReleased(sandbox.KeyW))

	in.Reset()
	assert.True(t, in.KeyDown(sandbox.KeyW), "held keys survive Reset")
	assert.False(t, in.KeyPressed(sandbox.KeyW))

	in.SetKey(sandbox.KeyW, true) // key repeat
	assert.False(t, in.KeyPressed(sandbox.KeyW), "repeat is not a fresh press")

	in.SetKey(sandbox.KeyW, false)
	assert.False(t, in.KeyDown(sandbox.KeyW))
	assert.True(t, in.KeyReleased(sandbox.KeyW))
}

func TestInputStateIgnoresOutOfRangeKeys(t *testing.T) {
	in := sandbox.NewInputState()
	in.SetKey(sandbox.KeyNone, true)
	in.SetKey(sandbox.KeyCount, true)
	in.SetKey(-1, true)

	assert.False(t, in.KeyDown(sandbox.KeyNone))
	assert.False(t, in.KeyDown(sandbox.KeyCount))
	assert.False(t, in.KeyDown(-1))
}

func TestInputStateAnyDown(t *testing.T) {
	in := sandbox.NewInputState()
	assert.False(t, in.AnyDown(sandbox.KeyA, sandbox.KeyD))
	in.SetKey(sandbox.KeyD, true)
	assert.True(t, in.AnyDown(sandbox.KeyA, sandbox.KeyD))
	assert.False(t, in.AnyDown())
}

func TestKeyName(t *testing.T) {
	assert.Equal(t, "Up", sandbox.KeyName(sandbox.KeyUp))
	assert.Equal(t, "X", sandbox.KeyX.String())
	assert.Equal(t, "?", sandbox.KeyName(sandbox.KeyCount))
}
