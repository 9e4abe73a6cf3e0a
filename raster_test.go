package sandbox_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-theft-auto/sandbox"
)

func TestRasterFor(t *testing.T) {
	pressed := sandbox.RasterFor(true)
	assert.Equal(t, sandbox.PolygonLine, pressed.Polygon)
	assert.False(t, pressed.CullFace)
	assert.True(t, pressed.LineSmooth)

	released := sandbox.RasterFor(false)
	assert.Equal(t, sandbox.PolygonFill, released.Polygon)
	assert.True(t, released.CullFace)
	assert.False(t, released.LineSmooth)
}

func TestRasterForHasNoHysteresis(t *testing.T) {
	seq := []bool{false, true, true, false, true, false, false}
	for i, down := range seq {
		if down {
			assert.Equal(t, sandbox.XRayState, sandbox.RasterFor(down), "step %d", i)
		} else {
			assert.Equal(t, sandbox.FillState, sandbox.RasterFor(down), "step %d", i)
		}
	}
}
