package sandbox

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Projection parameters.
const (
	FieldOfView float32 = 50 // degrees
	NearPlane   float32 = 0.1
	FarPlane    float32 = 1000
)

// AnimateModelView returns the model-view matrix for the given frame of the
// deterministic animation. The cube sits four units in front of the camera,
// wobbles along a Lissajous path and spins about Y and X.
func AnimateModelView(frame uint32) mgl32.Mat4 {
	n := float32(frame)
	f := n * 0.3

	wobble := mgl32.Translate3D(
		math32.Sin(2.1*f)*0.5,
		math32.Cos(1.7*f)*0.5,
		math32.Sin(1.3*f)*math32.Cos(1.5*f)*2,
	)

	return mgl32.Translate3D(0, 0, -4).
		Mul4(wobble).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(n * 45))).
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(n * 81)))
}

// Projection returns the perspective projection for a framebuffer of the
// given size. A zero or negative height is treated as a square framebuffer.
func Projection(width, height int) mgl32.Mat4 {
	aspect := float32(1)
	if width > 0 && height > 0 {
		aspect = float32(width) / float32(height)
	}
	return mgl32.Perspective(mgl32.DegToRad(FieldOfView), aspect, NearPlane, FarPlane)
}
