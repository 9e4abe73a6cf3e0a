package sandbox

import "github.com/go-gl/mathgl/mgl32"

// Default controller tuning.
const (
	DefaultRotateStep  float32 = 0.02 // radians per frame at timer zero
	DefaultRotateBoost float32 = 1    // extra speed per second of holding
	DefaultScaleStep   float32 = 1.01 // scale factor per frame
)

// OpKind is the kind of transform a key applies.
type OpKind int

const (
	OpRotateX OpKind = iota
	OpRotateY
	OpScale
)

// KeyBinding maps a key to a transform operation. Sign selects direction:
// negative rotates the other way, or shrinks instead of grows.
type KeyBinding struct {
	Key  Key
	Op   OpKind
	Sign float32
}

// DefaultBindings is the fixed key-to-operation table. Held keys are applied
// in this order every frame.
func DefaultBindings() []KeyBinding {
	return []KeyBinding{
		{Key: KeyW, Op: OpRotateX, Sign: -1},
		{Key: KeyS, Op: OpRotateX, Sign: 1},
		{Key: KeyA, Op: OpRotateY, Sign: -1},
		{Key: KeyD, Op: OpRotateY, Sign: 1},
		{Key: KeyUp, Op: OpRotateX, Sign: -1},
		{Key: KeyDown, Op: OpRotateX, Sign: 1},
		{Key: KeyLeft, Op: OpRotateY, Sign: -1},
		{Key: KeyRight, Op: OpRotateY, Sign: 1},
		{Key: KeyR, Op: OpScale, Sign: 1},
		{Key: KeyF, Op: OpScale, Sign: -1},
	}
}

// Controller accumulates keyboard-driven rotations and scales into a running
// transform. The transform is never renormalized.
type Controller struct {
	RotateStep  float32
	RotateBoost float32
	ScaleStep   float32

	bindings  []KeyBinding
	base      mgl32.Mat4
	transform mgl32.Mat4
	timer     float32
}

// NewController creates a controller starting from base with the given bindings.
// A nil bindings slice uses DefaultBindings.
func NewController(base mgl32.Mat4, bindings []KeyBinding) *Controller {
	if bindings == nil {
		bindings = DefaultBindings()
	}
	return &Controller{
		RotateStep:  DefaultRotateStep,
		RotateBoost: DefaultRotateBoost,
		ScaleStep:   DefaultScaleStep,
		bindings:    bindings,
		base:        base,
		transform:   base,
	}
}

// Update applies one frame of input. If no bound key is held the timer
// resets to zero and the transform is left unchanged. Otherwise the timer
// advances by dt and each held key multiplies its operation onto the
// transform.
func (c *Controller) Update(input *InputState, dt float32) mgl32.Mat4 {
	held := false
	for _, b := range c.bindings {
		if input.KeyDown(b.Key) {
			held = true
			break
		}
	}
	if !held {
		c.timer = 0
		return c.transform
	}

	c.timer += dt
	angle := c.RotateStep * (1 + c.timer*c.RotateBoost)

	for _, b := range c.bindings {
		if !input.KeyDown(b.Key) {
			continue
		}
		switch b.Op {
		case OpRotateX:
			c.transform = c.transform.Mul4(mgl32.HomogRotate3DX(b.Sign * angle))
		case OpRotateY:
			c.transform = c.transform.Mul4(mgl32.HomogRotate3DY(b.Sign * angle))
		case OpScale:
			s := c.ScaleStep
			if b.Sign < 0 {
				s = 1 / s
			}
			c.transform = c.transform.Mul4(mgl32.Scale3D(s, s, s))
		}
	}
	return c.transform
}

// Transform returns the current accumulated transform.
func (c *Controller) Transform() mgl32.Mat4 { return c.transform }

// Timer returns how long bound keys have been held continuously, in seconds.
func (c *Controller) Timer() float32 { return c.timer }

// Reset restores the starting transform and clears the timer.
func (c *Controller) Reset() {
	c.transform = c.base
	c.timer = 0
}
