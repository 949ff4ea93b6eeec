// Package tilt converts raw pointer or device-orientation input into
// the 3D presentation state of a card: a clamped rotation pair, a glare
// position, and the normalized pointer coordinate the holo overlay
// feeds on. It is a single publisher; render code subscribes and reads,
// it never derives this state on its own.
package tilt

import (
	"fmt"
	"math"
	"sync"
)

// DefaultMaxAngle bounds rotation on either axis, in degrees.
const DefaultMaxAngle = 20.0

// gyroBaseBeta is the assumed resting pitch of a held phone; raw
// orientation is calibrated against it and clamped to ±gyroRange.
const (
	gyroBaseBeta = 45.0
	gyroRange    = 45.0
)

// State is the published presentation state. Neutral state is zero
// rotation, centered pointer, invisible glare.
type State struct {
	RotateX      float64 // degrees
	RotateY      float64 // degrees
	GlareX       float64 // percent of element width
	GlareY       float64 // percent of element height
	GlareOpacity float64 // 0..1
	PointerX     float64 // normalized 0..1
	PointerY     float64 // normalized 0..1
}

// Neutral is the resting state.
func Neutral() State {
	return State{GlareX: 50, GlareY: 50, PointerX: 0.5, PointerY: 0.5}
}

// Transform renders the state's rotation as a CSS transform.
func (s State) Transform() string {
	return fmt.Sprintf("rotateX(%.2fdeg) rotateY(%.2fdeg)", s.RotateX, s.RotateY)
}

// Bounds is the tracked element's box in the same coordinate space as
// pointer events.
type Bounds struct {
	Left, Top     float64
	Width, Height float64
}

// Controller derives tilt state from input events. Handlers are
// idempotent and last-event-wins; device orientation, once seen, takes
// exclusive precedence over pointer input for the controller's
// lifetime.
type Controller struct {
	mu        sync.Mutex
	maxAngle  float64
	disabled  bool
	usingGyro bool
	state     State
	listeners []func(State)
}

// New returns a controller with the given max angle (DefaultMaxAngle
// when zero or negative).
func New(maxAngle float64) *Controller {
	if maxAngle <= 0 {
		maxAngle = DefaultMaxAngle
	}
	return &Controller{maxAngle: maxAngle, state: Neutral()}
}

// Subscribe registers a read-only observer of published states. The
// current state is delivered immediately.
func (c *Controller) Subscribe(fn func(State)) {
	c.mu.Lock()
	c.listeners = append(c.listeners, fn)
	state := c.state
	c.mu.Unlock()
	fn(state)
}

// State returns the last published state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// SetDisabled forces and holds neutral state while true, for
// non-interactive thumbnail contexts.
func (c *Controller) SetDisabled(disabled bool) {
	c.mu.Lock()
	c.disabled = disabled
	if disabled {
		c.state = Neutral()
	}
	state := c.state
	listeners := c.listeners
	c.mu.Unlock()
	if disabled {
		for _, fn := range listeners {
			fn(state)
		}
	}
}

// PointerMove handles a mouse or touch position. Fractions are clamped
// to [0,1] before mapping so dragging outside the element can never
// flip the card past its max angle.
func (c *Controller) PointerMove(x, y float64, b Bounds) {
	c.mu.Lock()
	if c.disabled || c.usingGyro || b.Width <= 0 || b.Height <= 0 {
		c.mu.Unlock()
		return
	}
	xPct := clamp01((x - b.Left) / b.Width)
	yPct := clamp01((y - b.Top) / b.Height)

	c.state = State{
		RotateX:      (0.5 - yPct) * c.maxAngle * 2,
		RotateY:      (xPct - 0.5) * c.maxAngle * 2,
		GlareX:       xPct * 100,
		GlareY:       yPct * 100,
		GlareOpacity: 1,
		PointerX:     xPct,
		PointerY:     yPct,
	}
	c.publishLocked()
}

// PointerLeave resets to neutral. No-op in gyro mode, which has no
// leave concept.
func (c *Controller) PointerLeave() {
	c.mu.Lock()
	if c.disabled || c.usingGyro {
		c.mu.Unlock()
		return
	}
	c.state = Neutral()
	c.publishLocked()
}

// Orientation handles a device-orientation sample (beta: front/back
// pitch, gamma: left/right roll, both in degrees). The first accepted
// sample latches the controller into gyro mode.
func (c *Controller) Orientation(beta, gamma float64) {
	c.mu.Lock()
	if c.disabled {
		c.mu.Unlock()
		return
	}
	c.usingGyro = true

	cb := clampAbs(beta-gyroBaseBeta, gyroRange)
	cg := clampAbs(gamma, gyroRange)

	xPct := 0.5 + cg/(gyroRange*2)
	yPct := 0.5 + cb/(gyroRange*2)

	c.state = State{
		// Tilting the top away tips the card top back.
		RotateX:      -(cb / gyroRange) * c.maxAngle,
		RotateY:      (cg / gyroRange) * c.maxAngle,
		GlareX:       xPct * 100,
		GlareY:       yPct * 100,
		GlareOpacity: 1,
		PointerX:     xPct,
		PointerY:     yPct,
	}
	c.publishLocked()
}

// publishLocked snapshots under the lock, then notifies without it.
func (c *Controller) publishLocked() {
	state := c.state
	listeners := c.listeners
	c.mu.Unlock()
	for _, fn := range listeners {
		fn(state)
	}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func clampAbs(v, limit float64) float64 {
	return math.Max(-limit, math.Min(limit, v))
}
