package dandaka

import "github.com/vovakirdan/dandaka/internal/core"

// LandingBuffer is the tolerance, in world units, added below a platform top
// when deciding whether a falling body landed on it this frame.
const LandingBuffer = 10.0

// Body is the kinematic state shared by every simulated entity.
type Body struct {
	Pos      core.Vec
	Vel      core.Vec
	W, H     float64
	Grounded bool
}

// Rect returns the bounding box.
func (b *Body) Rect() core.Rect {
	return core.NewRect(b.Pos.X, b.Pos.Y, b.W, b.H)
}

// Center returns the center of the bounding box.
func (b *Body) Center() core.Vec {
	return b.Rect().Center()
}

// Integrate accumulates gravity into the vertical velocity, then advances the
// position by the velocity.
func (b *Body) Integrate(gravity, dt float64) {
	b.Vel.Y += gravity * dt
	b.Pos = b.Pos.Add(b.Vel.Scale(dt))
}

// LandOn resolves landing against the platforms and reports whether the body
// is grounded. Only a downward-moving body whose lower edge crossed a
// platform top this frame lands; there is no sideways or from-below
// resolution, so bodies pass through platforms from beneath.
func (b *Body) LandOn(platforms []core.Rect, dt float64) bool {
	b.Grounded = false
	for _, p := range platforms {
		if b.Vel.Y < 0 {
			break
		}
		if b.Pos.X+b.W <= p.X || b.Pos.X >= p.Right() {
			continue
		}
		bottom := b.Pos.Y + b.H
		if bottom >= p.Y && bottom <= p.Y+b.Vel.Y*dt+LandingBuffer {
			b.Pos.Y = p.Y - b.H
			b.Vel.Y = 0
			b.Grounded = true
		}
	}
	return b.Grounded
}

// clampX keeps the body inside [0, width-W].
func (b *Body) clampX(width float64) {
	b.Pos.X = core.ClampF(b.Pos.X, 0, width-b.W)
}
