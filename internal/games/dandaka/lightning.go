package dandaka

import (
	"math"

	"github.com/vovakirdan/dandaka/internal/core"
)

// Bolt is one lightning strike. It starts as a harmless telegraph and becomes
// lethal for a short window once its warmup has elapsed.
type Bolt struct {
	From, To core.Vec
	Warmup   float64 // Seconds left as a telegraph
	Life     float64 // Seconds left once active
	Active   bool
	expired  bool
}

// NewBolt creates a bolt from origin along angle (radians).
func NewBolt(origin core.Vec, angle, length, warmup, life float64) *Bolt {
	return &Bolt{
		From:   origin,
		To:     origin.Add(core.Vec{X: math.Cos(angle), Y: math.Sin(angle)}.Scale(length)),
		Warmup: warmup,
		Life:   life,
	}
}

// Update advances the bolt and reports whether it turned active this frame.
// The telegraph-to-active transition happens exactly once.
func (b *Bolt) Update(dt float64) bool {
	if dt <= 0 || b.expired {
		return false
	}
	if !b.Active {
		b.Warmup -= dt
		if b.Warmup <= 0 {
			b.Active = true
			return true
		}
		return false
	}
	b.Life -= dt
	if b.Life <= 0 {
		b.expired = true
	}
	return false
}

// Expired reports whether the bolt has finished and should be removed.
func (b *Bolt) Expired() bool {
	return b.expired
}

// Hits reports whether an active bolt crosses the circle at c with radius r.
// Telegraphing bolts never hit.
func (b *Bolt) Hits(c core.Vec, r float64) bool {
	if !b.Active || b.expired {
		return false
	}
	return core.SegmentHitsCircle(b.From, b.To, c, r)
}

func (b *Bolt) view() core.BoltView {
	return core.BoltView{From: b.From, To: b.To, Active: b.Active}
}
