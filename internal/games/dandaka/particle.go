package dandaka

import "github.com/vovakirdan/dandaka/internal/core"

// Particle is a short-lived debris square. Life starts at 1 and doubles as opacity.
type Particle struct {
	Pos, Vel core.Vec
	Size     float64
	Life     float64
	Color    core.Color
	decay    float64
	deleted  bool
}

// Update moves the particle and fades it; it is flagged once life runs out.
func (p *Particle) Update(dt float64) {
	if dt <= 0 {
		return
	}
	p.Pos = p.Pos.Add(p.Vel.Scale(dt))
	p.Life -= dt * p.decay
	if p.Life <= 0 {
		p.deleted = true
	}
}

// Deleted reports whether the particle is flagged for removal.
func (p *Particle) Deleted() bool {
	return p.deleted
}

func (p *Particle) view() core.EntityView {
	return core.EntityView{
		Kind:   core.KindParticle,
		Rect:   core.NewRect(p.Pos.X, p.Pos.Y, p.Size, p.Size),
		Health: 1,
		Color:  p.Color,
		Life:   p.Life,
	}
}

// DamageNumber is floating text that rises and fades.
type DamageNumber struct {
	Pos, Vel core.Vec
	Text     string
	Color    core.Color
	Life     float64
	deleted  bool
}

// Update floats the label upward; it is flagged once life runs out.
func (d *DamageNumber) Update(dt float64) {
	if dt <= 0 {
		return
	}
	d.Life -= dt
	d.Pos = d.Pos.Add(d.Vel.Scale(dt))
	if d.Life <= 0 {
		d.deleted = true
	}
}

// Deleted reports whether the label is flagged for removal.
func (d *DamageNumber) Deleted() bool {
	return d.deleted
}

func (d *DamageNumber) view() core.LabelView {
	return core.LabelView{Pos: d.Pos, Text: d.Text, Color: d.Color, Life: d.Life}
}
