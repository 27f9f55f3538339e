package dandaka

import (
	"github.com/vovakirdan/dandaka/internal/config"
	"github.com/vovakirdan/dandaka/internal/core"
)

// Projectile is an arrow flying horizontally at constant speed.
type Projectile struct {
	Body
	Dir     float64 // -1 or +1
	deleted bool
}

// NewProjectile creates a projectile at pos heading in dir.
func NewProjectile(cfg config.ProjectileConfig, pos core.Vec, dir float64) *Projectile {
	return &Projectile{
		Body: Body{
			Pos: pos,
			Vel: core.Vec{X: dir * cfg.Speed},
			W:   cfg.Width,
			H:   cfg.Height,
		},
		Dir: dir,
	}
}

// Update moves the projectile and flags it once it leaves [0, worldW].
func (p *Projectile) Update(dt, worldW float64) {
	if dt <= 0 {
		return
	}
	p.Pos = p.Pos.Add(p.Vel.Scale(dt))
	if p.Pos.X > worldW || p.Pos.X < 0 {
		p.deleted = true
	}
}

// Deleted reports whether the projectile is flagged for removal.
func (p *Projectile) Deleted() bool {
	return p.deleted
}

func (p *Projectile) view() core.EntityView {
	return core.EntityView{
		Kind:   core.KindProjectile,
		Rect:   p.Rect(),
		Health: 1,
		Facing: int(p.Dir),
		Color:  core.ColorYellow,
		Life:   1,
	}
}
