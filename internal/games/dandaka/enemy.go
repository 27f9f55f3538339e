package dandaka

import (
	"github.com/vovakirdan/dandaka/internal/config"
	"github.com/vovakirdan/dandaka/internal/core"
)

// Enemy is any hostile or story entity living in the arena.
// Variants are *Minion, *Boss, *Deer and *NPC.
type Enemy interface {
	Kind() core.EntityKind
	Rect() core.Rect
	Center() core.Vec
	Health() int
	MaxHealth() int

	// Update advances the enemy by dt seconds. Updates with dt <= 0 are no-ops.
	Update(g *Game, dt float64)

	// TakeDamage lowers health, clamped at zero, and reports whether the hit was lethal.
	TakeDamage(g *Game, amount int) bool

	// ContactDamage is the damage dealt to the player on touch.
	ContactDamage() int
	// Score is awarded when the enemy is killed.
	Score() int

	Deleted() bool
	markDeleted()
	body() *Body
	view() core.EntityView
}

// enemyBase holds state common to all enemy variants.
type enemyBase struct {
	Body
	kind          core.EntityKind
	health        int
	maxHealth     int
	speed         float64
	dir           float64
	originX       float64
	patrolRange   float64
	gravity       float64
	contactDamage int
	score         int
	deleted       bool
}

func newEnemyBase(kind core.EntityKind, cfg config.EnemyConfig, x, y float64) enemyBase {
	return enemyBase{
		Body: Body{
			Pos: core.Vec{X: x, Y: y},
			W:   cfg.Width,
			H:   cfg.Height,
		},
		kind:          kind,
		health:        cfg.Health,
		maxHealth:     cfg.Health,
		speed:         cfg.Speed,
		dir:           1,
		originX:       x,
		patrolRange:   cfg.PatrolRange,
		gravity:       cfg.Gravity,
		contactDamage: cfg.ContactDamage,
		score:         cfg.Score,
	}
}

func (e *enemyBase) Kind() core.EntityKind { return e.kind }
func (e *enemyBase) Health() int           { return e.health }
func (e *enemyBase) MaxHealth() int        { return e.maxHealth }
func (e *enemyBase) ContactDamage() int    { return e.contactDamage }
func (e *enemyBase) Score() int            { return e.score }
func (e *enemyBase) Deleted() bool         { return e.deleted }
func (e *enemyBase) markDeleted()          { e.deleted = true }
func (e *enemyBase) body() *Body           { return &e.Body }

func (e *enemyBase) TakeDamage(_ *Game, amount int) bool {
	return e.damage(amount)
}

func (e *enemyBase) damage(amount int) bool {
	if e.health <= 0 {
		return false
	}
	e.health -= amount
	if e.health <= 0 {
		e.health = 0
		return true
	}
	return false
}

// patrol reverses direction at the bounds of [originX, originX+patrolRange].
func (e *enemyBase) patrol() {
	if e.Pos.X > e.originX+e.patrolRange {
		e.dir = -1
	} else if e.Pos.X < e.originX {
		e.dir = 1
	}
}

// fall applies gravity and landing, and flags the enemy once it has dropped
// out of the world.
func (e *enemyBase) fall(g *Game, dt float64) {
	e.Integrate(e.gravity, dt)
	e.LandOn(g.platforms, dt)
	if e.Pos.Y > g.cfg.World.Height+g.cfg.World.FalloutMargin {
		e.deleted = true
	}
}

func (e *enemyBase) baseView(color core.Color, state string) core.EntityView {
	return core.EntityView{
		Kind:   e.kind,
		Rect:   e.Rect(),
		Health: fraction(e.health, e.maxHealth),
		State:  state,
		Facing: int(e.dir),
		Color:  color,
		Life:   1,
	}
}

// Minion is a patrolling foot soldier, killed by a single projectile.
type Minion struct {
	enemyBase
}

// NewMinion creates a minion patrolling rightwards from x.
func NewMinion(cfg config.EnemyConfig, x, y float64) *Minion {
	return &Minion{enemyBase: newEnemyBase(core.KindMinion, cfg, x, y)}
}

func (m *Minion) Update(g *Game, dt float64) {
	if dt <= 0 {
		return
	}
	m.Vel.X = m.speed * m.dir
	m.fall(g, dt)
	m.patrol()
}

func (m *Minion) view() core.EntityView {
	return m.baseView(core.ColorGreen, "patrol")
}

// Deer always runs away from the player and stays inside the world.
type Deer struct {
	enemyBase
}

// NewDeer creates the golden deer.
func NewDeer(cfg config.EnemyConfig, x, y float64) *Deer {
	return &Deer{enemyBase: newEnemyBase(core.KindDeer, cfg, x, y)}
}

func (d *Deer) Update(g *Game, dt float64) {
	if dt <= 0 {
		return
	}
	d.Vel.X = d.speed * d.dir
	d.fall(g, dt)

	if g.player.Pos.X < d.Pos.X {
		d.dir = 1
	} else {
		d.dir = -1
	}
	d.clampX(g.cfg.World.Width)
}

func (d *Deer) view() core.EntityView {
	return d.baseView(core.ColorBrightYellow, "flee")
}

// NPC is a static story figure. It never damages the player and ignores projectiles.
type NPC struct {
	enemyBase
}

// NewNPC creates the story figure.
func NewNPC(cfg config.EnemyConfig, x, y float64) *NPC {
	n := &NPC{enemyBase: newEnemyBase(core.KindNPC, cfg, x, y)}
	n.speed = 0
	n.contactDamage = 0
	return n
}

func (n *NPC) Update(g *Game, dt float64) {
	if dt <= 0 {
		return
	}
	n.Vel.X = 0
	n.fall(g, dt)
}

// TakeDamage is a no-op: the NPC cannot be hurt.
func (n *NPC) TakeDamage(_ *Game, _ int) bool {
	return false
}

func (n *NPC) view() core.EntityView {
	return n.baseView(core.ColorOrange, "wounded")
}
