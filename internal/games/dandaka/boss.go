package dandaka

import (
	"math"

	"github.com/vovakirdan/dandaka/internal/config"
	"github.com/vovakirdan/dandaka/internal/core"
)

// Boss is the two-phase demon commander.
//
// Every frame it patrols, may jump and quake on landing, body-slams on
// contact and re-evaluates its charge speed on a timer. Once health drops to
// the phase threshold it enters phase two for good and starts firing
// telegraphed lightning volleys at the player.
type Boss struct {
	enemyBase
	cfg  config.BossConfig
	lcfg config.LightningConfig

	phase          int
	chargeTimer    float64
	lightningTimer float64
	airborne       bool
	bolts          []*Bolt
}

// NewBoss creates the boss in phase one.
func NewBoss(cfg config.BossConfig, lcfg config.LightningConfig, x, y float64) *Boss {
	return &Boss{
		enemyBase: newEnemyBase(core.KindBoss, cfg.EnemyConfig, x, y),
		cfg:       cfg,
		lcfg:      lcfg,
		phase:     1,
	}
}

// Phase returns 1 or 2.
func (b *Boss) Phase() int {
	return b.phase
}

// Bolts returns the live lightning bolts.
func (b *Boss) Bolts() []*Bolt {
	return b.bolts
}

// TakeDamage applies projectile damage. The phase change is evaluated here
// as well so it lands in the frame of the hit.
func (b *Boss) TakeDamage(g *Game, amount int) bool {
	killed := b.damage(amount)
	b.checkPhase(g)
	return killed
}

func (b *Boss) checkPhase(g *Game) {
	if b.phase != 1 {
		return
	}
	if float64(b.health) > b.cfg.PhaseThreshold*float64(b.maxHealth) {
		return
	}
	b.phase = 2
	b.lightningTimer = 0
	g.emit(core.PhaseChangedEvent{Phase: 2})
	g.shakeScreen(b.cfg.PhaseShake.Duration, b.cfg.PhaseShake.Magnitude)
	g.sound(core.CueExplosion)
	g.log.Info("boss phase changed", "phase", b.phase, "health", b.health)
}

func (b *Boss) Update(g *Game, dt float64) {
	if dt <= 0 {
		return
	}

	// Hold position while a volley is on screen.
	if b.phase == 2 && len(b.bolts) > 0 {
		b.Vel.X = 0
	} else {
		b.Vel.X = b.speed * b.dir
	}
	b.fall(g, dt)
	b.patrol()

	b.checkPhase(g)
	b.jumpOrQuake(g)

	if b.Rect().Overlaps(g.player.Rect()) {
		g.applyPlayerDamage(b.cfg.SlamDamage, b.Center().X, b.cfg.HitInvuln, b.knockback(), core.KindBoss)
	}

	if b.phase == 2 {
		b.updateLightning(g, dt)
	}

	b.updateCharge(g, dt)
}

func (b *Boss) knockback() core.Vec {
	return core.Vec{X: b.cfg.KnockbackX, Y: b.cfg.KnockbackY}
}

// jumpOrQuake lands with a quake after any airborne stretch, otherwise rolls
// for a jump while grounded.
func (b *Boss) jumpOrQuake(g *Game) {
	if !b.Grounded {
		b.airborne = true
		return
	}
	if b.airborne {
		b.airborne = false
		b.quake(g)
		return
	}
	if g.rng.Float64() < b.cfg.JumpChance {
		b.Vel.Y = -b.cfg.JumpSpeed
		b.Grounded = false
		b.airborne = true
	}
}

func (b *Boss) quake(g *Game) {
	g.shakeScreen(b.cfg.QuakeShake.Duration, b.cfg.QuakeShake.Magnitude)
	g.sound(core.CueExplosion)

	p := g.player
	if p.Grounded && p.Pos.Y > g.cfg.World.FloorY {
		g.applyPlayerDamage(b.cfg.QuakeDamage, b.Center().X, b.cfg.HitInvuln, b.knockback(), core.KindBoss)
	}
}

func (b *Boss) updateLightning(g *Game, dt float64) {
	b.lightningTimer -= dt

	target := g.player.Pos.Add(core.Vec{X: b.lcfg.OffsetX, Y: b.lcfg.OffsetY})
	for _, bolt := range b.bolts {
		if bolt.Update(dt) {
			g.sound(core.CueZap)
			continue
		}
		if bolt.Hits(target, b.lcfg.Radius) {
			g.applyPlayerDamage(b.lcfg.Damage, b.Center().X, b.cfg.HitInvuln, b.knockback(), core.KindBoss)
		}
	}
	b.bolts = sweep(b.bolts, (*Bolt).Expired)

	if b.lightningTimer <= 0 {
		b.fireLightning(g)
		b.lightningTimer = b.lcfg.Interval
	}
}

// fireLightning aims a fan of bolts at the player with random spread.
func (b *Boss) fireLightning(g *Game) {
	origin := b.Center()
	aim := g.player.Center().Sub(origin)
	base := math.Atan2(aim.Y, aim.X)

	for i := 0; i < b.lcfg.Bolts; i++ {
		spread := (g.rng.Float64() - 0.5) * b.lcfg.Spread
		b.bolts = append(b.bolts, NewBolt(origin, base+spread, b.lcfg.Length, b.lcfg.Warmup, b.lcfg.Life))
	}
	g.log.Debug("lightning volley", "bolts", b.lcfg.Bolts)
}

// updateCharge re-evaluates the patrol speed on a fixed interval.
func (b *Boss) updateCharge(g *Game, dt float64) {
	b.chargeTimer -= dt
	if b.chargeTimer > 0 {
		return
	}
	b.chargeTimer = b.cfg.ChargeInterval

	if math.Abs(g.player.Pos.X-b.Pos.X) < b.cfg.ChargeRange {
		if b.phase == 2 {
			b.speed = b.cfg.ChargeSpeedPhase
		} else {
			b.speed = b.cfg.ChargeSpeed
		}
	} else {
		b.speed = b.cfg.Speed
	}
}

func (b *Boss) view() core.EntityView {
	state := "phase1"
	color := core.ColorMagenta
	if b.phase == 2 {
		state = "phase2"
		color = core.ColorBrightMagenta
	}
	if b.airborne {
		state += "_air"
	}
	return b.baseView(color, state)
}
