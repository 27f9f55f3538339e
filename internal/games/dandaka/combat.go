package dandaka

import (
	"strconv"

	"github.com/vovakirdan/dandaka/internal/core"
)

// resolveCombat runs after every entity has moved. Projectiles are checked
// against enemies first, then enemies against the player.
func (g *Game) resolveCombat() {
	for _, e := range g.enemies {
		if e.Kind() == core.KindNPC {
			continue
		}
		for _, p := range g.projectiles {
			if e.Deleted() {
				break
			}
			if p.Deleted() || !p.Rect().Overlaps(e.Rect()) {
				continue
			}
			p.deleted = true
			g.hitEnemy(e)
		}
	}

	for _, e := range g.enemies {
		if e.Deleted() || !g.player.Rect().Overlaps(e.Rect()) {
			continue
		}
		if e.Kind() == core.KindNPC {
			g.meetNPC()
			continue
		}
		g.applyPlayerDamage(e.ContactDamage(), e.Center().X,
			g.cfg.Combat.ContactInvuln,
			core.Vec{X: g.cfg.Combat.KnockbackX, Y: g.cfg.Combat.KnockbackY},
			e.Kind())
	}
}

// hitEnemy applies one projectile hit. The boss takes chip damage; every
// other variant dies outright.
func (g *Game) hitEnemy(e Enemy) {
	amount := e.Health()
	if e.Kind() == core.KindBoss {
		amount = g.cfg.Boss.ChipDamage
	}

	killed := e.TakeDamage(g, amount)
	if e.Kind() == core.KindBoss {
		c := e.Center()
		g.damageNumber(core.Vec{X: c.X, Y: e.Rect().Y}, strconv.Itoa(amount), core.ColorWhite)
	}
	if killed {
		g.killEnemy(e)
	}
}

func (g *Game) killEnemy(e Enemy) {
	e.markDeleted()
	g.score += e.Score()
	if e.Kind() != core.KindBoss {
		g.kills++
	}

	g.burst(e.Center(), g.cfg.Combat.KillParticles, core.ColorOrange)
	g.sound(core.CueExplosion)
	g.emit(core.EnemyKilledEvent{Kind: e.Kind(), Score: e.Score(), Kills: g.kills})
	g.killed = append(g.killed, killRecord{kind: e.Kind(), pos: e.Rect()})
	g.log.Debug("enemy killed", "kind", e.Kind(), "score", g.score, "kills", g.kills)
}

// killRecord remembers a death for the progression step of the same frame.
type killRecord struct {
	kind core.EntityKind
	pos  core.Rect
}

// applyPlayerDamage is the single path through which the player loses health.
// It is a no-op while the player is invulnerable or the run is over. On a
// hit it sets the invulnerability window, knocks the player away from
// sourceX and ends the run when health reaches zero.
func (g *Game) applyPlayerDamage(amount int, sourceX, invuln float64, knockback core.Vec, source core.EntityKind) {
	if g.mode != core.ModePlaying {
		return
	}
	p := g.player
	if !p.hit(amount, sourceX, invuln, knockback) {
		return
	}

	g.emit(core.PlayerDamagedEvent{Amount: amount, Health: p.Health, Source: source})
	g.damageNumber(p.Pos, strconv.Itoa(amount), core.ColorRed)
	g.sound(core.CueHit)
	g.log.Debug("player damaged", "amount", amount, "health", p.Health, "source", source)

	if p.Health <= 0 {
		g.mode = core.ModeGameOver
		g.interlude = nil
		g.emit(core.GameOverEvent{Score: g.score, Chapter: g.chapter})
		g.log.Info("game over", "score", g.score, "chapter", g.chapter, "kills", g.kills)
	}
}

// checkStatue heals the player once on first touch.
func (g *Game) checkStatue() {
	if !g.statue.active || !g.statue.rect.Overlaps(g.player.Rect()) {
		return
	}
	g.statue.active = false
	g.player.heal()
	g.damageNumber(core.Vec{X: g.player.Pos.X, Y: g.player.Pos.Y - 40}, "Ancient wisdom heals you!", core.ColorBrightYellow)
	g.sound(core.CueHeal)
	g.log.Debug("statue used", "health", g.player.Health)
}
