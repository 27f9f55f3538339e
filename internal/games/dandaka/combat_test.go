package dandaka

import (
	"testing"

	"github.com/vovakirdan/dandaka/internal/core"
)

func TestMinionContactDamage(t *testing.T) {
	g := newPlayingGame(t, testConfig())
	m := NewMinion(g.cfg.Minion, 110, 0)
	onFloor(&m.Body, 110)
	g.enemies = []Enemy{m}

	g.Step(core.NewInputFrame(), frameDT)

	p := g.player
	if p.Health != 80 {
		t.Fatalf("health = %d, expected 80", p.Health)
	}
	if !p.Invulnerable() || p.Invuln != 2.0 {
		t.Errorf("invuln = %v, expected 2", p.Invuln)
	}
	// Minion is to the right, so the player is pushed left and up.
	if p.Vel.X != -500 || p.Vel.Y != -300 {
		t.Errorf("knockback = %+v, expected (-500, -300)", p.Vel)
	}

	events := g.DrainEvents()
	if got := countEvents[core.PlayerDamagedEvent](events); got != 1 {
		t.Errorf("damage events = %d, expected 1", got)
	}
	for _, ev := range events {
		if d, ok := ev.(core.PlayerDamagedEvent); ok && (d.Source != core.KindMinion || d.Health != 80) {
			t.Errorf("unexpected damage event %+v", d)
		}
	}

	// Still overlapping next frame, but invulnerable.
	g.player.Pos = m.Pos
	g.resolveCombat()
	if p.Health != 80 {
		t.Errorf("damaged through invulnerability: %d", p.Health)
	}
}

func TestOverlappingEnemiesDamageOnce(t *testing.T) {
	g := newPlayingGame(t, testConfig())
	a := NewMinion(g.cfg.Minion, 110, 468)
	b := NewDeer(g.cfg.Deer, 90, 460)
	g.enemies = []Enemy{a, b}

	g.resolveCombat()
	if g.player.Health != 80 {
		t.Errorf("health = %d, expected 80", g.player.Health)
	}
}

func TestProjectileKillsMinion(t *testing.T) {
	g := newPlayingGame(t, testConfig())
	m := NewMinion(g.cfg.Minion, 400, 468)
	p := NewProjectile(g.cfg.Projectile, core.Vec{X: 410, Y: 478}, 1)
	g.enemies = []Enemy{m}
	g.projectiles = []*Projectile{p}

	g.resolveCombat()

	if !m.Deleted() || !p.Deleted() {
		t.Fatalf("minion deleted %v projectile deleted %v", m.Deleted(), p.Deleted())
	}
	if g.score != 100 || g.kills != 1 {
		t.Errorf("score %d kills %d, expected 100 / 1", g.score, g.kills)
	}
	if len(g.particles) != 10 {
		t.Errorf("particles = %d, expected 10", len(g.particles))
	}
	if got := countEvents[core.EnemyKilledEvent](g.DrainEvents()); got != 1 {
		t.Errorf("kill events = %d, expected 1", got)
	}

	g.sweepAll()
	if len(g.enemies) != 0 || len(g.projectiles) != 0 {
		t.Errorf("sweep left %d enemies, %d projectiles", len(g.enemies), len(g.projectiles))
	}
}

func TestProjectileHitsOnlyOneEnemy(t *testing.T) {
	g := newPlayingGame(t, testConfig())
	a := NewMinion(g.cfg.Minion, 400, 468)
	b := NewMinion(g.cfg.Minion, 405, 468)
	g.enemies = []Enemy{a, b}
	g.projectiles = []*Projectile{NewProjectile(g.cfg.Projectile, core.Vec{X: 410, Y: 478}, 1)}

	g.resolveCombat()
	if g.kills != 1 || b.Deleted() {
		t.Errorf("kills = %d, second minion deleted %v", g.kills, b.Deleted())
	}
}

func TestBossKill(t *testing.T) {
	g, b := newBossGame(t, 600)
	b.health = 10

	g.hitEnemy(b)
	if !b.Deleted() || b.Health() != 0 {
		t.Fatalf("boss deleted %v health %d", b.Deleted(), b.Health())
	}
	if g.score != 5000 || g.kills != 0 {
		t.Errorf("score %d kills %d, expected 5000 / 0", g.score, g.kills)
	}

	// The killing blow still floats its damage number.
	events := g.DrainEvents()
	if got := countEvents[core.DamageNumberEvent](events); got != 1 {
		t.Errorf("damage numbers = %d, expected 1", got)
	}
	if len(g.numbers) != 1 || g.numbers[0].Text != "10" {
		t.Errorf("numbers = %+v, expected a single \"10\"", g.numbers)
	}
}

func TestNPCIsHarmless(t *testing.T) {
	g := newPlayingGame(t, testConfig())
	n := NewNPC(g.cfg.NPC, 90, 460)
	p := NewProjectile(g.cfg.Projectile, core.Vec{X: 100, Y: 470}, 1)
	g.enemies = []Enemy{n}
	g.projectiles = []*Projectile{p}

	g.resolveCombat()
	if g.player.Health != 100 {
		t.Errorf("npc damaged the player: %d", g.player.Health)
	}
	if p.Deleted() || n.Deleted() || n.Health() != n.MaxHealth() {
		t.Errorf("npc interacted with a projectile")
	}
	if n.TakeDamage(g, 50) || n.Health() != 1000 {
		t.Errorf("npc took damage")
	}
}

func TestLethalDamageEndsRun(t *testing.T) {
	g := newPlayingGame(t, testConfig())
	g.player.Health = 10
	g.score = 700
	g.enemies = []Enemy{NewMinion(g.cfg.Minion, 110, 468)}

	res := g.Step(core.NewInputFrame(), frameDT)

	if g.player.Health != 0 {
		t.Errorf("health = %d, expected clamp at 0", g.player.Health)
	}
	if !res.State.GameOver || res.State.Mode != core.ModeGameOver || !res.State.Finished() {
		t.Fatalf("unexpected state %+v", res.State)
	}
	events := g.DrainEvents()
	if got := countEvents[core.GameOverEvent](events); got != 1 {
		t.Errorf("game over events = %d, expected 1", got)
	}

	// Nothing moves or hurts once the run is over.
	g.player.Invuln = 0
	tick := g.tick
	g.Step(core.NewInputFrame(core.ActionRight), frameDT)
	if g.tick != tick || g.player.Health != 0 {
		t.Errorf("simulation continued after game over")
	}
}

func TestDamageIgnoredOutsidePlay(t *testing.T) {
	g := newPlayingGame(t, testConfig())
	g.showInterlude(ChapterIntro)

	g.applyPlayerDamage(50, 0, 2, core.Vec{}, core.KindBoss)
	if g.player.Health != 100 {
		t.Errorf("damaged during interlude: %d", g.player.Health)
	}
}

func TestDeathFreezesProgression(t *testing.T) {
	g := newPlayingGame(t, testConfig())
	g.kills = g.cfg.Progression.KillTarget - 1
	g.player.Health = 10

	touching := NewMinion(g.cfg.Minion, 110, 0)
	onFloor(&touching.Body, 110)
	shot := NewMinion(g.cfg.Minion, 405, 0)
	onFloor(&shot.Body, 405)
	g.enemies = []Enemy{touching, shot}
	g.projectiles = []*Projectile{NewProjectile(g.cfg.Projectile, core.Vec{X: 410, Y: 478}, 1)}

	res := g.Step(core.NewInputFrame(), frameDT)

	if !shot.Deleted() || g.kills != g.cfg.Progression.KillTarget {
		t.Fatalf("kills = %d, shot minion deleted %v", g.kills, shot.Deleted())
	}
	if res.State.Mode != core.ModeGameOver {
		t.Fatalf("mode = %v, expected game over", res.State.Mode)
	}
	if g.bossSpawned || g.boss != nil || res.State.Chapter != ChapterIntro {
		t.Errorf("boss spawned %v chapter %d after the player fell", g.bossSpawned, res.State.Chapter)
	}

	events := g.DrainEvents()
	if got := countEvents[core.ChapterAdvancedEvent](events); got != 0 {
		t.Errorf("chapter events = %d, expected 0", got)
	}
	for _, ev := range events {
		if over, ok := ev.(core.GameOverEvent); ok && over.Chapter != res.State.Chapter {
			t.Errorf("game over chapter %d, state chapter %d", over.Chapter, res.State.Chapter)
		}
	}
}
