package dandaka

import "github.com/vovakirdan/dandaka/internal/core"

// sweep removes flagged items in place, preserving order.
// It is the only place entities leave the arena, and it runs once at the end
// of a frame so no loop ever iterates a collection that is being compacted.
func sweep[T any](items []T, gone func(T) bool) []T {
	kept := items[:0]
	for _, it := range items {
		if !gone(it) {
			kept = append(kept, it)
		}
	}
	// Drop references held by the tail so swept entities can be collected.
	var zero T
	for i := len(kept); i < len(items); i++ {
		items[i] = zero
	}
	return kept
}

// sweepAll compacts every entity collection of the game.
func (g *Game) sweepAll() {
	g.enemies = sweep(g.enemies, Enemy.Deleted)
	g.projectiles = sweep(g.projectiles, (*Projectile).Deleted)
	g.particles = sweep(g.particles, (*Particle).Deleted)
	g.numbers = sweep(g.numbers, (*DamageNumber).Deleted)

	if g.boss != nil && g.boss.Deleted() {
		g.boss = nil
	}
}

// liveEnemies counts enemies not flagged for deletion.
func (g *Game) liveEnemies() int {
	n := 0
	for _, e := range g.enemies {
		if !e.Deleted() {
			n++
		}
	}
	return n
}

// clearEnemies flags every enemy; they disappear at the end of the frame.
func (g *Game) clearEnemies() {
	for _, e := range g.enemies {
		e.markDeleted()
	}
}

// statue is the one-shot healing shrine.
type statue struct {
	rect   core.Rect
	active bool
}
