package dandaka

import "math"

// Snapshot captures the simulation state for determinism testing.
// Positions are rounded to hundredths of a world unit.
type Snapshot struct {
	Tick        uint64
	Mode        string
	Chapter     int
	Score       int
	Kills       int
	Health      int
	PlayerX     int
	PlayerY     int
	BossSpawned bool
	BossPhase   int
	BossHealth  int
	Enemies     int
	Projectiles int
	Bolts       int

	// Each enemy is 4 ints: Kind, X, Y, Health
	EnemyData []int
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:        g.tick,
		Mode:        g.mode.String(),
		Chapter:     g.chapter,
		Score:       g.score,
		Kills:       g.kills,
		Health:      g.player.Health,
		PlayerX:     fixed(g.player.Pos.X),
		PlayerY:     fixed(g.player.Pos.Y),
		BossSpawned: g.bossSpawned,
		Enemies:     len(g.enemies),
		Projectiles: len(g.projectiles),
	}
	if g.boss != nil {
		snap.BossPhase = g.boss.Phase()
		snap.BossHealth = g.boss.Health()
		snap.Bolts = len(g.boss.Bolts())
	}
	for _, e := range g.enemies {
		r := e.Rect()
		snap.EnemyData = append(snap.EnemyData, int(e.Kind()), fixed(r.X), fixed(r.Y), e.Health())
	}
	return snap
}

func fixed(v float64) int {
	return int(math.Round(v * 100))
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, r := range snap.Mode {
		h = h*31 + uint64(r) //#nosec G115 -- hash computation
	}
	h = h*31 + uint64(snap.Chapter)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Kills)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Health)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerX)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerY)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BossPhase)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BossHealth)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Enemies)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Projectiles) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Bolts)       //#nosec G115 -- hash computation
	if snap.BossSpawned {
		h = h*31 + 1
	}

	for _, v := range snap.EnemyData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}
