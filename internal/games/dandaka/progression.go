package dandaka

import "github.com/vovakirdan/dandaka/internal/core"

// Narrative chapters. The chapter index only ever moves forward.
const (
	ChapterIntro    = 0 // Minion waves
	ChapterBoss     = 1 // Boss battle
	ChapterDeer     = 2 // Golden deer chase
	ChapterKidnap   = 3 // Interlude only
	ChapterSearch   = 4 // Interlude, then the NPC encounter
	ChapterFarewell = 5 // Final interlude; dismissal wins the run
)

// updateProgression reacts to the outcome of combat: it spawns waves, the
// boss and the deer, and advances the story on key deaths.
func (g *Game) updateProgression(dt float64) {
	g.spawnWaves(dt)

	if g.kills >= g.cfg.Progression.KillTarget && g.chapter < ChapterBoss && !g.bossSpawned {
		g.spawnBoss()
	}

	for _, k := range g.killed {
		switch k.kind {
		case core.KindBoss:
			g.sound(core.CueBossModeOff)
			g.advanceChapter(ChapterDeer)
			g.showInterlude(ChapterDeer)
		case core.KindDeer:
			g.damageNumber(core.Vec{X: k.pos.X, Y: k.pos.Y - 50}, "Ah Sita! Ah Lakshmana!", core.ColorBrightRed)
			g.advanceChapter(ChapterKidnap)
			g.showInterlude(ChapterKidnap)
		}
	}
	g.killed = g.killed[:0]

	if g.chapter == ChapterDeer && g.liveEnemies() == 0 {
		d := g.cfg.Progression.DeerSpawn
		g.enemies = append(g.enemies, NewDeer(g.cfg.Deer, d.X, d.Y))
		g.log.Debug("deer spawned", "x", d.X, "y", d.Y)
	}
}

// spawnWaves drops a minion at a random X on a fixed timer while the boss has
// not appeared and fewer than the cap are alive.
func (g *Game) spawnWaves(dt float64) {
	if g.chapter >= ChapterDeer || g.bossSpawned {
		return
	}
	g.spawnTimer -= dt
	if g.spawnTimer > 0 || g.liveEnemies() >= g.cfg.Progression.MaxEnemies {
		return
	}

	margin := g.cfg.Progression.SpawnMargin
	x := margin + g.rng.Float64()*(g.cfg.World.Width-2*margin)
	g.spawnMinion(x, g.cfg.Progression.SpawnY)
	g.spawnTimer = g.difficulty.SpawnInterval(g.cfg.Progression.SpawnInterval, g.kills, g.elapsed)
}

func (g *Game) spawnMinion(x, y float64) {
	m := NewMinion(g.cfg.Minion, x, y)
	m.speed = g.difficulty.Speed(g.cfg.Minion.Speed, g.kills, g.elapsed)
	g.enemies = append(g.enemies, m)
	g.log.Debug("minion spawned", "x", x, "y", y)
}

// spawnBoss clears the wave and brings in the boss. It happens once per run.
func (g *Game) spawnBoss() {
	g.clearEnemies()
	pos := g.cfg.Progression.BossSpawn
	g.boss = NewBoss(g.cfg.Boss, g.cfg.Lightning, pos.X, pos.Y)
	g.enemies = append(g.enemies, g.boss)
	g.bossSpawned = true

	g.sound(core.CueBossModeOn)
	g.log.Info("boss spawned", "kills", g.kills)
	g.advanceChapter(ChapterBoss)
	g.showInterlude(ChapterBoss)
}

// meetNPC handles touching the story figure. Only the search chapter reacts.
func (g *Game) meetNPC() {
	if g.chapter != ChapterSearch {
		return
	}
	g.advanceChapter(ChapterFarewell)
	g.showInterlude(ChapterFarewell)
}

// advanceChapter moves the story forward; it never goes back.
func (g *Game) advanceChapter(to int) {
	if to <= g.chapter {
		return
	}
	from := g.chapter
	g.chapter = to
	g.emit(core.ChapterAdvancedEvent{From: from, To: to})
	g.log.Info("chapter advanced", "from", from, "to", to)
}

// showInterlude freezes play behind chapter i's text. A chapter missing from
// the book is a no-op and play simply continues.
func (g *Game) showInterlude(i int) {
	if g.mode == core.ModeGameOver || g.book == nil {
		return
	}
	ch, ok := g.book.Chapter(i)
	if !ok {
		g.log.Warn("interlude missing", "chapter", i)
		return
	}
	g.mode = core.ModeInterlude
	g.interlude = &core.Interlude{Chapter: i, Title: ch.Title, Text: ch.Text}
	g.emit(core.InterludeEvent{Chapter: i, Title: ch.Title})
}

// dismissInterlude returns to play and runs whatever the dismissed chapter
// chains into. Dismissing the kidnapping text immediately shows the search
// text; dismissing the search text starts the NPC encounter.
func (g *Game) dismissInterlude() {
	if g.interlude == nil {
		g.mode = core.ModePlaying
		return
	}
	dismissed := g.interlude.Chapter
	g.interlude = nil
	g.mode = core.ModePlaying

	switch dismissed {
	case ChapterKidnap:
		g.advanceChapter(ChapterSearch)
		g.showInterlude(ChapterSearch)
	case ChapterSearch:
		g.clearEnemies()
		n := g.cfg.Progression.NPCSpawn
		g.enemies = append(g.enemies, NewNPC(g.cfg.NPC, n.X, n.Y))
		g.log.Debug("npc spawned", "x", n.X, "y", n.Y)
	case ChapterFarewell:
		g.mode = core.ModeVictory
		g.emit(core.VictoryEvent{Score: g.score})
		g.log.Info("victory", "score", g.score, "kills", g.kills)
	}
}
