package dandaka

import (
	"testing"

	"github.com/vovakirdan/dandaka/internal/core"
	"github.com/vovakirdan/dandaka/internal/story"
)

// dismiss releases and re-presses confirm so the press is a rising edge.
func dismiss(g *Game) {
	g.Step(core.NewInputFrame(), frameDT)
	g.Step(core.NewInputFrame(core.ActionConfirm), frameDT)
}

func TestKillTargetSpawnsOneBoss(t *testing.T) {
	g := newPlayingGame(t, testConfig())
	g.kills = 13

	target := NewMinion(g.cfg.Minion, 400, 468)
	g.enemies = []Enemy{
		target,
		NewMinion(g.cfg.Minion, 250, 468),
		NewMinion(g.cfg.Minion, 700, 200),
	}
	g.projectiles = []*Projectile{NewProjectile(g.cfg.Projectile, core.Vec{X: 405, Y: 478}, 1)}

	g.Step(core.NewInputFrame(), frameDT)

	if g.kills != 14 {
		t.Fatalf("kills = %d, expected 14", g.kills)
	}
	if len(g.enemies) != 1 || g.enemies[0].Kind() != core.KindBoss || g.boss == nil {
		t.Fatalf("expected only the boss, got %d enemies", len(g.enemies))
	}
	if g.chapter != ChapterBoss || g.mode != core.ModeInterlude {
		t.Errorf("chapter %d mode %v, expected boss interlude", g.chapter, g.mode)
	}

	events := g.DrainEvents()
	on := 0
	for _, ev := range events {
		if s, ok := ev.(core.SoundEvent); ok && s.Cue == core.CueBossModeOn {
			on++
		}
	}
	if on != 1 {
		t.Errorf("boss music cues = %d, expected 1", on)
	}

	dismiss(g)
	for i := 0; i < 60; i++ {
		g.kills++
		g.Step(core.NewInputFrame(), frameDT)
	}
	if got := countKind(g, core.KindBoss); got != 1 {
		t.Errorf("bosses = %d, expected 1", got)
	}
	if got := countKind(g, core.KindMinion); got != 0 {
		t.Errorf("minions = %d during the boss fight", got)
	}
}

func TestWavesRespectCap(t *testing.T) {
	cfg := testConfig()
	cfg.Level.Platforms[0].W = 2000
	g := newPlayingGame(t, cfg)
	g.spawnTimer = 0

	peak := 0
	for i := 0; i < 600; i++ {
		g.player.Invuln = 100
		g.Step(core.NewInputFrame(), frameDT)
		live := g.liveEnemies()
		if live > cfg.Progression.MaxEnemies {
			t.Fatalf("frame %d: %d live enemies", i, live)
		}
		if live > peak {
			peak = live
		}
	}
	if peak != cfg.Progression.MaxEnemies {
		t.Errorf("peak = %d, expected %d", peak, cfg.Progression.MaxEnemies)
	}
	if g.kills != 0 {
		t.Errorf("kills = %d without shooting", g.kills)
	}
}

func TestBossDefeatStartsDeerChase(t *testing.T) {
	g, b := newBossGame(t, 600)
	b.health = 10
	g.projectiles = []*Projectile{NewProjectile(g.cfg.Projectile, core.Vec{X: 610, Y: 480}, 1)}

	g.Step(core.NewInputFrame(), frameDT)

	if g.chapter != ChapterDeer || g.mode != core.ModeInterlude {
		t.Fatalf("chapter %d mode %v, expected deer interlude", g.chapter, g.mode)
	}
	if g.boss != nil {
		t.Error("boss reference kept after sweep")
	}

	dismiss(g)
	g.Step(core.NewInputFrame(), frameDT)
	g.Step(core.NewInputFrame(), frameDT)
	if got := countKind(g, core.KindDeer); got != 1 {
		t.Errorf("deer = %d, expected 1", got)
	}
}

func TestStoryChainToVictory(t *testing.T) {
	g := newPlayingGame(t, testConfig())
	g.chapter = ChapterDeer
	g.bossSpawned = true

	g.Step(core.NewInputFrame(), frameDT)
	if countKind(g, core.KindDeer) != 1 {
		t.Fatal("deer did not spawn")
	}

	deer := g.enemies[0]
	g.hitEnemy(deer)
	g.updateProgression(frameDT)
	g.sweepAll()

	if g.chapter != ChapterKidnap || g.mode != core.ModeInterlude || g.interlude.Chapter != ChapterKidnap {
		t.Fatalf("chapter %d mode %v, expected kidnapping interlude", g.chapter, g.mode)
	}
	found := false
	for _, n := range g.numbers {
		if n.Text == "Ah Sita! Ah Lakshmana!" {
			found = true
		}
	}
	if !found {
		t.Error("missing the deer's cry")
	}

	// Dismissing the kidnapping text chains straight into the search text.
	dismiss(g)
	if g.chapter != ChapterSearch || g.mode != core.ModeInterlude || g.interlude.Chapter != ChapterSearch {
		t.Fatalf("chapter %d mode %v, expected search interlude", g.chapter, g.mode)
	}

	dismiss(g)
	if g.mode != core.ModePlaying {
		t.Fatalf("mode = %v, expected playing", g.mode)
	}
	if g.liveEnemies() != 1 || countKind(g, core.KindNPC) != 1 {
		t.Fatalf("expected only the npc, got %d live enemies", g.liveEnemies())
	}

	var npc Enemy
	for _, e := range g.enemies {
		if e.Kind() == core.KindNPC {
			npc = e
		}
	}
	g.player.Pos = npc.body().Pos
	g.resolveCombat()
	if g.chapter != ChapterFarewell || g.mode != core.ModeInterlude {
		t.Fatalf("chapter %d mode %v, expected farewell interlude", g.chapter, g.mode)
	}
	if g.player.Health != 100 {
		t.Errorf("npc hurt the player: %d", g.player.Health)
	}

	g.DrainEvents()
	dismiss(g)
	st := g.State()
	if !st.Victory || st.Mode != core.ModeVictory || !st.Finished() {
		t.Fatalf("unexpected final state %+v", st)
	}
	if got := countEvents[core.VictoryEvent](g.DrainEvents()); got != 1 {
		t.Errorf("victory events = %d, expected 1", got)
	}
}

func TestMissingChapterIsNoOp(t *testing.T) {
	book := &story.Book{Chapters: []story.Chapter{{ID: "1", Title: "Only", Text: "One chapter."}}}
	g := NewWithConfig(testConfig(), book)
	g.Reset(core.RuntimeConfig{Seed: 7, TickRate: 60})
	g.mode = core.ModePlaying
	g.kills = g.cfg.Progression.KillTarget

	g.updateProgression(frameDT)

	if g.boss == nil || g.chapter != ChapterBoss {
		t.Fatalf("boss fight did not start: chapter %d", g.chapter)
	}
	if g.mode != core.ModePlaying || g.interlude != nil {
		t.Errorf("mode = %v, expected play to continue", g.mode)
	}
}

func TestChapterNeverGoesBack(t *testing.T) {
	g := newPlayingGame(t, testConfig())
	g.chapter = ChapterKidnap

	g.advanceChapter(ChapterBoss)
	g.advanceChapter(ChapterKidnap)
	if g.chapter != ChapterKidnap {
		t.Errorf("chapter = %d, expected %d", g.chapter, ChapterKidnap)
	}
	if got := countEvents[core.ChapterAdvancedEvent](g.DrainEvents()); got != 0 {
		t.Errorf("chapter events = %d, expected 0", got)
	}

	g.advanceChapter(ChapterSearch)
	events := g.DrainEvents()
	if len(events) != 1 {
		t.Fatalf("events = %d, expected 1", len(events))
	}
	ev, ok := events[0].(core.ChapterAdvancedEvent)
	if !ok || ev.From != ChapterKidnap || ev.To != ChapterSearch {
		t.Errorf("unexpected event %+v", events[0])
	}
}

func TestNPCOutsideSearchChapter(t *testing.T) {
	g := newPlayingGame(t, testConfig())
	g.chapter = ChapterDeer

	g.meetNPC()
	if g.chapter != ChapterDeer || g.mode != core.ModePlaying {
		t.Errorf("npc advanced the story outside its chapter")
	}
}
