package dandaka

import "github.com/vovakirdan/dandaka/internal/core"

// Frame builds the presentation view of the current state.
func (g *Game) Frame() core.Frame {
	f := core.Frame{
		Mode:      g.mode,
		WorldW:    g.cfg.World.Width,
		WorldH:    g.cfg.World.Height,
		Platforms: append([]core.Rect(nil), g.platforms...),
		Shake:     g.shake.offset,
		Paused:    g.paused,
		HUD: core.HUD{
			Health:     g.player.Health,
			MaxHealth:  g.player.MaxHealth,
			Score:      g.score,
			Kills:      g.kills,
			KillTarget: g.cfg.Progression.KillTarget,
			Chapter:    g.chapter,
			DashReady:  g.player.DashReady(),
		},
	}
	if g.interlude != nil {
		in := *g.interlude
		f.Interlude = &in
	}

	if g.statue.active {
		f.Entities = append(f.Entities, core.EntityView{
			Kind:   core.KindStatue,
			Rect:   g.statue.rect,
			Health: 1,
			Color:  core.ColorBrightYellow,
			Life:   1,
		})
	}
	for _, e := range g.enemies {
		f.Entities = append(f.Entities, e.view())
	}
	f.Entities = append(f.Entities, g.player.view())
	for _, p := range g.projectiles {
		f.Entities = append(f.Entities, p.view())
	}
	for _, p := range g.particles {
		f.Entities = append(f.Entities, p.view())
	}
	for _, n := range g.numbers {
		f.Labels = append(f.Labels, n.view())
	}

	if b := g.boss; b != nil {
		f.HUD.BossVisible = true
		f.HUD.BossHealth = fraction(b.Health(), b.MaxHealth())
		f.HUD.BossPhase = b.Phase()
		for _, bolt := range b.Bolts() {
			f.Bolts = append(f.Bolts, bolt.view())
		}
	}

	return f
}
