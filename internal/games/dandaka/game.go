// Package dandaka implements the real-time simulation of a 2D
// action-platformer: a hero fights minion waves and a two-phase boss, chases
// a golden deer and follows a short narrative through chapter interludes.
//
// The simulation is pure: it consumes held input actions and a frame delta,
// and exposes a renderable Frame plus a queue of discrete events. It never
// touches the terminal, audio or storage.
package dandaka

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dandaka/internal/config"
	"github.com/vovakirdan/dandaka/internal/core"
	"github.com/vovakirdan/dandaka/internal/registry"
	"github.com/vovakirdan/dandaka/internal/story"
)

// GameID is the registry identifier.
const GameID = "dandaka"

// configPath stores the custom config path set via CLI
var configPath string

// bookPath stores the custom narrative book path set via CLI
var bookPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetBookPath sets a custom narrative book file.
func SetBookPath(path string) {
	bookPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, ok := config.ParsePreset(preset)
	if !ok {
		p = ""
	}
	difficultyPreset = p
}

// Game implements the Dandaka simulation.
type Game struct {
	cfg        config.DandakaConfig
	cfgFixed   bool // cfg was injected; Reset must not reload it
	book       story.Provider
	runtime    core.RuntimeConfig
	rng        *rand.Rand
	log        *log.Logger
	difficulty *config.DifficultyManager

	platforms   []core.Rect
	player      *Player
	enemies     []Enemy
	projectiles []*Projectile
	particles   []*Particle
	numbers     []*DamageNumber
	statue      statue
	boss        *Boss

	mode      core.Mode
	interlude *core.Interlude
	paused    bool
	prev      core.InputFrame

	score       int
	kills       int
	chapter     int
	bossSpawned bool
	spawnTimer  float64
	elapsed     float64
	tick        uint64
	shake       shakeState

	killed []killRecord
	events []core.Event
}

// shakeState is the camera shake request and its current offset.
type shakeState struct {
	duration  float64
	magnitude float64
	offset    core.Vec
}

// New creates a game that loads its configuration on Reset.
func New() *Game {
	return &Game{
		log: log.New(io.Discard),
	}
}

// NewWithConfig creates a game with a fixed configuration and narrative book.
// A nil book uses the embedded one.
func NewWithConfig(cfg config.DandakaConfig, book story.Provider) *Game {
	g := New()
	g.cfg = cfg
	g.cfgFixed = true
	g.book = book
	return g
}

// SetLogger routes simulation logs to l. A nil logger discards them.
func (g *Game) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	g.log = l
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Dandaka"
}

// Config returns the active configuration.
func (g *Game) Config() config.DandakaConfig {
	return g.cfg
}

// Reset initializes or restarts the run at the title screen.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg

	if !g.cfgFixed {
		c, err := config.Load(configPath)
		if err != nil {
			g.log.Warn("config load failed, using defaults", "err", err)
			c = config.DefaultDandakaConfig()
		}
		config.ApplyPreset(&c, difficultyPreset)
		g.cfg = c
	}
	if g.book == nil {
		g.book = loadBook(g.log)
	}

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)

	g.platforms = g.platforms[:0]
	for _, p := range g.cfg.Level.Platforms {
		g.platforms = append(g.platforms, core.NewRect(p.X, p.Y, p.W, p.H))
	}
	s := g.cfg.Level.Statue
	g.statue = statue{
		rect:   core.NewRect(s.Rect.X, s.Rect.Y, s.Rect.W, s.Rect.H),
		active: s.Enabled,
	}

	g.player = NewPlayer(g.cfg.Player)
	g.enemies = nil
	g.projectiles = nil
	g.particles = nil
	g.numbers = nil
	g.boss = nil

	g.mode = core.ModeTitle
	g.interlude = nil
	g.paused = false
	g.prev = core.NewInputFrame()

	g.score = 0
	g.kills = 0
	g.chapter = ChapterIntro
	g.bossSpawned = false
	g.spawnTimer = 0
	g.elapsed = 0
	g.tick = 0
	g.shake = shakeState{}
	g.killed = nil
	g.events = nil

	for _, m := range g.cfg.Progression.InitialMinions {
		g.spawnMinion(m.X, m.Y)
	}
}

func loadBook(l *log.Logger) story.Provider {
	if bookPath != "" {
		b, err := story.LoadBook(bookPath)
		if err == nil {
			return b
		}
		l.Warn("story load failed, using embedded book", "err", err)
	}
	return story.Default()
}

// Step advances the simulation by dt seconds of wall-clock time.
// dt is used as given; callers bound it if they need to.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	pressed := func(a core.Action) bool {
		return in.Has(a) && !g.prev.Has(a)
	}

	switch g.mode {
	case core.ModeTitle:
		if pressed(core.ActionConfirm) {
			g.mode = core.ModePlaying
			g.showInterlude(ChapterIntro)
		}

	case core.ModeInterlude:
		g.updateEffects(dt)
		g.sweepAll()
		if pressed(core.ActionConfirm) {
			g.dismissInterlude()
		}

	case core.ModePlaying:
		if pressed(core.ActionPause) {
			g.paused = !g.paused
		}
		if !g.paused {
			g.update(in, dt)
		}

	case core.ModeGameOver, core.ModeVictory:
		g.updateEffects(dt)
		g.sweepAll()
	}

	g.prev = in.Clone()
	return core.StepResult{State: g.State()}
}

// update runs one live frame: player, enemies, projectiles, effects, statue,
// combat, progression and finally the sweep of flagged entities.
func (g *Game) update(in core.InputFrame, dt float64) {
	if dt <= 0 {
		return
	}
	g.tick++
	g.elapsed += dt

	act := g.player.Update(in, dt, g.platforms, g.cfg.World.Width)
	if act.Jumped {
		g.sound(core.CueJump)
	}
	if act.Dashed {
		g.sound(core.CueDash)
	}
	if act.Shot {
		pc := g.cfg.Projectile
		pos := g.player.Muzzle(pc.Width, pc.Height)
		g.projectiles = append(g.projectiles, NewProjectile(pc, pos, g.player.Facing))
		g.sound(core.CueShoot)
	}

	for _, e := range g.enemies {
		if !e.Deleted() {
			e.Update(g, dt)
		}
	}
	for _, p := range g.projectiles {
		p.Update(dt, g.cfg.World.Width)
	}

	g.updateEffects(dt)
	g.checkStatue()
	g.resolveCombat()
	if g.mode == core.ModeGameOver {
		// The run ended in combat; the story stays where the player fell.
		g.killed = g.killed[:0]
	} else {
		g.updateProgression(dt)
	}
	g.sweepAll()
}

// updateEffects advances particles, floating numbers and the camera shake.
func (g *Game) updateEffects(dt float64) {
	if dt <= 0 {
		return
	}
	for _, p := range g.particles {
		p.Update(dt)
	}
	for _, n := range g.numbers {
		n.Update(dt)
	}

	if g.shake.duration > 0 {
		g.shake.duration -= dt
		mag := 0.0
		if g.shake.duration > 0 {
			mag = g.shake.magnitude
		}
		g.shake.offset = core.Vec{
			X: (g.rng.Float64() - 0.5) * 2 * mag,
			Y: (g.rng.Float64() - 0.5) * 2 * mag,
		}
	} else {
		g.shake.offset = core.Vec{}
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Kills:    g.kills,
		Chapter:  g.chapter,
		Mode:     g.mode,
		GameOver: g.mode == core.ModeGameOver,
		Victory:  g.mode == core.ModeVictory,
		Paused:   g.paused,
	}
}

// DrainEvents returns the events queued since the last call and clears the queue.
func (g *Game) DrainEvents() []core.Event {
	ev := g.events
	g.events = nil
	return ev
}

func (g *Game) emit(ev core.Event) {
	g.events = append(g.events, ev)
}

func (g *Game) sound(cue string) {
	g.emit(core.SoundEvent{Cue: cue})
}

// shakeScreen replaces any running shake.
func (g *Game) shakeScreen(duration, magnitude float64) {
	g.shake.duration = duration
	g.shake.magnitude = magnitude
	g.emit(core.ShakeEvent{Duration: duration, Magnitude: magnitude})
}

// damageNumber spawns floating text near pos with a little horizontal jitter.
func (g *Game) damageNumber(pos core.Vec, text string, color core.Color) {
	fx := g.cfg.Effects
	pos.X += (g.rng.Float64() - 0.5) * 2 * fx.NumberJitter
	g.numbers = append(g.numbers, &DamageNumber{
		Pos:   pos,
		Vel:   core.Vec{Y: -fx.NumberRise},
		Text:  text,
		Color: color,
		Life:  fx.NumberLife,
	})
	g.emit(core.DamageNumberEvent{Pos: pos, Text: text, Color: color})
}

// burst emits n particles from pos.
func (g *Game) burst(pos core.Vec, n int, color core.Color) {
	fx := g.cfg.Effects
	for i := 0; i < n; i++ {
		g.particles = append(g.particles, &Particle{
			Pos: pos,
			Vel: core.Vec{
				X: (g.rng.Float64()*2 - 1) * fx.ParticleSpeed,
				Y: (g.rng.Float64()*2 - 1) * fx.ParticleSpeed,
			},
			Size:  fx.ParticleMinSize + g.rng.Float64()*(fx.ParticleMaxSize-fx.ParticleMinSize),
			Life:  1,
			Color: color,
			decay: fx.ParticleDecay,
		})
	}
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
