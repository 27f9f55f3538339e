package core

// Event is a discrete notification produced by the simulation during a frame.
// Events are queued by the game and drained by the platform after Step.
type Event interface {
	event()
}

// Sound cue names.
const (
	CueJump        = "jump"
	CueShoot       = "shoot"
	CueDash        = "dash"
	CueHit         = "hit"
	CueExplosion   = "explosion"
	CueZap         = "zap"
	CueHeal        = "heal"
	CueBossModeOn  = "boss_mode_on"
	CueBossModeOff = "boss_mode_off"
)

// ShakeEvent requests a camera shake.
type ShakeEvent struct {
	Duration  float64 // Seconds
	Magnitude float64 // World units
}

func (ShakeEvent) event() {}

// DamageNumberEvent requests floating text at a world position.
type DamageNumberEvent struct {
	Pos   Vec
	Text  string
	Color Color
}

func (DamageNumberEvent) event() {}

// SoundEvent requests a sound cue by name.
type SoundEvent struct {
	Cue string
}

func (SoundEvent) event() {}

// PlayerDamagedEvent is emitted each time damage is applied to the player.
type PlayerDamagedEvent struct {
	Amount int
	Health int // Health after the hit
	Source EntityKind
}

func (PlayerDamagedEvent) event() {}

// EnemyKilledEvent is emitted when an enemy's health reaches zero.
type EnemyKilledEvent struct {
	Kind  EntityKind
	Score int // Points awarded for this kill
	Kills int // Kill counter after this kill
}

func (EnemyKilledEvent) event() {}

// PhaseChangedEvent is emitted once when the boss enters a new phase.
type PhaseChangedEvent struct {
	Phase int
}

func (PhaseChangedEvent) event() {}

// ChapterAdvancedEvent is emitted when the narrative chapter moves forward.
type ChapterAdvancedEvent struct {
	From, To int
}

func (ChapterAdvancedEvent) event() {}

// InterludeEvent is emitted when narrative text is shown.
type InterludeEvent struct {
	Chapter int
	Title   string
}

func (InterludeEvent) event() {}

// GameOverEvent is emitted when the player's health reaches zero.
type GameOverEvent struct {
	Score   int
	Chapter int
}

func (GameOverEvent) event() {}

// VictoryEvent is emitted when the final interlude is dismissed.
type VictoryEvent struct {
	Score int
}

func (VictoryEvent) event() {}
