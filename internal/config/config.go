// Package config provides YAML-based game configuration loading and
// difficulty management for the Dandaka simulation.
package config

// DandakaConfig contains all tunables of the simulation and its terminal front end.
type DandakaConfig struct {
	World       WorldConfig      `yaml:"world"`
	Player      PlayerConfig     `yaml:"player"`
	Projectile  ProjectileConfig `yaml:"projectile"`
	Minion      EnemyConfig      `yaml:"minion"`
	Deer        EnemyConfig      `yaml:"deer"`
	NPC         EnemyConfig      `yaml:"npc"`
	Boss        BossConfig       `yaml:"boss"`
	Lightning   LightningConfig  `yaml:"lightning"`
	Combat      CombatConfig     `yaml:"combat"`
	Progression ChapterConfig    `yaml:"progression"`
	Effects     EffectsConfig    `yaml:"effects"`
	Level       LevelConfig      `yaml:"level"`
	Difficulty  DifficultyConfig `yaml:"difficulty"`
	TUI         TUIConfig        `yaml:"tui"`
}

// WorldConfig defines the logical play field, in world units.
type WorldConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	FloorY        float64 `yaml:"floor_y"`        // Quake hits a grounded player below this line
	FalloutMargin float64 `yaml:"fallout_margin"` // Enemies deeper than Height+margin are removed
}

// PlayerConfig defines movement, game-feel windows and health of the player.
type PlayerConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	SpawnX        float64 `yaml:"spawn_x"`
	SpawnY        float64 `yaml:"spawn_y"`
	Speed         float64 `yaml:"speed"`
	JumpSpeed     float64 `yaml:"jump_speed"`
	Gravity       float64 `yaml:"gravity"`
	MaxHealth     int     `yaml:"max_health"`
	ShootInterval float64 `yaml:"shoot_interval"`
	JumpBuffer    float64 `yaml:"jump_buffer"`
	CoyoteTime    float64 `yaml:"coyote_time"`
	DashSpeed     float64 `yaml:"dash_speed"`
	DashDuration  float64 `yaml:"dash_duration"`
	DashCooldown  float64 `yaml:"dash_cooldown"`
	DashInvuln    float64 `yaml:"dash_invuln"`
	KnockbackLock float64 `yaml:"knockback_lock"` // Input ignored horizontally after a hit
}

// ProjectileConfig defines the player's arrows.
type ProjectileConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
}

// EnemyConfig defines the common parameters of an enemy variant.
type EnemyConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Health        int     `yaml:"health"`
	Speed         float64 `yaml:"speed"`
	PatrolRange   float64 `yaml:"patrol_range"`
	Gravity       float64 `yaml:"gravity"`
	ContactDamage int     `yaml:"contact_damage"`
	Score         int     `yaml:"score"`
}

// BossConfig extends EnemyConfig with the boss attack patterns.
type BossConfig struct {
	EnemyConfig `yaml:",inline"`

	ChipDamage       int         `yaml:"chip_damage"` // Damage taken per projectile
	PhaseThreshold   float64     `yaml:"phase_threshold"`
	PhaseShake       ShakeConfig `yaml:"phase_shake"`
	JumpChance       float64     `yaml:"jump_chance"` // Per grounded frame
	JumpSpeed        float64     `yaml:"jump_speed"`
	QuakeDamage      int         `yaml:"quake_damage"`
	QuakeShake       ShakeConfig `yaml:"quake_shake"`
	SlamDamage       int         `yaml:"slam_damage"`
	ChargeInterval   float64     `yaml:"charge_interval"`
	ChargeRange      float64     `yaml:"charge_range"`
	ChargeSpeed      float64     `yaml:"charge_speed"`
	ChargeSpeedPhase float64     `yaml:"charge_speed_phase2"`
	HitInvuln        float64     `yaml:"hit_invuln"`
	KnockbackX       float64     `yaml:"knockback_x"`
	KnockbackY       float64     `yaml:"knockback_y"`
}

// ShakeConfig is a screen shake request.
type ShakeConfig struct {
	Duration  float64 `yaml:"duration"`
	Magnitude float64 `yaml:"magnitude"`
}

// LightningConfig defines the phase-two bolt volley.
type LightningConfig struct {
	Interval float64 `yaml:"interval"`
	Bolts    int     `yaml:"bolts"`
	Spread   float64 `yaml:"spread"` // Total angular spread in radians
	Length   float64 `yaml:"length"`
	Warmup   float64 `yaml:"warmup"`
	Life     float64 `yaml:"life"`
	Radius   float64 `yaml:"radius"` // Player hit circle radius
	OffsetX  float64 `yaml:"offset_x"`
	OffsetY  float64 `yaml:"offset_y"`
	Damage   int     `yaml:"damage"`
}

// CombatConfig defines enemy contact damage handling.
type CombatConfig struct {
	ContactInvuln float64 `yaml:"contact_invuln"`
	KnockbackX    float64 `yaml:"knockback_x"`
	KnockbackY    float64 `yaml:"knockback_y"`
	KillParticles int     `yaml:"kill_particles"`
}

// Point is a world position in configuration files.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// ChapterConfig defines wave spawning and narrative gating.
type ChapterConfig struct {
	SpawnInterval  float64 `yaml:"spawn_interval"`
	MaxEnemies     int     `yaml:"max_enemies"`
	KillTarget     int     `yaml:"kill_target"`
	SpawnMargin    float64 `yaml:"spawn_margin"`
	SpawnY         float64 `yaml:"spawn_y"`
	InitialMinions []Point `yaml:"initial_minions"`
	BossSpawn      Point   `yaml:"boss_spawn"`
	DeerSpawn      Point   `yaml:"deer_spawn"`
	NPCSpawn       Point   `yaml:"npc_spawn"`
}

// EffectsConfig defines particles, floating numbers and shake decay.
type EffectsConfig struct {
	ParticleSpeed   float64 `yaml:"particle_speed"`
	ParticleMinSize float64 `yaml:"particle_min_size"`
	ParticleMaxSize float64 `yaml:"particle_max_size"`
	ParticleDecay   float64 `yaml:"particle_decay"` // Life lost per second
	NumberLife      float64 `yaml:"number_life"`
	NumberRise      float64 `yaml:"number_rise"`
	NumberJitter    float64 `yaml:"number_jitter"`
}

// RectConfig is a rectangle in configuration files.
type RectConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// LevelConfig is the static geometry of the arena.
type LevelConfig struct {
	Platforms []RectConfig `yaml:"platforms"`
	Statue    StatueConfig `yaml:"statue"`
}

// StatueConfig places the one-shot healing statue.
type StatueConfig struct {
	Enabled bool       `yaml:"enabled"`
	Rect    RectConfig `yaml:"rect"`
}

// TUIConfig tunes the terminal front end.
type TUIConfig struct {
	HoldWindow    float64 `yaml:"hold_window"`     // Seconds a key press counts as held
	MaxFrameDelta float64 `yaml:"max_frame_delta"` // Upper bound on dt passed to the simulation
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "kills", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Kills or seconds at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to minion speed at max difficulty
	SpawnReduction  float64 `yaml:"spawn_reduction"`  // Seconds removed from the spawn interval at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value into a preset. The empty string means no preset.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), true
	case "":
		return "", true
	default:
		return "", false
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
