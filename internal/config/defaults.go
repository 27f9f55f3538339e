package config

import (
	_ "embed"
)

//go:embed defaults/dandaka.yaml
var defaultDandakaYAML []byte

// DefaultDandakaConfig returns the built-in configuration. It matches the
// embedded defaults/dandaka.yaml and is used when no YAML can be parsed.
func DefaultDandakaConfig() DandakaConfig {
	return DandakaConfig{
		World: WorldConfig{
			Width:         800,
			Height:        600,
			FloorY:        450,
			FalloutMargin: 100,
		},
		Player: PlayerConfig{
			Width:         32,
			Height:        32,
			SpawnX:        100,
			SpawnY:        400,
			Speed:         300,
			JumpSpeed:     600,
			Gravity:       1500,
			MaxHealth:     100,
			ShootInterval: 0.2,
			JumpBuffer:    0.1,
			CoyoteTime:    0.1,
			DashSpeed:     900,
			DashDuration:  0.15,
			DashCooldown:  0.6,
			DashInvuln:    0.15,
			KnockbackLock: 0.2,
		},
		Projectile: ProjectileConfig{
			Width:  10,
			Height: 10,
			Speed:  600,
		},
		Minion: EnemyConfig{
			Width:         32,
			Height:        32,
			Health:        30,
			Speed:         100,
			PatrolRange:   150,
			Gravity:       1500,
			ContactDamage: 20,
			Score:         100,
		},
		Deer: EnemyConfig{
			Width:         40,
			Height:        40,
			Health:        500,
			Speed:         250,
			Gravity:       1500,
			ContactDamage: 20,
			Score:         100,
		},
		NPC: EnemyConfig{
			Width:   80,
			Height:  50,
			Health:  1000,
			Gravity: 1500,
		},
		Boss: BossConfig{
			EnemyConfig: EnemyConfig{
				Width:         64,
				Height:        64,
				Health:        375,
				Speed:         80,
				PatrolRange:   300,
				Gravity:       1500,
				ContactDamage: 50,
				Score:         5000,
			},
			ChipDamage:       10,
			PhaseThreshold:   0.5,
			PhaseShake:       ShakeConfig{Duration: 1.0, Magnitude: 5},
			JumpChance:       0.02,
			JumpSpeed:        800,
			QuakeDamage:      20,
			QuakeShake:       ShakeConfig{Duration: 0.5, Magnitude: 20},
			SlamDamage:       10,
			ChargeInterval:   2.0,
			ChargeRange:      300,
			ChargeSpeed:      200,
			ChargeSpeedPhase: 250,
			HitInvuln:        1.0,
			KnockbackX:       200,
			KnockbackY:       -300,
		},
		Lightning: LightningConfig{
			Interval: 3.0,
			Bolts:    5,
			Spread:   1.5,
			Length:   1000,
			Warmup:   0.6,
			Life:     0.3,
			Radius:   20,
			OffsetX:  16,
			OffsetY:  16,
			Damage:   15,
		},
		Combat: CombatConfig{
			ContactInvuln: 2.0,
			KnockbackX:    500,
			KnockbackY:    -300,
			KillParticles: 10,
		},
		Progression: ChapterConfig{
			SpawnInterval: 2.0,
			MaxEnemies:    5,
			KillTarget:    14,
			SpawnMargin:   50,
			SpawnY:        400,
			InitialMinions: []Point{
				{X: 400, Y: 300},
				{X: 700, Y: 200},
			},
			BossSpawn: Point{X: 600, Y: 300},
			DeerSpawn: Point{X: 600, Y: 400},
			NPCSpawn:  Point{X: 660, Y: 440},
		},
		Effects: EffectsConfig{
			ParticleSpeed:   100,
			ParticleMinSize: 2,
			ParticleMaxSize: 7,
			ParticleDecay:   3,
			NumberLife:      1,
			NumberRise:      50,
			NumberJitter:    10,
		},
		Level: LevelConfig{
			Platforms: []RectConfig{
				{X: 0, Y: 500, W: 820, H: 120},
				{X: 80, Y: 430, W: 160, H: 18},
				{X: 240, Y: 370, W: 180, H: 18},
				{X: 460, Y: 320, W: 180, H: 18},
				{X: 660, Y: 270, W: 120, H: 18},
				{X: 50, Y: 250, W: 100, H: 18},
			},
			Statue: StatueConfig{
				Enabled: true,
				Rect:    RectConfig{X: 700, Y: 230, W: 40, H: 40},
			},
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "kills",
				MaxAt: 14,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
				SpawnReduction:  1.0,
			},
		},
		TUI: TUIConfig{
			HoldWindow:    0.25,
			MaxFrameDelta: 0.1,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultDandakaYAML
}
