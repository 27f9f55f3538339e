package config

import "math"

// Minimum seconds between minion spawns regardless of difficulty.
const minSpawnInterval = 0.5

// DifficultyManager calculates dynamic wave parameters based on kills or run time.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on kills or elapsed seconds.
func (d *DifficultyManager) Level(kills int, elapsed float64) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	var progress float64
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	switch d.cfg.Progression.Type {
	case "kills":
		progress = float64(kills) / maxAt
	case "time":
		progress = elapsed / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed returns a minion speed scaled by the difficulty level.
// With progression disabled the base speed is returned unchanged.
func (d *DifficultyManager) Speed(baseSpeed float64, kills int, elapsed float64) float64 {
	if !d.IsEnabled() {
		return baseSpeed
	}
	level := d.Level(kills, elapsed)
	return baseSpeed * (1.0 + level*d.cfg.Scaling.SpeedMultiplier)
}

// SpawnInterval returns the seconds between minion spawns.
// With progression disabled the base interval is returned unchanged.
func (d *DifficultyManager) SpawnInterval(base float64, kills int, elapsed float64) float64 {
	if !d.IsEnabled() {
		return base
	}
	level := d.Level(kills, elapsed)
	result := base - level*d.cfg.Scaling.SpawnReduction
	if result < minSpawnInterval {
		result = minSpawnInterval
	}
	return result
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
