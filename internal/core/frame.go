package core

// EntityKind tags a renderable entity.
type EntityKind int

const (
	KindPlayer EntityKind = iota
	KindMinion
	KindBoss
	KindDeer
	KindNPC
	KindProjectile
	KindParticle
	KindStatue
)

// String returns a lowercase name for the kind.
func (k EntityKind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindMinion:
		return "minion"
	case KindBoss:
		return "boss"
	case KindDeer:
		return "deer"
	case KindNPC:
		return "npc"
	case KindProjectile:
		return "projectile"
	case KindParticle:
		return "particle"
	case KindStatue:
		return "statue"
	default:
		return "unknown"
	}
}

// EntityView is the presentation-facing description of one entity.
type EntityView struct {
	Kind   EntityKind
	Rect   Rect
	Health float64 // Fraction of max health in [0, 1]; 1 for kinds without health
	State  string  // Movement or AI state tag, e.g. "run", "dash", "phase2"
	Facing int     // -1 or +1
	Color  Color
	Blink  bool    // Invulnerable; renderers may flicker the sprite
	Life   float64 // Remaining life for fading entities, 1 otherwise
}

// BoltView describes one lightning bolt.
type BoltView struct {
	From, To Vec
	Active   bool // false while the bolt is a harmless telegraph
}

// LabelView is floating text in world space (damage numbers, messages).
type LabelView struct {
	Pos   Vec
	Text  string
	Color Color
	Life  float64
}

// HUD carries the numbers shown around the play field.
type HUD struct {
	Health      int
	MaxHealth   int
	Score       int
	Kills       int
	KillTarget  int
	Chapter     int
	DashReady   bool
	BossVisible bool
	BossHealth  float64 // Fraction of max health
	BossPhase   int
}

// Interlude is narrative text awaiting dismissal.
type Interlude struct {
	Chapter int
	Title   string
	Text    string
}

// Frame is a complete read-only picture of the simulation for one frame.
type Frame struct {
	Mode      Mode
	WorldW    float64
	WorldH    float64
	Platforms []Rect
	Entities  []EntityView
	Bolts     []BoltView
	Labels    []LabelView
	HUD       HUD
	Shake     Vec        // Current camera offset in world units
	Interlude *Interlude // Non-nil when Mode is ModeInterlude
	Paused    bool
}
