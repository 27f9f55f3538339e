package dandaka

import (
	"math"

	"github.com/vovakirdan/dandaka/internal/config"
	"github.com/vovakirdan/dandaka/internal/core"
)

// timerEpsilon absorbs float drift when a countdown is summed from frame
// deltas that do not divide its length exactly.
const timerEpsilon = 1e-9

// MoveState is the player's animation/movement state.
type MoveState int

const (
	StateIdle MoveState = iota
	StateRun
	StateJump
	StateDash
)

func (s MoveState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRun:
		return "run"
	case StateJump:
		return "jump"
	case StateDash:
		return "dash"
	default:
		return "unknown"
	}
}

// PlayerActions reports what the player did during one update.
type PlayerActions struct {
	Jumped bool
	Shot   bool
	Dashed bool
}

// Player is the controllable hero.
type Player struct {
	Body
	cfg config.PlayerConfig

	Health    int
	MaxHealth int
	Invuln    float64 // Seconds of remaining invulnerability
	Facing    float64 // -1 or +1
	State     MoveState

	dashing      bool
	dashTime     float64
	dashCooldown float64

	jumpBuffer    float64
	coyote        float64
	shootCooldown float64
	knockbackLock float64
}

// NewPlayer creates a player at the configured spawn point.
func NewPlayer(cfg config.PlayerConfig) *Player {
	return &Player{
		Body: Body{
			Pos: core.Vec{X: cfg.SpawnX, Y: cfg.SpawnY},
			W:   cfg.Width,
			H:   cfg.Height,
		},
		cfg:       cfg,
		Health:    cfg.MaxHealth,
		MaxHealth: cfg.MaxHealth,
		Facing:    1,
	}
}

// Invulnerable reports whether damage is currently suppressed.
func (p *Player) Invulnerable() bool {
	return p.Invuln > 0
}

// Dashing reports whether a dash is in progress.
func (p *Player) Dashing() bool {
	return p.dashing
}

// DashReady reports whether a new dash may start.
func (p *Player) DashReady() bool {
	return !p.dashing && p.dashCooldown <= 0
}

// DashCooldown returns the seconds left before the next dash.
func (p *Player) DashCooldown() float64 {
	return p.dashCooldown
}

// Muzzle returns the spawn position of a projectile of the given size:
// the facing edge of the player box, vertically centered.
func (p *Player) Muzzle(w, h float64) core.Vec {
	x := p.Pos.X + p.W
	if p.Facing < 0 {
		x = p.Pos.X - w
	}
	return core.Vec{X: x, Y: p.Pos.Y + p.H/2 - h/2}
}

// Update advances the player by dt seconds. Updates with dt <= 0 are no-ops.
func (p *Player) Update(in core.InputFrame, dt float64, platforms []core.Rect, worldW float64) PlayerActions {
	var act PlayerActions
	if dt <= 0 {
		return act
	}

	p.tickTimers(dt)

	if p.dashing {
		p.dashStep(dt, platforms, worldW)
		return act
	}

	left, right := in.Has(core.ActionLeft), in.Has(core.ActionRight)

	if in.Has(core.ActionDash) && p.dashCooldown <= 0 && (left || right) {
		p.startDash(right)
		p.dashStep(dt, platforms, worldW)
		act.Dashed = true
		return act
	}

	// Horizontal control, unless a knockback is still carrying the player.
	if p.knockbackLock <= 0 {
		switch {
		case right:
			p.Vel.X = p.cfg.Speed
			p.Facing = 1
		case left:
			p.Vel.X = -p.cfg.Speed
			p.Facing = -1
		default:
			p.Vel.X = 0
		}
	}

	if in.Has(core.ActionShoot) && p.shootCooldown <= 0 {
		p.shootCooldown = p.cfg.ShootInterval
		act.Shot = true
	}

	// Jump buffer and coyote time must both be open.
	if in.Has(core.ActionJump) {
		p.jumpBuffer = p.cfg.JumpBuffer
	}
	if p.Grounded {
		p.coyote = p.cfg.CoyoteTime
	}
	if p.jumpBuffer > 0 && p.coyote > 0 {
		p.Vel.Y = -p.cfg.JumpSpeed
		p.jumpBuffer = 0
		p.coyote = 0
		p.Grounded = false
		act.Jumped = true
	}

	p.Integrate(p.cfg.Gravity, dt)
	p.LandOn(platforms, dt)
	p.clampX(worldW)
	p.State = p.movementState()

	return act
}

func (p *Player) tickTimers(dt float64) {
	p.Invuln = math.Max(0, p.Invuln-dt)
	p.dashCooldown = math.Max(0, p.dashCooldown-dt)
	p.jumpBuffer = math.Max(0, p.jumpBuffer-dt)
	p.coyote = math.Max(0, p.coyote-dt)
	p.shootCooldown = math.Max(0, p.shootCooldown-dt)
	p.knockbackLock = math.Max(0, p.knockbackLock-dt)
}

func (p *Player) startDash(right bool) {
	if right {
		p.Facing = 1
	} else {
		p.Facing = -1
	}
	p.dashing = true
	p.dashTime = p.cfg.DashDuration
	p.knockbackLock = 0
	p.Vel = core.Vec{X: p.Facing * p.cfg.DashSpeed}
	p.Invuln = math.Max(p.Invuln, p.cfg.DashInvuln)
	p.State = StateDash
}

// dashStep advances a dash by one frame, the starting frame included.
// Gravity is suspended, but support is re-checked so a dash that carries the
// player off a platform leaves them airborne.
func (p *Player) dashStep(dt float64, platforms []core.Rect, worldW float64) {
	p.dashTime -= dt
	p.Vel = core.Vec{X: p.Facing * p.cfg.DashSpeed}
	p.Pos = p.Pos.Add(p.Vel.Scale(dt))
	p.clampX(worldW)
	p.LandOn(platforms, dt)
	if p.dashTime <= timerEpsilon {
		p.endDash()
	}
}

func (p *Player) endDash() {
	p.dashing = false
	p.dashTime = 0
	p.dashCooldown = p.cfg.DashCooldown
	p.Vel = core.Vec{}
	p.State = p.movementState()
}

func (p *Player) movementState() MoveState {
	switch {
	case p.dashing:
		return StateDash
	case !p.Grounded:
		return StateJump
	case p.Vel.X != 0:
		return StateRun
	default:
		return StateIdle
	}
}

// hit applies damage unless the player is invulnerable and reports whether it
// did. Knockback pushes away from sourceX. Health is clamped at zero.
func (p *Player) hit(amount int, sourceX, invuln float64, knockback core.Vec) bool {
	if p.Invuln > 0 {
		return false
	}
	p.Health -= amount
	if p.Health < 0 {
		p.Health = 0
	}
	p.Invuln = invuln

	dir := 1.0
	if p.Center().X < sourceX {
		dir = -1
	}
	p.Vel = core.Vec{X: dir * knockback.X, Y: knockback.Y}
	p.knockbackLock = p.cfg.KnockbackLock
	p.Grounded = false
	p.coyote = 0
	return true
}

// heal restores full health.
func (p *Player) heal() {
	p.Health = p.MaxHealth
}

func (p *Player) view() core.EntityView {
	return core.EntityView{
		Kind:   core.KindPlayer,
		Rect:   p.Rect(),
		Health: fraction(p.Health, p.MaxHealth),
		State:  p.State.String(),
		Facing: int(p.Facing),
		Color:  core.ColorBrightBlue,
		Blink:  p.Invulnerable(),
		Life:   1,
	}
}

func fraction(v, max int) float64 {
	if max <= 0 {
		return 0
	}
	return core.ClampF(float64(v)/float64(max), 0, 1)
}
