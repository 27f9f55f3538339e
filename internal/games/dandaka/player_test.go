package dandaka

import (
	"math"
	"testing"

	"github.com/vovakirdan/dandaka/internal/config"
	"github.com/vovakirdan/dandaka/internal/core"
)

func newFloorPlayer() *Player {
	p := NewPlayer(config.DefaultDandakaConfig().Player)
	onFloor(&p.Body, 100)
	return p
}

func TestPlayerRun(t *testing.T) {
	tests := []struct {
		name   string
		action core.Action
		vx     float64
		facing float64
	}{
		{"right", core.ActionRight, 300, 1},
		{"left", core.ActionLeft, -300, -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := newFloorPlayer()
			p.Update(core.NewInputFrame(tc.action), frameDT, floor, 800)
			if p.Vel.X != tc.vx || p.Facing != tc.facing {
				t.Errorf("vel %v facing %v, expected %v / %v", p.Vel.X, p.Facing, tc.vx, tc.facing)
			}
			if p.State != StateRun || !p.Grounded {
				t.Errorf("state %v grounded %v", p.State, p.Grounded)
			}
		})
	}
}

func TestPlayerStaysInsideWorld(t *testing.T) {
	p := newFloorPlayer()
	p.Pos.X = 2
	for i := 0; i < 10; i++ {
		p.Update(core.NewInputFrame(core.ActionLeft), frameDT, floor, 800)
	}
	if p.Pos.X != 0 {
		t.Errorf("x = %v, expected 0", p.Pos.X)
	}

	p.Pos.X = 765
	for i := 0; i < 10; i++ {
		p.Update(core.NewInputFrame(core.ActionRight), frameDT, floor, 800)
	}
	if p.Pos.X != 768 {
		t.Errorf("x = %v, expected 768", p.Pos.X)
	}
}

func TestPlayerJump(t *testing.T) {
	p := newFloorPlayer()
	act := p.Update(core.NewInputFrame(core.ActionJump), frameDT, floor, 800)

	if !act.Jumped {
		t.Fatal("expected a jump")
	}
	if p.Vel.Y >= 0 || p.Grounded || p.State != StateJump {
		t.Errorf("vel.Y %v grounded %v state %v", p.Vel.Y, p.Grounded, p.State)
	}

	// No double jump while airborne.
	act = p.Update(core.NewInputFrame(core.ActionJump), frameDT, floor, 800)
	if act.Jumped {
		t.Error("jumped again in the air")
	}
}

func TestPlayerJumpBuffer(t *testing.T) {
	p := newFloorPlayer()
	// One frame above the floor, falling onto it.
	p.Pos.Y = 466
	p.Vel.Y = 120
	p.Grounded = false

	act := p.Update(core.NewInputFrame(core.ActionJump), frameDT, floor, 800)
	if act.Jumped {
		t.Fatal("jumped while airborne without coyote time")
	}
	if !p.Grounded {
		t.Fatal("expected landing this frame")
	}

	act = p.Update(core.NewInputFrame(), frameDT, floor, 800)
	if !act.Jumped {
		t.Error("buffered jump did not fire on landing")
	}
}

func TestPlayerCoyoteTime(t *testing.T) {
	p := newFloorPlayer()
	p.Update(core.NewInputFrame(), frameDT, floor, 800)

	// Walk off a ledge: airborne but coyote time is still open.
	p.Pos.Y = 100
	p.Grounded = false
	act := p.Update(core.NewInputFrame(core.ActionJump), frameDT, floor, 800)
	if !act.Jumped {
		t.Error("coyote jump did not fire")
	}
}

func TestPlayerCoyoteExpires(t *testing.T) {
	p := newFloorPlayer()
	p.Update(core.NewInputFrame(), frameDT, floor, 800)

	p.Pos.Y = 100
	p.Grounded = false
	for i := 0; i < 10; i++ {
		p.Update(core.NewInputFrame(), frameDT, floor, 800)
	}
	act := p.Update(core.NewInputFrame(core.ActionJump), frameDT, floor, 800)
	if act.Jumped {
		t.Error("jumped after coyote time expired")
	}
}

func TestPlayerDash(t *testing.T) {
	p := newFloorPlayer()

	act := p.Update(core.NewInputFrame(core.ActionRight, core.ActionDash), frameDT, floor, 800)
	if !act.Dashed || !p.Dashing() {
		t.Fatal("dash did not start")
	}
	if p.Vel.X != 900 || p.Vel.Y != 0 {
		t.Errorf("dash velocity %+v, expected (900, 0)", p.Vel)
	}
	if !p.Invulnerable() || p.State != StateDash {
		t.Errorf("invulnerable %v state %v", p.Invulnerable(), p.State)
	}

	y := p.Pos.Y
	ended := false
	for i := 0; i < 20; i++ {
		p.Update(core.NewInputFrame(core.ActionRight), frameDT, floor, 800)
		if p.Pos.Y != y {
			t.Fatalf("dash moved vertically: %v -> %v", y, p.Pos.Y)
		}
		if !p.Dashing() {
			ended = true
			break
		}
	}
	if !ended {
		t.Fatal("dash never ended")
	}

	if p.Vel != (core.Vec{}) {
		t.Errorf("velocity after dash = %+v, expected zero", p.Vel)
	}
	if p.DashCooldown() != 0.6 || p.DashReady() {
		t.Errorf("cooldown %v ready %v", p.DashCooldown(), p.DashReady())
	}

	p.Update(core.NewInputFrame(core.ActionRight), frameDT, floor, 800)
	if p.Vel.X != 300 {
		t.Errorf("run speed after dash = %v, expected 300", p.Vel.X)
	}

	act = p.Update(core.NewInputFrame(core.ActionRight, core.ActionDash), frameDT, floor, 800)
	if act.Dashed {
		t.Error("dash started during cooldown")
	}
}

func TestPlayerDashLength(t *testing.T) {
	p := newFloorPlayer()
	startX := p.Pos.X

	p.Update(core.NewInputFrame(core.ActionRight, core.ActionDash), frameDT, floor, 800)
	frames := 1
	for p.Dashing() && frames < 30 {
		p.Update(core.NewInputFrame(core.ActionRight), frameDT, floor, 800)
		frames++
		if p.Dashing() && !p.Invulnerable() {
			t.Errorf("vulnerable during dash frame %d", frames)
		}
	}

	cfg := p.cfg
	if expected := int(math.Round(cfg.DashDuration / frameDT)); frames != expected {
		t.Errorf("dash lasted %d frames, expected %d", frames, expected)
	}
	if dist, expected := p.Pos.X-startX, cfg.DashSpeed*cfg.DashDuration; math.Abs(dist-expected) > 1e-6 {
		t.Errorf("dash covered %v, expected %v", dist, expected)
	}
}

func TestPlayerDashOffLedge(t *testing.T) {
	ledge := []core.Rect{core.NewRect(0, 500, 120, 120)}
	p := newFloorPlayer()
	p.Pos.X = 80
	p.Update(core.NewInputFrame(), frameDT, ledge, 800)
	if !p.Grounded {
		t.Fatal("expected to stand on the ledge")
	}

	p.Update(core.NewInputFrame(core.ActionRight, core.ActionDash), frameDT, ledge, 800)
	for i := 0; i < 30 && p.Dashing(); i++ {
		p.Update(core.NewInputFrame(core.ActionRight), frameDT, ledge, 800)
	}
	if p.Dashing() {
		t.Fatal("dash never ended")
	}
	if p.Pos.X <= 120 {
		t.Fatalf("x = %v, expected past the ledge", p.Pos.X)
	}
	if p.Grounded || p.State != StateJump {
		t.Errorf("grounded %v state %v after dashing off the ledge", p.Grounded, p.State)
	}

	act := p.Update(core.NewInputFrame(core.ActionJump), frameDT, ledge, 800)
	if act.Jumped {
		t.Error("jumped in mid-air after the dash")
	}
}

func TestPlayerDashNeedsDirection(t *testing.T) {
	p := newFloorPlayer()
	act := p.Update(core.NewInputFrame(core.ActionDash), frameDT, floor, 800)
	if act.Dashed || p.Dashing() {
		t.Error("dash started without a direction")
	}
}

func TestPlayerMuzzle(t *testing.T) {
	p := newFloorPlayer()

	m := p.Muzzle(10, 10)
	if m.X != 132 || m.Y != 479 {
		t.Errorf("right muzzle %+v, expected (132, 479)", m)
	}

	p.Facing = -1
	m = p.Muzzle(10, 10)
	if m.X != 90 || m.Y != 479 {
		t.Errorf("left muzzle %+v, expected (90, 479)", m)
	}
}

func TestPlayerHit(t *testing.T) {
	knock := core.Vec{X: 500, Y: -300}

	tests := []struct {
		name    string
		health  int
		invuln  float64
		sourceX float64
		applied bool
		health2 int
		vx      float64
	}{
		{"source on the right", 100, 0, 200, true, 80, -500},
		{"source on the left", 100, 0, 0, true, 80, 500},
		{"invulnerable", 100, 0.5, 200, false, 100, 0},
		{"clamped at zero", 10, 0, 200, true, 0, -500},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := newFloorPlayer()
			p.Health = tc.health
			p.Invuln = tc.invuln

			if got := p.hit(20, tc.sourceX, 2, knock); got != tc.applied {
				t.Fatalf("hit() = %v, expected %v", got, tc.applied)
			}
			if p.Health != tc.health2 || p.Vel.X != tc.vx {
				t.Errorf("health %d vel.X %v, expected %d / %v", p.Health, p.Vel.X, tc.health2, tc.vx)
			}
			if tc.applied && (p.Invuln != 2 || p.Vel.Y != -300) {
				t.Errorf("invuln %v vel.Y %v", p.Invuln, p.Vel.Y)
			}
		})
	}
}

func TestKnockbackOverridesInput(t *testing.T) {
	p := newFloorPlayer()
	p.hit(20, 200, 2, core.Vec{X: 500, Y: -300})

	p.Update(core.NewInputFrame(core.ActionRight), frameDT, floor, 800)
	if p.Vel.X != -500 {
		t.Errorf("vel.X = %v during knockback, expected -500", p.Vel.X)
	}

	for i := 0; i < 15; i++ {
		p.Update(core.NewInputFrame(core.ActionRight), frameDT, floor, 800)
	}
	if p.Vel.X != 300 {
		t.Errorf("vel.X = %v after knockback, expected 300", p.Vel.X)
	}
}
