package dandaka

import (
	"testing"

	"github.com/vovakirdan/dandaka/internal/core"
)

const frameDT = 1.0 / 60

var floor = []core.Rect{core.NewRect(0, 500, 820, 120)}

func TestIntegrate(t *testing.T) {
	b := Body{Pos: core.Vec{X: 10, Y: 20}, Vel: core.Vec{X: 100}, W: 32, H: 32}
	b.Integrate(1500, 0.1)

	if b.Vel.Y != 150 {
		t.Errorf("Vel.Y = %v, expected 150", b.Vel.Y)
	}
	if b.Pos.X != 20 || b.Pos.Y != 35 {
		t.Errorf("Pos = %+v, expected (20, 35)", b.Pos)
	}
}

func TestLandOn(t *testing.T) {
	tests := []struct {
		name     string
		body     Body
		expected bool
		y        float64 // expected Pos.Y after the call
	}{
		{
			name:     "falling through top lands",
			body:     Body{Pos: core.Vec{X: 100, Y: 470}, Vel: core.Vec{Y: 300}, W: 32, H: 32},
			expected: true,
			y:        468,
		},
		{
			name:     "moving up passes through",
			body:     Body{Pos: core.Vec{X: 100, Y: 470}, Vel: core.Vec{Y: -300}, W: 32, H: 32},
			expected: false,
			y:        470,
		},
		{
			name:     "above the platform stays airborne",
			body:     Body{Pos: core.Vec{X: 100, Y: 300}, Vel: core.Vec{Y: 300}, W: 32, H: 32},
			expected: false,
			y:        300,
		},
		{
			name:     "deep below the top does not snap",
			body:     Body{Pos: core.Vec{X: 100, Y: 520}, Vel: core.Vec{Y: 60}, W: 32, H: 32},
			expected: false,
			y:        520,
		},
		{
			name:     "touching the right edge is not over the platform",
			body:     Body{Pos: core.Vec{X: 820, Y: 470}, Vel: core.Vec{Y: 300}, W: 32, H: 32},
			expected: false,
			y:        470,
		},
		{
			name:     "touching the left edge is not over the platform",
			body:     Body{Pos: core.Vec{X: -32, Y: 470}, Vel: core.Vec{Y: 300}, W: 32, H: 32},
			expected: false,
			y:        470,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := tc.body
			got := b.LandOn(floor, frameDT)
			if got != tc.expected || b.Grounded != tc.expected {
				t.Errorf("LandOn() = %v (Grounded %v), expected %v", got, b.Grounded, tc.expected)
			}
			if b.Pos.Y != tc.y {
				t.Errorf("Pos.Y = %v, expected %v", b.Pos.Y, tc.y)
			}
			if tc.expected && b.Vel.Y != 0 {
				t.Errorf("landing should zero Vel.Y, got %v", b.Vel.Y)
			}
		})
	}
}

func TestRestingBodyStaysGrounded(t *testing.T) {
	b := Body{Pos: core.Vec{X: 100, Y: 468}, W: 32, H: 32, Grounded: true}

	for i := 0; i < 300; i++ {
		b.Integrate(1500, frameDT)
		b.LandOn(floor, frameDT)
		if !b.Grounded {
			t.Fatalf("frame %d: resting body lost ground", i)
		}
		if b.Vel.Y != 0 || b.Pos.Y != 468 {
			t.Fatalf("frame %d: resting body moved: pos %+v vel %+v", i, b.Pos, b.Vel)
		}
	}
}

func TestFallingBodyLandsWithinFrames(t *testing.T) {
	b := Body{Pos: core.Vec{X: 100, Y: 100}, W: 32, H: 32}

	for i := 0; i < 120; i++ {
		b.Integrate(1500, frameDT)
		if b.LandOn(floor, frameDT) {
			if b.Pos.Y != 468 || b.Vel.Y != 0 {
				t.Fatalf("bad landing: pos %+v vel %+v", b.Pos, b.Vel)
			}
			return
		}
	}
	t.Fatal("body never landed on the floor")
}
