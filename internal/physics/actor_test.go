package physics

import (
	"math"
	"testing"

	"github.com/vovakirdan/jmpnrn/internal/core"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestNewActorDefaults(t *testing.T) {
	a := NewActor(core.NewRect(1, 2, 1, 1), nil)

	if a.Gravity != DefaultGravity {
		t.Errorf("Gravity = %v, expected %v", a.Gravity, DefaultGravity)
	}
	if a.Friction != DefaultFriction {
		t.Errorf("Friction = %v, expected %v", a.Friction, DefaultFriction)
	}
	if !a.BoxCollision || !a.StaticCollision || !a.SlopeCollision {
		t.Error("NewActor should enable every collision kind")
	}
	if a.Remove || a.Grounded() {
		t.Error("NewActor should start neither removed nor grounded")
	}
	if _, ok := a.Behavior.(Base); !ok {
		t.Errorf("Behavior = %T, expected Base", a.Behavior)
	}
	if a.Handle() != 0 {
		t.Errorf("Handle() = %d before spawn, expected 0", a.Handle())
	}
}

func TestApplyGravity(t *testing.T) {
	a := NewActor(core.NewRect(0, 0, 1, 1), nil)
	a.ApplyGravity(0.5)
	if !almostEqual(a.Vel.Y, 6) {
		t.Errorf("Vel.Y = %v, expected 6", a.Vel.Y)
	}
	if a.Vel.X != 0 {
		t.Errorf("Vel.X = %v, expected 0", a.Vel.X)
	}
}

func TestApplyFriction(t *testing.T) {
	tests := []struct {
		name     string
		vx       float64
		dt       float64
		expected float64
	}{
		{"decays positive", 1, 0.05, 0.5},
		{"decays negative", -1, 0.05, -0.5},
		{"clamps positive at zero", 0.3, 0.05, 0},
		{"clamps negative at zero", -0.3, 0.05, 0},
		{"exact step reaches zero", 0.5, 0.05, 0},
		{"zero stays zero", 0, 0.05, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := NewActor(core.NewRect(0, 0, 1, 1), nil)
			a.Vel = core.V(tc.vx, 3)
			a.ApplyFriction(tc.dt)
			if !almostEqual(a.Vel.X, tc.expected) {
				t.Errorf("Vel.X = %v, expected %v", a.Vel.X, tc.expected)
			}
			if a.Vel.Y != 3 {
				t.Errorf("Vel.Y = %v, friction must not touch it", a.Vel.Y)
			}
		})
	}
}

func TestApplyFrictionNeverCrossesZero(t *testing.T) {
	a := NewActor(core.NewRect(0, 0, 1, 1), nil)
	a.Vel.X = 2
	for i := 0; i < 100; i++ {
		a.ApplyFriction(1.0 / 60)
		if a.Vel.X < 0 {
			t.Fatalf("Vel.X = %v after %d steps, expected non-negative", a.Vel.X, i+1)
		}
	}
	if a.Vel.X != 0 {
		t.Errorf("Vel.X = %v, expected exactly 0", a.Vel.X)
	}
}

func TestMoveAndAccelerate(t *testing.T) {
	a := NewActor(core.NewRect(1, 1, 1, 1), nil)
	a.Accelerate(core.V(2, -4))
	a.Accelerate(core.V(2, 0))
	if a.Vel != core.V(4, -4) {
		t.Errorf("Vel = %v, expected (4, -4)", a.Vel)
	}

	a.Move(0.25)
	if !almostEqual(a.X, 2) || !almostEqual(a.Y, 0) {
		t.Errorf("position = (%v, %v), expected (2, 0)", a.X, a.Y)
	}
}

func TestStop(t *testing.T) {
	tests := []struct {
		dir      core.Direction
		expected core.Vec2
	}{
		{core.DirUp, core.V(3, 0)},
		{core.DirDown, core.V(3, 0)},
		{core.DirLeft, core.V(0, 4)},
		{core.DirRight, core.V(0, 4)},
		{core.DirNone, core.V(3, 4)},
	}

	for _, tc := range tests {
		a := NewActor(core.NewRect(0, 0, 1, 1), nil)
		a.Vel = core.V(3, 4)
		a.Stop(tc.dir)
		if a.Vel != tc.expected {
			t.Errorf("Stop(%v) Vel = %v, expected %v", tc.dir, a.Vel, tc.expected)
		}
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in       string
		expected Mode
		wantErr  bool
	}{
		{"", ModeSingle, false},
		{"single", ModeSingle, false},
		{"iterative", ModeIterative, false},
		{"bogus", ModeSingle, true},
	}

	for _, tc := range tests {
		got, err := ParseMode(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseMode(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
		if got != tc.expected {
			t.Errorf("ParseMode(%q) = %v, expected %v", tc.in, got, tc.expected)
		}
	}

	if s := ModeIterative.String(); s != "iterative" {
		t.Errorf("String() = %q, expected %q", s, "iterative")
	}
}
