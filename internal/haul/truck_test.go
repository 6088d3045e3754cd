package haul

import (
	"math"
	"testing"

	"github.com/vovakirdan/heavy-haul/internal/config"
	"github.com/vovakirdan/heavy-haul/internal/core"
)

func newTestTruck() *Truck {
	cfg := config.DefaultHaulConfig()
	return NewTruck(cfg.Truck, cfg.World, 100, 300)
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestTruckSpeedLimits(t *testing.T) {
	tests := []struct {
		name  string
		ctrl  Controls
		mult  float64
		bonus float64
		want  float64
	}{
		{"top speed", Controls{Accelerate: true}, 1.0, 1.0, 4.0},
		{"off-road cap", Controls{Accelerate: true}, 0.5, 1.0, 2.0},
		{"engine bonus", Controls{Accelerate: true}, 1.0, 1.3, 5.2},
		{"reverse cap", Controls{Brake: true}, 1.0, 1.0, -2.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newTestTruck()
			tr.EngineBonus = tt.bonus
			for i := 0; i < 200; i++ {
				tr.Update(tt.ctrl, tt.mult)
			}
			if !approx(tr.Speed, tt.want) {
				t.Errorf("Speed = %v, want %v", tr.Speed, tt.want)
			}
		})
	}
}

func TestTruckCoastsToStop(t *testing.T) {
	tr := newTestTruck()
	tr.Speed = 0.25
	tr.Update(Controls{}, 1)
	if !approx(tr.Speed, 0.15) {
		t.Errorf("after one tick Speed = %v, want 0.15", tr.Speed)
	}
	tr.Update(Controls{}, 1)
	tr.Update(Controls{}, 1)
	if tr.Speed != 0 {
		t.Errorf("Speed = %v, want 0", tr.Speed)
	}

	tr.Speed = -0.15
	tr.Update(Controls{}, 1)
	if !approx(tr.Speed, -0.05) {
		t.Errorf("reverse coast Speed = %v, want -0.05", tr.Speed)
	}
}

func TestTruckTurning(t *testing.T) {
	tr := newTestTruck()
	tr.Update(Controls{Left: true}, 1)
	if tr.Angle != 0 {
		t.Errorf("stationary truck turned to %v", tr.Angle)
	}

	tr.Speed = 1
	tr.Update(Controls{Left: true}, 1)
	if !approx(tr.Angle, 357.5) {
		t.Errorf("Angle = %v, want 357.5", tr.Angle)
	}
	tr.Update(Controls{Right: true}, 1)
	if !approx(tr.Angle, 0) {
		t.Errorf("Angle = %v, want 0", tr.Angle)
	}
}

func TestTruckMoves(t *testing.T) {
	tr := newTestTruck()
	tr.Speed = 2
	tr.Update(Controls{Accelerate: true}, 1)
	if !approx(tr.X, 102.15) || !approx(tr.Y, 300) {
		t.Errorf("position = (%v, %v), want (102.15, 300)", tr.X, tr.Y)
	}

	tr.Angle = 90
	tr.Update(Controls{Accelerate: true}, 1)
	if !approx(tr.Y, 302.3) {
		t.Errorf("Y = %v, want 302.3 after driving south", tr.Y)
	}
}

func TestTruckClampedToWorld(t *testing.T) {
	tr := newTestTruck()
	tr.X, tr.Y = 31, 569
	tr.Angle = 135 // south-west
	tr.Speed = 4
	for i := 0; i < 50; i++ {
		tr.Update(Controls{Accelerate: true}, 1)
	}
	if tr.X != 30 {
		t.Errorf("X = %v, want clamped to 30", tr.X)
	}
	if tr.Y != 570 {
		t.Errorf("Y = %v, want clamped to 570", tr.Y)
	}
}

func TestTruckRect(t *testing.T) {
	tr := newTestTruck()
	want := core.NewRectF(70, 285, 60, 30)
	if got := tr.Rect(); got != want {
		t.Errorf("Rect() = %+v, want %+v", got, want)
	}
}
