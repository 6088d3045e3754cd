package haul

import (
	"math"

	"github.com/vovakirdan/heavy-haul/internal/config"
	"github.com/vovakirdan/heavy-haul/internal/core"
)

// Truck is the player's rig. Angle is in degrees, 0 pointing east and
// growing clockwise on screen (y grows downward).
type Truck struct {
	X, Y  float64
	Angle float64
	Speed float64

	cfg    config.TruckConfig
	bounds core.RectF // Allowed range for the center point
	// EngineBonus multiplies the top speed.
	EngineBonus float64
}

// NewTruck places a stopped truck at (x, y) facing east.
func NewTruck(cfg config.TruckConfig, world config.WorldConfig, x, y float64) *Truck {
	m := world.Margin
	return &Truck{
		X:           x,
		Y:           y,
		cfg:         cfg,
		bounds:      core.NewRectF(m, m, world.Width-2*m, world.Height-2*m),
		EngineBonus: 1.0,
	}
}

// Update advances the truck one tick. speedMultiplier caps the forward
// speed (off-road driving passes 0.5).
func (t *Truck) Update(c Controls, speedMultiplier float64) {
	maxForward := t.cfg.MaxSpeed * speedMultiplier * t.EngineBonus
	maxReverse := t.cfg.MaxSpeed * t.cfg.ReverseMultiplier

	switch {
	case c.Accelerate:
		t.Speed = math.Min(t.Speed+t.cfg.Acceleration, maxForward)
	case c.Brake:
		t.Speed = math.Max(t.Speed-t.cfg.Acceleration, -maxReverse)
	case t.Speed > 0:
		t.Speed = math.Max(0, t.Speed-t.cfg.Deceleration)
	case t.Speed < 0:
		t.Speed = math.Min(0, t.Speed+t.cfg.Deceleration)
	}

	if math.Abs(t.Speed) > t.cfg.TurnThreshold {
		if c.Left {
			t.Angle -= t.cfg.TurnSpeed
		}
		if c.Right {
			t.Angle += t.cfg.TurnSpeed
		}
		t.Angle = math.Mod(t.Angle+360, 360)
	}

	if math.Abs(t.Speed) > t.cfg.MoveThreshold {
		rad := t.Angle * math.Pi / 180
		t.X += math.Cos(rad) * t.Speed
		t.Y += math.Sin(rad) * t.Speed
	}

	t.X = core.ClampF(t.X, t.bounds.X, t.bounds.Right())
	t.Y = core.ClampF(t.Y, t.bounds.Y, t.bounds.Bottom())
}

// Stop zeroes the speed.
func (t *Truck) Stop() {
	t.Speed = 0
}

// Rect is the truck's collision box. The box is axis-aligned and does
// not rotate with the heading.
func (t *Truck) Rect() core.RectF {
	return core.CenteredRectF(t.X, t.Y, t.cfg.Length, t.cfg.Width)
}

// Height is the load height checked against bridge clearance.
func (t *Truck) Height() float64 {
	return t.cfg.Height
}

// MaxSpeed is the current top forward speed on a road.
func (t *Truck) MaxSpeed() float64 {
	return t.cfg.MaxSpeed * t.EngineBonus
}
