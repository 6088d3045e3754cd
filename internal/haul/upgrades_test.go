package haul

import (
	"errors"
	"testing"

	"github.com/vovakirdan/heavy-haul/internal/config"
)

func TestUpgradesPurchase(t *testing.T) {
	u := NewUpgrades(config.DefaultUpgradesConfig())

	cost, ok := u.NextCost(TrackEngine)
	if !ok || cost != 12000 {
		t.Fatalf("NextCost = %d, %v; want 12000", cost, ok)
	}

	if _, err := u.Purchase(TrackEngine, 11999); !errors.Is(err, ErrCannotAfford) {
		t.Errorf("err = %v, want ErrCannotAfford", err)
	}
	if u.Level(TrackEngine) != 1 {
		t.Errorf("refused purchase changed level to %d", u.Level(TrackEngine))
	}

	if cost, err := u.Purchase(TrackEngine, 12000); err != nil || cost != 12000 {
		t.Errorf("Purchase = %d, %v", cost, err)
	}
	if cost, err := u.Purchase(TrackEngine, 100000); err != nil || cost != 25000 {
		t.Errorf("Purchase = %d, %v", cost, err)
	}
	if u.Level(TrackEngine) != 3 {
		t.Errorf("Level = %d, want 3", u.Level(TrackEngine))
	}

	if _, ok := u.NextCost(TrackEngine); ok {
		t.Error("max level should have no next cost")
	}
	if _, err := u.Purchase(TrackEngine, 1000000); !errors.Is(err, ErrMaxLevel) {
		t.Errorf("err = %v, want ErrMaxLevel", err)
	}
	if u.SpeedBonus() != 1.6 {
		t.Errorf("SpeedBonus = %v, want 1.6", u.SpeedBonus())
	}
}

func TestUpgradesEffects(t *testing.T) {
	u := NewUpgrades(config.DefaultUpgradesConfig())
	if u.SpeedBonus() != 1.0 || u.TankCapacity() != 100 || u.CollisionFactor() != 1.0 {
		t.Errorf("stock truck: %v %v %v", u.SpeedBonus(), u.TankCapacity(), u.CollisionFactor())
	}

	if _, err := u.Purchase(TrackFuelTank, 8000); err != nil {
		t.Fatal(err)
	}
	if _, err := u.Purchase(TrackFrame, 10000); err != nil {
		t.Fatal(err)
	}
	if u.TankCapacity() != 200 {
		t.Errorf("TankCapacity = %v, want 200", u.TankCapacity())
	}
	if u.CollisionFactor() != 0.75 {
		t.Errorf("CollisionFactor = %v, want 0.75", u.CollisionFactor())
	}
	if got := u.Describe(TrackFrame); got != "25% damage reduction" {
		t.Errorf("Describe(Frame) = %q", got)
	}
	if u.MaxLevel(TrackFrame) != 3 {
		t.Errorf("MaxLevel = %d, want 3", u.MaxLevel(TrackFrame))
	}
}
