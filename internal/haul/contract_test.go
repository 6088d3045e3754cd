package haul

import (
	"testing"

	"github.com/vovakirdan/heavy-haul/internal/config"
)

var (
	tampa   = config.City{Name: "Tampa", X: 100, Y: 420}
	atlanta = config.City{Name: "Atlanta", X: 240, Y: 280}
	dallas  = config.City{Name: "Dallas", X: 120, Y: 360}
)

func TestRouteMiles(t *testing.T) {
	if got := RouteMiles(tampa, atlanta); got != 28 {
		t.Errorf("Tampa-Atlanta = %v miles, want 28", got)
	}
	if got := RouteMiles(atlanta, tampa); got != 28 {
		t.Errorf("distance should be symmetric, got %v", got)
	}
	if got := RouteMiles(tampa, dallas); got != 8 {
		t.Errorf("Tampa-Dallas = %v miles, want 8", got)
	}
}

func TestDeadlineMultiplier(t *testing.T) {
	tests := []struct {
		hours int
		want  float64
	}{
		{3, 1.3},
		{4, 1.3},
		{5, 1.15},
		{6, 1.15},
		{7, 1.0},
		{15, 1.0},
	}
	for _, tt := range tests {
		if got := DeadlineMultiplier(tt.hours); got != tt.want {
			t.Errorf("DeadlineMultiplier(%d) = %v, want %v", tt.hours, got, tt.want)
		}
	}
}

func TestComputePayout(t *testing.T) {
	tests := []struct {
		name  string
		from  config.City
		to    config.City
		class CargoClass
		hours int
		want  int
	}{
		{"standard relaxed", tampa, atlanta, Standard, 8, 184},
		{"oversize medium", tampa, atlanta, Oversize, 5, 280},
		{"superload rush", tampa, atlanta, Superload, 4, 414},
		{"short standard", tampa, dallas, Standard, 10, 52},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewContract(tt.from, tt.to, tt.class, "Lumber", tt.hours, 6.0)
			if c.Pay.Total != tt.want {
				t.Errorf("payout = %d, want %d (%+v)", c.Pay.Total, tt.want, c.Pay)
			}
		})
	}
}

func TestPayoutFactors(t *testing.T) {
	p := ComputePayout(6.0, 10, Superload, 12)
	if p.Base != 60 {
		t.Errorf("Base = %v, want 60", p.Base)
	}
	if p.OversizeFactor != 0.40 {
		t.Errorf("OversizeFactor = %v, want 0.40", p.OversizeFactor)
	}
	if p.WeightFactor != 0.5 {
		t.Errorf("WeightFactor = %v, want 0.5", p.WeightFactor)
	}
	if p.DeadlineMultiplier != 1.0 {
		t.Errorf("DeadlineMultiplier = %v, want 1.0", p.DeadlineMultiplier)
	}
}

func TestContractRoute(t *testing.T) {
	c := NewContract(tampa, atlanta, Standard, "Lumber", 6, 6.0)
	if c.Route() != "Tampa → Atlanta" {
		t.Errorf("Route() = %q", c.Route())
	}
	if c.DeadlineSeconds() != 6*3600 {
		t.Errorf("DeadlineSeconds() = %v", c.DeadlineSeconds())
	}
}

func TestCargoClass(t *testing.T) {
	for _, c := range Classes {
		parsed, err := ParseCargoClass(c.String())
		if err != nil || parsed != c {
			t.Errorf("ParseCargoClass(%q) = %v, %v", c.String(), parsed, err)
		}
		if len(c.Descriptions()) == 0 {
			t.Errorf("%s has no cargo descriptions", c)
		}
	}
	if c, err := ParseCargoClass("superload"); err != nil || c != Superload {
		t.Errorf("ParseCargoClass(superload) = %v, %v", c, err)
	}
	if _, err := ParseCargoClass("Gigaload"); err == nil {
		t.Error("expected error for unknown class")
	}
}
