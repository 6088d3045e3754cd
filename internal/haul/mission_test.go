package haul

import (
	"slices"
	"strings"
	"testing"

	"github.com/vovakirdan/heavy-haul/internal/config"
	"github.com/vovakirdan/heavy-haul/internal/core"
)

// farZone keeps the drop-off out of reach so tests control the outcome.
func farZone(cfg *config.HaulConfig) {
	cfg.World.Delivery = config.DeliveryConfig{Radius: 10, Fixed: true, X: 760, Y: 560}
}

func newTestMission(cfg config.HaulConfig, fuel float64, wallet *Wallet) *Mission {
	contract := NewContract(tampa, atlanta, Standard, "Lumber", 5, cfg.Economy.BaseRatePerMile)
	return NewMission(cfg, MissionParams{
		Contract: contract,
		Cities:   config.DefaultCities(),
		Fuel:     fuel,
		TickRate: 60,
	}, wallet)
}

func TestMissionDelivery(t *testing.T) {
	cfg := config.DefaultHaulConfig()
	cfg.World.Delivery = config.DeliveryConfig{Radius: 50, Fixed: true, X: 160, Y: 300}
	wallet := &Wallet{Cash: 1000}
	m := newTestMission(cfg, 100, wallet)

	var events []string
	for i := 0; i < 200 && m.Outcome() == InProgress; i++ {
		events = append(events, m.Step(frame(core.ActionAccelerate))...)
	}

	if m.Outcome() != Delivered {
		t.Fatalf("Outcome = %v, want delivered", m.Outcome())
	}
	if !slices.Contains(events, EventDelivered) {
		t.Errorf("events %v missing %q", events, EventDelivered)
	}

	r := m.Result()
	if r.Payout != m.Contract.Pay.Total {
		t.Errorf("Payout = %d, want %d", r.Payout, m.Contract.Pay.Total)
	}
	// Deadline is 5h and one tick is one game second at 60 ticks/s
	wantBonus := int((5*3600 - r.Elapsed) / 60 * 10)
	if r.TimeBonus != wantBonus {
		t.Errorf("TimeBonus = %d, want %d", r.TimeBonus, wantBonus)
	}
	if r.Payment != r.Payout+r.TimeBonus {
		t.Errorf("Payment = %d, want payout + bonus", r.Payment)
	}
	if wallet.Cash != 1000+r.Payment {
		t.Errorf("Cash = %d, want %d", wallet.Cash, 1000+r.Payment)
	}

	// Finished missions ignore further input
	if ev := m.Step(frame(core.ActionAccelerate)); ev != nil {
		t.Errorf("finished mission raised %v", ev)
	}
}

func TestMissionBridgePenaltyOnce(t *testing.T) {
	cfg := config.DefaultHaulConfig()
	farZone(&cfg)
	wallet := &Wallet{Cash: 10000}
	m := newTestMission(cfg, 100, wallet)
	m.collisionFactor = 0.5
	m.Truck.X, m.Truck.Y = 440, 280

	first := m.Step(frame())
	second := m.Step(frame())

	if !slices.Contains(first, EventBridgeStrike) {
		t.Errorf("first tick events %v, want bridge strike", first)
	}
	if slices.Contains(second, EventBridgeStrike) {
		t.Error("bridge penalty applied twice")
	}
	if len(m.Penalties()) != 1 || m.Penalties()[0].Amount != 2500 {
		t.Errorf("penalties = %+v, want one of 2500", m.Penalties())
	}
	if m.Outcome() != InProgress {
		t.Errorf("career bridge strike should not end the mission, got %v", m.Outcome())
	}

	m.Abandon()
	r := m.Result()
	if r.Outcome != Failed || r.Reason != ReasonAbandoned {
		t.Errorf("Result = %+v", r)
	}
	if r.Payment != -2500 || wallet.Cash != 7500 {
		t.Errorf("Payment = %d, cash = %d; want -2500, 7500", r.Payment, wallet.Cash)
	}
}

func TestMissionBridgeStrikeFailsSprint(t *testing.T) {
	cfg := config.DefaultSprintConfig()
	wallet := &Wallet{Cash: 10000}
	m := newTestMission(cfg, 100, wallet)
	m.Truck.X, m.Truck.Y = 440, 280

	events := m.Step(frame())
	if m.Outcome() != Failed || m.Result().Reason != ReasonBridgeStrike {
		t.Fatalf("Outcome = %v (%s), want failed by bridge strike", m.Outcome(), m.Result().Reason)
	}
	if !slices.Contains(events, EventFailed) {
		t.Errorf("events %v missing failure", events)
	}
	if wallet.Cash != 5000 {
		t.Errorf("Cash = %d, want 5000", wallet.Cash)
	}
}

func TestMissionOutOfFuel(t *testing.T) {
	cfg := config.DefaultHaulConfig()
	farZone(&cfg)
	m := newTestMission(cfg, 0, &Wallet{Cash: 100})

	m.Step(frame(core.ActionAccelerate))
	if m.Outcome() != Failed || m.Result().Reason != ReasonOutOfFuel {
		t.Errorf("Outcome = %v (%s), want out of fuel", m.Outcome(), m.Result().Reason)
	}
	if m.Result().Payment != 0 {
		t.Errorf("Payment = %d, want 0", m.Result().Payment)
	}
}

func TestMissionEmptyTankStallsSprint(t *testing.T) {
	cfg := config.DefaultSprintConfig()
	m := newTestMission(cfg, 0, &Wallet{Cash: 100})

	for i := 0; i < 10; i++ {
		m.Step(frame(core.ActionAccelerate))
	}
	if m.Outcome() != InProgress {
		t.Errorf("Outcome = %v, sprint should stall rather than fail", m.Outcome())
	}
	if m.Truck.Speed != 0 || m.Truck.X != cfg.World.StartX {
		t.Errorf("stalled truck moved: speed %v x %v", m.Truck.Speed, m.Truck.X)
	}
}

func TestMissionOutOfFuelNoticeOnEmpty(t *testing.T) {
	cfg := config.DefaultSprintConfig()
	m := newTestMission(cfg, 100, &Wallet{Cash: 100})
	for i := 0; i < 100; i++ {
		m.Step(frame())
	}

	notices := func() int {
		n := 0
		for _, msg := range m.Messages.Active() {
			if strings.HasPrefix(msg.Text, "OUT OF FUEL") {
				n++
			}
		}
		return n
	}

	m.Tank.Level = 0
	events := m.Step(frame())
	if !slices.Contains(events, EventOutOfFuel) {
		t.Errorf("events %v, want %s on the tick the tank ran dry", events, EventOutOfFuel)
	}
	if notices() != 1 {
		t.Fatalf("out of fuel notice not shown on the first empty tick")
	}

	for i := 0; i < 10*m.tickRate; i++ {
		if ev := m.Step(frame()); slices.Contains(ev, EventOutOfFuel) {
			t.Fatalf("out of fuel event repeated on stalled tick %d", i+2)
		}
		if n := notices(); n > 1 {
			t.Fatalf("%d out of fuel notices stacked", n)
		}
	}
	if notices() != 1 {
		t.Error("notice not repeated while stalled")
	}
}

func TestMissionDeadline(t *testing.T) {
	cfg := config.DefaultHaulConfig()
	farZone(&cfg)
	cfg.Mission.TimeLimit = 1 // game second; one tick is one game second
	m := newTestMission(cfg, 100, &Wallet{})

	m.Step(frame())
	if m.Outcome() != InProgress {
		t.Fatalf("failed before the deadline passed")
	}
	m.Step(frame())
	if m.Outcome() != Failed || m.Result().Reason != ReasonDeadline {
		t.Errorf("Outcome = %v (%s), want deadline missed", m.Outcome(), m.Result().Reason)
	}
	if m.Result().TimeBonus != 0 {
		t.Errorf("failed mission earned a time bonus")
	}
}

func TestMissionRefuel(t *testing.T) {
	cfg := config.DefaultHaulConfig()
	farZone(&cfg)
	wallet := &Wallet{Cash: 1000}
	m := newTestMission(cfg, 40, wallet)
	m.Truck.X, m.Truck.Y = 140, 230

	events := m.Step(frame(core.ActionRefuel))
	if !slices.Contains(events, EventRefuel) {
		t.Fatalf("events %v, want refuel", events)
	}
	if m.Tank.Level != 100 || wallet.Cash != 950 {
		t.Errorf("level %v cash %d, want 100 and 950", m.Tank.Level, wallet.Cash)
	}

	// Away from a station the key does nothing
	m.Tank.Level = 50
	m.Truck.X, m.Truck.Y = 400, 300
	if ev := m.Step(frame(core.ActionRefuel)); slices.Contains(ev, EventRefuel) {
		t.Error("refuelled away from a station")
	}
}

func TestMissionRefuelRefusedWithoutCash(t *testing.T) {
	cfg := config.DefaultHaulConfig()
	farZone(&cfg)
	wallet := &Wallet{Cash: 10}
	m := newTestMission(cfg, 40, wallet)
	m.Truck.X, m.Truck.Y = 140, 230

	m.Step(frame(core.ActionRefuel))
	if m.Tank.Level != 40 || wallet.Cash != 10 {
		t.Errorf("level %v cash %d, refuel should be refused", m.Tank.Level, wallet.Cash)
	}
}

func TestMissionOffRoadSlowsAndWarns(t *testing.T) {
	cfg := config.DefaultHaulConfig()
	farZone(&cfg)
	m := newTestMission(cfg, 100, &Wallet{})
	m.Truck.X, m.Truck.Y = 400, 150 // field north of the interstate
	m.OnRoad = m.World.OnRoad(m.Truck.X, m.Truck.Y)

	var events []string
	for i := 0; i < 200 && m.Outcome() == InProgress; i++ {
		events = append(events, m.Step(frame(core.ActionAccelerate, core.ActionSteerLeft))...)
	}
	if m.Truck.Speed > 2.0+1e-9 {
		t.Errorf("off-road speed %v exceeds half of top speed", m.Truck.Speed)
	}
	if !slices.Contains(events, EventOffRoad) {
		t.Error("no off-road warning after three seconds off road")
	}
}

func TestMissionRecord(t *testing.T) {
	cfg := config.DefaultHaulConfig()
	farZone(&cfg)
	m := newTestMission(cfg, 100, &Wallet{})
	m.Abandon()

	d := m.Record(CareerID)
	if d.GameID != CareerID || d.Origin != "Tampa" || d.Destination != "Atlanta" {
		t.Errorf("Record = %+v", d)
	}
	if d.Delivered || d.Status() != "failed" || d.Reason != ReasonAbandoned {
		t.Errorf("status %q reason %q", d.Status(), d.Reason)
	}
	if d.Class != "Standard" || d.Miles != 28 {
		t.Errorf("class %q miles %v", d.Class, d.Miles)
	}
}
