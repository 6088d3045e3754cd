package haul

import (
	"errors"
	"testing"

	"github.com/vovakirdan/heavy-haul/internal/config"
	"github.com/vovakirdan/heavy-haul/internal/core"
)

type memLedger struct {
	records []Delivery
	err     error
}

func (l *memLedger) SaveDelivery(d Delivery) error {
	if l.err != nil {
		return l.err
	}
	l.records = append(l.records, d)
	return nil
}

func newTestCareer(t *testing.T, mutate func(*config.HaulConfig), ledger Ledger) *Career {
	t.Helper()
	cfg := config.DefaultHaulConfig()
	farZone(&cfg)
	if mutate != nil {
		mutate(&cfg)
	}
	c, err := NewCareer(CareerParams{
		Config:   cfg,
		Upgrades: config.DefaultUpgradesConfig(),
		Cities:   config.DefaultCities(),
		Seed:     7,
		TickRate: 60,
		Ledger:   ledger,
	})
	if err != nil {
		t.Fatalf("NewCareer: %v", err)
	}
	return c
}

func TestCareerStartsOnContractBoard(t *testing.T) {
	c := newTestCareer(t, nil, nil)
	if c.Scene() != SceneContracts {
		t.Errorf("Scene = %v, want contracts", c.Scene())
	}
	if len(c.Offers()) != 3 {
		t.Errorf("got %d offers, want 3", len(c.Offers()))
	}
	if c.Cash() != 10000 || c.Fuel() != 100 {
		t.Errorf("cash %d fuel %v", c.Cash(), c.Fuel())
	}
	if c.Score() != 0 {
		t.Errorf("Score = %d, want 0", c.Score())
	}
}

func TestCareerNewCareerNeedsCities(t *testing.T) {
	_, err := NewCareer(CareerParams{
		Config: config.DefaultHaulConfig(),
		Cities: []config.City{tampa},
	})
	if !errors.Is(err, ErrTooFewCities) {
		t.Errorf("err = %v, want ErrTooFewCities", err)
	}
}

func TestCareerAcceptAndAbandon(t *testing.T) {
	ledger := &memLedger{}
	c := newTestCareer(t, nil, ledger)
	offer := c.Offers()[1]

	c.Step(frame(core.ActionSelect2))
	if c.Scene() != SceneDriving {
		t.Fatalf("Scene = %v, want driving", c.Scene())
	}
	if c.Mission().Contract.Route() != offer.Route() {
		t.Errorf("drove %s, accepted %s", c.Mission().Contract.Route(), offer.Route())
	}

	c.Step(frame(core.ActionBack))
	if c.Scene() != SceneResults {
		t.Fatalf("Scene = %v, want results", c.Scene())
	}
	r, route := c.LastResult()
	if r.Reason != ReasonAbandoned || route != offer.Route() {
		t.Errorf("LastResult = %+v %q", r, route)
	}
	if c.Missions() != 1 || c.Deliveries() != 0 {
		t.Errorf("missions %d deliveries %d", c.Missions(), c.Deliveries())
	}
	if len(ledger.records) != 1 || ledger.records[0].GameID != CareerID {
		t.Fatalf("ledger = %+v", ledger.records)
	}

	c.Step(frame(core.ActionConfirm))
	if c.Scene() != SceneContracts || c.Mission() != nil {
		t.Errorf("Continue left scene %v mission %v", c.Scene(), c.Mission())
	}
	if c.Fuel() != 100 {
		t.Errorf("Fuel = %v, want a full tank", c.Fuel())
	}
}

func TestCareerLedgerErrorDoesNotStopPlay(t *testing.T) {
	c := newTestCareer(t, nil, &memLedger{err: errors.New("disk full")})
	c.Step(frame(core.ActionSelect1))
	c.Step(frame(core.ActionBack))
	if c.Scene() != SceneResults {
		t.Errorf("Scene = %v, want results", c.Scene())
	}
}

func TestCareerAcceptOutOfRange(t *testing.T) {
	c := newTestCareer(t, func(cfg *config.HaulConfig) { cfg.Contracts.Offers = 2 }, nil)
	c.Step(frame(core.ActionSelect3))
	if c.Scene() != SceneContracts {
		t.Errorf("Scene = %v, want contracts", c.Scene())
	}
	if c.Notice() == "" {
		t.Error("expected a notice for a missing offer")
	}
}

func TestCareerRefreshOffers(t *testing.T) {
	c := newTestCareer(t, nil, nil)
	c.Step(frame(core.ActionRefresh))
	if len(c.Offers()) != 3 || c.Notice() != "New contracts posted" {
		t.Errorf("offers %d notice %q", len(c.Offers()), c.Notice())
	}
}

func TestCareerShop(t *testing.T) {
	c := newTestCareer(t, nil, nil)
	c.Step(frame(core.ActionShop))
	if c.Scene() != SceneShop {
		t.Fatalf("Scene = %v, want shop", c.Scene())
	}

	// Engine level 2 costs 12000, more than the starting balance
	c.Step(frame(core.ActionSelect1))
	if c.Upgrades().Level(TrackEngine) != 1 || c.Cash() != 10000 {
		t.Errorf("engine %d cash %d after refused purchase", c.Upgrades().Level(TrackEngine), c.Cash())
	}

	c.Step(frame(core.ActionSelect2))
	if c.Upgrades().Level(TrackFuelTank) != 2 || c.Cash() != 2000 {
		t.Errorf("tank %d cash %d, want 2 and 2000", c.Upgrades().Level(TrackFuelTank), c.Cash())
	}

	c.Step(frame(core.ActionBack))
	if c.Scene() != SceneContracts {
		t.Errorf("Scene = %v, want contracts", c.Scene())
	}
	if over, _ := c.Over(); over {
		t.Error("leaving the shop ended the career")
	}
}

func TestCareerRetire(t *testing.T) {
	c := newTestCareer(t, nil, nil)
	c.Step(frame(core.ActionBack))
	over, reason := c.Over()
	if !over || reason != EndRetired {
		t.Errorf("Over = %v %q, want retired", over, reason)
	}
	if ev := c.Step(frame(core.ActionSelect1)); ev != nil || c.Scene() != SceneContracts {
		t.Error("ended career still accepts input")
	}
}

func TestCareerBankrupt(t *testing.T) {
	c := newTestCareer(t, func(cfg *config.HaulConfig) { cfg.Economy.StartingCash = 1000 }, nil)
	if err := c.Accept(0); err != nil {
		t.Fatalf("Accept: %v", err)
	}
	m := c.Mission()
	m.Truck.X, m.Truck.Y = 440, 280
	c.Step(frame())
	c.Step(frame(core.ActionBack))

	if c.Cash() != -4000 {
		t.Errorf("Cash = %d, want -4000", c.Cash())
	}
	over, reason := c.Over()
	if !over || reason != EndBankrupt {
		t.Errorf("Over = %v %q, want bankrupt", over, reason)
	}
	if c.Score() != 0 {
		t.Errorf("Score = %d, want 0", c.Score())
	}
}

func TestCareerDeliveryEarns(t *testing.T) {
	c := newTestCareer(t, func(cfg *config.HaulConfig) {
		cfg.World.Delivery = config.DeliveryConfig{Radius: 50, Fixed: true, X: 160, Y: 300}
	}, nil)
	c.Step(frame(core.ActionSelect1))
	for i := 0; i < 200 && c.Scene() == SceneDriving; i++ {
		c.Step(frame(core.ActionAccelerate))
	}
	if c.Scene() != SceneResults {
		t.Fatalf("Scene = %v, want results", c.Scene())
	}
	r, _ := c.LastResult()
	if r.Outcome != Delivered || r.Payment <= 0 {
		t.Fatalf("LastResult = %+v", r)
	}
	if c.Deliveries() != 1 || c.Earned() != r.Payment {
		t.Errorf("deliveries %d earned %d", c.Deliveries(), c.Earned())
	}
	if c.Score() != r.Payment {
		t.Errorf("Score = %d, want %d", c.Score(), r.Payment)
	}
}

func TestCareerFrameUpgradeSoftensBridgeStrike(t *testing.T) {
	c := newTestCareer(t, func(cfg *config.HaulConfig) { cfg.Economy.StartingCash = 20000 }, nil)

	c.Step(frame(core.ActionShop))
	c.Step(frame(core.ActionSelect3))
	if c.Upgrades().Level(TrackFrame) != 2 || c.Cash() != 10000 {
		t.Fatalf("frame %d cash %d, want 2 and 10000", c.Upgrades().Level(TrackFrame), c.Cash())
	}
	c.Step(frame(core.ActionBack))

	c.Step(frame(core.ActionSelect1))
	if c.Scene() != SceneDriving {
		t.Fatalf("Scene = %v, want driving", c.Scene())
	}
	m := c.Mission()
	m.Truck.X, m.Truck.Y = 440, 280
	c.Step(frame())

	penalties := m.Penalties()
	if len(penalties) != 1 || penalties[0].Amount != 3750 {
		t.Fatalf("penalties = %+v, want one of 3750", penalties)
	}

	c.Step(frame(core.ActionBack))
	r, _ := c.LastResult()
	if r.PenaltyTotal() != 3750 {
		t.Errorf("PenaltyTotal = %d, want 3750", r.PenaltyTotal())
	}
	if c.Cash() != 6250 {
		t.Errorf("Cash = %d, want 6250", c.Cash())
	}
}
