package haul

import (
	"github.com/vovakirdan/heavy-haul/internal/config"
	"github.com/vovakirdan/heavy-haul/internal/core"
)

// Sprint is a single timed run to a fixed drop-off with no contract board.
type Sprint struct {
	cfg     config.HaulConfig
	gameID  string
	ledger  Ledger
	wallet  Wallet
	mission *Mission
}

// SprintContract is the job every sprint carries.
func SprintContract(cfg config.HaulConfig) Contract {
	origin := config.City{Name: "Depot", X: cfg.World.StartX, Y: cfg.World.StartY}
	dest := config.City{Name: "Drop Zone", X: cfg.World.Delivery.X, Y: cfg.World.Delivery.Y}
	c := NewContract(origin, dest, Standard, "Express Freight", 0, cfg.Economy.BaseRatePerMile)
	c.Pay = Payout{Base: float64(cfg.Mission.FixedPay), DeadlineMultiplier: 1, Total: cfg.Mission.FixedPay}
	return c
}

// NewSprint starts the run immediately.
func NewSprint(cfg config.HaulConfig, tickRate int, gameID string, ledger Ledger) *Sprint {
	if gameID == "" {
		gameID = SprintID
	}
	s := &Sprint{
		cfg:    cfg,
		gameID: gameID,
		ledger: ledger,
		wallet: Wallet{Cash: cfg.Economy.StartingCash},
	}
	s.mission = NewMission(cfg, MissionParams{
		Contract:     SprintContract(cfg),
		Fuel:         cfg.Fuel.Start,
		TankCapacity: 100,
		TickRate:     tickRate,
	}, &s.wallet)
	return s
}

// Step advances the run by one tick.
func (s *Sprint) Step(in core.InputFrame) []string {
	if s.mission.Outcome() != InProgress {
		return nil
	}
	var events []string
	if in.Has(core.ActionBack) {
		s.mission.Abandon()
		events = []string{EventFailed}
	} else {
		events = s.mission.Step(in)
	}
	if s.mission.Outcome() != InProgress && s.ledger != nil {
		if err := s.ledger.SaveDelivery(s.mission.Record(s.gameID)); err != nil {
			logger.Warn("could not record delivery", "error", err)
		}
	}
	return events
}

// Mission returns the run.
func (s *Sprint) Mission() *Mission { return s.mission }

// Cash returns the balance.
func (s *Sprint) Cash() int { return s.wallet.Cash }

// Over reports whether the run has finished.
func (s *Sprint) Over() bool { return s.mission.Outcome() != InProgress }

// Score is the run's payment, never negative.
func (s *Sprint) Score() int {
	if !s.Over() {
		return 0
	}
	return max(0, s.mission.Result().Payment)
}

// SetLedger changes where the finished run is recorded.
func (s *Sprint) SetLedger(l Ledger) { s.ledger = l }
