package haul

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/heavy-haul/internal/config"
	"github.com/vovakirdan/heavy-haul/internal/core"
)

// Scene is the career screen currently shown.
type Scene int

const (
	SceneContracts Scene = iota
	SceneShop
	SceneDriving
	SceneResults
)

func (s Scene) String() string {
	switch s {
	case SceneContracts:
		return "contracts"
	case SceneShop:
		return "shop"
	case SceneDriving:
		return "driving"
	case SceneResults:
		return "results"
	}
	return "unknown"
}

// Career end reasons.
const (
	EndRetired  = "retired"
	EndBankrupt = "bankrupt"
)

// CareerParams gathers everything a career is built from.
type CareerParams struct {
	Config   config.HaulConfig
	Upgrades config.UpgradesConfig
	Cities   []config.City
	Seed     int64
	TickRate int
	GameID   string
	Ledger   Ledger
}

// Career is the contract-to-contract loop: pick a job, drive it, get paid,
// upgrade the truck, repeat until retiring or going broke.
type Career struct {
	cfg        config.HaulConfig
	cities     []config.City
	gameID     string
	tickRate   int
	ledger     Ledger
	wallet     Wallet
	fuel       float64
	upgrades   *Upgrades
	gen        *Generator
	difficulty *config.DifficultyManager

	scene      Scene
	offers     []Contract
	mission    *Mission
	last       Result
	lastRoute  string
	notice     string
	deliveries int // Successful only
	missions   int
	earned     int // Sum of positive payments
	over       bool
	endReason  string
}

// NewCareer starts a career on the contracts screen.
func NewCareer(p CareerParams) (*Career, error) {
	gen, err := NewGenerator(p.Cities, p.Config.Contracts, p.Config.Economy.BaseRatePerMile, p.Seed)
	if err != nil {
		return nil, err
	}
	if p.TickRate <= 0 {
		p.TickRate = 60
	}
	if p.GameID == "" {
		p.GameID = CareerID
	}

	c := &Career{
		cfg:        p.Config,
		cities:     p.Cities,
		gameID:     p.GameID,
		tickRate:   p.TickRate,
		ledger:     p.Ledger,
		wallet:     Wallet{Cash: p.Config.Economy.StartingCash},
		fuel:       p.Config.Fuel.Start,
		upgrades:   NewUpgrades(p.Upgrades),
		gen:        gen,
		difficulty: config.NewDifficultyManager(p.Config.Difficulty),
	}
	c.newOffers()
	return c, nil
}

// Step advances the career by one tick.
func (c *Career) Step(in core.InputFrame) []string {
	if c.over {
		return nil
	}

	switch c.scene {
	case SceneContracts:
		c.stepContracts(in)
	case SceneShop:
		c.stepShop(in)
	case SceneDriving:
		return c.stepDriving(in)
	case SceneResults:
		if in.Has(core.ActionConfirm) {
			c.Continue()
		}
	}
	return nil
}

func (c *Career) stepContracts(in core.InputFrame) {
	for i, a := range []core.Action{core.ActionSelect1, core.ActionSelect2, core.ActionSelect3} {
		if in.Has(a) {
			if err := c.Accept(i); err != nil {
				c.notice = err.Error()
			}
			return
		}
	}
	switch {
	case in.Has(core.ActionRefresh):
		c.newOffers()
		c.notice = "New contracts posted"
	case in.Has(core.ActionShop):
		c.scene = SceneShop
		c.notice = ""
	case in.Has(core.ActionBack):
		c.Retire()
	}
}

func (c *Career) stepShop(in core.InputFrame) {
	for i, a := range []core.Action{core.ActionSelect1, core.ActionSelect2, core.ActionSelect3} {
		if in.Has(a) && i < len(Tracks) {
			t := Tracks[i]
			if cost, err := c.Buy(t); err != nil {
				c.notice = fmt.Sprintf("%s: %v", t, err)
			} else {
				c.notice = fmt.Sprintf("%s upgraded to level %d for %s", t, c.upgrades.Level(t), FormatMoney(cost))
			}
			return
		}
	}
	if in.Has(core.ActionBack) || in.Has(core.ActionConfirm) || in.Has(core.ActionShop) {
		c.scene = SceneContracts
		c.notice = ""
	}
}

func (c *Career) stepDriving(in core.InputFrame) []string {
	var events []string
	if in.Has(core.ActionBack) {
		c.mission.Abandon()
		events = []string{EventFailed}
	} else {
		events = c.mission.Step(in)
	}
	if c.mission.Outcome() != InProgress {
		c.settle()
	}
	return events
}

// Accept takes offer i and starts driving it.
func (c *Career) Accept(i int) error {
	if c.scene != SceneContracts {
		return errors.New("not choosing contracts")
	}
	if i < 0 || i >= len(c.offers) {
		return fmt.Errorf("no contract %d", i+1)
	}
	contract := c.offers[i]
	c.mission = NewMission(c.cfg, MissionParams{
		Contract:        contract,
		Cities:          c.cities,
		Fuel:            c.fuel,
		TankCapacity:    c.upgrades.TankCapacity(),
		EngineBonus:     c.upgrades.SpeedBonus(),
		CollisionFactor: c.upgrades.CollisionFactor(),
		DrainMultiplier: c.difficulty.DrainMultiplier(c.deliveries),
		TickRate:        c.tickRate,
	}, &c.wallet)
	c.scene = SceneDriving
	c.notice = ""
	logger.Debug("contract accepted",
		"route", contract.Route(),
		"class", contract.Class,
		"deadline_h", contract.DeadlineHours,
		"payout", contract.Pay.Total,
	)
	return nil
}

func (c *Career) settle() {
	c.last = c.mission.Result()
	c.lastRoute = c.mission.Contract.Route()
	c.fuel = c.mission.Tank.Level
	c.missions++
	if c.last.Outcome == Delivered {
		c.deliveries++
	}
	if c.last.Payment > 0 {
		c.earned += c.last.Payment
	}

	if c.ledger != nil {
		if err := c.ledger.SaveDelivery(c.mission.Record(c.gameID)); err != nil {
			logger.Warn("could not record delivery", "error", err)
		}
	}

	c.scene = SceneResults
	if c.wallet.Cash < 0 {
		c.end(EndBankrupt)
	}
}

// Continue leaves the results screen with a full tank and fresh offers.
func (c *Career) Continue() {
	if c.scene != SceneResults || c.over {
		return
	}
	c.fuel = c.cfg.Fuel.Start
	c.mission = nil
	c.newOffers()
	c.scene = SceneContracts
}

// Buy purchases the next level of an upgrade track.
func (c *Career) Buy(t Track) (int, error) {
	cost, err := c.upgrades.Purchase(t, c.wallet.Cash)
	if err != nil {
		return 0, err
	}
	c.wallet.Cash -= cost
	logger.Debug("upgrade purchased", "track", t, "level", c.upgrades.Level(t), "cost", cost)
	return cost, nil
}

// Retire ends the career voluntarily.
func (c *Career) Retire() {
	c.end(EndRetired)
}

func (c *Career) end(reason string) {
	c.over = true
	c.endReason = reason
	logger.Info("career over", "reason", reason, "cash", c.wallet.Cash, "deliveries", c.deliveries)
}

func (c *Career) newOffers() {
	c.offers = c.gen.Generate(c.cfg.Contracts.Offers, c.difficulty.DeadlineReduction(c.deliveries))
}

// Scene returns the active screen.
func (c *Career) Scene() Scene { return c.scene }

// Cash returns the balance.
func (c *Career) Cash() int { return c.wallet.Cash }

// Fuel returns the fuel level carried into the next mission.
func (c *Career) Fuel() float64 { return c.fuel }

// Offers returns the contracts on the board.
func (c *Career) Offers() []Contract { return c.offers }

// Mission returns the active or just-finished mission, if any.
func (c *Career) Mission() *Mission { return c.mission }

// LastResult returns the most recent settlement and its route.
func (c *Career) LastResult() (Result, string) { return c.last, c.lastRoute }

// Upgrades returns the truck's upgrade levels.
func (c *Career) Upgrades() *Upgrades { return c.upgrades }

// Notice returns the latest one-line feedback for menus.
func (c *Career) Notice() string { return c.notice }

// Deliveries returns the number of successful deliveries.
func (c *Career) Deliveries() int { return c.deliveries }

// Missions returns the number of finished missions.
func (c *Career) Missions() int { return c.missions }

// Over reports whether the career has ended, and why.
func (c *Career) Over() (bool, string) { return c.over, c.endReason }

// Score is the profit over the starting balance, never negative.
func (c *Career) Score() int {
	return max(0, c.wallet.Cash-c.cfg.Economy.StartingCash)
}

// SetLedger changes where finished deliveries are recorded.
func (c *Career) SetLedger(l Ledger) { c.ledger = l }

// Earned returns the sum of positive mission payments.
func (c *Career) Earned() int { return c.earned }
