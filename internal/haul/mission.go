package haul

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/heavy-haul/internal/config"
	"github.com/vovakirdan/heavy-haul/internal/core"
)

// Outcome is the state of a mission.
type Outcome int

const (
	InProgress Outcome = iota
	Delivered
	Failed
)

func (o Outcome) String() string {
	switch o {
	case InProgress:
		return "in progress"
	case Delivered:
		return "delivered"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// Failure reasons.
const (
	ReasonOutOfFuel    = "out of fuel"
	ReasonBridgeStrike = "bridge strike"
	ReasonDeadline     = "deadline missed"
	ReasonAbandoned    = "abandoned"
)

// Tick events reported in core.StepResult.
const (
	EventDelivered    = "delivered"
	EventFailed       = "failed"
	EventBridgeStrike = "bridge_strike"
	EventRefuel       = "refuel"
	EventOffRoad      = "off_road"
	EventOutOfFuel    = "out_of_fuel"
)

// Penalty is a charge deducted from the payment.
type Penalty struct {
	Reason string
	Amount int
}

// Result summarises a finished mission.
type Result struct {
	Outcome   Outcome
	Reason    string
	Payout    int
	TimeBonus int
	Penalties []Penalty
	Payment   int     // Net change to cash, negative when penalties exceed earnings
	Elapsed   float64 // Game seconds
}

// PenaltyTotal sums the penalties.
func (r Result) PenaltyTotal() int {
	total := 0
	for _, p := range r.Penalties {
		total += p.Amount
	}
	return total
}

// Wallet is the cash balance shared between a career and its missions.
type Wallet struct {
	Cash int
}

// MissionParams carries the career state a mission starts from.
type MissionParams struct {
	Contract        Contract
	Cities          []config.City
	Fuel            float64
	TankCapacity    float64
	EngineBonus     float64
	CollisionFactor float64
	DrainMultiplier float64
	TickRate        int
}

// Mission is one drive from pickup to drop-off, advanced at a fixed step.
type Mission struct {
	Contract Contract
	Truck    *Truck
	Tank     *Tank
	World    *World
	Zone     DeliveryZone
	Messages *Messages

	OnRoad  bool
	Station *Station // Station whose zone the truck is in, nil if none

	cfg             config.HaulConfig
	wallet          *Wallet
	latch           *Latch
	tickRate        int
	ticks           int
	penalties       []Penalty
	bridgeHit       bool
	offRoadTime     float64 // Real seconds since the last warning
	stalledTicks    int     // Ticks spent with an empty tank, reset on refuel
	collisionFactor float64
	drainMultiplier float64
	outcome         Outcome
	reason          string
	result          Result
}

// NewMission starts a mission with the truck parked at the start point.
func NewMission(cfg config.HaulConfig, p MissionParams, wallet *Wallet) *Mission {
	if p.TickRate <= 0 {
		p.TickRate = 60
	}
	if p.EngineBonus <= 0 {
		p.EngineBonus = 1
	}
	if p.CollisionFactor <= 0 {
		p.CollisionFactor = 1
	}
	if p.DrainMultiplier <= 0 {
		p.DrainMultiplier = 1
	}

	truck := NewTruck(cfg.Truck, cfg.World, cfg.World.StartX, cfg.World.StartY)
	truck.EngineBonus = p.EngineBonus

	zone := DeliveryZone{Radius: cfg.World.Delivery.Radius}
	if cfg.World.Delivery.Fixed {
		zone.X, zone.Y = cfg.World.Delivery.X, cfg.World.Delivery.Y
	} else {
		zone.X, zone.Y = Project(p.Contract.Destination, p.Cities, cfg.World.MapArea)
	}

	m := &Mission{
		Contract:        p.Contract,
		Truck:           truck,
		Tank:            NewTank(cfg.Fuel, p.Fuel, p.TankCapacity),
		World:           NewWorld(cfg),
		Zone:            zone,
		Messages:        NewMessages(p.TickRate),
		cfg:             cfg,
		wallet:          wallet,
		latch:           NewLatch(cfg.Controls.HoldTicks),
		tickRate:        p.TickRate,
		collisionFactor: p.CollisionFactor,
		drainMultiplier: p.DrainMultiplier,
	}
	m.OnRoad = m.World.OnRoad(truck.X, truck.Y)
	m.Messages.Add(fmt.Sprintf("Deliver %s to %s!", p.Contract.Cargo, p.Contract.Destination.Name), core.ColorGreen, 3)
	return m
}

// Step advances the mission by one tick and returns the events it raised.
func (m *Mission) Step(in core.InputFrame) []string {
	if m.outcome != InProgress {
		return nil
	}
	var events []string
	m.ticks++
	m.Messages.Tick()
	dt := 1.0 / float64(m.tickRate)

	ctrl := m.latch.Update(in)

	m.checkStation()
	if in.Has(core.ActionRefuel) || in.Has(core.ActionRefresh) {
		if m.refuel() {
			events = append(events, EventRefuel)
		}
	}

	if m.Tank.Empty() {
		if m.cfg.Mission.EmptyTankFails {
			m.fail(ReasonOutOfFuel)
			return append(events, EventFailed)
		}
		m.Truck.Stop()
		if m.stalledTicks == 0 {
			events = append(events, EventOutOfFuel)
		}
		if m.stalledTicks%(m.tickRate*5) == 0 {
			m.Messages.Add("OUT OF FUEL! Find a fuel station!", core.ColorRed, 5)
		}
		m.stalledTicks++
	} else {
		m.stalledTicks = 0
		mult := 1.0
		if !m.OnRoad {
			mult = m.cfg.OffRoad.SpeedMultiplier
		}
		m.Truck.Update(ctrl, mult)
		m.OnRoad = m.World.OnRoad(m.Truck.X, m.Truck.Y)
		m.Tank.Drain(m.Truck.Speed, m.OnRoad, m.drainMultiplier)
	}

	if !m.OnRoad && math.Abs(m.Truck.Speed) > 0 {
		m.offRoadTime += dt
		if m.offRoadTime > m.cfg.OffRoad.WarningSeconds {
			m.Messages.Add("OFF-ROAD: Reduced speed!", core.ColorYellow, 2)
			m.offRoadTime = 0
			events = append(events, EventOffRoad)
		}
	} else {
		m.offRoadTime = 0
	}

	if b, hit := m.World.BridgeStrike(m.Truck.Rect(), m.Truck.Height()); hit && !m.bridgeHit {
		m.bridgeHit = true
		amount := int(float64(m.cfg.Economy.BridgePenalty) * m.collisionFactor)
		m.penalties = append(m.penalties, Penalty{Reason: "Bridge strike: " + b.Name, Amount: amount})
		m.Messages.Add(fmt.Sprintf("BRIDGE STRIKE! Penalty: %s", FormatMoney(amount)), core.ColorRed, 4)
		events = append(events, EventBridgeStrike)
		if m.cfg.Mission.BridgeStrikeFails {
			m.fail(ReasonBridgeStrike)
			return append(events, EventFailed)
		}
	}

	if m.Zone.Contains(m.Truck.X, m.Truck.Y) {
		m.finish(Delivered, "")
		return append(events, EventDelivered)
	}

	if m.Elapsed() > m.Deadline() {
		m.fail(ReasonDeadline)
		return append(events, EventFailed)
	}
	return events
}

func (m *Mission) checkStation() {
	s, ok := m.World.StationNear(m.Truck.Rect())
	if !ok {
		m.Station = nil
		return
	}
	if m.Station == nil && !m.Tank.Full() {
		m.Messages.Add(fmt.Sprintf("Press F to refuel (%s)", FormatMoney(m.Tank.RefuelPrice())), core.ColorYellow, 3)
	}
	m.Station = &s
}

func (m *Mission) refuel() bool {
	if m.Station == nil {
		return false
	}
	price, err := m.Tank.Refuel(m.wallet.Cash)
	if err != nil {
		if errors.Is(err, ErrCannotAfford) {
			m.Messages.Add("Not enough cash!", core.ColorRed, 3)
		}
		return false
	}
	m.wallet.Cash -= price
	m.Messages.Add(fmt.Sprintf("Refueled! Cost: %s", FormatMoney(price)), core.ColorYellow, 3)
	logger.Debug("refuel", "station", m.Station.Name, "price", price, "cash", m.wallet.Cash)
	return true
}

// Abandon gives up the mission.
func (m *Mission) Abandon() {
	if m.outcome == InProgress {
		m.fail(ReasonAbandoned)
	}
}

func (m *Mission) fail(reason string) {
	m.Truck.Stop()
	m.finish(Failed, reason)
}

// finish settles the payment: on delivery payout + time bonus - penalties,
// on failure only the penalties are charged.
func (m *Mission) finish(o Outcome, reason string) {
	m.outcome = o
	m.reason = reason
	m.latch.Release()

	r := Result{
		Outcome:   o,
		Reason:    reason,
		Penalties: append([]Penalty(nil), m.penalties...),
		Elapsed:   m.Elapsed(),
	}
	if o == Delivered {
		r.Payout = m.Contract.Pay.Total
		if m.cfg.Mission.FixedPay > 0 {
			r.Payout = m.cfg.Mission.FixedPay
		}
		r.TimeBonus = int(m.Remaining() / 60 * m.cfg.Economy.TimeBonusPerMinute)
		m.Messages.Add("DELIVERY COMPLETE!", core.ColorGreen, 5)
	} else {
		m.Messages.Add("MISSION FAILED: "+reason, core.ColorRed, 5)
	}
	r.Payment = r.Payout + r.TimeBonus - r.PenaltyTotal()
	m.wallet.Cash += r.Payment
	m.result = r

	logger.Debug("mission finished",
		"route", m.Contract.Route(),
		"outcome", o,
		"reason", reason,
		"payment", r.Payment,
		"elapsed", r.Elapsed,
	)
}

// Outcome returns the mission state.
func (m *Mission) Outcome() Outcome {
	return m.outcome
}

// Result returns the settlement; valid once the mission is over.
func (m *Mission) Result() Result {
	return m.result
}

// Elapsed returns game seconds since pickup.
func (m *Mission) Elapsed() float64 {
	return float64(m.ticks) / float64(m.tickRate) * m.timeScale()
}

// Deadline returns the time limit in game seconds.
func (m *Mission) Deadline() float64 {
	if m.cfg.Mission.TimeLimit > 0 {
		return m.cfg.Mission.TimeLimit
	}
	return m.Contract.DeadlineSeconds()
}

// Remaining returns game seconds left before the deadline.
func (m *Mission) Remaining() float64 {
	return math.Max(0, m.Deadline()-m.Elapsed())
}

// RealRemaining returns wall-clock seconds left at the current tick rate.
func (m *Mission) RealRemaining() float64 {
	return m.Remaining() / m.timeScale()
}

// BridgeHit reports whether the bridge penalty has been charged.
func (m *Mission) BridgeHit() bool {
	return m.bridgeHit
}

// Penalties returns the charges so far.
func (m *Mission) Penalties() []Penalty {
	return m.penalties
}

// DistanceToZone returns the straight-line distance to the drop-off in
// world units.
func (m *Mission) DistanceToZone() float64 {
	return core.Distance(m.Truck.X, m.Truck.Y, m.Zone.X, m.Zone.Y)
}

// Record converts the finished mission into a ledger entry.
func (m *Mission) Record(gameID string) Delivery {
	r := m.result
	return Delivery{
		GameID:         gameID,
		Origin:         m.Contract.Origin.Name,
		Destination:    m.Contract.Destination.Name,
		Cargo:          m.Contract.Cargo,
		Class:          m.Contract.Class.String(),
		DeadlineHours:  m.Contract.DeadlineHours,
		Miles:          m.Contract.Miles,
		Payout:         r.Payout,
		TimeBonus:      r.TimeBonus,
		Penalties:      r.PenaltyTotal(),
		Payment:        r.Payment,
		Delivered:      r.Outcome == Delivered,
		Reason:         r.Reason,
		MissionSeconds: r.Elapsed,
	}
}

func (m *Mission) timeScale() float64 {
	if m.cfg.Mission.TimeScale <= 0 {
		return 1
	}
	return m.cfg.Mission.TimeScale
}
