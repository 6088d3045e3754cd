package haul

import "time"

// Delivery is the ledger record of one finished mission.
type Delivery struct {
	GameID         string
	Origin         string
	Destination    string
	Cargo          string
	Class          string
	DeadlineHours  int
	Miles          float64
	Payout         int
	TimeBonus      int
	Penalties      int
	Payment        int
	Delivered      bool
	Reason         string  // Failure reason, empty on success
	MissionSeconds float64 // Game seconds from pickup to finish
	CreatedAt      time.Time
}

// Status is "delivered" or "failed".
func (d Delivery) Status() string {
	if d.Delivered {
		return "delivered"
	}
	return "failed"
}

// Ledger receives finished deliveries.
type Ledger interface {
	SaveDelivery(d Delivery) error
}

// LedgerSetter is implemented by games that report deliveries.
type LedgerSetter interface {
	SetLedger(l Ledger)
}
