package haul

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/vovakirdan/heavy-haul/internal/core"
)

var printer = message.NewPrinter(language.English)

// FormatMoney renders whole dollars with thousands separators: $12,500,
// -$5,000.
func FormatMoney(amount int) string {
	if amount < 0 {
		return printer.Sprintf("-$%d", -amount)
	}
	return printer.Sprintf("$%d", amount)
}

// FormatClock renders seconds as mm:ss. Hours roll into minutes.
func FormatClock(seconds float64) string {
	s := int(math.Max(0, seconds))
	return fmt.Sprintf("%02d:%02d", s/60, s%60)
}

// FormatGameTime renders game seconds as h:mm.
func FormatGameTime(seconds float64) string {
	m := int(math.Max(0, seconds)) / 60
	return fmt.Sprintf("%d:%02d", m/60, m%60)
}

// FuelColor picks the gauge color for a fuel percentage.
func FuelColor(pct float64) core.Color {
	switch {
	case pct > 50:
		return core.ColorGreen
	case pct > 25:
		return core.ColorYellow
	default:
		return core.ColorRed
	}
}

// FuelBar renders a gauge of the given width, e.g. [██████····].
func FuelBar(pct float64, width int) string {
	if width < 1 {
		return ""
	}
	filled := int(math.Round(core.ClampF(pct, 0, 100) / 100 * float64(width)))
	return "[" + strings.Repeat("█", filled) + strings.Repeat("·", width-filled) + "]"
}

// TimerColor turns red when little real time is left.
func TimerColor(realRemaining, warnBelow float64) core.Color {
	if realRemaining < warnBelow {
		return core.ColorRed
	}
	return core.ColorWhite
}

// HUDLine is one colored segment of the status bar.
type HUDLine struct {
	Text  string
	Color core.Color
}

// StatusSegments builds the top status bar for a mission in progress.
func StatusSegments(m *Mission, cash int) []HUDLine {
	speedColor := core.ColorWhite
	if !m.OnRoad {
		speedColor = core.ColorOrange
	}
	segs := []HUDLine{
		{Text: "Fuel " + FuelBar(m.Tank.Level, 10) + fmt.Sprintf(" %5.1f%%", m.Tank.Level), Color: FuelColor(m.Tank.Level)},
		{Text: fmt.Sprintf("Speed %.1f mph", math.Abs(m.Truck.Speed)), Color: speedColor},
		{Text: "Cash " + FormatMoney(cash), Color: core.ColorGreen},
		{Text: "Time " + FormatClock(m.RealRemaining()), Color: TimerColor(m.RealRemaining(), m.cfg.Mission.WarnBelowSeconds)},
		{Text: fmt.Sprintf("Dist %.1f mi %c", m.DistanceToZone()/10, ObjectiveArrow(m)), Color: core.ColorCyan},
	}
	return segs
}

// ObjectiveArrow points from the truck toward the delivery zone.
func ObjectiveArrow(m *Mission) rune {
	dx, dy := m.Zone.X-m.Truck.X, m.Zone.Y-m.Truck.Y
	return headingArrow(math.Atan2(dy, dx) * 180 / math.Pi)
}

// CargoLine describes the load being hauled.
func CargoLine(c Contract) string {
	return fmt.Sprintf("%s: %s (%s) %s", c.Route(), c.Cargo, c.Class, FormatMoney(c.Pay.Total))
}

// Warnings returns the persistent hazard notices for the current tick.
func Warnings(m *Mission) []HUDLine {
	var w []HUDLine
	if !m.OnRoad {
		w = append(w, HUDLine{Text: "OFF-ROAD", Color: core.ColorYellow})
	}
	if m.BridgeHit() {
		w = append(w, HUDLine{Text: "BRIDGE DAMAGE", Color: core.ColorRed})
	}
	if m.Station != nil {
		if m.Tank.Full() {
			w = append(w, HUDLine{Text: "Tank full", Color: core.ColorGreen})
		} else {
			w = append(w, HUDLine{Text: "F: refuel " + FormatMoney(m.Tank.RefuelPrice()), Color: core.ColorYellow})
		}
	}
	if m.Tank.Level <= 10 {
		w = append(w, HUDLine{Text: "LOW FUEL", Color: core.ColorRed})
	}
	return w
}
