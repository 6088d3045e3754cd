package haul

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/heavy-haul/internal/core"
)

// Visual characters for rendering
const (
	GrassChar   = '"'
	RoadChar    = '░'
	StationChar = '▓'
	BridgeChar  = '═'
	DangerChar  = '▀'
	ZoneChar    = '◦'
	ZoneCenter  = '◎'
	TruckChar   = '█'
)

var headingArrows = []rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

// headingArrow picks the arrow closest to the heading in degrees.
func headingArrow(angle float64) rune {
	a := math.Mod(angle, 360)
	if a < 0 {
		a += 360
	}
	return headingArrows[int(math.Round(a/45))%8]
}

// viewport maps world units onto a block of screen cells.
type viewport struct {
	x0, y0 int
	w, h   int
	sx, sy float64
}

func newViewport(x0, y0, w, h int, worldW, worldH float64) viewport {
	return viewport{
		x0: x0, y0: y0, w: w, h: h,
		sx: float64(w) / worldW,
		sy: float64(h) / worldH,
	}
}

func (v viewport) cell(x, y float64) (int, int) {
	return v.x0 + int(math.Floor(x*v.sx)), v.y0 + int(math.Floor(y*v.sy))
}

// rect converts a world box into the cells it covers, at least one cell.
func (v viewport) rect(r core.RectF) core.Rect {
	x0, y0 := v.cell(r.X, r.Y)
	x1 := v.x0 + int(math.Ceil(r.Right()*v.sx))
	y1 := v.y0 + int(math.Ceil(r.Bottom()*v.sy))
	return core.NewRect(x0, y0, core.Max(1, x1-x0), core.Max(1, y1-y0))
}

// worldAt returns the world point at the center of a cell.
func (v viewport) worldAt(cx, cy int) (float64, float64) {
	return (float64(cx-v.x0) + 0.5) / v.sx, (float64(cy-v.y0) + 0.5) / v.sy
}

func (v viewport) inside(cx, cy int) bool {
	return cx >= v.x0 && cx < v.x0+v.w && cy >= v.y0 && cy < v.y0+v.h
}

func (v viewport) set(dst *core.Screen, cx, cy int, r rune, c core.Color) {
	if v.inside(cx, cy) {
		dst.SetColor(cx, cy, r, c)
	}
}

func (v viewport) fill(dst *core.Screen, r core.RectF, ch rune, c core.Color) {
	cr := v.rect(r)
	for y := cr.Y; y < cr.Bottom(); y++ {
		for x := cr.X; x < cr.Right(); x++ {
			v.set(dst, x, y, ch, c)
		}
	}
}

func (v viewport) text(dst *core.Screen, cx, cy int, s string, c core.Color) {
	i := 0
	for _, r := range s {
		v.set(dst, cx+i, cy, r, c)
		i++
	}
}

// renderMission draws the map, the truck and the HUD for a running mission.
func renderMission(dst *core.Screen, m *Mission, cash int, paused bool) {
	w, h := dst.Width(), dst.Height()
	if w < 20 || h < 8 {
		dst.DrawText(0, 0, "Terminal too small")
		return
	}

	drawStatus(dst, 0, StatusSegments(m, cash))
	drawStatus(dst, 1, append([]HUDLine{{Text: CargoLine(m.Contract), Color: core.ColorGray}}, Warnings(m)...))

	v := newViewport(0, 2, w, h-3, m.World.Width, m.World.Height)
	drawWorld(dst, v, m.World)
	drawZone(dst, v, m.Zone, m.Contract.Destination.Name)
	drawTruck(dst, v, m.Truck)

	msgs := m.Messages.Active()
	for i, msg := range msgs {
		dst.DrawTextCenteredColor(v.y0+1+i, " "+msg.Text+" ", msg.Color)
	}

	dst.DrawTextColor(1, h-1, "Deadline "+FormatGameTime(m.Remaining())+" left", core.ColorGray)

	if paused {
		drawBanner(dst, []string{"PAUSED", "P to resume"}, core.ColorYellow)
	}
}

func drawStatus(dst *core.Screen, y int, segs []HUDLine) {
	x := 1
	for _, s := range segs {
		dst.DrawTextColor(x, y, s.Text, s.Color)
		x += len([]rune(s.Text)) + 2
	}
}

func drawWorld(dst *core.Screen, v viewport, w *World) {
	for cy := v.y0; cy < v.y0+v.h; cy++ {
		for cx := v.x0; cx < v.x0+v.w; cx++ {
			if (cx*7+cy*13)%11 == 0 {
				dst.SetColor(cx, cy, GrassChar, core.ColorGreen)
			}
		}
	}

	for _, r := range w.Roads {
		v.fill(dst, r, RoadChar, core.ColorGray)
		cr := v.rect(r)
		if r.W >= r.H {
			midY := cr.Y + cr.H/2
			for x := cr.X; x < cr.Right(); x += 4 {
				v.set(dst, x, midY, '─', core.ColorYellow)
				v.set(dst, x+1, midY, '─', core.ColorYellow)
			}
		} else {
			midX := cr.X + cr.W/2
			for y := cr.Y; y < cr.Bottom(); y += 2 {
				v.set(dst, midX, y, '│', core.ColorYellow)
			}
		}
	}

	for _, s := range w.Stations {
		v.fill(dst, s.Rect, StationChar, core.ColorYellow)
		cr := v.rect(s.Rect)
		v.text(dst, cr.X, cr.Y, "FUEL", core.ColorBrightWhite)
	}

	for _, b := range w.Bridges {
		v.fill(dst, b.Visual, BridgeChar, core.ColorWhite)
		v.fill(dst, b.Zone, DangerChar, core.ColorRed)
		cr := v.rect(b.Visual)
		v.text(dst, cr.X, cr.Y-1, fmt.Sprintf("CLEARANCE %.0f'", b.Clearance), core.ColorYellow)
	}
}

func drawZone(dst *core.Screen, v viewport, z DeliveryZone, name string) {
	box := v.rect(core.CenteredRectF(z.X, z.Y, 2*z.Radius, 2*z.Radius))
	for cy := box.Y; cy < box.Bottom(); cy++ {
		for cx := box.X; cx < box.Right(); cx++ {
			if wx, wy := v.worldAt(cx, cy); z.Contains(wx, wy) {
				v.set(dst, cx, cy, ZoneChar, core.ColorBrightGreen)
			}
		}
	}
	cx, cy := v.cell(z.X, z.Y)
	v.set(dst, cx, cy, ZoneCenter, core.ColorBrightGreen)
	v.text(dst, cx-len([]rune(name))/2, box.Y-1, name, core.ColorBrightGreen)
}

// drawTruck draws the rig along its heading with an arrow at the cab.
func drawTruck(dst *core.Screen, v viewport, t *Truck) {
	rad := t.Angle * math.Pi / 180
	half := t.cfg.Length / 2
	step := math.Min(1/v.sx, 1/v.sy) / 2
	for d := -half; d < half; d += step {
		cx, cy := v.cell(t.X+math.Cos(rad)*d, t.Y+math.Sin(rad)*d)
		v.set(dst, cx, cy, TruckChar, core.ColorBlue)
	}
	cx, cy := v.cell(t.X+math.Cos(rad)*half, t.Y+math.Sin(rad)*half)
	v.set(dst, cx, cy, headingArrow(t.Angle), core.ColorBrightWhite)
}

// drawBanner draws a centered boxed message over the scene.
func drawBanner(dst *core.Screen, lines []string, c core.Color) {
	width := 0
	for _, l := range lines {
		width = core.Max(width, len([]rune(l)))
	}
	bw, bh := width+4, len(lines)+2
	x := (dst.Width() - bw) / 2
	y := (dst.Height() - bh) / 2
	box := core.NewRect(x, y, bw, bh)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	for i, l := range lines {
		dst.DrawTextCenteredColor(y+1+i, l, c)
	}
}

// renderCareer draws whichever career scene is active.
func renderCareer(dst *core.Screen, c *Career, paused bool) {
	switch c.Scene() {
	case SceneContracts:
		renderContracts(dst, c)
	case SceneShop:
		renderShop(dst, c)
	case SceneDriving:
		renderMission(dst, c.Mission(), c.Cash(), paused)
	case SceneResults:
		r, route := c.LastResult()
		renderResults(dst, r, route, c.Cash(), "Space/Enter: next contracts")
	}

	if over, reason := c.Over(); over {
		title := "RETIRED"
		if reason == EndBankrupt {
			title = "BANKRUPT"
		}
		drawBanner(dst, []string{
			title,
			fmt.Sprintf("Final cash %s", FormatMoney(c.Cash())),
			fmt.Sprintf("Deliveries %d of %d", c.Deliveries(), c.Missions()),
			fmt.Sprintf("Score %d", c.Score()),
			"R new career  B menu  Q quit",
		}, core.ColorBrightYellow)
	}
}

func renderContracts(dst *core.Screen, c *Career) {
	dst.DrawTextColor(1, 0, "HEAVY HAUL TYCOON - Contract Board", core.ColorBrightYellow)
	summary := fmt.Sprintf("Cash %s  Fuel %.0f%%  Deliveries %d", FormatMoney(c.Cash()), c.Fuel(), c.Deliveries())
	dst.DrawTextColor(core.Max(1, dst.Width()-len([]rune(summary))-1), 0, summary, core.ColorGreen)
	dst.DrawHLine(0, 1, dst.Width(), '─')

	y := 3
	for i, ct := range c.Offers() {
		dst.DrawTextColor(2, y, fmt.Sprintf("[%d] %s", i+1, ct.Route()), core.ColorBrightWhite)
		detail := fmt.Sprintf("%s (%s)  %.1f mi  deadline %dh", ct.Cargo, ct.Class, ct.Miles, ct.DeadlineHours)
		dst.DrawTextColor(6, y+1, detail, classColor(ct.Class))
		dst.DrawTextColor(6, y+2, "Pays "+FormatMoney(ct.Pay.Total)+payoutNote(ct.Pay), core.ColorGreen)
		y += 4
	}

	u := c.Upgrades()
	parts := make([]string, 0, len(Tracks))
	for _, t := range Tracks {
		parts = append(parts, fmt.Sprintf("%s L%d (%s)", t, u.Level(t), u.Describe(t)))
	}
	dst.DrawTextColor(2, y, "Truck: "+strings.Join(parts, "  "), core.ColorCyan)

	if n := c.Notice(); n != "" {
		dst.DrawTextColor(2, y+2, n, core.ColorYellow)
	}
}

func payoutNote(p Payout) string {
	var notes []string
	if p.WeightFactor+p.OversizeFactor > 0.15 {
		notes = append(notes, fmt.Sprintf("+%.0f%% load", (p.WeightFactor+p.OversizeFactor)*100))
	}
	if p.DeadlineMultiplier > 1 {
		notes = append(notes, fmt.Sprintf("+%.0f%% rush", (p.DeadlineMultiplier-1)*100))
	}
	if len(notes) == 0 {
		return ""
	}
	return "  (" + strings.Join(notes, ", ") + ")"
}

func classColor(c CargoClass) core.Color {
	switch c {
	case Oversize:
		return core.ColorOrange
	case Superload:
		return core.ColorBrightMagenta
	}
	return core.ColorWhite
}

func renderShop(dst *core.Screen, c *Career) {
	dst.DrawTextColor(1, 0, "UPGRADE SHOP", core.ColorBrightYellow)
	cash := "Cash " + FormatMoney(c.Cash())
	dst.DrawTextColor(core.Max(1, dst.Width()-len([]rune(cash))-1), 0, cash, core.ColorGreen)
	dst.DrawHLine(0, 1, dst.Width(), '─')

	u := c.Upgrades()
	for i, t := range Tracks {
		y := 3 + i*3
		dst.DrawTextColor(2, y, fmt.Sprintf("[%d] %-10s level %d/%d  %s", i+1, t, u.Level(t), u.MaxLevel(t), u.Describe(t)), core.ColorBrightWhite)
		next := "max level"
		color := core.ColorGray
		if cost, ok := u.NextCost(t); ok {
			next = "next level " + FormatMoney(cost)
			color = core.ColorGreen
			if cost > c.Cash() {
				color = core.ColorRed
			}
		}
		dst.DrawTextColor(6, y+1, next, color)
	}

	if n := c.Notice(); n != "" {
		dst.DrawTextColor(2, 13, n, core.ColorYellow)
	}
}

func renderResults(dst *core.Screen, r Result, route string, cash int, hint string) {
	title, color := "DELIVERY COMPLETE!", core.ColorBrightGreen
	if r.Outcome != Delivered {
		title, color = "MISSION FAILED: "+strings.ToUpper(r.Reason), core.ColorBrightRed
	}
	dst.DrawTextCenteredColor(2, title, color)
	dst.DrawTextCentered(3, route)

	rows := []HUDLine{
		{Text: fmt.Sprintf("Payout      %s", FormatMoney(r.Payout)), Color: core.ColorWhite},
		{Text: fmt.Sprintf("Time bonus  +%s", FormatMoney(r.TimeBonus)), Color: core.ColorGreen},
	}
	for _, p := range r.Penalties {
		rows = append(rows, HUDLine{Text: fmt.Sprintf("%s  -%s", p.Reason, FormatMoney(p.Amount)), Color: core.ColorRed})
	}
	netColor := core.ColorGreen
	if r.Payment < 0 {
		netColor = core.ColorRed
	}
	rows = append(rows,
		HUDLine{Text: fmt.Sprintf("Net         %s", FormatMoney(r.Payment)), Color: netColor},
		HUDLine{Text: fmt.Sprintf("Time        %s", FormatGameTime(r.Elapsed)), Color: core.ColorGray},
		HUDLine{Text: fmt.Sprintf("Cash        %s", FormatMoney(cash)), Color: core.ColorBrightWhite},
	)

	x := core.Max(0, dst.Width()/2-16)
	for i, row := range rows {
		dst.DrawTextColor(x, 5+i, row.Text, row.Color)
	}
	dst.DrawTextCenteredColor(core.Min(dst.Height()-1, 7+len(rows)), hint, core.ColorGray)
}

// renderSprint draws the run, then its results once it is over.
func renderSprint(dst *core.Screen, s *Sprint, paused bool) {
	if !s.Over() {
		renderMission(dst, s.Mission(), s.Cash(), paused)
		return
	}
	renderResults(dst, s.Mission().Result(), s.Mission().Contract.Route(), s.Cash(), "R run again  B menu  Q quit")
}
