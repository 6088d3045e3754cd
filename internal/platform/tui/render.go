package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/heavy-haul/internal/core"
)

// palette lists the ANSI 256 code for each core.Color. The greens and grays
// are picked so grass, asphalt and lane paint stay apart on dark terminals.
var palette = [...]struct {
	code string
	bold bool
}{
	core.ColorDefault:       {"", false},
	core.ColorRed:           {"160", false}, // bridge danger zone
	core.ColorGreen:         {"28", false},  // grass, healthy gauges
	core.ColorYellow:        {"220", false}, // lane paint, stations
	core.ColorBlue:          {"33", false},  // the rig
	core.ColorMagenta:       {"5", false},
	core.ColorCyan:          {"37", false},
	core.ColorWhite:         {"252", false},
	core.ColorBrightRed:     {"196", true}, // failures, strike warnings
	core.ColorBrightGreen:   {"46", true},  // delivery zone
	core.ColorBrightYellow:  {"226", true},
	core.ColorBrightBlue:    {"39", false},
	core.ColorBrightMagenta: {"201", false}, // superloads
	core.ColorBrightCyan:    {"51", false},
	core.ColorBrightWhite:   {"231", true},
	core.ColorOrange:        {"208", false}, // oversize loads
	core.ColorGray:          {"245", false}, // road surface
	core.ColorDarkGray:      {"238", false},
}

// ScreenRenderer turns a core.Screen into styled text for one terminal.
// Styles come from a lipgloss renderer so SSH sessions get the color
// profile of the remote terminal rather than the server's.
type ScreenRenderer struct {
	styles [len(palette)]lipgloss.Style
}

// NewScreenRenderer builds the styles with r. A nil r uses the default
// renderer of the local terminal.
func NewScreenRenderer(r *lipgloss.Renderer) *ScreenRenderer {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	sr := &ScreenRenderer{}
	for c, p := range palette {
		st := r.NewStyle()
		if p.code != "" {
			st = st.Foreground(lipgloss.Color(p.code))
		}
		sr.styles[c] = st.Bold(p.bold)
	}
	return sr
}

func (sr *ScreenRenderer) style(c core.Color) lipgloss.Style {
	if int(c) >= len(sr.styles) {
		return sr.styles[core.ColorDefault]
	}
	return sr.styles[c]
}

// Render draws every row, emitting one styled span per run of same-colored
// cells. Uncolored runs are written as is.
func (sr *ScreenRenderer) Render(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	run := make([]rune, 0, s.Width())
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		run = run[:0]
		color := s.GetCell(0, y).Color
		flush := func() {
			if len(run) == 0 {
				return
			}
			if color == core.ColorDefault {
				sb.WriteString(string(run))
			} else {
				sb.WriteString(sr.style(color).Render(string(run)))
			}
			run = run[:0]
		}
		for x := range s.Width() {
			cell := s.GetCell(x, y)
			if cell.Color != color {
				flush()
				color = cell.Color
			}
			run = append(run, cell.Rune)
		}
		flush()
	}
	return sb.String()
}
