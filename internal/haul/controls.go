package haul

import "github.com/vovakirdan/heavy-haul/internal/core"

// Controls is the driving intent for one tick.
type Controls struct {
	Accelerate bool
	Brake      bool
	Left       bool
	Right      bool
}

// Latch turns discrete key presses into held controls. Terminals deliver
// a press (and key repeats) but never a release, so each press keeps its
// control active for a fixed number of ticks.
type Latch struct {
	hold      int
	remaining map[core.Action]int
}

// NewLatch creates a latch that holds presses for hold ticks.
func NewLatch(hold int) *Latch {
	if hold < 1 {
		hold = 1
	}
	return &Latch{
		hold:      hold,
		remaining: make(map[core.Action]int),
	}
}

// Update records this tick's presses and returns the active controls.
// Accelerate and brake cancel each other, as do left and right: the most
// recent press wins.
func (l *Latch) Update(in core.InputFrame) Controls {
	l.press(in, core.ActionAccelerate, core.ActionBrake)
	l.press(in, core.ActionBrake, core.ActionAccelerate)
	l.press(in, core.ActionSteerLeft, core.ActionSteerRight)
	l.press(in, core.ActionSteerRight, core.ActionSteerLeft)

	c := Controls{
		Accelerate: l.remaining[core.ActionAccelerate] > 0,
		Brake:      l.remaining[core.ActionBrake] > 0,
		Left:       l.remaining[core.ActionSteerLeft] > 0,
		Right:      l.remaining[core.ActionSteerRight] > 0,
	}

	for a, n := range l.remaining {
		if n > 0 {
			l.remaining[a] = n - 1
		}
	}
	return c
}

func (l *Latch) press(in core.InputFrame, a, opposite core.Action) {
	if !in.Has(a) {
		return
	}
	l.remaining[a] = l.hold
	if !in.Has(opposite) {
		l.remaining[opposite] = 0
	}
}

// Release drops every held control.
func (l *Latch) Release() {
	for a := range l.remaining {
		delete(l.remaining, a)
	}
}
