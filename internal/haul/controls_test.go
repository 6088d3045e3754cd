package haul

import (
	"testing"

	"github.com/vovakirdan/heavy-haul/internal/core"
)

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestLatchHoldsPress(t *testing.T) {
	l := NewLatch(3)

	got := []bool{
		l.Update(frame(core.ActionAccelerate)).Accelerate,
		l.Update(frame()).Accelerate,
		l.Update(frame()).Accelerate,
		l.Update(frame()).Accelerate,
	}
	want := []bool{true, true, true, false}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("tick %d: Accelerate = %v, want %v", i+1, got[i], want[i])
		}
	}
}

func TestLatchRepressRefreshes(t *testing.T) {
	l := NewLatch(2)
	l.Update(frame(core.ActionSteerLeft))
	l.Update(frame(core.ActionSteerLeft))
	if !l.Update(frame()).Left {
		t.Error("re-press should extend the hold")
	}
}

func TestLatchOppositeCancels(t *testing.T) {
	l := NewLatch(10)
	l.Update(frame(core.ActionAccelerate, core.ActionSteerLeft))

	c := l.Update(frame(core.ActionBrake, core.ActionSteerRight))
	if c.Accelerate || !c.Brake {
		t.Errorf("brake should cancel accelerate: %+v", c)
	}
	if c.Left || !c.Right {
		t.Errorf("right should cancel left: %+v", c)
	}
}

func TestLatchRelease(t *testing.T) {
	l := NewLatch(10)
	l.Update(frame(core.ActionAccelerate))
	l.Release()
	if l.Update(frame()).Accelerate {
		t.Error("Release should drop held controls")
	}
}
