package haul

import "github.com/vovakirdan/heavy-haul/internal/core"

// Message is a transient line shown over the map.
type Message struct {
	Text  string
	Color core.Color
	ticks int
}

// Messages is a short queue of timed notices. Only the newest few are kept.
type Messages struct {
	items    []Message
	tickRate int
	limit    int
}

// NewMessages creates a queue for the given tick rate.
func NewMessages(tickRate int) *Messages {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &Messages{tickRate: tickRate, limit: 4}
}

// Add shows text for the given number of seconds.
func (m *Messages) Add(text string, color core.Color, seconds float64) {
	m.items = append(m.items, Message{
		Text:  text,
		Color: color,
		ticks: int(seconds * float64(m.tickRate)),
	})
	if len(m.items) > m.limit {
		m.items = m.items[len(m.items)-m.limit:]
	}
}

// Tick ages every message and drops expired ones.
func (m *Messages) Tick() {
	kept := m.items[:0]
	for _, msg := range m.items {
		msg.ticks--
		if msg.ticks > 0 {
			kept = append(kept, msg)
		}
	}
	m.items = kept
}

// Active returns the visible messages, oldest first.
func (m *Messages) Active() []Message {
	return m.items
}
