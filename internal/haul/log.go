package haul

import (
	"io"

	"github.com/charmbracelet/log"
)

// logger receives gameplay events. It is silent until SetLogger is called
// because the game usually owns the terminal.
var logger = log.New(io.Discard)

// SetLogger routes gameplay logs to l.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l.WithPrefix("haul")
}
