package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/heavy-haul/internal/core"
	"github.com/vovakirdan/heavy-haul/internal/haul"
	"github.com/vovakirdan/heavy-haul/internal/storage"
)

var (
	appLogger *log.Logger
	logFile   *os.File
)

// newLogger discards everything unless a log file is given: the game owns
// the terminal while it runs.
func newLogger(path string) (*log.Logger, error) {
	if path == "" {
		return log.New(io.Discard), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logFile = f
	return log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
	}), nil
}

func closeLogFile() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}

// runtimeConfig sizes the screen from the terminal, falling back to 80x24.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// applyGameOptions passes the file flags to games created afterwards.
func applyGameOptions(configPath, difficulty string) {
	haul.SetOptions(haul.Options{
		ConfigPath:   configPath,
		UpgradesPath: flagUpgradesPath,
		CitiesPath:   flagCitiesPath,
		Difficulty:   difficulty,
	})
}

// openStoreOrWarn opens the database; play continues without it on error.
func openStoreOrWarn() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		appLogger.Warn("playing without persistence", "error", err)
		return nil
	}
	return store
}
