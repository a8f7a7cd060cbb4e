package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/jigsaw-drop/internal/config"
	"github.com/vovakirdan/jigsaw-drop/internal/core"
	"github.com/vovakirdan/jigsaw-drop/internal/sound"
	"github.com/vovakirdan/jigsaw-drop/internal/storage"
)

// newLogger returns a file logger when --log is set. The terminal belongs
// to the UI, so without it logs are discarded.
func newLogger() (*log.Logger, func()) {
	if flagLogPath == "" {
		return log.New(io.Discard), func() {}
	}
	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: cannot open log file: %v\n", err)
		return log.New(io.Discard), func() {}
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "jigsawdrop",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, func() {
		//nolint:errcheck // Best-effort close on exit
		f.Close()
	}
}

// openStore opens the score database. Play continues without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("storage unavailable", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

func closeStore(store *storage.Store, logger *log.Logger) {
	if store == nil {
		return
	}
	if err := store.Close(); err != nil {
		logger.Warn("closing store", "err", err)
	}
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// newSounder starts audio per the sound section of the game config.
// --mute and the stored toggle both silence it; the stored music toggle
// only drops the background loop.
func newSounder(configPath string, mute bool, store *storage.Store, logger *log.Logger) (core.Sounder, func() error) {
	cfg, err := config.LoadJigsaw(configPath)
	if err != nil {
		logger.Warn("config load failed, using defaults", "err", err)
	}
	if mute || (store != nil && !store.SoundEnabled()) {
		cfg.Sound.Enabled = false
	}
	if store != nil && !store.MusicEnabled() {
		cfg.Sound.Music = false
	}
	return sound.New(cfg.Sound, logger)
}
