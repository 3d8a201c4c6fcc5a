package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/dronemania/internal/audio"
	"github.com/vovakirdan/dronemania/internal/config"
	"github.com/vovakirdan/dronemania/internal/core"
	"github.com/vovakirdan/dronemania/internal/logging"
	"github.com/vovakirdan/dronemania/internal/platform/spectate"
	"github.com/vovakirdan/dronemania/internal/platform/tui"
	"github.com/vovakirdan/dronemania/internal/storage"
)

// runtimeConfig builds the runtime config from the terminal size and
// global flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the scores database. The game works without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// openLogger returns the logger for interactive play. The alternate
// screen owns the terminal, so logs go to --log-file or nowhere.
func openLogger() (*log.Logger, io.Closer) {
	if flagLogFile == "" {
		return logging.Discard(), nil
	}
	logger, closer, err := logging.OpenFile(flagLogFile, "dronemania", flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return logging.Discard(), nil
	}
	return logger, closer
}

// loadGameConfig loads the YAML config used by the host (input windows,
// audio). The game loads its own copy on Reset.
func loadGameConfig(logger *log.Logger) config.DroneConfig {
	cfg, err := config.LoadDrone(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using defaults\n", err)
		logger.Warn("config fallback", "error", err)
		return config.DefaultDroneConfig()
	}
	return cfg
}

// host bundles the collaborators of an interactive session.
type host struct {
	store     *storage.Store
	logger    *log.Logger
	logCloser io.Closer
	sound     audio.Player
	spectate  *spectate.Server
	options   tui.Options
}

// hostFlags are the per-command switches for optional collaborators.
type hostFlags struct {
	sound        bool
	soundChanged bool
	spectateAddr string
}

// newHost opens storage, logging, audio and the spectator feed.
func newHost(flags hostFlags) *host {
	h := &host{store: openStore()}
	h.logger, h.logCloser = openLogger()

	cfg := loadGameConfig(h.logger)
	if flags.soundChanged {
		cfg.Audio.Enabled = flags.sound
	}
	h.sound = audio.New(cfg.Audio, h.logger)

	h.options = tui.Options{
		Store:  h.store,
		Sound:  h.sound,
		Logger: h.logger,
		Input:  cfg.Input,
	}

	if flags.spectateAddr != "" {
		hub := spectate.NewHub(h.logger)
		srv := spectate.NewServer(flags.spectateAddr, hub)
		addr, err := srv.Start()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: spectator feed disabled: %v\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "Spectator feed: ws://%s/ws\n", addr)
			h.spectate = srv
			h.options.Spectators = hub
		}
	}

	return h
}

// Close releases everything newHost opened.
func (h *host) Close() {
	if h.spectate != nil {
		ctx, cancel := shutdownContext()
		h.spectate.Shutdown(ctx)
		cancel()
	}
	h.sound.Close()
	if h.store != nil {
		h.store.Close()
	}
	if h.logCloser != nil {
		h.logCloser.Close()
	}
}

func shutdownContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 2*time.Second)
}
