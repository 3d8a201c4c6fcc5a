package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dronemania/internal/platform/tui"
	"github.com/vovakirdan/dronemania/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a mode picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a mode, Tab for scores.
Leaving a game with Esc returns to the menu.

Examples:
  dronemania menu
  dronemania menu --fps 30
  dronemania menu --sound`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().BoolVar(&flagSound, "sound", false, "Enable synthesized sound (overrides config)")
	menuCmd.Flags().StringVar(&flagSpectate, "spectate", "", "Serve a websocket spectator feed on this address (e.g. :8080)")
}

func runMenu(cmd *cobra.Command, _ []string) {
	h := newHost(hostFlags{
		sound:        flagSound,
		soundChanged: cmd.Flags().Changed("sound"),
		spectateAddr: flagSpectate,
	})
	defer h.Close()

	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(h.store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(h.store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			return
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		runCfg := cfg
		if flagSeed == 0 {
			runCfg.Seed = time.Now().UnixNano()
		}

		quit, err := tui.Run(game, runCfg, h.options)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
		if quit {
			return
		}
	}
}
