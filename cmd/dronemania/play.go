package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dronemania/internal/platform/tui"
	"github.com/vovakirdan/dronemania/internal/registry"
)

var (
	flagSound    bool
	flagSpectate string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the specified mode (default: dronemania).

Controls:
  Left/A       - Left propeller (tilts and lifts the drone)
  Right/D      - Right propeller
  Space/Down/S - Cut both propellers
  Mouse        - Hold on the left or right half of the screen
  Enter        - Start / continue to the next level
  R            - Restart
  P            - Pause
  Esc/B        - Back (when paused or not flying)
  Q/Ctrl+C     - Quit

Holding both propellers cuts lift. Hover just above a chimney to measure it
for +5 points per frame.

Examples:
  dronemania play
  dronemania play dronemania_endless
  dronemania play --sound
  dronemania play --spectate :8080
  dronemania play --config ./my-dronemania.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Enable synthesized sound (overrides config)")
	playCmd.Flags().StringVar(&flagSpectate, "spectate", "", "Serve a websocket spectator feed on this address (e.g. :8080)")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "dronemania"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'dronemania list' to see available modes.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	h := newHost(hostFlags{
		sound:        flagSound,
		soundChanged: cmd.Flags().Changed("sound"),
		spectateAddr: flagSpectate,
	})

	_, runErr := tui.Run(game, runtimeConfig(), h.options)

	h.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
