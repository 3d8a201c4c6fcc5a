// dronemania is a side-scrolling drone arcade game for the terminal.
//
// Usage:
//
//	dronemania list              - List available modes
//	dronemania play [mode]       - Play a mode (default: dronemania)
//	dronemania menu              - Start menu to pick a mode interactively
//	dronemania serve             - Start SSH server for remote play
//	dronemania scores [mode]     - Show recorded runs for a mode
//	dronemania config            - Print or install the default config
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible obstacles
//	--db <path>          - Set database path (default: ~/.arcade/scores.db)
//	--config <path>      - Use a custom YAML config
//	--log-file <path>    - Write logs to a file
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dronemania/internal/games/dronemania"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dronemania",
	Short: "Dronemania - fly a measuring drone over a refinery in your terminal",
	Long: `Dronemania is a side-scrolling arcade game. Steer a drone with its
left and right propellers, hover over chimneys to measure their emissions,
and avoid flares, the ground and the sky ceiling.

Available commands:
  list     - Show all available modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View recorded runs
  config   - Print or install the default config

Examples:
  dronemania play
  dronemania play dronemania_endless --sound
  dronemania menu
  dronemania serve --ssh :2222
  dronemania scores`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		dronemania.SetConfigPath(flagConfig)
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
