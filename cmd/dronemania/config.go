package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dronemania/internal/config"
)

var (
	flagWriteConfig bool
	flagForce       bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print or install the default config",
	Long: `Print the embedded default configuration as YAML.

With --write the defaults are installed at ~/.arcade/configs/dronemania.yaml,
where the game picks them up on the next start. Edit the file to tune
physics, obstacles, levels, key hold windows and audio.

Examples:
  dronemania config > my-dronemania.yaml
  dronemania config --write`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagWriteConfig, "write", false, "Install the defaults as the user config")
	configCmd.Flags().BoolVar(&flagForce, "force", false, "Overwrite an existing user config")
}

func runConfig(_ *cobra.Command, _ []string) {
	data := config.GetDefaultYAML()

	if !flagWriteConfig {
		os.Stdout.Write(data)
		return
	}

	path := config.UserConfigPath()
	if path == "" {
		fmt.Fprintln(os.Stderr, "Error: cannot determine home directory")
		os.Exit(1)
	}

	if _, err := os.Stat(path); err == nil && !flagForce {
		fmt.Fprintf(os.Stderr, "Error: %s already exists (use --force to overwrite)\n", path)
		os.Exit(1)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", path)
}
