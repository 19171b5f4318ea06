// dragon is Flappy Dragon, a one-button arcade game for the terminal.
//
// Usage:
//
//	dragon                   - Play locally
//	dragon serve             - Start SSH server for remote play
//	dragon sessions          - Show recent SSH connections
//
// Global flags:
//
//	--config <path>  - Load settings from a YAML file
//	--fps <rate>     - Set tick rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible gameplay
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-dragon/internal/config"
)

var (
	// Global flags
	flagConfig string
	flagFPS    int
	flagSeed   int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dragon",
	Short: "Flappy Dragon - fly through the walls in your terminal",
	Long: `Flappy Dragon is a one-button arcade game. Your dragon falls under
gravity; press SPACE to flap and steer through the gaps in the walls.
Every wall you pass scores a point, and the gaps keep shrinking.

Available commands:
  serve     - Start SSH server for remote play
  sessions  - Show recent SSH connections

Examples:
  dragon
  dragon --seed 42 --backend tcell
  dragon serve --ssh :2222
  dragon sessions --limit 5`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file (default: ~/.dragon/config.yaml)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	rootCmd.Flags().StringVar(&flagBackend, "backend", config.BackendBubbleTea, "Terminal backend (bubbletea or tcell)")

	// Add subcommands
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(sessionsCmd)
}

// loadConfig reads the config file and applies flags the user set
// explicitly on top of it.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("fps") {
		cfg.Display.FPS = flagFPS
	}
	if flags.Changed("seed") {
		cfg.Display.Seed = flagSeed
	}
	if flags.Changed("backend") {
		cfg.Display.Backend = flagBackend
	}
	if flags.Changed("ssh") {
		cfg.SSH.Address = flagSSHAddr
	}
	if flags.Changed("host-key") {
		cfg.SSH.HostKey = flagHostKey
	}
	if flags.Changed("db") {
		cfg.SSH.DB = flagDBPath
	}
	if flags.Changed("idle-timeout") {
		cfg.SSH.IdleTimeout = flagIdleTimeout
	}

	return cfg, cfg.Validate()
}
