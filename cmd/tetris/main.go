// tetris is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	tetris play             - Play a game in this terminal
//	tetris serve            - Start SSH server for remote play
//	tetris replay <file>    - Replay a recorded journal and print the result
//
// Global flags:
//
//	--config <path>       - Config YAML (default search: ~/.tetris/configs, ./configs)
//	--difficulty <name>   - Speed preset: easy, normal, hard, fixed
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--log-file <path>     - Write logs to a file
//	--log-level <level>   - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagSeed       int64
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris - falling blocks in your terminal",
	Long: `Tetris is a terminal falling-block game on a 10x20 board.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  replay   - Rebuild a recorded game from its journal

Examples:
  tetris play
  tetris play --difficulty hard --seed 42 --record game.jsonl.zst
  tetris serve --ssh :2222
  tetris replay game.jsonl.zst`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed (overrides config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(replayCmd)
}

// loadConfig resolves the config file and the difficulty flag.
func loadConfig() (config.TetrisConfig, error) {
	cfg, err := config.LoadTetris(flagConfig)
	if err != nil {
		return cfg, err
	}
	return config.Resolve(cfg, flagDifficulty)
}
