package main

import (
	"fmt"
	"os"
	"time"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/journal"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var (
	flagRecord string
	flagPlayer string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game in this terminal.

Controls (defaults, see configs/tetris.yaml):
  Left/Right, A/D   - Move
  Up/W              - Rotate
  Down/S            - Soft drop
  P/Esc             - Pause
  R                 - Restart
  Tab               - Runs of this session
  Ctrl+S            - Screenshot to ~/.tetris/screenshots
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - 800ms, 400ms after the first cleared row
  normal - 600ms, 300ms after the first cleared row
  hard   - 400ms, 150ms after the first cleared row
  fixed  - 600ms for the whole game

Examples:
  tetris play
  tetris play --difficulty hard
  tetris play --seed 42 --record ./game.jsonl.zst
  tetris play --config ./my-tetris.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagRecord, "record", "", "Record every event to a zstd JSONL journal at this path")
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Player name (random if not specified)")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger("tetris", false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	// Get terminal size
	runtime := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		runtime.ScreenW = w
		runtime.ScreenH = h
	}

	// The seed is fixed here so a journal can name it
	runtime.Seed = flagSeed
	if runtime.Seed == 0 {
		runtime.Seed = time.Now().UnixNano()
	}

	player := flagPlayer
	if player == "" {
		player = petname.Generate(2, "-")
	}

	store, err := storage.OpenMemory()
	if err != nil {
		logger.Warn("could not open run ledger", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	var rec *journal.Writer
	if flagRecord != "" {
		base, floor := cfg.Speed.Durations()
		rec, err = journal.Create(flagRecord, journal.NewHeader(runtime.Seed, tetris.SpeedConfig{Base: base, Floor: floor}))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		logger.Info("recording journal", "path", flagRecord, "run_id", rec.Header().RunID)
	}

	runErr := tui.Run(tui.Options{
		Runtime: runtime,
		Config:  cfg,
		Store:   store,
		Journal: rec,
		Logger:  logger,
		Player:  player,
	})

	// Close journal and store before potential exit
	if rec != nil {
		if err := rec.Close(); err != nil {
			logger.Error("could not close journal", "error", err)
		} else {
			fmt.Printf("Journal saved to %s (%d events)\n", flagRecord, rec.Len())
		}
	}
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
