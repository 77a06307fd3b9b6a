package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/journal"
)

var flagShowBoard bool

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Replay a recorded journal",
	Long: `Rebuild a game from a journal written by 'tetris play --record' and
print where it ended. The journal's seed and speed are used; --seed and
--difficulty are ignored.

Examples:
  tetris replay game.jsonl.zst
  tetris replay game.jsonl.zst --board`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagShowBoard, "board", false, "Print the final board")
}

func runReplay(_ *cobra.Command, args []string) {
	l, err := journal.Read(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	res := journal.Replay(l)
	printReplay(os.Stdout, l.Header, res)

	if flagShowBoard {
		screen := core.NewScreen(tetris.MinScreenW, tetris.MinScreenH)
		tetris.Render(res.Final, screen, tetris.DefaultTheme())
		fmt.Fprintln(os.Stdout, screen.String())
	}
}

func printReplay(w io.Writer, h journal.Header, res journal.Result) {
	label := color.New(color.FgHiBlack).SprintFunc()
	value := color.New(color.FgHiWhite, color.Bold).SprintFunc()

	status := color.GreenString("in progress")
	switch {
	case res.Final.Terminated:
		status = color.RedString("game over")
	case res.Final.Paused:
		status = color.YellowString("paused")
	}

	fmt.Fprintf(w, "%s %s\n", label("run     "), value(h.RunID))
	fmt.Fprintf(w, "%s %s\n", label("started "), h.StartedAt.Format(time.DateTime))
	fmt.Fprintf(w, "%s %d\n", label("seed    "), h.Seed)
	fmt.Fprintf(w, "%s %dms / %dms\n", label("speed   "), h.SpeedBaseMs, h.SpeedFloorMs)
	fmt.Fprintf(w, "%s %d applied, %d skipped, %d retunes over %s\n",
		label("events  "), res.Events, res.Skipped, res.Retunes, res.Duration)
	fmt.Fprintf(w, "%s %s\n", label("status  "), status)
	fmt.Fprintf(w, "%s %s  %s %d  %s %d  %s %d\n",
		label("score   "), value(res.Final.Score),
		label("high"), res.Final.HighScore,
		label("rows"), res.Final.RowsCleared,
		label("level"), res.Final.Level,
	)
	if res.Skipped > 0 {
		fmt.Fprintln(w, color.YellowString("warning: %d entries had unknown events", res.Skipped))
	}
}
