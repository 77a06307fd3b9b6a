package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// Runs board layout constants
const (
	maxRuns       = 50 // Max runs to load
	runsChromeH   = 6  // Title, borders and help line
	minRunsTableH = 3
	runsTableW    = 60 // Column widths plus cell padding
)

// runsBoard lists the finished runs of this process, best first.
type runsBoard struct {
	table table.Model
	runs  []storage.Run
	best  int
	total int
	err   error
	width int
}

func newRunsBoard(width, height int) runsBoard {
	b := runsBoard{width: width}
	b.table = b.createTable(height)
	return b
}

// createTable creates a new table with appropriate columns.
func (b *runsBoard) createTable(height int) table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Player", Width: 18},
		{Title: "Score", Width: 7},
		{Title: "Rows", Width: 5},
		{Title: "Lvl", Width: 4},
		{Title: "Ended", Width: 9},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithWidth(runsTableW),
		table.WithHeight(tableHeight(height)),
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// tableHeight fits the table between the title and the help line.
func tableHeight(height int) int {
	return core.Clamp(height-runsChromeH, minRunsTableH, maxRuns)
}

// refresh reloads the ledger. A nil store shows an empty board.
func (b *runsBoard) refresh(store *storage.Store) {
	b.runs, b.best, b.total, b.err = nil, 0, 0, nil
	if store != nil {
		b.runs, b.err = store.TopRuns(maxRuns)
		if b.err == nil {
			b.best, b.err = store.Best()
		}
		if b.err == nil {
			b.total, b.err = store.RunCount()
		}
	}

	rows := make([]table.Row, len(b.runs))
	for i, r := range b.runs {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			r.Player,
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Rows),
			fmt.Sprintf("%d", r.Level),
			r.EndedAt.Format("15:04:05"),
		}
	}
	b.table.SetRows(rows)

	// Reset cursor to top
	b.table.GotoTop()
}

func (b *runsBoard) resize(width, height int) {
	b.width = width
	b.table.SetHeight(tableHeight(height))
}

func (b runsBoard) update(msg tea.Msg) (runsBoard, tea.Cmd) {
	var cmd tea.Cmd
	b.table, cmd = b.table.Update(msg)
	return b, cmd
}

func (b runsBoard) view(helpLine string) string {
	var sb strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	title := fmt.Sprintf("RUNS  best %d  played %d", b.best, b.total)
	sb.WriteString(lipgloss.PlaceHorizontal(b.width, lipgloss.Center, titleStyle.Render(title)))
	sb.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	var content string
	switch {
	case b.err != nil:
		content = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).
			Render("Could not load runs: " + b.err.Error())
	case len(b.runs) == 0:
		content = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 2).
			Render("No finished runs yet.\nClear some rows!")
	default:
		content = b.table.View()
	}
	sb.WriteString(lipgloss.PlaceHorizontal(b.width, lipgloss.Center, tableStyle.Render(content)))

	sb.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	sb.WriteString(helpStyle.Render(helpLine))

	return sb.String()
}
