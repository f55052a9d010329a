package main

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"snaker/store"
	"snaker/ui/layout"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	borderStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#5F5F87"))
	summaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).Italic(true)

	podium    = []lipgloss.Color{"#FFD700", "#C0C0C0", "#CD7F32"}
	lastColor = lipgloss.Color("#FF8C00")
)

// printScores writes the top n leaderboard and the all-time summary to w.
func printScores(ctx context.Context, w io.Writer, s *store.Store, n int) error {
	records, err := s.TopN(ctx, n)
	if err != nil {
		return err
	}
	last, hasLast, err := s.LastRank(ctx)
	if err != nil {
		return err
	}
	sum, err := s.Summarize(ctx)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		_, err := fmt.Fprintln(w, summaryStyle.Render("No games recorded yet."))
		return err
	}

	rows := make([][]string, 0, len(records))
	for i, r := range records {
		rows = append(rows, []string{
			"#" + strconv.Itoa(i+1),
			r.PlayerName,
			strconv.Itoa(r.Score),
			r.Timestamp.Format(layout.DateLayout),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers("Rank", "Player", "Score", "Date").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			style := cellStyle
			switch {
			case hasLast && row+1 == last.Rank && records[row].Score == last.Score:
				style = style.Foreground(lastColor)
			case row < len(podium):
				style = style.Foreground(podium[row])
			}
			if col == 2 {
				style = style.Align(lipgloss.Right)
			}
			return style
		})

	if _, err := fmt.Fprintln(w, t.Render()); err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, summaryStyle.Render(fmt.Sprintf(
		"%d games  avg %.1f  median %.1f  best %d  worst %d",
		sum.Games, sum.Average, sum.Median, sum.Max, sum.Min)))
	return err
}
