// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/katalvlaran/lvmcdm/internal/store"
	"github.com/katalvlaran/lvmcdm/topsis"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	bestStyle   = cellStyle.Foreground(lipgloss.Color("42"))
	titleStyle  = lipgloss.NewStyle().Bold(true)
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch row {
			case table.HeaderRow:
				return headerStyle
			case 0:
				return bestStyle
			default:
				return cellStyle
			}
		})
}

func score(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}

func criteriaLine(criteria []topsis.Criterion) string {
	parts := make([]string, len(criteria))
	for i, c := range criteria {
		parts[i] = c.String()
	}

	return strings.Join(parts, "  ")
}

func renderRanking(res *topsis.Result) string {
	t := newTable("#", "Alternative", "Score", "d+", "d-")
	for _, s := range res.Ranking {
		t.Row(strconv.Itoa(s.Rank), s.Alternative.Name, score(s.Score), score(s.DistanceBest), score(s.DistanceWorst))
	}

	return titleStyle.Render("Criteria: ") + criteriaLine(res.Criteria) + "\n" + t.String()
}

func renderHistory(runs []store.Summary) string {
	t := newTable("ID", "Created", "Label", "Best", "Score", "Alternatives")
	for _, r := range runs {
		t.Row(r.ID, humanize.Time(r.CreatedAt), r.Label, r.Best, score(r.BestScore), strconv.Itoa(r.Alternatives))
	}

	return t.String()
}

func renderRun(run store.Run) string {
	t := newTable("#", "Alternative", "Score", "d+", "d-")
	for _, s := range run.Scores {
		t.Row(strconv.Itoa(s.Rank), s.Name, score(s.Score), score(s.DistanceBest), score(s.DistanceWorst))
	}
	head := fmt.Sprintf("Run %s  %s (%s)", run.ID, humanize.Time(run.CreatedAt), run.CreatedAt.Format("2006-01-02 15:04:05 MST"))
	if run.Label != "" {
		head += "  " + run.Label
	}

	return titleStyle.Render(head) + "\n" + titleStyle.Render("Criteria: ") + criteriaLine(run.Criteria) + "\n" + t.String()
}
