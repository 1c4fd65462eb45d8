package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/UtahNetScout/GoalieScout/internal/model"
)

// PrintRankingTable prints the ranked player table.
func PrintRankingTable(w io.Writer, ranked []model.ScoreReport) {
	table := tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))

	table.Header("RANK", "PLAYER", "POS", "SCORE", "TIER", "DIST", "AVG_SPD", "MAX_SPD", "DIR_CHG", "EVENTS")

	for _, r := range ranked {
		table.Append(
			strconv.Itoa(r.Rank),
			r.PlayerName,
			r.Position,
			strconv.Itoa(r.Score),
			string(r.Tier),
			fmt.Sprintf("%.1f", r.Metrics[model.MetricTotalDistance]),
			fmt.Sprintf("%.2f", r.Metrics[model.MetricAverageSpeed]),
			fmt.Sprintf("%.2f", r.Metrics[model.MetricMaxSpeed]),
			fmt.Sprintf("%.0f", r.Metrics[model.MetricDirectionChanges]),
			fmt.Sprintf("%.0f", r.Metrics[model.MetricEventsCount]),
		)
	}
	table.Render()
}

// PrintSummary prints the batch summary lines below the ranking table.
func PrintSummary(w io.Writer, s model.SummaryStats) {
	fmt.Fprintf(w, "\nPlayers analyzed: %d  |  Average score: %.2f\n", s.TotalPlayers, s.AverageScore)

	fmt.Fprint(w, "Tier distribution: ")
	first := true
	for _, tier := range []model.Tier{model.TierS, model.TierA, model.TierB, model.TierC, model.TierD, model.TierF} {
		count, ok := s.TierDistribution[tier]
		if !ok {
			continue
		}
		if !first {
			fmt.Fprint(w, "  ")
		}
		fmt.Fprintf(w, "%s:%d", tier, count)
		first = false
	}
	if first {
		fmt.Fprint(w, "none")
	}
	fmt.Fprintln(w)

	if len(s.TopPlayers) > 0 {
		fmt.Fprintln(w, "\nTop players:")
		for _, p := range s.TopPlayers {
			fmt.Fprintf(w, "  %d. %s (%s): %d/100, tier %s\n", p.Rank, p.Name, p.Position, p.Score, p.Tier)
		}
	}
}
