// Package report assembles per-player scouting reports from metric sets,
// classifies tiers, ranks the batch, and renders the results.
package report

import (
	"context"
	"fmt"
	"sort"

	"github.com/UtahNetScout/GoalieScout/internal/model"
	"github.com/UtahNetScout/GoalieScout/internal/scoring"
)

// DefaultTopK is how many leading entries the summary keeps.
const DefaultTopK = 3

// Generator turns metric sets into complete score reports through an
// injected scoring provider.
type Generator struct {
	provider scoring.Provider
}

func NewGenerator(provider scoring.Provider) *Generator {
	return &Generator{provider: provider}
}

// GeneratePlayerReport builds the report for one player. A provider
// failure never fails the batch: the report degrades to a neutral score
// and an unavailable-note narrative. Rank is assigned later by
// RankPlayers.
func (g *Generator) GeneratePlayerReport(ctx context.Context, p model.PlayerProfile, position string, metrics model.MetricSet) model.ScoreReport {
	prompt := BuildPrompt(p.Name, position, p.Role, metrics)

	notes, err := g.provider.GenerateReport(ctx, prompt)
	if err != nil {
		notes = fmt.Sprintf("Scouting report unavailable: %v", err)
	}

	score, err := g.provider.GenerateScore(ctx, prompt)
	if err != nil {
		score = scoring.DefaultScore
	}
	score = scoring.ClampScore(score)

	return model.ScoreReport{
		PlayerID:      p.PlayerID,
		PlayerName:    p.Name,
		Position:      position,
		Metrics:       metrics,
		ScoutingNotes: notes,
		Score:         score,
		Tier:          model.TierForScore(score),
	}
}

// RankPlayers stable-sorts a batch by score descending and assigns dense
// ranks. Equal scores keep their original batch order and still receive
// distinct successive ranks. The input slice is not modified.
func RankPlayers(reports []model.ScoreReport) []model.ScoreReport {
	ranked := make([]model.ScoreReport, len(reports))
	copy(ranked, reports)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}

// BuildSummary derives summary statistics from a ranked batch. An empty
// batch yields zero values, never an error.
func BuildSummary(ranked []model.ScoreReport, topK int) model.SummaryStats {
	summary := model.SummaryStats{
		TierDistribution: make(map[model.Tier]int),
		TopPlayers:       []model.TopPlayer{},
	}
	if len(ranked) == 0 {
		return summary
	}

	total := 0
	for _, r := range ranked {
		summary.TierDistribution[r.Tier]++
		total += r.Score
	}
	summary.TotalPlayers = len(ranked)
	summary.AverageScore = float64(total) / float64(len(ranked))

	if topK <= 0 {
		topK = DefaultTopK
	}
	if topK > len(ranked) {
		topK = len(ranked)
	}
	for _, r := range ranked[:topK] {
		summary.TopPlayers = append(summary.TopPlayers, model.TopPlayer{
			Rank:     r.Rank,
			Name:     r.PlayerName,
			Position: r.Position,
			Score:    r.Score,
			Tier:     r.Tier,
		})
	}
	return summary
}
