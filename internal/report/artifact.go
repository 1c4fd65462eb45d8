package report

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/UtahNetScout/GoalieScout/internal/model"
)

// Artifact is the final JSON document: summary first, then the ranked
// player reports.
type Artifact struct {
	Summary       model.SummaryStats  `json:"summary"`
	PlayerReports []model.ScoreReport `json:"player_reports"`
}

// WriteArtifact writes the indented JSON artifact to path.
func WriteArtifact(path string, summary model.SummaryStats, ranked []model.ScoreReport) error {
	doc := Artifact{Summary: summary, PlayerReports: ranked}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal reports: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
