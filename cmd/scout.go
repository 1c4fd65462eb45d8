package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/UtahNetScout/GoalieScout/internal/dataset"
	"github.com/UtahNetScout/GoalieScout/internal/metrics"
	"github.com/UtahNetScout/GoalieScout/internal/model"
	"github.com/UtahNetScout/GoalieScout/internal/report"
	"github.com/UtahNetScout/GoalieScout/internal/scoring"
	"github.com/UtahNetScout/GoalieScout/internal/storage"
)

var (
	scoutEvents    string
	scoutTracking  string
	scoutProvider  string
	scoutModel     string
	scoutAPIKey    string
	scoutOllamaURL string
	scoutMinEvents int
	scoutTopK      int
	scoutOut       string
)

var scoutCmd = &cobra.Command{
	Use:   "scout",
	Short: "Analyze a dataset and rank its players",
	Long: `Loads the event CSV (and optionally the tracking CSV), computes movement
metrics per player, generates AI scouting reports and scores, and ranks
the batch. Results are stored; re-running on the same inputs shows the
cached run.`,
	Args: cobra.NoArgs,
	RunE: runScout,
}

func init() {
	defaultMinEvents := 10
	if v, err := strconv.Atoi(os.Getenv("MIN_EVENTS_THRESHOLD")); err == nil {
		defaultMinEvents = v
	}

	scoutCmd.Flags().StringVar(&scoutEvents, "events", "", "path to event CSV (required)")
	scoutCmd.Flags().StringVar(&scoutTracking, "tracking", "", "path to tracking CSV")
	scoutCmd.Flags().StringVar(&scoutProvider, "provider", envDefault("AI_PROVIDER", "ollama"), "scoring provider: anthropic, ollama or fixed")
	scoutCmd.Flags().StringVar(&scoutModel, "model", "", "model override for the scoring provider")
	scoutCmd.Flags().StringVar(&scoutAPIKey, "api-key", "", "Anthropic API key (defaults to $ANTHROPIC_API_KEY)")
	scoutCmd.Flags().StringVar(&scoutOllamaURL, "ollama-url", "", "Ollama base URL (defaults to $OLLAMA_BASE_URL)")
	scoutCmd.Flags().IntVar(&scoutMinEvents, "min-events", defaultMinEvents, "skip players with fewer event rows")
	scoutCmd.Flags().IntVar(&scoutTopK, "top", report.DefaultTopK, "how many players the summary highlights")
	scoutCmd.Flags().StringVar(&scoutOut, "out", "", "write the JSON artifact to this path")
	scoutCmd.MarkFlagRequired("events")
}

func runScout(cmd *cobra.Command, args []string) error {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return fmt.Errorf("create db dir: %w", err)
	}
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	logger.Debug("loading dataset",
		zap.String("events", scoutEvents), zap.String("tracking", scoutTracking))
	ds, err := dataset.Load(scoutEvents, scoutTracking)
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}

	exists, err := db.RunExists(ds.Hash)
	if err != nil {
		return fmt.Errorf("check run: %w", err)
	}
	if exists {
		fmt.Fprintf(os.Stdout, "Dataset %s already analyzed, showing cached results.\n\n", ds.Hash[:12])
		return showByHash(db, ds.Hash)
	}

	apiKey := scoutAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("ANTHROPIC_API_KEY")
	}
	ollamaURL := scoutOllamaURL
	if ollamaURL == "" {
		ollamaURL = os.Getenv("OLLAMA_BASE_URL")
	}
	provider, err := scoring.New(scoutProvider, scoring.Config{
		AnthropicAPIKey: apiKey,
		AnthropicModel:  scoutModel,
		OllamaBaseURL:   ollamaURL,
		OllamaModel:     scoutModel,
	})
	if err != nil {
		return fmt.Errorf("init provider: %w", err)
	}
	logger.Info("analyzing dataset",
		zap.String("hash", ds.Hash[:12]), zap.String("provider", provider.Name()))

	players := ds.Players()
	if len(players) == 0 {
		return fmt.Errorf("no players found in %s: need resolvable id and name columns", scoutEvents)
	}

	engine := metrics.NewEngine()
	generator := report.NewGenerator(provider)
	ctx := cmd.Context()

	var reports []model.ScoreReport
	for _, p := range players {
		events := ds.PlayerEvents(p.PlayerID)
		if events.Len() < scoutMinEvents {
			logger.Debug("skipping player below event threshold",
				zap.String("player", p.Name), zap.Int("events", events.Len()))
			continue
		}

		tracking := ds.PlayerTracking(p.PlayerID)
		metricSet := engine.ComputeAll(tracking, events, p.Role)
		position := ds.PositionString(p.PlayerID)

		fmt.Fprintf(os.Stdout, "Analyzing %s (%s)...\n", p.Name, position)
		reports = append(reports, generator.GeneratePlayerReport(ctx, p, position, metricSet))
	}
	if len(reports) == 0 {
		return fmt.Errorf("no players met the minimum of %d events", scoutMinEvents)
	}

	ranked := report.RankPlayers(reports)
	summary := report.BuildSummary(ranked, scoutTopK)

	run := model.RunSummary{
		DatasetHash:  ds.Hash,
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
		Provider:     provider.Name(),
		TotalPlayers: summary.TotalPlayers,
		AverageScore: summary.AverageScore,
	}
	if err := db.InsertRun(run); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	if err := db.InsertPlayerReports(ds.Hash, ranked); err != nil {
		return fmt.Errorf("insert player reports: %w", err)
	}

	fmt.Fprintln(os.Stdout)
	report.PrintRankingTable(os.Stdout, ranked)
	report.PrintSummary(os.Stdout, summary)

	if scoutOut != "" {
		if err := report.WriteArtifact(scoutOut, summary, ranked); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "\nWrote %s\n", scoutOut)
	}
	return nil
}

func showByHash(db *storage.DB, hash string) error {
	run, err := db.GetRunByPrefix(hash)
	if err != nil || run == nil {
		return fmt.Errorf("run not found: %s", hash)
	}
	ranked, err := db.GetPlayerReports(run.DatasetHash)
	if err != nil {
		return fmt.Errorf("get player reports: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Run %s  (%s, provider %s)\n\n", run.DatasetHash[:12], run.CreatedAt, run.Provider)
	report.PrintRankingTable(os.Stdout, ranked)
	report.PrintSummary(os.Stdout, report.BuildSummary(ranked, report.DefaultTopK))
	return nil
}
