package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/UtahNetScout/GoalieScout/internal/report"
	"github.com/UtahNetScout/GoalieScout/internal/storage"
)

var (
	exportOut  string
	exportTopK int
)

var exportCmd = &cobra.Command{
	Use:   "export <hash-prefix>",
	Short: "Export a stored run as a JSON artifact",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "player_reports.json", "output file path")
	exportCmd.Flags().IntVar(&exportTopK, "top", report.DefaultTopK, "how many players the summary highlights")
}

func runExport(cmd *cobra.Command, args []string) error {
	prefix := args[0]

	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	run, err := db.GetRunByPrefix(prefix)
	if err != nil {
		return fmt.Errorf("query run: %w", err)
	}
	if run == nil {
		return fmt.Errorf("no run found with hash prefix %q", prefix)
	}

	ranked, err := db.GetPlayerReports(run.DatasetHash)
	if err != nil {
		return fmt.Errorf("get player reports: %w", err)
	}

	summary := report.BuildSummary(ranked, exportTopK)
	if err := report.WriteArtifact(exportOut, summary, ranked); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Wrote %s\n", exportOut)
	return nil
}
