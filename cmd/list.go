package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/UtahNetScout/GoalieScout/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all stored analysis runs",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	runs, err := db.ListRuns()
	if err != nil {
		return fmt.Errorf("list runs: %w", err)
	}
	if len(runs) == 0 {
		fmt.Fprintln(os.Stdout, "No runs stored yet. Run 'goaliescout scout --events <file.csv>' to add one.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-14s  %-20s  %-10s  %8s  %9s\n",
		"HASH", "DATE", "PROVIDER", "PLAYERS", "AVG")
	for _, r := range runs {
		fmt.Fprintf(os.Stdout, "%-14s  %-20s  %-10s  %8d  %9.2f\n",
			r.DatasetHash[:12], r.CreatedAt, r.Provider, r.TotalPlayers, r.AverageScore)
	}
	return nil
}
