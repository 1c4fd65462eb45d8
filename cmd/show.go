package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/UtahNetScout/GoalieScout/internal/storage"
)

var showNotes bool

var showCmd = &cobra.Command{
	Use:   "show <hash-prefix>",
	Short: "Show a stored run by hash prefix",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	showCmd.Flags().BoolVar(&showNotes, "notes", false, "print each player's scouting notes")
}

func runShow(cmd *cobra.Command, args []string) error {
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
		fmt.Fprintf(os.Stderr, "No run found with hash prefix %q\n", prefix)
		return nil
	}

	if err := showByHash(db, run.DatasetHash); err != nil {
		return err
	}

	if showNotes {
		reports, err := db.GetPlayerReports(run.DatasetHash)
		if err != nil {
			return fmt.Errorf("get player reports: %w", err)
		}
		for _, r := range reports {
			fmt.Fprintf(os.Stdout, "\n#%d %s (%s), %d/100\n%s\n", r.Rank, r.PlayerName, r.Position, r.Score, r.ScoutingNotes)
		}
	}
	return nil
}
