package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/UtahNetScout/GoalieScout/internal/model"
)

// RunExists returns true if a run with the given dataset hash is already stored.
func (db *DB) RunExists(hash string) (bool, error) {
	var count int
	err := db.conn.QueryRow("SELECT COUNT(1) FROM runs WHERE hash = ?", hash).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// InsertRun inserts a run record. Uses INSERT OR REPLACE for idempotency.
func (db *DB) InsertRun(run model.RunSummary) error {
	_, err := db.conn.Exec(`
		INSERT OR REPLACE INTO runs(hash, created_at, provider, total_players, average_score)
		VALUES (?, ?, ?, ?, ?)`,
		run.DatasetHash, run.CreatedAt, run.Provider, run.TotalPlayers, run.AverageScore,
	)
	return err
}

// InsertPlayerReports bulk-inserts a run's player reports in a transaction.
func (db *DB) InsertPlayerReports(runHash string, reports []model.ScoreReport) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO player_reports(
			run_hash, player_id, player_name, position,
			metrics_json, scouting_notes, score, tier, rank
		) VALUES (?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range reports {
		metricsJSON, err := json.Marshal(r.Metrics)
		if err != nil {
			return fmt.Errorf("marshal metrics for %s: %w", r.PlayerID, err)
		}
		_, err = stmt.Exec(
			runHash, r.PlayerID, r.PlayerName, r.Position,
			string(metricsJSON), r.ScoutingNotes, r.Score, string(r.Tier), r.Rank,
		)
		if err != nil {
			return fmt.Errorf("insert player_reports for %s: %w", r.PlayerID, err)
		}
	}
	return tx.Commit()
}

// ListRuns returns all stored run summaries ordered by created_at desc.
func (db *DB) ListRuns() ([]model.RunSummary, error) {
	rows, err := db.conn.Query(`
		SELECT hash, created_at, provider, total_players, average_score
		FROM runs ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.RunSummary
	for rows.Next() {
		var s model.RunSummary
		if err := rows.Scan(&s.DatasetHash, &s.CreatedAt, &s.Provider,
			&s.TotalPlayers, &s.AverageScore); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// GetRunByPrefix finds the first run whose hash starts with the given prefix.
func (db *DB) GetRunByPrefix(prefix string) (*model.RunSummary, error) {
	var s model.RunSummary
	err := db.conn.QueryRow(`
		SELECT hash, created_at, provider, total_players, average_score
		FROM runs WHERE hash LIKE ? LIMIT 1`, prefix+"%").
		Scan(&s.DatasetHash, &s.CreatedAt, &s.Provider, &s.TotalPlayers, &s.AverageScore)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// GetPlayerReports returns all player reports for a run hash, ordered by rank.
func (db *DB) GetPlayerReports(runHash string) ([]model.ScoreReport, error) {
	rows, err := db.conn.Query(`
		SELECT player_id, player_name, position,
		       metrics_json, scouting_notes, score, tier, rank
		FROM player_reports WHERE run_hash = ?
		ORDER BY rank ASC`, runHash)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.ScoreReport
	for rows.Next() {
		var r model.ScoreReport
		var metricsJSON, tierStr string
		if err := rows.Scan(
			&r.PlayerID, &r.PlayerName, &r.Position,
			&metricsJSON, &r.ScoutingNotes, &r.Score, &tierStr, &r.Rank,
		); err != nil {
			return nil, err
		}
		r.Tier = model.Tier(tierStr)
		r.Metrics = model.MetricSet{}
		if err := json.Unmarshal([]byte(metricsJSON), &r.Metrics); err != nil {
			return nil, fmt.Errorf("unmarshal metrics for %s: %w", r.PlayerID, err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// DeleteRun removes a run and, via the cascade, its player reports.
func (db *DB) DeleteRun(hash string) error {
	res, err := db.conn.Exec("DELETE FROM runs WHERE hash = ?", hash)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("no run with hash %s", hash)
	}
	return nil
}
