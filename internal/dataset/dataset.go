// Package dataset loads the event and tracking CSV exports and slices them
// per player. Column naming is never trusted: every lookup goes through the
// schema alias tables, so exports from different vendors load unchanged.
package dataset

import (
	"crypto/sha256"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/UtahNetScout/GoalieScout/internal/model"
	"github.com/UtahNetScout/GoalieScout/internal/schema"
)

// Table is an in-memory tabular input: a header and string-valued rows.
type Table struct {
	Columns []string
	Rows    [][]string

	index map[string]int
}

// NewTable builds a table from a header and rows. Rows shorter than the
// header are kept; missing cells read as empty strings.
func NewTable(columns []string, rows [][]string) *Table {
	idx := make(map[string]int, len(columns))
	for i, c := range columns {
		idx[c] = i
	}
	return &Table{Columns: columns, Rows: rows, index: idx}
}

// ColumnIndex returns the position of a physical column name.
func (t *Table) ColumnIndex(name string) (int, bool) {
	i, ok := t.index[name]
	return i, ok
}

// Value returns the cell at (row, col), or "" when the row is ragged.
func (t *Table) Value(row, col int) string {
	if col >= len(t.Rows[row]) {
		return ""
	}
	return t.Rows[row][col]
}

// Float parses the cell at (row, col) as a float64.
func (t *Table) Float(row, col int) (float64, bool) {
	v, err := strconv.ParseFloat(t.Value(row, col), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Len returns the number of data rows.
func (t *Table) Len() int { return len(t.Rows) }

// FilterEq returns a new table containing the rows whose cell in the given
// column equals value. The header is shared, rows are not copied.
func (t *Table) FilterEq(col int, value string) *Table {
	var rows [][]string
	for i := range t.Rows {
		if t.Value(i, col) == value {
			rows = append(rows, t.Rows[i])
		}
	}
	return NewTable(t.Columns, rows)
}

// Dataset is one loaded pair of event and tracking tables. Hash is the
// sha256 over both input files; it keys stored runs so re-analyzing the
// same exports reuses the cached results.
type Dataset struct {
	Hash     string
	Events   *Table
	Tracking *Table
}

// Load reads the event and tracking CSVs. The tracking path may be empty:
// kinematic metrics then degrade to their neutral defaults downstream.
func Load(eventsPath, trackingPath string) (*Dataset, error) {
	h := sha256.New()

	events, err := loadCSV(eventsPath, h)
	if err != nil {
		return nil, fmt.Errorf("load events: %w", err)
	}

	tracking := NewTable(nil, nil)
	if trackingPath != "" {
		tracking, err = loadCSV(trackingPath, h)
		if err != nil {
			return nil, fmt.Errorf("load tracking: %w", err)
		}
	}

	return &Dataset{
		Hash:     fmt.Sprintf("%x", h.Sum(nil)),
		Events:   events,
		Tracking: tracking,
	}, nil
}

func loadCSV(path string, h io.Writer) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(io.TeeReader(f, h))
	r.FieldsPerRecord = -1 // tolerate ragged rows

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(records) == 0 {
		return NewTable(nil, nil), nil
	}
	return NewTable(records[0], records[1:]), nil
}

// Players extracts the unique players from the event table, first-seen
// order preserved. Requires resolvable identity and name columns; position
// and team are optional and default to unknown.
func (d *Dataset) Players() []model.PlayerProfile {
	idCol, ok := schema.Resolve(d.Events.Columns, schema.FieldPlayerID)
	if !ok {
		return nil
	}
	nameCol, ok := schema.Resolve(d.Events.Columns, schema.FieldName)
	if !ok {
		return nil
	}
	idIdx, _ := d.Events.ColumnIndex(idCol)
	nameIdx, _ := d.Events.ColumnIndex(nameCol)

	posIdx, teamIdx := -1, -1
	if posCol, ok := schema.Resolve(d.Events.Columns, schema.FieldPosition); ok {
		posIdx, _ = d.Events.ColumnIndex(posCol)
	}
	if teamCol, ok := schema.Resolve(d.Events.Columns, schema.FieldTeam); ok {
		teamIdx, _ = d.Events.ColumnIndex(teamCol)
	}

	seen := make(map[string]struct{})
	var players []model.PlayerProfile
	for i := range d.Events.Rows {
		id := d.Events.Value(i, idIdx)
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		p := model.PlayerProfile{
			PlayerID: id,
			Name:     d.Events.Value(i, nameIdx),
			Team:     "Unknown",
		}
		if posIdx >= 0 {
			p.Role = model.ParseRole(d.Events.Value(i, posIdx))
		}
		if teamIdx >= 0 {
			if team := d.Events.Value(i, teamIdx); team != "" {
				p.Team = team
			}
		}
		players = append(players, p)
	}
	return players
}

// PlayerTracking returns the tracking rows for one player. An unresolvable
// identity column yields an empty table, not an error.
func (d *Dataset) PlayerTracking(playerID string) *Table {
	return filterByPlayer(d.Tracking, playerID)
}

// PlayerEvents returns the event rows for one player.
func (d *Dataset) PlayerEvents(playerID string) *Table {
	return filterByPlayer(d.Events, playerID)
}

// PositionString returns the raw position cell for a player's first event
// row, for display; falls back to "Unknown".
func (d *Dataset) PositionString(playerID string) string {
	posCol, ok := schema.Resolve(d.Events.Columns, schema.FieldPosition)
	if !ok {
		return "Unknown"
	}
	posIdx, _ := d.Events.ColumnIndex(posCol)

	events := d.PlayerEvents(playerID)
	for i := range events.Rows {
		if v := events.Value(i, posIdx); v != "" {
			return v
		}
	}
	return "Unknown"
}

func filterByPlayer(t *Table, playerID string) *Table {
	idCol, ok := schema.Resolve(t.Columns, schema.FieldPlayerID)
	if !ok {
		return NewTable(t.Columns, nil)
	}
	idIdx, _ := t.ColumnIndex(idCol)
	return t.FilterEq(idIdx, playerID)
}
