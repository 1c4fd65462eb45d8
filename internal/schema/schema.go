// Package schema resolves logical field names against the varying column
// headers found in tracking and event exports. Datasets from different
// vendors spell the same field differently ("x" vs "x_coord" vs
// "x_position"); each logical field carries a fixed, ordered alias list and
// the first alias present in a table wins.
package schema

// Logical field names used by the pipeline.
const (
	FieldPlayerID  = "player_id"
	FieldName      = "name"
	FieldPosition  = "position"
	FieldTeam      = "team"
	FieldX         = "x"
	FieldY         = "y"
	FieldTime      = "time"
	FieldEventType = "event_type"
)

// aliases maps each logical field to its candidate column names in
// priority order. Order is load-bearing: resolution returns the first hit.
var aliases = map[string][]string{
	FieldPlayerID:  {"player_id", "playerId", "id"},
	FieldName:      {"player_name", "playerName", "name", "player"},
	FieldPosition:  {"position", "pos", "player_position"},
	FieldTeam:      {"team", "team_name", "teamName"},
	FieldX:         {"x", "x_coord", "x_position"},
	FieldY:         {"y", "y_coord", "y_position"},
	FieldTime:      {"time", "timestamp", "frame", "game_time"},
	FieldEventType: {"event", "event_type", "type"},
}

// Resolve returns the physical column name for a logical field given the
// columns actually present, and false when no alias matches. Unknown
// logical fields also resolve to not-found; Resolve never errors.
func Resolve(columns []string, field string) (string, bool) {
	present := make(map[string]struct{}, len(columns))
	for _, c := range columns {
		present[c] = struct{}{}
	}
	for _, alias := range aliases[field] {
		if _, ok := present[alias]; ok {
			return alias, true
		}
	}
	return "", false
}

// Aliases returns the alias list for a logical field. Exposed for
// diagnostics; callers must not mutate the returned slice.
func Aliases(field string) []string {
	return aliases[field]
}
