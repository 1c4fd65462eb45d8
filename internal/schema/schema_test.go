package schema

import "testing"

func TestResolve_PriorityOrder(t *testing.T) {
	// Both "player_id" and "id" present — the higher-priority alias wins.
	cols := []string{"id", "player_id", "frame"}
	got, ok := Resolve(cols, FieldPlayerID)
	if !ok {
		t.Fatal("expected player_id to resolve")
	}
	if got != "player_id" {
		t.Errorf("expected highest-priority alias player_id, got %q", got)
	}
}

func TestResolve_FallbackAlias(t *testing.T) {
	cols := []string{"x_coord", "y_coord", "game_time"}
	cases := []struct {
		field string
		want  string
	}{
		{FieldX, "x_coord"},
		{FieldY, "y_coord"},
		{FieldTime, "game_time"},
	}
	for _, c := range cases {
		got, ok := Resolve(cols, c.field)
		if !ok || got != c.want {
			t.Errorf("Resolve(%s): want %q, got %q ok=%v", c.field, c.want, got, ok)
		}
	}
}

func TestResolve_NotFound(t *testing.T) {
	cols := []string{"foo", "bar"}
	got, ok := Resolve(cols, FieldX)
	if ok || got != "" {
		t.Errorf("expected not-found, got %q ok=%v", got, ok)
	}

	// Unknown logical field resolves to not-found, no panic.
	got, ok = Resolve(cols, "no_such_field")
	if ok || got != "" {
		t.Errorf("unknown field: expected not-found, got %q ok=%v", got, ok)
	}
}

func TestResolve_Deterministic(t *testing.T) {
	cols := []string{"timestamp", "frame", "time"}
	first, _ := Resolve(cols, FieldTime)
	for i := 0; i < 100; i++ {
		got, _ := Resolve(cols, FieldTime)
		if got != first {
			t.Fatalf("resolution not deterministic: %q vs %q", first, got)
		}
	}
	if first != "time" {
		t.Errorf("expected time to win over timestamp/frame, got %q", first)
	}
}
