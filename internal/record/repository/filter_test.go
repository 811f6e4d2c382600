package repository

import (
	"strconv"
	"testing"

	"hypermedia-record-api/internal/record"
)

func TestMatchesFilter(t *testing.T) {
	item := record.Record{"name": "Alice Adams", "email": "alice@example.com"}

	t.Run("case-insensitive containment", func(t *testing.T) {
		if !MatchesFilter(item, map[string]string{"name": "ALICE"}) {
			t.Error("expected containment match regardless of case")
		}
	})

	t.Run("AND across keys", func(t *testing.T) {
		if MatchesFilter(item, map[string]string{"name": "alice", "email": "bob"}) {
			t.Error("record passing one key but failing another must be excluded")
		}
	})

	t.Run("empty value disables key", func(t *testing.T) {
		if !MatchesFilter(item, map[string]string{"name": "", "email": "example"}) {
			t.Error("empty filter value should not constrain")
		}
	})

	t.Run("missing field excludes", func(t *testing.T) {
		if MatchesFilter(item, map[string]string{"telephone": "555"}) {
			t.Error("record missing the filtered field must be excluded")
		}
	})

	t.Run("no active keys matches all", func(t *testing.T) {
		if !MatchesFilter(item, map[string]string{}) {
			t.Error("empty filter must match")
		}
	})
}

func TestMakeID(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		id := MakeID()
		if id == "" {
			t.Fatal("empty id")
		}
		if _, err := strconv.ParseInt(id, 36, 64); err != nil {
			t.Fatalf("id %q is not base-36: %v", id, err)
		}
		if seen[id] {
			t.Fatalf("duplicate id after %d draws: %s", i, id)
		}
		seen[id] = true
	}
}
