package migrations

import (
	"sort"
	"strings"
	"testing"
)

func TestSqlFiles(t *testing.T) {
	names, err := sqlFiles()
	if err != nil {
		t.Fatalf("sqlFiles returned error: %v", err)
	}
	if len(names) == 0 {
		t.Fatal("expected at least one migration")
	}
	if !sort.StringsAreSorted(names) {
		t.Errorf("expected migrations in apply order, got %v", names)
	}
}

func TestEventsMigration(t *testing.T) {
	sql, err := files.ReadFile("001_events.sql")
	if err != nil {
		t.Fatalf("failed to read events migration: %v", err)
	}

	// The columns the event repository selects must all exist
	for _, column := range []string{
		"id", "title", "date", "time", "location", "description",
		"category", "image", "price_range", "status",
		"tickets_sold", "revenue", "total_tickets", "created_at",
	} {
		if !strings.Contains(string(sql), column) {
			t.Errorf("events migration is missing column %q", column)
		}
	}
}
