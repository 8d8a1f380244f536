package search

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"totetracker/internal/db"
	"totetracker/internal/model"
	"totetracker/internal/store"
)

func seed(t *testing.T) (*sql.DB, *model.Tote) {
	t.Helper()
	database := db.NewTestDB(t)
	ctx := context.Background()

	tote, err := store.CreateTote(ctx, database, "Winter Gear", "Cold weather storage", "")
	if err != nil {
		t.Fatalf("CreateTote: %v", err)
	}
	if _, err := store.CreateItem(ctx, database, "Ski Gloves", "Waterproof", "Columbia", 2, &tote.ID); err != nil {
		t.Fatalf("CreateItem: %v", err)
	}
	if _, err := store.CreateItem(ctx, database, "Beach Towel", "", "", 1, nil); err != nil {
		t.Fatalf("CreateItem: %v", err)
	}
	return database, tote
}

func TestSearchEmptyQuery(t *testing.T) {
	database, _ := seed(t)
	engine := New(database)

	for _, q := range []string{"", "   ", "\t"} {
		results, err := engine.Search(context.Background(), q)
		if err != nil {
			t.Fatalf("Search(%q): %v", q, err)
		}
		if len(results.Items) != 0 || len(results.Totes) != 0 {
			t.Errorf("Search(%q): expected empty results, got %d items, %d totes",
				q, len(results.Items), len(results.Totes))
		}
	}
}

func TestSearchMatchesAnyItemField(t *testing.T) {
	database, tote := seed(t)
	engine := New(database)
	ctx := context.Background()

	// Name, brand, description, and owning tote name should all hit the
	// same item, case-insensitively.
	for _, q := range []string{"ski", "COLUMBIA", "waterproof", "winter gear"} {
		results, err := engine.Search(ctx, q)
		if err != nil {
			t.Fatalf("Search(%q): %v", q, err)
		}
		if len(results.Items) != 1 {
			t.Fatalf("Search(%q): expected 1 item, got %d", q, len(results.Items))
		}
		got := results.Items[0]
		if got.Name != "Ski Gloves" {
			t.Errorf("Search(%q): expected Ski Gloves, got %q", q, got.Name)
		}
		if got.ToteName == nil || *got.ToteName != "Winter Gear" {
			t.Errorf("Search(%q): expected joined tote name, got %v", q, got.ToteName)
		}
		if got.ToteID == nil || *got.ToteID != tote.ID {
			t.Errorf("Search(%q): expected tote id %q", q, tote.ID)
		}
	}
}

func TestSearchUnassignedItemNoToteNameMatch(t *testing.T) {
	database, _ := seed(t)
	engine := New(database)

	// "winter" matches the tote name, so it must not surface the unassigned
	// Beach Towel.
	results, err := engine.Search(context.Background(), "winter")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	for _, item := range results.Items {
		if item.Name == "Beach Towel" {
			t.Error("unassigned item matched on tote name")
		}
	}
	if len(results.Totes) != 1 || results.Totes[0].Name != "Winter Gear" {
		t.Errorf("expected the tote itself to match, got %+v", results.Totes)
	}
}

func TestSearchToteFields(t *testing.T) {
	database, tote := seed(t)
	engine := New(database)

	// Tote description match, with live item count.
	results, err := engine.Search(context.Background(), "cold weather")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results.Totes) != 1 {
		t.Fatalf("expected 1 tote, got %d", len(results.Totes))
	}
	if results.Totes[0].ID != tote.ID || results.Totes[0].ItemCount != 1 {
		t.Errorf("unexpected tote summary: %+v", results.Totes[0])
	}
}

func TestSearchNoMatch(t *testing.T) {
	database, _ := seed(t)
	engine := New(database)

	results, err := engine.Search(context.Background(), "xyzzy")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results.Items) != 0 || len(results.Totes) != 0 {
		t.Errorf("expected no matches, got %+v", results)
	}
}

func TestSearchStoreUnavailable(t *testing.T) {
	database, _ := seed(t)
	database.Close()
	engine := New(database)

	results, err := engine.Search(context.Background(), "ski")
	if !errors.Is(err, model.ErrStoreUnavailable) {
		t.Errorf("expected ErrStoreUnavailable, got %v", err)
	}
	if results != nil {
		t.Errorf("expected no partial results on store failure, got %+v", results)
	}
}
