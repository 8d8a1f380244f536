package store

import (
	"context"
	"errors"
	"testing"

	"totetracker/internal/db"
	"totetracker/internal/model"
)

func TestCreateAndGetItem(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	item, err := CreateItem(ctx, database, "Ski Gloves", "Insulated", "Columbia", 2, nil)
	if err != nil {
		t.Fatalf("CreateItem: %v", err)
	}
	if item.Name != "Ski Gloves" || item.Brand != "Columbia" || item.Quantity != 2 {
		t.Errorf("unexpected item: %+v", item)
	}
	if item.ToteID != nil {
		t.Error("expected unassigned item")
	}
}

func TestCreateItemDefaultQuantity(t *testing.T) {
	database := db.NewTestDB(t)

	item, err := CreateItem(context.Background(), database, "Rope", "", "", 0, nil)
	if err != nil {
		t.Fatalf("CreateItem: %v", err)
	}
	if item.Quantity != 1 {
		t.Errorf("expected default quantity 1, got %d", item.Quantity)
	}
}

func TestCreateItemValidation(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	if _, err := CreateItem(ctx, database, "", "", "", 1, nil); !errors.Is(err, model.ErrValidation) {
		t.Errorf("expected ErrValidation for empty name, got %v", err)
	}

	missing := "no-such-tote"
	if _, err := CreateItem(ctx, database, "Thing", "", "", 1, &missing); !errors.Is(err, model.ErrValidation) {
		t.Errorf("expected ErrValidation for dangling tote reference, got %v", err)
	}
}

func TestListItemsByTote(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	tote, _ := CreateTote(ctx, database, "Closet", "", "")
	CreateItem(ctx, database, "Coat", "", "", 1, &tote.ID)
	CreateItem(ctx, database, "Umbrella", "", "", 1, nil)

	all, _ := ListItems(ctx, database, "")
	if len(all) != 2 {
		t.Errorf("expected 2 items, got %d", len(all))
	}

	inTote, _ := ListItems(ctx, database, tote.ID)
	if len(inTote) != 1 || inTote[0].Name != "Coat" {
		t.Errorf("expected only the tote's item, got %+v", inTote)
	}
}

func TestListItemsWithTotes(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	tote, _ := CreateTote(ctx, database, "Winter Gear", "", "")
	CreateItem(ctx, database, "Gloves", "", "", 1, &tote.ID)
	CreateItem(ctx, database, "Loose Screw", "", "", 1, nil)

	items, err := ListItemsWithTotes(ctx, database)
	if err != nil {
		t.Fatalf("ListItemsWithTotes: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].ToteName == nil || *items[0].ToteName != "Winter Gear" {
		t.Errorf("expected joined tote name, got %+v", items[0].ToteName)
	}
	if items[1].ToteName != nil {
		t.Errorf("expected nil tote name for unassigned item, got %q", *items[1].ToteName)
	}
}

func TestUpdateItemMove(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	tote, _ := CreateTote(ctx, database, "Attic", "", "")
	item, _ := CreateItem(ctx, database, "Lamp", "", "", 1, &tote.ID)

	// Move to unassigned.
	if err := UpdateItem(ctx, database, item.ID, "Lamp", "", "", 1, nil); err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}
	got, _ := GetItem(ctx, database, item.ID)
	if got.ToteID != nil {
		t.Error("expected item to be unassigned after move")
	}

	// Move back.
	if err := UpdateItem(ctx, database, item.ID, "Lamp", "", "", 1, &tote.ID); err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}
	got, _ = GetItem(ctx, database, item.ID)
	if got.ToteID == nil || *got.ToteID != tote.ID {
		t.Error("expected item to be assigned after move back")
	}
}

func TestDeleteItem(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	item, _ := CreateItem(ctx, database, "Delete Me", "", "", 1, nil)
	if err := DeleteItem(ctx, database, item.ID); err != nil {
		t.Fatalf("DeleteItem: %v", err)
	}

	if _, err := GetItem(ctx, database, item.ID); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
	if err := DeleteItem(ctx, database, item.ID); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("expected ErrNotFound on double delete, got %v", err)
	}
}
