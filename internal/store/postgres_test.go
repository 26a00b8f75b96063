package store_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/joestump/linkcat/internal/store"
	"github.com/joestump/linkcat/internal/testutil"
)

// Runs only when LINKCAT_TEST_POSTGRES_DSN points at a scratch database.
func TestLinkStore_Postgres(t *testing.T) {
	s := store.NewLinkStore(testutil.NewPostgresDB(t))
	ctx := context.Background()

	strong := mustCreate(t, s, store.NewLink{
		URL:         "https://testing.example",
		Title:       "Testing site",
		Description: strPtr("A testing site for testing the site search"),
		Language:    store.English,
	})
	if strong.Description == nil || strong.ImageLink != nil || strong.UpdatedOn != nil {
		t.Errorf("optional fields = %+v", strong)
	}
	mustCreate(t, s, store.NewLink{URL: "https://cooking.example", Title: "Cooking recipes", Language: store.English})
	mustCreate(t, s, store.NewLink{URL: "https://test.example.fr", Title: "Site de test", Language: store.French})
	nature := mustCreate(t, s, store.NewLink{
		URL:         "https://nature.example.fr",
		Title:       "Les chevaux sauvages",
		Description: strPtr("Nous mangeons des pommes"),
		Language:    store.French,
	})

	found, err := s.Search(ctx, "testing site", store.English)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if want := []int64{strong.ID}; !equalIDs(ids(found), want) {
		t.Errorf("Search ids = %v, want %v", ids(found), want)
	}

	for _, q := range []string{"pomme", "cheval"} {
		found, err := s.Search(ctx, q, store.French)
		if err != nil {
			t.Fatalf("Search(%q, fr): %v", q, err)
		}
		if want := []int64{nature.ID}; !equalIDs(ids(found), want) {
			t.Errorf("Search(%q, fr) ids = %v, want %v", q, ids(found), want)
		}
	}

	desc, err := s.List(ctx, store.ListOptions{Order: store.OrderDesc, Offset: store.Some(2)})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(desc) != 2 || desc[1].ID != strong.ID {
		t.Errorf("List(desc, offset 1) ids = %v", ids(desc))
	}

	updated, err := s.UpdateByURL(ctx, strong.URL, store.Patch{Title: store.Some("Renamed")})
	if err != nil {
		t.Fatalf("UpdateByURL: %v", err)
	}
	if updated.UpdatedOn == nil || updated.UpdatedOn.Before(updated.CreatedOn) {
		t.Errorf("updatedOn = %v, createdOn = %v", updated.UpdatedOn, updated.CreatedOn)
	}

	_, err = s.UpdateByID(ctx, strong.ID, store.Patch{Language: store.Some(store.Language("de"))})
	if !errors.Is(err, store.ErrStorage) || !strings.Contains(err.Error(), "links_language_check") {
		t.Errorf("UpdateByID(de) = %v, want StorageError naming links_language_check", err)
	}

	if err := s.DeleteByID(ctx, strong.ID); err != nil {
		t.Fatalf("DeleteByID: %v", err)
	}
	if _, err := s.GetByID(ctx, strong.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("GetByID after delete = %v, want ErrNotFound", err)
	}
}
