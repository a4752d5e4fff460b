package news

import (
	"context"
	"errors"
	"testing"
	"time"

	"passabola/models"
	"passabola/store"
)

func newTestRepository() *Repository {
	r := NewRepository(store.NewMemory())
	r.now = func() time.Time { return time.Date(2025, time.June, 10, 12, 0, 0, 0, time.Local) }
	return r
}

func TestEmptyStoreServesFallbackFeed(t *testing.T) {
	ctx := context.Background()
	r := newTestRepository()

	got := r.ListPublished(ctx, "all")
	if len(got) != 6 {
		t.Fatalf("fallback feed should hold 6 articles, got %d", len(got))
	}
	for _, a := range got {
		if !a.Published {
			t.Fatalf("fallback article should be published: %+v", a)
		}
	}
}

func TestStoredArticlesReplaceFallback(t *testing.T) {
	ctx := context.Background()
	r := newTestRepository()

	created, err := r.Create(ctx, models.Article{Title: "Final marcada", Category: "campeonatos", Published: true})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	got := r.ListPublished(ctx, "all")
	if len(got) != 1 || got[0].ID != created.ID {
		t.Fatalf("stored articles should replace the fallback entirely, got %+v", got)
	}
}

func TestListPublishedFiltersCategoryAndState(t *testing.T) {
	ctx := context.Background()
	r := newTestRepository()

	r.Create(ctx, models.Article{Title: "a", Category: "campeonatos", Published: true})
	r.Create(ctx, models.Article{Title: "b", Category: "jogadoras", Published: true})
	r.Create(ctx, models.Article{Title: "c", Category: "campeonatos", Published: false})

	got := r.ListPublished(ctx, "campeonatos")
	if len(got) != 1 || got[0].Title != "a" {
		t.Fatalf("expected only the published campeonatos article, got %+v", got)
	}
}

func TestSearch(t *testing.T) {
	articles := []models.Article{
		{Title: "Seleção convocada", Description: "lista completa"},
		{Title: "Nova técnica", Description: "treinos da seleção"},
		{Title: "Mercado da bola", Description: "transferências"},
	}

	hits := Search(articles, "SELEÇÃO")
	if len(hits) != 2 {
		t.Fatalf("search should match title and description, got %d hits", len(hits))
	}
	if len(Search(articles, "")) != 3 {
		t.Fatal("empty query should pass everything through")
	}
}

func TestSortRecentAndPopular(t *testing.T) {
	articles := []models.Article{
		{ID: "a", Date: "2025-06-01", ReadTime: 3},
		{ID: "b", Date: "2025-06-09", ReadTime: 8},
		{ID: "c", Date: "2025-06-05", ReadTime: 5},
	}

	recent := Sort(articles, "recent")
	if recent[0].ID != "b" || recent[2].ID != "a" {
		t.Fatalf("recent sort wrong: %+v", recent)
	}

	popular := Sort(articles, "popular")
	if popular[0].ID != "b" || popular[2].ID != "a" {
		t.Fatalf("popular sort wrong: %+v", popular)
	}

	trending := Sort(articles, "trending")
	if len(trending) != 3 {
		t.Fatalf("trending should keep every article, got %d", len(trending))
	}
}

func TestTogglePublish(t *testing.T) {
	ctx := context.Background()
	r := newTestRepository()

	created, _ := r.Create(ctx, models.Article{Title: "rascunho", Category: "geral"})
	toggled, err := r.TogglePublish(ctx, created.ID)
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if !toggled.Published || toggled.PublishedAt.IsZero() {
		t.Fatalf("toggle should publish and stamp the article: %+v", toggled)
	}

	if _, err := r.TogglePublish(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFavoritesArePerAccount(t *testing.T) {
	ctx := context.Background()
	r := newTestRepository()

	added, err := r.ToggleFavorite(ctx, "u1", "art1")
	if err != nil || !added {
		t.Fatalf("first toggle should add: added=%v err=%v", added, err)
	}
	r.ToggleFavorite(ctx, "u1", "art2")

	if got := r.Favorites(ctx, "u1"); len(got) != 2 {
		t.Fatalf("expected 2 favorites, got %+v", got)
	}
	if got := r.Favorites(ctx, "u2"); len(got) != 0 {
		t.Fatalf("favorites should not leak across accounts: %+v", got)
	}

	removed, err := r.ToggleFavorite(ctx, "u1", "art1")
	if err != nil || removed {
		t.Fatalf("second toggle should remove: added=%v err=%v", removed, err)
	}
	if got := r.Favorites(ctx, "u1"); len(got) != 1 || got[0] != "art2" {
		t.Fatalf("unexpected favorites after removal: %+v", got)
	}
}
