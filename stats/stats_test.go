package stats

import (
	"context"
	"testing"

	"passabola/models"
	"passabola/store"
	"passabola/userdir"
)

func newTestAggregator() (*Aggregator, *store.MemoryStore) {
	mem := store.NewMemory()
	return NewAggregator(mem, userdir.New(mem)), mem
}

func TestRefreshCountsCollections(t *testing.T) {
	ctx := context.Background()
	agg, _ := newTestAggregator()

	agg.RecordSale(ctx, models.Sale{ID: "s1", Total: 100})
	agg.RecordSale(ctx, models.Sale{ID: "s2", Total: 49.5})

	snap := agg.Refresh(ctx)
	if snap.TotalUsers != 2 {
		t.Fatalf("expected the 2 seeded users, got %d", snap.TotalUsers)
	}
	if snap.TotalGames != 0 {
		t.Fatalf("expected no games, got %d", snap.TotalGames)
	}
	if snap.TotalSales != 149.5 {
		t.Fatalf("expected summed sales 149.5, got %v", snap.TotalSales)
	}
	if snap.GrowthRate != 0 {
		t.Fatalf("baseline population should read 0%% growth, got %d", snap.GrowthRate)
	}
}

func TestGrowthRateAgainstBaseline(t *testing.T) {
	ctx := context.Background()
	agg, _ := newTestAggregator()

	if _, err := agg.dir.Register(ctx, "Ana", "ana@x.com", "p1", models.RoleUser); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if _, err := agg.dir.Register(ctx, "Bia", "bia@x.com", "p2", models.RoleUser); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	snap := agg.Refresh(ctx)
	if snap.GrowthRate != 100 {
		t.Fatalf("4 users over a baseline of 2 should be 100%%, got %d", snap.GrowthRate)
	}
}

func TestAdminUsesCachedSnapshot(t *testing.T) {
	ctx := context.Background()
	agg, _ := newTestAggregator()

	first := agg.Refresh(ctx)
	agg.RecordSale(ctx, models.Sale{ID: "s1", Total: 10})

	cached := agg.Admin(ctx)
	if cached.TotalSales != first.TotalSales {
		t.Fatal("Admin should serve the cached snapshot, not recompute")
	}

	refreshed := agg.Refresh(ctx)
	if refreshed.TotalSales != 10 {
		t.Fatalf("refresh should pick up the new sale, got %v", refreshed.TotalSales)
	}
}

func TestUserStatsDefault(t *testing.T) {
	ctx := context.Background()
	agg, _ := newTestAggregator()

	s := agg.User(ctx, "u1")
	if s.Rating != 5.0 || s.GamesPlayed != 0 {
		t.Fatalf("unexpected default snapshot: %+v", s)
	}

	// default is installed, later reads see the same value
	again := agg.User(ctx, "u1")
	if again.Rating != 5.0 {
		t.Fatalf("installed default lost: %+v", again)
	}
}

func TestUpcomingGamesCache(t *testing.T) {
	ctx := context.Background()
	agg, _ := newTestAggregator()

	agg.AddUpcomingGame(ctx, "u1", models.Game{ID: "g1", Title: "Pelada", Date: "2025-06-15", Location: "Arena"})
	agg.AddUpcomingGame(ctx, "u1", models.Game{ID: "g2", Title: "Amistoso", Date: "2025-06-16", Location: "Quadra"})

	got := agg.UpcomingGames(ctx, "u1")
	if len(got) != 2 {
		t.Fatalf("expected 2 upcoming games, got %d", len(got))
	}
	if got[0].GameID != "g2" {
		t.Fatalf("newest game should be first, got %+v", got[0])
	}
	if len(agg.UpcomingGames(ctx, "u2")) != 0 {
		t.Fatal("caches should not leak across accounts")
	}
}
