package catalog

import (
	"context"
	"errors"
	"testing"

	"passabola/models"
	"passabola/store"
)

func TestSeededCatalogShipsComplete(t *testing.T) {
	ctx := context.Background()
	m := NewManager(store.NewMemory())

	got := m.ListForCatalog(ctx)
	if len(got) != 15 {
		t.Fatalf("expected the 15 seeded products, got %d", len(got))
	}
	for _, p := range got {
		if !p.Seeded || !p.Published {
			t.Fatalf("seeded product should be published and flagged: %+v", p)
		}
	}
}

func TestSeededProductsAreImmutable(t *testing.T) {
	ctx := context.Background()
	m := NewManager(store.NewMemory())

	if _, err := m.Update(ctx, "1", models.Product{Name: "X", Category: "c"}); !errors.Is(err, ErrImmutableRecord) {
		t.Fatalf("update of seeded product: expected ErrImmutableRecord, got %v", err)
	}
	if err := m.Delete(ctx, "1"); !errors.Is(err, ErrImmutableRecord) {
		t.Fatalf("delete of seeded product: expected ErrImmutableRecord, got %v", err)
	}
	if _, err := m.TogglePublish(ctx, "1"); !errors.Is(err, ErrImmutableRecord) {
		t.Fatalf("toggle of seeded product: expected ErrImmutableRecord, got %v", err)
	}
}

func TestPublishToggleControlsCatalogVisibility(t *testing.T) {
	ctx := context.Background()
	m := NewManager(store.NewMemory())

	created, err := m.Create(ctx, models.Product{Name: "Caneca Passa Bola", Category: "acessorios", Price: 29.9, Stock: 5})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.Published {
		t.Fatal("new products should start unpublished")
	}
	if len(m.ListForCatalog(ctx)) != 15 {
		t.Fatal("unpublished product should not appear in the shop")
	}
	if len(m.ListAdmin(ctx)) != 16 {
		t.Fatal("admin view should include the unpublished product")
	}

	toggled, err := m.TogglePublish(ctx, created.ID)
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if !toggled.Published {
		t.Fatal("toggle should publish the product")
	}
	if len(m.ListForCatalog(ctx)) != 16 {
		t.Fatal("published product should appear in the shop")
	}
}

func TestCreateValidation(t *testing.T) {
	ctx := context.Background()
	m := NewManager(store.NewMemory())

	bad := []models.Product{
		{Name: "", Category: "c"},
		{Name: "x", Category: ""},
		{Name: "x", Category: "c", Price: -1},
		{Name: "x", Category: "c", Stock: -1},
	}
	for _, p := range bad {
		if _, err := m.Create(ctx, p); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation for %+v, got %v", p, err)
		}
	}
}

func TestFilterAndSearch(t *testing.T) {
	products := Seeded()

	uniforms := Filter(products, "uniformes")
	if len(uniforms) == 0 {
		t.Fatal("seeded catalog should have uniformes")
	}
	for _, p := range uniforms {
		if p.Category != "uniformes" {
			t.Fatalf("filter leaked category %q", p.Category)
		}
	}
	if len(Filter(products, "all")) != len(products) {
		t.Fatal(`filter "all" should pass everything through`)
	}

	hits := Search(products, "camisa")
	if len(hits) == 0 {
		t.Fatal("search for 'camisa' should hit the seeded jersey")
	}
	if len(Search(products, "")) != len(products) {
		t.Fatal("empty query should pass everything through")
	}
}

func TestSortOrders(t *testing.T) {
	products := Seeded()

	low := Sort(products, "price-low")
	for i := 1; i < len(low); i++ {
		if low[i-1].Price > low[i].Price {
			t.Fatalf("price-low out of order at %d: %v > %v", i, low[i-1].Price, low[i].Price)
		}
	}

	high := Sort(products, "price-high")
	for i := 1; i < len(high); i++ {
		if high[i-1].Price < high[i].Price {
			t.Fatalf("price-high out of order at %d", i)
		}
	}

	newest := Sort(products, "newest")
	seenOld := false
	for _, p := range newest {
		if p.BadgeType == "new" && seenOld {
			t.Fatal("newest sort should float 'new'-badged products to the front")
		}
		if p.BadgeType != "new" {
			seenOld = true
		}
	}

	popular := Sort(products, "popular")
	for i := 1; i < len(popular); i++ {
		if popular[i-1].RatingCount < popular[i].RatingCount {
			t.Fatalf("popular out of order at %d", i)
		}
	}
}
