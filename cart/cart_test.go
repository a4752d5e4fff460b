package cart

import (
	"context"
	"errors"
	"testing"

	"passabola/models"
	"passabola/store"
)

func TestAddMergesSameProduct(t *testing.T) {
	ctx := context.Background()
	m := NewManager(store.NewMemory())

	m.Add(ctx, "u1", models.CartItem{ProductID: "p1", Name: "Bola", Price: 50, Quantity: 1})
	items, err := m.Add(ctx, "u1", models.CartItem{ProductID: "p1", Quantity: 2})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if len(items) != 1 || items[0].Quantity != 3 {
		t.Fatalf("same product should merge into one line, got %+v", items)
	}

	items, _ = m.Add(ctx, "u1", models.CartItem{ProductID: "p2", Quantity: 1})
	if len(items) != 2 {
		t.Fatalf("different product should add a line, got %+v", items)
	}
}

func TestAddDefaultsQuantityToOne(t *testing.T) {
	ctx := context.Background()
	m := NewManager(store.NewMemory())

	items, _ := m.Add(ctx, "u1", models.CartItem{ProductID: "p1"})
	if items[0].Quantity != 1 {
		t.Fatalf("zero quantity should default to 1, got %d", items[0].Quantity)
	}
}

func TestSetQuantityZeroRemovesLine(t *testing.T) {
	ctx := context.Background()
	m := NewManager(store.NewMemory())

	m.Add(ctx, "u1", models.CartItem{ProductID: "p1", Quantity: 2})
	m.Add(ctx, "u1", models.CartItem{ProductID: "p2", Quantity: 1})

	items, err := m.SetQuantity(ctx, "u1", "p1", 5)
	if err != nil {
		t.Fatalf("set quantity failed: %v", err)
	}
	if items[0].Quantity != 5 {
		t.Fatalf("quantity not pinned: %+v", items)
	}

	items, _ = m.SetQuantity(ctx, "u1", "p1", 0)
	if len(items) != 1 || items[0].ProductID != "p2" {
		t.Fatalf("zero quantity should remove the line, got %+v", items)
	}
}

func TestCartsAreScopedPerAccount(t *testing.T) {
	ctx := context.Background()
	m := NewManager(store.NewMemory())

	m.Add(ctx, "u1", models.CartItem{ProductID: "p1", Quantity: 1})
	if got := m.Items(ctx, "u2"); len(got) != 0 {
		t.Fatalf("carts should not leak across accounts: %+v", got)
	}
}

func TestCheckout(t *testing.T) {
	ctx := context.Background()
	m := NewManager(store.NewMemory())

	m.Add(ctx, "u1", models.CartItem{ProductID: "p1", Price: 50, Quantity: 2})
	m.Add(ctx, "u1", models.CartItem{ProductID: "p2", Price: 25.5, Quantity: 1})

	sale, err := m.Checkout(ctx, "u1")
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	if sale.Total != 125.5 {
		t.Fatalf("expected total 125.5, got %v", sale.Total)
	}
	if len(sale.Items) != 2 || sale.AccountID != "u1" {
		t.Fatalf("unexpected sale: %+v", sale)
	}
	if got := m.Items(ctx, "u1"); len(got) != 0 {
		t.Fatalf("checkout should drain the cart, got %+v", got)
	}

	if _, err := m.Checkout(ctx, "u1"); !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("empty checkout should fail, got %v", err)
	}
}

func TestShopFavoritesToggle(t *testing.T) {
	ctx := context.Background()
	m := NewManager(store.NewMemory())

	added, err := m.ToggleFavorite(ctx, "u1", "p1")
	if err != nil || !added {
		t.Fatalf("first toggle should add: %v %v", added, err)
	}
	removed, err := m.ToggleFavorite(ctx, "u1", "p1")
	if err != nil || removed {
		t.Fatalf("second toggle should remove: %v %v", removed, err)
	}
	if got := m.Favorites(ctx, "u1"); len(got) != 0 {
		t.Fatalf("favorites should be empty, got %+v", got)
	}
}
