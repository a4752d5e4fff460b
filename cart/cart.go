package cart

import (
	"context"
	"errors"
	"time"

	"passabola/collection"
	"passabola/models"
	"passabola/store"
	"passabola/utils"
)

const (
	cartKeyBase      = "shopCart_"
	favoritesKeyBase = "shopFavorites_"
)

var ErrEmptyCart = errors.New("cart is empty")

// Manager owns the per-account shop carts and shop favorite sets.
type Manager struct {
	store store.Store
}

func NewManager(s store.Store) *Manager {
	return &Manager{store: s}
}

func (m *Manager) items(accountID string) *collection.Collection[models.CartItem] {
	return collection.New[models.CartItem](m.store, cartKeyBase+accountID)
}

func (m *Manager) Items(ctx context.Context, accountID string) []models.CartItem {
	return m.items(accountID).List(ctx)
}

// Add puts quantity units of the product in the cart, merging into an
// existing line for the same product.
func (m *Manager) Add(ctx context.Context, accountID string, item models.CartItem) ([]models.CartItem, error) {
	if item.Quantity < 1 {
		item.Quantity = 1
	}

	coll := m.items(accountID)
	items := coll.List(ctx)
	merged := false
	for i := range items {
		if items[i].ProductID == item.ProductID {
			items[i].Quantity += item.Quantity
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, item)
	}
	return items, coll.Save(ctx, items)
}

// SetQuantity pins a line's quantity; zero (or less) removes the line.
func (m *Manager) SetQuantity(ctx context.Context, accountID, productID string, quantity int) ([]models.CartItem, error) {
	coll := m.items(accountID)
	items := coll.List(ctx)
	out := items[:0]
	for _, it := range items {
		if it.ProductID == productID {
			if quantity <= 0 {
				continue
			}
			it.Quantity = quantity
		}
		out = append(out, it)
	}
	return out, coll.Save(ctx, out)
}

func (m *Manager) Clear(ctx context.Context, accountID string) error {
	return m.store.Remove(ctx, cartKeyBase+accountID)
}

// Checkout drains the cart into a Sale. The sale write and the cart
// clear are two independent store operations; the sale is authoritative
// if anything fails between them.
func (m *Manager) Checkout(ctx context.Context, accountID string) (models.Sale, error) {
	items := m.Items(ctx, accountID)
	if len(items) == 0 {
		return models.Sale{}, ErrEmptyCart
	}

	total := 0.0
	for _, it := range items {
		total += it.Price * float64(it.Quantity)
	}

	sale := models.Sale{
		ID:        utils.TimeID(),
		AccountID: accountID,
		Items:     items,
		Total:     total,
		CreatedAt: time.Now(),
	}
	return sale, m.Clear(ctx, accountID)
}

// Favorites mirror the news favorite sets, one per account.

func (m *Manager) Favorites(ctx context.Context, accountID string) []string {
	return collection.New[string](m.store, favoritesKeyBase+accountID).List(ctx)
}

func (m *Manager) ToggleFavorite(ctx context.Context, accountID, productID string) (bool, error) {
	coll := collection.New[string](m.store, favoritesKeyBase+accountID)
	ids := coll.List(ctx)
	for i, id := range ids {
		if id == productID {
			return false, coll.Save(ctx, append(ids[:i], ids[i+1:]...))
		}
	}
	return true, coll.Save(ctx, append(ids, productID))
}
