package catalog

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"passabola/collection"
	"passabola/models"
	"passabola/store"
	"passabola/utils"
)

const productsKey = "passabola_products"

var (
	ErrNotFound        = errors.New("product not found")
	ErrImmutableRecord = errors.New("seeded products cannot be modified")
	ErrValidation      = errors.New("invalid product")
)

// Manager merges the immutable seeded catalog with admin-created
// products kept in the store. Only the admin-created sub-collection is
// writable.
type Manager struct {
	products *collection.Collection[models.Product]
}

func NewManager(s store.Store) *Manager {
	return &Manager{products: collection.New[models.Product](s, productsKey)}
}

func isSeededID(id string) bool {
	for _, p := range seeded {
		if p.ID == id {
			return true
		}
	}
	return false
}

// ListForCatalog is the shop view: every seeded product plus the
// published admin-created ones.
func (m *Manager) ListForCatalog(ctx context.Context) []models.Product {
	out := Seeded()
	for _, p := range m.products.List(ctx) {
		if p.Published {
			out = append(out, p)
		}
	}
	return out
}

// ListAdmin is the management view: seeded (flagged read-only) plus all
// admin-created products regardless of publish state.
func (m *Manager) ListAdmin(ctx context.Context) []models.Product {
	return append(Seeded(), m.products.List(ctx)...)
}

func (m *Manager) ByID(ctx context.Context, id string) (models.Product, bool) {
	for _, p := range seeded {
		if p.ID == id {
			return p, true
		}
	}
	return m.products.FindBy(ctx, func(p models.Product) bool { return p.ID == id })
}

func validate(p models.Product) error {
	if p.Name == "" || p.Category == "" {
		return ErrValidation
	}
	if p.Price < 0 || p.Stock < 0 {
		return ErrValidation
	}
	return nil
}

func (m *Manager) Create(ctx context.Context, p models.Product) (models.Product, error) {
	if err := validate(p); err != nil {
		return models.Product{}, err
	}
	p.ID = utils.TimeID()
	p.Seeded = false
	p.CreatedAt = time.Now()
	if err := m.products.Insert(ctx, p); err != nil {
		return models.Product{}, err
	}
	return p, nil
}

func (m *Manager) Update(ctx context.Context, id string, upd models.Product) (models.Product, error) {
	if isSeededID(id) {
		return models.Product{}, ErrImmutableRecord
	}
	if err := validate(upd); err != nil {
		return models.Product{}, err
	}

	var out models.Product
	err := m.products.UpdateWhere(ctx,
		func(p models.Product) bool { return p.ID == id },
		func(p *models.Product) {
			p.Name = upd.Name
			p.Description = upd.Description
			p.Category = upd.Category
			p.Price = upd.Price
			p.Stock = upd.Stock
			p.Badge = upd.Badge
			p.BadgeType = upd.BadgeType
			p.Features = upd.Features
			p.UpdatedAt = time.Now()
			out = *p
		})
	if errors.Is(err, collection.ErrNotFound) {
		return models.Product{}, ErrNotFound
	}
	return out, err
}

func (m *Manager) Delete(ctx context.Context, id string) error {
	if isSeededID(id) {
		return ErrImmutableRecord
	}
	return m.products.DeleteWhere(ctx, func(p models.Product) bool { return p.ID == id })
}

// TogglePublish flips the published flag of an admin-created product.
func (m *Manager) TogglePublish(ctx context.Context, id string) (models.Product, error) {
	if isSeededID(id) {
		return models.Product{}, ErrImmutableRecord
	}
	var out models.Product
	err := m.products.UpdateWhere(ctx,
		func(p models.Product) bool { return p.ID == id },
		func(p *models.Product) {
			p.Published = !p.Published
			p.UpdatedAt = time.Now()
			out = *p
		})
	if errors.Is(err, collection.ErrNotFound) {
		return models.Product{}, ErrNotFound
	}
	return out, err
}

// Filter, Search and Sort are pure projections over an already-loaded
// product list; they never touch the store.

func Filter(products []models.Product, category string) []models.Product {
	if category == "" || category == "all" {
		return products
	}
	out := []models.Product{}
	for _, p := range products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

func Search(products []models.Product, query string) []models.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return products
	}
	out := []models.Product{}
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) ||
			strings.Contains(strings.ToLower(p.Category), q) {
			out = append(out, p)
		}
	}
	return out
}

func Sort(products []models.Product, by string) []models.Product {
	out := make([]models.Product, len(products))
	copy(out, products)

	switch by {
	case "price-low":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case "price-high":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case "newest":
		// "Novo"-badged products float to the front.
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].BadgeType == "new" && out[j].BadgeType != "new"
		})
	default: // popular
		sort.SliceStable(out, func(i, j int) bool { return out[i].RatingCount > out[j].RatingCount })
	}
	return out
}
