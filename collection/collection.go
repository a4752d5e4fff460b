package collection

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"passabola/store"
)

// ErrNotFound is returned when an update targets a record no predicate
// matches. Deletes of absent records are silent no-ops.
var ErrNotFound = errors.New("record not found")

// Collection is an ordered sequence of records behind one store key.
// Every mutation reads the whole sequence, rewrites it in memory and
// writes it back whole - there is no partial update path, and no
// atomicity across collections.
type Collection[T any] struct {
	store store.Store
	key   string
}

func New[T any](s store.Store, key string) *Collection[T] {
	return &Collection[T]{store: s, key: key}
}

func (c *Collection[T]) Key() string { return c.key }

// List deserializes the current value, or returns an empty slice when
// the key is absent or unreadable.
func (c *Collection[T]) List(ctx context.Context) []T {
	raw, ok := c.store.Get(ctx, c.key)
	if !ok {
		return []T{}
	}
	var records []T
	if err := json.Unmarshal(raw, &records); err != nil {
		log.Printf("collection %s: corrupt value, treating as empty: %v", c.key, err)
		return []T{}
	}
	return records
}

func (c *Collection[T]) FindBy(ctx context.Context, pred func(T) bool) (T, bool) {
	for _, r := range c.List(ctx) {
		if pred(r) {
			return r, true
		}
	}
	var zero T
	return zero, false
}

func (c *Collection[T]) FilterBy(ctx context.Context, pred func(T) bool) []T {
	out := []T{}
	for _, r := range c.List(ctx) {
		if pred(r) {
			out = append(out, r)
		}
	}
	return out
}

func (c *Collection[T]) Insert(ctx context.Context, record T) error {
	return c.Save(ctx, append(c.List(ctx), record))
}

// Prepend inserts at the head, the shape activity feeds want.
func (c *Collection[T]) Prepend(ctx context.Context, record T) error {
	return c.Save(ctx, append([]T{record}, c.List(ctx)...))
}

// UpdateWhere applies mutate to the first record the predicate matches
// and writes the sequence back. ErrNotFound when nothing matches.
func (c *Collection[T]) UpdateWhere(ctx context.Context, pred func(T) bool, mutate func(*T)) error {
	records := c.List(ctx)
	for i := range records {
		if pred(records[i]) {
			mutate(&records[i])
			return c.Save(ctx, records)
		}
	}
	return ErrNotFound
}

// DeleteWhere removes every matching record.
func (c *Collection[T]) DeleteWhere(ctx context.Context, pred func(T) bool) error {
	records := c.List(ctx)
	kept := records[:0]
	for _, r := range records {
		if !pred(r) {
			kept = append(kept, r)
		}
	}
	return c.Save(ctx, kept)
}

func (c *Collection[T]) Save(ctx context.Context, records []T) error {
	if records == nil {
		records = []T{}
	}
	raw, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return c.store.Set(ctx, c.key, raw)
}
