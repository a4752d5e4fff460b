package notify

import (
	"context"
	"errors"
	"strings"
	"time"

	"passabola/collection"
	"passabola/models"
	"passabola/store"
	"passabola/utils"
)

const notificationsKey = "passabola_notifications"

var (
	ErrNotFound   = errors.New("notification not found")
	ErrValidation = errors.New("invalid notification")
)

// Outbox holds the notifications admins push to accounts. Entries for
// target "all" are visible to every account.
type Outbox struct {
	notifications *collection.Collection[models.Notification]
}

func NewOutbox(s store.Store) *Outbox {
	return &Outbox{notifications: collection.New[models.Notification](s, notificationsKey)}
}

func (o *Outbox) Send(ctx context.Context, n models.Notification) (models.Notification, error) {
	n.Title = strings.TrimSpace(n.Title)
	n.Message = strings.TrimSpace(n.Message)
	if n.Title == "" || n.Message == "" {
		return models.Notification{}, ErrValidation
	}
	if n.Type == "" {
		n.Type = "info"
	}
	if n.Target == "" {
		n.Target = "all"
	}
	n.ID = utils.TimeID()
	n.SentAt = time.Now()
	n.Read = false
	return n, o.notifications.Prepend(ctx, n)
}

// All returns the full outbox, newest first. Admin view.
func (o *Outbox) All(ctx context.Context) []models.Notification {
	return o.notifications.List(ctx)
}

// For returns the notifications an account should see.
func (o *Outbox) For(ctx context.Context, accountID string) []models.Notification {
	return o.notifications.FilterBy(ctx, func(n models.Notification) bool {
		return n.Target == "all" || n.Target == accountID
	})
}

func (o *Outbox) MarkRead(ctx context.Context, id string) error {
	err := o.notifications.UpdateWhere(ctx,
		func(n models.Notification) bool { return n.ID == id },
		func(n *models.Notification) { n.Read = true })
	if errors.Is(err, collection.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

func (o *Outbox) Delete(ctx context.Context, id string) error {
	if _, ok := o.notifications.FindBy(ctx, func(n models.Notification) bool { return n.ID == id }); !ok {
		return ErrNotFound
	}
	return o.notifications.DeleteWhere(ctx, func(n models.Notification) bool { return n.ID == id })
}
