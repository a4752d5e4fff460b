package activity

import (
	"context"
	"log"
	"time"

	"passabola/collection"
	"passabola/models"
	"passabola/store"
	"passabola/utils"
)

const (
	adminKey    = "passabola_admin_activities"
	userKeyBase = "passabola_user_activities_"

	adminCap = 15
	userCap  = 10
)

// Log is the capped recent-activity feed. Entries are prepended and the
// tail beyond the scope's cap is discarded, so reads come back newest
// first with no sorting.
type Log struct {
	store store.Store
}

func NewLog(s store.Store) *Log {
	return &Log{store: s}
}

func (l *Log) RecordAdmin(ctx context.Context, title, description, icon string) {
	l.record(ctx, adminKey, adminCap, title, description, icon)
}

func (l *Log) RecordUser(ctx context.Context, accountID, title, description, icon string) {
	l.record(ctx, userKeyBase+accountID, userCap, title, description, icon)
}

func (l *Log) RecentAdmin(ctx context.Context) []models.ActivityRecord {
	return collection.New[models.ActivityRecord](l.store, adminKey).List(ctx)
}

func (l *Log) RecentUser(ctx context.Context, accountID string) []models.ActivityRecord {
	return collection.New[models.ActivityRecord](l.store, userKeyBase+accountID).List(ctx)
}

// record is advisory: failures are logged, never surfaced, so a feed
// write can never abort the operation it annotates.
func (l *Log) record(ctx context.Context, key string, cap int, title, description, icon string) {
	if icon == "" {
		icon = "info-circle"
	}
	entry := models.ActivityRecord{
		ID:          utils.TimeID(),
		Title:       title,
		Description: description,
		Icon:        icon,
		Timestamp:   time.Now(),
	}

	coll := collection.New[models.ActivityRecord](l.store, key)
	entries := append([]models.ActivityRecord{entry}, coll.List(ctx)...)
	if len(entries) > cap {
		entries = entries[:cap]
	}
	if err := coll.Save(ctx, entries); err != nil {
		log.Printf("activity: write to %s failed: %v", key, err)
	}
}
