package stats

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"passabola/collection"
	"passabola/models"
	"passabola/store"
	"passabola/userdir"
	"passabola/utils"
)

const (
	adminStatsKey = "passabola_admin_stats"
	salesKey      = "passabola_sales"
	userStatsBase = "passabola_user_stats_"
	userGamesBase = "passabola_user_games_"

	// The admin product shipped with two stock accounts; growth is
	// measured against that baseline.
	baselineUsers = 2
)

// Aggregator recomputes the admin dashboard numbers from the live
// collections and caches them under their own key. It also owns the
// per-user snapshot and upcoming-games caches.
type Aggregator struct {
	store store.Store
	dir   *userdir.Directory
}

func NewAggregator(s store.Store, dir *userdir.Directory) *Aggregator {
	return &Aggregator{store: s, dir: dir}
}

// Refresh re-reads users, games and sales and stores a fresh snapshot.
func (a *Aggregator) Refresh(ctx context.Context) models.AdminStats {
	users := a.dir.List(ctx)
	games := collection.New[models.Game](a.store, "passabola_scheduled_games").List(ctx)
	sales := collection.New[models.Sale](a.store, salesKey).List(ctx)

	total := 0.0
	for _, s := range sales {
		total += s.Total
	}

	growth := 0
	if len(users) > 0 {
		growth = (len(users) - baselineUsers) * 100 / baselineUsers
	}

	snap := models.AdminStats{
		TotalUsers:  len(users),
		TotalGames:  len(games),
		TotalSales:  total,
		GrowthRate:  growth,
		LastUpdated: time.Now(),
	}

	raw, _ := json.Marshal(snap)
	if err := a.store.Set(ctx, adminStatsKey, raw); err != nil {
		log.Println("stats: snapshot write failed:", err)
	}
	return snap
}

// Admin returns the cached snapshot, computing one if none exists.
func (a *Aggregator) Admin(ctx context.Context) models.AdminStats {
	raw, ok := a.store.Get(ctx, adminStatsKey)
	if !ok {
		return a.Refresh(ctx)
	}
	var snap models.AdminStats
	if err := json.Unmarshal(raw, &snap); err != nil {
		return a.Refresh(ctx)
	}
	return snap
}

// User returns the per-account snapshot, installing the stock default
// on first access.
func (a *Aggregator) User(ctx context.Context, accountID string) models.UserStats {
	key := userStatsBase + accountID
	raw, ok := a.store.Get(ctx, key)
	if ok {
		var s models.UserStats
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
	}

	s := models.UserStats{Rating: 5.0, LastUpdated: time.Now()}
	if out, err := json.Marshal(s); err == nil {
		a.store.Set(ctx, key, out)
	}
	return s
}

// RecordSale appends a drained cart to the sales ledger.
func (a *Aggregator) RecordSale(ctx context.Context, sale models.Sale) error {
	return collection.New[models.Sale](a.store, salesKey).Insert(ctx, sale)
}

// AddUpcomingGame prepends a joined game to the account's dashboard
// cache, a denormalized snapshot independent of the global games
// collection.
func (a *Aggregator) AddUpcomingGame(ctx context.Context, accountID string, game models.Game) {
	coll := collection.New[models.UpcomingGame](a.store, userGamesBase+accountID)
	err := coll.Prepend(ctx, models.UpcomingGame{
		ID:       utils.TimeID(),
		GameID:   game.ID,
		Title:    game.Title,
		Date:     game.Date,
		Location: game.Location,
		Status:   "confirmed",
		AddedAt:  time.Now(),
	})
	if err != nil {
		log.Println("stats: upcoming game write failed:", err)
	}
}

func (a *Aggregator) UpcomingGames(ctx context.Context, accountID string) []models.UpcomingGame {
	return collection.New[models.UpcomingGame](a.store, userGamesBase+accountID).List(ctx)
}

// StartRefresher recomputes the admin snapshot every interval and
// pushes it to hub subscribers until the context is cancelled. This is
// the 30-second dashboard poll.
func (a *Aggregator) StartRefresher(ctx context.Context, interval time.Duration, hub *Hub) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			snap := a.Refresh(ctx)
			if hub != nil {
				hub.Broadcast(snap)
			}
		}
	}
}
