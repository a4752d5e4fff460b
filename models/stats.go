package models

import "time"

// AdminStats is the dashboard aggregate, recomputed from the live
// collections and cached under its own key.
type AdminStats struct {
	TotalUsers  int       `json:"totalUsers"`
	TotalGames  int       `json:"totalGames"`
	TotalSales  float64   `json:"totalSales"`
	GrowthRate  int       `json:"growthRate"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// UserStats is the per-account snapshot shown on the user dashboard.
type UserStats struct {
	GamesPlayed int       `json:"gamesPlayed"`
	GamesWon    int       `json:"gamesWon"`
	Rating      float64   `json:"rating"` // 0-5
	TotalHours  int       `json:"totalHours"`
	LastUpdated time.Time `json:"lastUpdated"`
}
