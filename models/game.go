package models

import "time"

// Game states. A game starts pending; admins approve or reject it.
// Approved is the joinable state (what the booking page used to call
// "open"); rejected games stay on the calendar but accept no players.
const (
	GamePending  = "pending"
	GameApproved = "approved"
	GameRejected = "rejected"
)

type Player struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Position string    `json:"position"`
	JoinedAt time.Time `json:"joinedAt"`
}

type Game struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Type        string    `json:"type"`
	Date        string    `json:"date"` // YYYY-MM-DD
	Time        string    `json:"time"` // HH:MM
	Location    string    `json:"location"`
	Description string    `json:"description,omitempty"`
	MaxPlayers  int       `json:"maxPlayers"`
	Players     []Player  `json:"players"`
	Status      string    `json:"status"`
	Public      bool      `json:"publicGame"`
	CreatedBy   string    `json:"createdBy,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	ApprovedBy  string    `json:"approvedBy,omitempty"`
	ApprovedAt  time.Time `json:"approvedAt,omitempty"`
	RejectedBy  string    `json:"rejectedBy,omitempty"`
	RejectedAt  time.Time `json:"rejectedAt,omitempty"`
}

// StartsAt combines the date and time fields into a wall-clock instant.
func (g Game) StartsAt() time.Time {
	t, err := time.ParseInLocation("2006-01-02 15:04", g.Date+" "+g.Time, time.Local)
	if err != nil {
		return time.Time{}
	}
	return t
}

// UpcomingGame is the per-user dashboard cache entry, a denormalized
// snapshot taken when the user joins a game.
type UpcomingGame struct {
	ID       string    `json:"id"`
	GameID   string    `json:"gameId"`
	Title    string    `json:"title"`
	Date     string    `json:"date"`
	Location string    `json:"location"`
	Status   string    `json:"status"`
	AddedAt  time.Time `json:"timestamp"`
}
