package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"passabola/collection"
	"passabola/models"
	"passabola/store"
	"passabola/utils"
)

const gamesKey = "passabola_scheduled_games"

const (
	MinPlayers = 2
	MaxPlayers = 22
)

var (
	ErrNotFound          = errors.New("game not found")
	ErrGameFull          = errors.New("game is full")
	ErrValidation        = errors.New("invalid game")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// Scheduler owns the scheduled-games collection and its approval
// pipeline. The state machine is total: every (state, action) pair is
// either listed below or rejected with ErrInvalidTransition.
//
//	approve: pending -> approved, approved -> approved (idempotent)
//	reject:  pending -> rejected, rejected -> rejected (idempotent),
//	         approved -> rejected (revocation)
//
// Re-approving a rejected game is refused; the old product silently
// overwrote rejection metadata there.
type Scheduler struct {
	games *collection.Collection[models.Game]
	now   func() time.Time
}

func New(s store.Store) *Scheduler {
	return &Scheduler{
		games: collection.New[models.Game](s, gamesKey),
		now:   time.Now,
	}
}

// CreateInput is the booking form payload.
type CreateInput struct {
	Title       string `json:"gameTitle"`
	Type        string `json:"gameType"`
	Date        string `json:"gameDate"`
	Time        string `json:"gameTime"`
	Location    string `json:"location"`
	Description string `json:"gameDescription"`
	MaxPlayers  int    `json:"maxPlayers"`
	Public      bool   `json:"publicGame"`
}

func (s *Scheduler) validate(in CreateInput) error {
	if in.Title == "" || in.Type == "" || in.Date == "" || in.Time == "" || in.Location == "" {
		return fmt.Errorf("%w: missing required field", ErrValidation)
	}
	if in.MaxPlayers < MinPlayers || in.MaxPlayers > MaxPlayers {
		return fmt.Errorf("%w: entre %d e %d jogadores", ErrValidation, MinPlayers, MaxPlayers)
	}

	day, err := time.ParseInLocation("2006-01-02", in.Date, time.Local)
	if err != nil {
		return fmt.Errorf("%w: bad date", ErrValidation)
	}
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	if day.Before(today) {
		return fmt.Errorf("%w: data não pode ser no passado", ErrValidation)
	}

	start, err := time.ParseInLocation("2006-01-02 15:04", in.Date+" "+in.Time, time.Local)
	if err != nil {
		return fmt.Errorf("%w: bad time", ErrValidation)
	}
	if day.Equal(today) && !start.After(now) {
		return fmt.Errorf("%w: horário deve ser no futuro", ErrValidation)
	}
	return nil
}

// Create submits a booking. Every new game enters the approval pipeline
// as pending.
func (s *Scheduler) Create(ctx context.Context, in CreateInput, createdBy string) (models.Game, error) {
	if err := s.validate(in); err != nil {
		return models.Game{}, err
	}

	game := models.Game{
		ID:          utils.TimeID(),
		Title:       in.Title,
		Type:        in.Type,
		Date:        in.Date,
		Time:        in.Time,
		Location:    in.Location,
		Description: in.Description,
		MaxPlayers:  in.MaxPlayers,
		Players:     []models.Player{},
		Status:      models.GamePending,
		Public:      in.Public,
		CreatedBy:   createdBy,
		CreatedAt:   s.now(),
	}
	if err := s.games.Insert(ctx, game); err != nil {
		return models.Game{}, err
	}
	return game, nil
}

func (s *Scheduler) ByID(ctx context.Context, id string) (models.Game, bool) {
	return s.games.FindBy(ctx, func(g models.Game) bool { return g.ID == id })
}

func (s *Scheduler) List(ctx context.Context) []models.Game {
	return s.games.List(ctx)
}

func (s *Scheduler) Pending(ctx context.Context) []models.Game {
	return s.games.FilterBy(ctx, func(g models.Game) bool { return g.Status == models.GamePending })
}

// Approve moves a game to approved and stamps the actor. Approving an
// approved game is a no-op that succeeds; a rejected game stays
// rejected.
func (s *Scheduler) Approve(ctx context.Context, id, actorName string) (models.Game, error) {
	return s.transition(ctx, id, func(g *models.Game) error {
		switch g.Status {
		case models.GamePending:
			g.Status = models.GameApproved
			g.ApprovedBy = actorName
			g.ApprovedAt = s.now()
		case models.GameApproved:
			// idempotent
		default:
			return fmt.Errorf("%w: cannot approve a %s game", ErrInvalidTransition, g.Status)
		}
		return nil
	})
}

// Reject flags a game without removing it; it disappears from pending
// and joinable views but stays on the calendar.
func (s *Scheduler) Reject(ctx context.Context, id, actorName string) (models.Game, error) {
	return s.transition(ctx, id, func(g *models.Game) error {
		switch g.Status {
		case models.GamePending, models.GameApproved:
			g.Status = models.GameRejected
			g.RejectedBy = actorName
			g.RejectedAt = s.now()
		case models.GameRejected:
			// idempotent
		default:
			return fmt.Errorf("%w: cannot reject a %s game", ErrInvalidTransition, g.Status)
		}
		return nil
	})
}

func (s *Scheduler) transition(ctx context.Context, id string, apply func(*models.Game) error) (models.Game, error) {
	var out models.Game
	var applyErr error
	err := s.games.UpdateWhere(ctx,
		func(g models.Game) bool { return g.ID == id },
		func(g *models.Game) {
			if applyErr = apply(g); applyErr == nil {
				out = *g
			}
		})
	if errors.Is(err, collection.ErrNotFound) {
		return models.Game{}, ErrNotFound
	}
	if err != nil {
		return models.Game{}, err
	}
	if applyErr != nil {
		return models.Game{}, applyErr
	}
	return out, nil
}

// Join appends a player. The capacity bound is checked inside the same
// read-modify-write pass, so a full roster can never be exceeded.
// Joining twice under the same name is allowed, as it always was.
func (s *Scheduler) Join(ctx context.Context, id, playerName, position string) (models.Game, error) {
	return s.transition(ctx, id, func(g *models.Game) error {
		if len(g.Players) >= g.MaxPlayers {
			return ErrGameFull
		}
		g.Players = append(g.Players, models.Player{
			ID:       utils.TimeID(),
			Name:     playerName,
			Position: position,
			JoinedAt: s.now(),
		})
		return nil
	})
}

func (s *Scheduler) Delete(ctx context.Context, id string) error {
	return s.games.DeleteWhere(ctx, func(g models.Game) bool { return g.ID == id })
}

// GamesOnDate backs the calendar day cells; exact date-string match,
// rejected games included.
func (s *Scheduler) GamesOnDate(ctx context.Context, date string) []models.Game {
	return s.games.FilterBy(ctx, func(g models.Game) bool { return g.Date == date })
}

// AvailableForBooking lists approved games with room whose start is
// still ahead of the clock.
func (s *Scheduler) AvailableForBooking(ctx context.Context) []models.Game {
	now := s.now()
	return s.games.FilterBy(ctx, func(g models.Game) bool {
		return g.Status == models.GameApproved &&
			len(g.Players) < g.MaxPlayers &&
			g.StartsAt().After(now)
	})
}

// DayClass is the calendar cell classification for a game count.
func DayClass(count int) string {
	switch {
	case count == 0:
		return "available"
	case count >= 3:
		return "full"
	default:
		return "booked"
	}
}

// CalendarDay is one cell of the month view.
type CalendarDay struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
	Class string `json:"class"`
}

// CalendarMonth classifies every day of the given month.
func (s *Scheduler) CalendarMonth(ctx context.Context, year int, month time.Month) []CalendarDay {
	counts := map[string]int{}
	for _, g := range s.games.List(ctx) {
		counts[g.Date]++
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	days := []CalendarDay{}
	for d := first; d.Month() == month; d = d.AddDate(0, 0, 1) {
		date := d.Format("2006-01-02")
		n := counts[date]
		days = append(days, CalendarDay{Date: date, Count: n, Class: DayClass(n)})
	}
	return days
}
