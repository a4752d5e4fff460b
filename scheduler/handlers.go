package scheduler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"passabola/activity"
	"passabola/middleware"
	"passabola/stats"
	"passabola/userdir"
	"passabola/utils"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	sched *Scheduler
	dir   *userdir.Directory
	agg   *stats.Aggregator
	log   *activity.Log
}

func NewHandler(sched *Scheduler, dir *userdir.Directory, agg *stats.Aggregator, actLog *activity.Log) *Handler {
	return &Handler{sched: sched, dir: dir, agg: agg, log: actLog}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input CreateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	game, err := h.sched.Create(r.Context(), input, middleware.UserID(r.Context()))
	if errors.Is(err, ErrValidation) {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create game")
		return
	}

	h.log.RecordAdmin(r.Context(), "Novo jogo", game.Title+" aguardando aprovação", "futbol")
	if uid := middleware.UserID(r.Context()); uid != "" {
		h.log.RecordUser(r.Context(), uid, "Jogo criado", game.Title, "futbol")
	}

	utils.RespondWithJSON(w, http.StatusCreated, game)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, h.sched.List(r.Context()))
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	game, ok := h.sched.ByID(r.Context(), ps.ByName("id"))
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Jogo não encontrado")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, game)
}

func (h *Handler) Pending(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, h.sched.Pending(r.Context()))
}

func (h *Handler) Available(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, h.sched.AvailableForBooking(r.Context()))
}

func (h *Handler) OnDate(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	games := h.sched.GamesOnDate(r.Context(), ps.ByName("date"))
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"games": games,
		"class": DayClass(len(games)),
	})
}

// Calendar serves the month grid: /api/games/calendar/:year/:month
func (h *Handler) Calendar(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	year, err := strconv.Atoi(ps.ByName("year"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Bad year")
		return
	}
	month, err := strconv.Atoi(ps.ByName("month"))
	if err != nil || month < 1 || month > 12 {
		utils.RespondWithError(w, http.StatusBadRequest, "Bad month")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, h.sched.CalendarMonth(r.Context(), year, time.Month(month)))
}

func (h *Handler) Approve(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	h.decide(w, r, ps.ByName("id"), true)
}

func (h *Handler) Reject(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	h.decide(w, r, ps.ByName("id"), false)
}

func (h *Handler) decide(w http.ResponseWriter, r *http.Request, id string, approve bool) {
	// The stamp is the actor's display name, a snapshot taken now.
	actor := "admin"
	if acct, ok := h.dir.ByID(r.Context(), middleware.UserID(r.Context())); ok {
		actor = acct.Name
	}

	var game interface{}
	var err error
	if approve {
		game, err = h.sched.Approve(r.Context(), id, actor)
	} else {
		game, err = h.sched.Reject(r.Context(), id, actor)
	}

	switch {
	case errors.Is(err, ErrNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Jogo não encontrado")
		return
	case errors.Is(err, ErrInvalidTransition):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
		return
	case err != nil:
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update game")
		return
	}

	if approve {
		h.log.RecordAdmin(r.Context(), "Jogo aprovado", "por "+actor, "check-circle")
	} else {
		h.log.RecordAdmin(r.Context(), "Jogo rejeitado", "por "+actor, "times-circle")
	}
	utils.RespondWithJSON(w, http.StatusOK, game)
}

func (h *Handler) Join(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var input struct {
		PlayerName string `json:"playerName"`
		Position   string `json:"playerPosition"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if input.PlayerName == "" || input.Position == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Por favor, preencha todos os campos")
		return
	}

	game, err := h.sched.Join(r.Context(), ps.ByName("id"), input.PlayerName, input.Position)
	switch {
	case errors.Is(err, ErrNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Jogo não encontrado")
		return
	case errors.Is(err, ErrGameFull):
		utils.RespondWithError(w, http.StatusConflict, "Este jogo já está lotado")
		return
	case err != nil:
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to join game")
		return
	}

	// Dashboard cache and feed entries are advisory follow-up writes;
	// the join itself is already durable.
	if uid := middleware.UserID(r.Context()); uid != "" {
		h.agg.AddUpcomingGame(r.Context(), uid, game)
		h.log.RecordUser(r.Context(), uid, "Entrou em um jogo", game.Title, "user-plus")
	}

	utils.RespondWithJSON(w, http.StatusOK, game)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.sched.Delete(r.Context(), ps.ByName("id")); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete game")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"deleted": true})
}
