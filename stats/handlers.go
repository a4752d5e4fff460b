package stats

import (
	"net/http"

	"passabola/middleware"
	"passabola/utils"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	agg *Aggregator
}

func NewHandler(agg *Aggregator) *Handler {
	return &Handler{agg: agg}
}

func (h *Handler) GetAdminStats(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, h.agg.Admin(r.Context()))
}

// RefreshAdminStats forces a recompute, the dashboard's manual refresh.
func (h *Handler) RefreshAdminStats(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, h.agg.Refresh(r.Context()))
}

func (h *Handler) GetUserStats(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, h.agg.User(r.Context(), middleware.UserID(r.Context())))
}

func (h *Handler) GetUpcomingGames(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, h.agg.UpcomingGames(r.Context(), middleware.UserID(r.Context())))
}
