package activity

import (
	"net/http"

	"passabola/middleware"
	"passabola/utils"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	log *Log
}

func NewHandler(l *Log) *Handler {
	return &Handler{log: l}
}

// GetAdminFeed serves the admin-wide recent activity.
func (h *Handler) GetAdminFeed(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, h.log.RecentAdmin(r.Context()))
}

// GetUserFeed serves the caller's own recent activity.
func (h *Handler) GetUserFeed(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, h.log.RecentUser(r.Context(), middleware.UserID(r.Context())))
}
