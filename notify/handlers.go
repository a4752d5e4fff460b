package notify

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"passabola/activity"
	"passabola/middleware"
	"passabola/models"
	"passabola/utils"
)

type Handler struct {
	outbox *Outbox
	log    *activity.Log
}

func NewHandler(outbox *Outbox, log *activity.Log) *Handler {
	return &Handler{outbox: outbox, log: log}
}

func (h *Handler) Send(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var n models.Notification
	if err := json.NewDecoder(r.Body).Decode(&n); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	n.SentBy = middleware.UserID(r.Context())

	sent, err := h.outbox.Send(r.Context(), n)
	if errors.Is(err, ErrValidation) {
		utils.RespondWithError(w, http.StatusBadRequest, "Título e mensagem são obrigatórios")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to send notification")
		return
	}

	h.log.RecordAdmin(r.Context(), "Notificação enviada", sent.Title, "📣")
	utils.RespondWithJSON(w, http.StatusCreated, sent)
}

func (h *Handler) ListAll(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, h.outbox.All(r.Context()))
}

func (h *Handler) ListMine(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	accountID := middleware.UserID(r.Context())
	utils.RespondWithJSON(w, http.StatusOK, h.outbox.For(r.Context(), accountID))
}

func (h *Handler) MarkRead(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	err := h.outbox.MarkRead(r.Context(), ps.ByName("id"))
	if errors.Is(err, ErrNotFound) {
		utils.RespondWithError(w, http.StatusNotFound, "Notification not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update notification")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"read": true})
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	err := h.outbox.Delete(r.Context(), ps.ByName("id"))
	if errors.Is(err, ErrNotFound) {
		utils.RespondWithError(w, http.StatusNotFound, "Notification not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete notification")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"deleted": true})
}
