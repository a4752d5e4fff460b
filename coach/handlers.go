package coach

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"

	"passabola/middleware"
	"passabola/utils"
)

type Handler struct {
	assistant *Assistant
}

func NewHandler(assistant *Assistant) *Handler {
	return &Handler{assistant: assistant}
}

func (h *Handler) Ask(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if strings.TrimSpace(body.Message) == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Mensagem é obrigatória")
		return
	}

	accountID := middleware.UserID(r.Context())
	reply, err := h.assistant.Ask(r.Context(), accountID, body.Message)
	if errors.Is(err, context.Canceled) {
		// A newer question from the same account superseded this one.
		utils.RespondWithJSON(w, http.StatusOK, utils.M{"reply": fallbackReply, "superseded": true})
		return
	}
	if err != nil {
		utils.RespondWithJSON(w, http.StatusOK, utils.M{"reply": fallbackReply})
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"reply": reply})
}

func (h *Handler) Welcome(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"reply": WelcomeReply})
}
