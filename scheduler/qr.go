package scheduler

import (
	"fmt"
	"net/http"
	"os"

	"passabola/utils"

	"github.com/julienschmidt/httprouter"
	qrcode "github.com/skip2/go-qrcode"
)

// ShareQR renders a PNG QR code pointing at the game's join page, for
// sharing a game outside the app.
func (h *Handler) ShareQR(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	game, ok := h.sched.ByID(r.Context(), ps.ByName("id"))
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Jogo não encontrado")
		return
	}

	base := os.Getenv("PUBLIC_URL")
	if base == "" {
		base = "http://localhost:8080"
	}
	url := fmt.Sprintf("%s/marcar-jogo.html?join=%s", base, game.ID)

	png, err := qrcode.Encode(url, qrcode.Medium, 256)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to render QR code")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}
