package userdir

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"

	"passabola/activity"
	"passabola/models"
	"passabola/utils"
)

// Handler exposes the admin user-management surface.
type Handler struct {
	dir *Directory
	log *activity.Log
}

func NewHandler(dir *Directory, log *activity.Log) *Handler {
	return &Handler{dir: dir, log: log}
}

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	accounts := h.dir.List(r.Context())
	public := make([]models.PublicAccount, 0, len(accounts))
	for _, a := range accounts {
		public = append(public, a.Public())
	}
	utils.RespondWithJSON(w, http.StatusOK, public)
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	acct, ok := h.dir.ByID(r.Context(), ps.ByName("id"))
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, acct.Public())
}

func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var body struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
		Position string `json:"position"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if strings.TrimSpace(body.Name) == "" || strings.TrimSpace(body.Email) == "" || body.Password == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Nome, email e senha são obrigatórios")
		return
	}

	acct, err := h.dir.Register(r.Context(), body.Name, body.Email, body.Password, body.Role)
	if errors.Is(err, ErrDuplicateEmail) {
		utils.RespondWithError(w, http.StatusConflict, "Este email já está cadastrado")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create user")
		return
	}
	if body.Position != "" {
		acct, err = h.dir.Update(r.Context(), acct.Email, Patch{Position: &body.Position})
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create user")
			return
		}
	}

	h.log.RecordAdmin(r.Context(), "Usuária cadastrada", acct.Name, "👤")
	utils.RespondWithJSON(w, http.StatusCreated, acct.Public())
}

func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	acct, ok := h.dir.ByID(r.Context(), ps.ByName("id"))
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	}

	var body struct {
		Name     *string `json:"name"`
		Email    *string `json:"email"`
		Password *string `json:"password"`
		Role     *string `json:"role"`
		Position *string `json:"position"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	updated, err := h.dir.Update(r.Context(), acct.Email, Patch{
		Name:     body.Name,
		Email:    body.Email,
		Password: body.Password,
		Role:     body.Role,
		Position: body.Position,
	})
	if errors.Is(err, ErrEmailTaken) {
		utils.RespondWithError(w, http.StatusConflict, "Este email já está cadastrado")
		return
	}
	if errors.Is(err, ErrNotFound) {
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update user")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, updated.Public())
}

func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	acct, ok := h.dir.ByID(r.Context(), ps.ByName("id"))
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	}
	if err := h.dir.Delete(r.Context(), acct.Email); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete user")
		return
	}
	h.log.RecordAdmin(r.Context(), "Usuária removida", acct.Name, "🗑️")
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"deleted": true})
}
