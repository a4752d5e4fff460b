package auth

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"passabola/activity"
	"passabola/globals"
	"passabola/middleware"
	"passabola/models"
	"passabola/userdir"
	"passabola/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
)

const tokenTTL = 72 * time.Hour

// Handler serves login and registration against the user directory.
type Handler struct {
	dir *userdir.Directory
	log *activity.Log
}

func NewHandler(dir *userdir.Directory, actLog *activity.Log) *Handler {
	return &Handler{dir: dir, log: actLog}
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if input.Email == "" || input.Password == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	acct, ok := h.dir.Authenticate(r.Context(), input.Email, input.Password)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Email ou senha incorretos")
		return
	}

	token, err := generateAccessToken(acct)
	if err != nil {
		log.Println("auth: token generation failed:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	h.log.RecordUser(r.Context(), acct.ID, "Login", "Bem-vindo(a), "+acct.Name, "sign-in-alt")

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"token": token,
		"user":  acct.Public(),
	})
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Position string `json:"position"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if input.Name == "" || input.Email == "" || input.Password == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	acct, err := h.dir.Register(r.Context(), input.Name, input.Email, input.Password, models.RoleUser)
	if errors.Is(err, userdir.ErrDuplicateEmail) {
		utils.RespondWithError(w, http.StatusConflict, "Este email já está em uso")
		return
	}
	if err != nil {
		log.Println("auth: register failed:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to register")
		return
	}

	if input.Position != "" {
		pos := input.Position
		h.dir.Update(r.Context(), acct.Email, userdir.Patch{Position: &pos})
		acct.Position = pos
	}

	h.log.RecordAdmin(r.Context(), "Novo cadastro", acct.Name+" criou uma conta", "user-plus")

	utils.RespondWithJSON(w, http.StatusCreated, map[string]any{"user": acct.Public()})
}

// Me returns the account behind the presented token.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	acct, ok := h.dir.ByID(r.Context(), middleware.UserID(r.Context()))
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Account not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, acct.Public())
}

func generateAccessToken(acct models.Account) (string, error) {
	claims := &middleware.Claims{
		Name:   acct.Name,
		UserID: acct.ID,
		Role:   acct.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(globals.JwtSecret)
}
