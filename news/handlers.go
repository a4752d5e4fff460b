package news

import (
	"encoding/json"
	"errors"
	"net/http"

	"passabola/middleware"
	"passabola/models"
	"passabola/utils"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// GetFeed serves published articles with optional ?category, ?q, ?sort.
func (h *Handler) GetFeed(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	articles := h.repo.ListPublished(r.Context(), r.URL.Query().Get("category"))
	articles = Search(articles, r.URL.Query().Get("q"))
	articles = Sort(articles, r.URL.Query().Get("sort"))
	utils.RespondWithJSON(w, http.StatusOK, articles)
}

func (h *Handler) GetArticle(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	a, ok := h.repo.ByID(r.Context(), ps.ByName("id"))
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Article not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, a)
}

func (h *Handler) GetFavorites(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, h.repo.Favorites(r.Context(), middleware.UserID(r.Context())))
}

func (h *Handler) ToggleFavorite(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	favorited, err := h.repo.ToggleFavorite(r.Context(), middleware.UserID(r.Context()), ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update favorites")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"favorited": favorited})
}

// Admin handlers.

func (h *Handler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var a models.Article
	if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if a.Title == "" || a.Category == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Title and category are required")
		return
	}

	created, err := h.repo.Create(r.Context(), a)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create article")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, created)
}

func (h *Handler) TogglePublish(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	a, err := h.repo.TogglePublish(r.Context(), ps.ByName("id"))
	if errors.Is(err, ErrNotFound) {
		utils.RespondWithError(w, http.StatusNotFound, "Article not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update article")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, a)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.repo.Delete(r.Context(), ps.ByName("id")); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete article")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"deleted": true})
}
