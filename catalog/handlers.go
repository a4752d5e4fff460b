package catalog

import (
	"encoding/json"
	"errors"
	"net/http"

	"passabola/activity"
	"passabola/models"
	"passabola/utils"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	mgr *Manager
	log *activity.Log
}

func NewHandler(mgr *Manager, actLog *activity.Log) *Handler {
	return &Handler{mgr: mgr, log: actLog}
}

// GetCatalog serves the shop view with optional ?category, ?q and ?sort.
func (h *Handler) GetCatalog(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	products := h.mgr.ListForCatalog(r.Context())
	products = Filter(products, r.URL.Query().Get("category"))
	products = Search(products, r.URL.Query().Get("q"))
	products = Sort(products, r.URL.Query().Get("sort"))
	utils.RespondWithJSON(w, http.StatusOK, products)
}

func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	p, ok := h.mgr.ByID(r.Context(), ps.ByName("id"))
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, p)
}

// Admin handlers below; routes gate them on the admin role.

func (h *Handler) ListAdmin(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, h.mgr.ListAdmin(r.Context()))
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var p models.Product
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	created, err := h.mgr.Create(r.Context(), p)
	if errors.Is(err, ErrValidation) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid product fields")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create product")
		return
	}

	h.log.RecordAdmin(r.Context(), "Produto criado", created.Name, "box")
	utils.RespondWithJSON(w, http.StatusCreated, created)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var p models.Product
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	updated, err := h.mgr.Update(r.Context(), ps.ByName("id"), p)
	if err != nil {
		respondCatalogErr(w, err)
		return
	}

	h.log.RecordAdmin(r.Context(), "Produto atualizado", updated.Name, "box")
	utils.RespondWithJSON(w, http.StatusOK, updated)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.mgr.Delete(r.Context(), ps.ByName("id")); err != nil {
		respondCatalogErr(w, err)
		return
	}
	h.log.RecordAdmin(r.Context(), "Produto removido", ps.ByName("id"), "trash")
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"deleted": true})
}

func (h *Handler) TogglePublish(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	updated, err := h.mgr.TogglePublish(r.Context(), ps.ByName("id"))
	if err != nil {
		respondCatalogErr(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, updated)
}

func respondCatalogErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrImmutableRecord):
		utils.RespondWithError(w, http.StatusForbidden, "Seeded products are read-only")
	case errors.Is(err, ErrNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
	case errors.Is(err, ErrValidation):
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid product fields")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Catalog operation failed")
	}
}
