package cart

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"passabola/activity"
	"passabola/middleware"
	"passabola/models"
	"passabola/stats"
	"passabola/utils"
)

type Handler struct {
	carts *Manager
	agg   *stats.Aggregator
	log   *activity.Log
}

func NewHandler(carts *Manager, agg *stats.Aggregator, log *activity.Log) *Handler {
	return &Handler{carts: carts, agg: agg, log: log}
}

func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	accountID := middleware.UserID(r.Context())
	utils.RespondWithJSON(w, http.StatusOK, h.carts.Items(r.Context(), accountID))
}

func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var item models.CartItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if item.ProductID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "productId is required")
		return
	}

	accountID := middleware.UserID(r.Context())
	items, err := h.carts.Add(r.Context(), accountID, item)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update cart")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, items)
}

func (h *Handler) UpdateItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	accountID := middleware.UserID(r.Context())
	items, err := h.carts.SetQuantity(r.Context(), accountID, ps.ByName("productid"), body.Quantity)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update cart")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, items)
}

func (h *Handler) ClearCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	accountID := middleware.UserID(r.Context())
	if err := h.carts.Clear(r.Context(), accountID); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to clear cart")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"cleared": true})
}

func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	accountID := middleware.UserID(r.Context())
	sale, err := h.carts.Checkout(r.Context(), accountID)
	if err == ErrEmptyCart {
		utils.RespondWithError(w, http.StatusBadRequest, "Carrinho vazio")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to complete purchase")
		return
	}
	if err := h.agg.RecordSale(r.Context(), sale); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to record sale")
		return
	}
	h.log.RecordUser(r.Context(), accountID, "Compra realizada", "Pedido finalizado na loja", "🛍️")
	utils.RespondWithJSON(w, http.StatusCreated, sale)
}

func (h *Handler) GetFavorites(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	accountID := middleware.UserID(r.Context())
	utils.RespondWithJSON(w, http.StatusOK, h.carts.Favorites(r.Context(), accountID))
}

func (h *Handler) ToggleFavorite(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	accountID := middleware.UserID(r.Context())
	added, err := h.carts.ToggleFavorite(r.Context(), accountID, ps.ByName("productid"))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update favorites")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"favorited": added})
}
