package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/migge/supershopcart/internal/models"
	"github.com/migge/supershopcart/internal/transport/http/httperr"
)

type createCartRequest struct {
	Name  string              `json:"name"`
	Items []createItemRequest `json:"items,omitempty"`
}

type createItemRequest struct {
	Designation string `json:"designation"`
	Quantity    int    `json:"quantity"`
}

// CreateCart — POST /carts: новая корзина, создатель получает неявный ADMIN.
func (h *Handlers) CreateCart(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	var in createCartRequest
	if err := decodeStrict(r, &in); err != nil {
		httperr.WriteError(w, r, httperr.ErrBadRequest)
		return
	}

	items := make([]models.GroceryItem, 0, len(in.Items))
	for _, it := range in.Items {
		if it.Designation == "" || it.Quantity <= 0 {
			httperr.WriteError(w, r, httperr.ErrBadRequest)
			return
		}
		items = append(items, models.GroceryItem{
			Designation: it.Designation,
			Quantity:    it.Quantity,
		})
	}

	cart, err := h.Service.CreateCart(r.Context(), p.Shopper.ID, in.Name, items)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, cartToResponse(cart))
}

// ListCarts — GET /carts: все корзины, доступные принципалу.
func (h *Handlers) ListCarts(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	carts, err := h.Service.CartsForShopper(r.Context(), p.Shopper.ID)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	out := make([]cartResponse, 0, len(carts))
	for i := range carts {
		out = append(out, cartToResponse(&carts[i]))
	}

	writeJSON(w, http.StatusOK, out)
}

// GetCart — GET /carts/{cartID}: корзина по ID, требует уровень VIEW.
func (h *Handlers) GetCart(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	cart, err := h.Service.CartByID(r.Context(), chi.URLParam(r, "cartID"), p.Shopper.ID)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, cartToResponse(cart))
}

// AddItem — POST /carts/{cartID}/items: добавить позицию, требует EDIT.
func (h *Handlers) AddItem(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	var in createItemRequest
	if err := decodeStrict(r, &in); err != nil || in.Designation == "" || in.Quantity <= 0 {
		httperr.WriteError(w, r, httperr.ErrBadRequest)
		return
	}

	cart, err := h.Service.AddItem(r.Context(), chi.URLParam(r, "cartID"), p.Shopper.ID, models.GroceryItem{
		Designation: in.Designation,
		Quantity:    in.Quantity,
	})
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, cartToResponse(cart))
}

type markItemRequest struct {
	Purchased bool `json:"purchased"`
}

// MarkItem — PATCH /carts/{cartID}/items/{index}: отметить позицию купленной.
func (h *Handlers) MarkItem(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil || index < 0 {
		httperr.WriteError(w, r, httperr.ErrBadRequest)
		return
	}

	var in markItemRequest
	if err := decodeStrict(r, &in); err != nil {
		httperr.WriteError(w, r, httperr.ErrBadRequest)
		return
	}

	cart, err := h.Service.MarkItemPurchased(r.Context(), chi.URLParam(r, "cartID"), p.Shopper.ID, index, in.Purchased)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, cartToResponse(cart))
}

// CompleteCart — POST /carts/{cartID}/complete: завершить поход за покупками.
func (h *Handlers) CompleteCart(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	cart, err := h.Service.CompleteTrip(r.Context(), chi.URLParam(r, "cartID"), p.Shopper.ID)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, cartToResponse(cart))
}

// DeleteCart — DELETE /carts/{cartID}: удалить корзину, требует ADMIN.
func (h *Handlers) DeleteCart(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	if err := h.Service.DeleteCart(r.Context(), chi.URLParam(r, "cartID"), p.Shopper.ID); err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type shareCartRequest struct {
	Email      string `json:"email"`
	Permission string `json:"permission"`
}

// ShareCart — POST /carts/{cartID}/share: выдать/обновить уровень доступа
// по email, требует ADMIN.
func (h *Handlers) ShareCart(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	var in shareCartRequest
	if err := decodeStrict(r, &in); err != nil || in.Email == "" {
		httperr.WriteError(w, r, httperr.ErrBadRequest)
		return
	}

	err := h.Service.ShareCart(r.Context(), chi.URLParam(r, "cartID"), p.Shopper.ID,
		in.Email, models.SharePermission(in.Permission))
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UnshareCart — DELETE /carts/{cartID}/share/{shopperID}: отозвать доступ,
// требует ADMIN. Отсутствие выданного доступа — не ошибка.
func (h *Handlers) UnshareCart(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	err := h.Service.UnshareCart(r.Context(), chi.URLParam(r, "cartID"), p.Shopper.ID,
		chi.URLParam(r, "shopperID"))
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
