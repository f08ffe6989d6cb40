package handlers

import (
	"net/http"
)

// Me — GET /me: профиль аутентифицированного шоппера.
func (h *Handlers) Me(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, shopperToResponse(p.Shopper))
}
