package api

import (
	"net/http"

	"readinglog/internal/entity"
	"readinglog/internal/httpx"
)

func (h *Handler) ListWishlist(w http.ResponseWriter, r *http.Request) {
	e, _ := h.entry(w, r)
	if e == nil {
		return
	}
	entries, err := e.Session.FetchWishlist(r.Context())
	h.respondFetched(w, r, entries, err)
}

// AddToWishlist saves a catalog search result for the active child. The
// body is an item as returned by the search endpoints.
func (h *Handler) AddToWishlist(w http.ResponseWriter, r *http.Request) {
	e, _ := h.entry(w, r)
	if e == nil {
		return
	}
	var res entity.CatalogResult
	if !decodeJSON(w, r, &res) {
		return
	}
	entries, err := e.Session.AddToWishlist(r.Context(), res)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccessCreated(w, r, entries)
}

func (h *Handler) RemoveFromWishlist(w http.ResponseWriter, r *http.Request) {
	e, _ := h.entry(w, r)
	if e == nil {
		return
	}
	entries, err := e.Session.RemoveFromWishlist(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, entries, nil)
}
