package api

import (
	"net/http"

	"readinglog/internal/httpx"
)

// State returns the whole session snapshot used to render the app shell.
func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	e, loadErr := h.entry(w, r)
	if e == nil {
		return
	}
	var meta httpx.Meta
	if loadErr != nil {
		meta = stale
	}
	httpx.JSONSuccess(w, r, e.Session.Snapshot(), meta)
}

// Logout closes the caller's session. The persisted active child survives.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required", nil)
		return
	}
	h.sessions.Drop(userID)
	httpx.JSONSuccessNoContent(w)
}
