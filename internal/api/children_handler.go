package api

import (
	"net/http"

	"readinglog/internal/entity"
	"readinglog/internal/httpx"
)

type batchChildrenRequest struct {
	Children []entity.ChildInput `json:"children"`
}

type activeChildRequest struct {
	ChildID *string `json:"child_id"`
}

func (h *Handler) ListChildren(w http.ResponseWriter, r *http.Request) {
	e, _ := h.entry(w, r)
	if e == nil {
		return
	}
	children, err := e.Session.FetchChildren(r.Context())
	h.respondFetched(w, r, children, err)
}

// CreateChild adds a child and makes it the active one.
func (h *Handler) CreateChild(w http.ResponseWriter, r *http.Request) {
	e, _ := h.entry(w, r)
	if e == nil {
		return
	}
	var in entity.ChildInput
	if !decodeJSON(w, r, &in) {
		return
	}
	children, err := e.Session.AddChild(r.Context(), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccessCreated(w, r, children)
}

// CreateChildren registers several children at once during onboarding.
func (h *Handler) CreateChildren(w http.ResponseWriter, r *http.Request) {
	e, _ := h.entry(w, r)
	if e == nil {
		return
	}
	var req batchChildrenRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	children, err := e.Session.AddChildren(r.Context(), req.Children)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccessCreated(w, r, children)
}

func (h *Handler) UpdateChild(w http.ResponseWriter, r *http.Request) {
	e, _ := h.entry(w, r)
	if e == nil {
		return
	}
	var in entity.ChildInput
	if !decodeJSON(w, r, &in) {
		return
	}
	children, err := e.Session.UpdateChild(r.Context(), r.PathValue("id"), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, children, nil)
}

func (h *Handler) DeleteChild(w http.ResponseWriter, r *http.Request) {
	e, _ := h.entry(w, r)
	if e == nil {
		return
	}
	children, err := e.Session.DeleteChild(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, children, nil)
}

// SetActiveChild selects the child the records and wishlist are scoped to.
// A null child_id shows every child. The response is the new snapshot.
func (h *Handler) SetActiveChild(w http.ResponseWriter, r *http.Request) {
	e, _ := h.entry(w, r)
	if e == nil {
		return
	}
	var req activeChildRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	err := e.Session.SetActiveChild(r.Context(), req.ChildID)
	if err != nil {
		if !isReloadFailure(err) {
			h.writeError(w, r, err)
			return
		}
		httpx.JSONSuccess(w, r, e.Session.Snapshot(), stale)
		return
	}
	httpx.JSONSuccess(w, r, e.Session.Snapshot(), nil)
}
