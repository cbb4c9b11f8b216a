package api

import (
	"net/http"

	"readinglog/internal/entity"
	"readinglog/internal/httpx"
	"readinglog/internal/reconcile"
)

type createdBook struct {
	ID    string        `json:"id"`
	Books []entity.Book `json:"books"`
}

func (h *Handler) ListBooks(w http.ResponseWriter, r *http.Request) {
	e, _ := h.entry(w, r)
	if e == nil {
		return
	}
	books, err := e.Session.FetchBooks(r.Context())
	h.respondFetched(w, r, books, err)
}

func (h *Handler) CreateBook(w http.ResponseWriter, r *http.Request) {
	e, _ := h.entry(w, r)
	if e == nil {
		return
	}
	var in entity.BookInput
	if !decodeJSON(w, r, &in) {
		return
	}
	id, err := e.Session.AddBook(r.Context(), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccessCreated(w, r, createdBook{ID: id, Books: e.Session.Books()})
}

// BookSuggestions lists shelf books whose title contains ?title=, for the
// record form's autocomplete.
func (h *Handler) BookSuggestions(w http.ResponseWriter, r *http.Request) {
	e, _ := h.entry(w, r)
	if e == nil {
		return
	}
	suggestions := reconcile.Suggest(e.Session.Books(), r.URL.Query().Get("title"))
	if suggestions == nil {
		suggestions = []entity.Book{}
	}
	httpx.JSONSuccess(w, r, suggestions, nil)
}
