package api

import (
	"net/http"
)

// Register mounts every authenticated /v1 route on mux. auth wraps each
// handler individually so the mux still records the matched pattern.
func (h *Handler) Register(mux *http.ServeMux, auth func(http.Handler) http.Handler) {
	handle := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, auth(fn))
	}

	handle("GET /v1/state", h.State)
	handle("DELETE /v1/session", h.Logout)

	handle("GET /v1/children", h.ListChildren)
	handle("POST /v1/children", h.CreateChild)
	handle("POST /v1/children/batch", h.CreateChildren)
	handle("PATCH /v1/children/{id}", h.UpdateChild)
	handle("DELETE /v1/children/{id}", h.DeleteChild)
	handle("PUT /v1/active-child", h.SetActiveChild)

	handle("GET /v1/books", h.ListBooks)
	handle("POST /v1/books", h.CreateBook)
	handle("GET /v1/books/suggestions", h.BookSuggestions)

	handle("GET /v1/records", h.ListRecords)
	handle("POST /v1/records", h.CreateRecord)
	handle("PATCH /v1/records/{id}", h.UpdateRecord)
	handle("DELETE /v1/records/{id}", h.DeleteRecord)

	handle("GET /v1/wishlist", h.ListWishlist)
	handle("POST /v1/wishlist", h.AddToWishlist)
	handle("DELETE /v1/wishlist/{id}", h.RemoveFromWishlist)

	handle("GET /v1/search", h.Search)
	handle("GET /v1/search/options", h.SearchOptions)
	handle("GET /v1/search/pages/{page}", h.ChangePage)
}
