package api

import (
	"net/http"
	"strconv"

	"readinglog/internal/catalog"
	"readinglog/internal/httpx"
)

type searchOptions struct {
	Modes      []catalog.Mode `json:"modes"`
	Ages       []string       `json:"ages"`
	Categories []string       `json:"categories"`
}

// SearchOptions lists the choices of the catalog search form.
func (h *Handler) SearchOptions(w http.ResponseWriter, r *http.Request) {
	httpx.JSONSuccess(w, r, searchOptions{
		Modes:      []catalog.Mode{catalog.ModeAge, catalog.ModeCategory, catalog.ModeAuthor, catalog.ModeKeyword},
		Ages:       catalog.AgeOptions,
		Categories: catalog.CategoryOptions,
	}, nil)
}

// Search runs a catalog search: GET /v1/search?mode=age&value=3歳&page=1.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page := 1
	if raw := query.Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "page must be a positive integer", nil)
			return
		}
		page = n
	}

	e, _ := h.entry(w, r)
	if e == nil {
		return
	}
	criteria := catalog.Criteria{Mode: catalog.Mode(query.Get("mode")), Value: query.Get("value")}
	result, err := e.Searcher.Search(r.Context(), criteria, page)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, result, nil)
}

// ChangePage fetches another page of the caller's last search.
func (h *Handler) ChangePage(w http.ResponseWriter, r *http.Request) {
	page, err := strconv.Atoi(r.PathValue("page"))
	if err != nil || page < 1 {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "page must be a positive integer", nil)
		return
	}

	e, _ := h.entry(w, r)
	if e == nil {
		return
	}
	result, err := e.Searcher.ChangePage(r.Context(), page)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, result, nil)
}
