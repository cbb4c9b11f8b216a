package api

import (
	"fmt"
	"net/http"
	"slices"

	"readinglog/internal/app"
	"readinglog/internal/entity"
	"readinglog/internal/httpx"
	"readinglog/internal/reconcile"
	"readinglog/internal/store"
)

// recordRequest is the record form as submitted. BookID picks a shelf book
// and overrides title, author and image.
type recordRequest struct {
	ChildID  string `json:"child_id"`
	BookID   string `json:"book_id"`
	Title    string `json:"title"`
	Author   string `json:"author"`
	ImageURL string `json:"image_url"`
	Rating   int    `json:"rating"`
	Review   string `json:"review"`
	ReadDate string `json:"read_date"`
}

type recordPatch struct {
	ChildID  *string `json:"child_id"`
	BookID   *string `json:"book_id"`
	Title    *string `json:"title"`
	Author   *string `json:"author"`
	ImageURL *string `json:"image_url"`
	Rating   *int    `json:"rating"`
	Review   *string `json:"review"`
	ReadDate *string `json:"read_date"`
}

func (p recordPatch) apply(d reconcile.Draft) reconcile.Draft {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&d.ChildID, p.ChildID)
	set(&d.Title, p.Title)
	set(&d.Author, p.Author)
	set(&d.ImageURL, p.ImageURL)
	set(&d.Review, p.Review)
	set(&d.ReadDate, p.ReadDate)
	if p.Rating != nil {
		d.Rating = *p.Rating
	}
	return d
}

var sortKeys = []app.SortKey{app.SortByDate, app.SortByTitle, app.SortByRating}

// ListRecords reloads the records of the active child (or every child) and
// filters them by ?q= on title or author, ordered by ?sort=date|title|rating.
func (h *Handler) ListRecords(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	sortBy := app.SortKey(query.Get("sort"))
	if sortBy == "" {
		sortBy = app.SortByDate
	}
	if !slices.Contains(sortKeys, sortBy) {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", fmt.Sprintf("unknown sort %q", sortBy), nil)
		return
	}

	e, _ := h.entry(w, r)
	if e == nil {
		return
	}
	records, err := e.Session.FetchReadingRecords(r.Context())
	if records != nil {
		records = app.SortRecords(app.FilterRecords(records, query.Get("q")), sortBy)
	}
	h.respondFetched(w, r, records, err)
}

// CreateRecord saves a new reading record, reusing a shelf book with the
// same title and author or creating one.
func (h *Handler) CreateRecord(w http.ResponseWriter, r *http.Request) {
	e, _ := h.entry(w, r)
	if e == nil {
		return
	}
	var req recordRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	form := reconcile.NewForm(e.Session)
	if err := form.Open(nil); err != nil {
		h.writeError(w, r, err)
		return
	}
	d := form.Draft()
	d.ChildID, d.Title, d.Author, d.ImageURL = req.ChildID, req.Title, req.Author, req.ImageURL
	d.Rating, d.Review = req.Rating, req.Review
	if req.ReadDate != "" {
		d.ReadDate = req.ReadDate
	}
	if d.ChildID == "" && e.Session.ActiveChildID() == "" {
		h.writeError(w, r, app.ErrNoActiveChild)
		return
	}

	records, err := h.submit(r, form, d, req.BookID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccessCreated(w, r, records)
}

// UpdateRecord changes the given fields of a record. Changing title or
// author relinks the record to a matching or new book.
func (h *Handler) UpdateRecord(w http.ResponseWriter, r *http.Request) {
	e, _ := h.entry(w, r)
	if e == nil {
		return
	}
	var patch recordPatch
	if !decodeJSON(w, r, &patch) {
		return
	}

	id := r.PathValue("id")
	records := e.Session.Records()
	idx := slices.IndexFunc(records, func(rec entity.ReadingRecord) bool { return rec.ID == id })
	if idx < 0 {
		h.writeError(w, r, fmt.Errorf("record %s: %w", id, store.ErrNotFound))
		return
	}

	form := reconcile.NewForm(e.Session)
	if err := form.Open(&records[idx]); err != nil {
		h.writeError(w, r, err)
		return
	}
	bookID := ""
	if patch.BookID != nil {
		bookID = *patch.BookID
	}

	updated, err := h.submit(r, form, patch.apply(form.Draft()), bookID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, updated, nil)
}

func (h *Handler) submit(r *http.Request, form *reconcile.Form, d reconcile.Draft, bookID string) ([]entity.ReadingRecord, error) {
	if err := form.Edit(d); err != nil {
		return nil, err
	}
	if bookID != "" {
		if err := form.ChooseBook(bookID); err != nil {
			return nil, err
		}
	}
	return form.Submit(r.Context())
}

func (h *Handler) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	e, _ := h.entry(w, r)
	if e == nil {
		return
	}
	records, err := e.Session.DeleteReadingRecord(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, records, nil)
}
