package reconcile

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"readinglog/internal/app"
	"readinglog/internal/entity"
	"readinglog/internal/validation"
)

// State is the lifecycle position of a Form.
type State int

const (
	Idle State = iota
	Editing
	Searching
	Submitting
)

func (s State) String() string {
	switch s {
	case Editing:
		return "editing"
	case Searching:
		return "searching"
	case Submitting:
		return "submitting"
	default:
		return "idle"
	}
}

// ErrInvalidTransition is returned when a call does not fit the current state.
var ErrInvalidTransition = errors.New("invalid form transition")

// Library is the part of the session the form writes through.
type Library interface {
	Books() []entity.Book
	AddBook(ctx context.Context, in entity.BookInput) (string, error)
	AddReadingRecord(ctx context.Context, in entity.ReadingRecordInput) ([]entity.ReadingRecord, error)
	UpdateReadingRecord(ctx context.Context, id string, in entity.ReadingRecordInput) ([]entity.ReadingRecord, error)
}

// Draft is the editable content of the record form. Author is only required
// when submit will create a new book.
type Draft struct {
	ChildID  string `json:"child_id"`
	Title    string `json:"title" validate:"required"`
	Author   string `json:"author"`
	ImageURL string `json:"image_url"`
	Rating   int    `json:"rating" validate:"required,min=1,max=5"`
	Review   string `json:"review"`
	ReadDate string `json:"read_date" validate:"required"`
}

// Form drives one add or edit of a reading record:
//
//	Idle -> Editing -> [Searching -> Editing] -> Submitting -> Idle
//	                                                      \-> Editing (on failure)
type Form struct {
	lib Library
	now func() time.Time

	mu       sync.Mutex
	state    State
	recordID string
	bookID   string
	draft    Draft
}

func NewForm(lib Library) *Form {
	return &Form{lib: lib, now: time.Now}
}

func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *Form) Draft() Draft {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

// ChosenBookID is the book the record will point at, or "" when a new book
// will be created on submit.
func (f *Form) ChosenBookID() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.bookID
}

// Open starts editing. A nil existing record opens an empty form dated
// today; otherwise the form is prefilled and submit updates that record.
func (f *Form) Open(existing *entity.ReadingRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != Idle {
		return f.transitionErr("open")
	}
	f.state = Editing
	if existing == nil {
		f.recordID, f.bookID = "", ""
		f.draft = Draft{ReadDate: f.now().Format(entity.DateLayout)}
		return nil
	}
	f.recordID = existing.ID
	f.bookID = existing.BookID
	f.draft = Draft{
		ChildID:  existing.ChildID,
		Title:    existing.Book.Title,
		Author:   existing.Book.Author,
		ImageURL: existing.Book.ImageURL,
		Rating:   existing.Rating,
		Review:   existing.Review,
		ReadDate: existing.ReadDate,
	}
	return nil
}

// Edit replaces the draft. Changing title or author drops a chosen book.
func (f *Form) Edit(d Draft) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != Editing {
		return f.transitionErr("edit")
	}
	if !sameText(d.Title, f.draft.Title) || !sameText(d.Author, f.draft.Author) {
		f.bookID = ""
	}
	f.draft = d
	return nil
}

// Suggestions lists shelf books matching the current title.
func (f *Form) Suggestions() []entity.Book {
	return Suggest(f.lib.Books(), f.Draft().Title)
}

// ChooseBook links the record to an existing book and copies its fields
// into the draft.
func (f *Form) ChooseBook(bookID string) error {
	books := f.lib.Books()
	idx := slices.IndexFunc(books, func(b entity.Book) bool { return b.ID == bookID })

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != Editing {
		return f.transitionErr("choose book")
	}
	if idx < 0 {
		return fmt.Errorf("%w: unknown book %s", app.ErrValidation, bookID)
	}
	b := books[idx]
	f.bookID = b.ID
	f.draft.Title, f.draft.Author, f.draft.ImageURL = b.Title, b.Author, b.ImageURL
	return nil
}

// BeginSearch moves to Searching while the user looks the title up in the
// catalog.
func (f *Form) BeginSearch() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != Editing {
		return f.transitionErr("begin search")
	}
	f.state = Searching
	return nil
}

// ApplySearchResult fills the draft from a catalog hit and resumes editing.
// The record will get a new book unless one on the shelf matches exactly.
func (f *Form) ApplySearchResult(res entity.CatalogResult) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != Searching {
		return f.transitionErr("apply search result")
	}
	f.state = Editing
	f.bookID = ""
	f.draft.Title, f.draft.Author, f.draft.ImageURL = res.Title, res.Author, res.ImageURL
	return nil
}

func (f *Form) CancelSearch() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != Searching {
		return f.transitionErr("cancel search")
	}
	f.state = Editing
	return nil
}

// Cancel abandons the form from any state but Submitting.
func (f *Form) Cancel() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == Submitting {
		return f.transitionErr("cancel")
	}
	f.reset()
	return nil
}

// Submit validates the draft, resolves the book and saves the record.
// The book is the chosen one, an exact title and author match from the
// shelf, or a newly created one. If the book cannot be created no record is
// written. On any failure the form returns to Editing with the draft intact;
// on success it returns to Idle with the reloaded records.
func (f *Form) Submit(ctx context.Context) ([]entity.ReadingRecord, error) {
	f.mu.Lock()
	if f.state != Editing {
		err := f.transitionErr("submit")
		f.mu.Unlock()
		return nil, err
	}
	if err := validateDraft(f.draft, f.bookID); err != nil {
		f.mu.Unlock()
		return nil, fmt.Errorf("%w: %w", app.ErrValidation, err)
	}
	f.state = Submitting
	d, bookID, recordID := f.draft, f.bookID, f.recordID
	f.mu.Unlock()

	records, err := f.save(ctx, d, bookID, recordID)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.state = Editing
		return nil, err
	}
	f.reset()
	return records, nil
}

func (f *Form) save(ctx context.Context, d Draft, bookID, recordID string) ([]entity.ReadingRecord, error) {
	if bookID == "" {
		if b, ok := findExact(f.lib.Books(), d.Title, d.Author); ok {
			bookID = b.ID
		}
	}
	if bookID == "" {
		id, err := f.lib.AddBook(ctx, entity.BookInput{Title: d.Title, Author: d.Author, ImageURL: d.ImageURL})
		if err != nil {
			return nil, fmt.Errorf("create book for record: %w", err)
		}
		bookID = id
		f.mu.Lock()
		f.bookID = id
		f.mu.Unlock()
	}

	in := entity.ReadingRecordInput{
		ChildID:  d.ChildID,
		BookID:   bookID,
		Rating:   d.Rating,
		Review:   d.Review,
		ReadDate: d.ReadDate,
	}
	if recordID == "" {
		return f.lib.AddReadingRecord(ctx, in)
	}
	return f.lib.UpdateReadingRecord(ctx, recordID, in)
}

func validateDraft(d Draft, bookID string) error {
	verr := &validation.Error{}
	if err := validation.Struct(d); err != nil && !errors.As(err, &verr) {
		return err
	}
	if bookID == "" && d.Author == "" {
		verr.Add("author", "author is required")
	}
	return verr.OrNil()
}

func (f *Form) reset() {
	f.state = Idle
	f.recordID, f.bookID = "", ""
	f.draft = Draft{}
}

func (f *Form) transitionErr(action string) error {
	return fmt.Errorf("%w: cannot %s while %s", ErrInvalidTransition, action, f.state)
}
