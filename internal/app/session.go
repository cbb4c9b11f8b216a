// Package app holds the per-user application state: the children, books,
// reading records and wishlist of one parent, kept in step with the remote
// store.
//
// Every mutation is a single call that performs the remote write and then
// reloads the affected collection from the store before returning it. Calls
// touching the same collection are serialized, so two quick mutations never
// interleave their reloads. A second call of an operation that is still in
// flight fails fast with ErrBusy.
package app

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"readinglog/internal/entity"
	"readinglog/internal/metrics"
	"readinglog/internal/prefs"
	"readinglog/internal/store"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
)

// Session is the state holder of one signed-in parent. It is safe for
// concurrent use.
type Session struct {
	userID  string
	gw      *store.Gateway
	prefs   prefs.Store
	log     *logrus.Entry
	metrics *metrics.Metrics
	guard   *guard

	// Lock order: children, records, wishlist. books is independent.
	childrenMu sync.Mutex
	booksMu    sync.Mutex
	recordsMu  sync.Mutex
	wishlistMu sync.Mutex

	mu            sync.RWMutex
	closed        bool
	activeChildID string
	children      []entity.Child
	books         []entity.Book
	records       []entity.ReadingRecord
	wishlist      []entity.WishlistEntry
}

type Option func(*Session)

// WithMetrics records mutation outcomes, fetch failures and busy rejections.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Session) { s.metrics = m }
}

// New creates an empty session for userID. Call Load to populate it.
func New(userID string, gw *store.Gateway, p prefs.Store, log *logrus.Entry, opts ...Option) *Session {
	s := &Session{
		userID: userID,
		gw:     gw,
		prefs:  p,
		log:    log.WithFields(logrus.Fields{"component": "session", "user_id": userID}),
		guard:  newGuard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) UserID() string { return s.userID }

// Load restores the persisted active child and fetches every collection.
// Fetch failures are logged and returned together; the session stays usable
// with whatever could be loaded.
func (s *Session) Load(ctx context.Context) error {
	if err := s.checkOpen(); err != nil {
		return err
	}

	id, ok, err := s.prefs.Get(ctx, s.userID, prefs.KeyActiveChild)
	switch {
	case err != nil:
		s.log.WithError(err).Warn("failed to read persisted active child")
	case ok:
		s.mu.Lock()
		s.activeChildID = id
		s.mu.Unlock()
	}

	var errs *multierror.Error

	s.childrenMu.Lock()
	_, err = s.reloadChildren(ctx)
	s.childrenMu.Unlock()
	errs = multierror.Append(errs, err)

	_, err = s.FetchBooks(ctx)
	errs = multierror.Append(errs, err)
	_, err = s.FetchReadingRecords(ctx)
	errs = multierror.Append(errs, err)
	_, err = s.FetchWishlist(ctx)
	errs = multierror.Append(errs, err)

	return errs.ErrorOrNil()
}

// Close tears the session down. Later calls fail with ErrClosed.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	s.children, s.books, s.records, s.wishlist = nil, nil, nil, nil
	s.log.Debug("session closed")
	return nil
}

func (s *Session) checkOpen() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return ErrClosed
	}
	return nil
}

// begin marks op as pending or reports ErrBusy.
func (s *Session) begin(op Operation) error {
	if err := s.checkOpen(); err != nil {
		return err
	}
	if !s.guard.begin(op) {
		s.metrics.IncBusy(string(op))
		return fmt.Errorf("%w: %s", ErrBusy, op)
	}
	return nil
}

// mutate runs the remote write and, when it succeeds, the reload of the
// affected collection while lock is held. A failed reload is logged and
// leaves the previous collection in place.
func (s *Session) mutate(op Operation, lock *sync.Mutex, write func() error, reload func() error) error {
	if err := s.begin(op); err != nil {
		return err
	}
	defer s.guard.end(op)

	lock.Lock()
	defer lock.Unlock()

	err := write()
	s.metrics.ObserveMutation(string(op), err)
	if err != nil {
		s.log.WithError(err).WithField("operation", op).Warn("mutation failed")
		return err
	}
	if err := reload(); err != nil {
		s.log.WithError(err).WithField("operation", op).Warn("reload after mutation failed, keeping previous collection")
	}
	return nil
}

func (s *Session) fetchFailed(collection string, err error) {
	s.metrics.IncFetchFailure(collection)
	s.log.WithError(err).WithField("collection", collection).Warn("fetch failed, keeping previous collection")
}

// State reports whether op is currently in flight.
func (s *Session) State(op Operation) OpState {
	return s.guard.state(op)
}

// ActiveChildID returns the selected child, or "" when none is selected.
func (s *Session) ActiveChildID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeChildID
}

func (s *Session) Children() []entity.Child {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneOrEmpty(s.children)
}

func (s *Session) Books() []entity.Book {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneOrEmpty(s.books)
}

func (s *Session) Records() []entity.ReadingRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneOrEmpty(s.records)
}

func (s *Session) Wishlist() []entity.WishlistEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneOrEmpty(s.wishlist)
}

// Snapshot is a consistent copy of the whole session state.
type Snapshot struct {
	UserID        string                 `json:"user_id"`
	ActiveChildID string                 `json:"active_child_id,omitempty"`
	Children      []entity.Child         `json:"children"`
	Books         []entity.Book          `json:"books"`
	Records       []entity.ReadingRecord `json:"records"`
	Wishlist      []entity.WishlistEntry `json:"wishlist"`
	Pending       []Operation            `json:"pending,omitempty"`
}

func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	pending := s.guard.snapshot()
	slices.Sort(pending)
	return Snapshot{
		UserID:        s.userID,
		ActiveChildID: s.activeChildID,
		Children:      cloneOrEmpty(s.children),
		Books:         cloneOrEmpty(s.books),
		Records:       cloneOrEmpty(s.records),
		Wishlist:      cloneOrEmpty(s.wishlist),
		Pending:       pending,
	}
}

func cloneOrEmpty[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return slices.Clone(in)
}
