package api

import (
	"context"
	"sync"
	"time"

	"readinglog/internal/app"
	"readinglog/internal/catalog"
	"readinglog/internal/metrics"
	"readinglog/internal/prefs"
	"readinglog/internal/store"

	"github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"
)

// Entry is the live state of one signed-in user.
type Entry struct {
	Session  *app.Session
	Searcher *catalog.Searcher

	once sync.Once
}

// Registry hands out one Entry per user and tears it down after it has been
// idle for the configured TTL or on logout.
type Registry struct {
	gateway *store.Gateway
	prefs   prefs.Store
	fetcher catalog.Fetcher
	log     *logrus.Entry
	metrics *metrics.Metrics

	mu    sync.Mutex
	cache *cache.Cache
}

func NewRegistry(gw *store.Gateway, p prefs.Store, f catalog.Fetcher, ttl time.Duration, log *logrus.Entry, m *metrics.Metrics) *Registry {
	return newRegistryWithCleanup(gw, p, f, ttl, ttl/2, log, m)
}

func newRegistryWithCleanup(gw *store.Gateway, p prefs.Store, f catalog.Fetcher, ttl, cleanup time.Duration, log *logrus.Entry, m *metrics.Metrics) *Registry {
	r := &Registry{
		gateway: gw,
		prefs:   p,
		fetcher: f,
		log:     log.WithField("component", "registry"),
		metrics: m,
		cache:   cache.New(ttl, cleanup),
	}
	r.cache.OnEvicted(r.evicted)
	return r
}

func (r *Registry) evicted(userID string, v any) {
	e, ok := v.(*Entry)
	if !ok {
		return
	}
	r.metrics.SessionClosed()
	if err := e.Session.Close(); err != nil {
		r.log.WithError(err).WithField("user_id", userID).Warn("failed to close session")
	}
	r.log.WithField("user_id", userID).Debug("session evicted")
}

// Get returns the user's entry, creating and loading it on first use. Every
// call restarts the idle timer. The call that performs the load returns its
// error together with a usable entry holding whatever could be fetched.
func (r *Registry) Get(ctx context.Context, userID string) (*Entry, error) {
	r.mu.Lock()
	// Expired entries the janitor has not reached yet must be evicted here,
	// or SetDefault would replace them without closing their session.
	r.cache.DeleteExpired()
	var e *Entry
	if v, ok := r.cache.Get(userID); ok {
		e = v.(*Entry)
	} else {
		e = &Entry{
			Session:  app.New(userID, r.gateway, r.prefs, r.log, app.WithMetrics(r.metrics)),
			Searcher: catalog.NewSearcher(r.fetcher),
		}
		r.metrics.SessionOpened()
	}
	r.cache.SetDefault(userID, e)
	r.mu.Unlock()

	var loadErr error
	e.once.Do(func() {
		loadErr = e.Session.Load(ctx)
	})
	return e, loadErr
}

// Drop closes and forgets the user's entry.
func (r *Registry) Drop(userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache.Delete(userID)
}

// Len reports the number of live entries.
func (r *Registry) Len() int {
	return r.cache.ItemCount()
}

// Close tears down every entry.
func (r *Registry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache.DeleteExpired()
	for userID := range r.cache.Items() {
		r.cache.Delete(userID)
	}
}
