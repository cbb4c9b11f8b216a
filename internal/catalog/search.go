package catalog

import (
	"context"
	"errors"
	"sync"

	"readinglog/internal/entity"
)

// ErrNoPreviousSearch is returned by ChangePage before any search resolved.
var ErrNoPreviousSearch = errors.New("no previous search")

// Page is one normalized result page.
type Page struct {
	Items     []entity.CatalogResult `json:"items"`
	Count     int                    `json:"count"`
	Page      int                    `json:"page"`
	PageCount int                    `json:"page_count"`
}

// Searcher runs catalog searches and remembers the last resolved query so
// the caller can page through it.
type Searcher struct {
	fetcher Fetcher

	mu   sync.Mutex
	last *Params
	page *Page
}

func NewSearcher(f Fetcher) *Searcher {
	return &Searcher{fetcher: f}
}

// Search resolves c and fetches the given page (1 when page < 1). Invalid
// criteria are rejected without a network call.
func (s *Searcher) Search(ctx context.Context, c Criteria, page int) (*Page, error) {
	p, err := Resolve(c)
	if err != nil {
		return nil, err
	}
	if page > 1 {
		p.Page = page
	}
	return s.run(ctx, p)
}

// ChangePage replays the last resolved parameters against page n.
func (s *Searcher) ChangePage(ctx context.Context, n int) (*Page, error) {
	s.mu.Lock()
	last := s.last
	s.mu.Unlock()
	if last == nil {
		return nil, ErrNoPreviousSearch
	}
	p := *last
	p.Page = max(n, 1)
	return s.run(ctx, p)
}

// Last returns the most recent successful page, or nil.
func (s *Searcher) Last() *Page {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.page
}

func (s *Searcher) run(ctx context.Context, p Params) (*Page, error) {
	s.mu.Lock()
	s.last = &p
	s.mu.Unlock()

	res, err := s.fetcher.Fetch(ctx, p)
	if err != nil {
		s.mu.Lock()
		s.page = nil
		s.mu.Unlock()
		return nil, err
	}

	page := &Page{
		Items:     Normalize(res.Items),
		Count:     res.Count,
		Page:      res.Page,
		PageCount: res.PageCount,
	}
	if page.Page == 0 {
		page.Page = p.Page
	}

	s.mu.Lock()
	s.page = page
	s.mu.Unlock()
	return page, nil
}
