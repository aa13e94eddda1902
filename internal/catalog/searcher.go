package catalog

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"
	"unicode"

	"golang.org/x/time/rate"

	"github.com/billie-coop/typeahead/internal/csync"
	"github.com/billie-coop/typeahead/internal/logging"
)

// Searcher fronts a Store with a rate limiter and a bounded result cache.
// Search is called from tea.Cmd goroutines, so several may run at once.
type Searcher struct {
	store   backend
	limit   int
	limiter *rate.Limiter
	cache   *csync.Map[string, []Entry]
	// bumped by Add; results fetched under an older generation are not cached
	gen atomic.Uint64
}

// backend is the part of Store the searcher uses
type backend interface {
	Search(ctx context.Context, prefix string, limit int) ([]Entry, error)
	Add(ctx context.Context, entries ...Entry) error
}

// NewSearcher creates a searcher returning at most limit entries and
// allowing perSecond uncached store queries per second (<= 0: unlimited)
func NewSearcher(store *Store, limit int, perSecond float64) *Searcher {
	l := rate.Limit(perSecond)
	if perSecond <= 0 {
		l = rate.Inf
	}
	return &Searcher{
		store:   store,
		limit:   limit,
		limiter: rate.NewLimiter(l, 1),
		cache:   csync.NewBoundedMap[string, []Entry](128),
	}
}

// Search returns entries whose name starts with query. Surrounding
// whitespace is ignored and an empty query matches nothing. The store sees
// the query as typed.
func (s *Searcher) Search(ctx context.Context, query string) ([]Entry, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return nil, nil
	}
	key := cacheKey(q)

	if hit, ok := s.cache.Get(key); ok {
		logging.Debug("catalog cache hit", "query", q, "results", len(hit))
		return hit, nil
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	gen := s.gen.Load()
	start := time.Now()
	entries, err := s.store.Search(ctx, q, s.limit)
	if err != nil {
		return nil, err
	}
	logging.Debug("catalog search", "query", q, "results", len(entries), "took", time.Since(start))

	s.cache.Set(key, entries)
	if s.gen.Load() != gen {
		// an Add landed while the query ran
		s.cache.Delete(key)
	}
	return entries, nil
}

// cacheKey folds case only where SQLite's LIKE does: ASCII letters
func cacheKey(q string) string {
	for _, r := range q {
		if r > unicode.MaxASCII {
			return q
		}
	}
	return strings.ToLower(q)
}

// Add inserts entries and drops cached results
func (s *Searcher) Add(ctx context.Context, entries ...Entry) error {
	if err := s.store.Add(ctx, entries...); err != nil {
		return err
	}
	s.gen.Add(1)
	s.cache.Clear()
	return nil
}
