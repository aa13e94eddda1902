package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearcher_EmptyQuery(t *testing.T) {
	s := NewSearcher(openMemory(t), 10, 0)
	got, err := s.Search(context.Background(), "   ")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSearcher_CachesAndInvalidates(t *testing.T) {
	s := NewSearcher(openMemory(t), 10, 0)
	ctx := context.Background()

	got, err := s.Search(ctx, " Ap ")
	require.NoError(t, err)
	assert.Equal(t, []string{"Apple", "Apricot"}, names(got))
	assert.Equal(t, 1, s.cache.Len())

	require.NoError(t, s.Add(ctx, Entry{Name: "Apple Mint"}))
	assert.Equal(t, 0, s.cache.Len())

	got, err = s.Search(ctx, "ap")
	require.NoError(t, err)
	assert.Equal(t, []string{"Apple", "Apple Mint", "Apricot"}, names(got))
}

func TestSearcher_RateLimitHonoursContext(t *testing.T) {
	s := NewSearcher(openMemory(t), 10, 0.01)
	ctx := context.Background()

	_, err := s.Search(ctx, "b")
	require.NoError(t, err, "the first query uses the burst")

	ctx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
	defer cancel()
	_, err = s.Search(ctx, "c")
	assert.Error(t, err)

	// Cached queries bypass the limiter
	got, err := s.Search(ctx, "b")
	require.NoError(t, err)
	assert.NotEmpty(t, got)
}

func TestSearcher_NonASCIIPrefixReachesStore(t *testing.T) {
	store := openMemory(t)
	s := NewSearcher(store, 10, 0)
	ctx := context.Background()
	require.NoError(t, s.Add(ctx, Entry{Name: "Éclair"}))

	direct, err := store.Search(ctx, "Écl", 10)
	require.NoError(t, err)
	require.Equal(t, []string{"Éclair"}, names(direct))

	got, err := s.Search(ctx, " Écl")
	require.NoError(t, err)
	assert.Equal(t, []string{"Éclair"}, names(got))

	// SQLite only folds ASCII, so a lower-case É is a different query
	got, err = s.Search(ctx, "écl")
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = s.Search(ctx, "Écl")
	require.NoError(t, err)
	assert.Equal(t, []string{"Éclair"}, names(got))
}

func TestCacheKey(t *testing.T) {
	assert.Equal(t, "ap", cacheKey("AP"))
	assert.Equal(t, "Écl", cacheKey("Écl"))
}

// addingBackend runs an Add in the middle of the first search, the way a
// concurrent Add would interleave with an in-flight query
type addingBackend struct {
	backend
	searcher *Searcher
	added    bool
}

func (b *addingBackend) Search(ctx context.Context, prefix string, limit int) ([]Entry, error) {
	entries, err := b.backend.Search(ctx, prefix, limit)
	if !b.added {
		b.added = true
		if err := b.searcher.Add(ctx, Entry{Name: "Apple Mint"}); err != nil {
			return nil, err
		}
	}
	return entries, err
}

func TestSearcher_AddDuringSearchIsNotMasked(t *testing.T) {
	s := NewSearcher(openMemory(t), 10, 0)
	s.store = &addingBackend{backend: s.store, searcher: s}
	ctx := context.Background()

	got, err := s.Search(ctx, "ap")
	require.NoError(t, err)
	assert.Equal(t, []string{"Apple", "Apricot"}, names(got), "the in-flight result predates the add")
	assert.Equal(t, 0, s.cache.Len())

	got, err = s.Search(ctx, "ap")
	require.NoError(t, err)
	assert.Equal(t, []string{"Apple", "Apple Mint", "Apricot"}, names(got))
}
