package catalog

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openMemory(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func names(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

func TestOpen_SeedsProduce(t *testing.T) {
	s := openMemory(t)
	n, err := s.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, len(Produce()), n)
}

func TestSearch_PrefixCaseInsensitiveOrdered(t *testing.T) {
	s := openMemory(t)
	ctx := context.Background()

	got, err := s.Search(ctx, "ap", 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"Apple", "Apricot"}, names(got))

	got, err = s.Search(ctx, "AP", 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"Apple", "Apricot"}, names(got))

	got, err = s.Search(ctx, "p", 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"Papaya", "Peach", "Pear"}, names(got))
}

func TestSearch_EscapesWildcards(t *testing.T) {
	s := openMemory(t)
	ctx := context.Background()
	require.NoError(t, s.Add(ctx, Entry{Name: "100% Juice"}, Entry{Name: "1000 Island"}))

	got, err := s.Search(ctx, "100%", 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"100% Juice"}, names(got))

	got, err = s.Search(ctx, "_", 10)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestAdd_UpsertsAndValidates(t *testing.T) {
	s := openMemory(t)
	ctx := context.Background()

	require.NoError(t, s.Add(ctx, Entry{Name: "apple", Description: "crisp"}))
	got, err := s.Search(ctx, "apple", 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "crisp", got[0].Description)

	assert.ErrorIs(t, s.Add(ctx, Entry{Name: "  "}), ErrEmptyName)
}

func TestOpen_FileDatabasePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "catalog.db")
	ctx := context.Background()

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Add(ctx, Entry{Name: "Quince"}))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()
	got, err := s.Search(ctx, "qu", 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"Quince"}, names(got))
}
