package catalog

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := OpenStore(context.Background(), filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	id, err := s.Save(ctx, "standard", Standard)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)

	defs, err := s.Load(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, Standard, defs)

	reg, err := s.LoadRegistry(ctx, id)
	require.NoError(t, err)
	q, err := reg.New(3, "ft")
	require.NoError(t, err)
	in, err := q.ConvertTo("inches")
	require.NoError(t, err)
	assert.InDelta(t, 36, in.Value(), 1e-9)
}

func TestStoreRejectsInvalidCatalog(t *testing.T) {
	s := openTestStore(t)
	_, err := s.Save(context.Background(), "broken", []Definition{{Name: "km", Measures: Length, Factor: 1000}})
	assert.ErrorIs(t, err, ErrNoReferenceUnit)

	list, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestStoreLoadMissing(t *testing.T) {
	s := openTestStore(t)
	_, err := s.Load(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrCatalogNotFound)

	_, err = s.Latest(context.Background(), "nothing")
	assert.ErrorIs(t, err, ErrCatalogNotFound)
}

func TestStoreLatestAndList(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	small := []Definition{
		{Name: "m", Measures: Length, Factor: 1},
		{Name: "km", Measures: Length, Factor: 1000},
	}
	first, err := s.Save(ctx, "small", small)
	require.NoError(t, err)
	second, err := s.Save(ctx, "small", append(small, Definition{Name: "s", Measures: Time, Factor: 1}))
	require.NoError(t, err)
	other, err := s.Save(ctx, "other", small)
	require.NoError(t, err)

	latest, err := s.Latest(ctx, "small")
	require.NoError(t, err)
	assert.Equal(t, second, latest)

	defs, err := s.Load(ctx, first)
	require.NoError(t, err)
	assert.Len(t, defs, 2)
	assert.Nil(t, defs[0].Aliases)

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, other, list[0].ID)
	assert.Equal(t, "other", list[0].Name)
	assert.Equal(t, 2, list[0].Units)
	assert.Equal(t, second, list[1].ID)
	assert.Equal(t, 3, list[1].Units)
	assert.Equal(t, first, list[2].ID)
	assert.False(t, list[2].CreatedAt.IsZero())
}
