package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meurig/clic/internal/extractor"
	"github.com/meurig/clic/internal/manifest"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func sampleRecord(id string) *extractor.Record {
	five := 5
	return &extractor.Record{
		ID:            id,
		Title:         "Rownd a Rownd",
		Series:        "Rownd a Rownd",
		SeriesID:      "805",
		SeasonNumber:  23,
		Episode:       "Pennod 5",
		EpisodeNumber: &five,
		EpisodeID:     id,
		Duration:      1500,
		Formats:       []manifest.Format{{ID: "hls-WW-0", URL: "https://cdn.example/low.m3u8"}},
	}
}

func TestSaveAndGet(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, sampleRecord("123456"), "https://www.s4c.cymru/clic/programme/123456"))

	saved, err := s.Get(ctx, "123456")
	require.NoError(t, err)
	assert.Equal(t, "https://www.s4c.cymru/clic/programme/123456", saved.SourceURL)
	assert.Equal(t, "Rownd a Rownd", saved.Record.Series)
	assert.Equal(t, 23, saved.Record.SeasonNumber)
	require.NotNil(t, saved.Record.EpisodeNumber)
	assert.Equal(t, 5, *saved.Record.EpisodeNumber)
	require.Len(t, saved.Record.Formats, 1)
	assert.False(t, saved.ResolvedAt.IsZero())
}

func TestSave_Upsert(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, sampleRecord("123456"), "url-1"))

	updated := sampleRecord("123456")
	updated.SeasonNumber = 24
	updated.EpisodeNumber = nil
	require.NoError(t, s.Save(ctx, updated, "url-2"))

	saved, err := s.Get(ctx, "123456")
	require.NoError(t, err)
	assert.Equal(t, "url-2", saved.SourceURL)
	assert.Equal(t, 24, saved.Record.SeasonNumber)
	assert.Nil(t, saved.Record.EpisodeNumber)

	all, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestGet_NotFound(t *testing.T) {
	s := testStore(t)

	_, err := s.Get(context.Background(), "999999")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestList(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, sampleRecord("1"), "u1"))
	require.NoError(t, s.Save(ctx, sampleRecord("2"), "u2"))
	require.NoError(t, s.Save(ctx, sampleRecord("3"), "u3"))

	all, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestDelete(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, sampleRecord("1"), "u1"))
	require.NoError(t, s.Delete(ctx, "1"))

	_, err := s.Get(ctx, "1")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, s.Delete(ctx, "1"), ErrNotFound)
}
