package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meurig/clic/internal/extractor"
)

func TestParseLocal_SeasonAndMarker(t *testing.T) {
	out := parseLocal("Rownd a Rownd - Cyfres 23", "Pennod 5", "", "")

	assert.Equal(t, "Rownd a Rownd", out.Series)
	assert.Equal(t, 23, out.Season)
	require.NotNil(t, out.EpisodeNumber)
	assert.Equal(t, 5, *out.EpisodeNumber)
	assert.Equal(t, "Pennod 5", out.Episode)
}

func TestParseLocal_LeadingNumberRewritesTitle(t *testing.T) {
	out := parseLocal("Cyfres", "3. Y Mynydd", "", "")

	require.NotNil(t, out.EpisodeNumber)
	assert.Equal(t, 3, *out.EpisodeNumber)
	assert.Equal(t, "Y Mynydd", out.Episode)
}

func TestParseLocal_FilenameFallbacks(t *testing.T) {
	tests := []struct {
		name      string
		mpg       string
		thumbnail string
		want      int
	}{
		{"E token in filename", "programme_E12_hd.mp4", "", 12},
		{"thumbnail marker", "programme_hd.mp4", "https://cdn.example/poster_P7.jpg", 7},
		{"pennod marker in filename", "sioe-pennod_4.mp4", "", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := parseLocal("Sioe", "", tt.mpg, tt.thumbnail)
			require.NotNil(t, out.EpisodeNumber)
			assert.Equal(t, tt.want, *out.EpisodeNumber)
		})
	}
}

func TestParseLocal_NothingFound(t *testing.T) {
	out := parseLocal("Dim Cyfres Yma", "", "", "")

	assert.Nil(t, out.EpisodeNumber)
	assert.Equal(t, 0, out.Season)
	// An empty programme title falls back to the series name.
	assert.Equal(t, "Dim Cyfres Yma", out.Episode)
}

func TestMatchEntry(t *testing.T) {
	playlist := &extractor.Playlist{
		ID: "805",
		Entries: []extractor.Entry{
			{ID: "1", Title: "Pennod 1"},
			{ID: "2", Title: "Pennod 2"},
			{ID: "3", Title: "Y Ffeinal"},
		},
	}

	entry, err := matchEntry(playlist, "ffeinal")
	require.NoError(t, err)
	assert.Equal(t, "3", entry.ID)
}

func TestMatchEntry_NoMatch(t *testing.T) {
	playlist := &extractor.Playlist{
		Entries: []extractor.Entry{{ID: "1", Title: "Pennod 1"}},
	}

	_, err := matchEntry(playlist, "completely unrelated words")
	assert.Error(t, err)
}
