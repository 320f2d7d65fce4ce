package title

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeason(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantN     int
		wantTitle string
		wantOK    bool
	}{
		{"welsh with separator", "Rownd a Rownd - Cyfres 23", 23, "Rownd a Rownd", true},
		{"english with separator", "Hinterland: Season 2", 2, "Hinterland", true},
		{"welsh no separator", "Cyfres 3", 3, "", true},
		{"x prefix digits", "Pobol y Cwm Season X2", 2, "Pobol y Cwm", true},
		{"lowercase marker", "pobol y cwm cyfres 9", 9, "pobol y cwm", true},
		{"comma separator", "Y Golau, Cyfres 1", 1, "Y Golau", true},
		{"no marker", "Rownd a Rownd", 0, "Rownd a Rownd", false},
		{"empty", "", 0, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, stripped, ok := Season(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantN, n)
			assert.Equal(t, tt.wantTitle, stripped)
		})
	}
}

func TestSeason_FirstMatchWins(t *testing.T) {
	// Conflicting markers are not reconciled; the first match of the first
	// pattern decides the season number.
	n, _, ok := Season("Teitl - Cyfres 3 Season 4")
	assert.True(t, ok)
	assert.Equal(t, 3, n)
}

func TestEpisodeFromTitle(t *testing.T) {
	tests := []struct {
		input  string
		want   int
		wantOK bool
	}{
		{"Pennod 5", 5, true},
		{"Episode 12", 12, true},
		{"Pennod5", 5, true},
		{"pennod 5", 0, false},  // marker must be capitalized
		{"Y Pennod 5", 0, false}, // marker must lead the title
		{"Teitl", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := EpisodeFromTitle(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStripLeadingNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantN    int
		wantText string
		wantOK   bool
	}{
		{"dot separator", "3. Teitl", 3, "Teitl", true},
		{"dash separator", "12 - Y Wers", 12, "Y Wers", true},
		{"colon separator", "7: Diwedd", 7, "Diwedd", true},
		{"bare number", "4", 4, "", true},
		{"no leading number", "Teitl 3", 0, "Teitl 3", false},
		{"empty", "", 0, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, text, ok := StripLeadingNumber(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantN, n)
			assert.Equal(t, tt.wantText, text)
		})
	}
}

func TestEpisodeFromText(t *testing.T) {
	tests := []struct {
		input  string
		want   int
		wantOK bool
	}{
		{"programme_E12_hd", 12, true},
		{"rhaglen E3 teitl", 3, true},
		{"VERSE9", 0, false},      // E preceded by a letter is not a token
		{"E12abc", 0, false},      // digits followed by a letter are not a token
		{"rhaglen_e12", 0, false}, // lowercase e is not the marker
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := EpisodeFromText(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEpisodeFromFilename(t *testing.T) {
	tests := []struct {
		input  string
		want   int
		wantOK bool
	}{
		{"rhaglen-pennod_4", 4, true},
		{"rhaglen_Episode12", 12, true},
		{"rhaglen-EPISODE_7", 7, true},
		{"pennod_4", 0, false}, // needs a leading hyphen or underscore
		{"rhaglen.mpg", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := EpisodeFromFilename(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEpisodeFromThumbnail(t *testing.T) {
	got, ok := EpisodeFromThumbnail("https://cdn.example/images/Rhaglen_P6.jpg")
	assert.True(t, ok)
	assert.Equal(t, 6, got)

	_, ok = EpisodeFromThumbnail("https://cdn.example/images/Rhaglen_p6.jpg")
	assert.False(t, ok)
}
