package title

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Y Tŷ", "ty"},
		{"Yr Amgueddfa: Y Dechrau", "amgueddfa dechrau"},
		{"Rownd a Rownd", "rownd a rownd"},
		{"Jones & Jones", "jones a jones"},
		{"Pris-y-Môr", "pris y mor"},
		{"The Crown", "crown"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Clean(tt.input))
		})
	}
}

func TestMatch(t *testing.T) {
	candidates := []string{
		"Rownd a Rownd - Cyfres 23",
		"Pobol y Cwm",
		"Y Golau",
	}

	result := Match("Rownd a Rownd", candidates)
	assert.Equal(t, 0, result.Index)
	assert.Equal(t, "Rownd a Rownd - Cyfres 23", result.Title)
	assert.GreaterOrEqual(t, result.Confidence, ConfidenceLow)
}

func TestMatch_ExactIgnoringDiacritics(t *testing.T) {
	result := Match("Pris y Mor", []string{"Pris-y-Môr"})
	assert.Equal(t, 0, result.Index)
	assert.Equal(t, ConfidenceHigh, result.Confidence)
	assert.InDelta(t, 1.0, result.Score, 0.001)
}

func TestMatch_NoMatch(t *testing.T) {
	result := Match("Hinterland", []string{"Rasus Cymru"})
	assert.Equal(t, -1, result.Index)
	assert.Equal(t, ConfidenceNone, result.Confidence)
	assert.Empty(t, result.Title)
}

func TestMatch_EmptyCandidates(t *testing.T) {
	result := Match("Anything", nil)
	assert.Equal(t, -1, result.Index)
	assert.Equal(t, ConfidenceNone, result.Confidence)
}

func TestMatchConfidence_String(t *testing.T) {
	assert.Equal(t, "high", ConfidenceHigh.String())
	assert.Equal(t, "medium", ConfidenceMedium.String())
	assert.Equal(t, "low", ConfidenceLow.String())
	assert.Equal(t, "none", ConfidenceNone.String())
}
