package welshdate

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	got, err := Parse("15 Ionawr 2021")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2021, time.January, 15, 0, 0, 0, 0, time.UTC), got)
	assert.Equal(t, int64(1610668800), got.Unix())
}

func TestParse_AllMonths(t *testing.T) {
	names := []string{
		"Ionawr", "Chwefror", "Mawrth", "Ebrill", "Mai", "Mehefin",
		"Gorffennaf", "Awst", "Medi", "Hydref", "Tachwedd", "Rhagfyr",
	}

	for i, name := range names {
		t.Run(name, func(t *testing.T) {
			got, err := Parse(fmt.Sprintf("1 %s 2023", name))
			require.NoError(t, err)
			assert.Equal(t, time.Month(i+1), got.Month())
			assert.Equal(t, 2023, got.Year())

			// Round-trip property: compact form keeps year and mapped month.
			compact := Compact(got)
			require.Len(t, compact, 8)
			assert.Equal(t, "2023", compact[:4])
			assert.Equal(t, fmt.Sprintf("%02d", i+1), compact[4:6])
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"two tokens", "15 Ionawr"},
		{"four tokens", "15 Ionawr 2021 extra"},
		{"english month", "15 January 2021"},
		{"non numeric day", "un Ionawr 2021"},
		{"non numeric year", "15 Ionawr dwy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestParse_InvalidDate(t *testing.T) {
	_, err := Parse("31 Chwefror 2021")
	assert.ErrorIs(t, err, ErrInvalid)

	// 2024 is a leap year, 2023 is not.
	_, err = Parse("29 Chwefror 2024")
	assert.NoError(t, err)
	_, err = Parse("29 Chwefror 2023")
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestCompact(t *testing.T) {
	assert.Equal(t, "20210115", Compact(time.Date(2021, time.January, 15, 0, 0, 0, 0, time.UTC)))

	// Non-UTC input is rendered in UTC.
	loc := time.FixedZone("CET", 3600)
	assert.Equal(t, "20211231", Compact(time.Date(2022, time.January, 1, 0, 30, 0, 0, loc)))
}

func TestMonth(t *testing.T) {
	m, ok := Month("Hydref")
	require.True(t, ok)
	assert.Equal(t, time.October, m)

	_, ok = Month("October")
	assert.False(t, ok)
}
