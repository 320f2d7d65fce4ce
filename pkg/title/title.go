// Package title recovers season and episode numbering from free-form Clic
// programme titles, asset filenames and thumbnail URLs.
//
// Catalogue titles are inconsistent: the season marker may live in the series
// title ("Rownd a Rownd - Cyfres 23"), the episode number may be a title
// prefix ("3. Teitl"), a Pennod/Episode marker, or only recoverable from the
// asset filename or thumbnail URL. Each extractor here pulls one fact out of
// one source; callers decide precedence.
package title

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// Season markers, Welsh or English, optionally prefixed by separators and
	// optionally with an "X" before the digits ("Cyfres 3", "Season X2").
	// The separator-prefixed form is tried first so the separators are
	// stripped along with the marker.
	seasonSepRegex  = regexp.MustCompile(`(?i)\s*[-:;,_\.\s]*\s*(?:cyfres|season)\s*X?(\d+)`)
	seasonBareRegex = regexp.MustCompile(`(?i)(?:cyfres|season)\s*X?(\d+)`)

	// Episode marker anchored at the start of a programme title. Deliberately
	// case-sensitive: only the capitalized forms appear as real markers,
	// lowercase "pennod"/"episode" mid-title is prose.
	episodeTitleRegex = regexp.MustCompile(`^(?:Pennod|Episode)\s*(\d+)`)

	// A bare leading number such as "3. Teitl" or "12 - Teitl".
	leadingNumberRegex = regexp.MustCompile(`^(\d+)[;:,\-_\.\s]*`)

	// An E<digits> token anywhere, as found in asset filenames. The token
	// must be delimited by non-alphanumerics on both sides; underscores
	// count as delimiters ("programme_E12_hd") so a plain \b is not enough.
	episodeTokenRegex = regexp.MustCompile(`(?:^|[^0-9A-Za-z])E(\d+)(?:[^0-9A-Za-z]|$)`)

	// A pennod/episode marker embedded in a filename, e.g. "rhaglen-pennod_4".
	episodeFilenameRegex = regexp.MustCompile(`(?i)[_-](?:pennod|episode)_?(\d+)`)

	// The _P<digits> convention in thumbnail URLs.
	episodeThumbnailRegex = regexp.MustCompile(`_P(\d+)`)
)

// Season extracts a season number marker from a title. It returns the season
// number, the title with the marker removed and trimmed, and whether a marker
// was found. When no marker is present the title is returned unchanged.
//
// If a title carries conflicting markers ("Cyfres 3" and "Season 4"), the
// first match of the first pattern wins; no reconciliation is attempted.
func Season(s string) (int, string, bool) {
	for _, re := range []*regexp.Regexp{seasonSepRegex, seasonBareRegex} {
		loc := re.FindStringSubmatchIndex(s)
		if loc == nil {
			continue
		}
		n, err := strconv.Atoi(s[loc[2]:loc[3]])
		if err != nil {
			continue
		}
		matched := s[loc[0]:loc[1]]
		return n, strings.TrimSpace(strings.ReplaceAll(s, matched, "")), true
	}
	return 0, s, false
}

// EpisodeFromTitle matches a "Pennod N" or "Episode N" marker at the start of
// a programme title.
func EpisodeFromTitle(s string) (int, bool) {
	return firstInt(episodeTitleRegex.FindStringSubmatch(s))
}

// StripLeadingNumber extracts a leading episode number followed by a
// separator, returning the number and the remaining text trimmed. Text
// without a leading number is returned unchanged.
func StripLeadingNumber(s string) (int, string, bool) {
	loc := leadingNumberRegex.FindStringSubmatchIndex(s)
	if loc == nil {
		return 0, s, false
	}
	n, err := strconv.Atoi(s[loc[2]:loc[3]])
	if err != nil {
		return 0, s, false
	}
	return n, strings.TrimSpace(s[loc[1]:]), true
}

// EpisodeFromText searches anywhere in the text for a word-bounded E<digits>
// token, e.g. "programme_E12_hd".
func EpisodeFromText(s string) (int, bool) {
	return firstInt(episodeTokenRegex.FindStringSubmatch(s))
}

// EpisodeFromFilename searches a filename for an embedded pennod/episode
// marker, case-insensitively.
func EpisodeFromFilename(s string) (int, bool) {
	return firstInt(episodeFilenameRegex.FindStringSubmatch(s))
}

// EpisodeFromThumbnail searches a thumbnail URL for the _P<digits> convention.
func EpisodeFromThumbnail(s string) (int, bool) {
	return firstInt(episodeThumbnailRegex.FindStringSubmatch(s))
}

func firstInt(match []string) (int, bool) {
	if len(match) < 2 {
		return 0, false
	}
	n, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, false
	}
	return n, true
}
