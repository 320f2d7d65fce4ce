package extractor

import (
	"github.com/meurig/clic/internal/manifest"
)

// SubtitleTrack is one normalized subtitle descriptor.
type SubtitleTrack struct {
	URL    string `json:"url"`
	Format string `json:"format"` // always "vtt"
}

// Record is the canonical normalized output for one programme. Nullable
// fields stay nil when the upstream payload lacks the source data; they are
// never defaulted.
type Record struct {
	ID                string                     `json:"id"`
	Title             string                     `json:"title"`
	Description       string                     `json:"description,omitempty"`
	Thumbnail         string                     `json:"thumbnail,omitempty"`
	Duration          int                        `json:"duration"` // seconds
	Formats           []manifest.Format          `json:"formats"`
	Subtitles         map[string][]SubtitleTrack `json:"subtitles,omitempty"`
	Series            string                     `json:"series"`
	SeriesID          string                     `json:"series_id,omitempty"`
	SeasonNumber      int                        `json:"season_number"` // 0 when unknown
	Episode           string                     `json:"episode"`       // episode title
	EpisodeNumber     *int                       `json:"episode_number"`
	EpisodeID         string                     `json:"episode_id"`
	ReleaseTimestamp  *int64                     `json:"release_timestamp,omitempty"`
	ReleaseDate       string                     `json:"release_date,omitempty"` // YYYYMMDD
	ReleaseYear       *int                       `json:"release_year,omitempty"`
	ModifiedTimestamp *int64                     `json:"modified_timestamp,omitempty"`
	ModifiedDate      string                     `json:"modified_date,omitempty"` // YYYYMMDD
}

// Entry is one child reference inside a playlist result. Entries always
// target the non-expanding ProgrammeIndividual resolver so a series expansion
// cannot recurse.
type Entry struct {
	URL   string `json:"url"`
	ID    string `json:"id"`
	Title string `json:"title,omitempty"`
	Kind  Kind   `json:"kind"`
}

// Playlist is the multi-entry result of a series expansion.
type Playlist struct {
	ID      string  `json:"id"`
	Title   string  `json:"title,omitempty"`
	Entries []Entry `json:"entries"`
}

// Result is the outcome of resolving one identifier: either a single record
// or a playlist of child references, never both.
type Result struct {
	Record   *Record   `json:"record,omitempty"`
	Playlist *Playlist `json:"playlist,omitempty"`
}
