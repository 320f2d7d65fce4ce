package extractor

import (
	"context"
	"fmt"
	"regexp"

	"github.com/meurig/clic/pkg/clic"
)

// Kind selects one of the three resolution strategies for an identifier.
type Kind int

const (
	// KindSeries expands a series id: a lone programme resolves directly,
	// anything more becomes a playlist of child references.
	KindSeries Kind = iota
	// KindProgramme resolves a programme id, expanding into its series
	// playlist when the programme has siblings.
	KindProgramme
	// KindProgrammeIndividual always resolves a programme id to a single
	// record. Child references target this kind so a series expansion
	// cannot recurse back into itself.
	KindProgrammeIndividual
)

func (k Kind) String() string {
	switch k {
	case KindSeries:
		return "series"
	case KindProgramme:
		return "programme"
	case KindProgrammeIndividual:
		return "programme-individual"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler so entries serialize with a
// readable kind.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// URL shapes of the public catalogue. The programme shape is shared by the
// Programme and ProgrammeIndividual strategies.
var (
	seriesURLRegex    = regexp.MustCompile(`^https?://(?:www\.)?s4c\.cymru/clic/series/(\d+)`)
	programmeURLRegex = regexp.MustCompile(`^https?://(?:www\.)?s4c\.cymru/clic/programme/(\d+)`)
)

// MatchURL extracts the resolver kind and identifier from a catalogue URL.
// Programme URLs map to KindProgramme; KindProgrammeIndividual is only ever
// reached through playlist entries.
func MatchURL(rawURL string) (Kind, string, bool) {
	if m := seriesURLRegex.FindStringSubmatch(rawURL); m != nil {
		return KindSeries, m[1], true
	}
	if m := programmeURLRegex.FindStringSubmatch(rawURL); m != nil {
		return KindProgramme, m[1], true
	}
	return 0, "", false
}

// Resolve dispatches a catalogue URL to the matching resolution strategy.
func (e *Extractor) Resolve(ctx context.Context, rawURL string) (*Result, error) {
	kind, id, ok := MatchURL(rawURL)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedURL, rawURL)
	}
	return e.ResolveID(ctx, kind, id)
}

// ResolveID runs one resolution strategy against an already-extracted
// identifier.
func (e *Extractor) ResolveID(ctx context.Context, kind Kind, id string) (*Result, error) {
	switch kind {
	case KindSeries:
		return e.resolveSeries(ctx, id)
	case KindProgramme:
		return e.resolveProgramme(ctx, id)
	case KindProgrammeIndividual:
		return e.resolveIndividual(ctx, id)
	default:
		return nil, fmt.Errorf("unknown resolver kind %d", kind)
	}
}

// resolveSeries fetches series details. A series without sibling programmes
// collapses to its sole episode; otherwise it expands into a playlist.
func (e *Extractor) resolveSeries(ctx context.Context, seriesID string) (*Result, error) {
	details, err := e.api.SeriesDetails(ctx, seriesID)
	if err != nil {
		return nil, fmt.Errorf("resolve series %s: %w", seriesID, err)
	}

	if len(details.OtherProgsInSeries) == 0 {
		if len(details.FullProgDetails) == 0 {
			return nil, fmt.Errorf("resolve series %s: %w", seriesID, ErrNoProgrammes)
		}
		record, err := e.buildRecord(ctx, details.FullProgDetails[0], seriesID)
		if err != nil {
			return nil, fmt.Errorf("resolve series %s: %w", seriesID, err)
		}
		return &Result{Record: record}, nil
	}

	return &Result{Playlist: e.seriesPlaylist(seriesID, details)}, nil
}

// resolveProgramme fetches programme details and either builds the record
// directly or re-resolves through the owning series.
func (e *Extractor) resolveProgramme(ctx context.Context, programmeID string) (*Result, error) {
	details, err := e.api.ProgrammeDetails(ctx, programmeID)
	if err != nil {
		return nil, fmt.Errorf("resolve programme %s: %w", programmeID, err)
	}
	programme := details.FullProgDetails[0]

	if len(details.OtherProgsInSeries) == 0 {
		record, err := e.buildRecord(ctx, programme, programmeID)
		if err != nil {
			return nil, fmt.Errorf("resolve programme %s: %w", programmeID, err)
		}
		return &Result{Record: record}, nil
	}

	// The programme has siblings: expand the whole series instead.
	seriesID := programme.SeriesID.String()
	seriesDetails, err := e.api.SeriesDetails(ctx, seriesID)
	if err != nil {
		return nil, fmt.Errorf("resolve programme %s: series %s: %w", programmeID, seriesID, err)
	}
	return &Result{Playlist: e.seriesPlaylist(seriesID, seriesDetails)}, nil
}

// resolveIndividual always builds a single record, regardless of siblings.
// This is the terminal for playlist entries.
func (e *Extractor) resolveIndividual(ctx context.Context, programmeID string) (*Result, error) {
	details, err := e.api.ProgrammeDetails(ctx, programmeID)
	if err != nil {
		return nil, fmt.Errorf("resolve programme %s: %w", programmeID, err)
	}
	record, err := e.buildRecord(ctx, details.FullProgDetails[0], programmeID)
	if err != nil {
		return nil, fmt.Errorf("resolve programme %s: %w", programmeID, err)
	}
	return &Result{Record: record}, nil
}

// seriesPlaylist builds the playlist result for a series: one child entry per
// programme across the primary and "other programmes" lists, titled with the
// first primary programme's series title when available.
func (e *Extractor) seriesPlaylist(seriesID string, details *clic.ProgrammeDetails) *Playlist {
	playlist := &Playlist{ID: seriesID}
	if len(details.FullProgDetails) > 0 {
		playlist.Title = details.FullProgDetails[0].SeriesTitle
	}

	programmes := make([]clic.Programme, 0, len(details.FullProgDetails)+len(details.OtherProgsInSeries))
	programmes = append(programmes, details.FullProgDetails...)
	programmes = append(programmes, details.OtherProgsInSeries...)

	for _, programme := range programmes {
		id := programme.ID.String()
		entryTitle := programme.ProgrammeTitle
		if entryTitle == "" {
			entryTitle = programme.SeriesTitle
		}
		playlist.Entries = append(playlist.Entries, Entry{
			URL:   fmt.Sprintf("%s/programme/%s", clic.SiteURL, id),
			ID:    id,
			Title: entryTitle,
			Kind:  KindProgrammeIndividual,
		})
	}

	if e.log != nil {
		e.log.Debug("expanded series", "series_id", seriesID, "entries", len(playlist.Entries))
	}

	return playlist
}
