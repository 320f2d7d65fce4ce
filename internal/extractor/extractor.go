// Package extractor builds canonical metadata records from the Clic catalogue
// and resolves series/programme identifiers into records or playlists.
package extractor

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/meurig/clic/internal/manifest"
	"github.com/meurig/clic/pkg/clic"
	"github.com/meurig/clic/pkg/title"
	"github.com/meurig/clic/pkg/welshdate"
)

//go:generate mockgen -destination=mocks/mock_collaborators.go -package=mocks . API,FormatResolver

// API is the subset of the Clic client the extractor consumes.
type API interface {
	SeriesDetails(ctx context.Context, seriesID string) (*clic.ProgrammeDetails, error)
	ProgrammeDetails(ctx context.Context, programmeID string) (*clic.ProgrammeDetails, error)
	PlayerConfig(ctx context.Context, programmeID string) (*clic.PlayerConfig, error)
	StreamingURLs(ctx context.Context, filename, region string) (*clic.StreamingURLs, error)
}

// FormatResolver resolves one manifest URL into format descriptors.
type FormatResolver interface {
	Resolve(ctx context.Context, manifestURL, idPrefix string, protocol manifest.Protocol) ([]manifest.Format, error)
}

// DefaultRegions is the region order tried for streaming URLs: worldwide
// first, then the UK-restricted feed.
var DefaultRegions = []string{"WW", "UK"}

// Extractor resolves Clic identifiers into canonical records.
type Extractor struct {
	api     API
	formats FormatResolver
	regions []string
	log     *slog.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithRegions overrides the geographic regions tried for streaming URLs.
func WithRegions(regions []string) Option {
	return func(e *Extractor) {
		if len(regions) > 0 {
			e.regions = regions
		}
	}
}

// WithLogger sets a logger for debug output.
func WithLogger(log *slog.Logger) Option {
	return func(e *Extractor) {
		e.log = log.With("component", "extractor")
	}
}

// New creates an Extractor over the given collaborators.
func New(api API, formats FormatResolver, opts ...Option) *Extractor {
	e := &Extractor{
		api:     api,
		formats: formats,
		regions: DefaultRegions,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// buildRecord assembles the canonical record for one programme payload.
//
// The episode-number precedence chain is deliberate and order-sensitive:
// catalogue titles are inconsistent, and reordering changes the outcome for
// ambiguous inputs.
func (e *Extractor) buildRecord(ctx context.Context, ep clic.Programme, programmeID string) (*Record, error) {
	seriesTitle := ep.SeriesTitle
	if seriesTitle == "" {
		seriesTitle = ep.ProgrammeTitle
	}

	// 1. Season marker lives in the series title; stripping it yields the
	// canonical series name.
	seasonNumber, seriesName, _ := title.Season(seriesTitle)

	// 2. Episode number precedence chain.
	programmeTitle := ep.ProgrammeTitle
	var episodeNumber *int

	if n, ok := title.EpisodeFromTitle(programmeTitle); ok {
		// "Pennod N" / "Episode N" marker at the start of the title.
		episodeNumber = &n
	} else if n, rest, ok := title.StripLeadingNumber(programmeTitle); ok {
		// A bare leading number doubles as the episode number and is
		// stripped from the working episode title.
		episodeNumber = &n
		programmeTitle = rest
	}

	episodeTitle := programmeTitle
	if episodeTitle == "" {
		episodeTitle = seriesName
	}

	if episodeNumber == nil {
		if n, ok := title.EpisodeFromText(ep.MPG); ok {
			episodeNumber = &n
		}
	}
	if episodeNumber == nil {
		if n, ok := title.EpisodeFromThumbnail(ep.ThumbnailURL); ok {
			episodeNumber = &n
		}
	}
	if episodeNumber == nil && ep.MPG != "" {
		if n, ok := title.EpisodeFromFilename(ep.MPG); ok {
			episodeNumber = &n
		}
	}

	// 3. Player configuration names the streamable asset.
	config, err := e.api.PlayerConfig(ctx, programmeID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPlayerConfig, err)
	}
	if config == nil || config.Filename == "" {
		return nil, fmt.Errorf("%w: no asset filename for programme %s", ErrPlayerConfig, programmeID)
	}

	// 4-5. Streaming formats, merged across regions.
	formats := e.fetchFormats(ctx, config.Filename)
	if len(formats) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoFormats, config.Filename)
	}

	// 6. Group subtitle tracks by language code.
	var subtitles map[string][]SubtitleTrack
	for _, sub := range config.Subtitles {
		if sub.LangCode == "" || sub.URL == "" {
			continue
		}
		if subtitles == nil {
			subtitles = map[string][]SubtitleTrack{}
		}
		subtitles[sub.LangCode] = append(subtitles[sub.LangCode], SubtitleTrack{
			URL:    sub.URL,
			Format: "vtt",
		})
	}

	record := &Record{
		ID:            programmeID,
		Title:         seriesName,
		Description:   ep.FullBilling,
		Thumbnail:     config.Poster,
		Duration:      ep.Duration.Int() * 60,
		Formats:       formats,
		Subtitles:     subtitles,
		Series:        seriesName,
		SeriesID:      ep.SeriesID.String(),
		SeasonNumber:  seasonNumber,
		Episode:       episodeTitle,
		EpisodeNumber: episodeNumber,
		EpisodeID:     programmeID,
	}

	// 7. Broadcast dates. A missing source field leaves the outputs unset;
	// an unparseable one is fatal.
	if ep.LastTX != "" {
		t, err := welshdate.Parse(ep.LastTX)
		if err != nil {
			return nil, fmt.Errorf("parse last_tx: %w", err)
		}
		ts := t.Unix()
		year := t.Year()
		record.ReleaseTimestamp = &ts
		record.ReleaseDate = welshdate.Compact(t)
		record.ReleaseYear = &year
	}
	if ep.ClicAired != "" {
		t, err := welshdate.Parse(ep.ClicAired)
		if err != nil {
			return nil, fmt.Errorf("parse clic_aired: %w", err)
		}
		ts := t.Unix()
		record.ModifiedTimestamp = &ts
		record.ModifiedDate = welshdate.Compact(t)
	}

	if e.log != nil {
		e.log.Debug("built record", "programme_id", programmeID, "series", record.Series,
			"season", record.SeasonNumber, "formats", len(record.Formats))
	}

	return record, nil
}

// manifestKind pairs a streaming-urls field with its protocol.
type manifestKind struct {
	name     string
	protocol manifest.Protocol
}

// fetchFormats retrieves streaming URLs per region and resolves every listed
// manifest. Regions run concurrently; one region's failure never aborts the
// others, it only loses that region's formats.
func (e *Extractor) fetchFormats(ctx context.Context, filename string) []manifest.Format {
	perRegion := make([][]manifest.Format, len(e.regions))

	var g errgroup.Group
	for i, region := range e.regions {
		g.Go(func() error {
			urls, err := e.api.StreamingURLs(ctx, filename, region)
			if err != nil {
				if e.log != nil {
					e.log.Debug("region unavailable", "region", region, "error", err)
				}
				return nil
			}

			manifests := []struct {
				url string
				manifestKind
			}{
				{urls.HLS, manifestKind{"hls", manifest.ProtocolHLS}},
				{urls.DASH, manifestKind{"dash", manifest.ProtocolDASH}},
				{urls.FVP, manifestKind{"fvp", manifest.ProtocolDASH}},
				{urls.DVB, manifestKind{"dvb", manifest.ProtocolDASH}},
			}

			var formats []manifest.Format
			for _, m := range manifests {
				if m.url == "" {
					continue
				}
				resolved, err := e.formats.Resolve(ctx, m.url, fmt.Sprintf("%s-%s", m.name, region), m.protocol)
				if err != nil {
					if e.log != nil {
						e.log.Debug("manifest unavailable", "region", region, "kind", m.name, "error", err)
					}
					continue
				}
				formats = append(formats, resolved...)
			}

			perRegion[i] = formats
			return nil
		})
	}
	_ = g.Wait()

	// Merge in region order so output is deterministic.
	var merged []manifest.Format
	for _, formats := range perRegion {
		merged = append(merged, formats...)
	}
	return merged
}
