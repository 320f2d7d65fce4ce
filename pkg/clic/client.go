package clic

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// Production endpoints.
const (
	defaultCatalogueURL = "https://www.s4c.cymru/df"
	defaultPlayerURL    = "https://player-api.s4c-cdn.co.uk"

	// SiteURL is the public catalogue site, used to build programme page URLs.
	SiteURL = "https://www.s4c.cymru/clic"
)

// Sentinel errors for Clic API responses.
var (
	ErrNotFound = errors.New("programme not found")
	ErrEmpty    = errors.New("empty response")
)

// Client is an HTTP client for the Clic catalogue and player APIs.
type Client struct {
	catalogueURL string
	playerURL    string
	lang         string
	httpClient   *http.Client
	log          *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithCatalogueURL sets a custom catalogue API base URL (for testing).
func WithCatalogueURL(url string) Option {
	return func(c *Client) {
		c.catalogueURL = url
	}
}

// WithPlayerURL sets a custom player API base URL (for testing).
func WithPlayerURL(url string) Option {
	return func(c *Client) {
		c.playerURL = url
	}
}

// WithLang sets the catalogue language code. The default "c" selects the
// Welsh-language metadata.
func WithLang(lang string) Option {
	return func(c *Client) {
		c.lang = lang
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets a logger for debug output.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		c.log = log.With("component", "clic")
	}
}

// New creates a new Clic API client.
func New(opts ...Option) *Client {
	c := &Client{
		catalogueURL: defaultCatalogueURL,
		playerURL:    defaultPlayerURL,
		lang:         "c",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SeriesDetails fetches the details of every programme in a series.
func (c *Client) SeriesDetails(ctx context.Context, seriesID string) (*ProgrammeDetails, error) {
	q := url.Values{}
	q.Set("lang", c.lang)
	q.Set("series_id", seriesID)
	q.Set("show_prog_in_series", "Y")

	var details ProgrammeDetails
	if err := c.getJSON(ctx, c.catalogueURL+"/series_details?"+q.Encode(), &details); err != nil {
		return nil, fmt.Errorf("series details %s: %w", seriesID, err)
	}

	if c.log != nil {
		c.log.Debug("fetched series details", "series_id", seriesID,
			"programmes", len(details.FullProgDetails), "others", len(details.OtherProgsInSeries))
	}

	return &details, nil
}

// ProgrammeDetails fetches the full details of one programme, together with
// the other programmes that share its series.
func (c *Client) ProgrammeDetails(ctx context.Context, programmeID string) (*ProgrammeDetails, error) {
	q := url.Values{}
	q.Set("lang", c.lang)
	q.Set("programme_id", programmeID)
	q.Set("show_prog_in_series", "Y")

	var details ProgrammeDetails
	if err := c.getJSON(ctx, c.catalogueURL+"/full_prog_details?"+q.Encode(), &details); err != nil {
		return nil, fmt.Errorf("programme details %s: %w", programmeID, err)
	}

	if len(details.FullProgDetails) == 0 {
		return nil, fmt.Errorf("programme details %s: %w", programmeID, ErrEmpty)
	}

	if c.log != nil {
		c.log.Debug("fetched programme details", "programme_id", programmeID,
			"siblings", len(details.OtherProgsInSeries))
	}

	return &details, nil
}

// PlayerConfig fetches the player configuration for a programme, which names
// the streamable asset and lists subtitle tracks.
func (c *Client) PlayerConfig(ctx context.Context, programmeID string) (*PlayerConfig, error) {
	q := url.Values{}
	q.Set("programme_id", programmeID)
	q.Set("signed", "0")
	q.Set("lang", "cy")
	q.Set("mode", "od")
	q.Set("appId", "clic")
	q.Set("streamName", "")
	q.Set("env", "live")

	var config PlayerConfig
	if err := c.getJSON(ctx, c.playerURL+"/player-configuration/prod?"+q.Encode(), &config); err != nil {
		return nil, fmt.Errorf("player configuration %s: %w", programmeID, err)
	}

	if c.log != nil {
		c.log.Debug("fetched player configuration", "programme_id", programmeID,
			"filename", config.Filename, "subtitles", len(config.Subtitles))
	}

	return &config, nil
}

// StreamingURLs fetches the per-region manifest URLs for an asset filename.
func (c *Client) StreamingURLs(ctx context.Context, filename, region string) (*StreamingURLs, error) {
	q := url.Values{}
	q.Set("mode", "od")
	q.Set("application", "clic")
	q.Set("region", region)
	q.Set("extra", "false")
	q.Set("thirdParty", "false")
	q.Set("filename", filename)

	var urls StreamingURLs
	if err := c.getJSON(ctx, c.playerURL+"/streaming-urls/prod?"+q.Encode(), &urls); err != nil {
		return nil, fmt.Errorf("streaming urls %s region %s: %w", filename, region, err)
	}

	if c.log != nil {
		c.log.Debug("fetched streaming urls", "filename", filename, "region", region)
	}

	return &urls, nil
}

// getJSON performs a GET request and decodes the JSON response body into v.
func (c *Client) getJSON(ctx context.Context, endpoint string, v any) error {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// fall through to decode
	case http.StatusNotFound:
		return ErrNotFound
	default:
		return fmt.Errorf("clic API error: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	if c.log != nil {
		c.log.Debug("request completed", "url", endpoint, "duration_ms", time.Since(start).Milliseconds())
	}

	return nil
}
