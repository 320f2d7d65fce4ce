// Package manifest resolves streaming manifest URLs into playable format
// descriptors. It understands HLS master playlists and DASH MPDs.
package manifest

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// Protocol identifies the streaming protocol of a manifest.
type Protocol string

const (
	ProtocolHLS  Protocol = "hls"
	ProtocolDASH Protocol = "dash"
)

// Format describes one playable stream variant.
type Format struct {
	ID          string `json:"format_id"` // e.g. "hls-WW-1", "dash-UK-video_1"
	URL         string `json:"url"`
	ManifestURL string `json:"manifest_url,omitempty"`
	Protocol    string `json:"protocol"`
	Ext         string `json:"ext"`
	Bandwidth   int64  `json:"bandwidth,omitempty"`
	Width       int    `json:"width,omitempty"`
	Height      int    `json:"height,omitempty"`
	Codecs      string `json:"codecs,omitempty"`
	Language    string `json:"language,omitempty"`
}

// Resolver turns one manifest URL into a list of format descriptors.
type Resolver interface {
	Resolve(ctx context.Context, manifestURL, idPrefix string, protocol Protocol) ([]Format, error)
}

// HTTPResolver fetches and parses manifests over HTTP.
type HTTPResolver struct {
	httpClient *http.Client
	log        *slog.Logger
}

// ResolverOption configures an HTTPResolver.
type ResolverOption func(*HTTPResolver)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ResolverOption {
	return func(r *HTTPResolver) {
		r.httpClient = hc
	}
}

// WithLogger sets a logger for debug output.
func WithLogger(log *slog.Logger) ResolverOption {
	return func(r *HTTPResolver) {
		r.log = log.With("component", "manifest")
	}
}

// NewResolver creates an HTTP-backed manifest resolver.
func NewResolver(opts ...ResolverOption) *HTTPResolver {
	r := &HTTPResolver{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve fetches the manifest and returns its format descriptors. Format IDs
// are derived from idPrefix plus a per-variant suffix.
func (r *HTTPResolver) Resolve(ctx context.Context, manifestURL, idPrefix string, protocol Protocol) ([]Format, error) {
	start := time.Now()

	body, err := r.fetch(ctx, manifestURL)
	if err != nil {
		return nil, err
	}

	var formats []Format
	switch protocol {
	case ProtocolHLS:
		formats, err = parseHLSMaster(manifestURL, idPrefix, body)
	case ProtocolDASH:
		formats, err = parseMPD(manifestURL, idPrefix, body)
	default:
		return nil, fmt.Errorf("unsupported protocol %q", protocol)
	}
	if err != nil {
		return nil, err
	}

	if r.log != nil {
		r.log.Debug("resolved manifest", "url", manifestURL, "protocol", protocol,
			"formats", len(formats), "duration_ms", time.Since(start).Milliseconds())
	}

	return formats, nil
}

func (r *HTTPResolver) fetch(ctx context.Context, u string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch manifest: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch manifest: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return body, nil
}
