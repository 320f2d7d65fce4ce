package extractor

import "errors"

// Sentinel errors for record resolution. Per-region streaming failures are
// recovered internally and never surface as errors; everything here aborts
// the whole resolution.
var (
	// ErrPlayerConfig is returned when the player configuration cannot be
	// fetched or lacks the asset filename.
	ErrPlayerConfig = errors.New("player configuration missing or incomplete")
	// ErrNoFormats is returned when no region yields a playable format.
	ErrNoFormats = errors.New("no playable streaming formats")
	// ErrUnsupportedURL is returned for URLs outside the Clic catalogue shapes.
	ErrUnsupportedURL = errors.New("unsupported URL")
	// ErrNoProgrammes is returned when a series payload lists no programmes.
	ErrNoProgrammes = errors.New("series has no programmes")
)
