// Package clic provides a client for the S4C Clic catalogue and player APIs.
package clic

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Number accepts either a JSON number or a numeric string. The catalogue API
// emits ids and durations both ways depending on the endpoint.
type Number string

// UnmarshalJSON implements json.Unmarshaler.
func (n *Number) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*n = ""
		return nil
	}
	if len(s) >= 2 && s[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*n = Number(str)
		return nil
	}
	*n = Number(s)
	return nil
}

func (n Number) String() string { return string(n) }

// Int converts the number to an int, returning 0 for empty or non-numeric values.
func (n Number) Int() int {
	v, err := strconv.Atoi(string(n))
	if err != nil {
		return 0
	}
	return v
}

// Programme is one programme instance as the catalogue API reports it.
// Every field except ID may be absent.
type Programme struct {
	ID             Number `json:"id"`
	SeriesID       Number `json:"series_id"`
	SeriesTitle    string `json:"series_title"`
	ProgrammeTitle string `json:"programme_title"`
	FullBilling    string `json:"full_billing"`
	Duration       Number `json:"duration"` // minutes
	MPG            string `json:"mpg"`      // asset filename
	ThumbnailURL   string `json:"thumbnail_url"`
	LastTX         string `json:"last_tx"`    // Welsh date of original broadcast
	ClicAired      string `json:"clic_aired"` // Welsh date of catalogue publish
}

// ProgrammeDetails is the shared response shape of the series_details and
// full_prog_details endpoints.
type ProgrammeDetails struct {
	FullProgDetails    []Programme `json:"full_prog_details"`
	OtherProgsInSeries []Programme `json:"other_progs_in_series"`
}

// Subtitle is one subtitle descriptor from the player configuration. The
// upstream payload keys fields positionally.
type Subtitle struct {
	URL      string `json:"0"` // VTT URL
	LangCode string `json:"3"` // 3-character language code
}

// PlayerConfig is the per-programme player configuration.
type PlayerConfig struct {
	Filename  string     `json:"filename"` // canonical streamable asset name
	Poster    string     `json:"poster"`
	Subtitles []Subtitle `json:"subtitles"`
}

// StreamingURLs lists the per-region manifest URLs for one asset.
type StreamingURLs struct {
	HLS  string `json:"hls"`
	DASH string `json:"dash"`
	FVP  string `json:"fvp"`
	DVB  string `json:"dvb"`
}
