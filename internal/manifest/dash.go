package manifest

import (
	"encoding/xml"
	"fmt"
	"strconv"
)

// Minimal MPD model: only the elements needed to enumerate representations.
type mpd struct {
	XMLName xml.Name `xml:"MPD"`
	Periods []struct {
		AdaptationSets []struct {
			ContentType     string `xml:"contentType,attr"`
			MimeType        string `xml:"mimeType,attr"`
			Lang            string `xml:"lang,attr"`
			Representations []struct {
				ID        string `xml:"id,attr"`
				Bandwidth string `xml:"bandwidth,attr"`
				Width     string `xml:"width,attr"`
				Height    string `xml:"height,attr"`
				Codecs    string `xml:"codecs,attr"`
			} `xml:"Representation"`
		} `xml:"AdaptationSet"`
	} `xml:"Period"`
}

// parseMPD parses a DASH MPD into one format per representation. Segment
// addressing stays with the MPD; each format carries the manifest URL for the
// player to interpret.
func parseMPD(manifestURL, idPrefix string, body []byte) ([]Format, error) {
	var doc mpd
	if err := xml.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("parse MPD: %w", err)
	}

	var formats []Format
	for _, period := range doc.Periods {
		for _, set := range period.AdaptationSets {
			for _, rep := range set.Representations {
				bw, _ := strconv.ParseInt(rep.Bandwidth, 10, 64)
				width, _ := strconv.Atoi(rep.Width)
				height, _ := strconv.Atoi(rep.Height)

				id := rep.ID
				if id == "" {
					id = strconv.Itoa(len(formats))
				}
				formats = append(formats, Format{
					ID:          fmt.Sprintf("%s-%s", idPrefix, id),
					URL:         manifestURL,
					ManifestURL: manifestURL,
					Protocol:    string(ProtocolDASH),
					Ext:         "mp4",
					Bandwidth:   bw,
					Width:       width,
					Height:      height,
					Codecs:      rep.Codecs,
					Language:    set.Lang,
				})
			}
		}
	}

	if len(formats) == 0 {
		return nil, fmt.Errorf("MPD has no representations")
	}

	return formats, nil
}
