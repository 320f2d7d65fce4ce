package manifest

import (
	"bufio"
	"bytes"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// parseHLSMaster parses an HLS master playlist into one format per variant
// stream. A media playlist (no #EXT-X-STREAM-INF lines) yields a single
// format pointing at the playlist itself.
func parseHLSMaster(manifestURL, idPrefix string, body []byte) ([]Format, error) {
	var formats []Format
	var pending *Format

	s := bufio.NewScanner(bytes.NewReader(body))
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "#EXT-X-STREAM-INF:") {
			f, err := parseStreamInf(line, idPrefix, len(formats))
			if err != nil {
				return nil, err
			}
			pending = f
			continue
		}

		// The URI line following #EXT-X-STREAM-INF completes the variant.
		if pending != nil && !strings.HasPrefix(line, "#") {
			pending.URL = resolveRef(manifestURL, line)
			pending.ManifestURL = manifestURL
			formats = append(formats, *pending)
			pending = nil
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("scan playlist: %w", err)
	}

	if len(formats) == 0 {
		// Media playlist: expose it as one opaque format.
		formats = append(formats, Format{
			ID:       idPrefix + "-0",
			URL:      manifestURL,
			Protocol: string(ProtocolHLS),
			Ext:      "mp4",
		})
	}

	return formats, nil
}

func parseStreamInf(line, idPrefix string, index int) (*Format, error) {
	f := &Format{
		ID:       fmt.Sprintf("%s-%d", idPrefix, index),
		Protocol: string(ProtocolHLS),
		Ext:      "mp4",
	}

	for k, v := range splitAttributes(strings.TrimPrefix(line, "#EXT-X-STREAM-INF:")) {
		switch k {
		case "BANDWIDTH":
			bw, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("parse BANDWIDTH %q: %w", v, err)
			}
			f.Bandwidth = bw
		case "RESOLUTION":
			if _, err := fmt.Sscanf(v, "%dx%d", &f.Width, &f.Height); err != nil {
				return nil, fmt.Errorf("parse RESOLUTION %q: %w", v, err)
			}
		case "CODECS":
			f.Codecs = v
		}
	}

	return f, nil
}

// splitAttributes splits an attribute list like BANDWIDTH=1280000,CODECS="avc1,mp4a"
// where quoted values may contain commas.
func splitAttributes(s string) map[string]string {
	attrs := map[string]string{}
	for len(s) > 0 {
		eq := strings.Index(s, "=")
		if eq < 0 {
			break
		}
		key := strings.TrimSpace(s[:eq])
		s = s[eq+1:]

		var value string
		if strings.HasPrefix(s, `"`) {
			end := strings.Index(s[1:], `"`)
			if end < 0 {
				break
			}
			value = s[1 : 1+end]
			s = s[2+end:]
		} else if comma := strings.Index(s, ","); comma >= 0 {
			value = s[:comma]
			s = s[comma:]
		} else {
			value = s
			s = ""
		}
		attrs[key] = value
		s = strings.TrimPrefix(s, ",")
	}
	return attrs
}

// resolveRef resolves a possibly-relative playlist reference against the
// manifest URL.
func resolveRef(base, ref string) string {
	baseURL, err := url.Parse(base)
	if err != nil {
		return ref
	}
	refURL, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return baseURL.ResolveReference(refURL).String()
}
