// Package models defines the canonical shapes for documents fetched from the
// content repository. Every field is optional unless the schema requires it;
// decoding never fails on a missing or unexpected field, it defaults instead.
package models

import (
	"encoding/json"
	"strings"
	"time"
)

// Slug is the CMS slug object. Only the current value matters.
type Slug struct {
	Current string `json:"current"`
}

// AssetRef points at a binary asset. Depending on the query projection the
// asset arrives either as a bare reference (_ref) or fully expanded (_id, url).
type AssetRef struct {
	Ref string `json:"_ref,omitempty"`
	ID  string `json:"_id,omitempty"`
	URL string `json:"url,omitempty"`
}

// Image is a CMS image field. Older documents carry the reference directly on
// the image object (_ref), newer ones nest it under asset.
type Image struct {
	Asset   *AssetRef `json:"asset,omitempty"`
	Ref     string    `json:"_ref,omitempty"`
	Alt     string    `json:"alt,omitempty"`
	Hotspot *Hotspot  `json:"hotspot,omitempty"`
	Crop    *Crop     `json:"crop,omitempty"`
}

// Hotspot is the CMS focal-point metadata.
type Hotspot struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Crop is the CMS crop metadata, fractions of each edge.
type Crop struct {
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
}

// CMSTime decodes the repository's timestamp fields, which are either full
// RFC 3339 datetimes or date-only strings. Unparsable values decode to the
// zero time rather than failing the whole document.
type CMSTime struct {
	time.Time
	// DateOnly records that the source value carried no time component, so
	// the view layer can skip rendering a meaningless midnight.
	DateOnly bool
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *CMSTime) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return nil
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if parsed, err := time.Parse(time.RFC3339, s); err == nil {
		t.Time = parsed.UTC()
		return nil
	}
	if parsed, err := time.Parse("2006-01-02", s); err == nil {
		t.Time = parsed.UTC()
		t.DateOnly = true
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (t CMSTime) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`""`), nil
	}
	if t.DateOnly {
		return json.Marshal(t.Format("2006-01-02"))
	}
	return json.Marshal(t.Format(time.RFC3339))
}
