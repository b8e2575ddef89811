package document

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"scribe/common"
)

// Marker is a structural marker anchored to a zero-width run. Only the
// fields meaningful for the kind are set.
type Marker struct {
	Kind common.MarkerKind

	ID uuid.UUID // sectionBreak, bookmark, noteReference

	// sectionBreak
	StartNumber int
	Format      common.NumberFormat

	// pageBreak
	SpacerHeight float64

	// sectionBreak, bookmark
	Name string

	// crossReference
	Target uuid.UUID

	// noteReference
	Label string
}

// markerScheme is the URL scheme markers are persisted under. Keeping the
// payload in the hyperlink attribute lets foreign exporters round-trip it.
const markerScheme = "scribe-marker"

var ErrMalformedMarkerPayload = errors.New("malformed marker payload")

// IsMarkerPayload reports whether the href value looks like a marker payload
// without fully decoding it.
func IsMarkerPayload(href string) bool {
	u, err := url.Parse(href)
	return err == nil && u.Scheme == markerScheme
}

// EncodeMarker renders the marker as its URL payload.
func (m *Marker) Encode() string {
	q := url.Values{}
	switch m.Kind {
	case common.MarkerKindSectionBreak:
		q.Set("id", m.ID.String())
		q.Set("start", strconv.Itoa(m.StartNumber))
		q.Set("format", m.Format.String())
		if len(m.Name) > 0 {
			q.Set("name", m.Name)
		}
	case common.MarkerKindPageBreak:
		if m.SpacerHeight > 0 {
			q.Set("spacer", strconv.FormatFloat(m.SpacerHeight, 'f', -1, 64))
		}
	case common.MarkerKindBookmark:
		q.Set("id", m.ID.String())
		q.Set("name", m.Name)
	case common.MarkerKindCrossReference:
		q.Set("target", m.Target.String())
	case common.MarkerKindNoteReference:
		q.Set("id", m.ID.String())
		q.Set("label", m.Label)
	}
	u := url.URL{Scheme: markerScheme, Host: m.Kind.String()}
	if len(q) > 0 {
		u.RawQuery = q.Encode()
	}
	return u.String()
}

// DecodeMarker parses a marker URL payload. Callers drop the marker and keep
// the anchor run transparent to the reader when decoding fails.
func DecodeMarker(href string) (*Marker, error) {
	u, err := url.Parse(href)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedMarkerPayload, err)
	}
	if u.Scheme != markerScheme {
		return nil, fmt.Errorf("%w: unexpected scheme %q", ErrMalformedMarkerPayload, u.Scheme)
	}
	kind, err := common.ParseMarkerKind(u.Host)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedMarkerPayload, err)
	}

	q := u.Query()
	m := &Marker{Kind: kind}

	parseID := func(field string) (uuid.UUID, error) {
		id, err := uuid.Parse(q.Get(field))
		if err != nil {
			return uuid.Nil, fmt.Errorf("%w: bad %s: %v", ErrMalformedMarkerPayload, field, err)
		}
		return id, nil
	}

	switch kind {
	case common.MarkerKindSectionBreak:
		if m.ID, err = parseID("id"); err != nil {
			return nil, err
		}
		if m.StartNumber, err = strconv.Atoi(q.Get("start")); err != nil {
			return nil, fmt.Errorf("%w: bad start: %v", ErrMalformedMarkerPayload, err)
		}
		if m.Format, err = common.ParseNumberFormat(q.Get("format")); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedMarkerPayload, err)
		}
		m.Name = q.Get("name")
	case common.MarkerKindPageBreak:
		if spacer := q.Get("spacer"); len(spacer) > 0 {
			if m.SpacerHeight, err = strconv.ParseFloat(spacer, 64); err != nil {
				return nil, fmt.Errorf("%w: bad spacer: %v", ErrMalformedMarkerPayload, err)
			}
		}
	case common.MarkerKindBookmark:
		if m.ID, err = parseID("id"); err != nil {
			return nil, err
		}
		m.Name = q.Get("name")
		if len(m.Name) == 0 {
			return nil, fmt.Errorf("%w: bookmark without name", ErrMalformedMarkerPayload)
		}
	case common.MarkerKindCrossReference:
		if m.Target, err = parseID("target"); err != nil {
			return nil, err
		}
	case common.MarkerKindNoteReference:
		if m.ID, err = parseID("id"); err != nil {
			return nil, err
		}
		m.Label = q.Get("label")
	}
	return m, nil
}
