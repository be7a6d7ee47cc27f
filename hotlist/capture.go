// Package hotlist holds the aggregation logic for a Weibo hotlist
// feed: timestamp interpretation, link normalization, and rendering of
// the combined HTML description.
package hotlist

import (
	"strings"
	"time"
)

// Layouts recognized in the source lastBuildDate. The trailing GMT
// literal is decorative in the source feed; the value is always
// wall-clock time in the configured zone.
const (
	layoutGMT   = "Mon, 02 Jan 2006 15:04:05 GMT"
	layoutPlain = "Mon, 02 Jan 2006 15:04:05"
)

// CaptureTime is the instant the hotlist was captured, in both the
// configured local zone and universal time. Defaulted reports whether
// the value came from the input or fell back to the current time.
type CaptureTime struct {
	Local     time.Time
	UTC       time.Time
	Defaulted bool
}

// ResolveCaptureTime interprets raw lastBuildDate text as wall-clock
// time in loc. Missing or unrecognized text silently degrades to
// now(); the resolver never fails.
func ResolveCaptureTime(raw string, loc *time.Location, now func() time.Time) CaptureTime {
	text := strings.TrimSpace(raw)
	if text != "" {
		for _, layout := range []string{layoutGMT, layoutPlain} {
			t, err := time.ParseInLocation(layout, text, loc)
			if err != nil {
				continue
			}
			return CaptureTime{Local: t, UTC: t.UTC()}
		}
	}

	n := now().In(loc)
	return CaptureTime{Local: n, UTC: n.UTC(), Defaulted: true}
}

// FormatRFC822 renders the universal-time form for lastBuildDate and
// pubDate fields.
func (c CaptureTime) FormatRFC822() string {
	return c.UTC.Format(layoutGMT)
}

// FormatTitle renders the local-zone form used in the aggregated item
// title.
func (c CaptureTime) FormatTitle() string {
	return c.Local.Format("2006年01月02日 15:04")
}

// FormatGUID renders the compact local-zone form embedded in the item
// guid.
func (c CaptureTime) FormatGUID() string {
	return c.Local.Format("20060102150405")
}
