package hotlist

import (
	"fmt"
	"html"
	"strings"

	"github.com/FarseaSH/weibo-hotlist-rss/feed"
)

// RenderDescription builds the HTML body of the aggregated item: a
// heading, an ordered list with one normalized anchor per entry, and a
// trailing capture-time note in local time. Entry titles and links come
// from an untrusted feed, so both are HTML-escaped (quotes included)
// before insertion.
func RenderDescription(searchURL string, entries []feed.Entry, capture CaptureTime) string {
	lines := make([]string, 0, len(entries)+4)
	lines = append(lines, "<h2>微博热搜榜</h2>", "<ol>")
	for _, e := range entries {
		link := NormalizeLink(searchURL, e.Title, e.Link)
		lines = append(lines, fmt.Sprintf(
			`<li><a href="%s" target="_blank">%s</a></li>`,
			html.EscapeString(link), html.EscapeString(e.Title),
		))
	}
	lines = append(lines, "</ol>")
	lines = append(lines, fmt.Sprintf(
		"<p><small>采集时间: %s</small></p>",
		capture.Local.Format("2006-01-02 15:04:05"),
	))
	return strings.Join(lines, "\n")
}
