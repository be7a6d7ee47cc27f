package hotlist

import (
	"net/url"
	"strings"
)

// NormalizeLink rewrites a raw hotlist link into the mobile search URL
// built from searchURL and a percent-encoded keyword. The keyword is
// the first q query parameter of the link, or the entry title when the
// parameter is absent or empty. Raw links in the source feed routinely
// contain embedded newlines and padding, so all whitespace is stripped
// before parsing. The result is deterministic and never an error: an
// unparseable link simply falls back to the title keyword.
func NormalizeLink(searchURL, title, rawLink string) string {
	cleaned := strings.Join(strings.Fields(rawLink), "")

	var keyword string
	if u, err := url.Parse(cleaned); err == nil {
		keyword = strings.TrimSpace(u.Query().Get("q"))
	}
	if keyword == "" {
		keyword = strings.TrimSpace(title)
	}

	return searchURL + encodeKeyword(keyword)
}

// encodeKeyword percent-encodes with no characters considered safe
// beyond the unreserved set, so spaces become %20 and ampersands %26.
func encodeKeyword(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
