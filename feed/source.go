package feed

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"
)

// Entry is one hotlist position from the source feed, read-only after
// parsing. Missing fields are substituted with placeholders so the
// rest of the pipeline never sees an empty title or link.
type Entry struct {
	Title string
	Link  string
}

const (
	placeholderTitle = "无标题"
	placeholderLink  = "#"
)

// Source is the part of the input feed the aggregator consumes.
// LastBuildDate is kept as raw text; the caller decides how to
// interpret it because the source's zone markers are not trustworthy.
type Source struct {
	LastBuildDate string
	Entries       []Entry
}

type sourceDoc struct {
	XMLName xml.Name       `xml:"rss"`
	Channel *sourceChannel `xml:"channel"`
}

type sourceChannel struct {
	LastBuildDate string       `xml:"lastBuildDate"`
	Items         []sourceItem `xml:"item"`
}

type sourceItem struct {
	Title string `xml:"title"`
	Link  string `xml:"link"`
}

// ParseSource decodes a hotlist RSS document. A document without a
// channel element is structurally unusable and yields ErrMissingChannel.
func ParseSource(r io.Reader) (*Source, error) {
	var doc sourceDoc
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("unable to decode RSS input. %w", err)
	}
	if doc.Channel == nil {
		return nil, ErrMissingChannel
	}

	src := &Source{
		LastBuildDate: strings.TrimSpace(doc.Channel.LastBuildDate),
		Entries:       make([]Entry, 0, len(doc.Channel.Items)),
	}
	for _, it := range doc.Channel.Items {
		title := strings.TrimSpace(it.Title)
		if title == "" {
			title = placeholderTitle
		}
		link := strings.TrimSpace(it.Link)
		if link == "" {
			link = placeholderLink
		}
		src.Entries = append(src.Entries, Entry{Title: title, Link: link})
	}
	return src, nil
}

// ParseSourceFile reads and parses the input feed from disk.
func ParseSourceFile(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read input file %s. %w", path, err)
	}
	defer f.Close()

	src, err := ParseSource(f)
	if err != nil {
		return nil, fmt.Errorf("unable to parse input file %s. %w", path, err)
	}
	return src, nil
}
