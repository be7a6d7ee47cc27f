package feed

import (
	"encoding/xml"
	"fmt"
	"os"
)

const atomNamespace = "http://www.w3.org/2005/Atom"

// Output is the aggregated single-item document before serialization.
type Output struct {
	Title       string
	Link        string
	Description string
	Language    string
	// LastBuildDate and PubDate are preformatted RFC822-style strings
	// in universal time; Output does no time handling of its own.
	LastBuildDate string

	ItemTitle       string
	ItemLink        string
	ItemDescription string
	PubDate         string
	GUID            string
}

type outputDoc struct {
	XMLName xml.Name      `xml:"rss"`
	Version string        `xml:"version,attr"`
	AtomNS  string        `xml:"xmlns:atom,attr"`
	Channel outputChannel `xml:"channel"`
}

type outputChannel struct {
	Title         string     `xml:"title"`
	Link          string     `xml:"link"`
	Description   string     `xml:"description"`
	Language      string     `xml:"language"`
	LastBuildDate string     `xml:"lastBuildDate"`
	Item          outputItem `xml:"item"`
}

type outputItem struct {
	Title       string     `xml:"title"`
	Link        string     `xml:"link"`
	Description string     `xml:"description"`
	PubDate     string     `xml:"pubDate"`
	GUID        outputGUID `xml:"guid"`
}

type outputGUID struct {
	IsPermaLink string `xml:"isPermaLink,attr"`
	Value       string `xml:",chardata"`
}

// Render serializes the document with a UTF-8 declaration and
// two-space indentation. It is a pure function of its input; nothing
// touches the filesystem until the whole document marshaled cleanly.
func (o *Output) Render() ([]byte, error) {
	doc := outputDoc{
		Version: "2.0",
		AtomNS:  atomNamespace,
		Channel: outputChannel{
			Title:         o.Title,
			Link:          o.Link,
			Description:   o.Description,
			Language:      o.Language,
			LastBuildDate: o.LastBuildDate,
			Item: outputItem{
				Title:       o.ItemTitle,
				Link:        o.ItemLink,
				Description: o.ItemDescription,
				PubDate:     o.PubDate,
				GUID:        outputGUID{IsPermaLink: "false", Value: o.GUID},
			},
		},
	}

	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("unable to marshal output RSS. %w", err)
	}
	return append([]byte(xml.Header), body...), nil
}

// WriteFile renders the document and writes it to path, overwriting
// any existing file.
func (o *Output) WriteFile(path string) error {
	data, err := o.Render()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("unable to write output file %s. %w", path, err)
	}
	return nil
}
