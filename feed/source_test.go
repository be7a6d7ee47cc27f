package feed

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleInput = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>微博热搜榜</title>
    <lastBuildDate>Wed, 15 Mar 2023 10:00:00 GMT</lastBuildDate>
    <item>
      <title>话题一</title>
      <link>https://example.com/?q=topicA</link>
    </item>
    <item>
      <title>  话题二  </title>
      <link>
        https://example.com/?q=topicB
      </link>
    </item>
    <item>
      <link>https://example.com/?q=topicC</link>
    </item>
    <item>
      <title>没有链接</title>
    </item>
  </channel>
</rss>`

func TestParseSource(t *testing.T) {
	src, err := ParseSource(strings.NewReader(sampleInput))
	if err != nil {
		t.Fatalf("ParseSource() error = %v", err)
	}

	if src.LastBuildDate != "Wed, 15 Mar 2023 10:00:00 GMT" {
		t.Errorf("LastBuildDate = %q", src.LastBuildDate)
	}
	if len(src.Entries) != 4 {
		t.Fatalf("len(Entries) = %d, want 4", len(src.Entries))
	}

	want := []Entry{
		{Title: "话题一", Link: "https://example.com/?q=topicA"},
		{Title: "话题二", Link: "https://example.com/?q=topicB"},
		{Title: "无标题", Link: "https://example.com/?q=topicC"},
		{Title: "没有链接", Link: "#"},
	}
	for i, w := range want {
		if src.Entries[i] != w {
			t.Errorf("Entries[%d] = %+v, want %+v", i, src.Entries[i], w)
		}
	}
}

func TestParseSource_EmptyChannel(t *testing.T) {
	src, err := ParseSource(strings.NewReader(`<rss version="2.0"><channel></channel></rss>`))
	if err != nil {
		t.Fatalf("ParseSource() error = %v", err)
	}
	if len(src.Entries) != 0 {
		t.Errorf("len(Entries) = %d, want 0", len(src.Entries))
	}
	if src.LastBuildDate != "" {
		t.Errorf("LastBuildDate = %q, want empty", src.LastBuildDate)
	}
}

func TestParseSource_MissingChannel(t *testing.T) {
	_, err := ParseSource(strings.NewReader(`<rss version="2.0"></rss>`))
	if !errors.Is(err, ErrMissingChannel) {
		t.Errorf("ParseSource() error = %v, want ErrMissingChannel", err)
	}
}

func TestParseSource_MalformedDocument(t *testing.T) {
	_, err := ParseSource(strings.NewReader(`<rss><channel>`))
	if err == nil {
		t.Error("ParseSource() error = nil, want decode error")
	}
}

func TestParseSourceFile_MissingFile(t *testing.T) {
	_, err := ParseSourceFile(filepath.Join(t.TempDir(), "absent.rss"))
	if err == nil {
		t.Error("ParseSourceFile() error = nil, want read error")
	}
}

func TestParseSourceFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.rss")
	if err := os.WriteFile(path, []byte(sampleInput), 0644); err != nil {
		t.Fatal(err)
	}

	src, err := ParseSourceFile(path)
	if err != nil {
		t.Fatalf("ParseSourceFile() error = %v", err)
	}
	if len(src.Entries) != 4 {
		t.Errorf("len(Entries) = %d, want 4", len(src.Entries))
	}
}
