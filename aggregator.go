package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/FarseaSH/weibo-hotlist-rss/config"
	"github.com/FarseaSH/weibo-hotlist-rss/feed"
	"github.com/FarseaSH/weibo-hotlist-rss/hotlist"
)

// Aggregator collapses one hotlist RSS file into a single-item RSS
// file. Each Run is an independent, linear transform; Now is injected
// so the fallback-to-current-time path stays testable.
type Aggregator struct {
	Config config.Config
	Now    func() time.Time
}

func (a *Aggregator) Run(inputPath, outputPath string) error {
	src, err := feed.ParseSourceFile(inputPath)
	if err != nil {
		return fmt.Errorf("fail to read hotlist feed. %w", err)
	}

	loc := a.Config.Location()
	capture := hotlist.ResolveCaptureTime(src.LastBuildDate, loc, a.Now)
	if capture.Defaulted {
		slog.Warn("Unusable lastBuildDate in input, using current time",
			slog.String("lastBuildDate", src.LastBuildDate))
	}

	out := &feed.Output{
		Title:         a.Config.ChannelTitle,
		Link:          a.Config.ChannelLink,
		Description:   a.Config.ChannelDescription,
		Language:      a.Config.ChannelLanguage,
		LastBuildDate: capture.FormatRFC822(),

		ItemTitle:       fmt.Sprintf("微博热搜 - %s", capture.FormatTitle()),
		ItemLink:        a.Config.ItemLink,
		ItemDescription: hotlist.RenderDescription(a.Config.SearchURL, src.Entries, capture),
		PubDate:         capture.FormatRFC822(),
		GUID:            fmt.Sprintf("weibo-hot-%s", capture.FormatGUID()),
	}

	if err := out.WriteFile(outputPath); err != nil {
		return fmt.Errorf("fail to write aggregated feed. %w", err)
	}

	slog.Info("Aggregated hotlist feed",
		slog.Int("entries", len(src.Entries)),
		slog.String("output", outputPath))
	return nil
}
