package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/FarseaSH/weibo-hotlist-rss/config"
)

func main() {
	inputPath := flag.String("input", "demo_input.rss", "path to source RSS file")
	outputPath := flag.String("output", "demo_output.rss", "path to write aggregated RSS file")
	flag.Parse()

	a := &Aggregator{
		Config: config.Default(),
		Now:    time.Now,
	}

	if err := a.Run(*inputPath, *outputPath); err != nil {
		slog.Error("Aggregation failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
