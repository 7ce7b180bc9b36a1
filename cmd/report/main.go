package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"

	"shadowpulse/internal/app"
	"shadowpulse/internal/config"
	"shadowpulse/internal/logger"
	"shadowpulse/internal/report"
	"shadowpulse/internal/service"
	"shadowpulse/pkg/sentiment"
)

func main() {
	topic := flag.String("topic", "", "topic to search and summarize")
	out := flag.String("out", "", "output file (default ShadowPulse_<topic>.pdf)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	logger.Setup("report", cfg.LogLevel)

	if err := cfg.CheckCredentials(); err != nil {
		slog.Error("cannot run without credentials", "error", err)
		os.Exit(1)
	}

	pipeline := report.NewPipeline(report.NewComposer())
	dashboard := service.NewDashboard(app.NewSearcher(cfg), sentiment.NewVaderAnalyzer(), app.NewSummarizer(cfg), pipeline, cfg.Search.Limit)

	dl, err := dashboard.Report(context.Background(), *topic)
	if errors.Is(err, service.ErrEmptyTopic) {
		flag.Usage()
		os.Exit(2)
	}
	if errors.Is(err, service.ErrNoHeadlines) {
		slog.Error("no data found", "topic", *topic)
		os.Exit(1)
	}
	if err != nil {
		log.Fatalf("error generating report: %v", err)
	}

	path := *out
	if path == "" {
		path = dl.FileName
	}

	if err := os.WriteFile(path, dl.Data, 0o644); err != nil {
		log.Fatalf("error writing report: %v", err)
	}

	slog.Info("report written", "topic", *topic, "path", path, "bytes", len(dl.Data))
}
