package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shadowpulse/db"
	"shadowpulse/internal/app"
	"shadowpulse/internal/cache"
	"shadowpulse/internal/config"
	"shadowpulse/internal/handler"
	"shadowpulse/internal/logger"
	"shadowpulse/internal/report"
	"shadowpulse/internal/repository"
	"shadowpulse/internal/service"
	"shadowpulse/pkg/news"
	"shadowpulse/pkg/sentiment"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	logger.Setup("dashboard", cfg.LogLevel)

	if err := cfg.CheckCredentials(); err != nil {
		slog.Error("cannot start without credentials", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	var searcher news.Searcher = app.NewSearcher(cfg)
	var cachePinger, dbPinger handler.Pinger

	if cfg.Storage.RedisURL != "" {
		rdb, err := db.ConnectRedis(ctx, cfg.Storage.RedisURL)
		if err != nil {
			log.Fatalf("error connecting to Redis: %v", err)
		}
		defer rdb.Close()

		searchCache := cache.NewSearchCache(searcher, rdb, cfg.Storage.CacheTTL)
		searcher = searchCache
		cachePinger = searchCache
	}

	pipeline := report.NewPipeline(report.NewComposer())
	dashboard := service.NewDashboard(searcher, sentiment.NewVaderAnalyzer(), app.NewSummarizer(cfg), pipeline, cfg.Search.Limit)

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.SetHTMLTemplate(handler.Templates())

	allowedOrigins := []string{"http://localhost:3000"}
	if cfg.FrontendURL != "" {
		allowedOrigins = append(allowedOrigins, cfg.FrontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins:  allowedOrigins,
		AllowMethods:  []string{"GET", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type"},
		ExposeHeaders: []string{"Content-Disposition"},
	}))

	if cfg.Storage.DatabaseURL != "" {
		conn, err := db.Connect(cfg.Storage.DatabaseURL)
		if err != nil {
			log.Fatalf("error connecting to DB: %v", err)
		}
		defer conn.Close()

		reportRepo := repository.NewReportRepository(conn)
		dashboard.WithReportStore(reportRepo)
		dbPinger = reportRepo

		r.GET("/api/reports", handler.NewHistoryHandler(reportRepo).GetReports)
	}

	dashboardHandler := handler.NewDashboardHandler(dashboard)
	healthHandler := handler.NewHealthHandler(dbPinger, cachePinger)

	r.GET("/", dashboardHandler.GetDashboard)
	r.GET("/chart", dashboardHandler.GetChart)
	r.GET("/report", dashboardHandler.GetReport)
	r.GET("/api/analysis", dashboardHandler.GetAnalysis)
	r.GET("/health", healthHandler.GetHealth)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("dashboard listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("error starting server: %v", err)
		}
	}()

	<-ctx.Done()
	slog.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown", "error", err)
	}
}
