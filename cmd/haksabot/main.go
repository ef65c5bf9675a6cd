package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/mjc-ai/haksabot/internal/api"
	"github.com/mjc-ai/haksabot/internal/config"
	"github.com/mjc-ai/haksabot/internal/events"
	"github.com/mjc-ai/haksabot/internal/gemini"
	"github.com/mjc-ai/haksabot/internal/history"
	"github.com/mjc-ai/haksabot/internal/pipeline"
	"github.com/mjc-ai/haksabot/internal/retrieval"
	"github.com/mjc-ai/haksabot/internal/store"
	"github.com/mjc-ai/haksabot/internal/translate"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	setupLogging(cfg.LogLevel)

	slog.Info("haksabot starting", "port", cfg.Port)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Gemini client — the only hard dependency.
	if cfg.GeminiAPIKey == "" {
		slog.Error("GEMINI_API_KEY is required")
		os.Exit(1)
	}
	llm := gemini.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel, gemini.Options{
		Temperature:     cfg.Temperature,
		TopP:            cfg.TopP,
		MaxOutputTokens: cfg.MaxOutputTokens,
	})
	slog.Info("gemini client ready", "model", cfg.GeminiModel)

	// Vector store (optional — without it every request runs in context or
	// bare mode).
	var searcher retrieval.Searcher
	if cfg.DatabaseURL != "" {
		db, err := store.New(ctx, cfg.DatabaseURL)
		if err != nil {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		searcher = store.NewVectorSearch(db, llm, cfg.EmbedModel, cfg.Collection)
		slog.Info("vector store connected", "collection", cfg.Collection)
	} else {
		slog.Warn("DATABASE_URL not set — running without document retrieval")
	}
	retriever := retrieval.New(searcher, slog.Default())

	// Translation boundary (optional — without it the bot is Korean-only).
	var boundary *translate.Boundary
	if cfg.TranslateAPIKey != "" {
		boundary = translate.NewBoundary(translate.NewClient(cfg.TranslateAPIKey), slog.Default())
		slog.Info("translation boundary ready")
	} else {
		slog.Warn("TRANSLATE_API_KEY not set — running without translation")
	}

	// Chat telemetry (optional).
	var publisher *events.Publisher
	if cfg.NatsURL != "" {
		p, err := events.NewPublisher(cfg.NatsURL, cfg.NatsToken, slog.Default())
		if err != nil {
			slog.Error("failed to connect to NATS", "error", err)
			os.Exit(1)
		}
		defer p.Close()
		publisher = p
		slog.Info("NATS connected", "url", cfg.NatsURL)
	}

	pipe := pipeline.New(history.NewStore(), retriever, llm, boundary, publisher, cfg.TopK, slog.Default())

	srv := api.NewServer(cfg.Port, pipe)
	go func() {
		if err := srv.Start(); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()

	slog.Info("haksabot ready", "port", cfg.Port)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	slog.Info("shutting down")
	cancel()
	slog.Info("haksabot stopped")
}

func setupLogging(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}
