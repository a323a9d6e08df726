package app

import (
	"context"
	"errors"
	"fmt"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"net/http"
	"os"
	"os/signal"
	router "pitwall/internal/app/adapters/http"
	"pitwall/internal/app/adapters/metrics"
	"pitwall/internal/app/adapters/platform/bluesky"
	"pitwall/internal/app/adapters/source/livetiming"
	"pitwall/internal/app/adapters/source/openf1"
	"pitwall/internal/app/domain/format"
	"pitwall/internal/app/domain/monitor"
	"pitwall/internal/app/domain/racecontrol"
	"pitwall/internal/app/infrastructure/config"
	"pitwall/internal/app/infrastructure/storage"
	"pitwall/internal/app/ports"
	"pitwall/pkg/logger"
	"syscall"
	"time"
)

const configPath = "config.json"

func New() error {
	client := &http.Client{
		Timeout:   15 * time.Second,
		Transport: http.DefaultTransport,
	}
	log := logger.New()

	// local dev convenience, production relies on real env
	_ = godotenv.Load()

	manager, err := config.New(configPath)
	if err != nil {
		log.Fatal("Error loading config", err)
	}

	cfg := manager.Get()
	log.SetLogLevel(cfg.App.LogLevel)
	gin.SetMode(cfg.App.GinMode)

	prometheus.MustRegister(metrics.TickProcessingTime)

	identifier := os.Getenv("BLUESKY_IDENTIFIER")
	password := os.Getenv("BLUESKY_PASSWORD")
	if identifier == "" || password == "" {
		return errors.New("BLUESKY_IDENTIFIER and BLUESKY_PASSWORD must be set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	publisher := bluesky.New(log, manager, client)
	if err := publisher.Login(ctx, identifier, password); err != nil {
		return fmt.Errorf("posting service login: %w", err)
	}

	var source ports.SourcePort
	interval := cfg.Source.PollInterval
	if cfg.Source.Mode == config.ModeLiveTiming {
		// the streaming client has no per-request deadline, its read
		// deadline comes from the inactivity timeout
		wsClient := &http.Client{Timeout: 15 * time.Second}
		source = livetiming.New(logger.NewPrefixedLogger(log, config.ModeLiveTiming), manager, wsClient)
		interval = cfg.Source.LivePollInterval
	} else {
		source = openf1.New(logger.NewPrefixedLogger(log, config.ModeOpenF1), manager, client)
	}
	defer source.Close()

	seen := storage.NewSeenStore(cfg.Seen.Capacity, cfg.Seen.TTL)
	formatter := format.New(format.Tables{
		Categories:      cfg.Emoji.Categories,
		Flags:           cfg.Emoji.Flags,
		DefaultCategory: cfg.Emoji.DefaultCategory,
	}, cfg.Post.Hashtags, cfg.Post.MaxChars)

	mon := monitor.New(log, source, publisher, formatter, racecontrol.NewDedup(seen), cfg.Source.Mode, interval)

	r := router.NewRouter(log, manager, seen)
	go func() {
		if err := r.Run(); err != nil {
			log.Error("Ops server stopped", err)
		}
	}()

	mon.Run(ctx)
	log.Info("Shutdown complete")
	return nil
}
