// README: Entry point; loads config, wires services, starts the API server.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"travelsmart/internal/ai"
	"travelsmart/internal/backend"
	"travelsmart/internal/cache"
	"travelsmart/internal/config"
	httptransport "travelsmart/internal/http"
	"travelsmart/internal/infra"
	"travelsmart/internal/logger"
	"travelsmart/internal/maps"
	"travelsmart/internal/notify"
	"travelsmart/internal/recommend"
	"travelsmart/internal/service"
	"travelsmart/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zlog, err := logger.New(cfg.LogLevel, cfg.IsDevelopment())
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zlog.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.GeminiKey == "" {
		zlog.Fatal("GEMINI_API_KEY is required")
	}
	assistant, err := ai.NewGemini(ctx, cfg.GeminiKey, cfg.GeminiModel)
	if err != nil {
		zlog.Fatal("assistant init failed", zap.Error(err))
	}
	defer assistant.Close()

	dbPool, err := infra.NewDB(ctx, cfg.DBDSN)
	if err != nil {
		zlog.Fatal("database init failed", zap.Error(err))
	}
	defer dbPool.Close()
	if err := store.EnsureSchema(ctx, dbPool); err != nil {
		zlog.Fatal("schema init failed", zap.Error(err))
	}

	var recCache cache.Cache
	if cfg.UseRedisCache {
		recCache = cache.NewRedis(infra.NewRedis(cfg.RedisAddr), "travelsmart:rec", zlog)
	} else {
		memCache := cache.NewMemory()
		go memCache.RunSweeper(ctx, time.Minute)
		recCache = memCache
	}

	var notifier httptransport.Notifier = notify.Nop{}
	if conn, err := infra.NewAMQP(cfg.AMQPURL); err != nil {
		zlog.Warn("broker unavailable, notifications disabled", zap.Error(err))
	} else {
		defer conn.Close()
		publisher, err := notify.NewPublisher(conn, zlog)
		if err != nil {
			zlog.Warn("publisher init failed, notifications disabled", zap.Error(err))
		} else {
			defer publisher.Close()
			notifier = publisher
		}
	}

	var resolver service.DestinationResolver
	if cfg.MapsKey != "" {
		resolver, err = maps.NewResolver(cfg.MapsKey)
		if err != nil {
			zlog.Warn("geocoding disabled", zap.Error(err))
			resolver = nil
		}
	}

	weatherClient := backend.NewClient("weather", cfg.WeatherURL, zlog)
	insightsClient := backend.NewClient("insights", cfg.InsightsURL, zlog)
	bookingClient := backend.NewClient("booking", cfg.BookingURL, zlog)
	defer weatherClient.Close()
	defer insightsClient.Close()
	defer bookingClient.Close()

	orchestrator := service.NewOrchestrator(service.Deps{
		Assistant: assistant,
		Weather:   weatherClient,
		Insights:  insightsClient,
		Booking:   bookingClient,
		Resolver:  resolver,
		Log:       zlog,
	})

	engine := recommend.NewEngine(assistant, recCache, cfg.CacheTTL, zlog)

	apiServer := httptransport.NewServer(httptransport.ServerDeps{
		Planner:     orchestrator,
		Recommender: engine,
		Assistant:   assistant,
		Bookings:    store.NewBookingStore(dbPool),
		Preferences: store.NewPreferenceStore(dbPool),
		Notifier:    notifier,
		Log:         zlog,
	})

	server := &http.Server{Addr: cfg.HTTPAddr, Handler: apiServer.Routes()}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	zlog.Info("travelsmart api listening", zap.String("addr", cfg.HTTPAddr))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
