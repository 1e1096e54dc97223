package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/go-redis/redis_rate/v10"
	"github.com/ijalalfrz/fuzzy-vikor-service/internal/app/config"
	"github.com/ijalalfrz/fuzzy-vikor-service/internal/app/dto"
	"github.com/ijalalfrz/fuzzy-vikor-service/internal/app/endpoints"
	"github.com/ijalalfrz/fuzzy-vikor-service/internal/app/service"
	"github.com/ijalalfrz/fuzzy-vikor-service/internal/app/transport"
	"github.com/ijalalfrz/fuzzy-vikor-service/internal/pkg/event"
	"github.com/ijalalfrz/fuzzy-vikor-service/internal/pkg/logger"
	"github.com/ijalalfrz/fuzzy-vikor-service/internal/pkg/vikor"
	"github.com/redis/go-redis/v9"
)

// @title           Fuzzy VIKOR Service API
// @version         0.0.1
// @description     fuzzy-vikor-service
// @host      localhost:8080
// @BasePath  /
// @license.name Rizal Alfarizi
// @license.url https://github.com/ijalalfrz
func main() {

	cfg := config.MustInitConfig(".env")
	logger.InitStructuredLogger(cfg.LogLevel)

	slog.Debug("config loaded successfully", slog.Any("config", cfg))
	runApp(cfg)
}

func runApp(cfg config.Config) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	slog.InfoContext(ctx, "starting...", slog.String("log_level", string(cfg.LogLevel)))

	var waitGroup sync.WaitGroup
	// Starts the server in a go routine
	waitGroup.Add(1)
	go func() {
		defer waitGroup.Done()
		startHTTPServer(ctx, cfg)
	}()

	sigChannel := make(chan os.Signal, 1)
	signal.Notify(sigChannel, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case sig := <-sigChannel:
		cancel()
		slog.InfoContext(ctx, "received OS signal. Exiting...", slog.String("signal", sig.String()))
	case <-ctx.Done():
		slog.ErrorContext(ctx, "failed to start HTTP server")
	}

	waitGroup.Wait()
	slog.InfoContext(ctx, "All service closed...")
}

func startHTTPServer(ctx context.Context, cfg config.Config) {
	// init redis
	redisClient := redis.NewClient(&redis.Options{
		Addr:        cfg.Redis.Addr,
		Password:    cfg.Redis.Password,
		DB:          cfg.Redis.DB,
		DialTimeout: cfg.Redis.Timeout,
	})
	defer redisClient.Close()

	publisher := initPublisher(ctx, &cfg)
	defer publisher.Close()

	endpts := makeEndpoints(ctx, &cfg, redisClient, publisher)
	router := transport.MakeHTTPRouter(&cfg, endpts, redis_rate.NewLimiter(redisClient))
	server := &http.Server{
		Handler:      router,
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		WriteTimeout: cfg.HTTP.Timeout,
		ReadTimeout:  cfg.HTTP.Timeout,
	}

	slog.Info("running HTTP server...", slog.Int("port", cfg.HTTP.Port))

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.ErrorContext(ctx, "failed to start HTTP server", slog.String("error", err.Error()))
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.Timeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(ctx, "failed to shutdown HTTP server", slog.String("error", err.Error()))
	}

	slog.InfoContext(ctx, "HTTP server shutdown gracefully")
}

// initPublisher connects to NATS when configured. Without a URL, or when the
// connection cannot be set up, events are dropped.
func initPublisher(ctx context.Context, cfg *config.Config) event.Publisher {
	if cfg.NATS.URL == "" {
		slog.InfoContext(ctx, "NATS_URL not set, calculation events disabled")
		return event.NoopPublisher{}
	}

	publisher, err := event.NewNATSPublisher(cfg.NATS.URL)
	if err != nil {
		slog.ErrorContext(ctx, "failed to init nats publisher", slog.String("error", err.Error()))
		return event.NoopPublisher{}
	}

	return publisher
}

func makeEndpoints(ctx context.Context, cfg *config.Config,
	redisClient *redis.Client, publisher event.Publisher) endpoints.Endpoints {
	// init validator
	if err := dto.InitValidator(); err != nil {
		slog.ErrorContext(ctx, "failed to init validator", slog.String("error", err.Error()))
		panic(err)
	}

	// init service endpoint
	return endpoints.Endpoints{
		VikorEndpoint: makeVikorEndpoint(cfg, redisClient, publisher),
	}
}

func makeVikorEndpoint(cfg *config.Config,
	redisClient *redis.Client, publisher event.Publisher) endpoints.VikorEndpoint {
	// cache
	resultCache := vikor.NewResultCache(redisClient)

	// service
	vikorService := service.NewVikorService(resultCache, publisher, cfg.NATS.Subject,
		cfg.Vikor.DefaultV, cfg.Vikor.CacheExpiration, cfg.Vikor.LockTimeout)

	// endpoint
	return endpoints.MakeVikorEndpoint(vikorService)
}
