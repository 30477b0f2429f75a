package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"stationator.nl/internal/app"
	"stationator.nl/internal/appconf"
	"stationator.nl/internal/clock"
	"stationator.nl/internal/logging"
	"stationator.nl/internal/metrics"
	"stationator.nl/internal/nsapi"
	"stationator.nl/internal/prefs"
	"stationator.nl/internal/restapi"
	"stationator.nl/internal/trips"
)

func main() {
	// Load .env for local development; the real environment wins in
	// production deploys.
	_ = godotenv.Load()

	var cfg appconf.Config
	var envFlag string

	flag.IntVar(&cfg.Port, "port", 4000, "API server port")
	flag.StringVar(&envFlag, "env", "development", "Environment (development|test|production)")
	flag.IntVar(&cfg.RateLimit, "rate-limit", 100, "Requests per second per client IP; 0 denies all, negative disables limiting")
	flag.BoolVar(&cfg.Verbose, "verbose", false, "Enable verbose debug logging")
	flag.Parse()

	cfg.Env = appconf.EnvFlagToEnvironment(envFlag)

	nsCfg := nsapi.Config{
		BaseURL: os.Getenv("NS_API_URL"),
		APIKey:  os.Getenv("NS_API_KEY"),
	}

	application, err := BuildApplication(cfg, nsCfg)
	if err != nil {
		slog.Error("failed to build application", "error", err)
		os.Exit(1)
	}

	if err := runServer(application); err != nil {
		logging.LogError(application.Logger, "server exited with error", err)
		os.Exit(1)
	}
}

// configureLogging builds the root logger. Verbose mode lowers the level
// to debug; production logs JSON for ingestion.
func configureLogging(cfg appconf.Config) *slog.Logger {
	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.Env == appconf.Production {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}

// BuildApplication wires the full dependency graph: clock, metrics, the
// NS client with its cache, the trip aggregation service, and the
// preference store.
func BuildApplication(cfg appconf.Config, nsCfg nsapi.Config) (*app.Application, error) {
	logger := configureLogging(cfg)

	clk := clock.RealClock{}
	m := metrics.New()

	if nsCfg.APIKey == "" {
		// Startup proceeds so the sample direction still works, but
		// every live fetch will fail until the key is provided.
		logger.Warn("NS_API_KEY is not set; live trip fetches will fail")
	}

	client := nsapi.NewClient(nsCfg, nsapi.NewCache(), logger, m)
	service := trips.NewService(client, nil, logger)

	application := &app.Application{
		Config:    cfg,
		Logger:    logger,
		Clock:     clk,
		Metrics:   m,
		Trips:     service,
		TripCache: client.Cache(),
		Prefs:     prefs.NewStore(),
	}

	return application, nil
}

// CreateServer builds the HTTP server around the REST API routes.
func CreateServer(application *app.Application, api *restapi.RestAPI) *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf(":%d", application.Config.Port),
		Handler:      api.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}

// runServer starts the prewarmer and HTTP server, then blocks until a
// shutdown signal arrives and both are drained.
func runServer(application *app.Application) error {
	api := restapi.New(application)
	defer api.Shutdown()

	server := CreateServer(application, api)

	prewarmer := trips.NewPrewarmer(application.Trips, application.TripCache,
		application.Clock, trips.DefaultPrewarmInterval, application.Logger, application.Metrics)
	prewarmer.Start()
	defer prewarmer.Stop()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		application.Logger.Info("starting server",
			slog.String("addr", server.Addr),
			slog.String("env", application.Config.Env.String()))
		serverErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	application.Logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}
