package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/quantdesk/quantum-pricer/internal/clients/gemini"
	"github.com/quantdesk/quantum-pricer/internal/clients/yahoo"
	"github.com/quantdesk/quantum-pricer/internal/config"
	"github.com/quantdesk/quantum-pricer/internal/modules/greeks"
	"github.com/quantdesk/quantum-pricer/internal/modules/insight"
	"github.com/quantdesk/quantum-pricer/internal/modules/marketdata"
	"github.com/quantdesk/quantum-pricer/internal/modules/pricing"
	"github.com/quantdesk/quantum-pricer/internal/modules/quantum"
	"github.com/quantdesk/quantum-pricer/internal/scheduler"
	"github.com/quantdesk/quantum-pricer/internal/server"
	"github.com/quantdesk/quantum-pricer/internal/workers"
	"github.com/quantdesk/quantum-pricer/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		// Logger not up yet
		panic(err)
	}

	// Initialize logger
	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.DevMode,
	})
	logger.SetGlobalLogger(log)

	log.Info().Msg("Starting Quantum Pricer")

	// Simulation seed: explicit for reproducible runs, wall clock otherwise
	seed := cfg.SimulationSeed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	// Core engine
	simulator := pricing.NewSimulator(seed)
	gate := workers.NewSimulationGate(cfg.MaxConcurrentSims)
	pricingService := pricing.NewService(simulator, greeks.Estimate, gate, log)

	// Market data with background refresh
	yahooClient := yahoo.NewClient(log)
	marketService := marketdata.NewService(yahooClient, time.Duration(cfg.QuoteTTLSeconds)*time.Second, log)

	sched := scheduler.New(log)
	sched.Start()
	defer sched.Stop()

	refreshJob := scheduler.NewQuoteRefreshJob(marketService, cfg.WatchedSymbols, log)
	if err := sched.AddJob(cfg.QuoteRefreshCron, refreshJob); err != nil {
		log.Fatal().Err(err).Msg("Failed to register quote refresh job")
	}

	// Insight generation (AI path optional)
	geminiClient := gemini.NewClient(cfg.GeminiAPIKey, log)
	insightService := insight.NewService(geminiClient, log)
	if !geminiClient.Available() {
		log.Warn().Msg("GEMINI_API_KEY not set, insight endpoint will use template fallback")
	}

	// Initialize HTTP server
	srv := server.New(server.Config{
		Port:       cfg.Port,
		Log:        log,
		DevMode:    cfg.DevMode,
		Pricing:    pricing.NewHandler(pricingService, log),
		Greeks:     greeks.NewHandler(log),
		Quantum:    quantum.NewHandler(log),
		MarketData: marketdata.NewHandler(marketService, log),
		Insight:    insight.NewHandler(insightService, log),
		System:     server.NewSystemHandlers(log, marketService),
	})

	// Start server in goroutine
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().Int("port", cfg.Port).Msg("Server started successfully")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server stopped")
}
