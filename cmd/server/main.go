package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"

	"github.com/Vasanthadithya-mundrathi/AI-journal-COSC/internal/config"
	"github.com/Vasanthadithya-mundrathi/AI-journal-COSC/internal/handlers"
	"github.com/Vasanthadithya-mundrathi/AI-journal-COSC/internal/logging"
	"github.com/Vasanthadithya-mundrathi/AI-journal-COSC/internal/routes"
	"github.com/Vasanthadithya-mundrathi/AI-journal-COSC/internal/services"
)

const serviceName = "ai-journal-api"

func main() {
	// Load env
	envErr := godotenv.Load()
	cfg := config.Load()
	logger := logging.New(cfg.LogLevel, cfg.IsProduction())
	if envErr != nil {
		logger.Info("No .env file found, using environment variables")
	}

	if cfg.GeminiAPIKey == "" {
		logger.Warn("GEMINI_API_KEY not set. Entries will get the default mood and summary.")
	}

	store := services.NewEntryStore()
	if cfg.SeedSampleEntries {
		store.SeedSampleEntries(time.Now())
		logger.WithField("entries", store.Len()).Info("Seeded sample journal entries")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := services.NewMetrics(registry, store)

	gemini := services.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiBaseURL, cfg.GeminiModel)
	analyzer := services.NewMoodAnalyzer(gemini, logger,
		services.WithAnalysisTimeout(cfg.AnalysisTimeout),
		services.WithAnalyzerMetrics(metrics),
	)

	stop := make(chan struct{})
	router := routes.NewRouter(routes.Deps{
		ServiceName:    serviceName,
		Version:        cfg.Version,
		Store:          store,
		Journal:        handlers.NewJournalHandler(store, analyzer, metrics, logger),
		Gatherer:       registry,
		Logger:         logger,
		AllowedOrigins: cfg.AllowedOrigins,
		Production:     cfg.IsProduction(),
		Stop:           stop,
	})
	if cfg.IsProduction() {
		logger.Info("Production security enabled (security headers, per-IP rate limiting)")
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.WithFields(logrus.Fields{
			"addr":  cfg.Addr(),
			"model": gemini.Model(),
		}).Info("AI journal backend running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	close(stop)

	logger.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.AnalysisTimeout+5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("Graceful shutdown failed")
	}
}
