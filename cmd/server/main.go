package main

import (
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"

	"github.com/krishvadhani19/resemble-project/internal/app"
)

func main() {
	cfg := app.LoadConfig()

	logger := logrus.New()
	// Stdout carries the dispatch protocol; all logging goes to stderr.
	logger.SetOutput(os.Stderr)
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	// Initialize Sentry for error monitoring
	if cfg.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			EnableTracing:    true,
			TracesSampleRate: 0.2, // 20% of requests for performance monitoring
			Environment:      getEnvironment(),
		})
		if err != nil {
			logger.WithError(err).Warn("sentry init failed")
		} else {
			logger.Info("sentry initialized")
			defer sentry.Flush(2 * time.Second)
		}
	}

	if cfg.APIKey == "" {
		logger.Warn("RESEMBLE_API_KEY is not set; Resemble API calls will be rejected")
		logger.Warn("set it using: export RESEMBLE_API_KEY='your-api-key'")
	}

	a := app.New(cfg, logger)

	logger.WithField("version", app.Version).Info("resemble-server serving on stdio")
	if err := a.Serve(); err != nil {
		if cfg.SentryDSN != "" {
			sentry.CaptureException(err)
			sentry.Flush(2 * time.Second)
		}
		logger.WithError(err).Fatal("serve")
	}
}

func getEnvironment() string {
	if env := os.Getenv("ENVIRONMENT"); env != "" {
		return env
	}
	return "development"
}
