package main

import (
	"log"
	"os"

	"github.com/rs/zerolog"

	"github.com/roadwatch-io/trackview/internal/config"
	"github.com/roadwatch-io/trackview/internal/gateway"
	"github.com/roadwatch-io/trackview/internal/store"
	"github.com/roadwatch-io/trackview/internal/tenant"
	"github.com/roadwatch-io/trackview/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// The terminal owns stdout/stderr while the TUI runs; log to a file so
	// diagnostics survive the session.
	logFile, err := os.OpenFile("trackview.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		log.Fatalf("open log file: %v", err)
	}
	defer logFile.Close()

	logger := zerolog.New(logFile).With().Timestamp().Str("env", cfg.Env).Logger()

	registry, err := tenant.NewRegistry(cfg.TenantList())
	if err != nil {
		log.Fatalf("tenants: %v", err)
	}

	client := gateway.New(cfg.BaseURL, cfg.Timeout(), logger)
	st := store.New(client, registry, logger)
	st.Refresh()

	if err := tui.Run(st, registry, logger); err != nil {
		logger.Error().Err(err).Msg("terminal program failed")
		log.Fatalf("trackview: %v", err)
	}
}
