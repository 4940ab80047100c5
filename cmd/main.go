package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/harunaka/kodomo-diary/internal/cli"
	"github.com/harunaka/kodomo-diary/internal/config"
	"github.com/harunaka/kodomo-diary/internal/remote"
)

func main() {

	// =========================================================================
	// ENV / LOGGER INIT
	// =========================================================================

	_ = godotenv.Load()

	cfg := config.FromEnv()

	var baseLogger *zap.Logger
	if cfg.Debug {
		baseLogger, _ = zap.NewDevelopment()
	} else {
		baseLogger, _ = zap.NewProduction()
	}
	defer baseLogger.Sync()

	// =========================================================================
	// CLI
	// =========================================================================

	app := cli.NewApp(cfg, baseLogger.Sugar())

	if err := app.Execute(); err != nil {
		var apiErr *remote.APIError
		if errors.As(err, &apiErr) {
			fmt.Fprintf(os.Stderr, "Error: %s (code=%s retryable=%t)\n",
				apiErr.Message, apiErr.Code, apiErr.Retryable)
		} else {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
