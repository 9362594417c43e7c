// Package main - entry point for the payment-cost HTTP server
package main

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"payment-cost/api"
	"payment-cost/core/rates"
	"payment-cost/internal/logging"
)

const version = "0.1.0"

type serverEnv struct {
	Addr      string `env:"PAYCOST_ADDR" envDefault:":8080"`
	RatesPath string `env:"PAYCOST_RATES"`
	LogLevel  string `env:"PAYCOST_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"PAYCOST_LOG_FORMAT" envDefault:"json"`
}

func main() {
	// .env is optional; real environments set variables directly.
	_ = godotenv.Load()

	var cfg serverEnv
	if err := env.Parse(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "failed to parse environment: %v\n", err)
		os.Exit(1)
	}

	if err := logging.Initialize(logging.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: "stderr",
	}); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logging: %v\n", err)
		os.Exit(1)
	}
	defer logging.Sync()

	table, err := rates.Load(cfg.RatesPath)
	if err != nil {
		logging.Error("failed to load rates", zap.Error(err))
		os.Exit(1)
	}

	server := api.NewServer(version, table)

	logging.Info("starting payment-cost server",
		zap.String("addr", cfg.Addr),
		zap.String("version", version))
	if err := server.ListenAndServe(cfg.Addr); err != nil {
		logging.Error("server stopped", zap.Error(err))
		os.Exit(1)
	}
}
