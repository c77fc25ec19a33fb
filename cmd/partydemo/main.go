// Package main provides the party demo binary: it equips a party member with
// three summoning items and prints the party's state as the items come and go.
package main

import (
	"flag"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/summoners/internal/config"
	"github.com/cory-johannsen/summoners/internal/demo"
	"github.com/cory-johannsen/summoners/internal/observability"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "", "path to configuration file; empty = defaults and PARTY_* environment")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	if err := demo.Run(os.Stdout, cfg, logger); err != nil {
		logger.Fatal("running demo", zap.Error(err))
	}
	logger.Info("party demo finished", zap.Duration("elapsed", time.Since(start)))
}
