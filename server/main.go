package main

import (
	"flag"
	"log"

	"go.uber.org/zap"

	"github.com/meikuraledutech/wfgraph/internal/config"
	"github.com/meikuraledutech/wfgraph/internal/logging"
)

func main() {
	configPath := flag.String("config", "", "YAML configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck // best effort on exit

	app := newApp(cfg, logger)

	addr := cfg.Server.Addr()
	logger.Info("Starting wfgraph server",
		zap.String("addr", addr),
		zap.Int("max_upload_bytes", cfg.Server.MaxUploadBytes),
		zap.Int("max_depth", cfg.Traversal.MaxDepth),
		zap.Strings("cors_origins", cfg.Server.CORSOrigins))
	if err := app.Listen(addr); err != nil {
		logger.Fatal("Server failed", zap.Error(err))
	}
}
