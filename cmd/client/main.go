package main

import (
	"context"
	"log"
	"os"

	"github.com/dpbr/dpbr-client/internal/buildinfo"
	"github.com/dpbr/dpbr-client/internal/client/cli"
	"github.com/dpbr/dpbr-client/internal/client/config"
	"github.com/dpbr/dpbr-client/internal/logging"
	"github.com/joho/godotenv"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	// A missing .env is fine; the environment may be set some other way.
	_ = godotenv.Load()

	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	logger, err := logging.New(cfg.LogBackend, cfg.LogLevel, os.Stderr)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)

}
