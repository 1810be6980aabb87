package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dpbr/dpbr-client/internal/buildinfo"
	"github.com/dpbr/dpbr-client/internal/logging"
	"github.com/dpbr/dpbr-client/internal/mockapi"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	_ = godotenv.Load()

	cfg, err := mockapi.LoadServerConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("%v", err)
	}

	logger, err := logging.New(cfg.LogBackend, cfg.LogLevel, os.Stdout)
	if err != nil {
		log.Fatalf("%v", err)
	}

	gin.SetMode(gin.ReleaseMode)

	srv, err := mockapi.NewServer(cfg.Server(), logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	if err := srv.Run(ctx, cfg.Addr); err != nil {
		logger.Error(ctx, "mock API stopped", "err", err)
		os.Exit(1)
	}

}
