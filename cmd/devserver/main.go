package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/reservas/internal/buildinfo"
	"github.com/dmitrijs2005/reservas/internal/devserver"
	"github.com/dmitrijs2005/reservas/internal/devserver/config"
	"github.com/dmitrijs2005/reservas/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	logger := logging.New(os.Stdout, cfg.LogLevel, logging.FormatJSON)

	app, err := devserver.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	if err := app.Run(ctx); err != nil {
		logger.Error(ctx, "server stopped", "error", err)
		os.Exit(1)
	}

}
