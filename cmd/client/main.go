package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dangtv/coinclub/internal/buildinfo"
	"github.com/dangtv/coinclub/internal/client/cli"
	"github.com/dangtv/coinclub/internal/client/config"
	"github.com/dangtv/coinclub/internal/logging"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	app, err := cli.NewApp(ctx, cfg, logging.NewDefault())
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
