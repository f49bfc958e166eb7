package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/releve-app/releve/internal/client/cli"
	"github.com/releve-app/releve/internal/client/config"
	"github.com/releve-app/releve/internal/logging"
)

func main() {

	cfg := config.LoadConfig()
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app, err := cli.NewApp(context.Background(), cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(context.Background())

}
