package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"github.com/releve-app/releve/internal/devserver"
	"github.com/releve-app/releve/internal/logging"
)

type config struct {
	Addr   string `env:"RELEVE_DEV_ADDR" envDefault:":3000"`
	Secret string `env:"RELEVE_DEV_SECRET" envDefault:"dev-secret"`
}

func main() {

	_ = godotenv.Load()

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("%v", err)
	}

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	srv := devserver.New([]byte(cfg.Secret), logger)

	if err := srv.Run(cfg.Addr); err != nil {
		log.Fatalf("%v", err)
	}

}
