package config

import (
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type envConfig struct {
	BaseURL      string `env:"RELEVE_API_URL"`
	TimeoutSecs  int    `env:"RELEVE_TIMEOUT"`
	CredentialDB string `env:"RELEVE_CREDENTIAL_DB"`
}

// parseEnv overlays values from a .env file (if present) and the process
// environment. Unset variables leave the config untouched.
func parseEnv(cfg *Config) {
	// A missing .env is fine; variables may be set directly.
	_ = godotenv.Load()

	e := envConfig{}
	if err := env.Parse(&e); err != nil {
		panic(err)
	}

	if e.BaseURL != "" {
		cfg.BaseURL = e.BaseURL
	}
	if e.TimeoutSecs > 0 {
		cfg.RequestTimeout = time.Duration(e.TimeoutSecs) * time.Second
	}
	if e.CredentialDB != "" {
		cfg.CredentialDB = e.CredentialDB
	}
}
