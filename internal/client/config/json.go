package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/releve-app/releve/internal/flagx"
)

// jsonConfig is the DTO for the optional JSON config file. The timeout is an
// integer number of seconds.
type jsonConfig struct {
	BaseURL        string `json:"base_url"`
	RequestTimeout int    `json:"request_timeout"`
	CredentialDB   string `json:"credential_db"`
}

// parseJSON overlays values from the file named by -c/-config. Absent flag
// means no JSON layer. Read or unmarshal errors panic: a config file that was
// asked for but cannot be used is not worth limping past.
func parseJSON(cfg *Config) {
	path := flagx.JSONConfigFlags()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.RequestTimeout > 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout) * time.Second
	}
	if jc.CredentialDB != "" {
		cfg.CredentialDB = jc.CredentialDB
	}
}
