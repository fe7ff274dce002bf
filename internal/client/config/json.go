package config

import (
	"encoding/json"
	"os"

	"github.com/bhavatharanigopi7-cell/login-and-registration/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
type JsonConfig struct {
	AccountsFile      string `json:"accounts_file"`
	Digest            string `json:"digest"`
	LogLevel          string `json:"log_level"`
	MinPasswordLength int    `json:"min_password_length"`
}

// parseJson overlays cfg with the non-empty values of the JSON file named by
// -c or -config. Without either flag it does nothing. Read or unmarshal
// errors panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigPath(os.Args[1:])
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.AccountsFile != "" {
		cfg.AccountsFile = jc.AccountsFile
	}
	if jc.Digest != "" {
		cfg.Digest = jc.Digest
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.MinPasswordLength > 0 {
		cfg.MinPasswordLength = jc.MinPasswordLength
	}
}
