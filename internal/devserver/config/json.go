package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/reservas/internal/flagx"
	"github.com/dmitrijs2005/reservas/internal/timex"
)

var configPathFn = flagx.ConfigPathFrom

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
type JsonConfig struct {
	ListenAddr   string          `json:"listen_addr"`
	SecretKey    string          `json:"secret_key"`
	TokenTTL     *timex.Duration `json:"token_ttl"`
	DatabaseDSN  string          `json:"database_dsn"`
	LogLevel     string          `json:"log_level"`
	SeedEmail    string          `json:"seed_email"`
	SeedPassword string          `json:"seed_password"`
}

func parseJSON(cfg *Config, path string) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return err
	}

	setIf(&cfg.ListenAddr, jc.ListenAddr)
	setIf(&cfg.SecretKey, jc.SecretKey)
	setIf(&cfg.DatabaseDSN, jc.DatabaseDSN)
	setIf(&cfg.LogLevel, jc.LogLevel)
	setIf(&cfg.SeedEmail, jc.SeedEmail)
	setIf(&cfg.SeedPassword, jc.SeedPassword)
	if jc.TokenTTL != nil {
		cfg.TokenTTL = jc.TokenTTL.Duration
	}
	return nil
}

func setIf(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
