package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/reservas/internal/flagx"
	"github.com/dmitrijs2005/reservas/internal/timex"
)

var configPathFn = flagx.ConfigPathFrom

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields tell an absent key from a zero value.
type JsonConfig struct {
	APIBaseURL        string          `json:"api_base_url"`
	SessionDB         string          `json:"session_db"`
	LogLevel          string          `json:"log_level"`
	NoticeDelay       *timex.Duration `json:"notice_delay"`
	AuthAllEndpoints  *bool           `json:"auth_all_endpoints"`
	InternalBranchIDs []int64         `json:"internal_branch_ids"`
}

// parseJSON overlays cfg with the keys present in the file at path.
// An empty path loads nothing.
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

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.SessionDB != "" {
		cfg.SessionDB = jc.SessionDB
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.NoticeDelay != nil {
		cfg.NoticeDelay = jc.NoticeDelay.Duration
	}
	if jc.AuthAllEndpoints != nil {
		cfg.AuthAllEndpoints = *jc.AuthAllEndpoints
	}
	if jc.InternalBranchIDs != nil {
		cfg.InternalBranchIDs = jc.InternalBranchIDs
	}
	return nil
}
