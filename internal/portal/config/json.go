package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/eduportal/internal/flagx"
	"github.com/dmitrijs2005/eduportal/internal/timex"
)

// JsonConfig is the on-disk form. Pointer fields distinguish "absent" from
// zero values so a partial file only overrides what it names.
type JsonConfig struct {
	StoragePath      *string         `json:"storage_path"`
	SimulatedLatency *timex.Duration `json:"simulated_latency"`
	DigestAlgorithm  *string         `json:"digest_algorithm"`
	VerifyPassword   *bool           `json:"verify_password"`
	LogLevel         *string         `json:"log_level"`
}

// parseJson overlays cfg with the file named by -c/-config, if present.
func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigFilePath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if jc.StoragePath != nil {
		cfg.StoragePath = *jc.StoragePath
	}
	if jc.SimulatedLatency != nil {
		cfg.SimulatedLatency = jc.SimulatedLatency.Duration
	}
	if jc.DigestAlgorithm != nil {
		cfg.DigestAlgorithm = *jc.DigestAlgorithm
	}
	if jc.VerifyPassword != nil {
		cfg.VerifyPassword = *jc.VerifyPassword
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	return nil
}
