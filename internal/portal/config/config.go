package config

import "time"

// MemoryStoragePath selects the in-memory storage instead of a file.
const MemoryStoragePath = ":memory:"

// Config holds runtime settings for the portal client.
type Config struct {
	StoragePath      string
	SimulatedLatency time.Duration
	DigestAlgorithm  string
	VerifyPassword   bool
	LogLevel         string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.StoragePath = "data/portal.db"
	c.SimulatedLatency = 300 * time.Millisecond
	c.DigestAlgorithm = "sha256"
	c.VerifyPassword = false
	c.LogLevel = "info"
}

// LoadConfig builds a Config from defaults, then the JSON file named in args
// (if any), then the flags in args. args excludes the program name.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}
