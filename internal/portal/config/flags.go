package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/eduportal/internal/flagx"
)

var ownFlags = []string{"-s", "-l", "-d", "-verify", "-v"}

// parseFlags overlays cfg with the flags it owns; see the package doc.
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("portal", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.StoragePath, "s", cfg.StoragePath, "storage file path")
	latency := fs.Int("l", int(cfg.SimulatedLatency.Milliseconds()), "simulated latency (in milliseconds)")
	fs.StringVar(&cfg.DigestAlgorithm, "d", cfg.DigestAlgorithm, "digest algorithm")
	fs.BoolVar(&cfg.VerifyPassword, "verify", cfg.VerifyPassword, "verify passwords on login")
	fs.StringVar(&cfg.LogLevel, "v", cfg.LogLevel, "log level")

	if err := fs.Parse(flagx.FilterArgs(args, ownFlags)); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	if *latency < 0 {
		return fmt.Errorf("parse flags: negative latency %d", *latency)
	}
	cfg.SimulatedLatency = time.Duration(*latency) * time.Millisecond
	return nil
}
