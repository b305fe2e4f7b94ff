// Package config loads runtime configuration for the EduPortal terminal client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-s string   storage file path (":memory:" for a throwaway store)
//	-l int      simulated latency in milliseconds
//	-d string   digest algorithm: sha256, argon2id or bcrypt
//	-verify     check passwords of existing accounts on login
//	-v string   log level: debug, info, warn, error
//
// # JSON schema
//
// Durations accept strings like "300ms" or integer nanoseconds:
//
//	{
//	  "storage_path": "data/portal.db",
//	  "simulated_latency": "300ms",
//	  "digest_algorithm": "sha256",
//	  "verify_password": false,
//	  "log_level": "info"
//	}
package config
