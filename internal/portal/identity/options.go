package identity

import (
	"time"

	"github.com/dmitrijs2005/eduportal/internal/cryptox"
	"github.com/dmitrijs2005/eduportal/internal/logging"
)

// DefaultLatency is the simulated round trip applied to Register and
// Authenticate.
const DefaultLatency = 300 * time.Millisecond

// Option configures a Store.
type Option func(*Store)

// WithDigester selects the password digest algorithm. Defaults to SHA-256.
func WithDigester(d cryptox.Digester) Option {
	return func(s *Store) { s.digester = d }
}

// WithLogger sets the logger. Defaults to a discarding logger.
func WithLogger(l logging.Logger) Option {
	return func(s *Store) { s.log = l }
}

// WithLatency overrides the simulated round trip. Zero disables it.
func WithLatency(d time.Duration) Option {
	return func(s *Store) { s.latency = d }
}

// WithClock overrides the time source used for role identifiers.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithPasswordCheck makes Authenticate verify the password of existing
// accounts and fail with common.ErrInvalidCredentials on mismatch.
func WithPasswordCheck(enabled bool) Option {
	return func(s *Store) { s.verifyPassword = enabled }
}
