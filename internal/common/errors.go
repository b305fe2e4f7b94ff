package common

import "errors"

// Sentinel errors. Callers match them with errors.Is.
var (
	// Identity errors.
	ErrValidation         = errors.New("validation error")
	ErrDuplicateAccount   = errors.New("duplicate account")
	ErrRoleNotAllowed     = errors.New("role not allowed")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Digest errors.
	ErrUnknownAlgorithm = errors.New("unknown digest algorithm")
	ErrMalformedDigest  = errors.New("malformed digest")
)
