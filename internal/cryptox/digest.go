// Package cryptox computes and verifies one-way password digests.
//
// Three encodings are supported:
//
//	sha256    lowercase hex SHA-256 of the password bytes
//	argon2id  "argon2id$<salt hex>$<key hex>"
//	bcrypt    the standard "$2a$..." bcrypt string
package cryptox

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/eduportal/internal/common"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"
)

// Algorithm names accepted by NewDigester.
const (
	AlgorithmSHA256   = "sha256"
	AlgorithmArgon2ID = "argon2id"
	AlgorithmBcrypt   = "bcrypt"
)

const argon2SaltSize = 16

// Digester turns a password into a storable digest and checks a password
// against a digest it produced earlier.
type Digester interface {
	Digest(password []byte) (string, error)
	Verify(digest string, password []byte) bool
}

// NewDigester returns the Digester registered under name.
func NewDigester(name string) (Digester, error) {
	switch strings.ToLower(name) {
	case "", AlgorithmSHA256:
		return SHA256Digester{}, nil
	case AlgorithmArgon2ID:
		return Argon2Digester{}, nil
	case AlgorithmBcrypt:
		return BcryptDigester{Cost: bcrypt.DefaultCost}, nil
	}
	return nil, fmt.Errorf("%w: %q", common.ErrUnknownAlgorithm, name)
}

// SHA256Digester produces the lowercase hex SHA-256 digest stored in the
// account registry by default.
type SHA256Digester struct{}

func (SHA256Digester) Digest(password []byte) (string, error) {
	sum := sha256.Sum256(password)
	return hex.EncodeToString(sum[:]), nil
}

func (d SHA256Digester) Verify(digest string, password []byte) bool {
	candidate, _ := d.Digest(password)
	return subtle.ConstantTimeCompare([]byte(digest), []byte(candidate)) == 1
}

// Argon2Digester derives a 32-byte argon2id key with a random salt.
type Argon2Digester struct{}

func deriveKey(password, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, 32)
}

func (Argon2Digester) Digest(password []byte) (string, error) {
	salt := common.GenerateRandByteArray(argon2SaltSize)
	key := deriveKey(password, salt)
	return AlgorithmArgon2ID + "$" + hex.EncodeToString(salt) + "$" + hex.EncodeToString(key), nil
}

func (Argon2Digester) Verify(digest string, password []byte) bool {
	salt, key, err := parseArgon2(digest)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare(key, deriveKey(password, salt)) == 1
}

func parseArgon2(digest string) (salt, key []byte, err error) {
	parts := strings.Split(digest, "$")
	if len(parts) != 3 || parts[0] != AlgorithmArgon2ID {
		return nil, nil, common.ErrMalformedDigest
	}
	if salt, err = hex.DecodeString(parts[1]); err != nil {
		return nil, nil, fmt.Errorf("%w: salt: %v", common.ErrMalformedDigest, err)
	}
	if key, err = hex.DecodeString(parts[2]); err != nil {
		return nil, nil, fmt.Errorf("%w: key: %v", common.ErrMalformedDigest, err)
	}
	return salt, key, nil
}

// BcryptDigester hashes with bcrypt at Cost.
type BcryptDigester struct {
	Cost int
}

// Digest fails with common.ErrValidation for passwords longer than 72 bytes,
// the bcrypt input limit.
func (d BcryptDigester) Digest(password []byte) (string, error) {
	cost := d.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	b, err := bcrypt.GenerateFromPassword(password, cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", fmt.Errorf("%w: password must be at most 72 bytes", common.ErrValidation)
	}
	if err != nil {
		return "", fmt.Errorf("bcrypt: %w", err)
	}
	return string(b), nil
}

func (BcryptDigester) Verify(digest string, password []byte) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), password) == nil
}
