package services

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// AccessGuard checks the shared access code sent with every submission.
type AccessGuard struct {
	code []byte
	hash []byte
}

// NewAccessGuard builds a guard for a plaintext code, or for a bcrypt hash when hash is set.
func NewAccessGuard(code, hash string) (*AccessGuard, error) {
	if hash != "" {
		if _, err := bcrypt.Cost([]byte(hash)); err != nil {
			return nil, fmt.Errorf("invalid ACCESS_CODE_HASH: %w", err)
		}
		return &AccessGuard{hash: []byte(hash)}, nil
	}
	return &AccessGuard{code: []byte(code)}, nil
}

// Allow reports whether code matches exactly. An empty code never matches.
func (g *AccessGuard) Allow(code string) bool {
	if code == "" {
		return false
	}
	if g.hash != nil {
		return bcrypt.CompareHashAndPassword(g.hash, []byte(code)) == nil
	}
	if len(g.code) == 0 {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(code), g.code) == 1
}
