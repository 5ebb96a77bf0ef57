package jwtmw

import (
	"os"
	"time"
)

const (
	// EnvKeyJWTSecret is the environment variable holding the signing secret.
	// There is deliberately no compiled-in default.
	EnvKeyJWTSecret = "JWT_SECRET"

	// EnvKeyTokenTTL optionally overrides the token lifetime (Go duration syntax).
	EnvKeyTokenTTL = "TOKEN_TTL"

	// HeaderAuthToken is the header the storefront sends tokens in.
	// The legacy client uses this custom header, not Authorization: Bearer.
	HeaderAuthToken = "auth-token"

	// ContextUserID is the gin context key carrying the authenticated user id.
	ContextUserID = "userID"

	// DefaultTokenTTL is the token lifetime when TOKEN_TTL is unset.
	DefaultTokenTTL = 24 * time.Hour
)

// TokenTTL returns the configured token lifetime.
func TokenTTL() time.Duration {
	if v := os.Getenv(EnvKeyTokenTTL); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return DefaultTokenTTL
}
