// Package credstore provides durable client-side storage for the access and
// refresh tokens. It is an explicit, injectable abstraction so the rest of the
// SDK never reaches for ambient global state and tests can swap in a memory
// store.
package credstore

import "net/http"

// Well-known key names used by the SDK.
const (
	AccessTokenKey  = "access_token"
	RefreshTokenKey = "refresh_token"
)

// Default storage lifetimes in days. These bound how long a value survives in
// the store; the token's own embedded expiry claim is shorter and stays
// authoritative for usability decisions.
const (
	AccessTokenLifetimeDays  = 7
	RefreshTokenLifetimeDays = 30
)

// Options carry cookie-style attributes for a stored value.
type Options struct {
	// LifetimeDays bounds the storage lifetime. Zero means the key-specific
	// default (7 days for access_token, 30 for refresh_token).
	LifetimeDays int
	Path         string
	SameSite     http.SameSite
	Secure       bool
}

// DefaultOptions returns the attribute set the SDK uses for the given key.
func DefaultOptions(name string) Options {
	days := AccessTokenLifetimeDays
	if name == RefreshTokenKey {
		days = RefreshTokenLifetimeDays
	}
	return Options{
		LifetimeDays: days,
		Path:         "/",
		SameSite:     http.SameSiteLaxMode,
	}
}

// Store is the minimal interface the SDK needs. Writes are synchronous and
// immediately visible to subsequent reads within the same process. Get never
// errors: a missing or expired value simply reports absent. Remove is
// idempotent.
type Store interface {
	Get(name string) (string, bool)
	Set(name, value string, opts Options) error
	Remove(name string)
}
