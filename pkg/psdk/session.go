package psdk

import (
	"sync"
	"time"

	"github.com/minhtan/hostpanel/pkg/psdk/credstore"
)

// Session exposes the current authentication state derived purely from the
// access token. It never issues network calls: login and logout only touch
// the credential store and the decoded claims.
type Session struct {
	creds credstore.Store

	mu      sync.RWMutex
	current *UserClaims

	// now can be overridden in tests.
	now func() time.Time
}

// NewSession builds a Session over the given store and performs the one-time
// initial decode: if an access token is already persisted it is decoded (and
// discarded when expired) before the session is considered loaded.
func NewSession(creds credstore.Store) *Session {
	s := &Session{creds: creds, now: time.Now}
	if token, ok := creds.Get(credstore.AccessTokenKey); ok {
		s.DecodeAndSet(token)
	}
	return s
}

// DecodeAndSet parses the token's claims and installs them as the current
// session. An unparsable token or one whose embedded expiry is now-or-past is
// removed from the store and clears the session. Reports whether a session
// was established.
func (s *Session) DecodeAndSet(token string) bool {
	uc, err := FromToken(token)
	if err != nil || uc.ExpiredAt(s.now()) {
		s.creds.Remove(credstore.AccessTokenKey)
		s.mu.Lock()
		s.current = nil
		s.mu.Unlock()
		return false
	}

	s.mu.Lock()
	s.current = uc
	s.mu.Unlock()
	return true
}

// Login persists both tokens and decodes the access token into session state.
// The refresh token is optional: some deployments only hand out an access
// token.
func (s *Session) Login(accessToken, refreshToken string) error {
	if err := s.creds.Set(credstore.AccessTokenKey, accessToken,
		credstore.DefaultOptions(credstore.AccessTokenKey)); err != nil {
		return err
	}
	if refreshToken != "" {
		if err := s.creds.Set(credstore.RefreshTokenKey, refreshToken,
			credstore.DefaultOptions(credstore.RefreshTokenKey)); err != nil {
			return err
		}
	}
	s.DecodeAndSet(accessToken)
	return nil
}

// Logout removes both tokens and clears the session immediately. There is no
// server round-trip.
func (s *Session) Logout() {
	s.creds.Remove(credstore.AccessTokenKey)
	s.creds.Remove(credstore.RefreshTokenKey)
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
}

func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current != nil
}

// Current returns a copy of the decoded claims, or nil when no session is
// present.
func (s *Session) Current() *UserClaims {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	uc := *s.current
	return &uc
}

// Reload re-derives the session from whatever access token is currently in
// the store. Useful after the gateway swapped tokens underneath.
func (s *Session) Reload() bool {
	token, ok := s.creds.Get(credstore.AccessTokenKey)
	if !ok {
		s.mu.Lock()
		s.current = nil
		s.mu.Unlock()
		return false
	}
	return s.DecodeAndSet(token)
}
