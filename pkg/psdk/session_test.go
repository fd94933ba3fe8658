package psdk

import (
	"testing"
	"time"

	"github.com/minhtan/hostpanel/pkg/psdk/credstore"
)

func TestSessionLoginLogoutRoundTrip(t *testing.T) {
	creds := credstore.NewMemory()
	s := NewSession(creds)

	access := signedToken(t, &UserClaims{
		ID:    "7",
		Email: "admin@example.com",
		Exp:   time.Now().Add(time.Hour).Unix(),
	})

	if err := s.Login(access, "R1"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	if got, ok := creds.Get(credstore.AccessTokenKey); !ok || got != access {
		t.Fatalf("access token not persisted: %q (present=%v)", got, ok)
	}
	if got, ok := creds.Get(credstore.RefreshTokenKey); !ok || got != "R1" {
		t.Fatalf("refresh token not persisted: %q (present=%v)", got, ok)
	}
	if !s.IsAuthenticated() {
		t.Fatal("expected authenticated session after login")
	}
	if cur := s.Current(); cur == nil || cur.Email != "admin@example.com" {
		t.Fatalf("unexpected session claims: %+v", cur)
	}

	s.Logout()
	if _, ok := creds.Get(credstore.AccessTokenKey); ok {
		t.Fatal("access token should be removed on logout")
	}
	if _, ok := creds.Get(credstore.RefreshTokenKey); ok {
		t.Fatal("refresh token should be removed on logout")
	}
	if s.IsAuthenticated() {
		t.Fatal("expected cleared session after logout")
	}
}

func TestSessionDecodeAndSetIdempotent(t *testing.T) {
	s := NewSession(credstore.NewMemory())
	access := signedToken(t, &UserClaims{ID: "7", Exp: time.Now().Add(time.Hour).Unix()})

	if !s.DecodeAndSet(access) {
		t.Fatal("first DecodeAndSet should succeed")
	}
	first := s.Current()

	if !s.DecodeAndSet(access) {
		t.Fatal("second DecodeAndSet should succeed")
	}
	second := s.Current()

	if *first != *second {
		t.Fatalf("DecodeAndSet not idempotent: %+v vs %+v", first, second)
	}
}

func TestSessionRejectsExpiredToken(t *testing.T) {
	creds := credstore.NewMemory()
	s := NewSession(creds)

	expired := signedToken(t, &UserClaims{ID: "7", Exp: time.Now().Add(-time.Minute).Unix()})
	if err := creds.Set(credstore.AccessTokenKey, expired, credstore.Options{}); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	if s.DecodeAndSet(expired) {
		t.Fatal("expired token must be rejected")
	}
	if s.IsAuthenticated() {
		t.Fatal("session must be cleared for expired token")
	}
	if _, ok := creds.Get(credstore.AccessTokenKey); ok {
		t.Fatal("expired token must be removed from the store")
	}
}

func TestSessionRejectsTokenExpiringNow(t *testing.T) {
	s := NewSession(credstore.NewMemory())
	now := time.Now()
	s.now = func() time.Time { return now }

	boundary := signedToken(t, &UserClaims{ID: "7", Exp: now.Unix()})
	if s.DecodeAndSet(boundary) {
		t.Fatal("token expiring exactly now must be rejected")
	}
}

func TestSessionRejectsMalformedToken(t *testing.T) {
	creds := credstore.NewMemory()
	s := NewSession(creds)
	if err := creds.Set(credstore.AccessTokenKey, "garbage", credstore.Options{}); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	if s.DecodeAndSet("garbage") {
		t.Fatal("malformed token must be rejected")
	}
	if _, ok := creds.Get(credstore.AccessTokenKey); ok {
		t.Fatal("malformed token must be removed from the store")
	}
}

func TestSessionInitialLoad(t *testing.T) {
	creds := credstore.NewMemory()
	access := signedToken(t, &UserClaims{ID: "9", Exp: time.Now().Add(time.Hour).Unix()})
	if err := creds.Set(credstore.AccessTokenKey, access, credstore.Options{}); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	s := NewSession(creds)
	if !s.IsAuthenticated() {
		t.Fatal("session should load from a stored token on construction")
	}
	if cur := s.Current(); cur.ID != "9" {
		t.Fatalf("unexpected claims: %+v", cur)
	}
}
