// Package auth issues and validates the tokens the admin console lives on:
// short-lived HS256 access tokens carrying the user claims, and opaque
// refresh tokens persisted in the kv store with a bounded lifetime.
package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/minhtan/hostpanel/pkg/kv"
	"github.com/minhtan/hostpanel/pkg/psdk"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid token")
	ErrRefreshNotFound    = errors.New("refresh token unknown or expired")
)

const refreshKeyPrefix = "refresh:"

// User is an account that may log in to the console.
type User struct {
	ID           string
	Name         string
	Email        string
	Role         string
	PasswordHash []byte
}

type Config struct {
	Secret          []byte
	Issuer          string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
}

type Service struct {
	cfg   Config
	store kv.Store

	// users is the static account set; the console has a handful of admin
	// accounts seeded at startup, not self-service registration.
	users map[string]User
}

func NewService(cfg Config, store kv.Store) *Service {
	return &Service{cfg: cfg, store: store, users: make(map[string]User)}
}

// SeedUser registers an account, hashing the given password.
func (s *Service) SeedUser(id, name, email, role, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	s.users[email] = User{ID: id, Name: name, Email: email, Role: role, PasswordHash: hash}
	return nil
}

// Login verifies the credentials and returns a fresh token pair.
func (s *Service) Login(ctx context.Context, email, password string) (User, string, string, error) {
	user, ok := s.users[email]
	if !ok {
		// Burn comparable time so missing accounts are not distinguishable.
		_ = bcrypt.CompareHashAndPassword([]byte("$2a$10$0123456789012345678901"), []byte(password))
		return User{}, "", "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return User{}, "", "", ErrInvalidCredentials
	}

	access, err := s.mintAccessToken(user)
	if err != nil {
		return User{}, "", "", err
	}
	refresh, err := s.mintRefreshToken(ctx, user)
	if err != nil {
		return User{}, "", "", err
	}
	return user, access, refresh, nil
}

// Refresh validates the opaque refresh token and mints a new access token.
// The refresh token itself stays valid until its stored lifetime runs out.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (string, error) {
	data, err := s.store.Get(ctx, refreshKeyPrefix+refreshToken)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return "", ErrRefreshNotFound
		}
		return "", err
	}
	var user User
	if err := json.Unmarshal(data, &user); err != nil {
		return "", fmt.Errorf("corrupt refresh record: %w", err)
	}
	return s.mintAccessToken(user)
}

// Revoke drops a refresh token. Unknown tokens are a no-op.
func (s *Service) Revoke(ctx context.Context, refreshToken string) error {
	return s.store.Delete(ctx, refreshKeyPrefix+refreshToken)
}

// ValidateToken checks an access token's signature and expiry and returns its
// claims.
func (s *Service) ValidateToken(tokenStr string) (*psdk.UserClaims, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, ErrInvalidToken
		}
		return s.cfg.Secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	mc, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return psdk.FromMapClaims(mc)
}

func (s *Service) mintAccessToken(user User) (string, error) {
	now := time.Now()
	claims := psdk.ToClaims(&psdk.UserClaims{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role,
		Iss:   s.cfg.Issuer,
		Iat:   now.Unix(),
		Exp:   now.Add(s.cfg.AccessTokenTTL).Unix(),
	})
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.cfg.Secret)
}

func (s *Service) mintRefreshToken(ctx context.Context, user User) (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	refresh := base64.RawURLEncoding.EncodeToString(b)

	record, err := json.Marshal(user)
	if err != nil {
		return "", err
	}
	if err := s.store.Set(ctx, refreshKeyPrefix+refresh, record, s.cfg.RefreshTokenTTL); err != nil {
		return "", err
	}
	return refresh, nil
}
