package services

import (
	"time"

	"github.com/minhtan/hostpanel/pkg/kv"
	"github.com/minhtan/hostpanel/pkg/papi/config"
	"github.com/minhtan/hostpanel/pkg/papi/services/auth"
	"github.com/minhtan/hostpanel/pkg/papi/services/content"
)

// Services bundles everything the route layer needs.
type Services struct {
	Auth    *auth.Service
	Content *content.Store
}

// New wires the services from config over the given storage backend and
// seeds the admin account.
func New(cfg *config.EnvConfig, store kv.Store) (*Services, error) {
	authSvc := auth.NewService(auth.Config{
		Secret:          []byte(cfg.AuthSecret),
		Issuer:          cfg.Issuer,
		AccessTokenTTL:  time.Duration(cfg.AccessTokenTTL) * time.Second,
		RefreshTokenTTL: time.Duration(cfg.RefreshTokenTTL) * time.Second,
	}, store)

	if err := authSvc.SeedUser("1", cfg.AdminName, cfg.AdminEmail, "admin", cfg.AdminPassword); err != nil {
		return nil, err
	}

	return &Services{
		Auth:    authSvc,
		Content: content.NewStore(store),
	}, nil
}
