package auth

import (
	"context"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"

	"github.com/minhtan/hostpanel/pkg/plog"
	"github.com/minhtan/hostpanel/pkg/psdk"
)

type principalKeyType struct{}

var principalKey principalKeyType

// Middleware validates a bearer token when present and attaches the decoded
// principal to the request context. It never rejects by itself; routes that
// require authentication check PrincipalFrom.
func (s *Service) Middleware() func(ctx huma.Context, next func(huma.Context)) {
	logger := plog.NewDefault()

	return func(ctx huma.Context, next func(huma.Context)) {
		r, _ := humachi.Unwrap(ctx)

		authHeader := r.Header.Get("Authorization")
		if authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && parts[0] == "Bearer" {
				if user, err := s.ValidateToken(parts[1]); err == nil {
					logger.Debug("authenticated user", "email", user.Email)
					ctx = huma.WithValue(ctx, principalKey, user)
				} else {
					logger.Warn("invalid token", "error", err)
				}
			}
		}

		next(ctx)
	}
}

// PrincipalFrom returns the authenticated user's claims, or nil when the
// request carried no valid token.
func PrincipalFrom(ctx context.Context) *psdk.UserClaims {
	if uc, ok := ctx.Value(principalKey).(*psdk.UserClaims); ok {
		return uc
	}
	return nil
}
