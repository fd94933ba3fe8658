package routes

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/minhtan/hostpanel/pkg/papi/schemas"
	"github.com/minhtan/hostpanel/pkg/papi/services/auth"
)

// LoginInput is the payload for the login operation.
type LoginInput struct {
	Body schemas.LoginRequest
}

// LoginOutput carries the token pair and a user summary.
type LoginOutput struct {
	Body schemas.LoginResponseBody
}

// RefreshInput is the payload for minting a new access token.
type RefreshInput struct {
	Body schemas.RefreshRequest
}

// RefreshOutput carries the new access token.
type RefreshOutput struct {
	Body schemas.RefreshResponseBody
}

// MeOutput carries the verified identity of the caller.
type MeOutput struct {
	Body schemas.MeResponseBody
}

func RegisterAuth(api huma.API, svc *auth.Service) {
	huma.Register(api, huma.Operation{
		OperationID: "login",
		Method:      http.MethodPost,
		Path:        "/users/login",
		Summary:     "Log in with email and password",
		Tags:        []string{TagAuth.String()},
	}, func(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
		user, access, refresh, err := svc.Login(ctx, input.Body.Email, input.Body.Password)
		if err != nil {
			if errors.Is(err, auth.ErrInvalidCredentials) {
				return nil, huma.Error401Unauthorized("invalid email or password")
			}
			return nil, huma.Error500InternalServerError("login failed")
		}

		resp := &LoginOutput{}
		resp.Body.Data = schemas.TokenData{AccessToken: access, RefreshToken: refresh}
		resp.Body.User = schemas.LoginUser{ID: user.ID, Name: user.Name, Email: user.Email}
		return resp, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "refresh-token",
		Method:      http.MethodPost,
		Path:        "/users/refresh-token",
		Summary:     "Exchange a refresh token for a new access token",
		Tags:        []string{TagAuth.String()},
	}, func(ctx context.Context, input *RefreshInput) (*RefreshOutput, error) {
		if input.Body.RefreshToken == "" {
			return nil, huma.Error400BadRequest("refreshToken is required")
		}
		access, err := svc.Refresh(ctx, input.Body.RefreshToken)
		if err != nil {
			if errors.Is(err, auth.ErrRefreshNotFound) {
				return nil, huma.Error401Unauthorized("refresh token is invalid or expired")
			}
			return nil, huma.Error500InternalServerError("refresh failed")
		}

		resp := &RefreshOutput{}
		resp.Body.Data = schemas.TokenData{AccessToken: access}
		return resp, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "me",
		Method:      http.MethodGet,
		Path:        "/users/me",
		Summary:     "Show the authenticated user",
		Tags:        []string{TagAuth.String()},
		Security:    BearerAuth,
	}, func(ctx context.Context, _ *struct{}) (*MeOutput, error) {
		uc := auth.PrincipalFrom(ctx)
		if uc == nil {
			return nil, huma.Error401Unauthorized("Authentication required")
		}

		resp := &MeOutput{}
		resp.Body.Success = true
		resp.Body.Data = schemas.Me{ID: uc.ID, Name: uc.Name, Email: uc.Email, Role: uc.Role}
		return resp, nil
	})
}
