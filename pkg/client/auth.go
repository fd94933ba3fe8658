package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/minhtan/hostpanel/pkg/papi/schemas"
	"github.com/minhtan/hostpanel/pkg/psdk"
	"github.com/minhtan/hostpanel/pkg/psdk/perr"
)

// Login exchanges credentials for a token pair, persists both tokens through
// the credential store, and establishes the session. The response is read
// through the configured token field names so both the current nested shape
// and the legacy flat one work.
func (c *Client) Login(ctx context.Context, email, password string) (*schemas.LoginUser, error) {
	var raw json.RawMessage
	req := schemas.LoginRequest{Email: email, Password: password}
	if err := c.sdk.DoJSON(ctx, http.MethodPost, "/users/login", req, &raw); err != nil {
		return nil, err
	}

	access, refresh, err := psdk.ParseTokenPair(raw, c.sdk.TokenFields())
	if err != nil || access == "" {
		return nil, perr.New(perr.CodeUnknown, errors.New("login response missing access token"))
	}

	if err := c.sdk.Session().Login(access, refresh); err != nil {
		return nil, err
	}

	var body struct {
		User schemas.LoginUser `json:"user"`
	}
	// The user block is informational; older deployments omit it.
	_ = json.Unmarshal(raw, &body)
	return &body.User, nil
}

// Logout drops both tokens and clears the session locally. The API has no
// logout endpoint; invalidation is purely client-side.
func (c *Client) Logout() {
	c.sdk.Session().Logout()
}

// Me asks the API who the presented access token belongs to. Unlike
// Session().Current() this is server-verified.
func (c *Client) Me(ctx context.Context) (*schemas.Me, error) {
	var resp schemas.MeResponseBody
	if err := c.sdk.DoJSON(ctx, http.MethodGet, "/users/me", nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}
