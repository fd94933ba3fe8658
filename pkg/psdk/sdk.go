package psdk

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/minhtan/hostpanel/pkg/psdk/credstore"
	"github.com/minhtan/hostpanel/pkg/psdk/perr"
)

const (
	// DefaultTimeout bounds every request, including the refresh call and the
	// replay. Timeouts are surfaced to the caller, never retried.
	DefaultTimeout = 10 * time.Second

	refreshPath = "/users/refresh-token"
)

// retryState tracks whether a logical request has already been through the
// refresh-and-retry cycle. It is passed explicitly through the call chain so
// the one-shot guarantee is visible in the code rather than hidden in a
// mutated request flag.
type retryState int

const (
	notRetried retryState = iota
	retriedOnce
)

// Sdk is the authenticated request gateway: it attaches the bearer token to
// every outgoing call, refreshes it once on 401/403, and replays the original
// request so callers are shielded from the intermediate failure.
type Sdk struct {
	BaseURL string

	httpc   *http.Client
	creds   credstore.Store
	session *Session
	fields  TokenFields

	// refreshGroup collapses concurrent refresh attempts into one in-flight
	// call; N simultaneous 401s produce a single refresh request.
	refreshGroup singleflight.Group

	// onSessionInvalid fires when the gateway decides the session cannot be
	// recovered (no refresh token, or the refresh itself failed). The
	// surrounding application decides what "go to login" means.
	onSessionInvalid func()
}

// Option customizes an Sdk during construction.
type Option func(*Sdk)

func WithCredStore(s credstore.Store) Option {
	return func(sdk *Sdk) { sdk.creds = s }
}

func WithHTTPClient(c *http.Client) Option {
	return func(sdk *Sdk) { sdk.httpc = c }
}

func WithTimeout(d time.Duration) Option {
	return func(sdk *Sdk) { sdk.httpc.Timeout = d }
}

func WithTokenFields(f TokenFields) Option {
	return func(sdk *Sdk) { sdk.fields = f }
}

// WithSessionInvalidated registers the callback fired on unrecoverable
// authentication failure.
func WithSessionInvalidated(fn func()) Option {
	return func(sdk *Sdk) { sdk.onSessionInvalid = fn }
}

// NewSdk returns a gateway for the given base URL. Without options it stores
// credentials in the cookie file under the user config dir.
func NewSdk(baseURL string, opts ...Option) (*Sdk, error) {
	if baseURL == "" {
		return nil, errors.New("base URL is required")
	}
	sdk := &Sdk{
		BaseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: DefaultTimeout},
		fields:  DefaultTokenFields(),
	}
	for _, opt := range opts {
		opt(sdk)
	}
	if sdk.creds == nil {
		sdk.creds = credstore.NewCookieFile(credstore.DefaultCookieFilePath())
	}
	sdk.session = NewSession(sdk.creds)
	return sdk, nil
}

// NewSdkFromConfig builds a gateway from a loaded Config, selecting the
// credential store backend it names.
func NewSdkFromConfig(cfg *Config, opts ...Option) (*Sdk, error) {
	var store credstore.Store
	switch cfg.CredStore {
	case "keyring":
		store = credstore.NewKeyring(cfg.BaseURL)
	case "memory":
		store = credstore.NewMemory()
	default:
		store = credstore.NewCookieFile(credstore.DefaultCookieFilePath())
	}
	timeout := DefaultTimeout
	if cfg.Timeout > 0 {
		timeout = time.Duration(cfg.Timeout) * time.Second
	}
	all := append([]Option{
		WithCredStore(store),
		WithHTTPClient(&http.Client{Timeout: timeout}),
	}, opts...)
	return NewSdk(cfg.BaseURL, all...)
}

func (s *Sdk) Session() *Session        { return s.session }
func (s *Sdk) Creds() credstore.Store   { return s.creds }
func (s *Sdk) TokenFields() TokenFields { return s.fields }

// StatusError reports a non-2xx response that the gateway did not (or could
// not) recover from.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("server returned status %d: %s", e.StatusCode, e.Message)
}

// DoJSON performs an authenticated JSON round trip. in may be nil for
// body-less requests; out may be nil when the response body is irrelevant.
// On non-2xx it returns a StatusError carrying the envelope message, wrapped
// with an auth code when the failure was 401/403.
func (s *Sdk) DoJSON(ctx context.Context, method, path string, in, out any) error {
	var body []byte
	if in != nil {
		var err error
		body, err = json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
	}

	resp, err := s.do(ctx, method, s.BaseURL+path, body, notRetried)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return perr.New(perr.CodeNetwork, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		serr := &StatusError{StatusCode: resp.StatusCode, Message: envelopeMessage(data)}
		if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
			return perr.New(perr.CodeUnauthorized, serr)
		}
		return serr
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decoding response body: %w", err)
		}
	}
	return nil
}

// do issues one attempt of the logical request. The retry state is threaded
// through explicitly: a 401/403 on a notRetried request triggers exactly one
// refresh-and-replay; on a retriedOnce request the response propagates
// unchanged.
func (s *Sdk) do(ctx context.Context, method, url string, body []byte, state retryState) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if err := s.attachToken(ctx, req, state); err != nil {
		return nil, err
	}

	resp, err := s.httpc.Do(req)
	if err != nil {
		return nil, classifyTransportError(err)
	}

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		if state == retriedOnce {
			return resp, nil
		}
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		if err := s.refresh(ctx); err != nil {
			s.invalidateSession()
			return nil, err
		}
		return s.do(ctx, method, url, body, retriedOnce)
	}

	return resp, nil
}

// attachToken sets the Authorization header from the credential store. A
// request without a stored token goes out unauthenticated. A stored token
// whose embedded expiry has passed is refreshed before first use; the
// replayed request skips this check since the refresh already happened.
func (s *Sdk) attachToken(ctx context.Context, req *http.Request, state retryState) error {
	token, ok := s.creds.Get(credstore.AccessTokenKey)
	if !ok {
		return nil
	}

	if state == notRetried {
		// An undecodable token is sent as-is; the server's verdict drives the
		// reactive path. Only a decodable, provably expired token refreshes
		// ahead of time.
		if expired, err := IsTokenExpired(token, 0); err == nil && expired {
			if err := s.refresh(ctx); err != nil {
				s.invalidateSession()
				return err
			}
			if fresh, ok := s.creds.Get(credstore.AccessTokenKey); ok {
				token = fresh
			}
		}
	}

	req.Header.Set("Authorization", "Bearer "+token)
	return nil
}

// refresh exchanges the refresh token for a new access token. All concurrent
// callers share one in-flight refresh; each of them observes the shared
// outcome.
func (s *Sdk) refresh(ctx context.Context) error {
	_, err, _ := s.refreshGroup.Do("refresh", func() (any, error) {
		return nil, s.refreshOnce(ctx)
	})
	return err
}

func (s *Sdk) refreshOnce(ctx context.Context) error {
	refreshToken, ok := s.creds.Get(credstore.RefreshTokenKey)
	if !ok {
		return perr.New(perr.CodeUnauthorized, errors.New("no refresh token available"))
	}

	payload, err := json.Marshal(map[string]string{"refreshToken": refreshToken})
	if err != nil {
		return perr.New(perr.CodeUnknown, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.BaseURL+refreshPath, bytes.NewReader(payload))
	if err != nil {
		return perr.New(perr.CodeUnknown, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpc.Do(req)
	if err != nil {
		return perr.New(perr.CodeRefreshFailed, classifyTransportError(err))
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return perr.New(perr.CodeRefreshFailed, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return perr.New(perr.CodeRefreshFailed,
			&StatusError{StatusCode: resp.StatusCode, Message: envelopeMessage(data)})
	}

	access, rotated, err := ParseTokenPair(data, s.fields)
	if err != nil || access == "" {
		return perr.New(perr.CodeRefreshFailed, fmt.Errorf("refresh response missing access token"))
	}

	if err := s.creds.Set(credstore.AccessTokenKey, access,
		credstore.DefaultOptions(credstore.AccessTokenKey)); err != nil {
		return perr.New(perr.CodeUnknown, err)
	}
	// Servers that rotate refresh tokens hand a new one back; keep it.
	if rotated != "" {
		if err := s.creds.Set(credstore.RefreshTokenKey, rotated,
			credstore.DefaultOptions(credstore.RefreshTokenKey)); err != nil {
			return perr.New(perr.CodeUnknown, err)
		}
	}

	s.session.Reload()
	return nil
}

func (s *Sdk) invalidateSession() {
	if s.onSessionInvalid != nil {
		s.onSessionInvalid()
	}
}

// classifyTransportError relabels transport failures so the caller can show
// meaningful text. Neither class is retried.
func classifyTransportError(err error) error {
	var nerr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &nerr) && nerr.Timeout()) {
		return perr.New(perr.CodeTimeout, err)
	}
	return perr.New(perr.CodeNetwork, err)
}

// envelopeMessage pulls the human-readable message out of a
// {success, data, message} body, tolerating non-envelope payloads.
func envelopeMessage(data []byte) string {
	var env struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(data, &env); err != nil {
		return ""
	}
	if env.Message != "" {
		return env.Message
	}
	return env.Error
}
