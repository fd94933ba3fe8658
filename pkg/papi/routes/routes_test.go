package routes_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/minhtan/hostpanel/pkg/kv"
	"github.com/minhtan/hostpanel/pkg/papi"
	"github.com/minhtan/hostpanel/pkg/papi/config"
	"github.com/minhtan/hostpanel/pkg/papi/routes"
	"github.com/minhtan/hostpanel/pkg/papi/schemas"
	"github.com/minhtan/hostpanel/pkg/papi/services"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	svcs, err := services.New(&config.EnvConfig{
		AuthSecret:      "0123456789abcdef0123456789abcdef",
		Issuer:          "hostpanel-test",
		AccessTokenTTL:  3600,
		RefreshTokenTTL: 86400,
		AdminEmail:      "admin@example.com",
		AdminPassword:   "hunter22",
		AdminName:       "Admin",
	}, kv.NewMemoryStore())
	if err != nil {
		t.Fatalf("services.New failed: %v", err)
	}

	api := papi.NewApi()
	routes.RegisterAll(api.Api, svcs)

	srv := httptest.NewServer(api.Router)
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url, token string, in, out any) int {
	t.Helper()

	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, url, body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()

	if out != nil {
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			t.Fatalf("read response: %v", err)
		}
		if err := json.Unmarshal(data, out); err != nil {
			t.Fatalf("decode response %s: %v", data, err)
		}
	}
	return resp.StatusCode
}

func login(t *testing.T, srv *httptest.Server) (access, refresh string) {
	t.Helper()

	var resp schemas.LoginResponseBody
	code := doJSON(t, http.MethodPost, srv.URL+"/users/login", "",
		schemas.LoginRequest{Email: "admin@example.com", Password: "hunter22"}, &resp)
	if code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d", code)
	}
	if resp.Data.AccessToken == "" || resp.Data.RefreshToken == "" {
		t.Fatalf("login: expected a token pair, got %+v", resp.Data)
	}
	return resp.Data.AccessToken, resp.Data.RefreshToken
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	srv := newTestServer(t)

	code := doJSON(t, http.MethodPost, srv.URL+"/users/login", "",
		schemas.LoginRequest{Email: "admin@example.com", Password: "wrong"}, nil)
	if code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", code)
	}
}

func TestRefreshTokenEndpoint(t *testing.T) {
	srv := newTestServer(t)
	_, refresh := login(t, srv)

	var resp schemas.RefreshResponseBody
	code := doJSON(t, http.MethodPost, srv.URL+"/users/refresh-token", "",
		schemas.RefreshRequest{RefreshToken: refresh}, &resp)
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if resp.Data.AccessToken == "" {
		t.Fatal("expected a new access token")
	}

	// The minted token must be accepted on a protected operation.
	var created struct {
		Data schemas.Category `json:"data"`
	}
	code = doJSON(t, http.MethodPost, srv.URL+"/categories", resp.Data.AccessToken,
		schemas.CreateCategoryRequest{Name: "VPS"}, &created)
	if code != http.StatusOK {
		t.Fatalf("create with refreshed token: expected 200, got %d", code)
	}
}

func TestRefreshTokenRejectsUnknown(t *testing.T) {
	srv := newTestServer(t)

	code := doJSON(t, http.MethodPost, srv.URL+"/users/refresh-token", "",
		schemas.RefreshRequest{RefreshToken: "bogus"}, nil)
	if code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", code)
	}
}

func TestWritesRequireAuthentication(t *testing.T) {
	srv := newTestServer(t)

	code := doJSON(t, http.MethodPost, srv.URL+"/categories", "",
		schemas.CreateCategoryRequest{Name: "VPS"}, nil)
	if code != http.StatusUnauthorized {
		t.Errorf("unauthenticated create: expected 401, got %d", code)
	}

	code = doJSON(t, http.MethodPost, srv.URL+"/categories", "not-a-token",
		schemas.CreateCategoryRequest{Name: "VPS"}, nil)
	if code != http.StatusUnauthorized {
		t.Errorf("garbage token create: expected 401, got %d", code)
	}
}

func TestCategoryLifecycle(t *testing.T) {
	srv := newTestServer(t)
	access, _ := login(t, srv)

	var created struct {
		Success bool             `json:"success"`
		Data    schemas.Category `json:"data"`
	}
	code := doJSON(t, http.MethodPost, srv.URL+"/categories", access,
		schemas.CreateCategoryRequest{Name: "GPU servers", Description: "With cards"}, &created)
	if code != http.StatusOK {
		t.Fatalf("create: expected 200, got %d", code)
	}
	if !created.Success || created.Data.ID == "" {
		t.Fatalf("create: unexpected body %+v", created)
	}

	// Reads are public.
	var listed struct {
		Data []schemas.Category `json:"data"`
	}
	if code := doJSON(t, http.MethodGet, srv.URL+"/categories", "", nil, &listed); code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", code)
	}
	if len(listed.Data) != 1 || listed.Data[0].Name != "GPU servers" {
		t.Fatalf("list: unexpected body %+v", listed)
	}

	var updated struct {
		Data schemas.Category `json:"data"`
	}
	code = doJSON(t, http.MethodPut, srv.URL+"/categories/"+created.Data.ID, access,
		schemas.UpdateCategoryRequest{Name: "GPU hosts"}, &updated)
	if code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d", code)
	}
	if updated.Data.Name != "GPU hosts" {
		t.Errorf("update: expected renamed record, got %+v", updated.Data)
	}
	if updated.Data.Description != "With cards" {
		t.Errorf("update: expected untouched description, got %+v", updated.Data)
	}

	if code := doJSON(t, http.MethodDelete, srv.URL+"/categories/"+created.Data.ID, access, nil, nil); code != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d", code)
	}
	if code := doJSON(t, http.MethodGet, srv.URL+"/categories/"+created.Data.ID, "", nil, nil); code != http.StatusNotFound {
		t.Errorf("get after delete: expected 404, got %d", code)
	}
}

func TestPostsUseBareShapesAndIntIDs(t *testing.T) {
	srv := newTestServer(t)
	access, _ := login(t, srv)

	var first schemas.Post
	code := doJSON(t, http.MethodPost, srv.URL+"/posts", access,
		schemas.CreatePostRequest{Name: "Starter", Content: "Entry plan", Price: 5}, &first)
	if code != http.StatusOK {
		t.Fatalf("create: expected 200, got %d", code)
	}
	if first.ID != 1 {
		t.Errorf("expected first post id 1, got %d", first.ID)
	}

	var second schemas.Post
	doJSON(t, http.MethodPost, srv.URL+"/posts", access,
		schemas.CreatePostRequest{Name: "Pro", Content: "Bigger plan", Price: 20}, &second)
	if second.ID != 2 {
		t.Errorf("expected second post id 2, got %d", second.ID)
	}

	// The list is a bare array, not an envelope.
	var posts []schemas.Post
	if code := doJSON(t, http.MethodGet, srv.URL+"/posts", "", nil, &posts); code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", code)
	}
	if len(posts) != 2 {
		t.Fatalf("expected 2 posts, got %+v", posts)
	}
}

func TestMe(t *testing.T) {
	srv := newTestServer(t)

	if code := doJSON(t, http.MethodGet, srv.URL+"/users/me", "", nil, nil); code != http.StatusUnauthorized {
		t.Errorf("me without token: expected 401, got %d", code)
	}

	access, _ := login(t, srv)
	var resp schemas.MeResponseBody
	if code := doJSON(t, http.MethodGet, srv.URL+"/users/me", access, nil, &resp); code != http.StatusOK {
		t.Fatalf("me: expected 200, got %d", code)
	}
	if resp.Data.Email != "admin@example.com" || resp.Data.Role != "admin" {
		t.Errorf("unexpected identity %+v", resp.Data)
	}
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	var body struct {
		Status string `json:"status"`
	}
	if code := doJSON(t, http.MethodGet, srv.URL+"/health", "", nil, &body); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if body.Status != "ok" {
		t.Errorf("expected status ok, got %q", body.Status)
	}
}
