package client_test

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/minhtan/hostpanel/pkg/client"
	"github.com/minhtan/hostpanel/pkg/kv"
	"github.com/minhtan/hostpanel/pkg/papi"
	"github.com/minhtan/hostpanel/pkg/papi/config"
	"github.com/minhtan/hostpanel/pkg/papi/routes"
	"github.com/minhtan/hostpanel/pkg/papi/schemas"
	"github.com/minhtan/hostpanel/pkg/papi/services"
	"github.com/minhtan/hostpanel/pkg/psdk"
	"github.com/minhtan/hostpanel/pkg/psdk/credstore"
	"github.com/minhtan/hostpanel/pkg/psdk/perr"
)

// newTestClient runs a real API server and points a client with in-memory
// credential storage at it.
func newTestClient(t *testing.T) *client.Client {
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

	sdk, err := psdk.NewSdk(srv.URL, psdk.WithCredStore(credstore.NewMemory()))
	if err != nil {
		t.Fatalf("NewSdk failed: %v", err)
	}
	return client.New(sdk)
}

func TestLoginEstablishesSession(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	user, err := c.Login(ctx, "admin@example.com", "hunter22")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if user.Email != "admin@example.com" {
		t.Errorf("expected user email in login response, got %+v", user)
	}

	if !c.Session().IsAuthenticated() {
		t.Fatal("expected an authenticated session after login")
	}
	uc := c.Session().Current()
	if uc.Role != "admin" {
		t.Errorf("expected decoded role admin, got %q", uc.Role)
	}
}

func TestLoginBadPassword(t *testing.T) {
	c := newTestClient(t)

	_, err := c.Login(context.Background(), "admin@example.com", "wrong")
	if !perr.IsCode(err, perr.CodeUnauthorized) {
		t.Fatalf("expected CodeUnauthorized, got %v", err)
	}
	if c.Session().IsAuthenticated() {
		t.Error("expected no session after failed login")
	}
}

func TestCategoryRoundTrip(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	if _, err := c.Login(ctx, "admin@example.com", "hunter22"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	created, err := c.CreateCategory(ctx, schemas.CreateCategoryRequest{Name: "Dedicated", Description: "Bare metal"})
	if err != nil {
		t.Fatalf("CreateCategory failed: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected an id on the created category")
	}

	got, err := c.GetCategory(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetCategory failed: %v", err)
	}
	if got.Name != "Dedicated" {
		t.Errorf("expected name Dedicated, got %q", got.Name)
	}

	updated, err := c.UpdateCategory(ctx, created.ID, schemas.UpdateCategoryRequest{Description: "Bare metal hosts"})
	if err != nil {
		t.Fatalf("UpdateCategory failed: %v", err)
	}
	if updated.Description != "Bare metal hosts" {
		t.Errorf("expected updated description, got %q", updated.Description)
	}

	if err := c.DeleteCategory(ctx, created.ID); err != nil {
		t.Fatalf("DeleteCategory failed: %v", err)
	}
	list, err := c.ListCategories(ctx)
	if err != nil {
		t.Fatalf("ListCategories failed: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("expected empty list after delete, got %+v", list)
	}
}

func TestPostsTolerateBareArray(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	if _, err := c.Login(ctx, "admin@example.com", "hunter22"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	created, err := c.CreatePost(ctx, schemas.CreatePostRequest{Name: "Starter", Content: "Entry plan", Price: 5})
	if err != nil {
		t.Fatalf("CreatePost failed: %v", err)
	}
	if created.ID != 1 {
		t.Errorf("expected post id 1, got %d", created.ID)
	}

	posts, err := c.ListPosts(ctx)
	if err != nil {
		t.Fatalf("ListPosts failed: %v", err)
	}
	if len(posts) != 1 || posts[0].Name != "Starter" {
		t.Errorf("unexpected post list %+v", posts)
	}
}

func TestMeRefreshesRejectedToken(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	if _, err := c.Login(ctx, "admin@example.com", "hunter22"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	// Clobber the access token with an opaque value the server will reject;
	// the gateway must refresh and replay without surfacing the 401.
	if err := c.Sdk().Creds().Set(credstore.AccessTokenKey, "not-a-jwt",
		credstore.DefaultOptions(credstore.AccessTokenKey)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	me, err := c.Me(ctx)
	if err != nil {
		t.Fatalf("Me failed: %v", err)
	}
	if me.Email != "admin@example.com" {
		t.Errorf("expected verified identity, got %+v", me)
	}

	// The replacement token must decode.
	token, ok := c.Sdk().Creds().Get(credstore.AccessTokenKey)
	if !ok || token == "not-a-jwt" {
		t.Errorf("expected a refreshed access token in the store, got %q", token)
	}
}

func TestWriteAfterLogoutFailsUnauthorized(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	if _, err := c.Login(ctx, "admin@example.com", "hunter22"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	c.Logout()

	_, err := c.CreateCategory(ctx, schemas.CreateCategoryRequest{Name: "Nope"})
	if !perr.IsCode(err, perr.CodeUnauthorized) {
		t.Fatalf("expected CodeUnauthorized after logout, got %v", err)
	}
}

func TestPublicReadsWorkWithoutLogin(t *testing.T) {
	c := newTestClient(t)

	list, err := c.ListCategories(context.Background())
	if err != nil {
		t.Fatalf("ListCategories failed: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("expected empty list, got %+v", list)
	}
}
