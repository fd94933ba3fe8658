// Package routes maps the admin console API onto huma operations.
package routes

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/minhtan/hostpanel/pkg/papi/services"
)

type healthOutput struct {
	Body struct {
		Status string `json:"status"`
	}
}

// RegisterAll attaches every route group to the API.
func RegisterAll(api huma.API, svcs *services.Services) {
	api.UseMiddleware(svcs.Auth.Middleware())

	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Liveness probe",
		Hidden:      true,
	}, func(ctx context.Context, _ *struct{}) (*healthOutput, error) {
		out := &healthOutput{}
		out.Body.Status = "ok"
		return out, nil
	})

	RegisterAuth(api, svcs.Auth)
	registerCategories(api, svcs.Content)
	registerProducts(api, svcs.Content)
	registerNews(api, svcs.Content)
	registerServices(api, svcs.Content)
	registerContactInfo(api, svcs.Content)
	registerHomeText(api, svcs.Content)
	RegisterPosts(api, svcs.Content)
}
