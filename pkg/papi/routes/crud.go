package routes

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"

	"github.com/minhtan/hostpanel/pkg/papi/services/auth"
	"github.com/minhtan/hostpanel/pkg/papi/services/content"
)

type envelope[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data"`
	Message string `json:"message,omitempty"`
}

type listOutput[T any] struct {
	Body envelope[[]T]
}

type recordOutput[T any] struct {
	Body envelope[T]
}

type statusOutput struct {
	Body struct {
		Success bool   `json:"success"`
		Message string `json:"message,omitempty"`
	}
}

type idInput struct {
	ID string `path:"id" doc:"Record id"`
}

type createInput[C any] struct {
	Body C
}

type updateInput[U any] struct {
	ID   string `path:"id" doc:"Record id"`
	Body U
}

// crud describes one enveloped resource. Reads are public; writes require an
// authenticated principal, mirroring the upstream API's admin-only mutations.
type crud[T, C, U any] struct {
	resource string // kv prefix and operation-id fragment, e.g. "category"
	plural   string // operation-id fragment, e.g. "categories"
	path     string // URL base, e.g. "/categories"
	tag      Tag

	// build constructs a record from a create request; apply folds an update
	// request into an existing record. Both receive an RFC3339 timestamp.
	build func(id, now string, req C) T
	apply func(rec *T, req U, now string)
}

func requirePrincipal(ctx context.Context) error {
	if auth.PrincipalFrom(ctx) == nil {
		return huma.Error401Unauthorized("Authentication required")
	}
	return nil
}

func (c crud[T, C, U]) register(api huma.API, store *content.Store) {
	huma.Register(api, huma.Operation{
		OperationID: "list-" + c.plural,
		Method:      http.MethodGet,
		Path:        c.path,
		Summary:     "List " + c.plural,
		Tags:        []string{c.tag.String()},
	}, func(ctx context.Context, _ *struct{}) (*listOutput[T], error) {
		records, err := content.List[T](ctx, store, c.resource)
		if err != nil {
			return nil, huma.Error500InternalServerError("listing failed")
		}
		out := &listOutput[T]{}
		out.Body.Success = true
		out.Body.Data = records
		return out, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-" + c.resource,
		Method:      http.MethodGet,
		Path:        c.path + "/{id}",
		Summary:     "Get one of " + c.plural + " by id",
		Tags:        []string{c.tag.String()},
	}, func(ctx context.Context, input *idInput) (*recordOutput[T], error) {
		rec, err := content.Get[T](ctx, store, c.resource, input.ID)
		if err != nil {
			if errors.Is(err, content.ErrNotFound) {
				return nil, huma.Error404NotFound(c.resource + " not found")
			}
			return nil, huma.Error500InternalServerError("lookup failed")
		}
		out := &recordOutput[T]{}
		out.Body.Success = true
		out.Body.Data = *rec
		return out, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "create-" + c.resource,
		Method:      http.MethodPost,
		Path:        c.path,
		Summary:     "Create one of " + c.plural,
		Tags:        []string{c.tag.String()},
		Security:    BearerAuth,
	}, func(ctx context.Context, input *createInput[C]) (*recordOutput[T], error) {
		if err := requirePrincipal(ctx); err != nil {
			return nil, err
		}
		id := uuid.NewString()
		rec := c.build(id, content.Now(), input.Body)
		if err := content.Put(ctx, store, c.resource, id, rec); err != nil {
			return nil, huma.Error500InternalServerError("create failed")
		}
		out := &recordOutput[T]{}
		out.Body.Success = true
		out.Body.Data = rec
		return out, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "update-" + c.resource,
		Method:      http.MethodPut,
		Path:        c.path + "/{id}",
		Summary:     "Update one of " + c.plural,
		Tags:        []string{c.tag.String()},
		Security:    BearerAuth,
	}, func(ctx context.Context, input *updateInput[U]) (*recordOutput[T], error) {
		if err := requirePrincipal(ctx); err != nil {
			return nil, err
		}
		rec, err := content.Get[T](ctx, store, c.resource, input.ID)
		if err != nil {
			if errors.Is(err, content.ErrNotFound) {
				return nil, huma.Error404NotFound(c.resource + " not found")
			}
			return nil, huma.Error500InternalServerError("lookup failed")
		}
		c.apply(rec, input.Body, content.Now())
		if err := content.Put(ctx, store, c.resource, input.ID, *rec); err != nil {
			return nil, huma.Error500InternalServerError("update failed")
		}
		out := &recordOutput[T]{}
		out.Body.Success = true
		out.Body.Data = *rec
		return out, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "delete-" + c.resource,
		Method:      http.MethodDelete,
		Path:        c.path + "/{id}",
		Summary:     "Delete one of " + c.plural,
		Tags:        []string{c.tag.String()},
		Security:    BearerAuth,
	}, func(ctx context.Context, input *idInput) (*statusOutput, error) {
		if err := requirePrincipal(ctx); err != nil {
			return nil, err
		}
		if err := content.Delete(ctx, store, c.resource, input.ID); err != nil {
			return nil, huma.Error500InternalServerError("delete failed")
		}
		out := &statusOutput{}
		out.Body.Success = true
		out.Body.Message = c.resource + " deleted"
		return out, nil
	})
}
