package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/minhtan/hostpanel/pkg/papi/schemas"
	"github.com/minhtan/hostpanel/pkg/papi/services/content"
)

// Posts predate the envelope convention: responses are bare records and
// bare arrays, and ids are small integers.

type postListOutput struct {
	Body []schemas.Post
}

type postOutput struct {
	Body schemas.Post
}

type postIDInput struct {
	ID int `path:"id" doc:"Post id"`
}

type createPostInput struct {
	Body schemas.CreatePostRequest
}

type updatePostInput struct {
	ID   int `path:"id" doc:"Post id"`
	Body schemas.UpdatePostRequest
}

func RegisterPosts(api huma.API, store *content.Store) {
	const resource = "post"

	huma.Register(api, huma.Operation{
		OperationID: "list-posts",
		Method:      http.MethodGet,
		Path:        "/posts",
		Summary:     "List posts",
		Tags:        []string{TagSite.String()},
	}, func(ctx context.Context, _ *struct{}) (*postListOutput, error) {
		posts, err := content.List[schemas.Post](ctx, store, resource)
		if err != nil {
			return nil, huma.Error500InternalServerError("listing failed")
		}
		return &postListOutput{Body: posts}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-post",
		Method:      http.MethodGet,
		Path:        "/posts/{id}",
		Summary:     "Get a post by id",
		Tags:        []string{TagSite.String()},
	}, func(ctx context.Context, input *postIDInput) (*postOutput, error) {
		post, err := content.Get[schemas.Post](ctx, store, resource, fmt.Sprintf("%d", input.ID))
		if err != nil {
			if errors.Is(err, content.ErrNotFound) {
				return nil, huma.Error404NotFound("post not found")
			}
			return nil, huma.Error500InternalServerError("lookup failed")
		}
		return &postOutput{Body: *post}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "create-post",
		Method:      http.MethodPost,
		Path:        "/posts",
		Summary:     "Create a post",
		Tags:        []string{TagSite.String()},
		Security:    BearerAuth,
	}, func(ctx context.Context, input *createPostInput) (*postOutput, error) {
		if err := requirePrincipal(ctx); err != nil {
			return nil, err
		}
		id, err := content.NextIntID(ctx, store, resource)
		if err != nil {
			return nil, huma.Error500InternalServerError("id allocation failed")
		}
		now := content.Now()
		post := schemas.Post{
			ID:        id,
			Name:      input.Body.Name,
			Content:   input.Body.Content,
			Price:     input.Body.Price,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := content.Put(ctx, store, resource, fmt.Sprintf("%d", id), post); err != nil {
			return nil, huma.Error500InternalServerError("create failed")
		}
		return &postOutput{Body: post}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "update-post",
		Method:      http.MethodPut,
		Path:        "/posts/{id}",
		Summary:     "Update a post",
		Tags:        []string{TagSite.String()},
		Security:    BearerAuth,
	}, func(ctx context.Context, input *updatePostInput) (*postOutput, error) {
		if err := requirePrincipal(ctx); err != nil {
			return nil, err
		}
		key := fmt.Sprintf("%d", input.ID)
		post, err := content.Get[schemas.Post](ctx, store, resource, key)
		if err != nil {
			if errors.Is(err, content.ErrNotFound) {
				return nil, huma.Error404NotFound("post not found")
			}
			return nil, huma.Error500InternalServerError("lookup failed")
		}
		if input.Body.Name != "" {
			post.Name = input.Body.Name
		}
		if input.Body.Content != "" {
			post.Content = input.Body.Content
		}
		if input.Body.Price != 0 {
			post.Price = input.Body.Price
		}
		post.UpdatedAt = content.Now()
		if err := content.Put(ctx, store, resource, key, *post); err != nil {
			return nil, huma.Error500InternalServerError("update failed")
		}
		return &postOutput{Body: *post}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "delete-post",
		Method:      http.MethodDelete,
		Path:        "/posts/{id}",
		Summary:     "Delete a post",
		Tags:        []string{TagSite.String()},
		Security:    BearerAuth,
	}, func(ctx context.Context, input *postIDInput) (*statusOutput, error) {
		if err := requirePrincipal(ctx); err != nil {
			return nil, err
		}
		if err := content.Delete(ctx, store, resource, fmt.Sprintf("%d", input.ID)); err != nil {
			return nil, huma.Error500InternalServerError("delete failed")
		}
		out := &statusOutput{}
		out.Body.Success = true
		out.Body.Message = "post deleted"
		return out, nil
	})
}
