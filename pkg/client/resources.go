package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/minhtan/hostpanel/pkg/papi/schemas"
)

// Categories

func (c *Client) ListCategories(ctx context.Context) ([]schemas.Category, error) {
	return getList[schemas.Category](ctx, c, "/categories")
}

func (c *Client) GetCategory(ctx context.Context, id string) (*schemas.Category, error) {
	return getOne[schemas.Category](ctx, c, "/categories/"+id)
}

func (c *Client) CreateCategory(ctx context.Context, req schemas.CreateCategoryRequest) (*schemas.Category, error) {
	return create[schemas.Category](ctx, c, "/categories", req)
}

func (c *Client) UpdateCategory(ctx context.Context, id string, req schemas.UpdateCategoryRequest) (*schemas.Category, error) {
	return update[schemas.Category](ctx, c, "/categories/"+id, req)
}

func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	return remove(ctx, c, "/categories/"+id)
}

// Products

func (c *Client) ListProducts(ctx context.Context) ([]schemas.Product, error) {
	return getList[schemas.Product](ctx, c, "/products")
}

func (c *Client) GetProduct(ctx context.Context, id string) (*schemas.Product, error) {
	return getOne[schemas.Product](ctx, c, "/products/"+id)
}

func (c *Client) CreateProduct(ctx context.Context, req schemas.CreateProductRequest) (*schemas.Product, error) {
	return create[schemas.Product](ctx, c, "/products", req)
}

func (c *Client) UpdateProduct(ctx context.Context, id string, req schemas.UpdateProductRequest) (*schemas.Product, error) {
	return update[schemas.Product](ctx, c, "/products/"+id, req)
}

func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return remove(ctx, c, "/products/"+id)
}

// News

func (c *Client) ListNews(ctx context.Context) ([]schemas.News, error) {
	return getList[schemas.News](ctx, c, "/news")
}

func (c *Client) GetNews(ctx context.Context, id string) (*schemas.News, error) {
	return getOne[schemas.News](ctx, c, "/news/"+id)
}

func (c *Client) CreateNews(ctx context.Context, req schemas.CreateNewsRequest) (*schemas.News, error) {
	return create[schemas.News](ctx, c, "/news", req)
}

func (c *Client) UpdateNews(ctx context.Context, id string, req schemas.UpdateNewsRequest) (*schemas.News, error) {
	return update[schemas.News](ctx, c, "/news/"+id, req)
}

func (c *Client) DeleteNews(ctx context.Context, id string) error {
	return remove(ctx, c, "/news/"+id)
}

// Services

func (c *Client) ListServices(ctx context.Context) ([]schemas.Service, error) {
	return getList[schemas.Service](ctx, c, "/services")
}

func (c *Client) GetService(ctx context.Context, id string) (*schemas.Service, error) {
	return getOne[schemas.Service](ctx, c, "/services/"+id)
}

func (c *Client) CreateService(ctx context.Context, req schemas.CreateServiceRequest) (*schemas.Service, error) {
	return create[schemas.Service](ctx, c, "/services", req)
}

func (c *Client) UpdateService(ctx context.Context, id string, req schemas.UpdateServiceRequest) (*schemas.Service, error) {
	return update[schemas.Service](ctx, c, "/services/"+id, req)
}

func (c *Client) DeleteService(ctx context.Context, id string) error {
	return remove(ctx, c, "/services/"+id)
}

// Contact info

func (c *Client) ListContactInfo(ctx context.Context) ([]schemas.ContactInfo, error) {
	return getList[schemas.ContactInfo](ctx, c, "/contact-info")
}

func (c *Client) CreateContactInfo(ctx context.Context, req schemas.UpsertContactInfoRequest) (*schemas.ContactInfo, error) {
	return create[schemas.ContactInfo](ctx, c, "/contact-info", req)
}

func (c *Client) UpdateContactInfo(ctx context.Context, id string, req schemas.UpsertContactInfoRequest) (*schemas.ContactInfo, error) {
	return update[schemas.ContactInfo](ctx, c, "/contact-info/"+id, req)
}

func (c *Client) DeleteContactInfo(ctx context.Context, id string) error {
	return remove(ctx, c, "/contact-info/"+id)
}

// Home text

func (c *Client) ListHomeTexts(ctx context.Context) ([]schemas.HomeText, error) {
	return getList[schemas.HomeText](ctx, c, "/home-text")
}

func (c *Client) GetHomeText(ctx context.Context, id string) (*schemas.HomeText, error) {
	return getOne[schemas.HomeText](ctx, c, "/home-text/"+id)
}

func (c *Client) CreateHomeText(ctx context.Context, req schemas.CreateHomeTextRequest) (*schemas.HomeText, error) {
	return create[schemas.HomeText](ctx, c, "/home-text", req)
}

func (c *Client) UpdateHomeText(ctx context.Context, id string, req schemas.UpdateHomeTextRequest) (*schemas.HomeText, error) {
	return update[schemas.HomeText](ctx, c, "/home-text/"+id, req)
}

func (c *Client) DeleteHomeText(ctx context.Context, id string) error {
	return remove(ctx, c, "/home-text/"+id)
}

// Posts. The posts endpoint predates the response envelope: depending on the
// deployment it returns either a bare array/object or the wrapped shape, so
// both are tolerated here.

func (c *Client) ListPosts(ctx context.Context) ([]schemas.Post, error) {
	var raw json.RawMessage
	if err := c.sdk.DoJSON(ctx, http.MethodGet, "/posts", nil, &raw); err != nil {
		return nil, err
	}

	var posts []schemas.Post
	if err := json.Unmarshal(raw, &posts); err == nil {
		return posts, nil
	}
	var env envelope[[]schemas.Post]
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("unexpected posts response shape: %w", err)
	}
	return env.Data, nil
}

func (c *Client) GetPost(ctx context.Context, id int) (*schemas.Post, error) {
	var post schemas.Post
	if err := c.sdk.DoJSON(ctx, http.MethodGet, fmt.Sprintf("/posts/%d", id), nil, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *Client) CreatePost(ctx context.Context, req schemas.CreatePostRequest) (*schemas.Post, error) {
	var post schemas.Post
	if err := c.sdk.DoJSON(ctx, http.MethodPost, "/posts", req, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *Client) UpdatePost(ctx context.Context, req schemas.UpdatePostRequest) (*schemas.Post, error) {
	var post schemas.Post
	if err := c.sdk.DoJSON(ctx, http.MethodPut, fmt.Sprintf("/posts/%d", req.ID), req, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *Client) DeletePost(ctx context.Context, id int) error {
	return remove(ctx, c, fmt.Sprintf("/posts/%d", id))
}
