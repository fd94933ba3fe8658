// Package client provides typed access to the admin API's resources on top of
// the authenticated gateway. Every call rides through the gateway's bearer
// attachment and one-shot refresh-and-retry; this package only knows paths
// and shapes.
package client

import (
	"context"
	"net/http"

	"github.com/minhtan/hostpanel/pkg/psdk"
)

type Client struct {
	sdk *psdk.Sdk
}

func New(sdk *psdk.Sdk) *Client {
	return &Client{sdk: sdk}
}

func (c *Client) Sdk() *psdk.Sdk         { return c.sdk }
func (c *Client) Session() *psdk.Session { return c.sdk.Session() }

// envelope is the API's standard {success, data, message} response wrapper.
type envelope[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data"`
	Message string `json:"message,omitempty"`
}

func getList[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	var env envelope[[]T]
	if err := c.sdk.DoJSON(ctx, http.MethodGet, path, nil, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

func getOne[T any](ctx context.Context, c *Client, path string) (*T, error) {
	var env envelope[T]
	if err := c.sdk.DoJSON(ctx, http.MethodGet, path, nil, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

func create[T any](ctx context.Context, c *Client, path string, in any) (*T, error) {
	var env envelope[T]
	if err := c.sdk.DoJSON(ctx, http.MethodPost, path, in, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

func update[T any](ctx context.Context, c *Client, path string, in any) (*T, error) {
	var env envelope[T]
	if err := c.sdk.DoJSON(ctx, http.MethodPut, path, in, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

func remove(ctx context.Context, c *Client, path string) error {
	return c.sdk.DoJSON(ctx, http.MethodDelete, path, nil, nil)
}
