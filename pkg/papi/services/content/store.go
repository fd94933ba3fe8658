// Package content persists the console's records as JSON blobs in the kv
// store, keyed "<resource>:<id>". The route layer owns ids and timestamps;
// this package only moves typed records in and out.
package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/minhtan/hostpanel/pkg/kv"
)

var ErrNotFound = errors.New("content: record not found")

type Store struct {
	kv kv.Store
}

func NewStore(store kv.Store) *Store {
	return &Store{kv: store}
}

// Now returns the timestamp format records carry.
func Now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func key(resource, id string) string {
	return resource + ":" + id
}

func List[T any](ctx context.Context, s *Store, resource string) ([]T, error) {
	keys, err := s.kv.Keys(ctx, resource+":")
	if err != nil {
		return nil, err
	}
	sort.Strings(keys)

	out := make([]T, 0, len(keys))
	for _, k := range keys {
		data, err := s.kv.Get(ctx, k)
		if err != nil {
			if errors.Is(err, kv.ErrNotFound) {
				continue // expired between scan and read
			}
			return nil, err
		}
		var v T
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("corrupt record %s: %w", k, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func Get[T any](ctx context.Context, s *Store, resource, id string) (*T, error) {
	data, err := s.kv.Get(ctx, key(resource, id))
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("corrupt record %s: %w", key(resource, id), err)
	}
	return &v, nil
}

func Put[T any](ctx context.Context, s *Store, resource, id string, v T) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, key(resource, id), data, 0)
}

func Delete(ctx context.Context, s *Store, resource, id string) error {
	// Missing keys delete cleanly; the API reports success either way.
	return s.kv.Delete(ctx, key(resource, id))
}

// Exists reports whether a record is present.
func Exists(ctx context.Context, s *Store, resource, id string) (bool, error) {
	_, err := s.kv.Get(ctx, key(resource, id))
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// NextIntID returns a small increasing integer id for resources that use
// numeric ids. It scans existing keys, which is fine at console scale.
func NextIntID(ctx context.Context, s *Store, resource string) (int, error) {
	keys, err := s.kv.Keys(ctx, resource+":")
	if err != nil {
		return 0, err
	}
	max := 0
	for _, k := range keys {
		var n int
		if _, err := fmt.Sscanf(strings.TrimPrefix(k, resource+":"), "%d", &n); err == nil && n > max {
			max = n
		}
	}
	return max + 1, nil
}
