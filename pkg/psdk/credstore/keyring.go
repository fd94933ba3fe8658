package credstore

import (
	"strings"

	"github.com/zalando/go-keyring"
)

const keyringService = "hostpanel"

// Keyring stores tokens in the OS keyring, namespaced by the API base URL so
// credentials for different deployments do not collide. The keyring has no
// TTL, so lifetime options are accepted but unenforced here; the token's own
// embedded expiry remains authoritative.
type Keyring struct {
	baseURL string
}

func NewKeyring(baseURL string) *Keyring {
	return &Keyring{baseURL: normalizeKey(baseURL)}
}

// normalizeKey converts a baseURL into a stable key name for keyring storage.
// It trims trailing slashes and lowercases to avoid accidental duplicates
// like https://example.com/ and https://example.com.
func normalizeKey(baseURL string) string {
	s := strings.TrimSpace(baseURL)
	s = strings.TrimRight(s, "/")
	s = strings.ToLower(s)
	if s == "" {
		s = "default"
	}
	return s
}

func (k *Keyring) key(name string) string {
	return k.baseURL + "#" + name
}

func (k *Keyring) Get(name string) (string, bool) {
	v, err := keyring.Get(keyringService, k.key(name))
	if err != nil || v == "" {
		return "", false
	}
	return v, true
}

func (k *Keyring) Set(name, value string, _ Options) error {
	return keyring.Set(keyringService, k.key(name), value)
}

func (k *Keyring) Remove(name string) {
	_ = keyring.Delete(keyringService, k.key(name))
}

var _ Store = (*Keyring)(nil)
