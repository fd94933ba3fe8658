package credstore

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// cookieRecord is the on-disk shape of a stored value. The attribute fields
// mirror what a browser cookie would carry so the file stays a faithful
// replacement for the console's cookie storage.
type cookieRecord struct {
	Value     string    `json:"value"`
	ExpiresAt time.Time `json:"expires_at"`
	Path      string    `json:"path,omitempty"`
	SameSite  string    `json:"same_site,omitempty"`
	Secure    bool      `json:"secure,omitempty"`
}

// CookieFile persists values in a single JSON file with cookie-style
// attributes and absolute expiry. Expired entries read as absent. Every write
// rewrites the file synchronously so a subsequent read in the same process
// (or another one) sees the new value.
type CookieFile struct {
	path string

	mu  sync.Mutex
	now func() time.Time
}

// NewCookieFile opens (or lazily creates) a cookie file at path. The parent
// directory is created on first write.
func NewCookieFile(path string) *CookieFile {
	return &CookieFile{path: path, now: time.Now}
}

// DefaultCookieFilePath places the file under the user config dir, falling
// back to the working directory when the config dir cannot be resolved.
func DefaultCookieFilePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".panel/credentials.json"
	}
	return filepath.Join(dir, "panel", "credentials.json")
}

func (c *CookieFile) Get(name string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.load()
	if err != nil {
		return "", false
	}
	rec, ok := records[name]
	if !ok {
		return "", false
	}
	if !rec.ExpiresAt.IsZero() && !c.now().Before(rec.ExpiresAt) {
		delete(records, name)
		_ = c.save(records)
		return "", false
	}
	return rec.Value, true
}

func (c *CookieFile) Set(name, value string, opts Options) error {
	def := DefaultOptions(name)
	if opts.LifetimeDays == 0 {
		opts.LifetimeDays = def.LifetimeDays
	}
	if opts.Path == "" {
		opts.Path = def.Path
	}
	if opts.SameSite == 0 {
		opts.SameSite = def.SameSite
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.load()
	if err != nil {
		return err
	}
	records[name] = cookieRecord{
		Value:     value,
		ExpiresAt: c.now().Add(time.Duration(opts.LifetimeDays) * 24 * time.Hour),
		Path:      opts.Path,
		SameSite:  sameSiteString(opts.SameSite),
		Secure:    opts.Secure,
	}
	return c.save(records)
}

func (c *CookieFile) Remove(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.load()
	if err != nil {
		return
	}
	if _, ok := records[name]; !ok {
		return
	}
	delete(records, name)
	_ = c.save(records)
}

func (c *CookieFile) load() (map[string]cookieRecord, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]cookieRecord), nil
		}
		return nil, fmt.Errorf("reading credential file: %w", err)
	}
	records := make(map[string]cookieRecord)
	if err := json.Unmarshal(data, &records); err != nil {
		// A corrupt file should not lock the user out; start fresh.
		return make(map[string]cookieRecord), nil
	}
	return records, nil
}

func (c *CookieFile) save(records map[string]cookieRecord) error {
	if dir := filepath.Dir(c.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("creating credential dir: %w", err)
		}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(c.path, data, 0o600); err != nil {
		return fmt.Errorf("writing credential file: %w", err)
	}
	return nil
}

func sameSiteString(s http.SameSite) string {
	switch s {
	case http.SameSiteStrictMode:
		return "strict"
	case http.SameSiteNoneMode:
		return "none"
	default:
		return "lax"
	}
}

var _ Store = (*CookieFile)(nil)
