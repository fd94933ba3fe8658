package psdk

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	BaseURL   string `mapstructure:"baseUrl"`
	CredStore string `mapstructure:"credStore"`
	Timeout   int    `mapstructure:"timeoutSeconds"`

	v *viper.Viper // instance-specific viper
}

const (
	EnvPrefix  = "PANEL"
	ConfigName = "panel"
	ConfigRoot = ".panel"

	BaseUrlKey   = "baseUrl"
	CredStoreKey = "credStore"
	TimeoutKey   = "timeoutSeconds"
)

// LoadConfig creates a new Config instance with its own viper
// This is the only way to load config (no global state)
func LoadConfig(cfgFile string) (*Config, error) {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", cfgFile, err)
		}
	} else {
		// Load project config (TRACKED) - panel.yaml in current directory
		for _, name := range []string{"panel.yaml", "panel.yml", ".panel.yaml"} {
			if _, err := os.Stat(name); err == nil {
				v.SetConfigFile(name)
				if err := v.ReadInConfig(); err == nil {
					break
				}
			}
		}

		// Merge local overrides (UNTRACKED) - .panel/config.yaml
		localConfigPath := filepath.Join(ConfigRoot, "config.yaml")
		if _, err := os.Stat(localConfigPath); err == nil {
			v.SetConfigFile(localConfigPath)
			if err := v.MergeInConfig(); err != nil {
				return nil, fmt.Errorf("merging local config: %w", err)
			}
		}
	}

	// Set defaults
	setDefaults(v)

	// Unmarshal into Config
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	cfg.v = v
	return &cfg, nil
}

// GetString returns a string value from the underlying viper instance
func (c *Config) GetString(key string) string {
	if c.v == nil {
		return ""
	}
	return c.v.GetString(key)
}

// Viper returns the underlying viper instance
// Useful for advanced config operations
func (c *Config) Viper() *viper.Viper {
	return c.v
}

func setDefaults(v *viper.Viper) {
	if !v.IsSet(BaseUrlKey) {
		v.SetDefault(BaseUrlKey, "http://localhost:8080")
	} else {
		normalized := strings.TrimRight(v.GetString(BaseUrlKey), "/")
		v.Set(BaseUrlKey, normalized)
	}

	if !v.IsSet(CredStoreKey) {
		// cookie-file storage mirrors the console's cookie semantics;
		// "keyring" opts into the OS keyring instead.
		v.SetDefault(CredStoreKey, "cookiefile")
	}

	if !v.IsSet(TimeoutKey) {
		v.SetDefault(TimeoutKey, 10)
	}
}

// ConfigFileUsed returns the config file that was used (if any)
func (c *Config) ConfigFileUsed() string {
	if c.v == nil {
		return ""
	}
	return c.v.ConfigFileUsed()
}
