// Package config defines the runtime configuration for the SDK: API
// credentials, API endpoint, the dedicated gateway used for URL conversion,
// custom headers, debug mode and operation timeouts. It also provides
// validation, defaulting and loading helpers.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	// DefaultEndpointURL is the base URL of the pinning REST API.
	DefaultEndpointURL = "https://api.pinata.cloud"
	// DefaultUnpinDelay is the pause between two requests of a batch unpin.
	DefaultUnpinDelay = 300 * time.Millisecond
	// EnvPrefix prefixes every environment variable read by Load.
	EnvPrefix = "PINATA"
)

// Config holds all SDK settings. Use Validate to fill implicit defaults and
// to check for required fields. A Config must not be modified after it has
// been handed to sdk.New.
type Config struct {
	// JWT is the bearer token sent in the Authorization header (required).
	JWT string `json:"jwt" yaml:"jwt" mapstructure:"jwt"`
	// Gateway is the default gateway host used by URL conversion,
	// e.g. "example-gateway.mypinata.cloud".
	Gateway string `json:"gateway" yaml:"gateway" mapstructure:"gateway"`
	// GatewayKey is the access token of a restricted gateway. It is kept for
	// callers that build authenticated gateway links themselves; URL
	// conversion never appends it.
	GatewayKey string `json:"gateway_key" yaml:"gateway_key" mapstructure:"gateway_key"`
	// EndpointURL is the API base URL.
	// Default: https://api.pinata.cloud
	EndpointURL string `json:"endpoint_url" yaml:"endpoint_url" mapstructure:"endpoint_url"`
	// IpfsURL is the HTTP RPC endpoint of a Kubo node used to read CID-backed
	// sources for URL uploads. Optional; the gateway is used when empty.
	IpfsURL string `json:"ipfs_url" yaml:"ipfs_url" mapstructure:"ipfs_url"`
	// CustomHeaders are added to every API request after the default ones.
	CustomHeaders map[string]string `json:"custom_headers" yaml:"custom_headers" mapstructure:"custom_headers"`
	// Debug enables verbose logging.
	Debug bool `json:"debug" yaml:"debug" mapstructure:"debug"`
	// UnpinDelay is the pause between requests of a batch unpin.
	// Default: 300ms
	UnpinDelay time.Duration `json:"unpin_delay" yaml:"unpin_delay" mapstructure:"unpin_delay"`
	// Timeouts configures per-operation timeouts. See Timeouts.WithDefaults for defaults.
	Timeouts Timeouts `json:"timeouts" yaml:"timeouts" mapstructure:"timeouts"`
}

// Timeouts controls SDK operation deadlines.
// Zero values will be replaced by sane defaults in WithDefaults.
type Timeouts struct {
	Dial    time.Duration `json:"dial" yaml:"dial" mapstructure:"dial"`          // Kubo RPC connect
	Request time.Duration `json:"request" yaml:"request" mapstructure:"request"` // single API call
	Fetch   time.Duration `json:"fetch" yaml:"fetch" mapstructure:"fetch"`       // source download for URL uploads
}

// Validate normalizes the configuration by applying implicit defaults for
// EndpointURL and UnpinDelay and verifies that JWT is provided. Returns an
// error when JWT is empty.
func (c *Config) Validate() error {
	if c.EndpointURL == "" {
		c.EndpointURL = DefaultEndpointURL
	}
	c.EndpointURL = strings.TrimRight(c.EndpointURL, "/")

	if c.UnpinDelay <= 0 {
		c.UnpinDelay = DefaultUnpinDelay
	}

	if c.JWT == "" {
		return errors.New("JWT is required")
	}

	return nil
}

// WithDefaults returns a copy of t with zero values replaced by defaults:
//
//	Dial:    5s
//	Request: 30s
//	Fetch:   60s
func (t Timeouts) WithDefaults() Timeouts {
	tt := t
	if tt.Dial == 0 {
		tt.Dial = 5 * time.Second
	}
	if tt.Request == 0 {
		tt.Request = 30 * time.Second
	}
	if tt.Fetch == 0 {
		tt.Fetch = 60 * time.Second
	}
	return tt
}

var envKeys = []string{
	"jwt",
	"gateway",
	"gateway_key",
	"endpoint_url",
	"ipfs_url",
	"debug",
	"unpin_delay",
	"timeouts.dial",
	"timeouts.request",
	"timeouts.fetch",
}

// Load builds a Config from an optional file (YAML, JSON or TOML, chosen by
// extension) and PINATA_* environment variables, which take precedence. A
// .env file in the working directory is loaded into the environment first
// when present. The result is validated before it is returned.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("load .env: %w", err)
		}
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, key := range envKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg := new(Config)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.Timeouts = cfg.Timeouts.WithDefaults()
	return cfg, nil
}
