package sdk

import (
	"context"
	"io"

	"github.com/cenkalti/backoff/v4"
	"github.com/pinata-sdk/pinata-go/internal/api"
	"github.com/pinata-sdk/pinata-go/internal/httpx"
	"github.com/pinata-sdk/pinata-go/pkg/analytics"
	"github.com/pinata-sdk/pinata-go/pkg/apierr"
	"github.com/pinata-sdk/pinata-go/pkg/config"
	"github.com/pinata-sdk/pinata-go/pkg/gateway"
	"github.com/pinata-sdk/pinata-go/pkg/groups"
	"github.com/pinata-sdk/pinata-go/pkg/keys"
	"github.com/pinata-sdk/pinata-go/pkg/model"
	"github.com/pinata-sdk/pinata-go/pkg/pinning"
	"github.com/pinata-sdk/pinata-go/pkg/storage"
	"go.uber.org/zap"
)

// Uploader pins new content.
type Uploader interface {
	// UploadFile pins the content of r under the given file name.
	UploadFile(ctx context.Context, name string, r io.Reader, opts *model.UploadOptions) (*model.PinResponse, error)
	// UploadJSON pins any JSON-serializable value.
	UploadJSON(ctx context.Context, v any, opts *model.UploadOptions) (*model.PinResponse, error)
	// UploadURL downloads src and pins it as a file.
	UploadURL(ctx context.Context, src string, opts *model.UploadOptions) (*model.PinResponse, error)
}

// Usage reports account usage.
type Usage interface {
	PinnedFileCount(ctx context.Context) (int64, error)
	PinnedDataTotal(ctx context.Context) (*model.UserPinnedDataResponse, error)
}

// level backs the global logger so New can raise it to debug.
var level = zap.NewAtomicLevelAt(zap.InfoLevel)

// init configures a default global zap logger for the SDK. Applications may
// replace it with zap.ReplaceGlobals(...) if they need custom logging.
func init() {
	c := zap.Config{
		Level:            level,
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	logger, err := c.Build()
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(logger)
}

// Option customizes New.
type Option func(*options)

type options struct {
	http    []httpx.Option
	pinning []pinning.Option
}

// WithRetry makes every API call retry transient failures (408, 429, 5xx and
// transport errors) according to the policies returned by newPolicy.
func WithRetry(newPolicy func() backoff.BackOff) Option {
	return func(o *options) {
		o.http = append(o.http, httpx.WithRetry(newPolicy))
	}
}

// WithUnpinPolicy replaces the pacing between the requests of a batch unpin.
func WithUnpinPolicy(newPolicy func() backoff.BackOff) Option {
	return func(o *options) {
		o.pinning = append(o.pinning, pinning.WithUnpinPolicy(newPolicy))
	}
}

// WithReader replaces the source reader used by URL uploads.
func WithReader(r storage.Reader) Option {
	return func(o *options) {
		o.pinning = append(o.pinning, pinning.WithReader(r))
	}
}

// Client groups the API areas. It is safe for concurrent use.
type Client struct {
	Upload    Uploader
	Groups    *groups.Client
	Keys      *keys.Client
	Analytics *analytics.Client
	Gateways  *gateway.Resolver
	Usage     Usage

	pins *pinning.Client
	cfg  *config.Config
}

// New validates cfg, applies its defaults and returns a ready client.
// cfg is modified in place.
func New(cfg *config.Config, opts ...Option) (*Client, error) {
	if cfg == nil {
		return nil, apierr.ErrMissingJWT
	}
	if err := cfg.Validate(); err != nil {
		return nil, apierr.Validation("invalid config: %v", err)
	}
	cfg.Timeouts = cfg.Timeouts.WithDefaults()

	if cfg.Debug {
		level.SetLevel(zap.DebugLevel)
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	t, err := api.New(cfg, o.http...)
	if err != nil {
		return nil, err
	}
	pins := pinning.New(t, o.pinning...)

	zap.L().Debug("sdk initialized",
		zap.String("endpoint", cfg.EndpointURL),
		zap.String("gateway", cfg.Gateway),
		zap.Bool("ipfs", cfg.IpfsURL != ""))

	return &Client{
		Upload:    pins,
		Groups:    groups.New(t),
		Keys:      keys.New(t),
		Analytics: analytics.New(t),
		Gateways:  gateway.NewResolver(cfg.Gateway),
		Usage:     pins,
		pins:      pins,
		cfg:       cfg,
	}, nil
}

// Unpin removes the pins of hashes; see pinning.Client.Unpin.
func (c *Client) Unpin(ctx context.Context, hashes []string) ([]model.UnpinResponse, error) {
	return c.pins.Unpin(ctx, hashes)
}

// Config returns the validated configuration.
func (c *Client) Config() *config.Config {
	return c.cfg
}
