package pinning

import (
	"github.com/cenkalti/backoff/v4"
	"github.com/pinata-sdk/pinata-go/internal/api"
	"github.com/pinata-sdk/pinata-go/pkg/storage"
)

const (
	pinFilePath    = "/pinning/pinFileToIPFS"
	pinJSONPath    = "/pinning/pinJSONToIPFS"
	unpinPath      = "/pinning/unpin/"
	pinnedDataPath = "/data/userPinnedDataTotal"
)

// Option configures a Client.
type Option func(*Client)

// WithUnpinPolicy replaces the pacing between the requests of a batch unpin.
// newPolicy is called once per batch; its NextBackOff is consulted before
// every request but the first. Returning backoff.Stop ends the batch.
func WithUnpinPolicy(newPolicy func() backoff.BackOff) Option {
	return func(c *Client) {
		if newPolicy != nil {
			c.newPacer = newPolicy
		}
	}
}

// WithReader replaces the source reader used by UploadURL.
func WithReader(r storage.Reader) Option {
	return func(c *Client) {
		if r != nil {
			c.reader = r
		}
	}
}

// Client performs pinning operations.
type Client struct {
	transport *api.Transport
	reader    storage.Reader
	newPacer  func() backoff.BackOff
}

// New returns a pinning client. The default unpin pacing is a constant
// delay of Config.UnpinDelay, and URL sources are read with a storage client
// built from the transport configuration.
func New(t *api.Transport, opts ...Option) *Client {
	cfg := t.Config()
	delay := cfg.UnpinDelay
	c := &Client{
		transport: t,
		newPacer: func() backoff.BackOff {
			return backoff.NewConstantBackOff(delay)
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.reader == nil {
		c.reader = storage.NewStorage(cfg)
	}
	return c
}
