// Package storage retrieves the bytes behind a URL for URL uploads. Sources
// that carry a CID are read from a Kubo node over its HTTP RPC API when one
// is configured and otherwise through the configured gateway; other sources
// are fetched with a plain HTTP GET.
package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/ipfs/kubo/client/rpc"
	"github.com/pinata-sdk/pinata-go/pkg/config"
	"github.com/pinata-sdk/pinata-go/pkg/gateway"
	"go.uber.org/zap"
)

// Reader is implemented by backends able to return the content behind a URL.
type Reader interface {
	ReadURL(ctx context.Context, src string) ([]byte, error)
}

// IPFSFetcher fetches content addressed by an IPFS path (/ipfs/<cid>[/sub/path]).
type IPFSFetcher interface {
	Fetch(ctx context.Context, ipfsPath string) ([]byte, error)
}

// HTTPFetcher fetches content from an HTTP(S) URL.
type HTTPFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Client aggregates the configured retrieval backends.
type Client struct {
	// HttpApi is a Kubo HTTP RPC client; nil when no IPFS node is configured.
	*rpc.HttpApi
	// Gateway is the gateway prefix used for CID sources when HttpApi is nil
	// or fails.
	Gateway string

	ipfsFetcher IPFSFetcher
	httpFetcher HTTPFetcher
}

// NewStorage constructs a retrieval client from cfg. An empty cfg.IpfsURL
// disables the Kubo backend. If the Kubo client fails to initialize the error
// is logged and the gateway is used instead.
func NewStorage(cfg *config.Config) *Client {
	timeouts := cfg.Timeouts.WithDefaults()
	s := &Client{
		Gateway:     gateway.NormalizeGateway(cfg.Gateway),
		httpFetcher: newHTTPFetcher(timeouts.Fetch),
	}
	if cfg.IpfsURL != "" {
		api, err := NewIPFSClient(cfg.IpfsURL, timeouts)
		if err != nil {
			zap.L().Error("ipfs client disabled", zap.String("url", cfg.IpfsURL), zap.Error(err))
		} else {
			s.HttpApi = api
			s.ipfsFetcher = newIPFSFetcher(api)
		}
	}
	return s
}

// ReadURL returns the content behind src. CID sources (ipfs://, /ipfs/ paths,
// subdomain gateways, bare CIDs) go to the Kubo node first, then to the
// configured gateway; anything else must be an http(s) URL.
func (s *Client) ReadURL(ctx context.Context, src string) ([]byte, error) {
	if s.httpFetcher == nil {
		s.httpFetcher = newHTTPFetcher(0)
	}

	if found, ok := gateway.ContainsCID(src).(gateway.Found); ok {
		if s.ipfsFetcher != nil {
			data, err := s.ipfsFetcher.Fetch(ctx, ipfsPathOf(found))
			if err == nil {
				return data, nil
			}
			zap.L().Warn("ipfs read failed, falling back to gateway", zap.String("cid", found.CID), zap.Error(err))
		}
		if s.Gateway != "" {
			converted, err := gateway.Convert(src, s.Gateway)
			if err != nil {
				return nil, err
			}
			src = converted
		}
	}

	if !strings.HasPrefix(src, "http://") && !strings.HasPrefix(src, "https://") {
		return nil, fmt.Errorf("unsupported source %q: no gateway configured for IPFS content", src)
	}
	return s.httpFetcher.Fetch(ctx, src)
}

// ipfsPathOf builds /ipfs/<cid>[/sub/path] from a detection, dropping any
// query or fragment.
func ipfsPathOf(found gateway.Found) string {
	rest := found.Rest
	if i := strings.IndexAny(rest, "?#"); i >= 0 {
		rest = rest[:i]
	}
	return "/ipfs/" + found.CID + strings.TrimRight(rest, "/")
}
