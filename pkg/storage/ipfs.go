package storage

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"

	"github.com/ipfs/go-cid"
	"github.com/ipfs/kubo/client/rpc"
	"github.com/pinata-sdk/pinata-go/pkg/config"
	"go.uber.org/zap"
)

// ipfsFetcher is the concrete implementation of IPFSFetcher using the Kubo HTTP RPC API.
type ipfsFetcher struct {
	api *rpc.HttpApi
}

// newIPFSFetcher creates a new IPFS fetcher with the given HTTP API client.
func newIPFSFetcher(api *rpc.HttpApi) IPFSFetcher {
	return &ipfsFetcher{api: api}
}

// Fetch reads ipfsPath with `ipfs cat`. The CID segment is parsed first so a
// malformed identifier fails locally instead of on the node.
func (f *ipfsFetcher) Fetch(ctx context.Context, ipfsPath string) (content []byte, err error) {
	if f.api == nil {
		return nil, fmt.Errorf("ipfs client not configured")
	}

	root, _, _ := strings.Cut(strings.TrimPrefix(ipfsPath, "/ipfs/"), "/")
	if _, err := cid.Parse(root); err != nil {
		zap.L().Error("error parsing the ipfs hash", zap.String("path", ipfsPath), zap.Error(err))
		return nil, fmt.Errorf("invalid CID %q: %w", root, err)
	}

	zap.L().Debug("reading from ipfs", zap.String("path", ipfsPath))

	resp, err := f.api.Request("cat", ipfsPath).Send(ctx)
	if err != nil {
		zap.L().Error("error executing the cat command in ipfs", zap.String("path", ipfsPath), zap.Error(err))
		return nil, err
	}
	defer func(resp *rpc.Response) {
		if cerr := resp.Close(); cerr != nil {
			zap.L().Error("error closing response in ipfs", zap.String("path", ipfsPath), zap.Error(cerr))
		}
	}(resp)

	if resp.Error != nil {
		return nil, resp.Error
	}
	content, err = io.ReadAll(resp.Output)
	if err != nil {
		return nil, fmt.Errorf("read ipfs content: %w", err)
	}
	return content, nil
}

// NewIPFSClient constructs a Kubo HTTP RPC client pointed at url. Connections
// are bounded by timeouts.Dial and whole reads by timeouts.Fetch.
func NewIPFSClient(url string, timeouts config.Timeouts) (*rpc.HttpApi, error) {
	timeouts = timeouts.WithDefaults()
	httpClient := &http.Client{
		Timeout: timeouts.Fetch,
		Transport: &http.Transport{
			Proxy:       http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{Timeout: timeouts.Dial}).DialContext,
		},
	}
	client, err := rpc.NewURLApiWithClient(url, httpClient)
	if err != nil {
		return nil, fmt.Errorf("connect to ipfs %s: %w", url, err)
	}
	return client, nil
}
