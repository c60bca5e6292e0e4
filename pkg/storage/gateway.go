package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// httpFetcher is the production implementation of HTTPFetcher.
type httpFetcher struct {
	client *http.Client
}

func newHTTPFetcher(timeout time.Duration) HTTPFetcher {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return httpFetcher{client: &http.Client{Timeout: timeout}}
}

func (f httpFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	return GetFileCtx(ctx, f.client, url)
}

// GetFileCtx downloads url and returns the response body. Non-2xx responses
// are reported as errors.
func GetFileCtx(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	zap.L().Debug("fetching source", zap.String("url", url))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func(Body io.ReadCloser) {
		if cerr := Body.Close(); cerr != nil {
			zap.L().Error("failed to close source body", zap.Error(cerr))
		}
	}(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("problem fetching URL: status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
