package pinning

import (
	"context"
	"net/http"

	"github.com/pinata-sdk/pinata-go/internal/api"
	"github.com/pinata-sdk/pinata-go/pkg/model"
)

// PinnedDataTotal returns the account's pin count and pinned byte totals.
func (c *Client) PinnedDataTotal(ctx context.Context) (*model.UserPinnedDataResponse, error) {
	var out model.UserPinnedDataResponse
	err := c.transport.DoJSON(ctx, api.Call{
		Op:     "pinnedFileCount",
		Source: "sdk/pinnedFileCount",
		Method: http.MethodGet,
		Path:   pinnedDataPath,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// PinnedFileCount returns the number of pins on the account.
func (c *Client) PinnedFileCount(ctx context.Context) (int64, error) {
	out, err := c.PinnedDataTotal(ctx)
	if err != nil {
		return 0, err
	}
	return out.PinCount, nil
}
