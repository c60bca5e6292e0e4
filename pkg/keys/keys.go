// Package keys lists the API keys of the account.
package keys

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pinata-sdk/pinata-go/internal/api"
	"github.com/pinata-sdk/pinata-go/internal/httpx"
	"github.com/pinata-sdk/pinata-go/pkg/model"
)

const keysPath = "/v3/pinata/keys"

// Client performs key operations.
type Client struct {
	transport *api.Transport
}

// New returns a keys client sharing t.
func New(t *api.Transport) *Client {
	return &Client{transport: t}
}

// List returns the keys matching q. A nil q lists every key.
func (c *Client) List(ctx context.Context, q *model.KeyListQuery) ([]model.KeyListItem, error) {
	var out model.KeyListResponse
	err := c.transport.DoJSON(ctx, api.Call{
		Op:          "listKeys",
		Source:      "sdk/listKeys",
		Method:      http.MethodGet,
		Path:        keysPath,
		Query:       query(q),
		ContentType: httpx.ContentTypeJSON,
	}, &out)
	if err != nil {
		return nil, err
	}
	return out.Keys, nil
}

func query(q *model.KeyListQuery) url.Values {
	v := url.Values{}
	if q == nil {
		return v
	}
	if q.Offset > 0 {
		v.Set("offset", strconv.Itoa(q.Offset))
	}
	if q.Revoked != nil {
		v.Set("revoked", strconv.FormatBool(*q.Revoked))
	}
	if q.LimitedUse != nil {
		v.Set("limitedUse", strconv.FormatBool(*q.LimitedUse))
	}
	if q.Exhausted != nil {
		v.Set("exhausted", strconv.FormatBool(*q.Exhausted))
	}
	if q.Name != "" {
		v.Set("name", q.Name)
	}
	return v
}
