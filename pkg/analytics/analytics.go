// Package analytics queries gateway usage analytics.
package analytics

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pinata-sdk/pinata-go/internal/api"
	"github.com/pinata-sdk/pinata-go/pkg/model"
)

const topUsagePath = "/v3/ipfs/gateway_analytics_top"

// Client performs analytics queries.
type Client struct {
	transport *api.Transport
}

// New returns an analytics client sharing t.
func New(t *api.Transport) *Client {
	return &Client{transport: t}
}

// TopUsage returns gateway requests and bandwidth filtered by q. When
// q.DateInterval is set the result is bucketed in TimePeriods.
func (c *Client) TopUsage(ctx context.Context, q *model.TopUsageQuery) (*model.TopUsageResponse, error) {
	var out model.TopUsageResponse
	err := c.transport.DoJSON(ctx, api.Call{
		Op:     "analytics usage",
		Source: "sdk/analyticsTopUsage",
		Method: http.MethodGet,
		Path:   topUsagePath,
		Query:  query(q),
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func query(q *model.TopUsageQuery) url.Values {
	v := url.Values{}
	v.Set("includesCount", "false")
	if q == nil {
		return v
	}

	set := func(key, val string) {
		if val != "" {
			v.Set(key, val)
		}
	}
	set("cid", q.CID)
	set("gateway_domain", q.GatewayDomain)
	set("start_date", q.StartDate)
	set("end_date", q.EndDate)
	set("file_name", q.FileName)
	set("user_agent", q.UserAgent)
	set("country", q.Country)
	set("region", q.Region)
	set("referer", q.Referer)
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	set("sort_order", string(q.SortOrder))
	set("sort_by", q.SortBy)
	set("by", string(q.DateInterval))
	return v
}
