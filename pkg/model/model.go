// Package model defines the request options and response payloads exchanged
// with the pinning API: pins, groups, API keys, gateway analytics and account
// usage. JSON tags mirror the API documents.
package model

import (
	"time"

	"github.com/ipfs/go-cid"
	"github.com/shopspring/decimal"
)

// PinResponse is returned by every upload endpoint.
type PinResponse struct {
	IpfsHash    string    `json:"IpfsHash"`
	PinSize     int64     `json:"PinSize"`
	Timestamp   time.Time `json:"Timestamp"`
	IsDuplicate bool      `json:"isDuplicate,omitempty"`
}

// CID parses IpfsHash into a typed CID.
func (p *PinResponse) CID() (cid.Cid, error) {
	return cid.Decode(p.IpfsHash)
}

// UnpinResponse is the per-item outcome of a batch unpin. Status holds the
// API response text on success or the error message on failure.
type UnpinResponse struct {
	Hash   string `json:"hash"`
	Status string `json:"status"`
}

// PinataMetadata is attached to uploaded content.
type PinataMetadata struct {
	Name      string         `json:"name,omitempty"`
	KeyValues map[string]any `json:"keyvalues,omitempty"`
}

// UploadOptions tunes a single upload. All fields are optional.
type UploadOptions struct {
	Metadata *PinataMetadata
	// Keys replaces the configured JWT for this upload only.
	Keys string
	// GroupID adds the uploaded content to a group.
	GroupID string
	// CIDVersion selects CIDv0 or CIDv1; nil leaves the choice to the API.
	CIDVersion *int
}

// PinataOptions is the wire form of the upload options.
type PinataOptions struct {
	CIDVersion *int   `json:"cidVersion,omitempty"`
	GroupID    string `json:"groupId,omitempty"`
}

// GroupOptions creates a group.
type GroupOptions struct {
	Name string `json:"name"`
}

// UpdateGroupOptions renames a group.
type UpdateGroupOptions struct {
	GroupID string `json:"-"`
	Name    string `json:"name"`
}

// GetGroupOptions identifies a group.
type GetGroupOptions struct {
	GroupID string
}

// GroupResponseItem describes a group.
type GroupResponseItem struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	UpdatedAt time.Time `json:"updatedAt"`
	CreatedAt time.Time `json:"createdAt"`
}

// KeyListQuery filters the API key listing. Nil pointers are not sent.
type KeyListQuery struct {
	Offset     int
	Name       string
	Revoked    *bool
	LimitedUse *bool
	Exhausted  *bool
}

// KeyScopes lists what an API key may access.
type KeyScopes struct {
	Endpoints map[string]map[string]bool `json:"endpoints,omitempty"`
	Admin     bool                       `json:"admin"`
}

// KeyListItem describes an API key.
type KeyListItem struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Key       string    `json:"key"`
	Secret    string    `json:"secret"`
	MaxUses   int       `json:"max_uses"`
	Uses      int       `json:"uses"`
	UserID    string    `json:"user_id"`
	Scopes    KeyScopes `json:"scopes"`
	Revoked   bool      `json:"revoked"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// KeyListResponse is the envelope of the key listing.
type KeyListResponse struct {
	Keys  []KeyListItem `json:"keys"`
	Count int           `json:"count"`
}

// SortOrder orders analytics results.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// DateInterval buckets time-series analytics.
type DateInterval string

const (
	IntervalDay  DateInterval = "day"
	IntervalWeek DateInterval = "week"
)

// TopUsageQuery filters gateway analytics. Zero values are not sent.
type TopUsageQuery struct {
	CID           string
	GatewayDomain string
	StartDate     string // YYYY-MM-DD
	EndDate       string // YYYY-MM-DD
	FileName      string
	UserAgent     string
	Country       string
	Region        string
	Referer       string
	Limit         int
	SortOrder     SortOrder
	SortBy        string // "requests" or "bandwidth"
	DateInterval  DateInterval
}

// TopUsageItem is one ranked entry of gateway analytics.
type TopUsageItem struct {
	Value     string `json:"value"`
	Requests  int64  `json:"requests"`
	Bandwidth int64  `json:"bandwidth"`
}

// TimePeriod is one bucket of a time-series analytics response.
type TimePeriod struct {
	PeriodStartTime string `json:"period_start_time"`
	Requests        int64  `json:"requests"`
	Bandwidth       int64  `json:"bandwidth"`
}

// TopUsageResponse carries either ranked items (Data) or time
// buckets (TimePeriods), depending on the query.
type TopUsageResponse struct {
	Data           []TopUsageItem `json:"data,omitempty"`
	TotalRequests  int64          `json:"total_requests,omitempty"`
	TotalBandwidth int64          `json:"total_bandwidth,omitempty"`
	TimePeriods    []TimePeriod   `json:"time_periods,omitempty"`
}

// UserPinnedDataResponse reports account usage. Sizes are bytes and may be
// encoded by the API either as numbers or numeric strings.
type UserPinnedDataResponse struct {
	PinCount                     int64           `json:"pin_count"`
	PinSizeTotal                 decimal.Decimal `json:"pin_size_total"`
	PinSizeWithReplicationsTotal decimal.Decimal `json:"pin_size_with_replications_total"`
}
