// Package model defines the data structures exchanged with the pinning API.
//
// # Uploads
//
// UploadOptions tunes a single upload:
//
//	v := 1
//	opts := &model.UploadOptions{
//		Metadata:   &model.PinataMetadata{Name: "report.pdf", KeyValues: map[string]any{"team": "docs"}},
//		GroupID:    "c1d2...",
//		CIDVersion: &v,
//	}
//
// Every upload returns a PinResponse. PinResponse.CID parses the returned
// hash with go-cid.
//
// # Groups, Keys, Analytics
//
// GroupOptions / UpdateGroupOptions / GetGroupOptions drive the group
// endpoints. KeyListQuery filters API keys; nil boolean pointers are left out
// of the query string. TopUsageQuery filters gateway analytics.
//
// # Usage
//
// UserPinnedDataResponse reports the pin count and total pinned bytes. Sizes
// are decimal.Decimal so that very large totals, encoded by the API either as
// numbers or as strings, decode without loss.
package model
