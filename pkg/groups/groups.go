// Package groups manages the groups pinned content can be organized into.
// Deleting a group leaves its content pinned.
package groups

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/pinata-sdk/pinata-go/internal/api"
	"github.com/pinata-sdk/pinata-go/internal/httpx"
	"github.com/pinata-sdk/pinata-go/pkg/apierr"
	"github.com/pinata-sdk/pinata-go/pkg/model"
	"go.uber.org/zap"
)

const groupsPath = "/groups"

// Client performs group operations.
type Client struct {
	transport *api.Transport
}

// New returns a groups client sharing t.
func New(t *api.Transport) *Client {
	return &Client{transport: t}
}

// Create creates a group named opts.Name.
func (c *Client) Create(ctx context.Context, opts model.GroupOptions) (*model.GroupResponseItem, error) {
	body, err := httpx.JSONBody(opts)
	if err != nil {
		return nil, apierr.Wrap("createGroup", err)
	}

	var out model.GroupResponseItem
	err = c.transport.DoJSON(ctx, api.Call{
		Op:          "createGroup",
		Source:      "sdk/createGroup",
		Method:      http.MethodPost,
		Path:        groupsPath,
		Body:        body,
		ContentType: httpx.ContentTypeJSON,
	}, &out)
	if err != nil {
		return nil, err
	}
	zap.L().Debug("group created", zap.String("id", out.ID), zap.String("name", out.Name))
	return &out, nil
}

// Update renames the group opts.GroupID.
func (c *Client) Update(ctx context.Context, opts model.UpdateGroupOptions) (*model.GroupResponseItem, error) {
	path, err := groupPath(opts.GroupID)
	if err != nil {
		return nil, err
	}
	body, err := httpx.JSONBody(opts)
	if err != nil {
		return nil, apierr.Wrap("updateGroup", err)
	}

	var out model.GroupResponseItem
	err = c.transport.DoJSON(ctx, api.Call{
		Op:          "updateGroup",
		Source:      "sdk/updateGroup",
		Method:      http.MethodPut,
		Path:        path,
		Body:        body,
		ContentType: httpx.ContentTypeJSON,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes the group opts.GroupID and returns the API confirmation text.
func (c *Client) Delete(ctx context.Context, opts model.GetGroupOptions) (string, error) {
	path, err := groupPath(opts.GroupID)
	if err != nil {
		return "", err
	}
	out, err := c.transport.DoText(ctx, api.Call{
		Op:          "deleteGroup",
		Source:      "sdk/deleteGroup",
		Method:      http.MethodDelete,
		Path:        path,
		ContentType: httpx.ContentTypeJSON,
	})
	if err != nil {
		return "", err
	}
	zap.L().Debug("group deleted", zap.String("id", opts.GroupID))
	return out, nil
}

func groupPath(id string) (string, error) {
	if strings.TrimSpace(id) == "" {
		return "", apierr.Validation("group id is required")
	}
	return groupsPath + "/" + url.PathEscape(id), nil
}
