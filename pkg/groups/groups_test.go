package groups

import (
	"context"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/pinata-sdk/pinata-go/internal/testutil"
	"github.com/pinata-sdk/pinata-go/pkg/apierr"
	"github.com/pinata-sdk/pinata-go/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const groupID = "3778c10d-452e-4def-8299-ee6bc548bdb0"

const groupBody = `{"id":"` + groupID + `","user_id":"u-1","name":"My Group","updatedAt":"2024-05-01T10:00:00Z","createdAt":"2024-05-01T10:00:00Z"}`

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	return New(testutil.NewTransport(t, h))
}

func TestCreate(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/groups", r.URL.Path)
		assert.Equal(t, "sdk/createGroup", r.Header.Get("Source"))
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"name":"My Group"}`, string(body))
		_, _ = w.Write([]byte(groupBody))
	})

	g, err := c.Create(context.Background(), model.GroupOptions{Name: "My Group"})
	require.NoError(t, err)
	assert.Equal(t, groupID, g.ID)
	assert.Equal(t, "My Group", g.Name)
}

func TestCreate_ServerError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"boom"}`))
	})

	_, err := c.Create(context.Background(), model.GroupOptions{Name: "x"})
	var netErr *apierr.NetworkError
	require.True(t, errors.As(err, &netErr))
	assert.Equal(t, http.StatusInternalServerError, netErr.StatusCode)
	assert.Equal(t, map[string]any{"error": "boom"}, netErr.Details)
}

func TestUpdate(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/groups/"+groupID, r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"name":"Renamed"}`, string(body))
		_, _ = w.Write([]byte(groupBody))
	})

	g, err := c.Update(context.Background(), model.UpdateGroupOptions{GroupID: groupID, Name: "Renamed"})
	require.NoError(t, err)
	assert.Equal(t, groupID, g.ID)
}

func TestDelete(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/groups/"+groupID, r.URL.Path)
		assert.Equal(t, "sdk/deleteGroup", r.Header.Get("Source"))
		_, _ = w.Write([]byte("OK"))
	})

	out, err := c.Delete(context.Background(), model.GetGroupOptions{GroupID: groupID})
	require.NoError(t, err)
	assert.Equal(t, "OK", out)
}

func TestMissingGroupID(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})

	var v *apierr.ValidationError
	_, err := c.Update(context.Background(), model.UpdateGroupOptions{Name: "x"})
	assert.True(t, errors.As(err, &v))
	_, err = c.Delete(context.Background(), model.GetGroupOptions{GroupID: "  "})
	assert.True(t, errors.As(err, &v))
}

func TestUnauthorized(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := c.Delete(context.Background(), model.GetGroupOptions{GroupID: groupID})
	var authErr *apierr.AuthenticationError
	require.True(t, errors.As(err, &authErr))
	assert.Equal(t, "Authentication failed", authErr.Error())
}
