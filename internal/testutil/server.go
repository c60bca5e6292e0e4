// Package testutil holds helpers shared by the HTTP-facing package tests.
package testutil

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pinata-sdk/pinata-go/internal/api"
	"github.com/pinata-sdk/pinata-go/pkg/config"
)

// StartHTTPServer starts handler on a loopback listener and closes it when
// the test ends. Tests are skipped where the sandbox forbids listening.
func StartHTTPServer(t testing.TB, handler http.Handler) *httptest.Server {
	t.Helper()
	defer func() {
		if r := recover(); r != nil {
			msg := fmt.Sprint(r)
			if strings.Contains(msg, "operation not permitted") {
				t.Skip("network operations not permitted in sandbox")
			}
			panic(r)
		}
	}()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

// NewTransport returns a transport authorized with the JWT "test-jwt" and
// pointed at a server running handler. mutate may adjust the configuration
// before it is validated.
func NewTransport(t testing.TB, handler http.Handler, mutate ...func(*config.Config)) *api.Transport {
	t.Helper()
	srv := StartHTTPServer(t, handler)

	cfg := &config.Config{JWT: "test-jwt", EndpointURL: srv.URL}
	for _, m := range mutate {
		m(cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate config: %v", err)
	}
	tr, err := api.New(cfg)
	if err != nil {
		t.Fatalf("new transport: %v", err)
	}
	return tr
}
