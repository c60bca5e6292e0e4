package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pinata-sdk/pinata-go/pkg/apierr"
	"github.com/pinata-sdk/pinata-go/pkg/config"
)

func newTransport(t *testing.T, h http.HandlerFunc, mutate func(*config.Config)) *Transport {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	cfg := &config.Config{JWT: "config-jwt", EndpointURL: srv.URL}
	if mutate != nil {
		mutate(cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	tr, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return tr
}

func TestDoSetsHeaders(t *testing.T) {
	tr := newTransport(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer config-jwt" {
			t.Errorf("unexpected Authorization: %q", got)
		}
		if got := r.Header.Get("Source"); got != "custom-source" {
			t.Errorf("custom header should override Source, got %q", got)
		}
		if got := r.Header.Get("X-Team"); got != "storage" {
			t.Errorf("missing custom header, got %q", got)
		}
		_, _ = w.Write([]byte("OK"))
	}, func(cfg *config.Config) {
		cfg.CustomHeaders = map[string]string{"X-Team": "storage", "Source": "custom-source"}
	})

	text, err := tr.DoText(context.Background(), Call{Op: "test", Source: "sdk/test", Method: http.MethodGet, Path: "/x"})
	if err != nil {
		t.Fatalf("DoText: %v", err)
	}
	if text != "OK" {
		t.Fatalf("unexpected body %q", text)
	}
}

func TestDoPerCallJWT(t *testing.T) {
	tr := newTransport(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer call-jwt" {
			t.Errorf("unexpected Authorization: %q", got)
		}
		_, _ = w.Write([]byte(`{}`))
	}, nil)

	var out map[string]any
	if err := tr.DoJSON(context.Background(), Call{Op: "test", Method: http.MethodGet, Path: "/", JWT: "call-jwt"}, &out); err != nil {
		t.Fatalf("DoJSON: %v", err)
	}
}

func TestDoMapsStatusCodes(t *testing.T) {
	tests := []struct {
		status int
		check  func(error) bool
	}{
		{http.StatusUnauthorized, func(err error) bool { var e *apierr.AuthenticationError; return errors.As(err, &e) }},
		{http.StatusForbidden, func(err error) bool { var e *apierr.AuthenticationError; return errors.As(err, &e) }},
		{http.StatusBadRequest, func(err error) bool { var e *apierr.NetworkError; return errors.As(err, &e) }},
		{http.StatusInternalServerError, func(err error) bool { var e *apierr.NetworkError; return errors.As(err, &e) }},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			tr := newTransport(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{"error":{"reason":"x"}}`))
			}, nil)

			_, err := tr.Do(context.Background(), Call{Op: "test", Method: http.MethodGet, Path: "/"})
			if !tt.check(err) {
				t.Fatalf("unexpected error type %T: %v", err, err)
			}
			if apierr.StatusCode(err) != tt.status {
				t.Fatalf("unexpected status %d", apierr.StatusCode(err))
			}
		})
	}
}

func TestDoRequiresJWT(t *testing.T) {
	cfg := &config.Config{EndpointURL: "http://localhost"}
	tr, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	_, err = tr.Do(context.Background(), Call{Method: http.MethodGet, Path: "/"})
	var v *apierr.ValidationError
	if !errors.As(err, &v) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestDoWrapsTransportErrors(t *testing.T) {
	tr := newTransport(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}, func(cfg *config.Config) {
		cfg.Timeouts.Request = 20 * time.Millisecond
	})

	_, err := tr.Do(context.Background(), Call{Op: "slowOp", Method: http.MethodGet, Path: "/"})
	var p *apierr.PinataError
	if !errors.As(err, &p) {
		t.Fatalf("expected PinataError, got %T: %v", err, err)
	}
}

func TestDoDecodeFailure(t *testing.T) {
	tr := newTransport(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}, nil)

	var out map[string]any
	err := tr.DoJSON(context.Background(), Call{Op: "decodeOp", Method: http.MethodGet, Path: "/"}, &out)
	var p *apierr.PinataError
	if !errors.As(err, &p) {
		t.Fatalf("expected PinataError, got %v", err)
	}
}

func TestNewRequiresConfig(t *testing.T) {
	if _, err := New(nil); err == nil {
		t.Fatal("expected error for nil config")
	}
	if _, err := New(&config.Config{EndpointURL: "not a url"}); err == nil {
		t.Fatal("expected error for relative endpoint")
	}
}
