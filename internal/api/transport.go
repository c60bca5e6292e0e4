// Package api binds the generic HTTP helper to the pinning API: bearer
// authorization, the Source header, custom headers from configuration,
// per-call timeouts and the mapping of failures onto the apierr taxonomy.
package api

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/pinata-sdk/pinata-go/internal/httpx"
	"github.com/pinata-sdk/pinata-go/pkg/apierr"
	"github.com/pinata-sdk/pinata-go/pkg/config"
	"go.uber.org/zap"
)

// Transport issues authorized API calls. It is safe for concurrent use.
type Transport struct {
	client *httpx.Client
	cfg    *config.Config
}

// Call describes one API request.
type Call struct {
	// Op names the operation in error messages, e.g. "listKeys".
	Op string
	// Source is sent as the Source header, e.g. "sdk/listKeys". Optional.
	Source string

	Method      string
	Path        string
	Query       url.Values
	Body        []byte
	ContentType string

	// JWT replaces the configured token for this call when non-empty.
	JWT string
}

// New builds a Transport for cfg. cfg must already be validated.
func New(cfg *config.Config, opts ...httpx.Option) (*Transport, error) {
	if cfg == nil {
		return nil, apierr.Validation("Pinata configuration is missing")
	}
	timeouts := cfg.Timeouts.WithDefaults()
	base := []httpx.Option{httpx.WithHTTPClient(&http.Client{Timeout: timeouts.Request})}

	client, err := httpx.NewClient(cfg.EndpointURL, append(base, opts...)...)
	if err != nil {
		return nil, apierr.Validation("invalid endpoint URL: %v", err)
	}
	return &Transport{client: client, cfg: cfg}, nil
}

// Config returns the configuration the transport was built with.
func (t *Transport) Config() *config.Config {
	return t.cfg
}

// Do sends call and returns the 2xx response. Errors are always one of the
// apierr types.
func (t *Transport) Do(ctx context.Context, call Call) (*httpx.Response, error) {
	if t == nil || t.cfg == nil {
		return nil, apierr.ErrMissingJWT
	}
	jwt := call.JWT
	if jwt == "" {
		jwt = t.cfg.JWT
	}
	if jwt == "" {
		return nil, apierr.ErrMissingJWT
	}
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, t.cfg.Timeouts.WithDefaults().Request)
	defer cancel()

	header := http.Header{}
	header.Set(httpx.HeaderAuthorization, httpx.Bearer(jwt))
	if call.Source != "" {
		header.Set(httpx.HeaderSource, call.Source)
	}
	if call.ContentType != "" {
		header.Set(httpx.HeaderContentType, call.ContentType)
	}
	for k, v := range t.cfg.CustomHeaders {
		header.Set(k, v)
	}

	resp, err := t.client.Do(ctx, &httpx.Request{
		Method: call.Method,
		Path:   call.Path,
		Query:  call.Query,
		Header: header,
		Body:   call.Body,
	})
	if err != nil {
		mapped := mapError(call.Op, err)
		zap.L().Warn("api call failed",
			zap.String("op", call.Op),
			zap.String("method", call.Method),
			zap.String("path", call.Path),
			zap.Error(mapped))
		return nil, mapped
	}
	return resp, nil
}

// DoJSON sends call and decodes the JSON response into out.
func (t *Transport) DoJSON(ctx context.Context, call Call, out any) error {
	resp, err := t.Do(ctx, call)
	if err != nil {
		return err
	}
	if err := resp.DecodeJSON(out); err != nil {
		return apierr.Wrap(call.Op, err)
	}
	return nil
}

// DoText sends call and returns the response body as text.
func (t *Transport) DoText(ctx context.Context, call Call) (string, error) {
	resp, err := t.Do(ctx, call)
	if err != nil {
		return "", err
	}
	return string(resp.Body), nil
}

func mapError(op string, err error) error {
	var httpErr *httpx.HTTPError
	if errors.As(err, &httpErr) {
		return apierr.FromStatus(httpErr.StatusCode, httpErr.Details())
	}
	return apierr.Wrap(op, err)
}
