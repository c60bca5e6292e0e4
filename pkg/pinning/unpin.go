package pinning

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/pinata-sdk/pinata-go/internal/api"
	"github.com/pinata-sdk/pinata-go/internal/httpx"
	"github.com/pinata-sdk/pinata-go/pkg/apierr"
	"github.com/pinata-sdk/pinata-go/pkg/model"
	"go.uber.org/zap"
)

// skippedStatus is reported for items left unsent after the pacing policy stopped the batch.
const skippedStatus = "skipped: unpin pacing policy stopped the batch"

// Unpin removes the pins of hashes one at a time, pausing between requests
// according to the pacing policy. A failing item does not abort the batch:
// its Status carries the error message instead of the API response. The
// responses follow the order of hashes.
//
// Cancelling ctx stops the batch; the responses collected so far are
// returned together with ctx.Err().
func (c *Client) Unpin(ctx context.Context, hashes []string) ([]model.UnpinResponse, error) {
	if c.transport.Config().JWT == "" {
		return nil, apierr.ErrMissingJWT
	}

	pacer := c.newPacer()
	pacer.Reset()

	responses := make([]model.UnpinResponse, 0, len(hashes))
	for i, hash := range hashes {
		if i > 0 {
			delay := pacer.NextBackOff()
			if delay == backoff.Stop {
				for _, rest := range hashes[i:] {
					responses = append(responses, model.UnpinResponse{Hash: rest, Status: skippedStatus})
				}
				return responses, nil
			}
			if err := sleep(ctx, delay); err != nil {
				return responses, err
			}
		}

		status, err := c.transport.DoText(ctx, api.Call{
			Op:          "unpin",
			Method:      http.MethodDelete,
			Path:        unpinPath + url.PathEscape(hash),
			ContentType: httpx.ContentTypeJSON,
		})
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return responses, ctxErr
			}
			zap.L().Warn("unpin failed", zap.String("cid", hash), zap.Error(err))
			status = err.Error()
		}
		responses = append(responses, model.UnpinResponse{Hash: hash, Status: status})
	}
	return responses, nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
