package catalog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"studio-search/internal/pkg/errs"

	"github.com/cenkalti/backoff/v4"
)

const maxBodyBytes = 32 << 20

var ErrBodyTooLarge = errs.New("catalog body exceeds size limit")

// HTTPFetcher GETs a document, retrying network errors and 5xx/429 with exponential backoff.
type HTTPFetcher struct {
	client          *http.Client
	maxRetries      uint64
	initialInterval time.Duration
	maxBody         int64
	logger          *slog.Logger
}

func NewHTTPFetcher(timeout time.Duration, maxRetries uint64, logger *slog.Logger) *HTTPFetcher {
	return &HTTPFetcher{
		client:          &http.Client{Timeout: timeout},
		maxRetries:      maxRetries,
		initialInterval: 500 * time.Millisecond,
		maxBody:         maxBodyBytes,
		logger:          logger,
	}
}

type statusError struct {
	url    string
	status int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status %d", e.url, e.status)
}

func (f *HTTPFetcher) Get(ctx context.Context, url string) ([]byte, error) {
	var body []byte

	op := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(err)
		}

		resp, err := f.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			sErr := &statusError{url: url, status: resp.StatusCode}
			if resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests {
				return sErr
			}
			return backoff.Permanent(sErr)
		}

		// one extra byte tells an oversized body apart from one exactly at the limit
		body, err = io.ReadAll(io.LimitReader(resp.Body, f.maxBody+1))
		if err != nil {
			return err
		}
		if int64(len(body)) > f.maxBody {
			body = nil
			return backoff.Permanent(errs.Wrapf(ErrBodyTooLarge, "GET %s: more than %d bytes", url, f.maxBody))
		}
		return nil
	}

	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = f.initialInterval
	policy := backoff.WithContext(backoff.WithMaxRetries(eb, f.maxRetries), ctx)

	notify := func(err error, wait time.Duration) {
		f.logger.Warn("カタログ取得を再試行します", "url", url, "error", err.Error(), "retry_wait", wait)
	}

	if err := backoff.RetryNotify(op, policy, notify); err != nil {
		return nil, err
	}
	return body, nil
}
