// Package http provides an HTTP-based implementation of pageconv.Loader for
// source documents published on the web, and sitemap-based source listing.
package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/pageconv"
	"golang.org/x/time/rate"
)

// DefaultLoadTimeout is the default timeout for HTTP requests.
const DefaultLoadTimeout = 10 * time.Second

// DefaultRetryDelays returns the backoff delays for load retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// Ensure Loader implements pageconv.Loader at compile time.
var _ pageconv.Loader = (*Loader)(nil)

// Loader retrieves source documents over HTTP. Requests are paced by an
// optional rate limit and transient failures are retried with backoff.
type Loader struct {
	client  *http.Client
	timeout time.Duration
	limiter *rate.Limiter
	delays  []time.Duration
	maxSize int64
}

// Option configures a Loader.
type Option func(*Loader)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultLoadTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(l *Loader) {
		l.timeout = d
	}
}

// WithRateLimit limits requests to rps per second with no bursting.
// A non-positive rps disables the limit.
func WithRateLimit(rps float64) Option {
	return func(l *Loader) {
		if rps <= 0 {
			l.limiter = nil
			return
		}
		l.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// WithRetryDelays sets the backoff delays between attempts. An empty slice
// disables retries.
func WithRetryDelays(delays []time.Duration) Option {
	return func(l *Loader) {
		l.delays = delays
	}
}

// WithMaxSize caps the number of bytes read from a response body.
// Defaults to pageconv.MaxDocumentSize.
func WithMaxSize(n int64) Option {
	return func(l *Loader) {
		l.maxSize = n
	}
}

// NewLoader creates a new HTTP-based Loader.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		timeout: DefaultLoadTimeout,
		delays:  DefaultRetryDelays(),
		maxSize: pageconv.MaxDocumentSize,
	}
	for _, opt := range opts {
		opt(l)
	}

	l.client = &http.Client{
		Timeout: l.timeout,
	}

	return l
}

// Load retrieves the document at url. Server errors and transport failures
// are retried; 404 returns ENOTFOUND and other client errors fail at once.
func (l *Loader) Load(ctx context.Context, url string) ([]byte, error) {
	maxAttempts := len(l.delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		data, err := l.load(ctx, url)
		if err == nil {
			return data, nil
		}
		lastErr = err

		if !retryable(err) || attempt >= maxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(l.delays[attempt]):
		}
	}

	return nil, lastErr
}

func (l *Loader) load(ctx context.Context, url string) ([]byte, error) {
	if l.limiter != nil {
		if err := l.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, pageconv.Errorf(pageconv.EINVALID, "invalid URL %q: %v", url, err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, pageconv.Errorf(pageconv.ENOTFOUND, "%s not found", url)
	case resp.StatusCode != http.StatusOK:
		return nil, &statusError{code: resp.StatusCode, url: url}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, l.maxSize+1))
	if err != nil {
		return nil, err
	}
	if int64(len(body)) > l.maxSize {
		return nil, pageconv.Errorf(pageconv.EINVALID, "%s exceeds %d bytes", url, l.maxSize)
	}

	return body, nil
}

// statusError is a non-200 response other than 404.
type statusError struct {
	code int
	url  string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("HTTP %d for %s", e.code, e.url)
}

// retryable reports whether a failed attempt may succeed when repeated.
// Application errors and 4xx responses are final.
func retryable(err error) bool {
	if pageconv.ErrorCode(err) != pageconv.EINTERNAL {
		return false
	}
	var se *statusError
	if errors.As(err, &se) {
		return se.code >= 500 || se.code == http.StatusTooManyRequests
	}
	return true
}
