// Copyright Envoy AI Gateway Authors
// SPDX-License-Identifier: Apache-2.0
// The full text of the Apache license is available in the LICENSE file at
// the root of the repo.

package transport

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"time"
)

// Caller wraps a single HTTP attempt in a call policy. Cancellation comes in
// through the context and is passed to the attempt unchanged.
type Caller interface {
	Call(ctx context.Context, attempt func(context.Context) (*http.Response, error)) (*http.Response, error)
}

// OnceCaller performs the attempt exactly once, with no retry policy.
type OnceCaller struct{}

// Call implements [Caller.Call].
func (OnceCaller) Call(ctx context.Context, attempt func(context.Context) (*http.Response, error)) (*http.Response, error) {
	return attempt(ctx)
}

const (
	defaultMaxAttempts = 3
	defaultBaseDelay   = 500 * time.Millisecond
	defaultMaxDelay    = 10 * time.Second
)

// RetryCaller retries network failures and retryable statuses (429 and 5xx)
// with capped exponential backoff and full jitter. The zero value uses the
// defaults. Non-retryable responses are returned as-is: classifying a non-2xx
// response is the original caller's concern.
type RetryCaller struct {
	// MaxAttempts is the total attempt budget including the first one.
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// Call implements [Caller.Call].
func (r *RetryCaller) Call(ctx context.Context, attempt func(context.Context) (*http.Response, error)) (*http.Response, error) {
	maxAttempts := r.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	baseDelay := r.BaseDelay
	if baseDelay <= 0 {
		baseDelay = defaultBaseDelay
	}
	maxDelay := r.MaxDelay
	if maxDelay <= 0 {
		maxDelay = defaultMaxDelay
	}

	var lastErr error
	for i := 0; ; i++ {
		resp, err := attempt(ctx)
		if err == nil {
			if !retryableStatus(resp.StatusCode) || i+1 >= maxAttempts {
				return resp, nil
			}
			// Drain so the underlying connection can be reused.
			_, _ = io.Copy(io.Discard, resp.Body)
			_ = resp.Body.Close()
			lastErr = fmt.Errorf("retryable status %s", resp.Status)
		} else {
			if i+1 >= maxAttempts {
				return nil, fmt.Errorf("after %d attempts: %w", maxAttempts, err)
			}
			lastErr = err
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("canceled while retrying (last error: %w): %w", lastErr, ctx.Err())
		case <-time.After(backoffDelay(i, baseDelay, maxDelay)):
		}
	}
}

func retryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= 500
}

// backoffDelay returns a full-jitter delay for the given zero-based attempt.
func backoffDelay(attempt int, base, max time.Duration) time.Duration {
	delay := base << attempt
	if delay > max || delay <= 0 {
		delay = max
	}
	return time.Duration(rand.Int64N(int64(delay)) + 1)
}
