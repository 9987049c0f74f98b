// Copyright (c) 2026 NocoDB Go Client Contributors.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package network provides retry and rate limiting for NocoDB API calls.
package network

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// defNumAttempts is the default number of retry attempts.
const defNumAttempts = 3

var (
	// maxAllowedWaitTime is the maximum time to wait for a transient error.
	maxAllowedWaitTime = 5 * time.Minute
	// waitFn returns the amount of time to wait before retrying depending
	// on the current attempt.  This variable exists to reduce the test
	// time.
	waitFn = cubicWait
	// netWaitFn is the wait function for transient network errors.
	netWaitFn = expWait
)

// ErrRetryFailed is returned if the number of retry attempts exceeded the
// limit and the callback was unable to complete without errors.
var ErrRetryFailed = errors.New("callback was unable to complete without errors within the allowed number of retries")

// statusError is implemented by API errors that carry an HTTP status code.
type statusError interface {
	HTTPStatus() int
}

// retryAfterError is implemented by API errors that carry a server-supplied
// Retry-After duration.
type retryAfterError interface {
	RetryAfter() time.Duration
}

// WithRetry runs the callback fn after waiting on the rate limiter.  If fn
// returns a rate-limit error (HTTP 429) it sleeps for the server-requested
// duration and retries; recoverable server errors and transient network
// errors are retried with a growing delay, up to maxAttempts times.
func WithRetry(ctx context.Context, lim *rate.Limiter, maxAttempts int, fn func() error) error {
	if maxAttempts == 0 {
		maxAttempts = defNumAttempts
	}
	var ok bool
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if err := lim.Wait(ctx); err != nil {
			return err
		}

		cbErr := fn()
		if cbErr == nil {
			ok = true
			break
		}

		var (
			se statusError
			ne *net.OpError
		)
		switch {
		case errors.As(cbErr, &se):
			code := se.HTTPStatus()
			if code == http.StatusTooManyRequests {
				delay := retryAfter(cbErr, attempt)
				slog.DebugContext(ctx, "rate limited, sleeping", "delay", delay, "attempt", attempt+1)
				if err := sleepCtx(ctx, delay); err != nil {
					return err
				}
				continue
			}
			if isRecoverable(code) {
				delay := waitFn(attempt)
				slog.DebugContext(ctx, "server error, sleeping", "status", code, "delay", delay, "attempt", attempt+1)
				if err := sleepCtx(ctx, delay); err != nil {
					return err
				}
				continue
			}
		case errors.As(cbErr, &ne):
			if ne.Op == "read" || ne.Op == "write" {
				delay := netWaitFn(attempt)
				slog.DebugContext(ctx, "network error, sleeping", "op", ne.Op, "delay", delay, "attempt", attempt+1)
				if err := sleepCtx(ctx, delay); err != nil {
					return err
				}
				continue
			}
		}

		return fmt.Errorf("callback error: %w", cbErr)
	}
	if !ok {
		return ErrRetryFailed
	}
	return nil
}

// retryAfter returns the server-requested wait time when the error carries
// one, falling back to the standard backoff for the attempt.
func retryAfter(err error, attempt int) time.Duration {
	var ra retryAfterError
	if errors.As(err, &ra) && ra.RetryAfter() > 0 {
		return ra.RetryAfter()
	}
	return waitFn(attempt)
}

// sleepCtx sleeps for d or until ctx is cancelled.
func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// isRecoverable returns true if the status code is a recoverable error.
func isRecoverable(statusCode int) bool {
	return (statusCode >= http.StatusInternalServerError && statusCode <= 599 && statusCode != http.StatusNotImplemented) || statusCode == http.StatusRequestTimeout
}

// cubicWait is the wait time function.  Time is calculated as (x+2)^3
// seconds, where x is the current attempt number.  The maximum wait time is
// capped at 5 minutes.
func cubicWait(attempt int) time.Duration {
	x := attempt + 2 // this is to ensure that we sleep at least 8 seconds.
	delay := time.Duration(x*x*x) * time.Second
	if delay > maxAllowedWaitTime {
		return maxAllowedWaitTime
	}
	return delay
}

// expWait is the exponential wait function for network errors.
func expWait(attempt int) time.Duration {
	delay := time.Duration(1<<uint(attempt)) * time.Second
	if delay > maxAllowedWaitTime {
		return maxAllowedWaitTime
	}
	return delay
}
