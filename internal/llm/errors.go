package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Provider errors. Callers branch on them with errors.As; an error of any
// other type is treated as a transient failure.

// ErrRateLimit is an HTTP 429. RetryAfter is zero when the provider gave
// no hint.
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	msg := "LLM rate limited"
	if e.RetryAfter > 0 {
		msg = fmt.Sprintf("%s, retry in %s", msg, e.RetryAfter)
	}
	return withCause(msg, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrInvalidResponse is a reply that is not the JSON the request's schema
// asked for, such as an exercise without a denominator.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return withCause("LLM reply does not match the schema", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrProviderUnavailable covers network failures, 5xx replies and an empty
// mock queue.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	return withCause("LLM provider unavailable", e.Err)
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrMaxTokensExceeded is a structured reply cut off at MaxTokens. Asking
// again with the same budget gives the same cut, so it is never retried.
type ErrMaxTokensExceeded struct {
	Content json.RawMessage
}

func (e *ErrMaxTokensExceeded) Error() string {
	return "LLM reply cut off at the token limit"
}

func withCause(msg string, err error) string {
	if err == nil {
		return msg
	}
	return msg + ": " + err.Error()
}

// failure sorts errors for the retry loop.
type failure int

const (
	failTransient failure = iota // network, 5xx, rate limit
	failBadReply                 // schema mismatch, worth one more try
	failFinal                    // cancellation or truncation
)

func classify(err error) failure {
	var (
		cut     *ErrMaxTokensExceeded
		invalid *ErrInvalidResponse
	)
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded), errors.As(err, &cut):
		return failFinal
	case errors.As(err, &invalid):
		return failBadReply
	}
	return failTransient
}
