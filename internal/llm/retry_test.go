package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"
)

var exerciseReply = json.RawMessage(`{"numerator":30,"denominator":80,"reducible":true}`)

func fastRetry() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Millisecond,
		MaxWait:     5 * time.Millisecond,
		Multiplier:  2,
	}
}

func down() MockResponse {
	return MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("connection refused")}}
}

func badReply() MockResponse {
	return MockResponse{Err: &ErrInvalidResponse{Content: json.RawMessage(`{"numerator":30}`), Err: errors.New("missing denominator")}}
}

func TestRetrySequences(t *testing.T) {
	tests := []struct {
		name      string
		responses []MockResponse
		wantCalls int
		wantErr   bool
	}{
		{"first try", []MockResponse{{Content: exerciseReply}}, 1, false},
		{"outage then reply", []MockResponse{down(), {Content: exerciseReply}}, 2, false},
		{"outage on every attempt", []MockResponse{down(), down(), down(), {Content: exerciseReply}}, 3, true},
		{"rate limited then reply", []MockResponse{{Err: &ErrRateLimit{RetryAfter: time.Millisecond}}, {Content: exerciseReply}}, 2, false},
		{"one bad reply is retried", []MockResponse{badReply(), {Content: exerciseReply}}, 2, false},
		{"second bad reply stops", []MockResponse{badReply(), badReply(), {Content: exerciseReply}}, 2, true},
		{"truncated reply stops", []MockResponse{{Err: &ErrMaxTokensExceeded{}}, {Content: exerciseReply}}, 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := NewMockProvider(tt.responses...)
			resp, err := WithRetry(mock, fastRetry()).Generate(context.Background(), Request{})

			if (err != nil) != tt.wantErr {
				t.Fatalf("Generate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && string(resp.Content) != string(exerciseReply) {
				t.Errorf("Content = %s, want %s", resp.Content, exerciseReply)
			}
			if got := mock.CallCount(); got != tt.wantCalls {
				t.Errorf("calls = %d, want %d", got, tt.wantCalls)
			}
		})
	}
}

func TestRetryKeepsErrorType(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrMaxTokensExceeded{}})
	_, err := WithRetry(mock, fastRetry()).Generate(context.Background(), Request{})

	var cut *ErrMaxTokensExceeded
	if !errors.As(err, &cut) {
		t.Errorf("error = %T, want *ErrMaxTokensExceeded", err)
	}
}

func TestRetryStopsOnCancel(t *testing.T) {
	mock := NewMockProvider(down(), down(), MockResponse{Content: exerciseReply})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := WithRetry(mock, fastRetry()).Generate(ctx, Request{})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
	if got := mock.CallCount(); got != 1 {
		t.Errorf("calls = %d, want 1", got)
	}
}

func TestRetryWithoutAttemptsCallsOnce(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: exerciseReply})
	p := WithRetry(mock, RetryConfig{})

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if got := mock.CallCount(); got != 1 {
		t.Errorf("calls = %d, want 1", got)
	}
	if p.ModelID() != mock.ModelID() {
		t.Errorf("ModelID() = %q, want %q", p.ModelID(), mock.ModelID())
	}
}

func TestBackoff(t *testing.T) {
	r := &RetryProvider{config: RetryConfig{
		MaxAttempts: 8,
		InitialWait: 200 * time.Millisecond,
		MaxWait:     2 * time.Second,
		Multiplier:  2,
	}}

	for attempt := range 8 {
		wait := r.backoff(attempt, errors.New("timeout"))
		if wait < 0 || wait > 2400*time.Millisecond {
			t.Errorf("attempt %d: wait = %v, want within cap plus 20%%", attempt, wait)
		}
	}
	if wait := r.backoff(0, &ErrRateLimit{RetryAfter: 5 * time.Second}); wait != 5*time.Second {
		t.Errorf("rate-limited wait = %v, want 5s", wait)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		err  error
		want failure
	}{
		{&ErrProviderUnavailable{}, failTransient},
		{&ErrRateLimit{}, failTransient},
		{errors.New("EOF"), failTransient},
		{badReply().Err, failBadReply},
		{fmt.Errorf("hint: %w", badReply().Err), failBadReply},
		{&ErrMaxTokensExceeded{}, failFinal},
		{context.DeadlineExceeded, failFinal},
		{&ErrProviderUnavailable{Err: context.Canceled}, failFinal},
	}
	for _, tt := range tests {
		if got := classify(tt.err); got != tt.want {
			t.Errorf("classify(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{&ErrRateLimit{}, "LLM rate limited"},
		{&ErrRateLimit{RetryAfter: 2 * time.Second, Err: errors.New("429")}, "LLM rate limited, retry in 2s: 429"},
		{&ErrProviderUnavailable{}, "LLM provider unavailable"},
		{badReply().Err, "LLM reply does not match the schema: missing denominator"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}
