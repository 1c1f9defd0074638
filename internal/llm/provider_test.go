package llm

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/abhisek/simplify/internal/store"
)

func TestMockProvider_FIFO(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"numerator":6,"denominator":8}`), Usage: Usage{InputTokens: 10}},
		MockResponse{Content: json.RawMessage(`{"numerator":3,"denominator":7}`)},
	)

	first, err := mock.Generate(context.Background(), Request{Schema: fractionSchema()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(first.Content) != `{"numerator":6,"denominator":8}` || first.Usage.InputTokens != 10 {
		t.Errorf("first = %s %+v", first.Content, first.Usage)
	}

	second, err := mock.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(second.Content) != `{"numerator":3,"denominator":7}` {
		t.Errorf("second = %s", second.Content)
	}

	_, err = mock.Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("empty queue: expected ErrProviderUnavailable, got %T", err)
	}
	if mock.CallCount() != 3 {
		t.Errorf("calls = %d, want 3", mock.CallCount())
	}
}

func TestMockProvider_ValidatesSchema(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{"numerator":6}`)})

	_, err := mock.Generate(context.Background(), Request{Schema: fractionSchema()})
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got %T (%v)", err, err)
	}
}

func TestMockProvider_ConfiguredError(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrRateLimit{}})
	_, err := mock.Generate(context.Background(), Request{})
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got %T", err)
	}
}

func TestPurposeContext(t *testing.T) {
	ctx := context.Background()
	if p := PurposeFrom(ctx); p != "unknown" {
		t.Fatalf("PurposeFrom(empty) = %q, want unknown", p)
	}
	ctx = WithPurpose(ctx, PurposeHint)
	if p := PurposeFrom(ctx); p != PurposeHint {
		t.Fatalf("PurposeFrom = %q, want %q", p, PurposeHint)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"anthropic without key", Config{Provider: "anthropic"}, true},
		{"anthropic with key", Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "k"}}, false},
		{"openai without key", Config{Provider: "openai"}, true},
		{"gemini with key", Config{Provider: "gemini", Gemini: GeminiConfig{APIKey: "k"}}, false},
		{"openrouter without key", Config{Provider: "openrouter"}, true},
		{"mock needs no key", Config{Provider: "mock"}, false},
		{"unknown provider", Config{Provider: "unknown"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Validate(); (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func clearProviderEnv(t *testing.T) {
	for _, k := range []string{
		"SIMPLIFY_LLM_PROVIDER", "SIMPLIFY_GEMINI_API_KEY", "SIMPLIFY_OPENAI_API_KEY",
		"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY",
	} {
		t.Setenv(k, "")
	}
}

func TestResolveConfig(t *testing.T) {
	clearProviderEnv(t)

	t.Setenv("OPENAI_API_KEY", "sk-discovered")
	cfg := ResolveConfig()
	if cfg.Provider != "openai" || cfg.OpenAI.APIKey != "sk-discovered" {
		t.Errorf("discovered = %s %q", cfg.Provider, cfg.OpenAI.APIKey)
	}

	t.Setenv("SIMPLIFY_LLM_PROVIDER", "gemini")
	t.Setenv("SIMPLIFY_GEMINI_API_KEY", "g-key")
	cfg = ResolveConfig()
	if cfg.Provider != "gemini" || cfg.Gemini.APIKey != "g-key" {
		t.Errorf("explicit = %s %q", cfg.Provider, cfg.Gemini.APIKey)
	}
}

func TestNewProvider_Mock(t *testing.T) {
	p, err := NewProvider(context.Background(), Config{Provider: "mock"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "mock" {
		t.Errorf("model = %q, want mock", p.ModelID())
	}

	if _, err := NewProvider(context.Background(), Config{Provider: "openai"}, nil); err == nil {
		t.Error("expected error for openai without key")
	}
}

func TestLoggingProvider_RecordsEvents(t *testing.T) {
	s, err := store.Open(filepath.Join(t.TempDir(), "llm.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer s.Close()
	repo := s.EventRepo()

	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"numerator":6,"denominator":8}`), Usage: Usage{InputTokens: 30, OutputTokens: 8}},
		MockResponse{Err: errors.New("boom")},
	)
	p := WithLogging(mock, "mock", repo)

	ctx := WithSubject(WithPurpose(context.Background(), PurposeExerciseGen), "6/8")
	req := Request{
		System:   "sys",
		Messages: []Message{{Role: RoleUser, Content: "go"}},
		Schema:   fractionSchema(),
	}
	if _, err := p.Generate(ctx, req); err != nil {
		t.Fatalf("first generate: %v", err)
	}
	if _, err := p.Generate(ctx, req); err == nil {
		t.Fatal("second generate: expected error")
	}

	events, err := repo.QueryLLMEvents(context.Background(), store.QueryOpts{})
	if err != nil {
		t.Fatalf("query events: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("events = %d, want 2", len(events))
	}
	failed, succeeded := events[0], events[1]
	if failed.Success || failed.ErrorMessage != "boom" {
		t.Errorf("failed event = %+v", failed)
	}
	if !succeeded.Success || succeeded.InputTokens != 30 || succeeded.Purpose != PurposeExerciseGen || succeeded.Provider != "mock" {
		t.Errorf("succeeded event = %+v", succeeded)
	}
	if succeeded.Subject != "6/8" {
		t.Errorf("Subject = %q, want 6/8", succeeded.Subject)
	}
	if succeeded.RequestBody == "" || succeeded.ResponseBody == "" {
		t.Error("expected request and response bodies to be captured")
	}
}

func TestTimeoutProvider(t *testing.T) {
	slow := providerFunc(func(ctx context.Context, _ Request) (*Response, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})
	p := WithTimeout(slow, 10*time.Millisecond)

	_, err := p.Generate(context.Background(), Request{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected DeadlineExceeded, got %v", err)
	}
}

type providerFunc func(ctx context.Context, req Request) (*Response, error)

func (f providerFunc) Generate(ctx context.Context, req Request) (*Response, error) {
	return f(ctx, req)
}

func (f providerFunc) ModelID() string { return "func" }
