package llmprovider_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"parts-support-chat/pkg/llmprovider"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Info(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Warn(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Error(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (m *mockLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}

// mockProvider fails a configurable number of times before succeeding.
type mockProvider struct {
	name     string
	failures int
	calls    int
	response *llmprovider.Response
}

func (p *mockProvider) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	p.calls++
	if p.calls <= p.failures {
		return nil, errors.New("simulated failure")
	}
	if p.response != nil {
		return p.response, nil
	}
	return &llmprovider.Response{Content: "ok", ProviderName: p.name}, nil
}

func (p *mockProvider) Name() string  { return p.name }
func (p *mockProvider) Model() string { return p.name + "-model" }

func TestManagerGenerateContent(t *testing.T) {
	req := &llmprovider.Request{
		Messages: []llmprovider.Message{{Role: "user", Content: "hello"}},
	}

	t.Run("No Providers", func(t *testing.T) {
		m := llmprovider.NewManager(nil, &llmprovider.Config{RetryAttempts: 1}, &mockLogger{})
		_, err := m.GenerateContent(context.Background(), req)
		if !errors.Is(err, llmprovider.ErrNoProvidersConfigured) {
			t.Errorf("expected ErrNoProvidersConfigured, got %v", err)
		}
	})

	t.Run("First Provider Succeeds", func(t *testing.T) {
		p1 := &mockProvider{name: "primary"}
		p2 := &mockProvider{name: "secondary"}
		m := llmprovider.NewManager(
			[]llmprovider.Provider{p1, p2},
			&llmprovider.Config{FallbackEnabled: true, RetryAttempts: 1},
			&mockLogger{},
		)

		resp, err := m.GenerateContent(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.ProviderName != "primary" {
			t.Errorf("expected primary provider, got %s", resp.ProviderName)
		}
		if p2.calls != 0 {
			t.Errorf("secondary provider should not have been called, got %d calls", p2.calls)
		}
	})

	t.Run("Fallback To Second Provider", func(t *testing.T) {
		p1 := &mockProvider{name: "primary", failures: 10}
		p2 := &mockProvider{name: "secondary"}
		m := llmprovider.NewManager(
			[]llmprovider.Provider{p1, p2},
			&llmprovider.Config{FallbackEnabled: true, RetryAttempts: 1},
			&mockLogger{},
		)

		resp, err := m.GenerateContent(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.ProviderName != "secondary" {
			t.Errorf("expected secondary provider, got %s", resp.ProviderName)
		}
	})

	t.Run("Fallback Disabled", func(t *testing.T) {
		p1 := &mockProvider{name: "primary", failures: 10}
		p2 := &mockProvider{name: "secondary"}
		m := llmprovider.NewManager(
			[]llmprovider.Provider{p1, p2},
			&llmprovider.Config{FallbackEnabled: false, RetryAttempts: 1},
			&mockLogger{},
		)

		_, err := m.GenerateContent(context.Background(), req)
		if !errors.Is(err, llmprovider.ErrAllProvidersFailed) {
			t.Errorf("expected ErrAllProvidersFailed, got %v", err)
		}
		if p2.calls != 0 {
			t.Errorf("secondary provider should not have been called with fallback disabled")
		}
	})

	t.Run("Retry Within Provider", func(t *testing.T) {
		p1 := &mockProvider{name: "primary", failures: 2}
		m := llmprovider.NewManager(
			[]llmprovider.Provider{p1},
			&llmprovider.Config{RetryAttempts: 3, RetryDelay: time.Millisecond},
			&mockLogger{},
		)

		resp, err := m.GenerateContent(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Content != "ok" {
			t.Errorf("unexpected content %q", resp.Content)
		}
		if p1.calls != 3 {
			t.Errorf("expected 3 attempts, got %d", p1.calls)
		}
	})

	t.Run("All Providers Fail", func(t *testing.T) {
		p1 := &mockProvider{name: "primary", failures: 10}
		p2 := &mockProvider{name: "secondary", failures: 10}
		m := llmprovider.NewManager(
			[]llmprovider.Provider{p1, p2},
			&llmprovider.Config{FallbackEnabled: true, RetryAttempts: 1},
			&mockLogger{},
		)

		_, err := m.GenerateContent(context.Background(), req)
		if !errors.Is(err, llmprovider.ErrAllProvidersFailed) {
			t.Errorf("expected ErrAllProvidersFailed, got %v", err)
		}
	})
}
