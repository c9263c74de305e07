package usecase

import (
	"context"
	"errors"

	"parts-support-chat/internal/catalog"
	"parts-support-chat/internal/model"
	pkgLog "parts-support-chat/pkg/log"
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

var _ pkgLog.Logger = &mockLogger{}

// fakeStore implements catalog.Store with overridable functions. Unset
// functions return empty results.
type fakeStore struct {
	productByPartID func(id string) (model.Product, bool)
	searchProducts  func(query string, limit int) []model.Product
	orderByID       func(id string) (model.Order, bool)
	ordersByEmail   func(email string, limit int) []model.Order
	modelByTag      func(tag string) (model.ApplianceModel, bool)
	faqs            func() []model.FAQ
}

var _ catalog.Store = &fakeStore{}

func (f *fakeStore) ProductByPartID(id string) (model.Product, bool) {
	if f.productByPartID == nil {
		return model.Product{}, false
	}
	return f.productByPartID(id)
}

func (f *fakeStore) SearchProducts(query string, limit int) []model.Product {
	if f.searchProducts == nil {
		return nil
	}
	return f.searchProducts(query, limit)
}

func (f *fakeStore) OrderByID(id string) (model.Order, bool) {
	if f.orderByID == nil {
		return model.Order{}, false
	}
	return f.orderByID(id)
}

func (f *fakeStore) OrdersByEmail(email string, limit int) []model.Order {
	if f.ordersByEmail == nil {
		return nil
	}
	return f.ordersByEmail(email, limit)
}

func (f *fakeStore) ModelByTag(tag string) (model.ApplianceModel, bool) {
	if f.modelByTag == nil {
		return model.ApplianceModel{}, false
	}
	return f.modelByTag(tag)
}

func (f *fakeStore) FAQs() []model.FAQ {
	if f.faqs == nil {
		return nil
	}
	return f.faqs()
}

// scriptedProvider replays a fixed sequence of model turns and counts calls.
type scriptedProvider struct {
	turns []scriptedTurn
	calls int
}

type scriptedTurn struct {
	content string
	err     error
}

func (p *scriptedProvider) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	i := p.calls
	p.calls++
	if i >= len(p.turns) {
		return nil, errors.New("unexpected model call")
	}
	if p.turns[i].err != nil {
		return nil, p.turns[i].err
	}
	return &llmprovider.Response{
		Content:      p.turns[i].content,
		ProviderName: p.Name(),
		ModelName:    p.Model(),
	}, nil
}

func (p *scriptedProvider) Name() string  { return "scripted" }
func (p *scriptedProvider) Model() string { return "scripted-test" }

// newTestUseCase wires a fresh use case around a scripted provider with retry
// disabled, so one model call equals one scripted turn.
func newTestUseCase(store catalog.Store, provider *scriptedProvider) *implUseCase {
	mgr := llmprovider.NewManager(
		[]llmprovider.Provider{provider},
		&llmprovider.Config{RetryAttempts: 1},
		&mockLogger{},
	)
	return New(&mockLogger{}, mgr, store).(*implUseCase)
}
