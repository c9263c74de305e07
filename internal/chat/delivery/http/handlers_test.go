package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"parts-support-chat/internal/chat"
	"parts-support-chat/internal/model"
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

type fakeUseCase struct {
	process func(ctx context.Context, input chat.ChatInput) (chat.Envelope, error)
}

func (f *fakeUseCase) Process(ctx context.Context, input chat.ChatInput) (chat.Envelope, error) {
	return f.process(ctx, input)
}

func performChat(t *testing.T, uc chat.UseCase, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	_, engine := gin.CreateTestContext(w)
	engine.POST("/api/v1/chat", New(&mockLogger{}, uc).Chat)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)
	return w
}

func TestChatHandler(t *testing.T) {
	t.Run("Returns Envelope With Thread Id", func(t *testing.T) {
		uc := &fakeUseCase{process: func(ctx context.Context, input chat.ChatInput) (chat.Envelope, error) {
			if input.Mode != model.ModeCatalog {
				t.Errorf("mode not parsed: %q", input.Mode)
			}
			return chat.Envelope{
				Answer:     "Found it.",
				FollowUp:   []string{},
				Products:   []chat.ProductCard{},
				Orders:     []model.Order{},
				References: []string{"product:PS123456"},
			}, nil
		}}

		w := performChat(t, uc, `{"message": "PS123456", "mode": "catalog", "thread_id": "t-1"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
		}

		var resp struct {
			Data struct {
				ThreadID   string   `json:"thread_id"`
				Answer     string   `json:"answer"`
				References []string `json:"references"`
			} `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
		if resp.Data.ThreadID != "t-1" || resp.Data.Answer != "Found it." {
			t.Errorf("unexpected payload: %+v", resp.Data)
		}
	})

	t.Run("Mints Thread Id When Absent", func(t *testing.T) {
		uc := &fakeUseCase{process: func(ctx context.Context, input chat.ChatInput) (chat.Envelope, error) {
			if input.ThreadID == "" {
				t.Error("expected a minted thread id")
			}
			return chat.Envelope{Answer: "ok"}, nil
		}}

		w := performChat(t, uc, `{"message": "hello fridge"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
	})

	t.Run("Missing Message Rejected", func(t *testing.T) {
		uc := &fakeUseCase{process: func(ctx context.Context, input chat.ChatInput) (chat.Envelope, error) {
			t.Error("use case must not run on a bind failure")
			return chat.Envelope{}, nil
		}}

		w := performChat(t, uc, `{"mode": "catalog"}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})

	t.Run("Unknown Mode Folds To Other", func(t *testing.T) {
		uc := &fakeUseCase{process: func(ctx context.Context, input chat.ChatInput) (chat.Envelope, error) {
			if input.Mode != model.ModeOther {
				t.Errorf("mode = %q, want %q", input.Mode, model.ModeOther)
			}
			return chat.Envelope{Answer: "ok"}, nil
		}}

		w := performChat(t, uc, `{"message": "my fridge is leaking", "mode": "admin"}`)
		if w.Code != http.StatusOK {
			t.Errorf("status = %d, want 200: %s", w.Code, w.Body.String())
		}
	})
}
