package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"day-to-day/internal/middleware"
	"day-to-day/internal/model"
	"day-to-day/internal/task"
	"day-to-day/pkg/scope"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockUseCase struct {
	createInput task.CreateTaskInput
	createScope model.Scope
	deleteInput task.DeleteTaskInput
	deleteErr   error
}

func (m *mockUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateTaskInput) (task.CreateTaskOutput, error) {
	m.createInput = input
	m.createScope = sc
	return task.CreateTaskOutput{Task: model.Task{
		ID:       "t-1",
		UserID:   sc.UserID,
		Title:    input.Title,
		Priority: input.Priority,
		DueDate:  input.DueDate,
	}}, nil
}

func (m *mockUseCase) List(ctx context.Context, sc model.Scope, input task.ListTasksInput) (task.ListTasksOutput, error) {
	return task.ListTasksOutput{Tasks: []model.Task{}}, nil
}

func (m *mockUseCase) Update(ctx context.Context, sc model.Scope, input task.UpdateTaskInput) (task.UpdateTaskOutput, error) {
	return task.UpdateTaskOutput{}, nil
}

func (m *mockUseCase) Delete(ctx context.Context, sc model.Scope, input task.DeleteTaskInput) error {
	m.deleteInput = input
	return m.deleteErr
}

func (m *mockUseCase) Import(ctx context.Context, sc model.Scope, input task.ImportInput) (task.ImportOutput, error) {
	return task.ImportOutput{}, nil
}

func (m *mockUseCase) Stats(ctx context.Context, sc model.Scope) (task.Stats, error) {
	return task.Stats{}, nil
}

func (m *mockUseCase) Calendar(ctx context.Context, sc model.Scope, input task.CalendarInput) (task.MonthGrid, error) {
	return task.MonthGrid{}, nil
}

func newTestRouter(t *testing.T, uc task.UseCase) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sm, err := scope.New(scope.Config{Secret: "test-secret", Lifetime: time.Hour})
	if err != nil {
		t.Fatalf("scope.New: %v", err)
	}
	token, err := sm.Issue(model.User{UID: "user-1"}, "sess-1")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	l := &mockLogger{}
	router := gin.New()
	RegisterRoutes(router.Group("/api/v1"), New(l, uc), middleware.New(l, sm))
	return router, token
}

func TestRoutesRejectMissingToken(t *testing.T) {
	router, _ := newTestRouter(t, &mockUseCase{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestCreatePassesScopeAndInput(t *testing.T) {
	uc := &mockUseCase{}
	router, token := newTestRouter(t, uc)

	body := `{"title":"Buy milk","priority":"high","dueDate":"2026-08-31"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if uc.createScope.UserID != "user-1" {
		t.Errorf("scope user = %q, want user-1", uc.createScope.UserID)
	}
	if uc.createInput.Title != "Buy milk" || uc.createInput.Priority != model.PriorityHigh {
		t.Errorf("input = %+v", uc.createInput)
	}

	var resp struct {
		Data struct {
			Task struct {
				ID string `json:"id"`
			} `json:"task"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Data.Task.ID != "t-1" {
		t.Errorf("task id = %q, want t-1", resp.Data.Task.ID)
	}
}

func TestCreateRejectsUnknownPriority(t *testing.T) {
	uc := &mockUseCase{}
	router, token := newTestRouter(t, uc)

	body := `{"title":"Buy milk","priority":"urgent","dueDate":"2026-08-31"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if uc.createInput.Title != "" {
		t.Error("usecase must not be reached on binding failure")
	}
}

func TestDeleteRequiresConfirmFlag(t *testing.T) {
	uc := &mockUseCase{deleteErr: task.ErrConfirmationRequired}
	router, token := newTestRouter(t, uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/tasks/t-1", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if uc.deleteInput.Confirmed {
		t.Error("confirm flag must default to false")
	}

	uc.deleteErr = nil
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/api/v1/tasks/t-1?confirm=true", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
	if !uc.deleteInput.Confirmed {
		t.Error("confirm=true must reach the usecase")
	}
}
