package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/maybourshan/ci-cd-stocks-service/internal/models"
	"github.com/maybourshan/ci-cd-stocks-service/internal/services"
	"github.com/maybourshan/ci-cd-stocks-service/internal/validator"
)

// --- mocks ---

type mockHoldingService struct {
	listHoldingsFn  func(filter services.HoldingFilter) ([]models.Holding, error)
	createHoldingFn func(input services.HoldingInput) (*models.Holding, error)
	getHoldingFn    func(id string) (*models.Holding, error)
	updateHoldingFn func(id string, input services.HoldingInput) (*models.Holding, error)
	deleteHoldingFn func(id string) error
}

var _ services.HoldingServicer = (*mockHoldingService)(nil)

func (m *mockHoldingService) ListHoldings(_ context.Context, filter services.HoldingFilter) ([]models.Holding, error) {
	if m.listHoldingsFn != nil {
		return m.listHoldingsFn(filter)
	}
	return []models.Holding{}, nil
}

func (m *mockHoldingService) CreateHolding(_ context.Context, input services.HoldingInput) (*models.Holding, error) {
	if m.createHoldingFn != nil {
		return m.createHoldingFn(input)
	}
	return &models.Holding{Base: models.Base{ID: "new-id"}}, nil
}

func (m *mockHoldingService) GetHolding(_ context.Context, id string) (*models.Holding, error) {
	if m.getHoldingFn != nil {
		return m.getHoldingFn(id)
	}
	return &models.Holding{Base: models.Base{ID: id}}, nil
}

func (m *mockHoldingService) UpdateHolding(_ context.Context, id string, input services.HoldingInput) (*models.Holding, error) {
	if m.updateHoldingFn != nil {
		return m.updateHoldingFn(id, input)
	}
	return &models.Holding{Base: models.Base{ID: id}}, nil
}

func (m *mockHoldingService) DeleteHolding(_ context.Context, id string) error {
	if m.deleteHoldingFn != nil {
		return m.deleteHoldingFn(id)
	}
	return nil
}

type mockAuditService struct {
	entries []services.AuditEntry
}

func (m *mockAuditService) Record(entry services.AuditEntry) {
	m.entries = append(m.entries, entry)
}

// --- test helpers ---

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	return doRequestWithType(r, method, path, body, "application/json")
}

func doRequestWithType(r *gin.Engine, method, path, body, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}
