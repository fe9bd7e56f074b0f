package response

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/masquepolleras/polleras-api/pkg/apperror"
)

func newTestContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/", nil)
	return c, w
}

func TestMetaCarriesAssignedRequestID(t *testing.T) {
	c, w := newTestContext(t)
	c.Set("request_id", "req-123")

	OK(c, "ok", nil)

	var resp APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Meta == nil || resp.Meta.RequestID != "req-123" {
		t.Errorf("meta = %+v, want request_id req-123", resp.Meta)
	}
	if !resp.Success {
		t.Error("success = false, want true")
	}
}

func TestErrorEnvelopeCarriesFieldErrors(t *testing.T) {
	c, w := newTestContext(t)

	Error(c, apperror.NewFieldValidationError("price", "Price must be greater than zero"))

	if w.Code != 422 {
		t.Fatalf("status = %d, want 422", w.Code)
	}

	var resp APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Success {
		t.Error("success = true, want false")
	}
	if resp.Message != "Validation failed" {
		t.Errorf("message = %q", resp.Message)
	}
	if resp.Errors == nil {
		t.Error("errors missing from envelope")
	}
}
