package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
)

func assertHTTPError(t *testing.T, err error, wantCode int, wantMsg string) {
	t.Helper()
	if !assert.Error(t, err) {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if assert.True(t, ok, "expected echo.HTTPError") {
		assert.Equal(t, wantCode, he.Code)
		assert.Contains(t, he.Message, wantMsg)
	}
}

func TestVerifyAuditHandler_MissingID(t *testing.T) {
	s := &Server{}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/audit/verify", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	assertHTTPError(t, s.verifyAuditHandler(c), http.StatusBadRequest, "audit_id is required")
}

func TestAuditCleanupHandler_Validation(t *testing.T) {
	s := &Server{}

	tests := []struct {
		name string
		days string
	}{
		{name: "not a number", days: "soon"},
		{name: "below minimum", days: "29"},
		{name: "above maximum", days: "3651"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/api/admin/audit/cleanup?days="+tt.days, nil)
			c := e.NewContext(req, httptest.NewRecorder())

			assertHTTPError(t, s.auditCleanupHandler(c), http.StatusBadRequest, "days must be between")
		})
	}
}

func TestListAuditHandler_Validation(t *testing.T) {
	s := &Server{}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/audit?limit=-5", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	assertHTTPError(t, s.listAuditHandler(c), http.StatusBadRequest, "limit must be a positive integer")
}

func TestLLMSwitchHandler_MissingProvider(t *testing.T) {
	s := &Server{}

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/llm/switch", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	c := e.NewContext(req, httptest.NewRecorder())

	assertHTTPError(t, s.llmSwitchHandler(c), http.StatusBadRequest, "provider is required")
}

func TestCrawlerHandlers_WithoutService(t *testing.T) {
	s := &Server{}
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/api/admin/crawler/status", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	assertHTTPError(t, s.crawlerStatusHandler(c), http.StatusServiceUnavailable, "crawler control is not available")

	req = httptest.NewRequest(http.MethodPost, "/api/admin/crawler/trigger", nil)
	c = e.NewContext(req, httptest.NewRecorder())
	assertHTTPError(t, s.crawlerTriggerHandler(c), http.StatusServiceUnavailable, "crawler control is not available")
}
