package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
)

func TestReviewQueueHandler_Validation(t *testing.T) {
	// Only parameter validation; happy paths run against a real database in
	// server_test.go.
	s := &Server{}

	tests := []struct {
		name   string
		query  string
		errMsg string
	}{
		{name: "limit not a number", query: "limit=abc", errMsg: "limit must be a positive integer"},
		{name: "limit zero", query: "limit=0", errMsg: "limit must be a positive integer"},
		{name: "negative offset", query: "offset=-1", errMsg: "offset must be a non-negative integer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/review/queue?"+tt.query, nil)
			c := e.NewContext(req, httptest.NewRecorder())

			err := s.reviewQueueHandler(c)
			if assert.Error(t, err) {
				he, ok := err.(*echo.HTTPError)
				if assert.True(t, ok, "expected echo.HTTPError") {
					assert.Equal(t, http.StatusBadRequest, he.Code)
					assert.Contains(t, he.Message, tt.errMsg)
				}
			}
		})
	}
}

func TestGetReviewHandler_MissingID(t *testing.T) {
	s := &Server{}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/review/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	err := s.getReviewHandler(c)
	if assert.Error(t, err) {
		he, ok := err.(*echo.HTTPError)
		if assert.True(t, ok) {
			assert.Equal(t, http.StatusBadRequest, he.Code)
			assert.Contains(t, he.Message, "review id is required")
		}
	}
}

func TestReviewActionHandler_Validation(t *testing.T) {
	s := &Server{}
	e := echo.New()
	e.POST("/api/review/:id/action", s.reviewActionHandler)

	t.Run("note too long", func(t *testing.T) {
		body := `{"action":"approve","note":"` + strings.Repeat("x", maxReviewNoteLen+1) + `"}`
		req := httptest.NewRequest(http.MethodPost, "/api/review/r1/action", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "note must be at most")
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/review/r1/action", strings.NewReader("{not json"))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
