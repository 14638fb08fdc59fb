//go:build unit

package middleware_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"hotel-pms/internal/handler/httperr"
	"hotel-pms/internal/handler/middleware"
	"hotel-pms/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRequestID = "req-0001"

func withRequestID(c *gin.Context) {
	c.Set(httperr.RequestIDKey, testRequestID)
	c.Next()
}

// =============================================================================
// Error Handler Tests
// =============================================================================

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testCases := []struct {
		name          string
		handler       gin.HandlerFunc
		expectStatus  int
		expectMessage string
		expectEmpty   bool
		expectLog     string
	}{
		{
			name: "recorded error is rendered by category",
			handler: func(c *gin.Context) {
				_ = c.Error(errs.Conflictf("room 101 is already occupied"))
			},
			expectStatus:  http.StatusConflict,
			expectMessage: "room 101 is already occupied",
		},
		{
			name: "recorded uncategorized error hides its message",
			handler: func(c *gin.Context) {
				_ = c.Error(errs.New("dial tcp 10.0.0.5:5432: connection refused"))
			},
			expectStatus:  http.StatusInternalServerError,
			expectMessage: "Internal server error",
		},
		{
			name: "response written through httperr is left alone",
			handler: func(c *gin.Context) {
				httperr.Abort(c, errs.Validationf("check-out must follow check-in"))
			},
			expectStatus:  http.StatusBadRequest,
			expectMessage: "check-out must follow check-in",
		},
		{
			name: "status without a body is flushed",
			handler: func(c *gin.Context) {
				c.Status(http.StatusNoContent)
			},
			expectStatus: http.StatusNoContent,
			expectEmpty:  true,
		},
		{
			name:          "handler returning nothing is a server error",
			handler:       func(c *gin.Context) {},
			expectStatus:  http.StatusInternalServerError,
			expectMessage: "Internal server error",
			expectLog:     "handler returned without a response",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			engine := gin.New()
			engine.Use(withRequestID, middleware.ErrorHandler(jsonLogger(&buf)))
			engine.POST("/api/reservations", tc.handler)

			rec := httptest.NewRecorder()
			engine.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/reservations", nil))

			assert.Equal(t, tc.expectStatus, rec.Code)
			if tc.expectEmpty {
				assert.Empty(t, rec.Body.String())
			} else {
				var body httperr.Response
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), "expected a single JSON body, got %s", rec.Body.String())
				assert.Equal(t, tc.expectMessage, body.Error.Message)
				assert.Equal(t, testRequestID, body.RequestID)
			}

			lines := logLines(t, &buf)
			if tc.expectLog == "" {
				assert.Empty(t, lines)
				return
			}
			require.Len(t, lines, 1)
			assert.Equal(t, tc.expectLog, lines[0]["msg"])
			assert.Equal(t, testRequestID, lines[0]["request_id"])
			assert.Equal(t, "/api/reservations", lines[0]["route"])
		})
	}
}

// =============================================================================
// Recovery Tests
// =============================================================================

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	logger := jsonLogger(&buf)
	engine := gin.New()
	engine.Use(middleware.Recovery(logger), withRequestID, middleware.ErrorHandler(logger))
	engine.GET("/api/reservations/:id", func(c *gin.Context) {
		var details map[string]int
		details["night"]++
	})

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/reservations/abc", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var body httperr.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	assert.Equal(t, "Internal server error", body.Error.Message)
	assert.Equal(t, testRequestID, body.RequestID)

	lines := logLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "recovered from panic", lines[0]["msg"])
	assert.Equal(t, "ERROR", lines[0]["level"])
	assert.Equal(t, testRequestID, lines[0]["request_id"])
	assert.Equal(t, "/api/reservations/abc", lines[0]["path"])
	assert.Contains(t, lines[0]["panic"], "nil map")
	assert.NotEmpty(t, lines[0]["stack"])
}
