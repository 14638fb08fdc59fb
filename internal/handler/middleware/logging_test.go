//go:build unit

package middleware_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hotel-pms/internal/domain/staff"
	"hotel-pms/internal/handler/httperr"
	"hotel-pms/internal/handler/middleware"
	"hotel-pms/internal/pkg/config"
	"hotel-pms/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubValidator struct {
	staffID uuid.UUID
	role    staff.Role
}

func (v stubValidator) ValidateToken(string) (uuid.UUID, staff.Role, error) {
	return v.staffID, v.role, nil
}

func jsonLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, nil))
}

// logLines decodes one JSON object per line.
func logLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var lines []map[string]any
	for _, raw := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if raw == "" {
			continue
		}
		var line map[string]any
		require.NoError(t, json.Unmarshal([]byte(raw), &line), raw)
		lines = append(lines, line)
	}
	return lines
}

// =============================================================================
// Request ID Tests
// =============================================================================

func TestRequestLogger_RequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testCases := []struct {
		name       string
		incoming   string
		expectKept bool
	}{
		{name: "generated when absent", incoming: ""},
		{name: "kept from an upstream proxy", incoming: "edge-01:7f3a.92_b", expectKept: true},
		{name: "replaced when too long", incoming: strings.Repeat("a", 65)},
		{name: "replaced when it contains spaces", incoming: "abc def"},
		{name: "replaced when it carries a header injection", incoming: "abc\r\nSet-Cookie: x=1"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			engine := gin.New()
			engine.Use(middleware.RequestLogger(jsonLogger(&buf)))

			var seen string
			engine.GET("/health", func(c *gin.Context) {
				seen = c.GetString(httperr.RequestIDKey)
				c.Status(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			if tc.incoming != "" {
				req.Header[middleware.RequestIDHeader] = []string{tc.incoming}
			}
			rec := httptest.NewRecorder()
			engine.ServeHTTP(rec, req)

			echoed := rec.Header().Get(middleware.RequestIDHeader)
			assert.Equal(t, seen, echoed)
			if tc.expectKept {
				assert.Equal(t, tc.incoming, echoed)
			} else {
				_, err := uuid.Parse(echoed)
				assert.NoError(t, err, "expected a generated id, got %q", echoed)
			}

			lines := logLines(t, &buf)
			require.Len(t, lines, 1)
			assert.Equal(t, echoed, lines[0]["request_id"])
		})
	}
}

// =============================================================================
// Request Log Line Tests
// =============================================================================

func TestRequestLogger_LogLine(t *testing.T) {
	gin.SetMode(gin.TestMode)
	staffID := uuid.New()
	reservationID := uuid.New()

	testCases := []struct {
		name          string
		path          string
		token         string
		expectStatus  int
		expectLevel   string
		expectAttrs   map[string]any
		expectMissing []string
	}{
		{
			name:         "success: staff identity is logged after authentication ran",
			path:         "/api/hotels/3/availability",
			token:        "Bearer valid",
			expectStatus: http.StatusOK,
			expectLevel:  "INFO",
			expectAttrs: map[string]any{
				"staff_id": staffID.String(),
				"role":     string(staff.RoleClerk),
				"hotel_id": "3",
				"route":    "/api/hotels/:hotelId/availability",
			},
			expectMissing: []string{"error", "error_category", "reservation_id"},
		},
		{
			name:         "client error: category of the use case error is logged",
			path:         "/api/reservations/" + reservationID.String(),
			token:        "Bearer valid",
			expectStatus: http.StatusNotFound,
			expectLevel:  "WARN",
			expectAttrs: map[string]any{
				"reservation_id": reservationID.String(),
				"error_category": errs.ErrNotFound.Error(),
			},
			expectMissing: []string{"hotel_id"},
		},
		{
			name:          "client error: unauthenticated requests carry no staff",
			path:          "/api/hotels/3/availability",
			expectStatus:  http.StatusUnauthorized,
			expectLevel:   "WARN",
			expectMissing: []string{"staff_id", "role"},
		},
		{
			name:          "server error: uncategorized failures are logged at error level",
			path:          "/api/hotels/3/broken",
			token:         "Bearer valid",
			expectStatus:  http.StatusInternalServerError,
			expectLevel:   "ERROR",
			expectAttrs:   map[string]any{"error": "connection reset"},
			expectMissing: []string{"error_category"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			engine := gin.New()
			engine.Use(middleware.RequestLogger(jsonLogger(&buf)))

			auth := middleware.NewAuthMiddleware(stubValidator{staffID: staffID, role: staff.RoleClerk})
			api := engine.Group("/api", auth.RequireAuth())
			api.GET("/hotels/:hotelId/availability", func(c *gin.Context) {
				c.JSON(http.StatusOK, gin.H{"rooms": []string{}})
			})
			api.GET("/hotels/:hotelId/broken", func(c *gin.Context) {
				httperr.Abort(c, errs.New("connection reset"))
			})
			api.GET("/reservations/:id", func(c *gin.Context) {
				httperr.Abort(c, errs.NotFoundf("reservation %s not found", c.Param("id")))
			})

			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			if tc.token != "" {
				req.Header.Set("Authorization", tc.token)
			}
			rec := httptest.NewRecorder()
			engine.ServeHTTP(rec, req)

			require.Equal(t, tc.expectStatus, rec.Code, rec.Body.String())

			lines := logLines(t, &buf)
			require.Len(t, lines, 1)
			line := lines[0]
			assert.Equal(t, "request completed", line["msg"])
			assert.Equal(t, tc.expectLevel, line["level"])
			assert.Equal(t, float64(tc.expectStatus), line["status_code"])
			assert.Equal(t, tc.path, line["path"])
			for k, v := range tc.expectAttrs {
				assert.Equal(t, v, line[k], "attribute %s", k)
			}
			for _, k := range tc.expectMissing {
				assert.NotContains(t, line, k)
			}

			var body httperr.Response
			if tc.expectStatus >= 400 {
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, line["request_id"], body.RequestID)
			}
		})
	}
}

// =============================================================================
// Logger Construction Tests
// =============================================================================

func TestNewLogger(t *testing.T) {
	gin.SetMode(gin.ReleaseMode)
	defer gin.SetMode(gin.TestMode)

	testCases := []struct {
		name       string
		cfg        config.LogConfig
		expectInfo bool
		expectTime string
	}{
		{
			name:       "info level with a named zone",
			cfg:        config.LogConfig{Level: "info", TimeZone: "UTC", TimeFormat: "2006"},
			expectInfo: true,
		},
		{
			name: "warn level hides info",
			cfg:  config.LogConfig{Level: "WARN", TimeZone: "UTC", TimeFormat: "2006"},
		},
		{
			name:       "unknown level falls back to info",
			cfg:        config.LogConfig{Level: "verbose", TimeZone: "UTC", TimeFormat: "2006"},
			expectInfo: true,
		},
		{
			name:       "unknown zone falls back to the fixed offset",
			cfg:        config.LogConfig{Level: "info", TimeZone: "Hotel/Nowhere", TimeZoneOffset: 9 * 60 * 60, TimeFormat: "-07:00"},
			expectInfo: true,
			expectTime: "+09:00",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := middleware.NewLogger(tc.cfg, &buf)

			logger.Info("night audit started")
			logger.Warn("night audit slow")

			lines := logLines(t, &buf)
			if tc.expectInfo {
				require.Len(t, lines, 2)
				assert.Equal(t, "night audit started", lines[0]["msg"])
			} else {
				require.Len(t, lines, 1)
				assert.Equal(t, "night audit slow", lines[0]["msg"])
			}
			if tc.expectTime != "" {
				assert.Equal(t, tc.expectTime, lines[0]["time"])
			} else {
				assert.Regexp(t, `^\d{4}$`, lines[0]["time"])
			}
		})
	}
}
