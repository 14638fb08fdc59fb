//go:build unit

package middleware_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hotel-pms/internal/handler/middleware"
	"hotel-pms/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func corsConfig(origins ...string) config.CORSConfig {
	return config.CORSConfig{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           time.Hour,
	}
}

func TestNewCORSMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testCases := []struct {
		name              string
		cfg               config.CORSConfig
		origin            string
		expectStatus      int
		expectAllowOrigin string
		expectCredentials string
		expectWarning     bool
	}{
		{
			name:              "listed origin may send credentials",
			cfg:               corsConfig("http://localhost:3000"),
			origin:            "http://localhost:3000",
			expectStatus:      http.StatusOK,
			expectAllowOrigin: "http://localhost:3000",
			expectCredentials: "true",
		},
		{
			name:         "unlisted origin is refused",
			cfg:          corsConfig("http://localhost:3000"),
			origin:       "http://evil.example",
			expectStatus: http.StatusForbidden,
		},
		{
			name:              "wildcard origin drops credentials instead of panicking",
			cfg:               corsConfig("*"),
			origin:            "http://frontdesk.example",
			expectStatus:      http.StatusOK,
			expectAllowOrigin: "*",
			expectWarning:     true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			engine := gin.New()

			require.NotPanics(t, func() {
				engine.Use(middleware.NewCORSMiddleware(tc.cfg, jsonLogger(&buf)))
			})
			engine.GET("/api/hotels/:hotelId/availability", func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/hotels/1/availability", nil)
			req.Header.Set("Origin", tc.origin)
			rec := httptest.NewRecorder()
			engine.ServeHTTP(rec, req)

			assert.Equal(t, tc.expectStatus, rec.Code)
			assert.Equal(t, tc.expectAllowOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tc.expectCredentials, rec.Header().Get("Access-Control-Allow-Credentials"))
			if tc.expectStatus == http.StatusOK {
				assert.Contains(t, rec.Header().Get("Access-Control-Expose-Headers"), "X-Request-Id")
			}

			var warned bool
			for _, line := range logLines(t, &buf) {
				if line["level"] == "WARN" {
					warned = true
				}
			}
			assert.Equal(t, tc.expectWarning, warned)
		})
	}
}

func TestNewCORSMiddleware_PreflightAllowsRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := corsConfig("http://localhost:3000")
	cfg.AllowHeaders = append(cfg.AllowHeaders, "x-request-id")

	var buf bytes.Buffer
	engine := gin.New()
	engine.Use(middleware.NewCORSMiddleware(cfg, jsonLogger(&buf)))
	engine.POST("/api/reservations/:id/payments", func(c *gin.Context) {})

	req := httptest.NewRequest(http.MethodOptions, "/api/reservations/abc/payments", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "X-Request-ID")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "Origin,Content-Type,Authorization,X-Request-Id", rec.Header().Get("Access-Control-Allow-Headers"))
	assert.Equal(t, "3600", rec.Header().Get("Access-Control-Max-Age"))
}
