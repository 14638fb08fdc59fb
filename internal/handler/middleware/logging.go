package middleware

import (
	"io"
	"log/slog"
	"time"

	"hotel-pms/internal/handler/httperr"
	"hotel-pms/internal/pkg/config"
	"hotel-pms/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	RequestIDHeader = "X-Request-ID"

	maxRequestIDLen = 64
)

// NewLogger writes JSON in release mode and text otherwise. Timestamps are
// rendered in the configured zone, falling back to a fixed offset when the
// zone database is unavailable.
func NewLogger(cfg config.LogConfig, w io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelInfo
	}

	loc, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		loc = time.FixedZone(cfg.TimeZone, cfg.TimeZoneOffset)
	}

	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				a.Value = slog.StringValue(a.Value.Time().In(loc).Format(cfg.TimeFormat))
			}
			return a
		},
	}

	if gin.Mode() == gin.ReleaseMode {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// RequestLogger tags every request with an id and logs one line when it
// completes. Staff identity is read after the handler chain ran, since
// authentication happens on the route groups further in.
func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(RequestIDHeader)
		if !validRequestID(requestID) {
			requestID = uuid.NewString()
		}
		c.Set(httperr.RequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)

		c.Next()

		status := c.Writer.Status()
		attrs := []slog.Attr{
			slog.String("request_id", requestID),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status_code", status),
			slog.Duration("duration", time.Since(start)),
			slog.String("client_ip", c.ClientIP()),
		}
		if route := c.FullPath(); route != "" {
			attrs = append(attrs, slog.String("route", route))
		}
		if size := c.Writer.Size(); size > 0 {
			attrs = append(attrs, slog.Int("response_size", size))
		}
		attrs = append(attrs, scopeAttrs(c)...)

		if last := c.Errors.Last(); last != nil {
			attrs = append(attrs, slog.String("error", last.Err.Error()))
			if category := errs.Category(last.Err); category != nil {
				attrs = append(attrs, slog.String("error_category", category.Error()))
			}
		}

		logger.LogAttrs(c.Request.Context(), levelFor(status), "request completed", attrs...)
	}
}

func scopeAttrs(c *gin.Context) []slog.Attr {
	var attrs []slog.Attr
	if id, ok := GetStaffID(c); ok {
		attrs = append(attrs, slog.String("staff_id", id.String()))
	}
	if role, ok := GetStaffRole(c); ok {
		attrs = append(attrs, slog.String("role", string(role)))
	}
	if hotelID := c.Param("hotelId"); hotelID != "" {
		attrs = append(attrs, slog.String("hotel_id", hotelID))
	}
	if reservationID := c.Param("id"); reservationID != "" {
		attrs = append(attrs, slog.String("reservation_id", reservationID))
	}
	return attrs
}

func levelFor(status int) slog.Level {
	switch {
	case status >= 500:
		return slog.LevelError
	case status >= 400:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// validRequestID accepts ids a proxy or client generated as long as they
// are short and safe to echo into headers and logs.
func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLen {
		return false
	}
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-', r == '_', r == '.', r == ':':
		default:
			return false
		}
	}
	return true
}
