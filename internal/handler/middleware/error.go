package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"hotel-pms/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders errors a handler recorded with c.Error without
// writing a body. Errors raised through httperr are already written.
func ErrorHandler(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		if last := c.Errors.Last(); last != nil {
			resp, ok := last.Meta.(httperr.Response)
			if !ok {
				resp = httperr.ResponseFor(last.Err)
				resp.RequestID = c.GetString(httperr.RequestIDKey)
			}
			c.JSON(resp.Status, resp)
			return
		}

		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}

		logger.Error("handler returned without a response",
			"request_id", c.GetString(httperr.RequestIDKey),
			"method", c.Request.Method,
			"route", c.FullPath(),
		)
		c.JSON(http.StatusInternalServerError, internalError(c))
	}
}

// Recovery must be the outermost middleware.
func Recovery(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("recovered from panic",
					"panic", rec,
					"request_id", c.GetString(httperr.RequestIDKey),
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
					"stack", string(debug.Stack()),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, internalError(c))
			}
		}()
		c.Next()
	}
}

func internalError(c *gin.Context) httperr.Response {
	resp := httperr.Response{Status: http.StatusInternalServerError, RequestID: c.GetString(httperr.RequestIDKey)}
	resp.Error.Message = "Internal server error"
	return resp
}
