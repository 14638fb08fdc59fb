package httperr

import (
	"errors"
	"net/http"

	"hotel-pms/internal/domain/allocation"
	"hotel-pms/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// RequestIDKey is the gin context key holding the id the request logger
// assigned. Error bodies echo it so staff can quote it to support.
const RequestIDKey = "request_id"

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail    any    `json:"detail,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func newResponse(status int, msg string, detail any) Response {
	resp := Response{Status: status, Detail: detail}
	resp.Error.Message = msg
	return resp
}

// AbortWithError keeps err on the gin context so the request logger can
// report its category.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errors.New(msg)
	}
	abortWith(c, err, newResponse(status, msg, detail))
}

// Abort responds with the status matching the category of a use case error.
func Abort(c *gin.Context, err error) {
	abortWith(c, err, ResponseFor(err))
}

func abortWith(c *gin.Context, err error, resp Response) {
	resp.RequestID = c.GetString(RequestIDKey)
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(resp.Status, resp)
}

// ResponseFor builds the body for a use case error. Uncategorized and
// database failures never leak their message; capacity failures of a
// multi-room booking carry the per-room breakdown.
func ResponseFor(err error) Response {
	status := StatusOf(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "Internal server error"
	}

	var detail any
	var combo *allocation.ComboError
	if errs.As(err, &combo) {
		detail = combo.Failures
	}
	return newResponse(status, msg, detail)
}

func StatusOf(err error) int {
	switch errs.Category(err) {
	case errs.ErrValidation:
		return http.StatusBadRequest
	case errs.ErrNotFound:
		return http.StatusNotFound
	case errs.ErrInsufficientCapacity, errs.ErrConflict:
		return http.StatusConflict
	case errs.ErrExternalData:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
