package api

import (
	"strconv"

	"hotel-pms/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	ErrInvalidID   = errs.NewKind("invalid id", errs.ErrValidation)
	ErrInvalidBody = errs.NewKind("invalid request", errs.ErrValidation)
)

func uuidParam(c *gin.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, errs.Kindf(ErrInvalidID, "invalid %s %q", name, c.Param(name))
	}
	return id, nil
}

func int32Param(c *gin.Context, name string) (int32, error) {
	v, err := strconv.ParseInt(c.Param(name), 10, 32)
	if err != nil || v <= 0 {
		return 0, errs.Kindf(ErrInvalidID, "invalid %s %q", name, c.Param(name))
	}
	return int32(v), nil
}

func int64Param(c *gin.Context, name string) (int64, error) {
	v, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || v <= 0 {
		return 0, errs.Kindf(ErrInvalidID, "invalid %s %q", name, c.Param(name))
	}
	return v, nil
}
