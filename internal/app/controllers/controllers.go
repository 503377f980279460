package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pleeno/pleeno/internal/pkg/apperrors"
)

// parseIDParam parses a positive int64 path parameter
func parseIDParam(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewBadRequestError("invalid " + name + " parameter")
	}
	return id, nil
}

func servicesBadFormat(format string) error {
	return apperrors.NewBadRequestError("unsupported export format: " + format)
}
