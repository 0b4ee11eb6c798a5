package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

// HandleServiceError maps a service error to its response. Logging is left to
// the caller, which owns the named logger.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidVisitor):
		RespondError(c, http.StatusUnauthorized, "Invalid visitor")
	case errors.Is(err, ErrBackendUnavailable), errors.Is(err, ErrBackendStatus), errors.Is(err, ErrBackendDecode):
		RespondError(c, http.StatusBadGateway, "Backend unavailable")
	default:
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
