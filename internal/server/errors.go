package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/piwi3910/ReactorCalc/internal/model"
)

// APIError represents a structured error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Common error codes
const (
	ErrCodeBadRequest        = "BAD_REQUEST"
	ErrCodeInvalidDimensions = "INVALID_DIMENSIONS"
	ErrCodeUnknownMode       = "UNKNOWN_MODE"
	ErrCodeNotFound          = "NOT_FOUND"
	ErrCodeInternalError     = "INTERNAL_ERROR"
)

// RespondError sends a structured error response
func RespondError(c *gin.Context, status int, code string, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"error": APIError{
			Code:    code,
			Message: message,
		},
	})
}

// BadRequest sends a 400 error
func BadRequest(c *gin.Context, message string) {
	RespondError(c, http.StatusBadRequest, ErrCodeBadRequest, message)
}

// respondInputError maps validation errors to a 400 with a specific code.
func respondInputError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrInvalidDimensions):
		RespondError(c, http.StatusBadRequest, ErrCodeInvalidDimensions, err.Error())
	case errors.Is(err, model.ErrUnknownMode):
		RespondError(c, http.StatusBadRequest, ErrCodeUnknownMode, err.Error())
	default:
		BadRequest(c, err.Error())
	}
}
