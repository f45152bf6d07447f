package helper

import (
	"errors"
	"net/http"

	"todoapi/internal/core/domain"
	"todoapi/internal/core/model/response"
	"todoapi/internal/core/validation"
	"todoapi/internal/shared"
	"todoapi/pkg/tracing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func SendSuccess(c *gin.Context, statusCode int, data any, message ...string) {
	response := response.SuccessResponse{
		Data: data,
	}

	if len(message) > 0 && message[0] != "" {
		response.Message = message[0]
	}

	c.JSON(statusCode, response)
}

func SendError(c *gin.Context, statusCode int, code string, errors []response.ValidationError, details ...any) {
	errorResponse := response.ErrorResponse{
		Error: response.ResponseError{
			Code:   code,
			Errors: errors,
		},
	}

	if len(details) > 0 {
		errorResponse.Error.Details = details[0]
	}

	c.JSON(statusCode, errorResponse)
}

func SendValidationError(c *gin.Context, err error) {
	SendError(c, http.StatusBadRequest, "VALIDATION_ERROR", validation.FormatValidationErrors(err))
}

func SendInternalError(c *gin.Context, message string, details ...any) {
	errors := []response.ValidationError{
		{
			Field:   "server",
			Message: message,
		},
	}

	SendError(c, http.StatusInternalServerError, "INTERNAL_ERROR", errors, details...)
}

func SendBadRequestError(c *gin.Context, field string, message string) {
	errors := []response.ValidationError{
		{
			Field:   field,
			Message: message,
		},
	}

	SendError(c, http.StatusBadRequest, "BAD_REQUEST", errors)
}

func SendNotFoundError(c *gin.Context, message string) {
	errors := []response.ValidationError{
		{
			Field:   "resource",
			Message: message,
		},
	}

	SendError(c, http.StatusNotFound, "NOT_FOUND", errors)
}

// SendInvalidBody answers a body that could not be decoded.
func SendInvalidBody(c *gin.Context) {
	SendBadRequestError(c, "request", "Invalid request parameters")
}

// Failure describes how a write endpoint reports an operation that did not
// take effect.
type Failure struct {
	Field   string
	Message string
}

// SendServiceError maps a service error onto the response envelope.
// Unclassified errors are logged and answered with 500.
func SendServiceError(c *gin.Context, logger *shared.Logger, err error, failure Failure) {
	switch {
	case domain.IsValidationError(err):
		SendValidationError(c, err)
	case errors.Is(err, domain.ErrNotFound):
		SendNotFoundError(c, "Record not found.")
	case errors.Is(err, domain.ErrNoRowsAffected), errors.Is(err, domain.ErrAuthenticationFailed):
		SendBadRequestError(c, failure.Field, failure.Message)
	default:
		ctx := c.Request.Context()
		traceID := tracing.GetTraceID(ctx)

		if logger != nil {
			logger.ErrorWithTrace(ctx, "request failed",
				zap.Error(err),
				zap.String("route", c.FullPath()),
			)
		}

		if traceID != "" {
			SendInternalError(c, "Internal server error", gin.H{"traceId": traceID})
			return
		}

		SendInternalError(c, "Internal server error")
	}
}
