package dto

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/sphericalkat/website/internal/domain"
)

// TraceIDKey is the gin context key under which middleware stores the
// request trace ID.
const TraceIDKey = "trace_id"

// RequestIDHeader is the fallback header checked when no trace ID is
// stored in the context.
const RequestIDHeader = "X-Request-ID"

// GetTraceID extracts the trace ID from the gin context.
// It checks the context value first, then falls back to the request header.
func GetTraceID(c *gin.Context) string {
	if v, ok := c.Get(TraceIDKey); ok {
		if id, ok := v.(string); ok {
			return id
		}

		return ""
	}

	return c.GetHeader(RequestIDHeader)
}

// HandleError maps a domain error to an HTTP error response and writes it
// to the context. Extraction and date parse failures are internal faults
// of the content bundle and are reported as 500 with a generic message.
func HandleError(c *gin.Context, err error) {
	resp := errorResponseFor(err)
	resp.WithTraceID(GetTraceID(c))

	c.JSON(HTTPStatusFromCode(resp.Error.Code), resp)
}

// errorResponseFor builds the error envelope for a domain error.
func errorResponseFor(err error) *ErrorResponse {
	switch {
	case domain.IsNotFound(err):
		return NewErrorResponse(ErrorCodeNotFound, err.Error())

	case domain.IsValidation(err):
		resp := NewErrorResponse(ErrorCodeValidation, err.Error())

		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) && validationErr.Field != "" {
			resp.Error.Details = map[string]string{
				validationErr.Field: validationErr.Message,
			}
		}

		return resp

	case domain.IsContentType(err):
		return NewErrorResponse(ErrorCodeBadRequest, err.Error())

	default:
		// Extraction, date parse and unknown errors get a generic
		// message to avoid leaking internals.
		return NewErrorResponse(ErrorCodeInternal, "an internal error occurred")
	}
}

// StatusFor returns the HTTP status code a domain error maps to.
func StatusFor(err error) int {
	return HTTPStatusFromCode(errorResponseFor(err).Error.Code)
}
