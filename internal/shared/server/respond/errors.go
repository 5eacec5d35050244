package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resumeiq-backend/internal/shared/telemetry"
)

// ErrorBody defines the standardized error object.
type ErrorBody struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// FieldError carries field-level validation detail.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error sends a standardized error response. Server faults (5xx) are logged
// with full context; client faults are logged at info level without detail.
func Error(c *gin.Context, status int, code, message string, details interface{}) {
	fields := map[string]any{
		"status":     status,
		"code":       code,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	}
	if userID := c.GetString("userId"); userID != "" {
		fields["user_id"] = userID
	}
	if status >= http.StatusInternalServerError {
		fields["message"] = message
		telemetry.Error("http.error", fields)
	} else {
		telemetry.Info("http.client_error", fields)
	}

	c.AbortWithStatusJSON(status, Envelope{
		Success: false,
		Data:    nil,
		Error: ErrorBody{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// ValidationError sends a 422 with field-level details.
func ValidationError(c *gin.Context, fields []FieldError) {
	Error(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Request validation failed.", fields)
}
