// Package middleware carries the echo integration: the central error handler
// translating errors into the shared response body, and the authentication
// middleware that decodes the caller's token into a [keycloak.User].
package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
	"github.com/labstack/echo/v4"

	"github.com/phoenix-platform/sucrim/apierror"
)

// forbiddenDetailMarker identifies the framework's permission error detail,
// which is rewritten to a caller-friendly message.
const forbiddenDetailMarker = "is required to perform this action"

// errorBody is the fixed response shape for errors the handler builds
// itself. Errors is left nil on purpose, which marshals to null.
type errorBody struct {
	Message string `json:"message"`
	Process string `json:"process"`
	Errors  []any  `json:"errors"`
}

// ErrorHandler returns an [echo.HTTPErrorHandler] translating errors into
// the shared body shape. Typed errors keep their status and process, expired
// tokens map to 401, framework errors keep their status, and everything else
// becomes an opaque 500 carrying an incident id in the log.
func ErrorHandler(logger hclog.Logger) echo.HTTPErrorHandler {
	if logger == nil {
		logger = hclog.Default()
	}

	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, payload := translate(err, logger)
		if writeErr := c.JSON(status, payload); writeErr != nil {
			logger.Error("failed to write error response", "error", writeErr)
		}
	}
}

func translate(err error, logger hclog.Logger) (int, any) {
	if apiErr, ok := apierror.As(err); ok {
		return apiErr.Status, apiErr
	}

	if errors.Is(err, jwt.ErrTokenExpired) {
		return http.StatusUnauthorized, errorBody{
			Message: "Token has expired.",
			Process: "access_token",
		}
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code, errorBody{
			Message: httpErrorMessage(httpErr),
			Process: "general_error",
		}
	}

	incident := uuid.NewString()
	logger.Error("unhandled error", "incident", incident, "error", err)
	return http.StatusInternalServerError, errorBody{
		Message: "An unexpected error occurred",
		Process: "internal_error",
	}
}

func httpErrorMessage(httpErr *echo.HTTPError) string {
	message := fmt.Sprintf("%v", httpErr.Message)
	if msg, ok := httpErr.Message.(string); ok {
		message = msg
	}

	if httpErr.Code == http.StatusForbidden && strings.Contains(message, forbiddenDetailMarker) {
		return "You are not authorized to perform this action"
	}
	return message
}
