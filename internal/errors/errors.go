package errors

import (
	"errors"
	"fmt"
	"net/http"
	"runtime"
	"strings"

	"github.com/gin-gonic/gin"
)

// Error type constants
const (
	ErrTypeAds        = "google_ads"
	ErrTypeHTTP       = "http"
	ErrTypeConfig     = "config"
	ErrTypeInvalidArg = "invalid_argument"
	ErrTypeAuth       = "authentication"
	ErrTypeNotFound   = "not_found"
	ErrTypeValidation = "validation"
	ErrTypeRateLimit  = "rate_limit"
	ErrTypeInternal   = "internal"
)

// AppError is the application error carried across service boundaries.
type AppError struct {
	Type      string   `json:"type"`                 // error class
	Message   string   `json:"message"`              // human-readable message
	Cause     error    `json:"-"`                    // wrapped cause
	Code      int      `json:"-"`                    // HTTP status code
	Stack     []string `json:"-"`                    // capture site
	RequestID string   `json:"request_id,omitempty"` // request correlation id
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// String returns the string form of the error.
func (e *AppError) String() string {
	return e.Error()
}

// Unwrap exposes the cause for errors.Is / errors.As chains.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithStack records the call stack on the error.
func (e *AppError) WithStack() *AppError {
	const depth = 32
	var pcs [depth]uintptr
	n := runtime.Callers(2, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])

	stack := make([]string, 0, n)
	for {
		frame, more := frames.Next()
		if !strings.Contains(frame.File, "runtime/") {
			stack = append(stack, fmt.Sprintf("%s:%d %s", frame.File, frame.Line, frame.Function))
		}
		if !more {
			break
		}
	}

	e.Stack = stack
	return e
}

// WithRequestID tags the error with a request id for tracing.
func (e *AppError) WithRequestID(requestID string) *AppError {
	e.RequestID = requestID
	return e
}

// New creates an application error.
func New(errType, message string, cause error, code int) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
		Code:    code,
	}
}

// Wrap converts an existing error into an AppError. An error that already
// is an AppError keeps its type and code; only the message is replaced.
func Wrap(err error, errType, message string, code int) *AppError {
	if err == nil {
		return nil
	}

	if appErr, ok := err.(*AppError); ok {
		return &AppError{
			Type:    appErr.Type,
			Message: message,
			Cause:   appErr.Cause,
			Code:    appErr.Code,
			Stack:   appErr.Stack,
		}
	}

	return New(errType, message, err, code)
}

// Is reports whether the error is of the given type.
func Is(err error, errType string) bool {
	if err == nil {
		return false
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == errType
	}

	return false
}

// GetType returns the error type.
func GetType(err error) string {
	if err == nil {
		return ""
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}

	return "unknown"
}

// GetCode returns the HTTP status code for the error.
func GetCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}

	return http.StatusInternalServerError
}

// RootCause walks the error chain to its root.
func RootCause(err error) error {
	for err != nil {
		unwrapped := errors.Unwrap(err)
		if unwrapped == nil {
			return err
		}
		err = unwrapped
	}
	return err
}

// ErrInvalidArg creates an invalid argument error.
func ErrInvalidArg(param string) *AppError {
	return New(ErrTypeInvalidArg, fmt.Sprintf("invalid arg: %s", param), nil, http.StatusBadRequest).WithStack()
}

// Ads creates a Google Ads API error.
func Ads(message string, cause error) *AppError {
	return New(ErrTypeAds, message, cause, http.StatusInternalServerError).WithStack()
}

// HTTP creates an HTTP service error.
func HTTP(message string, cause error) *AppError {
	return New(ErrTypeHTTP, message, cause, http.StatusInternalServerError).WithStack()
}

// Config creates a configuration error.
func Config(message string, cause error) *AppError {
	return New(ErrTypeConfig, message, cause, http.StatusInternalServerError).WithStack()
}

// NotFound creates a missing resource error.
func NotFound(resource string, cause error) *AppError {
	message := fmt.Sprintf("resource not found: %s", resource)
	return New(ErrTypeNotFound, message, cause, http.StatusNotFound).WithStack()
}

// Unauthorized creates an authentication error.
func Unauthorized(message string, cause error) *AppError {
	return New(ErrTypeAuth, message, cause, http.StatusUnauthorized).WithStack()
}

// Validation creates a validation error.
func Validation(message string, cause error) *AppError {
	return New(ErrTypeValidation, message, cause, http.StatusBadRequest).WithStack()
}

// RateLimit creates a quota exhaustion error.
func RateLimit(message string, cause error) *AppError {
	return New(ErrTypeRateLimit, message, cause, http.StatusTooManyRequests).WithStack()
}

// Internal creates an internal server error.
func Internal(message string, cause error) *AppError {
	return New(ErrTypeInternal, message, cause, http.StatusInternalServerError).WithStack()
}

// Err renders the error on an HTTP response.
func Err(c *gin.Context, err error) {
	requestID := c.GetString("RequestID")

	if appErr, ok := err.(*AppError); ok {
		if requestID != "" {
			appErr.RequestID = requestID
		}
		c.JSON(appErr.Code, appErr)
		return
	}

	unknownErr := &AppError{
		Type:      "unknown",
		Message:   err.Error(),
		Code:      http.StatusInternalServerError,
		RequestID: requestID,
	}
	c.JSON(http.StatusInternalServerError, unknownErr)
}
