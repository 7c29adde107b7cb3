package errors

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error represents an application error with an HTTP-equivalent code.
// Codes below 500 are validation errors the caller can fix; 500 and above
// are server-side faults.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a new Error
func New(code int, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Internal wraps a system-side failure as a 500 fault.
func Internal(err error) *Error {
	return New(http.StatusInternalServerError, "Internal server error", err)
}

// From converts any error to an *Error, defaulting to an internal fault so
// unclassified errors never leak as 4xx.
func From(err error) *Error {
	if appErr, ok := err.(*Error); ok {
		return appErr
	}
	return Internal(err)
}

// Respond writes the error as a JSON response on the gin context.
func Respond(c *gin.Context, err error) {
	appErr := From(err)
	c.JSON(appErr.Code, appErr)
}

// ErrorMiddleware converts errors attached to the gin context into JSON
// responses after the handler chain runs.
func ErrorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			appErr := From(c.Errors.Last().Err)
			c.JSON(appErr.Code, appErr)
			c.Abort()
		}
	}
}
