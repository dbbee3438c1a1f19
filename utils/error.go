package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RawBodyKey is the gin context key under which the captured request body is
// stored for error echoing.
const RawBodyKey = "rawBody"

// APIError is the uniform failure shape rendered for every error response:
// a numeric code, a short human message, an echo of the originating request
// and a structured details map.
type APIError struct {
	Code    int                    `json:"code"`
	Message string                 `json:"message"`
	Request map[string]interface{} `json:"request"`
	Details map[string]interface{} `json:"details"`
}

func (e *APIError) Error() string {
	return e.Message
}

// NewValidationError builds a 400-class failure for malformed or
// out-of-policy request bodies, including the booking business rules.
func NewValidationError(message string, details map[string]interface{}) *APIError {
	return &APIError{Code: http.StatusBadRequest, Message: message, Details: details}
}

// NewAuthError builds a 401 failure. The requesting user, when known, is
// recorded in details for logging; the message stays generic.
func NewAuthError(message, user string) *APIError {
	return &APIError{
		Code:    http.StatusUnauthorized,
		Message: message,
		Details: map[string]interface{}{"user": user},
	}
}

// NewNotFoundError builds a 404 failure for a missing referenced entity.
func NewNotFoundError(message string, details map[string]interface{}) *APIError {
	return &APIError{Code: http.StatusNotFound, Message: message, Details: details}
}

// NewInternalError builds a 500 failure. Used for unacknowledged persistence
// writes and any unanticipated condition.
func NewInternalError(details map[string]interface{}) *APIError {
	return &APIError{Code: http.StatusInternalServerError, Message: MsgInternalServerError, Details: details}
}

// RequestEcho assembles the request description attached to every error
// response. The body comes from the bytes captured up front by the
// CaptureBody middleware: parsed JSON where possible, raw text otherwise,
// and an empty object when reading the body timed out.
func RequestEcho(c *gin.Context) map[string]interface{} {
	headers := make(map[string]string)
	for k, v := range c.Request.Header {
		headers[strings.ToLower(k)] = strings.Join(v, ", ")
	}
	pathParams := make(map[string]string)
	for _, p := range c.Params {
		pathParams[p.Key] = p.Value
	}
	queryParams := make(map[string]string)
	for k, v := range c.Request.URL.Query() {
		queryParams[k] = strings.Join(v, ",")
	}

	var body interface{} = map[string]interface{}{}
	if raw, ok := c.Get(RawBodyKey); ok {
		if b, _ := raw.([]byte); len(b) > 0 {
			var parsed map[string]interface{}
			if err := json.Unmarshal(b, &parsed); err == nil {
				body = parsed
			} else {
				body = string(b)
			}
		}
	}

	return map[string]interface{}{
		"url":          c.Request.URL.String(),
		"method":       c.Request.Method,
		"headers":      headers,
		"path_params":  pathParams,
		"query_params": queryParams,
		"client":       c.ClientIP(),
		"body":         body,
	}
}

// RenderError writes the uniform error envelope for err and aborts the
// request. Anything that is not an APIError is downgraded to a generic 500
// with the underlying error preserved in details.
func RenderError(c *gin.Context, err error) {
	logger := GetLogger()

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		apiErr = NewInternalError(map[string]interface{}{"error": err.Error()})
	}
	if apiErr.Request == nil {
		apiErr.Request = RequestEcho(c)
	}
	if apiErr.Details == nil {
		apiErr.Details = map[string]interface{}{}
	}

	if apiErr.Code >= http.StatusInternalServerError {
		logger.Error(apiErr.Message, zap.Int("code", apiErr.Code), zap.Any("details", apiErr.Details))
	} else {
		logger.Warn(apiErr.Message, zap.Int("code", apiErr.Code), zap.Any("details", apiErr.Details))
	}

	c.AbortWithStatusJSON(apiErr.Code, apiErr)
}

// ErrorHandler is a middleware that catches panics anywhere in the request
// path and renders them as the standard 500 envelope. The client sees only
// the generic message; the stack trace travels in details.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger := GetLogger()
				logger.Error("Unhandled panic", zap.Any("error", r), zap.ByteString("stack", debug.Stack()))

				apiErr := NewInternalError(map[string]interface{}{
					"traceback": string(debug.Stack()),
				})
				apiErr.Request = RequestEcho(c)
				c.AbortWithStatusJSON(apiErr.Code, apiErr)
			}
		}()
		c.Next()
	}
}
