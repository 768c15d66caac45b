package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
)

const (
	panicCode    = "INTERNAL_SERVER_ERROR"
	panicMessage = "An internal server error occurred"
)

// panicResponse mirrors the handler package's error envelope
type panicResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	CorrelationID string `json:"correlation_id,omitempty"`
}

// Recovery turns a panicking checkout handler into a 500 in the API's error envelope.
// When the handler had already started its response the request is only aborted.
// http.ErrAbortHandler is re-raised for net/http to drop the connection.
func Recovery(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			if err, ok := r.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(r)
			}

			route := c.FullPath()
			if route == "" {
				route = "unmatched"
			}
			correlationID := GetCorrelationID(c)
			logger.Error("Panic recovered",
				"panic", fmt.Sprint(r),
				"route", route,
				"method", c.Request.Method,
				"correlation_id", correlationID,
				"response_started", c.Writer.Written(),
				"stack", string(debug.Stack()),
			)

			if c.Writer.Written() {
				c.Abort()
				return
			}

			var body panicResponse
			body.Error.Code = panicCode
			body.Error.Message = panicMessage
			body.CorrelationID = correlationID
			c.AbortWithStatusJSON(http.StatusInternalServerError, body)
		}()

		c.Next()
	}
}
