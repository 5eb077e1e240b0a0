package middleware

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// RequestIDHeader carries the per-request id.  An incoming value is reused.
const RequestIDHeader = echo.HeaderXRequestID

// RequestLogger tags each request with an id and logs one line when it
// completes.  Server errors are logged at error level, client errors at warn.
func RequestLogger(log logrus.FieldLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			id := req.Header.Get(RequestIDHeader)
			if id == "" {
				id = uuid.NewString()
			}
			c.Response().Header().Set(RequestIDHeader, id)

			start := time.Now()
			err := next(c)
			if err != nil {
				// Let the error handler write the response so the status is known.
				c.Error(err)
			}

			status := c.Response().Status
			entry := log.WithFields(logrus.Fields{
				"request_id": id,
				"method":     req.Method,
				"path":       req.URL.Path,
				"status":     status,
				"latency":    time.Since(start).String(),
				"remote_ip":  c.RealIP(),
			})
			switch {
			case status >= 500:
				entry.Error("request failed")
			case status >= 400:
				entry.Warn("request rejected")
			default:
				entry.Info("request")
			}
			return nil
		}
	}
}
