package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/go-points/utils/header"
)

// Logger logs one line per request, including the notification it carried.
func Logger(log *logrus.Entry, alerts header.Builder) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		h := c.Writer.Header()
		fields := logrus.Fields{
			"method":  c.Request.Method,
			"path":    path,
			"status":  c.Writer.Status(),
			"latency": time.Since(start),
		}
		if v := header.First(h, alerts.AlertHeader()); v != "" {
			fields["alert"] = v
		}
		if v := header.First(h, alerts.ErrorHeader()); v != "" {
			fields["error"] = v
		}

		entry := log.WithFields(fields)
		switch status := c.Writer.Status(); {
		case status >= 500:
			entry.Error("request")
		case status >= 400:
			entry.Warn("request")
		default:
			entry.Info("request")
		}
	}
}
