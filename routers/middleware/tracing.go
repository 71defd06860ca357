package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"

	"github.com/go-points/utils/header"
)

// Tracing starts a server span per request, joined to the caller's trace
// when the request carries one.
func Tracing(tracer opentracing.Tracer, alerts header.Builder) gin.HandlerFunc {
	return func(c *gin.Context) {
		carrier := opentracing.HTTPHeadersCarrier(c.Request.Header)
		parent, _ := tracer.Extract(opentracing.HTTPHeaders, carrier)

		operation := c.FullPath()
		if operation == "" {
			operation = "unmatched"
		}
		span := tracer.StartSpan(c.Request.Method+" "+operation, ext.RPCServerOption(parent))
		defer span.Finish()

		ext.HTTPMethod.Set(span, c.Request.Method)
		ext.HTTPUrl.Set(span, c.Request.URL.String())
		c.Request = c.Request.WithContext(opentracing.ContextWithSpan(c.Request.Context(), span))

		c.Next()

		status := c.Writer.Status()
		ext.HTTPStatusCode.Set(span, uint16(status))
		if status >= 500 {
			ext.Error.Set(span, true)
		}
		h := c.Writer.Header()
		if v := header.First(h, alerts.AlertHeader()); v != "" {
			span.SetTag("alert", v)
		}
		if v := header.First(h, alerts.ErrorHeader()); v != "" {
			span.SetTag("alert.error", v)
		}
	}
}
