package routers

import (
	"github.com/gin-gonic/gin"
	"github.com/opentracing/opentracing-go"

	"github.com/go-points/pkg/logging"
	"github.com/go-points/routers/api"
	"github.com/go-points/routers/middleware"
	"github.com/go-points/utils/header"
)

type Options struct {
	Handler   *api.Handler
	Alerts    header.Builder
	JwtSecret string
	// Tracer defaults to the global tracer
	Tracer opentracing.Tracer
}

func InitRouter(opts Options) *gin.Engine {
	tracer := opts.Tracer
	if tracer == nil {
		tracer = opentracing.GlobalTracer()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Tracing(tracer, opts.Alerts))
	r.Use(middleware.Logger(logging.NewLogger("http"), opts.Alerts))

	r.GET("health", api.Health)

	g := r.Group("api")
	if opts.JwtSecret != "" {
		g.Use(middleware.JWT([]byte(opts.JwtSecret), opts.Alerts))
	}

	h := opts.Handler
	g.GET(":resource", h.List)
	g.POST(":resource", h.Create)
	g.DELETE(":resource", h.DeleteMany)
	g.GET(":resource/:id", h.Get)
	g.PUT(":resource/:id", h.Update)
	g.PATCH(":resource/:id", h.Patch)
	g.DELETE(":resource/:id", h.Delete)

	return r
}
