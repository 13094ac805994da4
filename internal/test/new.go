package test

import (
	"github.com/gin-gonic/gin"

	"weather-joke-assistant/internal/router"
	pkgLog "weather-joke-assistant/pkg/log"
)

// Handler exposes classifier debugging endpoints. Not registered in production.
type Handler interface {
	HandleClassify(c *gin.Context)
	HandleHealthCheck(c *gin.Context)
}

type handler struct {
	l      pkgLog.Logger
	router router.Router
}

// New creates a new test handler
func New(l pkgLog.Logger, r router.Router) Handler {
	return &handler{
		l:      l,
		router: r,
	}
}

// RegisterRoutes mounts the handler under /test.
func RegisterRoutes(r gin.IRouter, h Handler) {
	g := r.Group("/test")
	g.POST("/classify", h.HandleClassify)
	g.GET("/health", h.HandleHealthCheck)
}
