package http

import (
	"github.com/gin-gonic/gin"

	"weather-joke-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(r gin.IRoutes, h *handler, mw middleware.Middleware) {
	r.POST("/chat", mw.RateLimit(), h.Chat)
}
