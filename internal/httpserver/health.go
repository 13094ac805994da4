package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"weather-joke-assistant/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthVersion = "1.0.0"
	ServiceName   = "weather-joke-assistant"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// readyCheck reports ready once at least one LLM provider is configured.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is ready"
// @Failure 503 {object} response.Resp "No LLM provider configured"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	data := gin.H{
		"version":       HealthVersion,
		"service":       ServiceName,
		"llm_providers": srv.llmProviders,
		"weather":       srv.weatherConfigured,
	}

	if len(srv.llmProviders) == 0 {
		data["status"] = "not_ready"
		response.Unavailable(c, "No LLM provider configured", data)
		return
	}

	data["status"] = "ready"
	response.OK(c, data)
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"version": HealthVersion,
		"service": ServiceName,
	})
}
