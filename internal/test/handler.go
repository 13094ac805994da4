package test

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// HandleClassify runs only the intent classifier, without calling the weather or joke handlers
// @Summary Classify a question
// @Description Show the intent, city and topic the classifier extracts from a question
// @Tags test
// @Accept json
// @Produce json
// @Param request body ClassifyRequest true "Question"
// @Success 200 {object} ClassifyResponse
// @Failure 400 {object} ClassifyResponse
// @Failure 502 {object} ClassifyResponse
// @Router /test/classify [post]
func (h *handler) HandleClassify(c *gin.Context) {
	ctx := c.Request.Context()

	var req ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Text) == "" {
		c.JSON(http.StatusBadRequest, ClassifyResponse{
			Success: false,
			Error:   "Invalid request",
			Details: "text is required",
			Text:    req.Text,
		})
		return
	}

	out, err := h.router.Classify(ctx, strings.TrimSpace(req.Text))
	if err != nil {
		h.l.Errorf(ctx, "internal.test.HandleClassify: Router classification failed: %v", err)
		c.JSON(http.StatusBadGateway, ClassifyResponse{
			Success: false,
			Error:   "Router classification failed",
			Details: err.Error(),
			Text:    req.Text,
		})
		return
	}

	h.l.Infof(ctx, "internal.test.HandleClassify: text=%q intent=%s city=%q topic=%q",
		req.Text, out.Intent, out.City, out.Topic)

	c.JSON(http.StatusOK, ClassifyResponse{
		Success:   true,
		Intent:    out.Intent.String(),
		City:      out.City,
		Topic:     out.Topic,
		Ambiguous: out.Ambiguous,
		Raw:       out.Raw,
		Text:      req.Text,
	})
}

// HandleHealthCheck returns the health status of test endpoints
// @Summary Test health check
// @Description Check if test endpoints are available
// @Tags test
// @Produce json
// @Success 200 {object} HealthCheckResponse
// @Router /test/health [get]
func (h *handler) HandleHealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthCheckResponse{
		Status:  "ok",
		Message: "Test endpoints are available",
	})
}
