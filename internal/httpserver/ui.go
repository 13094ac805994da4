package httpserver

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed static/index.html
var chatPageHTML []byte

func (srv HTTPServer) chatPage(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", chatPageHTML)
}
