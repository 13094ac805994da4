package httpserver

import (
	"context"

	chatHTTP "weather-joke-assistant/internal/chat/delivery/http"
)

// setupChatDomain creates the chat handler and registers POST /chat.
func (srv HTTPServer) setupChatDomain(ctx context.Context) error {
	h := chatHTTP.New(srv.l, srv.chatUC)
	chatHTTP.RegisterRoutes(srv.gin, h, srv.mw)

	srv.l.Infof(ctx, "Chat route registered at POST /chat")
	return nil
}
