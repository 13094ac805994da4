package httpserver

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"weather-joke-assistant/internal/chat"
	"weather-joke-assistant/internal/middleware"
	"weather-joke-assistant/internal/router"
	"weather-joke-assistant/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string
	mw          middleware.Middleware

	// Readiness
	llmProviders      []string
	weatherConfigured bool

	// Chat domain
	chatUC chat.UseCase

	// Classifier debug endpoints, non-production only
	router router.Router
}

// Config is the dependency bag passed to New().
type Config struct {
	Host        string
	Port        int
	Mode        string
	Environment string
	Middleware  middleware.Middleware

	// TrustedProxies may set X-Forwarded-For. Nil trusts none, so ClientIP is the peer address.
	TrustedProxies []string

	// LLMProviders lists the enabled provider names, in priority order.
	LLMProviders      []string
	WeatherConfigured bool

	ChatUseCase chat.UseCase

	// Router enables /test/classify outside production. Optional.
	Router router.Router
}

// New creates a new HTTPServer instance with all routes mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	srv := &HTTPServer{
		l:                 logger,
		gin:               gin.New(),
		host:              cfg.Host,
		port:              cfg.Port,
		mode:              cfg.Mode,
		environment:       cfg.Environment,
		mw:                cfg.Middleware,
		llmProviders:      cfg.LLMProviders,
		weatherConfigured: cfg.WeatherConfigured,
		chatUC:            cfg.ChatUseCase,
		router:            cfg.Router,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.gin.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.chatUC == nil {
		return errors.New("chat use case is required")
	}
	return nil
}
