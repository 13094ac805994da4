package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"weather-joke-assistant/config"
	chatCLI "weather-joke-assistant/internal/chat/delivery/cli"
	weatherRepo "weather-joke-assistant/internal/chat/repository/openweather"
	chatUC "weather-joke-assistant/internal/chat/usecase"
	"weather-joke-assistant/internal/httpserver"
	"weather-joke-assistant/internal/middleware"
	"weather-joke-assistant/internal/router"
	"weather-joke-assistant/pkg/llmprovider"
	"weather-joke-assistant/pkg/log"
	"weather-joke-assistant/pkg/openweather"
)

func run(ctx context.Context, cmd *cobra.Command, opts *options) error {
	// 1. Configuration
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Flags().Changed("host") || cfg.HTTPServer.Host == "" {
		cfg.HTTPServer.Host = opts.host
	}
	if cmd.Flags().Changed("port") || cfg.HTTPServer.Port == 0 {
		cfg.HTTPServer.Port = opts.port
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})
	logger.Infof(ctx, "Environment: %s, mode: %s", cfg.Environment.Name, opts.mode)

	// 3. LLM providers
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		return fmt.Errorf("failed to initialize LLM providers: %w", err)
	}
	providerNames := make([]string, 0, len(providers))
	for _, p := range providers {
		providerNames = append(providerNames, p.Name())
		logger.Infof(ctx, "LLM provider %s (%s) enabled", p.Name(), p.Model())
	}
	llm := llmprovider.NewManager(providers, llmprovider.NewManagerConfig(&cfg.LLM), logger)

	// 4. Weather
	if cfg.OpenWeather.APIKey == "" {
		logger.Warn(ctx, "OPENWEATHER_API_KEY is not set, weather questions will get an apology")
	}
	weatherClient := openweather.New(openweather.Config{
		APIKey:     cfg.OpenWeather.APIKey,
		BaseURL:    cfg.OpenWeather.BaseURL,
		HTTPClient: &http.Client{Timeout: cfg.OpenWeather.Timeout},
	})
	weather := weatherRepo.New(logger, weatherClient, weatherRepo.Options{
		CacheSize: cfg.OpenWeather.CacheSize,
		CacheTTL:  cfg.OpenWeather.CacheTTL,
	})

	// 5. Chat domain
	classifier := router.New(llm, logger)
	uc := chatUC.New(logger, classifier, llm, weather, chatUC.Config{
		RequestTimeout:    cfg.Chat.RequestTimeout,
		DefaultCity:       cfg.OpenWeather.DefaultCity,
		WeatherLLMSummary: cfg.OpenWeather.LLMSummary,
	})

	// 6. Run
	if opts.mode == modeCLI {
		return chatCLI.New(logger, uc, os.Stdin, os.Stdout).Run(ctx)
	}

	srv, err := httpserver.New(logger, httpserver.Config{
		Host:           cfg.HTTPServer.Host,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		TrustedProxies: cfg.HTTPServer.TrustedProxies,
		Middleware: middleware.New(logger, middleware.Options{
			RateLimitEnabled: cfg.RateLimit.Enabled,
			RequestsPerMin:   cfg.RateLimit.RequestsPerMin,
		}),
		LLMProviders:      providerNames,
		WeatherConfigured: cfg.OpenWeather.APIKey != "",
		ChatUseCase:       uc,
		Router:            classifier,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize HTTP server: %w", err)
	}

	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("failed to run server: %w", err)
	}
	logger.Info(ctx, "Server stopped gracefully")
	return nil
}
