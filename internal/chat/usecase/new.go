package usecase

import (
	"weather-joke-assistant/internal/chat"
	"weather-joke-assistant/internal/chat/repository"
	"weather-joke-assistant/internal/router"
	"weather-joke-assistant/pkg/llmprovider"
	pkgLog "weather-joke-assistant/pkg/log"
)

type implUseCase struct {
	l       pkgLog.Logger
	router  router.Router
	llm     llmprovider.Generator
	weather repository.WeatherRepository
	cfg     Config
}

var _ chat.UseCase = (*implUseCase)(nil)

// New creates a new chat UseCase instance.
func New(
	l pkgLog.Logger,
	r router.Router,
	llm llmprovider.Generator,
	weather repository.WeatherRepository,
	cfg Config,
) *implUseCase {
	return &implUseCase{
		l:       l,
		router:  r,
		llm:     llm,
		weather: weather,
		cfg:     cfg,
	}
}
