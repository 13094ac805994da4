package repository

import (
	"context"

	"weather-joke-assistant/internal/model"
)

// WeatherRepository is the interface for current weather lookups.
type WeatherRepository interface {
	CurrentWeather(ctx context.Context, city string) (model.Weather, error)
}
