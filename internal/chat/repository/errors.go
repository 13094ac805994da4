package repository

import "errors"

var (
	ErrCityNotFound       = errors.New("city not found")
	ErrMissingAPIKey      = errors.New("weather API key is not configured")
	ErrWeatherUnavailable = errors.New("weather provider unavailable")
)
