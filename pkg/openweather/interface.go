package openweather

import "context"

// IOpenWeather is a client for the OpenWeatherMap current weather API.
type IOpenWeather interface {
	// CurrentWeather returns the current conditions for a city name.
	CurrentWeather(ctx context.Context, city string) (*Current, error)
}

// New creates a new client. A missing API key is not an error here:
// every call then fails with ErrMissingAPIKey so the caller can degrade.
func New(cfg Config) IOpenWeather {
	cfg.applyDefaults()
	return &openWeatherImpl{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		httpClient: cfg.HTTPClient,
	}
}
