package openweather

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"weather-joke-assistant/internal/chat/repository"
	"weather-joke-assistant/internal/model"
	pkgOpenWeather "weather-joke-assistant/pkg/openweather"
)

// CurrentWeather returns the current weather for city, served from cache when fresh.
func (r *implRepository) CurrentWeather(ctx context.Context, city string) (model.Weather, error) {
	key := cacheKey(city)
	if key == "" {
		return model.Weather{}, repository.ErrCityNotFound
	}

	if r.cache != nil {
		if w, ok := r.cache.Get(key); ok {
			r.l.Debugf(ctx, "openweather.CurrentWeather: cache hit for %q", key)
			return w, nil
		}
	}

	cur, err := r.client.CurrentWeather(ctx, strings.TrimSpace(city))
	if err != nil {
		return model.Weather{}, mapError(err)
	}

	w := toWeather(cur)
	if r.cache != nil {
		r.cache.Add(key, w)
	}
	return w, nil
}

func mapError(err error) error {
	var apiErr *pkgOpenWeather.APIError
	switch {
	case errors.Is(err, pkgOpenWeather.ErrCityNotFound):
		return repository.ErrCityNotFound
	case errors.Is(err, pkgOpenWeather.ErrMissingAPIKey):
		return repository.ErrMissingAPIKey
	case errors.As(err, &apiErr):
		return fmt.Errorf("%w: %s", repository.ErrWeatherUnavailable, apiErr.Message)
	default:
		return fmt.Errorf("%w: %w", repository.ErrWeatherUnavailable, err)
	}
}

func toWeather(cur *pkgOpenWeather.Current) model.Weather {
	condition := cur.Description
	if condition == "" {
		condition = strings.ToLower(cur.Condition)
	}
	return model.Weather{
		City:       cur.City,
		Country:    cur.Country,
		TempC:      cur.TempC,
		FeelsLikeC: cur.FeelsLikeC,
		Humidity:   cur.Humidity,
		Condition:  condition,
	}
}

// cacheKey normalises "  new   YORK " to "new york".
func cacheKey(city string) string {
	return strings.ToLower(strings.Join(strings.Fields(city), " "))
}
