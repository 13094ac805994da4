package openweather

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"weather-joke-assistant/internal/chat/repository"
	"weather-joke-assistant/internal/model"
	"weather-joke-assistant/pkg/log"
	pkgOpenWeather "weather-joke-assistant/pkg/openweather"
)

const (
	defaultCacheSize = 256
	defaultCacheTTL  = 5 * time.Minute
)

// Options configures the weather cache. Zero values use defaults; a negative TTL disables caching.
type Options struct {
	CacheSize int
	CacheTTL  time.Duration
}

type implRepository struct {
	l      log.Logger
	client pkgOpenWeather.IOpenWeather
	cache  *expirable.LRU[string, model.Weather]
}

var _ repository.WeatherRepository = (*implRepository)(nil)

// New creates a WeatherRepository backed by OpenWeatherMap.
func New(l log.Logger, client pkgOpenWeather.IOpenWeather, opt Options) *implRepository {
	r := &implRepository{
		l:      l,
		client: client,
	}

	if opt.CacheTTL >= 0 {
		size := opt.CacheSize
		if size <= 0 {
			size = defaultCacheSize
		}
		ttl := opt.CacheTTL
		if ttl == 0 {
			ttl = defaultCacheTTL
		}
		r.cache = expirable.NewLRU[string, model.Weather](size, nil, ttl)
	}

	return r
}
