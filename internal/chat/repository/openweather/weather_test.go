package openweather

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-joke-assistant/internal/chat/repository"
	"weather-joke-assistant/pkg/log"
	pkgOpenWeather "weather-joke-assistant/pkg/openweather"
)

type stubClient struct {
	mu    sync.Mutex
	calls []string
	cur   *pkgOpenWeather.Current
	err   error
}

func (s *stubClient) CurrentWeather(ctx context.Context, city string) (*pkgOpenWeather.Current, error) {
	s.mu.Lock()
	s.calls = append(s.calls, city)
	s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	cur := *s.cur
	return &cur, nil
}

func TestCurrentWeather_MapsAndCaches(t *testing.T) {
	client := &stubClient{cur: &pkgOpenWeather.Current{
		City: "Tokyo", Country: "JP", TempC: 18, FeelsLikeC: 17.2, Humidity: 60,
		Condition: "Clear", Description: "clear sky",
	}}
	repo := New(log.NewNop(), client, Options{})

	w, err := repo.CurrentWeather(context.Background(), "Tokyo")
	require.NoError(t, err)
	assert.Equal(t, "Tokyo", w.City)
	assert.Equal(t, "JP", w.Country)
	assert.Equal(t, 18.0, w.TempC)
	assert.Equal(t, 60, w.Humidity)
	assert.Equal(t, "clear sky", w.Condition)

	_, err = repo.CurrentWeather(context.Background(), "  tokyo ")
	require.NoError(t, err)
	assert.Equal(t, []string{"Tokyo"}, client.calls, "second lookup should be served from cache")
}

func TestCurrentWeather_CacheDisabled(t *testing.T) {
	client := &stubClient{cur: &pkgOpenWeather.Current{City: "Paris", Condition: "Rain"}}
	repo := New(log.NewNop(), client, Options{CacheTTL: -1})

	for i := 0; i < 2; i++ {
		w, err := repo.CurrentWeather(context.Background(), "Paris")
		require.NoError(t, err)
		assert.Equal(t, "rain", w.Condition)
	}
	assert.Len(t, client.calls, 2)
}

func TestCurrentWeather_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"not found", pkgOpenWeather.ErrCityNotFound, repository.ErrCityNotFound},
		{"missing key", pkgOpenWeather.ErrMissingAPIKey, repository.ErrMissingAPIKey},
		{"api error", &pkgOpenWeather.APIError{StatusCode: 401, Message: "Invalid API key."}, repository.ErrWeatherUnavailable},
		{"transport", errors.New("connection refused"), repository.ErrWeatherUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := New(log.NewNop(), &stubClient{err: tt.err}, Options{})

			_, err := repo.CurrentWeather(context.Background(), "Atlantis")
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCurrentWeather_ErrorsAreNotCached(t *testing.T) {
	client := &stubClient{err: pkgOpenWeather.ErrCityNotFound}
	repo := New(log.NewNop(), client, Options{})

	_, _ = repo.CurrentWeather(context.Background(), "Atlantis")
	_, _ = repo.CurrentWeather(context.Background(), "Atlantis")
	assert.Len(t, client.calls, 2)
}

func TestCurrentWeather_BlankCity(t *testing.T) {
	client := &stubClient{}
	repo := New(log.NewNop(), client, Options{})

	_, err := repo.CurrentWeather(context.Background(), "   ")
	assert.ErrorIs(t, err, repository.ErrCityNotFound)
	assert.Empty(t, client.calls)
}
