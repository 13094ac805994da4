package openweather_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"weather-joke-assistant/pkg/openweather"
)

func TestCurrentWeather_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/weather" {
			t.Errorf("expected /weather, got %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("q") != "New York" || q.Get("appid") != "k" || q.Get("units") != "metric" {
			t.Errorf("unexpected query: %s", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"name": "New York",
			"sys": {"country": "US"},
			"main": {"temp": 21.4, "feels_like": 20.9, "humidity": 55},
			"weather": [{"main": "Clouds", "description": "scattered clouds"}]
		}`))
	}))
	defer srv.Close()

	client := openweather.New(openweather.Config{APIKey: "k", BaseURL: srv.URL + "/", HTTPClient: srv.Client()})

	got, err := client.CurrentWeather(context.Background(), "New York")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.City != "New York" || got.Country != "US" {
		t.Errorf("unexpected location: %+v", got)
	}
	if got.TempC != 21.4 || got.FeelsLikeC != 20.9 || got.Humidity != 55 {
		t.Errorf("unexpected readings: %+v", got)
	}
	if got.Condition != "Clouds" || got.Description != "scattered clouds" {
		t.Errorf("unexpected condition: %+v", got)
	}
}

func TestCurrentWeather_MissingAPIKey(t *testing.T) {
	client := openweather.New(openweather.Config{})

	_, err := client.CurrentWeather(context.Background(), "Paris")
	if !errors.Is(err, openweather.ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
}

func TestCurrentWeather_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"cod":"404","message":"city not found"}`))
	}))
	defer srv.Close()

	client := openweather.New(openweather.Config{APIKey: "k", BaseURL: srv.URL, HTTPClient: srv.Client()})

	_, err := client.CurrentWeather(context.Background(), "Atlantis")
	if !errors.Is(err, openweather.ErrCityNotFound) {
		t.Fatalf("expected ErrCityNotFound, got %v", err)
	}
}

func TestCurrentWeather_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"cod":401,"message":"Invalid API key."}`))
	}))
	defer srv.Close()

	client := openweather.New(openweather.Config{APIKey: "bad", BaseURL: srv.URL, HTTPClient: srv.Client()})

	_, err := client.CurrentWeather(context.Background(), "Paris")
	var apiErr *openweather.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusUnauthorized || apiErr.Message != "Invalid API key." {
		t.Errorf("unexpected error: %+v", apiErr)
	}
}
