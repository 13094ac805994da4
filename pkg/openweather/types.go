package openweather

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrMissingAPIKey = errors.New("openweather: missing API key")
	ErrCityNotFound  = errors.New("openweather: city not found")
)

// Config holds client configuration
type Config struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

func (c *Config) applyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
}

type openWeatherImpl struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// Current is the decoded current weather for one location.
type Current struct {
	City        string
	Country     string
	TempC       float64
	FeelsLikeC  float64
	Humidity    int
	Condition   string
	Description string
}

// APIError is returned for non-2xx responses other than 404.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("openweather: API error %d: %s", e.StatusCode, e.Message)
}

// Wire types of /weather

type weatherResponse struct {
	Name string `json:"name"`
	Sys  struct {
		Country string `json:"country"`
	} `json:"sys"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
}

type errorResponse struct {
	Cod     any    `json:"cod"`
	Message string `json:"message"`
}
