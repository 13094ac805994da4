package openweather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const tracerName = "weather-joke-assistant/pkg/openweather"

// CurrentWeather calls GET {base}/weather?q=<city>&appid=<key>&units=metric
func (c *openWeatherImpl) CurrentWeather(ctx context.Context, city string) (*Current, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	ctx, span := otel.Tracer(tracerName).Start(ctx, "openweather.CurrentWeather")
	defer span.End()
	span.SetAttributes(attribute.String("weather.city", city))

	out, err := c.fetch(ctx, city)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return out, nil
}

func (c *openWeatherImpl) fetch(ctx context.Context, city string) (*Current, error) {
	q := url.Values{}
	q.Set("q", city)
	q.Set("appid", c.apiKey)
	q.Set("units", UnitsMetric)
	endpoint := c.baseURL + "/weather?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("openweather: failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openweather: failed to call API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrCityNotFound
	}
	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		msg := strings.TrimSpace(string(raw))
		var er errorResponse
		if json.Unmarshal(raw, &er) == nil && er.Message != "" {
			msg = er.Message
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	var wr weatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&wr); err != nil {
		return nil, fmt.Errorf("openweather: failed to decode response: %w", err)
	}

	out := &Current{
		City:       wr.Name,
		Country:    wr.Sys.Country,
		TempC:      wr.Main.Temp,
		FeelsLikeC: wr.Main.FeelsLike,
		Humidity:   wr.Main.Humidity,
	}
	if out.City == "" {
		out.City = city
	}
	if len(wr.Weather) > 0 {
		out.Condition = wr.Weather[0].Main
		out.Description = wr.Weather[0].Description
	}
	return out, nil
}
