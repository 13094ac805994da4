package usecase

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"weather-joke-assistant/internal/chat/repository"
	"weather-joke-assistant/internal/model"
	"weather-joke-assistant/pkg/llmprovider"
)

// locationPattern matches "in Tokyo", "for New York", "at San Francisco".
var locationPattern = regexp.MustCompile(`\b(?:in|for|at)\s+(\p{Lu}[\p{L}'.-]*(?:\s+\p{Lu}[\p{L}'.-]*)*)`)

// handleWeather always returns an answer; the resolved city is empty when none was found.
func (uc *implUseCase) handleWeather(ctx context.Context, question, city string) (string, string) {
	city = uc.resolveCity(question, city)
	if city == "" {
		return "", msgAskForCity
	}

	weatherCtx, cancel := uc.callContext(ctx)
	w, err := uc.weather.CurrentWeather(weatherCtx, city)
	cancel()
	if err != nil {
		uc.l.Warnf(ctx, "%s: weather lookup for %q failed: %v", logPrefixWeather, city, err)
		return city, weatherFailure(city, err)
	}

	if w.City == "" {
		w.City = city
	}
	summary := formatSummary(w)
	if !uc.cfg.WeatherLLMSummary {
		return city, summary
	}

	llmCtx, cancel := uc.callContext(ctx)
	defer cancel()

	resp, err := uc.llm.GenerateContent(llmCtx, llmprovider.UserRequest(
		promptWeatherSystem,
		fmt.Sprintf(promptWeatherUser, question, summary),
		weatherTemperature,
		weatherMaxTokens,
	))
	if err != nil {
		uc.l.Warnf(ctx, "%s: summary rewrite failed, using plain summary: %v", logPrefixWeather, err)
		return city, summary
	}
	if text := strings.TrimSpace(resp.Text); text != "" {
		return city, text
	}
	return city, summary
}

func (uc *implUseCase) resolveCity(question, city string) string {
	if city = strings.TrimSpace(city); city != "" {
		return city
	}
	if city = extractLocation(question); city != "" {
		return city
	}
	return strings.TrimSpace(uc.cfg.DefaultCity)
}

func extractLocation(question string) string {
	m := locationPattern.FindStringSubmatch(question)
	if m == nil {
		return ""
	}
	return strings.TrimRight(m[1], ".'-")
}

func formatSummary(w model.Weather) string {
	temp := strconv.FormatFloat(w.TempC, 'f', -1, 64)
	return fmt.Sprintf(weatherSummaryFormat, w.City, w.Condition, temp, w.Humidity)
}

func weatherFailure(city string, err error) string {
	switch {
	case errors.Is(err, repository.ErrCityNotFound):
		return fmt.Sprintf(msgCityNotFound, city)
	case errors.Is(err, repository.ErrMissingAPIKey):
		return fmt.Sprintf(msgWeatherFailed, city, reasonNotConfigured)
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Sprintf(msgWeatherFailed, city, reasonTimeout)
	default:
		return fmt.Sprintf(msgWeatherFailed, city, reasonUnavailable)
	}
}
