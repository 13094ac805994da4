package usecase

import (
	"testing"

	"weather-joke-assistant/internal/model"
)

func TestExtractLocation(t *testing.T) {
	tests := []struct {
		question string
		want     string
	}{
		{"What's the weather in Tokyo?", "Tokyo"},
		{"Forecast for New York tomorrow", "New York"},
		{"How hot is it at San Francisco.", "San Francisco"},
		{"weather in São Paulo", "São Paulo"},
		{"is it raining in my town", ""},
		{"how's the weather?", ""},
	}

	for _, tt := range tests {
		if got := extractLocation(tt.question); got != tt.want {
			t.Errorf("extractLocation(%q) = %q, want %q", tt.question, got, tt.want)
		}
	}
}

func TestFormatSummary(t *testing.T) {
	got := formatSummary(model.Weather{City: "Tokyo", TempC: 18.25, Humidity: 55, Condition: "few clouds"})
	want := "Tokyo: few clouds, 18.25 deg C, humidity 55%."
	if got != want {
		t.Errorf("formatSummary() = %q, want %q", got, want)
	}
}

func TestFallbackJoke(t *testing.T) {
	for _, topic := range []string{"general", "cats", "Cats", "programming", "weather"} {
		if fallbackJoke(topic) == "" {
			t.Fatalf("empty fallback joke for %q", topic)
		}
	}
	if fallbackJoke("cats") != fallbackJoke("CATS") {
		t.Error("fallback joke should ignore topic case")
	}
}
