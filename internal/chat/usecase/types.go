package usecase

import "time"

// Config holds the flow controller settings.
type Config struct {
	// RequestTimeout bounds each outbound call. Zero disables the bound.
	RequestTimeout time.Duration

	// DefaultCity is used when no location can be found in the question.
	DefaultCity string

	// WeatherLLMSummary rewrites the weather summary with the LLM.
	WeatherLLMSummary bool
}
