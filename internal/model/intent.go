package model

import "strings"

// Intent is the routing label produced by the classifier.
type Intent string

const (
	IntentWeather Intent = "weather"
	IntentJoke    Intent = "joke"

	// IntentFallback is used whenever the classifier reply is missing or unrecognised.
	IntentFallback = IntentJoke
)

// Valid reports whether i is one of the known intents.
func (i Intent) Valid() bool {
	return i == IntentWeather || i == IntentJoke
}

func (i Intent) String() string {
	return string(i)
}

// ParseIntent maps a raw label to an Intent. ok is false when the label is unknown
// and the fallback intent was returned.
func ParseIntent(raw string) (intent Intent, ok bool) {
	switch Intent(strings.ToLower(strings.TrimSpace(raw))) {
	case IntentWeather:
		return IntentWeather, true
	case IntentJoke:
		return IntentJoke, true
	default:
		return IntentFallback, false
	}
}
