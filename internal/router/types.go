package router

import "weather-joke-assistant/internal/model"

// RouterOutput is the parsed classifier reply.
type RouterOutput struct {
	Intent model.Intent
	City   string // empty when the model gave none
	Topic  string // never empty, defaults to "general"

	// Ambiguous is set when the intent label was missing or unrecognised
	// and Intent holds the fallback.
	Ambiguous bool

	// Raw is the unparsed model reply, kept for logging.
	Raw string
}
