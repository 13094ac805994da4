package router

// Log prefixes
const (
	LogPrefixClassify = "internal.router.Classify"
)

// Router prompts
const (
	PromptRouterSystem = "Classify the user message into weather or joke. " +
		"Return exactly these labeled lines and nothing else."

	PromptRouterUser = "Format:\n" +
		"INTENT: weather|joke\n" +
		"CITY: <city or empty>\n" +
		"TOPIC: <topic or general>\n\n" +
		"Message: %s"
)

// Router configuration
const (
	RouterTemperature = 0
	RouterMaxTokens   = 64
	DefaultTopic      = "general"
)

// Reply labels
const (
	labelIntent = "intent"
	labelCity   = "city"
	labelTopic  = "topic"
)

// Error messages
const (
	ErrMsgLLMCallFailed = "LLM call failed"
	ErrMsgAmbiguous     = "Ambiguous classification, falling back to joke"
)

// Placeholder values some models echo back instead of leaving CITY blank.
var emptyCityValues = map[string]bool{
	"":                true,
	"empty":           true,
	"none":            true,
	"null":            true,
	"n/a":             true,
	"unknown":         true,
	"<city or empty>": true,
}

// Keywords used when the classifier itself is unavailable.
var weatherKeywords = []string{
	"weather", "temperature", "forecast", "rain", "raining", "snow", "sunny",
	"humid", "humidity", "wind", "windy", "cloudy", "hot", "cold", "degrees",
}
