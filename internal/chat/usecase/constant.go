package usecase

// Log prefixes
const (
	logPrefixAnswer  = "internal.chat.usecase.Answer"
	logPrefixWeather = "internal.chat.usecase.handleWeather"
	logPrefixJoke    = "internal.chat.usecase.handleJoke"
)

// Weather prompts
const (
	promptWeatherSystem = "You are a concise assistant. Use the provided weather summary only."
	promptWeatherUser   = "User asked: %s\nWeather summary: %s\nWrite a short friendly answer."

	weatherTemperature = 0.3
	weatherMaxTokens   = 200
)

// Joke prompts
const (
	promptJokeSystem = "Tell one short, clean joke."
	promptJokeUser   = "Topic: %s"

	jokeTemperature = 0.8
	jokeMaxTokens   = 200
	defaultTopic    = "general"
)

// Weather answers
const (
	weatherSummaryFormat = "%s: %s, %s deg C, humidity %d%%."

	msgAskForCity       = "Please include a city so I can check the weather."
	msgCityNotFound     = "I could not find weather for '%s'."
	msgWeatherFailed    = "I could not fetch weather for '%s'. %s."
	reasonNotConfigured = "The weather service is not configured"
	reasonTimeout       = "The weather service timed out"
	reasonUnavailable   = "The weather service is unavailable right now"
)

// fallbackJokes is used when the model cannot produce a joke.
var fallbackJokes = []string{
	"I told my computer I needed a break, and it said: no problem, I'll go to sleep.",
	"Why do programmers prefer dark mode? Because light attracts bugs.",
	"I would tell you a UDP joke, but you might not get it.",
	"Why did the scarecrow win an award? He was outstanding in his field.",
	"Parallel lines have so much in common. It's a shame they'll never meet.",
}
