package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"weather-joke-assistant/internal/chat"
	"weather-joke-assistant/internal/chat/repository"
	"weather-joke-assistant/internal/chat/usecase"
	"weather-joke-assistant/internal/model"
	"weather-joke-assistant/internal/router"
	"weather-joke-assistant/pkg/llmprovider"
	"weather-joke-assistant/pkg/log"
)

var tokyo = model.Weather{City: "Tokyo", Country: "JP", TempC: 18, Humidity: 40, Condition: "clear sky"}

func TestAnswer_EmptyQuestion(t *testing.T) {
	uc := usecase.New(log.NewNop(), &stubRouter{}, &stubLLM{}, &stubWeather{}, usecase.Config{})

	for _, q := range []string{"", "   ", "\n\t"} {
		_, err := uc.Answer(context.Background(), chat.AnswerInput{Question: q})
		assert.ErrorIs(t, err, chat.ErrEmptyQuestion)
	}
}

func TestAnswer_WeatherRoute(t *testing.T) {
	r := &stubRouter{out: router.RouterOutput{Intent: model.IntentWeather, City: "Tokyo", Topic: "general"}}
	w := &stubWeather{byCity: map[string]model.Weather{"Tokyo": tokyo}}
	llm := &stubLLM{err: errors.New("should not be called")}
	uc := usecase.New(log.NewNop(), r, llm, w, usecase.Config{})

	out, err := uc.Answer(context.Background(), chat.AnswerInput{Question: "What's the weather in Tokyo?"})
	require.NoError(t, err)

	assert.Equal(t, model.IntentWeather, out.Intent)
	assert.Equal(t, "Tokyo", out.City)
	assert.Equal(t, "Tokyo: clear sky, 18 deg C, humidity 40%.", out.Answer)
	assert.Contains(t, out.Answer, "Tokyo")
	assert.Contains(t, out.Answer, "18")
	assert.Zero(t, llm.callCount())
}

func TestAnswer_WeatherLLMSummary(t *testing.T) {
	r := &stubRouter{out: router.RouterOutput{Intent: model.IntentWeather, City: "Tokyo", Topic: "general"}}
	w := &stubWeather{byCity: map[string]model.Weather{"Tokyo": tokyo}}

	t.Run("rewrite used", func(t *testing.T) {
		llm := &stubLLM{text: " It's a clear 18 deg C in Tokyo today. "}
		uc := usecase.New(log.NewNop(), r, llm, w, usecase.Config{WeatherLLMSummary: true})

		out, err := uc.Answer(context.Background(), chat.AnswerInput{Question: "Weather in Tokyo?"})
		require.NoError(t, err)
		assert.Equal(t, "It's a clear 18 deg C in Tokyo today.", out.Answer)

		require.Equal(t, 1, llm.callCount())
		req := llm.calls[0]
		assert.Equal(t, 0.3, req.Temperature)
		assert.Contains(t, req.Messages[0].Text, "Weather summary: Tokyo: clear sky, 18 deg C, humidity 40%.")
	})

	t.Run("rewrite failure keeps summary", func(t *testing.T) {
		llm := &stubLLM{err: llmprovider.ErrAllProvidersFailed}
		uc := usecase.New(log.NewNop(), r, llm, w, usecase.Config{WeatherLLMSummary: true})

		out, err := uc.Answer(context.Background(), chat.AnswerInput{Question: "Weather in Tokyo?"})
		require.NoError(t, err)
		assert.Equal(t, "Tokyo: clear sky, 18 deg C, humidity 40%.", out.Answer)
	})

	t.Run("empty rewrite keeps summary", func(t *testing.T) {
		llm := &stubLLM{text: "  "}
		uc := usecase.New(log.NewNop(), r, llm, w, usecase.Config{WeatherLLMSummary: true})

		out, err := uc.Answer(context.Background(), chat.AnswerInput{Question: "Weather in Tokyo?"})
		require.NoError(t, err)
		assert.Equal(t, "Tokyo: clear sky, 18 deg C, humidity 40%.", out.Answer)
	})
}

func TestAnswer_WeatherLocation(t *testing.T) {
	hanoi := model.Weather{City: "Hanoi", TempC: 31.5, Humidity: 80, Condition: "light rain"}
	w := &stubWeather{byCity: map[string]model.Weather{"Hanoi": hanoi, "New York": {City: "New York", TempC: 5, Condition: "snow"}}}
	r := &stubRouter{out: router.RouterOutput{Intent: model.IntentWeather, Topic: "general"}}

	t.Run("extracted from question", func(t *testing.T) {
		uc := usecase.New(log.NewNop(), r, &stubLLM{}, w, usecase.Config{})

		out, err := uc.Answer(context.Background(), chat.AnswerInput{Question: "Is it cold in New York today?"})
		require.NoError(t, err)
		assert.Equal(t, "New York", out.City)
		assert.Equal(t, "New York: snow, 5 deg C, humidity 0%.", out.Answer)
	})

	t.Run("default city", func(t *testing.T) {
		uc := usecase.New(log.NewNop(), r, &stubLLM{}, w, usecase.Config{DefaultCity: "Hanoi"})

		out, err := uc.Answer(context.Background(), chat.AnswerInput{Question: "how's the weather?"})
		require.NoError(t, err)
		assert.Equal(t, "Hanoi", out.City)
		assert.Equal(t, "Hanoi: light rain, 31.5 deg C, humidity 80%.", out.Answer)
	})

	t.Run("no city asks for one", func(t *testing.T) {
		uc := usecase.New(log.NewNop(), r, &stubLLM{}, w, usecase.Config{})

		out, err := uc.Answer(context.Background(), chat.AnswerInput{Question: "how's the weather?"})
		require.NoError(t, err)
		assert.Empty(t, out.City)
		assert.Equal(t, "Please include a city so I can check the weather.", out.Answer)
	})
}

func TestAnswer_WeatherFailures(t *testing.T) {
	r := &stubRouter{out: router.RouterOutput{Intent: model.IntentWeather, City: "Atlantis", Topic: "general"}}

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"not found", repository.ErrCityNotFound, "I could not find weather for 'Atlantis'."},
		{"missing key", repository.ErrMissingAPIKey, "I could not fetch weather for 'Atlantis'. The weather service is not configured."},
		{"provider down", fmt.Errorf("%w: 500", repository.ErrWeatherUnavailable), "I could not fetch weather for 'Atlantis'. The weather service is unavailable right now."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := usecase.New(log.NewNop(), r, &stubLLM{}, &stubWeather{err: tt.err}, usecase.Config{})

			out, err := uc.Answer(context.Background(), chat.AnswerInput{Question: "weather in Atlantis"})
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.Answer)
		})
	}
}

func TestAnswer_WeatherTimeout(t *testing.T) {
	r := &stubRouter{out: router.RouterOutput{Intent: model.IntentWeather, City: "Oslo", Topic: "general"}}
	uc := usecase.New(log.NewNop(), r, &stubLLM{}, &stubWeather{blockOn: true}, usecase.Config{RequestTimeout: 20 * time.Millisecond})

	out, err := uc.Answer(context.Background(), chat.AnswerInput{Question: "weather in Oslo"})
	require.NoError(t, err)
	assert.Equal(t, "I could not fetch weather for 'Oslo'. The weather service timed out.", out.Answer)
}

func TestAnswer_JokeRoute(t *testing.T) {
	r := &stubRouter{out: router.RouterOutput{Intent: model.IntentJoke, Topic: "chickens"}}
	llm := &stubLLM{text: "Why did..."}
	uc := usecase.New(log.NewNop(), r, llm, &stubWeather{}, usecase.Config{})

	out, err := uc.Answer(context.Background(), chat.AnswerInput{Question: "Tell me a chicken joke"})
	require.NoError(t, err)

	assert.Equal(t, model.IntentJoke, out.Intent)
	assert.Equal(t, "Why did...", out.Answer)
	assert.Equal(t, "chickens", out.Topic)
	assert.Empty(t, out.City)

	require.Equal(t, 1, llm.callCount())
	assert.Equal(t, "Tell one short, clean joke.", llm.calls[0].SystemInstruction)
	assert.Equal(t, "Topic: chickens", llm.calls[0].Messages[0].Text)
	assert.Equal(t, 0.8, llm.calls[0].Temperature)
}

func TestAnswer_JokeFallback(t *testing.T) {
	r := &stubRouter{out: router.RouterOutput{Intent: model.IntentJoke, Topic: "cats"}}

	failing := usecase.New(log.NewNop(), r, &stubLLM{err: llmprovider.ErrAllProvidersFailed}, &stubWeather{}, usecase.Config{})
	empty := usecase.New(log.NewNop(), r, &stubLLM{text: ""}, &stubWeather{}, usecase.Config{})

	a, err := failing.Answer(context.Background(), chat.AnswerInput{Question: "joke about cats"})
	require.NoError(t, err)
	b, err := empty.Answer(context.Background(), chat.AnswerInput{Question: "joke about cats"})
	require.NoError(t, err)

	assert.NotEmpty(t, a.Answer)
	assert.Equal(t, a.Answer, b.Answer, "fallback joke should be stable for a topic")
}

func TestAnswer_ClassifierFailureUsesKeywords(t *testing.T) {
	r := &stubRouter{err: &llmprovider.ProviderError{Provider: "openai", Err: errors.New("timeout")}}
	w := &stubWeather{byCity: map[string]model.Weather{"Tokyo": tokyo}}
	llm := &stubLLM{err: llmprovider.ErrAllProvidersFailed}
	uc := usecase.New(log.NewNop(), r, llm, w, usecase.Config{})

	out, err := uc.Answer(context.Background(), chat.AnswerInput{Question: "What's the weather in Tokyo?"})
	require.NoError(t, err)
	assert.Equal(t, model.IntentWeather, out.Intent)
	assert.Contains(t, out.Answer, "Tokyo")

	out, err = uc.Answer(context.Background(), chat.AnswerInput{Question: "Make me laugh"})
	require.NoError(t, err)
	assert.Equal(t, model.IntentJoke, out.Intent)
	assert.Equal(t, "general", out.Topic)
	assert.NotEmpty(t, out.Answer)
}

func TestAnswer_AlwaysAnswersWhenProvidersFail(t *testing.T) {
	r := &stubRouter{err: llmprovider.ErrAllProvidersFailed}
	w := &stubWeather{err: repository.ErrWeatherUnavailable}
	llm := &stubLLM{err: llmprovider.ErrAllProvidersFailed}
	uc := usecase.New(log.NewNop(), r, llm, w, usecase.Config{DefaultCity: "Paris", WeatherLLMSummary: true})

	for _, q := range []string{"weather?", "joke please", "x", "Will it rain in Lima?"} {
		out, err := uc.Answer(context.Background(), chat.AnswerInput{Question: q})
		require.NoError(t, err, q)
		assert.NotEmpty(t, strings.TrimSpace(out.Answer), q)
		assert.True(t, out.Intent.Valid(), q)
	}
}

func TestAnswer_UnknownIntentFallsBackToJoke(t *testing.T) {
	r := &stubRouter{out: router.RouterOutput{Intent: model.Intent("sports")}}
	uc := usecase.New(log.NewNop(), r, &stubLLM{text: "A joke."}, &stubWeather{}, usecase.Config{})

	out, err := uc.Answer(context.Background(), chat.AnswerInput{Question: "who won?"})
	require.NoError(t, err)
	assert.Equal(t, model.IntentJoke, out.Intent)
	assert.Equal(t, "general", out.Topic)
	assert.Equal(t, "A joke.", out.Answer)
}

func TestAnswer_ConcurrentRequestsAreIndependent(t *testing.T) {
	const n = 32

	r := &stubRouter{fn: func(q string) router.RouterOutput {
		if strings.HasPrefix(q, "weather ") {
			return router.RouterOutput{Intent: model.IntentWeather, City: strings.TrimPrefix(q, "weather "), Topic: "general"}
		}
		return router.RouterOutput{Intent: model.IntentJoke, Topic: q}
	}}
	llm := &stubLLM{fn: func(req *llmprovider.Request) string {
		return "joke for " + strings.TrimPrefix(req.Messages[0].Text, "Topic: ")
	}}
	byCity := make(map[string]model.Weather, n)
	for i := 0; i < n; i++ {
		city := fmt.Sprintf("City%d", i)
		byCity[city] = model.Weather{City: city, TempC: float64(i), Condition: "clear"}
	}
	uc := usecase.New(log.NewNop(), r, llm, &stubWeather{byCity: byCity}, usecase.Config{RequestTimeout: time.Second})

	answers := make([]chat.AnswerOutput, 2*n)
	var g errgroup.Group
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			out, err := uc.Answer(context.Background(), chat.AnswerInput{Question: fmt.Sprintf("weather City%d", i)})
			answers[2*i] = out
			return err
		})
		g.Go(func() error {
			out, err := uc.Answer(context.Background(), chat.AnswerInput{Question: fmt.Sprintf("topic%d", i)})
			answers[2*i+1] = out
			return err
		})
	}
	require.NoError(t, g.Wait())

	for i := 0; i < n; i++ {
		assert.Equal(t, fmt.Sprintf("City%d: clear, %d deg C, humidity 0%%.", i, i), answers[2*i].Answer)
		assert.Equal(t, fmt.Sprintf("joke for topic%d", i), answers[2*i+1].Answer)
	}
}
