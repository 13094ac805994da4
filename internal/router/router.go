package router

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"weather-joke-assistant/internal/model"
	"weather-joke-assistant/pkg/llmprovider"
)

// Classify determines user intent from the question.
// Provider failures are returned; malformed replies fall back to the joke intent.
func (r *SemanticRouter) Classify(ctx context.Context, question string) (RouterOutput, error) {
	resp, err := r.llm.GenerateContent(ctx, llmprovider.UserRequest(
		PromptRouterSystem,
		fmt.Sprintf(PromptRouterUser, question),
		RouterTemperature,
		RouterMaxTokens,
	))
	if err != nil {
		return RouterOutput{}, fmt.Errorf("%s: %s: %w", LogPrefixClassify, ErrMsgLLMCallFailed, err)
	}

	output := Parse(resp.Text)
	if output.Ambiguous {
		r.l.Warnf(ctx, "%s: %s: raw=%q", LogPrefixClassify, ErrMsgAmbiguous, output.Raw)
	}

	r.l.Infof(ctx, "%s: Classified as %s (city=%q, topic=%q)", LogPrefixClassify, output.Intent, output.City, output.Topic)
	return output, nil
}

// Parse reads the INTENT/CITY/TOPIC reply. Labels are case-insensitive,
// code fences and list markers are ignored, and a bare "weather" or "joke" is accepted.
func Parse(raw string) RouterOutput {
	out := RouterOutput{
		Intent:    model.IntentFallback,
		Topic:     DefaultTopic,
		Ambiguous: true,
		Raw:       raw,
	}

	text := stripCodeFence(raw)
	sawIntent := false

	for _, line := range strings.Split(text, "\n") {
		label, value, ok := splitLabel(line)
		if !ok {
			continue
		}

		switch label {
		case labelIntent:
			sawIntent = true
			intent, valid := model.ParseIntent(value)
			out.Intent = intent
			out.Ambiguous = !valid
		case labelCity:
			if !emptyCityValues[strings.ToLower(value)] {
				out.City = value
			}
		case labelTopic:
			if value != "" {
				out.Topic = value
			}
		}
	}

	if !sawIntent {
		if intent, valid := model.ParseIntent(strings.Trim(text, " .\t\r\n")); valid {
			out.Intent = intent
			out.Ambiguous = false
		}
	}

	return out
}

// ClassifyByKeywords is a model-free classifier used when the LLM is unreachable.
func ClassifyByKeywords(question string) RouterOutput {
	out := RouterOutput{
		Intent: model.IntentJoke,
		Topic:  DefaultTopic,
		Raw:    question,
	}

	words := strings.FieldsFunc(strings.ToLower(question), func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	for _, w := range words {
		for _, kw := range weatherKeywords {
			if w == kw {
				out.Intent = model.IntentWeather
				return out
			}
		}
	}
	return out
}

func splitLabel(line string) (label, value string, ok bool) {
	line = strings.TrimSpace(line)
	line = strings.TrimLeft(line, "-*# ")
	name, rest, found := strings.Cut(line, ":")
	if !found {
		return "", "", false
	}

	name = strings.ToLower(strings.Trim(name, "* "))
	value = strings.TrimSpace(strings.Trim(strings.TrimSpace(rest), "*\"'`"))
	value = strings.TrimSpace(strings.TrimRight(value, ".,;!"))
	return name, value, true
}

// stripCodeFence removes a surrounding ``` or ```lang fence.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		s = s[nl+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
