package usecase

import (
	"context"
	"fmt"
	"hash/fnv"
	"strings"

	"weather-joke-assistant/pkg/llmprovider"
)

func (uc *implUseCase) handleJoke(ctx context.Context, question, topic string) string {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		topic = defaultTopic
	}

	callCtx, cancel := uc.callContext(ctx)
	defer cancel()

	resp, err := uc.llm.GenerateContent(callCtx, llmprovider.UserRequest(
		promptJokeSystem,
		fmt.Sprintf(promptJokeUser, topic),
		jokeTemperature,
		jokeMaxTokens,
	))
	if err != nil {
		uc.l.Warnf(ctx, "%s: joke generation failed, using fallback: %v", logPrefixJoke, err)
		return fallbackJoke(topic)
	}

	if text := strings.TrimSpace(resp.Text); text != "" {
		return text
	}
	uc.l.Warnf(ctx, "%s: empty joke for question %q, using fallback", logPrefixJoke, question)
	return fallbackJoke(topic)
}

// fallbackJoke picks a canned joke deterministically from the topic.
func fallbackJoke(topic string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(strings.ToLower(topic)))
	return fallbackJokes[h.Sum32()%uint32(len(fallbackJokes))]
}
