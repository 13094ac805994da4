package usecase

import (
	"context"
	"strings"

	"weather-joke-assistant/internal/chat"
	"weather-joke-assistant/internal/model"
	"weather-joke-assistant/internal/router"
)

// Answer runs classify -> weather|joke -> done once for the question.
func (uc *implUseCase) Answer(ctx context.Context, input chat.AnswerInput) (chat.AnswerOutput, error) {
	question := strings.TrimSpace(input.Question)
	if question == "" {
		return chat.AnswerOutput{}, chat.ErrEmptyQuestion
	}

	route := uc.classify(ctx, question)

	out := chat.AnswerOutput{
		Intent: route.Intent,
		Topic:  route.Topic,
	}

	switch route.Intent {
	case model.IntentWeather:
		out.City, out.Answer = uc.handleWeather(ctx, question, route.City)
	default:
		out.Intent = model.IntentJoke
		out.Answer = uc.handleJoke(ctx, question, route.Topic)
	}

	uc.l.Infof(ctx, "%s: intent=%s city=%q topic=%q", logPrefixAnswer, out.Intent, out.City, out.Topic)
	return out, nil
}

func (uc *implUseCase) classify(ctx context.Context, question string) router.RouterOutput {
	callCtx, cancel := uc.callContext(ctx)
	defer cancel()

	route, err := uc.router.Classify(callCtx, question)
	if err != nil {
		uc.l.Warnf(ctx, "%s: classifier unavailable, using keywords: %v", logPrefixAnswer, err)
		return router.ClassifyByKeywords(question)
	}
	if route.Topic == "" {
		route.Topic = defaultTopic
	}
	return route
}

// callContext bounds a single outbound call.
func (uc *implUseCase) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if uc.cfg.RequestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, uc.cfg.RequestTimeout)
}
