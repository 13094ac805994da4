package usecase_test

import (
	"context"
	"sync"

	"weather-joke-assistant/internal/model"
	"weather-joke-assistant/internal/router"
	"weather-joke-assistant/pkg/llmprovider"
)

// stubRouter returns a fixed classification or delegates to fn.
type stubRouter struct {
	out router.RouterOutput
	err error
	fn  func(question string) router.RouterOutput
}

func (s *stubRouter) Classify(ctx context.Context, question string) (router.RouterOutput, error) {
	if s.err != nil {
		return router.RouterOutput{}, s.err
	}
	if s.fn != nil {
		return s.fn(question), nil
	}
	return s.out, nil
}

// stubLLM answers with text, or with fn(req) when set.
type stubLLM struct {
	mu    sync.Mutex
	text  string
	err   error
	fn    func(req *llmprovider.Request) string
	calls []*llmprovider.Request
}

func (s *stubLLM) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	s.mu.Lock()
	s.calls = append(s.calls, req)
	s.mu.Unlock()

	if s.err != nil {
		return nil, s.err
	}
	if s.fn != nil {
		return &llmprovider.Response{Text: s.fn(req)}, nil
	}
	return &llmprovider.Response{Text: s.text}, nil
}

func (s *stubLLM) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

// stubWeather serves readings by city.
type stubWeather struct {
	mu      sync.Mutex
	byCity  map[string]model.Weather
	err     error
	blockOn bool
	cities  []string
}

func (s *stubWeather) CurrentWeather(ctx context.Context, city string) (model.Weather, error) {
	s.mu.Lock()
	s.cities = append(s.cities, city)
	s.mu.Unlock()

	if s.blockOn {
		<-ctx.Done()
		return model.Weather{}, ctx.Err()
	}
	if s.err != nil {
		return model.Weather{}, s.err
	}
	return s.byCity[city], nil
}
