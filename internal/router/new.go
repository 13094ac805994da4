package router

import (
	"context"

	"weather-joke-assistant/pkg/llmprovider"
	"weather-joke-assistant/pkg/log"
)

// Router is the interface for intent classification
type Router interface {
	Classify(ctx context.Context, question string) (RouterOutput, error)
}

// SemanticRouter classifies user intent using an LLM
type SemanticRouter struct {
	llm llmprovider.Generator
	l   log.Logger
}

// Ensure SemanticRouter implements Router interface
var _ Router = (*SemanticRouter)(nil)

// New creates a new SemanticRouter
func New(llm llmprovider.Generator, l log.Logger) *SemanticRouter {
	return &SemanticRouter{
		llm: llm,
		l:   l,
	}
}
