package chat

import "context"

// UseCase defines the business logic interface for the chat domain.
type UseCase interface {
	// Answer classifies the question, routes it to the weather or joke handler and returns the final answer.
	Answer(ctx context.Context, input AnswerInput) (AnswerOutput, error)
}
