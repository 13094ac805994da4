package chat

import "weather-joke-assistant/internal/model"

// AnswerInput is the input for a single question.
type AnswerInput struct {
	Question string
}

// AnswerOutput is the result of one pass through the flow.
type AnswerOutput struct {
	Intent model.Intent
	Answer string // never empty on success
	City   string // weather path only, may be empty
	Topic  string
}
