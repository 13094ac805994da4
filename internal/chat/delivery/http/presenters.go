package http

import (
	"strings"

	"weather-joke-assistant/internal/chat"
)

// methodExplicit names the classify -> handle flow in responses.
const methodExplicit = "explicit"

// --- Request DTOs ---

type chatReq struct {
	Question string `json:"question" binding:"required"`
}

func (r chatReq) validate() error {
	if strings.TrimSpace(r.Question) == "" {
		return chat.ErrEmptyQuestion
	}
	return nil
}

func (r chatReq) toInput() chat.AnswerInput {
	return chat.AnswerInput{Question: r.Question}
}

// --- Response DTOs ---

type chatResp struct {
	Method string `json:"method" example:"explicit"`
	Intent string `json:"intent" example:"weather"`
	Answer string `json:"answer" example:"Tokyo: clear sky, 18 deg C, humidity 40%."`
	City   string `json:"city,omitempty" example:"Tokyo"`
	Topic  string `json:"topic,omitempty" example:"general"`
}

func newChatResp(o chat.AnswerOutput) chatResp {
	return chatResp{
		Method: methodExplicit,
		Intent: o.Intent.String(),
		Answer: o.Answer,
		City:   o.City,
		Topic:  o.Topic,
	}
}
