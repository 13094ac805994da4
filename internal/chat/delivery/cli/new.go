package cli

import (
	"io"

	"weather-joke-assistant/internal/chat"
	"weather-joke-assistant/pkg/log"
)

type handler struct {
	l   log.Logger
	uc  chat.UseCase
	in  io.Reader
	out io.Writer
}

// New creates an interactive terminal handler reading questions from in.
func New(l log.Logger, uc chat.UseCase, in io.Reader, out io.Writer) *handler {
	return &handler{
		l:   l,
		uc:  uc,
		in:  in,
		out: out,
	}
}
