package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	"weather-joke-assistant/internal/chat"
)

const (
	banner  = "Weather & joke assistant (type 'exit' to quit)"
	prompt  = "\nYou: "
	goodbye = "Exiting."
)

// Run reads one question per line until exit, quit, EOF or ctx is done.
func (h *handler) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(h.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	fmt.Fprintln(h.out, banner)
	for {
		fmt.Fprint(h.out, prompt)

		var line string
		var ok bool
		select {
		case <-ctx.Done():
			fmt.Fprintln(h.out, "\n"+goodbye)
			return nil
		case line, ok = <-lines:
		}
		if !ok {
			fmt.Fprintln(h.out, "\n"+goodbye)
			select {
			case err := <-readErr:
				return err
			default:
				return nil
			}
		}

		question := strings.TrimSpace(line)
		switch strings.ToLower(question) {
		case "exit", "quit":
			fmt.Fprintln(h.out, goodbye)
			return nil
		case "":
			continue
		}

		h.ask(ctx, question)
	}
}

func (h *handler) ask(ctx context.Context, question string) {
	out, err := h.uc.Answer(ctx, chat.AnswerInput{Question: question})
	if err != nil {
		if !errors.Is(err, chat.ErrEmptyQuestion) {
			h.l.Errorf(ctx, "uc.Answer: %v", err)
		}
		fmt.Fprintf(h.out, "Error: %v\n", err)
		return
	}

	fmt.Fprintf(h.out, "Intent: %s\n", out.Intent)
	if out.City != "" {
		fmt.Fprintf(h.out, "City: %s\n", out.City)
	}
	if out.Topic != "" {
		fmt.Fprintf(h.out, "Topic: %s\n", out.Topic)
	}
	fmt.Fprintf(h.out, "Assistant: %s\n", out.Answer)
}
