package main

import (
	"fmt"
	"os"

	_ "weather-joke-assistant/docs" // Swagger docs
)

// @title       Weather & Joke Assistant API
// @description Classifies a question as weather or joke and answers it with OpenWeatherMap or an LLM.
// @version     1
// @host        localhost:8101
// @schemes     http
func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
