package openai

import "time"

const (
	// DefaultModel is the default chat model
	DefaultModel = "gpt-4o-mini"

	// DefaultBaseURL is the default OpenAI API endpoint
	DefaultBaseURL = "https://api.openai.com/v1"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second
)

// Base URLs of OpenAI-compatible providers served by this client.
const (
	DeepSeekBaseURL   = "https://api.deepseek.com/v1"
	QwenBaseURL       = "https://dashscope-intl.aliyuncs.com/compatible-mode/v1"
	OpenRouterBaseURL = "https://openrouter.ai/api/v1"
)
