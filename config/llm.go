package config

import (
	"os"
	"time"
)

type LLMConfig struct {
	ApiUrl  string
	ApiKey  string
	Model   string
	Timeout time.Duration
}

// GetLLMConfig does not require the API key to be present: a missing
// OPENROUTER_API_KEY is surfaced on first use by the summarizer, not at
// process start.
func GetLLMConfig() (*LLMConfig, error) {
	timeout, err := getDuration("LLM_TIMEOUT", 2*time.Minute)
	if err != nil {
		return nil, err
	}

	return &LLMConfig{
		ApiUrl:  getEnv("OPENROUTER_API_URL", "https://openrouter.ai/api/v1/chat/completions"),
		ApiKey:  os.Getenv("OPENROUTER_API_KEY"),
		Model:   getEnv("OPENROUTER_MODEL", "anthropic/claude-3-sonnet"),
		Timeout: timeout,
	}, nil
}
