package configs

import "time"

// OpenAI configures the chat completion client used to build ad groups.
// Any OpenAI compatible endpoint may be used by overriding BaseURL.
type OpenAI struct {
	APIKey      string        `env:"API_KEY"`
	BaseURL     string        `env:"BASE_URL" envDefault:"https://api.openai.com"`
	Model       string        `env:"MODEL" envDefault:"gpt-4"`
	Temperature float64       `env:"TEMPERATURE" envDefault:"0.2"`
	MaxTokens   int           `env:"MAX_TOKENS" envDefault:"5000"`
	Timeout     time.Duration `env:"TIMEOUT" envDefault:"60s"`
}
