package ai

import (
	"time"

	"github.com/huandu/go-clone"
)

// Settings configures the generation boundary. Callers build it explicitly
// (typically from flags or config) and pass it in; the package reads no
// ambient process state.
type Settings struct {
	APIKey string `yaml:"api_key,omitempty"`
	// Model defaults to gpt-3.5-turbo.
	Model string `yaml:"model,omitempty"`
	// MaxTokens caps the response length, default 1000.
	MaxTokens int `yaml:"max_tokens,omitempty"`
	// Temperature is the sampling temperature, default 0.7.
	Temperature float64 `yaml:"temperature,omitempty"`
	// ContextMessages is how many recent messages are included as context,
	// default 10.
	ContextMessages int `yaml:"context_messages,omitempty"`
	// Timeout bounds the blocking generation call, default 30s.
	Timeout time.Duration `yaml:"timeout,omitempty"`
}

func NewSettings() *Settings {
	return &Settings{
		Model:           "gpt-3.5-turbo",
		MaxTokens:       1000,
		Temperature:     0.7,
		ContextMessages: 10,
		Timeout:         30 * time.Second,
	}
}

func (s *Settings) Clone() *Settings {
	return clone.Clone(s).(*Settings)
}
