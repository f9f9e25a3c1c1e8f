package config

// LLMConfig points the arena at an OpenAI-compatible chat completions
// endpoint. The API key is read from the named environment variable, never
// from YAML.
type LLMConfig struct {
	BaseURL   string `yaml:"base_url"`
	Model     string `yaml:"model"`
	APIKeyEnv string `yaml:"api_key_env,omitempty"`

	// MaxTokens caps one generation. Zero lets the provider decide.
	MaxTokens int `yaml:"max_tokens,omitempty"`

	// Temperature for generations.
	Temperature float64 `yaml:"temperature,omitempty"`

	// TimeoutSeconds is the per-request timeout.
	TimeoutSeconds int `yaml:"timeout_seconds,omitempty"`

	// MaxRetries on 429 and transient transport errors.
	MaxRetries int `yaml:"max_retries,omitempty"`
}

// DefaultLLMConfig returns the built-in LLM defaults.
func DefaultLLMConfig() *LLMConfig {
	return &LLMConfig{
		BaseURL:        "https://api.openai.com/v1",
		Model:          "gpt-4o-mini",
		APIKeyEnv:      "LLM_API_KEY",
		Temperature:    0.7,
		TimeoutSeconds: 120,
		MaxRetries:     3,
	}
}
