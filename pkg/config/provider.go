package config

// ProviderConfig points extractors at the upstream market-data API. The
// provider speaks the fields/items JSON protocol; the auth token is read from
// the named environment variable.
type ProviderConfig struct {
	BaseURL  string `yaml:"base_url"`
	TokenEnv string `yaml:"token_env,omitempty"`

	// TimeoutSeconds is the per-call timeout applied to every extractor
	// request.
	TimeoutSeconds int `yaml:"timeout_seconds,omitempty"`

	// MaxRetries on transient transport errors. Rate-limit responses are not
	// retried here; the governor handles those.
	MaxRetries int `yaml:"max_retries,omitempty"`
}

// DefaultProviderConfig returns the built-in provider defaults.
func DefaultProviderConfig() *ProviderConfig {
	return &ProviderConfig{
		BaseURL:        "https://api.tushare.pro",
		TokenEnv:       "TUSHARE_TOKEN",
		TimeoutSeconds: 30,
		MaxRetries:     3,
	}
}
