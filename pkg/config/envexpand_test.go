package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandEnv(t *testing.T) {
	tests := []struct {
		name  string
		input string
		env   map[string]string
		want  string
	}{
		{
			name:  "simple substitution with {{.VAR}}",
			input: "token_env: {{.TUSHARE_TOKEN}}",
			env:   map[string]string{"TUSHARE_TOKEN": "secret123"},
			want:  "token_env: secret123",
		},
		{
			name:  "literal ${VAR} is NOT expanded (no collision)",
			input: "password: pa$$${word}",
			env:   map[string]string{"word": "nope"},
			want:  "password: pa$$${word}",
		},
		{
			name:  "multiple substitutions in one line",
			input: "base_url: {{.CH_PROTO}}://{{.CH_HOST}}:{{.CH_PORT}}",
			env: map[string]string{
				"CH_PROTO": "clickhouse",
				"CH_HOST":  "localhost",
				"CH_PORT":  "9000",
			},
			want: "base_url: clickhouse://localhost:9000",
		},
		{
			name:  "missing variable expands to empty",
			input: "api_key_env: {{.NOT_SET_ANYWHERE}}",
			env:   map[string]string{},
			want:  "api_key_env: ",
		},
		{
			name:  "no substitution when no variables",
			input: "worker_count: 3",
			env:   map[string]string{"UNUSED": "value"},
			want:  "worker_count: 3",
		},
		{
			name:  "variables in nested YAML structure",
			input: "provider:\n  base_url: {{.PROVIDER_URL}}\n  timeout_seconds: 30",
			env:   map[string]string{"PROVIDER_URL": "https://api.tushare.pro"},
			want:  "provider:\n  base_url: https://api.tushare.pro\n  timeout_seconds: 30",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v) // Automatic cleanup after test
			}

			result := ExpandEnv([]byte(tt.input))
			assert.Equal(t, tt.want, string(result))
		})
	}
}

// Malformed template syntax is passed through unchanged rather than causing
// errors, so the YAML parser can fail with a clearer message.
func TestExpandEnvMalformedTemplates(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "unclosed template",
			input: "token: {{.TUSHARE_TOKEN",
		},
		{
			name:  "empty template",
			input: "token: {{}}",
		},
		{
			name:  "reversed braces",
			input: "token: }}.TUSHARE_TOKEN{{",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TUSHARE_TOKEN", "should-not-appear")

			result := ExpandEnv([]byte(tt.input))

			assert.Equal(t, tt.input, string(result))
			assert.NotContains(t, string(result), "should-not-appear")
		})
	}
}

func TestExpandEnvWithEmptyInput(t *testing.T) {
	result := ExpandEnv([]byte(""))
	assert.Equal(t, "", string(result))
}
