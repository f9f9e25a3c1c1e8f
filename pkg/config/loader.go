package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// StockdataYAMLConfig represents the complete stockdata.yaml file structure
type StockdataYAMLConfig struct {
	Plugins      map[string]PluginOverrideConfig `yaml:"plugins"`
	PluginGroups map[string]PluginGroupConfig    `yaml:"plugin_groups"`
	Scheduler    *SchedulerConfig                `yaml:"scheduler"`
	Arena        *ArenaDefaults                  `yaml:"arena"`
	LLM          *LLMConfig                      `yaml:"llm"`
	Provider     *ProviderConfig                 `yaml:"provider"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load stockdata.yaml from configDir
//  2. Expand environment variables
//  3. Parse YAML into structs
//  4. Merge built-in + user-defined plugin groups
//  5. Merge section defaults (user values override)
//  6. Validate all configuration
//  7. Return Config ready for use
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	stats := cfg.Stats()
	log.Info("Configuration initialized successfully",
		"plugin_overrides", stats.PluginOverrides,
		"plugin_groups", stats.PluginGroups)

	return cfg, nil
}

// load is the internal loader (not exported)
func load(_ context.Context, configDir string) (*Config, error) {
	loader := &configLoader{
		configDir: configDir,
	}

	yamlConfig, err := loader.loadStockdataYAML()
	if err != nil {
		return nil, NewLoadError("stockdata.yaml", err)
	}

	builtin := GetBuiltinConfig()
	groups := mergeGroups(builtin.PluginGroups, yamlConfig.PluginGroups)

	// Each section starts from its defaults; user YAML values override.
	schedulerConfig := DefaultSchedulerConfig()
	if yamlConfig.Scheduler != nil {
		if err := mergo.Merge(schedulerConfig, yamlConfig.Scheduler, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge scheduler config: %w", err)
		}
	}

	arenaDefaults := DefaultArenaDefaults()
	if yamlConfig.Arena != nil {
		if err := mergo.Merge(arenaDefaults, yamlConfig.Arena, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge arena config: %w", err)
		}
	}

	llmConfig := DefaultLLMConfig()
	if yamlConfig.LLM != nil {
		if err := mergo.Merge(llmConfig, yamlConfig.LLM, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge llm config: %w", err)
		}
	}

	providerConfig := DefaultProviderConfig()
	if yamlConfig.Provider != nil {
		if err := mergo.Merge(providerConfig, yamlConfig.Provider, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge provider config: %w", err)
		}
	}

	return &Config{
		configDir:       configDir,
		Scheduler:       schedulerConfig,
		Arena:           arenaDefaults,
		LLM:             llmConfig,
		Provider:        providerConfig,
		PluginOverrides: yamlConfig.Plugins,
		PluginGroups:    groups,
	}, nil
}

// validate performs comprehensive validation on loaded configuration
func validate(cfg *Config) error {
	validator := NewValidator(cfg)
	return validator.ValidateAll()
}

type configLoader struct {
	configDir string
}

func (l *configLoader) loadYAML(filename string, target any) error {
	path := filepath.Join(l.configDir, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	// Expand environment variables using {{.VAR}} template syntax
	// Note: ExpandEnv passes through original data on parse/execution errors,
	// allowing YAML parser to handle the content (or fail with clearer error message)
	data = ExpandEnv(data)

	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return nil
}

func (l *configLoader) loadStockdataYAML() (*StockdataYAMLConfig, error) {
	var config StockdataYAMLConfig

	// Initialize maps to avoid nil maps
	config.Plugins = make(map[string]PluginOverrideConfig)
	config.PluginGroups = make(map[string]PluginGroupConfig)

	if err := l.loadYAML("stockdata.yaml", &config); err != nil {
		return nil, err
	}

	return &config, nil
}
