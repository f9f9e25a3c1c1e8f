package config

import "fmt"

// Config is the umbrella configuration object returned by Initialize() and
// used throughout the application.
type Config struct {
	configDir string // Configuration directory path (for reference)

	// Scheduler and worker pool configuration
	Scheduler *SchedulerConfig

	// Arena defaults and evaluation timers
	Arena *ArenaDefaults

	// LLM endpoint configuration
	LLM *LLMConfig

	// Upstream market-data provider configuration
	Provider *ProviderConfig

	// Per-plugin YAML overrides, keyed by plugin name
	PluginOverrides map[string]PluginOverrideConfig

	// Plugin groups (built-in merged with user-defined)
	PluginGroups map[string]PluginGroupConfig
}

// Stats contains statistics about loaded configuration
type Stats struct {
	PluginOverrides int
	PluginGroups    int
}

// Stats returns configuration statistics for logging/monitoring
func (c *Config) Stats() Stats {
	return Stats{
		PluginOverrides: len(c.PluginOverrides),
		PluginGroups:    len(c.PluginGroups),
	}
}

// ConfigDir returns the configuration directory path
func (c *Config) ConfigDir() string {
	return c.configDir
}

// Group retrieves a plugin group by name.
func (c *Config) Group(name string) (PluginGroupConfig, error) {
	group, ok := c.PluginGroups[name]
	if !ok {
		return PluginGroupConfig{}, fmt.Errorf("%w: %s", ErrGroupNotFound, name)
	}
	return group, nil
}
