package config

import "sync"

// BuiltinConfig holds the built-in configuration data: default plugin groups
// and group-level task types. The plugin catalog itself lives in the plugin
// package; user YAML overrides both.
type BuiltinConfig struct {
	PluginGroups map[string]PluginGroupConfig
}

var (
	builtinConfig     *BuiltinConfig
	builtinConfigOnce sync.Once
)

// GetBuiltinConfig returns the singleton built-in configuration (thread-safe, lazy-initialized)
func GetBuiltinConfig() *BuiltinConfig {
	builtinConfigOnce.Do(initBuiltinConfig)
	return builtinConfig
}

func initBuiltinConfig() {
	builtinConfig = &BuiltinConfig{
		PluginGroups: initBuiltinPluginGroups(),
	}
}

func initBuiltinPluginGroups() map[string]PluginGroupConfig {
	return map[string]PluginGroupConfig{
		"basic_info": {
			Description: "Reference data refreshed weekly",
			Plugins:     []string{"stock_basic", "trade_calendar"},
			TaskType:    "full",
		},
		"daily_core": {
			Description: "Daily quotes and their direct derivatives",
			Plugins:     []string{"daily_bar", "adj_factor", "daily_basic"},
			TaskType:    "incremental",
		},
		"market_extra": {
			Description: "Auxiliary daily feeds",
			Plugins:     []string{"moneyflow", "index_daily", "hk_daily", "etf_daily"},
			TaskType:    "incremental",
		},
	}
}

// mergeGroups merges built-in and user-defined plugin groups. User entries
// replace built-in entries with the same name.
func mergeGroups(builtin, user map[string]PluginGroupConfig) map[string]PluginGroupConfig {
	merged := make(map[string]PluginGroupConfig, len(builtin)+len(user))
	for name, group := range builtin {
		merged[name] = group
	}
	for name, group := range user {
		merged[name] = group
	}
	return merged
}
