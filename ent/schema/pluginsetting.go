package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// PluginSetting holds the schema definition for the PluginSetting entity.
// Persisted runtime override for one plugin; wins over the static
// declaration at dispatch time.
type PluginSetting struct {
	ent.Schema
}

// Fields of the PluginSetting.
func (PluginSetting) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("plugin_name").
			Unique().
			Immutable(),
		field.Bool("schedule_enabled").
			Default(true),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
