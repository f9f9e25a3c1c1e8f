// Package plugin declares the data-source plugin catalog: typed descriptors,
// their table schemas, and the extractor functions registered against them.
// The registry is assembled once at startup and frozen afterwards.
package plugin

import (
	"context"
	"errors"
	"time"

	"github.com/Yourdaylight/stock-datasource-sub001/pkg/config"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/provider"
)

// ErrNotFound indicates the requested plugin is not registered
var ErrNotFound = errors.New("plugin not found")

// Role classifies a plugin's place in the dependency graph.
type Role string

const (
	// RolePrimary plugins fetch raw market data other plugins build on
	RolePrimary Role = "primary"
	// RoleBasic plugins fetch reference data (securities master, calendar)
	RoleBasic Role = "basic"
	// RoleDerived plugins fetch data computed from primary sources upstream
	RoleDerived Role = "derived"
	// RoleAuxiliary plugins fetch optional enrichment data
	RoleAuxiliary Role = "auxiliary"
)

// IsValid checks if the role is valid
func (r Role) IsValid() bool {
	switch r {
	case RolePrimary, RoleBasic, RoleDerived, RoleAuxiliary:
		return true
	}
	return false
}

// ColumnType is the declared storage type of an ODS column.
type ColumnType string

const (
	TypeString  ColumnType = "String"
	TypeInt64   ColumnType = "Int64"
	TypeFloat64 ColumnType = "Float64"
	TypeDate    ColumnType = "Date"
)

// IsValid checks if the column type is valid
func (t ColumnType) IsValid() bool {
	switch t {
	case TypeString, TypeInt64, TypeFloat64, TypeDate:
		return true
	}
	return false
}

// Column is one declared table column.
type Column struct {
	Name     string     `json:"name"`
	Type     ColumnType `json:"type"`
	Nullable bool       `json:"nullable"`
}

// TableSchema declares a plugin's ODS table. OrderBy is the upsert key;
// rows sharing it are deduplicated last-version-wins. PartitionBy is a
// partition expression, empty for unpartitioned reference tables.
type TableSchema struct {
	Columns     []Column `json:"columns"`
	OrderBy     []string `json:"order_by"`
	PartitionBy string   `json:"partition_by,omitempty"`
}

// Column returns the declared column by name, or nil.
func (s TableSchema) Column(name string) *Column {
	for i := range s.Columns {
		if s.Columns[i].Name == name {
			return &s.Columns[i]
		}
	}
	return nil
}

// FieldNames lists the declared column names in order.
func (s TableSchema) FieldNames() []string {
	names := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		names[i] = c.Name
	}
	return names
}

// Batch is one extractor chunk: the provider's field list plus decoded rows.
type Batch struct {
	Fields  []string
	Records []map[string]any
}

// EmitFunc receives one extracted batch. Returning an error aborts the
// extraction; extractors must propagate it unchanged.
type EmitFunc func(ctx context.Context, batch *Batch) error

// Extractor pulls one parameter tuple's worth of data from the provider and
// emits it batch by batch. Zero emitted batches with a nil error means the
// provider had no data for the tuple.
type Extractor func(ctx context.Context, params map[string]string, emit EmitFunc) error

// Fetcher is the provider surface extractors draw from.
type Fetcher interface {
	Query(ctx context.Context, apiName string, params map[string]string, fields []string) (*provider.Payload, error)
}

// Gate admits provider calls under a plugin's rate limit.
type Gate interface {
	Acquire(ctx context.Context, plugin string) error
	Penalty(plugin string, d time.Duration) error
}

// Plugin is one data-source declaration. Descriptors are static; the only
// runtime-mutable knob is the schedule_enabled override persisted outside
// the registry.
type Plugin struct {
	Name     string `json:"name"`
	Table    string `json:"table"`
	Role     Role   `json:"role"`
	Category string `json:"category"`

	RateLimitPerMinute int                   `json:"rate_limit_per_minute"`
	Schedule           config.ScheduleConfig `json:"schedule"`
	ScheduleEnabled    bool                  `json:"schedule_enabled"`
	Enabled            bool                  `json:"enabled"`

	// CalendarBound plugins are skipped by the cron trigger on non-trading
	// days.
	CalendarBound bool `json:"calendar_bound"`

	// Dependencies name plugins whose data for the same date must land
	// first.
	Dependencies []string `json:"dependencies,omitempty"`

	// DateParam is the parameter key the scheduler iterates trade dates
	// over, empty for plugins without a date dimension.
	DateParam string `json:"date_param,omitempty"`

	// ExpectedCallsPerDate sizes the inner fan-out against the rate limit.
	ExpectedCallsPerDate int `json:"expected_calls_per_date"`

	// Timeout bounds one extractor invocation.
	Timeout time.Duration `json:"-"`

	Schema TableSchema `json:"schema"`

	Extract Extractor `json:"-"`
}

// Daily reports whether the plugin runs on a daily schedule.
func (p *Plugin) Daily() bool {
	return p.Schedule.Frequency == config.ScheduleFrequencyDaily
}

// Dated reports whether the scheduler iterates trade dates for this plugin.
func (p *Plugin) Dated() bool {
	return p.DateParam != ""
}
