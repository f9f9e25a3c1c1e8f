package plugin

import (
	"fmt"
	"sort"

	"github.com/Yourdaylight/stock-datasource-sub001/pkg/config"
)

// Registry is the frozen plugin catalog. Disabled plugins are dropped at
// construction; an enabled plugin depending on a disabled or unknown one
// fails construction. Changes require restart.
type Registry struct {
	plugins map[string]*Plugin
	names   []string
}

// NewRegistry validates the descriptors and freezes the catalog.
func NewRegistry(plugins []*Plugin) (*Registry, error) {
	enabled := make(map[string]*Plugin, len(plugins))
	disabled := make(map[string]bool)
	for _, p := range plugins {
		if p.Name == "" {
			return nil, config.NewValidationError("plugin", "<unnamed>", "name", config.ErrMissingRequiredField)
		}
		if _, dup := enabled[p.Name]; dup || disabled[p.Name] {
			return nil, config.NewValidationError("plugin", p.Name, "name",
				fmt.Errorf("%w: duplicate plugin name", config.ErrInvalidValue))
		}
		if !p.Enabled {
			disabled[p.Name] = true
			continue
		}
		if err := validateDescriptor(p); err != nil {
			return nil, err
		}
		enabled[p.Name] = p
	}

	names := make([]string, 0, len(enabled))
	for name := range enabled {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		for _, dep := range enabled[name].Dependencies {
			if dep == name {
				return nil, config.NewValidationError("plugin", name, "dependencies",
					fmt.Errorf("%w: plugin depends on itself", config.ErrInvalidValue))
			}
			if disabled[dep] {
				return nil, config.NewValidationError("plugin", name, "dependencies",
					fmt.Errorf("%w: dependency %q is disabled", config.ErrInvalidValue, dep))
			}
			if _, ok := enabled[dep]; !ok {
				return nil, config.NewValidationError("plugin", name, "dependencies",
					fmt.Errorf("%w: unknown dependency %q", config.ErrInvalidValue, dep))
			}
		}
	}

	if cycle := findCycle(enabled, names); cycle != "" {
		return nil, config.NewValidationError("plugin", cycle, "dependencies",
			fmt.Errorf("%w: dependency cycle through %q", config.ErrInvalidValue, cycle))
	}

	return &Registry{plugins: enabled, names: names}, nil
}

func validateDescriptor(p *Plugin) error {
	if p.Table == "" {
		return config.NewValidationError("plugin", p.Name, "table", config.ErrMissingRequiredField)
	}
	if !p.Role.IsValid() {
		return config.NewValidationError("plugin", p.Name, "role",
			fmt.Errorf("%w: %q", config.ErrInvalidValue, p.Role))
	}
	if p.RateLimitPerMinute < 1 {
		return config.NewValidationError("plugin", p.Name, "rate_limit_per_minute",
			fmt.Errorf("%w: must be >= 1, got %d", config.ErrInvalidValue, p.RateLimitPerMinute))
	}
	if !p.Schedule.Frequency.IsValid() {
		return config.NewValidationError("plugin", p.Name, "schedule.frequency",
			fmt.Errorf("%w: %q", config.ErrInvalidValue, p.Schedule.Frequency))
	}
	if p.ExpectedCallsPerDate < 1 {
		return config.NewValidationError("plugin", p.Name, "expected_calls_per_date",
			fmt.Errorf("%w: must be >= 1, got %d", config.ErrInvalidValue, p.ExpectedCallsPerDate))
	}
	if p.Timeout <= 0 {
		return config.NewValidationError("plugin", p.Name, "timeout",
			fmt.Errorf("%w: must be positive, got %s", config.ErrInvalidValue, p.Timeout))
	}
	if len(p.Schema.Columns) == 0 {
		return config.NewValidationError("plugin", p.Name, "schema.columns", config.ErrMissingRequiredField)
	}
	for _, col := range p.Schema.Columns {
		if col.Name == "" {
			return config.NewValidationError("plugin", p.Name, "schema.columns", config.ErrMissingRequiredField)
		}
		if !col.Type.IsValid() {
			return config.NewValidationError("plugin", p.Name, "schema.columns",
				fmt.Errorf("%w: column %q has type %q", config.ErrInvalidValue, col.Name, col.Type))
		}
	}
	if len(p.Schema.OrderBy) == 0 {
		return config.NewValidationError("plugin", p.Name, "schema.order_by", config.ErrMissingRequiredField)
	}
	for _, key := range p.Schema.OrderBy {
		if p.Schema.Column(key) == nil {
			return config.NewValidationError("plugin", p.Name, "schema.order_by",
				fmt.Errorf("%w: key %q is not a declared column", config.ErrInvalidValue, key))
		}
	}
	if p.Extract == nil {
		return config.NewValidationError("plugin", p.Name, "extractor", config.ErrMissingRequiredField)
	}
	return nil
}

// findCycle returns the name of a plugin on a dependency cycle, or "".
func findCycle(plugins map[string]*Plugin, names []string) string {
	const (
		white = 0
		gray  = 1
		black = 2
	)
	color := make(map[string]int, len(plugins))

	var visit func(name string) string
	visit = func(name string) string {
		color[name] = gray
		for _, dep := range plugins[name].Dependencies {
			switch color[dep] {
			case gray:
				return dep
			case white:
				if hit := visit(dep); hit != "" {
					return hit
				}
			}
		}
		color[name] = black
		return ""
	}

	for _, name := range names {
		if color[name] == white {
			if hit := visit(name); hit != "" {
				return hit
			}
		}
	}
	return ""
}

// List returns all registered plugins sorted by name.
func (r *Registry) List() []*Plugin {
	out := make([]*Plugin, len(r.names))
	for i, name := range r.names {
		out[i] = r.plugins[name]
	}
	return out
}

// Get returns the plugin by name.
func (r *Registry) Get(name string) (*Plugin, error) {
	p, ok := r.plugins[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return p, nil
}

// Has reports whether the plugin is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.plugins[name]
	return ok
}

// TopoOrder sorts the given plugin names so every plugin follows its
// dependencies. Dependencies outside the subset are ignored; ties break
// alphabetically so the order is deterministic.
func (r *Registry) TopoOrder(names []string) ([]string, error) {
	subset := make(map[string]bool, len(names))
	for _, name := range names {
		if !r.Has(name) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		subset[name] = true
	}

	indegree := make(map[string]int, len(names))
	dependents := make(map[string][]string, len(names))
	for name := range subset {
		indegree[name] += 0
		for _, dep := range r.plugins[name].Dependencies {
			if subset[dep] {
				indegree[name]++
				dependents[dep] = append(dependents[dep], name)
			}
		}
	}

	ready := make([]string, 0, len(names))
	for name, deg := range indegree {
		if deg == 0 {
			ready = append(ready, name)
		}
	}
	sort.Strings(ready)

	ordered := make([]string, 0, len(names))
	for len(ready) > 0 {
		next := ready[0]
		ready = ready[1:]
		ordered = append(ordered, next)

		released := false
		for _, dependent := range dependents[next] {
			indegree[dependent]--
			if indegree[dependent] == 0 {
				ready = append(ready, dependent)
				released = true
			}
		}
		if released {
			sort.Strings(ready)
		}
	}

	if len(ordered) != len(subset) {
		return nil, fmt.Errorf("dependency cycle among %v", names)
	}
	return ordered, nil
}
