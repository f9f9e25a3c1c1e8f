package plugin

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yourdaylight/stock-datasource-sub001/pkg/config"
)

func stubExtractor(ctx context.Context, params map[string]string, emit EmitFunc) error {
	return nil
}

func testPlugin(name string, deps ...string) *Plugin {
	return &Plugin{
		Name:                 name,
		Table:                "ods_" + name,
		Role:                 RolePrimary,
		Category:             "stock",
		RateLimitPerMinute:   100,
		Schedule:             config.ScheduleConfig{Frequency: config.ScheduleFrequencyDaily, Time: "17:30"},
		ScheduleEnabled:      true,
		Enabled:              true,
		Dependencies:         deps,
		DateParam:            "trade_date",
		ExpectedCallsPerDate: 1,
		Timeout:              30 * time.Second,
		Schema: TableSchema{
			Columns: []Column{
				{Name: "ts_code", Type: TypeString},
				{Name: "trade_date", Type: TypeDate},
				{Name: "close", Type: TypeFloat64, Nullable: true},
			},
			OrderBy:     []string{"ts_code", "trade_date"},
			PartitionBy: "toYYYYMM(trade_date)",
		},
		Extract: stubExtractor,
	}
}

func TestNewRegistry(t *testing.T) {
	reg, err := NewRegistry([]*Plugin{
		testPlugin("beta", "alpha"),
		testPlugin("alpha"),
	})
	require.NoError(t, err)

	list := reg.List()
	require.Len(t, list, 2)
	assert.Equal(t, "alpha", list[0].Name, "list is sorted by name")
	assert.Equal(t, "beta", list[1].Name)

	p, err := reg.Get("alpha")
	require.NoError(t, err)
	assert.Equal(t, "ods_alpha", p.Table)

	assert.True(t, reg.Has("beta"))
	assert.False(t, reg.Has("gamma"))

	_, err = reg.Get("gamma")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNewRegistryDescriptorValidation(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(p *Plugin)
		wantField string
	}{
		{
			name:      "missing table",
			mutate:    func(p *Plugin) { p.Table = "" },
			wantField: "table",
		},
		{
			name:      "invalid role",
			mutate:    func(p *Plugin) { p.Role = "sideways" },
			wantField: "role",
		},
		{
			name:      "zero rate limit",
			mutate:    func(p *Plugin) { p.RateLimitPerMinute = 0 },
			wantField: "rate_limit_per_minute",
		},
		{
			name:      "invalid schedule frequency",
			mutate:    func(p *Plugin) { p.Schedule.Frequency = "hourly" },
			wantField: "schedule.frequency",
		},
		{
			name:      "zero expected calls",
			mutate:    func(p *Plugin) { p.ExpectedCallsPerDate = 0 },
			wantField: "expected_calls_per_date",
		},
		{
			name:      "zero timeout",
			mutate:    func(p *Plugin) { p.Timeout = 0 },
			wantField: "timeout",
		},
		{
			name:      "no columns",
			mutate:    func(p *Plugin) { p.Schema.Columns = nil },
			wantField: "schema.columns",
		},
		{
			name: "invalid column type",
			mutate: func(p *Plugin) {
				p.Schema.Columns = []Column{{Name: "ts_code", Type: "Decimal"}}
				p.Schema.OrderBy = []string{"ts_code"}
			},
			wantField: "schema.columns",
		},
		{
			name: "empty order by",
			mutate: func(p *Plugin) {
				p.Schema.OrderBy = nil
			},
			wantField: "schema.order_by",
		},
		{
			name: "order by undeclared column",
			mutate: func(p *Plugin) {
				p.Schema.OrderBy = []string{"ghost"}
			},
			wantField: "schema.order_by",
		},
		{
			name:      "missing extractor",
			mutate:    func(p *Plugin) { p.Extract = nil },
			wantField: "extractor",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testPlugin("alpha")
			tt.mutate(p)

			_, err := NewRegistry([]*Plugin{p})
			require.Error(t, err)

			var verr *config.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, "alpha", verr.ID)
			assert.Equal(t, tt.wantField, verr.Field)
		})
	}
}

func TestNewRegistryDuplicateName(t *testing.T) {
	_, err := NewRegistry([]*Plugin{testPlugin("alpha"), testPlugin("alpha")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate plugin name")
}

func TestDisabledPluginsAreDropped(t *testing.T) {
	off := testPlugin("off")
	off.Enabled = false

	reg, err := NewRegistry([]*Plugin{testPlugin("alpha"), off})
	require.NoError(t, err)

	assert.Len(t, reg.List(), 1)
	_, err = reg.Get("off")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDependencyValidation(t *testing.T) {
	t.Run("dependency on disabled plugin", func(t *testing.T) {
		dep := testPlugin("dep")
		dep.Enabled = false

		_, err := NewRegistry([]*Plugin{dep, testPlugin("alpha", "dep")})
		require.Error(t, err)
		assert.Contains(t, err.Error(), `dependency "dep" is disabled`)
	})

	t.Run("unknown dependency", func(t *testing.T) {
		_, err := NewRegistry([]*Plugin{testPlugin("alpha", "ghost")})
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown dependency "ghost"`)
	})

	t.Run("self dependency", func(t *testing.T) {
		_, err := NewRegistry([]*Plugin{testPlugin("alpha", "alpha")})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "depends on itself")
	})

	t.Run("cycle", func(t *testing.T) {
		_, err := NewRegistry([]*Plugin{
			testPlugin("alpha", "beta"),
			testPlugin("beta", "alpha"),
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "dependency cycle")
	})
}

func TestTopoOrder(t *testing.T) {
	reg, err := NewRegistry([]*Plugin{
		testPlugin("daily_bar"),
		testPlugin("adj_factor", "daily_bar"),
		testPlugin("daily_basic", "daily_bar"),
		testPlugin("moneyflow"),
	})
	require.NoError(t, err)

	order, err := reg.TopoOrder([]string{"daily_basic", "adj_factor", "moneyflow", "daily_bar"})
	require.NoError(t, err)
	assert.Equal(t, []string{"daily_bar", "adj_factor", "daily_basic", "moneyflow"}, order)
}

func TestTopoOrderSubsetIgnoresOutsideDependencies(t *testing.T) {
	reg, err := NewRegistry([]*Plugin{
		testPlugin("daily_bar"),
		testPlugin("adj_factor", "daily_bar"),
	})
	require.NoError(t, err)

	order, err := reg.TopoOrder([]string{"adj_factor"})
	require.NoError(t, err)
	assert.Equal(t, []string{"adj_factor"}, order)
}

func TestTopoOrderUnknownName(t *testing.T) {
	reg, err := NewRegistry([]*Plugin{testPlugin("daily_bar")})
	require.NoError(t, err)

	_, err = reg.TopoOrder([]string{"ghost"})
	assert.ErrorIs(t, err, ErrNotFound)
}
