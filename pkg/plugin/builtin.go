package plugin

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Yourdaylight/stock-datasource-sub001/pkg/config"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/provider"
)

const (
	defaultTimeout   = 30 * time.Second
	referenceTimeout = 60 * time.Second

	// pageSize is the per-request row ceiling the provider enforces.
	pageSize = 5000
)

var stockBasicSchema = TableSchema{
	Columns: []Column{
		{Name: "ts_code", Type: TypeString},
		{Name: "symbol", Type: TypeString},
		{Name: "name", Type: TypeString},
		{Name: "area", Type: TypeString, Nullable: true},
		{Name: "industry", Type: TypeString, Nullable: true},
		{Name: "market", Type: TypeString, Nullable: true},
		{Name: "list_date", Type: TypeString, Nullable: true},
	},
	OrderBy: []string{"ts_code"},
}

var tradeCalendarSchema = TableSchema{
	Columns: []Column{
		{Name: "exchange", Type: TypeString},
		{Name: "cal_date", Type: TypeDate},
		{Name: "is_open", Type: TypeInt64},
	},
	OrderBy:     []string{"exchange", "cal_date"},
	PartitionBy: "toYYYYMM(cal_date)",
}

var dailyBarSchema = TableSchema{
	Columns: []Column{
		{Name: "ts_code", Type: TypeString},
		{Name: "trade_date", Type: TypeDate},
		{Name: "open", Type: TypeFloat64, Nullable: true},
		{Name: "high", Type: TypeFloat64, Nullable: true},
		{Name: "low", Type: TypeFloat64, Nullable: true},
		{Name: "close", Type: TypeFloat64, Nullable: true},
		{Name: "pre_close", Type: TypeFloat64, Nullable: true},
		{Name: "pct_chg", Type: TypeFloat64, Nullable: true},
		{Name: "vol", Type: TypeFloat64, Nullable: true},
		{Name: "amount", Type: TypeFloat64, Nullable: true},
	},
	OrderBy:     []string{"ts_code", "trade_date"},
	PartitionBy: "toYYYYMM(trade_date)",
}

var adjFactorSchema = TableSchema{
	Columns: []Column{
		{Name: "ts_code", Type: TypeString},
		{Name: "trade_date", Type: TypeDate},
		{Name: "adj_factor", Type: TypeFloat64, Nullable: true},
	},
	OrderBy:     []string{"ts_code", "trade_date"},
	PartitionBy: "toYYYYMM(trade_date)",
}

var dailyBasicSchema = TableSchema{
	Columns: []Column{
		{Name: "ts_code", Type: TypeString},
		{Name: "trade_date", Type: TypeDate},
		{Name: "turnover_rate", Type: TypeFloat64, Nullable: true},
		{Name: "volume_ratio", Type: TypeFloat64, Nullable: true},
		{Name: "pe", Type: TypeFloat64, Nullable: true},
		{Name: "pb", Type: TypeFloat64, Nullable: true},
		{Name: "total_mv", Type: TypeFloat64, Nullable: true},
		{Name: "circ_mv", Type: TypeFloat64, Nullable: true},
	},
	OrderBy:     []string{"ts_code", "trade_date"},
	PartitionBy: "toYYYYMM(trade_date)",
}

var moneyflowSchema = TableSchema{
	Columns: []Column{
		{Name: "ts_code", Type: TypeString},
		{Name: "trade_date", Type: TypeDate},
		{Name: "buy_sm_amount", Type: TypeFloat64, Nullable: true},
		{Name: "sell_sm_amount", Type: TypeFloat64, Nullable: true},
		{Name: "buy_lg_amount", Type: TypeFloat64, Nullable: true},
		{Name: "sell_lg_amount", Type: TypeFloat64, Nullable: true},
		{Name: "net_mf_amount", Type: TypeFloat64, Nullable: true},
	},
	OrderBy:     []string{"ts_code", "trade_date"},
	PartitionBy: "toYYYYMM(trade_date)",
}

var quoteSchema = TableSchema{
	Columns: []Column{
		{Name: "ts_code", Type: TypeString},
		{Name: "trade_date", Type: TypeDate},
		{Name: "open", Type: TypeFloat64, Nullable: true},
		{Name: "high", Type: TypeFloat64, Nullable: true},
		{Name: "low", Type: TypeFloat64, Nullable: true},
		{Name: "close", Type: TypeFloat64, Nullable: true},
		{Name: "vol", Type: TypeFloat64, Nullable: true},
		{Name: "amount", Type: TypeFloat64, Nullable: true},
	},
	OrderBy:     []string{"ts_code", "trade_date"},
	PartitionBy: "toYYYYMM(trade_date)",
}

// builtins returns the catalog descriptors. Extractors are bound separately
// so the rate governor can be sized from the descriptors first.
func builtins() []*Plugin {
	return []*Plugin{
		{
			Name:                 "stock_basic",
			Table:                "ods_stock_basic",
			Role:                 RoleBasic,
			Category:             "reference",
			RateLimitPerMinute:   60,
			Schedule:             config.ScheduleConfig{Frequency: config.ScheduleFrequencyWeekly, Time: "17:00", DayOfWeek: 6},
			ScheduleEnabled:      true,
			Enabled:              true,
			ExpectedCallsPerDate: 1,
			Timeout:              referenceTimeout,
			Schema:               stockBasicSchema,
		},
		{
			Name:                 "trade_calendar",
			Table:                "ods_trade_calendar",
			Role:                 RoleBasic,
			Category:             "reference",
			RateLimitPerMinute:   60,
			Schedule:             config.ScheduleConfig{Frequency: config.ScheduleFrequencyWeekly, Time: "17:10", DayOfWeek: 6},
			ScheduleEnabled:      true,
			Enabled:              true,
			ExpectedCallsPerDate: 1,
			Timeout:              referenceTimeout,
			Schema:               tradeCalendarSchema,
		},
		{
			Name:                 "daily_bar",
			Table:                "ods_daily_bar",
			Role:                 RolePrimary,
			Category:             "stock",
			RateLimitPerMinute:   500,
			Schedule:             config.ScheduleConfig{Frequency: config.ScheduleFrequencyDaily, Time: "17:30"},
			ScheduleEnabled:      true,
			Enabled:              true,
			CalendarBound:        true,
			DateParam:            "trade_date",
			ExpectedCallsPerDate: 1,
			Timeout:              defaultTimeout,
			Schema:               dailyBarSchema,
		},
		{
			Name:                 "adj_factor",
			Table:                "ods_adj_factor",
			Role:                 RolePrimary,
			Category:             "stock",
			RateLimitPerMinute:   500,
			Schedule:             config.ScheduleConfig{Frequency: config.ScheduleFrequencyDaily, Time: "17:40"},
			ScheduleEnabled:      true,
			Enabled:              true,
			CalendarBound:        true,
			Dependencies:         []string{"daily_bar"},
			DateParam:            "trade_date",
			ExpectedCallsPerDate: 1,
			Timeout:              defaultTimeout,
			Schema:               adjFactorSchema,
		},
		{
			Name:                 "daily_basic",
			Table:                "ods_daily_basic",
			Role:                 RoleDerived,
			Category:             "stock",
			RateLimitPerMinute:   200,
			Schedule:             config.ScheduleConfig{Frequency: config.ScheduleFrequencyDaily, Time: "17:50"},
			ScheduleEnabled:      true,
			Enabled:              true,
			CalendarBound:        true,
			Dependencies:         []string{"daily_bar"},
			DateParam:            "trade_date",
			ExpectedCallsPerDate: 1,
			Timeout:              defaultTimeout,
			Schema:               dailyBasicSchema,
		},
		{
			Name:                 "moneyflow",
			Table:                "ods_moneyflow",
			Role:                 RoleAuxiliary,
			Category:             "stock",
			RateLimitPerMinute:   300,
			Schedule:             config.ScheduleConfig{Frequency: config.ScheduleFrequencyDaily, Time: "18:00"},
			ScheduleEnabled:      true,
			Enabled:              true,
			CalendarBound:        true,
			DateParam:            "trade_date",
			ExpectedCallsPerDate: 2,
			Timeout:              defaultTimeout,
			Schema:               moneyflowSchema,
		},
		{
			Name:                 "index_daily",
			Table:                "ods_index_daily",
			Role:                 RolePrimary,
			Category:             "index",
			RateLimitPerMinute:   240,
			Schedule:             config.ScheduleConfig{Frequency: config.ScheduleFrequencyDaily, Time: "17:35"},
			ScheduleEnabled:      true,
			Enabled:              true,
			CalendarBound:        true,
			DateParam:            "trade_date",
			ExpectedCallsPerDate: 1,
			Timeout:              defaultTimeout,
			Schema:               quoteSchema,
		},
		{
			// HK trades on its own calendar; the trigger runs daily and the
			// provider answers empty on HK holidays.
			Name:                 "hk_daily",
			Table:                "ods_hk_daily",
			Role:                 RolePrimary,
			Category:             "hk",
			RateLimitPerMinute:   120,
			Schedule:             config.ScheduleConfig{Frequency: config.ScheduleFrequencyDaily, Time: "18:10"},
			ScheduleEnabled:      true,
			Enabled:              true,
			DateParam:            "trade_date",
			ExpectedCallsPerDate: 2,
			Timeout:              defaultTimeout,
			Schema:               quoteSchema,
		},
		{
			Name:                 "etf_daily",
			Table:                "ods_etf_daily",
			Role:                 RolePrimary,
			Category:             "fund",
			RateLimitPerMinute:   240,
			Schedule:             config.ScheduleConfig{Frequency: config.ScheduleFrequencyDaily, Time: "18:05"},
			ScheduleEnabled:      true,
			Enabled:              true,
			CalendarBound:        true,
			DateParam:            "trade_date",
			ExpectedCallsPerDate: 1,
			Timeout:              defaultTimeout,
			Schema:               quoteSchema,
		},
	}
}

// builtinExtractors registers each builtin's extractor factory against its
// plugin name.
var builtinExtractors = map[string]func(Fetcher) Extractor{
	"stock_basic":    func(f Fetcher) Extractor { return pagedExtractor(f, "stock_basic", stockBasicSchema.FieldNames()) },
	"trade_calendar": calendarExtractor,
	"daily_bar":      func(f Fetcher) Extractor { return pagedExtractor(f, "daily", dailyBarSchema.FieldNames()) },
	"adj_factor":     func(f Fetcher) Extractor { return pagedExtractor(f, "adj_factor", adjFactorSchema.FieldNames()) },
	"daily_basic":    func(f Fetcher) Extractor { return pagedExtractor(f, "daily_basic", dailyBasicSchema.FieldNames()) },
	"moneyflow":      func(f Fetcher) Extractor { return pagedExtractor(f, "moneyflow", moneyflowSchema.FieldNames()) },
	"index_daily":    func(f Fetcher) Extractor { return pagedExtractor(f, "index_daily", quoteSchema.FieldNames()) },
	"hk_daily":       func(f Fetcher) Extractor { return pagedExtractor(f, "hk_daily", quoteSchema.FieldNames()) },
	"etf_daily":      func(f Fetcher) Extractor { return pagedExtractor(f, "fund_daily", quoteSchema.FieldNames()) },
}

// pagedExtractor walks the provider's offset pagination, emitting one batch
// per page until has_more clears.
func pagedExtractor(f Fetcher, apiName string, fields []string) Extractor {
	return func(ctx context.Context, params map[string]string, emit EmitFunc) error {
		offset := 0
		for {
			page := make(map[string]string, len(params)+2)
			for k, v := range params {
				page[k] = v
			}
			page["limit"] = strconv.Itoa(pageSize)
			page["offset"] = strconv.Itoa(offset)

			payload, err := f.Query(ctx, apiName, page, fields)
			if err != nil {
				return err
			}
			if len(payload.Items) == 0 {
				return nil
			}
			if err := emit(ctx, &Batch{Fields: payload.Fields, Records: payload.Records()}); err != nil {
				return err
			}
			if !payload.HasMore {
				return nil
			}
			offset += len(payload.Items)
		}
	}
}

// calendarExtractor fetches the trading calendar, defaulting to the Shanghai
// exchange when the trigger does not pin one.
func calendarExtractor(f Fetcher) Extractor {
	inner := pagedExtractor(f, "trade_cal", tradeCalendarSchema.FieldNames())
	return func(ctx context.Context, params map[string]string, emit EmitFunc) error {
		if params["exchange"] == "" {
			withExchange := make(map[string]string, len(params)+1)
			for k, v := range params {
				withExchange[k] = v
			}
			withExchange["exchange"] = "SSE"
			params = withExchange
		}
		return inner(ctx, params, emit)
	}
}

// Catalog returns the builtin descriptors with YAML overrides applied.
// Overriding an unknown plugin fails, matching the validator's fail-fast
// posture.
func Catalog(cfg *config.Config) ([]*Plugin, error) {
	plugins := builtins()
	byName := make(map[string]*Plugin, len(plugins))
	for _, p := range plugins {
		byName[p.Name] = p
	}

	for name, override := range cfg.PluginOverrides {
		p, ok := byName[name]
		if !ok {
			return nil, config.NewValidationError("plugin", name, "override",
				fmt.Errorf("%w: no builtin plugin %q", config.ErrInvalidValue, name))
		}
		if override.Enabled != nil {
			p.Enabled = *override.Enabled
		}
		if override.ScheduleEnabled != nil {
			p.ScheduleEnabled = *override.ScheduleEnabled
		}
		if override.RateLimitPerMinute != nil {
			p.RateLimitPerMinute = *override.RateLimitPerMinute
		}
		if override.Schedule != nil {
			p.Schedule = *override.Schedule
		}
		if override.TimeoutSeconds != nil {
			p.Timeout = time.Duration(*override.TimeoutSeconds) * time.Second
		}
	}
	return plugins, nil
}

// Limits maps each enabled plugin to its per-minute rate limit, sized for
// the governor.
func Limits(plugins []*Plugin) map[string]int {
	limits := make(map[string]int, len(plugins))
	for _, p := range plugins {
		if p.Enabled {
			limits[p.Name] = p.RateLimitPerMinute
		}
	}
	return limits
}

// BuildRegistry binds the registered extractor to each descriptor, routing
// provider calls through the gate, then validates and freezes the registry.
// Descriptors with a pre-bound extractor are left alone.
func BuildRegistry(plugins []*Plugin, f Fetcher, gate Gate) (*Registry, error) {
	for _, p := range plugins {
		if p.Extract != nil {
			continue
		}
		factory, ok := builtinExtractors[p.Name]
		if !ok {
			continue
		}
		fetcher := f
		if gate != nil {
			fetcher = &gatedFetcher{plugin: p.Name, f: f, gate: gate}
		}
		p.Extract = factory(fetcher)
	}
	return NewRegistry(plugins)
}

// maxRateLimitRetries bounds how many backoff windows one provider call
// waits out before its rate-limit error is surfaced to the sub-task.
const maxRateLimitRetries = 3

// gatedFetcher acquires one rate token per provider call and converts the
// provider's backoff answers into refill penalties. A rate-limited call is
// re-issued after its penalty: the stalled refill makes the next Acquire
// block until the provider's backoff window has passed, so the call
// eventually lands instead of failing the sub-task.
type gatedFetcher struct {
	plugin string
	f      Fetcher
	gate   Gate
}

func (g *gatedFetcher) Query(ctx context.Context, apiName string, params map[string]string, fields []string) (*provider.Payload, error) {
	for attempt := 0; ; attempt++ {
		if err := g.gate.Acquire(ctx, g.plugin); err != nil {
			return nil, fmt.Errorf("rate acquire for %s: %w", g.plugin, err)
		}
		payload, err := g.f.Query(ctx, apiName, params, fields)
		if err == nil {
			return payload, nil
		}
		var rle *provider.RateLimitError
		if !errors.As(err, &rle) {
			return nil, err
		}
		_ = g.gate.Penalty(g.plugin, rle.RetryAfter)
		if attempt >= maxRateLimitRetries {
			return nil, err
		}
	}
}
