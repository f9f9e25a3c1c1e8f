package ods

import (
	"math"
	"strings"

	"github.com/Yourdaylight/stock-datasource-sub001/pkg/plugin"
)

// InferColumns samples a batch and returns the widest-seen type per field,
// in field order. Fields whose sampled values are all null come back as
// String, the widest type. The version field name is reserved and skipped.
func InferColumns(batch *plugin.Batch) []plugin.Column {
	cols := make([]plugin.Column, 0, len(batch.Fields))
	for _, field := range batch.Fields {
		if field == versionColumn {
			continue
		}
		cols = append(cols, plugin.Column{
			Name:     field,
			Type:     inferField(batch.Records, field),
			Nullable: true,
		})
	}
	return cols
}

func inferField(records []map[string]any, field string) plugin.ColumnType {
	var seen plugin.ColumnType
	for _, rec := range records {
		v, ok := rec[field]
		if !ok || v == nil {
			continue
		}
		t := inferValue(v)
		switch {
		case seen == "":
			seen = t
		case seen == t:
		case isNumeric(seen) && isNumeric(t):
			seen = plugin.TypeFloat64
		default:
			// Mixed string/number samples collapse to the widest type.
			return plugin.TypeString
		}
	}
	if seen == "" {
		return plugin.TypeString
	}
	return seen
}

func inferValue(v any) plugin.ColumnType {
	switch x := v.(type) {
	case string:
		return plugin.TypeString
	case float64:
		// JSON numbers all decode as float64; integral samples stay Int64
		// so declared integer columns don't widen on every sync.
		if x == math.Trunc(x) && math.Abs(x) < 1<<53 {
			return plugin.TypeInt64
		}
		return plugin.TypeFloat64
	case float32:
		return plugin.TypeFloat64
	case int, int32, int64, uint, uint32, uint64:
		return plugin.TypeInt64
	case bool:
		return plugin.TypeInt64
	default:
		return plugin.TypeString
	}
}

func isNumeric(t plugin.ColumnType) bool {
	return t == plugin.TypeInt64 || t == plugin.TypeFloat64
}

// widenTarget decides whether a column holding `have` must widen to admit
// `seen` values, and to what. Date columns fed non-date samples and numeric
// columns fed strings widen to String.
func widenTarget(have, seen plugin.ColumnType) (plugin.ColumnType, bool) {
	if have == seen || have == plugin.TypeString {
		return "", false
	}
	switch {
	case have == plugin.TypeFloat64 && seen == plugin.TypeInt64:
		return "", false
	case have == plugin.TypeInt64 && seen == plugin.TypeFloat64:
		return plugin.TypeFloat64, true
	case have == plugin.TypeDate && isNumeric(seen):
		return plugin.TypeString, true
	case seen == plugin.TypeString:
		// Date columns accept YYYYMMDD strings without widening.
		if have == plugin.TypeDate {
			return "", false
		}
		return plugin.TypeString, true
	default:
		return plugin.TypeString, true
	}
}

// parseColumnType maps a ClickHouse type string back to the declared model.
// Types outside the model (operator-altered columns) read as String so
// writes coerce to text rather than guess.
func parseColumnType(ch string) (plugin.ColumnType, bool) {
	nullable := false
	if strings.HasPrefix(ch, "Nullable(") && strings.HasSuffix(ch, ")") {
		nullable = true
		ch = strings.TrimSuffix(strings.TrimPrefix(ch, "Nullable("), ")")
	}
	switch ch {
	case "String":
		return plugin.TypeString, nullable
	case "Int64":
		return plugin.TypeInt64, nullable
	case "Float64":
		return plugin.TypeFloat64, nullable
	case "Date":
		return plugin.TypeDate, nullable
	default:
		return plugin.TypeString, nullable
	}
}
