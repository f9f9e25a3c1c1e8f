package ods

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yourdaylight/stock-datasource-sub001/pkg/plugin"
)

func TestInferColumns(t *testing.T) {
	batch := &plugin.Batch{
		Fields: []string{"ts_code", "trade_date", "close", "vol", "is_suspended", "note", "version"},
		Records: []map[string]any{
			{"ts_code": "600519.SH", "trade_date": "20260820", "close": 1700.5, "vol": float64(120000), "is_suspended": false, "note": nil},
			{"ts_code": "000001.SZ", "trade_date": "20260820", "close": 11.2, "vol": float64(98000), "is_suspended": true, "note": nil},
		},
	}

	cols := InferColumns(batch)
	require.Len(t, cols, 6, "version field is reserved and skipped")

	byName := make(map[string]plugin.Column, len(cols))
	for _, c := range cols {
		byName[c.Name] = c
		assert.True(t, c.Nullable, "inferred columns are nullable: %s", c.Name)
	}

	assert.Equal(t, plugin.TypeString, byName["ts_code"].Type)
	assert.Equal(t, plugin.TypeString, byName["trade_date"].Type, "dates arrive as strings")
	assert.Equal(t, plugin.TypeFloat64, byName["close"].Type)
	assert.Equal(t, plugin.TypeInt64, byName["vol"].Type, "integral JSON numbers stay Int64")
	assert.Equal(t, plugin.TypeInt64, byName["is_suspended"].Type, "bools store as 0/1")
	assert.Equal(t, plugin.TypeString, byName["note"].Type, "all-null fields default to the widest type")
}

func TestInferFieldMixedTypes(t *testing.T) {
	records := []map[string]any{
		{"x": float64(1)},
		{"x": "n/a"},
	}
	assert.Equal(t, plugin.TypeString, inferField(records, "x"), "mixed samples collapse to String")

	records = []map[string]any{
		{"y": int64(1)},
		{"y": 2.5},
	}
	assert.Equal(t, plugin.TypeFloat64, inferField(records, "y"), "int and float merge to Float64")

	records = []map[string]any{
		{"z": float64(1)},
		{"z": float64(2)},
	}
	assert.Equal(t, plugin.TypeInt64, inferField(records, "z"))
}

func TestWidenTarget(t *testing.T) {
	tests := []struct {
		name       string
		have, seen plugin.ColumnType
		want       plugin.ColumnType
		needed     bool
	}{
		{"same type", plugin.TypeFloat64, plugin.TypeFloat64, "", false},
		{"string absorbs anything", plugin.TypeString, plugin.TypeFloat64, "", false},
		{"float absorbs int", plugin.TypeFloat64, plugin.TypeInt64, "", false},
		{"int widens to float", plugin.TypeInt64, plugin.TypeFloat64, plugin.TypeFloat64, true},
		{"int widens to string", plugin.TypeInt64, plugin.TypeString, plugin.TypeString, true},
		{"float widens to string", plugin.TypeFloat64, plugin.TypeString, plugin.TypeString, true},
		{"date accepts date strings", plugin.TypeDate, plugin.TypeString, "", false},
		{"date widens for numerics", plugin.TypeDate, plugin.TypeFloat64, plugin.TypeString, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, needed := widenTarget(tt.have, tt.seen)
			assert.Equal(t, tt.needed, needed)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseColumnType(t *testing.T) {
	type result struct {
		t        plugin.ColumnType
		nullable bool
	}
	tests := map[string]result{
		"String":            {plugin.TypeString, false},
		"Int64":             {plugin.TypeInt64, false},
		"Nullable(Float64)": {plugin.TypeFloat64, true},
		"Date":              {plugin.TypeDate, false},
		"Nullable(Date)":    {plugin.TypeDate, true},
		"UInt64":            {plugin.TypeString, false},
	}

	for ch, want := range tests {
		got, nullable := parseColumnType(ch)
		assert.Equal(t, want.t, got, ch)
		assert.Equal(t, want.nullable, nullable, ch)
	}
}
