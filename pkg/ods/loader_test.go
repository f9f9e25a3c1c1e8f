package ods

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yourdaylight/stock-datasource-sub001/pkg/plugin"
)

func TestConvertValue(t *testing.T) {
	nullable := func(name string, t plugin.ColumnType) plugin.Column {
		return plugin.Column{Name: name, Type: t, Nullable: true}
	}

	t.Run("string column", func(t *testing.T) {
		got, err := convertValue("600519.SH", nullable("ts_code", plugin.TypeString))
		require.NoError(t, err)
		assert.Equal(t, "600519.SH", got)

		got, err = convertValue(1700.5, nullable("ts_code", plugin.TypeString))
		require.NoError(t, err)
		assert.Equal(t, "1700.5", got)
	})

	t.Run("int column", func(t *testing.T) {
		got, err := convertValue(float64(42), nullable("n", plugin.TypeInt64))
		require.NoError(t, err)
		assert.Equal(t, int64(42), got)

		got, err = convertValue("17", nullable("n", plugin.TypeInt64))
		require.NoError(t, err)
		assert.Equal(t, int64(17), got)

		got, err = convertValue(true, nullable("n", plugin.TypeInt64))
		require.NoError(t, err)
		assert.Equal(t, int64(1), got)

		_, err = convertValue("abc", nullable("n", plugin.TypeInt64))
		assert.Error(t, err)
	})

	t.Run("float column", func(t *testing.T) {
		got, err := convertValue(int64(3), nullable("f", plugin.TypeFloat64))
		require.NoError(t, err)
		assert.Equal(t, float64(3), got)

		got, err = convertValue("2.5", nullable("f", plugin.TypeFloat64))
		require.NoError(t, err)
		assert.Equal(t, 2.5, got)
	})

	t.Run("date column", func(t *testing.T) {
		got, err := convertValue("20260820", nullable("trade_date", plugin.TypeDate))
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC), got)

		_, err = convertValue("2026-08-20", nullable("trade_date", plugin.TypeDate))
		assert.Error(t, err)
	})

	t.Run("nulls", func(t *testing.T) {
		got, err := convertValue(nil, nullable("close", plugin.TypeFloat64))
		require.NoError(t, err)
		assert.Nil(t, got)

		_, err = convertValue(nil, plugin.Column{Name: "ts_code", Type: plugin.TypeString})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "non-nullable")
	})
}

func TestNextVersionMonotonic(t *testing.T) {
	frozen := time.Date(2026, 8, 20, 18, 0, 0, 0, time.UTC)
	l := &Loader{now: func() time.Time { return frozen }}

	first := l.nextVersion()
	second := l.nextVersion()
	third := l.nextVersion()

	assert.Equal(t, uint64(frozen.UnixNano()), first)
	assert.Greater(t, second, first, "same-nanosecond loads still get increasing versions")
	assert.Greater(t, third, second)
}
