package calendar

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yourdaylight/stock-datasource-sub001/pkg/models"
)

// memorySource serves a fixed calendar and counts loads.
type memorySource struct {
	rows  []models.TradingDay
	loads int
	err   error
}

func (s *memorySource) TradingDays(ctx context.Context, exchange, from, to string) ([]models.TradingDay, error) {
	s.loads++
	if s.err != nil {
		return nil, s.err
	}
	var out []models.TradingDay
	for _, row := range s.rows {
		if row.Exchange == exchange && row.CalDate >= from && row.CalDate <= to {
			out = append(out, row)
		}
	}
	return out, nil
}

// augustWeek covers Mon 2026-08-17 .. Sun 2026-08-23 with the weekend closed.
func augustWeek() []models.TradingDay {
	return []models.TradingDay{
		{Exchange: "SSE", CalDate: "20260817", IsOpen: true},
		{Exchange: "SSE", CalDate: "20260818", IsOpen: true},
		{Exchange: "SSE", CalDate: "20260819", IsOpen: true},
		{Exchange: "SSE", CalDate: "20260820", IsOpen: true},
		{Exchange: "SSE", CalDate: "20260821", IsOpen: true},
		{Exchange: "SSE", CalDate: "20260822", IsOpen: false},
		{Exchange: "SSE", CalDate: "20260823", IsOpen: false},
	}
}

func TestIsTradingDay(t *testing.T) {
	cal := New(&memorySource{rows: augustWeek()}, "SSE")
	ctx := context.Background()

	open, err := cal.IsTradingDay(ctx, "20260820")
	require.NoError(t, err)
	assert.True(t, open)

	open, err = cal.IsTradingDay(ctx, "20260822")
	require.NoError(t, err)
	assert.False(t, open, "Saturday is closed")
}

func TestIsTradingDayNoCalendarRow(t *testing.T) {
	cal := New(&memorySource{rows: augustWeek()}, "SSE")

	_, err := cal.IsTradingDay(context.Background(), "20300101")
	assert.ErrorIs(t, err, ErrNoCalendarData)
}

func TestIsTradingDayMalformedDate(t *testing.T) {
	source := &memorySource{rows: augustWeek()}
	cal := New(source, "SSE")

	_, err := cal.IsTradingDay(context.Background(), "2026-08-20")
	require.Error(t, err)
	assert.Zero(t, source.loads, "malformed dates never hit the source")
}

func TestTradingDaysBetween(t *testing.T) {
	cal := New(&memorySource{rows: augustWeek()}, "SSE")

	open, err := cal.TradingDaysBetween(context.Background(), "20260818", "20260823")
	require.NoError(t, err)
	assert.Equal(t, []string{"20260818", "20260819", "20260820", "20260821"}, open)
}

func TestTradingDaysBetweenInvertedRange(t *testing.T) {
	cal := New(&memorySource{rows: augustWeek()}, "SSE")

	open, err := cal.TradingDaysBetween(context.Background(), "20260821", "20260817")
	require.NoError(t, err)
	assert.Empty(t, open)
}

func TestMostRecentTradingDay(t *testing.T) {
	cal := New(&memorySource{rows: augustWeek()}, "SSE")

	// Sunday resolves back to Friday.
	day, err := cal.MostRecentTradingDay(context.Background(), "20260823", 5)
	require.NoError(t, err)
	assert.Equal(t, "20260821", day)
}

func TestMostRecentTradingDayNoneInWindow(t *testing.T) {
	cal := New(&memorySource{rows: []models.TradingDay{
		{Exchange: "SSE", CalDate: "20260822", IsOpen: false},
		{Exchange: "SSE", CalDate: "20260823", IsOpen: false},
	}}, "SSE")

	_, err := cal.MostRecentTradingDay(context.Background(), "20260823", 1)
	assert.ErrorIs(t, err, ErrNoCalendarData)
}

func TestCacheCoversRepeatLookups(t *testing.T) {
	source := &memorySource{rows: augustWeek()}
	cal := New(source, "SSE")
	ctx := context.Background()

	_, err := cal.TradingDaysBetween(ctx, "20260817", "20260823")
	require.NoError(t, err)
	_, err = cal.IsTradingDay(ctx, "20260819")
	require.NoError(t, err)
	_, err = cal.TradingDaysBetween(ctx, "20260818", "20260821")
	require.NoError(t, err)

	assert.Equal(t, 1, source.loads, "lookups inside the loaded window reuse the cache")
}

func TestCacheWidens(t *testing.T) {
	source := &memorySource{rows: augustWeek()}
	cal := New(source, "SSE")
	ctx := context.Background()

	_, err := cal.IsTradingDay(ctx, "20260819")
	require.NoError(t, err)

	open, err := cal.TradingDaysBetween(ctx, "20260817", "20260821")
	require.NoError(t, err)
	assert.Len(t, open, 5)
	assert.Equal(t, 2, source.loads, "widening reloads the merged window once")
}

func TestInvalidateForcesReload(t *testing.T) {
	source := &memorySource{rows: augustWeek()}
	cal := New(source, "SSE")
	ctx := context.Background()

	_, err := cal.IsTradingDay(ctx, "20260819")
	require.NoError(t, err)
	cal.Invalidate()
	_, err = cal.IsTradingDay(ctx, "20260819")
	require.NoError(t, err)

	assert.Equal(t, 2, source.loads)
}

func TestSourceErrorPropagates(t *testing.T) {
	source := &memorySource{err: errors.New("clickhouse down")}
	cal := New(source, "SSE")

	_, err := cal.IsTradingDay(context.Background(), "20260819")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "clickhouse down")
}
