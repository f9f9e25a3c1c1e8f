// Package calendar answers trading-day questions from the synced trade
// calendar, caching the loaded window in memory.
package calendar

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/Yourdaylight/stock-datasource-sub001/pkg/models"
)

// ErrNoCalendarData indicates the trade calendar has no row for the asked
// date, usually because the calendar plugin has not synced that far.
var ErrNoCalendarData = errors.New("no trade calendar data")

// Source reads trade-calendar rows for an exchange and inclusive date range.
type Source interface {
	TradingDays(ctx context.Context, exchange, from, to string) ([]models.TradingDay, error)
}

// Calendar caches trade-calendar rows for one exchange. The cache covers a
// single contiguous window that widens as callers ask for more; Invalidate
// drops it after a calendar re-sync.
type Calendar struct {
	source   Source
	exchange string

	mu   sync.RWMutex
	days map[string]bool
	from string
	to   string
}

// New builds a calendar over the given source and exchange.
func New(source Source, exchange string) *Calendar {
	return &Calendar{source: source, exchange: exchange}
}

// IsTradingDay reports whether the exchange trades on the given YYYYMMDD
// date.
func (c *Calendar) IsTradingDay(ctx context.Context, date string) (bool, error) {
	if _, err := models.ParseTradeDate(date); err != nil {
		return false, err
	}
	if err := c.ensure(ctx, date, date); err != nil {
		return false, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	open, ok := c.days[date]
	if !ok {
		return false, fmt.Errorf("%w: %s %s", ErrNoCalendarData, c.exchange, date)
	}
	return open, nil
}

// TradingDaysBetween returns the open trading days in [from, to], ascending.
func (c *Calendar) TradingDaysBetween(ctx context.Context, from, to string) ([]string, error) {
	if _, err := models.ParseTradeDate(from); err != nil {
		return nil, err
	}
	if _, err := models.ParseTradeDate(to); err != nil {
		return nil, err
	}
	if from > to {
		return nil, nil
	}
	if err := c.ensure(ctx, from, to); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	var open []string
	for date, isOpen := range c.days {
		if isOpen && date >= from && date <= to {
			open = append(open, date)
		}
	}
	sort.Strings(open)
	return open, nil
}

// MostRecentTradingDay returns the latest open day on or before asOf,
// looking back at most lookbackDays.
func (c *Calendar) MostRecentTradingDay(ctx context.Context, asOf string, lookbackDays int) (string, error) {
	end, err := models.ParseTradeDate(asOf)
	if err != nil {
		return "", err
	}
	from := models.FormatTradeDate(end.AddDate(0, 0, -lookbackDays))

	open, err := c.TradingDaysBetween(ctx, from, asOf)
	if err != nil {
		return "", err
	}
	if len(open) == 0 {
		return "", fmt.Errorf("%w: no open day within %d days of %s", ErrNoCalendarData, lookbackDays, asOf)
	}
	return open[len(open)-1], nil
}

// Invalidate drops the cache so the next lookup reloads from the source.
func (c *Calendar) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.days = nil
	c.from, c.to = "", ""
}

func (c *Calendar) coveredLocked(from, to string) bool {
	return c.from != "" && c.from <= from && to <= c.to
}

// ensure widens the cached window to cover [from, to].
func (c *Calendar) ensure(ctx context.Context, from, to string) error {
	c.mu.RLock()
	covered := c.coveredLocked(from, to)
	c.mu.RUnlock()
	if covered {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.coveredLocked(from, to) {
		return nil
	}

	loadFrom, loadTo := from, to
	if c.from != "" {
		if c.from < loadFrom {
			loadFrom = c.from
		}
		if c.to > loadTo {
			loadTo = c.to
		}
	}

	rows, err := c.source.TradingDays(ctx, c.exchange, loadFrom, loadTo)
	if err != nil {
		return fmt.Errorf("load trade calendar %s [%s, %s]: %w", c.exchange, loadFrom, loadTo, err)
	}

	days := make(map[string]bool, len(rows))
	for _, row := range rows {
		days[row.CalDate] = row.IsOpen
	}
	c.days = days
	c.from, c.to = loadFrom, loadTo
	return nil
}
