package e2e

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/Yourdaylight/stock-datasource-sub001/pkg/models"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/ods"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/plugin"
)

// Warehouse is an in-memory stand-in for the ClickHouse ODS. It keeps loaded
// rows per table with the same last-version-wins upsert keyed on the table's
// order-by columns, and answers every read surface the scheduler, calendar,
// and arena consume in production.
type Warehouse struct {
	mu     sync.Mutex
	tables map[string]*memTable
	order  []string // tables in first-load order
}

type memTable struct {
	orderBy []string
	rows    map[string]map[string]any
	seq     int
}

// NewWarehouse builds an empty warehouse.
func NewWarehouse() *Warehouse {
	return &Warehouse{tables: make(map[string]*memTable)}
}

// Ping satisfies the API server's warehouse liveness probe.
func (w *Warehouse) Ping(context.Context) error { return nil }

// Sync records the table's upsert key and returns the batch's inferred
// columns in field order, mirroring the ClickHouse synchronizer's contract.
func (w *Warehouse) Sync(_ context.Context, p *plugin.Plugin, batch *plugin.Batch) ([]plugin.Column, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.tableLocked(p.Table).orderBy = p.Schema.OrderBy
	return ods.InferColumns(batch), nil
}

// Load upserts one batch into the table.
func (w *Warehouse) Load(_ context.Context, table string, cols []plugin.Column, batch *plugin.Batch) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	tbl := w.tableLocked(table)
	for _, record := range batch.Records {
		row := make(map[string]any, len(cols))
		for _, col := range cols {
			row[col.Name] = record[col.Name]
		}
		tbl.rows[tbl.keyFor(row)] = row
	}
	return len(batch.Records), nil
}

func (w *Warehouse) tableLocked(name string) *memTable {
	tbl, ok := w.tables[name]
	if !ok {
		tbl = &memTable{rows: make(map[string]map[string]any)}
		w.tables[name] = tbl
		w.order = append(w.order, name)
	}
	return tbl
}

func (t *memTable) keyFor(row map[string]any) string {
	if len(t.orderBy) == 0 {
		t.seq++
		return strconv.Itoa(t.seq)
	}
	parts := make([]string, len(t.orderBy))
	for i, col := range t.orderBy {
		parts[i] = fmt.Sprintf("%v", row[col])
	}
	return strings.Join(parts, "|")
}

// PresentDates returns the distinct dates present in the table, ascending.
// Unknown tables read as empty, like a freshly created ODS table.
func (w *Warehouse) PresentDates(_ context.Context, table, dateColumn string) ([]string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	tbl, ok := w.tables[table]
	if !ok {
		return nil, nil
	}
	seen := make(map[string]struct{})
	var dates []string
	for _, row := range tbl.rows {
		d := asString(row[dateColumn])
		if d == "" {
			continue
		}
		if _, dup := seen[d]; dup {
			continue
		}
		seen[d] = struct{}{}
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates, nil
}

// HasDate reports whether any row exists for the date.
func (w *Warehouse) HasDate(ctx context.Context, table, dateColumn, date string) (bool, error) {
	dates, err := w.PresentDates(ctx, table, dateColumn)
	if err != nil {
		return false, err
	}
	for _, d := range dates {
		if d == date {
			return true, nil
		}
	}
	return false, nil
}

// LatestDate returns the most recent date in the table, or "" when empty.
func (w *Warehouse) LatestDate(ctx context.Context, table, dateColumn string) (string, error) {
	dates, err := w.PresentDates(ctx, table, dateColumn)
	if err != nil {
		return "", err
	}
	if len(dates) == 0 {
		return "", nil
	}
	return dates[len(dates)-1], nil
}

// TradingDays reads the loaded trade-calendar rows for the exchange in
// [from, to], satisfying the calendar source contract.
func (w *Warehouse) TradingDays(_ context.Context, exchange, from, to string) ([]models.TradingDay, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	tbl, ok := w.tables[ods.TradeCalendarTable]
	if !ok {
		return nil, nil
	}
	var days []models.TradingDay
	for _, row := range tbl.rows {
		date := asString(row["cal_date"])
		if asString(row["exchange"]) != exchange || date < from || date > to {
			continue
		}
		days = append(days, models.TradingDay{
			Exchange: exchange,
			CalDate:  date,
			IsOpen:   asFloat(row["is_open"]) != 0,
		})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].CalDate < days[j].CalDate })
	return days, nil
}

// DailyBars reads the loaded daily bars for one code in [from, to],
// ascending by date, satisfying the arena bar source contract.
func (w *Warehouse) DailyBars(_ context.Context, code, from, to string) ([]models.DailyBar, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	tbl, ok := w.tables[ods.DailyBarTable]
	if !ok {
		return nil, nil
	}
	var bars []models.DailyBar
	for _, row := range tbl.rows {
		date := asString(row["trade_date"])
		if asString(row["ts_code"]) != code || date < from || date > to {
			continue
		}
		bars = append(bars, models.DailyBar{
			Code:      code,
			TradeDate: date,
			Open:      asFloat(row["open"]),
			High:      asFloat(row["high"]),
			Low:       asFloat(row["low"]),
			Close:     asFloat(row["close"]),
			Volume:    asFloat(row["vol"]),
			Amount:    asFloat(row["amount"]),
		})
	}
	sort.Slice(bars, func(i, j int) bool { return bars[i].TradeDate < bars[j].TradeDate })
	return bars, nil
}

// RowCount reports how many rows the table holds.
func (w *Warehouse) RowCount(table string) int {
	w.mu.Lock()
	defer w.mu.Unlock()
	tbl, ok := w.tables[table]
	if !ok {
		return 0
	}
	return len(tbl.rows)
}

// LoadOrder lists the tables in the order they first received rows.
func (w *Warehouse) LoadOrder() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]string, len(w.order))
	copy(out, w.order)
	return out
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	}
	return 0
}
