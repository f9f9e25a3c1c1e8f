package ods

import (
	"context"
	"fmt"
	"time"

	"github.com/Yourdaylight/stock-datasource-sub001/pkg/models"
)

// Canonical ODS tables read outside the generic plugin paths.
const (
	TradeCalendarTable = "ods_trade_calendar"
	DailyBarTable      = "ods_daily_bar"
)

// Reader serves the deduplicated (last version wins) view of ODS tables.
type Reader struct {
	conn *Conn
}

// NewReader builds a reader over the connection.
func NewReader(conn *Conn) *Reader {
	return &Reader{conn: conn}
}

// PresentDates returns the distinct YYYYMMDD dates present in the table,
// ascending.
func (r *Reader) PresentDates(ctx context.Context, table, dateColumn string) ([]string, error) {
	if err := validIdent(table); err != nil {
		return nil, err
	}
	if err := validIdent(dateColumn); err != nil {
		return nil, err
	}

	query := fmt.Sprintf("SELECT DISTINCT %s FROM %s ORDER BY %s",
		quoteIdent(dateColumn), quoteIdent(table), quoteIdent(dateColumn))
	rows, err := r.conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query present dates of %s: %w", table, err)
	}
	defer rows.Close()

	var dates []string
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("scan present date: %w", err)
		}
		dates = append(dates, models.FormatTradeDate(d))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate present dates: %w", err)
	}
	return dates, nil
}

// HasDate reports whether any row exists for the YYYYMMDD date.
func (r *Reader) HasDate(ctx context.Context, table, dateColumn, date string) (bool, error) {
	if err := validIdent(table); err != nil {
		return false, err
	}
	if err := validIdent(dateColumn); err != nil {
		return false, err
	}
	day, err := models.ParseTradeDate(date)
	if err != nil {
		return false, err
	}

	query := fmt.Sprintf("SELECT count() FROM %s WHERE %s = ?", quoteIdent(table), quoteIdent(dateColumn))
	var count uint64
	if err := r.conn.QueryRow(ctx, query, day).Scan(&count); err != nil {
		return false, fmt.Errorf("count rows of %s at %s: %w", table, date, err)
	}
	return count > 0, nil
}

// LatestDate returns the most recent YYYYMMDD date in the table, or "" for
// an empty table.
func (r *Reader) LatestDate(ctx context.Context, table, dateColumn string) (string, error) {
	if err := validIdent(table); err != nil {
		return "", err
	}
	if err := validIdent(dateColumn); err != nil {
		return "", err
	}

	query := fmt.Sprintf("SELECT count(), max(%s) FROM %s", quoteIdent(dateColumn), quoteIdent(table))
	var count uint64
	var latest time.Time
	if err := r.conn.QueryRow(ctx, query).Scan(&count, &latest); err != nil {
		return "", fmt.Errorf("query latest date of %s: %w", table, err)
	}
	if count == 0 {
		return "", nil
	}
	return models.FormatTradeDate(latest), nil
}

// TradingDays reads trade-calendar rows for the exchange in [from, to]. It
// satisfies the calendar source contract.
func (r *Reader) TradingDays(ctx context.Context, exchange, from, to string) ([]models.TradingDay, error) {
	fromDay, err := models.ParseTradeDate(from)
	if err != nil {
		return nil, err
	}
	toDay, err := models.ParseTradeDate(to)
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(ctx, `
		SELECT exchange, cal_date, is_open
		FROM `+TradeCalendarTable+` FINAL
		WHERE exchange = ? AND cal_date >= ? AND cal_date <= ?
		ORDER BY cal_date ASC
	`, exchange, fromDay, toDay)
	if err != nil {
		return nil, fmt.Errorf("query trade calendar: %w", err)
	}
	defer rows.Close()

	var days []models.TradingDay
	for rows.Next() {
		var day models.TradingDay
		var calDate time.Time
		var isOpen int64
		if err := rows.Scan(&day.Exchange, &calDate, &isOpen); err != nil {
			return nil, fmt.Errorf("scan trade calendar row: %w", err)
		}
		day.CalDate = models.FormatTradeDate(calDate)
		day.IsOpen = isOpen != 0
		days = append(days, day)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate trade calendar rows: %w", err)
	}
	return days, nil
}

// DailyBars reads the deduplicated daily bars for one code in [from, to],
// ascending by date.
func (r *Reader) DailyBars(ctx context.Context, code, from, to string) ([]models.DailyBar, error) {
	fromDay, err := models.ParseTradeDate(from)
	if err != nil {
		return nil, err
	}
	toDay, err := models.ParseTradeDate(to)
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(ctx, `
		SELECT ts_code, trade_date, open, high, low, close, vol, amount
		FROM `+DailyBarTable+` FINAL
		WHERE ts_code = ? AND trade_date >= ? AND trade_date <= ?
		ORDER BY trade_date ASC
	`, code, fromDay, toDay)
	if err != nil {
		return nil, fmt.Errorf("query daily bars: %w", err)
	}
	defer rows.Close()

	var bars []models.DailyBar
	for rows.Next() {
		var bar models.DailyBar
		var tradeDate time.Time
		var open, high, low, closePx, vol, amount *float64
		if err := rows.Scan(&bar.Code, &tradeDate, &open, &high, &low, &closePx, &vol, &amount); err != nil {
			return nil, fmt.Errorf("scan daily bar row: %w", err)
		}
		bar.TradeDate = models.FormatTradeDate(tradeDate)
		bar.Open = deref(open)
		bar.High = deref(high)
		bar.Low = deref(low)
		bar.Close = deref(closePx)
		bar.Volume = deref(vol)
		bar.Amount = deref(amount)
		bars = append(bars, bar)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate daily bar rows: %w", err)
	}
	return bars, nil
}

func deref(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

// Warehouse bundles the ODS surfaces a caller wires together.
type Warehouse struct {
	Conn   *Conn
	Sync   *Synchronizer
	Loader *Loader
	Reader *Reader
}

// NewWarehouse builds the full ODS stack over one connection.
func NewWarehouse(conn *Conn, audits AuditSink) *Warehouse {
	return &Warehouse{
		Conn:   conn,
		Sync:   NewSynchronizer(conn, audits),
		Loader: NewLoader(conn),
		Reader: NewReader(conn),
	}
}
