package ods

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Yourdaylight/stock-datasource-sub001/pkg/models"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/plugin"
)

// Loader writes batches with a version-based upsert: every row carries a
// strictly increasing write-time version, and ReplacingMergeTree keeps the
// highest version per order key.
type Loader struct {
	conn *Conn
	now  func() time.Time

	mu          sync.Mutex
	lastVersion uint64
}

// NewLoader builds a loader over the connection.
func NewLoader(conn *Conn) *Loader {
	return &Loader{conn: conn, now: time.Now}
}

// Load writes one batch into table using the synchronized column
// definitions. Returns the number of rows written.
func (l *Loader) Load(ctx context.Context, table string, cols []plugin.Column, batch *plugin.Batch) (int, error) {
	if len(batch.Records) == 0 {
		return 0, nil
	}

	names := make([]string, 0, len(cols)+1)
	for _, col := range cols {
		names = append(names, quoteIdent(col.Name))
	}
	names = append(names, quoteIdent(versionColumn))

	ins, err := l.conn.PrepareBatch(ctx,
		fmt.Sprintf("INSERT INTO %s (%s)", quoteIdent(table), strings.Join(names, ", ")))
	if err != nil {
		return 0, fmt.Errorf("prepare batch for %s: %w", table, err)
	}

	version := l.nextVersion()
	for i, rec := range batch.Records {
		vals := make([]any, 0, len(cols)+1)
		for _, col := range cols {
			v, err := convertValue(rec[col.Name], col)
			if err != nil {
				return 0, fmt.Errorf("row %d of %s: %w", i, table, err)
			}
			vals = append(vals, v)
		}
		vals = append(vals, version)
		if err := ins.Append(vals...); err != nil {
			return 0, fmt.Errorf("append row %d to %s: %w", i, table, err)
		}
	}

	if err := ins.Send(); err != nil {
		return 0, fmt.Errorf("send batch to %s: %w", table, err)
	}
	return len(batch.Records), nil
}

// nextVersion returns a strictly increasing version even when loads land in
// the same nanosecond.
func (l *Loader) nextVersion() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	v := uint64(l.now().UnixNano())
	if v <= l.lastVersion {
		v = l.lastVersion + 1
	}
	l.lastVersion = v
	return v
}

// convertValue coerces a decoded payload value to the column's storage type.
func convertValue(v any, col plugin.Column) (any, error) {
	if v == nil {
		if !col.Nullable {
			return nil, fmt.Errorf("column %s: null for non-nullable column", col.Name)
		}
		return nil, nil
	}

	switch col.Type {
	case plugin.TypeString:
		return toString(v), nil

	case plugin.TypeInt64:
		switch x := v.(type) {
		case float64:
			return int64(x), nil
		case float32:
			return int64(x), nil
		case int:
			return int64(x), nil
		case int32:
			return int64(x), nil
		case int64:
			return x, nil
		case uint64:
			return int64(x), nil
		case bool:
			if x {
				return int64(1), nil
			}
			return int64(0), nil
		case string:
			n, err := strconv.ParseInt(x, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("column %s: %q is not an integer", col.Name, x)
			}
			return n, nil
		}

	case plugin.TypeFloat64:
		switch x := v.(type) {
		case float64:
			return x, nil
		case float32:
			return float64(x), nil
		case int:
			return float64(x), nil
		case int32:
			return float64(x), nil
		case int64:
			return float64(x), nil
		case uint64:
			return float64(x), nil
		case string:
			f, err := strconv.ParseFloat(x, 64)
			if err != nil {
				return nil, fmt.Errorf("column %s: %q is not a number", col.Name, x)
			}
			return f, nil
		}

	case plugin.TypeDate:
		switch x := v.(type) {
		case time.Time:
			return x, nil
		case string:
			t, err := models.ParseTradeDate(x)
			if err != nil {
				return nil, fmt.Errorf("column %s: %w", col.Name, err)
			}
			return t, nil
		}
	}

	return nil, fmt.Errorf("column %s: cannot store %T as %s", col.Name, v, col.Type)
}

func toString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case int64:
		return strconv.FormatInt(x, 10)
	case int:
		return strconv.Itoa(x)
	case bool:
		return strconv.FormatBool(x)
	default:
		return fmt.Sprintf("%v", x)
	}
}
