package ods

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/Yourdaylight/stock-datasource-sub001/pkg/models"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/plugin"
)

// setupTestDB starts a ClickHouse container and returns a verified
// connection plus a cleanup function.
func setupTestDB(t *testing.T) (*Conn, func()) {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "clickhouse/clickhouse-server:24.1-alpine",
		ExposedPorts: []string{"9000/tcp", "8123/tcp"},
		WaitingFor: wait.ForAll(
			wait.ForLog("Application: Ready for connections").
				WithStartupTimeout(60*time.Second),
			wait.ForListeningPort("9000/tcp"),
		),
		Env: map[string]string{
			"CLICKHOUSE_DB":       "test",
			"CLICKHOUSE_USER":     "default",
			"CLICKHOUSE_PASSWORD": "",
		},
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "9000")
	require.NoError(t, err)

	conn, err := NewConn(ctx, fmt.Sprintf("clickhouse://%s:%s/test", host, port.Port()))
	require.NoError(t, err)

	cleanup := func() {
		conn.Close()
		_ = container.Terminate(ctx)
	}
	return conn, cleanup
}

// memAuditSink collects audit entries in memory.
type memAuditSink struct {
	entries []*models.SchemaAudit
}

func (s *memAuditSink) Append(ctx context.Context, entry *models.SchemaAudit) error {
	s.entries = append(s.entries, entry)
	return nil
}

func (s *memAuditSink) actions() []models.SchemaAuditAction {
	out := make([]models.SchemaAuditAction, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.Action
	}
	return out
}

func testBarPlugin() *plugin.Plugin {
	return &plugin.Plugin{
		Name:  "daily_bar",
		Table: DailyBarTable,
		Schema: plugin.TableSchema{
			Columns: []plugin.Column{
				{Name: "ts_code", Type: plugin.TypeString},
				{Name: "trade_date", Type: plugin.TypeDate},
				{Name: "close", Type: plugin.TypeFloat64, Nullable: true},
				{Name: "vol", Type: plugin.TypeInt64, Nullable: true},
			},
			OrderBy:     []string{"ts_code", "trade_date"},
			PartitionBy: "toYYYYMM(trade_date)",
		},
	}
}

func testCalendarPlugin() *plugin.Plugin {
	return &plugin.Plugin{
		Name:  "trade_calendar",
		Table: TradeCalendarTable,
		Schema: plugin.TableSchema{
			Columns: []plugin.Column{
				{Name: "exchange", Type: plugin.TypeString},
				{Name: "cal_date", Type: plugin.TypeDate},
				{Name: "is_open", Type: plugin.TypeInt64},
			},
			OrderBy:     []string{"exchange", "cal_date"},
			PartitionBy: "toYYYYMM(cal_date)",
		},
	}
}

func TestWarehouseIntegration(t *testing.T) {
	conn, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	audits := &memAuditSink{}
	wh := NewWarehouse(conn, audits)
	bar := testBarPlugin()
	calendar := testCalendarPlugin()

	t.Run("ensure tables", func(t *testing.T) {
		require.NoError(t, EnsureTables(ctx, conn, []*plugin.Plugin{bar, calendar}, audits))
		assert.Equal(t, []models.SchemaAuditAction{
			models.SchemaAuditActionCreateTable,
			models.SchemaAuditActionCreateTable,
		}, audits.actions())

		// Re-running must not recreate or re-audit.
		require.NoError(t, EnsureTables(ctx, conn, []*plugin.Plugin{bar, calendar}, audits))
		assert.Len(t, audits.entries, 2)
	})

	t.Run("load and read back", func(t *testing.T) {
		batch := &plugin.Batch{
			Fields: []string{"ts_code", "trade_date", "close", "vol"},
			Records: []map[string]any{
				{"ts_code": "600519.SH", "trade_date": "20260819", "close": 1690.0, "vol": float64(100)},
				{"ts_code": "600519.SH", "trade_date": "20260820", "close": 1700.5, "vol": float64(120)},
			},
		}
		cols, err := wh.Sync.Sync(ctx, bar, batch)
		require.NoError(t, err)
		n, err := wh.Loader.Load(ctx, bar.Table, cols, batch)
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		dates, err := wh.Reader.PresentDates(ctx, bar.Table, "trade_date")
		require.NoError(t, err)
		assert.Equal(t, []string{"20260819", "20260820"}, dates)

		has, err := wh.Reader.HasDate(ctx, bar.Table, "trade_date", "20260820")
		require.NoError(t, err)
		assert.True(t, has)
		has, err = wh.Reader.HasDate(ctx, bar.Table, "trade_date", "20260821")
		require.NoError(t, err)
		assert.False(t, has)

		latest, err := wh.Reader.LatestDate(ctx, bar.Table, "trade_date")
		require.NoError(t, err)
		assert.Equal(t, "20260820", latest)
	})

	t.Run("versioned overwrite wins on read", func(t *testing.T) {
		batch := &plugin.Batch{
			Fields: []string{"ts_code", "trade_date", "close", "vol"},
			Records: []map[string]any{
				{"ts_code": "600519.SH", "trade_date": "20260820", "close": 1711.0, "vol": float64(140)},
			},
		}
		cols, err := wh.Sync.Sync(ctx, bar, batch)
		require.NoError(t, err)
		_, err = wh.Loader.Load(ctx, bar.Table, cols, batch)
		require.NoError(t, err)

		bars, err := wh.Reader.DailyBars(ctx, "600519.SH", "20260820", "20260820")
		require.NoError(t, err)
		require.Len(t, bars, 1, "FINAL deduplicates to one row per order key")
		assert.Equal(t, 1711.0, bars[0].Close, "last version wins")
	})

	t.Run("sync adds new columns", func(t *testing.T) {
		before := len(audits.entries)
		batch := &plugin.Batch{
			Fields: []string{"ts_code", "trade_date", "close", "vol", "turnover"},
			Records: []map[string]any{
				{"ts_code": "600519.SH", "trade_date": "20260821", "close": 1712.0, "vol": float64(90), "turnover": 0.35},
			},
		}
		cols, err := wh.Sync.Sync(ctx, bar, batch)
		require.NoError(t, err)
		require.Len(t, cols, 5)

		require.Len(t, audits.entries, before+1)
		added := audits.entries[before]
		assert.Equal(t, models.SchemaAuditActionAddColumn, added.Action)
		assert.Equal(t, "turnover", added.Column)
		assert.Equal(t, "Float64", added.NewType)

		_, err = wh.Loader.Load(ctx, bar.Table, cols, batch)
		require.NoError(t, err)

		// Same shape again is a no-op with no fresh audit rows.
		_, err = wh.Sync.Sync(ctx, bar, batch)
		require.NoError(t, err)
		assert.Len(t, audits.entries, before+1)
	})

	t.Run("sync widens int to float", func(t *testing.T) {
		before := len(audits.entries)
		batch := &plugin.Batch{
			Fields: []string{"ts_code", "trade_date", "vol"},
			Records: []map[string]any{
				{"ts_code": "600519.SH", "trade_date": "20260822", "vol": 90.5},
			},
		}
		cols, err := wh.Sync.Sync(ctx, bar, batch)
		require.NoError(t, err)

		require.Len(t, audits.entries, before+1)
		widened := audits.entries[before]
		assert.Equal(t, models.SchemaAuditActionWidenType, widened.Action)
		assert.Equal(t, "vol", widened.Column)
		assert.Equal(t, "Int64", widened.OldType)
		assert.Equal(t, "Float64", widened.NewType)

		_, err = wh.Loader.Load(ctx, bar.Table, cols, batch)
		require.NoError(t, err)
	})

	t.Run("widening an order key fails", func(t *testing.T) {
		before := len(audits.entries)
		batch := &plugin.Batch{
			Fields: []string{"ts_code", "trade_date"},
			Records: []map[string]any{
				{"ts_code": "600519.SH", "trade_date": 20260823.0},
			},
		}
		_, err := wh.Sync.Sync(ctx, bar, batch)
		require.ErrorIs(t, err, ErrWidenTypeFailed)

		require.Len(t, audits.entries, before+1)
		failed := audits.entries[before]
		assert.Equal(t, models.SchemaAuditActionWidenTypeFailed, failed.Action)
		assert.Equal(t, "trade_date", failed.Column)
	})

	t.Run("trade calendar source", func(t *testing.T) {
		batch := &plugin.Batch{
			Fields: []string{"exchange", "cal_date", "is_open"},
			Records: []map[string]any{
				{"exchange": "SSE", "cal_date": "20260820", "is_open": float64(1)},
				{"exchange": "SSE", "cal_date": "20260821", "is_open": float64(1)},
				{"exchange": "SSE", "cal_date": "20260822", "is_open": float64(0)},
			},
		}
		cols, err := wh.Sync.Sync(ctx, calendar, batch)
		require.NoError(t, err)
		_, err = wh.Loader.Load(ctx, calendar.Table, cols, batch)
		require.NoError(t, err)

		days, err := wh.Reader.TradingDays(ctx, "SSE", "20260820", "20260822")
		require.NoError(t, err)
		require.Len(t, days, 3)
		assert.True(t, days[0].IsOpen)
		assert.Equal(t, "20260822", days[2].CalDate)
		assert.False(t, days[2].IsOpen)
	})
}
