package ods

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yourdaylight/stock-datasource-sub001/pkg/plugin"
)

func barPlugin() *plugin.Plugin {
	return &plugin.Plugin{
		Name:  "daily_bar",
		Table: "ods_daily_bar",
		Schema: plugin.TableSchema{
			Columns: []plugin.Column{
				{Name: "ts_code", Type: plugin.TypeString},
				{Name: "trade_date", Type: plugin.TypeDate},
				{Name: "close", Type: plugin.TypeFloat64, Nullable: true},
			},
			OrderBy:     []string{"ts_code", "trade_date"},
			PartitionBy: "toYYYYMM(trade_date)",
		},
	}
}

func TestCreateTableSQL(t *testing.T) {
	ddl, err := createTableSQL(barPlugin())
	require.NoError(t, err)

	assert.Contains(t, ddl, "CREATE TABLE IF NOT EXISTS `ods_daily_bar`")
	assert.Contains(t, ddl, "`ts_code` String")
	assert.Contains(t, ddl, "`trade_date` Date")
	assert.Contains(t, ddl, "`close` Nullable(Float64)")
	assert.Contains(t, ddl, "`version` UInt64")
	assert.Contains(t, ddl, "ENGINE = ReplacingMergeTree(`version`)")
	assert.Contains(t, ddl, "PARTITION BY toYYYYMM(trade_date)")
	assert.Contains(t, ddl, "ORDER BY (`ts_code`, `trade_date`)")
}

func TestCreateTableSQLNoPartition(t *testing.T) {
	p := barPlugin()
	p.Schema.PartitionBy = ""

	ddl, err := createTableSQL(p)
	require.NoError(t, err)
	assert.NotContains(t, ddl, "PARTITION BY")
}

func TestCreateTableSQLRejectsBadIdentifiers(t *testing.T) {
	p := barPlugin()
	p.Table = "ods daily; DROP TABLE x"
	_, err := createTableSQL(p)
	assert.Error(t, err)

	p = barPlugin()
	p.Schema.Columns[0].Name = "ts-code"
	_, err = createTableSQL(p)
	assert.Error(t, err)
}

func TestCreateTableSQLRejectsReservedColumn(t *testing.T) {
	p := barPlugin()
	p.Schema.Columns = append(p.Schema.Columns, plugin.Column{Name: "version", Type: plugin.TypeInt64})

	_, err := createTableSQL(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reserved")
}
