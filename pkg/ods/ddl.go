package ods

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/Yourdaylight/stock-datasource-sub001/pkg/models"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/plugin"
)

// versionColumn carries the upsert version; the name is reserved and never
// accepted from provider payloads.
const versionColumn = "version"

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

func validIdent(name string) error {
	if !identRe.MatchString(name) {
		return fmt.Errorf("invalid identifier %q", name)
	}
	return nil
}

func quoteIdent(name string) string {
	return "`" + name + "`"
}

func columnDDL(c plugin.Column) string {
	t := string(c.Type)
	if c.Nullable {
		t = fmt.Sprintf("Nullable(%s)", t)
	}
	return fmt.Sprintf("%s %s", quoteIdent(c.Name), t)
}

// createTableSQL renders the plugin's table DDL. Every table gets the
// version column and a ReplacingMergeTree keyed on the declared order key.
func createTableSQL(p *plugin.Plugin) (string, error) {
	if err := validIdent(p.Table); err != nil {
		return "", err
	}

	var cols []string
	for _, c := range p.Schema.Columns {
		if err := validIdent(c.Name); err != nil {
			return "", fmt.Errorf("table %s: %w", p.Table, err)
		}
		if c.Name == versionColumn {
			return "", fmt.Errorf("table %s: column name %q is reserved", p.Table, versionColumn)
		}
		cols = append(cols, columnDDL(c))
	}
	cols = append(cols, fmt.Sprintf("%s UInt64", quoteIdent(versionColumn)))

	orderKeys := make([]string, len(p.Schema.OrderBy))
	for i, key := range p.Schema.OrderBy {
		orderKeys[i] = quoteIdent(key)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "CREATE TABLE IF NOT EXISTS %s (\n\t%s\n)\nENGINE = ReplacingMergeTree(%s)\n",
		quoteIdent(p.Table), strings.Join(cols, ",\n\t"), quoteIdent(versionColumn))
	if p.Schema.PartitionBy != "" {
		fmt.Fprintf(&b, "PARTITION BY %s\n", p.Schema.PartitionBy)
	}
	fmt.Fprintf(&b, "ORDER BY (%s)\nSETTINGS index_granularity = 8192", strings.Join(orderKeys, ", "))
	return b.String(), nil
}

// EnsureTables creates each plugin's table if absent, recording a
// CREATE_TABLE audit entry for tables it actually created.
func EnsureTables(ctx context.Context, conn *Conn, plugins []*plugin.Plugin, audits AuditSink) error {
	logger := slog.With("component", "ods")
	for _, p := range plugins {
		exists, err := tableExists(ctx, conn, p.Table)
		if err != nil {
			return fmt.Errorf("check table %s: %w", p.Table, err)
		}
		if exists {
			continue
		}

		ddl, err := createTableSQL(p)
		if err != nil {
			return err
		}
		if err := conn.Exec(ctx, ddl); err != nil {
			return fmt.Errorf("create table %s: %w", p.Table, err)
		}
		logger.Info("Created ODS table", "table", p.Table, "plugin", p.Name)

		if audits != nil {
			entry := &models.SchemaAudit{
				Table:  p.Table,
				Action: models.SchemaAuditActionCreateTable,
				Reason: fmt.Sprintf("initial table for plugin %s", p.Name),
				At:     time.Now().UTC(),
			}
			if err := audits.Append(ctx, entry); err != nil {
				return fmt.Errorf("audit create of %s: %w", p.Table, err)
			}
		}
	}
	return nil
}

func tableExists(ctx context.Context, conn *Conn, table string) (bool, error) {
	var count uint64
	err := conn.QueryRow(ctx,
		"SELECT count() FROM system.tables WHERE database = currentDatabase() AND name = ?",
		table).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
