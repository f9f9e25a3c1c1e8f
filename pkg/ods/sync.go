package ods

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/Yourdaylight/stock-datasource-sub001/pkg/models"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/plugin"
)

// ErrWidenTypeFailed indicates a column needed a widening the table cannot
// perform. SubTasks hitting this fail, and so does their execution.
var ErrWidenTypeFailed = errors.New("column type widening failed")

// AuditSink records schema synchronizer decisions.
type AuditSink interface {
	Append(ctx context.Context, entry *models.SchemaAudit) error
}

// Synchronizer reconciles a batch's sampled shape against the live table
// before the first write of a SubTask. DDL per table is serialized by a
// per-table lock.
type Synchronizer struct {
	conn   *Conn
	audits AuditSink
	logger *slog.Logger
	now    func() time.Time

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewSynchronizer builds a synchronizer writing audit entries to audits.
func NewSynchronizer(conn *Conn, audits AuditSink) *Synchronizer {
	return &Synchronizer{
		conn:   conn,
		audits: audits,
		logger: slog.With("component", "schema_sync"),
		now:    time.Now,
		locks:  make(map[string]*sync.Mutex),
	}
}

func (s *Synchronizer) tableLock(table string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[table]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[table] = lock
	}
	return lock
}

// Sync brings the live table up to the batch's sampled shape: new fields
// become nullable columns, narrower columns widen. It returns the effective
// column definitions for the batch's fields, in batch order, ready for the
// loader.
func (s *Synchronizer) Sync(ctx context.Context, p *plugin.Plugin, batch *plugin.Batch) ([]plugin.Column, error) {
	lock := s.tableLock(p.Table)
	lock.Lock()
	defer lock.Unlock()

	live, err := s.liveColumns(ctx, p.Table)
	if err != nil {
		return nil, fmt.Errorf("read live schema of %s: %w", p.Table, err)
	}

	for _, inferred := range InferColumns(batch) {
		current, ok := live[inferred.Name]
		if !ok {
			if err := s.addColumn(ctx, p.Table, inferred); err != nil {
				return nil, err
			}
			live[inferred.Name] = inferred
			continue
		}

		target, needed := widenTarget(current.Type, inferred.Type)
		if !needed {
			continue
		}
		widened, err := s.widenColumn(ctx, p, current, target)
		if err != nil {
			return nil, err
		}
		live[current.Name] = widened
	}

	cols := make([]plugin.Column, 0, len(batch.Fields))
	for _, field := range batch.Fields {
		if field == versionColumn {
			continue
		}
		cols = append(cols, live[field])
	}
	return cols, nil
}

// liveColumns reads the table's current columns, minus the version column.
func (s *Synchronizer) liveColumns(ctx context.Context, table string) (map[string]plugin.Column, error) {
	rows, err := s.conn.Query(ctx,
		"SELECT name, type FROM system.columns WHERE database = currentDatabase() AND table = ?",
		table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	live := make(map[string]plugin.Column)
	for rows.Next() {
		var name, chType string
		if err := rows.Scan(&name, &chType); err != nil {
			return nil, fmt.Errorf("scan column row: %w", err)
		}
		if name == versionColumn {
			continue
		}
		t, nullable := parseColumnType(chType)
		live[name] = plugin.Column{Name: name, Type: t, Nullable: nullable}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate column rows: %w", err)
	}
	if len(live) == 0 {
		return nil, fmt.Errorf("table %s does not exist", table)
	}
	return live, nil
}

func (s *Synchronizer) addColumn(ctx context.Context, table string, col plugin.Column) error {
	if err := validIdent(col.Name); err != nil {
		return fmt.Errorf("table %s: %w", table, err)
	}

	ddl := fmt.Sprintf("ALTER TABLE %s ADD COLUMN IF NOT EXISTS %s", quoteIdent(table), columnDDL(col))
	if err := s.conn.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("add column %s.%s: %w", table, col.Name, err)
	}
	s.logger.Info("Added ODS column", "table", table, "column", col.Name, "type", col.Type)

	return s.audit(ctx, &models.SchemaAudit{
		Table:   table,
		Column:  col.Name,
		Action:  models.SchemaAuditActionAddColumn,
		NewType: string(col.Type),
		Reason:  "new field observed in payload",
	})
}

func (s *Synchronizer) widenColumn(ctx context.Context, p *plugin.Plugin, current plugin.Column, target plugin.ColumnType) (plugin.Column, error) {
	// Order-key columns cannot be retyped in place.
	if slices.Contains(p.Schema.OrderBy, current.Name) {
		auditErr := s.audit(ctx, &models.SchemaAudit{
			Table:   p.Table,
			Column:  current.Name,
			Action:  models.SchemaAuditActionWidenTypeFailed,
			OldType: string(current.Type),
			NewType: string(target),
			Reason:  "column is part of the table order key",
		})
		if auditErr != nil {
			return plugin.Column{}, auditErr
		}
		return plugin.Column{}, fmt.Errorf("%w: %s.%s is an order-key column (%s -> %s)",
			ErrWidenTypeFailed, p.Table, current.Name, current.Type, target)
	}

	widened := plugin.Column{Name: current.Name, Type: target, Nullable: current.Nullable}
	ddl := fmt.Sprintf("ALTER TABLE %s MODIFY COLUMN %s", quoteIdent(p.Table), columnDDL(widened))
	if err := s.conn.Exec(ctx, ddl); err != nil {
		auditErr := s.audit(ctx, &models.SchemaAudit{
			Table:   p.Table,
			Column:  current.Name,
			Action:  models.SchemaAuditActionWidenTypeFailed,
			OldType: string(current.Type),
			NewType: string(target),
			Reason:  err.Error(),
		})
		if auditErr != nil {
			return plugin.Column{}, auditErr
		}
		return plugin.Column{}, fmt.Errorf("%w: %s.%s %s -> %s: %v",
			ErrWidenTypeFailed, p.Table, current.Name, current.Type, target, err)
	}
	s.logger.Info("Widened ODS column",
		"table", p.Table, "column", current.Name, "from", current.Type, "to", target)

	if err := s.audit(ctx, &models.SchemaAudit{
		Table:   p.Table,
		Column:  current.Name,
		Action:  models.SchemaAuditActionWidenType,
		OldType: string(current.Type),
		NewType: string(target),
		Reason:  "payload sample wider than column type",
	}); err != nil {
		return plugin.Column{}, err
	}
	return widened, nil
}

func (s *Synchronizer) audit(ctx context.Context, entry *models.SchemaAudit) error {
	if s.audits == nil {
		return nil
	}
	entry.At = s.now().UTC()
	if err := s.audits.Append(ctx, entry); err != nil {
		return fmt.Errorf("append schema audit: %w", err)
	}
	return nil
}
