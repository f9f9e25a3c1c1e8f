package entstore

import (
	"context"
	"fmt"

	"github.com/Yourdaylight/stock-datasource-sub001/ent"
	"github.com/Yourdaylight/stock-datasource-sub001/ent/schemaaudit"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/models"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/store"
)

// SchemaAuditStore is an Ent-backed implementation of store.SchemaAuditStore.
type SchemaAuditStore struct {
	client *ent.Client
}

// NewSchemaAuditStore creates a new schema audit store on the given client.
func NewSchemaAuditStore(client *ent.Client) *SchemaAuditStore {
	return &SchemaAuditStore{client: client}
}

// Append stores an audit entry and assigns its ID.
func (s *SchemaAuditStore) Append(_ context.Context, entry *models.SchemaAudit) error {
	if entry == nil || entry.Table == "" || entry.Action == "" {
		return store.ErrInvalidInput
	}

	ctx, cancel := writeCtx()
	defer cancel()

	row, err := s.client.SchemaAudit.Create().
		SetTableName(entry.Table).
		SetColumnName(entry.Column).
		SetAction(string(entry.Action)).
		SetOldType(entry.OldType).
		SetNewType(entry.NewType).
		SetReason(entry.Reason).
		SetCreatedAt(entry.At).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to append schema audit: %w", err)
	}

	entry.ID = row.ID
	return nil
}

// List retrieves audit entries newest first. An empty table selects all
// tables; limit <= 0 returns everything.
func (s *SchemaAuditStore) List(ctx context.Context, table string, limit int) ([]*models.SchemaAudit, error) {
	query := s.client.SchemaAudit.Query()
	if table != "" {
		query = query.Where(schemaaudit.TableNameEQ(table))
	}
	query = query.Order(
		ent.Desc(schemaaudit.FieldCreatedAt),
		ent.Desc(schemaaudit.FieldID),
	)
	if limit > 0 {
		query = query.Limit(limit)
	}

	rows, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list schema audits: %w", err)
	}

	result := make([]*models.SchemaAudit, 0, len(rows))
	for _, row := range rows {
		result = append(result, auditFromRow(row))
	}
	return result, nil
}

func auditFromRow(row *ent.SchemaAudit) *models.SchemaAudit {
	return &models.SchemaAudit{
		ID:      row.ID,
		Table:   row.TableName,
		Column:  row.ColumnName,
		Action:  models.SchemaAuditAction(row.Action),
		OldType: row.OldType,
		NewType: row.NewType,
		Reason:  row.Reason,
		At:      row.CreatedAt,
	}
}

// Verify interface compliance at compile time.
var _ store.SchemaAuditStore = (*SchemaAuditStore)(nil)
