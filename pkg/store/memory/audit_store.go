package memory

import (
	"context"
	"sync"

	"github.com/Yourdaylight/stock-datasource-sub001/pkg/models"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/store"
)

// SchemaAuditStore is an in-memory implementation of store.SchemaAuditStore.
// Entries are held in append order, so reverse iteration yields newest first.
type SchemaAuditStore struct {
	mu     sync.RWMutex
	data   []*models.SchemaAudit
	nextID int64
}

// NewSchemaAuditStore creates a new in-memory schema audit store.
func NewSchemaAuditStore() *SchemaAuditStore {
	return &SchemaAuditStore{nextID: 1}
}

// Append stores an audit entry and assigns its ID.
func (s *SchemaAuditStore) Append(_ context.Context, entry *models.SchemaAudit) error {
	if entry == nil || entry.Table == "" || entry.Action == "" {
		return store.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := *entry
	c.ID = s.nextID
	s.nextID++
	entry.ID = c.ID
	s.data = append(s.data, &c)
	return nil
}

// List retrieves audit entries newest first. An empty table selects all
// tables; limit <= 0 returns everything.
func (s *SchemaAuditStore) List(_ context.Context, table string, limit int) ([]*models.SchemaAudit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*models.SchemaAudit
	for i := len(s.data) - 1; i >= 0; i-- {
		e := s.data[i]
		if table != "" && e.Table != table {
			continue
		}
		c := *e
		result = append(result, &c)
		if limit > 0 && len(result) == limit {
			break
		}
	}
	return result, nil
}

// Verify interface compliance at compile time.
var _ store.SchemaAuditStore = (*SchemaAuditStore)(nil)
