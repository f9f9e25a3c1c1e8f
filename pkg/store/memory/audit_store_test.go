package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yourdaylight/stock-datasource-sub001/pkg/models"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/store"
)

func TestSchemaAuditStore_AppendAssignsIDs(t *testing.T) {
	s := NewSchemaAuditStore()
	ctx := context.Background()
	at := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)

	first := &models.SchemaAudit{Table: "ods_daily_bar", Column: "turnover", Action: models.SchemaAuditActionAddColumn, At: at}
	require.NoError(t, s.Append(ctx, first))
	assert.Equal(t, int64(1), first.ID)

	second := &models.SchemaAudit{Table: "ods_daily_bar", Column: "vol", Action: models.SchemaAuditActionWidenType, OldType: "Int64", NewType: "Float64", At: at}
	require.NoError(t, s.Append(ctx, second))
	assert.Equal(t, int64(2), second.ID)
}

func TestSchemaAuditStore_ListNewestFirst(t *testing.T) {
	s := NewSchemaAuditStore()
	ctx := context.Background()
	at := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)

	entries := []*models.SchemaAudit{
		{Table: "ods_daily_bar", Action: models.SchemaAuditActionCreateTable, At: at},
		{Table: "ods_stock_basic", Action: models.SchemaAuditActionCreateTable, At: at},
		{Table: "ods_daily_bar", Column: "amount", Action: models.SchemaAuditActionAddColumn, At: at.Add(time.Minute)},
	}
	for _, e := range entries {
		require.NoError(t, s.Append(ctx, e))
	}

	all, err := s.List(ctx, "", 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, int64(3), all[0].ID, "newest first")

	barOnly, err := s.List(ctx, "ods_daily_bar", 0)
	require.NoError(t, err)
	require.Len(t, barOnly, 2)
	assert.Equal(t, models.SchemaAuditActionAddColumn, barOnly[0].Action)

	limited, err := s.List(ctx, "", 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, int64(3), limited[0].ID)
}

func TestSchemaAuditStore_InvalidInput(t *testing.T) {
	s := NewSchemaAuditStore()

	err := s.Append(context.Background(), &models.SchemaAudit{Column: "x"})
	assert.ErrorIs(t, err, store.ErrInvalidInput)
}
