// Package entstore provides PostgreSQL-backed implementations of the store
// interfaces through the Ent client. Rows convert to and from the shared
// models at the boundary, so callers never see Ent types.
//
// Writes run on a short detached context: a caller disconnecting mid-request
// must not abort a half-applied state change.
package entstore

import (
	"context"
	"time"

	"github.com/Yourdaylight/stock-datasource-sub001/ent"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/store"
)

const writeTimeout = 5 * time.Second

// NewStores creates the full set of Ent-backed stores on one client.
func NewStores(client *ent.Client) *store.Stores {
	return &store.Stores{
		Executions:     NewExecutionStore(client),
		SubTasks:       NewSubTaskStore(client),
		SchemaAudits:   NewSchemaAuditStore(client),
		PluginSettings: NewPluginSettingStore(client),
		Arenas:         NewArenaStore(client),
		Strategies:     NewStrategyStore(client),
		Rounds:         NewRoundStore(client),
		Messages:       NewMessageStore(client),
		Eliminations:   NewEliminationStore(client),
		Reports:        NewReportStore(client),
	}
}

// writeCtx returns a context for a store write, detached from the caller.
func writeCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), writeTimeout)
}
