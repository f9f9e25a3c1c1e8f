// Package memory provides in-memory implementations of the store
// interfaces. Every store holds copies of the values it is given and
// returns copies to callers, so the stores are safe for concurrent use
// and callers can never mutate stored state through retained pointers.
package memory

import "github.com/Yourdaylight/stock-datasource-sub001/pkg/store"

// NewStores creates the full set of in-memory stores.
func NewStores() *store.Stores {
	return &store.Stores{
		Executions:     NewExecutionStore(),
		SubTasks:       NewSubTaskStore(),
		SchemaAudits:   NewSchemaAuditStore(),
		PluginSettings: NewPluginSettingStore(),
		Arenas:         NewArenaStore(),
		Strategies:     NewStrategyStore(),
		Rounds:         NewRoundStore(),
		Messages:       NewMessageStore(),
		Eliminations:   NewEliminationStore(),
		Reports:        NewReportStore(),
	}
}
