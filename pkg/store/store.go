// Package store defines the persistence interfaces for the platform's
// relational state: batch executions and their sub-tasks, schema audit
// history, plugin runtime settings, and arenas with their children.
// Implementations live in store/memory (tests, ephemeral deployments) and
// store/entstore (PostgreSQL through ent).
package store

import (
	"context"
	"time"

	"github.com/Yourdaylight/stock-datasource-sub001/pkg/models"
)

// ExecutionStore provides access to batch execution records.
type ExecutionStore interface {
	// Create adds a new execution. Returns ErrAlreadyExists if execution_id exists.
	Create(ctx context.Context, exec *models.BatchExecution) error

	// Get retrieves an execution by its ID. Returns ErrNotFound if not exists.
	Get(ctx context.Context, executionID string) (*models.BatchExecution, error)

	// Update persists an execution guarded by its Version. Returns
	// ErrConcurrentModification when the stored version no longer matches
	// the one on the passed struct; on success the Version is advanced.
	Update(ctx context.Context, exec *models.BatchExecution) error

	// List retrieves executions newest first, narrowed by filters. The
	// returned total counts all matches before Limit and Offset apply.
	List(ctx context.Context, filters models.ExecutionFilters) ([]*models.BatchExecution, int, error)

	// ListByStatus retrieves every execution in one of the given states,
	// oldest first.
	ListByStatus(ctx context.Context, statuses ...models.ExecutionStatus) ([]*models.BatchExecution, error)

	// Delete removes an execution by its ID. Returns ErrNotFound if not exists.
	Delete(ctx context.Context, executionID string) error

	// DeleteBefore removes terminal executions started before cutoff and
	// returns their IDs so callers can cascade sub-task deletion.
	// Non-terminal executions are never swept.
	DeleteBefore(ctx context.Context, cutoff time.Time) ([]string, error)
}

// SubTaskStore provides access to the sub-tasks of batch executions.
type SubTaskStore interface {
	// CreateBatch adds all sub-tasks of one decomposition. Fails the entire
	// batch with ErrAlreadyExists if any task_id exists.
	CreateBatch(ctx context.Context, tasks []*models.SubTask) error

	// Get retrieves a sub-task by its ID. Returns ErrNotFound if not exists.
	Get(ctx context.Context, taskID string) (*models.SubTask, error)

	// Update persists a sub-task. Returns ErrNotFound if not exists.
	Update(ctx context.Context, task *models.SubTask) error

	// ListByExecution retrieves all sub-tasks of an execution, ordered by
	// creation time then task ID.
	ListByExecution(ctx context.Context, executionID string) ([]*models.SubTask, error)

	// DeleteByExecution removes every sub-task of an execution and returns
	// how many were removed.
	DeleteByExecution(ctx context.Context, executionID string) (int, error)
}

// SchemaAuditStore provides access to the schema change audit log.
type SchemaAuditStore interface {
	// Append stores an audit entry and assigns its ID.
	Append(ctx context.Context, entry *models.SchemaAudit) error

	// List retrieves audit entries newest first. An empty table selects all
	// tables; limit <= 0 returns everything.
	List(ctx context.Context, table string, limit int) ([]*models.SchemaAudit, error)
}

// PluginSettingStore provides access to persisted plugin runtime overrides.
type PluginSettingStore interface {
	// Put inserts or replaces the setting for a plugin.
	Put(ctx context.Context, setting *models.PluginSetting) error

	// Get retrieves the setting for a plugin. Returns ErrNotFound when no
	// override has been stored.
	Get(ctx context.Context, pluginName string) (*models.PluginSetting, error)

	// List retrieves all stored settings ordered by plugin name.
	List(ctx context.Context) ([]*models.PluginSetting, error)
}

// ArenaStore provides access to arena aggregates. Children are stored
// separately and referenced by arena ID.
type ArenaStore interface {
	// Create adds a new arena. Returns ErrAlreadyExists if arena_id exists.
	Create(ctx context.Context, arena *models.Arena) error

	// Get retrieves an arena by its ID. Returns ErrNotFound if not exists.
	Get(ctx context.Context, arenaID string) (*models.Arena, error)

	// Update persists an arena. Returns ErrNotFound if not exists.
	Update(ctx context.Context, arena *models.Arena) error

	// List retrieves all arenas newest first.
	List(ctx context.Context) ([]*models.Arena, error)

	// Delete removes an arena by its ID. Returns ErrNotFound if not exists.
	Delete(ctx context.Context, arenaID string) error
}

// StrategyStore provides access to competing strategies.
type StrategyStore interface {
	// Create adds a new strategy. Returns ErrAlreadyExists if strategy_id exists.
	Create(ctx context.Context, strategy *models.Strategy) error

	// Get retrieves a strategy by its ID. Returns ErrNotFound if not exists.
	Get(ctx context.Context, strategyID string) (*models.Strategy, error)

	// Update persists a strategy. Returns ErrNotFound if not exists.
	Update(ctx context.Context, strategy *models.Strategy) error

	// ListByArena retrieves all strategies of an arena, ordered by creation
	// time then strategy ID.
	ListByArena(ctx context.Context, arenaID string) ([]*models.Strategy, error)

	// ListActive retrieves the active strategies of an arena, highest score
	// first with ties broken by the better stored rank.
	ListActive(ctx context.Context, arenaID string) ([]*models.Strategy, error)
}

// RoundStore provides access to discussion rounds.
type RoundStore interface {
	// Create adds a new round. Returns ErrAlreadyExists if round_id exists.
	Create(ctx context.Context, round *models.DiscussionRound) error

	// Get retrieves a round by its ID. Returns ErrNotFound if not exists.
	Get(ctx context.Context, roundID string) (*models.DiscussionRound, error)

	// Update persists a round. Returns ErrNotFound if not exists.
	Update(ctx context.Context, round *models.DiscussionRound) error

	// ListByArena retrieves all rounds of an arena ordered by round number.
	ListByArena(ctx context.Context, arenaID string) ([]*models.DiscussionRound, error)
}

// MessageStore provides access to the persisted thinking stream.
type MessageStore interface {
	// Append stores a message. Returns ErrAlreadyExists if its id exists.
	Append(ctx context.Context, msg *models.ThinkingMessage) error

	// ListByArena retrieves messages with Sequence > afterSeq in sequence
	// order, up to limit entries. limit <= 0 returns everything.
	ListByArena(ctx context.Context, arenaID string, afterSeq int64, limit int) ([]*models.ThinkingMessage, error)

	// LastSequence returns the highest sequence stored for an arena, or zero
	// when the arena has no messages.
	LastSequence(ctx context.Context, arenaID string) (int64, error)
}

// EliminationStore provides access to strategy elimination history.
type EliminationStore interface {
	// Append stores an elimination event and assigns its ID.
	Append(ctx context.Context, event *models.EliminationEvent) error

	// ListByArena retrieves all eliminations of an arena, oldest first.
	ListByArena(ctx context.Context, arenaID string) ([]*models.EliminationEvent, error)
}

// ReportStore provides access to evaluation reports.
type ReportStore interface {
	// Create adds a new report. Returns ErrAlreadyExists if its id exists.
	Create(ctx context.Context, report *models.EvaluationReport) error

	// Latest retrieves the most recent report of an arena. Returns
	// ErrNotFound when the arena has none.
	Latest(ctx context.Context, arenaID string) (*models.EvaluationReport, error)

	// ListByArena retrieves all reports of an arena, newest first.
	ListByArena(ctx context.Context, arenaID string) ([]*models.EvaluationReport, error)
}

// Stores bundles every persistence interface the services depend on.
type Stores struct {
	Executions     ExecutionStore
	SubTasks       SubTaskStore
	SchemaAudits   SchemaAuditStore
	PluginSettings PluginSettingStore
	Arenas         ArenaStore
	Strategies     StrategyStore
	Rounds         RoundStore
	Messages       MessageStore
	Eliminations   EliminationStore
	Reports        ReportStore
}
