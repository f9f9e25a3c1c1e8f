// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Yourdaylight/stock-datasource-sub001/ent/arena"
	"github.com/Yourdaylight/stock-datasource-sub001/ent/batchexecution"
	"github.com/Yourdaylight/stock-datasource-sub001/ent/discussionround"
	"github.com/Yourdaylight/stock-datasource-sub001/ent/eliminationevent"
	"github.com/Yourdaylight/stock-datasource-sub001/ent/evaluationreport"
	"github.com/Yourdaylight/stock-datasource-sub001/ent/pluginsetting"
	"github.com/Yourdaylight/stock-datasource-sub001/ent/predicate"
	"github.com/Yourdaylight/stock-datasource-sub001/ent/schemaaudit"
	"github.com/Yourdaylight/stock-datasource-sub001/ent/strategy"
	"github.com/Yourdaylight/stock-datasource-sub001/ent/subtask"
	"github.com/Yourdaylight/stock-datasource-sub001/ent/thinkingmessage"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/models"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeArena            = "Arena"
	TypeBatchExecution   = "BatchExecution"
	TypeDiscussionRound  = "DiscussionRound"
	TypeEliminationEvent = "EliminationEvent"
	TypeEvaluationReport = "EvaluationReport"
	TypePluginSetting    = "PluginSetting"
	TypeSchemaAudit      = "SchemaAudit"
	TypeStrategy         = "Strategy"
	TypeSubTask          = "SubTask"
	TypeThinkingMessage  = "ThinkingMessage"
)

// ArenaMutation represents an operation that mutates the Arena nodes in the graph.
type ArenaMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	name                *string
	_config             *models.ArenaConfig
	state               *arena.State
	resume_state        *arena.ResumeState
	rounds_completed    *int
	addrounds_completed *int
	evaluations_run     *int
	addevaluations_run  *int
	last_error          *string
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	strategies          map[string]struct{}
	removedstrategies   map[string]struct{}
	clearedstrategies   bool
	rounds              map[string]struct{}
	removedrounds       map[string]struct{}
	clearedrounds       bool
	messages            map[string]struct{}
	removedmessages     map[string]struct{}
	clearedmessages     bool
	eliminations        map[int64]struct{}
	removedeliminations map[int64]struct{}
	clearedeliminations bool
	reports             map[string]struct{}
	removedreports      map[string]struct{}
	clearedreports      bool
	done                bool
	oldValue            func(context.Context) (*Arena, error)
	predicates          []predicate.Arena
}

var _ ent.Mutation = (*ArenaMutation)(nil)

// arenaOption allows management of the mutation configuration using functional options.
type arenaOption func(*ArenaMutation)

// newArenaMutation creates new mutation for the Arena entity.
func newArenaMutation(c config, op Op, opts ...arenaOption) *ArenaMutation {
	m := &ArenaMutation{
		config:        c,
		op:            op,
		typ:           TypeArena,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withArenaID sets the ID field of the mutation.
func withArenaID(id string) arenaOption {
	return func(m *ArenaMutation) {
		var (
			err   error
			once  sync.Once
			value *Arena
		)
		m.oldValue = func(ctx context.Context) (*Arena, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Arena.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withArena sets the old Arena of the mutation.
func withArena(node *Arena) arenaOption {
	return func(m *ArenaMutation) {
		m.oldValue = func(context.Context) (*Arena, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ArenaMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ArenaMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Arena entities.
func (m *ArenaMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ArenaMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ArenaMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Arena.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *ArenaMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ArenaMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Arena entity.
// If the Arena object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArenaMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ArenaMutation) ResetName() {
	m.name = nil
}

// SetConfig sets the "config" field.
func (m *ArenaMutation) SetConfig(mc models.ArenaConfig) {
	m._config = &mc
}

// Config returns the value of the "config" field in the mutation.
func (m *ArenaMutation) Config() (r models.ArenaConfig, exists bool) {
	v := m._config
	if v == nil {
		return
	}
	return *v, true
}

// OldConfig returns the old "config" field's value of the Arena entity.
// If the Arena object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArenaMutation) OldConfig(ctx context.Context) (v models.ArenaConfig, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfig: %w", err)
	}
	return oldValue.Config, nil
}

// ResetConfig resets all changes to the "config" field.
func (m *ArenaMutation) ResetConfig() {
	m._config = nil
}

// SetState sets the "state" field.
func (m *ArenaMutation) SetState(a arena.State) {
	m.state = &a
}

// State returns the value of the "state" field in the mutation.
func (m *ArenaMutation) State() (r arena.State, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the Arena entity.
// If the Arena object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArenaMutation) OldState(ctx context.Context) (v arena.State, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *ArenaMutation) ResetState() {
	m.state = nil
}

// SetResumeState sets the "resume_state" field.
func (m *ArenaMutation) SetResumeState(as arena.ResumeState) {
	m.resume_state = &as
}

// ResumeState returns the value of the "resume_state" field in the mutation.
func (m *ArenaMutation) ResumeState() (r arena.ResumeState, exists bool) {
	v := m.resume_state
	if v == nil {
		return
	}
	return *v, true
}

// OldResumeState returns the old "resume_state" field's value of the Arena entity.
// If the Arena object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArenaMutation) OldResumeState(ctx context.Context) (v *arena.ResumeState, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResumeState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResumeState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResumeState: %w", err)
	}
	return oldValue.ResumeState, nil
}

// ClearResumeState clears the value of the "resume_state" field.
func (m *ArenaMutation) ClearResumeState() {
	m.resume_state = nil
	m.clearedFields[arena.FieldResumeState] = struct{}{}
}

// ResumeStateCleared returns if the "resume_state" field was cleared in this mutation.
func (m *ArenaMutation) ResumeStateCleared() bool {
	_, ok := m.clearedFields[arena.FieldResumeState]
	return ok
}

// ResetResumeState resets all changes to the "resume_state" field.
func (m *ArenaMutation) ResetResumeState() {
	m.resume_state = nil
	delete(m.clearedFields, arena.FieldResumeState)
}

// SetRoundsCompleted sets the "rounds_completed" field.
func (m *ArenaMutation) SetRoundsCompleted(i int) {
	m.rounds_completed = &i
	m.addrounds_completed = nil
}

// RoundsCompleted returns the value of the "rounds_completed" field in the mutation.
func (m *ArenaMutation) RoundsCompleted() (r int, exists bool) {
	v := m.rounds_completed
	if v == nil {
		return
	}
	return *v, true
}

// OldRoundsCompleted returns the old "rounds_completed" field's value of the Arena entity.
// If the Arena object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArenaMutation) OldRoundsCompleted(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoundsCompleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoundsCompleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoundsCompleted: %w", err)
	}
	return oldValue.RoundsCompleted, nil
}

// AddRoundsCompleted adds i to the "rounds_completed" field.
func (m *ArenaMutation) AddRoundsCompleted(i int) {
	if m.addrounds_completed != nil {
		*m.addrounds_completed += i
	} else {
		m.addrounds_completed = &i
	}
}

// AddedRoundsCompleted returns the value that was added to the "rounds_completed" field in this mutation.
func (m *ArenaMutation) AddedRoundsCompleted() (r int, exists bool) {
	v := m.addrounds_completed
	if v == nil {
		return
	}
	return *v, true
}

// ResetRoundsCompleted resets all changes to the "rounds_completed" field.
func (m *ArenaMutation) ResetRoundsCompleted() {
	m.rounds_completed = nil
	m.addrounds_completed = nil
}

// SetEvaluationsRun sets the "evaluations_run" field.
func (m *ArenaMutation) SetEvaluationsRun(i int) {
	m.evaluations_run = &i
	m.addevaluations_run = nil
}

// EvaluationsRun returns the value of the "evaluations_run" field in the mutation.
func (m *ArenaMutation) EvaluationsRun() (r int, exists bool) {
	v := m.evaluations_run
	if v == nil {
		return
	}
	return *v, true
}

// OldEvaluationsRun returns the old "evaluations_run" field's value of the Arena entity.
// If the Arena object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArenaMutation) OldEvaluationsRun(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvaluationsRun is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvaluationsRun requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvaluationsRun: %w", err)
	}
	return oldValue.EvaluationsRun, nil
}

// AddEvaluationsRun adds i to the "evaluations_run" field.
func (m *ArenaMutation) AddEvaluationsRun(i int) {
	if m.addevaluations_run != nil {
		*m.addevaluations_run += i
	} else {
		m.addevaluations_run = &i
	}
}

// AddedEvaluationsRun returns the value that was added to the "evaluations_run" field in this mutation.
func (m *ArenaMutation) AddedEvaluationsRun() (r int, exists bool) {
	v := m.addevaluations_run
	if v == nil {
		return
	}
	return *v, true
}

// ResetEvaluationsRun resets all changes to the "evaluations_run" field.
func (m *ArenaMutation) ResetEvaluationsRun() {
	m.evaluations_run = nil
	m.addevaluations_run = nil
}

// SetLastError sets the "last_error" field.
func (m *ArenaMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *ArenaMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the Arena entity.
// If the Arena object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArenaMutation) OldLastError(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ClearLastError clears the value of the "last_error" field.
func (m *ArenaMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[arena.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *ArenaMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[arena.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *ArenaMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, arena.FieldLastError)
}

// SetCreatedAt sets the "created_at" field.
func (m *ArenaMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ArenaMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Arena entity.
// If the Arena object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArenaMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ArenaMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ArenaMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ArenaMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Arena entity.
// If the Arena object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArenaMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ArenaMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddStrategyIDs adds the "strategies" edge to the Strategy entity by ids.
func (m *ArenaMutation) AddStrategyIDs(ids ...string) {
	if m.strategies == nil {
		m.strategies = make(map[string]struct{})
	}
	for i := range ids {
		m.strategies[ids[i]] = struct{}{}
	}
}

// ClearStrategies clears the "strategies" edge to the Strategy entity.
func (m *ArenaMutation) ClearStrategies() {
	m.clearedstrategies = true
}

// StrategiesCleared reports if the "strategies" edge to the Strategy entity was cleared.
func (m *ArenaMutation) StrategiesCleared() bool {
	return m.clearedstrategies
}

// RemoveStrategyIDs removes the "strategies" edge to the Strategy entity by IDs.
func (m *ArenaMutation) RemoveStrategyIDs(ids ...string) {
	if m.removedstrategies == nil {
		m.removedstrategies = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.strategies, ids[i])
		m.removedstrategies[ids[i]] = struct{}{}
	}
}

// RemovedStrategies returns the removed IDs of the "strategies" edge to the Strategy entity.
func (m *ArenaMutation) RemovedStrategiesIDs() (ids []string) {
	for id := range m.removedstrategies {
		ids = append(ids, id)
	}
	return
}

// StrategiesIDs returns the "strategies" edge IDs in the mutation.
func (m *ArenaMutation) StrategiesIDs() (ids []string) {
	for id := range m.strategies {
		ids = append(ids, id)
	}
	return
}

// ResetStrategies resets all changes to the "strategies" edge.
func (m *ArenaMutation) ResetStrategies() {
	m.strategies = nil
	m.clearedstrategies = false
	m.removedstrategies = nil
}

// AddRoundIDs adds the "rounds" edge to the DiscussionRound entity by ids.
func (m *ArenaMutation) AddRoundIDs(ids ...string) {
	if m.rounds == nil {
		m.rounds = make(map[string]struct{})
	}
	for i := range ids {
		m.rounds[ids[i]] = struct{}{}
	}
}

// ClearRounds clears the "rounds" edge to the DiscussionRound entity.
func (m *ArenaMutation) ClearRounds() {
	m.clearedrounds = true
}

// RoundsCleared reports if the "rounds" edge to the DiscussionRound entity was cleared.
func (m *ArenaMutation) RoundsCleared() bool {
	return m.clearedrounds
}

// RemoveRoundIDs removes the "rounds" edge to the DiscussionRound entity by IDs.
func (m *ArenaMutation) RemoveRoundIDs(ids ...string) {
	if m.removedrounds == nil {
		m.removedrounds = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.rounds, ids[i])
		m.removedrounds[ids[i]] = struct{}{}
	}
}

// RemovedRounds returns the removed IDs of the "rounds" edge to the DiscussionRound entity.
func (m *ArenaMutation) RemovedRoundsIDs() (ids []string) {
	for id := range m.removedrounds {
		ids = append(ids, id)
	}
	return
}

// RoundsIDs returns the "rounds" edge IDs in the mutation.
func (m *ArenaMutation) RoundsIDs() (ids []string) {
	for id := range m.rounds {
		ids = append(ids, id)
	}
	return
}

// ResetRounds resets all changes to the "rounds" edge.
func (m *ArenaMutation) ResetRounds() {
	m.rounds = nil
	m.clearedrounds = false
	m.removedrounds = nil
}

// AddMessageIDs adds the "messages" edge to the ThinkingMessage entity by ids.
func (m *ArenaMutation) AddMessageIDs(ids ...string) {
	if m.messages == nil {
		m.messages = make(map[string]struct{})
	}
	for i := range ids {
		m.messages[ids[i]] = struct{}{}
	}
}

// ClearMessages clears the "messages" edge to the ThinkingMessage entity.
func (m *ArenaMutation) ClearMessages() {
	m.clearedmessages = true
}

// MessagesCleared reports if the "messages" edge to the ThinkingMessage entity was cleared.
func (m *ArenaMutation) MessagesCleared() bool {
	return m.clearedmessages
}

// RemoveMessageIDs removes the "messages" edge to the ThinkingMessage entity by IDs.
func (m *ArenaMutation) RemoveMessageIDs(ids ...string) {
	if m.removedmessages == nil {
		m.removedmessages = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.messages, ids[i])
		m.removedmessages[ids[i]] = struct{}{}
	}
}

// RemovedMessages returns the removed IDs of the "messages" edge to the ThinkingMessage entity.
func (m *ArenaMutation) RemovedMessagesIDs() (ids []string) {
	for id := range m.removedmessages {
		ids = append(ids, id)
	}
	return
}

// MessagesIDs returns the "messages" edge IDs in the mutation.
func (m *ArenaMutation) MessagesIDs() (ids []string) {
	for id := range m.messages {
		ids = append(ids, id)
	}
	return
}

// ResetMessages resets all changes to the "messages" edge.
func (m *ArenaMutation) ResetMessages() {
	m.messages = nil
	m.clearedmessages = false
	m.removedmessages = nil
}

// AddEliminationIDs adds the "eliminations" edge to the EliminationEvent entity by ids.
func (m *ArenaMutation) AddEliminationIDs(ids ...int64) {
	if m.eliminations == nil {
		m.eliminations = make(map[int64]struct{})
	}
	for i := range ids {
		m.eliminations[ids[i]] = struct{}{}
	}
}

// ClearEliminations clears the "eliminations" edge to the EliminationEvent entity.
func (m *ArenaMutation) ClearEliminations() {
	m.clearedeliminations = true
}

// EliminationsCleared reports if the "eliminations" edge to the EliminationEvent entity was cleared.
func (m *ArenaMutation) EliminationsCleared() bool {
	return m.clearedeliminations
}

// RemoveEliminationIDs removes the "eliminations" edge to the EliminationEvent entity by IDs.
func (m *ArenaMutation) RemoveEliminationIDs(ids ...int64) {
	if m.removedeliminations == nil {
		m.removedeliminations = make(map[int64]struct{})
	}
	for i := range ids {
		delete(m.eliminations, ids[i])
		m.removedeliminations[ids[i]] = struct{}{}
	}
}

// RemovedEliminations returns the removed IDs of the "eliminations" edge to the EliminationEvent entity.
func (m *ArenaMutation) RemovedEliminationsIDs() (ids []int64) {
	for id := range m.removedeliminations {
		ids = append(ids, id)
	}
	return
}

// EliminationsIDs returns the "eliminations" edge IDs in the mutation.
func (m *ArenaMutation) EliminationsIDs() (ids []int64) {
	for id := range m.eliminations {
		ids = append(ids, id)
	}
	return
}

// ResetEliminations resets all changes to the "eliminations" edge.
func (m *ArenaMutation) ResetEliminations() {
	m.eliminations = nil
	m.clearedeliminations = false
	m.removedeliminations = nil
}

// AddReportIDs adds the "reports" edge to the EvaluationReport entity by ids.
func (m *ArenaMutation) AddReportIDs(ids ...string) {
	if m.reports == nil {
		m.reports = make(map[string]struct{})
	}
	for i := range ids {
		m.reports[ids[i]] = struct{}{}
	}
}

// ClearReports clears the "reports" edge to the EvaluationReport entity.
func (m *ArenaMutation) ClearReports() {
	m.clearedreports = true
}

// ReportsCleared reports if the "reports" edge to the EvaluationReport entity was cleared.
func (m *ArenaMutation) ReportsCleared() bool {
	return m.clearedreports
}

// RemoveReportIDs removes the "reports" edge to the EvaluationReport entity by IDs.
func (m *ArenaMutation) RemoveReportIDs(ids ...string) {
	if m.removedreports == nil {
		m.removedreports = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.reports, ids[i])
		m.removedreports[ids[i]] = struct{}{}
	}
}

// RemovedReports returns the removed IDs of the "reports" edge to the EvaluationReport entity.
func (m *ArenaMutation) RemovedReportsIDs() (ids []string) {
	for id := range m.removedreports {
		ids = append(ids, id)
	}
	return
}

// ReportsIDs returns the "reports" edge IDs in the mutation.
func (m *ArenaMutation) ReportsIDs() (ids []string) {
	for id := range m.reports {
		ids = append(ids, id)
	}
	return
}

// ResetReports resets all changes to the "reports" edge.
func (m *ArenaMutation) ResetReports() {
	m.reports = nil
	m.clearedreports = false
	m.removedreports = nil
}

// Where appends a list predicates to the ArenaMutation builder.
func (m *ArenaMutation) Where(ps ...predicate.Arena) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ArenaMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ArenaMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Arena, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ArenaMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ArenaMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Arena).
func (m *ArenaMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ArenaMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.name != nil {
		fields = append(fields, arena.FieldName)
	}
	if m._config != nil {
		fields = append(fields, arena.FieldConfig)
	}
	if m.state != nil {
		fields = append(fields, arena.FieldState)
	}
	if m.resume_state != nil {
		fields = append(fields, arena.FieldResumeState)
	}
	if m.rounds_completed != nil {
		fields = append(fields, arena.FieldRoundsCompleted)
	}
	if m.evaluations_run != nil {
		fields = append(fields, arena.FieldEvaluationsRun)
	}
	if m.last_error != nil {
		fields = append(fields, arena.FieldLastError)
	}
	if m.created_at != nil {
		fields = append(fields, arena.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, arena.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ArenaMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case arena.FieldName:
		return m.Name()
	case arena.FieldConfig:
		return m.Config()
	case arena.FieldState:
		return m.State()
	case arena.FieldResumeState:
		return m.ResumeState()
	case arena.FieldRoundsCompleted:
		return m.RoundsCompleted()
	case arena.FieldEvaluationsRun:
		return m.EvaluationsRun()
	case arena.FieldLastError:
		return m.LastError()
	case arena.FieldCreatedAt:
		return m.CreatedAt()
	case arena.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ArenaMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case arena.FieldName:
		return m.OldName(ctx)
	case arena.FieldConfig:
		return m.OldConfig(ctx)
	case arena.FieldState:
		return m.OldState(ctx)
	case arena.FieldResumeState:
		return m.OldResumeState(ctx)
	case arena.FieldRoundsCompleted:
		return m.OldRoundsCompleted(ctx)
	case arena.FieldEvaluationsRun:
		return m.OldEvaluationsRun(ctx)
	case arena.FieldLastError:
		return m.OldLastError(ctx)
	case arena.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case arena.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Arena field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ArenaMutation) SetField(name string, value ent.Value) error {
	switch name {
	case arena.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case arena.FieldConfig:
		v, ok := value.(models.ArenaConfig)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfig(v)
		return nil
	case arena.FieldState:
		v, ok := value.(arena.State)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case arena.FieldResumeState:
		v, ok := value.(arena.ResumeState)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResumeState(v)
		return nil
	case arena.FieldRoundsCompleted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoundsCompleted(v)
		return nil
	case arena.FieldEvaluationsRun:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvaluationsRun(v)
		return nil
	case arena.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	case arena.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case arena.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Arena field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ArenaMutation) AddedFields() []string {
	var fields []string
	if m.addrounds_completed != nil {
		fields = append(fields, arena.FieldRoundsCompleted)
	}
	if m.addevaluations_run != nil {
		fields = append(fields, arena.FieldEvaluationsRun)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ArenaMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case arena.FieldRoundsCompleted:
		return m.AddedRoundsCompleted()
	case arena.FieldEvaluationsRun:
		return m.AddedEvaluationsRun()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ArenaMutation) AddField(name string, value ent.Value) error {
	switch name {
	case arena.FieldRoundsCompleted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRoundsCompleted(v)
		return nil
	case arena.FieldEvaluationsRun:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEvaluationsRun(v)
		return nil
	}
	return fmt.Errorf("unknown Arena numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ArenaMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(arena.FieldResumeState) {
		fields = append(fields, arena.FieldResumeState)
	}
	if m.FieldCleared(arena.FieldLastError) {
		fields = append(fields, arena.FieldLastError)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ArenaMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ArenaMutation) ClearField(name string) error {
	switch name {
	case arena.FieldResumeState:
		m.ClearResumeState()
		return nil
	case arena.FieldLastError:
		m.ClearLastError()
		return nil
	}
	return fmt.Errorf("unknown Arena nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ArenaMutation) ResetField(name string) error {
	switch name {
	case arena.FieldName:
		m.ResetName()
		return nil
	case arena.FieldConfig:
		m.ResetConfig()
		return nil
	case arena.FieldState:
		m.ResetState()
		return nil
	case arena.FieldResumeState:
		m.ResetResumeState()
		return nil
	case arena.FieldRoundsCompleted:
		m.ResetRoundsCompleted()
		return nil
	case arena.FieldEvaluationsRun:
		m.ResetEvaluationsRun()
		return nil
	case arena.FieldLastError:
		m.ResetLastError()
		return nil
	case arena.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case arena.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Arena field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ArenaMutation) AddedEdges() []string {
	edges := make([]string, 0, 5)
	if m.strategies != nil {
		edges = append(edges, arena.EdgeStrategies)
	}
	if m.rounds != nil {
		edges = append(edges, arena.EdgeRounds)
	}
	if m.messages != nil {
		edges = append(edges, arena.EdgeMessages)
	}
	if m.eliminations != nil {
		edges = append(edges, arena.EdgeEliminations)
	}
	if m.reports != nil {
		edges = append(edges, arena.EdgeReports)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ArenaMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case arena.EdgeStrategies:
		ids := make([]ent.Value, 0, len(m.strategies))
		for id := range m.strategies {
			ids = append(ids, id)
		}
		return ids
	case arena.EdgeRounds:
		ids := make([]ent.Value, 0, len(m.rounds))
		for id := range m.rounds {
			ids = append(ids, id)
		}
		return ids
	case arena.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.messages))
		for id := range m.messages {
			ids = append(ids, id)
		}
		return ids
	case arena.EdgeEliminations:
		ids := make([]ent.Value, 0, len(m.eliminations))
		for id := range m.eliminations {
			ids = append(ids, id)
		}
		return ids
	case arena.EdgeReports:
		ids := make([]ent.Value, 0, len(m.reports))
		for id := range m.reports {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ArenaMutation) RemovedEdges() []string {
	edges := make([]string, 0, 5)
	if m.removedstrategies != nil {
		edges = append(edges, arena.EdgeStrategies)
	}
	if m.removedrounds != nil {
		edges = append(edges, arena.EdgeRounds)
	}
	if m.removedmessages != nil {
		edges = append(edges, arena.EdgeMessages)
	}
	if m.removedeliminations != nil {
		edges = append(edges, arena.EdgeEliminations)
	}
	if m.removedreports != nil {
		edges = append(edges, arena.EdgeReports)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ArenaMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case arena.EdgeStrategies:
		ids := make([]ent.Value, 0, len(m.removedstrategies))
		for id := range m.removedstrategies {
			ids = append(ids, id)
		}
		return ids
	case arena.EdgeRounds:
		ids := make([]ent.Value, 0, len(m.removedrounds))
		for id := range m.removedrounds {
			ids = append(ids, id)
		}
		return ids
	case arena.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.removedmessages))
		for id := range m.removedmessages {
			ids = append(ids, id)
		}
		return ids
	case arena.EdgeEliminations:
		ids := make([]ent.Value, 0, len(m.removedeliminations))
		for id := range m.removedeliminations {
			ids = append(ids, id)
		}
		return ids
	case arena.EdgeReports:
		ids := make([]ent.Value, 0, len(m.removedreports))
		for id := range m.removedreports {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ArenaMutation) ClearedEdges() []string {
	edges := make([]string, 0, 5)
	if m.clearedstrategies {
		edges = append(edges, arena.EdgeStrategies)
	}
	if m.clearedrounds {
		edges = append(edges, arena.EdgeRounds)
	}
	if m.clearedmessages {
		edges = append(edges, arena.EdgeMessages)
	}
	if m.clearedeliminations {
		edges = append(edges, arena.EdgeEliminations)
	}
	if m.clearedreports {
		edges = append(edges, arena.EdgeReports)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ArenaMutation) EdgeCleared(name string) bool {
	switch name {
	case arena.EdgeStrategies:
		return m.clearedstrategies
	case arena.EdgeRounds:
		return m.clearedrounds
	case arena.EdgeMessages:
		return m.clearedmessages
	case arena.EdgeEliminations:
		return m.clearedeliminations
	case arena.EdgeReports:
		return m.clearedreports
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ArenaMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Arena unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ArenaMutation) ResetEdge(name string) error {
	switch name {
	case arena.EdgeStrategies:
		m.ResetStrategies()
		return nil
	case arena.EdgeRounds:
		m.ResetRounds()
		return nil
	case arena.EdgeMessages:
		m.ResetMessages()
		return nil
	case arena.EdgeEliminations:
		m.ResetEliminations()
		return nil
	case arena.EdgeReports:
		m.ResetReports()
		return nil
	}
	return fmt.Errorf("unknown Arena edge %s", name)
}

// BatchExecutionMutation represents an operation that mutates the BatchExecution nodes in the graph.
type BatchExecutionMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	trigger_type         *batchexecution.TriggerType
	group_name           *string
	date_range           *[]string
	appenddate_range     []string
	status               *batchexecution.Status
	total_plugins        *int
	addtotal_plugins     *int
	completed_plugins    *int
	addcompleted_plugins *int
	failed_plugins       *int
	addfailed_plugins    *int
	error_summary        *string
	can_retry            *bool
	started_at           *time.Time
	completed_at         *time.Time
	version              *int64
	addversion           *int64
	clearedFields        map[string]struct{}
	sub_tasks            map[string]struct{}
	removedsub_tasks     map[string]struct{}
	clearedsub_tasks     bool
	done                 bool
	oldValue             func(context.Context) (*BatchExecution, error)
	predicates           []predicate.BatchExecution
}

var _ ent.Mutation = (*BatchExecutionMutation)(nil)

// batchexecutionOption allows management of the mutation configuration using functional options.
type batchexecutionOption func(*BatchExecutionMutation)

// newBatchExecutionMutation creates new mutation for the BatchExecution entity.
func newBatchExecutionMutation(c config, op Op, opts ...batchexecutionOption) *BatchExecutionMutation {
	m := &BatchExecutionMutation{
		config:        c,
		op:            op,
		typ:           TypeBatchExecution,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBatchExecutionID sets the ID field of the mutation.
func withBatchExecutionID(id string) batchexecutionOption {
	return func(m *BatchExecutionMutation) {
		var (
			err   error
			once  sync.Once
			value *BatchExecution
		)
		m.oldValue = func(ctx context.Context) (*BatchExecution, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BatchExecution.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBatchExecution sets the old BatchExecution of the mutation.
func withBatchExecution(node *BatchExecution) batchexecutionOption {
	return func(m *BatchExecutionMutation) {
		m.oldValue = func(context.Context) (*BatchExecution, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BatchExecutionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BatchExecutionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of BatchExecution entities.
func (m *BatchExecutionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BatchExecutionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BatchExecutionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BatchExecution.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTriggerType sets the "trigger_type" field.
func (m *BatchExecutionMutation) SetTriggerType(bt batchexecution.TriggerType) {
	m.trigger_type = &bt
}

// TriggerType returns the value of the "trigger_type" field in the mutation.
func (m *BatchExecutionMutation) TriggerType() (r batchexecution.TriggerType, exists bool) {
	v := m.trigger_type
	if v == nil {
		return
	}
	return *v, true
}

// OldTriggerType returns the old "trigger_type" field's value of the BatchExecution entity.
// If the BatchExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchExecutionMutation) OldTriggerType(ctx context.Context) (v batchexecution.TriggerType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTriggerType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTriggerType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTriggerType: %w", err)
	}
	return oldValue.TriggerType, nil
}

// ResetTriggerType resets all changes to the "trigger_type" field.
func (m *BatchExecutionMutation) ResetTriggerType() {
	m.trigger_type = nil
}

// SetGroupName sets the "group_name" field.
func (m *BatchExecutionMutation) SetGroupName(s string) {
	m.group_name = &s
}

// GroupName returns the value of the "group_name" field in the mutation.
func (m *BatchExecutionMutation) GroupName() (r string, exists bool) {
	v := m.group_name
	if v == nil {
		return
	}
	return *v, true
}

// OldGroupName returns the old "group_name" field's value of the BatchExecution entity.
// If the BatchExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchExecutionMutation) OldGroupName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGroupName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGroupName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGroupName: %w", err)
	}
	return oldValue.GroupName, nil
}

// ClearGroupName clears the value of the "group_name" field.
func (m *BatchExecutionMutation) ClearGroupName() {
	m.group_name = nil
	m.clearedFields[batchexecution.FieldGroupName] = struct{}{}
}

// GroupNameCleared returns if the "group_name" field was cleared in this mutation.
func (m *BatchExecutionMutation) GroupNameCleared() bool {
	_, ok := m.clearedFields[batchexecution.FieldGroupName]
	return ok
}

// ResetGroupName resets all changes to the "group_name" field.
func (m *BatchExecutionMutation) ResetGroupName() {
	m.group_name = nil
	delete(m.clearedFields, batchexecution.FieldGroupName)
}

// SetDateRange sets the "date_range" field.
func (m *BatchExecutionMutation) SetDateRange(s []string) {
	m.date_range = &s
	m.appenddate_range = nil
}

// DateRange returns the value of the "date_range" field in the mutation.
func (m *BatchExecutionMutation) DateRange() (r []string, exists bool) {
	v := m.date_range
	if v == nil {
		return
	}
	return *v, true
}

// OldDateRange returns the old "date_range" field's value of the BatchExecution entity.
// If the BatchExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchExecutionMutation) OldDateRange(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDateRange is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDateRange requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDateRange: %w", err)
	}
	return oldValue.DateRange, nil
}

// AppendDateRange adds s to the "date_range" field.
func (m *BatchExecutionMutation) AppendDateRange(s []string) {
	m.appenddate_range = append(m.appenddate_range, s...)
}

// AppendedDateRange returns the list of values that were appended to the "date_range" field in this mutation.
func (m *BatchExecutionMutation) AppendedDateRange() ([]string, bool) {
	if len(m.appenddate_range) == 0 {
		return nil, false
	}
	return m.appenddate_range, true
}

// ClearDateRange clears the value of the "date_range" field.
func (m *BatchExecutionMutation) ClearDateRange() {
	m.date_range = nil
	m.appenddate_range = nil
	m.clearedFields[batchexecution.FieldDateRange] = struct{}{}
}

// DateRangeCleared returns if the "date_range" field was cleared in this mutation.
func (m *BatchExecutionMutation) DateRangeCleared() bool {
	_, ok := m.clearedFields[batchexecution.FieldDateRange]
	return ok
}

// ResetDateRange resets all changes to the "date_range" field.
func (m *BatchExecutionMutation) ResetDateRange() {
	m.date_range = nil
	m.appenddate_range = nil
	delete(m.clearedFields, batchexecution.FieldDateRange)
}

// SetStatus sets the "status" field.
func (m *BatchExecutionMutation) SetStatus(b batchexecution.Status) {
	m.status = &b
}

// Status returns the value of the "status" field in the mutation.
func (m *BatchExecutionMutation) Status() (r batchexecution.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the BatchExecution entity.
// If the BatchExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchExecutionMutation) OldStatus(ctx context.Context) (v batchexecution.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *BatchExecutionMutation) ResetStatus() {
	m.status = nil
}

// SetTotalPlugins sets the "total_plugins" field.
func (m *BatchExecutionMutation) SetTotalPlugins(i int) {
	m.total_plugins = &i
	m.addtotal_plugins = nil
}

// TotalPlugins returns the value of the "total_plugins" field in the mutation.
func (m *BatchExecutionMutation) TotalPlugins() (r int, exists bool) {
	v := m.total_plugins
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalPlugins returns the old "total_plugins" field's value of the BatchExecution entity.
// If the BatchExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchExecutionMutation) OldTotalPlugins(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalPlugins is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalPlugins requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalPlugins: %w", err)
	}
	return oldValue.TotalPlugins, nil
}

// AddTotalPlugins adds i to the "total_plugins" field.
func (m *BatchExecutionMutation) AddTotalPlugins(i int) {
	if m.addtotal_plugins != nil {
		*m.addtotal_plugins += i
	} else {
		m.addtotal_plugins = &i
	}
}

// AddedTotalPlugins returns the value that was added to the "total_plugins" field in this mutation.
func (m *BatchExecutionMutation) AddedTotalPlugins() (r int, exists bool) {
	v := m.addtotal_plugins
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalPlugins resets all changes to the "total_plugins" field.
func (m *BatchExecutionMutation) ResetTotalPlugins() {
	m.total_plugins = nil
	m.addtotal_plugins = nil
}

// SetCompletedPlugins sets the "completed_plugins" field.
func (m *BatchExecutionMutation) SetCompletedPlugins(i int) {
	m.completed_plugins = &i
	m.addcompleted_plugins = nil
}

// CompletedPlugins returns the value of the "completed_plugins" field in the mutation.
func (m *BatchExecutionMutation) CompletedPlugins() (r int, exists bool) {
	v := m.completed_plugins
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedPlugins returns the old "completed_plugins" field's value of the BatchExecution entity.
// If the BatchExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchExecutionMutation) OldCompletedPlugins(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedPlugins is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedPlugins requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedPlugins: %w", err)
	}
	return oldValue.CompletedPlugins, nil
}

// AddCompletedPlugins adds i to the "completed_plugins" field.
func (m *BatchExecutionMutation) AddCompletedPlugins(i int) {
	if m.addcompleted_plugins != nil {
		*m.addcompleted_plugins += i
	} else {
		m.addcompleted_plugins = &i
	}
}

// AddedCompletedPlugins returns the value that was added to the "completed_plugins" field in this mutation.
func (m *BatchExecutionMutation) AddedCompletedPlugins() (r int, exists bool) {
	v := m.addcompleted_plugins
	if v == nil {
		return
	}
	return *v, true
}

// ResetCompletedPlugins resets all changes to the "completed_plugins" field.
func (m *BatchExecutionMutation) ResetCompletedPlugins() {
	m.completed_plugins = nil
	m.addcompleted_plugins = nil
}

// SetFailedPlugins sets the "failed_plugins" field.
func (m *BatchExecutionMutation) SetFailedPlugins(i int) {
	m.failed_plugins = &i
	m.addfailed_plugins = nil
}

// FailedPlugins returns the value of the "failed_plugins" field in the mutation.
func (m *BatchExecutionMutation) FailedPlugins() (r int, exists bool) {
	v := m.failed_plugins
	if v == nil {
		return
	}
	return *v, true
}

// OldFailedPlugins returns the old "failed_plugins" field's value of the BatchExecution entity.
// If the BatchExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchExecutionMutation) OldFailedPlugins(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailedPlugins is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailedPlugins requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailedPlugins: %w", err)
	}
	return oldValue.FailedPlugins, nil
}

// AddFailedPlugins adds i to the "failed_plugins" field.
func (m *BatchExecutionMutation) AddFailedPlugins(i int) {
	if m.addfailed_plugins != nil {
		*m.addfailed_plugins += i
	} else {
		m.addfailed_plugins = &i
	}
}

// AddedFailedPlugins returns the value that was added to the "failed_plugins" field in this mutation.
func (m *BatchExecutionMutation) AddedFailedPlugins() (r int, exists bool) {
	v := m.addfailed_plugins
	if v == nil {
		return
	}
	return *v, true
}

// ResetFailedPlugins resets all changes to the "failed_plugins" field.
func (m *BatchExecutionMutation) ResetFailedPlugins() {
	m.failed_plugins = nil
	m.addfailed_plugins = nil
}

// SetErrorSummary sets the "error_summary" field.
func (m *BatchExecutionMutation) SetErrorSummary(s string) {
	m.error_summary = &s
}

// ErrorSummary returns the value of the "error_summary" field in the mutation.
func (m *BatchExecutionMutation) ErrorSummary() (r string, exists bool) {
	v := m.error_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorSummary returns the old "error_summary" field's value of the BatchExecution entity.
// If the BatchExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchExecutionMutation) OldErrorSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorSummary: %w", err)
	}
	return oldValue.ErrorSummary, nil
}

// ClearErrorSummary clears the value of the "error_summary" field.
func (m *BatchExecutionMutation) ClearErrorSummary() {
	m.error_summary = nil
	m.clearedFields[batchexecution.FieldErrorSummary] = struct{}{}
}

// ErrorSummaryCleared returns if the "error_summary" field was cleared in this mutation.
func (m *BatchExecutionMutation) ErrorSummaryCleared() bool {
	_, ok := m.clearedFields[batchexecution.FieldErrorSummary]
	return ok
}

// ResetErrorSummary resets all changes to the "error_summary" field.
func (m *BatchExecutionMutation) ResetErrorSummary() {
	m.error_summary = nil
	delete(m.clearedFields, batchexecution.FieldErrorSummary)
}

// SetCanRetry sets the "can_retry" field.
func (m *BatchExecutionMutation) SetCanRetry(b bool) {
	m.can_retry = &b
}

// CanRetry returns the value of the "can_retry" field in the mutation.
func (m *BatchExecutionMutation) CanRetry() (r bool, exists bool) {
	v := m.can_retry
	if v == nil {
		return
	}
	return *v, true
}

// OldCanRetry returns the old "can_retry" field's value of the BatchExecution entity.
// If the BatchExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchExecutionMutation) OldCanRetry(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCanRetry is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCanRetry requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCanRetry: %w", err)
	}
	return oldValue.CanRetry, nil
}

// ResetCanRetry resets all changes to the "can_retry" field.
func (m *BatchExecutionMutation) ResetCanRetry() {
	m.can_retry = nil
}

// SetStartedAt sets the "started_at" field.
func (m *BatchExecutionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *BatchExecutionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the BatchExecution entity.
// If the BatchExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchExecutionMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *BatchExecutionMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *BatchExecutionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *BatchExecutionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the BatchExecution entity.
// If the BatchExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchExecutionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *BatchExecutionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[batchexecution.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *BatchExecutionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[batchexecution.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *BatchExecutionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, batchexecution.FieldCompletedAt)
}

// SetVersion sets the "version" field.
func (m *BatchExecutionMutation) SetVersion(i int64) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *BatchExecutionMutation) Version() (r int64, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the BatchExecution entity.
// If the BatchExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchExecutionMutation) OldVersion(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *BatchExecutionMutation) AddVersion(i int64) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *BatchExecutionMutation) AddedVersion() (r int64, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *BatchExecutionMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// AddSubTaskIDs adds the "sub_tasks" edge to the SubTask entity by ids.
func (m *BatchExecutionMutation) AddSubTaskIDs(ids ...string) {
	if m.sub_tasks == nil {
		m.sub_tasks = make(map[string]struct{})
	}
	for i := range ids {
		m.sub_tasks[ids[i]] = struct{}{}
	}
}

// ClearSubTasks clears the "sub_tasks" edge to the SubTask entity.
func (m *BatchExecutionMutation) ClearSubTasks() {
	m.clearedsub_tasks = true
}

// SubTasksCleared reports if the "sub_tasks" edge to the SubTask entity was cleared.
func (m *BatchExecutionMutation) SubTasksCleared() bool {
	return m.clearedsub_tasks
}

// RemoveSubTaskIDs removes the "sub_tasks" edge to the SubTask entity by IDs.
func (m *BatchExecutionMutation) RemoveSubTaskIDs(ids ...string) {
	if m.removedsub_tasks == nil {
		m.removedsub_tasks = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.sub_tasks, ids[i])
		m.removedsub_tasks[ids[i]] = struct{}{}
	}
}

// RemovedSubTasks returns the removed IDs of the "sub_tasks" edge to the SubTask entity.
func (m *BatchExecutionMutation) RemovedSubTasksIDs() (ids []string) {
	for id := range m.removedsub_tasks {
		ids = append(ids, id)
	}
	return
}

// SubTasksIDs returns the "sub_tasks" edge IDs in the mutation.
func (m *BatchExecutionMutation) SubTasksIDs() (ids []string) {
	for id := range m.sub_tasks {
		ids = append(ids, id)
	}
	return
}

// ResetSubTasks resets all changes to the "sub_tasks" edge.
func (m *BatchExecutionMutation) ResetSubTasks() {
	m.sub_tasks = nil
	m.clearedsub_tasks = false
	m.removedsub_tasks = nil
}

// Where appends a list predicates to the BatchExecutionMutation builder.
func (m *BatchExecutionMutation) Where(ps ...predicate.BatchExecution) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BatchExecutionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BatchExecutionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BatchExecution, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BatchExecutionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BatchExecutionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BatchExecution).
func (m *BatchExecutionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BatchExecutionMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.trigger_type != nil {
		fields = append(fields, batchexecution.FieldTriggerType)
	}
	if m.group_name != nil {
		fields = append(fields, batchexecution.FieldGroupName)
	}
	if m.date_range != nil {
		fields = append(fields, batchexecution.FieldDateRange)
	}
	if m.status != nil {
		fields = append(fields, batchexecution.FieldStatus)
	}
	if m.total_plugins != nil {
		fields = append(fields, batchexecution.FieldTotalPlugins)
	}
	if m.completed_plugins != nil {
		fields = append(fields, batchexecution.FieldCompletedPlugins)
	}
	if m.failed_plugins != nil {
		fields = append(fields, batchexecution.FieldFailedPlugins)
	}
	if m.error_summary != nil {
		fields = append(fields, batchexecution.FieldErrorSummary)
	}
	if m.can_retry != nil {
		fields = append(fields, batchexecution.FieldCanRetry)
	}
	if m.started_at != nil {
		fields = append(fields, batchexecution.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, batchexecution.FieldCompletedAt)
	}
	if m.version != nil {
		fields = append(fields, batchexecution.FieldVersion)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BatchExecutionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case batchexecution.FieldTriggerType:
		return m.TriggerType()
	case batchexecution.FieldGroupName:
		return m.GroupName()
	case batchexecution.FieldDateRange:
		return m.DateRange()
	case batchexecution.FieldStatus:
		return m.Status()
	case batchexecution.FieldTotalPlugins:
		return m.TotalPlugins()
	case batchexecution.FieldCompletedPlugins:
		return m.CompletedPlugins()
	case batchexecution.FieldFailedPlugins:
		return m.FailedPlugins()
	case batchexecution.FieldErrorSummary:
		return m.ErrorSummary()
	case batchexecution.FieldCanRetry:
		return m.CanRetry()
	case batchexecution.FieldStartedAt:
		return m.StartedAt()
	case batchexecution.FieldCompletedAt:
		return m.CompletedAt()
	case batchexecution.FieldVersion:
		return m.Version()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BatchExecutionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case batchexecution.FieldTriggerType:
		return m.OldTriggerType(ctx)
	case batchexecution.FieldGroupName:
		return m.OldGroupName(ctx)
	case batchexecution.FieldDateRange:
		return m.OldDateRange(ctx)
	case batchexecution.FieldStatus:
		return m.OldStatus(ctx)
	case batchexecution.FieldTotalPlugins:
		return m.OldTotalPlugins(ctx)
	case batchexecution.FieldCompletedPlugins:
		return m.OldCompletedPlugins(ctx)
	case batchexecution.FieldFailedPlugins:
		return m.OldFailedPlugins(ctx)
	case batchexecution.FieldErrorSummary:
		return m.OldErrorSummary(ctx)
	case batchexecution.FieldCanRetry:
		return m.OldCanRetry(ctx)
	case batchexecution.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case batchexecution.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case batchexecution.FieldVersion:
		return m.OldVersion(ctx)
	}
	return nil, fmt.Errorf("unknown BatchExecution field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BatchExecutionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case batchexecution.FieldTriggerType:
		v, ok := value.(batchexecution.TriggerType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTriggerType(v)
		return nil
	case batchexecution.FieldGroupName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGroupName(v)
		return nil
	case batchexecution.FieldDateRange:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDateRange(v)
		return nil
	case batchexecution.FieldStatus:
		v, ok := value.(batchexecution.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case batchexecution.FieldTotalPlugins:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalPlugins(v)
		return nil
	case batchexecution.FieldCompletedPlugins:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedPlugins(v)
		return nil
	case batchexecution.FieldFailedPlugins:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailedPlugins(v)
		return nil
	case batchexecution.FieldErrorSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorSummary(v)
		return nil
	case batchexecution.FieldCanRetry:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCanRetry(v)
		return nil
	case batchexecution.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case batchexecution.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case batchexecution.FieldVersion:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	}
	return fmt.Errorf("unknown BatchExecution field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BatchExecutionMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_plugins != nil {
		fields = append(fields, batchexecution.FieldTotalPlugins)
	}
	if m.addcompleted_plugins != nil {
		fields = append(fields, batchexecution.FieldCompletedPlugins)
	}
	if m.addfailed_plugins != nil {
		fields = append(fields, batchexecution.FieldFailedPlugins)
	}
	if m.addversion != nil {
		fields = append(fields, batchexecution.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BatchExecutionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case batchexecution.FieldTotalPlugins:
		return m.AddedTotalPlugins()
	case batchexecution.FieldCompletedPlugins:
		return m.AddedCompletedPlugins()
	case batchexecution.FieldFailedPlugins:
		return m.AddedFailedPlugins()
	case batchexecution.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BatchExecutionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case batchexecution.FieldTotalPlugins:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalPlugins(v)
		return nil
	case batchexecution.FieldCompletedPlugins:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompletedPlugins(v)
		return nil
	case batchexecution.FieldFailedPlugins:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFailedPlugins(v)
		return nil
	case batchexecution.FieldVersion:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown BatchExecution numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BatchExecutionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(batchexecution.FieldGroupName) {
		fields = append(fields, batchexecution.FieldGroupName)
	}
	if m.FieldCleared(batchexecution.FieldDateRange) {
		fields = append(fields, batchexecution.FieldDateRange)
	}
	if m.FieldCleared(batchexecution.FieldErrorSummary) {
		fields = append(fields, batchexecution.FieldErrorSummary)
	}
	if m.FieldCleared(batchexecution.FieldCompletedAt) {
		fields = append(fields, batchexecution.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BatchExecutionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BatchExecutionMutation) ClearField(name string) error {
	switch name {
	case batchexecution.FieldGroupName:
		m.ClearGroupName()
		return nil
	case batchexecution.FieldDateRange:
		m.ClearDateRange()
		return nil
	case batchexecution.FieldErrorSummary:
		m.ClearErrorSummary()
		return nil
	case batchexecution.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown BatchExecution nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BatchExecutionMutation) ResetField(name string) error {
	switch name {
	case batchexecution.FieldTriggerType:
		m.ResetTriggerType()
		return nil
	case batchexecution.FieldGroupName:
		m.ResetGroupName()
		return nil
	case batchexecution.FieldDateRange:
		m.ResetDateRange()
		return nil
	case batchexecution.FieldStatus:
		m.ResetStatus()
		return nil
	case batchexecution.FieldTotalPlugins:
		m.ResetTotalPlugins()
		return nil
	case batchexecution.FieldCompletedPlugins:
		m.ResetCompletedPlugins()
		return nil
	case batchexecution.FieldFailedPlugins:
		m.ResetFailedPlugins()
		return nil
	case batchexecution.FieldErrorSummary:
		m.ResetErrorSummary()
		return nil
	case batchexecution.FieldCanRetry:
		m.ResetCanRetry()
		return nil
	case batchexecution.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case batchexecution.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case batchexecution.FieldVersion:
		m.ResetVersion()
		return nil
	}
	return fmt.Errorf("unknown BatchExecution field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BatchExecutionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.sub_tasks != nil {
		edges = append(edges, batchexecution.EdgeSubTasks)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BatchExecutionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case batchexecution.EdgeSubTasks:
		ids := make([]ent.Value, 0, len(m.sub_tasks))
		for id := range m.sub_tasks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BatchExecutionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedsub_tasks != nil {
		edges = append(edges, batchexecution.EdgeSubTasks)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BatchExecutionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case batchexecution.EdgeSubTasks:
		ids := make([]ent.Value, 0, len(m.removedsub_tasks))
		for id := range m.removedsub_tasks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BatchExecutionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsub_tasks {
		edges = append(edges, batchexecution.EdgeSubTasks)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BatchExecutionMutation) EdgeCleared(name string) bool {
	switch name {
	case batchexecution.EdgeSubTasks:
		return m.clearedsub_tasks
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BatchExecutionMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown BatchExecution unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BatchExecutionMutation) ResetEdge(name string) error {
	switch name {
	case batchexecution.EdgeSubTasks:
		m.ResetSubTasks()
		return nil
	}
	return fmt.Errorf("unknown BatchExecution edge %s", name)
}

// DiscussionRoundMutation represents an operation that mutates the DiscussionRound nodes in the graph.
type DiscussionRoundMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	round_number       *int
	addround_number    *int
	mode               *discussionround.Mode
	participants       *[]string
	appendparticipants []string
	conclusions        *map[string]string
	started_at         *time.Time
	completed_at       *time.Time
	clearedFields      map[string]struct{}
	arena              *string
	clearedarena       bool
	done               bool
	oldValue           func(context.Context) (*DiscussionRound, error)
	predicates         []predicate.DiscussionRound
}

var _ ent.Mutation = (*DiscussionRoundMutation)(nil)

// discussionroundOption allows management of the mutation configuration using functional options.
type discussionroundOption func(*DiscussionRoundMutation)

// newDiscussionRoundMutation creates new mutation for the DiscussionRound entity.
func newDiscussionRoundMutation(c config, op Op, opts ...discussionroundOption) *DiscussionRoundMutation {
	m := &DiscussionRoundMutation{
		config:        c,
		op:            op,
		typ:           TypeDiscussionRound,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDiscussionRoundID sets the ID field of the mutation.
func withDiscussionRoundID(id string) discussionroundOption {
	return func(m *DiscussionRoundMutation) {
		var (
			err   error
			once  sync.Once
			value *DiscussionRound
		)
		m.oldValue = func(ctx context.Context) (*DiscussionRound, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DiscussionRound.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDiscussionRound sets the old DiscussionRound of the mutation.
func withDiscussionRound(node *DiscussionRound) discussionroundOption {
	return func(m *DiscussionRoundMutation) {
		m.oldValue = func(context.Context) (*DiscussionRound, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DiscussionRoundMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DiscussionRoundMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DiscussionRound entities.
func (m *DiscussionRoundMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DiscussionRoundMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DiscussionRoundMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DiscussionRound.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetArenaID sets the "arena_id" field.
func (m *DiscussionRoundMutation) SetArenaID(s string) {
	m.arena = &s
}

// ArenaID returns the value of the "arena_id" field in the mutation.
func (m *DiscussionRoundMutation) ArenaID() (r string, exists bool) {
	v := m.arena
	if v == nil {
		return
	}
	return *v, true
}

// OldArenaID returns the old "arena_id" field's value of the DiscussionRound entity.
// If the DiscussionRound object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiscussionRoundMutation) OldArenaID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArenaID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArenaID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArenaID: %w", err)
	}
	return oldValue.ArenaID, nil
}

// ResetArenaID resets all changes to the "arena_id" field.
func (m *DiscussionRoundMutation) ResetArenaID() {
	m.arena = nil
}

// SetRoundNumber sets the "round_number" field.
func (m *DiscussionRoundMutation) SetRoundNumber(i int) {
	m.round_number = &i
	m.addround_number = nil
}

// RoundNumber returns the value of the "round_number" field in the mutation.
func (m *DiscussionRoundMutation) RoundNumber() (r int, exists bool) {
	v := m.round_number
	if v == nil {
		return
	}
	return *v, true
}

// OldRoundNumber returns the old "round_number" field's value of the DiscussionRound entity.
// If the DiscussionRound object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiscussionRoundMutation) OldRoundNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoundNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoundNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoundNumber: %w", err)
	}
	return oldValue.RoundNumber, nil
}

// AddRoundNumber adds i to the "round_number" field.
func (m *DiscussionRoundMutation) AddRoundNumber(i int) {
	if m.addround_number != nil {
		*m.addround_number += i
	} else {
		m.addround_number = &i
	}
}

// AddedRoundNumber returns the value that was added to the "round_number" field in this mutation.
func (m *DiscussionRoundMutation) AddedRoundNumber() (r int, exists bool) {
	v := m.addround_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetRoundNumber resets all changes to the "round_number" field.
func (m *DiscussionRoundMutation) ResetRoundNumber() {
	m.round_number = nil
	m.addround_number = nil
}

// SetMode sets the "mode" field.
func (m *DiscussionRoundMutation) SetMode(d discussionround.Mode) {
	m.mode = &d
}

// Mode returns the value of the "mode" field in the mutation.
func (m *DiscussionRoundMutation) Mode() (r discussionround.Mode, exists bool) {
	v := m.mode
	if v == nil {
		return
	}
	return *v, true
}

// OldMode returns the old "mode" field's value of the DiscussionRound entity.
// If the DiscussionRound object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiscussionRoundMutation) OldMode(ctx context.Context) (v discussionround.Mode, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMode: %w", err)
	}
	return oldValue.Mode, nil
}

// ResetMode resets all changes to the "mode" field.
func (m *DiscussionRoundMutation) ResetMode() {
	m.mode = nil
}

// SetParticipants sets the "participants" field.
func (m *DiscussionRoundMutation) SetParticipants(s []string) {
	m.participants = &s
	m.appendparticipants = nil
}

// Participants returns the value of the "participants" field in the mutation.
func (m *DiscussionRoundMutation) Participants() (r []string, exists bool) {
	v := m.participants
	if v == nil {
		return
	}
	return *v, true
}

// OldParticipants returns the old "participants" field's value of the DiscussionRound entity.
// If the DiscussionRound object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiscussionRoundMutation) OldParticipants(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParticipants is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParticipants requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParticipants: %w", err)
	}
	return oldValue.Participants, nil
}

// AppendParticipants adds s to the "participants" field.
func (m *DiscussionRoundMutation) AppendParticipants(s []string) {
	m.appendparticipants = append(m.appendparticipants, s...)
}

// AppendedParticipants returns the list of values that were appended to the "participants" field in this mutation.
func (m *DiscussionRoundMutation) AppendedParticipants() ([]string, bool) {
	if len(m.appendparticipants) == 0 {
		return nil, false
	}
	return m.appendparticipants, true
}

// ResetParticipants resets all changes to the "participants" field.
func (m *DiscussionRoundMutation) ResetParticipants() {
	m.participants = nil
	m.appendparticipants = nil
}

// SetConclusions sets the "conclusions" field.
func (m *DiscussionRoundMutation) SetConclusions(value map[string]string) {
	m.conclusions = &value
}

// Conclusions returns the value of the "conclusions" field in the mutation.
func (m *DiscussionRoundMutation) Conclusions() (r map[string]string, exists bool) {
	v := m.conclusions
	if v == nil {
		return
	}
	return *v, true
}

// OldConclusions returns the old "conclusions" field's value of the DiscussionRound entity.
// If the DiscussionRound object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiscussionRoundMutation) OldConclusions(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConclusions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConclusions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConclusions: %w", err)
	}
	return oldValue.Conclusions, nil
}

// ClearConclusions clears the value of the "conclusions" field.
func (m *DiscussionRoundMutation) ClearConclusions() {
	m.conclusions = nil
	m.clearedFields[discussionround.FieldConclusions] = struct{}{}
}

// ConclusionsCleared returns if the "conclusions" field was cleared in this mutation.
func (m *DiscussionRoundMutation) ConclusionsCleared() bool {
	_, ok := m.clearedFields[discussionround.FieldConclusions]
	return ok
}

// ResetConclusions resets all changes to the "conclusions" field.
func (m *DiscussionRoundMutation) ResetConclusions() {
	m.conclusions = nil
	delete(m.clearedFields, discussionround.FieldConclusions)
}

// SetStartedAt sets the "started_at" field.
func (m *DiscussionRoundMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *DiscussionRoundMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the DiscussionRound entity.
// If the DiscussionRound object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiscussionRoundMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *DiscussionRoundMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *DiscussionRoundMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *DiscussionRoundMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the DiscussionRound entity.
// If the DiscussionRound object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DiscussionRoundMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *DiscussionRoundMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[discussionround.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *DiscussionRoundMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[discussionround.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *DiscussionRoundMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, discussionround.FieldCompletedAt)
}

// ClearArena clears the "arena" edge to the Arena entity.
func (m *DiscussionRoundMutation) ClearArena() {
	m.clearedarena = true
	m.clearedFields[discussionround.FieldArenaID] = struct{}{}
}

// ArenaCleared reports if the "arena" edge to the Arena entity was cleared.
func (m *DiscussionRoundMutation) ArenaCleared() bool {
	return m.clearedarena
}

// ArenaIDs returns the "arena" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ArenaID instead. It exists only for internal usage by the builders.
func (m *DiscussionRoundMutation) ArenaIDs() (ids []string) {
	if id := m.arena; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetArena resets all changes to the "arena" edge.
func (m *DiscussionRoundMutation) ResetArena() {
	m.arena = nil
	m.clearedarena = false
}

// Where appends a list predicates to the DiscussionRoundMutation builder.
func (m *DiscussionRoundMutation) Where(ps ...predicate.DiscussionRound) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DiscussionRoundMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DiscussionRoundMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DiscussionRound, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DiscussionRoundMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DiscussionRoundMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DiscussionRound).
func (m *DiscussionRoundMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DiscussionRoundMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.arena != nil {
		fields = append(fields, discussionround.FieldArenaID)
	}
	if m.round_number != nil {
		fields = append(fields, discussionround.FieldRoundNumber)
	}
	if m.mode != nil {
		fields = append(fields, discussionround.FieldMode)
	}
	if m.participants != nil {
		fields = append(fields, discussionround.FieldParticipants)
	}
	if m.conclusions != nil {
		fields = append(fields, discussionround.FieldConclusions)
	}
	if m.started_at != nil {
		fields = append(fields, discussionround.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, discussionround.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DiscussionRoundMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case discussionround.FieldArenaID:
		return m.ArenaID()
	case discussionround.FieldRoundNumber:
		return m.RoundNumber()
	case discussionround.FieldMode:
		return m.Mode()
	case discussionround.FieldParticipants:
		return m.Participants()
	case discussionround.FieldConclusions:
		return m.Conclusions()
	case discussionround.FieldStartedAt:
		return m.StartedAt()
	case discussionround.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DiscussionRoundMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case discussionround.FieldArenaID:
		return m.OldArenaID(ctx)
	case discussionround.FieldRoundNumber:
		return m.OldRoundNumber(ctx)
	case discussionround.FieldMode:
		return m.OldMode(ctx)
	case discussionround.FieldParticipants:
		return m.OldParticipants(ctx)
	case discussionround.FieldConclusions:
		return m.OldConclusions(ctx)
	case discussionround.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case discussionround.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DiscussionRound field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DiscussionRoundMutation) SetField(name string, value ent.Value) error {
	switch name {
	case discussionround.FieldArenaID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArenaID(v)
		return nil
	case discussionround.FieldRoundNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoundNumber(v)
		return nil
	case discussionround.FieldMode:
		v, ok := value.(discussionround.Mode)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMode(v)
		return nil
	case discussionround.FieldParticipants:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParticipants(v)
		return nil
	case discussionround.FieldConclusions:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConclusions(v)
		return nil
	case discussionround.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case discussionround.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DiscussionRound field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DiscussionRoundMutation) AddedFields() []string {
	var fields []string
	if m.addround_number != nil {
		fields = append(fields, discussionround.FieldRoundNumber)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DiscussionRoundMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case discussionround.FieldRoundNumber:
		return m.AddedRoundNumber()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DiscussionRoundMutation) AddField(name string, value ent.Value) error {
	switch name {
	case discussionround.FieldRoundNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRoundNumber(v)
		return nil
	}
	return fmt.Errorf("unknown DiscussionRound numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DiscussionRoundMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(discussionround.FieldConclusions) {
		fields = append(fields, discussionround.FieldConclusions)
	}
	if m.FieldCleared(discussionround.FieldCompletedAt) {
		fields = append(fields, discussionround.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DiscussionRoundMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DiscussionRoundMutation) ClearField(name string) error {
	switch name {
	case discussionround.FieldConclusions:
		m.ClearConclusions()
		return nil
	case discussionround.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown DiscussionRound nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DiscussionRoundMutation) ResetField(name string) error {
	switch name {
	case discussionround.FieldArenaID:
		m.ResetArenaID()
		return nil
	case discussionround.FieldRoundNumber:
		m.ResetRoundNumber()
		return nil
	case discussionround.FieldMode:
		m.ResetMode()
		return nil
	case discussionround.FieldParticipants:
		m.ResetParticipants()
		return nil
	case discussionround.FieldConclusions:
		m.ResetConclusions()
		return nil
	case discussionround.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case discussionround.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown DiscussionRound field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DiscussionRoundMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.arena != nil {
		edges = append(edges, discussionround.EdgeArena)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DiscussionRoundMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case discussionround.EdgeArena:
		if id := m.arena; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DiscussionRoundMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DiscussionRoundMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DiscussionRoundMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedarena {
		edges = append(edges, discussionround.EdgeArena)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DiscussionRoundMutation) EdgeCleared(name string) bool {
	switch name {
	case discussionround.EdgeArena:
		return m.clearedarena
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DiscussionRoundMutation) ClearEdge(name string) error {
	switch name {
	case discussionround.EdgeArena:
		m.ClearArena()
		return nil
	}
	return fmt.Errorf("unknown DiscussionRound unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DiscussionRoundMutation) ResetEdge(name string) error {
	switch name {
	case discussionround.EdgeArena:
		m.ResetArena()
		return nil
	}
	return fmt.Errorf("unknown DiscussionRound edge %s", name)
}

// EliminationEventMutation represents an operation that mutates the EliminationEvent nodes in the graph.
type EliminationEventMutation struct {
	config
	op            Op
	typ           string
	id            *int64
	period        *eliminationevent.Period
	strategy_id   *string
	score         *float64
	addscore      *float64
	reason        *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	arena         *string
	clearedarena  bool
	done          bool
	oldValue      func(context.Context) (*EliminationEvent, error)
	predicates    []predicate.EliminationEvent
}

var _ ent.Mutation = (*EliminationEventMutation)(nil)

// eliminationeventOption allows management of the mutation configuration using functional options.
type eliminationeventOption func(*EliminationEventMutation)

// newEliminationEventMutation creates new mutation for the EliminationEvent entity.
func newEliminationEventMutation(c config, op Op, opts ...eliminationeventOption) *EliminationEventMutation {
	m := &EliminationEventMutation{
		config:        c,
		op:            op,
		typ:           TypeEliminationEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEliminationEventID sets the ID field of the mutation.
func withEliminationEventID(id int64) eliminationeventOption {
	return func(m *EliminationEventMutation) {
		var (
			err   error
			once  sync.Once
			value *EliminationEvent
		)
		m.oldValue = func(ctx context.Context) (*EliminationEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EliminationEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEliminationEvent sets the old EliminationEvent of the mutation.
func withEliminationEvent(node *EliminationEvent) eliminationeventOption {
	return func(m *EliminationEventMutation) {
		m.oldValue = func(context.Context) (*EliminationEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EliminationEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EliminationEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of EliminationEvent entities.
func (m *EliminationEventMutation) SetID(id int64) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EliminationEventMutation) ID() (id int64, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EliminationEventMutation) IDs(ctx context.Context) ([]int64, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int64{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EliminationEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetArenaID sets the "arena_id" field.
func (m *EliminationEventMutation) SetArenaID(s string) {
	m.arena = &s
}

// ArenaID returns the value of the "arena_id" field in the mutation.
func (m *EliminationEventMutation) ArenaID() (r string, exists bool) {
	v := m.arena
	if v == nil {
		return
	}
	return *v, true
}

// OldArenaID returns the old "arena_id" field's value of the EliminationEvent entity.
// If the EliminationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EliminationEventMutation) OldArenaID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArenaID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArenaID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArenaID: %w", err)
	}
	return oldValue.ArenaID, nil
}

// ResetArenaID resets all changes to the "arena_id" field.
func (m *EliminationEventMutation) ResetArenaID() {
	m.arena = nil
}

// SetPeriod sets the "period" field.
func (m *EliminationEventMutation) SetPeriod(e eliminationevent.Period) {
	m.period = &e
}

// Period returns the value of the "period" field in the mutation.
func (m *EliminationEventMutation) Period() (r eliminationevent.Period, exists bool) {
	v := m.period
	if v == nil {
		return
	}
	return *v, true
}

// OldPeriod returns the old "period" field's value of the EliminationEvent entity.
// If the EliminationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EliminationEventMutation) OldPeriod(ctx context.Context) (v eliminationevent.Period, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPeriod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPeriod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPeriod: %w", err)
	}
	return oldValue.Period, nil
}

// ResetPeriod resets all changes to the "period" field.
func (m *EliminationEventMutation) ResetPeriod() {
	m.period = nil
}

// SetStrategyID sets the "strategy_id" field.
func (m *EliminationEventMutation) SetStrategyID(s string) {
	m.strategy_id = &s
}

// StrategyID returns the value of the "strategy_id" field in the mutation.
func (m *EliminationEventMutation) StrategyID() (r string, exists bool) {
	v := m.strategy_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStrategyID returns the old "strategy_id" field's value of the EliminationEvent entity.
// If the EliminationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EliminationEventMutation) OldStrategyID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStrategyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStrategyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStrategyID: %w", err)
	}
	return oldValue.StrategyID, nil
}

// ResetStrategyID resets all changes to the "strategy_id" field.
func (m *EliminationEventMutation) ResetStrategyID() {
	m.strategy_id = nil
}

// SetScore sets the "score" field.
func (m *EliminationEventMutation) SetScore(f float64) {
	m.score = &f
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *EliminationEventMutation) Score() (r float64, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the EliminationEvent entity.
// If the EliminationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EliminationEventMutation) OldScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds f to the "score" field.
func (m *EliminationEventMutation) AddScore(f float64) {
	if m.addscore != nil {
		*m.addscore += f
	} else {
		m.addscore = &f
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *EliminationEventMutation) AddedScore() (r float64, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *EliminationEventMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetReason sets the "reason" field.
func (m *EliminationEventMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *EliminationEventMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the EliminationEvent entity.
// If the EliminationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EliminationEventMutation) OldReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ResetReason resets all changes to the "reason" field.
func (m *EliminationEventMutation) ResetReason() {
	m.reason = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EliminationEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EliminationEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the EliminationEvent entity.
// If the EliminationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EliminationEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EliminationEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearArena clears the "arena" edge to the Arena entity.
func (m *EliminationEventMutation) ClearArena() {
	m.clearedarena = true
	m.clearedFields[eliminationevent.FieldArenaID] = struct{}{}
}

// ArenaCleared reports if the "arena" edge to the Arena entity was cleared.
func (m *EliminationEventMutation) ArenaCleared() bool {
	return m.clearedarena
}

// ArenaIDs returns the "arena" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ArenaID instead. It exists only for internal usage by the builders.
func (m *EliminationEventMutation) ArenaIDs() (ids []string) {
	if id := m.arena; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetArena resets all changes to the "arena" edge.
func (m *EliminationEventMutation) ResetArena() {
	m.arena = nil
	m.clearedarena = false
}

// Where appends a list predicates to the EliminationEventMutation builder.
func (m *EliminationEventMutation) Where(ps ...predicate.EliminationEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EliminationEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EliminationEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EliminationEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EliminationEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EliminationEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EliminationEvent).
func (m *EliminationEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EliminationEventMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.arena != nil {
		fields = append(fields, eliminationevent.FieldArenaID)
	}
	if m.period != nil {
		fields = append(fields, eliminationevent.FieldPeriod)
	}
	if m.strategy_id != nil {
		fields = append(fields, eliminationevent.FieldStrategyID)
	}
	if m.score != nil {
		fields = append(fields, eliminationevent.FieldScore)
	}
	if m.reason != nil {
		fields = append(fields, eliminationevent.FieldReason)
	}
	if m.created_at != nil {
		fields = append(fields, eliminationevent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EliminationEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case eliminationevent.FieldArenaID:
		return m.ArenaID()
	case eliminationevent.FieldPeriod:
		return m.Period()
	case eliminationevent.FieldStrategyID:
		return m.StrategyID()
	case eliminationevent.FieldScore:
		return m.Score()
	case eliminationevent.FieldReason:
		return m.Reason()
	case eliminationevent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EliminationEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case eliminationevent.FieldArenaID:
		return m.OldArenaID(ctx)
	case eliminationevent.FieldPeriod:
		return m.OldPeriod(ctx)
	case eliminationevent.FieldStrategyID:
		return m.OldStrategyID(ctx)
	case eliminationevent.FieldScore:
		return m.OldScore(ctx)
	case eliminationevent.FieldReason:
		return m.OldReason(ctx)
	case eliminationevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown EliminationEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EliminationEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case eliminationevent.FieldArenaID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArenaID(v)
		return nil
	case eliminationevent.FieldPeriod:
		v, ok := value.(eliminationevent.Period)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPeriod(v)
		return nil
	case eliminationevent.FieldStrategyID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStrategyID(v)
		return nil
	case eliminationevent.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case eliminationevent.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	case eliminationevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown EliminationEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EliminationEventMutation) AddedFields() []string {
	var fields []string
	if m.addscore != nil {
		fields = append(fields, eliminationevent.FieldScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EliminationEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case eliminationevent.FieldScore:
		return m.AddedScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EliminationEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case eliminationevent.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	}
	return fmt.Errorf("unknown EliminationEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EliminationEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EliminationEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EliminationEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown EliminationEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EliminationEventMutation) ResetField(name string) error {
	switch name {
	case eliminationevent.FieldArenaID:
		m.ResetArenaID()
		return nil
	case eliminationevent.FieldPeriod:
		m.ResetPeriod()
		return nil
	case eliminationevent.FieldStrategyID:
		m.ResetStrategyID()
		return nil
	case eliminationevent.FieldScore:
		m.ResetScore()
		return nil
	case eliminationevent.FieldReason:
		m.ResetReason()
		return nil
	case eliminationevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown EliminationEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EliminationEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.arena != nil {
		edges = append(edges, eliminationevent.EdgeArena)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EliminationEventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case eliminationevent.EdgeArena:
		if id := m.arena; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EliminationEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EliminationEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EliminationEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedarena {
		edges = append(edges, eliminationevent.EdgeArena)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EliminationEventMutation) EdgeCleared(name string) bool {
	switch name {
	case eliminationevent.EdgeArena:
		return m.clearedarena
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EliminationEventMutation) ClearEdge(name string) error {
	switch name {
	case eliminationevent.EdgeArena:
		m.ClearArena()
		return nil
	}
	return fmt.Errorf("unknown EliminationEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EliminationEventMutation) ResetEdge(name string) error {
	switch name {
	case eliminationevent.EdgeArena:
		m.ResetArena()
		return nil
	}
	return fmt.Errorf("unknown EliminationEvent edge %s", name)
}

// EvaluationReportMutation represents an operation that mutates the EvaluationReport nodes in the graph.
type EvaluationReportMutation struct {
	config
	op                Op
	typ               string
	id                *string
	period            *evaluationreport.Period
	evaluated         *int
	addevaluated      *int
	eliminated        *int
	addeliminated     *int
	min_floor_applied *bool
	rankings          *[]models.RankingEntry
	appendrankings    []models.RankingEntry
	created_at        *time.Time
	clearedFields     map[string]struct{}
	arena             *string
	clearedarena      bool
	done              bool
	oldValue          func(context.Context) (*EvaluationReport, error)
	predicates        []predicate.EvaluationReport
}

var _ ent.Mutation = (*EvaluationReportMutation)(nil)

// evaluationreportOption allows management of the mutation configuration using functional options.
type evaluationreportOption func(*EvaluationReportMutation)

// newEvaluationReportMutation creates new mutation for the EvaluationReport entity.
func newEvaluationReportMutation(c config, op Op, opts ...evaluationreportOption) *EvaluationReportMutation {
	m := &EvaluationReportMutation{
		config:        c,
		op:            op,
		typ:           TypeEvaluationReport,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEvaluationReportID sets the ID field of the mutation.
func withEvaluationReportID(id string) evaluationreportOption {
	return func(m *EvaluationReportMutation) {
		var (
			err   error
			once  sync.Once
			value *EvaluationReport
		)
		m.oldValue = func(ctx context.Context) (*EvaluationReport, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EvaluationReport.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvaluationReport sets the old EvaluationReport of the mutation.
func withEvaluationReport(node *EvaluationReport) evaluationreportOption {
	return func(m *EvaluationReportMutation) {
		m.oldValue = func(context.Context) (*EvaluationReport, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EvaluationReportMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EvaluationReportMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of EvaluationReport entities.
func (m *EvaluationReportMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EvaluationReportMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EvaluationReportMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EvaluationReport.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetArenaID sets the "arena_id" field.
func (m *EvaluationReportMutation) SetArenaID(s string) {
	m.arena = &s
}

// ArenaID returns the value of the "arena_id" field in the mutation.
func (m *EvaluationReportMutation) ArenaID() (r string, exists bool) {
	v := m.arena
	if v == nil {
		return
	}
	return *v, true
}

// OldArenaID returns the old "arena_id" field's value of the EvaluationReport entity.
// If the EvaluationReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationReportMutation) OldArenaID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArenaID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArenaID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArenaID: %w", err)
	}
	return oldValue.ArenaID, nil
}

// ResetArenaID resets all changes to the "arena_id" field.
func (m *EvaluationReportMutation) ResetArenaID() {
	m.arena = nil
}

// SetPeriod sets the "period" field.
func (m *EvaluationReportMutation) SetPeriod(e evaluationreport.Period) {
	m.period = &e
}

// Period returns the value of the "period" field in the mutation.
func (m *EvaluationReportMutation) Period() (r evaluationreport.Period, exists bool) {
	v := m.period
	if v == nil {
		return
	}
	return *v, true
}

// OldPeriod returns the old "period" field's value of the EvaluationReport entity.
// If the EvaluationReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationReportMutation) OldPeriod(ctx context.Context) (v evaluationreport.Period, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPeriod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPeriod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPeriod: %w", err)
	}
	return oldValue.Period, nil
}

// ResetPeriod resets all changes to the "period" field.
func (m *EvaluationReportMutation) ResetPeriod() {
	m.period = nil
}

// SetEvaluated sets the "evaluated" field.
func (m *EvaluationReportMutation) SetEvaluated(i int) {
	m.evaluated = &i
	m.addevaluated = nil
}

// Evaluated returns the value of the "evaluated" field in the mutation.
func (m *EvaluationReportMutation) Evaluated() (r int, exists bool) {
	v := m.evaluated
	if v == nil {
		return
	}
	return *v, true
}

// OldEvaluated returns the old "evaluated" field's value of the EvaluationReport entity.
// If the EvaluationReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationReportMutation) OldEvaluated(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvaluated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvaluated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvaluated: %w", err)
	}
	return oldValue.Evaluated, nil
}

// AddEvaluated adds i to the "evaluated" field.
func (m *EvaluationReportMutation) AddEvaluated(i int) {
	if m.addevaluated != nil {
		*m.addevaluated += i
	} else {
		m.addevaluated = &i
	}
}

// AddedEvaluated returns the value that was added to the "evaluated" field in this mutation.
func (m *EvaluationReportMutation) AddedEvaluated() (r int, exists bool) {
	v := m.addevaluated
	if v == nil {
		return
	}
	return *v, true
}

// ResetEvaluated resets all changes to the "evaluated" field.
func (m *EvaluationReportMutation) ResetEvaluated() {
	m.evaluated = nil
	m.addevaluated = nil
}

// SetEliminated sets the "eliminated" field.
func (m *EvaluationReportMutation) SetEliminated(i int) {
	m.eliminated = &i
	m.addeliminated = nil
}

// Eliminated returns the value of the "eliminated" field in the mutation.
func (m *EvaluationReportMutation) Eliminated() (r int, exists bool) {
	v := m.eliminated
	if v == nil {
		return
	}
	return *v, true
}

// OldEliminated returns the old "eliminated" field's value of the EvaluationReport entity.
// If the EvaluationReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationReportMutation) OldEliminated(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEliminated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEliminated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEliminated: %w", err)
	}
	return oldValue.Eliminated, nil
}

// AddEliminated adds i to the "eliminated" field.
func (m *EvaluationReportMutation) AddEliminated(i int) {
	if m.addeliminated != nil {
		*m.addeliminated += i
	} else {
		m.addeliminated = &i
	}
}

// AddedEliminated returns the value that was added to the "eliminated" field in this mutation.
func (m *EvaluationReportMutation) AddedEliminated() (r int, exists bool) {
	v := m.addeliminated
	if v == nil {
		return
	}
	return *v, true
}

// ResetEliminated resets all changes to the "eliminated" field.
func (m *EvaluationReportMutation) ResetEliminated() {
	m.eliminated = nil
	m.addeliminated = nil
}

// SetMinFloorApplied sets the "min_floor_applied" field.
func (m *EvaluationReportMutation) SetMinFloorApplied(b bool) {
	m.min_floor_applied = &b
}

// MinFloorApplied returns the value of the "min_floor_applied" field in the mutation.
func (m *EvaluationReportMutation) MinFloorApplied() (r bool, exists bool) {
	v := m.min_floor_applied
	if v == nil {
		return
	}
	return *v, true
}

// OldMinFloorApplied returns the old "min_floor_applied" field's value of the EvaluationReport entity.
// If the EvaluationReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationReportMutation) OldMinFloorApplied(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMinFloorApplied is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMinFloorApplied requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMinFloorApplied: %w", err)
	}
	return oldValue.MinFloorApplied, nil
}

// ResetMinFloorApplied resets all changes to the "min_floor_applied" field.
func (m *EvaluationReportMutation) ResetMinFloorApplied() {
	m.min_floor_applied = nil
}

// SetRankings sets the "rankings" field.
func (m *EvaluationReportMutation) SetRankings(me []models.RankingEntry) {
	m.rankings = &me
	m.appendrankings = nil
}

// Rankings returns the value of the "rankings" field in the mutation.
func (m *EvaluationReportMutation) Rankings() (r []models.RankingEntry, exists bool) {
	v := m.rankings
	if v == nil {
		return
	}
	return *v, true
}

// OldRankings returns the old "rankings" field's value of the EvaluationReport entity.
// If the EvaluationReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationReportMutation) OldRankings(ctx context.Context) (v []models.RankingEntry, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRankings is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRankings requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRankings: %w", err)
	}
	return oldValue.Rankings, nil
}

// AppendRankings adds me to the "rankings" field.
func (m *EvaluationReportMutation) AppendRankings(me []models.RankingEntry) {
	m.appendrankings = append(m.appendrankings, me...)
}

// AppendedRankings returns the list of values that were appended to the "rankings" field in this mutation.
func (m *EvaluationReportMutation) AppendedRankings() ([]models.RankingEntry, bool) {
	if len(m.appendrankings) == 0 {
		return nil, false
	}
	return m.appendrankings, true
}

// ResetRankings resets all changes to the "rankings" field.
func (m *EvaluationReportMutation) ResetRankings() {
	m.rankings = nil
	m.appendrankings = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EvaluationReportMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EvaluationReportMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the EvaluationReport entity.
// If the EvaluationReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationReportMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EvaluationReportMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearArena clears the "arena" edge to the Arena entity.
func (m *EvaluationReportMutation) ClearArena() {
	m.clearedarena = true
	m.clearedFields[evaluationreport.FieldArenaID] = struct{}{}
}

// ArenaCleared reports if the "arena" edge to the Arena entity was cleared.
func (m *EvaluationReportMutation) ArenaCleared() bool {
	return m.clearedarena
}

// ArenaIDs returns the "arena" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ArenaID instead. It exists only for internal usage by the builders.
func (m *EvaluationReportMutation) ArenaIDs() (ids []string) {
	if id := m.arena; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetArena resets all changes to the "arena" edge.
func (m *EvaluationReportMutation) ResetArena() {
	m.arena = nil
	m.clearedarena = false
}

// Where appends a list predicates to the EvaluationReportMutation builder.
func (m *EvaluationReportMutation) Where(ps ...predicate.EvaluationReport) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EvaluationReportMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EvaluationReportMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EvaluationReport, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EvaluationReportMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EvaluationReportMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EvaluationReport).
func (m *EvaluationReportMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EvaluationReportMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.arena != nil {
		fields = append(fields, evaluationreport.FieldArenaID)
	}
	if m.period != nil {
		fields = append(fields, evaluationreport.FieldPeriod)
	}
	if m.evaluated != nil {
		fields = append(fields, evaluationreport.FieldEvaluated)
	}
	if m.eliminated != nil {
		fields = append(fields, evaluationreport.FieldEliminated)
	}
	if m.min_floor_applied != nil {
		fields = append(fields, evaluationreport.FieldMinFloorApplied)
	}
	if m.rankings != nil {
		fields = append(fields, evaluationreport.FieldRankings)
	}
	if m.created_at != nil {
		fields = append(fields, evaluationreport.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EvaluationReportMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case evaluationreport.FieldArenaID:
		return m.ArenaID()
	case evaluationreport.FieldPeriod:
		return m.Period()
	case evaluationreport.FieldEvaluated:
		return m.Evaluated()
	case evaluationreport.FieldEliminated:
		return m.Eliminated()
	case evaluationreport.FieldMinFloorApplied:
		return m.MinFloorApplied()
	case evaluationreport.FieldRankings:
		return m.Rankings()
	case evaluationreport.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EvaluationReportMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case evaluationreport.FieldArenaID:
		return m.OldArenaID(ctx)
	case evaluationreport.FieldPeriod:
		return m.OldPeriod(ctx)
	case evaluationreport.FieldEvaluated:
		return m.OldEvaluated(ctx)
	case evaluationreport.FieldEliminated:
		return m.OldEliminated(ctx)
	case evaluationreport.FieldMinFloorApplied:
		return m.OldMinFloorApplied(ctx)
	case evaluationreport.FieldRankings:
		return m.OldRankings(ctx)
	case evaluationreport.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown EvaluationReport field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EvaluationReportMutation) SetField(name string, value ent.Value) error {
	switch name {
	case evaluationreport.FieldArenaID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArenaID(v)
		return nil
	case evaluationreport.FieldPeriod:
		v, ok := value.(evaluationreport.Period)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPeriod(v)
		return nil
	case evaluationreport.FieldEvaluated:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvaluated(v)
		return nil
	case evaluationreport.FieldEliminated:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEliminated(v)
		return nil
	case evaluationreport.FieldMinFloorApplied:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMinFloorApplied(v)
		return nil
	case evaluationreport.FieldRankings:
		v, ok := value.([]models.RankingEntry)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRankings(v)
		return nil
	case evaluationreport.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown EvaluationReport field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EvaluationReportMutation) AddedFields() []string {
	var fields []string
	if m.addevaluated != nil {
		fields = append(fields, evaluationreport.FieldEvaluated)
	}
	if m.addeliminated != nil {
		fields = append(fields, evaluationreport.FieldEliminated)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EvaluationReportMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case evaluationreport.FieldEvaluated:
		return m.AddedEvaluated()
	case evaluationreport.FieldEliminated:
		return m.AddedEliminated()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EvaluationReportMutation) AddField(name string, value ent.Value) error {
	switch name {
	case evaluationreport.FieldEvaluated:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEvaluated(v)
		return nil
	case evaluationreport.FieldEliminated:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEliminated(v)
		return nil
	}
	return fmt.Errorf("unknown EvaluationReport numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EvaluationReportMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EvaluationReportMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EvaluationReportMutation) ClearField(name string) error {
	return fmt.Errorf("unknown EvaluationReport nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EvaluationReportMutation) ResetField(name string) error {
	switch name {
	case evaluationreport.FieldArenaID:
		m.ResetArenaID()
		return nil
	case evaluationreport.FieldPeriod:
		m.ResetPeriod()
		return nil
	case evaluationreport.FieldEvaluated:
		m.ResetEvaluated()
		return nil
	case evaluationreport.FieldEliminated:
		m.ResetEliminated()
		return nil
	case evaluationreport.FieldMinFloorApplied:
		m.ResetMinFloorApplied()
		return nil
	case evaluationreport.FieldRankings:
		m.ResetRankings()
		return nil
	case evaluationreport.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown EvaluationReport field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EvaluationReportMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.arena != nil {
		edges = append(edges, evaluationreport.EdgeArena)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EvaluationReportMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case evaluationreport.EdgeArena:
		if id := m.arena; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EvaluationReportMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EvaluationReportMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EvaluationReportMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedarena {
		edges = append(edges, evaluationreport.EdgeArena)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EvaluationReportMutation) EdgeCleared(name string) bool {
	switch name {
	case evaluationreport.EdgeArena:
		return m.clearedarena
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EvaluationReportMutation) ClearEdge(name string) error {
	switch name {
	case evaluationreport.EdgeArena:
		m.ClearArena()
		return nil
	}
	return fmt.Errorf("unknown EvaluationReport unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EvaluationReportMutation) ResetEdge(name string) error {
	switch name {
	case evaluationreport.EdgeArena:
		m.ResetArena()
		return nil
	}
	return fmt.Errorf("unknown EvaluationReport edge %s", name)
}

// PluginSettingMutation represents an operation that mutates the PluginSetting nodes in the graph.
type PluginSettingMutation struct {
	config
	op               Op
	typ              string
	id               *string
	schedule_enabled *bool
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*PluginSetting, error)
	predicates       []predicate.PluginSetting
}

var _ ent.Mutation = (*PluginSettingMutation)(nil)

// pluginsettingOption allows management of the mutation configuration using functional options.
type pluginsettingOption func(*PluginSettingMutation)

// newPluginSettingMutation creates new mutation for the PluginSetting entity.
func newPluginSettingMutation(c config, op Op, opts ...pluginsettingOption) *PluginSettingMutation {
	m := &PluginSettingMutation{
		config:        c,
		op:            op,
		typ:           TypePluginSetting,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPluginSettingID sets the ID field of the mutation.
func withPluginSettingID(id string) pluginsettingOption {
	return func(m *PluginSettingMutation) {
		var (
			err   error
			once  sync.Once
			value *PluginSetting
		)
		m.oldValue = func(ctx context.Context) (*PluginSetting, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PluginSetting.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPluginSetting sets the old PluginSetting of the mutation.
func withPluginSetting(node *PluginSetting) pluginsettingOption {
	return func(m *PluginSettingMutation) {
		m.oldValue = func(context.Context) (*PluginSetting, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PluginSettingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PluginSettingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PluginSetting entities.
func (m *PluginSettingMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PluginSettingMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PluginSettingMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PluginSetting.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetScheduleEnabled sets the "schedule_enabled" field.
func (m *PluginSettingMutation) SetScheduleEnabled(b bool) {
	m.schedule_enabled = &b
}

// ScheduleEnabled returns the value of the "schedule_enabled" field in the mutation.
func (m *PluginSettingMutation) ScheduleEnabled() (r bool, exists bool) {
	v := m.schedule_enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldScheduleEnabled returns the old "schedule_enabled" field's value of the PluginSetting entity.
// If the PluginSetting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PluginSettingMutation) OldScheduleEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScheduleEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScheduleEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScheduleEnabled: %w", err)
	}
	return oldValue.ScheduleEnabled, nil
}

// ResetScheduleEnabled resets all changes to the "schedule_enabled" field.
func (m *PluginSettingMutation) ResetScheduleEnabled() {
	m.schedule_enabled = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PluginSettingMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PluginSettingMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the PluginSetting entity.
// If the PluginSetting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PluginSettingMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PluginSettingMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the PluginSettingMutation builder.
func (m *PluginSettingMutation) Where(ps ...predicate.PluginSetting) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PluginSettingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PluginSettingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PluginSetting, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PluginSettingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PluginSettingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PluginSetting).
func (m *PluginSettingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PluginSettingMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.schedule_enabled != nil {
		fields = append(fields, pluginsetting.FieldScheduleEnabled)
	}
	if m.updated_at != nil {
		fields = append(fields, pluginsetting.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PluginSettingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pluginsetting.FieldScheduleEnabled:
		return m.ScheduleEnabled()
	case pluginsetting.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PluginSettingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pluginsetting.FieldScheduleEnabled:
		return m.OldScheduleEnabled(ctx)
	case pluginsetting.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PluginSetting field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PluginSettingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pluginsetting.FieldScheduleEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScheduleEnabled(v)
		return nil
	case pluginsetting.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PluginSetting field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PluginSettingMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PluginSettingMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PluginSettingMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown PluginSetting numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PluginSettingMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PluginSettingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PluginSettingMutation) ClearField(name string) error {
	return fmt.Errorf("unknown PluginSetting nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PluginSettingMutation) ResetField(name string) error {
	switch name {
	case pluginsetting.FieldScheduleEnabled:
		m.ResetScheduleEnabled()
		return nil
	case pluginsetting.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown PluginSetting field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PluginSettingMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PluginSettingMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PluginSettingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PluginSettingMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PluginSettingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PluginSettingMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PluginSettingMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PluginSetting unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PluginSettingMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PluginSetting edge %s", name)
}

// SchemaAuditMutation represents an operation that mutates the SchemaAudit nodes in the graph.
type SchemaAuditMutation struct {
	config
	op            Op
	typ           string
	id            *int64
	table_name    *string
	column_name   *string
	action        *string
	old_type      *string
	new_type      *string
	reason        *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*SchemaAudit, error)
	predicates    []predicate.SchemaAudit
}

var _ ent.Mutation = (*SchemaAuditMutation)(nil)

// schemaauditOption allows management of the mutation configuration using functional options.
type schemaauditOption func(*SchemaAuditMutation)

// newSchemaAuditMutation creates new mutation for the SchemaAudit entity.
func newSchemaAuditMutation(c config, op Op, opts ...schemaauditOption) *SchemaAuditMutation {
	m := &SchemaAuditMutation{
		config:        c,
		op:            op,
		typ:           TypeSchemaAudit,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSchemaAuditID sets the ID field of the mutation.
func withSchemaAuditID(id int64) schemaauditOption {
	return func(m *SchemaAuditMutation) {
		var (
			err   error
			once  sync.Once
			value *SchemaAudit
		)
		m.oldValue = func(ctx context.Context) (*SchemaAudit, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SchemaAudit.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSchemaAudit sets the old SchemaAudit of the mutation.
func withSchemaAudit(node *SchemaAudit) schemaauditOption {
	return func(m *SchemaAuditMutation) {
		m.oldValue = func(context.Context) (*SchemaAudit, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SchemaAuditMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SchemaAuditMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SchemaAudit entities.
func (m *SchemaAuditMutation) SetID(id int64) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SchemaAuditMutation) ID() (id int64, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SchemaAuditMutation) IDs(ctx context.Context) ([]int64, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int64{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SchemaAudit.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTableName sets the "table_name" field.
func (m *SchemaAuditMutation) SetTableName(s string) {
	m.table_name = &s
}

// TableName returns the value of the "table_name" field in the mutation.
func (m *SchemaAuditMutation) TableName() (r string, exists bool) {
	v := m.table_name
	if v == nil {
		return
	}
	return *v, true
}

// OldTableName returns the old "table_name" field's value of the SchemaAudit entity.
// If the SchemaAudit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SchemaAuditMutation) OldTableName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTableName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTableName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTableName: %w", err)
	}
	return oldValue.TableName, nil
}

// ResetTableName resets all changes to the "table_name" field.
func (m *SchemaAuditMutation) ResetTableName() {
	m.table_name = nil
}

// SetColumnName sets the "column_name" field.
func (m *SchemaAuditMutation) SetColumnName(s string) {
	m.column_name = &s
}

// ColumnName returns the value of the "column_name" field in the mutation.
func (m *SchemaAuditMutation) ColumnName() (r string, exists bool) {
	v := m.column_name
	if v == nil {
		return
	}
	return *v, true
}

// OldColumnName returns the old "column_name" field's value of the SchemaAudit entity.
// If the SchemaAudit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SchemaAuditMutation) OldColumnName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldColumnName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldColumnName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldColumnName: %w", err)
	}
	return oldValue.ColumnName, nil
}

// ClearColumnName clears the value of the "column_name" field.
func (m *SchemaAuditMutation) ClearColumnName() {
	m.column_name = nil
	m.clearedFields[schemaaudit.FieldColumnName] = struct{}{}
}

// ColumnNameCleared returns if the "column_name" field was cleared in this mutation.
func (m *SchemaAuditMutation) ColumnNameCleared() bool {
	_, ok := m.clearedFields[schemaaudit.FieldColumnName]
	return ok
}

// ResetColumnName resets all changes to the "column_name" field.
func (m *SchemaAuditMutation) ResetColumnName() {
	m.column_name = nil
	delete(m.clearedFields, schemaaudit.FieldColumnName)
}

// SetAction sets the "action" field.
func (m *SchemaAuditMutation) SetAction(s string) {
	m.action = &s
}

// Action returns the value of the "action" field in the mutation.
func (m *SchemaAuditMutation) Action() (r string, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the SchemaAudit entity.
// If the SchemaAudit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SchemaAuditMutation) OldAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *SchemaAuditMutation) ResetAction() {
	m.action = nil
}

// SetOldType sets the "old_type" field.
func (m *SchemaAuditMutation) SetOldType(s string) {
	m.old_type = &s
}

// OldType returns the value of the "old_type" field in the mutation.
func (m *SchemaAuditMutation) OldType() (r string, exists bool) {
	v := m.old_type
	if v == nil {
		return
	}
	return *v, true
}

// OldOldType returns the old "old_type" field's value of the SchemaAudit entity.
// If the SchemaAudit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SchemaAuditMutation) OldOldType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOldType: %w", err)
	}
	return oldValue.OldType, nil
}

// ClearOldType clears the value of the "old_type" field.
func (m *SchemaAuditMutation) ClearOldType() {
	m.old_type = nil
	m.clearedFields[schemaaudit.FieldOldType] = struct{}{}
}

// OldTypeCleared returns if the "old_type" field was cleared in this mutation.
func (m *SchemaAuditMutation) OldTypeCleared() bool {
	_, ok := m.clearedFields[schemaaudit.FieldOldType]
	return ok
}

// ResetOldType resets all changes to the "old_type" field.
func (m *SchemaAuditMutation) ResetOldType() {
	m.old_type = nil
	delete(m.clearedFields, schemaaudit.FieldOldType)
}

// SetNewType sets the "new_type" field.
func (m *SchemaAuditMutation) SetNewType(s string) {
	m.new_type = &s
}

// NewType returns the value of the "new_type" field in the mutation.
func (m *SchemaAuditMutation) NewType() (r string, exists bool) {
	v := m.new_type
	if v == nil {
		return
	}
	return *v, true
}

// OldNewType returns the old "new_type" field's value of the SchemaAudit entity.
// If the SchemaAudit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SchemaAuditMutation) OldNewType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNewType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNewType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNewType: %w", err)
	}
	return oldValue.NewType, nil
}

// ClearNewType clears the value of the "new_type" field.
func (m *SchemaAuditMutation) ClearNewType() {
	m.new_type = nil
	m.clearedFields[schemaaudit.FieldNewType] = struct{}{}
}

// NewTypeCleared returns if the "new_type" field was cleared in this mutation.
func (m *SchemaAuditMutation) NewTypeCleared() bool {
	_, ok := m.clearedFields[schemaaudit.FieldNewType]
	return ok
}

// ResetNewType resets all changes to the "new_type" field.
func (m *SchemaAuditMutation) ResetNewType() {
	m.new_type = nil
	delete(m.clearedFields, schemaaudit.FieldNewType)
}

// SetReason sets the "reason" field.
func (m *SchemaAuditMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *SchemaAuditMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the SchemaAudit entity.
// If the SchemaAudit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SchemaAuditMutation) OldReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ClearReason clears the value of the "reason" field.
func (m *SchemaAuditMutation) ClearReason() {
	m.reason = nil
	m.clearedFields[schemaaudit.FieldReason] = struct{}{}
}

// ReasonCleared returns if the "reason" field was cleared in this mutation.
func (m *SchemaAuditMutation) ReasonCleared() bool {
	_, ok := m.clearedFields[schemaaudit.FieldReason]
	return ok
}

// ResetReason resets all changes to the "reason" field.
func (m *SchemaAuditMutation) ResetReason() {
	m.reason = nil
	delete(m.clearedFields, schemaaudit.FieldReason)
}

// SetCreatedAt sets the "created_at" field.
func (m *SchemaAuditMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SchemaAuditMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SchemaAudit entity.
// If the SchemaAudit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SchemaAuditMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SchemaAuditMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the SchemaAuditMutation builder.
func (m *SchemaAuditMutation) Where(ps ...predicate.SchemaAudit) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SchemaAuditMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SchemaAuditMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SchemaAudit, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SchemaAuditMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SchemaAuditMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SchemaAudit).
func (m *SchemaAuditMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SchemaAuditMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.table_name != nil {
		fields = append(fields, schemaaudit.FieldTableName)
	}
	if m.column_name != nil {
		fields = append(fields, schemaaudit.FieldColumnName)
	}
	if m.action != nil {
		fields = append(fields, schemaaudit.FieldAction)
	}
	if m.old_type != nil {
		fields = append(fields, schemaaudit.FieldOldType)
	}
	if m.new_type != nil {
		fields = append(fields, schemaaudit.FieldNewType)
	}
	if m.reason != nil {
		fields = append(fields, schemaaudit.FieldReason)
	}
	if m.created_at != nil {
		fields = append(fields, schemaaudit.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SchemaAuditMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case schemaaudit.FieldTableName:
		return m.TableName()
	case schemaaudit.FieldColumnName:
		return m.ColumnName()
	case schemaaudit.FieldAction:
		return m.Action()
	case schemaaudit.FieldOldType:
		return m.OldType()
	case schemaaudit.FieldNewType:
		return m.NewType()
	case schemaaudit.FieldReason:
		return m.Reason()
	case schemaaudit.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SchemaAuditMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case schemaaudit.FieldTableName:
		return m.OldTableName(ctx)
	case schemaaudit.FieldColumnName:
		return m.OldColumnName(ctx)
	case schemaaudit.FieldAction:
		return m.OldAction(ctx)
	case schemaaudit.FieldOldType:
		return m.OldOldType(ctx)
	case schemaaudit.FieldNewType:
		return m.OldNewType(ctx)
	case schemaaudit.FieldReason:
		return m.OldReason(ctx)
	case schemaaudit.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SchemaAudit field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SchemaAuditMutation) SetField(name string, value ent.Value) error {
	switch name {
	case schemaaudit.FieldTableName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTableName(v)
		return nil
	case schemaaudit.FieldColumnName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetColumnName(v)
		return nil
	case schemaaudit.FieldAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case schemaaudit.FieldOldType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOldType(v)
		return nil
	case schemaaudit.FieldNewType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNewType(v)
		return nil
	case schemaaudit.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	case schemaaudit.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SchemaAudit field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SchemaAuditMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SchemaAuditMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SchemaAuditMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown SchemaAudit numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SchemaAuditMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(schemaaudit.FieldColumnName) {
		fields = append(fields, schemaaudit.FieldColumnName)
	}
	if m.FieldCleared(schemaaudit.FieldOldType) {
		fields = append(fields, schemaaudit.FieldOldType)
	}
	if m.FieldCleared(schemaaudit.FieldNewType) {
		fields = append(fields, schemaaudit.FieldNewType)
	}
	if m.FieldCleared(schemaaudit.FieldReason) {
		fields = append(fields, schemaaudit.FieldReason)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SchemaAuditMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SchemaAuditMutation) ClearField(name string) error {
	switch name {
	case schemaaudit.FieldColumnName:
		m.ClearColumnName()
		return nil
	case schemaaudit.FieldOldType:
		m.ClearOldType()
		return nil
	case schemaaudit.FieldNewType:
		m.ClearNewType()
		return nil
	case schemaaudit.FieldReason:
		m.ClearReason()
		return nil
	}
	return fmt.Errorf("unknown SchemaAudit nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SchemaAuditMutation) ResetField(name string) error {
	switch name {
	case schemaaudit.FieldTableName:
		m.ResetTableName()
		return nil
	case schemaaudit.FieldColumnName:
		m.ResetColumnName()
		return nil
	case schemaaudit.FieldAction:
		m.ResetAction()
		return nil
	case schemaaudit.FieldOldType:
		m.ResetOldType()
		return nil
	case schemaaudit.FieldNewType:
		m.ResetNewType()
		return nil
	case schemaaudit.FieldReason:
		m.ResetReason()
		return nil
	case schemaaudit.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown SchemaAudit field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SchemaAuditMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SchemaAuditMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SchemaAuditMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SchemaAuditMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SchemaAuditMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SchemaAuditMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SchemaAuditMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SchemaAudit unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SchemaAuditMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SchemaAudit edge %s", name)
}

// StrategyMutation represents an operation that mutates the Strategy nodes in the graph.
type StrategyMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	name                   *string
	agent_id               *string
	agent_role             *strategy.AgentRole
	stage                  *strategy.Stage
	is_active              *bool
	current_score          *float64
	addcurrent_score       *float64
	current_rank           *int
	addcurrent_rank        *int
	logic                  *string
	rules                  *models.StrategyRules
	profitability_score    *float64
	addprofitability_score *float64
	risk_score             *float64
	addrisk_score          *float64
	stability_score        *float64
	addstability_score     *float64
	adaptability_score     *float64
	addadaptability_score  *float64
	created_at             *time.Time
	updated_at             *time.Time
	clearedFields          map[string]struct{}
	arena                  *string
	clearedarena           bool
	done                   bool
	oldValue               func(context.Context) (*Strategy, error)
	predicates             []predicate.Strategy
}

var _ ent.Mutation = (*StrategyMutation)(nil)

// strategyOption allows management of the mutation configuration using functional options.
type strategyOption func(*StrategyMutation)

// newStrategyMutation creates new mutation for the Strategy entity.
func newStrategyMutation(c config, op Op, opts ...strategyOption) *StrategyMutation {
	m := &StrategyMutation{
		config:        c,
		op:            op,
		typ:           TypeStrategy,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStrategyID sets the ID field of the mutation.
func withStrategyID(id string) strategyOption {
	return func(m *StrategyMutation) {
		var (
			err   error
			once  sync.Once
			value *Strategy
		)
		m.oldValue = func(ctx context.Context) (*Strategy, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Strategy.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStrategy sets the old Strategy of the mutation.
func withStrategy(node *Strategy) strategyOption {
	return func(m *StrategyMutation) {
		m.oldValue = func(context.Context) (*Strategy, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StrategyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StrategyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Strategy entities.
func (m *StrategyMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StrategyMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StrategyMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Strategy.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetArenaID sets the "arena_id" field.
func (m *StrategyMutation) SetArenaID(s string) {
	m.arena = &s
}

// ArenaID returns the value of the "arena_id" field in the mutation.
func (m *StrategyMutation) ArenaID() (r string, exists bool) {
	v := m.arena
	if v == nil {
		return
	}
	return *v, true
}

// OldArenaID returns the old "arena_id" field's value of the Strategy entity.
// If the Strategy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StrategyMutation) OldArenaID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArenaID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArenaID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArenaID: %w", err)
	}
	return oldValue.ArenaID, nil
}

// ResetArenaID resets all changes to the "arena_id" field.
func (m *StrategyMutation) ResetArenaID() {
	m.arena = nil
}

// SetName sets the "name" field.
func (m *StrategyMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *StrategyMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Strategy entity.
// If the Strategy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StrategyMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *StrategyMutation) ResetName() {
	m.name = nil
}

// SetAgentID sets the "agent_id" field.
func (m *StrategyMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *StrategyMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the Strategy entity.
// If the Strategy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StrategyMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *StrategyMutation) ResetAgentID() {
	m.agent_id = nil
}

// SetAgentRole sets the "agent_role" field.
func (m *StrategyMutation) SetAgentRole(sr strategy.AgentRole) {
	m.agent_role = &sr
}

// AgentRole returns the value of the "agent_role" field in the mutation.
func (m *StrategyMutation) AgentRole() (r strategy.AgentRole, exists bool) {
	v := m.agent_role
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentRole returns the old "agent_role" field's value of the Strategy entity.
// If the Strategy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StrategyMutation) OldAgentRole(ctx context.Context) (v strategy.AgentRole, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentRole: %w", err)
	}
	return oldValue.AgentRole, nil
}

// ResetAgentRole resets all changes to the "agent_role" field.
func (m *StrategyMutation) ResetAgentRole() {
	m.agent_role = nil
}

// SetStage sets the "stage" field.
func (m *StrategyMutation) SetStage(s strategy.Stage) {
	m.stage = &s
}

// Stage returns the value of the "stage" field in the mutation.
func (m *StrategyMutation) Stage() (r strategy.Stage, exists bool) {
	v := m.stage
	if v == nil {
		return
	}
	return *v, true
}

// OldStage returns the old "stage" field's value of the Strategy entity.
// If the Strategy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StrategyMutation) OldStage(ctx context.Context) (v strategy.Stage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStage: %w", err)
	}
	return oldValue.Stage, nil
}

// ResetStage resets all changes to the "stage" field.
func (m *StrategyMutation) ResetStage() {
	m.stage = nil
}

// SetIsActive sets the "is_active" field.
func (m *StrategyMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *StrategyMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the Strategy entity.
// If the Strategy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StrategyMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *StrategyMutation) ResetIsActive() {
	m.is_active = nil
}

// SetCurrentScore sets the "current_score" field.
func (m *StrategyMutation) SetCurrentScore(f float64) {
	m.current_score = &f
	m.addcurrent_score = nil
}

// CurrentScore returns the value of the "current_score" field in the mutation.
func (m *StrategyMutation) CurrentScore() (r float64, exists bool) {
	v := m.current_score
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentScore returns the old "current_score" field's value of the Strategy entity.
// If the Strategy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StrategyMutation) OldCurrentScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentScore: %w", err)
	}
	return oldValue.CurrentScore, nil
}

// AddCurrentScore adds f to the "current_score" field.
func (m *StrategyMutation) AddCurrentScore(f float64) {
	if m.addcurrent_score != nil {
		*m.addcurrent_score += f
	} else {
		m.addcurrent_score = &f
	}
}

// AddedCurrentScore returns the value that was added to the "current_score" field in this mutation.
func (m *StrategyMutation) AddedCurrentScore() (r float64, exists bool) {
	v := m.addcurrent_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetCurrentScore resets all changes to the "current_score" field.
func (m *StrategyMutation) ResetCurrentScore() {
	m.current_score = nil
	m.addcurrent_score = nil
}

// SetCurrentRank sets the "current_rank" field.
func (m *StrategyMutation) SetCurrentRank(i int) {
	m.current_rank = &i
	m.addcurrent_rank = nil
}

// CurrentRank returns the value of the "current_rank" field in the mutation.
func (m *StrategyMutation) CurrentRank() (r int, exists bool) {
	v := m.current_rank
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentRank returns the old "current_rank" field's value of the Strategy entity.
// If the Strategy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StrategyMutation) OldCurrentRank(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentRank is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentRank requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentRank: %w", err)
	}
	return oldValue.CurrentRank, nil
}

// AddCurrentRank adds i to the "current_rank" field.
func (m *StrategyMutation) AddCurrentRank(i int) {
	if m.addcurrent_rank != nil {
		*m.addcurrent_rank += i
	} else {
		m.addcurrent_rank = &i
	}
}

// AddedCurrentRank returns the value that was added to the "current_rank" field in this mutation.
func (m *StrategyMutation) AddedCurrentRank() (r int, exists bool) {
	v := m.addcurrent_rank
	if v == nil {
		return
	}
	return *v, true
}

// ResetCurrentRank resets all changes to the "current_rank" field.
func (m *StrategyMutation) ResetCurrentRank() {
	m.current_rank = nil
	m.addcurrent_rank = nil
}

// SetLogic sets the "logic" field.
func (m *StrategyMutation) SetLogic(s string) {
	m.logic = &s
}

// Logic returns the value of the "logic" field in the mutation.
func (m *StrategyMutation) Logic() (r string, exists bool) {
	v := m.logic
	if v == nil {
		return
	}
	return *v, true
}

// OldLogic returns the old "logic" field's value of the Strategy entity.
// If the Strategy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StrategyMutation) OldLogic(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLogic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLogic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLogic: %w", err)
	}
	return oldValue.Logic, nil
}

// ClearLogic clears the value of the "logic" field.
func (m *StrategyMutation) ClearLogic() {
	m.logic = nil
	m.clearedFields[strategy.FieldLogic] = struct{}{}
}

// LogicCleared returns if the "logic" field was cleared in this mutation.
func (m *StrategyMutation) LogicCleared() bool {
	_, ok := m.clearedFields[strategy.FieldLogic]
	return ok
}

// ResetLogic resets all changes to the "logic" field.
func (m *StrategyMutation) ResetLogic() {
	m.logic = nil
	delete(m.clearedFields, strategy.FieldLogic)
}

// SetRules sets the "rules" field.
func (m *StrategyMutation) SetRules(mr models.StrategyRules) {
	m.rules = &mr
}

// Rules returns the value of the "rules" field in the mutation.
func (m *StrategyMutation) Rules() (r models.StrategyRules, exists bool) {
	v := m.rules
	if v == nil {
		return
	}
	return *v, true
}

// OldRules returns the old "rules" field's value of the Strategy entity.
// If the Strategy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StrategyMutation) OldRules(ctx context.Context) (v models.StrategyRules, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRules is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRules requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRules: %w", err)
	}
	return oldValue.Rules, nil
}

// ResetRules resets all changes to the "rules" field.
func (m *StrategyMutation) ResetRules() {
	m.rules = nil
}

// SetProfitabilityScore sets the "profitability_score" field.
func (m *StrategyMutation) SetProfitabilityScore(f float64) {
	m.profitability_score = &f
	m.addprofitability_score = nil
}

// ProfitabilityScore returns the value of the "profitability_score" field in the mutation.
func (m *StrategyMutation) ProfitabilityScore() (r float64, exists bool) {
	v := m.profitability_score
	if v == nil {
		return
	}
	return *v, true
}

// OldProfitabilityScore returns the old "profitability_score" field's value of the Strategy entity.
// If the Strategy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StrategyMutation) OldProfitabilityScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProfitabilityScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProfitabilityScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProfitabilityScore: %w", err)
	}
	return oldValue.ProfitabilityScore, nil
}

// AddProfitabilityScore adds f to the "profitability_score" field.
func (m *StrategyMutation) AddProfitabilityScore(f float64) {
	if m.addprofitability_score != nil {
		*m.addprofitability_score += f
	} else {
		m.addprofitability_score = &f
	}
}

// AddedProfitabilityScore returns the value that was added to the "profitability_score" field in this mutation.
func (m *StrategyMutation) AddedProfitabilityScore() (r float64, exists bool) {
	v := m.addprofitability_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetProfitabilityScore resets all changes to the "profitability_score" field.
func (m *StrategyMutation) ResetProfitabilityScore() {
	m.profitability_score = nil
	m.addprofitability_score = nil
}

// SetRiskScore sets the "risk_score" field.
func (m *StrategyMutation) SetRiskScore(f float64) {
	m.risk_score = &f
	m.addrisk_score = nil
}

// RiskScore returns the value of the "risk_score" field in the mutation.
func (m *StrategyMutation) RiskScore() (r float64, exists bool) {
	v := m.risk_score
	if v == nil {
		return
	}
	return *v, true
}

// OldRiskScore returns the old "risk_score" field's value of the Strategy entity.
// If the Strategy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StrategyMutation) OldRiskScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRiskScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRiskScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRiskScore: %w", err)
	}
	return oldValue.RiskScore, nil
}

// AddRiskScore adds f to the "risk_score" field.
func (m *StrategyMutation) AddRiskScore(f float64) {
	if m.addrisk_score != nil {
		*m.addrisk_score += f
	} else {
		m.addrisk_score = &f
	}
}

// AddedRiskScore returns the value that was added to the "risk_score" field in this mutation.
func (m *StrategyMutation) AddedRiskScore() (r float64, exists bool) {
	v := m.addrisk_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetRiskScore resets all changes to the "risk_score" field.
func (m *StrategyMutation) ResetRiskScore() {
	m.risk_score = nil
	m.addrisk_score = nil
}

// SetStabilityScore sets the "stability_score" field.
func (m *StrategyMutation) SetStabilityScore(f float64) {
	m.stability_score = &f
	m.addstability_score = nil
}

// StabilityScore returns the value of the "stability_score" field in the mutation.
func (m *StrategyMutation) StabilityScore() (r float64, exists bool) {
	v := m.stability_score
	if v == nil {
		return
	}
	return *v, true
}

// OldStabilityScore returns the old "stability_score" field's value of the Strategy entity.
// If the Strategy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StrategyMutation) OldStabilityScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStabilityScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStabilityScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStabilityScore: %w", err)
	}
	return oldValue.StabilityScore, nil
}

// AddStabilityScore adds f to the "stability_score" field.
func (m *StrategyMutation) AddStabilityScore(f float64) {
	if m.addstability_score != nil {
		*m.addstability_score += f
	} else {
		m.addstability_score = &f
	}
}

// AddedStabilityScore returns the value that was added to the "stability_score" field in this mutation.
func (m *StrategyMutation) AddedStabilityScore() (r float64, exists bool) {
	v := m.addstability_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetStabilityScore resets all changes to the "stability_score" field.
func (m *StrategyMutation) ResetStabilityScore() {
	m.stability_score = nil
	m.addstability_score = nil
}

// SetAdaptabilityScore sets the "adaptability_score" field.
func (m *StrategyMutation) SetAdaptabilityScore(f float64) {
	m.adaptability_score = &f
	m.addadaptability_score = nil
}

// AdaptabilityScore returns the value of the "adaptability_score" field in the mutation.
func (m *StrategyMutation) AdaptabilityScore() (r float64, exists bool) {
	v := m.adaptability_score
	if v == nil {
		return
	}
	return *v, true
}

// OldAdaptabilityScore returns the old "adaptability_score" field's value of the Strategy entity.
// If the Strategy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StrategyMutation) OldAdaptabilityScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAdaptabilityScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAdaptabilityScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAdaptabilityScore: %w", err)
	}
	return oldValue.AdaptabilityScore, nil
}

// AddAdaptabilityScore adds f to the "adaptability_score" field.
func (m *StrategyMutation) AddAdaptabilityScore(f float64) {
	if m.addadaptability_score != nil {
		*m.addadaptability_score += f
	} else {
		m.addadaptability_score = &f
	}
}

// AddedAdaptabilityScore returns the value that was added to the "adaptability_score" field in this mutation.
func (m *StrategyMutation) AddedAdaptabilityScore() (r float64, exists bool) {
	v := m.addadaptability_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetAdaptabilityScore resets all changes to the "adaptability_score" field.
func (m *StrategyMutation) ResetAdaptabilityScore() {
	m.adaptability_score = nil
	m.addadaptability_score = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *StrategyMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StrategyMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Strategy entity.
// If the Strategy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StrategyMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StrategyMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *StrategyMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *StrategyMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Strategy entity.
// If the Strategy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StrategyMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *StrategyMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearArena clears the "arena" edge to the Arena entity.
func (m *StrategyMutation) ClearArena() {
	m.clearedarena = true
	m.clearedFields[strategy.FieldArenaID] = struct{}{}
}

// ArenaCleared reports if the "arena" edge to the Arena entity was cleared.
func (m *StrategyMutation) ArenaCleared() bool {
	return m.clearedarena
}

// ArenaIDs returns the "arena" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ArenaID instead. It exists only for internal usage by the builders.
func (m *StrategyMutation) ArenaIDs() (ids []string) {
	if id := m.arena; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetArena resets all changes to the "arena" edge.
func (m *StrategyMutation) ResetArena() {
	m.arena = nil
	m.clearedarena = false
}

// Where appends a list predicates to the StrategyMutation builder.
func (m *StrategyMutation) Where(ps ...predicate.Strategy) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StrategyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StrategyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Strategy, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StrategyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StrategyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Strategy).
func (m *StrategyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StrategyMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.arena != nil {
		fields = append(fields, strategy.FieldArenaID)
	}
	if m.name != nil {
		fields = append(fields, strategy.FieldName)
	}
	if m.agent_id != nil {
		fields = append(fields, strategy.FieldAgentID)
	}
	if m.agent_role != nil {
		fields = append(fields, strategy.FieldAgentRole)
	}
	if m.stage != nil {
		fields = append(fields, strategy.FieldStage)
	}
	if m.is_active != nil {
		fields = append(fields, strategy.FieldIsActive)
	}
	if m.current_score != nil {
		fields = append(fields, strategy.FieldCurrentScore)
	}
	if m.current_rank != nil {
		fields = append(fields, strategy.FieldCurrentRank)
	}
	if m.logic != nil {
		fields = append(fields, strategy.FieldLogic)
	}
	if m.rules != nil {
		fields = append(fields, strategy.FieldRules)
	}
	if m.profitability_score != nil {
		fields = append(fields, strategy.FieldProfitabilityScore)
	}
	if m.risk_score != nil {
		fields = append(fields, strategy.FieldRiskScore)
	}
	if m.stability_score != nil {
		fields = append(fields, strategy.FieldStabilityScore)
	}
	if m.adaptability_score != nil {
		fields = append(fields, strategy.FieldAdaptabilityScore)
	}
	if m.created_at != nil {
		fields = append(fields, strategy.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, strategy.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StrategyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case strategy.FieldArenaID:
		return m.ArenaID()
	case strategy.FieldName:
		return m.Name()
	case strategy.FieldAgentID:
		return m.AgentID()
	case strategy.FieldAgentRole:
		return m.AgentRole()
	case strategy.FieldStage:
		return m.Stage()
	case strategy.FieldIsActive:
		return m.IsActive()
	case strategy.FieldCurrentScore:
		return m.CurrentScore()
	case strategy.FieldCurrentRank:
		return m.CurrentRank()
	case strategy.FieldLogic:
		return m.Logic()
	case strategy.FieldRules:
		return m.Rules()
	case strategy.FieldProfitabilityScore:
		return m.ProfitabilityScore()
	case strategy.FieldRiskScore:
		return m.RiskScore()
	case strategy.FieldStabilityScore:
		return m.StabilityScore()
	case strategy.FieldAdaptabilityScore:
		return m.AdaptabilityScore()
	case strategy.FieldCreatedAt:
		return m.CreatedAt()
	case strategy.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StrategyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case strategy.FieldArenaID:
		return m.OldArenaID(ctx)
	case strategy.FieldName:
		return m.OldName(ctx)
	case strategy.FieldAgentID:
		return m.OldAgentID(ctx)
	case strategy.FieldAgentRole:
		return m.OldAgentRole(ctx)
	case strategy.FieldStage:
		return m.OldStage(ctx)
	case strategy.FieldIsActive:
		return m.OldIsActive(ctx)
	case strategy.FieldCurrentScore:
		return m.OldCurrentScore(ctx)
	case strategy.FieldCurrentRank:
		return m.OldCurrentRank(ctx)
	case strategy.FieldLogic:
		return m.OldLogic(ctx)
	case strategy.FieldRules:
		return m.OldRules(ctx)
	case strategy.FieldProfitabilityScore:
		return m.OldProfitabilityScore(ctx)
	case strategy.FieldRiskScore:
		return m.OldRiskScore(ctx)
	case strategy.FieldStabilityScore:
		return m.OldStabilityScore(ctx)
	case strategy.FieldAdaptabilityScore:
		return m.OldAdaptabilityScore(ctx)
	case strategy.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case strategy.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Strategy field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StrategyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case strategy.FieldArenaID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArenaID(v)
		return nil
	case strategy.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case strategy.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case strategy.FieldAgentRole:
		v, ok := value.(strategy.AgentRole)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentRole(v)
		return nil
	case strategy.FieldStage:
		v, ok := value.(strategy.Stage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStage(v)
		return nil
	case strategy.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case strategy.FieldCurrentScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentScore(v)
		return nil
	case strategy.FieldCurrentRank:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentRank(v)
		return nil
	case strategy.FieldLogic:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLogic(v)
		return nil
	case strategy.FieldRules:
		v, ok := value.(models.StrategyRules)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRules(v)
		return nil
	case strategy.FieldProfitabilityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProfitabilityScore(v)
		return nil
	case strategy.FieldRiskScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRiskScore(v)
		return nil
	case strategy.FieldStabilityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStabilityScore(v)
		return nil
	case strategy.FieldAdaptabilityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAdaptabilityScore(v)
		return nil
	case strategy.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case strategy.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Strategy field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StrategyMutation) AddedFields() []string {
	var fields []string
	if m.addcurrent_score != nil {
		fields = append(fields, strategy.FieldCurrentScore)
	}
	if m.addcurrent_rank != nil {
		fields = append(fields, strategy.FieldCurrentRank)
	}
	if m.addprofitability_score != nil {
		fields = append(fields, strategy.FieldProfitabilityScore)
	}
	if m.addrisk_score != nil {
		fields = append(fields, strategy.FieldRiskScore)
	}
	if m.addstability_score != nil {
		fields = append(fields, strategy.FieldStabilityScore)
	}
	if m.addadaptability_score != nil {
		fields = append(fields, strategy.FieldAdaptabilityScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StrategyMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case strategy.FieldCurrentScore:
		return m.AddedCurrentScore()
	case strategy.FieldCurrentRank:
		return m.AddedCurrentRank()
	case strategy.FieldProfitabilityScore:
		return m.AddedProfitabilityScore()
	case strategy.FieldRiskScore:
		return m.AddedRiskScore()
	case strategy.FieldStabilityScore:
		return m.AddedStabilityScore()
	case strategy.FieldAdaptabilityScore:
		return m.AddedAdaptabilityScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StrategyMutation) AddField(name string, value ent.Value) error {
	switch name {
	case strategy.FieldCurrentScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCurrentScore(v)
		return nil
	case strategy.FieldCurrentRank:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCurrentRank(v)
		return nil
	case strategy.FieldProfitabilityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProfitabilityScore(v)
		return nil
	case strategy.FieldRiskScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRiskScore(v)
		return nil
	case strategy.FieldStabilityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStabilityScore(v)
		return nil
	case strategy.FieldAdaptabilityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAdaptabilityScore(v)
		return nil
	}
	return fmt.Errorf("unknown Strategy numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StrategyMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(strategy.FieldLogic) {
		fields = append(fields, strategy.FieldLogic)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StrategyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StrategyMutation) ClearField(name string) error {
	switch name {
	case strategy.FieldLogic:
		m.ClearLogic()
		return nil
	}
	return fmt.Errorf("unknown Strategy nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StrategyMutation) ResetField(name string) error {
	switch name {
	case strategy.FieldArenaID:
		m.ResetArenaID()
		return nil
	case strategy.FieldName:
		m.ResetName()
		return nil
	case strategy.FieldAgentID:
		m.ResetAgentID()
		return nil
	case strategy.FieldAgentRole:
		m.ResetAgentRole()
		return nil
	case strategy.FieldStage:
		m.ResetStage()
		return nil
	case strategy.FieldIsActive:
		m.ResetIsActive()
		return nil
	case strategy.FieldCurrentScore:
		m.ResetCurrentScore()
		return nil
	case strategy.FieldCurrentRank:
		m.ResetCurrentRank()
		return nil
	case strategy.FieldLogic:
		m.ResetLogic()
		return nil
	case strategy.FieldRules:
		m.ResetRules()
		return nil
	case strategy.FieldProfitabilityScore:
		m.ResetProfitabilityScore()
		return nil
	case strategy.FieldRiskScore:
		m.ResetRiskScore()
		return nil
	case strategy.FieldStabilityScore:
		m.ResetStabilityScore()
		return nil
	case strategy.FieldAdaptabilityScore:
		m.ResetAdaptabilityScore()
		return nil
	case strategy.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case strategy.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Strategy field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StrategyMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.arena != nil {
		edges = append(edges, strategy.EdgeArena)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StrategyMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case strategy.EdgeArena:
		if id := m.arena; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StrategyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StrategyMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StrategyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedarena {
		edges = append(edges, strategy.EdgeArena)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StrategyMutation) EdgeCleared(name string) bool {
	switch name {
	case strategy.EdgeArena:
		return m.clearedarena
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StrategyMutation) ClearEdge(name string) error {
	switch name {
	case strategy.EdgeArena:
		m.ClearArena()
		return nil
	}
	return fmt.Errorf("unknown Strategy unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StrategyMutation) ResetEdge(name string) error {
	switch name {
	case strategy.EdgeArena:
		m.ResetArena()
		return nil
	}
	return fmt.Errorf("unknown Strategy edge %s", name)
}

// SubTaskMutation represents an operation that mutates the SubTask nodes in the graph.
type SubTaskMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	plugin_name          *string
	task_type            *subtask.TaskType
	parameters           *map[string]interface{}
	status               *subtask.Status
	progress             *int
	addprogress          *int
	records_processed    *int
	addrecords_processed *int
	records_failed       *int
	addrecords_failed    *int
	started_at           *time.Time
	completed_at         *time.Time
	error_message        *string
	created_at           *time.Time
	clearedFields        map[string]struct{}
	execution            *string
	clearedexecution     bool
	done                 bool
	oldValue             func(context.Context) (*SubTask, error)
	predicates           []predicate.SubTask
}

var _ ent.Mutation = (*SubTaskMutation)(nil)

// subtaskOption allows management of the mutation configuration using functional options.
type subtaskOption func(*SubTaskMutation)

// newSubTaskMutation creates new mutation for the SubTask entity.
func newSubTaskMutation(c config, op Op, opts ...subtaskOption) *SubTaskMutation {
	m := &SubTaskMutation{
		config:        c,
		op:            op,
		typ:           TypeSubTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSubTaskID sets the ID field of the mutation.
func withSubTaskID(id string) subtaskOption {
	return func(m *SubTaskMutation) {
		var (
			err   error
			once  sync.Once
			value *SubTask
		)
		m.oldValue = func(ctx context.Context) (*SubTask, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SubTask.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSubTask sets the old SubTask of the mutation.
func withSubTask(node *SubTask) subtaskOption {
	return func(m *SubTaskMutation) {
		m.oldValue = func(context.Context) (*SubTask, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SubTaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SubTaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SubTask entities.
func (m *SubTaskMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SubTaskMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SubTaskMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SubTask.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetExecutionID sets the "execution_id" field.
func (m *SubTaskMutation) SetExecutionID(s string) {
	m.execution = &s
}

// ExecutionID returns the value of the "execution_id" field in the mutation.
func (m *SubTaskMutation) ExecutionID() (r string, exists bool) {
	v := m.execution
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionID returns the old "execution_id" field's value of the SubTask entity.
// If the SubTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubTaskMutation) OldExecutionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionID: %w", err)
	}
	return oldValue.ExecutionID, nil
}

// ResetExecutionID resets all changes to the "execution_id" field.
func (m *SubTaskMutation) ResetExecutionID() {
	m.execution = nil
}

// SetPluginName sets the "plugin_name" field.
func (m *SubTaskMutation) SetPluginName(s string) {
	m.plugin_name = &s
}

// PluginName returns the value of the "plugin_name" field in the mutation.
func (m *SubTaskMutation) PluginName() (r string, exists bool) {
	v := m.plugin_name
	if v == nil {
		return
	}
	return *v, true
}

// OldPluginName returns the old "plugin_name" field's value of the SubTask entity.
// If the SubTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubTaskMutation) OldPluginName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPluginName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPluginName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPluginName: %w", err)
	}
	return oldValue.PluginName, nil
}

// ResetPluginName resets all changes to the "plugin_name" field.
func (m *SubTaskMutation) ResetPluginName() {
	m.plugin_name = nil
}

// SetTaskType sets the "task_type" field.
func (m *SubTaskMutation) SetTaskType(st subtask.TaskType) {
	m.task_type = &st
}

// TaskType returns the value of the "task_type" field in the mutation.
func (m *SubTaskMutation) TaskType() (r subtask.TaskType, exists bool) {
	v := m.task_type
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskType returns the old "task_type" field's value of the SubTask entity.
// If the SubTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubTaskMutation) OldTaskType(ctx context.Context) (v subtask.TaskType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskType: %w", err)
	}
	return oldValue.TaskType, nil
}

// ResetTaskType resets all changes to the "task_type" field.
func (m *SubTaskMutation) ResetTaskType() {
	m.task_type = nil
}

// SetParameters sets the "parameters" field.
func (m *SubTaskMutation) SetParameters(value map[string]interface{}) {
	m.parameters = &value
}

// Parameters returns the value of the "parameters" field in the mutation.
func (m *SubTaskMutation) Parameters() (r map[string]interface{}, exists bool) {
	v := m.parameters
	if v == nil {
		return
	}
	return *v, true
}

// OldParameters returns the old "parameters" field's value of the SubTask entity.
// If the SubTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubTaskMutation) OldParameters(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParameters is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParameters requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParameters: %w", err)
	}
	return oldValue.Parameters, nil
}

// ClearParameters clears the value of the "parameters" field.
func (m *SubTaskMutation) ClearParameters() {
	m.parameters = nil
	m.clearedFields[subtask.FieldParameters] = struct{}{}
}

// ParametersCleared returns if the "parameters" field was cleared in this mutation.
func (m *SubTaskMutation) ParametersCleared() bool {
	_, ok := m.clearedFields[subtask.FieldParameters]
	return ok
}

// ResetParameters resets all changes to the "parameters" field.
func (m *SubTaskMutation) ResetParameters() {
	m.parameters = nil
	delete(m.clearedFields, subtask.FieldParameters)
}

// SetStatus sets the "status" field.
func (m *SubTaskMutation) SetStatus(s subtask.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SubTaskMutation) Status() (r subtask.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the SubTask entity.
// If the SubTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubTaskMutation) OldStatus(ctx context.Context) (v subtask.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *SubTaskMutation) ResetStatus() {
	m.status = nil
}

// SetProgress sets the "progress" field.
func (m *SubTaskMutation) SetProgress(i int) {
	m.progress = &i
	m.addprogress = nil
}

// Progress returns the value of the "progress" field in the mutation.
func (m *SubTaskMutation) Progress() (r int, exists bool) {
	v := m.progress
	if v == nil {
		return
	}
	return *v, true
}

// OldProgress returns the old "progress" field's value of the SubTask entity.
// If the SubTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubTaskMutation) OldProgress(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProgress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProgress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProgress: %w", err)
	}
	return oldValue.Progress, nil
}

// AddProgress adds i to the "progress" field.
func (m *SubTaskMutation) AddProgress(i int) {
	if m.addprogress != nil {
		*m.addprogress += i
	} else {
		m.addprogress = &i
	}
}

// AddedProgress returns the value that was added to the "progress" field in this mutation.
func (m *SubTaskMutation) AddedProgress() (r int, exists bool) {
	v := m.addprogress
	if v == nil {
		return
	}
	return *v, true
}

// ResetProgress resets all changes to the "progress" field.
func (m *SubTaskMutation) ResetProgress() {
	m.progress = nil
	m.addprogress = nil
}

// SetRecordsProcessed sets the "records_processed" field.
func (m *SubTaskMutation) SetRecordsProcessed(i int) {
	m.records_processed = &i
	m.addrecords_processed = nil
}

// RecordsProcessed returns the value of the "records_processed" field in the mutation.
func (m *SubTaskMutation) RecordsProcessed() (r int, exists bool) {
	v := m.records_processed
	if v == nil {
		return
	}
	return *v, true
}

// OldRecordsProcessed returns the old "records_processed" field's value of the SubTask entity.
// If the SubTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubTaskMutation) OldRecordsProcessed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecordsProcessed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecordsProcessed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecordsProcessed: %w", err)
	}
	return oldValue.RecordsProcessed, nil
}

// AddRecordsProcessed adds i to the "records_processed" field.
func (m *SubTaskMutation) AddRecordsProcessed(i int) {
	if m.addrecords_processed != nil {
		*m.addrecords_processed += i
	} else {
		m.addrecords_processed = &i
	}
}

// AddedRecordsProcessed returns the value that was added to the "records_processed" field in this mutation.
func (m *SubTaskMutation) AddedRecordsProcessed() (r int, exists bool) {
	v := m.addrecords_processed
	if v == nil {
		return
	}
	return *v, true
}

// ResetRecordsProcessed resets all changes to the "records_processed" field.
func (m *SubTaskMutation) ResetRecordsProcessed() {
	m.records_processed = nil
	m.addrecords_processed = nil
}

// SetRecordsFailed sets the "records_failed" field.
func (m *SubTaskMutation) SetRecordsFailed(i int) {
	m.records_failed = &i
	m.addrecords_failed = nil
}

// RecordsFailed returns the value of the "records_failed" field in the mutation.
func (m *SubTaskMutation) RecordsFailed() (r int, exists bool) {
	v := m.records_failed
	if v == nil {
		return
	}
	return *v, true
}

// OldRecordsFailed returns the old "records_failed" field's value of the SubTask entity.
// If the SubTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubTaskMutation) OldRecordsFailed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecordsFailed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecordsFailed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecordsFailed: %w", err)
	}
	return oldValue.RecordsFailed, nil
}

// AddRecordsFailed adds i to the "records_failed" field.
func (m *SubTaskMutation) AddRecordsFailed(i int) {
	if m.addrecords_failed != nil {
		*m.addrecords_failed += i
	} else {
		m.addrecords_failed = &i
	}
}

// AddedRecordsFailed returns the value that was added to the "records_failed" field in this mutation.
func (m *SubTaskMutation) AddedRecordsFailed() (r int, exists bool) {
	v := m.addrecords_failed
	if v == nil {
		return
	}
	return *v, true
}

// ResetRecordsFailed resets all changes to the "records_failed" field.
func (m *SubTaskMutation) ResetRecordsFailed() {
	m.records_failed = nil
	m.addrecords_failed = nil
}

// SetStartedAt sets the "started_at" field.
func (m *SubTaskMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *SubTaskMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the SubTask entity.
// If the SubTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubTaskMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *SubTaskMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[subtask.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *SubTaskMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[subtask.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *SubTaskMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, subtask.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *SubTaskMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *SubTaskMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the SubTask entity.
// If the SubTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubTaskMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *SubTaskMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[subtask.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *SubTaskMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[subtask.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *SubTaskMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, subtask.FieldCompletedAt)
}

// SetErrorMessage sets the "error_message" field.
func (m *SubTaskMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *SubTaskMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the SubTask entity.
// If the SubTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubTaskMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *SubTaskMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[subtask.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *SubTaskMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[subtask.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *SubTaskMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, subtask.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *SubTaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SubTaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SubTask entity.
// If the SubTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubTaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SubTaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearExecution clears the "execution" edge to the BatchExecution entity.
func (m *SubTaskMutation) ClearExecution() {
	m.clearedexecution = true
	m.clearedFields[subtask.FieldExecutionID] = struct{}{}
}

// ExecutionCleared reports if the "execution" edge to the BatchExecution entity was cleared.
func (m *SubTaskMutation) ExecutionCleared() bool {
	return m.clearedexecution
}

// ExecutionIDs returns the "execution" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ExecutionID instead. It exists only for internal usage by the builders.
func (m *SubTaskMutation) ExecutionIDs() (ids []string) {
	if id := m.execution; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetExecution resets all changes to the "execution" edge.
func (m *SubTaskMutation) ResetExecution() {
	m.execution = nil
	m.clearedexecution = false
}

// Where appends a list predicates to the SubTaskMutation builder.
func (m *SubTaskMutation) Where(ps ...predicate.SubTask) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SubTaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SubTaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SubTask, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SubTaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SubTaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SubTask).
func (m *SubTaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SubTaskMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.execution != nil {
		fields = append(fields, subtask.FieldExecutionID)
	}
	if m.plugin_name != nil {
		fields = append(fields, subtask.FieldPluginName)
	}
	if m.task_type != nil {
		fields = append(fields, subtask.FieldTaskType)
	}
	if m.parameters != nil {
		fields = append(fields, subtask.FieldParameters)
	}
	if m.status != nil {
		fields = append(fields, subtask.FieldStatus)
	}
	if m.progress != nil {
		fields = append(fields, subtask.FieldProgress)
	}
	if m.records_processed != nil {
		fields = append(fields, subtask.FieldRecordsProcessed)
	}
	if m.records_failed != nil {
		fields = append(fields, subtask.FieldRecordsFailed)
	}
	if m.started_at != nil {
		fields = append(fields, subtask.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, subtask.FieldCompletedAt)
	}
	if m.error_message != nil {
		fields = append(fields, subtask.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, subtask.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SubTaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case subtask.FieldExecutionID:
		return m.ExecutionID()
	case subtask.FieldPluginName:
		return m.PluginName()
	case subtask.FieldTaskType:
		return m.TaskType()
	case subtask.FieldParameters:
		return m.Parameters()
	case subtask.FieldStatus:
		return m.Status()
	case subtask.FieldProgress:
		return m.Progress()
	case subtask.FieldRecordsProcessed:
		return m.RecordsProcessed()
	case subtask.FieldRecordsFailed:
		return m.RecordsFailed()
	case subtask.FieldStartedAt:
		return m.StartedAt()
	case subtask.FieldCompletedAt:
		return m.CompletedAt()
	case subtask.FieldErrorMessage:
		return m.ErrorMessage()
	case subtask.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SubTaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case subtask.FieldExecutionID:
		return m.OldExecutionID(ctx)
	case subtask.FieldPluginName:
		return m.OldPluginName(ctx)
	case subtask.FieldTaskType:
		return m.OldTaskType(ctx)
	case subtask.FieldParameters:
		return m.OldParameters(ctx)
	case subtask.FieldStatus:
		return m.OldStatus(ctx)
	case subtask.FieldProgress:
		return m.OldProgress(ctx)
	case subtask.FieldRecordsProcessed:
		return m.OldRecordsProcessed(ctx)
	case subtask.FieldRecordsFailed:
		return m.OldRecordsFailed(ctx)
	case subtask.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case subtask.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case subtask.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case subtask.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SubTask field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubTaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case subtask.FieldExecutionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionID(v)
		return nil
	case subtask.FieldPluginName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPluginName(v)
		return nil
	case subtask.FieldTaskType:
		v, ok := value.(subtask.TaskType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskType(v)
		return nil
	case subtask.FieldParameters:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParameters(v)
		return nil
	case subtask.FieldStatus:
		v, ok := value.(subtask.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case subtask.FieldProgress:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProgress(v)
		return nil
	case subtask.FieldRecordsProcessed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecordsProcessed(v)
		return nil
	case subtask.FieldRecordsFailed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecordsFailed(v)
		return nil
	case subtask.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case subtask.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case subtask.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case subtask.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SubTask field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SubTaskMutation) AddedFields() []string {
	var fields []string
	if m.addprogress != nil {
		fields = append(fields, subtask.FieldProgress)
	}
	if m.addrecords_processed != nil {
		fields = append(fields, subtask.FieldRecordsProcessed)
	}
	if m.addrecords_failed != nil {
		fields = append(fields, subtask.FieldRecordsFailed)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SubTaskMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case subtask.FieldProgress:
		return m.AddedProgress()
	case subtask.FieldRecordsProcessed:
		return m.AddedRecordsProcessed()
	case subtask.FieldRecordsFailed:
		return m.AddedRecordsFailed()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubTaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	case subtask.FieldProgress:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProgress(v)
		return nil
	case subtask.FieldRecordsProcessed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRecordsProcessed(v)
		return nil
	case subtask.FieldRecordsFailed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRecordsFailed(v)
		return nil
	}
	return fmt.Errorf("unknown SubTask numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SubTaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(subtask.FieldParameters) {
		fields = append(fields, subtask.FieldParameters)
	}
	if m.FieldCleared(subtask.FieldStartedAt) {
		fields = append(fields, subtask.FieldStartedAt)
	}
	if m.FieldCleared(subtask.FieldCompletedAt) {
		fields = append(fields, subtask.FieldCompletedAt)
	}
	if m.FieldCleared(subtask.FieldErrorMessage) {
		fields = append(fields, subtask.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SubTaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SubTaskMutation) ClearField(name string) error {
	switch name {
	case subtask.FieldParameters:
		m.ClearParameters()
		return nil
	case subtask.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case subtask.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case subtask.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown SubTask nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SubTaskMutation) ResetField(name string) error {
	switch name {
	case subtask.FieldExecutionID:
		m.ResetExecutionID()
		return nil
	case subtask.FieldPluginName:
		m.ResetPluginName()
		return nil
	case subtask.FieldTaskType:
		m.ResetTaskType()
		return nil
	case subtask.FieldParameters:
		m.ResetParameters()
		return nil
	case subtask.FieldStatus:
		m.ResetStatus()
		return nil
	case subtask.FieldProgress:
		m.ResetProgress()
		return nil
	case subtask.FieldRecordsProcessed:
		m.ResetRecordsProcessed()
		return nil
	case subtask.FieldRecordsFailed:
		m.ResetRecordsFailed()
		return nil
	case subtask.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case subtask.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case subtask.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case subtask.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown SubTask field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SubTaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.execution != nil {
		edges = append(edges, subtask.EdgeExecution)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SubTaskMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case subtask.EdgeExecution:
		if id := m.execution; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SubTaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SubTaskMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SubTaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedexecution {
		edges = append(edges, subtask.EdgeExecution)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SubTaskMutation) EdgeCleared(name string) bool {
	switch name {
	case subtask.EdgeExecution:
		return m.clearedexecution
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SubTaskMutation) ClearEdge(name string) error {
	switch name {
	case subtask.EdgeExecution:
		m.ClearExecution()
		return nil
	}
	return fmt.Errorf("unknown SubTask unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SubTaskMutation) ResetEdge(name string) error {
	switch name {
	case subtask.EdgeExecution:
		m.ResetExecution()
		return nil
	}
	return fmt.Errorf("unknown SubTask edge %s", name)
}

// ThinkingMessageMutation represents an operation that mutates the ThinkingMessage nodes in the graph.
type ThinkingMessageMutation struct {
	config
	op            Op
	typ           string
	id            *string
	agent_id      *string
	agent_role    *thinkingmessage.AgentRole
	round_id      *string
	message_type  *thinkingmessage.MessageType
	content       *string
	metadata      *map[string]interface{}
	sequence      *int64
	addsequence   *int64
	created_at    *time.Time
	clearedFields map[string]struct{}
	arena         *string
	clearedarena  bool
	done          bool
	oldValue      func(context.Context) (*ThinkingMessage, error)
	predicates    []predicate.ThinkingMessage
}

var _ ent.Mutation = (*ThinkingMessageMutation)(nil)

// thinkingmessageOption allows management of the mutation configuration using functional options.
type thinkingmessageOption func(*ThinkingMessageMutation)

// newThinkingMessageMutation creates new mutation for the ThinkingMessage entity.
func newThinkingMessageMutation(c config, op Op, opts ...thinkingmessageOption) *ThinkingMessageMutation {
	m := &ThinkingMessageMutation{
		config:        c,
		op:            op,
		typ:           TypeThinkingMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withThinkingMessageID sets the ID field of the mutation.
func withThinkingMessageID(id string) thinkingmessageOption {
	return func(m *ThinkingMessageMutation) {
		var (
			err   error
			once  sync.Once
			value *ThinkingMessage
		)
		m.oldValue = func(ctx context.Context) (*ThinkingMessage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ThinkingMessage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withThinkingMessage sets the old ThinkingMessage of the mutation.
func withThinkingMessage(node *ThinkingMessage) thinkingmessageOption {
	return func(m *ThinkingMessageMutation) {
		m.oldValue = func(context.Context) (*ThinkingMessage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ThinkingMessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ThinkingMessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ThinkingMessage entities.
func (m *ThinkingMessageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ThinkingMessageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ThinkingMessageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ThinkingMessage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetArenaID sets the "arena_id" field.
func (m *ThinkingMessageMutation) SetArenaID(s string) {
	m.arena = &s
}

// ArenaID returns the value of the "arena_id" field in the mutation.
func (m *ThinkingMessageMutation) ArenaID() (r string, exists bool) {
	v := m.arena
	if v == nil {
		return
	}
	return *v, true
}

// OldArenaID returns the old "arena_id" field's value of the ThinkingMessage entity.
// If the ThinkingMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThinkingMessageMutation) OldArenaID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArenaID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArenaID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArenaID: %w", err)
	}
	return oldValue.ArenaID, nil
}

// ResetArenaID resets all changes to the "arena_id" field.
func (m *ThinkingMessageMutation) ResetArenaID() {
	m.arena = nil
}

// SetAgentID sets the "agent_id" field.
func (m *ThinkingMessageMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *ThinkingMessageMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the ThinkingMessage entity.
// If the ThinkingMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThinkingMessageMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ClearAgentID clears the value of the "agent_id" field.
func (m *ThinkingMessageMutation) ClearAgentID() {
	m.agent_id = nil
	m.clearedFields[thinkingmessage.FieldAgentID] = struct{}{}
}

// AgentIDCleared returns if the "agent_id" field was cleared in this mutation.
func (m *ThinkingMessageMutation) AgentIDCleared() bool {
	_, ok := m.clearedFields[thinkingmessage.FieldAgentID]
	return ok
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *ThinkingMessageMutation) ResetAgentID() {
	m.agent_id = nil
	delete(m.clearedFields, thinkingmessage.FieldAgentID)
}

// SetAgentRole sets the "agent_role" field.
func (m *ThinkingMessageMutation) SetAgentRole(tr thinkingmessage.AgentRole) {
	m.agent_role = &tr
}

// AgentRole returns the value of the "agent_role" field in the mutation.
func (m *ThinkingMessageMutation) AgentRole() (r thinkingmessage.AgentRole, exists bool) {
	v := m.agent_role
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentRole returns the old "agent_role" field's value of the ThinkingMessage entity.
// If the ThinkingMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThinkingMessageMutation) OldAgentRole(ctx context.Context) (v *thinkingmessage.AgentRole, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentRole: %w", err)
	}
	return oldValue.AgentRole, nil
}

// ClearAgentRole clears the value of the "agent_role" field.
func (m *ThinkingMessageMutation) ClearAgentRole() {
	m.agent_role = nil
	m.clearedFields[thinkingmessage.FieldAgentRole] = struct{}{}
}

// AgentRoleCleared returns if the "agent_role" field was cleared in this mutation.
func (m *ThinkingMessageMutation) AgentRoleCleared() bool {
	_, ok := m.clearedFields[thinkingmessage.FieldAgentRole]
	return ok
}

// ResetAgentRole resets all changes to the "agent_role" field.
func (m *ThinkingMessageMutation) ResetAgentRole() {
	m.agent_role = nil
	delete(m.clearedFields, thinkingmessage.FieldAgentRole)
}

// SetRoundID sets the "round_id" field.
func (m *ThinkingMessageMutation) SetRoundID(s string) {
	m.round_id = &s
}

// RoundID returns the value of the "round_id" field in the mutation.
func (m *ThinkingMessageMutation) RoundID() (r string, exists bool) {
	v := m.round_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRoundID returns the old "round_id" field's value of the ThinkingMessage entity.
// If the ThinkingMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThinkingMessageMutation) OldRoundID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoundID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoundID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoundID: %w", err)
	}
	return oldValue.RoundID, nil
}

// ClearRoundID clears the value of the "round_id" field.
func (m *ThinkingMessageMutation) ClearRoundID() {
	m.round_id = nil
	m.clearedFields[thinkingmessage.FieldRoundID] = struct{}{}
}

// RoundIDCleared returns if the "round_id" field was cleared in this mutation.
func (m *ThinkingMessageMutation) RoundIDCleared() bool {
	_, ok := m.clearedFields[thinkingmessage.FieldRoundID]
	return ok
}

// ResetRoundID resets all changes to the "round_id" field.
func (m *ThinkingMessageMutation) ResetRoundID() {
	m.round_id = nil
	delete(m.clearedFields, thinkingmessage.FieldRoundID)
}

// SetMessageType sets the "message_type" field.
func (m *ThinkingMessageMutation) SetMessageType(tt thinkingmessage.MessageType) {
	m.message_type = &tt
}

// MessageType returns the value of the "message_type" field in the mutation.
func (m *ThinkingMessageMutation) MessageType() (r thinkingmessage.MessageType, exists bool) {
	v := m.message_type
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageType returns the old "message_type" field's value of the ThinkingMessage entity.
// If the ThinkingMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThinkingMessageMutation) OldMessageType(ctx context.Context) (v thinkingmessage.MessageType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageType: %w", err)
	}
	return oldValue.MessageType, nil
}

// ResetMessageType resets all changes to the "message_type" field.
func (m *ThinkingMessageMutation) ResetMessageType() {
	m.message_type = nil
}

// SetContent sets the "content" field.
func (m *ThinkingMessageMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *ThinkingMessageMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the ThinkingMessage entity.
// If the ThinkingMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThinkingMessageMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *ThinkingMessageMutation) ResetContent() {
	m.content = nil
}

// SetMetadata sets the "metadata" field.
func (m *ThinkingMessageMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *ThinkingMessageMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the ThinkingMessage entity.
// If the ThinkingMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThinkingMessageMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *ThinkingMessageMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[thinkingmessage.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *ThinkingMessageMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[thinkingmessage.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *ThinkingMessageMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, thinkingmessage.FieldMetadata)
}

// SetSequence sets the "sequence" field.
func (m *ThinkingMessageMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *ThinkingMessageMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the ThinkingMessage entity.
// If the ThinkingMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThinkingMessageMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *ThinkingMessageMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *ThinkingMessageMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *ThinkingMessageMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ThinkingMessageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ThinkingMessageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ThinkingMessage entity.
// If the ThinkingMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThinkingMessageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ThinkingMessageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearArena clears the "arena" edge to the Arena entity.
func (m *ThinkingMessageMutation) ClearArena() {
	m.clearedarena = true
	m.clearedFields[thinkingmessage.FieldArenaID] = struct{}{}
}

// ArenaCleared reports if the "arena" edge to the Arena entity was cleared.
func (m *ThinkingMessageMutation) ArenaCleared() bool {
	return m.clearedarena
}

// ArenaIDs returns the "arena" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ArenaID instead. It exists only for internal usage by the builders.
func (m *ThinkingMessageMutation) ArenaIDs() (ids []string) {
	if id := m.arena; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetArena resets all changes to the "arena" edge.
func (m *ThinkingMessageMutation) ResetArena() {
	m.arena = nil
	m.clearedarena = false
}

// Where appends a list predicates to the ThinkingMessageMutation builder.
func (m *ThinkingMessageMutation) Where(ps ...predicate.ThinkingMessage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ThinkingMessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ThinkingMessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ThinkingMessage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ThinkingMessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ThinkingMessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ThinkingMessage).
func (m *ThinkingMessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ThinkingMessageMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.arena != nil {
		fields = append(fields, thinkingmessage.FieldArenaID)
	}
	if m.agent_id != nil {
		fields = append(fields, thinkingmessage.FieldAgentID)
	}
	if m.agent_role != nil {
		fields = append(fields, thinkingmessage.FieldAgentRole)
	}
	if m.round_id != nil {
		fields = append(fields, thinkingmessage.FieldRoundID)
	}
	if m.message_type != nil {
		fields = append(fields, thinkingmessage.FieldMessageType)
	}
	if m.content != nil {
		fields = append(fields, thinkingmessage.FieldContent)
	}
	if m.metadata != nil {
		fields = append(fields, thinkingmessage.FieldMetadata)
	}
	if m.sequence != nil {
		fields = append(fields, thinkingmessage.FieldSequence)
	}
	if m.created_at != nil {
		fields = append(fields, thinkingmessage.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ThinkingMessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case thinkingmessage.FieldArenaID:
		return m.ArenaID()
	case thinkingmessage.FieldAgentID:
		return m.AgentID()
	case thinkingmessage.FieldAgentRole:
		return m.AgentRole()
	case thinkingmessage.FieldRoundID:
		return m.RoundID()
	case thinkingmessage.FieldMessageType:
		return m.MessageType()
	case thinkingmessage.FieldContent:
		return m.Content()
	case thinkingmessage.FieldMetadata:
		return m.Metadata()
	case thinkingmessage.FieldSequence:
		return m.Sequence()
	case thinkingmessage.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ThinkingMessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case thinkingmessage.FieldArenaID:
		return m.OldArenaID(ctx)
	case thinkingmessage.FieldAgentID:
		return m.OldAgentID(ctx)
	case thinkingmessage.FieldAgentRole:
		return m.OldAgentRole(ctx)
	case thinkingmessage.FieldRoundID:
		return m.OldRoundID(ctx)
	case thinkingmessage.FieldMessageType:
		return m.OldMessageType(ctx)
	case thinkingmessage.FieldContent:
		return m.OldContent(ctx)
	case thinkingmessage.FieldMetadata:
		return m.OldMetadata(ctx)
	case thinkingmessage.FieldSequence:
		return m.OldSequence(ctx)
	case thinkingmessage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ThinkingMessage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ThinkingMessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case thinkingmessage.FieldArenaID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArenaID(v)
		return nil
	case thinkingmessage.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case thinkingmessage.FieldAgentRole:
		v, ok := value.(thinkingmessage.AgentRole)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentRole(v)
		return nil
	case thinkingmessage.FieldRoundID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoundID(v)
		return nil
	case thinkingmessage.FieldMessageType:
		v, ok := value.(thinkingmessage.MessageType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageType(v)
		return nil
	case thinkingmessage.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case thinkingmessage.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case thinkingmessage.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case thinkingmessage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ThinkingMessage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ThinkingMessageMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, thinkingmessage.FieldSequence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ThinkingMessageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case thinkingmessage.FieldSequence:
		return m.AddedSequence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ThinkingMessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case thinkingmessage.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	}
	return fmt.Errorf("unknown ThinkingMessage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ThinkingMessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(thinkingmessage.FieldAgentID) {
		fields = append(fields, thinkingmessage.FieldAgentID)
	}
	if m.FieldCleared(thinkingmessage.FieldAgentRole) {
		fields = append(fields, thinkingmessage.FieldAgentRole)
	}
	if m.FieldCleared(thinkingmessage.FieldRoundID) {
		fields = append(fields, thinkingmessage.FieldRoundID)
	}
	if m.FieldCleared(thinkingmessage.FieldMetadata) {
		fields = append(fields, thinkingmessage.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ThinkingMessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ThinkingMessageMutation) ClearField(name string) error {
	switch name {
	case thinkingmessage.FieldAgentID:
		m.ClearAgentID()
		return nil
	case thinkingmessage.FieldAgentRole:
		m.ClearAgentRole()
		return nil
	case thinkingmessage.FieldRoundID:
		m.ClearRoundID()
		return nil
	case thinkingmessage.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown ThinkingMessage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ThinkingMessageMutation) ResetField(name string) error {
	switch name {
	case thinkingmessage.FieldArenaID:
		m.ResetArenaID()
		return nil
	case thinkingmessage.FieldAgentID:
		m.ResetAgentID()
		return nil
	case thinkingmessage.FieldAgentRole:
		m.ResetAgentRole()
		return nil
	case thinkingmessage.FieldRoundID:
		m.ResetRoundID()
		return nil
	case thinkingmessage.FieldMessageType:
		m.ResetMessageType()
		return nil
	case thinkingmessage.FieldContent:
		m.ResetContent()
		return nil
	case thinkingmessage.FieldMetadata:
		m.ResetMetadata()
		return nil
	case thinkingmessage.FieldSequence:
		m.ResetSequence()
		return nil
	case thinkingmessage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ThinkingMessage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ThinkingMessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.arena != nil {
		edges = append(edges, thinkingmessage.EdgeArena)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ThinkingMessageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case thinkingmessage.EdgeArena:
		if id := m.arena; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ThinkingMessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ThinkingMessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ThinkingMessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedarena {
		edges = append(edges, thinkingmessage.EdgeArena)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ThinkingMessageMutation) EdgeCleared(name string) bool {
	switch name {
	case thinkingmessage.EdgeArena:
		return m.clearedarena
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ThinkingMessageMutation) ClearEdge(name string) error {
	switch name {
	case thinkingmessage.EdgeArena:
		m.ClearArena()
		return nil
	}
	return fmt.Errorf("unknown ThinkingMessage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ThinkingMessageMutation) ResetEdge(name string) error {
	switch name {
	case thinkingmessage.EdgeArena:
		m.ResetArena()
		return nil
	}
	return fmt.Errorf("unknown ThinkingMessage edge %s", name)
}
