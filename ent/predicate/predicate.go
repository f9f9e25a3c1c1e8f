// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Arena is the predicate function for arena builders.
type Arena func(*sql.Selector)

// BatchExecution is the predicate function for batchexecution builders.
type BatchExecution func(*sql.Selector)

// DiscussionRound is the predicate function for discussionround builders.
type DiscussionRound func(*sql.Selector)

// EliminationEvent is the predicate function for eliminationevent builders.
type EliminationEvent func(*sql.Selector)

// EvaluationReport is the predicate function for evaluationreport builders.
type EvaluationReport func(*sql.Selector)

// PluginSetting is the predicate function for pluginsetting builders.
type PluginSetting func(*sql.Selector)

// SchemaAudit is the predicate function for schemaaudit builders.
type SchemaAudit func(*sql.Selector)

// Strategy is the predicate function for strategy builders.
type Strategy func(*sql.Selector)

// SubTask is the predicate function for subtask builders.
type SubTask func(*sql.Selector)

// ThinkingMessage is the predicate function for thinkingmessage builders.
type ThinkingMessage func(*sql.Selector)
