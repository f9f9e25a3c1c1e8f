// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Yourdaylight/stock-datasource-sub001/ent/arena"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/models"
)

// Arena is the model entity for the Arena schema.
type Arena struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Agent count, elimination floor, discussion settings, symbol universe
	Config models.ArenaConfig `json:"config,omitempty"`
	// State holds the value of the "state" field.
	State arena.State `json:"state,omitempty"`
	// Phase to re-enter after a pause; nil unless paused
	ResumeState *arena.ResumeState `json:"resume_state,omitempty"`
	// RoundsCompleted holds the value of the "rounds_completed" field.
	RoundsCompleted int `json:"rounds_completed,omitempty"`
	// EvaluationsRun holds the value of the "evaluations_run" field.
	EvaluationsRun int `json:"evaluations_run,omitempty"`
	// LastError holds the value of the "last_error" field.
	LastError string `json:"last_error,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ArenaQuery when eager-loading is set.
	Edges        ArenaEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ArenaEdges holds the relations/edges for other nodes in the graph.
type ArenaEdges struct {
	// Strategies holds the value of the strategies edge.
	Strategies []*Strategy `json:"strategies,omitempty"`
	// Rounds holds the value of the rounds edge.
	Rounds []*DiscussionRound `json:"rounds,omitempty"`
	// Messages holds the value of the messages edge.
	Messages []*ThinkingMessage `json:"messages,omitempty"`
	// Eliminations holds the value of the eliminations edge.
	Eliminations []*EliminationEvent `json:"eliminations,omitempty"`
	// Reports holds the value of the reports edge.
	Reports []*EvaluationReport `json:"reports,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [5]bool
}

// StrategiesOrErr returns the Strategies value or an error if the edge
// was not loaded in eager-loading.
func (e ArenaEdges) StrategiesOrErr() ([]*Strategy, error) {
	if e.loadedTypes[0] {
		return e.Strategies, nil
	}
	return nil, &NotLoadedError{edge: "strategies"}
}

// RoundsOrErr returns the Rounds value or an error if the edge
// was not loaded in eager-loading.
func (e ArenaEdges) RoundsOrErr() ([]*DiscussionRound, error) {
	if e.loadedTypes[1] {
		return e.Rounds, nil
	}
	return nil, &NotLoadedError{edge: "rounds"}
}

// MessagesOrErr returns the Messages value or an error if the edge
// was not loaded in eager-loading.
func (e ArenaEdges) MessagesOrErr() ([]*ThinkingMessage, error) {
	if e.loadedTypes[2] {
		return e.Messages, nil
	}
	return nil, &NotLoadedError{edge: "messages"}
}

// EliminationsOrErr returns the Eliminations value or an error if the edge
// was not loaded in eager-loading.
func (e ArenaEdges) EliminationsOrErr() ([]*EliminationEvent, error) {
	if e.loadedTypes[3] {
		return e.Eliminations, nil
	}
	return nil, &NotLoadedError{edge: "eliminations"}
}

// ReportsOrErr returns the Reports value or an error if the edge
// was not loaded in eager-loading.
func (e ArenaEdges) ReportsOrErr() ([]*EvaluationReport, error) {
	if e.loadedTypes[4] {
		return e.Reports, nil
	}
	return nil, &NotLoadedError{edge: "reports"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Arena) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case arena.FieldConfig:
			values[i] = new([]byte)
		case arena.FieldRoundsCompleted, arena.FieldEvaluationsRun:
			values[i] = new(sql.NullInt64)
		case arena.FieldID, arena.FieldName, arena.FieldState, arena.FieldResumeState, arena.FieldLastError:
			values[i] = new(sql.NullString)
		case arena.FieldCreatedAt, arena.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Arena fields.
func (_m *Arena) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case arena.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case arena.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case arena.FieldConfig:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field config", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Config); err != nil {
					return fmt.Errorf("unmarshal field config: %w", err)
				}
			}
		case arena.FieldState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value.Valid {
				_m.State = arena.State(value.String)
			}
		case arena.FieldResumeState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field resume_state", values[i])
			} else if value.Valid {
				_m.ResumeState = new(arena.ResumeState)
				*_m.ResumeState = arena.ResumeState(value.String)
			}
		case arena.FieldRoundsCompleted:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field rounds_completed", values[i])
			} else if value.Valid {
				_m.RoundsCompleted = int(value.Int64)
			}
		case arena.FieldEvaluationsRun:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field evaluations_run", values[i])
			} else if value.Valid {
				_m.EvaluationsRun = int(value.Int64)
			}
		case arena.FieldLastError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_error", values[i])
			} else if value.Valid {
				_m.LastError = value.String
			}
		case arena.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case arena.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Arena.
// This includes values selected through modifiers, order, etc.
func (_m *Arena) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryStrategies queries the "strategies" edge of the Arena entity.
func (_m *Arena) QueryStrategies() *StrategyQuery {
	return NewArenaClient(_m.config).QueryStrategies(_m)
}

// QueryRounds queries the "rounds" edge of the Arena entity.
func (_m *Arena) QueryRounds() *DiscussionRoundQuery {
	return NewArenaClient(_m.config).QueryRounds(_m)
}

// QueryMessages queries the "messages" edge of the Arena entity.
func (_m *Arena) QueryMessages() *ThinkingMessageQuery {
	return NewArenaClient(_m.config).QueryMessages(_m)
}

// QueryEliminations queries the "eliminations" edge of the Arena entity.
func (_m *Arena) QueryEliminations() *EliminationEventQuery {
	return NewArenaClient(_m.config).QueryEliminations(_m)
}

// QueryReports queries the "reports" edge of the Arena entity.
func (_m *Arena) QueryReports() *EvaluationReportQuery {
	return NewArenaClient(_m.config).QueryReports(_m)
}

// Update returns a builder for updating this Arena.
// Note that you need to call Arena.Unwrap() before calling this method if this Arena
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Arena) Update() *ArenaUpdateOne {
	return NewArenaClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Arena entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Arena) Unwrap() *Arena {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Arena is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Arena) String() string {
	var builder strings.Builder
	builder.WriteString("Arena(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("config=")
	builder.WriteString(fmt.Sprintf("%v", _m.Config))
	builder.WriteString(", ")
	builder.WriteString("state=")
	builder.WriteString(fmt.Sprintf("%v", _m.State))
	builder.WriteString(", ")
	if v := _m.ResumeState; v != nil {
		builder.WriteString("resume_state=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("rounds_completed=")
	builder.WriteString(fmt.Sprintf("%v", _m.RoundsCompleted))
	builder.WriteString(", ")
	builder.WriteString("evaluations_run=")
	builder.WriteString(fmt.Sprintf("%v", _m.EvaluationsRun))
	builder.WriteString(", ")
	builder.WriteString("last_error=")
	builder.WriteString(_m.LastError)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Arenas is a parsable slice of Arena.
type Arenas []*Arena
