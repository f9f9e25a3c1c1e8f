// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Yourdaylight/stock-datasource-sub001/ent/arena"
	"github.com/Yourdaylight/stock-datasource-sub001/ent/eliminationevent"
)

// EliminationEvent is the model entity for the EliminationEvent schema.
type EliminationEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int64 `json:"id,omitempty"`
	// ArenaID holds the value of the "arena_id" field.
	ArenaID string `json:"arena_id,omitempty"`
	// Period holds the value of the "period" field.
	Period eliminationevent.Period `json:"period,omitempty"`
	// StrategyID holds the value of the "strategy_id" field.
	StrategyID string `json:"strategy_id,omitempty"`
	// Composite score at elimination time
	Score float64 `json:"score,omitempty"`
	// Reason holds the value of the "reason" field.
	Reason string `json:"reason,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the EliminationEventQuery when eager-loading is set.
	Edges        EliminationEventEdges `json:"edges"`
	selectValues sql.SelectValues
}

// EliminationEventEdges holds the relations/edges for other nodes in the graph.
type EliminationEventEdges struct {
	// Arena holds the value of the arena edge.
	Arena *Arena `json:"arena,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ArenaOrErr returns the Arena value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e EliminationEventEdges) ArenaOrErr() (*Arena, error) {
	if e.Arena != nil {
		return e.Arena, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: arena.Label}
	}
	return nil, &NotLoadedError{edge: "arena"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EliminationEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case eliminationevent.FieldScore:
			values[i] = new(sql.NullFloat64)
		case eliminationevent.FieldID:
			values[i] = new(sql.NullInt64)
		case eliminationevent.FieldArenaID, eliminationevent.FieldPeriod, eliminationevent.FieldStrategyID, eliminationevent.FieldReason:
			values[i] = new(sql.NullString)
		case eliminationevent.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EliminationEvent fields.
func (_m *EliminationEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case eliminationevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int64(value.Int64)
		case eliminationevent.FieldArenaID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field arena_id", values[i])
			} else if value.Valid {
				_m.ArenaID = value.String
			}
		case eliminationevent.FieldPeriod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field period", values[i])
			} else if value.Valid {
				_m.Period = eliminationevent.Period(value.String)
			}
		case eliminationevent.FieldStrategyID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field strategy_id", values[i])
			} else if value.Valid {
				_m.StrategyID = value.String
			}
		case eliminationevent.FieldScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = value.Float64
			}
		case eliminationevent.FieldReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reason", values[i])
			} else if value.Valid {
				_m.Reason = value.String
			}
		case eliminationevent.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the EliminationEvent.
// This includes values selected through modifiers, order, etc.
func (_m *EliminationEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryArena queries the "arena" edge of the EliminationEvent entity.
func (_m *EliminationEvent) QueryArena() *ArenaQuery {
	return NewEliminationEventClient(_m.config).QueryArena(_m)
}

// Update returns a builder for updating this EliminationEvent.
// Note that you need to call EliminationEvent.Unwrap() before calling this method if this EliminationEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EliminationEvent) Update() *EliminationEventUpdateOne {
	return NewEliminationEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EliminationEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EliminationEvent) Unwrap() *EliminationEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EliminationEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EliminationEvent) String() string {
	var builder strings.Builder
	builder.WriteString("EliminationEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("arena_id=")
	builder.WriteString(_m.ArenaID)
	builder.WriteString(", ")
	builder.WriteString("period=")
	builder.WriteString(fmt.Sprintf("%v", _m.Period))
	builder.WriteString(", ")
	builder.WriteString("strategy_id=")
	builder.WriteString(_m.StrategyID)
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("reason=")
	builder.WriteString(_m.Reason)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// EliminationEvents is a parsable slice of EliminationEvent.
type EliminationEvents []*EliminationEvent
