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
	"github.com/Yourdaylight/stock-datasource-sub001/ent/discussionround"
)

// DiscussionRound is the model entity for the DiscussionRound schema.
type DiscussionRound struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ArenaID holds the value of the "arena_id" field.
	ArenaID string `json:"arena_id,omitempty"`
	// 1-based, monotonic across discussion cycles
	RoundNumber int `json:"round_number,omitempty"`
	// Mode holds the value of the "mode" field.
	Mode discussionround.Mode `json:"mode,omitempty"`
	// Agent IDs in speaking order
	Participants []string `json:"participants,omitempty"`
	// agent_id -> closing position, filled as agents finish
	Conclusions map[string]string `json:"conclusions,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DiscussionRoundQuery when eager-loading is set.
	Edges        DiscussionRoundEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DiscussionRoundEdges holds the relations/edges for other nodes in the graph.
type DiscussionRoundEdges struct {
	// Arena holds the value of the arena edge.
	Arena *Arena `json:"arena,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ArenaOrErr returns the Arena value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DiscussionRoundEdges) ArenaOrErr() (*Arena, error) {
	if e.Arena != nil {
		return e.Arena, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: arena.Label}
	}
	return nil, &NotLoadedError{edge: "arena"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DiscussionRound) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case discussionround.FieldParticipants, discussionround.FieldConclusions:
			values[i] = new([]byte)
		case discussionround.FieldRoundNumber:
			values[i] = new(sql.NullInt64)
		case discussionround.FieldID, discussionround.FieldArenaID, discussionround.FieldMode:
			values[i] = new(sql.NullString)
		case discussionround.FieldStartedAt, discussionround.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DiscussionRound fields.
func (_m *DiscussionRound) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case discussionround.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case discussionround.FieldArenaID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field arena_id", values[i])
			} else if value.Valid {
				_m.ArenaID = value.String
			}
		case discussionround.FieldRoundNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field round_number", values[i])
			} else if value.Valid {
				_m.RoundNumber = int(value.Int64)
			}
		case discussionround.FieldMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mode", values[i])
			} else if value.Valid {
				_m.Mode = discussionround.Mode(value.String)
			}
		case discussionround.FieldParticipants:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field participants", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Participants); err != nil {
					return fmt.Errorf("unmarshal field participants: %w", err)
				}
			}
		case discussionround.FieldConclusions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field conclusions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Conclusions); err != nil {
					return fmt.Errorf("unmarshal field conclusions: %w", err)
				}
			}
		case discussionround.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case discussionround.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DiscussionRound.
// This includes values selected through modifiers, order, etc.
func (_m *DiscussionRound) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryArena queries the "arena" edge of the DiscussionRound entity.
func (_m *DiscussionRound) QueryArena() *ArenaQuery {
	return NewDiscussionRoundClient(_m.config).QueryArena(_m)
}

// Update returns a builder for updating this DiscussionRound.
// Note that you need to call DiscussionRound.Unwrap() before calling this method if this DiscussionRound
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DiscussionRound) Update() *DiscussionRoundUpdateOne {
	return NewDiscussionRoundClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DiscussionRound entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DiscussionRound) Unwrap() *DiscussionRound {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DiscussionRound is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DiscussionRound) String() string {
	var builder strings.Builder
	builder.WriteString("DiscussionRound(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("arena_id=")
	builder.WriteString(_m.ArenaID)
	builder.WriteString(", ")
	builder.WriteString("round_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.RoundNumber))
	builder.WriteString(", ")
	builder.WriteString("mode=")
	builder.WriteString(fmt.Sprintf("%v", _m.Mode))
	builder.WriteString(", ")
	builder.WriteString("participants=")
	builder.WriteString(fmt.Sprintf("%v", _m.Participants))
	builder.WriteString(", ")
	builder.WriteString("conclusions=")
	builder.WriteString(fmt.Sprintf("%v", _m.Conclusions))
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// DiscussionRounds is a parsable slice of DiscussionRound.
type DiscussionRounds []*DiscussionRound
