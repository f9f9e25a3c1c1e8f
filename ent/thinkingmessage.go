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
	"github.com/Yourdaylight/stock-datasource-sub001/ent/thinkingmessage"
)

// ThinkingMessage is the model entity for the ThinkingMessage schema.
type ThinkingMessage struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ArenaID holds the value of the "arena_id" field.
	ArenaID string `json:"arena_id,omitempty"`
	// Empty for system and operator messages
	AgentID string `json:"agent_id,omitempty"`
	// AgentRole holds the value of the "agent_role" field.
	AgentRole *thinkingmessage.AgentRole `json:"agent_role,omitempty"`
	// RoundID holds the value of the "round_id" field.
	RoundID string `json:"round_id,omitempty"`
	// MessageType holds the value of the "message_type" field.
	MessageType thinkingmessage.MessageType `json:"message_type,omitempty"`
	// Content holds the value of the "content" field.
	Content string `json:"content,omitempty"`
	// Type-specific data (token usage, report links, source)
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	// Strictly increasing per arena, assigned at publish time
	Sequence int64 `json:"sequence,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ThinkingMessageQuery when eager-loading is set.
	Edges        ThinkingMessageEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ThinkingMessageEdges holds the relations/edges for other nodes in the graph.
type ThinkingMessageEdges struct {
	// Arena holds the value of the arena edge.
	Arena *Arena `json:"arena,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ArenaOrErr returns the Arena value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ThinkingMessageEdges) ArenaOrErr() (*Arena, error) {
	if e.Arena != nil {
		return e.Arena, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: arena.Label}
	}
	return nil, &NotLoadedError{edge: "arena"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ThinkingMessage) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case thinkingmessage.FieldMetadata:
			values[i] = new([]byte)
		case thinkingmessage.FieldSequence:
			values[i] = new(sql.NullInt64)
		case thinkingmessage.FieldID, thinkingmessage.FieldArenaID, thinkingmessage.FieldAgentID, thinkingmessage.FieldAgentRole, thinkingmessage.FieldRoundID, thinkingmessage.FieldMessageType, thinkingmessage.FieldContent:
			values[i] = new(sql.NullString)
		case thinkingmessage.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ThinkingMessage fields.
func (_m *ThinkingMessage) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case thinkingmessage.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case thinkingmessage.FieldArenaID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field arena_id", values[i])
			} else if value.Valid {
				_m.ArenaID = value.String
			}
		case thinkingmessage.FieldAgentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_id", values[i])
			} else if value.Valid {
				_m.AgentID = value.String
			}
		case thinkingmessage.FieldAgentRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_role", values[i])
			} else if value.Valid {
				_m.AgentRole = new(thinkingmessage.AgentRole)
				*_m.AgentRole = thinkingmessage.AgentRole(value.String)
			}
		case thinkingmessage.FieldRoundID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field round_id", values[i])
			} else if value.Valid {
				_m.RoundID = value.String
			}
		case thinkingmessage.FieldMessageType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field message_type", values[i])
			} else if value.Valid {
				_m.MessageType = thinkingmessage.MessageType(value.String)
			}
		case thinkingmessage.FieldContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value.Valid {
				_m.Content = value.String
			}
		case thinkingmessage.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		case thinkingmessage.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case thinkingmessage.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ThinkingMessage.
// This includes values selected through modifiers, order, etc.
func (_m *ThinkingMessage) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryArena queries the "arena" edge of the ThinkingMessage entity.
func (_m *ThinkingMessage) QueryArena() *ArenaQuery {
	return NewThinkingMessageClient(_m.config).QueryArena(_m)
}

// Update returns a builder for updating this ThinkingMessage.
// Note that you need to call ThinkingMessage.Unwrap() before calling this method if this ThinkingMessage
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ThinkingMessage) Update() *ThinkingMessageUpdateOne {
	return NewThinkingMessageClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ThinkingMessage entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ThinkingMessage) Unwrap() *ThinkingMessage {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ThinkingMessage is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ThinkingMessage) String() string {
	var builder strings.Builder
	builder.WriteString("ThinkingMessage(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("arena_id=")
	builder.WriteString(_m.ArenaID)
	builder.WriteString(", ")
	builder.WriteString("agent_id=")
	builder.WriteString(_m.AgentID)
	builder.WriteString(", ")
	if v := _m.AgentRole; v != nil {
		builder.WriteString("agent_role=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("round_id=")
	builder.WriteString(_m.RoundID)
	builder.WriteString(", ")
	builder.WriteString("message_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.MessageType))
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(_m.Content)
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteString(", ")
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ThinkingMessages is a parsable slice of ThinkingMessage.
type ThinkingMessages []*ThinkingMessage
