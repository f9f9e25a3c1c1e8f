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
	"github.com/Yourdaylight/stock-datasource-sub001/ent/strategy"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/models"
)

// Strategy is the model entity for the Strategy schema.
type Strategy struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ArenaID holds the value of the "arena_id" field.
	ArenaID string `json:"arena_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Owning agent within the arena roster
	AgentID string `json:"agent_id,omitempty"`
	// AgentRole holds the value of the "agent_role" field.
	AgentRole strategy.AgentRole `json:"agent_role,omitempty"`
	// Stage holds the value of the "stage" field.
	Stage strategy.Stage `json:"stage,omitempty"`
	// False once eliminated; rows are kept for history
	IsActive bool `json:"is_active,omitempty"`
	// CurrentScore holds the value of the "current_score" field.
	CurrentScore float64 `json:"current_score,omitempty"`
	// 1-based leaderboard position; 0 before the first evaluation
	CurrentRank int `json:"current_rank,omitempty"`
	// Natural-language description of the trading idea
	Logic string `json:"logic,omitempty"`
	// Typed rule-set the scoring engine evaluates
	Rules models.StrategyRules `json:"rules,omitempty"`
	// ProfitabilityScore holds the value of the "profitability_score" field.
	ProfitabilityScore float64 `json:"profitability_score,omitempty"`
	// RiskScore holds the value of the "risk_score" field.
	RiskScore float64 `json:"risk_score,omitempty"`
	// StabilityScore holds the value of the "stability_score" field.
	StabilityScore float64 `json:"stability_score,omitempty"`
	// AdaptabilityScore holds the value of the "adaptability_score" field.
	AdaptabilityScore float64 `json:"adaptability_score,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the StrategyQuery when eager-loading is set.
	Edges        StrategyEdges `json:"edges"`
	selectValues sql.SelectValues
}

// StrategyEdges holds the relations/edges for other nodes in the graph.
type StrategyEdges struct {
	// Arena holds the value of the arena edge.
	Arena *Arena `json:"arena,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ArenaOrErr returns the Arena value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e StrategyEdges) ArenaOrErr() (*Arena, error) {
	if e.Arena != nil {
		return e.Arena, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: arena.Label}
	}
	return nil, &NotLoadedError{edge: "arena"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Strategy) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case strategy.FieldRules:
			values[i] = new([]byte)
		case strategy.FieldIsActive:
			values[i] = new(sql.NullBool)
		case strategy.FieldCurrentScore, strategy.FieldProfitabilityScore, strategy.FieldRiskScore, strategy.FieldStabilityScore, strategy.FieldAdaptabilityScore:
			values[i] = new(sql.NullFloat64)
		case strategy.FieldCurrentRank:
			values[i] = new(sql.NullInt64)
		case strategy.FieldID, strategy.FieldArenaID, strategy.FieldName, strategy.FieldAgentID, strategy.FieldAgentRole, strategy.FieldStage, strategy.FieldLogic:
			values[i] = new(sql.NullString)
		case strategy.FieldCreatedAt, strategy.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Strategy fields.
func (_m *Strategy) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case strategy.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case strategy.FieldArenaID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field arena_id", values[i])
			} else if value.Valid {
				_m.ArenaID = value.String
			}
		case strategy.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case strategy.FieldAgentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_id", values[i])
			} else if value.Valid {
				_m.AgentID = value.String
			}
		case strategy.FieldAgentRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_role", values[i])
			} else if value.Valid {
				_m.AgentRole = strategy.AgentRole(value.String)
			}
		case strategy.FieldStage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stage", values[i])
			} else if value.Valid {
				_m.Stage = strategy.Stage(value.String)
			}
		case strategy.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		case strategy.FieldCurrentScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field current_score", values[i])
			} else if value.Valid {
				_m.CurrentScore = value.Float64
			}
		case strategy.FieldCurrentRank:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field current_rank", values[i])
			} else if value.Valid {
				_m.CurrentRank = int(value.Int64)
			}
		case strategy.FieldLogic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field logic", values[i])
			} else if value.Valid {
				_m.Logic = value.String
			}
		case strategy.FieldRules:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field rules", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Rules); err != nil {
					return fmt.Errorf("unmarshal field rules: %w", err)
				}
			}
		case strategy.FieldProfitabilityScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field profitability_score", values[i])
			} else if value.Valid {
				_m.ProfitabilityScore = value.Float64
			}
		case strategy.FieldRiskScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field risk_score", values[i])
			} else if value.Valid {
				_m.RiskScore = value.Float64
			}
		case strategy.FieldStabilityScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field stability_score", values[i])
			} else if value.Valid {
				_m.StabilityScore = value.Float64
			}
		case strategy.FieldAdaptabilityScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field adaptability_score", values[i])
			} else if value.Valid {
				_m.AdaptabilityScore = value.Float64
			}
		case strategy.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case strategy.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Strategy.
// This includes values selected through modifiers, order, etc.
func (_m *Strategy) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryArena queries the "arena" edge of the Strategy entity.
func (_m *Strategy) QueryArena() *ArenaQuery {
	return NewStrategyClient(_m.config).QueryArena(_m)
}

// Update returns a builder for updating this Strategy.
// Note that you need to call Strategy.Unwrap() before calling this method if this Strategy
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Strategy) Update() *StrategyUpdateOne {
	return NewStrategyClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Strategy entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Strategy) Unwrap() *Strategy {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Strategy is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Strategy) String() string {
	var builder strings.Builder
	builder.WriteString("Strategy(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("arena_id=")
	builder.WriteString(_m.ArenaID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("agent_id=")
	builder.WriteString(_m.AgentID)
	builder.WriteString(", ")
	builder.WriteString("agent_role=")
	builder.WriteString(fmt.Sprintf("%v", _m.AgentRole))
	builder.WriteString(", ")
	builder.WriteString("stage=")
	builder.WriteString(fmt.Sprintf("%v", _m.Stage))
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteString(", ")
	builder.WriteString("current_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.CurrentScore))
	builder.WriteString(", ")
	builder.WriteString("current_rank=")
	builder.WriteString(fmt.Sprintf("%v", _m.CurrentRank))
	builder.WriteString(", ")
	builder.WriteString("logic=")
	builder.WriteString(_m.Logic)
	builder.WriteString(", ")
	builder.WriteString("rules=")
	builder.WriteString(fmt.Sprintf("%v", _m.Rules))
	builder.WriteString(", ")
	builder.WriteString("profitability_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProfitabilityScore))
	builder.WriteString(", ")
	builder.WriteString("risk_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.RiskScore))
	builder.WriteString(", ")
	builder.WriteString("stability_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.StabilityScore))
	builder.WriteString(", ")
	builder.WriteString("adaptability_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.AdaptabilityScore))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Strategies is a parsable slice of Strategy.
type Strategies []*Strategy
