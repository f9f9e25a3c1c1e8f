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
	"github.com/Yourdaylight/stock-datasource-sub001/ent/evaluationreport"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/models"
)

// EvaluationReport is the model entity for the EvaluationReport schema.
type EvaluationReport struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ArenaID holds the value of the "arena_id" field.
	ArenaID string `json:"arena_id,omitempty"`
	// Period holds the value of the "period" field.
	Period evaluationreport.Period `json:"period,omitempty"`
	// Strategies scored in this pass
	Evaluated int `json:"evaluated,omitempty"`
	// Eliminated holds the value of the "eliminated" field.
	Eliminated int `json:"eliminated,omitempty"`
	// True when the elimination quota was cut to honor min_active_strategies
	MinFloorApplied bool `json:"min_floor_applied,omitempty"`
	// Leaderboard snapshot at evaluation time
	Rankings []models.RankingEntry `json:"rankings,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the EvaluationReportQuery when eager-loading is set.
	Edges        EvaluationReportEdges `json:"edges"`
	selectValues sql.SelectValues
}

// EvaluationReportEdges holds the relations/edges for other nodes in the graph.
type EvaluationReportEdges struct {
	// Arena holds the value of the arena edge.
	Arena *Arena `json:"arena,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ArenaOrErr returns the Arena value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e EvaluationReportEdges) ArenaOrErr() (*Arena, error) {
	if e.Arena != nil {
		return e.Arena, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: arena.Label}
	}
	return nil, &NotLoadedError{edge: "arena"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EvaluationReport) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case evaluationreport.FieldRankings:
			values[i] = new([]byte)
		case evaluationreport.FieldMinFloorApplied:
			values[i] = new(sql.NullBool)
		case evaluationreport.FieldEvaluated, evaluationreport.FieldEliminated:
			values[i] = new(sql.NullInt64)
		case evaluationreport.FieldID, evaluationreport.FieldArenaID, evaluationreport.FieldPeriod:
			values[i] = new(sql.NullString)
		case evaluationreport.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EvaluationReport fields.
func (_m *EvaluationReport) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case evaluationreport.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case evaluationreport.FieldArenaID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field arena_id", values[i])
			} else if value.Valid {
				_m.ArenaID = value.String
			}
		case evaluationreport.FieldPeriod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field period", values[i])
			} else if value.Valid {
				_m.Period = evaluationreport.Period(value.String)
			}
		case evaluationreport.FieldEvaluated:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field evaluated", values[i])
			} else if value.Valid {
				_m.Evaluated = int(value.Int64)
			}
		case evaluationreport.FieldEliminated:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field eliminated", values[i])
			} else if value.Valid {
				_m.Eliminated = int(value.Int64)
			}
		case evaluationreport.FieldMinFloorApplied:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field min_floor_applied", values[i])
			} else if value.Valid {
				_m.MinFloorApplied = value.Bool
			}
		case evaluationreport.FieldRankings:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field rankings", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Rankings); err != nil {
					return fmt.Errorf("unmarshal field rankings: %w", err)
				}
			}
		case evaluationreport.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the EvaluationReport.
// This includes values selected through modifiers, order, etc.
func (_m *EvaluationReport) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryArena queries the "arena" edge of the EvaluationReport entity.
func (_m *EvaluationReport) QueryArena() *ArenaQuery {
	return NewEvaluationReportClient(_m.config).QueryArena(_m)
}

// Update returns a builder for updating this EvaluationReport.
// Note that you need to call EvaluationReport.Unwrap() before calling this method if this EvaluationReport
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EvaluationReport) Update() *EvaluationReportUpdateOne {
	return NewEvaluationReportClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EvaluationReport entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EvaluationReport) Unwrap() *EvaluationReport {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EvaluationReport is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EvaluationReport) String() string {
	var builder strings.Builder
	builder.WriteString("EvaluationReport(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("arena_id=")
	builder.WriteString(_m.ArenaID)
	builder.WriteString(", ")
	builder.WriteString("period=")
	builder.WriteString(fmt.Sprintf("%v", _m.Period))
	builder.WriteString(", ")
	builder.WriteString("evaluated=")
	builder.WriteString(fmt.Sprintf("%v", _m.Evaluated))
	builder.WriteString(", ")
	builder.WriteString("eliminated=")
	builder.WriteString(fmt.Sprintf("%v", _m.Eliminated))
	builder.WriteString(", ")
	builder.WriteString("min_floor_applied=")
	builder.WriteString(fmt.Sprintf("%v", _m.MinFloorApplied))
	builder.WriteString(", ")
	builder.WriteString("rankings=")
	builder.WriteString(fmt.Sprintf("%v", _m.Rankings))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// EvaluationReports is a parsable slice of EvaluationReport.
type EvaluationReports []*EvaluationReport
