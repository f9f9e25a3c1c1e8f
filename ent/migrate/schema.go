// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ArenasColumns holds the columns for the "arenas" table.
	ArenasColumns = []*schema.Column{
		{Name: "arena_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "config", Type: field.TypeJSON},
		{Name: "state", Type: field.TypeEnum, Enums: []string{"created", "initializing", "discussing", "backtesting", "simulating", "evaluating", "paused", "completed", "failed"}, Default: "created"},
		{Name: "resume_state", Type: field.TypeEnum, Nullable: true, Enums: []string{"created", "initializing", "discussing", "backtesting", "simulating", "evaluating", "paused", "completed", "failed"}},
		{Name: "rounds_completed", Type: field.TypeInt, Default: 0},
		{Name: "evaluations_run", Type: field.TypeInt, Default: 0},
		{Name: "last_error", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ArenasTable holds the schema information for the "arenas" table.
	ArenasTable = &schema.Table{
		Name:       "arenas",
		Columns:    ArenasColumns,
		PrimaryKey: []*schema.Column{ArenasColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "arena_state",
				Unique:  false,
				Columns: []*schema.Column{ArenasColumns[3]},
			},
			{
				Name:    "arena_created_at",
				Unique:  false,
				Columns: []*schema.Column{ArenasColumns[8]},
			},
		},
	}
	// BatchExecutionsColumns holds the columns for the "batch_executions" table.
	BatchExecutionsColumns = []*schema.Column{
		{Name: "execution_id", Type: field.TypeString, Unique: true},
		{Name: "trigger_type", Type: field.TypeEnum, Enums: []string{"scheduled", "manual", "group", "retry"}},
		{Name: "group_name", Type: field.TypeString, Nullable: true},
		{Name: "date_range", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "completed", "failed", "stopping", "stopped", "skipped", "interrupted"}, Default: "pending"},
		{Name: "total_plugins", Type: field.TypeInt, Default: 0},
		{Name: "completed_plugins", Type: field.TypeInt, Default: 0},
		{Name: "failed_plugins", Type: field.TypeInt, Default: 0},
		{Name: "error_summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "can_retry", Type: field.TypeBool, Default: false},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "version", Type: field.TypeInt64, Default: 1},
	}
	// BatchExecutionsTable holds the schema information for the "batch_executions" table.
	BatchExecutionsTable = &schema.Table{
		Name:       "batch_executions",
		Columns:    BatchExecutionsColumns,
		PrimaryKey: []*schema.Column{BatchExecutionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "batchexecution_status",
				Unique:  false,
				Columns: []*schema.Column{BatchExecutionsColumns[4]},
			},
			{
				Name:    "batchexecution_trigger_type",
				Unique:  false,
				Columns: []*schema.Column{BatchExecutionsColumns[1]},
			},
			{
				Name:    "batchexecution_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{BatchExecutionsColumns[4], BatchExecutionsColumns[10]},
			},
			{
				Name:    "batchexecution_started_at",
				Unique:  false,
				Columns: []*schema.Column{BatchExecutionsColumns[10]},
			},
		},
	}
	// DiscussionRoundsColumns holds the columns for the "discussion_rounds" table.
	DiscussionRoundsColumns = []*schema.Column{
		{Name: "round_id", Type: field.TypeString, Unique: true},
		{Name: "round_number", Type: field.TypeInt},
		{Name: "mode", Type: field.TypeEnum, Enums: []string{"debate", "collaboration", "review"}},
		{Name: "participants", Type: field.TypeJSON},
		{Name: "conclusions", Type: field.TypeJSON, Nullable: true},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "arena_id", Type: field.TypeString},
	}
	// DiscussionRoundsTable holds the schema information for the "discussion_rounds" table.
	DiscussionRoundsTable = &schema.Table{
		Name:       "discussion_rounds",
		Columns:    DiscussionRoundsColumns,
		PrimaryKey: []*schema.Column{DiscussionRoundsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "discussion_rounds_arenas_rounds",
				Columns:    []*schema.Column{DiscussionRoundsColumns[7]},
				RefColumns: []*schema.Column{ArenasColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "discussionround_arena_id_round_number",
				Unique:  true,
				Columns: []*schema.Column{DiscussionRoundsColumns[7], DiscussionRoundsColumns[1]},
			},
		},
	}
	// EliminationEventsColumns holds the columns for the "elimination_events" table.
	EliminationEventsColumns = []*schema.Column{
		{Name: "event_id", Type: field.TypeInt64, Increment: true},
		{Name: "period", Type: field.TypeEnum, Enums: []string{"daily", "weekly", "monthly", "manual"}},
		{Name: "strategy_id", Type: field.TypeString},
		{Name: "score", Type: field.TypeFloat64},
		{Name: "reason", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "arena_id", Type: field.TypeString},
	}
	// EliminationEventsTable holds the schema information for the "elimination_events" table.
	EliminationEventsTable = &schema.Table{
		Name:       "elimination_events",
		Columns:    EliminationEventsColumns,
		PrimaryKey: []*schema.Column{EliminationEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "elimination_events_arenas_eliminations",
				Columns:    []*schema.Column{EliminationEventsColumns[6]},
				RefColumns: []*schema.Column{ArenasColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "eliminationevent_arena_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{EliminationEventsColumns[6], EliminationEventsColumns[5]},
			},
			{
				Name:    "eliminationevent_strategy_id",
				Unique:  false,
				Columns: []*schema.Column{EliminationEventsColumns[2]},
			},
		},
	}
	// EvaluationReportsColumns holds the columns for the "evaluation_reports" table.
	EvaluationReportsColumns = []*schema.Column{
		{Name: "report_id", Type: field.TypeString, Unique: true},
		{Name: "period", Type: field.TypeEnum, Enums: []string{"daily", "weekly", "monthly", "manual"}},
		{Name: "evaluated", Type: field.TypeInt},
		{Name: "eliminated", Type: field.TypeInt, Default: 0},
		{Name: "min_floor_applied", Type: field.TypeBool, Default: false},
		{Name: "rankings", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "arena_id", Type: field.TypeString},
	}
	// EvaluationReportsTable holds the schema information for the "evaluation_reports" table.
	EvaluationReportsTable = &schema.Table{
		Name:       "evaluation_reports",
		Columns:    EvaluationReportsColumns,
		PrimaryKey: []*schema.Column{EvaluationReportsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "evaluation_reports_arenas_reports",
				Columns:    []*schema.Column{EvaluationReportsColumns[7]},
				RefColumns: []*schema.Column{ArenasColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "evaluationreport_arena_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{EvaluationReportsColumns[7], EvaluationReportsColumns[6]},
			},
		},
	}
	// PluginSettingsColumns holds the columns for the "plugin_settings" table.
	PluginSettingsColumns = []*schema.Column{
		{Name: "plugin_name", Type: field.TypeString, Unique: true},
		{Name: "schedule_enabled", Type: field.TypeBool, Default: true},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// PluginSettingsTable holds the schema information for the "plugin_settings" table.
	PluginSettingsTable = &schema.Table{
		Name:       "plugin_settings",
		Columns:    PluginSettingsColumns,
		PrimaryKey: []*schema.Column{PluginSettingsColumns[0]},
	}
	// SchemaAuditsColumns holds the columns for the "schema_audits" table.
	SchemaAuditsColumns = []*schema.Column{
		{Name: "audit_id", Type: field.TypeInt64, Increment: true},
		{Name: "table_name", Type: field.TypeString},
		{Name: "column_name", Type: field.TypeString, Nullable: true},
		{Name: "action", Type: field.TypeString},
		{Name: "old_type", Type: field.TypeString, Nullable: true},
		{Name: "new_type", Type: field.TypeString, Nullable: true},
		{Name: "reason", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
	}
	// SchemaAuditsTable holds the schema information for the "schema_audits" table.
	SchemaAuditsTable = &schema.Table{
		Name:       "schema_audits",
		Columns:    SchemaAuditsColumns,
		PrimaryKey: []*schema.Column{SchemaAuditsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "schemaaudit_table_name_created_at",
				Unique:  false,
				Columns: []*schema.Column{SchemaAuditsColumns[1], SchemaAuditsColumns[7]},
			},
			{
				Name:    "schemaaudit_created_at",
				Unique:  false,
				Columns: []*schema.Column{SchemaAuditsColumns[7]},
			},
		},
	}
	// StrategiesColumns holds the columns for the "strategies" table.
	StrategiesColumns = []*schema.Column{
		{Name: "strategy_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "agent_id", Type: field.TypeString},
		{Name: "agent_role", Type: field.TypeEnum, Enums: []string{"strategy_generator", "strategy_reviewer", "risk_analyst", "market_sentiment", "quant_researcher"}},
		{Name: "stage", Type: field.TypeEnum, Enums: []string{"backtest", "simulated", "live"}, Default: "backtest"},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "current_score", Type: field.TypeFloat64, Default: 0},
		{Name: "current_rank", Type: field.TypeInt, Default: 0},
		{Name: "logic", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "rules", Type: field.TypeJSON},
		{Name: "profitability_score", Type: field.TypeFloat64, Default: 0},
		{Name: "risk_score", Type: field.TypeFloat64, Default: 0},
		{Name: "stability_score", Type: field.TypeFloat64, Default: 0},
		{Name: "adaptability_score", Type: field.TypeFloat64, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "arena_id", Type: field.TypeString},
	}
	// StrategiesTable holds the schema information for the "strategies" table.
	StrategiesTable = &schema.Table{
		Name:       "strategies",
		Columns:    StrategiesColumns,
		PrimaryKey: []*schema.Column{StrategiesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "strategies_arenas_strategies",
				Columns:    []*schema.Column{StrategiesColumns[16]},
				RefColumns: []*schema.Column{ArenasColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "strategy_arena_id_is_active",
				Unique:  false,
				Columns: []*schema.Column{StrategiesColumns[16], StrategiesColumns[5]},
			},
			{
				Name:    "strategy_arena_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{StrategiesColumns[16], StrategiesColumns[14]},
			},
		},
	}
	// SubTasksColumns holds the columns for the "sub_tasks" table.
	SubTasksColumns = []*schema.Column{
		{Name: "task_id", Type: field.TypeString, Unique: true},
		{Name: "plugin_name", Type: field.TypeString},
		{Name: "task_type", Type: field.TypeEnum, Enums: []string{"incremental", "full", "backfill"}},
		{Name: "parameters", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "completed", "failed", "cancelled", "skipped"}, Default: "pending"},
		{Name: "progress", Type: field.TypeInt, Default: 0},
		{Name: "records_processed", Type: field.TypeInt, Default: 0},
		{Name: "records_failed", Type: field.TypeInt, Default: 0},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "execution_id", Type: field.TypeString},
	}
	// SubTasksTable holds the schema information for the "sub_tasks" table.
	SubTasksTable = &schema.Table{
		Name:       "sub_tasks",
		Columns:    SubTasksColumns,
		PrimaryKey: []*schema.Column{SubTasksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "sub_tasks_batch_executions_sub_tasks",
				Columns:    []*schema.Column{SubTasksColumns[12]},
				RefColumns: []*schema.Column{BatchExecutionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "subtask_execution_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{SubTasksColumns[12], SubTasksColumns[11]},
			},
			{
				Name:    "subtask_plugin_name",
				Unique:  false,
				Columns: []*schema.Column{SubTasksColumns[1]},
			},
			{
				Name:    "subtask_status",
				Unique:  false,
				Columns: []*schema.Column{SubTasksColumns[4]},
			},
		},
	}
	// ThinkingMessagesColumns holds the columns for the "thinking_messages" table.
	ThinkingMessagesColumns = []*schema.Column{
		{Name: "message_id", Type: field.TypeString, Unique: true},
		{Name: "agent_id", Type: field.TypeString, Nullable: true},
		{Name: "agent_role", Type: field.TypeEnum, Nullable: true, Enums: []string{"strategy_generator", "strategy_reviewer", "risk_analyst", "market_sentiment", "quant_researcher"}},
		{Name: "round_id", Type: field.TypeString, Nullable: true},
		{Name: "message_type", Type: field.TypeEnum, Enums: []string{"thinking", "argument", "conclusion", "intervention", "system", "error"}},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "arena_id", Type: field.TypeString},
	}
	// ThinkingMessagesTable holds the schema information for the "thinking_messages" table.
	ThinkingMessagesTable = &schema.Table{
		Name:       "thinking_messages",
		Columns:    ThinkingMessagesColumns,
		PrimaryKey: []*schema.Column{ThinkingMessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "thinking_messages_arenas_messages",
				Columns:    []*schema.Column{ThinkingMessagesColumns[9]},
				RefColumns: []*schema.Column{ArenasColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "thinkingmessage_arena_id_sequence",
				Unique:  true,
				Columns: []*schema.Column{ThinkingMessagesColumns[9], ThinkingMessagesColumns[7]},
			},
			{
				Name:    "thinkingmessage_round_id",
				Unique:  false,
				Columns: []*schema.Column{ThinkingMessagesColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ArenasTable,
		BatchExecutionsTable,
		DiscussionRoundsTable,
		EliminationEventsTable,
		EvaluationReportsTable,
		PluginSettingsTable,
		SchemaAuditsTable,
		StrategiesTable,
		SubTasksTable,
		ThinkingMessagesTable,
	}
)

func init() {
	DiscussionRoundsTable.ForeignKeys[0].RefTable = ArenasTable
	EliminationEventsTable.ForeignKeys[0].RefTable = ArenasTable
	EvaluationReportsTable.ForeignKeys[0].RefTable = ArenasTable
	StrategiesTable.ForeignKeys[0].RefTable = ArenasTable
	SubTasksTable.ForeignKeys[0].RefTable = BatchExecutionsTable
	ThinkingMessagesTable.ForeignKeys[0].RefTable = ArenasTable
}
