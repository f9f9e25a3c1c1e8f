// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/Yourdaylight/stock-datasource-sub001/ent/arena"
	"github.com/Yourdaylight/stock-datasource-sub001/ent/batchexecution"
	"github.com/Yourdaylight/stock-datasource-sub001/ent/discussionround"
	"github.com/Yourdaylight/stock-datasource-sub001/ent/eliminationevent"
	"github.com/Yourdaylight/stock-datasource-sub001/ent/evaluationreport"
	"github.com/Yourdaylight/stock-datasource-sub001/ent/pluginsetting"
	"github.com/Yourdaylight/stock-datasource-sub001/ent/schema"
	"github.com/Yourdaylight/stock-datasource-sub001/ent/schemaaudit"
	"github.com/Yourdaylight/stock-datasource-sub001/ent/strategy"
	"github.com/Yourdaylight/stock-datasource-sub001/ent/subtask"
	"github.com/Yourdaylight/stock-datasource-sub001/ent/thinkingmessage"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	arenaFields := schema.Arena{}.Fields()
	_ = arenaFields
	// arenaDescRoundsCompleted is the schema descriptor for rounds_completed field.
	arenaDescRoundsCompleted := arenaFields[5].Descriptor()
	// arena.DefaultRoundsCompleted holds the default value on creation for the rounds_completed field.
	arena.DefaultRoundsCompleted = arenaDescRoundsCompleted.Default.(int)
	// arenaDescEvaluationsRun is the schema descriptor for evaluations_run field.
	arenaDescEvaluationsRun := arenaFields[6].Descriptor()
	// arena.DefaultEvaluationsRun holds the default value on creation for the evaluations_run field.
	arena.DefaultEvaluationsRun = arenaDescEvaluationsRun.Default.(int)
	// arenaDescCreatedAt is the schema descriptor for created_at field.
	arenaDescCreatedAt := arenaFields[8].Descriptor()
	// arena.DefaultCreatedAt holds the default value on creation for the created_at field.
	arena.DefaultCreatedAt = arenaDescCreatedAt.Default.(func() time.Time)
	// arenaDescUpdatedAt is the schema descriptor for updated_at field.
	arenaDescUpdatedAt := arenaFields[9].Descriptor()
	// arena.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	arena.DefaultUpdatedAt = arenaDescUpdatedAt.Default.(func() time.Time)
	// arena.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	arena.UpdateDefaultUpdatedAt = arenaDescUpdatedAt.UpdateDefault.(func() time.Time)
	batchexecutionFields := schema.BatchExecution{}.Fields()
	_ = batchexecutionFields
	// batchexecutionDescTotalPlugins is the schema descriptor for total_plugins field.
	batchexecutionDescTotalPlugins := batchexecutionFields[5].Descriptor()
	// batchexecution.DefaultTotalPlugins holds the default value on creation for the total_plugins field.
	batchexecution.DefaultTotalPlugins = batchexecutionDescTotalPlugins.Default.(int)
	// batchexecutionDescCompletedPlugins is the schema descriptor for completed_plugins field.
	batchexecutionDescCompletedPlugins := batchexecutionFields[6].Descriptor()
	// batchexecution.DefaultCompletedPlugins holds the default value on creation for the completed_plugins field.
	batchexecution.DefaultCompletedPlugins = batchexecutionDescCompletedPlugins.Default.(int)
	// batchexecutionDescFailedPlugins is the schema descriptor for failed_plugins field.
	batchexecutionDescFailedPlugins := batchexecutionFields[7].Descriptor()
	// batchexecution.DefaultFailedPlugins holds the default value on creation for the failed_plugins field.
	batchexecution.DefaultFailedPlugins = batchexecutionDescFailedPlugins.Default.(int)
	// batchexecutionDescCanRetry is the schema descriptor for can_retry field.
	batchexecutionDescCanRetry := batchexecutionFields[9].Descriptor()
	// batchexecution.DefaultCanRetry holds the default value on creation for the can_retry field.
	batchexecution.DefaultCanRetry = batchexecutionDescCanRetry.Default.(bool)
	// batchexecutionDescStartedAt is the schema descriptor for started_at field.
	batchexecutionDescStartedAt := batchexecutionFields[10].Descriptor()
	// batchexecution.DefaultStartedAt holds the default value on creation for the started_at field.
	batchexecution.DefaultStartedAt = batchexecutionDescStartedAt.Default.(func() time.Time)
	// batchexecutionDescVersion is the schema descriptor for version field.
	batchexecutionDescVersion := batchexecutionFields[12].Descriptor()
	// batchexecution.DefaultVersion holds the default value on creation for the version field.
	batchexecution.DefaultVersion = batchexecutionDescVersion.Default.(int64)
	discussionroundFields := schema.DiscussionRound{}.Fields()
	_ = discussionroundFields
	// discussionroundDescStartedAt is the schema descriptor for started_at field.
	discussionroundDescStartedAt := discussionroundFields[6].Descriptor()
	// discussionround.DefaultStartedAt holds the default value on creation for the started_at field.
	discussionround.DefaultStartedAt = discussionroundDescStartedAt.Default.(func() time.Time)
	eliminationeventFields := schema.EliminationEvent{}.Fields()
	_ = eliminationeventFields
	// eliminationeventDescCreatedAt is the schema descriptor for created_at field.
	eliminationeventDescCreatedAt := eliminationeventFields[6].Descriptor()
	// eliminationevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	eliminationevent.DefaultCreatedAt = eliminationeventDescCreatedAt.Default.(func() time.Time)
	evaluationreportFields := schema.EvaluationReport{}.Fields()
	_ = evaluationreportFields
	// evaluationreportDescEliminated is the schema descriptor for eliminated field.
	evaluationreportDescEliminated := evaluationreportFields[4].Descriptor()
	// evaluationreport.DefaultEliminated holds the default value on creation for the eliminated field.
	evaluationreport.DefaultEliminated = evaluationreportDescEliminated.Default.(int)
	// evaluationreportDescMinFloorApplied is the schema descriptor for min_floor_applied field.
	evaluationreportDescMinFloorApplied := evaluationreportFields[5].Descriptor()
	// evaluationreport.DefaultMinFloorApplied holds the default value on creation for the min_floor_applied field.
	evaluationreport.DefaultMinFloorApplied = evaluationreportDescMinFloorApplied.Default.(bool)
	// evaluationreportDescCreatedAt is the schema descriptor for created_at field.
	evaluationreportDescCreatedAt := evaluationreportFields[7].Descriptor()
	// evaluationreport.DefaultCreatedAt holds the default value on creation for the created_at field.
	evaluationreport.DefaultCreatedAt = evaluationreportDescCreatedAt.Default.(func() time.Time)
	pluginsettingFields := schema.PluginSetting{}.Fields()
	_ = pluginsettingFields
	// pluginsettingDescScheduleEnabled is the schema descriptor for schedule_enabled field.
	pluginsettingDescScheduleEnabled := pluginsettingFields[1].Descriptor()
	// pluginsetting.DefaultScheduleEnabled holds the default value on creation for the schedule_enabled field.
	pluginsetting.DefaultScheduleEnabled = pluginsettingDescScheduleEnabled.Default.(bool)
	// pluginsettingDescUpdatedAt is the schema descriptor for updated_at field.
	pluginsettingDescUpdatedAt := pluginsettingFields[2].Descriptor()
	// pluginsetting.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	pluginsetting.DefaultUpdatedAt = pluginsettingDescUpdatedAt.Default.(func() time.Time)
	// pluginsetting.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	pluginsetting.UpdateDefaultUpdatedAt = pluginsettingDescUpdatedAt.UpdateDefault.(func() time.Time)
	schemaauditFields := schema.SchemaAudit{}.Fields()
	_ = schemaauditFields
	// schemaauditDescCreatedAt is the schema descriptor for created_at field.
	schemaauditDescCreatedAt := schemaauditFields[7].Descriptor()
	// schemaaudit.DefaultCreatedAt holds the default value on creation for the created_at field.
	schemaaudit.DefaultCreatedAt = schemaauditDescCreatedAt.Default.(func() time.Time)
	strategyFields := schema.Strategy{}.Fields()
	_ = strategyFields
	// strategyDescIsActive is the schema descriptor for is_active field.
	strategyDescIsActive := strategyFields[6].Descriptor()
	// strategy.DefaultIsActive holds the default value on creation for the is_active field.
	strategy.DefaultIsActive = strategyDescIsActive.Default.(bool)
	// strategyDescCurrentScore is the schema descriptor for current_score field.
	strategyDescCurrentScore := strategyFields[7].Descriptor()
	// strategy.DefaultCurrentScore holds the default value on creation for the current_score field.
	strategy.DefaultCurrentScore = strategyDescCurrentScore.Default.(float64)
	// strategyDescCurrentRank is the schema descriptor for current_rank field.
	strategyDescCurrentRank := strategyFields[8].Descriptor()
	// strategy.DefaultCurrentRank holds the default value on creation for the current_rank field.
	strategy.DefaultCurrentRank = strategyDescCurrentRank.Default.(int)
	// strategyDescProfitabilityScore is the schema descriptor for profitability_score field.
	strategyDescProfitabilityScore := strategyFields[11].Descriptor()
	// strategy.DefaultProfitabilityScore holds the default value on creation for the profitability_score field.
	strategy.DefaultProfitabilityScore = strategyDescProfitabilityScore.Default.(float64)
	// strategyDescRiskScore is the schema descriptor for risk_score field.
	strategyDescRiskScore := strategyFields[12].Descriptor()
	// strategy.DefaultRiskScore holds the default value on creation for the risk_score field.
	strategy.DefaultRiskScore = strategyDescRiskScore.Default.(float64)
	// strategyDescStabilityScore is the schema descriptor for stability_score field.
	strategyDescStabilityScore := strategyFields[13].Descriptor()
	// strategy.DefaultStabilityScore holds the default value on creation for the stability_score field.
	strategy.DefaultStabilityScore = strategyDescStabilityScore.Default.(float64)
	// strategyDescAdaptabilityScore is the schema descriptor for adaptability_score field.
	strategyDescAdaptabilityScore := strategyFields[14].Descriptor()
	// strategy.DefaultAdaptabilityScore holds the default value on creation for the adaptability_score field.
	strategy.DefaultAdaptabilityScore = strategyDescAdaptabilityScore.Default.(float64)
	// strategyDescCreatedAt is the schema descriptor for created_at field.
	strategyDescCreatedAt := strategyFields[15].Descriptor()
	// strategy.DefaultCreatedAt holds the default value on creation for the created_at field.
	strategy.DefaultCreatedAt = strategyDescCreatedAt.Default.(func() time.Time)
	// strategyDescUpdatedAt is the schema descriptor for updated_at field.
	strategyDescUpdatedAt := strategyFields[16].Descriptor()
	// strategy.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	strategy.DefaultUpdatedAt = strategyDescUpdatedAt.Default.(func() time.Time)
	// strategy.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	strategy.UpdateDefaultUpdatedAt = strategyDescUpdatedAt.UpdateDefault.(func() time.Time)
	subtaskFields := schema.SubTask{}.Fields()
	_ = subtaskFields
	// subtaskDescProgress is the schema descriptor for progress field.
	subtaskDescProgress := subtaskFields[6].Descriptor()
	// subtask.DefaultProgress holds the default value on creation for the progress field.
	subtask.DefaultProgress = subtaskDescProgress.Default.(int)
	// subtaskDescRecordsProcessed is the schema descriptor for records_processed field.
	subtaskDescRecordsProcessed := subtaskFields[7].Descriptor()
	// subtask.DefaultRecordsProcessed holds the default value on creation for the records_processed field.
	subtask.DefaultRecordsProcessed = subtaskDescRecordsProcessed.Default.(int)
	// subtaskDescRecordsFailed is the schema descriptor for records_failed field.
	subtaskDescRecordsFailed := subtaskFields[8].Descriptor()
	// subtask.DefaultRecordsFailed holds the default value on creation for the records_failed field.
	subtask.DefaultRecordsFailed = subtaskDescRecordsFailed.Default.(int)
	// subtaskDescCreatedAt is the schema descriptor for created_at field.
	subtaskDescCreatedAt := subtaskFields[12].Descriptor()
	// subtask.DefaultCreatedAt holds the default value on creation for the created_at field.
	subtask.DefaultCreatedAt = subtaskDescCreatedAt.Default.(func() time.Time)
	thinkingmessageFields := schema.ThinkingMessage{}.Fields()
	_ = thinkingmessageFields
	// thinkingmessageDescCreatedAt is the schema descriptor for created_at field.
	thinkingmessageDescCreatedAt := thinkingmessageFields[9].Descriptor()
	// thinkingmessage.DefaultCreatedAt holds the default value on creation for the created_at field.
	thinkingmessage.DefaultCreatedAt = thinkingmessageDescCreatedAt.Default.(func() time.Time)
}
