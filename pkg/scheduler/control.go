package scheduler

import (
	"context"
	"fmt"
	"maps"

	"github.com/Yourdaylight/stock-datasource-sub001/pkg/models"
)

const (
	defaultListLimit = 20
	maxListLimit     = 200
)

// GetExecution returns one execution with its sub-tasks loaded.
func (s *Scheduler) GetExecution(ctx context.Context, executionID string) (*models.ExecutionDetail, error) {
	exec, err := s.executions.Get(ctx, executionID)
	if err != nil {
		return nil, err
	}
	tasks, err := s.subtasks.ListByExecution(ctx, executionID)
	if err != nil {
		return nil, err
	}
	return &models.ExecutionDetail{BatchExecution: exec, SubTasks: tasks}, nil
}

// ListExecutions pages through execution history, newest first.
func (s *Scheduler) ListExecutions(ctx context.Context, filters models.ExecutionFilters) (*models.ExecutionListResponse, error) {
	if filters.Status != "" && !filters.Status.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidRequest, filters.Status)
	}
	if filters.TriggerType != "" && !filters.TriggerType.IsValid() {
		return nil, fmt.Errorf("%w: unknown trigger_type %q", ErrInvalidRequest, filters.TriggerType)
	}
	if filters.Limit <= 0 {
		filters.Limit = defaultListLimit
	}
	if filters.Limit > maxListLimit {
		filters.Limit = maxListLimit
	}
	if filters.Offset < 0 {
		filters.Offset = 0
	}

	execs, total, err := s.executions.List(ctx, filters)
	if err != nil {
		return nil, err
	}
	return &models.ExecutionListResponse{
		Executions: execs,
		TotalCount: total,
		Limit:      filters.Limit,
		Offset:     filters.Offset,
	}, nil
}

// StopExecution cancels an execution's queued sub-tasks immediately and
// asks in-flight ones to wind down at their next batch boundary. The
// execution reads stopping until the last in-flight sub-task settles.
func (s *Scheduler) StopExecution(ctx context.Context, executionID string) (*models.BatchExecution, error) {
	exec, err := s.executions.Get(ctx, executionID)
	if err != nil {
		return nil, err
	}
	switch exec.Status {
	case models.ExecutionStatusPending, models.ExecutionStatusRunning:
	case models.ExecutionStatusStopping:
		// Already winding down.
		return exec, nil
	default:
		return nil, fmt.Errorf("%w: execution %s is %s", ErrExecutionNotActive, executionID, exec.Status)
	}

	er := s.run(executionID)
	if er == nil {
		// Active in the store but unknown to dispatch: a row orphaned by an
		// earlier crash. Settle it the way startup recovery would.
		s.logger.Warn("Stop requested for execution with no live run", "execution_id", executionID)
		if err := s.markInterrupted(ctx, exec.ExecutionID); err != nil {
			return nil, err
		}
		return s.executions.Get(ctx, executionID)
	}

	s.recomputeExecution(ctx, executionID, func(e *models.BatchExecution, _ []*models.SubTask) {
		if !e.Status.IsTerminal() {
			e.Status = models.ExecutionStatusStopping
		}
	})
	s.stopRun(er, models.ExecutionStatusStopped, "stopped by user")

	s.logger.Info("Stop requested", "execution_id", executionID)
	return s.executions.Get(ctx, executionID)
}

// RetryExecution re-runs a terminal execution. A partial retry re-queues
// only the failed and cancelled sub-tasks inside the same execution, so
// completed work is kept; a full retry clones every sub-task into a fresh
// execution.
func (s *Scheduler) RetryExecution(ctx context.Context, executionID string, full bool) (*models.BatchExecution, error) {
	if !s.started {
		return nil, ErrNotStarted
	}
	exec, err := s.executions.Get(ctx, executionID)
	if err != nil {
		return nil, err
	}
	if !exec.Status.IsTerminal() {
		return nil, fmt.Errorf("%w: execution %s is %s", ErrExecutionActive, executionID, exec.Status)
	}
	tasks, err := s.subtasks.ListByExecution(ctx, executionID)
	if err != nil {
		return nil, err
	}
	if full {
		return s.retryFull(ctx, exec, tasks)
	}
	return s.retryPartial(ctx, exec, tasks)
}

func (s *Scheduler) retryPartial(ctx context.Context, exec *models.BatchExecution, tasks []*models.SubTask) (*models.BatchExecution, error) {
	var retriable []*models.SubTask
	for _, sub := range tasks {
		if sub.Status == models.SubTaskStatusFailed || sub.Status == models.SubTaskStatusCancelled {
			retriable = append(retriable, sub)
		}
	}
	if len(retriable) == 0 {
		return nil, ErrNothingToRetry
	}

	for _, sub := range retriable {
		sub.Status = models.SubTaskStatusPending
		sub.Progress = 0
		sub.RecordsProcessed = 0
		sub.RecordsFailed = 0
		sub.StartedAt = nil
		sub.CompletedAt = nil
		sub.ErrorMessage = ""
		if err := s.subtasks.Update(ctx, sub); err != nil {
			return nil, fmt.Errorf("resetting sub-task %s: %w", sub.TaskID, err)
		}
	}

	units, err := s.rebuildUnits(ctx, tasks)
	if err != nil {
		return nil, err
	}

	s.recomputeExecution(ctx, exec.ExecutionID, func(e *models.BatchExecution, _ []*models.SubTask) {
		e.Status = models.ExecutionStatusPending
		e.ErrorSummary = ""
		e.CanRetry = false
		e.CompletedAt = nil
	})
	s.registerRun(newExecRun(exec.ExecutionID, units))

	s.logger.Info("Partial retry queued",
		"execution_id", exec.ExecutionID, "sub_tasks", len(retriable))
	return s.executions.Get(ctx, exec.ExecutionID)
}

func (s *Scheduler) retryFull(ctx context.Context, src *models.BatchExecution, tasks []*models.SubTask) (*models.BatchExecution, error) {
	units := make([]*taskState, 0, len(tasks))
	for _, sub := range tasks {
		clone := &models.SubTask{
			PluginName: sub.PluginName,
			TaskType:   sub.TaskType,
			Parameters: maps.Clone(sub.Parameters),
			Status:     models.SubTaskStatusPending,
		}
		u, err := s.unitFromSubTask(ctx, clone)
		if err != nil {
			return nil, err
		}
		units = append(units, u)
	}
	exec, err := s.persistExecution(ctx, models.TriggerTypeRetry, src.GroupName, units)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Full retry created",
		"source_execution_id", src.ExecutionID, "execution_id", exec.ExecutionID)
	return exec, nil
}

// rebuildUnits reconstructs dispatch state for every sub-task of an
// execution, keeping terminal outcomes settled.
func (s *Scheduler) rebuildUnits(ctx context.Context, tasks []*models.SubTask) ([]*taskState, error) {
	units := make([]*taskState, 0, len(tasks))
	for _, sub := range tasks {
		u, err := s.unitFromSubTask(ctx, sub)
		if err != nil {
			return nil, err
		}
		units = append(units, u)
	}
	return units, nil
}

// unitFromSubTask rebuilds one unit from its persisted row. Range units
// re-enumerate their trading days from the calendar.
func (s *Scheduler) unitFromSubTask(ctx context.Context, sub *models.SubTask) (*taskState, error) {
	p, err := s.registry.Get(sub.PluginName)
	if err != nil {
		return nil, fmt.Errorf("sub-task %s: %w", sub.TaskID, err)
	}
	var dates []string
	if p.Dated() {
		if d := sub.TradeDate(); d != "" {
			dates = []string{d}
		} else if from, to := paramString(sub.Parameters, "start_date"), paramString(sub.Parameters, "end_date"); from != "" && to != "" {
			dates, err = s.cal.TradingDaysBetween(ctx, from, to)
			if err != nil {
				return nil, fmt.Errorf("sub-task %s: %w", sub.TaskID, err)
			}
		}
	}
	force, _ := sub.Parameters["force_overwrite"].(bool)
	total := len(dates)
	if total == 0 {
		total = 1
	}
	return &taskState{
		base:       sub,
		plugin:     p,
		dates:      dates,
		force:      force,
		status:     sub.Status,
		totalDates: total,
	}, nil
}

// DeleteExecution removes a terminal execution and its sub-tasks.
func (s *Scheduler) DeleteExecution(ctx context.Context, executionID string) error {
	exec, err := s.executions.Get(ctx, executionID)
	if err != nil {
		return err
	}
	if !exec.Status.IsTerminal() {
		return fmt.Errorf("%w: execution %s is %s", ErrExecutionActive, executionID, exec.Status)
	}
	if _, err := s.subtasks.DeleteByExecution(ctx, executionID); err != nil {
		return fmt.Errorf("deleting sub-tasks: %w", err)
	}
	if err := s.executions.Delete(ctx, executionID); err != nil {
		return err
	}
	s.logger.Info("Execution deleted", "execution_id", executionID)
	return nil
}
