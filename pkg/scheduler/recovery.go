package scheduler

import (
	"context"
	"time"

	"github.com/Yourdaylight/stock-datasource-sub001/pkg/models"
)

// recoverInterrupted settles executions that were live when the previous
// process died: open sub-tasks become cancelled and the execution lands in
// interrupted, which a retry can pick up. Runs at startup, before any
// worker, and again as shutdown cleanup after the workers have joined.
func (s *Scheduler) recoverInterrupted(ctx context.Context) (int, error) {
	stale, err := s.executions.ListByStatus(ctx,
		models.ExecutionStatusPending,
		models.ExecutionStatusRunning,
		models.ExecutionStatusStopping,
	)
	if err != nil {
		return 0, err
	}
	recovered := 0
	for _, exec := range stale {
		if err := s.markInterrupted(ctx, exec.ExecutionID); err != nil {
			s.logger.Error("Recovering execution failed",
				"execution_id", exec.ExecutionID, "error", err)
			continue
		}
		s.removeRun(exec.ExecutionID)
		recovered++
	}
	return recovered, nil
}

// markInterrupted cancels an execution's open sub-tasks and moves the
// execution to interrupted.
func (s *Scheduler) markInterrupted(ctx context.Context, executionID string) error {
	tasks, err := s.subtasks.ListByExecution(ctx, executionID)
	if err != nil {
		return err
	}
	now := s.now()
	for _, sub := range tasks {
		if sub.Status.IsTerminal() {
			continue
		}
		sub.Status = models.SubTaskStatusCancelled
		sub.ErrorMessage = "interrupted by restart"
		sub.CompletedAt = &now
		if err := s.subtasks.Update(ctx, sub); err != nil {
			return err
		}
	}
	s.recomputeExecution(ctx, executionID, func(e *models.BatchExecution, _ []*models.SubTask) {
		e.Status = models.ExecutionStatusInterrupted
		e.ErrorSummary = "interrupted by restart"
		e.CanRetry = true
		e.CompletedAt = &now
	})
	return nil
}

// runRetentionSweep prunes terminal executions older than the retention
// window, once at startup and then on a fixed interval.
func (s *Scheduler) runRetentionSweep(ctx context.Context) {
	defer s.wg.Done()
	if s.cfg.RetentionDays <= 0 {
		return
	}
	s.sweepOnce(ctx)

	ticker := time.NewTicker(s.cfg.RetentionSweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-s.stopCh:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweepOnce(ctx)
		}
	}
}

func (s *Scheduler) sweepOnce(ctx context.Context) {
	cutoff := s.now().AddDate(0, 0, -s.cfg.RetentionDays)
	ids, err := s.executions.DeleteBefore(ctx, cutoff)
	if err != nil {
		s.logger.Error("Retention sweep failed", "error", err)
		return
	}
	for _, id := range ids {
		if _, err := s.subtasks.DeleteByExecution(ctx, id); err != nil {
			s.logger.Error("Deleting sub-tasks of pruned execution failed",
				"execution_id", id, "error", err)
		}
	}
	if len(ids) > 0 {
		s.logger.Info("Retention sweep pruned executions", "count", len(ids))
	}
}
