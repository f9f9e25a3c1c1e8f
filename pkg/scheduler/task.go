package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/Yourdaylight/stock-datasource-sub001/pkg/models"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/ods"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/plugin"
)

// runClaimed executes one claimed sub-task to a terminal status.
func (s *Scheduler) runClaimed(ctx context.Context, er *execRun, t *taskState) {
	log := s.logger.With("execution_id", er.id, "task_id", t.base.TaskID, "plugin", t.plugin.Name)
	log.Info("Sub-task started", "task_type", t.base.TaskType, "dates", t.totalDates)

	taskCtx, cancel := context.WithTimeout(ctx, s.cfg.SubTaskTimeout)
	defer cancel()

	status, errMsg := s.executeTask(taskCtx, er, t, log)
	s.settleTask(er, t, status, errMsg)

	switch status {
	case models.SubTaskStatusCompleted:
		if records := t.snapshot().RecordsProcessed; records == 0 {
			log.Info("Sub-task completed with no data")
		} else {
			log.Info("Sub-task completed", "records", records)
		}
	case models.SubTaskStatusSkipped:
		log.Info("Sub-task skipped, data already present")
	case models.SubTaskStatusCancelled:
		log.Info("Sub-task cancelled", "reason", errMsg)
	default:
		log.Error("Sub-task failed", "error", errMsg)
	}
}

// executeTask runs the extract-sync-load pipeline and classifies the
// outcome. Dates already present are skipped unless the trigger forced an
// overwrite; the rest fan out under the plugin's rate-derived concurrency.
func (s *Scheduler) executeTask(ctx context.Context, er *execRun, t *taskState, log *slog.Logger) (models.SubTaskStatus, string) {
	dates := t.dates

	if t.plugin.Dated() && !t.force {
		remaining, skipped, err := s.filterPresent(ctx, t)
		if err != nil {
			return models.SubTaskStatusFailed, fmt.Sprintf("checking present dates: %v", err)
		}
		if skipped > 0 {
			t.markSkipped(skipped)
			log.Info("Skipping dates already present", "skipped", skipped)
		}
		if len(remaining) == 0 {
			return models.SubTaskStatusSkipped, ""
		}
		dates = remaining
	}

	var err error
	if !t.plugin.Dated() {
		if err = s.runDate(ctx, er, t, ""); err == nil {
			t.markDateDone()
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(innerConcurrency(t.plugin, s.cfg.InnerConcurrencyCap))
		for _, date := range dates {
			g.Go(func() error {
				if err := s.runDate(gctx, er, t, date); err != nil {
					return err
				}
				t.markDateDone()
				s.persistProgress(gctx, t)
				return nil
			})
		}
		err = g.Wait()
	}

	if err == nil {
		return models.SubTaskStatusCompleted, ""
	}
	return s.classify(er, t, err)
}

func (s *Scheduler) classify(er *execRun, t *taskState, err error) (models.SubTaskStatus, string) {
	switch {
	case errors.Is(err, errStopRequested):
		return models.SubTaskStatusCancelled, "stopped before completion"
	case errors.Is(err, ods.ErrWidenTypeFailed):
		// Widening refusal poisons the rest of the run: every later write
		// to the table would hit the same wall.
		s.stopRun(er, models.ExecutionStatusFailed, "stopped after schema widening failure")
		return models.SubTaskStatusFailed, err.Error()
	case errors.Is(err, context.DeadlineExceeded):
		return models.SubTaskStatusFailed, fmt.Sprintf("timed out: %v", err)
	case errors.Is(err, context.Canceled) && s.draining.Load():
		return models.SubTaskStatusCancelled, "interrupted by shutdown"
	default:
		return models.SubTaskStatusFailed, err.Error()
	}
}

// filterPresent splits the task's dates into missing and already-present.
func (s *Scheduler) filterPresent(ctx context.Context, t *taskState) (remaining []string, skipped int, err error) {
	if len(t.dates) == 1 {
		present, err := s.reader.HasDate(ctx, t.plugin.Table, t.plugin.DateParam, t.dates[0])
		if err != nil {
			return nil, 0, err
		}
		if present {
			return nil, 1, nil
		}
		return t.dates, 0, nil
	}

	have, err := s.reader.PresentDates(ctx, t.plugin.Table, t.plugin.DateParam)
	if err != nil {
		return nil, 0, err
	}
	set := make(map[string]struct{}, len(have))
	for _, d := range have {
		set[d] = struct{}{}
	}
	for _, d := range t.dates {
		if _, ok := set[d]; ok {
			skipped++
			continue
		}
		remaining = append(remaining, d)
	}
	return remaining, skipped, nil
}

// runDate pulls one parameter tuple from the provider and streams its
// batches into the warehouse. Stop requests are honored at batch
// boundaries only: an admitted provider call always completes, so the rate
// accounting stays honest.
func (s *Scheduler) runDate(ctx context.Context, er *execRun, t *taskState, date string) error {
	if er.stopRequested() {
		return errStopRequested
	}

	callCtx := ctx
	if t.plugin.Timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, t.plugin.Timeout)
		defer cancel()
	}

	emit := func(ectx context.Context, batch *plugin.Batch) error {
		if er.stopRequested() {
			return errStopRequested
		}
		cols, err := t.ensureSchema(ectx, s.syncer, batch)
		if err != nil {
			return err
		}
		rows, err := s.loader.Load(ectx, t.plugin.Table, cols, batch)
		if err != nil {
			return fmt.Errorf("loading %s: %w", t.plugin.Table, err)
		}
		t.addRecords(rows)
		s.persistProgress(ectx, t)
		return nil
	}

	if err := t.plugin.Extract(callCtx, extractParams(t, date), emit); err != nil {
		if date != "" && !errors.Is(err, errStopRequested) {
			return fmt.Errorf("date %s: %w", date, err)
		}
		return err
	}
	return nil
}

// extractParams builds the provider parameter map for one tuple. Stored
// parameters use canonical keys; per-date calls swap the range keys for
// the plugin's own date key.
func extractParams(t *taskState, date string) map[string]string {
	params := make(map[string]string)
	for k, v := range t.base.Parameters {
		switch k {
		case "force_overwrite", "trade_date":
			continue
		case "start_date", "end_date":
			if date != "" {
				continue
			}
		}
		if sv, ok := v.(string); ok {
			params[k] = sv
		}
	}
	if date != "" {
		params[t.plugin.DateParam] = date
	}
	return params
}

// persistProgress is advisory; a failed write only delays what the next
// batch reports.
func (s *Scheduler) persistProgress(ctx context.Context, t *taskState) {
	sub := t.snapshot()
	sub.Status = models.SubTaskStatusRunning
	if err := s.subtasks.Update(ctx, sub); err != nil {
		s.logger.Debug("Persisting sub-task progress failed", "task_id", sub.TaskID, "error", err)
	}
}
