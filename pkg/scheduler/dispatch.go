package scheduler

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/Yourdaylight/stock-datasource-sub001/pkg/models"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/plugin"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/store"
)

// calendarPluginName gets its cache invalidated after a successful sync.
const calendarPluginName = "trade_calendar"

// taskState is the in-memory side of one sub-task: the persisted row plus
// the counters and schema-sync cache the pipeline maintains while running.
type taskState struct {
	base   *models.SubTask
	plugin *plugin.Plugin
	dates  []string
	force  bool

	// status mirrors the persisted state for dependency checks. Guarded by
	// the owning run's mutex.
	status models.SubTaskStatus

	startedAt *time.Time

	// Schema sync runs once per sub-task, on the first emitted batch.
	syncOnce sync.Once
	syncCols []plugin.Column
	syncErr  error

	progressMu sync.Mutex
	records    int
	datesDone  int
	datesSkip  int
	totalDates int
}

func newTaskUnit(p *plugin.Plugin, taskType models.TaskType, dates []string, params map[string]any, force bool) *taskState {
	if params == nil {
		params = map[string]any{}
	}
	if force {
		params["force_overwrite"] = true
	}
	total := len(dates)
	if total == 0 {
		total = 1
	}
	return &taskState{
		base: &models.SubTask{
			PluginName: p.Name,
			TaskType:   taskType,
			Parameters: params,
			Status:     models.SubTaskStatusPending,
		},
		plugin:     p,
		dates:      dates,
		force:      force,
		status:     models.SubTaskStatusPending,
		totalDates: total,
	}
}

func newDatedUnit(p *plugin.Plugin, taskType models.TaskType, date string, force bool) *taskState {
	return newTaskUnit(p, taskType, []string{date}, map[string]any{"trade_date": date}, force)
}

func newRangeUnit(p *plugin.Plugin, taskType models.TaskType, from, to string, dates []string, force bool) *taskState {
	return newTaskUnit(p, taskType, dates, map[string]any{"start_date": from, "end_date": to}, force)
}

// snapshot builds the persisted form of the task with live counters folded
// in. The caller sets the status and terminal fields.
func (t *taskState) snapshot() *models.SubTask {
	t.progressMu.Lock()
	defer t.progressMu.Unlock()
	sub := *t.base
	sub.StartedAt = t.startedAt
	sub.RecordsProcessed = t.records
	sub.Progress = t.progressLocked()
	return &sub
}

func (t *taskState) progressLocked() int {
	if t.totalDates <= 0 {
		return 0
	}
	p := (t.datesDone + t.datesSkip) * 100 / t.totalDates
	if p > 100 {
		p = 100
	}
	return p
}

func (t *taskState) addRecords(n int) {
	t.progressMu.Lock()
	t.records += n
	t.progressMu.Unlock()
}

func (t *taskState) markDateDone() {
	t.progressMu.Lock()
	t.datesDone++
	t.progressMu.Unlock()
}

func (t *taskState) markSkipped(n int) {
	t.progressMu.Lock()
	t.datesSkip += n
	t.progressMu.Unlock()
}

// ensureSchema reconciles the table against the first batch and caches the
// result for every later batch of the same sub-task.
func (t *taskState) ensureSchema(ctx context.Context, syncer SchemaSyncer, batch *plugin.Batch) ([]plugin.Column, error) {
	t.syncOnce.Do(func() {
		t.syncCols, t.syncErr = syncer.Sync(ctx, t.plugin, batch)
	})
	return t.syncCols, t.syncErr
}

// execRun tracks one live execution: its queue, in-flight tasks, and
// settled outcomes. Workers claim from pending in decomposition order.
type execRun struct {
	id string

	mu        sync.Mutex
	pending   []*taskState
	running   map[string]*taskState
	byPlugin  map[string][]*taskState
	stop      bool
	stopCause models.ExecutionStatus
	started   bool
	finalized bool
}

func newExecRun(id string, units []*taskState) *execRun {
	er := &execRun{
		id:       id,
		running:  make(map[string]*taskState),
		byPlugin: make(map[string][]*taskState),
	}
	for _, u := range units {
		er.byPlugin[u.plugin.Name] = append(er.byPlugin[u.plugin.Name], u)
		if !u.status.IsTerminal() {
			er.pending = append(er.pending, u)
		}
	}
	return er
}

func (er *execRun) stopRequested() bool {
	er.mu.Lock()
	defer er.mu.Unlock()
	return er.stop
}

// requestStop flags the run and drains its queue. The first cause wins;
// drained tasks are returned so the caller can persist their cancellation.
func (er *execRun) requestStop(cause models.ExecutionStatus) []*taskState {
	er.mu.Lock()
	defer er.mu.Unlock()
	if !er.stop {
		er.stop = true
		er.stopCause = cause
	}
	drained := er.pending
	er.pending = nil
	for _, t := range drained {
		t.status = models.SubTaskStatusCancelled
	}
	return drained
}

// depsReadyLocked checks whether every dependency task covering t's dates
// has completed. A dependency that terminated without completing is
// reported back so the caller can cancel t instead of waiting forever.
// Dependencies outside this execution are treated as satisfied.
func (er *execRun) depsReadyLocked(t *taskState) (ready bool, badDep string) {
	for _, dep := range t.plugin.Dependencies {
		for _, d := range er.byPlugin[dep] {
			if !coversDates(d, t) {
				continue
			}
			switch d.status {
			case models.SubTaskStatusCompleted, models.SubTaskStatusSkipped:
			case models.SubTaskStatusFailed, models.SubTaskStatusCancelled:
				return false, dep
			default:
				return false, ""
			}
		}
	}
	return true, ""
}

// coversDates reports whether dep's date set overlaps t's. Date-less tasks
// cover everything, and range units within one execution always span the
// same window.
func coversDates(dep, t *taskState) bool {
	if len(dep.dates) == 0 || len(t.dates) == 0 {
		return true
	}
	if len(dep.dates) > 1 && len(t.dates) > 1 {
		return true
	}
	if len(t.dates) == 1 {
		return slices.Contains(dep.dates, t.dates[0])
	}
	return slices.Contains(t.dates, dep.dates[0])
}

// runWorker is one dispatch loop. It polls the live runs for a ready
// sub-task, executes it to a terminal status, and goes back for more.
func (s *Scheduler) runWorker(ctx context.Context, id int) {
	defer s.wg.Done()
	log := s.logger.With("worker_id", id)
	log.Info("Ingestion worker started")
	defer log.Info("Ingestion worker stopped")

	for {
		select {
		case <-s.stopCh:
			return
		case <-ctx.Done():
			return
		default:
			er, t, ok := s.claimNext(ctx)
			if !ok {
				s.sleep(s.pollInterval())
				continue
			}
			s.runClaimed(ctx, er, t)
		}
	}
}

// claimNext scans live runs in FIFO order for a dispatchable sub-task.
func (s *Scheduler) claimNext(ctx context.Context) (*execRun, *taskState, bool) {
	for _, er := range s.liveRuns() {
		if t := s.claimFrom(ctx, er); t != nil {
			return er, t, true
		}
	}
	return nil, nil, false
}

// claimFrom picks the first pending task of one run whose dependencies are
// satisfied. Tasks whose dependencies terminated without completing are
// cancelled on the spot so the run cannot deadlock.
func (s *Scheduler) claimFrom(ctx context.Context, er *execRun) *taskState {
	var abandoned []*taskState
	var abandonedDeps []string
	var claimed *taskState

	er.mu.Lock()
	if er.finalized || er.stop {
		er.mu.Unlock()
		return nil
	}
	i := 0
	for i < len(er.pending) {
		t := er.pending[i]
		ready, badDep := er.depsReadyLocked(t)
		switch {
		case badDep != "":
			er.pending = append(er.pending[:i], er.pending[i+1:]...)
			t.status = models.SubTaskStatusCancelled
			abandoned = append(abandoned, t)
			abandonedDeps = append(abandonedDeps, badDep)
		case ready:
			er.pending = append(er.pending[:i], er.pending[i+1:]...)
			now := s.now()
			t.status = models.SubTaskStatusRunning
			t.startedAt = &now
			er.running[t.base.TaskID] = t
			claimed = t
		default:
			i++
		}
		if claimed != nil {
			break
		}
	}
	markStarted := claimed != nil && !er.started
	if markStarted {
		er.started = true
	}
	er.mu.Unlock()

	for j, t := range abandoned {
		s.writeTaskTerminal(context.Background(), t, models.SubTaskStatusCancelled,
			fmt.Sprintf("dependency %s did not complete", abandonedDeps[j]))
	}
	if len(abandoned) > 0 {
		s.recomputeExecution(context.Background(), er.id, nil)
		s.maybeFinalize(er)
	}

	if claimed != nil {
		if markStarted {
			s.recomputeExecution(ctx, er.id, func(exec *models.BatchExecution, _ []*models.SubTask) {
				if exec.Status == models.ExecutionStatusPending {
					exec.Status = models.ExecutionStatusRunning
				}
			})
		}
		sub := claimed.snapshot()
		sub.Status = models.SubTaskStatusRunning
		if err := s.subtasks.Update(ctx, sub); err != nil {
			s.logger.Error("Persisting sub-task running status failed",
				"task_id", sub.TaskID, "error", err)
		}
	}
	return claimed
}

// settleTask persists a terminal status and updates run bookkeeping.
// Terminal writes use a background context because the task's own context
// may already be cancelled.
func (s *Scheduler) settleTask(er *execRun, t *taskState, status models.SubTaskStatus, errMsg string) {
	ctx := context.Background()
	s.writeTaskTerminal(ctx, t, status, errMsg)

	er.mu.Lock()
	delete(er.running, t.base.TaskID)
	t.status = status
	er.mu.Unlock()

	// Fresh calendar rows change what counts as a trading day.
	if t.plugin.Name == calendarPluginName && status == models.SubTaskStatusCompleted {
		s.cal.Invalidate()
	}

	s.recomputeExecution(ctx, er.id, nil)
	s.maybeFinalize(er)
}

func (s *Scheduler) writeTaskTerminal(ctx context.Context, t *taskState, status models.SubTaskStatus, errMsg string) {
	sub := t.snapshot()
	sub.Status = status
	sub.ErrorMessage = errMsg
	now := s.now()
	sub.CompletedAt = &now
	if status == models.SubTaskStatusCompleted || status == models.SubTaskStatusSkipped {
		sub.Progress = 100
		sub.ErrorMessage = ""
	}
	if err := s.subtasks.Update(ctx, sub); err != nil {
		s.logger.Error("Persisting sub-task terminal status failed",
			"task_id", sub.TaskID, "status", status, "error", err)
	}
}

// recomputeExecution refreshes an execution row from its children under the
// version guard, retrying when another writer got there first.
func (s *Scheduler) recomputeExecution(ctx context.Context, executionID string, mutate func(*models.BatchExecution, []*models.SubTask)) {
	for attempt := 0; attempt < 5; attempt++ {
		exec, err := s.executions.Get(ctx, executionID)
		if err != nil {
			s.logger.Error("Loading execution for recompute failed",
				"execution_id", executionID, "error", err)
			return
		}
		tasks, err := s.subtasks.ListByExecution(ctx, executionID)
		if err != nil {
			s.logger.Error("Loading sub-tasks for recompute failed",
				"execution_id", executionID, "error", err)
			return
		}
		applyCounters(exec, tasks)
		if mutate != nil {
			mutate(exec, tasks)
		}
		err = s.executions.Update(ctx, exec)
		if err == nil {
			return
		}
		if !errors.Is(err, store.ErrConcurrentModification) {
			s.logger.Error("Persisting execution failed", "execution_id", executionID, "error", err)
			return
		}
	}
	s.logger.Error("Persisting execution failed after retries", "execution_id", executionID)
}

func applyCounters(exec *models.BatchExecution, tasks []*models.SubTask) {
	exec.TotalPlugins = len(tasks)
	completed, failed := 0, 0
	for _, t := range tasks {
		switch t.Status {
		case models.SubTaskStatusCompleted, models.SubTaskStatusSkipped:
			completed++
		case models.SubTaskStatusFailed:
			failed++
		}
	}
	exec.CompletedPlugins = completed
	exec.FailedPlugins = failed
}

// maybeFinalize closes the run once nothing is pending or running. The
// terminal status derives from the stop cause and the child outcomes.
func (s *Scheduler) maybeFinalize(er *execRun) {
	er.mu.Lock()
	if er.finalized || len(er.pending) > 0 || len(er.running) > 0 {
		er.mu.Unlock()
		return
	}
	er.finalized = true
	stopped, cause := er.stop, er.stopCause
	er.mu.Unlock()

	now := s.now()
	var final models.ExecutionStatus
	s.recomputeExecution(context.Background(), er.id, func(exec *models.BatchExecution, tasks []*models.SubTask) {
		anyFailed, anyCancelled := false, false
		for _, t := range tasks {
			switch t.Status {
			case models.SubTaskStatusFailed:
				anyFailed = true
			case models.SubTaskStatusCancelled:
				anyCancelled = true
			}
		}
		status := models.ExecutionStatusCompleted
		switch {
		case stopped && cause != "":
			status = cause
		case stopped:
			status = models.ExecutionStatusStopped
		case anyFailed:
			status = models.ExecutionStatusFailed
		case anyCancelled && s.draining.Load():
			status = models.ExecutionStatusInterrupted
		case anyCancelled:
			status = models.ExecutionStatusFailed
		}
		exec.Status = status
		exec.CanRetry = anyFailed || anyCancelled
		exec.ErrorSummary = summarize(tasks)
		exec.CompletedAt = &now
		final = status
	})
	s.removeRun(er.id)
	s.logger.Info("Execution finished", "execution_id", er.id, "status", final)
}

// summarize condenses child failures into the execution's error summary.
func summarize(tasks []*models.SubTask) string {
	failed, cancelled := 0, 0
	first := ""
	for _, t := range tasks {
		switch t.Status {
		case models.SubTaskStatusFailed:
			failed++
			if first == "" && t.ErrorMessage != "" {
				first = fmt.Sprintf("%s: %s", t.PluginName, t.ErrorMessage)
			}
		case models.SubTaskStatusCancelled:
			cancelled++
		}
	}
	if failed == 0 && cancelled == 0 {
		return ""
	}
	msg := fmt.Sprintf("%d of %d sub-tasks failed, %d cancelled", failed, len(tasks), cancelled)
	if first != "" {
		msg += "; first error: " + first
	}
	return msg
}

// stopRun cancels a run's queued sub-tasks and lets in-flight ones wind
// down at their next batch boundary.
func (s *Scheduler) stopRun(er *execRun, cause models.ExecutionStatus, reason string) {
	drained := er.requestStop(cause)
	for _, t := range drained {
		s.writeTaskTerminal(context.Background(), t, models.SubTaskStatusCancelled, reason)
	}
	s.recomputeExecution(context.Background(), er.id, nil)
	s.maybeFinalize(er)
}
