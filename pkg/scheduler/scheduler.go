// Package scheduler runs the ingestion control plane. Cron, manual, and
// group triggers decompose into batch executions whose sub-tasks flow
// through a bounded worker pool, honoring plugin dependencies per trade
// date and each plugin's rate budget. The package also owns execution
// housekeeping: stop, retry, history retention, interrupted recovery, and
// the missing-data report.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/Yourdaylight/stock-datasource-sub001/pkg/config"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/plugin"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/store"
)

var (
	// ErrExecutionActive is returned when an operation requires a terminal
	// execution but the execution is still pending, running, or stopping
	ErrExecutionActive = errors.New("execution is still active")

	// ErrExecutionNotActive is returned when stop is requested on an
	// execution that is not pending or running
	ErrExecutionNotActive = errors.New("execution is not active")

	// ErrNothingToRetry is returned when a partial retry finds no failed or
	// cancelled sub-tasks
	ErrNothingToRetry = errors.New("execution has no failed or cancelled sub-tasks")

	// ErrInvalidRequest is returned when a trigger request fails validation
	ErrInvalidRequest = errors.New("invalid request")

	// ErrNotStarted is returned when a trigger arrives before Start
	ErrNotStarted = errors.New("scheduler is not started")

	// errNoTasksReady signals an idle poll; workers sleep and retry.
	errNoTasksReady = errors.New("no sub-tasks ready")

	// errStopRequested aborts an in-flight sub-task at a batch boundary.
	errStopRequested = errors.New("stop requested")
)

// SchemaSyncer reconciles an ODS table with an extracted batch before the
// batch is written.
type SchemaSyncer interface {
	Sync(ctx context.Context, p *plugin.Plugin, batch *plugin.Batch) ([]plugin.Column, error)
}

// BatchLoader writes one extracted batch into an ODS table.
type BatchLoader interface {
	Load(ctx context.Context, table string, cols []plugin.Column, batch *plugin.Batch) (int, error)
}

// DataReader answers presence questions about ODS tables.
type DataReader interface {
	HasDate(ctx context.Context, table, dateColumn, date string) (bool, error)
	PresentDates(ctx context.Context, table, dateColumn string) ([]string, error)
	LatestDate(ctx context.Context, table, dateColumn string) (string, error)
}

// TradingCalendar answers trading-day questions for trigger gating and date
// enumeration.
type TradingCalendar interface {
	IsTradingDay(ctx context.Context, date string) (bool, error)
	TradingDaysBetween(ctx context.Context, from, to string) ([]string, error)
	MostRecentTradingDay(ctx context.Context, asOf string, lookbackDays int) (string, error)
	Invalidate()
}

// Deps bundles everything the scheduler is constructed from.
type Deps struct {
	Config   *config.SchedulerConfig
	Registry *plugin.Registry
	Groups   map[string]config.PluginGroupConfig
	Calendar TradingCalendar
	Syncer   SchemaSyncer
	Loader   BatchLoader
	Reader   DataReader

	Executions store.ExecutionStore
	SubTasks   store.SubTaskStore
	Settings   store.PluginSettingStore
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithClock overrides the scheduler's time source.
func WithClock(now func() time.Time) Option {
	return func(s *Scheduler) { s.now = now }
}

// Scheduler coordinates triggers, dispatch, and execution housekeeping. It
// is a plain injected value; all collaborators arrive through Deps.
type Scheduler struct {
	cfg      *config.SchedulerConfig
	registry *plugin.Registry
	groups   map[string]config.PluginGroupConfig
	cal      TradingCalendar
	syncer   SchemaSyncer
	loader   BatchLoader
	reader   DataReader

	executions store.ExecutionStore
	subtasks   store.SubTaskStore
	settings   store.PluginSettingStore

	now    func() time.Time
	logger *slog.Logger

	cron *cron.Cron

	// Live execution index. Workers scan it in registration order, so
	// dispatch is FIFO across executions.
	mu    sync.Mutex
	runs  map[string]*execRun
	order []string

	runCtx    context.Context
	runCancel context.CancelFunc
	stopCh    chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup
	started   bool
	draining  atomic.Bool
}

// New creates a scheduler from its dependencies. Start must be called
// before triggers are accepted.
func New(deps Deps, opts ...Option) (*Scheduler, error) {
	switch {
	case deps.Config == nil:
		return nil, fmt.Errorf("scheduler config is required")
	case deps.Registry == nil:
		return nil, fmt.Errorf("plugin registry is required")
	case deps.Calendar == nil:
		return nil, fmt.Errorf("trading calendar is required")
	case deps.Syncer == nil || deps.Loader == nil || deps.Reader == nil:
		return nil, fmt.Errorf("warehouse syncer, loader, and reader are required")
	case deps.Executions == nil || deps.SubTasks == nil || deps.Settings == nil:
		return nil, fmt.Errorf("execution, sub-task, and setting stores are required")
	}

	s := &Scheduler{
		cfg:        deps.Config,
		registry:   deps.Registry,
		groups:     deps.Groups,
		cal:        deps.Calendar,
		syncer:     deps.Syncer,
		loader:     deps.Loader,
		reader:     deps.Reader,
		executions: deps.Executions,
		subtasks:   deps.SubTasks,
		settings:   deps.Settings,
		now:        time.Now,
		logger:     slog.With("component", "scheduler"),
		runs:       make(map[string]*execRun),
		stopCh:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Start recovers interrupted executions, spawns the worker pool and the
// retention sweep, and registers cron triggers. Safe to call once.
func (s *Scheduler) Start(ctx context.Context) error {
	if s.started {
		s.logger.Warn("Scheduler already started, ignoring duplicate Start call")
		return nil
	}
	s.started = true
	s.runCtx, s.runCancel = context.WithCancel(ctx)

	recovered, err := s.recoverInterrupted(ctx)
	if err != nil {
		return fmt.Errorf("recovering interrupted executions: %w", err)
	}
	if recovered > 0 {
		s.logger.Info("Recovered interrupted executions", "count", recovered)
	}

	s.logger.Info("Starting ingestion workers", "worker_count", s.cfg.WorkerCount)
	for i := 0; i < s.cfg.WorkerCount; i++ {
		s.wg.Add(1)
		go s.runWorker(s.runCtx, i)
	}

	s.wg.Add(1)
	go s.runRetentionSweep(s.runCtx)

	if err := s.registerCronTriggers(); err != nil {
		return err
	}
	s.cron.Start()

	s.logger.Info("Scheduler started")
	return nil
}

// Stop shuts the scheduler down: cron first, then the workers. In-flight
// sub-tasks get until GracefulShutdownTimeout to reach a batch boundary
// before their contexts are cancelled; whatever is still unfinished is
// marked interrupted so a later restart can retry it.
func (s *Scheduler) Stop() {
	if !s.started {
		return
	}
	s.draining.Store(true)
	s.stopOnce.Do(func() { close(s.stopCh) })

	if s.cron != nil {
		<-s.cron.Stop().Done()
	}

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(s.cfg.GracefulShutdownTimeout):
		s.logger.Warn("Graceful shutdown timeout reached, cancelling in-flight sub-tasks")
		s.runCancel()
		<-done
	}
	s.runCancel()

	if n, err := s.recoverInterrupted(context.Background()); err != nil {
		s.logger.Error("Shutdown cleanup failed", "error", err)
	} else if n > 0 {
		s.logger.Info("Marked executions interrupted at shutdown", "count", n)
	}

	s.logger.Info("Scheduler stopped")
}

// Running reports whether the worker pool is up and not draining.
func (s *Scheduler) Running() bool {
	return s.started && !s.draining.Load()
}

// run returns the live run for an execution, or nil.
func (s *Scheduler) run(executionID string) *execRun {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.runs[executionID]
}

// registerRun adds a run to the live index in FIFO position. Re-registering
// an id (a raced retry) replaces the run without duplicating its slot.
func (s *Scheduler) registerRun(er *execRun) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.runs[er.id]; !ok {
		s.order = append(s.order, er.id)
	}
	s.runs[er.id] = er
}

// removeRun drops a finalized run from the live index.
func (s *Scheduler) removeRun(executionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.runs, executionID)
	for i, id := range s.order {
		if id == executionID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// liveRuns snapshots the live runs in dispatch order.
func (s *Scheduler) liveRuns() []*execRun {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*execRun, 0, len(s.order))
	for _, id := range s.order {
		if er, ok := s.runs[id]; ok {
			out = append(out, er)
		}
	}
	return out
}

// sleep waits for d or until Stop is signalled.
func (s *Scheduler) sleep(d time.Duration) {
	select {
	case <-s.stopCh:
	case <-time.After(d):
	}
}

// pollInterval returns the poll duration with jitter.
func (s *Scheduler) pollInterval() time.Duration {
	base := s.cfg.PollInterval
	jitter := s.cfg.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// innerConcurrency sizes the per-sub-task date fan-out so the plugin's rate
// budget is not oversubscribed: floor(rate/expected calls), clamped to
// [1, cap].
func innerConcurrency(p *plugin.Plugin, cap int) int {
	if cap < 1 {
		cap = 1
	}
	expected := p.ExpectedCallsPerDate
	if expected < 1 {
		expected = 1
	}
	inner := p.RateLimitPerMinute / expected
	if inner < 1 {
		inner = 1
	}
	if inner > cap {
		inner = cap
	}
	return inner
}
