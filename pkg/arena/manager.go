// Package arena implements the strategy tournament: arenas cycle through
// discussion, backtesting, simulation and evaluation phases, multi-agent
// LLM discussions refine competing rule-sets, the competition engine scores
// them against market data, and periodic evaluators eliminate the tail of
// the leaderboard.
package arena

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"github.com/Yourdaylight/stock-datasource-sub001/pkg/config"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/llm"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/models"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/store"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/stream"
)

// ErrInvalidState rejects a lifecycle command the arena's current state
// does not allow.
var ErrInvalidState = errors.New("invalid arena state")

// Agent count bounds enforced at creation.
const (
	minAgentCount = 3
	maxAgentCount = 10
)

// maxScoreDelta bounds one adjust_score intervention.
const maxScoreDelta = 50.0

// defaultSymbols back arenas created without explicit symbols.
var defaultSymbols = []string{"600000.SH", "000001.SZ"}

// BarSource provides daily bar history for scoring and market snapshots.
// ods.Reader implements it in production; tests use fixtures.
type BarSource interface {
	DailyBars(ctx context.Context, code, from, to string) ([]models.DailyBar, error)
}

// Deps wires the manager's collaborators.
type Deps struct {
	Defaults *config.ArenaDefaults
	Stores   *store.Stores
	Stream   *stream.Processor
	LLM      llm.Client
	Bars     BarSource

	// Now overrides the clock in tests.
	Now func() time.Time
}

// Manager owns arena aggregates: creation, the lifecycle state machine,
// the per-arena run loops, interventions and the evaluation timers.
type Manager struct {
	cfg    *config.ArenaDefaults
	stores *store.Stores
	stream *stream.Processor
	nowFn  func() time.Time
	logger *slog.Logger

	orchestrator *Orchestrator
	competition  *Competition
	evaluator    *Evaluator

	rootCtx    context.Context
	rootCancel context.CancelFunc

	// stateMu serializes lifecycle state writes so pause, resume and the
	// run loop's transitions never interleave mid-update.
	stateMu sync.Mutex

	mu      sync.Mutex
	runners map[string]*runner

	cron *cron.Cron
}

// NewManager builds a manager. Run loops derive from an internal root
// context; Shutdown cancels them all.
func NewManager(deps Deps) *Manager {
	cfg := deps.Defaults
	if cfg == nil {
		cfg = config.DefaultArenaDefaults()
	}
	nowFn := deps.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	rootCtx, rootCancel := context.WithCancel(context.Background())
	m := &Manager{
		cfg:        cfg,
		stores:     deps.Stores,
		stream:     deps.Stream,
		nowFn:      nowFn,
		logger:     slog.With("component", "arena.manager"),
		rootCtx:    rootCtx,
		rootCancel: rootCancel,
		runners:    map[string]*runner{},
	}
	m.orchestrator = newOrchestrator(deps.Stores, deps.Stream, deps.LLM, deps.Bars, nowFn)
	m.competition = newCompetition(deps.Stores.Strategies, deps.Bars, nowFn)
	m.evaluator = newEvaluator(deps.Stores, deps.Stream, nowFn)
	return m
}

// Create validates the request, fills defaults and persists a new arena in
// the created state.
func (m *Manager) Create(ctx context.Context, req *models.CreateArenaRequest) (*models.Arena, error) {
	if req == nil || strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: arena name is required", store.ErrInvalidInput)
	}
	cfg := req.Config
	if cfg.AgentCount == 0 {
		cfg.AgentCount = m.cfg.AgentCount
	}
	if cfg.AgentCount < minAgentCount || cfg.AgentCount > maxAgentCount {
		return nil, fmt.Errorf("%w: agent_count must be between %d and %d, got %d",
			store.ErrInvalidInput, minAgentCount, maxAgentCount, cfg.AgentCount)
	}
	if cfg.MinActiveStrategies < 0 {
		return nil, fmt.Errorf("%w: min_active_strategies must not be negative", store.ErrInvalidInput)
	}
	if cfg.MinActiveStrategies == 0 {
		cfg.MinActiveStrategies = m.cfg.MinActiveStrategies
	}
	if cfg.DiscussionMaxRounds < 0 {
		return nil, fmt.Errorf("%w: discussion_max_rounds must not be negative", store.ErrInvalidInput)
	}
	if cfg.DiscussionMaxRounds == 0 {
		cfg.DiscussionMaxRounds = m.cfg.DiscussionMaxRounds
	}
	if cfg.DiscussionMode == "" {
		cfg.DiscussionMode = models.DiscussionModeCollaboration
	} else if !cfg.DiscussionMode.IsValid() {
		return nil, fmt.Errorf("%w: unknown discussion mode %q", store.ErrInvalidInput, cfg.DiscussionMode)
	}
	if cfg.BacktestWindowDays <= 0 {
		cfg.BacktestWindowDays = m.cfg.BacktestWindowDays
	}
	if len(cfg.Symbols) == 0 {
		cfg.Symbols = slices.Clone(defaultSymbols)
	}

	now := m.nowFn().UTC()
	a := &models.Arena{
		ArenaID:   uuid.NewString(),
		Name:      strings.TrimSpace(req.Name),
		Config:    cfg,
		State:     models.ArenaStateCreated,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := m.stores.Arenas.Create(ctx, a); err != nil {
		return nil, err
	}
	m.logger.Info("Arena created", "arena_id", a.ArenaID, "name", a.Name, "agents", cfg.AgentCount)
	return a, nil
}

// Get retrieves one arena.
func (m *Manager) Get(ctx context.Context, arenaID string) (*models.Arena, error) {
	return m.stores.Arenas.Get(ctx, arenaID)
}

// List retrieves all arenas, newest first.
func (m *Manager) List(ctx context.Context) ([]*models.Arena, error) {
	return m.stores.Arenas.List(ctx)
}

// Status summarizes one arena with its strategy counts.
func (m *Manager) Status(ctx context.Context, arenaID string) (*models.ArenaStatusResponse, error) {
	a, err := m.stores.Arenas.Get(ctx, arenaID)
	if err != nil {
		return nil, err
	}
	strategies, err := m.stores.Strategies.ListByArena(ctx, arenaID)
	if err != nil {
		return nil, err
	}
	active := 0
	for _, s := range strategies {
		if s.IsActive {
			active++
		}
	}
	return &models.ArenaStatusResponse{
		Arena:            a,
		ActiveStrategies: active,
		TotalStrategies:  len(strategies),
		CurrentRound:     a.RoundsCompleted,
	}, nil
}

// Strategies lists an arena's strategies; activeOnly narrows to the live
// leaderboard ordering.
func (m *Manager) Strategies(ctx context.Context, arenaID string, activeOnly bool) ([]*models.Strategy, error) {
	if _, err := m.stores.Arenas.Get(ctx, arenaID); err != nil {
		return nil, err
	}
	if activeOnly {
		return m.stores.Strategies.ListActive(ctx, arenaID)
	}
	return m.stores.Strategies.ListByArena(ctx, arenaID)
}

// Leaderboard returns the active strategies in rank order.
func (m *Manager) Leaderboard(ctx context.Context, arenaID string) ([]*models.Strategy, error) {
	if _, err := m.stores.Arenas.Get(ctx, arenaID); err != nil {
		return nil, err
	}
	return m.stores.Strategies.ListActive(ctx, arenaID)
}

// Messages reads the persisted thinking stream after a sequence cursor.
func (m *Manager) Messages(ctx context.Context, arenaID string, afterSeq int64, limit int) ([]*models.ThinkingMessage, error) {
	if _, err := m.stores.Arenas.Get(ctx, arenaID); err != nil {
		return nil, err
	}
	return m.stores.Messages.ListByArena(ctx, arenaID, afterSeq, limit)
}

// Start moves a created arena into its run loop.
func (m *Manager) Start(ctx context.Context, arenaID string) (*models.Arena, error) {
	a, err := m.stores.Arenas.Get(ctx, arenaID)
	if err != nil {
		return nil, err
	}
	switch a.State {
	case models.ArenaStateCreated:
	case models.ArenaStatePaused:
		return nil, fmt.Errorf("%w: arena is paused, resume it instead", ErrInvalidState)
	default:
		return nil, fmt.Errorf("%w: cannot start arena in state %s", ErrInvalidState, a.State)
	}
	if err := m.transition(ctx, arenaID, models.ArenaStateInitializing); err != nil {
		return nil, err
	}
	if err := m.spawn(arenaID, models.ArenaStateInitializing); err != nil {
		return nil, err
	}
	return m.stores.Arenas.Get(ctx, arenaID)
}

// Pause parks a running arena. The run loop blocks at its next yield
// point; in-flight work up to that point completes first.
func (m *Manager) Pause(ctx context.Context, arenaID string) error {
	r := m.runnerFor(arenaID)

	m.stateMu.Lock()
	a, err := m.stores.Arenas.Get(ctx, arenaID)
	if err != nil {
		m.stateMu.Unlock()
		return err
	}
	if !a.State.IsActive() {
		m.stateMu.Unlock()
		return fmt.Errorf("%w: cannot pause arena in state %s", ErrInvalidState, a.State)
	}
	a.ResumeState = a.State
	a.State = models.ArenaStatePaused
	a.UpdatedAt = m.nowFn().UTC()
	if err := m.stores.Arenas.Update(ctx, a); err != nil {
		m.stateMu.Unlock()
		return err
	}
	if r != nil {
		r.gate.pause()
	}
	m.stateMu.Unlock()

	m.publishSystem(ctx, arenaID, "arena paused", nil)
	m.logger.Info("Arena paused", "arena_id", arenaID, "resume_state", a.ResumeState)
	return nil
}

// Resume continues a paused arena from its recorded phase. After a restart
// there is no live run loop, so a fresh one is spawned at that phase.
func (m *Manager) Resume(ctx context.Context, arenaID string) error {
	m.stateMu.Lock()
	a, err := m.stores.Arenas.Get(ctx, arenaID)
	if err != nil {
		m.stateMu.Unlock()
		return err
	}
	if a.State != models.ArenaStatePaused {
		m.stateMu.Unlock()
		return fmt.Errorf("%w: cannot resume arena in state %s", ErrInvalidState, a.State)
	}
	target := a.ResumeState
	if !target.IsActive() {
		target = models.ArenaStateDiscussing
	}
	a.State = target
	a.ResumeState = ""
	a.UpdatedAt = m.nowFn().UTC()
	if err := m.stores.Arenas.Update(ctx, a); err != nil {
		m.stateMu.Unlock()
		return err
	}
	m.stateMu.Unlock()

	if r := m.runnerFor(arenaID); r != nil {
		r.gate.resume()
	} else if err := m.spawn(arenaID, target); err != nil {
		return err
	}
	m.publishSystem(ctx, arenaID, "arena resumed", nil)
	m.logger.Info("Arena resumed", "arena_id", arenaID, "phase", target)
	return nil
}

// Delete stops the run loop, discards the stream and removes the arena.
func (m *Manager) Delete(ctx context.Context, arenaID string) error {
	if _, err := m.stores.Arenas.Get(ctx, arenaID); err != nil {
		return err
	}
	if r := m.takeRunner(arenaID); r != nil {
		r.cancel()
		select {
		case <-r.done:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	m.stream.Forget(arenaID)
	if err := m.stores.Arenas.Delete(ctx, arenaID); err != nil {
		return err
	}
	m.logger.Info("Arena deleted", "arena_id", arenaID)
	return nil
}

// StartDiscussion begins the run loop with optional mode and round-budget
// overrides: a created arena starts, a paused arena resumes straight into
// discussion. An arena already running rejects the command.
func (m *Manager) StartDiscussion(ctx context.Context, arenaID string, req *models.StartDiscussionRequest) error {
	if req != nil {
		if req.Mode != "" && !req.Mode.IsValid() {
			return fmt.Errorf("%w: unknown discussion mode %q", store.ErrInvalidInput, req.Mode)
		}
		if req.MaxRounds < 0 {
			return fmt.Errorf("%w: max_rounds must not be negative", store.ErrInvalidInput)
		}
	}

	m.stateMu.Lock()
	a, err := m.stores.Arenas.Get(ctx, arenaID)
	if err != nil {
		m.stateMu.Unlock()
		return err
	}
	if a.State != models.ArenaStateCreated && a.State != models.ArenaStatePaused {
		m.stateMu.Unlock()
		return fmt.Errorf("%w: discussion is managed by the run loop in state %s", ErrInvalidState, a.State)
	}
	if req != nil {
		if req.Mode != "" {
			a.Config.DiscussionMode = req.Mode
		}
		if req.MaxRounds > 0 {
			a.Config.DiscussionMaxRounds = req.MaxRounds
		}
	}
	if a.State == models.ArenaStatePaused {
		a.ResumeState = models.ArenaStateDiscussing
	}
	a.UpdatedAt = m.nowFn().UTC()
	wasPaused := a.State == models.ArenaStatePaused
	if err := m.stores.Arenas.Update(ctx, a); err != nil {
		m.stateMu.Unlock()
		return err
	}
	m.stateMu.Unlock()

	if wasPaused {
		return m.Resume(ctx, arenaID)
	}
	_, err = m.Start(ctx, arenaID)
	return err
}

// Intervene applies one operator action to an arena.
func (m *Manager) Intervene(ctx context.Context, arenaID string, req *models.InterventionRequest) error {
	if req == nil {
		return fmt.Errorf("%w: intervention request is required", store.ErrInvalidInput)
	}
	a, err := m.stores.Arenas.Get(ctx, arenaID)
	if err != nil {
		return err
	}
	if a.State.IsTerminal() {
		return fmt.Errorf("%w: arena is %s", ErrInvalidState, a.State)
	}

	switch req.Action {
	case models.InterventionInjectMessage:
		if strings.TrimSpace(req.Content) == "" {
			return fmt.Errorf("%w: content is required for inject_message", store.ErrInvalidInput)
		}
		return m.stream.Publish(ctx, &models.ThinkingMessage{
			ArenaID:  arenaID,
			Type:     models.MessageTypeIntervention,
			Content:  req.Content,
			Metadata: map[string]any{"source": "operator"},
		})

	case models.InterventionAdjustScore:
		s, err := m.strategyOf(ctx, arenaID, req.StrategyID)
		if err != nil {
			return err
		}
		delta := req.Delta
		if delta > maxScoreDelta {
			delta = maxScoreDelta
		} else if delta < -maxScoreDelta {
			delta = -maxScoreDelta
		}
		old := s.CurrentScore
		s.CurrentScore = old + delta
		if s.CurrentScore < 0 {
			s.CurrentScore = 0
		} else if s.CurrentScore > 100 {
			s.CurrentScore = 100
		}
		s.UpdatedAt = m.nowFn().UTC()
		if err := m.stores.Strategies.Update(ctx, s); err != nil {
			return err
		}
		m.publishSystem(ctx, arenaID,
			fmt.Sprintf("operator adjusted score of %q from %.1f to %.1f", s.Name, old, s.CurrentScore),
			map[string]any{"strategy_id": s.StrategyID, "delta": delta})
		m.logger.Info("Strategy score adjusted",
			"arena_id", arenaID, "strategy_id", s.StrategyID, "old", old, "new", s.CurrentScore)
		return nil

	case models.InterventionEliminateStrategy:
		s, err := m.strategyOf(ctx, arenaID, req.StrategyID)
		if err != nil {
			return err
		}
		if !s.IsActive {
			return fmt.Errorf("%w: strategy already eliminated", store.ErrInvalidInput)
		}
		now := m.nowFn().UTC()
		s.IsActive = false
		s.UpdatedAt = now
		if err := m.stores.Strategies.Update(ctx, s); err != nil {
			return err
		}
		event := &models.EliminationEvent{
			ArenaID:    arenaID,
			Period:     models.EvaluationPeriodManual,
			StrategyID: s.StrategyID,
			Score:      s.CurrentScore,
			Reason:     "manual elimination by operator",
			Timestamp:  now,
		}
		if err := m.stores.Eliminations.Append(ctx, event); err != nil {
			return err
		}
		m.publishSystem(ctx, arenaID,
			fmt.Sprintf("operator eliminated strategy %q", s.Name),
			map[string]any{"strategy_id": s.StrategyID})
		m.logger.Info("Strategy eliminated by operator", "arena_id", arenaID, "strategy_id", s.StrategyID)
		return nil

	default:
		return fmt.Errorf("%w: unknown intervention action %q", store.ErrInvalidInput, req.Action)
	}
}

// Evaluate triggers one evaluation pass at the requested cadence.
func (m *Manager) Evaluate(ctx context.Context, arenaID string, period models.EvaluationPeriod) (*models.EvaluationReport, error) {
	if !period.IsValid() || period == models.EvaluationPeriodManual {
		return nil, fmt.Errorf("%w: period must be daily, weekly or monthly", store.ErrInvalidInput)
	}
	a, err := m.stores.Arenas.Get(ctx, arenaID)
	if err != nil {
		return nil, err
	}
	if a.State.IsTerminal() {
		return nil, fmt.Errorf("%w: arena is %s", ErrInvalidState, a.State)
	}
	return m.evaluator.Run(ctx, a, period)
}

// strategyOf loads a strategy and checks it belongs to the arena.
func (m *Manager) strategyOf(ctx context.Context, arenaID, strategyID string) (*models.Strategy, error) {
	if strategyID == "" {
		return nil, fmt.Errorf("%w: strategy_id is required", store.ErrInvalidInput)
	}
	s, err := m.stores.Strategies.Get(ctx, strategyID)
	if err != nil {
		return nil, err
	}
	if s.ArenaID != arenaID {
		return nil, fmt.Errorf("%w: strategy %s does not belong to this arena", store.ErrNotFound, strategyID)
	}
	return s, nil
}

// transition records the run loop's phase. A concurrent pause wins: the
// target is parked as the resume point instead, and the loop blocks at its
// next yield.
func (m *Manager) transition(ctx context.Context, arenaID string, to models.ArenaState) error {
	m.stateMu.Lock()
	defer m.stateMu.Unlock()
	a, err := m.stores.Arenas.Get(ctx, arenaID)
	if err != nil {
		return err
	}
	if a.State == models.ArenaStatePaused {
		a.ResumeState = to
		a.UpdatedAt = m.nowFn().UTC()
		return m.stores.Arenas.Update(ctx, a)
	}
	if a.State.IsTerminal() {
		return fmt.Errorf("%w: arena is %s", ErrInvalidState, a.State)
	}
	a.State = to
	a.UpdatedAt = m.nowFn().UTC()
	return m.stores.Arenas.Update(ctx, a)
}

func (m *Manager) publishSystem(ctx context.Context, arenaID, content string, metadata map[string]any) {
	err := m.stream.Publish(ctx, &models.ThinkingMessage{
		ArenaID:  arenaID,
		Type:     models.MessageTypeSystem,
		Content:  content,
		Metadata: metadata,
	})
	if err != nil && !errors.Is(err, stream.ErrStreamClosed) {
		m.logger.Warn("Publishing system message failed", "arena_id", arenaID, "error", err)
	}
}

func (m *Manager) spawn(arenaID string, startAt models.ArenaState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.runners[arenaID]; ok {
		return fmt.Errorf("%w: arena already running", ErrInvalidState)
	}
	runCtx, cancel := context.WithCancel(m.rootCtx)
	r := &runner{arenaID: arenaID, cancel: cancel, done: make(chan struct{})}
	m.runners[arenaID] = r
	go m.run(runCtx, r, startAt)
	return nil
}

func (m *Manager) runnerFor(arenaID string) *runner {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.runners[arenaID]
}

func (m *Manager) takeRunner(arenaID string) *runner {
	m.mu.Lock()
	defer m.mu.Unlock()
	r := m.runners[arenaID]
	delete(m.runners, arenaID)
	return r
}

func (m *Manager) detachRunner(r *runner) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.runners[r.arenaID] == r {
		delete(m.runners, r.arenaID)
	}
}

// RecoverInterrupted parks arenas left in an active state by an unclean
// shutdown: they move to paused with their phase as the resume point so an
// operator can resume them deliberately. Called once at startup.
func (m *Manager) RecoverInterrupted(ctx context.Context) (int, error) {
	arenas, err := m.stores.Arenas.List(ctx)
	if err != nil {
		return 0, err
	}
	recovered := 0
	for _, a := range arenas {
		if !a.State.IsActive() {
			continue
		}
		a.ResumeState = a.State
		a.State = models.ArenaStatePaused
		a.UpdatedAt = m.nowFn().UTC()
		if err := m.stores.Arenas.Update(ctx, a); err != nil {
			return recovered, err
		}
		recovered++
		m.logger.Warn("Arena interrupted by restart, parked as paused",
			"arena_id", a.ArenaID, "resume_state", a.ResumeState)
	}
	return recovered, nil
}

// StartTimers registers the daily, weekly and monthly evaluation crons plus
// the daily portfolio snapshot, then starts the clock. Each cadence runs
// independently over every arena in an active state.
func (m *Manager) StartTimers() error {
	hour, minute, err := config.ParseWallClock(m.cfg.DailyEvaluationTime)
	if err != nil {
		return fmt.Errorf("daily evaluation time: %w", err)
	}
	pHour, pMinute, err := config.ParseWallClock(m.cfg.PortfolioAnalysisTime)
	if err != nil {
		return fmt.Errorf("portfolio analysis time: %w", err)
	}

	m.cron = cron.New()
	entries := []struct {
		spec string
		fn   func()
	}{
		{fmt.Sprintf("%d %d * * *", minute, hour), func() { m.timerFire(models.EvaluationPeriodDaily) }},
		{fmt.Sprintf("%d %d * * %d", minute, hour, m.cfg.WeeklyEvaluationDay), func() { m.timerFire(models.EvaluationPeriodWeekly) }},
		{fmt.Sprintf("%d %d %d * *", minute, hour, m.cfg.MonthlyEvaluationDay), func() { m.timerFire(models.EvaluationPeriodMonthly) }},
		{fmt.Sprintf("%d %d * * *", pMinute, pHour), m.portfolioSnapshot},
	}
	for _, e := range entries {
		if _, err := m.cron.AddFunc(e.spec, e.fn); err != nil {
			return fmt.Errorf("registering evaluation timer: %w", err)
		}
	}
	m.cron.Start()
	m.logger.Info("Evaluation timers started",
		"daily", m.cfg.DailyEvaluationTime,
		"weekly_day", m.cfg.WeeklyEvaluationDay,
		"monthly_day", m.cfg.MonthlyEvaluationDay)
	return nil
}

// timerFire runs one scheduled evaluation over every active arena.
// Failures are logged and recorded on the arena, never fatal.
func (m *Manager) timerFire(period models.EvaluationPeriod) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	log := m.logger.With("period", period)

	arenas, err := m.stores.Arenas.List(ctx)
	if err != nil {
		log.Error("Listing arenas for scheduled evaluation failed", "error", err)
		return
	}
	for _, a := range arenas {
		if !a.State.IsActive() {
			continue
		}
		if _, err := m.evaluator.Run(ctx, a, period); err != nil {
			log.Error("Scheduled evaluation failed", "arena_id", a.ArenaID, "error", err)
			m.setLastError(a.ArenaID, err)
		}
	}
}

// portfolioSnapshot publishes a daily leaderboard summary to every active
// arena's stream.
func (m *Manager) portfolioSnapshot() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	arenas, err := m.stores.Arenas.List(ctx)
	if err != nil {
		m.logger.Error("Portfolio snapshot failed", "error", err)
		return
	}
	for _, a := range arenas {
		if !a.State.IsActive() {
			continue
		}
		active, err := m.stores.Strategies.ListActive(ctx, a.ArenaID)
		if err != nil || len(active) == 0 {
			continue
		}
		parts := make([]string, 0, 3)
		for i, s := range active {
			if i == 3 {
				break
			}
			parts = append(parts, fmt.Sprintf("%d. %q %.1f", i+1, s.Name, s.CurrentScore))
		}
		m.publishSystem(ctx, a.ArenaID,
			"daily portfolio snapshot: "+strings.Join(parts, ", "),
			map[string]any{"active_strategies": len(active)})
	}
}

// setLastError records a non-fatal error on the arena without changing its
// state.
func (m *Manager) setLastError(arenaID string, cause error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	m.stateMu.Lock()
	defer m.stateMu.Unlock()
	a, err := m.stores.Arenas.Get(ctx, arenaID)
	if err != nil {
		return
	}
	a.LastError = cause.Error()
	a.UpdatedAt = m.nowFn().UTC()
	if err := m.stores.Arenas.Update(ctx, a); err != nil {
		m.logger.Warn("Recording arena error failed", "arena_id", arenaID, "error", err)
	}
}

// Shutdown stops the timers and every run loop, waiting for loops to
// unwind until the context expires. Interrupted arenas stay in their
// stored state for RecoverInterrupted on the next start.
func (m *Manager) Shutdown(ctx context.Context) error {
	if m.cron != nil {
		stopCtx := m.cron.Stop()
		select {
		case <-stopCtx.Done():
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	m.rootCancel()

	m.mu.Lock()
	runners := make([]*runner, 0, len(m.runners))
	for _, r := range m.runners {
		runners = append(runners, r)
	}
	m.mu.Unlock()
	for _, r := range runners {
		select {
		case <-r.done:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	m.logger.Info("Arena manager stopped", "runners", len(runners))
	return nil
}
