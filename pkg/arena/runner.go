package arena

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Yourdaylight/stock-datasource-sub001/pkg/models"
)

// pauseGate blocks the run loop at yield points while the arena is paused.
type pauseGate struct {
	mu      sync.Mutex
	blocked chan struct{} // non-nil while paused
}

func (g *pauseGate) pause() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.blocked == nil {
		g.blocked = make(chan struct{})
	}
}

func (g *pauseGate) resume() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.blocked != nil {
		close(g.blocked)
		g.blocked = nil
	}
}

// wait returns once the gate is open, or with the context's error.
func (g *pauseGate) wait(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		g.mu.Lock()
		ch := g.blocked
		g.mu.Unlock()
		if ch == nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ch:
		}
	}
}

// runner is the long-lived task set of one started arena.
type runner struct {
	arenaID string
	cancel  context.CancelFunc
	done    chan struct{}
	gate    pauseGate
}

// run is the goroutine body of one arena. Completion and cancellation end
// it quietly; anything else marks the arena failed.
func (m *Manager) run(ctx context.Context, r *runner, startAt models.ArenaState) {
	defer close(r.done)
	defer m.detachRunner(r)
	log := m.logger.With("arena_id", r.arenaID)
	log.Info("Arena run loop started", "phase", startAt)

	err := m.cycle(ctx, r, startAt)
	switch {
	case err == nil:
		log.Info("Arena completed")
	case errors.Is(err, context.Canceled):
		log.Info("Arena run loop stopped")
	default:
		log.Error("Arena run loop failed", "error", err)
		m.markFailed(r.arenaID, err)
	}
}

// cycle drives the phase loop. The loop variable is canonical while the
// runner lives; the stored state mirrors it for observers and is the
// recovery point after a restart. Phase work is written to be idempotent
// under at-least-once replay.
func (m *Manager) cycle(ctx context.Context, r *runner, startAt models.ArenaState) error {
	phase := startAt
	if !phase.IsActive() {
		phase = models.ArenaStateInitializing
	}
	for {
		if err := r.gate.wait(ctx); err != nil {
			return err
		}
		if err := m.transition(ctx, r.arenaID, phase); err != nil {
			return err
		}
		a, err := m.stores.Arenas.Get(ctx, r.arenaID)
		if err != nil {
			return err
		}
		switch phase {
		case models.ArenaStateInitializing:
			if err := m.initialize(ctx, a); err != nil {
				return err
			}
			phase = models.ArenaStateDiscussing

		case models.ArenaStateDiscussing:
			roster := buildRoster(a.Config.AgentCount)
			if _, err := m.orchestrator.RunRounds(ctx, a, roster, r.gate.wait); err != nil {
				return err
			}
			phase = models.ArenaStateBacktesting

		case models.ArenaStateBacktesting:
			if err := m.competition.RunStage(ctx, a, models.StrategyStageBacktest); err != nil {
				return err
			}
			m.publishSystem(ctx, a.ArenaID, "backtest stage scored", map[string]any{"stage": string(models.StrategyStageBacktest)})
			phase = models.ArenaStateSimulating

		case models.ArenaStateSimulating:
			if err := m.competition.RunStage(ctx, a, models.StrategyStageSimulated); err != nil {
				return err
			}
			m.publishSystem(ctx, a.ArenaID, "simulation stage scored", map[string]any{"stage": string(models.StrategyStageSimulated)})
			phase = models.ArenaStateEvaluating

		case models.ArenaStateEvaluating:
			if _, err := m.evaluator.Run(ctx, a, models.EvaluationPeriodDaily); err != nil {
				return err
			}
			done, err := m.converged(ctx, a.ArenaID)
			if err != nil {
				return err
			}
			if done {
				return m.complete(ctx, a.ArenaID)
			}
			phase = models.ArenaStateDiscussing

		default:
			return fmt.Errorf("arena in unexpected phase %s", phase)
		}
	}
}

// initialize builds the agent roster and seeds one strategy per generator.
// Re-entry after a restart finds the strategies already present and skips
// seeding.
func (m *Manager) initialize(ctx context.Context, a *models.Arena) error {
	existing, err := m.stores.Strategies.ListByArena(ctx, a.ArenaID)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	roster := buildRoster(a.Config.AgentCount)
	now := m.nowFn().UTC()
	seeded := 0
	for _, agent := range roster {
		if !agent.IsGenerator() {
			continue
		}
		name, logic, rules := seedFor(seeded)
		s := &models.Strategy{
			StrategyID: uuid.NewString(),
			ArenaID:    a.ArenaID,
			Name:       name,
			AgentID:    agent.ID,
			AgentRole:  agent.Role,
			Stage:      models.StrategyStageBacktest,
			IsActive:   true,
			Logic:      logic,
			Rules:      rules,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := m.stores.Strategies.Create(ctx, s); err != nil {
			return fmt.Errorf("seeding strategy for %s: %w", agent.ID, err)
		}
		seeded++
	}
	m.publishSystem(ctx, a.ArenaID,
		fmt.Sprintf("arena initialized: %d agents, %d strategies seeded", len(roster), seeded),
		map[string]any{"agents": len(roster), "strategies": seeded})
	m.logger.Info("Arena initialized", "arena_id", a.ArenaID, "agents", len(roster), "strategies", seeded)
	return nil
}

// converged reports whether every active strategy has validated through to
// the live stage. Rule edits push strategies back to backtest, so this also
// means the last discussion changed nothing.
func (m *Manager) converged(ctx context.Context, arenaID string) (bool, error) {
	active, err := m.stores.Strategies.ListActive(ctx, arenaID)
	if err != nil {
		return false, err
	}
	for _, s := range active {
		if s.Stage != models.StrategyStageLive {
			return false, nil
		}
	}
	return true, nil
}

// complete moves the arena to its success terminal and closes the stream,
// which delivers the terminal done event to subscribers.
func (m *Manager) complete(ctx context.Context, arenaID string) error {
	m.stateMu.Lock()
	a, err := m.stores.Arenas.Get(ctx, arenaID)
	if err != nil {
		m.stateMu.Unlock()
		return err
	}
	a.State = models.ArenaStateCompleted
	a.ResumeState = ""
	a.UpdatedAt = m.nowFn().UTC()
	err = m.stores.Arenas.Update(ctx, a)
	m.stateMu.Unlock()
	if err != nil {
		return err
	}
	m.publishSystem(ctx, arenaID, "arena completed: every active strategy validated live", nil)
	m.stream.CloseArena(arenaID)
	return nil
}

// markFailed records an unrecoverable run loop error. It runs on its own
// context because the loop's may already be dead.
func (m *Manager) markFailed(arenaID string, cause error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	m.stateMu.Lock()
	a, err := m.stores.Arenas.Get(ctx, arenaID)
	if err == nil {
		a.State = models.ArenaStateFailed
		a.ResumeState = ""
		a.LastError = cause.Error()
		a.UpdatedAt = m.nowFn().UTC()
		err = m.stores.Arenas.Update(ctx, a)
	}
	m.stateMu.Unlock()
	if err != nil {
		m.logger.Error("Recording arena failure failed", "arena_id", arenaID, "error", err)
		return
	}
	m.publishSystem(ctx, arenaID, fmt.Sprintf("arena failed: %s", cause), nil)
	m.stream.CloseArena(arenaID)
}
