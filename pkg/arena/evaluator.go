package arena

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/Yourdaylight/stock-datasource-sub001/pkg/models"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/store"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/stream"
)

// Evaluator ranks active strategies and applies cadence eliminations.
type Evaluator struct {
	stores *store.Stores
	stream *stream.Processor
	nowFn  func() time.Time
	logger *slog.Logger
}

func newEvaluator(stores *store.Stores, sp *stream.Processor, nowFn func() time.Time) *Evaluator {
	return &Evaluator{
		stores: stores,
		stream: sp,
		nowFn:  nowFn,
		logger: slog.With("component", "arena.evaluator"),
	}
}

// eliminationCount returns how many of n active strategies the period
// removes once the floor is applied, and whether the floor clipped it.
func eliminationCount(period models.EvaluationPeriod, n, minActive int) (count int, floorApplied bool) {
	byRatio := int(math.Round(period.EliminationRatio() * float64(n)))
	if byRatio <= 0 {
		return 0, false
	}
	allowed := n - minActive
	if allowed < 0 {
		allowed = 0
	}
	if byRatio > allowed {
		return allowed, true
	}
	return byRatio, false
}

// Run executes one evaluation pass: rank active strategies by composite
// score, eliminate the tail at the period's ratio subject to the arena's
// floor, and persist a report. Ties on score keep the strategy that held
// the better rank before this pass.
func (e *Evaluator) Run(ctx context.Context, a *models.Arena, period models.EvaluationPeriod) (*models.EvaluationReport, error) {
	active, err := e.stores.Strategies.ListActive(ctx, a.ArenaID)
	if err != nil {
		return nil, err
	}
	now := e.nowFn().UTC()

	count, floorApplied := eliminationCount(period, len(active), a.Config.MinActiveStrategies)
	cut := len(active) - count
	rankings := make([]models.RankingEntry, 0, len(active))
	for i, s := range active {
		s.CurrentRank = i + 1
		s.UpdatedAt = now
		if i >= cut {
			s.IsActive = false
			event := &models.EliminationEvent{
				ArenaID:    a.ArenaID,
				Period:     period,
				StrategyID: s.StrategyID,
				Score:      s.CurrentScore,
				Reason:     fmt.Sprintf("%s elimination: rank %d of %d", period, i+1, len(active)),
				Timestamp:  now,
			}
			if err := e.stores.Eliminations.Append(ctx, event); err != nil {
				return nil, err
			}
			e.logger.Info("Strategy eliminated",
				"arena_id", a.ArenaID, "strategy_id", s.StrategyID, "period", period, "rank", i+1, "score", s.CurrentScore)
		}
		if err := e.stores.Strategies.Update(ctx, s); err != nil {
			return nil, err
		}
		rankings = append(rankings, models.RankingEntry{
			StrategyID: s.StrategyID,
			Name:       s.Name,
			Score:      s.CurrentScore,
			Rank:       i + 1,
			IsActive:   s.IsActive,
		})
	}

	report := &models.EvaluationReport{
		ID:              uuid.NewString(),
		ArenaID:         a.ArenaID,
		Period:          period,
		Evaluated:       len(active),
		Eliminated:      count,
		MinFloorApplied: floorApplied,
		Rankings:        rankings,
		CreatedAt:       now,
	}
	if err := e.stores.Reports.Create(ctx, report); err != nil {
		return nil, err
	}

	fresh, err := e.stores.Arenas.Get(ctx, a.ArenaID)
	if err != nil {
		return nil, err
	}
	fresh.EvaluationsRun++
	fresh.UpdatedAt = now
	if err := e.stores.Arenas.Update(ctx, fresh); err != nil {
		return nil, err
	}

	e.publishSummary(ctx, report)
	return report, nil
}

func (e *Evaluator) publishSummary(ctx context.Context, report *models.EvaluationReport) {
	content := fmt.Sprintf("%s evaluation: %d strategies ranked, %d eliminated",
		report.Period, report.Evaluated, report.Eliminated)
	if len(report.Rankings) > 0 {
		leader := report.Rankings[0]
		content += fmt.Sprintf("; leader %q at %.1f", leader.Name, leader.Score)
	}
	err := e.stream.Publish(ctx, &models.ThinkingMessage{
		ArenaID: report.ArenaID,
		Type:    models.MessageTypeSystem,
		Content: content,
		Metadata: map[string]any{
			"report_id":  report.ID,
			"period":     string(report.Period),
			"eliminated": report.Eliminated,
		},
	})
	if err != nil && !errors.Is(err, stream.ErrStreamClosed) {
		e.logger.Warn("Publishing evaluation summary failed", "arena_id", report.ArenaID, "error", err)
	}
}
