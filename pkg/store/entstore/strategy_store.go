package entstore

import (
	"context"
	"fmt"

	"github.com/Yourdaylight/stock-datasource-sub001/ent"
	"github.com/Yourdaylight/stock-datasource-sub001/ent/strategy"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/models"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/store"
)

// StrategyStore is an Ent-backed implementation of store.StrategyStore.
type StrategyStore struct {
	client *ent.Client
}

// NewStrategyStore creates a new strategy store on the given client.
func NewStrategyStore(client *ent.Client) *StrategyStore {
	return &StrategyStore{client: client}
}

// Create adds a new strategy. Returns ErrAlreadyExists if strategy_id exists.
func (s *StrategyStore) Create(_ context.Context, st *models.Strategy) error {
	if st == nil || st.StrategyID == "" || st.ArenaID == "" {
		return store.ErrInvalidInput
	}

	ctx, cancel := writeCtx()
	defer cancel()

	err := s.client.Strategy.Create().
		SetID(st.StrategyID).
		SetArenaID(st.ArenaID).
		SetName(st.Name).
		SetAgentID(st.AgentID).
		SetAgentRole(strategy.AgentRole(st.AgentRole)).
		SetStage(strategy.Stage(st.Stage)).
		SetIsActive(st.IsActive).
		SetCurrentScore(st.CurrentScore).
		SetCurrentRank(st.CurrentRank).
		SetLogic(st.Logic).
		SetRules(st.Rules).
		SetProfitabilityScore(st.ProfitabilityScore).
		SetRiskScore(st.RiskScore).
		SetStabilityScore(st.StabilityScore).
		SetAdaptabilityScore(st.AdaptabilityScore).
		SetCreatedAt(st.CreatedAt).
		SetUpdatedAt(st.UpdatedAt).
		Exec(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return store.ErrAlreadyExists
		}
		return fmt.Errorf("failed to create strategy: %w", err)
	}
	return nil
}

// Get retrieves a strategy by its ID. Returns ErrNotFound if not exists.
func (s *StrategyStore) Get(ctx context.Context, strategyID string) (*models.Strategy, error) {
	row, err := s.client.Strategy.Get(ctx, strategyID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get strategy: %w", err)
	}
	return strategyFromRow(row), nil
}

// Update persists a strategy. Returns ErrNotFound if not exists.
func (s *StrategyStore) Update(_ context.Context, st *models.Strategy) error {
	if st == nil || st.StrategyID == "" {
		return store.ErrInvalidInput
	}

	ctx, cancel := writeCtx()
	defer cancel()

	err := s.client.Strategy.UpdateOneID(st.StrategyID).
		SetName(st.Name).
		SetAgentID(st.AgentID).
		SetAgentRole(strategy.AgentRole(st.AgentRole)).
		SetStage(strategy.Stage(st.Stage)).
		SetIsActive(st.IsActive).
		SetCurrentScore(st.CurrentScore).
		SetCurrentRank(st.CurrentRank).
		SetLogic(st.Logic).
		SetRules(st.Rules).
		SetProfitabilityScore(st.ProfitabilityScore).
		SetRiskScore(st.RiskScore).
		SetStabilityScore(st.StabilityScore).
		SetAdaptabilityScore(st.AdaptabilityScore).
		SetUpdatedAt(st.UpdatedAt).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return store.ErrNotFound
		}
		return fmt.Errorf("failed to update strategy: %w", err)
	}
	return nil
}

// ListByArena retrieves all strategies of an arena, ordered by creation
// time then strategy ID.
func (s *StrategyStore) ListByArena(ctx context.Context, arenaID string) ([]*models.Strategy, error) {
	rows, err := s.client.Strategy.Query().
		Where(strategy.ArenaIDEQ(arenaID)).
		Order(
			ent.Asc(strategy.FieldCreatedAt),
			ent.Asc(strategy.FieldID),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list strategies: %w", err)
	}
	return strategiesFromRows(rows), nil
}

// ListActive retrieves the active strategies of an arena, highest score
// first with ties broken by the better stored rank.
func (s *StrategyStore) ListActive(ctx context.Context, arenaID string) ([]*models.Strategy, error) {
	rows, err := s.client.Strategy.Query().
		Where(
			strategy.ArenaIDEQ(arenaID),
			strategy.IsActive(true),
		).
		Order(
			ent.Desc(strategy.FieldCurrentScore),
			ent.Asc(strategy.FieldCurrentRank),
			ent.Asc(strategy.FieldID),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active strategies: %w", err)
	}
	return strategiesFromRows(rows), nil
}

func strategiesFromRows(rows []*ent.Strategy) []*models.Strategy {
	result := make([]*models.Strategy, 0, len(rows))
	for _, row := range rows {
		result = append(result, strategyFromRow(row))
	}
	return result
}

func strategyFromRow(row *ent.Strategy) *models.Strategy {
	return &models.Strategy{
		StrategyID:         row.ID,
		ArenaID:            row.ArenaID,
		Name:               row.Name,
		AgentID:            row.AgentID,
		AgentRole:          models.AgentRole(row.AgentRole),
		Stage:              models.StrategyStage(row.Stage),
		IsActive:           row.IsActive,
		CurrentScore:       row.CurrentScore,
		CurrentRank:        row.CurrentRank,
		Logic:              row.Logic,
		Rules:              row.Rules,
		ProfitabilityScore: row.ProfitabilityScore,
		RiskScore:          row.RiskScore,
		StabilityScore:     row.StabilityScore,
		AdaptabilityScore:  row.AdaptabilityScore,
		CreatedAt:          row.CreatedAt,
		UpdatedAt:          row.UpdatedAt,
	}
}

// Verify interface compliance at compile time.
var _ store.StrategyStore = (*StrategyStore)(nil)
