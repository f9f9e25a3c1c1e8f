package entstore

import (
	"context"
	"fmt"

	"github.com/Yourdaylight/stock-datasource-sub001/ent"
	"github.com/Yourdaylight/stock-datasource-sub001/ent/eliminationevent"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/models"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/store"
)

// EliminationStore is an Ent-backed implementation of store.EliminationStore.
type EliminationStore struct {
	client *ent.Client
}

// NewEliminationStore creates a new elimination event store on the given client.
func NewEliminationStore(client *ent.Client) *EliminationStore {
	return &EliminationStore{client: client}
}

// Append stores an elimination event and assigns its ID.
func (s *EliminationStore) Append(_ context.Context, event *models.EliminationEvent) error {
	if event == nil || event.ArenaID == "" || event.StrategyID == "" {
		return store.ErrInvalidInput
	}

	ctx, cancel := writeCtx()
	defer cancel()

	row, err := s.client.EliminationEvent.Create().
		SetArenaID(event.ArenaID).
		SetPeriod(eliminationevent.Period(event.Period)).
		SetStrategyID(event.StrategyID).
		SetScore(event.Score).
		SetReason(event.Reason).
		SetCreatedAt(event.Timestamp).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to append elimination: %w", err)
	}

	event.ID = row.ID
	return nil
}

// ListByArena retrieves all eliminations of an arena, oldest first.
func (s *EliminationStore) ListByArena(ctx context.Context, arenaID string) ([]*models.EliminationEvent, error) {
	rows, err := s.client.EliminationEvent.Query().
		Where(eliminationevent.ArenaIDEQ(arenaID)).
		Order(
			ent.Asc(eliminationevent.FieldCreatedAt),
			ent.Asc(eliminationevent.FieldID),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list eliminations: %w", err)
	}

	result := make([]*models.EliminationEvent, 0, len(rows))
	for _, row := range rows {
		result = append(result, eliminationFromRow(row))
	}
	return result, nil
}

func eliminationFromRow(row *ent.EliminationEvent) *models.EliminationEvent {
	return &models.EliminationEvent{
		ID:         row.ID,
		ArenaID:    row.ArenaID,
		Period:     models.EvaluationPeriod(row.Period),
		StrategyID: row.StrategyID,
		Score:      row.Score,
		Reason:     row.Reason,
		Timestamp:  row.CreatedAt,
	}
}

// Verify interface compliance at compile time.
var _ store.EliminationStore = (*EliminationStore)(nil)
