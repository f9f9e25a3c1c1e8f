package entstore

import (
	"context"
	"fmt"

	"github.com/Yourdaylight/stock-datasource-sub001/ent"
	"github.com/Yourdaylight/stock-datasource-sub001/ent/arena"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/models"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/store"
)

// ArenaStore is an Ent-backed implementation of store.ArenaStore.
type ArenaStore struct {
	client *ent.Client
}

// NewArenaStore creates a new arena store on the given client.
func NewArenaStore(client *ent.Client) *ArenaStore {
	return &ArenaStore{client: client}
}

// Create adds a new arena. Returns ErrAlreadyExists if arena_id exists.
func (s *ArenaStore) Create(_ context.Context, a *models.Arena) error {
	if a == nil || a.ArenaID == "" {
		return store.ErrInvalidInput
	}

	ctx, cancel := writeCtx()
	defer cancel()

	create := s.client.Arena.Create().
		SetID(a.ArenaID).
		SetName(a.Name).
		SetConfig(a.Config).
		SetState(arena.State(a.State)).
		SetRoundsCompleted(a.RoundsCompleted).
		SetEvaluationsRun(a.EvaluationsRun).
		SetLastError(a.LastError).
		SetCreatedAt(a.CreatedAt).
		SetUpdatedAt(a.UpdatedAt)
	if a.ResumeState != "" {
		create.SetResumeState(arena.ResumeState(a.ResumeState))
	}

	if err := create.Exec(ctx); err != nil {
		if ent.IsConstraintError(err) {
			return store.ErrAlreadyExists
		}
		return fmt.Errorf("failed to create arena: %w", err)
	}
	return nil
}

// Get retrieves an arena by its ID. Returns ErrNotFound if not exists.
func (s *ArenaStore) Get(ctx context.Context, arenaID string) (*models.Arena, error) {
	row, err := s.client.Arena.Get(ctx, arenaID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get arena: %w", err)
	}
	return arenaFromRow(row), nil
}

// Update persists an arena. Returns ErrNotFound if not exists.
func (s *ArenaStore) Update(_ context.Context, a *models.Arena) error {
	if a == nil || a.ArenaID == "" {
		return store.ErrInvalidInput
	}

	ctx, cancel := writeCtx()
	defer cancel()

	update := s.client.Arena.UpdateOneID(a.ArenaID).
		SetName(a.Name).
		SetConfig(a.Config).
		SetState(arena.State(a.State)).
		SetRoundsCompleted(a.RoundsCompleted).
		SetEvaluationsRun(a.EvaluationsRun).
		SetLastError(a.LastError).
		SetUpdatedAt(a.UpdatedAt)
	if a.ResumeState != "" {
		update.SetResumeState(arena.ResumeState(a.ResumeState))
	} else {
		update.ClearResumeState()
	}

	if err := update.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return store.ErrNotFound
		}
		return fmt.Errorf("failed to update arena: %w", err)
	}
	return nil
}

// List retrieves all arenas newest first.
func (s *ArenaStore) List(ctx context.Context) ([]*models.Arena, error) {
	rows, err := s.client.Arena.Query().
		Order(
			ent.Desc(arena.FieldCreatedAt),
			ent.Desc(arena.FieldID),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list arenas: %w", err)
	}

	result := make([]*models.Arena, 0, len(rows))
	for _, row := range rows {
		result = append(result, arenaFromRow(row))
	}
	return result, nil
}

// Delete removes an arena by its ID. Children cascade at the database level.
func (s *ArenaStore) Delete(_ context.Context, arenaID string) error {
	ctx, cancel := writeCtx()
	defer cancel()

	err := s.client.Arena.DeleteOneID(arenaID).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return store.ErrNotFound
		}
		return fmt.Errorf("failed to delete arena: %w", err)
	}
	return nil
}

func arenaFromRow(row *ent.Arena) *models.Arena {
	a := &models.Arena{
		ArenaID:         row.ID,
		Name:            row.Name,
		Config:          row.Config,
		State:           models.ArenaState(row.State),
		RoundsCompleted: row.RoundsCompleted,
		EvaluationsRun:  row.EvaluationsRun,
		LastError:       row.LastError,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
	if row.ResumeState != nil {
		a.ResumeState = models.ArenaState(*row.ResumeState)
	}
	return a
}

// Verify interface compliance at compile time.
var _ store.ArenaStore = (*ArenaStore)(nil)
