package entstore

import (
	"context"
	"fmt"

	"github.com/Yourdaylight/stock-datasource-sub001/ent"
	"github.com/Yourdaylight/stock-datasource-sub001/ent/discussionround"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/models"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/store"
)

// RoundStore is an Ent-backed implementation of store.RoundStore.
type RoundStore struct {
	client *ent.Client
}

// NewRoundStore creates a new discussion round store on the given client.
func NewRoundStore(client *ent.Client) *RoundStore {
	return &RoundStore{client: client}
}

// Create adds a new round. Returns ErrAlreadyExists if round_id exists.
func (s *RoundStore) Create(_ context.Context, round *models.DiscussionRound) error {
	if round == nil || round.RoundID == "" || round.ArenaID == "" {
		return store.ErrInvalidInput
	}

	ctx, cancel := writeCtx()
	defer cancel()

	create := s.client.DiscussionRound.Create().
		SetID(round.RoundID).
		SetArenaID(round.ArenaID).
		SetRoundNumber(round.RoundNumber).
		SetMode(discussionround.Mode(round.Mode)).
		SetParticipants(round.Participants).
		SetStartedAt(round.StartedAt)
	if round.Conclusions != nil {
		create.SetConclusions(round.Conclusions)
	}
	if round.CompletedAt != nil {
		create.SetCompletedAt(*round.CompletedAt)
	}

	if err := create.Exec(ctx); err != nil {
		if ent.IsConstraintError(err) {
			return store.ErrAlreadyExists
		}
		return fmt.Errorf("failed to create round: %w", err)
	}
	return nil
}

// Get retrieves a round by its ID. Returns ErrNotFound if not exists.
func (s *RoundStore) Get(ctx context.Context, roundID string) (*models.DiscussionRound, error) {
	row, err := s.client.DiscussionRound.Get(ctx, roundID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get round: %w", err)
	}
	return roundFromRow(row), nil
}

// Update persists a round. Returns ErrNotFound if not exists.
func (s *RoundStore) Update(_ context.Context, round *models.DiscussionRound) error {
	if round == nil || round.RoundID == "" {
		return store.ErrInvalidInput
	}

	ctx, cancel := writeCtx()
	defer cancel()

	update := s.client.DiscussionRound.UpdateOneID(round.RoundID).
		SetMode(discussionround.Mode(round.Mode)).
		SetParticipants(round.Participants).
		SetStartedAt(round.StartedAt)
	if round.Conclusions != nil {
		update.SetConclusions(round.Conclusions)
	} else {
		update.ClearConclusions()
	}
	if round.CompletedAt != nil {
		update.SetCompletedAt(*round.CompletedAt)
	} else {
		update.ClearCompletedAt()
	}

	if err := update.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return store.ErrNotFound
		}
		return fmt.Errorf("failed to update round: %w", err)
	}
	return nil
}

// ListByArena retrieves all rounds of an arena ordered by round number.
func (s *RoundStore) ListByArena(ctx context.Context, arenaID string) ([]*models.DiscussionRound, error) {
	rows, err := s.client.DiscussionRound.Query().
		Where(discussionround.ArenaIDEQ(arenaID)).
		Order(
			ent.Asc(discussionround.FieldRoundNumber),
			ent.Asc(discussionround.FieldID),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list rounds: %w", err)
	}

	result := make([]*models.DiscussionRound, 0, len(rows))
	for _, row := range rows {
		result = append(result, roundFromRow(row))
	}
	return result, nil
}

func roundFromRow(row *ent.DiscussionRound) *models.DiscussionRound {
	round := &models.DiscussionRound{
		RoundID:      row.ID,
		ArenaID:      row.ArenaID,
		RoundNumber:  row.RoundNumber,
		Mode:         models.DiscussionMode(row.Mode),
		Participants: row.Participants,
		Conclusions:  row.Conclusions,
		StartedAt:    row.StartedAt,
	}
	if row.CompletedAt != nil {
		t := *row.CompletedAt
		round.CompletedAt = &t
	}
	return round
}

// Verify interface compliance at compile time.
var _ store.RoundStore = (*RoundStore)(nil)
