package entstore

import (
	"context"
	"fmt"

	"github.com/Yourdaylight/stock-datasource-sub001/ent"
	"github.com/Yourdaylight/stock-datasource-sub001/ent/thinkingmessage"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/models"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/store"
)

// MessageStore is an Ent-backed implementation of store.MessageStore.
type MessageStore struct {
	client *ent.Client
}

// NewMessageStore creates a new thinking message store on the given client.
func NewMessageStore(client *ent.Client) *MessageStore {
	return &MessageStore{client: client}
}

// Append stores a message. Returns ErrAlreadyExists if its id exists.
func (s *MessageStore) Append(_ context.Context, msg *models.ThinkingMessage) error {
	if msg == nil || msg.ID == "" || msg.ArenaID == "" {
		return store.ErrInvalidInput
	}

	ctx, cancel := writeCtx()
	defer cancel()

	create := s.client.ThinkingMessage.Create().
		SetID(msg.ID).
		SetArenaID(msg.ArenaID).
		SetAgentID(msg.AgentID).
		SetRoundID(msg.RoundID).
		SetMessageType(thinkingmessage.MessageType(msg.Type)).
		SetContent(msg.Content).
		SetSequence(msg.Sequence).
		SetCreatedAt(msg.Timestamp)
	if msg.AgentRole != "" {
		create.SetAgentRole(thinkingmessage.AgentRole(msg.AgentRole))
	}
	if msg.Metadata != nil {
		create.SetMetadata(msg.Metadata)
	}

	if err := create.Exec(ctx); err != nil {
		if ent.IsConstraintError(err) {
			return store.ErrAlreadyExists
		}
		return fmt.Errorf("failed to append message: %w", err)
	}
	return nil
}

// ListByArena retrieves messages with Sequence > afterSeq in sequence order,
// up to limit entries. limit <= 0 returns everything.
func (s *MessageStore) ListByArena(ctx context.Context, arenaID string, afterSeq int64, limit int) ([]*models.ThinkingMessage, error) {
	query := s.client.ThinkingMessage.Query().
		Where(
			thinkingmessage.ArenaIDEQ(arenaID),
			thinkingmessage.SequenceGT(afterSeq),
		).
		Order(ent.Asc(thinkingmessage.FieldSequence))
	if limit > 0 {
		query = query.Limit(limit)
	}

	rows, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	result := make([]*models.ThinkingMessage, 0, len(rows))
	for _, row := range rows {
		result = append(result, messageFromRow(row))
	}
	return result, nil
}

// LastSequence returns the highest sequence stored for an arena, or zero
// when the arena has no messages.
func (s *MessageStore) LastSequence(ctx context.Context, arenaID string) (int64, error) {
	row, err := s.client.ThinkingMessage.Query().
		Where(thinkingmessage.ArenaIDEQ(arenaID)).
		Order(ent.Desc(thinkingmessage.FieldSequence)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read last sequence: %w", err)
	}
	return row.Sequence, nil
}

func messageFromRow(row *ent.ThinkingMessage) *models.ThinkingMessage {
	msg := &models.ThinkingMessage{
		ID:        row.ID,
		ArenaID:   row.ArenaID,
		AgentID:   row.AgentID,
		RoundID:   row.RoundID,
		Type:      models.MessageType(row.MessageType),
		Content:   row.Content,
		Metadata:  row.Metadata,
		Sequence:  row.Sequence,
		Timestamp: row.CreatedAt,
	}
	if row.AgentRole != nil {
		msg.AgentRole = models.AgentRole(*row.AgentRole)
	}
	return msg
}

// Verify interface compliance at compile time.
var _ store.MessageStore = (*MessageStore)(nil)
