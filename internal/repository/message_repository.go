package repository

import (
	"context"
	"fmt"

	"go-event-management/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MessageRepository interface {
	Create(ctx context.Context, message *model.Message) (*model.Message, error)
	// ListConversation 兩位使用者之間的私訊，依時間排序
	ListConversation(ctx context.Context, userID, otherUserID int) ([]*model.Message, error)
	ListByEventID(ctx context.Context, eventID int) ([]*model.Message, error)
}

type MessageRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewMessageRepository(pool *pgxpool.Pool) MessageRepository {
	return &MessageRepositoryImpl{
		pool: pool,
	}
}

const messageColumns = `id, sender_id, receiver_id, event_id, content, created_at`

func scanMessage(row pgx.Row) (*model.Message, error) {
	var message model.Message
	err := row.Scan(
		&message.ID,
		&message.SenderID,
		&message.ReceiverID,
		&message.EventID,
		&message.Content,
		&message.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &message, nil
}

func (r *MessageRepositoryImpl) Create(ctx context.Context, message *model.Message) (*model.Message, error) {
	query := `
		INSERT INTO messages (sender_id, receiver_id, event_id, content)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + messageColumns

	created, err := scanMessage(r.pool.QueryRow(ctx, query,
		message.SenderID, message.ReceiverID, message.EventID, message.Content,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to save message: %w", err)
	}

	return created, nil
}

func (r *MessageRepositoryImpl) ListConversation(ctx context.Context, userID, otherUserID int) ([]*model.Message, error) {
	query := `
		SELECT ` + messageColumns + `
		FROM messages
		WHERE (sender_id = $1 AND receiver_id = $2)
		   OR (sender_id = $2 AND receiver_id = $1)
		ORDER BY created_at
	`

	rows, err := r.pool.Query(ctx, query, userID, otherUserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectMessages(rows)
}

func (r *MessageRepositoryImpl) ListByEventID(ctx context.Context, eventID int) ([]*model.Message, error) {
	query := `SELECT ` + messageColumns + ` FROM messages WHERE event_id = $1 ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectMessages(rows)
}

func collectMessages(rows pgx.Rows) ([]*model.Message, error) {
	var messages []*model.Message

	for rows.Next() {
		message, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		messages = append(messages, message)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return messages, nil
}
