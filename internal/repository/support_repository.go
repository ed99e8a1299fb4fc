package repository

import (
	"context"
	"fmt"

	"go-event-management/internal/model"
	"go-event-management/pkg/apperrors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SupportRepository interface {
	Create(ctx context.Context, ticket *model.SupportTicket) (*model.SupportTicket, error)
	FindByID(ctx context.Context, id int) (*model.SupportTicket, error)
	ListByUserID(ctx context.Context, userID int) ([]*model.SupportTicket, error)
	UpdateStatus(ctx context.Context, id int, status model.TicketStatus) (*model.SupportTicket, error)
}

type SupportRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewSupportRepository(pool *pgxpool.Pool) SupportRepository {
	return &SupportRepositoryImpl{
		pool: pool,
	}
}

const ticketColumns = `id, user_id, name, email, subject, message, category, status, created_at`

func scanTicket(row pgx.Row) (*model.SupportTicket, error) {
	var ticket model.SupportTicket
	err := row.Scan(
		&ticket.ID,
		&ticket.UserID,
		&ticket.Name,
		&ticket.Email,
		&ticket.Subject,
		&ticket.Message,
		&ticket.Category,
		&ticket.Status,
		&ticket.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *SupportRepositoryImpl) Create(ctx context.Context, ticket *model.SupportTicket) (*model.SupportTicket, error) {
	query := `
		INSERT INTO support_tickets (user_id, name, email, subject, message, category, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + ticketColumns

	created, err := scanTicket(r.pool.QueryRow(ctx, query,
		ticket.UserID, ticket.Name, ticket.Email, ticket.Subject,
		ticket.Message, ticket.Category, ticket.Status,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to submit ticket: %w", err)
	}

	return created, nil
}

func (r *SupportRepositoryImpl) FindByID(ctx context.Context, id int) (*model.SupportTicket, error) {
	query := `SELECT ` + ticketColumns + ` FROM support_tickets WHERE id = $1`

	ticket, err := scanTicket(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrTicketNotFound
		}
		return nil, err
	}

	return ticket, nil
}

func (r *SupportRepositoryImpl) ListByUserID(ctx context.Context, userID int) ([]*model.SupportTicket, error) {
	query := `SELECT ` + ticketColumns + ` FROM support_tickets WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tickets []*model.SupportTicket
	for rows.Next() {
		ticket, err := scanTicket(rows)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, ticket)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tickets, nil
}

func (r *SupportRepositoryImpl) UpdateStatus(ctx context.Context, id int, status model.TicketStatus) (*model.SupportTicket, error) {
	query := `
		UPDATE support_tickets
		SET status = $1
		WHERE id = $2
		RETURNING ` + ticketColumns

	ticket, err := scanTicket(r.pool.QueryRow(ctx, query, status, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrTicketNotFound
		}
		return nil, fmt.Errorf("failed to update ticket status: %w", err)
	}

	return ticket, nil
}
