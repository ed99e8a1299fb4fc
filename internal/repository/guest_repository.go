package repository

import (
	"context"
	"fmt"

	"go-event-management/internal/model"
	"go-event-management/pkg/apperrors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type GuestRepository interface {
	Create(ctx context.Context, guest *model.Guest) (*model.Guest, error)
	FindByID(ctx context.Context, id int) (*model.Guest, error)
	// ExistsByEventEmail 同一活動同一 email 是否已有賓客紀錄
	ExistsByEventEmail(ctx context.Context, eventID int, email string) (bool, error)
	ListByEventID(ctx context.Context, eventID int) ([]*model.Guest, error)
	Update(ctx context.Context, id int, params model.UpdateGuestParams) (*model.Guest, error)
	Delete(ctx context.Context, id int) error
}

type GuestRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewGuestRepository(pool *pgxpool.Pool) GuestRepository {
	return &GuestRepositoryImpl{
		pool: pool,
	}
}

const guestColumns = `id, event_id, name, email, phone, status, created_at`

func scanGuest(row pgx.Row) (*model.Guest, error) {
	var guest model.Guest
	err := row.Scan(
		&guest.ID,
		&guest.EventID,
		&guest.Name,
		&guest.Email,
		&guest.Phone,
		&guest.Status,
		&guest.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &guest, nil
}

func (r *GuestRepositoryImpl) Create(ctx context.Context, guest *model.Guest) (*model.Guest, error) {
	query := `
		INSERT INTO guests (event_id, name, email, phone, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + guestColumns

	created, err := scanGuest(r.pool.QueryRow(ctx, query,
		guest.EventID, guest.Name, guest.Email, guest.Phone, guest.Status,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to add guest: %w", err)
	}

	return created, nil
}

func (r *GuestRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Guest, error) {
	query := `SELECT ` + guestColumns + ` FROM guests WHERE id = $1`

	guest, err := scanGuest(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrGuestNotFound
		}
		return nil, err
	}

	return guest, nil
}

func (r *GuestRepositoryImpl) ExistsByEventEmail(ctx context.Context, eventID int, email string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM guests WHERE event_id = $1 AND email = $2)`

	var exists bool
	err := r.pool.QueryRow(ctx, query, eventID, email).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}

func (r *GuestRepositoryImpl) ListByEventID(ctx context.Context, eventID int) ([]*model.Guest, error) {
	query := `SELECT ` + guestColumns + ` FROM guests WHERE event_id = $1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var guests []*model.Guest
	for rows.Next() {
		guest, err := scanGuest(rows)
		if err != nil {
			return nil, err
		}
		guests = append(guests, guest)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return guests, nil
}

func (r *GuestRepositoryImpl) Update(ctx context.Context, id int, params model.UpdateGuestParams) (*model.Guest, error) {
	query := `
		UPDATE guests
		SET name   = COALESCE($1, name),
		    email  = COALESCE($2, email),
		    phone  = COALESCE($3, phone),
		    status = COALESCE($4, status)
		WHERE id = $5
		RETURNING ` + guestColumns

	guest, err := scanGuest(r.pool.QueryRow(ctx, query,
		params.Name, params.Email, params.Phone, params.Status, id,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrGuestNotFound
		}
		return nil, fmt.Errorf("failed to update guest: %w", err)
	}

	return guest, nil
}

func (r *GuestRepositoryImpl) Delete(ctx context.Context, id int) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM guests WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrGuestNotFound
	}

	return nil
}
