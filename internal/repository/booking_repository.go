package repository

import (
	"context"
	"fmt"
	"time"

	"go-event-management/internal/model"
	"go-event-management/pkg/apperrors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *model.Booking) (*model.Booking, error)
	FindByID(ctx context.Context, id int) (*model.Booking, error)
	ListByUserID(ctx context.Context, userID int) ([]*model.Booking, error)
	// UpdateStatusFrom 條件更新：只在目前狀態為 from 時轉換到 to，
	// 消除先讀後寫之間的競態。沒有命中任何列時回傳 ErrBookingNotFound，
	// 由 service 重新查詢區分「不存在」與「狀態不符」。
	UpdateStatusFrom(ctx context.Context, id int, from, to model.BookingStatus) (*model.Booking, error)
}

type BookingRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) BookingRepository {
	return &BookingRepositoryImpl{
		pool: pool,
	}
}

const bookingColumns = `id, event_id, user_id, status, created_at, updated_at`

func scanBooking(row pgx.Row) (*model.Booking, error) {
	var booking model.Booking
	err := row.Scan(
		&booking.ID,
		&booking.EventID,
		&booking.UserID,
		&booking.Status,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *BookingRepositoryImpl) Create(ctx context.Context, booking *model.Booking) (*model.Booking, error) {
	query := `
		INSERT INTO bookings (event_id, user_id, status)
		VALUES ($1, $2, $3)
		RETURNING ` + bookingColumns

	created, err := scanBooking(r.pool.QueryRow(ctx, query,
		booking.EventID, booking.UserID, booking.Status,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	return created, nil
}

func (r *BookingRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := scanBooking(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, err
	}

	return booking, nil
}

func (r *BookingRepositoryImpl) ListByUserID(ctx context.Context, userID int) ([]*model.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []*model.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *BookingRepositoryImpl) UpdateStatusFrom(
	ctx context.Context,
	id int,
	from, to model.BookingStatus,
) (*model.Booking, error) {
	query := `
		UPDATE bookings
		SET status = $1, updated_at = $2
		WHERE id = $3 AND status = $4
		RETURNING ` + bookingColumns

	booking, err := scanBooking(r.pool.QueryRow(ctx, query, to, time.Now().UTC(), id, from))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}

	return booking, nil
}
