package repository

import (
	"context"
	"fmt"

	"go-event-management/internal/model"
	"go-event-management/pkg/apperrors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *model.Payment) (*model.Payment, error)
	FindByBookingID(ctx context.Context, bookingID int) (*model.Payment, error)
}

type PaymentRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewPaymentRepository(pool *pgxpool.Pool) PaymentRepository {
	return &PaymentRepositoryImpl{
		pool: pool,
	}
}

const paymentColumns = `id, booking_id, user_id, amount, method, status, reference, created_at`

func scanPayment(row pgx.Row) (*model.Payment, error) {
	var payment model.Payment
	err := row.Scan(
		&payment.ID,
		&payment.BookingID,
		&payment.UserID,
		&payment.Amount,
		&payment.Method,
		&payment.Status,
		&payment.Reference,
		&payment.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *PaymentRepositoryImpl) Create(ctx context.Context, payment *model.Payment) (*model.Payment, error) {
	query := `
		INSERT INTO payments (booking_id, user_id, amount, method, status, reference)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + paymentColumns

	created, err := scanPayment(r.pool.QueryRow(ctx, query,
		payment.BookingID, payment.UserID, payment.Amount,
		payment.Method, payment.Status, payment.Reference,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}

	return created, nil
}

func (r *PaymentRepositoryImpl) FindByBookingID(ctx context.Context, bookingID int) (*model.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE booking_id = $1`

	payment, err := scanPayment(r.pool.QueryRow(ctx, query, bookingID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrPaymentNotFound
		}
		return nil, err
	}

	return payment, nil
}
