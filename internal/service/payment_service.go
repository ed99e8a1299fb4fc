package service

import (
	"context"
	"errors"

	"go-event-management/internal/model"
	"go-event-management/internal/repository"
	"go-event-management/pkg/apperrors"

	"github.com/google/uuid"
)

type PaymentService interface {
	// ConfirmWithPayment 確認訂位並建立付款紀錄，付款狀態直接標記為 paid
	ConfirmWithPayment(ctx context.Context, req model.ConfirmPaymentRequest) (*model.ConfirmPaymentResponse, error)
}

type PaymentServiceImpl struct {
	repo        repository.PaymentRepository
	bookingRepo repository.BookingRepository
}

func NewPaymentService(repo repository.PaymentRepository, bookingRepo repository.BookingRepository) PaymentService {
	return &PaymentServiceImpl{repo: repo, bookingRepo: bookingRepo}
}

func (s *PaymentServiceImpl) ConfirmWithPayment(ctx context.Context, req model.ConfirmPaymentRequest) (*model.ConfirmPaymentResponse, error) {
	if !req.Amount.IsPositive() {
		return nil, apperrors.New(apperrors.KindValidation, "Amount must be positive.")
	}

	booking, err := s.bookingRepo.UpdateStatusFrom(ctx, req.BookingID,
		model.BookingStatusPending, model.BookingStatusConfirmed)
	if errors.Is(err, apperrors.ErrBookingNotFound) {
		current, findErr := s.bookingRepo.FindByID(ctx, req.BookingID)
		if findErr != nil {
			return nil, findErr
		}
		if current.Status == model.BookingStatusCancelled {
			return nil, apperrors.ErrBookingCancelled
		}
		booking = current
	} else if err != nil {
		return nil, err
	}

	payment := &model.Payment{
		BookingID: req.BookingID,
		UserID:    req.UserID,
		Amount:    req.Amount,
		Method:    req.Method,
		Status:    model.PaymentStatusPaid,
		Reference: uuid.New(),
	}

	created, err := s.repo.Create(ctx, payment)
	if err != nil {
		return nil, err
	}

	return &model.ConfirmPaymentResponse{Booking: booking, Payment: created}, nil
}
