package service

import (
	"context"
	"errors"
	"fmt"

	"go-event-management/internal/model"
	"go-event-management/internal/realtime"
	"go-event-management/internal/repository"
	"go-event-management/pkg/apperrors"
	"go-event-management/pkg/logger"

	"go.uber.org/zap"
)

type BookingService interface {
	// Create 建立訂位（booking intent），初始狀態 pending
	Create(ctx context.Context, eventID, userID int) (*model.Booking, error)
	// Confirm pending → confirmed，成功後對該使用者送出盡力而為的通知
	Confirm(ctx context.Context, bookingID, userID int) (*model.Booking, error)
	// Cancel pending/confirmed → cancelled。已付款（paid）不可取消。
	Cancel(ctx context.Context, bookingID int) error
	ListByUser(ctx context.Context, userID int) ([]*model.Booking, error)
}

type BookingServiceImpl struct {
	repo        repository.BookingRepository
	paymentRepo repository.PaymentRepository
	eventRepo   repository.EventRepository
	notifier    realtime.Notifier
	log         *zap.Logger
}

func NewBookingService(
	repo repository.BookingRepository,
	paymentRepo repository.PaymentRepository,
	eventRepo repository.EventRepository,
	notifier realtime.Notifier,
) BookingService {
	return &BookingServiceImpl{
		repo:        repo,
		paymentRepo: paymentRepo,
		eventRepo:   eventRepo,
		notifier:    notifier,
		log:         logger.WithComponent("booking"),
	}
}

// BookingNotification 推播給訂位者的通知內容
type BookingNotification struct {
	Message string `json:"message"`
	UserID  int    `json:"userId"`
}

func (s *BookingServiceImpl) Create(ctx context.Context, eventID, userID int) (*model.Booking, error) {
	if _, err := s.eventRepo.FindByID(ctx, eventID); err != nil {
		return nil, err
	}

	booking := &model.Booking{
		EventID: eventID,
		UserID:  userID,
		Status:  model.BookingStatusPending,
	}

	return s.repo.Create(ctx, booking)
}

func (s *BookingServiceImpl) Confirm(ctx context.Context, bookingID, userID int) (*model.Booking, error) {
	// 條件更新取代先讀後寫，兩個併發 confirm 不會互相覆蓋
	booking, err := s.repo.UpdateStatusFrom(ctx, bookingID, model.BookingStatusPending, model.BookingStatusConfirmed)
	if errors.Is(err, apperrors.ErrBookingNotFound) {
		booking, err = s.resolveConfirmMiss(ctx, bookingID)
	}
	if err != nil {
		return nil, err
	}

	notification := BookingNotification{
		Message: fmt.Sprintf("Your booking for event %d is confirmed!", booking.EventID),
		UserID:  userID,
	}
	// 送出即忘：對方不在線上就直接丟棄，不影響本次請求的結果
	if !s.notifier.NotifyUser(userID, "bookingNotification", notification) {
		s.log.Info("Booking confirmation notification dropped",
			zap.Int("booking_id", bookingID), zap.Int("user_id", userID))
	}

	return booking, nil
}

// resolveConfirmMiss 條件更新沒有命中：區分訂位不存在、已確認（視為成功）、已取消
func (s *BookingServiceImpl) resolveConfirmMiss(ctx context.Context, bookingID int) (*model.Booking, error) {
	booking, err := s.repo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	switch booking.Status {
	case model.BookingStatusConfirmed:
		return booking, nil
	case model.BookingStatusCancelled:
		return nil, apperrors.ErrBookingCancelled
	default:
		return nil, apperrors.ErrInternalServerError
	}
}

func (s *BookingServiceImpl) Cancel(ctx context.Context, bookingID int) error {
	booking, err := s.repo.FindByID(ctx, bookingID)
	if err != nil {
		return err
	}

	payment, err := s.paymentRepo.FindByBookingID(ctx, booking.ID)
	if err != nil {
		return err
	}

	// 已付款不可由此路徑取消；取消時不回寫付款狀態
	if payment.Status == model.PaymentStatusPaid {
		return apperrors.ErrNoRefundAllowed
	}

	_, err = s.repo.UpdateStatusFrom(ctx, bookingID, booking.Status, model.BookingStatusCancelled)
	if errors.Is(err, apperrors.ErrBookingNotFound) {
		// 狀態在讀取後被改動：已取消視為成功，其餘視為失敗
		current, findErr := s.repo.FindByID(ctx, bookingID)
		if findErr != nil {
			return findErr
		}
		if current.Status == model.BookingStatusCancelled {
			return nil
		}
		return apperrors.ErrInternalServerError
	}

	return err
}

func (s *BookingServiceImpl) ListByUser(ctx context.Context, userID int) ([]*model.Booking, error) {
	return s.repo.ListByUserID(ctx, userID)
}
