package service

import (
	"context"
	"time"

	"go-event-management/internal/model"
	"go-event-management/internal/repository"
	"go-event-management/internal/validate"
	"go-event-management/pkg/apperrors"
)

type EventService interface {
	// Create 建立活動：檔期驗證 → 場地存在 → 地點相符 → 容量上限 → 檔期衝突
	Create(ctx context.Context, req model.CreateEventRequest, userID int) (*model.Event, error)
	GetByID(ctx context.Context, id int, requester model.AuthUser) (*model.Event, error)
	ListByUser(ctx context.Context, userID int) ([]*model.Event, error)
	Filter(ctx context.Context, filter model.EventFilter) ([]*model.Event, error)
	Update(ctx context.Context, id int, params model.UpdateEventParams, requester model.AuthUser) (*model.Event, error)
	Delete(ctx context.Context, id int, requester model.AuthUser) error
}

type EventServiceImpl struct {
	repo      repository.EventRepository
	venueRepo repository.VenueRepository
	now       func() time.Time
}

func NewEventService(repo repository.EventRepository, venueRepo repository.VenueRepository) EventService {
	return &EventServiceImpl{repo: repo, venueRepo: venueRepo, now: time.Now}
}

func (s *EventServiceImpl) Create(ctx context.Context, req model.CreateEventRequest, userID int) (*model.Event, error) {
	// 1. 檔期必須在未來，時間必須是嚴格 24 小時制 HH:MM
	if _, err := validate.EventSchedule(req.EventDate, req.EventTime, s.now()); err != nil {
		return nil, err
	}

	// 2. 場地必須存在，且要求的地點與場地登記的地點一致
	venue, err := s.venueRepo.FindByID(ctx, req.VenueID)
	if err != nil {
		return nil, err
	}
	if req.LocationID != venue.LocationID {
		return nil, apperrors.ErrLocationMismatch
	}

	// 3. 活動人數不得超過場地容量
	if req.MaxCapacity > venue.Capacity {
		return nil, apperrors.Newf(apperrors.KindValidation,
			"Event capacity (%d) exceeds venue capacity (%d)", req.MaxCapacity, venue.Capacity)
	}

	// 4. 同一場地同一日期時間不得重複訂檔
	conflicts, err := s.repo.CountByVenueSlot(ctx, req.VenueID, req.EventDate, req.EventTime)
	if err != nil {
		return nil, err
	}
	if conflicts > 0 {
		return nil, apperrors.ErrSlotConflict
	}

	event := &model.Event{
		Title:       req.Title,
		Type:        req.Type,
		EventDate:   req.EventDate,
		EventTime:   req.EventTime,
		MaxCapacity: req.MaxCapacity,
		LocationID:  req.LocationID,
		VenueID:     req.VenueID,
		UserID:      userID,
		IsPrivate:   *req.IsPrivate,
	}

	return s.repo.Create(ctx, event)
}

func (s *EventServiceImpl) GetByID(ctx context.Context, id int, requester model.AuthUser) (*model.Event, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// 私人活動僅擁有者可見
	if event.IsPrivate && event.UserID != requester.ID && !requester.IsAdmin() {
		return nil, apperrors.New(apperrors.KindAuthorization, "Unauthorized access to private event")
	}

	return event, nil
}

func (s *EventServiceImpl) ListByUser(ctx context.Context, userID int) ([]*model.Event, error) {
	return s.repo.ListByUserID(ctx, userID)
}

func (s *EventServiceImpl) Filter(ctx context.Context, filter model.EventFilter) ([]*model.Event, error) {
	if filter.MinDate != "" {
		if err := validate.DateOnly(filter.MinDate); err != nil {
			return nil, err
		}
	}
	if filter.MaxDate != "" {
		if err := validate.DateOnly(filter.MaxDate); err != nil {
			return nil, err
		}
	}
	if filter.MinDate != "" && filter.MaxDate != "" && filter.MaxDate < filter.MinDate {
		return nil, apperrors.New(apperrors.KindValidation, "maxDate cannot be earlier than minDate")
	}

	return s.repo.Filter(ctx, filter)
}

func (s *EventServiceImpl) Update(ctx context.Context, id int, params model.UpdateEventParams, requester model.AuthUser) (*model.Event, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event.UserID != requester.ID {
		return nil, apperrors.New(apperrors.KindAuthorization, "You do not have permission to update this event")
	}

	// 更新檔期時重新驗證
	if params.EventDate != nil || params.EventTime != nil {
		date := event.EventDate
		clock := event.EventTime
		if params.EventDate != nil {
			date = *params.EventDate
		}
		if params.EventTime != nil {
			clock = *params.EventTime
		}
		if _, err := validate.EventSchedule(date, clock, s.now()); err != nil {
			return nil, err
		}
	}

	// 更換場地時場地必須存在
	if params.VenueID != nil {
		if _, err := s.venueRepo.FindByID(ctx, *params.VenueID); err != nil {
			return nil, err
		}
	}

	return s.repo.Update(ctx, id, params)
}

func (s *EventServiceImpl) Delete(ctx context.Context, id int, requester model.AuthUser) error {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if event.UserID != requester.ID && !requester.IsAdmin() {
		return apperrors.New(apperrors.KindAuthorization, "Missing deletion permissions")
	}

	return s.repo.Delete(ctx, id)
}
