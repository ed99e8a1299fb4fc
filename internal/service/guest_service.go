package service

import (
	"context"
	"encoding/base64"
	"encoding/json"

	"go-event-management/internal/model"
	"go-event-management/internal/repository"
	"go-event-management/pkg/apperrors"

	qrcode "github.com/skip2/go-qrcode"
)

type GuestService interface {
	Add(ctx context.Context, req model.AddGuestRequest) (*model.Guest, error)
	ListByEvent(ctx context.Context, eventID int) ([]*model.Guest, error)
	Update(ctx context.Context, id int, params model.UpdateGuestParams) (*model.Guest, error)
	Delete(ctx context.Context, id int) error
	// QRCodes 為活動的所有賓客產生簽到 QR code（PNG data URL）
	QRCodes(ctx context.Context, eventID int) ([]*model.GuestQRCode, error)
}

type GuestServiceImpl struct {
	repo      repository.GuestRepository
	eventRepo repository.EventRepository
}

func NewGuestService(repo repository.GuestRepository, eventRepo repository.EventRepository) GuestService {
	return &GuestServiceImpl{repo: repo, eventRepo: eventRepo}
}

func (s *GuestServiceImpl) Add(ctx context.Context, req model.AddGuestRequest) (*model.Guest, error) {
	if _, err := s.eventRepo.FindByID(ctx, req.EventID); err != nil {
		return nil, err
	}

	// 同一活動同一 email 只允許一筆賓客紀錄
	exists, err := s.repo.ExistsByEventEmail(ctx, req.EventID, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrDuplicateGuest
	}

	status := req.Status
	if status == "" {
		status = model.GuestStatusInvited
	}

	guest := &model.Guest{
		EventID: req.EventID,
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Status:  status,
	}

	return s.repo.Create(ctx, guest)
}

func (s *GuestServiceImpl) ListByEvent(ctx context.Context, eventID int) ([]*model.Guest, error) {
	return s.repo.ListByEventID(ctx, eventID)
}

func (s *GuestServiceImpl) Update(ctx context.Context, id int, params model.UpdateGuestParams) (*model.Guest, error) {
	return s.repo.Update(ctx, id, params)
}

func (s *GuestServiceImpl) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

// qrPayload QR code 內嵌的簽到資訊
type qrPayload struct {
	Type    string `json:"type"`
	EventID int    `json:"eventId"`
	GuestID int    `json:"guestId"`
	Name    string `json:"name"`
	Email   string `json:"email"`
}

func (s *GuestServiceImpl) QRCodes(ctx context.Context, eventID int) ([]*model.GuestQRCode, error) {
	guests, err := s.repo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	codes := make([]*model.GuestQRCode, 0, len(guests))
	for _, guest := range guests {
		payload, err := json.Marshal(qrPayload{
			Type:    "guest",
			EventID: eventID,
			GuestID: guest.ID,
			Name:    guest.Name,
			Email:   guest.Email,
		})
		if err != nil {
			return nil, err
		}

		png, err := qrcode.Encode(string(payload), qrcode.Medium, 256)
		if err != nil {
			return nil, err
		}

		codes = append(codes, &model.GuestQRCode{
			Guest:  guest,
			QRCode: "data:image/png;base64," + base64.StdEncoding.EncodeToString(png),
		})
	}

	return codes, nil
}
