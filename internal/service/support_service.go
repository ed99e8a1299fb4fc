package service

import (
	"context"

	"go-event-management/internal/model"
	"go-event-management/internal/repository"
	"go-event-management/pkg/apperrors"
)

type SupportService interface {
	Submit(ctx context.Context, req model.SubmitTicketRequest, userID *int) (*model.SupportTicket, error)
	ListByUser(ctx context.Context, userID int) ([]*model.SupportTicket, error)
	GetByID(ctx context.Context, id int, requester model.AuthUser) (*model.SupportTicket, error)
	// UpdateStatus 僅限 admin
	UpdateStatus(ctx context.Context, id int, status model.TicketStatus, requester model.AuthUser) (*model.SupportTicket, error)
}

type SupportServiceImpl struct {
	repo repository.SupportRepository
}

func NewSupportService(repo repository.SupportRepository) SupportService {
	return &SupportServiceImpl{repo: repo}
}

func (s *SupportServiceImpl) Submit(ctx context.Context, req model.SubmitTicketRequest, userID *int) (*model.SupportTicket, error) {
	ticket := &model.SupportTicket{
		UserID:   userID,
		Name:     req.Name,
		Email:    req.Email,
		Subject:  req.Subject,
		Message:  req.Message,
		Category: req.Category,
		Status:   model.TicketStatusOpen,
	}

	return s.repo.Create(ctx, ticket)
}

func (s *SupportServiceImpl) ListByUser(ctx context.Context, userID int) ([]*model.SupportTicket, error) {
	return s.repo.ListByUserID(ctx, userID)
}

func (s *SupportServiceImpl) GetByID(ctx context.Context, id int, requester model.AuthUser) (*model.SupportTicket, error) {
	ticket, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !requester.IsAdmin() && (ticket.UserID == nil || *ticket.UserID != requester.ID) {
		return nil, apperrors.ErrForbidden
	}

	return ticket, nil
}

func (s *SupportServiceImpl) UpdateStatus(ctx context.Context, id int, status model.TicketStatus, requester model.AuthUser) (*model.SupportTicket, error) {
	if !requester.IsAdmin() {
		return nil, apperrors.ErrForbidden
	}

	return s.repo.UpdateStatus(ctx, id, status)
}
