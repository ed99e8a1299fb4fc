package service

import (
	"context"
	"time"

	"go-event-management/internal/model"
	"go-event-management/internal/repository"
	"go-event-management/pkg/apperrors"
)

type BusinessService interface {
	Register(ctx context.Context, req model.RegisterBusinessRequest, userID int) (*model.Business, error)
	GetByID(ctx context.Context, id int) (*model.Business, error)
	ListMine(ctx context.Context, userID int) ([]*model.Business, error)
	// List 全部商家列表，僅限 admin
	List(ctx context.Context, filter model.BusinessFilter, requester model.AuthUser) ([]*model.Business, error)
	Update(ctx context.Context, id int, params model.UpdateBusinessParams, requester model.AuthUser) (*model.Business, error)
	Delete(ctx context.Context, id int, requester model.AuthUser) error
	// UpdateStatus 審核商家，僅限 admin，approved 會記錄審核者與時間
	UpdateStatus(ctx context.Context, id int, status model.BusinessStatus, requester model.AuthUser) (*model.Business, error)
}

type BusinessServiceImpl struct {
	repo repository.BusinessRepository
	now  func() time.Time
}

func NewBusinessService(repo repository.BusinessRepository) BusinessService {
	return &BusinessServiceImpl{repo: repo, now: time.Now}
}

func (s *BusinessServiceImpl) Register(ctx context.Context, req model.RegisterBusinessRequest, userID int) (*model.Business, error) {
	exists, err := s.repo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrBusinessEmailTaken
	}

	return s.repo.Create(ctx, &model.Business{
		UserID:      userID,
		Name:        req.Name,
		Type:        req.Type,
		Address:     req.Address,
		Phone:       req.Phone,
		Email:       req.Email,
		Description: req.Description,
		Website:     req.Website,
		SocialMedia: req.SocialMedia,
		Status:      model.BusinessStatusPending,
	})
}

func (s *BusinessServiceImpl) GetByID(ctx context.Context, id int) (*model.Business, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *BusinessServiceImpl) ListMine(ctx context.Context, userID int) ([]*model.Business, error) {
	return s.repo.ListByUserID(ctx, userID)
}

func (s *BusinessServiceImpl) List(ctx context.Context, filter model.BusinessFilter, requester model.AuthUser) ([]*model.Business, error) {
	if !requester.IsAdmin() {
		return nil, apperrors.ErrForbidden
	}

	return s.repo.List(ctx, filter)
}

func (s *BusinessServiceImpl) Update(ctx context.Context, id int, params model.UpdateBusinessParams, requester model.AuthUser) (*model.Business, error) {
	business, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if business.UserID != requester.ID {
		return nil, apperrors.New(apperrors.KindAuthorization, "You do not have permission to update this business")
	}

	return s.repo.Update(ctx, id, params)
}

func (s *BusinessServiceImpl) Delete(ctx context.Context, id int, requester model.AuthUser) error {
	business, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if business.UserID != requester.ID {
		return apperrors.New(apperrors.KindAuthorization, "You do not have permission to delete this business")
	}

	return s.repo.Delete(ctx, id)
}

func (s *BusinessServiceImpl) UpdateStatus(ctx context.Context, id int, status model.BusinessStatus, requester model.AuthUser) (*model.Business, error) {
	if !requester.IsAdmin() {
		return nil, apperrors.ErrForbidden
	}

	if status != model.BusinessStatusApproved && status != model.BusinessStatusRejected {
		return nil, apperrors.New(apperrors.KindValidation, `Invalid status. Must be either "approved" or "rejected"`)
	}

	var (
		approvedBy *int
		approvedAt *time.Time
	)
	if status == model.BusinessStatusApproved {
		approvedBy = &requester.ID
		now := s.now()
		approvedAt = &now
	}

	return s.repo.UpdateStatus(ctx, id, status, approvedBy, approvedAt)
}
