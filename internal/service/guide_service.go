package service

import (
	"context"

	"go-event-management/internal/model"
	"go-event-management/internal/repository"
	"go-event-management/pkg/apperrors"
)

type GuideService interface {
	List(ctx context.Context, filter model.GuideFilter) ([]*model.Guide, error)
	GetByID(ctx context.Context, id int) (*model.Guide, error)
	Create(ctx context.Context, req model.CreateGuideRequest, requester model.AuthUser) (*model.Guide, error)
	Update(ctx context.Context, id int, params model.UpdateGuideParams, requester model.AuthUser) (*model.Guide, error)
	Delete(ctx context.Context, id int, requester model.AuthUser) error

	ListCategories(ctx context.Context) ([]*model.GuideCategory, error)
	CreateCategory(ctx context.Context, req model.CreateGuideCategoryRequest, requester model.AuthUser) (*model.GuideCategory, error)
	UpdateCategory(ctx context.Context, id int, params model.UpdateGuideCategoryParams, requester model.AuthUser) (*model.GuideCategory, error)
	DeleteCategory(ctx context.Context, id int, requester model.AuthUser) error
}

type GuideServiceImpl struct {
	repo repository.GuideRepository
}

func NewGuideService(repo repository.GuideRepository) GuideService {
	return &GuideServiceImpl{repo: repo}
}

func (s *GuideServiceImpl) List(ctx context.Context, filter model.GuideFilter) ([]*model.Guide, error) {
	return s.repo.List(ctx, filter)
}

func (s *GuideServiceImpl) GetByID(ctx context.Context, id int) (*model.Guide, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *GuideServiceImpl) Create(ctx context.Context, req model.CreateGuideRequest, requester model.AuthUser) (*model.Guide, error) {
	if !requester.IsAdmin() {
		return nil, apperrors.New(apperrors.KindAuthorization, "Only administrators can create guides")
	}

	// 未指定發布狀態時預設直接發布
	isPublished := true
	if req.IsPublished != nil {
		isPublished = *req.IsPublished
	}

	return s.repo.Create(ctx, &model.Guide{
		Title:       req.Title,
		Content:     req.Content,
		Category:    req.Category,
		AuthorID:    requester.ID,
		IsPublished: isPublished,
	})
}

func (s *GuideServiceImpl) Update(ctx context.Context, id int, params model.UpdateGuideParams, requester model.AuthUser) (*model.Guide, error) {
	if !requester.IsAdmin() {
		return nil, apperrors.New(apperrors.KindAuthorization, "Only administrators can update guides")
	}

	return s.repo.Update(ctx, id, params)
}

func (s *GuideServiceImpl) Delete(ctx context.Context, id int, requester model.AuthUser) error {
	if !requester.IsAdmin() {
		return apperrors.New(apperrors.KindAuthorization, "Only administrators can delete guides")
	}

	return s.repo.Delete(ctx, id)
}

func (s *GuideServiceImpl) ListCategories(ctx context.Context) ([]*model.GuideCategory, error) {
	return s.repo.ListCategories(ctx)
}

func (s *GuideServiceImpl) CreateCategory(ctx context.Context, req model.CreateGuideCategoryRequest, requester model.AuthUser) (*model.GuideCategory, error) {
	if !requester.IsAdmin() {
		return nil, apperrors.New(apperrors.KindAuthorization, "Only administrators can create guide categories")
	}

	return s.repo.CreateCategory(ctx, &model.GuideCategory{
		Name:        req.Name,
		Description: req.Description,
	})
}

func (s *GuideServiceImpl) UpdateCategory(ctx context.Context, id int, params model.UpdateGuideCategoryParams, requester model.AuthUser) (*model.GuideCategory, error) {
	if !requester.IsAdmin() {
		return nil, apperrors.New(apperrors.KindAuthorization, "Only administrators can update guide categories")
	}

	return s.repo.UpdateCategory(ctx, id, params)
}

func (s *GuideServiceImpl) DeleteCategory(ctx context.Context, id int, requester model.AuthUser) error {
	if !requester.IsAdmin() {
		return apperrors.New(apperrors.KindAuthorization, "Only administrators can delete guide categories")
	}

	return s.repo.DeleteCategory(ctx, id)
}
