package service

import (
	"context"

	"go-event-management/internal/model"
	"go-event-management/internal/repository"
	"go-event-management/pkg/apperrors"
)

type VenueService interface {
	Create(ctx context.Context, req model.CreateVenueRequest, userID int) (*model.Venue, error)
	GetByID(ctx context.Context, id int) (*model.Venue, error)
	List(ctx context.Context, filter model.VenueFilter) (*model.VenueListResponse, error)
	Update(ctx context.Context, id int, params model.UpdateVenueParams, requester model.AuthUser) (*model.Venue, error)
	Delete(ctx context.Context, id int, requester model.AuthUser) error
}

type VenueServiceImpl struct {
	repo repository.VenueRepository
}

func NewVenueService(repo repository.VenueRepository) VenueService {
	return &VenueServiceImpl{repo: repo}
}

func (s *VenueServiceImpl) Create(ctx context.Context, req model.CreateVenueRequest, userID int) (*model.Venue, error) {
	venue := &model.Venue{
		Name:        req.Name,
		LocationID:  req.LocationID,
		Capacity:    req.Capacity,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Description: req.Description,
		UserID:      userID,
	}

	return s.repo.Create(ctx, venue)
}

func (s *VenueServiceImpl) GetByID(ctx context.Context, id int) (*model.Venue, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *VenueServiceImpl) List(ctx context.Context, filter model.VenueFilter) (*model.VenueListResponse, error) {
	venues, count, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &model.VenueListResponse{Data: venues, Count: count}, nil
}

func (s *VenueServiceImpl) Update(ctx context.Context, id int, params model.UpdateVenueParams, requester model.AuthUser) (*model.Venue, error) {
	if err := s.checkOwner(ctx, id, requester); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, params)
}

func (s *VenueServiceImpl) Delete(ctx context.Context, id int, requester model.AuthUser) error {
	if err := s.checkOwner(ctx, id, requester); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *VenueServiceImpl) checkOwner(ctx context.Context, id int, requester model.AuthUser) error {
	venue, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if venue.UserID != requester.ID && !requester.IsAdmin() {
		return apperrors.ErrForbidden
	}
	return nil
}
