package service_test

import (
	"context"
	"testing"

	"go-event-management/internal/model"
	repoMocks "go-event-management/internal/repository/mocks"
	"go-event-management/internal/service"
	"go-event-management/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestVenueService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		venueRepo := repoMocks.NewVenueRepositoryMock()
		venueService := service.NewVenueService(venueRepo)

		venueRepo.On("Create", ctx, mock.MatchedBy(func(v *model.Venue) bool {
			return v.UserID == 7 && v.Name == "Grand Hall"
		})).Return(&model.Venue{ID: 1, Name: "Grand Hall", UserID: 7}, nil).Once()

		venue, err := venueService.Create(ctx, model.CreateVenueRequest{
			Name:       "Grand Hall",
			LocationID: "loc-1",
			Capacity:   200,
		}, 7)

		require.NoError(t, err)
		assert.Equal(t, 1, venue.ID)
	})
}

func TestVenueService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("Failed - NotOwner", func(t *testing.T) {
		venueRepo := repoMocks.NewVenueRepositoryMock()
		venueService := service.NewVenueService(venueRepo)

		venueRepo.On("FindByID", ctx, 1).Return(&model.Venue{ID: 1, UserID: 99}, nil).Once()

		_, err := venueService.Update(ctx, 1, model.UpdateVenueParams{}, model.AuthUser{ID: 7})

		assert.ErrorIs(t, err, apperrors.ErrForbidden)
		venueRepo.AssertNotCalled(t, "Update")
	})

	t.Run("Success - Admin", func(t *testing.T) {
		venueRepo := repoMocks.NewVenueRepositoryMock()
		venueService := service.NewVenueService(venueRepo)

		name := "Renamed"
		params := model.UpdateVenueParams{Name: &name}

		venueRepo.On("FindByID", ctx, 1).Return(&model.Venue{ID: 1, UserID: 99}, nil).Once()
		venueRepo.On("Update", ctx, 1, params).Return(&model.Venue{ID: 1, Name: "Renamed"}, nil).Once()

		venue, err := venueService.Update(ctx, 1, params, model.AuthUser{ID: 7, Role: model.UserRoleAdmin})

		require.NoError(t, err)
		assert.Equal(t, "Renamed", venue.Name)
	})
}

func TestVenueService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Failed - VenueNotFound", func(t *testing.T) {
		venueRepo := repoMocks.NewVenueRepositoryMock()
		venueService := service.NewVenueService(venueRepo)

		venueRepo.On("FindByID", ctx, 1).Return(nil, apperrors.ErrVenueNotFound).Once()

		err := venueService.Delete(ctx, 1, model.AuthUser{ID: 7})
		assert.ErrorIs(t, err, apperrors.ErrVenueNotFound)
	})

	t.Run("Success - Owner", func(t *testing.T) {
		venueRepo := repoMocks.NewVenueRepositoryMock()
		venueService := service.NewVenueService(venueRepo)

		venueRepo.On("FindByID", ctx, 1).Return(&model.Venue{ID: 1, UserID: 7}, nil).Once()
		venueRepo.On("Delete", ctx, 1).Return(nil).Once()

		err := venueService.Delete(ctx, 1, model.AuthUser{ID: 7})
		require.NoError(t, err)
	})
}

func TestVenueService_List(t *testing.T) {
	ctx := context.Background()

	venueRepo := repoMocks.NewVenueRepositoryMock()
	venueService := service.NewVenueService(venueRepo)

	filter := model.VenueFilter{}
	venueRepo.On("List", ctx, filter).Return([]*model.Venue{{ID: 1}, {ID: 2}}, 2, nil).Once()

	result, err := venueService.List(ctx, filter)

	require.NoError(t, err)
	assert.Equal(t, 2, result.Count)
	assert.Len(t, result.Data, 2)
}
