package service_test

import (
	"context"
	"strings"
	"testing"

	"go-event-management/internal/model"
	repoMocks "go-event-management/internal/repository/mocks"
	"go-event-management/internal/service"
	"go-event-management/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGuestService_Add(t *testing.T) {
	ctx := context.Background()

	req := model.AddGuestRequest{
		EventID: 5,
		Name:    "Alice",
		Email:   "alice@example.com",
	}

	t.Run("Success - DefaultsToInvited", func(t *testing.T) {
		guestRepo := repoMocks.NewGuestRepositoryMock()
		eventRepo := repoMocks.NewEventRepositoryMock()
		guestService := service.NewGuestService(guestRepo, eventRepo)

		eventRepo.On("FindByID", ctx, 5).Return(&model.Event{ID: 5}, nil).Once()
		guestRepo.On("ExistsByEventEmail", ctx, 5, "alice@example.com").Return(false, nil).Once()
		guestRepo.On("Create", ctx, mock.MatchedBy(func(g *model.Guest) bool {
			return g.Status == model.GuestStatusInvited
		})).Return(&model.Guest{ID: 1, EventID: 5, Status: model.GuestStatusInvited}, nil).Once()

		guest, err := guestService.Add(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, model.GuestStatusInvited, guest.Status)
		guestRepo.AssertExpectations(t)
	})

	t.Run("Failed - EventNotFound", func(t *testing.T) {
		guestRepo := repoMocks.NewGuestRepositoryMock()
		eventRepo := repoMocks.NewEventRepositoryMock()
		guestService := service.NewGuestService(guestRepo, eventRepo)

		eventRepo.On("FindByID", ctx, 5).Return(nil, apperrors.ErrEventNotFound).Once()

		_, err := guestService.Add(ctx, req)

		assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
		guestRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Failed - DuplicateEmail", func(t *testing.T) {
		guestRepo := repoMocks.NewGuestRepositoryMock()
		eventRepo := repoMocks.NewEventRepositoryMock()
		guestService := service.NewGuestService(guestRepo, eventRepo)

		eventRepo.On("FindByID", ctx, 5).Return(&model.Event{ID: 5}, nil).Once()
		guestRepo.On("ExistsByEventEmail", ctx, 5, "alice@example.com").Return(true, nil).Once()

		_, err := guestService.Add(ctx, req)

		assert.ErrorIs(t, err, apperrors.ErrDuplicateGuest)
		guestRepo.AssertNotCalled(t, "Create")
	})
}

func TestGuestService_QRCodes(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		guestRepo := repoMocks.NewGuestRepositoryMock()
		eventRepo := repoMocks.NewEventRepositoryMock()
		guestService := service.NewGuestService(guestRepo, eventRepo)

		guestRepo.On("ListByEventID", ctx, 5).Return([]*model.Guest{
			{ID: 1, EventID: 5, Name: "Alice", Email: "alice@example.com"},
			{ID: 2, EventID: 5, Name: "Bob", Email: "bob@example.com"},
		}, nil).Once()

		codes, err := guestService.QRCodes(ctx, 5)

		require.NoError(t, err)
		require.Len(t, codes, 2)
		for _, code := range codes {
			assert.True(t, strings.HasPrefix(code.QRCode, "data:image/png;base64,"))
		}
		assert.Equal(t, "Alice", codes[0].Guest.Name)
	})

	t.Run("Success - NoGuests", func(t *testing.T) {
		guestRepo := repoMocks.NewGuestRepositoryMock()
		eventRepo := repoMocks.NewEventRepositoryMock()
		guestService := service.NewGuestService(guestRepo, eventRepo)

		guestRepo.On("ListByEventID", ctx, 5).Return([]*model.Guest{}, nil).Once()

		codes, err := guestService.QRCodes(ctx, 5)

		require.NoError(t, err)
		assert.Empty(t, codes)
	})
}
