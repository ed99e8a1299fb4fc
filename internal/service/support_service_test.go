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

func TestSupportService_Submit(t *testing.T) {
	ctx := context.Background()

	req := model.SubmitTicketRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Subject:  "Broken booking",
		Message:  "Cannot confirm my booking",
		Category: "booking",
	}

	t.Run("Success - Anonymous", func(t *testing.T) {
		supportRepo := repoMocks.NewSupportRepositoryMock()
		supportService := service.NewSupportService(supportRepo)

		supportRepo.On("Create", ctx, mock.MatchedBy(func(ticket *model.SupportTicket) bool {
			return ticket.UserID == nil && ticket.Status == model.TicketStatusOpen
		})).Return(&model.SupportTicket{ID: 1, Status: model.TicketStatusOpen}, nil).Once()

		ticket, err := supportService.Submit(ctx, req, nil)

		require.NoError(t, err)
		assert.Equal(t, model.TicketStatusOpen, ticket.Status)
	})

	t.Run("Success - LoggedIn", func(t *testing.T) {
		supportRepo := repoMocks.NewSupportRepositoryMock()
		supportService := service.NewSupportService(supportRepo)

		userID := 7
		supportRepo.On("Create", ctx, mock.MatchedBy(func(ticket *model.SupportTicket) bool {
			return ticket.UserID != nil && *ticket.UserID == 7
		})).Return(&model.SupportTicket{ID: 1, UserID: &userID}, nil).Once()

		_, err := supportService.Submit(ctx, req, &userID)
		require.NoError(t, err)
	})
}

func TestSupportService_GetByID(t *testing.T) {
	ctx := context.Background()
	owner := 7

	t.Run("Success - Owner", func(t *testing.T) {
		supportRepo := repoMocks.NewSupportRepositoryMock()
		supportService := service.NewSupportService(supportRepo)

		supportRepo.On("FindByID", ctx, 1).Return(&model.SupportTicket{ID: 1, UserID: &owner}, nil).Once()

		_, err := supportService.GetByID(ctx, 1, model.AuthUser{ID: 7})
		require.NoError(t, err)
	})

	t.Run("Failed - Stranger", func(t *testing.T) {
		supportRepo := repoMocks.NewSupportRepositoryMock()
		supportService := service.NewSupportService(supportRepo)

		supportRepo.On("FindByID", ctx, 1).Return(&model.SupportTicket{ID: 1, UserID: &owner}, nil).Once()

		_, err := supportService.GetByID(ctx, 1, model.AuthUser{ID: 9})
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})

	t.Run("Success - Admin", func(t *testing.T) {
		supportRepo := repoMocks.NewSupportRepositoryMock()
		supportService := service.NewSupportService(supportRepo)

		supportRepo.On("FindByID", ctx, 1).Return(&model.SupportTicket{ID: 1, UserID: &owner}, nil).Once()

		_, err := supportService.GetByID(ctx, 1, model.AuthUser{ID: 9, Role: model.UserRoleAdmin})
		require.NoError(t, err)
	})
}

func TestSupportService_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Failed - NonAdmin", func(t *testing.T) {
		supportRepo := repoMocks.NewSupportRepositoryMock()
		supportService := service.NewSupportService(supportRepo)

		_, err := supportService.UpdateStatus(ctx, 1, model.TicketStatusClosed, model.AuthUser{ID: 7})

		assert.ErrorIs(t, err, apperrors.ErrForbidden)
		supportRepo.AssertNotCalled(t, "UpdateStatus")
	})

	t.Run("Success - Admin", func(t *testing.T) {
		supportRepo := repoMocks.NewSupportRepositoryMock()
		supportService := service.NewSupportService(supportRepo)

		supportRepo.On("UpdateStatus", ctx, 1, model.TicketStatusClosed).
			Return(&model.SupportTicket{ID: 1, Status: model.TicketStatusClosed}, nil).Once()

		ticket, err := supportService.UpdateStatus(ctx, 1, model.TicketStatusClosed, model.AuthUser{ID: 7, Role: model.UserRoleAdmin})

		require.NoError(t, err)
		assert.Equal(t, model.TicketStatusClosed, ticket.Status)
	})
}
