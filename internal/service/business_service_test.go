package service_test

import (
	"context"
	"testing"
	"time"

	"go-event-management/internal/model"
	repoMocks "go-event-management/internal/repository/mocks"
	"go-event-management/internal/service"
	"go-event-management/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validRegisterBusinessRequest() model.RegisterBusinessRequest {
	return model.RegisterBusinessRequest{
		Name:        "Sunset Catering",
		Type:        "catering",
		Address:     "12 Harbor Road",
		Phone:       "0912345678",
		Email:       "hello@sunset-catering.example.com",
		Description: "Full service catering for private events",
	}
}

func TestBusinessService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - StartsPending", func(t *testing.T) {
		businessRepo := repoMocks.NewBusinessRepositoryMock()
		businessService := service.NewBusinessService(businessRepo)

		req := validRegisterBusinessRequest()
		businessRepo.On("ExistsByEmail", ctx, req.Email).Return(false, nil).Once()
		businessRepo.On("Create", ctx, mock.MatchedBy(func(business *model.Business) bool {
			return business.Status == model.BusinessStatusPending && business.UserID == 7
		})).Return(&model.Business{ID: 1, UserID: 7, Status: model.BusinessStatusPending}, nil).Once()

		business, err := businessService.Register(ctx, req, 7)

		require.NoError(t, err)
		assert.Equal(t, model.BusinessStatusPending, business.Status)
	})

	t.Run("Failed - EmailTaken", func(t *testing.T) {
		businessRepo := repoMocks.NewBusinessRepositoryMock()
		businessService := service.NewBusinessService(businessRepo)

		req := validRegisterBusinessRequest()
		businessRepo.On("ExistsByEmail", ctx, req.Email).Return(true, nil).Once()

		_, err := businessService.Register(ctx, req, 7)

		assert.ErrorIs(t, err, apperrors.ErrBusinessEmailTaken)
		businessRepo.AssertNotCalled(t, "Create")
	})
}

func TestBusinessService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Owner", func(t *testing.T) {
		businessRepo := repoMocks.NewBusinessRepositoryMock()
		businessService := service.NewBusinessService(businessRepo)

		name := "Sunrise Catering"
		params := model.UpdateBusinessParams{Name: &name}

		businessRepo.On("FindByID", ctx, 1).Return(&model.Business{ID: 1, UserID: 7}, nil).Once()
		businessRepo.On("Update", ctx, 1, params).Return(&model.Business{ID: 1, UserID: 7, Name: name}, nil).Once()

		business, err := businessService.Update(ctx, 1, params, model.AuthUser{ID: 7})

		require.NoError(t, err)
		assert.Equal(t, name, business.Name)
	})

	t.Run("Failed - NotOwner", func(t *testing.T) {
		businessRepo := repoMocks.NewBusinessRepositoryMock()
		businessService := service.NewBusinessService(businessRepo)

		businessRepo.On("FindByID", ctx, 1).Return(&model.Business{ID: 1, UserID: 7}, nil).Once()

		_, err := businessService.Update(ctx, 1, model.UpdateBusinessParams{}, model.AuthUser{ID: 9})

		assert.Equal(t, apperrors.KindAuthorization, apperrors.KindOf(err))
		assert.EqualError(t, err, "You do not have permission to update this business")
		businessRepo.AssertNotCalled(t, "Update")
	})

	t.Run("Failed - NotFound", func(t *testing.T) {
		businessRepo := repoMocks.NewBusinessRepositoryMock()
		businessService := service.NewBusinessService(businessRepo)

		businessRepo.On("FindByID", ctx, 99).Return(nil, apperrors.ErrBusinessNotFound).Once()

		_, err := businessService.Update(ctx, 99, model.UpdateBusinessParams{}, model.AuthUser{ID: 7})
		assert.ErrorIs(t, err, apperrors.ErrBusinessNotFound)
	})
}

func TestBusinessService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Owner", func(t *testing.T) {
		businessRepo := repoMocks.NewBusinessRepositoryMock()
		businessService := service.NewBusinessService(businessRepo)

		businessRepo.On("FindByID", ctx, 1).Return(&model.Business{ID: 1, UserID: 7}, nil).Once()
		businessRepo.On("Delete", ctx, 1).Return(nil).Once()

		err := businessService.Delete(ctx, 1, model.AuthUser{ID: 7})
		require.NoError(t, err)
	})

	t.Run("Failed - NotOwner", func(t *testing.T) {
		businessRepo := repoMocks.NewBusinessRepositoryMock()
		businessService := service.NewBusinessService(businessRepo)

		businessRepo.On("FindByID", ctx, 1).Return(&model.Business{ID: 1, UserID: 7}, nil).Once()

		err := businessService.Delete(ctx, 1, model.AuthUser{ID: 9})

		assert.EqualError(t, err, "You do not have permission to delete this business")
		businessRepo.AssertNotCalled(t, "Delete")
	})
}

func TestBusinessService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Admin", func(t *testing.T) {
		businessRepo := repoMocks.NewBusinessRepositoryMock()
		businessService := service.NewBusinessService(businessRepo)

		filter := model.BusinessFilter{Status: "pending"}
		businessRepo.On("List", ctx, filter).Return([]*model.Business{{ID: 1}, {ID: 2}}, nil).Once()

		businesses, err := businessService.List(ctx, filter, model.AuthUser{ID: 3, Role: model.UserRoleAdmin})

		require.NoError(t, err)
		assert.Len(t, businesses, 2)
	})

	t.Run("Failed - NonAdmin", func(t *testing.T) {
		businessRepo := repoMocks.NewBusinessRepositoryMock()
		businessService := service.NewBusinessService(businessRepo)

		_, err := businessService.List(ctx, model.BusinessFilter{}, model.AuthUser{ID: 7})

		assert.ErrorIs(t, err, apperrors.ErrForbidden)
		businessRepo.AssertNotCalled(t, "List")
	})
}

func TestBusinessService_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	admin := model.AuthUser{ID: 3, Role: model.UserRoleAdmin}

	t.Run("Success - ApprovedRecordsReviewer", func(t *testing.T) {
		businessRepo := repoMocks.NewBusinessRepositoryMock()
		businessService := service.NewBusinessService(businessRepo)

		businessRepo.On("UpdateStatus", ctx, 1, model.BusinessStatusApproved,
			mock.MatchedBy(func(approvedBy *int) bool { return approvedBy != nil && *approvedBy == 3 }),
			mock.MatchedBy(func(approvedAt *time.Time) bool { return approvedAt != nil }),
		).Return(&model.Business{ID: 1, Status: model.BusinessStatusApproved}, nil).Once()

		business, err := businessService.UpdateStatus(ctx, 1, model.BusinessStatusApproved, admin)

		require.NoError(t, err)
		assert.Equal(t, model.BusinessStatusApproved, business.Status)
	})

	t.Run("Success - RejectedClearsReviewer", func(t *testing.T) {
		businessRepo := repoMocks.NewBusinessRepositoryMock()
		businessService := service.NewBusinessService(businessRepo)

		businessRepo.On("UpdateStatus", ctx, 1, model.BusinessStatusRejected, (*int)(nil), (*time.Time)(nil)).
			Return(&model.Business{ID: 1, Status: model.BusinessStatusRejected}, nil).Once()

		business, err := businessService.UpdateStatus(ctx, 1, model.BusinessStatusRejected, admin)

		require.NoError(t, err)
		assert.Equal(t, model.BusinessStatusRejected, business.Status)
	})

	t.Run("Failed - PendingIsNotAReviewOutcome", func(t *testing.T) {
		businessRepo := repoMocks.NewBusinessRepositoryMock()
		businessService := service.NewBusinessService(businessRepo)

		_, err := businessService.UpdateStatus(ctx, 1, model.BusinessStatusPending, admin)

		assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
		businessRepo.AssertNotCalled(t, "UpdateStatus")
	})

	t.Run("Failed - NonAdmin", func(t *testing.T) {
		businessRepo := repoMocks.NewBusinessRepositoryMock()
		businessService := service.NewBusinessService(businessRepo)

		_, err := businessService.UpdateStatus(ctx, 1, model.BusinessStatusApproved, model.AuthUser{ID: 7})

		assert.ErrorIs(t, err, apperrors.ErrForbidden)
		businessRepo.AssertNotCalled(t, "UpdateStatus")
	})
}
