package service_test

import (
	"context"
	"testing"

	"go-event-management/internal/model"
	repoMocks "go-event-management/internal/repository/mocks"
	"go-event-management/internal/service"
	"go-event-management/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFAQService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - GroupedByCategory", func(t *testing.T) {
		faqRepo := repoMocks.NewFAQRepositoryMock()
		faqService := service.NewFAQService(faqRepo)

		// repo 依 category 排序回傳，分組需維持該順序
		faqRepo.On("List", ctx).Return([]*model.FAQ{
			{ID: 1, Question: "How do I book?", Answer: "Use the booking page.", Category: "booking"},
			{ID: 2, Question: "Can I cancel?", Answer: "Before payment only.", Category: "booking"},
			{ID: 3, Question: "Which cards do you take?", Answer: "All major cards.", Category: "payment"},
		}, nil).Once()

		groups, err := faqService.List(ctx)

		require.NoError(t, err)
		require.Len(t, groups, 2)
		assert.Equal(t, "booking", groups[0].Title)
		assert.Len(t, groups[0].Items, 2)
		assert.Equal(t, "payment", groups[1].Title)
		assert.Len(t, groups[1].Items, 1)
		assert.Equal(t, "How do I book?", groups[0].Items[0].Question)
	})

	t.Run("Success - Empty", func(t *testing.T) {
		faqRepo := repoMocks.NewFAQRepositoryMock()
		faqService := service.NewFAQService(faqRepo)

		faqRepo.On("List", ctx).Return([]*model.FAQ{}, nil).Once()

		groups, err := faqService.List(ctx)

		require.NoError(t, err)
		assert.Empty(t, groups)
		assert.NotNil(t, groups)
	})
}

func TestFAQService_ListByCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		faqRepo := repoMocks.NewFAQRepositoryMock()
		faqService := service.NewFAQService(faqRepo)

		faqRepo.On("ListByCategory", ctx, "booking").Return([]*model.FAQ{
			{ID: 1, Question: "How do I book?", Answer: "Use the booking page.", Category: "booking"},
		}, nil).Once()

		group, err := faqService.ListByCategory(ctx, "booking")

		require.NoError(t, err)
		assert.Equal(t, "booking", group.Title)
		assert.Len(t, group.Items, 1)
	})

	t.Run("Success - UnknownCategoryReturnsEmptyGroup", func(t *testing.T) {
		faqRepo := repoMocks.NewFAQRepositoryMock()
		faqService := service.NewFAQService(faqRepo)

		faqRepo.On("ListByCategory", ctx, "shipping").Return([]*model.FAQ{}, nil).Once()

		group, err := faqService.ListByCategory(ctx, "shipping")

		require.NoError(t, err)
		assert.Equal(t, "shipping", group.Title)
		assert.NotNil(t, group.Items)
		assert.Empty(t, group.Items)
	})
}

func TestFAQService_Search(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		faqRepo := repoMocks.NewFAQRepositoryMock()
		faqService := service.NewFAQService(faqRepo)

		faqRepo.On("Search", ctx, "refund").Return([]*model.FAQ{
			{ID: 3, Question: "Can I get a refund?", Answer: "No refunds after payment.", Category: "payment"},
		}, nil).Once()

		groups, err := faqService.Search(ctx, "refund")

		require.NoError(t, err)
		require.Len(t, groups, 1)
		assert.Equal(t, "payment", groups[0].Title)
	})

	t.Run("Failed - EmptyQuery", func(t *testing.T) {
		faqRepo := repoMocks.NewFAQRepositoryMock()
		faqService := service.NewFAQService(faqRepo)

		_, err := faqService.Search(ctx, "")

		require.Error(t, err)
		assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
		assert.EqualError(t, err, "Search query is required")
		faqRepo.AssertNotCalled(t, "Search")
	})
}

func TestFAQService_Create(t *testing.T) {
	ctx := context.Background()

	req := model.CreateFAQRequest{
		Question: "How do I book?",
		Answer:   "Use the booking page.",
		Category: "booking",
	}

	t.Run("Success - Admin", func(t *testing.T) {
		faqRepo := repoMocks.NewFAQRepositoryMock()
		faqService := service.NewFAQService(faqRepo)

		faqRepo.On("Create", ctx, &model.FAQ{
			Question: req.Question,
			Answer:   req.Answer,
			Category: req.Category,
		}).Return(&model.FAQ{ID: 1, Question: req.Question, Answer: req.Answer, Category: req.Category}, nil).Once()

		faq, err := faqService.Create(ctx, req, model.AuthUser{ID: 1, Role: model.UserRoleAdmin})

		require.NoError(t, err)
		assert.Equal(t, 1, faq.ID)
	})

	t.Run("Failed - NonAdmin", func(t *testing.T) {
		faqRepo := repoMocks.NewFAQRepositoryMock()
		faqService := service.NewFAQService(faqRepo)

		_, err := faqService.Create(ctx, req, model.AuthUser{ID: 7})

		assert.Equal(t, apperrors.KindAuthorization, apperrors.KindOf(err))
		assert.EqualError(t, err, "Only administrators can create FAQs")
		faqRepo.AssertNotCalled(t, "Create")
	})
}

func TestFAQService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Admin", func(t *testing.T) {
		faqRepo := repoMocks.NewFAQRepositoryMock()
		faqService := service.NewFAQService(faqRepo)

		faqRepo.On("Delete", ctx, 1).Return(nil).Once()

		err := faqService.Delete(ctx, 1, model.AuthUser{ID: 1, Role: model.UserRoleAdmin})
		require.NoError(t, err)
	})

	t.Run("Failed - NotFound", func(t *testing.T) {
		faqRepo := repoMocks.NewFAQRepositoryMock()
		faqService := service.NewFAQService(faqRepo)

		faqRepo.On("Delete", ctx, 99).Return(apperrors.ErrFAQNotFound).Once()

		err := faqService.Delete(ctx, 99, model.AuthUser{ID: 1, Role: model.UserRoleAdmin})
		assert.ErrorIs(t, err, apperrors.ErrFAQNotFound)
	})

	t.Run("Failed - NonAdmin", func(t *testing.T) {
		faqRepo := repoMocks.NewFAQRepositoryMock()
		faqService := service.NewFAQService(faqRepo)

		err := faqService.Delete(ctx, 1, model.AuthUser{ID: 7})

		assert.Equal(t, apperrors.KindAuthorization, apperrors.KindOf(err))
		faqRepo.AssertNotCalled(t, "Delete")
	})
}
