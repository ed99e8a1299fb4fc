package service

import (
	"context"

	"go-event-management/internal/model"
	"go-event-management/internal/repository"
	"go-event-management/pkg/apperrors"
)

type FAQService interface {
	// List 回傳依分類分組的全部問答
	List(ctx context.Context) ([]model.FAQCategoryGroup, error)
	ListByCategory(ctx context.Context, category string) (*model.FAQCategoryGroup, error)
	Search(ctx context.Context, query string) ([]model.FAQCategoryGroup, error)
	Create(ctx context.Context, req model.CreateFAQRequest, requester model.AuthUser) (*model.FAQ, error)
	Update(ctx context.Context, id int, params model.UpdateFAQParams, requester model.AuthUser) (*model.FAQ, error)
	Delete(ctx context.Context, id int, requester model.AuthUser) error
}

type FAQServiceImpl struct {
	repo repository.FAQRepository
}

func NewFAQService(repo repository.FAQRepository) FAQService {
	return &FAQServiceImpl{repo: repo}
}

func (s *FAQServiceImpl) List(ctx context.Context) ([]model.FAQCategoryGroup, error) {
	faqs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return groupByCategory(faqs), nil
}

func (s *FAQServiceImpl) ListByCategory(ctx context.Context, category string) (*model.FAQCategoryGroup, error) {
	faqs, err := s.repo.ListByCategory(ctx, category)
	if err != nil {
		return nil, err
	}

	group := model.FAQCategoryGroup{Title: category, Items: []model.FAQItem{}}
	for _, faq := range faqs {
		group.Items = append(group.Items, toFAQItem(faq))
	}

	return &group, nil
}

func (s *FAQServiceImpl) Search(ctx context.Context, query string) ([]model.FAQCategoryGroup, error) {
	if query == "" {
		return nil, apperrors.New(apperrors.KindValidation, "Search query is required")
	}

	faqs, err := s.repo.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	return groupByCategory(faqs), nil
}

func (s *FAQServiceImpl) Create(ctx context.Context, req model.CreateFAQRequest, requester model.AuthUser) (*model.FAQ, error) {
	if !requester.IsAdmin() {
		return nil, apperrors.New(apperrors.KindAuthorization, "Only administrators can create FAQs")
	}

	return s.repo.Create(ctx, &model.FAQ{
		Question: req.Question,
		Answer:   req.Answer,
		Category: req.Category,
	})
}

func (s *FAQServiceImpl) Update(ctx context.Context, id int, params model.UpdateFAQParams, requester model.AuthUser) (*model.FAQ, error) {
	if !requester.IsAdmin() {
		return nil, apperrors.New(apperrors.KindAuthorization, "Only administrators can update FAQs")
	}

	return s.repo.Update(ctx, id, params)
}

func (s *FAQServiceImpl) Delete(ctx context.Context, id int, requester model.AuthUser) error {
	if !requester.IsAdmin() {
		return apperrors.New(apperrors.KindAuthorization, "Only administrators can delete FAQs")
	}

	return s.repo.Delete(ctx, id)
}

// groupByCategory 依分類收攏問答，repo 已按分類排序，依序掃過即可保持穩定順序
func groupByCategory(faqs []*model.FAQ) []model.FAQCategoryGroup {
	groups := []model.FAQCategoryGroup{}
	index := map[string]int{}

	for _, faq := range faqs {
		i, ok := index[faq.Category]
		if !ok {
			i = len(groups)
			index[faq.Category] = i
			groups = append(groups, model.FAQCategoryGroup{Title: faq.Category})
		}
		groups[i].Items = append(groups[i].Items, toFAQItem(faq))
	}

	return groups
}

func toFAQItem(faq *model.FAQ) model.FAQItem {
	return model.FAQItem{
		Question: faq.Question,
		Answer:   faq.Answer,
		Category: faq.Category,
	}
}
