package repository

import (
	"context"
	"fmt"
	"strings"

	"go-event-management/internal/model"
	"go-event-management/pkg/apperrors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type GuideRepository interface {
	Create(ctx context.Context, guide *model.Guide) (*model.Guide, error)
	FindByID(ctx context.Context, id int) (*model.Guide, error)
	List(ctx context.Context, filter model.GuideFilter) ([]*model.Guide, error)
	Update(ctx context.Context, id int, params model.UpdateGuideParams) (*model.Guide, error)
	Delete(ctx context.Context, id int) error

	ListCategories(ctx context.Context) ([]*model.GuideCategory, error)
	CreateCategory(ctx context.Context, category *model.GuideCategory) (*model.GuideCategory, error)
	UpdateCategory(ctx context.Context, id int, params model.UpdateGuideCategoryParams) (*model.GuideCategory, error)
	DeleteCategory(ctx context.Context, id int) error
}

type GuideRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewGuideRepository(pool *pgxpool.Pool) GuideRepository {
	return &GuideRepositoryImpl{
		pool: pool,
	}
}

const guideColumns = `id, title, content, category, author_id, is_published, created_at, updated_at`
const guideCategoryColumns = `id, name, description, created_at`

func scanGuide(row pgx.Row) (*model.Guide, error) {
	var guide model.Guide
	err := row.Scan(
		&guide.ID,
		&guide.Title,
		&guide.Content,
		&guide.Category,
		&guide.AuthorID,
		&guide.IsPublished,
		&guide.CreatedAt,
		&guide.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &guide, nil
}

func scanGuideCategory(row pgx.Row) (*model.GuideCategory, error) {
	var category model.GuideCategory
	err := row.Scan(
		&category.ID,
		&category.Name,
		&category.Description,
		&category.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *GuideRepositoryImpl) Create(ctx context.Context, guide *model.Guide) (*model.Guide, error) {
	query := `
		INSERT INTO guides (title, content, category, author_id, is_published)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + guideColumns

	created, err := scanGuide(r.pool.QueryRow(ctx, query,
		guide.Title, guide.Content, guide.Category, guide.AuthorID, guide.IsPublished,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create guide: %w", err)
	}

	return created, nil
}

func (r *GuideRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Guide, error) {
	query := `SELECT ` + guideColumns + ` FROM guides WHERE id = $1`

	guide, err := scanGuide(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrGuideNotFound
		}
		return nil, err
	}

	return guide, nil
}

func (r *GuideRepositoryImpl) List(ctx context.Context, filter model.GuideFilter) ([]*model.Guide, error) {
	var (
		conditions []string
		args       []interface{}
	)

	if filter.Category != "" {
		args = append(args, filter.Category)
		conditions = append(conditions, fmt.Sprintf("category = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		conditions = append(conditions, fmt.Sprintf("(title ILIKE $%d OR content ILIKE $%d)", len(args), len(args)))
	}

	query := `SELECT ` + guideColumns + ` FROM guides`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC"

	limit := filter.Limit
	if limit < 1 {
		limit = 50
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}
	args = append(args, limit, offset)
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var guides []*model.Guide
	for rows.Next() {
		guide, err := scanGuide(rows)
		if err != nil {
			return nil, err
		}
		guides = append(guides, guide)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return guides, nil
}

func (r *GuideRepositoryImpl) Update(ctx context.Context, id int, params model.UpdateGuideParams) (*model.Guide, error) {
	query := `
		UPDATE guides
		SET title        = COALESCE($1, title),
		    content      = COALESCE($2, content),
		    category     = COALESCE($3, category),
		    is_published = COALESCE($4, is_published),
		    updated_at   = NOW()
		WHERE id = $5
		RETURNING ` + guideColumns

	guide, err := scanGuide(r.pool.QueryRow(ctx, query,
		params.Title, params.Content, params.Category, params.IsPublished, id,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrGuideNotFound
		}
		return nil, fmt.Errorf("failed to update guide: %w", err)
	}

	return guide, nil
}

func (r *GuideRepositoryImpl) Delete(ctx context.Context, id int) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM guides WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrGuideNotFound
	}

	return nil
}

func (r *GuideRepositoryImpl) ListCategories(ctx context.Context) ([]*model.GuideCategory, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+guideCategoryColumns+` FROM guide_categories ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []*model.GuideCategory
	for rows.Next() {
		category, err := scanGuideCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}

func (r *GuideRepositoryImpl) CreateCategory(ctx context.Context, category *model.GuideCategory) (*model.GuideCategory, error) {
	query := `
		INSERT INTO guide_categories (name, description)
		VALUES ($1, $2)
		RETURNING ` + guideCategoryColumns

	created, err := scanGuideCategory(r.pool.QueryRow(ctx, query, category.Name, category.Description))
	if err != nil {
		return nil, fmt.Errorf("failed to create guide category: %w", err)
	}

	return created, nil
}

func (r *GuideRepositoryImpl) UpdateCategory(ctx context.Context, id int, params model.UpdateGuideCategoryParams) (*model.GuideCategory, error) {
	query := `
		UPDATE guide_categories
		SET name        = COALESCE($1, name),
		    description = COALESCE($2, description)
		WHERE id = $3
		RETURNING ` + guideCategoryColumns

	category, err := scanGuideCategory(r.pool.QueryRow(ctx, query, params.Name, params.Description, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrGuideCategoryNotFound
		}
		return nil, fmt.Errorf("failed to update guide category: %w", err)
	}

	return category, nil
}

func (r *GuideRepositoryImpl) DeleteCategory(ctx context.Context, id int) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM guide_categories WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrGuideCategoryNotFound
	}

	return nil
}
