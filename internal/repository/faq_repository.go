package repository

import (
	"context"
	"fmt"

	"go-event-management/internal/model"
	"go-event-management/pkg/apperrors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FAQRepository interface {
	Create(ctx context.Context, faq *model.FAQ) (*model.FAQ, error)
	// List 依分類、建立順序排序，方便 service 直接分組
	List(ctx context.Context) ([]*model.FAQ, error)
	ListByCategory(ctx context.Context, category string) ([]*model.FAQ, error)
	Search(ctx context.Context, query string) ([]*model.FAQ, error)
	Update(ctx context.Context, id int, params model.UpdateFAQParams) (*model.FAQ, error)
	Delete(ctx context.Context, id int) error
}

type FAQRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewFAQRepository(pool *pgxpool.Pool) FAQRepository {
	return &FAQRepositoryImpl{
		pool: pool,
	}
}

const faqColumns = `id, question, answer, category, created_at`

func scanFAQ(row pgx.Row) (*model.FAQ, error) {
	var faq model.FAQ
	err := row.Scan(
		&faq.ID,
		&faq.Question,
		&faq.Answer,
		&faq.Category,
		&faq.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &faq, nil
}

func collectFAQs(rows pgx.Rows) ([]*model.FAQ, error) {
	var faqs []*model.FAQ
	for rows.Next() {
		faq, err := scanFAQ(rows)
		if err != nil {
			return nil, err
		}
		faqs = append(faqs, faq)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return faqs, nil
}

func (r *FAQRepositoryImpl) Create(ctx context.Context, faq *model.FAQ) (*model.FAQ, error) {
	query := `
		INSERT INTO faqs (question, answer, category)
		VALUES ($1, $2, $3)
		RETURNING ` + faqColumns

	created, err := scanFAQ(r.pool.QueryRow(ctx, query, faq.Question, faq.Answer, faq.Category))
	if err != nil {
		return nil, fmt.Errorf("failed to create faq: %w", err)
	}

	return created, nil
}

func (r *FAQRepositoryImpl) List(ctx context.Context) ([]*model.FAQ, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+faqColumns+` FROM faqs ORDER BY category, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectFAQs(rows)
}

func (r *FAQRepositoryImpl) ListByCategory(ctx context.Context, category string) ([]*model.FAQ, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+faqColumns+` FROM faqs WHERE category = $1 ORDER BY id`, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectFAQs(rows)
}

func (r *FAQRepositoryImpl) Search(ctx context.Context, query string) ([]*model.FAQ, error) {
	pattern := "%" + query + "%"
	rows, err := r.pool.Query(ctx,
		`SELECT `+faqColumns+` FROM faqs WHERE question ILIKE $1 OR answer ILIKE $1 ORDER BY category, id`,
		pattern,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectFAQs(rows)
}

func (r *FAQRepositoryImpl) Update(ctx context.Context, id int, params model.UpdateFAQParams) (*model.FAQ, error) {
	query := `
		UPDATE faqs
		SET question = COALESCE($1, question),
		    answer   = COALESCE($2, answer),
		    category = COALESCE($3, category)
		WHERE id = $4
		RETURNING ` + faqColumns

	faq, err := scanFAQ(r.pool.QueryRow(ctx, query, params.Question, params.Answer, params.Category, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrFAQNotFound
		}
		return nil, fmt.Errorf("failed to update faq: %w", err)
	}

	return faq, nil
}

func (r *FAQRepositoryImpl) Delete(ctx context.Context, id int) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM faqs WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrFAQNotFound
	}

	return nil
}
