package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go-event-management/internal/model"
	"go-event-management/pkg/apperrors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BusinessRepository interface {
	Create(ctx context.Context, business *model.Business) (*model.Business, error)
	FindByID(ctx context.Context, id int) (*model.Business, error)
	// ExistsByEmail 同一 email 是否已註冊過商家
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ListByUserID(ctx context.Context, userID int) ([]*model.Business, error)
	List(ctx context.Context, filter model.BusinessFilter) ([]*model.Business, error)
	Update(ctx context.Context, id int, params model.UpdateBusinessParams) (*model.Business, error)
	UpdateStatus(ctx context.Context, id int, status model.BusinessStatus, approvedBy *int, approvedAt *time.Time) (*model.Business, error)
	Delete(ctx context.Context, id int) error
}

type BusinessRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewBusinessRepository(pool *pgxpool.Pool) BusinessRepository {
	return &BusinessRepositoryImpl{
		pool: pool,
	}
}

const businessColumns = `id, user_id, name, type, address, phone, email, description, website, social_media, status, approved_by, approved_at, created_at`

func scanBusiness(row pgx.Row) (*model.Business, error) {
	var business model.Business
	err := row.Scan(
		&business.ID,
		&business.UserID,
		&business.Name,
		&business.Type,
		&business.Address,
		&business.Phone,
		&business.Email,
		&business.Description,
		&business.Website,
		&business.SocialMedia,
		&business.Status,
		&business.ApprovedBy,
		&business.ApprovedAt,
		&business.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &business, nil
}

func collectBusinesses(rows pgx.Rows) ([]*model.Business, error) {
	var businesses []*model.Business
	for rows.Next() {
		business, err := scanBusiness(rows)
		if err != nil {
			return nil, err
		}
		businesses = append(businesses, business)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return businesses, nil
}

func (r *BusinessRepositoryImpl) Create(ctx context.Context, business *model.Business) (*model.Business, error) {
	query := `
		INSERT INTO businesses (user_id, name, type, address, phone, email, description, website, social_media, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + businessColumns

	created, err := scanBusiness(r.pool.QueryRow(ctx, query,
		business.UserID, business.Name, business.Type, business.Address, business.Phone,
		business.Email, business.Description, business.Website, business.SocialMedia, business.Status,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create business: %w", err)
	}

	return created, nil
}

func (r *BusinessRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Business, error) {
	query := `SELECT ` + businessColumns + ` FROM businesses WHERE id = $1`

	business, err := scanBusiness(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrBusinessNotFound
		}
		return nil, err
	}

	return business, nil
}

func (r *BusinessRepositoryImpl) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM businesses WHERE email = $1)`

	var exists bool
	err := r.pool.QueryRow(ctx, query, email).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}

func (r *BusinessRepositoryImpl) ListByUserID(ctx context.Context, userID int) ([]*model.Business, error) {
	query := `SELECT ` + businessColumns + ` FROM businesses WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectBusinesses(rows)
}

func (r *BusinessRepositoryImpl) List(ctx context.Context, filter model.BusinessFilter) ([]*model.Business, error) {
	var (
		conditions []string
		args       []interface{}
	)

	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.Type != "" {
		args = append(args, filter.Type)
		conditions = append(conditions, fmt.Sprintf("type = $%d", len(args)))
	}

	query := `SELECT ` + businessColumns + ` FROM businesses`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC"

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 10
	}
	args = append(args, pageSize, (page-1)*pageSize)
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectBusinesses(rows)
}

func (r *BusinessRepositoryImpl) Update(ctx context.Context, id int, params model.UpdateBusinessParams) (*model.Business, error) {
	query := `
		UPDATE businesses
		SET name         = COALESCE($1, name),
		    type         = COALESCE($2, type),
		    address      = COALESCE($3, address),
		    phone        = COALESCE($4, phone),
		    description  = COALESCE($5, description),
		    website      = COALESCE($6, website),
		    social_media = COALESCE($7, social_media)
		WHERE id = $8
		RETURNING ` + businessColumns

	business, err := scanBusiness(r.pool.QueryRow(ctx, query,
		params.Name, params.Type, params.Address, params.Phone,
		params.Description, params.Website, params.SocialMedia, id,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrBusinessNotFound
		}
		return nil, fmt.Errorf("failed to update business: %w", err)
	}

	return business, nil
}

func (r *BusinessRepositoryImpl) UpdateStatus(ctx context.Context, id int, status model.BusinessStatus, approvedBy *int, approvedAt *time.Time) (*model.Business, error) {
	query := `
		UPDATE businesses
		SET status      = $1,
		    approved_by = $2,
		    approved_at = $3
		WHERE id = $4
		RETURNING ` + businessColumns

	business, err := scanBusiness(r.pool.QueryRow(ctx, query, status, approvedBy, approvedAt, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrBusinessNotFound
		}
		return nil, fmt.Errorf("failed to update business status: %w", err)
	}

	return business, nil
}

func (r *BusinessRepositoryImpl) Delete(ctx context.Context, id int) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM businesses WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrBusinessNotFound
	}

	return nil
}
