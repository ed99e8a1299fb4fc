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

type VenueRepository interface {
	Create(ctx context.Context, venue *model.Venue) (*model.Venue, error)
	FindByID(ctx context.Context, id int) (*model.Venue, error)
	List(ctx context.Context, filter model.VenueFilter) ([]*model.Venue, int, error)
	Update(ctx context.Context, id int, params model.UpdateVenueParams) (*model.Venue, error)
	Delete(ctx context.Context, id int) error
}

type VenueRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewVenueRepository(pool *pgxpool.Pool) VenueRepository {
	return &VenueRepositoryImpl{
		pool: pool,
	}
}

const venueColumns = `id, name, location_id, capacity, price, image_url, description, user_id, created_at`

func scanVenue(row pgx.Row) (*model.Venue, error) {
	var venue model.Venue
	err := row.Scan(
		&venue.ID,
		&venue.Name,
		&venue.LocationID,
		&venue.Capacity,
		&venue.Price,
		&venue.ImageURL,
		&venue.Description,
		&venue.UserID,
		&venue.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &venue, nil
}

func (r *VenueRepositoryImpl) Create(ctx context.Context, venue *model.Venue) (*model.Venue, error) {
	query := `
		INSERT INTO venues (name, location_id, capacity, price, image_url, description, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + venueColumns

	created, err := scanVenue(r.pool.QueryRow(ctx, query,
		venue.Name, venue.LocationID, venue.Capacity, venue.Price,
		venue.ImageURL, venue.Description, venue.UserID,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create venue: %w", err)
	}

	return created, nil
}

func (r *VenueRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Venue, error) {
	query := `SELECT ` + venueColumns + ` FROM venues WHERE id = $1`

	venue, err := scanVenue(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrVenueNotFound
		}
		return nil, err
	}

	return venue, nil
}

func (r *VenueRepositoryImpl) List(ctx context.Context, filter model.VenueFilter) ([]*model.Venue, int, error) {
	var (
		conditions []string
		args       []interface{}
	)

	if filter.MinCapacity != nil {
		args = append(args, *filter.MinCapacity)
		conditions = append(conditions, fmt.Sprintf("capacity >= $%d", len(args)))
	}
	if filter.MaxPrice != nil {
		args = append(args, *filter.MaxPrice)
		conditions = append(conditions, fmt.Sprintf("price <= $%d", len(args)))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	rows, err := r.pool.Query(ctx, `SELECT `+venueColumns+` FROM venues`+where+` ORDER BY id`, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var venues []*model.Venue
	for rows.Next() {
		venue, err := scanVenue(rows)
		if err != nil {
			return nil, 0, err
		}
		venues = append(venues, venue)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM venues`+where, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	return venues, count, nil
}

func (r *VenueRepositoryImpl) Update(ctx context.Context, id int, params model.UpdateVenueParams) (*model.Venue, error) {
	query := `
		UPDATE venues
		SET name        = COALESCE($1, name),
		    capacity    = COALESCE($2, capacity),
		    price       = COALESCE($3, price),
		    image_url   = COALESCE($4, image_url),
		    description = COALESCE($5, description)
		WHERE id = $6
		RETURNING ` + venueColumns

	venue, err := scanVenue(r.pool.QueryRow(ctx, query,
		params.Name, params.Capacity, params.Price, params.ImageURL, params.Description, id,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrVenueNotFound
		}
		return nil, fmt.Errorf("failed to update venue: %w", err)
	}

	return venue, nil
}

func (r *VenueRepositoryImpl) Delete(ctx context.Context, id int) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM venues WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrVenueNotFound
	}

	return nil
}
