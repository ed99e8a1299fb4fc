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

type EventRepository interface {
	Create(ctx context.Context, event *model.Event) (*model.Event, error)
	FindByID(ctx context.Context, id int) (*model.Event, error)
	ListByUserID(ctx context.Context, userID int) ([]*model.Event, error)
	Filter(ctx context.Context, filter model.EventFilter) ([]*model.Event, error)
	Update(ctx context.Context, id int, params model.UpdateEventParams) (*model.Event, error)
	Delete(ctx context.Context, id int) error
	// CountByVenueSlot 同一場地同一日期時間的活動數，用於偵測檔期衝突
	CountByVenueSlot(ctx context.Context, venueID int, date, clock string) (int, error)
}

type EventRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) EventRepository {
	return &EventRepositoryImpl{
		pool: pool,
	}
}

const eventColumns = `id, event_title, event_type, event_date, event_time, max_capacity,
	   location_id, venue_id, user_id, is_private, created_at`

func scanEvent(row pgx.Row) (*model.Event, error) {
	var event model.Event
	err := row.Scan(
		&event.ID,
		&event.Title,
		&event.Type,
		&event.EventDate,
		&event.EventTime,
		&event.MaxCapacity,
		&event.LocationID,
		&event.VenueID,
		&event.UserID,
		&event.IsPrivate,
		&event.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *EventRepositoryImpl) Create(ctx context.Context, event *model.Event) (*model.Event, error) {
	query := `
		INSERT INTO events (
			event_title, event_type, event_date, event_time, max_capacity,
			location_id, venue_id, user_id, is_private
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + eventColumns

	created, err := scanEvent(r.pool.QueryRow(ctx, query,
		event.Title, event.Type, event.EventDate, event.EventTime, event.MaxCapacity,
		event.LocationID, event.VenueID, event.UserID, event.IsPrivate,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	return created, nil
}

func (r *EventRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	event, err := scanEvent(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}

	return event, nil
}

func (r *EventRepositoryImpl) ListByUserID(ctx context.Context, userID int) ([]*model.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE user_id = $1 ORDER BY event_date, event_time`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectEvents(rows)
}

func (r *EventRepositoryImpl) Filter(ctx context.Context, filter model.EventFilter) ([]*model.Event, error) {
	var (
		conditions []string
		args       []interface{}
	)

	addCondition := func(clause string, value interface{}) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(clause, len(args)))
	}

	if filter.Type != "" {
		addCondition("event_type = $%d", filter.Type)
	}
	if filter.Title != "" {
		addCondition("event_title ILIKE $%d", "%"+filter.Title+"%")
	}
	if filter.MinDate != "" {
		addCondition("event_date >= $%d", filter.MinDate)
	}
	if filter.MaxDate != "" {
		addCondition("event_date <= $%d", filter.MaxDate)
	}
	if filter.MaxCapacity > 0 {
		addCondition("max_capacity <= $%d", filter.MaxCapacity)
	}
	if filter.LocationID != "" {
		addCondition("location_id = $%d", filter.LocationID)
	}
	if filter.VenueID > 0 {
		addCondition("venue_id = $%d", filter.VenueID)
	}

	query := `SELECT ` + eventColumns + ` FROM events`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	sortBy := filter.SortBy
	if sortBy == "" {
		sortBy = "event_date"
	}
	sortOrder := "ASC"
	if filter.SortOrder == "desc" {
		sortOrder = "DESC"
	}
	// sortBy 已由 EventFilter 的 oneof 綁定規則限制為合法欄位名
	query += fmt.Sprintf(" ORDER BY %s %s", sortBy, sortOrder)

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

	return collectEvents(rows)
}

func (r *EventRepositoryImpl) Update(ctx context.Context, id int, params model.UpdateEventParams) (*model.Event, error) {
	query := `
		UPDATE events
		SET event_title  = COALESCE($1, event_title),
		    event_type   = COALESCE($2, event_type),
		    event_date   = COALESCE($3, event_date),
		    event_time   = COALESCE($4, event_time),
		    max_capacity = COALESCE($5, max_capacity),
		    venue_id     = COALESCE($6, venue_id),
		    is_private   = COALESCE($7, is_private)
		WHERE id = $8
		RETURNING ` + eventColumns

	event, err := scanEvent(r.pool.QueryRow(ctx, query,
		params.Title, params.Type, params.EventDate, params.EventTime,
		params.MaxCapacity, params.VenueID, params.IsPrivate, id,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to update event: %w", err)
	}

	return event, nil
}

func (r *EventRepositoryImpl) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM events WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}

	return nil
}

func (r *EventRepositoryImpl) CountByVenueSlot(ctx context.Context, venueID int, date, clock string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM events
		WHERE venue_id = $1 AND event_date = $2 AND event_time = $3
	`

	var count int
	err := r.pool.QueryRow(ctx, query, venueID, date, clock).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}

func collectEvents(rows pgx.Rows) ([]*model.Event, error) {
	var events []*model.Event

	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
