package model

import "time"

// Event 活動模型。EventDate 格式 YYYY-MM-DD、EventTime 格式 HH:MM（24 小時制）
type Event struct {
	ID          int       `json:"id" db:"id"`
	Title       string    `json:"event_title" db:"event_title"`
	Type        string    `json:"event_type" db:"event_type"`
	EventDate   string    `json:"event_date" db:"event_date"`
	EventTime   string    `json:"event_time" db:"event_time"`
	MaxCapacity int       `json:"max_capacity" db:"max_capacity"`
	LocationID  string    `json:"location_id" db:"location_id"`
	VenueID     int       `json:"venue_id" db:"venue_id"`
	UserID      int       `json:"user_id" db:"user_id"`
	IsPrivate   bool      `json:"is_private" db:"is_private"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

type CreateEventRequest struct {
	Title       string `json:"eventTitle" binding:"required"`
	Type        string `json:"eventType" binding:"required,oneof=wedding engagement birthday seminar workshop"`
	EventDate   string `json:"eventDate" binding:"required"`
	EventTime   string `json:"eventTime" binding:"required"`
	MaxCapacity int    `json:"maxCapacity" binding:"required,gt=0"`
	LocationID  string `json:"locationId" binding:"required"`
	VenueID     int    `json:"venueId" binding:"required"`
	IsPrivate   *bool  `json:"isPrivate" binding:"required"`
}

type UpdateEventParams struct {
	Title       *string `json:"eventTitle"`
	Type        *string `json:"eventType"`
	EventDate   *string `json:"eventDate"`
	EventTime   *string `json:"eventTime"`
	MaxCapacity *int    `json:"maxCapacity"`
	VenueID     *int    `json:"venueId"`
	IsPrivate   *bool   `json:"isPrivate"`
}

// EventFilter 活動查詢條件（分頁 + 排序）
type EventFilter struct {
	Type        string `form:"eventType"`
	Title       string `form:"eventTitle"`
	MinDate     string `form:"minDate"`
	MaxDate     string `form:"maxDate"`
	MaxCapacity int    `form:"maxCapacity"`
	LocationID  string `form:"locationId"`
	VenueID     int    `form:"venueId"`
	Page        int    `form:"page"`
	PageSize    int    `form:"pageSize"`
	SortBy      string `form:"sortBy" binding:"omitempty,oneof=event_date max_capacity"`
	SortOrder   string `form:"sortOrder" binding:"omitempty,oneof=asc desc"`
}

// EventResponse 建立活動成功的回應格式
type EventResponse struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Capacity  int    `json:"capacity"`
	Venue     int    `json:"venue"`
	IsPrivate bool   `json:"isPrivate"`
	CreatedAt string `json:"createdAt"`
}

func (e *Event) ToResponse() *EventResponse {
	return &EventResponse{
		ID:        e.ID,
		Title:     e.Title,
		Date:      e.EventDate,
		Time:      e.EventTime,
		Capacity:  e.MaxCapacity,
		Venue:     e.VenueID,
		IsPrivate: e.IsPrivate,
		CreatedAt: e.CreatedAt.UTC().Format(time.RFC3339),
	}
}
