package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Venue struct {
	ID          int             `json:"id" db:"id"`
	Name        string          `json:"name" db:"name"`
	LocationID  string          `json:"location_id" db:"location_id"`
	Capacity    int             `json:"capacity" db:"capacity"`
	Price       decimal.Decimal `json:"price" db:"price"`
	ImageURL    *string         `json:"image_url,omitempty" db:"image_url"`
	Description string          `json:"description" db:"description"`
	UserID      int             `json:"user_id" db:"user_id"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
}

type CreateVenueRequest struct {
	Name        string          `json:"name" binding:"required"`
	LocationID  string          `json:"locationId" binding:"required"`
	Capacity    int             `json:"capacity" binding:"required,gt=0"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	ImageURL    *string         `json:"imageUrl"`
	Description string          `json:"description"`
}

type UpdateVenueParams struct {
	Name        *string          `json:"name"`
	Capacity    *int             `json:"capacity"`
	Price       *decimal.Decimal `json:"price"`
	ImageURL    *string          `json:"imageUrl"`
	Description *string          `json:"description"`
}

// VenueFilter 場地查詢條件
type VenueFilter struct {
	MinCapacity *int             `form:"minCapacity"`
	MaxPrice    *decimal.Decimal `form:"maxPrice"`
}

type VenueListResponse struct {
	Data  []*Venue `json:"data"`
	Count int      `json:"count"`
}
