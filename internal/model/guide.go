package model

import "time"

// Guide 使用指南文章，僅 admin 可維護
type Guide struct {
	ID          int       `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Content     string    `json:"content" db:"content"`
	Category    string    `json:"category" db:"category"`
	AuthorID    int       `json:"author_id" db:"author_id"`
	IsPublished bool      `json:"is_published" db:"is_published"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

type GuideCategory struct {
	ID          int       `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description *string   `json:"description,omitempty" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

type CreateGuideRequest struct {
	Title       string `json:"title" binding:"required,min=5,max=200"`
	Content     string `json:"content" binding:"required,min=50"`
	Category    string `json:"category" binding:"required"`
	IsPublished *bool  `json:"is_published"`
}

type UpdateGuideParams struct {
	Title       *string `json:"title"`
	Content     *string `json:"content"`
	Category    *string `json:"category"`
	IsPublished *bool   `json:"is_published"`
}

// GuideFilter 指南查詢條件，search 同時比對標題與內文
type GuideFilter struct {
	Category string `form:"category"`
	Search   string `form:"search"`
	Limit    int    `form:"limit"`
	Offset   int    `form:"offset"`
}

type CreateGuideCategoryRequest struct {
	Name        string  `json:"name" binding:"required,min=2,max=50"`
	Description *string `json:"description" binding:"omitempty,max=500"`
}

type UpdateGuideCategoryParams struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}
