package model

import "time"

// FAQ 常見問題，category 為前台分組依據
type FAQ struct {
	ID        int       `json:"id" db:"id"`
	Question  string    `json:"question" db:"question"`
	Answer    string    `json:"answer" db:"answer"`
	Category  string    `json:"category" db:"category"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type CreateFAQRequest struct {
	Question string `json:"question" binding:"required"`
	Answer   string `json:"answer" binding:"required"`
	Category string `json:"category" binding:"required"`
}

type UpdateFAQParams struct {
	Question *string `json:"question"`
	Answer   *string `json:"answer"`
	Category *string `json:"category"`
}

type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
}

// FAQCategoryGroup 依分類分組後的問答，Title 即分類名稱
type FAQCategoryGroup struct {
	Title string    `json:"title"`
	Items []FAQItem `json:"items"`
}
