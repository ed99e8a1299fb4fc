package model

import "time"

type BusinessStatus string

const (
	BusinessStatusPending  BusinessStatus = "pending"
	BusinessStatusApproved BusinessStatus = "approved"
	BusinessStatusRejected BusinessStatus = "rejected"
)

func (s BusinessStatus) IsValid() bool {
	switch s {
	case BusinessStatusPending, BusinessStatusApproved, BusinessStatusRejected:
		return true
	}
	return false
}

// Business 商家資料，註冊後為 pending，需 admin 審核通過才會 approved
type Business struct {
	ID          int            `json:"id" db:"id"`
	UserID      int            `json:"user_id" db:"user_id"`
	Name        string         `json:"name" db:"name"`
	Type        string         `json:"type" db:"type"`
	Address     string         `json:"address" db:"address"`
	Phone       string         `json:"phone" db:"phone"`
	Email       string         `json:"email" db:"email"`
	Description string         `json:"description" db:"description"`
	Website     *string        `json:"website,omitempty" db:"website"`
	SocialMedia *string        `json:"social_media,omitempty" db:"social_media"`
	Status      BusinessStatus `json:"status" db:"status"`
	ApprovedBy  *int           `json:"approved_by,omitempty" db:"approved_by"`
	ApprovedAt  *time.Time     `json:"approved_at,omitempty" db:"approved_at"`
	CreatedAt   time.Time      `json:"created_at" db:"created_at"`
}

type RegisterBusinessRequest struct {
	Name        string  `json:"name" binding:"required"`
	Type        string  `json:"type" binding:"required"`
	Address     string  `json:"address" binding:"required"`
	Phone       string  `json:"phone" binding:"required"`
	Email       string  `json:"email" binding:"required,email"`
	Description string  `json:"description" binding:"required"`
	Website     *string `json:"website"`
	SocialMedia *string `json:"socialMedia"`
}

type UpdateBusinessParams struct {
	Name        *string `json:"name"`
	Type        *string `json:"type"`
	Address     *string `json:"address"`
	Phone       *string `json:"phone"`
	Description *string `json:"description"`
	Website     *string `json:"website"`
	SocialMedia *string `json:"socialMedia"`
}

// BusinessFilter 商家列表查詢條件（admin 後台用）
type BusinessFilter struct {
	Status   string `form:"status" binding:"omitempty,oneof=pending approved rejected"`
	Type     string `form:"type"`
	Page     int    `form:"page"`
	PageSize int    `form:"pageSize"`
}

type UpdateBusinessStatusRequest struct {
	Status BusinessStatus `json:"status" binding:"required,oneof=approved rejected"`
}
