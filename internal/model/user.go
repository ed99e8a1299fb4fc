package model

import "time"

type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

// User 使用者模型，PasswordHash 不對外輸出
type User struct {
	ID           int       `json:"id" db:"id"`
	FirstName    string    `json:"first_name" db:"first_name"`
	SecondName   string    `json:"second_name" db:"second_name"`
	Email        string    `json:"email" db:"email"`
	Phone        *string   `json:"phone,omitempty" db:"phone"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         UserRole  `json:"role" db:"role"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// AuthUser 由 bearer token 還原出的請求者身份
type AuthUser struct {
	ID    int      `json:"id"`
	Email string   `json:"email"`
	Role  UserRole `json:"role"`
}

func (u AuthUser) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}

type SignUpRequest struct {
	FirstName  string  `json:"firstName" binding:"required"`
	SecondName string  `json:"secondName" binding:"required"`
	Email      string  `json:"email" binding:"required,email"`
	Phone      *string `json:"phone"`
	Password   string  `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	AccessToken string `json:"accessToken"`
	User        *User  `json:"user"`
}
