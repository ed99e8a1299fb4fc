package service

import (
	"context"
	"errors"
	"time"

	"go-event-management/config"
	"go-event-management/internal/model"
	"go-event-management/internal/repository"
	"go-event-management/pkg/apperrors"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	SignUp(ctx context.Context, req model.SignUpRequest) (*model.User, error)
	Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error)
	Profile(ctx context.Context, userID int) (*model.User, error)
}

type AuthServiceImpl struct {
	repo repository.UserRepository
	cfg  config.AuthConfig
	now  func() time.Time
}

func NewAuthService(repo repository.UserRepository, cfg config.AuthConfig) AuthService {
	return &AuthServiceImpl{repo: repo, cfg: cfg, now: time.Now}
}

func (s *AuthServiceImpl) SignUp(ctx context.Context, req model.SignUpRequest) (*model.User, error) {
	_, err := s.repo.FindByEmail(ctx, req.Email)
	if err == nil {
		return nil, apperrors.ErrEmailTaken
	}
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cfg.BcryptCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		FirstName:    req.FirstName,
		SecondName:   req.SecondName,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: string(hash),
		Role:         model.UserRoleUser,
	}

	return s.repo.Create(ctx, user)
}

func (s *AuthServiceImpl) Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error) {
	user, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}

	return &model.LoginResponse{AccessToken: token, User: user}, nil
}

func (s *AuthServiceImpl) Profile(ctx context.Context, userID int) (*model.User, error) {
	return s.repo.FindByID(ctx, userID)
}

func (s *AuthServiceImpl) issueToken(user *model.User) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"role":  string(user.Role),
		"iat":   now.Unix(),
		"exp":   now.Add(time.Duration(s.cfg.AccessTTLMin) * time.Minute).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
