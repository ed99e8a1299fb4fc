package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go-event-management/internal/handler"
	"go-event-management/internal/model"
	"go-event-management/internal/service/mocks"
	"go-event-management/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupAuthTestRouter(mockService *mocks.AuthServiceMock, user model.AuthUser) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	noLimit := func(c *gin.Context) { c.Next() }

	authHandler := handler.NewAuthHandler(mockService)
	authHandler.RegisterRoutes(router, asUser(user), noLimit)

	return router
}

func TestSignUp(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewAuthServiceMock()
		router := setupAuthTestRouter(mockService, model.AuthUser{})

		mockService.On("SignUp", mock.Anything, mock.Anything).Return(&model.User{
			ID: 1, Email: "alice@example.com", Role: model.UserRoleUser,
		}, nil).Once()

		body := map[string]interface{}{
			"firstName":  "Alice",
			"secondName": "Smith",
			"email":      "alice@example.com",
			"password":   "password123",
		}

		req := createJSONHTTPRequest("POST", "/api/v1/users/signup", body)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - ShortPassword", func(t *testing.T) {
		mockService := mocks.NewAuthServiceMock()
		router := setupAuthTestRouter(mockService, model.AuthUser{})

		body := map[string]interface{}{
			"firstName":  "Alice",
			"secondName": "Smith",
			"email":      "alice@example.com",
			"password":   "short",
		}

		req := createJSONHTTPRequest("POST", "/api/v1/users/signup", body)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "SignUp")
	})

	t.Run("Failed - EmailTaken", func(t *testing.T) {
		mockService := mocks.NewAuthServiceMock()
		router := setupAuthTestRouter(mockService, model.AuthUser{})

		mockService.On("SignUp", mock.Anything, mock.Anything).Return(nil, apperrors.ErrEmailTaken).Once()

		body := map[string]interface{}{
			"firstName":  "Alice",
			"secondName": "Smith",
			"email":      "alice@example.com",
			"password":   "password123",
		}

		req := createJSONHTTPRequest("POST", "/api/v1/users/signup", body)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestLogin(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewAuthServiceMock()
		router := setupAuthTestRouter(mockService, model.AuthUser{})

		mockService.On("Login", mock.Anything, mock.Anything).Return(&model.LoginResponse{
			AccessToken: "token",
			User:        &model.User{ID: 1},
		}, nil).Once()

		body := map[string]interface{}{"email": "alice@example.com", "password": "password123"}

		req := createJSONHTTPRequest("POST", "/api/v1/users/login", body)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "accessToken")
	})

	t.Run("Failed - InvalidCredentials", func(t *testing.T) {
		mockService := mocks.NewAuthServiceMock()
		router := setupAuthTestRouter(mockService, model.AuthUser{})

		mockService.On("Login", mock.Anything, mock.Anything).
			Return(nil, apperrors.ErrInvalidCredentials).Once()

		body := map[string]interface{}{"email": "alice@example.com", "password": "wrong"}

		req := createJSONHTTPRequest("POST", "/api/v1/users/login", body)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestMe(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewAuthServiceMock()
		router := setupAuthTestRouter(mockService, model.AuthUser{ID: 7})

		mockService.On("Profile", mock.Anything, 7).Return(&model.User{ID: 7, Email: "alice@example.com"}, nil).Once()

		req := httptest.NewRequest("GET", "/api/v1/users/me", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockService.AssertExpectations(t)
	})
}
