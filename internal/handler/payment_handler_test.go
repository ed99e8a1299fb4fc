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
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupPaymentTestRouter(mockService *mocks.PaymentServiceMock, user model.AuthUser) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	paymentHandler := handler.NewPaymentHandler(mockService)
	paymentHandler.RegisterRoutes(router, asUser(user))

	return router
}

func TestConfirmPayment(t *testing.T) {
	user := model.AuthUser{ID: 7}

	validBody := map[string]interface{}{
		"bookingId": 1,
		"userId":    7,
		"amount":    "500",
		"method":    "credit",
	}

	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewPaymentServiceMock()
		router := setupPaymentTestRouter(mockService, user)

		mockService.On("ConfirmWithPayment", mock.Anything, mock.Anything).
			Return(&model.ConfirmPaymentResponse{
				Booking: &model.Booking{ID: 1, Status: model.BookingStatusConfirmed},
				Payment: &model.Payment{ID: 3, Status: model.PaymentStatusPaid},
			}, nil).Once()

		req := createJSONHTTPRequest("POST", "/api/v1/payments/confirm", validBody)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "Booking confirmed and payment created successfully.")
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - NegativeAmount", func(t *testing.T) {
		mockService := mocks.NewPaymentServiceMock()
		router := setupPaymentTestRouter(mockService, user)

		mockService.On("ConfirmWithPayment", mock.Anything, mock.MatchedBy(func(req model.ConfirmPaymentRequest) bool {
			return req.Amount.Equal(decimal.NewFromInt(-500))
		})).Return(nil, apperrors.New(apperrors.KindValidation, "Amount must be positive.")).Once()

		body := map[string]interface{}{
			"bookingId": 1,
			"userId":    7,
			"amount":    "-500",
			"method":    "credit",
		}

		req := createJSONHTTPRequest("POST", "/api/v1/payments/confirm", body)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Amount must be positive.")
	})

	t.Run("Failed - InvalidMethod", func(t *testing.T) {
		mockService := mocks.NewPaymentServiceMock()
		router := setupPaymentTestRouter(mockService, user)

		body := map[string]interface{}{
			"bookingId": 1,
			"userId":    7,
			"amount":    "500",
			"method":    "bitcoin",
		}

		req := createJSONHTTPRequest("POST", "/api/v1/payments/confirm", body)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "ConfirmWithPayment")
	})

	t.Run("Failed - BookingNotFound", func(t *testing.T) {
		mockService := mocks.NewPaymentServiceMock()
		router := setupPaymentTestRouter(mockService, user)

		mockService.On("ConfirmWithPayment", mock.Anything, mock.Anything).
			Return(nil, apperrors.ErrBookingNotFound).Once()

		req := createJSONHTTPRequest("POST", "/api/v1/payments/confirm", validBody)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
