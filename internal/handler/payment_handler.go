package handler

import (
	"net/http"

	"go-event-management/internal/model"
	"go-event-management/internal/monitoring"
	"go-event-management/internal/service"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	service service.PaymentService
}

func NewPaymentHandler(service service.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

func (h *PaymentHandler) RegisterRoutes(r *gin.Engine, auth gin.HandlerFunc) {
	router := r.Group("/api/v1")
	router.Use(auth)
	{
		router.POST("payments/confirm", h.Confirm)
	}
}

func (h *PaymentHandler) Confirm(c *gin.Context) {
	var req model.ConfirmPaymentRequest
	if err := BindJsonFields(c, &req); err != nil {
		return
	}

	result, err := h.service.ConfirmWithPayment(c, req)
	if err != nil {
		respondError(c, err, "ConfirmPayment")
		return
	}

	monitoring.IncBookingConfirmed()
	c.JSON(http.StatusCreated, gin.H{
		"message": "Booking confirmed and payment created successfully.",
		"data":    result,
	})
}
