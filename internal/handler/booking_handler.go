package handler

import (
	"net/http"
	"strconv"

	"go-event-management/internal/middleware"
	"go-event-management/internal/model"
	"go-event-management/internal/monitoring"
	"go-event-management/internal/service"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service service.BookingService
}

func NewBookingHandler(service service.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) RegisterRoutes(r *gin.Engine, auth gin.HandlerFunc) {
	router := r.Group("/api/v1")
	router.Use(auth)
	{
		router.POST("bookings", h.Create)
		router.GET("bookings", h.ListMine)
		router.PUT("bookings/confirm/:bookingId", h.Confirm)
		router.DELETE("bookings/cancel/:bookingId", h.Cancel)
	}
}

func (h *BookingHandler) Create(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req model.CreateBookingRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	booking, err := h.service.Create(c, req.EventID, user.ID)
	if err != nil {
		respondError(c, err, "CreateBooking")
		return
	}

	c.JSON(http.StatusCreated, booking)
}

func (h *BookingHandler) ListMine(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	bookings, err := h.service.ListByUser(c, user.ID)
	if err != nil {
		respondError(c, err, "ListMyBookings")
		return
	}

	c.JSON(http.StatusOK, bookings)
}

func (h *BookingHandler) Confirm(c *gin.Context) {
	bookingID, err := strconv.Atoi(c.Param("bookingId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking id"})
		return
	}

	var req model.ConfirmBookingRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	booking, err := h.service.Confirm(c, bookingID, req.UserID)
	if err != nil {
		respondError(c, err, "ConfirmBooking")
		return
	}

	monitoring.IncBookingConfirmed()
	c.JSON(http.StatusOK, booking)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	bookingID, err := strconv.Atoi(c.Param("bookingId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking id"})
		return
	}

	if err := h.service.Cancel(c, bookingID); err != nil {
		respondError(c, err, "CancelBooking")
		return
	}

	monitoring.IncBookingCancelled()
	c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled successfully"})
}
