package handler

import (
	"net/http"
	"strconv"

	"go-event-management/internal/model"
	"go-event-management/internal/service"

	"github.com/gin-gonic/gin"
)

type GuestHandler struct {
	service service.GuestService
}

func NewGuestHandler(service service.GuestService) *GuestHandler {
	return &GuestHandler{service: service}
}

func (h *GuestHandler) RegisterRoutes(r *gin.Engine, auth gin.HandlerFunc) {
	router := r.Group("/api/v1")
	router.Use(auth)
	{
		router.POST("guests", h.Add)
		router.GET("events/:id/guests", h.ListByEvent)
		router.GET("events/:id/guests/qrcodes", h.QRCodes)
		router.PUT("guests/:id", h.Update)
		router.DELETE("guests/:id", h.Delete)
	}
}

func (h *GuestHandler) Add(c *gin.Context) {
	var req model.AddGuestRequest
	if err := BindJsonFields(c, &req); err != nil {
		return
	}

	guest, err := h.service.Add(c, req)
	if err != nil {
		respondError(c, err, "AddGuest")
		return
	}

	c.JSON(http.StatusCreated, guest)
}

func (h *GuestHandler) ListByEvent(c *gin.Context) {
	eventID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event id"})
		return
	}

	guests, err := h.service.ListByEvent(c, eventID)
	if err != nil {
		respondError(c, err, "ListGuests")
		return
	}

	c.JSON(http.StatusOK, guests)
}

func (h *GuestHandler) QRCodes(c *gin.Context) {
	eventID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event id"})
		return
	}

	codes, err := h.service.QRCodes(c, eventID)
	if err != nil {
		respondError(c, err, "GuestQRCodes")
		return
	}

	c.JSON(http.StatusOK, codes)
}

func (h *GuestHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid guest id"})
		return
	}

	var params model.UpdateGuestParams
	if err := BindJson(c, &params); err != nil {
		return
	}

	guest, err := h.service.Update(c, id, params)
	if err != nil {
		respondError(c, err, "UpdateGuest")
		return
	}

	c.JSON(http.StatusOK, guest)
}

func (h *GuestHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid guest id"})
		return
	}

	if err := h.service.Delete(c, id); err != nil {
		respondError(c, err, "DeleteGuest")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
