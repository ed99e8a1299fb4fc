package handler

import (
	"net/http"
	"strconv"

	"go-event-management/internal/middleware"
	"go-event-management/internal/model"
	"go-event-management/internal/service"

	"github.com/gin-gonic/gin"
)

type VenueHandler struct {
	service service.VenueService
}

func NewVenueHandler(service service.VenueService) *VenueHandler {
	return &VenueHandler{service: service}
}

func (h *VenueHandler) RegisterRoutes(r *gin.Engine, auth gin.HandlerFunc) {
	router := r.Group("/api/v1")
	router.Use(auth)
	{
		router.POST("venues", h.Create)
		router.GET("venues", h.List)
		router.GET("venues/:id", h.Get)
		router.PUT("venues/:id", h.Update)
		router.DELETE("venues/:id", h.Delete)
	}
}

func (h *VenueHandler) Create(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req model.CreateVenueRequest
	if err := BindJsonFields(c, &req); err != nil {
		return
	}

	venue, err := h.service.Create(c, req, user.ID)
	if err != nil {
		respondError(c, err, "CreateVenue")
		return
	}

	c.JSON(http.StatusCreated, venue)
}

func (h *VenueHandler) List(c *gin.Context) {
	var filter model.VenueFilter
	if err := BindQuery(c, &filter); err != nil {
		return
	}

	result, err := h.service.List(c, filter)
	if err != nil {
		respondError(c, err, "ListVenues")
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *VenueHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid venue id"})
		return
	}

	venue, err := h.service.GetByID(c, id)
	if err != nil {
		respondError(c, err, "GetVenue")
		return
	}

	c.JSON(http.StatusOK, venue)
}

func (h *VenueHandler) Update(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid venue id"})
		return
	}

	var params model.UpdateVenueParams
	if err := BindJson(c, &params); err != nil {
		return
	}

	venue, err := h.service.Update(c, id, params, user)
	if err != nil {
		respondError(c, err, "UpdateVenue")
		return
	}

	c.JSON(http.StatusOK, venue)
}

func (h *VenueHandler) Delete(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid venue id"})
		return
	}

	if err := h.service.Delete(c, id, user); err != nil {
		respondError(c, err, "DeleteVenue")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
