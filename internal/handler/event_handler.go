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

type EventHandler struct {
	service service.EventService
}

func NewEventHandler(service service.EventService) *EventHandler {
	return &EventHandler{service: service}
}

func (h *EventHandler) RegisterRoutes(r *gin.Engine, auth gin.HandlerFunc) {
	router := r.Group("/api/v1")
	router.Use(auth)
	{
		router.POST("events", h.Create)
		router.GET("events", h.ListMine)
		router.GET("events/:id", h.Get)
		router.PUT("events/:id", h.Update)
		router.DELETE("events/:id", h.Delete)
		router.GET("events/filter/search", h.Filter)
	}
}

func (h *EventHandler) Create(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req model.CreateEventRequest
	if err := BindJsonFields(c, &req); err != nil {
		return
	}

	event, err := h.service.Create(c, req, user.ID)
	if err != nil {
		respondError(c, err, "CreateEvent")
		return
	}

	monitoring.IncEventCreated()
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    event.ToResponse(),
	})
}

func (h *EventHandler) Get(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event id"})
		return
	}

	event, err := h.service.GetByID(c, id, user)
	if err != nil {
		respondError(c, err, "GetEvent")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": event})
}

func (h *EventHandler) ListMine(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	events, err := h.service.ListByUser(c, user.ID)
	if err != nil {
		respondError(c, err, "ListMyEvents")
		return
	}

	c.JSON(http.StatusOK, events)
}

func (h *EventHandler) Filter(c *gin.Context) {
	var filter model.EventFilter
	if err := BindQuery(c, &filter); err != nil {
		return
	}

	events, err := h.service.Filter(c, filter)
	if err != nil {
		respondError(c, err, "FilterEvents")
		return
	}

	c.JSON(http.StatusOK, events)
}

func (h *EventHandler) Update(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event id"})
		return
	}

	var params model.UpdateEventParams
	if err := BindJson(c, &params); err != nil {
		return
	}

	event, err := h.service.Update(c, id, params, user)
	if err != nil {
		respondError(c, err, "UpdateEvent")
		return
	}

	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) Delete(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event id"})
		return
	}

	if err := h.service.Delete(c, id, user); err != nil {
		respondError(c, err, "DeleteEvent")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
