package handler

import (
	"net/http"
	"strconv"

	"go-event-management/internal/middleware"
	"go-event-management/internal/model"
	"go-event-management/internal/service"

	"github.com/gin-gonic/gin"
)

type SupportHandler struct {
	service service.SupportService
}

func NewSupportHandler(service service.SupportService) *SupportHandler {
	return &SupportHandler{service: service}
}

// RegisterRoutes 提交工單允許匿名，其餘操作需登入
func (h *SupportHandler) RegisterRoutes(r *gin.Engine, auth, optionalAuth gin.HandlerFunc) {
	router := r.Group("/api/v1")
	{
		router.POST("support", optionalAuth, h.Submit)
		router.GET("support/my", auth, h.ListMine)
		router.GET("support/:id", auth, h.Get)
		router.PUT("support/:id/status", auth, h.UpdateStatus)
	}
}

func (h *SupportHandler) Submit(c *gin.Context) {
	var req model.SubmitTicketRequest
	if err := BindJsonFields(c, &req); err != nil {
		return
	}

	var userID *int
	if user, ok := middleware.CurrentUser(c); ok {
		userID = &user.ID
	}

	ticket, err := h.service.Submit(c, req, userID)
	if err != nil {
		respondError(c, err, "SubmitTicket")
		return
	}

	c.JSON(http.StatusCreated, ticket)
}

func (h *SupportHandler) ListMine(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	tickets, err := h.service.ListByUser(c, user.ID)
	if err != nil {
		respondError(c, err, "ListMyTickets")
		return
	}

	c.JSON(http.StatusOK, tickets)
}

func (h *SupportHandler) Get(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ticket id"})
		return
	}

	ticket, err := h.service.GetByID(c, id, user)
	if err != nil {
		respondError(c, err, "GetTicket")
		return
	}

	c.JSON(http.StatusOK, ticket)
}

func (h *SupportHandler) UpdateStatus(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ticket id"})
		return
	}

	var req model.UpdateTicketStatusRequest
	if err := BindJsonFields(c, &req); err != nil {
		return
	}

	ticket, err := h.service.UpdateStatus(c, id, req.Status, user)
	if err != nil {
		respondError(c, err, "UpdateTicketStatus")
		return
	}

	c.JSON(http.StatusOK, ticket)
}
