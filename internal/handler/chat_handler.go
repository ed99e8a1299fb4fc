package handler

import (
	"net/http"
	"strconv"

	"go-event-management/internal/middleware"
	"go-event-management/internal/model"
	"go-event-management/internal/service"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	service service.ChatService
}

func NewChatHandler(service service.ChatService) *ChatHandler {
	return &ChatHandler{service: service}
}

func (h *ChatHandler) RegisterRoutes(r *gin.Engine, auth gin.HandlerFunc) {
	router := r.Group("/api/v1")
	router.Use(auth)
	{
		router.POST("messages", h.Send)
		router.GET("messages/conversation/:userId", h.Conversation)
		router.GET("events/:id/messages", h.EventThread)
	}
}

func (h *ChatHandler) Send(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req model.SendMessageRequest
	if err := BindJsonFields(c, &req); err != nil {
		return
	}

	message, err := h.service.Send(c, user.ID, req)
	if err != nil {
		respondError(c, err, "SendMessage")
		return
	}

	c.JSON(http.StatusCreated, message)
}

func (h *ChatHandler) Conversation(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	otherID, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	messages, err := h.service.Conversation(c, user.ID, otherID)
	if err != nil {
		respondError(c, err, "Conversation")
		return
	}

	c.JSON(http.StatusOK, messages)
}

func (h *ChatHandler) EventThread(c *gin.Context) {
	eventID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event id"})
		return
	}

	messages, err := h.service.EventThread(c, eventID)
	if err != nil {
		respondError(c, err, "EventThread")
		return
	}

	c.JSON(http.StatusOK, messages)
}
