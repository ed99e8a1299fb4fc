package handler

import (
	"net/http"
	"strconv"

	"go-event-management/internal/middleware"
	"go-event-management/internal/model"
	"go-event-management/internal/service"

	"github.com/gin-gonic/gin"
)

type FAQHandler struct {
	service service.FAQService
}

func NewFAQHandler(service service.FAQService) *FAQHandler {
	return &FAQHandler{service: service}
}

// RegisterRoutes 查詢公開，維護需登入（service 再驗 admin）
func (h *FAQHandler) RegisterRoutes(r *gin.Engine, auth gin.HandlerFunc) {
	router := r.Group("/api/v1")
	{
		router.GET("faqs", h.List)
		router.GET("faqs/category/:category", h.ListByCategory)
		router.GET("faqs/search", h.Search)
		router.POST("faqs", auth, h.Create)
		router.PUT("faqs/:id", auth, h.Update)
		router.DELETE("faqs/:id", auth, h.Delete)
	}
}

func (h *FAQHandler) List(c *gin.Context) {
	groups, err := h.service.List(c)
	if err != nil {
		respondError(c, err, "ListFAQs")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": groups})
}

func (h *FAQHandler) ListByCategory(c *gin.Context) {
	group, err := h.service.ListByCategory(c, c.Param("category"))
	if err != nil {
		respondError(c, err, "ListFAQsByCategory")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": group})
}

func (h *FAQHandler) Search(c *gin.Context) {
	groups, err := h.service.Search(c, c.Query("query"))
	if err != nil {
		respondError(c, err, "SearchFAQs")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": groups})
}

func (h *FAQHandler) Create(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var req model.CreateFAQRequest
	if err := BindJsonFields(c, &req); err != nil {
		return
	}

	faq, err := h.service.Create(c, req, user)
	if err != nil {
		respondError(c, err, "CreateFAQ")
		return
	}

	c.JSON(http.StatusCreated, faq)
}

func (h *FAQHandler) Update(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid FAQ id"})
		return
	}

	var params model.UpdateFAQParams
	if err := BindJson(c, &params); err != nil {
		return
	}

	faq, err := h.service.Update(c, id, params, user)
	if err != nil {
		respondError(c, err, "UpdateFAQ")
		return
	}

	c.JSON(http.StatusOK, faq)
}

func (h *FAQHandler) Delete(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid FAQ id"})
		return
	}

	if err := h.service.Delete(c, id, user); err != nil {
		respondError(c, err, "DeleteFAQ")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
