package handler

import (
	"net/http"
	"strconv"

	"go-event-management/internal/middleware"
	"go-event-management/internal/model"
	"go-event-management/internal/service"

	"github.com/gin-gonic/gin"
)

type GuideHandler struct {
	service service.GuideService
}

func NewGuideHandler(service service.GuideService) *GuideHandler {
	return &GuideHandler{service: service}
}

// RegisterRoutes 閱讀公開，文章與分類維護需登入（service 再驗 admin）
func (h *GuideHandler) RegisterRoutes(r *gin.Engine, auth gin.HandlerFunc) {
	router := r.Group("/api/v1")
	{
		router.GET("guides", h.List)
		router.GET("guides/categories", h.ListCategories)
		router.GET("guides/:id", h.Get)
		router.POST("guides", auth, h.Create)
		router.PUT("guides/:id", auth, h.Update)
		router.DELETE("guides/:id", auth, h.Delete)
		router.POST("guides/categories", auth, h.CreateCategory)
		router.PUT("guides/categories/:id", auth, h.UpdateCategory)
		router.DELETE("guides/categories/:id", auth, h.DeleteCategory)
	}
}

func (h *GuideHandler) List(c *gin.Context) {
	var filter model.GuideFilter
	if err := BindQuery(c, &filter); err != nil {
		return
	}

	guides, err := h.service.List(c, filter)
	if err != nil {
		respondError(c, err, "ListGuides")
		return
	}

	c.JSON(http.StatusOK, guides)
}

func (h *GuideHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid guide id"})
		return
	}

	guide, err := h.service.GetByID(c, id)
	if err != nil {
		respondError(c, err, "GetGuide")
		return
	}

	c.JSON(http.StatusOK, guide)
}

func (h *GuideHandler) Create(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var req model.CreateGuideRequest
	if err := BindJsonFields(c, &req); err != nil {
		return
	}

	guide, err := h.service.Create(c, req, user)
	if err != nil {
		respondError(c, err, "CreateGuide")
		return
	}

	c.JSON(http.StatusCreated, guide)
}

func (h *GuideHandler) Update(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid guide id"})
		return
	}

	var params model.UpdateGuideParams
	if err := BindJson(c, &params); err != nil {
		return
	}

	guide, err := h.service.Update(c, id, params, user)
	if err != nil {
		respondError(c, err, "UpdateGuide")
		return
	}

	c.JSON(http.StatusOK, guide)
}

func (h *GuideHandler) Delete(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid guide id"})
		return
	}

	if err := h.service.Delete(c, id, user); err != nil {
		respondError(c, err, "DeleteGuide")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *GuideHandler) ListCategories(c *gin.Context) {
	categories, err := h.service.ListCategories(c)
	if err != nil {
		respondError(c, err, "ListGuideCategories")
		return
	}

	c.JSON(http.StatusOK, categories)
}

func (h *GuideHandler) CreateCategory(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var req model.CreateGuideCategoryRequest
	if err := BindJsonFields(c, &req); err != nil {
		return
	}

	category, err := h.service.CreateCategory(c, req, user)
	if err != nil {
		respondError(c, err, "CreateGuideCategory")
		return
	}

	c.JSON(http.StatusCreated, category)
}

func (h *GuideHandler) UpdateCategory(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category id"})
		return
	}

	var params model.UpdateGuideCategoryParams
	if err := BindJson(c, &params); err != nil {
		return
	}

	category, err := h.service.UpdateCategory(c, id, params, user)
	if err != nil {
		respondError(c, err, "UpdateGuideCategory")
		return
	}

	c.JSON(http.StatusOK, category)
}

func (h *GuideHandler) DeleteCategory(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category id"})
		return
	}

	if err := h.service.DeleteCategory(c, id, user); err != nil {
		respondError(c, err, "DeleteGuideCategory")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
