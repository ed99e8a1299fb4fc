package handler

import (
	"net/http"
	"strconv"

	"go-event-management/internal/middleware"
	"go-event-management/internal/model"
	"go-event-management/internal/service"

	"github.com/gin-gonic/gin"
)

type BusinessHandler struct {
	service service.BusinessService
}

func NewBusinessHandler(service service.BusinessService) *BusinessHandler {
	return &BusinessHandler{service: service}
}

// RegisterRoutes 商家明細公開，其餘操作需登入
func (h *BusinessHandler) RegisterRoutes(r *gin.Engine, auth gin.HandlerFunc) {
	router := r.Group("/api/v1")
	{
		router.POST("businesses", auth, h.Register)
		router.GET("businesses", auth, h.List)
		router.GET("businesses/my", auth, h.ListMine)
		router.GET("businesses/:id", h.Get)
		router.PUT("businesses/:id", auth, h.Update)
		router.DELETE("businesses/:id", auth, h.Delete)
		router.PUT("businesses/:id/status", auth, h.UpdateStatus)
	}
}

func (h *BusinessHandler) Register(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var req model.RegisterBusinessRequest
	if err := BindJsonFields(c, &req); err != nil {
		return
	}

	business, err := h.service.Register(c, req, user.ID)
	if err != nil {
		respondError(c, err, "RegisterBusiness")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": business})
}

func (h *BusinessHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid business id"})
		return
	}

	business, err := h.service.GetByID(c, id)
	if err != nil {
		respondError(c, err, "GetBusiness")
		return
	}

	c.JSON(http.StatusOK, business)
}

func (h *BusinessHandler) ListMine(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	businesses, err := h.service.ListMine(c, user.ID)
	if err != nil {
		respondError(c, err, "ListMyBusinesses")
		return
	}

	c.JSON(http.StatusOK, businesses)
}

func (h *BusinessHandler) List(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var filter model.BusinessFilter
	if err := BindQuery(c, &filter); err != nil {
		return
	}

	businesses, err := h.service.List(c, filter, user)
	if err != nil {
		respondError(c, err, "ListBusinesses")
		return
	}

	c.JSON(http.StatusOK, businesses)
}

func (h *BusinessHandler) Update(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid business id"})
		return
	}

	var params model.UpdateBusinessParams
	if err := BindJson(c, &params); err != nil {
		return
	}

	business, err := h.service.Update(c, id, params, user)
	if err != nil {
		respondError(c, err, "UpdateBusiness")
		return
	}

	c.JSON(http.StatusOK, business)
}

func (h *BusinessHandler) Delete(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid business id"})
		return
	}

	if err := h.service.Delete(c, id, user); err != nil {
		respondError(c, err, "DeleteBusiness")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Business deleted successfully"})
}

func (h *BusinessHandler) UpdateStatus(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid business id"})
		return
	}

	var req model.UpdateBusinessStatusRequest
	if err := BindJsonFields(c, &req); err != nil {
		return
	}

	business, err := h.service.UpdateStatus(c, id, req.Status, user)
	if err != nil {
		respondError(c, err, "UpdateBusinessStatus")
		return
	}

	c.JSON(http.StatusOK, business)
}
