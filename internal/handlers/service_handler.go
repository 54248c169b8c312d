package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/haircut-workshop-team/Haircut-Workshop/internal/httperr"
	"github.com/haircut-workshop-team/Haircut-Workshop/internal/httpresp"
	"github.com/haircut-workshop-team/Haircut-Workshop/internal/models"
)

// ServiceHandler serves the public catalog. Admin management of
// services lives in AdminHandler.
type ServiceHandler struct {
	db *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{db: db}
}

func (h *ServiceHandler) ListServices(c *gin.Context) {
	var services []models.Service
	if err := h.db.Where("is_active = ?", true).Order("created_at DESC").Find(&services).Error; err != nil {
		httperr.Internal(c, "Failed to fetch services")
		return
	}

	httpresp.List(c, services)
}

func (h *ServiceHandler) GetService(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "Invalid service ID")
		return
	}

	var service models.Service
	if err := h.db.Where("id = ? AND is_active = ?", uint(id), true).First(&service).Error; err != nil {
		httperr.NotFound(c, "Service not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    service,
	})
}
