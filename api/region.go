package api

import (
	"errors"
	"fmt"
	"strings"

	"rentcar/database"
	"rentcar/models"
	"rentcar/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegionHandler 地区处理器
type RegionHandler struct {
	db *gorm.DB
}

func NewRegionHandler(db *gorm.DB) *RegionHandler {
	return &RegionHandler{db: db}
}

type RegionRequest struct {
	Name string `json:"name" binding:"required" example:"Toshkent"`
}

// List 获取地区列表
// @Summary 获取地区列表
// @Tags 地区
// @Produce json
// @Success 200 {array} models.Region
// @Router /api/regions [get]
func (h *RegionHandler) List(c *gin.Context) {
	regions := []models.Region{}
	if err := h.db.WithContext(c.Request.Context()).Order("id ASC").Find(&regions).Error; err != nil {
		InternalError(c, "Failed to fetch regions", err)
		return
	}
	OK(c, regions)
}

// Create 创建地区，名称唯一
// @Summary 创建地区
// @Tags 地区
// @Accept json
// @Produce json
// @Param request body RegionRequest true "地区"
// @Success 201 {object} models.Region
// @Failure 400 {object} ErrorResponse
// @Router /api/regions [post]
func (h *RegionHandler) Create(c *gin.Context) {
	var req RegionRequest
	if !bindJSON(c, &req) {
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		BadRequest(c, "name is required")
		return
	}

	region := models.Region{Name: name}
	if err := h.db.WithContext(c.Request.Context()).Create(&region).Error; err != nil {
		h.renderWriteError(c, name, err)
		return
	}
	Created(c, region)
}

// Update 修改地区名称
// @Summary 修改地区
// @Tags 地区
// @Accept json
// @Produce json
// @Param id path int true "地区ID"
// @Param request body RegionRequest true "地区"
// @Success 200 {object} models.Region
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/regions/{id} [put]
func (h *RegionHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req RegionRequest
	if !bindJSON(c, &req) {
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		BadRequest(c, "name is required")
		return
	}

	var region models.Region
	err := h.db.WithContext(c.Request.Context()).First(&region, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		NotFound(c, "Region not found")
		return
	}
	if err != nil {
		InternalError(c, "Failed to fetch region", err)
		return
	}

	if err := h.db.WithContext(c.Request.Context()).Model(&region).Update("name", name).Error; err != nil {
		h.renderWriteError(c, name, err)
		return
	}
	region.Name = name
	OK(c, region)
}

// Delete 删除地区
// @Summary 删除地区
// @Tags 地区
// @Produce json
// @Param id path int true "地区ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/regions/{id} [delete]
func (h *RegionHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	res := h.db.WithContext(c.Request.Context()).Delete(&models.Region{}, id)
	if res.Error != nil {
		InternalError(c, "Failed to delete region", res.Error)
		return
	}
	if res.RowsAffected == 0 {
		NotFound(c, "Region not found")
		return
	}
	Message(c, "Region deleted")
}

func (h *RegionHandler) renderWriteError(c *gin.Context, name string, err error) {
	if database.IsDuplicateKey(err) {
		renderError(c, fmt.Errorf("region %w: %s", service.ErrDuplicateName, name), "")
		return
	}
	InternalError(c, "Failed to save region", err)
}
