package api

import (
	"errors"
	"strings"

	"rentcar/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CommentHandler 评论处理器
type CommentHandler struct {
	db *gorm.DB
}

func NewCommentHandler(db *gorm.DB) *CommentHandler {
	return &CommentHandler{db: db}
}

// CreateCommentRequest name 是 author 的别名
type CreateCommentRequest struct {
	CarID  uint   `json:"carId" binding:"required" example:"1"`
	Author string `json:"author" example:"Aziz"`
	Name   string `json:"name" example:"Aziz"`
	Text   string `json:"text" binding:"required" example:"Great car"`
}

type UpdateCommentRequest struct {
	Author *string `json:"author"`
	Name   *string `json:"name"`
	Text   *string `json:"text" binding:"omitempty,min=1"`
}

// List 获取全部评论
// @Summary 获取全部评论
// @Tags 评论
// @Produce json
// @Success 200 {array} models.Comment
// @Router /api/comments [get]
func (h *CommentHandler) List(c *gin.Context) {
	comments := []models.Comment{}
	if err := h.db.WithContext(c.Request.Context()).Order("created_at DESC").Find(&comments).Error; err != nil {
		InternalError(c, "Failed to fetch comments", err)
		return
	}
	OK(c, comments)
}

// ListByCar 获取车辆评论，最新的在前
// @Summary 获取车辆评论
// @Tags 评论
// @Produce json
// @Param carId path int true "车辆ID"
// @Success 200 {array} models.Comment
// @Failure 400 {object} ErrorResponse
// @Router /api/comments/{carId} [get]
func (h *CommentHandler) ListByCar(c *gin.Context) {
	carID, ok := parseID(c, "carId")
	if !ok {
		return
	}
	comments := []models.Comment{}
	err := h.db.WithContext(c.Request.Context()).
		Where("car_id = ?", carID).
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		InternalError(c, "Failed to fetch comments", err)
		return
	}
	OK(c, comments)
}

// Create 创建评论
// @Summary 创建评论
// @Description 车辆必须存在；未署名时作者为 Anonymous
// @Tags 评论
// @Accept json
// @Produce json
// @Param request body CreateCommentRequest true "评论"
// @Success 201 {object} models.Comment
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/comments [post]
func (h *CommentHandler) Create(c *gin.Context) {
	var req CreateCommentRequest
	if !bindJSON(c, &req) {
		return
	}
	text := strings.TrimSpace(req.Text)
	if text == "" {
		BadRequest(c, "text is required")
		return
	}

	err := h.db.WithContext(c.Request.Context()).Select("id").First(&models.Car{}, req.CarID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		NotFound(c, "Car not found")
		return
	}
	if err != nil {
		InternalError(c, "Failed to fetch car", err)
		return
	}

	comment := models.Comment{
		CarID:  req.CarID,
		Author: commentAuthor(req.Author, req.Name),
		Text:   text,
	}
	if err := h.db.WithContext(c.Request.Context()).Create(&comment).Error; err != nil {
		InternalError(c, "Failed to create comment", err)
		return
	}
	Created(c, comment)
}

// Update 更新评论
// @Summary 更新评论
// @Tags 评论
// @Accept json
// @Produce json
// @Param id path int true "评论ID"
// @Param request body UpdateCommentRequest true "评论"
// @Success 200 {object} models.Comment
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/comments/{id} [put]
func (h *CommentHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req UpdateCommentRequest
	if !bindJSON(c, &req) {
		return
	}

	comment, err := h.find(c, id)
	if err != nil {
		h.renderFindError(c, err)
		return
	}

	updates := map[string]interface{}{}
	if req.Author != nil || req.Name != nil {
		updates["author"] = commentAuthor(deref(req.Author), deref(req.Name))
	}
	if req.Text != nil {
		text := strings.TrimSpace(*req.Text)
		if text == "" {
			BadRequest(c, "text must not be empty")
			return
		}
		updates["text"] = text
	}
	if len(updates) == 0 {
		OK(c, comment)
		return
	}

	if err := h.db.WithContext(c.Request.Context()).Model(comment).Updates(updates).Error; err != nil {
		InternalError(c, "Failed to update comment", err)
		return
	}
	comment, err = h.find(c, id)
	if err != nil {
		h.renderFindError(c, err)
		return
	}
	OK(c, comment)
}

// Delete 删除评论
// @Summary 删除评论
// @Tags 评论
// @Produce json
// @Param id path int true "评论ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/comments/{id} [delete]
func (h *CommentHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	res := h.db.WithContext(c.Request.Context()).Delete(&models.Comment{}, id)
	if res.Error != nil {
		InternalError(c, "Failed to delete comment", res.Error)
		return
	}
	if res.RowsAffected == 0 {
		NotFound(c, "Comment not found")
		return
	}
	Message(c, "Comment deleted")
}

func (h *CommentHandler) find(c *gin.Context, id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := h.db.WithContext(c.Request.Context()).First(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (h *CommentHandler) renderFindError(c *gin.Context, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		NotFound(c, "Comment not found")
		return
	}
	InternalError(c, "Failed to fetch comment", err)
}

// commentAuthor author 优先，其次 name，都为空时为 Anonymous
func commentAuthor(author, name string) string {
	if a := strings.TrimSpace(author); a != "" {
		return a
	}
	return valueOr(name, models.DefaultCommentAuthor)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
