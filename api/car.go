package api

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"rentcar/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var (
	invalidCategoryMessage = "category must be one of " + strings.Join(models.GetCategories(), ", ")
	invalidGalleryMessage  = fmt.Sprintf("gallery must contain at least %d non-blank image URLs", models.MinGallerySize)
)

// CarHandler 车辆处理器
type CarHandler struct {
	db *gorm.DB
}

func NewCarHandler(db *gorm.DB) *CarHandler {
	return &CarHandler{db: db}
}

type CreateCarRequest struct {
	Name           string   `json:"name" binding:"required" example:"BMW M3"`
	Brand          string   `json:"brand" binding:"required" example:"BMW"`
	Category       string   `json:"category" binding:"required" example:"Sedan"`
	PricePerDay    float64  `json:"pricePerDay" binding:"required,gt=0" example:"120"`
	ImageURL       string   `json:"imageUrl" example:"https://cdn.example.com/m3.jpg"`
	Gallery        []string `json:"gallery" binding:"required,min=4,dive,required"`
	GearBox        string   `json:"gearBox" example:"Automatic"`
	Fuel           string   `json:"fuel" example:"Petrol"`
	Doors          *int     `json:"doors" binding:"omitempty,gt=0" example:"4"`
	Seats          *int     `json:"seats" binding:"omitempty,gt=0" example:"5"`
	AirConditioner *bool    `json:"airConditioner" example:"true"`
	Distance       *float64 `json:"distance" binding:"omitempty,gte=0" example:"0"`
	Equipment      []string `json:"equipment"`
	Available      *bool    `json:"available" example:"true"`
}

type UpdateCarRequest struct {
	Name           *string  `json:"name" binding:"omitempty,min=1"`
	Brand          *string  `json:"brand" binding:"omitempty,min=1"`
	Category       *string  `json:"category"`
	PricePerDay    *float64 `json:"pricePerDay" binding:"omitempty,gt=0"`
	ImageURL       *string  `json:"imageUrl"`
	Gallery        []string `json:"gallery" binding:"omitempty,min=4,dive,required"`
	GearBox        *string  `json:"gearBox"`
	Fuel           *string  `json:"fuel"`
	Doors          *int     `json:"doors" binding:"omitempty,gt=0"`
	Seats          *int     `json:"seats" binding:"omitempty,gt=0"`
	AirConditioner *bool    `json:"airConditioner"`
	Distance       *float64 `json:"distance" binding:"omitempty,gte=0"`
	Equipment      []string `json:"equipment"`
	Available      *bool    `json:"available"`
}

// List 获取车辆列表
// @Summary 获取车辆列表
// @Description 支持按品牌、类别和是否可租筛选，品牌与类别不区分大小写
// @Tags 车辆
// @Produce json
// @Param brand query string false "品牌"
// @Param category query string false "类别"
// @Param available query bool false "是否可租"
// @Success 200 {array} models.Car
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/cars [get]
func (h *CarHandler) List(c *gin.Context) {
	query := h.db.WithContext(c.Request.Context()).Model(&models.Car{})
	if brand := strings.TrimSpace(c.Query("brand")); brand != "" {
		query = query.Where("LOWER(brand) = LOWER(?)", brand)
	}
	if category := c.Query("category"); category != "" {
		canonical, ok := models.CanonicalCategory(category)
		if !ok {
			OK(c, []models.Car{})
			return
		}
		query = query.Where("category = ?", canonical)
	}
	if available := c.Query("available"); available != "" {
		v, err := strconv.ParseBool(available)
		if err != nil {
			BadRequest(c, "invalid available")
			return
		}
		query = query.Where("available = ?", v)
	}

	cars := []models.Car{}
	if err := query.Order("id ASC").Find(&cars).Error; err != nil {
		InternalError(c, "Failed to fetch cars", err)
		return
	}
	OK(c, cars)
}

// Get 获取单个车辆
// @Summary 获取车辆详情
// @Tags 车辆
// @Produce json
// @Param id path int true "车辆ID"
// @Success 200 {object} models.Car
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/cars/{id} [get]
func (h *CarHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	car, err := h.find(c, id)
	if err != nil {
		h.renderFindError(c, err)
		return
	}
	OK(c, car)
}

// ListByCategory 按类别获取车辆
// @Summary 按类别获取车辆
// @Description 类别不区分大小写，没有车辆时返回 404
// @Tags 车辆
// @Produce json
// @Param category path string true "类别" Enums(Sedan, Cabriolet, Pickup, SUV, Minivan)
// @Success 200 {array} models.Car
// @Failure 404 {object} ErrorResponse
// @Router /api/cars/category/{category} [get]
func (h *CarHandler) ListByCategory(c *gin.Context) {
	category, ok := models.CanonicalCategory(c.Param("category"))
	if !ok {
		NotFound(c, "No cars found in this category")
		return
	}

	var cars []models.Car
	err := h.db.WithContext(c.Request.Context()).
		Where("category = ?", category).
		Order("id ASC").
		Find(&cars).Error
	if err != nil {
		InternalError(c, "Failed to fetch cars", err)
		return
	}
	if len(cars) == 0 {
		NotFound(c, "No cars found in this category")
		return
	}
	OK(c, cars)
}

// Create 创建车辆
// @Summary 创建车辆
// @Description 未传的可选字段使用默认值：Automatic / Petrol / 4 门 / 5 座 / 有空调 / 可租
// @Tags 车辆
// @Accept json
// @Produce json
// @Param request body CreateCarRequest true "车辆信息"
// @Success 201 {object} models.Car
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/cars [post]
func (h *CarHandler) Create(c *gin.Context) {
	var req CreateCarRequest
	if !bindJSON(c, &req) {
		return
	}
	name, brand := strings.TrimSpace(req.Name), strings.TrimSpace(req.Brand)
	if name == "" || brand == "" {
		BadRequest(c, "name and brand are required")
		return
	}
	gallery, ok := cleanGallery(req.Gallery)
	if !ok {
		BadRequest(c, invalidGalleryMessage)
		return
	}
	category, ok := models.CanonicalCategory(req.Category)
	if !ok {
		BadRequest(c, invalidCategoryMessage)
		return
	}
	equipment := models.StringList{}
	if req.Equipment != nil {
		equipment = models.StringList(req.Equipment)
	}

	car := models.Car{
		Name:           name,
		Brand:          brand,
		Category:       category,
		PricePerDay:    req.PricePerDay,
		ImageURL:       req.ImageURL,
		Gallery:        gallery,
		GearBox:        valueOr(req.GearBox, models.DefaultGearBox),
		Fuel:           valueOr(req.Fuel, models.DefaultFuel),
		Doors:          models.DefaultDoors,
		Seats:          models.DefaultSeats,
		AirConditioner: true,
		Equipment:      equipment,
		Available:      true,
	}
	if req.Doors != nil {
		car.Doors = *req.Doors
	}
	if req.Seats != nil {
		car.Seats = *req.Seats
	}
	if req.AirConditioner != nil {
		car.AirConditioner = *req.AirConditioner
	}
	if req.Distance != nil {
		car.Distance = *req.Distance
	}
	if req.Available != nil {
		car.Available = *req.Available
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&car).Error; err != nil {
		InternalError(c, "Failed to create car", err)
		return
	}
	Created(c, car)
}

// Update 更新车辆
// @Summary 更新车辆
// @Description 只更新请求中出现的字段，校验规则与创建相同
// @Tags 车辆
// @Accept json
// @Produce json
// @Param id path int true "车辆ID"
// @Param request body UpdateCarRequest true "车辆信息"
// @Success 200 {object} models.Car
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/cars/{id} [put]
func (h *CarHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req UpdateCarRequest
	if !bindJSON(c, &req) {
		return
	}
	if (req.Name != nil && strings.TrimSpace(*req.Name) == "") ||
		(req.Brand != nil && strings.TrimSpace(*req.Brand) == "") {
		BadRequest(c, "name and brand cannot be blank")
		return
	}
	var gallery models.StringList
	if req.Gallery != nil {
		if gallery, ok = cleanGallery(req.Gallery); !ok {
			BadRequest(c, invalidGalleryMessage)
			return
		}
	}
	var category string
	if req.Category != nil {
		if category, ok = models.CanonicalCategory(*req.Category); !ok {
			BadRequest(c, invalidCategoryMessage)
			return
		}
	}

	car, err := h.find(c, id)
	if err != nil {
		h.renderFindError(c, err)
		return
	}

	updates := map[string]interface{}{}
	setString := func(column string, v *string) {
		if v != nil {
			updates[column] = strings.TrimSpace(*v)
		}
	}
	setString("name", req.Name)
	setString("brand", req.Brand)
	if req.Category != nil {
		updates["category"] = category
	}
	setString("image_url", req.ImageURL)
	setString("gear_box", req.GearBox)
	setString("fuel", req.Fuel)
	if req.PricePerDay != nil {
		updates["price_per_day"] = *req.PricePerDay
	}
	if req.Gallery != nil {
		updates["gallery"] = gallery
	}
	if req.Equipment != nil {
		updates["equipment"] = models.StringList(req.Equipment)
	}
	if req.Doors != nil {
		updates["doors"] = *req.Doors
	}
	if req.Seats != nil {
		updates["seats"] = *req.Seats
	}
	if req.AirConditioner != nil {
		updates["air_conditioner"] = *req.AirConditioner
	}
	if req.Distance != nil {
		updates["distance"] = *req.Distance
	}
	if req.Available != nil {
		updates["available"] = *req.Available
	}
	if len(updates) == 0 {
		OK(c, car)
		return
	}

	if err := h.db.WithContext(c.Request.Context()).Model(car).Updates(updates).Error; err != nil {
		InternalError(c, "Failed to update car", err)
		return
	}
	car, err = h.find(c, id)
	if err != nil {
		h.renderFindError(c, err)
		return
	}
	OK(c, car)
}

// Delete 删除车辆，评论不会被级联删除
// @Summary 删除车辆
// @Tags 车辆
// @Produce json
// @Param id path int true "车辆ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/cars/{id} [delete]
func (h *CarHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	res := h.db.WithContext(c.Request.Context()).Delete(&models.Car{}, id)
	if res.Error != nil {
		InternalError(c, "Failed to delete car", res.Error)
		return
	}
	if res.RowsAffected == 0 {
		NotFound(c, "Car not found")
		return
	}
	Message(c, "Car deleted")
}

func (h *CarHandler) find(c *gin.Context, id uint) (*models.Car, error) {
	var car models.Car
	if err := h.db.WithContext(c.Request.Context()).First(&car, id).Error; err != nil {
		return nil, err
	}
	return &car, nil
}

func (h *CarHandler) renderFindError(c *gin.Context, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		NotFound(c, "Car not found")
		return
	}
	InternalError(c, "Failed to fetch car", err)
}

// cleanGallery 去除首尾空白，存在空地址或数量不足时返回 false
func cleanGallery(urls []string) (models.StringList, bool) {
	if len(urls) < models.MinGallerySize {
		return nil, false
	}
	out := make(models.StringList, 0, len(urls))
	for _, u := range urls {
		if u = strings.TrimSpace(u); u == "" {
			return nil, false
		}
		out = append(out, u)
	}
	return out, true
}

func valueOr(v, fallback string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return fallback
}
