package api

import (
	"context"
	"time"

	"rentcar/models"
	"rentcar/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// 预订通知的最长发送时间
const notifyTimeout = 30 * time.Second

// BookingHandler 预订处理器
type BookingHandler struct {
	bookings *service.BookingService
	notifier service.BookingNotifier
	log      *zap.Logger
}

func NewBookingHandler(bookings *service.BookingService, notifier service.BookingNotifier, log *zap.Logger) *BookingHandler {
	return &BookingHandler{bookings: bookings, notifier: notifier, log: log}
}

// CreateBookingRequest carName 由服务端根据 carId 填充，请求中的值会被忽略
type CreateBookingRequest struct {
	CarID         uint   `json:"carId" binding:"required" example:"1"`
	PlaceOfRental string `json:"placeOfRental" binding:"required" example:"Toshkent"`
	PlaceOfReturn string `json:"placeOfReturn" binding:"required" example:"Samarqand"`
	RentalDate    string `json:"rentalDate" binding:"required" example:"2025-05-01"`
	ReturnDate    string `json:"returnDate" binding:"required" example:"2025-05-04"`
	PhoneNumber   string `json:"phoneNumber" binding:"required" example:"+998901234567"`
}

type UpdateBookingRequest struct {
	CarID         *uint   `json:"carId" binding:"omitempty,gt=0"`
	PlaceOfRental *string `json:"placeOfRental" binding:"omitempty,min=1"`
	PlaceOfReturn *string `json:"placeOfReturn" binding:"omitempty,min=1"`
	RentalDate    *string `json:"rentalDate"`
	ReturnDate    *string `json:"returnDate"`
	PhoneNumber   *string `json:"phoneNumber" binding:"omitempty,min=1"`
}

// List 获取预订列表
// @Summary 获取预订列表
// @Description 最新的预订在前
// @Tags 预订
// @Produce json
// @Success 200 {array} models.Booking
// @Router /api/bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	list, err := h.bookings.List(c.Request.Context())
	if err != nil {
		renderError(c, err, "Failed to fetch bookings")
		return
	}
	if list == nil {
		list = []models.Booking{}
	}
	OK(c, list)
}

// Get 获取预订详情
// @Summary 获取预订详情
// @Tags 预订
// @Produce json
// @Param id path int true "预订ID"
// @Success 200 {object} models.Booking
// @Failure 404 {object} ErrorResponse
// @Router /api/bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	booking, err := h.bookings.Get(c.Request.Context(), id)
	if err != nil {
		renderError(c, err, "Failed to fetch booking")
		return
	}
	OK(c, booking)
}

// Create 创建预订
// @Summary 创建预订
// @Description 车辆必须存在，carName 从车辆复制
// @Tags 预订
// @Accept json
// @Produce json
// @Param request body CreateBookingRequest true "预订信息"
// @Success 201 {object} models.Booking
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if !bindJSON(c, &req) {
		return
	}

	booking, err := h.bookings.Create(c.Request.Context(), service.BookingInput{
		CarID:         req.CarID,
		PlaceOfRental: req.PlaceOfRental,
		PlaceOfReturn: req.PlaceOfReturn,
		RentalDate:    req.RentalDate,
		ReturnDate:    req.ReturnDate,
		PhoneNumber:   req.PhoneNumber,
	})
	if err != nil {
		renderError(c, err, "Failed to create booking")
		return
	}

	h.notify(context.WithoutCancel(c.Request.Context()), *booking)
	Created(c, booking)
}

// Update 更新预订
// @Summary 更新预订
// @Description 更换 carId 时重新复制车辆名称
// @Tags 预订
// @Accept json
// @Produce json
// @Param id path int true "预订ID"
// @Param request body UpdateBookingRequest true "预订信息"
// @Success 200 {object} models.Booking
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/bookings/{id} [put]
func (h *BookingHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req UpdateBookingRequest
	if !bindJSON(c, &req) {
		return
	}

	booking, err := h.bookings.Update(c.Request.Context(), id, service.BookingUpdate{
		CarID:         req.CarID,
		PlaceOfRental: req.PlaceOfRental,
		PlaceOfReturn: req.PlaceOfReturn,
		RentalDate:    req.RentalDate,
		ReturnDate:    req.ReturnDate,
		PhoneNumber:   req.PhoneNumber,
	})
	if err != nil {
		renderError(c, err, "Failed to update booking")
		return
	}
	OK(c, booking)
}

// Delete 删除预订
// @Summary 删除预订
// @Tags 预订
// @Produce json
// @Param id path int true "预订ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/bookings/{id} [delete]
func (h *BookingHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.bookings.Delete(c.Request.Context(), id); err != nil {
		renderError(c, err, "Failed to delete booking")
		return
	}
	Message(c, "Booking deleted")
}

// notify 异步发送新预订通知，失败只记录日志
func (h *BookingHandler) notify(ctx context.Context, booking models.Booking) {
	go func() {
		ctx, cancel := context.WithTimeout(ctx, notifyTimeout)
		defer cancel()
		if err := h.notifier.NotifyBookingCreated(ctx, &booking); err != nil {
			h.log.Warn("预订通知发送失败", zap.Uint("booking_id", booking.ID), zap.Error(err))
		}
	}()
}
