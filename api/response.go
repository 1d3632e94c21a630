package api

import (
	"errors"
	"net/http"
	"strconv"

	"rentcar/service"

	"github.com/gin-gonic/gin"
)

// MessageResponse 仅包含提示信息的响应
type MessageResponse struct {
	Message string `json:"message" example:"Car deleted"`
}

// ErrorResponse 错误响应，500 时附带底层错误信息
type ErrorResponse struct {
	Message string `json:"message" example:"Car not found"`
	Error   string `json:"error,omitempty"`
}

// OK 200 响应
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created 201 响应
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// Message 200 提示信息
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, MessageResponse{Message: message})
}

// BadRequest 400 错误响应
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Message: message})
}

// NotFound 404 错误响应
func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Message: message})
}

// InternalError 500 错误响应，错误同时记录到 gin 上下文供日志中间件输出
func InternalError(c *gin.Context, message string, err error) {
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Message: message, Error: err.Error()})
}

// renderError 按业务错误类型映射状态码
func renderError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		NotFound(c, err.Error())
	case errors.Is(err, service.ErrValidation), errors.Is(err, service.ErrDuplicate):
		BadRequest(c, err.Error())
	default:
		InternalError(c, fallback, err)
	}
}

// parseID 解析路径中的数字ID，失败时直接返回 400
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		BadRequest(c, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}

// bindJSON 绑定并校验请求体
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return false
	}
	return true
}
