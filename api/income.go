package api

import (
	"strconv"

	"rentcar/models"
	"rentcar/service"

	"github.com/gin-gonic/gin"
)

// IncomeHandler 收入处理器
type IncomeHandler struct {
	incomes *service.IncomeService
}

func NewIncomeHandler(incomes *service.IncomeService) *IncomeHandler {
	return &IncomeHandler{incomes: incomes}
}

// CreateIncomeRequest month 可以是数字或英文月份名称
type CreateIncomeRequest struct {
	Year        int         `json:"year" example:"2025"`
	Month       interface{} `json:"month" swaggertype:"string" example:"January"`
	Day         int         `json:"day" example:"15"`
	TotalIncome *float64    `json:"totalIncome" example:"1250.50"`
}

type UpdateIncomeRequest struct {
	Year        *int        `json:"year" binding:"omitempty,gt=0"`
	Month       interface{} `json:"month" swaggertype:"string" example:"February"`
	Day         *int        `json:"day" binding:"omitempty,min=1,max=31"`
	TotalIncome *float64    `json:"totalIncome"`
}

// List 获取全部收入
// @Summary 获取全部收入
// @Tags 收入
// @Produce json
// @Success 200 {array} models.Income
// @Router /api/income [get]
func (h *IncomeHandler) List(c *gin.Context) {
	list, err := h.incomes.List(c.Request.Context())
	if err != nil {
		renderError(c, err, "Failed to fetch income")
		return
	}
	if list == nil {
		list = []models.Income{}
	}
	OK(c, list)
}

// ForYear 按年查询收入，以月份名称分组
// @Summary 年度收入
// @Tags 收入
// @Produce json
// @Param year path int true "年份"
// @Success 200 {object} map[string][]models.Income
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/income/{year} [get]
func (h *IncomeHandler) ForYear(c *gin.Context) {
	year, ok := parseYear(c)
	if !ok {
		return
	}
	grouped, err := h.incomes.ForYear(c.Request.Context(), year)
	if err != nil {
		renderError(c, err, "Failed to fetch income")
		return
	}
	OK(c, grouped)
}

// ForMonth 月度收入汇总
// @Summary 月度收入
// @Description month 可以是 1-12 或英文月份名称（不区分大小写）
// @Tags 收入
// @Produce json
// @Param year path int true "年份"
// @Param month path string true "月份"
// @Success 200 {object} service.MonthlyIncome
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/income/{year}/{month} [get]
func (h *IncomeHandler) ForMonth(c *gin.Context) {
	year, ok := parseYear(c)
	if !ok {
		return
	}
	res, err := h.incomes.ForMonth(c.Request.Context(), year, c.Param("month"))
	if err != nil {
		renderError(c, err, "Failed to fetch income")
		return
	}
	OK(c, res)
}

// ForDay 某一天的收入
// @Summary 每日收入
// @Tags 收入
// @Produce json
// @Param year path int true "年份"
// @Param month path string true "月份"
// @Param day path int true "日"
// @Success 200 {object} models.Income
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/income/{year}/{month}/{day} [get]
func (h *IncomeHandler) ForDay(c *gin.Context) {
	year, ok := parseYear(c)
	if !ok {
		return
	}
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil {
		BadRequest(c, "invalid day")
		return
	}
	income, err := h.incomes.ForDay(c.Request.Context(), year, c.Param("month"), day)
	if err != nil {
		renderError(c, err, "Failed to fetch income")
		return
	}
	OK(c, income)
}

// Create 创建每日收入
// @Summary 创建每日收入
// @Description 同一日期只能有一条记录
// @Tags 收入
// @Accept json
// @Produce json
// @Param request body CreateIncomeRequest true "收入信息"
// @Success 201 {object} models.Income
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/income [post]
func (h *IncomeHandler) Create(c *gin.Context) {
	var req CreateIncomeRequest
	if !bindJSON(c, &req) {
		return
	}
	income, err := h.incomes.Create(c.Request.Context(), service.IncomeInput{
		Year:        req.Year,
		Month:       req.Month,
		Day:         req.Day,
		TotalIncome: req.TotalIncome,
	})
	if err != nil {
		renderError(c, err, "Failed to create income")
		return
	}
	Created(c, income)
}

// Update 更新收入
// @Summary 更新收入
// @Tags 收入
// @Accept json
// @Produce json
// @Param id path int true "收入ID"
// @Param request body UpdateIncomeRequest true "收入信息"
// @Success 200 {object} models.Income
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/income/{id} [put]
func (h *IncomeHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req UpdateIncomeRequest
	if !bindJSON(c, &req) {
		return
	}
	income, err := h.incomes.Update(c.Request.Context(), id, service.IncomeUpdate{
		Year:        req.Year,
		Month:       req.Month,
		Day:         req.Day,
		TotalIncome: req.TotalIncome,
	})
	if err != nil {
		renderError(c, err, "Failed to update income")
		return
	}
	OK(c, income)
}

// Delete 删除收入
// @Summary 删除收入
// @Tags 收入
// @Produce json
// @Param id path int true "收入ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/income/{id} [delete]
func (h *IncomeHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.incomes.Delete(c.Request.Context(), id); err != nil {
		renderError(c, err, "Failed to delete income")
		return
	}
	Message(c, "Income deleted")
}

func parseYear(c *gin.Context) (int, bool) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year <= 0 {
		BadRequest(c, "invalid year")
		return 0, false
	}
	return year, true
}
