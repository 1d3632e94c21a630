package api

import (
	"fmt"
	"net/http"

	"rentcar/service"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler 报表导出处理器
type ExportHandler struct {
	reports *service.ReportService
}

func NewExportHandler(reports *service.ReportService) *ExportHandler {
	return &ExportHandler{reports: reports}
}

// IncomeYear 导出年度收入 Excel
// @Summary 导出年度收入
// @Description 每个有数据的月份一页，Summary 页为月度合计与全年合计
// @Tags 收入
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param year path int true "年份"
// @Success 200 {file} file "income-<year>.xlsx"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/income/export/{year} [get]
func (h *ExportHandler) IncomeYear(c *gin.Context) {
	year, ok := parseYear(c)
	if !ok {
		return
	}

	f, err := h.reports.YearWorkbook(c.Request.Context(), year)
	if err != nil {
		renderError(c, err, "Failed to export income")
		return
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		InternalError(c, "Failed to export income", err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=income-%d.xlsx", year))
	c.Header("Content-Length", fmt.Sprintf("%d", buf.Len()))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
