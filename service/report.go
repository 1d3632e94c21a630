package service

import (
	"context"

	"github.com/xuri/excelize/v2"
)

const summarySheet = "Summary"

// ReportService 收入报表导出
type ReportService struct {
	incomes *IncomeService
}

func NewReportService(incomes *IncomeService) *ReportService {
	return &ReportService{incomes: incomes}
}

// YearWorkbook 生成年度收入工作簿
// Summary 页为各月合计与全年合计，其后每个有数据的月份一页，按日列出明细并附合计行
func (s *ReportService) YearWorkbook(ctx context.Context, year int) (*excelize.File, error) {
	grouped, err := s.incomes.ForYear(ctx, year)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	f.SetSheetName("Sheet1", summarySheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	totalStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Border: []excelize.Border{
			{Type: "top", Color: "000000", Style: 1},
		},
	})

	writeHeader := func(sheet string, headers []string) {
		for i, h := range headers {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			f.SetCellValue(sheet, cell, h)
			f.SetCellStyle(sheet, cell, cell, headerStyle)
		}
	}

	writeHeader(summarySheet, []string{"Month", "Days", "Total income"})
	f.SetColWidth(summarySheet, "A", "A", 16)
	f.SetColWidth(summarySheet, "B", "C", 14)

	var yearTotal float64
	summaryRow := 2
	for m := 1; m <= 12; m++ {
		name := MonthName(m)
		list := grouped[name]
		if len(list) == 0 {
			continue
		}

		f.NewSheet(name)
		writeHeader(name, []string{"Day", "Total income", "Created at"})
		f.SetColWidth(name, "A", "B", 14)
		f.SetColWidth(name, "C", "C", 22)

		var monthTotal float64
		row := 2
		for _, in := range list {
			f.SetCellValue(name, cellName(1, row), in.Day)
			f.SetCellValue(name, cellName(2, row), in.TotalIncome)
			f.SetCellValue(name, cellName(3, row), in.CreatedAt.Format("2006-01-02 15:04:05"))
			monthTotal += in.TotalIncome
			row++
		}
		f.SetCellValue(name, cellName(1, row), "Total")
		f.SetCellValue(name, cellName(2, row), monthTotal)
		f.SetCellStyle(name, cellName(1, row), cellName(3, row), totalStyle)

		f.SetCellValue(summarySheet, cellName(1, summaryRow), name)
		f.SetCellValue(summarySheet, cellName(2, summaryRow), len(list))
		f.SetCellValue(summarySheet, cellName(3, summaryRow), monthTotal)
		yearTotal += monthTotal
		summaryRow++
	}

	f.SetCellValue(summarySheet, cellName(1, summaryRow), "Year total")
	f.SetCellValue(summarySheet, cellName(3, summaryRow), yearTotal)
	f.SetCellStyle(summarySheet, cellName(1, summaryRow), cellName(3, summaryRow), totalStyle)
	f.SetActiveSheet(0)

	return f, nil
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
