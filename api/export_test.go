package api

import (
	"bytes"
	"testing"
	"time"

	"rentcar/service"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportHandler_IncomeYear(t *testing.T) {
	db, mock := setupMockDB(t)
	now := time.Now()

	mock.ExpectQuery("SELECT \\* FROM `incomes` WHERE year = \\?").
		WithArgs(2025).
		WillReturnRows(sqlmock.NewRows(incomeColumns).AddRow(1, 2025, 4, 10, 300, now, now))

	router := gin.New()
	router.GET("/income/export/:year", NewExportHandler(service.NewReportService(service.NewIncomeService(db))).IncomeYear)

	w := performRequest(router, "GET", "/income/export/2025", "")

	assert.Equal(t, 200, w.Code)
	assert.Equal(t, xlsxContentType, w.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=income-2025.xlsx", w.Header().Get("Content-Disposition"))

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"Summary", "April"}, f.GetSheetList())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExportHandler_IncomeYear_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectQuery("SELECT \\* FROM `incomes`").WillReturnRows(sqlmock.NewRows(incomeColumns))

	router := gin.New()
	router.GET("/income/export/:year", NewExportHandler(service.NewReportService(service.NewIncomeService(db))).IncomeYear)

	w := performRequest(router, "GET", "/income/export/2001", "")
	assert.Equal(t, 404, w.Code)

	w = performRequest(router, "GET", "/income/export/abc", "")
	assert.Equal(t, 400, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}
