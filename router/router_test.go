package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"rentcar/config"
	"rentcar/database"
	"rentcar/middleware"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), database.GormConfig(zap.NewNop(), "silent"))
	require.NoError(t, err)

	cfg := &config.Config{Server: config.ServerConfig{Mode: gin.TestMode}}
	return SetupRouter(Deps{Config: cfg, DB: db, Log: zap.NewNop()}), mock
}

func TestHealth(t *testing.T) {
	r, _ := setupRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}

func TestRoutes_Wiring(t *testing.T) {
	r, mock := setupRouter(t)
	now := time.Now()

	mock.ExpectQuery("SELECT \\* FROM `regions`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_at", "updated_at"}).AddRow(1, "Toshkent", now, now))
	mock.ExpectQuery("SELECT \\* FROM `cars` WHERE category = \\?").
		WithArgs("Sedan").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))
	mock.ExpectQuery("SELECT \\* FROM `incomes` WHERE year = \\?").
		WithArgs(2024).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	cases := []struct {
		method, path string
		code         int
	}{
		{http.MethodGet, "/api/regions", http.StatusOK},
		{http.MethodGet, "/api/cars/category/Sedan", http.StatusNotFound},
		{http.MethodGet, "/api/income/export/2024", http.StatusNotFound},
		{http.MethodGet, "/api/cars/abc", http.StatusBadRequest},
		{http.MethodGet, "/api/income/2024/Smarch", http.StatusBadRequest},
		{http.MethodOptions, "/api/cars", http.StatusNoContent},
		{http.MethodGet, "/api/unknown", http.StatusNotFound},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))
		assert.Equal(t, tc.code, w.Code, "%s %s", tc.method, tc.path)
	}
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSwagger(t *testing.T) {
	r, _ := setupRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/api/income/{year}/{month}")
}
