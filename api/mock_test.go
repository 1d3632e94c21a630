package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"rentcar/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var carColumns = []string{"id", "name", "brand", "category", "price_per_day", "image_url", "gallery", "gear_box", "fuel", "doors", "seats", "air_conditioner", "distance", "equipment", "available", "created_at", "updated_at"}

var commentColumns = []string{"id", "car_id", "author", "text", "created_at", "updated_at"}

var bookingColumns = []string{"id", "car_id", "car_name", "place_of_rental", "place_of_return", "rental_date", "return_date", "phone_number", "created_at", "updated_at"}

var regionColumns = []string{"id", "name", "created_at", "updated_at"}

var incomeColumns = []string{"id", "year", "month", "day", "total_income", "created_at", "updated_at"}

const testGallery = `["a.jpg","b.jpg","c.jpg","d.jpg"]`

func init() {
	gin.SetMode(gin.TestMode)
}

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), database.GormConfig(zap.NewNop(), "silent"))
	require.NoError(t, err)
	return db, mock
}

func performRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeObject(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return resp
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]interface{} {
	var resp []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return resp
}
