package service

import (
	"testing"

	"rentcar/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var incomeColumns = []string{"id", "year", "month", "day", "total_income", "created_at", "updated_at"}

var bookingColumns = []string{"id", "car_id", "car_name", "place_of_rental", "place_of_return", "rental_date", "return_date", "phone_number", "created_at", "updated_at"}

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

func float64Ptr(v float64) *float64 { return &v }

func intPtr(v int) *int { return &v }

func uintPtr(v uint) *uint { return &v }

func stringPtr(v string) *string { return &v }
