package api

import (
	"context"
	"errors"
	"testing"
	"time"

	"rentcar/models"
	"rentcar/service"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fakeNotifier struct {
	sent chan models.Booking
	err  error
}

func (f *fakeNotifier) NotifyBookingCreated(_ context.Context, b *models.Booking) error {
	f.sent <- *b
	return f.err
}

func bookingRouter(db *gorm.DB, notifier service.BookingNotifier) *gin.Engine {
	h := NewBookingHandler(service.NewBookingService(db), notifier, zap.NewNop())
	router := gin.New()
	router.GET("/bookings", h.List)
	router.GET("/bookings/:id", h.Get)
	router.POST("/bookings", h.Create)
	router.PUT("/bookings/:id", h.Update)
	router.DELETE("/bookings/:id", h.Delete)
	return router
}

const bookingBody = `{"carId":7,"carName":"Spoofed","placeOfRental":"Toshkent","placeOfReturn":"Samarqand","rentalDate":"2025-05-01","returnDate":"2025-05-04","phoneNumber":"+998901234567"}`

func TestBookingHandler_Create(t *testing.T) {
	db, mock := setupMockDB(t)
	notifier := &fakeNotifier{sent: make(chan models.Booking, 1), err: errors.New("smtp down")}

	mock.ExpectQuery("SELECT `id`,`name` FROM `cars`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(7, "BMW M3"))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `bookings`").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	w := performRequest(bookingRouter(db, notifier), "POST", "/bookings", bookingBody)

	// 通知失败不影响预订创建
	assert.Equal(t, 201, w.Code)
	resp := decodeObject(t, w)
	assert.Equal(t, "BMW M3", resp["carName"])
	assert.Equal(t, float64(7), resp["carId"])

	select {
	case b := <-notifier.sent:
		assert.Equal(t, uint(1), b.ID)
		assert.Equal(t, "BMW M3", b.CarName)
	case <-time.After(2 * time.Second):
		t.Fatal("booking notification was not sent")
	}
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingHandler_Create_Errors(t *testing.T) {
	db, mock := setupMockDB(t)
	router := bookingRouter(db, service.NopNotifier{})

	mock.ExpectQuery("SELECT `id`,`name` FROM `cars`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))
	w := performRequest(router, "POST", "/bookings", bookingBody)
	assert.Equal(t, 404, w.Code)
	assert.Equal(t, "car not found", decodeObject(t, w)["message"])

	w = performRequest(router, "POST", "/bookings", `{"carId":7,"placeOfRental":"Toshkent"}`)
	assert.Equal(t, 400, w.Code)

	w = performRequest(router, "POST", "/bookings", `{"carId":7,"placeOfRental":"A","placeOfReturn":"B","rentalDate":"someday","returnDate":"2025-05-04","phoneNumber":"1"}`)
	assert.Equal(t, 400, w.Code)

	mock.ExpectQuery("SELECT `id`,`name` FROM `cars`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(7, "BMW M3"))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `bookings`").WillReturnError(errors.New("deadlock"))
	mock.ExpectRollback()
	w = performRequest(router, "POST", "/bookings", bookingBody)
	assert.Equal(t, 500, w.Code)
	resp := decodeObject(t, w)
	assert.Equal(t, "Failed to create booking", resp["message"])
	assert.Contains(t, resp["error"], "deadlock")

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingHandler_ListGetDelete(t *testing.T) {
	db, mock := setupMockDB(t)
	router := bookingRouter(db, service.NopNotifier{})
	now := time.Now()

	mock.ExpectQuery("SELECT \\* FROM `bookings` ORDER BY created_at DESC").
		WillReturnRows(sqlmock.NewRows(bookingColumns))
	w := performRequest(router, "GET", "/bookings", "")
	assert.Equal(t, 200, w.Code)
	assert.Equal(t, "[]", w.Body.String())

	mock.ExpectQuery("SELECT \\* FROM `bookings`").
		WillReturnRows(sqlmock.NewRows(bookingColumns).
			AddRow(2, 7, "BMW M3", "Toshkent", "Samarqand", now, now, "+998901234567", now, now))
	w = performRequest(router, "GET", "/bookings/2", "")
	assert.Equal(t, 200, w.Code)
	assert.Equal(t, "Toshkent", decodeObject(t, w)["placeOfRental"])

	mock.ExpectQuery("SELECT \\* FROM `bookings`").WillReturnRows(sqlmock.NewRows(bookingColumns))
	w = performRequest(router, "GET", "/bookings/3", "")
	assert.Equal(t, 404, w.Code)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `bookings`").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	w = performRequest(router, "DELETE", "/bookings/2", "")
	assert.Equal(t, 200, w.Code)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingHandler_Update_ChangesCar(t *testing.T) {
	db, mock := setupMockDB(t)
	now := time.Now()

	mock.ExpectQuery("SELECT \\* FROM `bookings`").
		WillReturnRows(sqlmock.NewRows(bookingColumns).
			AddRow(2, 7, "BMW M3", "Toshkent", "Samarqand", now, now, "+998901234567", now, now))
	mock.ExpectQuery("SELECT `id`,`name` FROM `cars`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(8, "Audi A6"))
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `bookings` SET").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectQuery("SELECT \\* FROM `bookings`").
		WillReturnRows(sqlmock.NewRows(bookingColumns).
			AddRow(2, 8, "Audi A6", "Toshkent", "Samarqand", now, now, "+998901234567", now, now))

	w := performRequest(bookingRouter(db, service.NopNotifier{}), "PUT", "/bookings/2", `{"carId":8}`)

	assert.Equal(t, 200, w.Code)
	assert.Equal(t, "Audi A6", decodeObject(t, w)["carName"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingHandler_Update_BlankFields(t *testing.T) {
	db, mock := setupMockDB(t)
	router := bookingRouter(db, service.NopNotifier{})

	w := performRequest(router, "PUT", "/bookings/2", `{"phoneNumber":"   "}`)
	assert.Equal(t, 400, w.Code)
	assert.Contains(t, decodeObject(t, w)["message"], "phoneNumber")

	w = performRequest(router, "PUT", "/bookings/2", `{"placeOfReturn":""}`)
	assert.Equal(t, 400, w.Code)

	require.NoError(t, mock.ExpectationsWereMet())
}
