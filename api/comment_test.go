package api

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func commentRouter(h *CommentHandler) *gin.Engine {
	router := gin.New()
	router.GET("/comments", h.List)
	router.GET("/comments/:carId", h.ListByCar)
	router.POST("/comments", h.Create)
	router.PUT("/comments/:id", h.Update)
	router.DELETE("/comments/:id", h.Delete)
	return router
}

func TestCommentHandler_Create(t *testing.T) {
	db, mock := setupMockDB(t)
	router := commentRouter(NewCommentHandler(db))

	for _, tc := range []struct {
		body   string
		author string
	}{
		{`{"carId":1,"author":"Aziz","text":"Great car"}`, "Aziz"},
		{`{"carId":1,"name":"Dilnoza","text":"Clean"}`, "Dilnoza"},
		{`{"carId":1,"text":"No name"}`, "Anonymous"},
	} {
		mock.ExpectQuery("SELECT `id` FROM `cars`").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO `comments`").WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		w := performRequest(router, "POST", "/comments", tc.body)
		assert.Equal(t, 201, w.Code, tc.body)
		assert.Equal(t, tc.author, decodeObject(t, w)["author"])
	}
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentHandler_Create_CarNotFound(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectQuery("SELECT `id` FROM `cars`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	w := performRequest(commentRouter(NewCommentHandler(db)), "POST", "/comments", `{"carId":42,"text":"Hello"}`)

	assert.Equal(t, 404, w.Code)
	assert.Equal(t, "Car not found", decodeObject(t, w)["message"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentHandler_Create_Validation(t *testing.T) {
	db, mock := setupMockDB(t)
	router := commentRouter(NewCommentHandler(db))

	assert.Equal(t, 400, performRequest(router, "POST", "/comments", `{"text":"no car"}`).Code)
	assert.Equal(t, 400, performRequest(router, "POST", "/comments", `{"carId":1}`).Code)
	assert.Equal(t, 400, performRequest(router, "POST", "/comments", `{"carId":1,"text":"   "}`).Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentHandler_ListByCar(t *testing.T) {
	db, mock := setupMockDB(t)
	router := commentRouter(NewCommentHandler(db))
	newer := time.Now()
	older := newer.Add(-time.Hour)

	mock.ExpectQuery("SELECT \\* FROM `comments` WHERE car_id = \\? ORDER BY created_at DESC").
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows(commentColumns).
			AddRow(2, 3, "Aziz", "second", newer, newer).
			AddRow(1, 3, "Anonymous", "first", older, older))

	w := performRequest(router, "GET", "/comments/3", "")
	assert.Equal(t, 200, w.Code)
	list := decodeList(t, w)
	require.Len(t, list, 2)
	assert.Equal(t, "second", list[0]["text"])

	w = performRequest(router, "GET", "/comments/x", "")
	assert.Equal(t, 400, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentHandler_List_Empty(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectQuery("SELECT \\* FROM `comments` ORDER BY created_at DESC").
		WillReturnRows(sqlmock.NewRows(commentColumns))

	w := performRequest(commentRouter(NewCommentHandler(db)), "GET", "/comments", "")
	assert.Equal(t, 200, w.Code)
	assert.Equal(t, "[]", w.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentHandler_UpdateDelete(t *testing.T) {
	db, mock := setupMockDB(t)
	router := commentRouter(NewCommentHandler(db))
	now := time.Now()

	mock.ExpectQuery("SELECT \\* FROM `comments`").
		WillReturnRows(sqlmock.NewRows(commentColumns).AddRow(5, 1, "Aziz", "old", now, now))
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `comments` SET").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectQuery("SELECT \\* FROM `comments`").
		WillReturnRows(sqlmock.NewRows(commentColumns).AddRow(5, 1, "Aziz", "new", now, now))

	w := performRequest(router, "PUT", "/comments/5", `{"text":"new"}`)
	assert.Equal(t, 200, w.Code)
	assert.Equal(t, "new", decodeObject(t, w)["text"])

	mock.ExpectQuery("SELECT \\* FROM `comments`").WillReturnRows(sqlmock.NewRows(commentColumns))
	w = performRequest(router, "PUT", "/comments/6", `{"text":"new"}`)
	assert.Equal(t, 404, w.Code)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `comments`").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()
	w = performRequest(router, "DELETE", "/comments/6", "")
	assert.Equal(t, 404, w.Code)
	assert.Equal(t, "Comment not found", decodeObject(t, w)["message"])

	require.NoError(t, mock.ExpectationsWereMet())
}
