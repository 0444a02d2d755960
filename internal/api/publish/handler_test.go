package publishapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"sitebuilder-app/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) sqlmock.Sqlmock {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	old := database.DB
	database.DB = gdb
	t.Cleanup(func() {
		database.DB = old
		sqlDB.Close()
	})

	return mock
}

func publishRouter(userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("user_id", userID) })
	r.POST("/api/publish/:siteId", PublishSite)
	r.POST("/api/publish/:siteId/unpublish", UnpublishSite)
	return r
}

// Publishing a site you don't own answers exactly like publishing a site
// that doesn't exist. Nothing gets rendered and nothing is written.
func TestPublishSite_AccessDeniedIdenticalForMissingAndForeign(t *testing.T) {
	mock := setupMockDB(t)
	r := publishRouter(1)

	mock.ExpectQuery(`SELECT \* FROM "sites"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	w1 := httptest.NewRecorder()
	r.ServeHTTP(w1, httptest.NewRequest(http.MethodPost,
		"/api/publish/00000000-0000-0000-0000-000000000000", nil))

	mock.ExpectQuery(`SELECT \* FROM "sites"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, httptest.NewRequest(http.MethodPost,
		"/api/publish/22222222-2222-2222-2222-222222222222", nil))

	require.Equal(t, http.StatusForbidden, w1.Code)
	require.Equal(t, w1.Code, w2.Code)
	require.Equal(t, w1.Body.String(), w2.Body.String())
	require.JSONEq(t, `{"error":"Access denied"}`, w1.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUnpublishSite_AccessDeniedForForeignSite(t *testing.T) {
	mock := setupMockDB(t)
	r := publishRouter(1)

	mock.ExpectQuery(`SELECT \* FROM "sites"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost,
		"/api/publish/22222222-2222-2222-2222-222222222222/unpublish", nil))

	require.Equal(t, http.StatusForbidden, w.Code)
	require.JSONEq(t, `{"error":"Access denied"}`, w.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}
