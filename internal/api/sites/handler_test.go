package sitesapi

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

func authedRouter(userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("user_id", userID) })
	r.GET("/api/sites/:siteId", GetSite)
	r.DELETE("/api/sites/:siteId", DeleteSite)
	return r
}

// Missing sites and sites owned by someone else must be told apart by
// nobody: same status, same body. The owner filter means the store
// returns no row in both cases, which is exactly what the mock serves.
func TestGetSite_AccessDeniedIdenticalForMissingAndForeign(t *testing.T) {
	mock := setupMockDB(t)
	r := authedRouter(1)

	// absent site
	mock.ExpectQuery(`SELECT \* FROM "sites"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	w1 := httptest.NewRecorder()
	r.ServeHTTP(w1, httptest.NewRequest(http.MethodGet,
		"/api/sites/00000000-0000-0000-0000-000000000000", nil))

	// site exists but belongs to another owner
	mock.ExpectQuery(`SELECT \* FROM "sites"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, httptest.NewRequest(http.MethodGet,
		"/api/sites/22222222-2222-2222-2222-222222222222", nil))

	require.Equal(t, http.StatusForbidden, w1.Code)
	require.Equal(t, w1.Code, w2.Code)
	require.Equal(t, w1.Body.String(), w2.Body.String())
	require.JSONEq(t, `{"error":"Access denied"}`, w1.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteSite_AccessDeniedForForeignSite(t *testing.T) {
	mock := setupMockDB(t)
	r := authedRouter(1)

	mock.ExpectQuery(`SELECT \* FROM "sites"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete,
		"/api/sites/22222222-2222-2222-2222-222222222222", nil))

	require.Equal(t, http.StatusForbidden, w.Code)
	require.JSONEq(t, `{"error":"Access denied"}`, w.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}
