package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snapvault/snapvault-backend/internal/users"
)

func setupAuthRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	r := gin.New()
	r.Use(WithUser(users.NewRepo(db)))
	r.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": UserID(c), "external_uid": ExternalUID(c)})
	})
	return r, mock
}

func TestWithUser_NoIdentity(t *testing.T) {
	r, mock := setupAuthRouter(t)

	req := httptest.NewRequest("GET", "/whoami", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "UNAUTHORIZED", body["error"].(map[string]interface{})["code"])

	// the upsert never ran
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWithUser_HeaderIdentity(t *testing.T) {
	r, mock := setupAuthRouter(t)

	mock.ExpectQuery(`insert into users`).
		WithArgs("ext-123", "u@example.com", "U").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("5c5c8dfa-2a2b-4a57-9e54-7c6be25e3e70"))

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("X-User-Id", "ext-123")
	req.Header.Set("X-User-Email", "u@example.com")
	req.Header.Set("X-User-Name", "U")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "5c5c8dfa-2a2b-4a57-9e54-7c6be25e3e70", body["user_id"])
	assert.Equal(t, "ext-123", body["external_uid"])

	require.NoError(t, mock.ExpectationsWereMet())
}
