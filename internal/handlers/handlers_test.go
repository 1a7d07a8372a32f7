package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/uninest-dev/uninest/db"
	"github.com/uninest-dev/uninest/internal/auth"
	"github.com/uninest-dev/uninest/internal/router"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupRouter gives each test its own in-memory database and a fully wired
// router.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)

	t.Setenv("JWT_SECRET", "test-secret")
	require.NoError(t, auth.InitJWTSecret())

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	db.DB = gdb
	require.NoError(t, db.MigrateDatabase())

	return router.NewRouter()
}

func performJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// registerUser registers a user through the API and returns the generated id.
func registerUser(t *testing.T, r *gin.Engine, name, email, role string) string {
	t.Helper()

	w := performJSON(t, r, http.MethodPost, "/api/auth/register", map[string]interface{}{
		"name":     name,
		"email":    email,
		"password": "sup3rSecret",
		"role":     role,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decodeBody(t, w)
	user, ok := body["user"].(map[string]interface{})
	require.True(t, ok)

	id, ok := user["id"].(string)
	require.True(t, ok)
	require.NotEmpty(t, id)
	return id
}

// createProperty creates a minimal listing for a landlord and returns its id.
func createProperty(t *testing.T, r *gin.Engine, landlordID string, overrides map[string]interface{}) map[string]interface{} {
	t.Helper()

	payload := map[string]interface{}{
		"title":        "Sunrise PG near campus",
		"description":  "Quiet rooms five minutes from the gate",
		"propertyType": "PG",
		"address":      "12 College Road",
		"city":         "Kolkata",
		"rent":         6500,
		"deposit":      13000,
		"landlordId":   landlordID,
	}
	for k, v := range overrides {
		payload[k] = v
	}

	w := performJSON(t, r, http.MethodPost, "/api/properties", payload)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decodeBody(t, w)
	property, ok := body["property"].(map[string]interface{})
	require.True(t, ok)
	return property
}
