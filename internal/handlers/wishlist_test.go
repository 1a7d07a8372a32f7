package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getWishlist(t *testing.T, r *gin.Engine) []interface{} {
	t.Helper()

	w := performJSON(t, r, http.MethodGet, "/api/wishlist", nil)
	require.Equal(t, http.StatusOK, w.Code)
	return decodeBody(t, w)["propertyIds"].([]interface{})
}

func TestWishlistEmptyByDefault(t *testing.T) {
	r := setupRouter(t)

	assert.Empty(t, getWishlist(t, r))
}

func TestWishlistAddIsIdempotent(t *testing.T) {
	r := setupRouter(t)

	for i := 0; i < 2; i++ {
		w := performJSON(t, r, http.MethodPost, "/api/wishlist", map[string]interface{}{"propertyId": "prop-1"})
		require.Equal(t, http.StatusOK, w.Code)
	}

	ids := getWishlist(t, r)
	assert.Equal(t, []interface{}{"prop-1"}, ids, "adding twice keeps a single entry")
}

func TestWishlistRemoveAbsentIsNoOp(t *testing.T) {
	r := setupRouter(t)

	w := performJSON(t, r, http.MethodPost, "/api/wishlist", map[string]interface{}{"propertyId": "prop-1"})
	require.Equal(t, http.StatusOK, w.Code)

	w = performJSON(t, r, http.MethodDelete, "/api/wishlist?propertyId=prop-2", nil)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, []interface{}{"prop-1"}, getWishlist(t, r))
}

func TestWishlistToggleRoundTrips(t *testing.T) {
	r := setupRouter(t)

	w := performJSON(t, r, http.MethodPut, "/api/wishlist", map[string]interface{}{"propertyId": "prop-1"})
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["isInWishlist"])

	w = performJSON(t, r, http.MethodPut, "/api/wishlist", map[string]interface{}{"propertyId": "prop-1"})
	require.Equal(t, http.StatusOK, w.Code)
	body = decodeBody(t, w)
	assert.Equal(t, false, body["isInWishlist"])

	assert.Empty(t, getWishlist(t, r), "toggling twice restores the original state")
}

func TestWishlistClearKeepsRecord(t *testing.T) {
	r := setupRouter(t)

	for _, id := range []string{"prop-1", "prop-2"} {
		w := performJSON(t, r, http.MethodPost, "/api/wishlist", map[string]interface{}{"propertyId": id})
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := performJSON(t, r, http.MethodDelete, "/api/wishlist?clearAll=true", nil)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Empty(t, getWishlist(t, r))
}

func TestWishlistRequiresPropertyID(t *testing.T) {
	r := setupRouter(t)

	w := performJSON(t, r, http.MethodPost, "/api/wishlist", map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = performJSON(t, r, http.MethodDelete, "/api/wishlist", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
