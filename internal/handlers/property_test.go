package handlers_test

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uninest-dev/uninest/db"
	"github.com/uninest-dev/uninest/internal/models"
	"github.com/uninest-dev/uninest/internal/types"
)

func TestCreatePropertyNamesFirstMissingField(t *testing.T) {
	r := setupRouter(t)

	landlordID := registerUser(t, r, "Lena Owner", "lena@example.com", types.RoleLandlord)

	full := map[string]interface{}{
		"title":        "Sunrise PG",
		"description":  "desc",
		"propertyType": "PG",
		"address":      "12 College Road",
		"city":         "Kolkata",
		"rent":         6500,
		"deposit":      13000,
		"landlordId":   landlordID,
	}

	order := []string{"title", "description", "propertyType", "address", "city", "rent", "deposit", "landlordId"}

	for _, missing := range order {
		t.Run("missing "+missing, func(t *testing.T) {
			payload := map[string]interface{}{}
			for k, v := range full {
				if k != missing {
					payload[k] = v
				}
			}

			w := performJSON(t, r, http.MethodPost, "/api/properties", payload)
			require.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, missing+" is required", decodeBody(t, w)["message"])
		})
	}

	// Two fields missing: the first in contract order wins.
	payload := map[string]interface{}{}
	for k, v := range full {
		if k != "description" && k != "rent" {
			payload[k] = v
		}
	}
	w := performJSON(t, r, http.MethodPost, "/api/properties", payload)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "description is required", decodeBody(t, w)["message"])

	var count int64
	require.NoError(t, db.DB.Model(&models.Property{}).Count(&count).Error)
	assert.Zero(t, count, "failed creates must not persist anything")
}

func TestCreatePropertyRejectsNonLandlord(t *testing.T) {
	r := setupRouter(t)

	studentID := registerUser(t, r, "Sam Student", "sam@example.com", types.RoleStudent)

	w := performJSON(t, r, http.MethodPost, "/api/properties", map[string]interface{}{
		"title":        "Sunrise PG",
		"description":  "desc",
		"propertyType": "PG",
		"address":      "12 College Road",
		"city":         "Kolkata",
		"rent":         6500,
		"deposit":      13000,
		"landlordId":   studentID,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeBody(t, w)["message"], "Invalid landlord")
}

func TestCreatePropertyDefaults(t *testing.T) {
	r := setupRouter(t)

	landlordID := registerUser(t, r, "Lena Owner", "lena@example.com", types.RoleLandlord)
	created := createProperty(t, r, landlordID, nil)

	id := created["id"].(string)
	var property models.Property
	require.NoError(t, db.DB.Where("id = ?", id).First(&property).Error)

	assert.Equal(t, "West Bengal", property.State)
	assert.Equal(t, "ANY", property.GenderPreference)
	assert.Equal(t, "double", property.OccupancyType)
	assert.Equal(t, "SEMI_FURNISHED", property.Furnishing)
	assert.Equal(t, "separate", property.ElectricityCharges)
	assert.Equal(t, "included", property.WaterCharges)
	assert.Equal(t, 1, property.TotalRooms)
	assert.Equal(t, 1, property.Bathrooms)
	assert.Equal(t, 6, property.MinimumStay)
	assert.Equal(t, 1, property.NoticePeriod)
	assert.Equal(t, types.PropertyActive, property.Status)
	assert.Equal(t, 22.5, property.Latitude)
	assert.Equal(t, 88.4, property.Longitude)
	assert.Equal(t, "Lena Owner", property.LandlordName)
	assert.Zero(t, property.ViewCount)
	assert.Zero(t, property.InquiryCount)
	assert.Zero(t, property.SavedCount)

	rules := property.Rules.Data()
	assert.True(t, rules.NonVegAllowed)
	assert.True(t, rules.VisitorsAllowed)
	assert.False(t, rules.SmokingAllowed)
	assert.False(t, rules.PetsAllowed)
	assert.Nil(t, rules.GateClosingTime)

	assert.True(t, strings.HasPrefix(property.Slug, "sunrise-pg-near-campus-"))
}

func TestPropertyCounterTracksCreatesAndDeletes(t *testing.T) {
	r := setupRouter(t)

	landlordID := registerUser(t, r, "Lena Owner", "lena@example.com", types.RoleLandlord)

	first := createProperty(t, r, landlordID, nil)
	createProperty(t, r, landlordID, map[string]interface{}{"title": "Second listing"})

	var profile models.LandlordProfile
	require.NoError(t, db.DB.Where("user_id = ?", landlordID).First(&profile).Error)
	assert.Equal(t, 2, profile.TotalProperties)

	w := performJSON(t, r, http.MethodDelete,
		fmt.Sprintf("/api/properties?id=%s&landlordId=%s", first["id"], landlordID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, db.DB.Where("user_id = ?", landlordID).First(&profile).Error)
	assert.Equal(t, 1, profile.TotalProperties)
}

func TestListPropertiesFilters(t *testing.T) {
	r := setupRouter(t)

	landlordID := registerUser(t, r, "Lena Owner", "lena@example.com", types.RoleLandlord)

	createProperty(t, r, landlordID, map[string]interface{}{
		"title": "Budget room", "city": "Kolkata", "rent": 4000,
		"amenities": []string{"wifi"},
	})
	createProperty(t, r, landlordID, map[string]interface{}{
		"title": "Premium flat", "city": "New Kolkata Heights", "rent": 9000,
		"propertyType": "FLAT", "genderPreference": "FEMALE",
		"amenities": []string{"wifi", "ac", "laundry"},
	})
	createProperty(t, r, landlordID, map[string]interface{}{
		"title": "Hidden listing", "city": "Mumbai", "rent": 7000,
		"status": types.PropertyInactive,
	})

	listIDs := func(query string) int {
		w := performJSON(t, r, http.MethodGet, "/api/properties"+query, nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		body := decodeBody(t, w)
		return len(body["properties"].([]interface{}))
	}

	// Public default hides non-active listings.
	assert.Equal(t, 2, listIDs(""))
	// An owner query defaults to every status.
	assert.Equal(t, 3, listIDs("?landlordId="+landlordID))
	// Case-insensitive substring city match.
	assert.Equal(t, 2, listIDs("?city=kolkata"))
	// Price range on rent.
	assert.Equal(t, 1, listIDs("?minPrice=5000&maxPrice=9500"))
	// Exact type.
	assert.Equal(t, 1, listIDs("?type=FLAT"))
	// Gender filter matches the requested preference or ANY.
	assert.Equal(t, 2, listIDs("?gender=FEMALE"))
	assert.Equal(t, 1, listIDs("?gender=MALE"))
	// Amenities use AND semantics.
	assert.Equal(t, 2, listIDs("?amenities=wifi"))
	assert.Equal(t, 1, listIDs("?amenities=wifi,ac"))
	assert.Equal(t, 0, listIDs("?amenities=wifi,pool"))
	// Explicit status filter.
	assert.Equal(t, 1, listIDs("?status=INACTIVE&landlordId="+landlordID))
}

func TestListPropertiesPagination(t *testing.T) {
	r := setupRouter(t)

	landlordID := registerUser(t, r, "Lena Owner", "lena@example.com", types.RoleLandlord)
	for i := 0; i < 5; i++ {
		createProperty(t, r, landlordID, map[string]interface{}{"title": fmt.Sprintf("Listing %d", i)})
	}

	w := performJSON(t, r, http.MethodGet, "/api/properties?page=2&limit=2", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Len(t, body["properties"], 2)

	pagination := body["pagination"].(map[string]interface{})
	assert.EqualValues(t, 2, pagination["page"])
	assert.EqualValues(t, 2, pagination["limit"])
	assert.EqualValues(t, 5, pagination["total"])
	assert.EqualValues(t, 3, pagination["totalPages"])
}

func TestUpdatePropertyOwnership(t *testing.T) {
	r := setupRouter(t)

	landlordID := registerUser(t, r, "Lena Owner", "lena@example.com", types.RoleLandlord)
	otherID := registerUser(t, r, "Other Owner", "other@example.com", types.RoleLandlord)
	created := createProperty(t, r, landlordID, nil)

	w := performJSON(t, r, http.MethodPut, "/api/properties", map[string]interface{}{
		"id":         created["id"],
		"landlordId": otherID,
		"rent":       9999,
	})
	require.Equal(t, http.StatusForbidden, w.Code)

	var property models.Property
	require.NoError(t, db.DB.Where("id = ?", created["id"]).First(&property).Error)
	assert.Equal(t, 6500, property.Rent, "rejected update must leave the record unchanged")

	w = performJSON(t, r, http.MethodPut, "/api/properties", map[string]interface{}{
		"id":         created["id"],
		"landlordId": landlordID,
		"rent":       7000,
	})
	require.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, db.DB.Where("id = ?", created["id"]).First(&property).Error)
	assert.Equal(t, 7000, property.Rent)
	assert.Equal(t, "Sunrise PG near campus", property.Title, "unspecified fields stay put")
}

func TestUpdatePropertyNotFound(t *testing.T) {
	r := setupRouter(t)
	registerUser(t, r, "Lena Owner", "lena@example.com", types.RoleLandlord)

	w := performJSON(t, r, http.MethodPut, "/api/properties", map[string]interface{}{
		"id":         "9b2e9c3e-0000-0000-0000-000000000000",
		"landlordId": "whoever",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeletePropertyPurgesWishlists(t *testing.T) {
	r := setupRouter(t)

	landlordID := registerUser(t, r, "Lena Owner", "lena@example.com", types.RoleLandlord)
	created := createProperty(t, r, landlordID, nil)
	kept := createProperty(t, r, landlordID, map[string]interface{}{"title": "Kept listing"})

	for _, p := range []map[string]interface{}{created, kept} {
		w := performJSON(t, r, http.MethodPost, "/api/wishlist", map[string]interface{}{"propertyId": p["id"]})
		require.Equal(t, http.StatusOK, w.Code)
	}

	// A stranger cannot delete.
	w := performJSON(t, r, http.MethodDelete,
		fmt.Sprintf("/api/properties?id=%s&landlordId=%s", created["id"], "someone-else"), nil)
	require.Equal(t, http.StatusForbidden, w.Code)

	w = performJSON(t, r, http.MethodDelete,
		fmt.Sprintf("/api/properties?id=%s&landlordId=%s", created["id"], landlordID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	list := performJSON(t, r, http.MethodGet, "/api/wishlist", nil)
	require.Equal(t, http.StatusOK, list.Code)

	ids := decodeBody(t, list)["propertyIds"].([]interface{})
	assert.Equal(t, []interface{}{kept["id"]}, ids)
}
