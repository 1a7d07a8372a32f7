package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/uninest-dev/uninest/db"
	"github.com/uninest-dev/uninest/internal/apperrors"
	"github.com/uninest-dev/uninest/internal/models"
	"github.com/uninest-dev/uninest/internal/types"
	"github.com/uninest-dev/uninest/internal/utils"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PropertyFilter is the typed query surface of the listing search. Zero
// values mean "not filtered".
type PropertyFilter struct {
	LandlordID   string
	City         string
	Gender       string
	PropertyType string
	MinPrice     *int
	MaxPrice     *int
	Amenities    []string
	Status       string
	Featured     bool
}

func parsePropertyFilter(ctx *gin.Context) PropertyFilter {
	f := PropertyFilter{
		LandlordID:   ctx.Query("landlordId"),
		City:         ctx.Query("city"),
		Gender:       ctx.Query("gender"),
		PropertyType: ctx.Query("type"),
		Status:       ctx.Query("status"),
		Featured:     ctx.Query("featured") == "true",
	}

	if v, err := strconv.Atoi(ctx.Query("minPrice")); err == nil {
		f.MinPrice = &v
	}
	if v, err := strconv.Atoi(ctx.Query("maxPrice")); err == nil {
		f.MaxPrice = &v
	}

	if amenities := ctx.Query("amenities"); amenities != "" {
		for _, a := range strings.Split(amenities, ",") {
			if a = strings.TrimSpace(a); a != "" {
				f.Amenities = append(f.Amenities, a)
			}
		}
	}

	return f
}

// Apply builds the listing query from the filter. Amenities use AND
// semantics: every requested amenity must be present.
func (f PropertyFilter) Apply(q *gorm.DB) *gorm.DB {
	if f.LandlordID != "" {
		q = q.Where("landlord_id = ?", f.LandlordID)
	}

	if f.City != "" {
		q = q.Where("LOWER(city) LIKE ?", "%"+strings.ToLower(f.City)+"%")
	}

	if f.Gender != "" && f.Gender != "ANY" {
		q = q.Where("gender_preference IN ?", []string{f.Gender, "ANY"})
	}

	if f.PropertyType != "" {
		q = q.Where("property_type = ?", f.PropertyType)
	}

	if f.MinPrice != nil {
		q = q.Where("rent >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("rent <= ?", *f.MaxPrice)
	}

	for _, amenity := range f.Amenities {
		switch q.Dialector.Name() {
		case "postgres":
			member, _ := json.Marshal([]string{amenity})
			q = q.Where("amenities @> ?::jsonb", string(member))
		default:
			q = q.Where("EXISTS (SELECT 1 FROM json_each(amenities) WHERE json_each.value = ?)", amenity)
		}
	}

	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	} else if f.LandlordID == "" {
		// Public searches only see active listings; owners default to all.
		q = q.Where("status = ?", types.PropertyActive)
	}

	if f.Featured {
		q = q.Where("is_featured = ?", true)
	}

	return q
}

func ListProperties(ctx *gin.Context) {
	filter := parsePropertyFilter(ctx)
	page, limit := pageParams(ctx)

	query := filter.Apply(db.DB.Model(&models.Property{}))

	var total int64
	if err := query.Count(&total).Error; err != nil {
		abortWithError(ctx, apperrors.Internal("Failed to fetch properties", err))
		return
	}

	var properties []models.Property
	if err := query.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&properties).Error; err != nil {
		abortWithError(ctx, apperrors.Internal("Failed to fetch properties", err))
		return
	}

	if properties == nil {
		properties = []models.Property{}
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success":    true,
		"properties": properties,
		"pagination": NewPagination(page, limit, total),
	})
}

type CreatePropertyRequest struct {
	Title        string `json:"title"`
	Slug         string `json:"slug"`
	Description  string `json:"description"`
	PropertyType string `json:"propertyType"`
	BHK          *int   `json:"bhk"`

	Address        string   `json:"address"`
	City           string   `json:"city"`
	State          string   `json:"state"`
	Pincode        string   `json:"pincode"`
	Landmark       string   `json:"landmark"`
	Latitude       float64  `json:"latitude"`
	Longitude      float64  `json:"longitude"`
	NearbyColleges []string `json:"nearbyColleges"`

	TotalRooms    int    `json:"totalRooms"`
	TotalBeds     int    `json:"totalBeds"`
	AvailableBeds int    `json:"availableBeds"`
	BedsPerRoom   int    `json:"bedsPerRoom"`
	RoomSize      string `json:"roomSize"`
	Bathrooms     int    `json:"bathrooms"`
	FloorNumber   int    `json:"floorNumber"`
	TotalFloors   int    `json:"totalFloors"`

	Rent               int    `json:"rent"`
	Deposit            int    `json:"deposit"`
	MaintenanceCharges int    `json:"maintenanceCharges"`
	ElectricityCharges string `json:"electricityCharges"`
	WaterCharges       string `json:"waterCharges"`
	FoodIncluded       bool   `json:"foodIncluded"`
	FoodCharges        *int   `json:"foodCharges"`
	MealsPerDay        int    `json:"mealsPerDay"`

	GenderPreference  string   `json:"genderPreference"`
	OccupancyType     string   `json:"occupancyType"`
	Furnishing        string   `json:"furnishing"`
	FurnishingDetails []string `json:"furnishingDetails"`

	Amenities []string               `json:"amenities"`
	Rules     *models.PropertyRules  `json:"rules"`
	Images    []models.PropertyImage `json:"images"`

	AvailableFrom *time.Time `json:"availableFrom"`
	MinimumStay   int        `json:"minimumStay"`
	NoticePeriod  int        `json:"noticePeriod"`

	LandlordID string `json:"landlordId"`

	Status     string `json:"status"`
	IsVerified bool   `json:"isVerified"`
	IsFeatured bool   `json:"isFeatured"`
}

// firstMissingField reports the first required field that was not supplied,
// in contract order.
func (r CreatePropertyRequest) firstMissingField() string {
	required := []struct {
		name string
		ok   bool
	}{
		{"title", r.Title != ""},
		{"description", r.Description != ""},
		{"propertyType", r.PropertyType != ""},
		{"address", r.Address != ""},
		{"city", r.City != ""},
		{"rent", r.Rent != 0},
		{"deposit", r.Deposit != 0},
		{"landlordId", r.LandlordID != ""},
	}

	for _, f := range required {
		if !f.ok {
			return f.name
		}
	}

	return ""
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func defaultStr(v, d string) string {
	if v == "" {
		return d
	}
	return v
}

func defaultInt(v, d int) int {
	if v == 0 {
		return d
	}
	return v
}

func CreateProperty(ctx *gin.Context) {
	var req CreatePropertyRequest

	if err := ctx.BindJSON(&req); err != nil {
		log.Printf("Failed to bind JSON: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	if field := req.firstMissingField(); field != "" {
		abortWithError(ctx, apperrors.Validation("%s is required", field))
		return
	}

	var landlord models.User
	if err := db.DB.Where("id = ? AND role = ?", req.LandlordID, types.RoleLandlord).First(&landlord).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			abortWithError(ctx, apperrors.Validation("Invalid landlord - user not found or not a landlord"))
		} else {
			abortWithError(ctx, apperrors.Internal("Failed to create property", err))
		}
		return
	}

	rules := models.DefaultPropertyRules()
	if req.Rules != nil {
		rules = *req.Rules
	}

	availableFrom := time.Now()
	if req.AvailableFrom != nil {
		availableFrom = *req.AvailableFrom
	}

	slug := req.Slug
	if slug == "" {
		slug = utils.MakeSlug(req.Title)
	}

	property := models.Property{
		Title:        req.Title,
		Slug:         slug,
		Description:  req.Description,
		PropertyType: req.PropertyType,
		BHK:          req.BHK,

		Address:        req.Address,
		City:           req.City,
		State:          defaultStr(req.State, "West Bengal"),
		Pincode:        req.Pincode,
		Landmark:       req.Landmark,
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		NearbyColleges: datatypes.NewJSONSlice(orEmpty(req.NearbyColleges)),

		TotalRooms:    defaultInt(req.TotalRooms, 1),
		TotalBeds:     defaultInt(req.TotalBeds, 1),
		AvailableBeds: defaultInt(req.AvailableBeds, 1),
		BedsPerRoom:   defaultInt(req.BedsPerRoom, 1),
		RoomSize:      req.RoomSize,
		Bathrooms:     defaultInt(req.Bathrooms, 1),
		FloorNumber:   defaultInt(req.FloorNumber, 1),
		TotalFloors:   defaultInt(req.TotalFloors, 1),

		Rent:               req.Rent,
		Deposit:            req.Deposit,
		MaintenanceCharges: req.MaintenanceCharges,
		ElectricityCharges: defaultStr(req.ElectricityCharges, "separate"),
		WaterCharges:       defaultStr(req.WaterCharges, "included"),
		FoodIncluded:       req.FoodIncluded,
		FoodCharges:        req.FoodCharges,
		MealsPerDay:        req.MealsPerDay,

		GenderPreference:  defaultStr(req.GenderPreference, "ANY"),
		OccupancyType:     defaultStr(req.OccupancyType, "double"),
		Furnishing:        defaultStr(req.Furnishing, "SEMI_FURNISHED"),
		FurnishingDetails: datatypes.NewJSONSlice(orEmpty(req.FurnishingDetails)),

		Amenities: datatypes.NewJSONSlice(orEmpty(req.Amenities)),
		Rules:     datatypes.NewJSONType(rules),
		Images:    datatypes.NewJSONSlice(orEmpty(req.Images)),

		AvailableFrom: availableFrom,
		MinimumStay:   defaultInt(req.MinimumStay, 6),
		NoticePeriod:  defaultInt(req.NoticePeriod, 1),

		LandlordID:    req.LandlordID,
		LandlordName:  landlord.Name,
		LandlordPhone: landlord.Phone,

		Status:     defaultStr(req.Status, types.PropertyActive),
		IsVerified: req.IsVerified,
		IsFeatured: req.IsFeatured,
	}

	if req.Latitude == 0 {
		property.Latitude = 22.5
	}
	if req.Longitude == 0 {
		property.Longitude = 88.4
	}

	// Listing insert and landlord counter move together.
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&property).Error; err != nil {
			return err
		}

		return tx.Model(&models.LandlordProfile{}).
			Where("user_id = ?", req.LandlordID).
			UpdateColumn("total_properties", gorm.Expr("total_properties + ?", 1)).Error
	})

	if err != nil {
		abortWithError(ctx, apperrors.Internal("Failed to create property", err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Property created successfully",
		"property": property,
	})
}

type UpdatePropertyRequest struct {
	ID         string `json:"id"`
	LandlordID string `json:"landlordId"`

	Title              *string                `json:"title"`
	Description        *string                `json:"description"`
	PropertyType       *string                `json:"propertyType"`
	Address            *string                `json:"address"`
	City               *string                `json:"city"`
	State              *string                `json:"state"`
	Pincode            *string                `json:"pincode"`
	Landmark           *string                `json:"landmark"`
	Latitude           *float64               `json:"latitude"`
	Longitude          *float64               `json:"longitude"`
	Rent               *int                   `json:"rent"`
	Deposit            *int                   `json:"deposit"`
	MaintenanceCharges *int                   `json:"maintenanceCharges"`
	ElectricityCharges *string                `json:"electricityCharges"`
	WaterCharges       *string                `json:"waterCharges"`
	AvailableBeds      *int                   `json:"availableBeds"`
	GenderPreference   *string                `json:"genderPreference"`
	OccupancyType      *string                `json:"occupancyType"`
	Furnishing         *string                `json:"furnishing"`
	Amenities          []string               `json:"amenities"`
	Rules              *models.PropertyRules  `json:"rules"`
	Images             []models.PropertyImage `json:"images"`
	Status             *string                `json:"status"`
	IsFeatured         *bool                  `json:"isFeatured"`
}

// updates maps the supplied fields onto their columns for a shallow merge.
func (r UpdatePropertyRequest) updates() map[string]interface{} {
	u := map[string]interface{}{}

	set := func(column string, v interface{}) { u[column] = v }

	if r.Title != nil {
		set("title", *r.Title)
	}
	if r.Description != nil {
		set("description", *r.Description)
	}
	if r.PropertyType != nil {
		set("property_type", *r.PropertyType)
	}
	if r.Address != nil {
		set("address", *r.Address)
	}
	if r.City != nil {
		set("city", *r.City)
	}
	if r.State != nil {
		set("state", *r.State)
	}
	if r.Pincode != nil {
		set("pincode", *r.Pincode)
	}
	if r.Landmark != nil {
		set("landmark", *r.Landmark)
	}
	if r.Latitude != nil {
		set("latitude", *r.Latitude)
	}
	if r.Longitude != nil {
		set("longitude", *r.Longitude)
	}
	if r.Rent != nil {
		set("rent", *r.Rent)
	}
	if r.Deposit != nil {
		set("deposit", *r.Deposit)
	}
	if r.MaintenanceCharges != nil {
		set("maintenance_charges", *r.MaintenanceCharges)
	}
	if r.ElectricityCharges != nil {
		set("electricity_charges", *r.ElectricityCharges)
	}
	if r.WaterCharges != nil {
		set("water_charges", *r.WaterCharges)
	}
	if r.AvailableBeds != nil {
		set("available_beds", *r.AvailableBeds)
	}
	if r.GenderPreference != nil {
		set("gender_preference", *r.GenderPreference)
	}
	if r.OccupancyType != nil {
		set("occupancy_type", *r.OccupancyType)
	}
	if r.Furnishing != nil {
		set("furnishing", *r.Furnishing)
	}
	if r.Amenities != nil {
		set("amenities", datatypes.NewJSONSlice(r.Amenities))
	}
	if r.Rules != nil {
		set("rules", datatypes.NewJSONType(*r.Rules))
	}
	if r.Images != nil {
		set("images", datatypes.NewJSONSlice(r.Images))
	}
	if r.Status != nil {
		set("status", *r.Status)
	}
	if r.IsFeatured != nil {
		set("is_featured", *r.IsFeatured)
	}

	return u
}

func UpdateProperty(ctx *gin.Context) {
	var req UpdatePropertyRequest

	if err := ctx.BindJSON(&req); err != nil {
		log.Printf("Failed to bind JSON: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	if req.ID == "" {
		abortWithError(ctx, apperrors.Validation("Property ID is required"))
		return
	}

	var property models.Property

	if err := db.DB.Where("id = ?", req.ID).First(&property).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			abortWithError(ctx, apperrors.NotFound("Property not found"))
		} else {
			abortWithError(ctx, apperrors.Internal("Failed to update property", err))
		}
		return
	}

	if property.LandlordID != req.LandlordID {
		abortWithError(ctx, apperrors.Forbidden("Unauthorized"))
		return
	}

	updates := req.updates()
	updates["updated_at"] = time.Now()

	if err := db.DB.Model(&property).Updates(updates).Error; err != nil {
		abortWithError(ctx, apperrors.Internal("Failed to update property", err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Property updated successfully",
		"property": property,
	})
}

func DeleteProperty(ctx *gin.Context) {
	id := ctx.Query("id")
	landlordID := ctx.Query("landlordId")

	if id == "" || landlordID == "" {
		abortWithError(ctx, apperrors.Validation("Property ID and landlord ID are required"))
		return
	}

	var property models.Property

	if err := db.DB.Where("id = ?", id).First(&property).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			abortWithError(ctx, apperrors.NotFound("Property not found"))
		} else {
			abortWithError(ctx, apperrors.Internal("Failed to delete property", err))
		}
		return
	}

	if property.LandlordID != landlordID {
		abortWithError(ctx, apperrors.Forbidden("Unauthorized"))
		return
	}

	// Row removal, counter decrement and wishlist cleanup are atomic.
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&property).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.LandlordProfile{}).
			Where("user_id = ?", landlordID).
			UpdateColumn("total_properties", gorm.Expr("total_properties - ?", 1)).Error; err != nil {
			return err
		}

		var wishlists []models.Wishlist
		if err := tx.Find(&wishlists).Error; err != nil {
			return err
		}

		for i := range wishlists {
			if wishlists[i].Has(property.ID) {
				wishlists[i].Remove(property.ID)
				if err := tx.Model(&wishlists[i]).Update("property_ids", wishlists[i].PropertyIDs).Error; err != nil {
					return err
				}
			}
		}

		return nil
	})

	if err != nil {
		abortWithError(ctx, apperrors.Internal("Failed to delete property", err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Property deleted successfully",
	})
}
