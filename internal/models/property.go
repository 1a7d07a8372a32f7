package models

import (
	"time"

	"gorm.io/datatypes"
)

// PropertyImage is one entry of a listing's ordered image set.
type PropertyImage struct {
	URL       string `json:"url"`
	IsPrimary bool   `json:"isPrimary"`
	Caption   string `json:"caption,omitempty"`
}

// PropertyRules is the house-rules sub-object. GateClosingTime stays nil when
// there is no curfew.
type PropertyRules struct {
	NonVegAllowed      bool    `json:"nonVegAllowed"`
	SmokingAllowed     bool    `json:"smokingAllowed"`
	DrinkingAllowed    bool    `json:"drinkingAllowed"`
	PetsAllowed        bool    `json:"petsAllowed"`
	VisitorsAllowed    bool    `json:"visitorsAllowed"`
	OppositeSexAllowed bool    `json:"oppositeSexAllowed"`
	GateClosingTime    *string `json:"gateClosingTime"`
}

// DefaultPropertyRules are applied when a listing is created without rules.
func DefaultPropertyRules() PropertyRules {
	return PropertyRules{
		NonVegAllowed:   true,
		VisitorsAllowed: true,
	}
}

type Property struct {
	BaseModel

	// Basic info
	Title        string `gorm:"not null" json:"title"`
	Slug         string `gorm:"index;not null" json:"slug"`
	Description  string `gorm:"not null" json:"description"`
	PropertyType string `gorm:"not null;index" json:"propertyType"`
	BHK          *int   `json:"bhk"`

	// Location
	Address        string                      `gorm:"not null" json:"address"`
	City           string                      `gorm:"not null;index" json:"city"`
	State          string                      `json:"state"`
	Pincode        string                      `json:"pincode"`
	Landmark       string                      `json:"landmark"`
	Latitude       float64                     `json:"latitude"`
	Longitude      float64                     `json:"longitude"`
	NearbyColleges datatypes.JSONSlice[string] `json:"nearbyColleges"`

	// Room details
	TotalRooms    int    `json:"totalRooms"`
	TotalBeds     int    `json:"totalBeds"`
	AvailableBeds int    `json:"availableBeds"`
	BedsPerRoom   int    `json:"bedsPerRoom"`
	RoomSize      string `json:"roomSize"`
	Bathrooms     int    `json:"bathrooms"`
	FloorNumber   int    `json:"floorNumber"`
	TotalFloors   int    `json:"totalFloors"`

	// Pricing
	Rent               int    `gorm:"not null;index" json:"rent"`
	Deposit            int    `gorm:"not null" json:"deposit"`
	MaintenanceCharges int    `json:"maintenanceCharges"`
	ElectricityCharges string `json:"electricityCharges"` // "separate" or "included"
	WaterCharges       string `json:"waterCharges"`
	FoodIncluded       bool   `json:"foodIncluded"`
	FoodCharges        *int   `json:"foodCharges"`
	MealsPerDay        int    `json:"mealsPerDay"`

	// Preferences
	GenderPreference  string                      `gorm:"index" json:"genderPreference"` // "MALE", "FEMALE" or "ANY"
	OccupancyType     string                      `json:"occupancyType"`
	Furnishing        string                      `json:"furnishing"`
	FurnishingDetails datatypes.JSONSlice[string] `json:"furnishingDetails"`

	// Amenities and rules
	Amenities datatypes.JSONSlice[string]        `json:"amenities"`
	Rules     datatypes.JSONType[PropertyRules]  `json:"rules"`
	Images    datatypes.JSONSlice[PropertyImage] `json:"images"`

	// Availability
	AvailableFrom time.Time `json:"availableFrom"`
	MinimumStay   int       `json:"minimumStay"`  // months
	NoticePeriod  int       `json:"noticePeriod"` // months

	// Ownership (landlord name/phone denormalized for listing cards)
	LandlordID    string `gorm:"not null;index" json:"landlordId"`
	LandlordName  string `json:"landlordName"`
	LandlordPhone string `json:"landlordPhone"`

	// Status
	Status     string `gorm:"not null;index" json:"status"`
	IsVerified bool   `json:"isVerified"`
	IsFeatured bool   `gorm:"index" json:"isFeatured"`

	// Metrics
	ViewCount    int `json:"viewCount"`
	InquiryCount int `json:"inquiryCount"`
	SavedCount   int `json:"savedCount"`
}

// PrimaryImageURL returns the first image URL, matching what listing cards
// render.
func (p *Property) PrimaryImageURL() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0].URL
}
