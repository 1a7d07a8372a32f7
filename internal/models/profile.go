package models

// StudentProfile extends a student user 1:1. Fields start out empty and are
// filled in by profile edits.
type StudentProfile struct {
	BaseModel

	UserID  string `gorm:"uniqueIndex;not null" json:"userId"`
	College string `json:"college,omitempty"`
	Course  string `json:"course,omitempty"`
	Year    int    `json:"year,omitempty"`
	City    string `json:"city,omitempty"`
	Bio     string `json:"bio,omitempty"`

	User User `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}

// LandlordProfile extends a landlord user 1:1. TotalProperties is a
// denormalized counter kept equal to the landlord's property count; property
// create and delete maintain it inside the same transaction.
type LandlordProfile struct {
	BaseModel

	UserID          string `gorm:"uniqueIndex;not null" json:"userId"`
	CompanyName     string `json:"companyName,omitempty"`
	Address         string `json:"address,omitempty"`
	City            string `json:"city,omitempty"`
	IsVerified      bool   `gorm:"default:false" json:"isVerified"`
	TotalProperties int    `gorm:"default:0" json:"totalProperties"`
	ResponseRate    int    `gorm:"default:0" json:"responseRate"`
	ResponseTime    int    `gorm:"default:60" json:"responseTime"` // minutes

	User User `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
