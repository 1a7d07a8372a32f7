package models

type User struct {
	BaseModel

	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Phone    string `json:"phone,omitempty"`
	Image    string `json:"image,omitempty"`
	Role     string `gorm:"not null;index" json:"role"` // "student" or "landlord"
}
