package models

import (
	"time"

	"github.com/uninest-dev/uninest/internal/types"
)

// Inquiry is a student's expression of interest in a property. PropertyID and
// LandlordID are copied from the property at creation time; the student
// contact fields are a snapshot, not a join.
type Inquiry struct {
	BaseModel

	PropertyID string `gorm:"not null;index" json:"propertyId"`
	LandlordID string `gorm:"not null;index" json:"landlordId"`
	StudentID  string `gorm:"not null;index" json:"studentId"`

	StudentName  string `json:"studentName"`
	StudentEmail string `json:"studentEmail"`
	StudentPhone string `json:"studentPhone"`

	Message         string              `gorm:"not null" json:"message"`
	PreferredMoveIn *time.Time          `json:"preferredMoveIn"`
	Status          types.InquiryStatus `gorm:"not null;index" json:"status"`
	ScheduledVisit  *time.Time          `json:"scheduledVisit"`
	LandlordNotes   string              `json:"landlordNotes"`
}
