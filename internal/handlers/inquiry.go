package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/uninest-dev/uninest/db"
	"github.com/uninest-dev/uninest/internal/apperrors"
	"github.com/uninest-dev/uninest/internal/models"
	"github.com/uninest-dev/uninest/internal/types"
	"gorm.io/gorm"
)

// PropertySummary is the lightweight join attached to each inquiry in list
// responses.
type PropertySummary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Slug  string `json:"slug"`
	City  string `json:"city"`
	Rent  int    `json:"rent"`
	Image string `json:"image,omitempty"`
}

type InquiryResponse struct {
	models.Inquiry
	Property *PropertySummary `json:"property"`
}

// findPropertyByRef resolves a property by its canonical id when the
// reference parses as a UUID, otherwise by slug.
func findPropertyByRef(ref string) (*models.Property, error) {
	column := "slug"
	if _, err := uuid.Parse(ref); err == nil {
		column = "id"
	}

	var property models.Property
	if err := db.DB.Where(column+" = ?", ref).First(&property).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Property not found")
		}
		return nil, apperrors.Internal("Failed to resolve property", err)
	}

	return &property, nil
}

func ListInquiries(ctx *gin.Context) {
	page, limit := pageParams(ctx)

	query := db.DB.Model(&models.Inquiry{})

	if studentID := ctx.Query("studentId"); studentID != "" {
		query = query.Where("student_id = ?", studentID)
	}
	if landlordID := ctx.Query("landlordId"); landlordID != "" {
		query = query.Where("landlord_id = ?", landlordID)
	}
	if propertyID := ctx.Query("propertyId"); propertyID != "" {
		query = query.Where("property_id = ?", propertyID)
	}
	if status := ctx.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		abortWithError(ctx, apperrors.Internal("Failed to fetch inquiries", err))
		return
	}

	var inquiries []models.Inquiry
	if err := query.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&inquiries).Error; err != nil {
		abortWithError(ctx, apperrors.Internal("Failed to fetch inquiries", err))
		return
	}

	// Batch-fetch the referenced properties and stitch summaries by id.
	propertyIDs := make([]string, 0, len(inquiries))
	seen := map[string]bool{}
	for _, inquiry := range inquiries {
		if !seen[inquiry.PropertyID] {
			seen[inquiry.PropertyID] = true
			propertyIDs = append(propertyIDs, inquiry.PropertyID)
		}
	}

	propertyMap := map[string]models.Property{}
	if len(propertyIDs) > 0 {
		var properties []models.Property
		if err := db.DB.Where("id IN ?", propertyIDs).Find(&properties).Error; err != nil {
			abortWithError(ctx, apperrors.Internal("Failed to fetch inquiries", err))
			return
		}
		for _, p := range properties {
			propertyMap[p.ID] = p
		}
	}

	responses := make([]InquiryResponse, 0, len(inquiries))
	for _, inquiry := range inquiries {
		resp := InquiryResponse{Inquiry: inquiry}
		if p, ok := propertyMap[inquiry.PropertyID]; ok {
			resp.Property = &PropertySummary{
				ID:    p.ID,
				Title: p.Title,
				Slug:  p.Slug,
				City:  p.City,
				Rent:  p.Rent,
				Image: p.PrimaryImageURL(),
			}
		}
		responses = append(responses, resp)
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success":    true,
		"inquiries":  responses,
		"pagination": NewPagination(page, limit, total),
	})
}

type CreateInquiryRequest struct {
	PropertyID      string     `json:"propertyId"`
	StudentID       string     `json:"studentId"`
	Message         string     `json:"message"`
	Phone           string     `json:"phone"`
	PreferredMoveIn *time.Time `json:"preferredMoveIn"`
}

func (r CreateInquiryRequest) firstMissingField() string {
	required := []struct {
		name string
		ok   bool
	}{
		{"propertyId", r.PropertyID != ""},
		{"studentId", r.StudentID != ""},
		{"message", r.Message != ""},
	}

	for _, f := range required {
		if !f.ok {
			return f.name
		}
	}

	return ""
}

func CreateInquiry(ctx *gin.Context) {
	var req CreateInquiryRequest

	if err := ctx.BindJSON(&req); err != nil {
		log.Printf("Failed to bind JSON: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	if field := req.firstMissingField(); field != "" {
		abortWithError(ctx, apperrors.Validation("%s is required", field))
		return
	}

	property, err := findPropertyByRef(req.PropertyID)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	var student models.User
	if err := db.DB.Where("id = ?", req.StudentID).First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			abortWithError(ctx, apperrors.NotFound("Student not found"))
		} else {
			abortWithError(ctx, apperrors.Internal("Failed to create inquiry", err))
		}
		return
	}

	studentPhone := student.Phone
	if studentPhone == "" {
		studentPhone = req.Phone
	}

	inquiry := models.Inquiry{
		PropertyID:      property.ID,
		LandlordID:      property.LandlordID,
		StudentID:       req.StudentID,
		StudentName:     student.Name,
		StudentEmail:    student.Email,
		StudentPhone:    studentPhone,
		Message:         req.Message,
		PreferredMoveIn: req.PreferredMoveIn,
		Status:          types.InquiryPending,
	}

	// Uniqueness check, insert and counter increment share one transaction.
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.Inquiry
		err := tx.Where("property_id = ? AND student_id = ? AND status IN ?",
			property.ID, req.StudentID, types.ActiveInquiryStatuses).
			First(&existing).Error

		if err == nil {
			return apperrors.Conflict("You already have a pending inquiry for this property")
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := tx.Create(&inquiry).Error; err != nil {
			return err
		}

		return tx.Model(&models.Property{}).
			Where("id = ?", property.ID).
			UpdateColumn("inquiry_count", gorm.Expr("inquiry_count + ?", 1)).Error
	})

	if err != nil {
		var appErr *apperrors.Error
		if errors.As(err, &appErr) {
			abortWithError(ctx, appErr)
		} else {
			abortWithError(ctx, apperrors.Internal("Failed to create inquiry", err))
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Inquiry sent successfully",
		"inquiry": inquiry,
	})
}

type UpdateInquiryRequest struct {
	ID             string     `json:"id"`
	UserID         string     `json:"userId"`
	Status         *string    `json:"status"`
	ScheduledVisit *time.Time `json:"scheduledVisit"`
	LandlordNotes  *string    `json:"landlordNotes"`
}

func UpdateInquiry(ctx *gin.Context) {
	var req UpdateInquiryRequest

	if err := ctx.BindJSON(&req); err != nil {
		log.Printf("Failed to bind JSON: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	if req.ID == "" {
		abortWithError(ctx, apperrors.Validation("Inquiry ID is required"))
		return
	}

	var inquiry models.Inquiry

	if err := db.DB.Where("id = ?", req.ID).First(&inquiry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			abortWithError(ctx, apperrors.NotFound("Inquiry not found"))
		} else {
			abortWithError(ctx, apperrors.Internal("Failed to update inquiry", err))
		}
		return
	}

	// Either party may update; everyone else is rejected.
	if inquiry.LandlordID != req.UserID && inquiry.StudentID != req.UserID {
		abortWithError(ctx, apperrors.Forbidden("Unauthorized"))
		return
	}

	updates := map[string]interface{}{
		"updated_at": time.Now(),
	}

	nextStatus := inquiry.Status

	if req.Status != nil {
		nextStatus = types.InquiryStatus(*req.Status)
		if !types.ValidInquiryStatus(nextStatus) {
			abortWithError(ctx, apperrors.Validation("Unknown inquiry status %q", *req.Status))
			return
		}
	}

	if req.ScheduledVisit != nil {
		// Scheduling a visit forces the scheduled state.
		updates["scheduled_visit"] = *req.ScheduledVisit
		nextStatus = types.InquiryScheduled
	}

	if nextStatus != inquiry.Status {
		if !types.CanTransition(inquiry.Status, nextStatus) {
			abortWithError(ctx, apperrors.Conflict("Cannot move inquiry from %s to %s", inquiry.Status, nextStatus))
			return
		}
		updates["status"] = nextStatus
	}

	if req.LandlordNotes != nil {
		updates["landlord_notes"] = *req.LandlordNotes
	}

	if err := db.DB.Model(&inquiry).Updates(updates).Error; err != nil {
		abortWithError(ctx, apperrors.Internal("Failed to update inquiry", err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Inquiry updated successfully",
		"inquiry": inquiry,
	})
}

// CancelInquiry is a soft delete: the row stays, the status becomes
// CANCELLED. Only the referenced student may cancel.
func CancelInquiry(ctx *gin.Context) {
	id := ctx.Query("id")
	studentID := ctx.Query("studentId")

	if id == "" || studentID == "" {
		abortWithError(ctx, apperrors.Validation("Inquiry ID and student ID are required"))
		return
	}

	var inquiry models.Inquiry

	if err := db.DB.Where("id = ?", id).First(&inquiry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			abortWithError(ctx, apperrors.NotFound("Inquiry not found"))
		} else {
			abortWithError(ctx, apperrors.Internal("Failed to cancel inquiry", err))
		}
		return
	}

	if inquiry.StudentID != studentID {
		abortWithError(ctx, apperrors.Forbidden("Unauthorized"))
		return
	}

	if !types.CanTransition(inquiry.Status, types.InquiryCancelled) {
		abortWithError(ctx, apperrors.Conflict("Cannot cancel an inquiry that is %s", inquiry.Status))
		return
	}

	if err := db.DB.Model(&inquiry).Updates(map[string]interface{}{
		"status":     types.InquiryCancelled,
		"updated_at": time.Now(),
	}).Error; err != nil {
		abortWithError(ctx, apperrors.Internal("Failed to cancel inquiry", err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Inquiry cancelled successfully",
	})
}
