package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/uninest-dev/uninest/db"
	"github.com/uninest-dev/uninest/internal/apperrors"
	"github.com/uninest-dev/uninest/internal/models"
	"github.com/uninest-dev/uninest/internal/types"
	"gorm.io/gorm"
)

// GetProfile returns the role-matching profile record alongside the safe user
// view. Dashboards read this.
func GetProfile(ctx *gin.Context) {
	userID := ctx.Param("userId")

	var user models.User

	if err := db.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			abortWithError(ctx, apperrors.NotFound("User not found"))
		} else {
			abortWithError(ctx, apperrors.Internal("Failed to fetch profile", err))
		}
		return
	}

	var profile interface{}

	switch user.Role {
	case types.RoleStudent:
		var p models.StudentProfile
		if err := db.DB.Where("user_id = ?", userID).First(&p).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				abortWithError(ctx, apperrors.NotFound("Profile not found"))
			} else {
				abortWithError(ctx, apperrors.Internal("Failed to fetch profile", err))
			}
			return
		}
		profile = p
	case types.RoleLandlord:
		var p models.LandlordProfile
		if err := db.DB.Where("user_id = ?", userID).First(&p).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				abortWithError(ctx, apperrors.NotFound("Profile not found"))
			} else {
				abortWithError(ctx, apperrors.Internal("Failed to fetch profile", err))
			}
			return
		}
		profile = p
	default:
		abortWithError(ctx, apperrors.NotFound("Profile not found"))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    safeUser(user),
		"profile": profile,
	})
}
