package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/uninest-dev/uninest/db"
	"github.com/uninest-dev/uninest/internal/apperrors"
	"github.com/uninest-dev/uninest/internal/models"
	"github.com/uninest-dev/uninest/internal/types"
	"gorm.io/gorm"
)

// The wishlist is scoped to a single shared guest identity for now; see
// types.GuestWishlistUser.

func loadWishlist(tx *gorm.DB) (*models.Wishlist, error) {
	var wishlist models.Wishlist
	err := tx.Where("user_id = ?", types.GuestWishlistUser).First(&wishlist).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.Wishlist{UserID: types.GuestWishlistUser}, nil
	}
	if err != nil {
		return nil, err
	}

	return &wishlist, nil
}

func saveWishlist(tx *gorm.DB, wishlist *models.Wishlist) error {
	if wishlist.PropertyIDs == nil {
		wishlist.PropertyIDs = []string{}
	}
	return tx.Save(wishlist).Error
}

func propertyIDsOf(wishlist *models.Wishlist) []string {
	if wishlist.PropertyIDs == nil {
		return []string{}
	}
	return wishlist.PropertyIDs
}

func GetWishlist(ctx *gin.Context) {
	wishlist, err := loadWishlist(db.DB)
	if err != nil {
		abortWithError(ctx, apperrors.Internal("Failed to fetch wishlist", err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"propertyIds": propertyIDsOf(wishlist)})
}

type wishlistRequest struct {
	PropertyID string `json:"propertyId"`
}

func AddToWishlist(ctx *gin.Context) {
	var req wishlistRequest

	if err := ctx.BindJSON(&req); err != nil {
		log.Printf("Failed to bind JSON: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	if req.PropertyID == "" {
		abortWithError(ctx, apperrors.Validation("Property ID is required"))
		return
	}

	wishlist, err := loadWishlist(db.DB)
	if err != nil {
		abortWithError(ctx, apperrors.Internal("Failed to add to wishlist", err))
		return
	}

	wishlist.Add(req.PropertyID)

	if err := saveWishlist(db.DB, wishlist); err != nil {
		abortWithError(ctx, apperrors.Internal("Failed to add to wishlist", err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message":     "Added to wishlist",
		"propertyIds": propertyIDsOf(wishlist),
	})
}

func RemoveFromWishlist(ctx *gin.Context) {
	propertyID := ctx.Query("propertyId")
	clearAll := ctx.Query("clearAll")

	wishlist, err := loadWishlist(db.DB)
	if err != nil {
		abortWithError(ctx, apperrors.Internal("Failed to remove from wishlist", err))
		return
	}

	if clearAll == "true" {
		wishlist.PropertyIDs = []string{}

		if err := saveWishlist(db.DB, wishlist); err != nil {
			abortWithError(ctx, apperrors.Internal("Failed to remove from wishlist", err))
			return
		}

		ctx.JSON(http.StatusOK, gin.H{
			"message":     "Wishlist cleared",
			"propertyIds": []string{},
		})
		return
	}

	if propertyID == "" {
		abortWithError(ctx, apperrors.Validation("Property ID is required"))
		return
	}

	wishlist.Remove(propertyID)

	if err := saveWishlist(db.DB, wishlist); err != nil {
		abortWithError(ctx, apperrors.Internal("Failed to remove from wishlist", err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message":     "Removed from wishlist",
		"propertyIds": propertyIDsOf(wishlist),
	})
}

// ToggleWishlist flips membership and reports the resulting state.
func ToggleWishlist(ctx *gin.Context) {
	var req wishlistRequest

	if err := ctx.BindJSON(&req); err != nil {
		log.Printf("Failed to bind JSON: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	if req.PropertyID == "" {
		abortWithError(ctx, apperrors.Validation("Property ID is required"))
		return
	}

	wishlist, err := loadWishlist(db.DB)
	if err != nil {
		abortWithError(ctx, apperrors.Internal("Failed to toggle wishlist", err))
		return
	}

	message := "Added to wishlist"
	isInWishlist := true

	if wishlist.Has(req.PropertyID) {
		wishlist.Remove(req.PropertyID)
		message = "Removed from wishlist"
		isInWishlist = false
	} else {
		wishlist.Add(req.PropertyID)
	}

	if err := saveWishlist(db.DB, wishlist); err != nil {
		abortWithError(ctx, apperrors.Internal("Failed to toggle wishlist", err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message":      message,
		"propertyIds":  propertyIDsOf(wishlist),
		"isInWishlist": isInWishlist,
	})
}
