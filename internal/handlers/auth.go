package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/uninest-dev/uninest/db"
	"github.com/uninest-dev/uninest/internal/auth"
	"github.com/uninest-dev/uninest/internal/middleware"
	"github.com/uninest-dev/uninest/internal/models"
	"github.com/uninest-dev/uninest/internal/types"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// bcryptCost matches the adaptive-hash work factor used for all stored
// passwords.
const bcryptCost = 12

// minPasswordLength follows the registration schema rule.
const minPasswordLength = 8

func safeUser(user models.User) types.UserResponse {
	return types.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Phone:     user.Phone,
		Image:     user.Image,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}

func Register(ctx *gin.Context) {
	var req RegisterRequest

	if err := ctx.BindJSON(&req); err != nil {
		log.Printf("Failed to bind JSON: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" || req.Role == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "All fields are required"})
		return
	}

	if len(req.Password) < minPasswordLength {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Password must be at least 8 characters"})
		return
	}

	if !types.ValidRole(req.Role) {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid role"})
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	var existingUser models.User

	err := db.DB.Where("email = ?", req.Email).First(&existingUser).Error

	if err == nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Email already registered"})
		return
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Database error when checking existing user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Registration failed"})
		return
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)

	if err != nil {
		log.Printf("Failed to hash password: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Registration failed"})
		return
	}

	newUser := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(passwordHash),
		Phone:    req.Phone,
		Role:     req.Role,
	}

	// User and role profile are created together or not at all.
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&newUser).Error; err != nil {
			return err
		}

		switch newUser.Role {
		case types.RoleStudent:
			return tx.Create(&models.StudentProfile{UserID: newUser.ID}).Error
		case types.RoleLandlord:
			return tx.Create(&models.LandlordProfile{UserID: newUser.ID}).Error
		}

		return nil
	})

	if err != nil {
		log.Printf("Failed to create user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Registration failed"})
		return
	}

	token, err := auth.GenerateJWT(newUser.ID, newUser.Email, newUser.Role)

	if err != nil {
		log.Printf("Failed to generate JWT: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Registration failed"})
		return
	}

	auth.SetAuthCookie(ctx, token)

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Registration successful",
		"user":    safeUser(newUser),
		"token":   token,
	})
}

func Login(ctx *gin.Context) {
	var req LoginRequest

	if err := ctx.BindJSON(&req); err != nil {
		log.Printf("Failed to bind JSON: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	if req.Email == "" || req.Password == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Email and password are required"})
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User

	err := db.DB.Where("email = ?", req.Email).First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Same body as the wrong-password case to prevent enumeration.
			ctx.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid email or password"})
			return
		}
		log.Printf("Database error when fetching user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Login failed"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid email or password"})
		return
	}

	token, err := auth.GenerateJWT(user.ID, user.Email, user.Role)

	if err != nil {
		log.Printf("Failed to generate JWT: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Login failed"})
		return
	}

	auth.SetAuthCookie(ctx, token)

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"user":    safeUser(user),
		"token":   token,
	})
}

// Me reads the session token directly rather than going through the auth
// middleware: a missing user must surface as 404, not the middleware's 401.
func Me(ctx *gin.Context) {
	tokenString := middleware.TokenFromRequest(ctx)

	if tokenString == "" {
		ctx.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Not authenticated", "user": nil})
		return
	}

	token, err := auth.VerifyJWT(tokenString)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid token", "user": nil})
		return
	}

	userID, err := auth.UserIDFromToken(token)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid token", "user": nil})
		return
	}

	// Best-effort short timeout; a slow lookup reads as "not logged in".
	lookupCtx, cancel := context.WithTimeout(ctx.Request.Context(), 3*time.Second)
	defer cancel()

	var user models.User

	if err := db.DB.WithContext(lookupCtx).Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found", "user": nil})
			return
		}
		ctx.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Not authenticated", "user": nil})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    safeUser(user),
	})
}

func Logout(ctx *gin.Context) {
	auth.ClearAuthCookie(ctx)

	ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out successfully"})
}
