package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/uninest-dev/uninest/internal/handlers"
	"github.com/uninest-dev/uninest/internal/types"
)

func NewRouter() *gin.Engine {
	r := gin.Default()

	// Add CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		auth := api.Group("/auth")
		{
			auth.POST("/register", handlers.Register)
			auth.POST("/login", handlers.Login)
			auth.GET("/me", handlers.Me)
			auth.DELETE("/me", handlers.Logout)
		}

		properties := api.Group("/properties")
		{
			properties.GET("", handlers.ListProperties)
			properties.POST("", handlers.CreateProperty)
			properties.PUT("", handlers.UpdateProperty)
			properties.DELETE("", handlers.DeleteProperty)
		}

		inquiries := api.Group("/inquiries")
		{
			inquiries.GET("", handlers.ListInquiries)
			inquiries.POST("", handlers.CreateInquiry)
			inquiries.PUT("", handlers.UpdateInquiry)
			inquiries.DELETE("", handlers.CancelInquiry)
		}

		wishlist := api.Group("/wishlist")
		{
			wishlist.GET("", handlers.GetWishlist)
			wishlist.POST("", handlers.AddToWishlist)
			wishlist.PUT("", handlers.ToggleWishlist)
			wishlist.DELETE("", handlers.RemoveFromWishlist)
		}

		api.GET("/profiles/:userId", handlers.GetProfile)
	}

	return r
}
