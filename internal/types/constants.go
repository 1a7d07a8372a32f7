package types

import (
	"os"
	"strings"
)

const ContextUserKey = "user"

// AuthCookieName is the session cookie carrying the signed token.
const AuthCookieName = "auth-token"

// User roles.
const (
	RoleStudent  = "student"
	RoleLandlord = "landlord"
)

// Property listing statuses.
const (
	PropertyActive   = "ACTIVE"
	PropertyInactive = "INACTIVE"
	PropertyPending  = "PENDING"
	PropertyRejected = "REJECTED"
)

// GuestWishlistUser scopes the wishlist until per-user lists ship.
const GuestWishlistUser = "guest-user"

var (
	// Default allowed origins for development
	defaultOrigins = []string{
		"http://localhost:3000",
		"http://localhost:5173",
	}

	AllowedOrigins = initAllowedOrigins()
)

func initAllowedOrigins() []string {
	origins := make([]string, len(defaultOrigins))
	copy(origins, defaultOrigins)

	if clientURL := os.Getenv("CLIENT_URL"); clientURL != "" {
		origins = append(origins, clientURL)
	}

	if allowedOrigins := os.Getenv("ALLOWED_ORIGINS"); allowedOrigins != "" {
		envOrigins := strings.Split(allowedOrigins, ",")
		for _, origin := range envOrigins {
			trimmed := strings.TrimSpace(origin)
			if trimmed != "" {
				origins = append(origins, trimmed)
			}
		}
	}

	return origins
}

func ValidRole(role string) bool {
	return role == RoleStudent || role == RoleLandlord
}
