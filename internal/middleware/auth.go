package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/patrykkrzal/skirent/internal/auth"
	"github.com/patrykkrzal/skirent/internal/models"
	"github.com/patrykkrzal/skirent/internal/store"
)

// ContextUserKey is the gin context key the authenticated user is stored
// under.
const ContextUserKey = "user"

type AuthenticatedUser struct {
	ID    uint        `json:"id"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  models.Role `json:"role"`
}

// CurrentUser returns the authenticated user set by AuthMiddleware.
func CurrentUser(ctx *gin.Context) (AuthenticatedUser, bool) {
	value, exists := ctx.Get(ContextUserKey)
	if !exists {
		return AuthenticatedUser{}, false
	}
	user, ok := value.(AuthenticatedUser)
	return user, ok
}

// CurrentUserID returns the ID of the authenticated user, or 0 when the
// request is unauthenticated.
func CurrentUserID(ctx *gin.Context) uint {
	user, ok := CurrentUser(ctx)
	if !ok {
		return 0
	}
	return user.ID
}

func AuthMiddleware(users store.UserStore) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")

		if authHeader == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization token is required"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)

		if len(parts) != 2 || parts[0] != "Bearer" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		tokenString := parts[1]

		token, err := auth.VerifyJWT(tokenString)

		if err != nil || !token.Valid {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)

		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}

		userIDFloat, ok := claims["user_id"].(float64)

		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid user ID in token claims"})
			return
		}

		user, err := users.ByID(ctx.Request.Context(), uint(userIDFloat))

		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
			return
		}

		ctx.Set(ContextUserKey, AuthenticatedUser{
			ID:    user.ID,
			Name:  user.FirstName + " " + user.LastName,
			Email: user.Email,
			Role:  user.Role,
		})
		ctx.Next()
	}
}

// RequireStaff allows only worker and admin roles past. Must run after
// AuthMiddleware.
func RequireStaff() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		value, exists := ctx.Get(ContextUserKey)

		if !exists {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
			return
		}

		user, ok := value.(AuthenticatedUser)

		if !ok || !user.Role.IsStaff() {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Staff role required"})
			return
		}

		ctx.Next()
	}
}
