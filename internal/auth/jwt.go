package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/patrykkrzal/skirent/internal/models"
)

var (
	jwtSecret string
	jwtExpiry time.Duration
)

// Init configures token signing. The secret and expiry come from the loaded
// application config, not from ambient process state.
func Init(secret string, expireHrs int) error {
	if secret == "" {
		return fmt.Errorf("JWT secret is not set")
	}
	if expireHrs <= 0 {
		return fmt.Errorf("JWT expiry must be positive, got %d", expireHrs)
	}
	jwtSecret = secret
	jwtExpiry = time.Duration(expireHrs) * time.Hour
	return nil
}

func GenerateJWT(userID uint, email string, role models.Role) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"role":    string(role),
		"exp":     time.Now().Add(jwtExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret))
}

func VerifyJWT(tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(jwtSecret), nil
	})

	if err != nil || !token.Valid {
		return nil, fmt.Errorf("Invalid or expired token")
	}

	return token, nil
}
