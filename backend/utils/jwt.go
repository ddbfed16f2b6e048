package utils

import (
	"time"

	"smartlearn/backend/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// Claims is the session payload carried in the token: who the user is and
// which role gate they pass. The role travels in the token so protected
// routes do not need a store lookup per request.
type Claims struct {
	UserID int
	Role   string
}

// GenerateJWTToken mints a signed session token for the user.
func GenerateJWTToken(userID int, role string, cfg *config.Config) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"jti":     uuid.NewString(),
		"exp":     time.Now().Add(cfg.TokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTSecret))
}

// ExtractClaims parses and verifies the Authorization token on the request.
func ExtractClaims(c *fiber.Ctx, cfg *config.Config) (*Claims, error) {
	tokenString := c.Get("Authorization")
	if tokenString == "" {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Missing authorization token")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
	}

	userIDFloat, ok := claims["user_id"].(float64)
	if !ok {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid user ID in token")
	}
	role, _ := claims["role"].(string)

	return &Claims{UserID: int(userIDFloat), Role: role}, nil
}

// ExtractUserIDFromToken is a shorthand for handlers that only need the id.
func ExtractUserIDFromToken(c *fiber.Ctx, cfg *config.Config) (int, error) {
	claims, err := ExtractClaims(c, cfg)
	if err != nil {
		return 0, err
	}
	return claims.UserID, nil
}
