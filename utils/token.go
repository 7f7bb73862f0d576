package utils

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"github.com/zeecare/hospital-backend/models"
)

const (
	AdminCookie   = "adminToken"
	PatientCookie = "patientToken"
)

// CookieName returns the token channel a role is scoped to. Doctors log in
// through the patient channel.
func CookieName(role string) string {
	if role == models.RoleAdmin {
		return AdminCookie
	}
	return PatientCookie
}

func JWTSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "solid_secret_key" // Replace with secure key in production
	}
	return []byte(secret)
}

// TokenTTL reads COOKIE_EXPIRE (days) from the environment, defaulting to 7.
func TokenTTL() time.Duration {
	days, err := strconv.Atoi(os.Getenv("COOKIE_EXPIRE"))
	if err != nil || days <= 0 {
		days = 7
	}
	return time.Duration(days) * 24 * time.Hour
}

// SignToken issues a signed session token bound to a single user ID.
func SignToken(userID uint, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":  userID,
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(JWTSecret())
}

// VerifyToken parses and validates a session token, returning the user ID it
// is bound to. Bad signature, malformed payload and expiry all fail here.
func VerifyToken(tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return JWTSecret(), nil
	})
	if err != nil || !token.Valid {
		return 0, fmt.Errorf("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, fmt.Errorf("invalid token claims")
	}
	return ExtractUserID(claims)
}

// ExtractUserID handles multiple potential formats of user ID in token claims
func ExtractUserID(claims jwt.MapClaims) (uint, error) {
	idVal := claims["id"]
	if idVal == nil {
		return 0, fmt.Errorf("no ID found in claims")
	}

	switch v := idVal.(type) {
	case float64:
		return uint(v), nil
	case string:
		parsed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("could not parse ID string: %v", err)
		}
		return uint(parsed), nil
	case uint:
		return v, nil
	case int:
		return uint(v), nil
	default:
		return 0, fmt.Errorf("unsupported ID type: %T", v)
	}
}

// GenerateToken signs a session token for the user, transmits it through the
// role-scoped httpOnly cookie and responds with the success payload. Cookie
// expiry matches the token's own expiry.
func GenerateToken(user *models.User, message string, status int, c *fiber.Ctx) error {
	ttl := TokenTTL()
	token, err := SignToken(user.ID, ttl)
	if err != nil {
		return Internal(err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     CookieName(user.Role),
		Value:    token,
		Expires:  time.Now().Add(ttl),
		HTTPOnly: true,
	})

	return c.Status(status).JSON(fiber.Map{
		"success": true,
		"message": message,
		"user":    user,
		"token":   token,
	})
}

// ClearCookie logs a channel out by overwriting its cookie with an empty
// value and an already-past expiry.
func ClearCookie(c *fiber.Ctx, name string) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
}
