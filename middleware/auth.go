package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"github.com/zeecare/hospital-backend/db"
	"github.com/zeecare/hospital-backend/models"
	"github.com/zeecare/hospital-backend/utils"
)

const userLocalKey = "authUser"

// RequireRole gates a route behind one token channel. It reads the scoped
// cookie, verifies the token, loads the acting user and enforces the role
// match before handing off to the handler. Admin and patient protection are
// the same gate with different parameters.
func RequireRole(cookieName string, role string) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:  utils.JWTSecret(),
		TokenLookup: "cookie:" + cookieName,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Missing cookie and bad/expired token both end the request
			// here; the legacy API answers 400 for either.
			return utils.Unauthenticated(role + " Not Authenticated!")
		},
		SuccessHandler: func(c *fiber.Ctx) error {
			token, ok := c.Locals("user").(*jwt.Token)
			if !ok {
				return utils.Unauthenticated(role + " Not Authenticated!")
			}
			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return utils.Unauthenticated(role + " Not Authenticated!")
			}

			userID, err := utils.ExtractUserID(claims)
			if err != nil {
				return utils.Unauthenticated(role + " Not Authenticated!")
			}

			// A valid token may outlive its user. Treat that as a stale
			// session, not a server fault.
			var user models.User
			if err := db.DB.First(&user, userID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return utils.Unauthenticated("User Not Found, Please Login Again!")
				}
				return utils.Internal(err)
			}

			if err := authorize(&user, role); err != nil {
				return err
			}

			c.Locals(userLocalKey, &user)
			return c.Next()
		},
	})
}

// authorize enforces the role match, naming the actual role found so a
// patient hitting an admin route sees why they were refused.
func authorize(user *models.User, role string) error {
	if user.Role != role {
		return utils.Forbidden(user.Role + " not authorized for this resource!")
	}
	return nil
}

// IsAdminAuthenticated protects admin-only routes via the adminToken cookie.
func IsAdminAuthenticated() fiber.Handler {
	return RequireRole(utils.AdminCookie, models.RoleAdmin)
}

// IsPatientAuthenticated protects patient routes via the patientToken cookie.
func IsPatientAuthenticated() fiber.Handler {
	return RequireRole(utils.PatientCookie, models.RolePatient)
}

// CurrentUser returns the identity the auth gate resolved for this request.
func CurrentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(userLocalKey).(*models.User)
	return user, ok
}
