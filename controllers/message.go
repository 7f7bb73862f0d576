package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/zeecare/hospital-backend/db"
	"github.com/zeecare/hospital-backend/models"
	"github.com/zeecare/hospital-backend/utils"
)

// SendMessage stores a contact-form submission; no authentication required
func SendMessage(c *fiber.Ctx) error {
	message := new(models.Message)
	if err := c.BodyParser(message); err != nil {
		return utils.ValidationError("Cannot parse JSON")
	}

	if msg := message.Validate(); msg != "" {
		return utils.ValidationError(msg)
	}

	if err := db.DB.Create(message).Error; err != nil {
		return utils.Internal(err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Message Sent Successfully!",
	})
}

// GetAllMessages returns every contact message for the admin dashboard
func GetAllMessages(c *fiber.Ctx) error {
	var messages []models.Message
	if err := db.DB.Find(&messages).Error; err != nil {
		return utils.Internal(err)
	}
	return c.JSON(fiber.Map{
		"success":  true,
		"messages": messages,
	})
}
