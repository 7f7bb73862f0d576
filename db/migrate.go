package db

import (
	"fmt"
	"log"

	"github.com/zeecare/hospital-backend/models"
)

// Migrate runs AutoMigrate for every persisted model. Init must have been
// called first.
func Migrate() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Appointment{},
		&models.Message{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	fmt.Println("✅ Migrations applied successfully!")
}
