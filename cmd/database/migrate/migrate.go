package migration

import (
	"buddyfridge/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.FoodBatch{}); err != nil {
		log.Fatalf("Error migrating food batch database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.ShoppingEntry{}); err != nil {
		log.Fatalf("Error migrating shopping entry database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.FrequentItem{}); err != nil {
		log.Fatalf("Error migrating frequent item database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Reminder{}); err != nil {
		log.Fatalf("Error migrating reminder database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.NotificationPreference{}); err != nil {
		log.Fatalf("Error migrating notification preference database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
